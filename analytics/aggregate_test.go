package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LilVoxy/rail_analytics/ETL/models"
	"github.com/LilVoxy/rail_analytics/database"
)

func values(groups []Group) []string {
	result := make([]string, 0, len(groups))
	for _, g := range groups {
		result = append(result, g.Value.String())
	}
	return result
}

func labels(groups []Group) []string {
	result := make([]string, 0, len(groups))
	for _, g := range groups {
		result = append(result, g.Keys[0])
	}
	return result
}

func TestSumByJourneyStatusAndRefund(t *testing.T) {
	records := []database.Record{
		{JourneyStatus: "On Time", RefundRequest: "No", Price: price("10")},
		{JourneyStatus: "Delayed", RefundRequest: "Yes", Price: price("20")},
		{JourneyStatus: "Delayed", RefundRequest: "No", Price: price("5")},
	}

	groups := SumBy2(records, Column(models.ColJourneyStatus), Column(models.ColRefundRequest))

	require.Len(t, groups, 3)
	assert.Equal(t, []string{"On Time", "No"}, groups[0].Keys)
	assert.Equal(t, []string{"Delayed", "Yes"}, groups[1].Keys)
	assert.Equal(t, []string{"Delayed", "No"}, groups[2].Keys)
	assert.Equal(t, []string{"10", "20", "5"}, values(groups))
}

func TestTopNKeepsFiveInDescendingOrder(t *testing.T) {
	var records []database.Record
	for _, row := range []struct{ station, amount string }{
		{"A", "10"}, {"B", "30"}, {"C", "20"}, {"D", "30"}, {"E", "5"},
		{"F", "20"}, {"G", "1"}, {"A", "10"},
	} {
		records = append(records, database.Record{DepartureStation: row.station, Price: price(row.amount)})
	}

	top := TopN(SumBy(records, Column(models.ColDepartureStationName)), TopStations)

	require.Len(t, top, 5)
	assert.Equal(t, []string{"B", "D", "A", "C", "F"}, labels(top))
	assert.Equal(t, []string{"30", "30", "20", "20", "20"}, values(top))
}

func TestTopNWithFewGroups(t *testing.T) {
	records := []database.Record{{DepartureStation: "York", Price: price("3")}}
	assert.Len(t, TopN(SumBy(records, Column(models.ColDepartureStationName)), TopStations), 1)
}

func TestValueCountsExcludesValues(t *testing.T) {
	records := []database.Record{
		{ReasonForDelay: "No Delay"},
		{ReasonForDelay: "Signal Failure"},
		{ReasonForDelay: ""},
		{ReasonForDelay: "Weather"},
		{ReasonForDelay: "Signal Failure"},
	}

	groups := ValueCounts(records, Column(models.ColReasonForDelay), NoDelayReason)

	assert.Equal(t, []string{"Signal Failure", "Weather"}, labels(groups))
	assert.Equal(t, []string{"2", "1"}, values(groups))
}

func TestMeanBySkipsMissingPrices(t *testing.T) {
	records := []database.Record{
		{TicketType: "Advance", Price: price("10")},
		{TicketType: "Advance"},
		{TicketType: "Advance", Price: price("20")},
		{TicketType: "Anytime"},
	}

	groups := MeanBy(records, Column(models.ColTicketType))

	require.Len(t, groups, 1)
	assert.Equal(t, "Advance", groups[0].Keys[0])
	assert.Equal(t, "15", groups[0].Value.String())
}

func TestCountByDropsMissingKeys(t *testing.T) {
	records := []database.Record{
		{HourOfDay: 9, HasHour: true},
		{HourOfDay: 0},
		{HourOfDay: 0, HasHour: true},
		{HourOfDay: 9, HasHour: true},
	}

	groups := CountBy(records, Column(models.ColHourOfDay))

	assert.Equal(t, []string{"9", "0"}, labels(groups))
	assert.Equal(t, []int{2, 1}, []int{groups[0].Count, groups[1].Count})
}

func TestSumIsIndependentOfRowOrder(t *testing.T) {
	forward := []database.Record{
		{TicketType: "Advance", Price: price("0.1")},
		{TicketType: "Advance", Price: price("0.2")},
		{TicketType: "Advance", Price: price("0.3")},
	}
	backward := []database.Record{forward[2], forward[1], forward[0]}

	assert.Equal(t, values(SumBy(forward, Column(models.ColTicketType))), values(SumBy(backward, Column(models.ColTicketType))))
	assert.Equal(t, "0.6", SumBy(forward, Column(models.ColTicketType))[0].Value.String())
}

func TestSortByKeyOrdersHoursNumerically(t *testing.T) {
	groups := []Group{{Keys: []string{"18"}}, {Keys: []string{"9"}}, {Keys: []string{"10"}}}
	assert.Equal(t, []string{"9", "10", "18"}, labels(SortByKey(groups, lessNumeric)))
}
