package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/LilVoxy/rail_analytics/ETL/models"
	"github.com/LilVoxy/rail_analytics/database"
)

func TestBuildFilterOptions(t *testing.T) {
	options := BuildFilterOptions(sampleDataset())

	assert.Equal(t, []Option{
		{Label: "January", Value: "1"},
		{Label: "February", Value: "2"},
		{Label: "March", Value: "3"},
		{Label: "April", Value: "4"},
	}, options.Months)
	assert.Equal(t, []Option{
		{Label: "London Kings Cross", Value: "London Kings Cross"},
		{Label: "London Paddington", Value: "London Paddington"},
		{Label: "Manchester Piccadilly", Value: "Manchester Piccadilly"},
		{Label: "York", Value: "York"},
	}, options.Stations)
	assert.Equal(t, []Option{
		{Label: "Advance", Value: "Advance"},
		{Label: "Off-Peak", Value: "Off-Peak"},
		{Label: "Anytime", Value: "Anytime"},
	}, options.TicketTypes)
	assert.Len(t, options.Railcards, 3)
	assert.Len(t, options.Payments, 3)
}

func TestMonthOptionsSkipInvalidMonths(t *testing.T) {
	ds := database.NewDataset([]database.Record{
		{TransactionID: "t1", Month: 13},
		{TransactionID: "t2", Month: 5},
		{TransactionID: "t3", Month: -1},
	}, []string{models.ColTransactionID, models.ColMonth})

	assert.Equal(t, []Option{{Label: "May", Value: "5"}}, BuildFilterOptions(ds).Months)
}

func TestFilterOptionsWithoutColumns(t *testing.T) {
	options := BuildFilterOptions(database.NewDataset(nil, []string{models.ColTicketType}))

	assert.Equal(t, []Option{{Label: "No Data", Value: NoDataValue}}, options.Months)
	assert.Empty(t, options.Stations)
	assert.Empty(t, options.TicketTypes)
}
