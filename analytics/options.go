package analytics

import (
	"sort"
	"strconv"
	"time"

	"github.com/LilVoxy/rail_analytics/ETL/models"
	"github.com/LilVoxy/rail_analytics/database"
)

// Option вариант выпадающего списка
type Option struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// FilterOptions варианты всех фильтров боковой панели
type FilterOptions struct {
	Months      []Option `json:"months"`
	Stations    []Option `json:"stations"`
	TicketTypes []Option `json:"ticketTypes"`
	Railcards   []Option `json:"railcards"`
	Payments    []Option `json:"payments"`
}

// BuildFilterOptions собирает варианты фильтров из набора данных.
// Месяцы и станции упорядочены, остальные значения идут в порядке первого появления.
func BuildFilterOptions(ds *database.Dataset) FilterOptions {
	return FilterOptions{
		Months:      monthOptions(ds),
		Stations:    distinctOptions(ds, models.ColDepartureStationName, true),
		TicketTypes: distinctOptions(ds, models.ColTicketType, false),
		Railcards:   distinctOptions(ds, models.ColRailcard, false),
		Payments:    distinctOptions(ds, models.ColPaymentMethod, false),
	}
}

func monthOptions(ds *database.Dataset) []Option {
	if !ds.Has(models.ColMonth) {
		return []Option{{Label: "No Data", Value: NoDataValue}}
	}

	seen := make(map[int]bool)
	var months []int
	for _, record := range ds.Records() {
		if record.Month < 1 || record.Month > 12 || seen[record.Month] {
			continue
		}
		seen[record.Month] = true
		months = append(months, record.Month)
	}
	sort.Ints(months)

	options := make([]Option, 0, len(months))
	for _, month := range months {
		options = append(options, Option{Label: time.Month(month).String(), Value: strconv.Itoa(month)})
	}
	return options
}

func distinctOptions(ds *database.Dataset, column string, sorted bool) []Option {
	if !ds.Has(column) {
		return []Option{}
	}

	seen := make(map[string]bool)
	var values []string
	for _, record := range ds.Records() {
		value, ok := record.Text(column)
		if !ok || seen[value] {
			continue
		}
		seen[value] = true
		values = append(values, value)
	}
	if sorted {
		sort.Strings(values)
	}

	options := make([]Option, 0, len(values))
	for _, value := range values {
		options = append(options, Option{Label: value, Value: value})
	}
	return options
}
