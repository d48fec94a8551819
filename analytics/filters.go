package analytics

import (
	"bytes"
	"encoding/json"
	"net/url"
	"strconv"
	"strings"

	"github.com/LilVoxy/rail_analytics/ETL/models"
	"github.com/LilVoxy/rail_analytics/database"
)

// NoDataValue значение фильтра месяца, когда выбирать нечего; равносильно отсутствию фильтра
const NoDataValue = "no-data"

// FilterValue значение фильтра; из JSON принимается как строка или число
type FilterValue string

// UnmarshalJSON принимает "3", 3 и null
func (v *FilterValue) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*v = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = FilterValue(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*v = FilterValue(n.String())
	return nil
}

// Filters выбранные значения фильтров. Пустое значение означает, что фильтр не задан.
type Filters struct {
	Month      FilterValue `json:"month"`
	Station    FilterValue `json:"station"`
	TicketType FilterValue `json:"ticket_type"`
	Railcard   FilterValue `json:"railcard"`
	Payment    FilterValue `json:"payment"`
}

// FiltersFromQuery читает фильтры из параметров запроса
func FiltersFromQuery(query url.Values) Filters {
	return Filters{
		Month:      FilterValue(query.Get("month")),
		Station:    FilterValue(query.Get("station")),
		TicketType: FilterValue(query.Get("ticket_type")),
		Railcard:   FilterValue(query.Get("railcard")),
		Payment:    FilterValue(query.Get("payment")),
	}
}

type predicate func(database.Record) bool

// Apply возвращает записи, удовлетворяющие всем заданным фильтрам.
// Фильтр по колонке, которой нет в наборе данных, ничего не ограничивает.
func (f Filters) Apply(ds *database.Dataset) []database.Record {
	var predicates []predicate

	if month := strings.TrimSpace(string(f.Month)); month != "" && month != NoDataValue && ds.Has(models.ColMonth) {
		want, err := strconv.Atoi(month)
		if err != nil {
			// Значение, не являющееся номером месяца, не совпадает ни с одной строкой
			want = -1
		}
		predicates = append(predicates, func(r database.Record) bool { return r.Month == want && r.Month != 0 })
	}

	textFilters := []struct {
		column string
		value  FilterValue
	}{
		{models.ColDepartureStationName, f.Station},
		{models.ColTicketType, f.TicketType},
		{models.ColRailcard, f.Railcard},
		{models.ColPaymentMethod, f.Payment},
	}
	for _, tf := range textFilters {
		column, want := tf.column, string(tf.value)
		if want == "" || !ds.Has(column) {
			continue
		}
		predicates = append(predicates, func(r database.Record) bool {
			got, ok := r.Text(column)
			return ok && got == want
		})
	}

	records := ds.Records()
	filtered := make([]database.Record, 0, len(records))
	for _, record := range records {
		if matchesAll(record, predicates) {
			filtered = append(filtered, record)
		}
	}
	return filtered
}

func matchesAll(record database.Record, predicates []predicate) bool {
	for _, p := range predicates {
		if !p(record) {
			return false
		}
	}
	return true
}
