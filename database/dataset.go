// database/dataset.go
package database

import (
	"errors"
	"log"
	"math"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/shopspring/decimal"

	"github.com/LilVoxy/rail_analytics/ETL/models"
)

// Колонки идентификаторов, которые приводятся к тексту перед соединениями
var idColumns = []string{
	models.ColTransactionID,
	models.ColTimeID,
	models.ColJourneyID,
	models.ColDepartureStationID,
	models.ColArrivalStationID,
	models.ColStationID,
}

// LoadDataset читает четыре таблицы звездной схемы из каталога и объединяет их.
// Ошибки чтения накапливаются и возвращаются вместе с набором данных,
// который строится всегда, даже из пустых таблиц.
func LoadDataset(dir string) (*Dataset, error) {
	var result *multierror.Error

	load := func(fileName string) *Table {
		table, err := LoadTable(filepath.Join(dir, fileName))
		if err != nil {
			result = multierror.Append(result, err)
		}
		return table
	}

	fact := load(models.FactTransactionsFile)
	timeDim := load(models.TimeDimensionFile)
	journeyDim := load(models.JourneyDimensionFile)
	locationDim := load(models.LocationDimensionFile)

	return BuildDataset(fact, timeDim, journeyDim, locationDim), result.ErrorOrNil()
}

// BuildDataset соединяет таблицу фактов с измерениями и выводит типизированные записи.
// Таблица фактов изменяется на месте.
func BuildDataset(fact, timeDim, journeyDim, locationDim *Table) *Dataset {
	if fact.Empty() {
		log.Println("⚠️ Таблица фактов пуста, проверьте наличие и формат CSV-файлов")
	}

	for _, table := range []*Table{fact, timeDim, journeyDim, locationDim} {
		normalizeIDColumns(table, idColumns...)
	}

	joins := []struct {
		dim  *Table
		spec JoinSpec
	}{
		{timeDim, JoinSpec{
			Name:     "dim_time",
			LeftKey:  models.ColTimeID,
			RightKey: models.ColTimeID,
			Columns:  []string{models.ColMonth, models.ColYear, models.ColPurchaseDate, models.ColHourOfDay},
		}},
		{journeyDim, JoinSpec{
			Name:     "dim_journey",
			LeftKey:  models.ColJourneyID,
			RightKey: models.ColJourneyID,
			Columns:  []string{models.ColJourneyDate, models.ColDelayPeriod, models.ColReasonForDelay},
		}},
		{locationDim, JoinSpec{
			Name:     "dim_location (отправление)",
			LeftKey:  models.ColDepartureStationID,
			RightKey: models.ColStationID,
			Columns:  []string{models.ColStationName},
			Rename:   map[string]string{models.ColStationName: models.ColDepartureStationName},
		}},
		{locationDim, JoinSpec{
			Name:     "dim_location (прибытие)",
			LeftKey:  models.ColArrivalStationID,
			RightKey: models.ColStationID,
			Columns:  []string{models.ColStationName},
			Rename:   map[string]string{models.ColStationName: models.ColArrivalStationName},
		}},
	}

	for _, join := range joins {
		if _, err := LeftJoin(fact, join.dim, join.spec); err != nil {
			if errors.Is(err, ErrJoinSkipped) {
				log.Printf("⚠️ %v", err)
				continue
			}
			log.Printf("❌ Ошибка соединения %s: %v", join.spec.Name, err)
			continue
		}
		log.Printf("🔗 Соединение %s выполнено, строк: %d", join.spec.Name, fact.Len())
	}

	columns := append([]string(nil), fact.Columns...)
	if fact.Has(models.ColPurchaseDate) && !fact.Has(models.ColMonth) {
		columns = append(columns, models.ColMonth)
	}

	records := make([]Record, 0, fact.Len())
	invalidDates := 0
	for i := range fact.Rows {
		record := buildRecord(fact, i)
		if fact.Has(models.ColPurchaseDate) && !record.PurchaseDate.Valid {
			invalidDates++
		}
		records = append(records, record)
	}
	if invalidDates > 0 {
		log.Printf("⚠️ Нераспознанных дат покупки: %d", invalidDates)
	}

	log.Printf("✅ Объединенная таблица построена: %d строк, колонки %v", len(records), columns)
	return NewDataset(records, columns)
}

func buildRecord(t *Table, row int) Record {
	value := func(column string) string {
		return strings.TrimSpace(t.Value(row, column))
	}

	record := Record{
		TransactionID:    value(models.ColTransactionID),
		PurchaseType:     value(models.ColPurchaseType),
		PaymentMethod:    value(models.ColPaymentMethod),
		Railcard:         value(models.ColRailcard),
		TicketClass:      value(models.ColTicketClass),
		TicketType:       value(models.ColTicketType),
		Price:            parsePrice(value(models.ColPrice)),
		JourneyStatus:    value(models.ColJourneyStatus),
		RefundRequest:    value(models.ColRefundRequest),
		Year:             parseWhole(value(models.ColYear)),
		PurchaseDate:     models.ParseDate(value(models.ColPurchaseDate)),
		JourneyDate:      models.ParseDate(value(models.ColJourneyDate)),
		DelayPeriod:      value(models.ColDelayPeriod),
		ReasonForDelay:   value(models.ColReasonForDelay),
		DepartureStation: value(models.ColDepartureStationName),
		ArrivalStation:   value(models.ColArrivalStationName),
	}

	if hour := value(models.ColHourOfDay); hour != "" {
		if h, err := strconv.ParseFloat(hour, 64); err == nil && h == math.Trunc(h) && h >= 0 && h < 24 {
			record.HourOfDay = int(h)
			record.HasHour = true
		}
	}

	// Месяц всегда выводится из разобранной даты покупки, если она есть
	if t.Has(models.ColPurchaseDate) {
		if record.PurchaseDate.Valid {
			record.Month = int(record.PurchaseDate.Time.Month())
		}
	} else if month := parseWhole(value(models.ColMonth)); month >= 1 && month <= 12 {
		record.Month = month
	}

	return record
}

func parsePrice(value string) decimal.NullDecimal {
	if value == "" {
		return decimal.NullDecimal{}
	}
	price, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(price)
}

// parseWhole разбирает целое число, записанное как "3" или "3.0"; ноль при ошибке
func parseWhole(value string) int {
	if value == "" {
		return 0
	}
	number, err := strconv.ParseFloat(value, 64)
	if err != nil || number != math.Trunc(number) || math.IsInf(number, 0) {
		return 0
	}
	return int(number)
}
