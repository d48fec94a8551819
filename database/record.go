// database/record.go
package database

import (
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/LilVoxy/rail_analytics/ETL/models"
)

// Record строка объединенной таблицы продаж с типизированными полями.
// Пустая строка в текстовом поле означает отсутствующее значение.
type Record struct {
	TransactionID string
	PurchaseType  string
	PaymentMethod string
	Railcard      string
	TicketClass   string
	TicketType    string
	Price         decimal.NullDecimal
	JourneyStatus string
	RefundRequest string

	// Month 1-12, ноль если дата покупки неизвестна
	Month        int
	Year         int
	PurchaseDate models.NullDate
	HourOfDay    int
	HasHour      bool

	JourneyDate    models.NullDate
	DelayPeriod    string
	ReasonForDelay string

	DepartureStation string
	ArrivalStation   string
}

// Text возвращает значение колонки в текстовом виде.
// Второй результат false, если значение отсутствует или колонка не категориальная.
func (r Record) Text(column string) (string, bool) {
	var value string
	switch column {
	case models.ColTransactionID:
		value = r.TransactionID
	case models.ColPurchaseType:
		value = r.PurchaseType
	case models.ColPaymentMethod:
		value = r.PaymentMethod
	case models.ColRailcard:
		value = r.Railcard
	case models.ColTicketClass:
		value = r.TicketClass
	case models.ColTicketType:
		value = r.TicketType
	case models.ColJourneyStatus:
		value = r.JourneyStatus
	case models.ColRefundRequest:
		value = r.RefundRequest
	case models.ColDelayPeriod:
		value = r.DelayPeriod
	case models.ColReasonForDelay:
		value = r.ReasonForDelay
	case models.ColDepartureStationName:
		value = r.DepartureStation
	case models.ColArrivalStationName:
		value = r.ArrivalStation
	case models.ColPurchaseDate:
		value = r.PurchaseDate.Text()
	case models.ColJourneyDate:
		value = r.JourneyDate.Text()
	case models.ColMonth:
		if r.Month > 0 {
			value = strconv.Itoa(r.Month)
		}
	case models.ColYear:
		if r.Year > 0 {
			value = strconv.Itoa(r.Year)
		}
	case models.ColHourOfDay:
		if r.HasHour {
			value = strconv.Itoa(r.HourOfDay)
		}
	}
	return value, value != ""
}

// Dataset неизменяемая объединенная таблица, которая строится один раз при старте
type Dataset struct {
	records []Record
	columns map[string]bool
}

// NewDataset создает набор данных из готовых записей и списка присутствующих колонок
func NewDataset(records []Record, columns []string) *Dataset {
	present := make(map[string]bool, len(columns))
	for _, column := range columns {
		present[column] = true
	}
	return &Dataset{records: records, columns: present}
}

// Records возвращает записи; вызывающий код не должен их изменять
func (d *Dataset) Records() []Record {
	return d.records
}

// Has сообщает, присутствует ли колонка в объединенной таблице
func (d *Dataset) Has(column string) bool {
	return d.columns[column]
}

// Len количество записей
func (d *Dataset) Len() int {
	return len(d.records)
}
