package transform

import (
	"strings"

	"github.com/LilVoxy/rail_analytics/ETL/models"
)

// KeySeparator разделяет поля в текстовой форме составного ключа
const KeySeparator = " "

// TimeKey натуральный ключ измерения времени.
// Ключ строится одной функцией и для измерения, и для фактов.
type TimeKey struct {
	PurchaseDate   string
	TimeOfPurchase string
}

// NewTimeKey строит ключ времени из сырой транзакции
func NewTimeKey(tx models.RawTransaction) TimeKey {
	return TimeKey{
		PurchaseDate:   tx.PurchaseDate.String(),
		TimeOfPurchase: models.TextOrNull(tx.TimeOfPurchase),
	}
}

// String возвращает текстовую форму ключа для логов
func (k TimeKey) String() string {
	return strings.Join([]string{k.PurchaseDate, k.TimeOfPurchase}, KeySeparator)
}

// JourneyKey натуральный ключ измерения поездки
type JourneyKey struct {
	JourneyDate       string
	DepartureTime     string
	ArrivalTime       string
	ActualArrivalTime string
	ReasonForDelay    string
}

// NewJourneyKey строит ключ поездки из сырой транзакции
func NewJourneyKey(tx models.RawTransaction) JourneyKey {
	return JourneyKey{
		JourneyDate:       tx.JourneyDate.String(),
		DepartureTime:     models.TextOrNull(tx.DepartureTime),
		ArrivalTime:       models.TextOrNull(tx.ArrivalTime),
		ActualArrivalTime: models.TextOrNull(tx.ActualArrivalTime),
		ReasonForDelay:    models.TextOrNull(tx.ReasonForDelay),
	}
}

// String возвращает текстовую форму ключа для логов
func (k JourneyKey) String() string {
	return strings.Join([]string{
		k.JourneyDate,
		k.DepartureTime,
		k.ArrivalTime,
		k.ActualArrivalTime,
		k.ReasonForDelay,
	}, KeySeparator)
}

// StationKey натуральный ключ измерения станций
type StationKey string

// NewStationKey нормализует название станции; пустое название ключа не имеет
func NewStationKey(name string) (StationKey, bool) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", false
	}
	return StationKey(name), true
}
