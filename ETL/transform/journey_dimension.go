package transform

import (
	"time"

	"github.com/LilVoxy/rail_analytics/ETL/models"
	"github.com/LilVoxy/rail_analytics/ETL/utils"
)

// Интервалы опоздания для колонки Delay_Period
const (
	DelayPeriodOnTime   = "On Time"
	DelayPeriodUpTo15   = "1-15 min"
	DelayPeriodUpTo30   = "16-30 min"
	DelayPeriodUpTo60   = "31-60 min"
	DelayPeriodOverHour = "60+ min"
)

// JourneyDimensionProcessor отвечает за построение измерения поездок
type JourneyDimensionProcessor struct {
	logger *utils.ETLLogger
}

// NewJourneyDimensionProcessor создает новый экземпляр JourneyDimensionProcessor
func NewJourneyDimensionProcessor(logger *utils.ETLLogger) *JourneyDimensionProcessor {
	return &JourneyDimensionProcessor{logger: logger}
}

// ProcessJourneyDimension строит измерение из уникальных комбинаций
// (дата поездки, отправление, прибытие, фактическое прибытие, причина задержки)
func (p *JourneyDimensionProcessor) ProcessJourneyDimension(transactions []models.RawTransaction) ([]models.JourneyDimension, *KeyIndex[JourneyKey]) {
	p.logger.Debug("Построение измерения поездок...")

	index := NewKeyIndex[JourneyKey]()
	dimensions := make([]models.JourneyDimension, 0)

	for _, tx := range transactions {
		id, added := index.Add(NewJourneyKey(tx))
		if !added {
			continue
		}

		dimensions = append(dimensions, models.JourneyDimension{
			ID:                id,
			JourneyDate:       tx.JourneyDate,
			DepartureTime:     tx.DepartureTime,
			ArrivalTime:       tx.ArrivalTime,
			ActualArrivalTime: tx.ActualArrivalTime,
			ReasonForDelay:    tx.ReasonForDelay,
			DelayPeriod:       DelayPeriod(tx.ArrivalTime, tx.ActualArrivalTime),
		})
	}

	p.logger.Debug("Измерение поездок построено. Всего записей: %d", len(dimensions))
	return dimensions, index
}

// DelayPeriod относит разницу между плановым и фактическим прибытием к интервалу.
// Пустая строка означает, что одно из времен отсутствует.
func DelayPeriod(arrival, actualArrival string) string {
	planned, ok := models.ParseClock(arrival)
	if !ok {
		return ""
	}
	actual, ok := models.ParseClock(actualArrival)
	if !ok {
		return ""
	}

	delay := actual - planned
	// Прибытие после полуночи
	if delay < -12*time.Hour {
		delay += 24 * time.Hour
	}

	switch minutes := delay.Minutes(); {
	case minutes <= 0:
		return DelayPeriodOnTime
	case minutes <= 15:
		return DelayPeriodUpTo15
	case minutes <= 30:
		return DelayPeriodUpTo30
	case minutes <= 60:
		return DelayPeriodUpTo60
	default:
		return DelayPeriodOverHour
	}
}
