package transform

import (
	"github.com/LilVoxy/rail_analytics/ETL/models"
	"github.com/LilVoxy/rail_analytics/ETL/utils"
)

// TimeDimensionProcessor отвечает за построение измерения времени покупки
type TimeDimensionProcessor struct {
	logger *utils.ETLLogger
}

// NewTimeDimensionProcessor создает новый экземпляр TimeDimensionProcessor
func NewTimeDimensionProcessor(logger *utils.ETLLogger) *TimeDimensionProcessor {
	return &TimeDimensionProcessor{logger: logger}
}

// ProcessTimeDimension строит измерение из уникальных пар (дата покупки, время покупки).
// Атрибуты строки измерения берутся из первой транзакции с данным ключом.
func (p *TimeDimensionProcessor) ProcessTimeDimension(transactions []models.RawTransaction) ([]models.TimeDimension, *KeyIndex[TimeKey]) {
	p.logger.Debug("Построение измерения времени...")

	index := NewKeyIndex[TimeKey]()
	dimensions := make([]models.TimeDimension, 0)

	for _, tx := range transactions {
		id, added := index.Add(NewTimeKey(tx))
		if !added {
			continue
		}

		dim := models.TimeDimension{
			ID:             id,
			PurchaseDate:   tx.PurchaseDate,
			TimeOfPurchase: tx.TimeOfPurchase,
		}
		if clock, ok := models.ParseClock(tx.TimeOfPurchase); ok {
			dim.HourOfDay = int(clock.Hours())
			dim.HasHour = true
		}
		dimensions = append(dimensions, dim)
	}

	p.logger.Debug("Измерение времени построено. Всего записей: %d", len(dimensions))
	return dimensions, index
}
