package transform

import (
	"github.com/LilVoxy/rail_analytics/ETL/models"
	"github.com/LilVoxy/rail_analytics/ETL/utils"
)

// LocationDimensionProcessor отвечает за построение измерения станций
type LocationDimensionProcessor struct {
	logger *utils.ETLLogger
}

// NewLocationDimensionProcessor создает новый экземпляр LocationDimensionProcessor
func NewLocationDimensionProcessor(logger *utils.ETLLogger) *LocationDimensionProcessor {
	return &LocationDimensionProcessor{logger: logger}
}

// ProcessLocationDimension собирает станции отправления и прибытия.
// Внутри строки станция отправления получает идентификатор раньше станции прибытия.
func (p *LocationDimensionProcessor) ProcessLocationDimension(transactions []models.RawTransaction) ([]models.LocationDimension, *KeyIndex[StationKey]) {
	p.logger.Debug("Построение измерения станций...")

	index := NewKeyIndex[StationKey]()
	dimensions := make([]models.LocationDimension, 0)

	for _, tx := range transactions {
		for _, name := range []string{tx.DepartureStation, tx.ArrivalDestination} {
			key, ok := NewStationKey(name)
			if !ok {
				continue
			}
			if id, added := index.Add(key); added {
				dimensions = append(dimensions, models.LocationDimension{ID: id, StationName: string(key)})
			}
		}
	}

	p.logger.Debug("Измерение станций построено. Всего станций: %d", len(dimensions))
	return dimensions, index
}
