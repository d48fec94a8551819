package transform

import (
	"fmt"
	"time"

	"github.com/LilVoxy/rail_analytics/ETL/models"
	"github.com/LilVoxy/rail_analytics/ETL/utils"
)

// Transformer координирует построение звездной схемы из сырых транзакций
type Transformer struct {
	logger              *utils.ETLLogger
	timeDimProcessor    *TimeDimensionProcessor
	journeyDimProcessor *JourneyDimensionProcessor
	locationProcessor   *LocationDimensionProcessor
	factsProcessor      *TransactionFactsProcessor
}

// NewTransformer создает новый экземпляр Transformer
func NewTransformer(logger *utils.ETLLogger) *Transformer {
	return &Transformer{
		logger:              logger,
		timeDimProcessor:    NewTimeDimensionProcessor(logger),
		journeyDimProcessor: NewJourneyDimensionProcessor(logger),
		locationProcessor:   NewLocationDimensionProcessor(logger),
		factsProcessor:      NewTransactionFactsProcessor(logger),
	}
}

// Transform выполняет полный процесс преобразования сырых транзакций
func (t *Transformer) Transform(extractedData *models.ExtractedData) (*models.TransformedData, error) {
	startTime := time.Now()
	t.logger.Info("Начало фазы Transform (Преобразование данных)")

	transformedData := &models.TransformedData{}
	transactions := extractedData.Transactions

	// 1. Измерение времени
	t.logger.Info("Построение измерения времени...")
	times, timeIndex := t.timeDimProcessor.ProcessTimeDimension(transactions)
	transformedData.Times = times

	// 2. Измерение поездок
	t.logger.Info("Построение измерения поездок...")
	journeys, journeyIndex := t.journeyDimProcessor.ProcessJourneyDimension(transactions)
	transformedData.Journeys = journeys

	indexes := DimensionIndexes{Times: timeIndex, Journeys: journeyIndex}

	// 3. Измерение станций, если источник содержит станции
	if extractedData.HasStations {
		t.logger.Info("Построение измерения станций...")
		locations, stationIndex := t.locationProcessor.ProcessLocationDimension(transactions)
		transformedData.Locations = locations
		indexes.Stations = stationIndex
	} else {
		t.logger.Warn("В источнике нет колонок станций, измерение станций не строится")
	}

	// 4. Факты продаж
	t.logger.Info("Построение фактов продаж...")
	facts, err := t.factsProcessor.ProcessTransactionFacts(transactions, indexes)
	if err != nil {
		t.logger.Error("Ошибка при построении фактов продаж: %v", err)
		return nil, fmt.Errorf("ошибка при построении фактов продаж: %w", err)
	}
	transformedData.Transactions = facts

	nullTimeIDs, nullJourneyIDs := CountNullKeys(facts)
	transformedData.Metadata = models.ETLMetadata{
		SourcePath:         extractedData.SourcePath,
		RowsProcessed:      len(transactions),
		TimeKeys:           timeIndex.Len(),
		JourneyKeys:        journeyIndex.Len(),
		Stations:           len(transformedData.Locations),
		NullTimeIDs:        nullTimeIDs,
		NullJourneyIDs:     nullJourneyIDs,
		LocationsGenerated: extractedData.HasStations,
	}

	t.logger.Info("Фаза Transform завершена. Длительность: %v", time.Since(startTime))
	return transformedData, nil
}
