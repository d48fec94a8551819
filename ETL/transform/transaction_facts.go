package transform

import (
	"fmt"

	"github.com/hashicorp/go-multierror"

	"github.com/LilVoxy/rail_analytics/ETL/models"
	"github.com/LilVoxy/rail_analytics/ETL/utils"
)

// DimensionIndexes содержит индексы ключей, по которым разрешаются внешние ключи фактов
type DimensionIndexes struct {
	Times    *KeyIndex[TimeKey]
	Journeys *KeyIndex[JourneyKey]
	// Stations может быть nil, если в источнике нет колонок станций
	Stations *KeyIndex[StationKey]
}

// TransactionFactsProcessor отвечает за построение таблицы фактов продаж
type TransactionFactsProcessor struct {
	logger *utils.ETLLogger
}

// NewTransactionFactsProcessor создает новый экземпляр TransactionFactsProcessor
func NewTransactionFactsProcessor(logger *utils.ETLLogger) *TransactionFactsProcessor {
	return &TransactionFactsProcessor{logger: logger}
}

// ProcessTransactionFacts строит по одному факту на каждую исходную транзакцию.
// Каждый факт обязан получить Time_ID и Journey_ID; иначе возвращается ошибка со списком строк.
func (p *TransactionFactsProcessor) ProcessTransactionFacts(transactions []models.RawTransaction, idx DimensionIndexes) ([]models.TransactionFact, error) {
	p.logger.Debug("Построение фактов продаж...")

	facts := make([]models.TransactionFact, 0, len(transactions))
	var result *multierror.Error

	for _, tx := range transactions {
		timeKey := NewTimeKey(tx)
		timeID, ok := idx.Times.Resolve(timeKey)
		if !ok {
			result = multierror.Append(result, fmt.Errorf("строка %d: ключ времени %q не найден", tx.Row, timeKey))
		}

		journeyKey := NewJourneyKey(tx)
		journeyID, ok := idx.Journeys.Resolve(journeyKey)
		if !ok {
			result = multierror.Append(result, fmt.Errorf("строка %d: ключ поездки %q не найден", tx.Row, journeyKey))
		}

		facts = append(facts, models.TransactionFact{
			TransactionID:      tx.TransactionID,
			PurchaseType:       tx.PurchaseType,
			PaymentMethod:      tx.PaymentMethod,
			Railcard:           tx.Railcard,
			TicketClass:        tx.TicketClass,
			TicketType:         tx.TicketType,
			Price:              tx.Price,
			DepartureStationID: resolveStation(idx.Stations, tx.DepartureStation),
			ArrivalStationID:   resolveStation(idx.Stations, tx.ArrivalDestination),
			JourneyStatus:      tx.JourneyStatus,
			RefundRequest:      tx.RefundRequest,
			TimeID:             timeID,
			JourneyID:          journeyID,
		})
	}

	if err := result.ErrorOrNil(); err != nil {
		return nil, fmt.Errorf("не удалось разрешить ключи измерений: %w", err)
	}

	p.logger.Debug("Построено фактов: %d", len(facts))
	return facts, nil
}

func resolveStation(index *KeyIndex[StationKey], name string) int {
	if index == nil {
		return 0
	}
	key, ok := NewStationKey(name)
	if !ok {
		return 0
	}
	id, _ := index.Resolve(key)
	return id
}

// CountNullKeys считает факты без Time_ID и Journey_ID
func CountNullKeys(facts []models.TransactionFact) (nullTimeIDs, nullJourneyIDs int) {
	for _, fact := range facts {
		if fact.TimeID == 0 {
			nullTimeIDs++
		}
		if fact.JourneyID == 0 {
			nullJourneyIDs++
		}
	}
	return nullTimeIDs, nullJourneyIDs
}
