package extractors

import (
	"fmt"
	"sort"
	"strings"

	"github.com/LilVoxy/rail_analytics/ETL/models"
	"github.com/LilVoxy/rail_analytics/ETL/utils"
)

// Заголовки исходной таблицы
const (
	srcTransactionID      = "Transaction ID"
	srcDateOfPurchase     = "Date of Purchase"
	srcTimeOfPurchase     = "Time of Purchase"
	srcPurchaseType       = "Purchase Type"
	srcPaymentMethod      = "Payment Method"
	srcRailcard           = "Railcard"
	srcTicketClass        = "Ticket Class"
	srcTicketType         = "Ticket Type"
	srcPrice              = "Price"
	srcDepartureStation   = "Departure Station"
	srcArrivalDestination = "Arrival Destination"
	srcDateOfJourney      = "Date of Journey"
	srcDepartureTime      = "Departure Time"
	srcArrivalTime        = "Arrival Time"
	srcActualArrivalTime  = "Actual Arrival Time"
	srcJourneyStatus      = "Journey Status"
	srcReasonForDelay     = "Reason for Delay"
	srcRefundRequest      = "Refund Request"
)

// Колонки, без которых невозможно построить ключи измерений
var requiredColumns = []string{
	srcTransactionID,
	srcDateOfPurchase,
	srcTimeOfPurchase,
	srcPrice,
	srcDateOfJourney,
	srcDepartureTime,
	srcArrivalTime,
	srcActualArrivalTime,
	srcReasonForDelay,
}

// TransactionExtractor превращает строки таблицы в сырые транзакции
type TransactionExtractor struct {
	logger *utils.ETLLogger
}

// NewTransactionExtractor создает новый экземпляр TransactionExtractor
func NewTransactionExtractor(logger *utils.ETLLogger) *TransactionExtractor {
	return &TransactionExtractor{logger: logger}
}

// ExtractTransactions разбирает строки, первая строка - заголовок
func (e *TransactionExtractor) ExtractTransactions(rows [][]string) (*models.ExtractedData, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("таблица не содержит заголовка")
	}

	columns := indexHeader(rows[0])

	var missing []string
	for _, name := range requiredColumns {
		if _, ok := columns[normalizeLabel(name)]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return nil, fmt.Errorf("отсутствуют обязательные колонки: %s", strings.Join(missing, ", "))
	}

	extractedData := &models.ExtractedData{
		HasStations: columns.has(srcDepartureStation) && columns.has(srcArrivalDestination),
		HasRefunds:  columns.has(srcRefundRequest),
	}

	skipped := 0
	for i, row := range rows[1:] {
		if isBlankRow(row) {
			skipped++
			continue
		}

		extractedData.Transactions = append(extractedData.Transactions, models.RawTransaction{
			Row:                i + 2,
			TransactionID:      columns.get(row, srcTransactionID),
			PurchaseDate:       models.ParseDate(columns.get(row, srcDateOfPurchase)),
			TimeOfPurchase:     models.ClockText(columns.get(row, srcTimeOfPurchase)),
			PurchaseType:       columns.get(row, srcPurchaseType),
			PaymentMethod:      columns.get(row, srcPaymentMethod),
			Railcard:           columns.get(row, srcRailcard),
			TicketClass:        columns.get(row, srcTicketClass),
			TicketType:         columns.get(row, srcTicketType),
			Price:              columns.get(row, srcPrice),
			DepartureStation:   columns.get(row, srcDepartureStation),
			ArrivalDestination: columns.get(row, srcArrivalDestination),
			JourneyDate:        models.ParseDate(columns.get(row, srcDateOfJourney)),
			DepartureTime:      models.ClockText(columns.get(row, srcDepartureTime)),
			ArrivalTime:        models.ClockText(columns.get(row, srcArrivalTime)),
			ActualArrivalTime:  models.ClockText(columns.get(row, srcActualArrivalTime)),
			JourneyStatus:      columns.get(row, srcJourneyStatus),
			ReasonForDelay:     columns.get(row, srcReasonForDelay),
			RefundRequest:      columns.get(row, srcRefundRequest),
		})
	}

	if skipped > 0 {
		e.logger.Debug("Пропущено пустых строк: %d", skipped)
	}
	if len(extractedData.Transactions) == 0 {
		e.logger.Warn("Исходная таблица не содержит транзакций")
	}

	return extractedData, nil
}

// headerIndex сопоставляет нормализованное имя колонки с ее позицией
type headerIndex map[string]int

func indexHeader(header []string) headerIndex {
	index := make(headerIndex, len(header))
	for i, label := range header {
		key := normalizeLabel(label)
		if _, exists := index[key]; !exists {
			index[key] = i
		}
	}
	return index
}

func (h headerIndex) has(label string) bool {
	_, ok := h[normalizeLabel(label)]
	return ok
}

// get возвращает значение колонки; короткие строки дополняются пустыми значениями
func (h headerIndex) get(row []string, label string) string {
	i, ok := h[normalizeLabel(label)]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

// normalizeLabel приводит "Date of Purchase" и "date_of_purchase" к одному виду
func normalizeLabel(label string) string {
	label = strings.TrimPrefix(label, "\ufeff")
	label = strings.ReplaceAll(label, "_", " ")
	return strings.ToLower(strings.Join(strings.Fields(label), " "))
}

func isBlankRow(row []string) bool {
	for _, value := range row {
		if strings.TrimSpace(value) != "" {
			return false
		}
	}
	return true
}
