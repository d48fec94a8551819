package extractors

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/LilVoxy/rail_analytics/ETL/models"
	"github.com/LilVoxy/rail_analytics/ETL/utils"
)

// SheetReader читает табличный источник и возвращает строки вместе с заголовком в первой строке
type SheetReader interface {
	ReadRows(path string) ([][]string, error)
}

// Extractor координирует процесс извлечения данных из исходной таблицы
type Extractor struct {
	logger  *utils.ETLLogger
	readers map[string]SheetReader
	mapper  *TransactionExtractor
}

// NewExtractor создает новый экземпляр Extractor
func NewExtractor(logger *utils.ETLLogger, sheetName string) *Extractor {
	return &Extractor{
		logger: logger,
		readers: map[string]SheetReader{
			".xlsx": NewXLSXReader(sheetName),
			".xlsm": NewXLSXReader(sheetName),
			".csv":  NewCSVReader(),
		},
		mapper: NewTransactionExtractor(logger),
	}
}

// Extract читает исходный файл и превращает его строки в сырые транзакции.
// Отсутствующий или поврежденный файл является фатальной ошибкой.
func (e *Extractor) Extract(sourcePath string) (*models.ExtractedData, error) {
	startTime := time.Now()
	e.logger.LogExtractStart(sourcePath)

	if _, err := os.Stat(sourcePath); err != nil {
		return nil, fmt.Errorf("исходный файл недоступен: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(sourcePath))
	reader, ok := e.readers[ext]
	if !ok {
		return nil, fmt.Errorf("неподдерживаемый формат исходного файла %q", ext)
	}

	rows, err := reader.ReadRows(sourcePath)
	if err != nil {
		e.logger.Error("Ошибка при чтении %s: %v", sourcePath, err)
		return nil, fmt.Errorf("ошибка чтения исходного файла: %w", err)
	}

	extractedData, err := e.mapper.ExtractTransactions(rows)
	if err != nil {
		e.logger.Error("Ошибка при разборе %s: %v", sourcePath, err)
		return nil, fmt.Errorf("ошибка разбора исходного файла: %w", err)
	}
	extractedData.SourcePath = sourcePath

	e.logger.LogExtractComplete(len(extractedData.Transactions), time.Since(startTime))
	return extractedData, nil
}
