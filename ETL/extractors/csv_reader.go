package extractors

import (
	"encoding/csv"
	"fmt"
	"os"
)

// CSVReader читает исходную таблицу в формате CSV
type CSVReader struct{}

// NewCSVReader создает новый экземпляр CSVReader
func NewCSVReader() *CSVReader {
	return &CSVReader{}
}

// ReadRows возвращает все строки файла
func (r *CSVReader) ReadRows(path string) ([][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ошибка открытия файла: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("ошибка разбора CSV: %w", err)
	}
	return rows, nil
}
