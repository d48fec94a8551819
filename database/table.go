// database/table.go
package database

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
)

// Table текстовая таблица, загруженная из CSV-файла
type Table struct {
	Name    string
	Columns []string
	Rows    [][]string
	index   map[string]int
}

// NewTable создает таблицу; метки колонок обрезаются от пробелов,
// короткие строки дополняются пустыми значениями
func NewTable(name string, columns []string, rows [][]string) *Table {
	t := &Table{
		Name:    name,
		Columns: make([]string, len(columns)),
		index:   make(map[string]int, len(columns)),
	}
	for i, column := range columns {
		column = strings.TrimSpace(strings.TrimPrefix(column, "\ufeff"))
		t.Columns[i] = column
		if _, exists := t.index[column]; !exists {
			t.index[column] = i
		}
	}

	t.Rows = make([][]string, 0, len(rows))
	for _, row := range rows {
		if len(row) < len(columns) {
			padded := make([]string, len(columns))
			copy(padded, row)
			row = padded
		}
		t.Rows = append(t.Rows, row)
	}
	return t
}

// EmptyTable таблица без колонок и строк
func EmptyTable(name string) *Table {
	return NewTable(name, nil, nil)
}

// Has проверяет наличие колонки
func (t *Table) Has(column string) bool {
	_, ok := t.index[column]
	return ok
}

// Value возвращает значение колонки в строке; отсутствующая колонка дает пустую строку
func (t *Table) Value(row int, column string) string {
	i, ok := t.index[column]
	if !ok || i >= len(t.Rows[row]) {
		return ""
	}
	return t.Rows[row][i]
}

// Set заменяет значение существующей колонки
func (t *Table) Set(row int, column, value string) {
	if i, ok := t.index[column]; ok {
		t.Rows[row][i] = value
	}
}

// Len количество строк
func (t *Table) Len() int {
	return len(t.Rows)
}

// Empty сообщает, что в таблице нет строк
func (t *Table) Empty() bool {
	return len(t.Rows) == 0
}

// addColumn добавляет колонку со значениями для каждой строки
func (t *Table) addColumn(column string, values []string) {
	t.index[column] = len(t.Columns)
	t.Columns = append(t.Columns, column)
	for i := range t.Rows {
		t.Rows[i] = append(t.Rows[i], values[i])
	}
}

// LoadTable читает CSV-файл. Если файл недоступен или поврежден,
// возвращается пустая таблица вместе с ошибкой, работа продолжается.
func LoadTable(path string) (*Table, error) {
	name := filepath.Base(path)

	file, err := os.Open(path)
	if err != nil {
		log.Printf("⚠️ Таблица %s недоступна, используется пустая таблица: %v", name, err)
		return EmptyTable(name), fmt.Errorf("ошибка открытия %s: %w", name, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		log.Printf("⚠️ Таблица %s пуста", name)
		return EmptyTable(name), nil
	}
	if err != nil {
		log.Printf("⚠️ Не удалось прочитать заголовок %s: %v", name, err)
		return EmptyTable(name), fmt.Errorf("ошибка чтения заголовка %s: %w", name, err)
	}

	rows, err := reader.ReadAll()
	if err != nil {
		log.Printf("⚠️ Не удалось прочитать строки %s: %v", name, err)
		return EmptyTable(name), fmt.Errorf("ошибка чтения строк %s: %w", name, err)
	}

	table := NewTable(name, header, rows)
	log.Printf("📄 Загружена таблица %s: %d строк, колонки %v", name, table.Len(), table.Columns)
	return table, nil
}
