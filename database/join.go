// database/join.go
package database

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrJoinSkipped возвращается, когда соединение невозможно и пропускается
var ErrJoinSkipped = errors.New("соединение пропущено")

// JoinSpec описывает левое соединение таблицы фактов с измерением
type JoinSpec struct {
	Name     string
	LeftKey  string
	RightKey string
	// Columns колонки измерения, которые переносятся в результат
	Columns []string
	// Rename переименовывает перенесенные колонки
	Rename map[string]string
}

// LeftJoin дополняет левую таблицу колонками правой. Количество строк
// левой таблицы сохраняется, при нескольких совпадениях берется первое.
// Колонка, уже существующая слева, не перезаписывается.
func LeftJoin(left, right *Table, spec JoinSpec) (*Table, error) {
	switch {
	case left.Empty():
		return left, fmt.Errorf("%s: таблица фактов пуста: %w", spec.Name, ErrJoinSkipped)
	case right.Empty():
		return left, fmt.Errorf("%s: таблица %s пуста: %w", spec.Name, right.Name, ErrJoinSkipped)
	case !left.Has(spec.LeftKey):
		return left, fmt.Errorf("%s: нет колонки %s в %s: %w", spec.Name, spec.LeftKey, left.Name, ErrJoinSkipped)
	case !right.Has(spec.RightKey):
		return left, fmt.Errorf("%s: нет колонки %s в %s: %w", spec.Name, spec.RightKey, right.Name, ErrJoinSkipped)
	}

	matches := make(map[string]int, right.Len())
	for i := range right.Rows {
		key := NormalizeID(right.Value(i, spec.RightKey))
		if key == "" {
			continue
		}
		if _, exists := matches[key]; !exists {
			matches[key] = i
		}
	}

	for _, column := range spec.Columns {
		target := column
		if renamed, ok := spec.Rename[column]; ok {
			target = renamed
		}
		if !right.Has(column) || left.Has(target) {
			continue
		}

		values := make([]string, left.Len())
		for i := range left.Rows {
			if j, ok := matches[NormalizeID(left.Value(i, spec.LeftKey))]; ok {
				values[i] = right.Value(j, column)
			}
		}
		left.addColumn(target, values)
	}

	return left, nil
}

// NormalizeID приводит идентификатор к тексту: "12.0" и " 12" становятся "12"
func NormalizeID(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}
	if _, err := strconv.ParseInt(value, 10, 64); err == nil {
		return value
	}
	number, err := strconv.ParseFloat(value, 64)
	if err != nil || math.IsInf(number, 0) || math.IsNaN(number) || number != math.Trunc(number) {
		return value
	}
	return strconv.FormatFloat(number, 'f', -1, 64)
}

// normalizeIDColumns приводит колонки идентификаторов к единому текстовому виду
func normalizeIDColumns(t *Table, columns ...string) {
	for _, column := range columns {
		if !t.Has(column) {
			continue
		}
		for i := range t.Rows {
			t.Set(i, column, NormalizeID(t.Value(i, column)))
		}
	}
}
