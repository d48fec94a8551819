package analytics

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/LilVoxy/rail_analytics/database"
)

// Group результат агрегации по одному или двум ключам
type Group struct {
	Keys []string
	// Value сумма, среднее или количество в зависимости от агрегации
	Value decimal.Decimal
	// Count количество строк в группе
	Count int
	// priced количество строк группы с известной ценой
	priced int
}

// KeyFunc извлекает ключ группировки; false означает отсутствующее значение
type KeyFunc func(database.Record) (string, bool)

// Column ключ группировки по колонке объединенной таблицы
func Column(column string) KeyFunc {
	return func(r database.Record) (string, bool) {
		return r.Text(column)
	}
}

type groupKey struct {
	first, second string
}

// group собирает группы в порядке первого появления.
// Строки с отсутствующим ключом отбрасываются, отсутствующие цены не суммируются.
func group(records []database.Record, keys ...KeyFunc) []Group {
	index := make(map[groupKey]int)
	var groups []Group

	for _, record := range records {
		parts := make([]string, 0, len(keys))
		for _, key := range keys {
			value, ok := key(record)
			if !ok {
				break
			}
			parts = append(parts, value)
		}
		if len(parts) != len(keys) {
			continue
		}

		k := groupKey{first: parts[0]}
		if len(parts) > 1 {
			k.second = parts[1]
		}
		i, seen := index[k]
		if !seen {
			i = len(groups)
			index[k] = i
			groups = append(groups, Group{Keys: parts})
		}

		g := &groups[i]
		g.Count++
		if record.Price.Valid {
			g.Value = g.Value.Add(record.Price.Decimal)
			g.priced++
		}
	}
	return groups
}

func counted(groups []Group) []Group {
	for i := range groups {
		groups[i].Value = decimal.NewFromInt(int64(groups[i].Count))
	}
	return groups
}

// CountBy считает строки в каждой группе
func CountBy(records []database.Record, key KeyFunc) []Group {
	return counted(group(records, key))
}

// SumBy суммирует цену в каждой группе
func SumBy(records []database.Record, key KeyFunc) []Group {
	return group(records, key)
}

// MeanBy вычисляет среднюю цену в каждой группе.
// Группы без единой известной цены в результат не попадают.
func MeanBy(records []database.Record, key KeyFunc) []Group {
	groups := group(records, key)
	result := groups[:0]
	for _, g := range groups {
		if g.priced == 0 {
			continue
		}
		g.Value = g.Value.Div(decimal.NewFromInt(int64(g.priced)))
		result = append(result, g)
	}
	return result
}

// CountBy2 считает строки по паре ключей; второй ключ разделяет столбцы по цвету
func CountBy2(records []database.Record, key, split KeyFunc) []Group {
	return counted(group(records, key, split))
}

// SumBy2 суммирует цену по паре ключей
func SumBy2(records []database.Record, key, split KeyFunc) []Group {
	return group(records, key, split)
}

// ValueCounts считает строки по значениям ключа, пропуская исключенные значения
func ValueCounts(records []database.Record, key KeyFunc, exclude ...string) []Group {
	excluded := make(map[string]bool, len(exclude))
	for _, value := range exclude {
		excluded[value] = true
	}
	return CountBy(records, func(r database.Record) (string, bool) {
		value, ok := key(r)
		return value, ok && !excluded[value]
	})
}

// TopN сортирует группы по убыванию значения и оставляет первые n.
// При равенстве сохраняется порядок группировки.
func TopN(groups []Group, n int) []Group {
	sorted := append([]Group(nil), groups...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Value.GreaterThan(sorted[j].Value)
	})
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

// SortByKey сортирует группы по возрастанию первого ключа с заданным сравнением
func SortByKey(groups []Group, less func(a, b string) bool) []Group {
	sorted := append([]Group(nil), groups...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return less(sorted[i].Keys[0], sorted[j].Keys[0])
	})
	return sorted
}
