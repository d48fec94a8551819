package analytics

import (
	"log"
	"strconv"

	"github.com/LilVoxy/rail_analytics/database"
)

// NoDataTitle заголовок графика-заглушки
const NoDataTitle = "No Data Available"

// ChartKind тип графика на странице
type ChartKind string

const (
	KindLine       ChartKind = "line"
	KindBar        ChartKind = "bar"
	KindPie        ChartKind = "pie"
	KindGroupedBar ChartKind = "groupedBar"
)

// Point точка ряда данных
type Point struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// Series ряд данных; у сгруппированных столбцов Name - значение второго ключа
type Series struct {
	Name   string  `json:"name,omitempty"`
	Points []Point `json:"points"`
}

// Chart готовые к отрисовке данные графика
type Chart struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	NoData     bool      `json:"noData,omitempty"`
	Kind       ChartKind `json:"kind,omitempty"`
	XTitle     string    `json:"xTitle,omitempty"`
	YTitle     string    `json:"yTitle,omitempty"`
	Horizontal bool      `json:"horizontal,omitempty"`
	Series     []Series  `json:"series,omitempty"`
}

// NoDataChart график-заглушка для пустой выборки или невозможного расчета
func NoDataChart(id string) Chart {
	return Chart{ID: id, Title: NoDataTitle, NoData: true}
}

// points превращает одноключевые группы в точки
func points(groups []Group) []Point {
	result := make([]Point, 0, len(groups))
	for _, g := range groups {
		result = append(result, Point{Label: g.Keys[0], Value: g.Value.InexactFloat64()})
	}
	return result
}

// splitSeries раскладывает двухключевые группы в ряды по второму ключу.
// Порядок рядов и точек внутри ряда соответствует порядку первого появления.
func splitSeries(groups []Group) []Series {
	index := make(map[string]int)
	var series []Series
	for _, g := range groups {
		name := g.Keys[1]
		i, ok := index[name]
		if !ok {
			i = len(series)
			index[name] = i
			series = append(series, Series{Name: name})
		}
		series[i].Points = append(series[i].Points, Point{Label: g.Keys[0], Value: g.Value.InexactFloat64()})
	}
	return series
}

// singleSeries график с одним рядом
func singleSeries(title string, kind ChartKind, groups []Group) Chart {
	return Chart{Title: title, Kind: kind, Series: []Series{{Points: points(groups)}}}
}

func (c Chart) empty() bool {
	for _, s := range c.Series {
		if len(s.Points) > 0 {
			return false
		}
	}
	return true
}

// Сравнения для временных осей
func lessNumeric(a, b string) bool {
	x, errA := strconv.Atoi(a)
	y, errB := strconv.Atoi(b)
	if errA != nil || errB != nil {
		return a < b
	}
	return x < y
}

// Даты в формате 2006-01-02 упорядочиваются как строки
func lessDate(a, b string) bool {
	return a < b
}

// chartSpec описывает один график раздела
type chartSpec struct {
	id      string
	columns []string
	build   func(records []database.Record) Chart
}

// render строит график или заглушку. Паника при расчете превращается в заглушку.
func (s chartSpec) render(ds *database.Dataset, records []database.Record) (chart Chart) {
	if len(records) == 0 {
		return NoDataChart(s.id)
	}
	for _, column := range s.columns {
		if !ds.Has(column) {
			return NoDataChart(s.id)
		}
	}

	defer func() {
		if r := recover(); r != nil {
			log.Printf("❌ Паника при расчете графика %s: %v", s.id, r)
			chart = NoDataChart(s.id)
		}
	}()

	chart = s.build(records)
	chart.ID = s.id
	if chart.empty() {
		return NoDataChart(s.id)
	}
	return chart
}
