package analytics

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/LilVoxy/rail_analytics/ETL/models"
	"github.com/LilVoxy/rail_analytics/database"
)

// Section раздел дашборда
type Section string

const (
	SectionOverview    Section = "overview"
	SectionRevenue     Section = "revenue"
	SectionJourney     Section = "journey"
	SectionPerformance Section = "performance"
)

// Sections все разделы в порядке отображения
var Sections = []Section{SectionOverview, SectionRevenue, SectionJourney, SectionPerformance}

// NoDelayReason категория, которая не показывается на графике причин задержек
const NoDelayReason = "No Delay"

// TopStations количество станций на графике выручки по станциям
const TopStations = 5

// ParseSection проверяет имя раздела
func ParseSection(name string) (Section, bool) {
	for _, section := range Sections {
		if string(section) == name {
			return section, true
		}
	}
	return "", false
}

// Summary сводные показатели раздела обзора
type Summary struct {
	Transactions      int     `json:"transactions"`
	Revenue           float64 `json:"revenue"`
	TransactionsLabel string  `json:"transactionsLabel"`
	RevenueLabel      string  `json:"revenueLabel"`
}

// SectionPayload данные одного раздела
type SectionPayload struct {
	Section Section  `json:"section"`
	Charts  []Chart  `json:"charts"`
	Summary *Summary `json:"summary,omitempty"`
}

var sectionCharts = map[Section][]chartSpec{
	SectionOverview: {
		{
			id:      "chart-transactions-hour",
			columns: []string{models.ColHourOfDay},
			build: func(records []database.Record) Chart {
				groups := SortByKey(CountBy(records, Column(models.ColHourOfDay)), lessNumeric)
				chart := singleSeries("Number of Transactions by Hour of Day", KindLine, groups)
				chart.XTitle, chart.YTitle = "Hour of Day", "Number of Transactions"
				return chart
			},
		},
		{
			id:      "chart-revenue-ticket",
			columns: []string{models.ColTicketType, models.ColPrice},
			build: func(records []database.Record) Chart {
				chart := singleSeries("Revenue by Ticket Type", KindBar, SumBy(records, Column(models.ColTicketType)))
				chart.XTitle, chart.YTitle = "Ticket Type", "Revenue (£)"
				return chart
			},
		},
		{
			id:      "chart-daily-transactions",
			columns: []string{models.ColPurchaseDate},
			build: func(records []database.Record) Chart {
				groups := SortByKey(CountBy(records, Column(models.ColPurchaseDate)), lessDate)
				chart := singleSeries("Daily Number of Transactions", KindLine, groups)
				chart.XTitle, chart.YTitle = "Date", "Number of Transactions"
				return chart
			},
		},
		{
			id:      "chart-journey-status",
			columns: []string{models.ColJourneyStatus},
			build: func(records []database.Record) Chart {
				return singleSeries("Journey Status Distribution", KindPie, ValueCounts(records, Column(models.ColJourneyStatus)))
			},
		},
	},
	SectionRevenue: {
		{
			id:      "chart-daily-revenue",
			columns: []string{models.ColJourneyDate, models.ColPrice},
			build: func(records []database.Record) Chart {
				groups := SortByKey(SumBy(records, Column(models.ColJourneyDate)), lessDate)
				chart := singleSeries("Daily Revenue", KindLine, groups)
				chart.XTitle, chart.YTitle = "Date", "Revenue (£)"
				return chart
			},
		},
		{
			id:      "chart-ticket-class-revenue",
			columns: []string{models.ColTicketClass, models.ColPrice},
			build: func(records []database.Record) Chart {
				return singleSeries("Revenue Distribution by Ticket Class", KindPie, SumBy(records, Column(models.ColTicketClass)))
			},
		},
		{
			id:      "chart-station-revenue",
			columns: []string{models.ColDepartureStationName, models.ColPrice},
			build: func(records []database.Record) Chart {
				groups := TopN(SumBy(records, Column(models.ColDepartureStationName)), TopStations)
				chart := singleSeries("Revenue by Departure Station", KindBar, groups)
				chart.XTitle, chart.YTitle = "Revenue", "Station"
				chart.Horizontal = true
				return chart
			},
		},
	},
	SectionJourney: {
		{
			id:      "chart-delay-reasons",
			columns: []string{models.ColReasonForDelay},
			build: func(records []database.Record) Chart {
				chart := singleSeries("Delay Reasons", KindBar, ValueCounts(records, Column(models.ColReasonForDelay), NoDelayReason))
				chart.XTitle, chart.YTitle = "Count", "Reason"
				chart.Horizontal = true
				return chart
			},
		},
		{
			id:      "chart-railcard-usage",
			columns: []string{models.ColRailcard},
			build: func(records []database.Record) Chart {
				chart := singleSeries("Railcard Usage", KindBar, ValueCounts(records, Column(models.ColRailcard)))
				chart.XTitle, chart.YTitle = "Railcard Type", "Number of Transactions"
				return chart
			},
		},
		{
			id:      "chart-avg-price-ticket",
			columns: []string{models.ColTicketType, models.ColPrice},
			build: func(records []database.Record) Chart {
				chart := singleSeries("Average Price by Ticket Type", KindBar, MeanBy(records, Column(models.ColTicketType)))
				chart.XTitle, chart.YTitle = "Ticket Type", "Average Price (£)"
				return chart
			},
		},
		{
			id:      "chart-purchase-type",
			columns: []string{models.ColPurchaseType},
			build: func(records []database.Record) Chart {
				return singleSeries("Number of Transactions by Purchase Type", KindPie, ValueCounts(records, Column(models.ColPurchaseType)))
			},
		},
	},
	SectionPerformance: {
		{
			id:      "chart-revenue-refunded",
			columns: []string{models.ColJourneyStatus, models.ColRefundRequest, models.ColPrice},
			build: func(records []database.Record) Chart {
				groups := SumBy2(records, Column(models.ColJourneyStatus), Column(models.ColRefundRequest))
				return Chart{
					Title:  "Revenue by Journey Status and Refund Request",
					Kind:   KindGroupedBar,
					XTitle: "Journey Status",
					YTitle: "Revenue (£)",
					Series: splitSeries(groups),
				}
			},
		},
		{
			id:      "chart-refunded-proportion",
			columns: []string{models.ColRefundRequest},
			build: func(records []database.Record) Chart {
				return singleSeries("Proportion of Refund Requests", KindPie, ValueCounts(records, Column(models.ColRefundRequest)))
			},
		},
		{
			id:      "chart-refunded-count",
			columns: []string{models.ColJourneyStatus, models.ColRefundRequest},
			build: func(records []database.Record) Chart {
				groups := CountBy2(records, Column(models.ColJourneyStatus), Column(models.ColRefundRequest))
				return Chart{
					Title:      "Refund Requests by Journey Status",
					Kind:       KindGroupedBar,
					XTitle:     "Number of Transactions",
					YTitle:     "Journey Status",
					Horizontal: true,
					Series:     splitSeries(groups),
				}
			},
		},
		{
			id:      "chart-payment-method",
			columns: []string{models.ColPaymentMethod},
			build: func(records []database.Record) Chart {
				return singleSeries("Payment Method Distribution", KindPie, ValueCounts(records, Column(models.ColPaymentMethod)))
			},
		},
	},
}

// ComputeSection фильтрует набор данных и строит все графики раздела.
// Разделы не разделяют промежуточных результатов, кроме фильтрации.
func ComputeSection(ds *database.Dataset, section Section, filters Filters) SectionPayload {
	records := filters.Apply(ds)

	specs := sectionCharts[section]
	payload := SectionPayload{
		Section: section,
		Charts:  make([]Chart, 0, len(specs)),
	}
	for _, spec := range specs {
		payload.Charts = append(payload.Charts, spec.render(ds, records))
	}

	if section == SectionOverview {
		payload.Summary = summarize(records)
	}
	return payload
}

// ComputeAll строит все разделы для одного набора фильтров
func ComputeAll(ds *database.Dataset, filters Filters) []SectionPayload {
	payloads := make([]SectionPayload, 0, len(Sections))
	for _, section := range Sections {
		payloads = append(payloads, ComputeSection(ds, section, filters))
	}
	return payloads
}

func summarize(records []database.Record) *Summary {
	revenue := decimal.Zero
	for _, record := range records {
		if record.Price.Valid {
			revenue = revenue.Add(record.Price.Decimal)
		}
	}
	value := revenue.Round(2).InexactFloat64()
	printer := message.NewPrinter(language.BritishEnglish)
	return &Summary{
		Transactions:      len(records),
		Revenue:           value,
		TransactionsLabel: printer.Sprintf("%d transactions", len(records)),
		RevenueLabel:      printer.Sprintf("£%.2f revenue", value),
	}
}
