package load

import (
	"strconv"

	"github.com/LilVoxy/rail_analytics/ETL/models"
)

func timeDimensionRows(times []models.TimeDimension) [][]string {
	rows := make([][]string, 0, len(times))
	for _, dim := range times {
		day, month, year := "", "", ""
		if dim.PurchaseDate.Valid {
			day = strconv.Itoa(dim.PurchaseDate.Time.Day())
			month = strconv.Itoa(int(dim.PurchaseDate.Time.Month()))
			year = strconv.Itoa(dim.PurchaseDate.Time.Year())
		}
		hour := ""
		if dim.HasHour {
			hour = strconv.Itoa(dim.HourOfDay)
		}
		rows = append(rows, []string{
			strconv.Itoa(dim.ID),
			dim.PurchaseDate.Text(),
			dim.TimeOfPurchase,
			day,
			month,
			year,
			hour,
		})
	}
	return rows
}

func journeyDimensionRows(journeys []models.JourneyDimension) [][]string {
	rows := make([][]string, 0, len(journeys))
	for _, dim := range journeys {
		rows = append(rows, []string{
			strconv.Itoa(dim.ID),
			dim.JourneyDate.Text(),
			dim.DepartureTime,
			dim.ArrivalTime,
			dim.ActualArrivalTime,
			dim.ReasonForDelay,
			dim.DelayPeriod,
		})
	}
	return rows
}

func locationDimensionRows(locations []models.LocationDimension) [][]string {
	rows := make([][]string, 0, len(locations))
	for _, dim := range locations {
		rows = append(rows, []string{strconv.Itoa(dim.ID), dim.StationName})
	}
	return rows
}

func transactionFactRows(facts []models.TransactionFact) [][]string {
	rows := make([][]string, 0, len(facts))
	for _, fact := range facts {
		rows = append(rows, []string{
			fact.TransactionID,
			fact.PurchaseType,
			fact.PaymentMethod,
			fact.Railcard,
			fact.TicketClass,
			fact.TicketType,
			fact.Price,
			optionalID(fact.DepartureStationID),
			optionalID(fact.ArrivalStationID),
			fact.JourneyStatus,
			fact.RefundRequest,
			optionalID(fact.TimeID),
			optionalID(fact.JourneyID),
		})
	}
	return rows
}

// optionalID пишет пустую ячейку вместо нулевого идентификатора
func optionalID(id int) string {
	if id == 0 {
		return ""
	}
	return strconv.Itoa(id)
}
