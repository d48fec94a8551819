package analytics

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/LilVoxy/rail_analytics/ETL/models"
	"github.com/LilVoxy/rail_analytics/database"
)

var allColumns = []string{
	models.ColTransactionID, models.ColPurchaseType, models.ColPaymentMethod, models.ColRailcard,
	models.ColTicketClass, models.ColTicketType, models.ColPrice, models.ColJourneyStatus,
	models.ColRefundRequest, models.ColMonth, models.ColYear, models.ColPurchaseDate,
	models.ColHourOfDay, models.ColJourneyDate, models.ColDelayPeriod, models.ColReasonForDelay,
	models.ColDepartureStationName, models.ColArrivalStationName,
}

func price(value string) decimal.NullDecimal {
	return decimal.NewNullDecimal(decimal.RequireFromString(value))
}

func record(id, station, ticketType, railcard, payment string, month int, amount string) database.Record {
	r := database.Record{
		TransactionID:    id,
		PurchaseType:     "Online",
		PaymentMethod:    payment,
		Railcard:         railcard,
		TicketClass:      "Standard",
		TicketType:       ticketType,
		JourneyStatus:    "On Time",
		RefundRequest:    "No",
		Month:            month,
		Year:             2024,
		PurchaseDate:     models.NewDate(2024, time.Month(month), 10),
		HourOfDay:        9,
		HasHour:          true,
		JourneyDate:      models.NewDate(2024, time.Month(month), 12),
		DelayPeriod:      "On Time",
		ReasonForDelay:   "No Delay",
		DepartureStation: station,
		ArrivalStation:   "Reading",
	}
	if amount != "" {
		r.Price = price(amount)
	}
	return r
}

func sampleDataset() *database.Dataset {
	records := []database.Record{
		record("t1", "London Paddington", "Advance", "Adult", "Contactless", 1, "43"),
		record("t2", "London Kings Cross", "Off-Peak", "None", "Credit Card", 1, "23"),
		record("t3", "London Paddington", "Anytime", "Adult", "Credit Card", 2, "12.50"),
		record("t4", "Manchester Piccadilly", "Advance", "Senior", "Debit Card", 3, ""),
		record("t5", "York", "Advance", "None", "Contactless", 4, "3"),
	}
	records[1].JourneyStatus = "Delayed"
	records[1].ReasonForDelay = "Signal Failure"
	records[1].RefundRequest = "Yes"
	records[2].HourOfDay = 18
	records[3].JourneyStatus = "Cancelled"
	records[3].ReasonForDelay = "Staffing"
	return database.NewDataset(records, allColumns)
}
