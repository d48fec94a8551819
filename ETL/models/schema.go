package models

// Имена файлов звездной схемы. ETL пишет их, дашборд читает.
const (
	FactTransactionsFile  = "fact_transactions.csv"
	TimeDimensionFile     = "dim_time.csv"
	JourneyDimensionFile  = "dim_journey.csv"
	LocationDimensionFile = "dim_location.csv"
)

// Колонки таблицы фактов
const (
	ColTransactionID      = "Transaction_ID"
	ColPurchaseType       = "Purchase_Type"
	ColPaymentMethod      = "Payment_Method"
	ColRailcard           = "Railcard"
	ColTicketClass        = "Ticket_Class"
	ColTicketType         = "Ticket_Type"
	ColPrice              = "Price"
	ColDepartureStationID = "Departure_Station_ID"
	ColArrivalStationID   = "Arrival_Station_ID"
	ColJourneyStatus      = "Journey_Status"
	ColRefundRequest      = "Refund_Request"
	ColTimeID             = "Time_ID"
	ColJourneyID          = "Journey_ID"
)

// Колонки измерения времени
const (
	ColPurchaseDate   = "Purchase_Date"
	ColTimeOfPurchase = "Time_of_Purchase"
	ColDay            = "Day"
	ColMonth          = "Month"
	ColYear           = "Year"
	ColHourOfDay      = "Hour_of_Day"
)

// Колонки измерения поездки
const (
	ColJourneyDate       = "Journey_Date"
	ColDepartureTime     = "Departure_Time"
	ColArrivalTime       = "Arrival_Time"
	ColActualArrivalTime = "Actual_Arrival_Time"
	ColReasonForDelay    = "Reason_for_Delay"
	ColDelayPeriod       = "Delay_Period"
)

// Колонки измерения станций
const (
	ColStationID   = "Station_ID"
	ColStationName = "Station_Name"

	// Колонки, которые появляются в объединенной таблице дашборда
	ColDepartureStationName = "Departure_Station_Name"
	ColArrivalStationName   = "Arrival_Station_Name"
)

// Заголовки выходных таблиц в порядке колонок
var (
	FactTransactionsHeader = []string{
		ColTransactionID, ColPurchaseType, ColPaymentMethod, ColRailcard,
		ColTicketClass, ColTicketType, ColPrice, ColDepartureStationID,
		ColArrivalStationID, ColJourneyStatus, ColRefundRequest, ColTimeID, ColJourneyID,
	}
	TimeDimensionHeader = []string{
		ColTimeID, ColPurchaseDate, ColTimeOfPurchase, ColDay, ColMonth, ColYear, ColHourOfDay,
	}
	JourneyDimensionHeader = []string{
		ColJourneyID, ColJourneyDate, ColDepartureTime, ColArrivalTime,
		ColActualArrivalTime, ColReasonForDelay, ColDelayPeriod,
	}
	LocationDimensionHeader = []string{ColStationID, ColStationName}
)
