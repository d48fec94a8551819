package models

// TimeDimension представляет измерение времени покупки
type TimeDimension struct {
	ID             int
	PurchaseDate   NullDate
	TimeOfPurchase string
	HourOfDay      int
	HasHour        bool
}

// JourneyDimension представляет измерение поездки
type JourneyDimension struct {
	ID                int
	JourneyDate       NullDate
	DepartureTime     string
	ArrivalTime       string
	ActualArrivalTime string
	ReasonForDelay    string
	DelayPeriod       string
}

// LocationDimension представляет измерение станций
type LocationDimension struct {
	ID          int
	StationName string
}

// TransactionFact представляет факт продажи билета.
// Нулевые идентификаторы станций означают отсутствие станции в источнике.
type TransactionFact struct {
	TransactionID      string
	PurchaseType       string
	PaymentMethod      string
	Railcard           string
	TicketClass        string
	TicketType         string
	Price              string
	DepartureStationID int
	ArrivalStationID   int
	JourneyStatus      string
	RefundRequest      string
	TimeID             int
	JourneyID          int
}

// ETLMetadata содержит метаданные о запуске ETL
type ETLMetadata struct {
	SourcePath         string
	RowsProcessed      int
	TimeKeys           int
	JourneyKeys        int
	Stations           int
	NullTimeIDs        int
	NullJourneyIDs     int
	LocationsGenerated bool
}
