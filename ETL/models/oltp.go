package models

// RawTransaction представляет одну строку исходной таблицы продаж билетов.
// Пустая строка в текстовом поле означает отсутствующее значение.
type RawTransaction struct {
	// Номер строки в исходном файле (для диагностики)
	Row int

	TransactionID  string
	PurchaseDate   NullDate
	TimeOfPurchase string
	PurchaseType   string
	PaymentMethod  string
	Railcard       string
	TicketClass    string
	TicketType     string
	Price          string

	DepartureStation   string
	ArrivalDestination string

	JourneyDate       NullDate
	DepartureTime     string
	ArrivalTime       string
	ActualArrivalTime string
	JourneyStatus     string
	ReasonForDelay    string
	RefundRequest     string
}

// ExtractedData содержит данные, извлечённые из исходной таблицы
type ExtractedData struct {
	SourcePath   string
	Transactions []RawTransaction

	// Наличие необязательных колонок в источнике
	HasStations bool
	HasRefunds  bool
}
