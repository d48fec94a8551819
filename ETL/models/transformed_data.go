package models

// TransformedData содержит трансформированные данные для записи в файлы
type TransformedData struct {
	// Измерения
	Times     []TimeDimension
	Journeys  []JourneyDimension
	Locations []LocationDimension

	// Факты
	Transactions []TransactionFact

	// Метаданные
	Metadata ETLMetadata
}
