package config

import (
	"time"
)

// ETLConfig содержит конфигурацию для ETL-процесса
type ETLConfig struct {
	// Путь к исходной таблице продаж (xlsx или csv)
	SourcePath string `json:"source_path"`

	// Лист книги Excel; пустое значение означает первый лист
	SheetName string `json:"sheet_name"`

	// Каталог, в который пишутся таблицы звездной схемы
	OutputDir string `json:"output_dir"`

	// Каталог для файлов лога
	LogDir string `json:"log_dir"`

	// Интервал запуска ETL в режиме scheduled
	RunInterval time.Duration `json:"run_interval"`

	// Включение/отключение подробного логирования
	EnableDetailedLogging bool `json:"enable_detailed_logging"`
}

// Значения конфигурации по умолчанию
var DefaultETLConfig = ETLConfig{
	SourcePath:            "Data w_o analysis.xlsx",
	OutputDir:             ".",
	LogDir:                ".",
	RunInterval:           24 * time.Hour,
	EnableDetailedLogging: false,
}

// GetConfig возвращает конфигурацию ETL по умолчанию
func GetConfig() ETLConfig {
	return DefaultETLConfig
}
