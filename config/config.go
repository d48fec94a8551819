package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config настройки сервера дашборда
type Config struct {
	// Addr адрес HTTP-сервера
	Addr string `env:"RAIL_ADDR" envDefault:":8050"`

	// DataDir каталог с CSV-файлами звездной схемы
	DataDir string `env:"RAIL_DATA_DIR" envDefault:"."`

	// PublicDir каталог со страницей и статикой
	PublicDir string `env:"RAIL_PUBLIC_DIR" envDefault:"public"`

	// AllowedOrigins источники, которым разрешены кросс-доменные запросы
	AllowedOrigins []string `env:"RAIL_ALLOWED_ORIGINS" envDefault:"*" envSeparator:","`
}

// Load читает необязательный файл .env и переменные окружения.
// Без переменных окружения возвращаются значения по умолчанию.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	// Отсутствующий .env не является ошибкой
	_ = godotenv.Load(envFiles...)

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("ошибка чтения переменных окружения: %w", err)
	}
	return cfg, nil
}
