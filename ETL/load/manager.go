package load

import (
	"fmt"
	"time"

	"github.com/LilVoxy/rail_analytics/ETL/models"
	"github.com/LilVoxy/rail_analytics/ETL/utils"
)

// LoadManager отвечает за управление процессом записи таблиц
type LoadManager struct {
	logger *utils.ETLLogger
	loader Loader
}

// NewLoadManager создает LoadManager, который пишет CSV-файлы в outputDir
func NewLoadManager(outputDir string, logger *utils.ETLLogger) *LoadManager {
	return NewLoadManagerWithLoader(NewCSVLoader(outputDir, logger), logger)
}

// NewLoadManagerWithLoader создает LoadManager с заданной реализацией Loader
func NewLoadManagerWithLoader(loader Loader, logger *utils.ETLLogger) *LoadManager {
	return &LoadManager{
		logger: logger,
		loader: loader,
	}
}

// Load выполняет фазу загрузки: либо публикуются все таблицы, либо ни одной
func (m *LoadManager) Load(transformedData *models.TransformedData) error {
	startTime := time.Now()
	m.logger.Info("Начало фазы Load (Запись таблиц)")

	if err := m.stage(transformedData); err != nil {
		m.loader.Rollback()
		return err
	}

	if err := m.loader.Commit(); err != nil {
		m.loader.Rollback()
		m.logger.Error("Ошибка при публикации таблиц: %v", err)
		return fmt.Errorf("ошибка при публикации таблиц: %w", err)
	}

	m.logger.Info("Фаза Load завершена. Длительность: %v", time.Since(startTime))
	return nil
}

func (m *LoadManager) stage(transformedData *models.TransformedData) error {
	// 1. Измерение времени
	m.logger.Info("Запись измерения времени...")
	if err := m.loader.LoadTimeDimension(transformedData.Times); err != nil {
		m.logger.Error("Ошибка при записи измерения времени: %v", err)
		return fmt.Errorf("ошибка при записи измерения времени: %w", err)
	}

	// 2. Измерение поездок
	m.logger.Info("Запись измерения поездок...")
	if err := m.loader.LoadJourneyDimension(transformedData.Journeys); err != nil {
		m.logger.Error("Ошибка при записи измерения поездок: %v", err)
		return fmt.Errorf("ошибка при записи измерения поездок: %w", err)
	}

	// 3. Измерение станций пишется только если ETL его построил,
	// иначе существующий dim_location.csv остается нетронутым
	if transformedData.Metadata.LocationsGenerated {
		m.logger.Info("Запись измерения станций...")
		if err := m.loader.LoadLocationDimension(transformedData.Locations); err != nil {
			m.logger.Error("Ошибка при записи измерения станций: %v", err)
			return fmt.Errorf("ошибка при записи измерения станций: %w", err)
		}
	}

	// 4. Факты продаж
	m.logger.Info("Запись фактов продаж...")
	if err := m.loader.LoadTransactionFacts(transformedData.Transactions); err != nil {
		m.logger.Error("Ошибка при записи фактов продаж: %v", err)
		return fmt.Errorf("ошибка при записи фактов продаж: %w", err)
	}

	return nil
}
