package load

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/LilVoxy/rail_analytics/ETL/models"
	"github.com/LilVoxy/rail_analytics/ETL/utils"
)

// Loader интерфейс для записи таблиц звездной схемы
type Loader interface {
	// LoadTimeDimension записывает измерение времени
	LoadTimeDimension(times []models.TimeDimension) error

	// LoadJourneyDimension записывает измерение поездок
	LoadJourneyDimension(journeys []models.JourneyDimension) error

	// LoadLocationDimension записывает измерение станций
	LoadLocationDimension(locations []models.LocationDimension) error

	// LoadTransactionFacts записывает факты продаж
	LoadTransactionFacts(facts []models.TransactionFact) error

	// Commit публикует все записанные таблицы
	Commit() error

	// Rollback удаляет неопубликованные таблицы
	Rollback()
}

// stagedFile временный файл, который при фиксации переименовывается в итоговый
type stagedFile struct {
	tempPath  string
	finalPath string
	// backupPath прежняя версия итогового файла на время фиксации
	backupPath string
	published  bool
}

// CSVLoader реализация Loader, которая пишет CSV-файлы в каталог.
// Таблицы сначала пишутся во временные файлы, поэтому частичного результата не бывает.
type CSVLoader struct {
	outputDir string
	logger    *utils.ETLLogger
	staged    []stagedFile
	rename    func(oldPath, newPath string) error
}

// NewCSVLoader создает новый экземпляр CSVLoader
func NewCSVLoader(outputDir string, logger *utils.ETLLogger) *CSVLoader {
	return &CSVLoader{
		outputDir: outputDir,
		logger:    logger,
		rename:    os.Rename,
	}
}

// LoadTimeDimension записывает измерение времени
func (l *CSVLoader) LoadTimeDimension(times []models.TimeDimension) error {
	return l.writeTable(models.TimeDimensionFile, models.TimeDimensionHeader, timeDimensionRows(times))
}

// LoadJourneyDimension записывает измерение поездок
func (l *CSVLoader) LoadJourneyDimension(journeys []models.JourneyDimension) error {
	return l.writeTable(models.JourneyDimensionFile, models.JourneyDimensionHeader, journeyDimensionRows(journeys))
}

// LoadLocationDimension записывает измерение станций
func (l *CSVLoader) LoadLocationDimension(locations []models.LocationDimension) error {
	return l.writeTable(models.LocationDimensionFile, models.LocationDimensionHeader, locationDimensionRows(locations))
}

// LoadTransactionFacts записывает факты продаж
func (l *CSVLoader) LoadTransactionFacts(facts []models.TransactionFact) error {
	return l.writeTable(models.FactTransactionsFile, models.FactTransactionsHeader, transactionFactRows(facts))
}

// writeTable пишет таблицу во временный файл рядом с итоговым
func (l *CSVLoader) writeTable(fileName string, header []string, rows [][]string) error {
	if err := os.MkdirAll(l.outputDir, 0755); err != nil {
		return fmt.Errorf("ошибка создания каталога %s: %w", l.outputDir, err)
	}

	file, err := os.CreateTemp(l.outputDir, "."+fileName+"-*.tmp")
	if err != nil {
		return fmt.Errorf("ошибка создания временного файла для %s: %w", fileName, err)
	}
	staged := stagedFile{tempPath: file.Name(), finalPath: filepath.Join(l.outputDir, fileName)}
	l.staged = append(l.staged, staged)

	writer := csv.NewWriter(file)
	if err := writer.Write(header); err != nil {
		file.Close()
		return fmt.Errorf("ошибка записи заголовка %s: %w", fileName, err)
	}
	if err := writer.WriteAll(rows); err != nil {
		file.Close()
		return fmt.Errorf("ошибка записи строк %s: %w", fileName, err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("ошибка закрытия %s: %w", fileName, err)
	}

	l.logger.Debug("Подготовлена таблица %s: %d строк", fileName, len(rows))
	return nil
}

// Commit переименовывает временные файлы в итоговые в порядке записи, факты публикуются последними.
// Прежние версии файлов откладываются и возвращаются на место, если какое-то переименование не удалось.
func (l *CSVLoader) Commit() error {
	for i := range l.staged {
		staged := &l.staged[i]
		if _, err := os.Stat(staged.finalPath); err != nil {
			continue
		}
		backup := staged.tempPath + ".prev"
		if err := l.rename(staged.finalPath, backup); err != nil {
			l.restore()
			return fmt.Errorf("ошибка резервирования %s: %w", staged.finalPath, err)
		}
		staged.backupPath = backup
	}

	for i := range l.staged {
		staged := &l.staged[i]
		if err := l.rename(staged.tempPath, staged.finalPath); err != nil {
			l.restore()
			return fmt.Errorf("ошибка публикации %s: %w", staged.finalPath, err)
		}
		staged.published = true
		l.logger.Info("Записан файл %s", staged.finalPath)
	}

	for _, staged := range l.staged {
		if staged.backupPath == "" {
			continue
		}
		if err := os.Remove(staged.backupPath); err != nil {
			l.logger.Error("Не удалось удалить прежнюю версию %s: %v", staged.backupPath, err)
		}
	}
	l.staged = nil
	return nil
}

// restore возвращает опубликованные файлы во временные и восстанавливает прежние версии
func (l *CSVLoader) restore() {
	for i := range l.staged {
		staged := &l.staged[i]
		if staged.published {
			if err := l.rename(staged.finalPath, staged.tempPath); err != nil {
				l.logger.Error("Не удалось отозвать %s: %v", staged.finalPath, err)
			}
			staged.published = false
		}
		if staged.backupPath != "" {
			if err := l.rename(staged.backupPath, staged.finalPath); err != nil {
				l.logger.Error("Не удалось восстановить %s: %v", staged.finalPath, err)
			}
			staged.backupPath = ""
		}
	}
}

// Rollback удаляет все неопубликованные временные файлы
func (l *CSVLoader) Rollback() {
	for _, staged := range l.staged {
		if err := os.Remove(staged.tempPath); err != nil && !os.IsNotExist(err) {
			l.logger.Error("Не удалось удалить временный файл %s: %v", staged.tempPath, err)
		}
	}
	l.staged = nil
}
