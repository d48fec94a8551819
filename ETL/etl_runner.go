package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/LilVoxy/rail_analytics/ETL/config"
	"github.com/LilVoxy/rail_analytics/ETL/extractors"
	"github.com/LilVoxy/rail_analytics/ETL/load"
	"github.com/LilVoxy/rail_analytics/ETL/models"
	"github.com/LilVoxy/rail_analytics/ETL/transform"
	"github.com/LilVoxy/rail_analytics/ETL/utils"
)

// ETLRunner связывает фазы Extract, Transform и Load
type ETLRunner struct {
	config      config.ETLConfig
	logger      *utils.ETLLogger
	extractor   *extractors.Extractor
	transformer *transform.Transformer
	loadManager *load.LoadManager
}

// NewETLRunner создает новый экземпляр ETLRunner
func NewETLRunner(etlConfig config.ETLConfig, logger *utils.ETLLogger) *ETLRunner {
	logger.Info("Инициализация ETL Runner")

	return &ETLRunner{
		config:      etlConfig,
		logger:      logger,
		extractor:   extractors.NewExtractor(logger, etlConfig.SheetName),
		transformer: transform.NewTransformer(logger),
		loadManager: load.NewLoadManager(etlConfig.OutputDir, logger),
	}
}

// ExecuteETL выполняет полный ETL процесс
func (r *ETLRunner) ExecuteETL() error {
	startTime := time.Now()
	r.logger.LogETLStart(r.config.SourcePath)

	// 1. Фаза извлечения данных (Extract)
	extractedData, err := r.extractor.Extract(r.config.SourcePath)
	if err != nil {
		r.logger.Error("Ошибка в фазе Extract: %v", err)
		return fmt.Errorf("ошибка в фазе Extract: %w", err)
	}

	// 2. Фаза трансформации данных (Transform)
	transformedData, err := r.transformer.Transform(extractedData)
	if err != nil {
		r.logger.Error("Ошибка в фазе Transform: %v", err)
		return fmt.Errorf("ошибка в фазе Transform: %w", err)
	}

	// 3. Фаза загрузки данных (Load)
	if err := r.loadManager.Load(transformedData); err != nil {
		r.logger.Error("Ошибка в фазе Load: %v", err)
		return fmt.Errorf("ошибка в фазе Load: %w", err)
	}

	r.logSample(transformedData.Transactions)
	r.logger.LogETLComplete(startTime, transformedData.Metadata)
	return nil
}

// logSample выводит первые факты с их внешними ключами
func (r *ETLRunner) logSample(facts []models.TransactionFact) {
	limit := 5
	if len(facts) < limit {
		limit = len(facts)
	}
	for _, fact := range facts[:limit] {
		r.logger.Debug("Transaction_ID=%s Time_ID=%d Journey_ID=%d", fact.TransactionID, fact.TimeID, fact.JourneyID)
	}
}

// StartScheduler запускает планировщик для регулярного выполнения ETL
func (r *ETLRunner) StartScheduler(ctx context.Context) error {
	scheduler := gocron.NewScheduler(time.UTC)

	r.logger.Info("Запуск планировщика ETL с интервалом %v", r.config.RunInterval)

	_, err := scheduler.Every(r.config.RunInterval).Do(func() {
		r.logger.Info("Запланированный запуск ETL процесса")
		if err := r.ExecuteETL(); err != nil {
			r.logger.Error("Ошибка при выполнении запланированного ETL: %v", err)
		}
	})
	if err != nil {
		return fmt.Errorf("ошибка при настройке планировщика: %w", err)
	}

	scheduler.StartAsync()

	// Ожидаем сигнал остановки из контекста
	<-ctx.Done()

	scheduler.Stop()
	r.logger.Info("Планировщик ETL остановлен")
	return nil
}

// RunOnce запускает ETL процесс один раз. Любая ошибка завершает процесс.
func RunOnce(etlConfig config.ETLConfig) {
	logger := utils.NewETLLogger(etlConfig.LogDir, etlConfig.EnableDetailedLogging)
	runner := NewETLRunner(etlConfig, logger)

	if err := runner.ExecuteETL(); err != nil {
		log.Fatalf("Ошибка при выполнении ETL: %v", err)
	}
}

// RunScheduled запускает ETL процесс по расписанию
func RunScheduled(etlConfig config.ETLConfig) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	signalCh := make(chan os.Signal, 1)
	signal.Notify(signalCh, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-signalCh
		log.Println("Получен сигнал завершения. Останавливаем ETL Runner...")
		cancel()
	}()

	logger := utils.NewETLLogger(etlConfig.LogDir, etlConfig.EnableDetailedLogging)
	runner := NewETLRunner(etlConfig, logger)

	if err := runner.StartScheduler(ctx); err != nil {
		log.Fatalf("Ошибка планировщика ETL: %v", err)
	}
}

func main() {
	etlConfig := config.GetConfig()

	// Параметры командной строки только переопределяют значения по умолчанию
	modePtr := flag.String("mode", "once", "Режим работы: once или scheduled")
	flag.StringVar(&etlConfig.SourcePath, "source", etlConfig.SourcePath, "Исходная таблица (xlsx или csv)")
	flag.StringVar(&etlConfig.SheetName, "sheet", etlConfig.SheetName, "Лист книги Excel (по умолчанию первый)")
	flag.StringVar(&etlConfig.OutputDir, "out", etlConfig.OutputDir, "Каталог для таблиц звездной схемы")
	flag.StringVar(&etlConfig.LogDir, "log-dir", etlConfig.LogDir, "Каталог для файлов лога")
	flag.DurationVar(&etlConfig.RunInterval, "interval", etlConfig.RunInterval, "Интервал запуска (только для режима scheduled)")
	flag.BoolVar(&etlConfig.EnableDetailedLogging, "verbose", etlConfig.EnableDetailedLogging, "Подробное логирование")

	flag.Parse()

	log.Println("Запуск ETL Runner в режиме:", *modePtr)

	switch *modePtr {
	case "once":
		RunOnce(etlConfig)
	case "scheduled":
		RunScheduled(etlConfig)
	default:
		log.Println("Неизвестный режим работы:", *modePtr)
		log.Println("Доступные режимы: once, scheduled")
		os.Exit(1)
	}

	log.Println("ETL Runner завершил работу")
}
