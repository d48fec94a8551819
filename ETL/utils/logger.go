package utils

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/LilVoxy/rail_analytics/ETL/models"
)

// ETLLogger представляет логгер для ETL-процесса
type ETLLogger struct {
	infoLogger  *log.Logger
	warnLogger  *log.Logger
	errorLogger *log.Logger
	debugLogger *log.Logger
	console     bool
	isVerbose   bool
}

// NewETLLogger создает логгер, который пишет в файл etl_log_<дата>.log в каталоге logDir
// и дублирует сообщения в стандартный вывод
func NewETLLogger(logDir string, verbose bool) *ETLLogger {
	currentTime := time.Now().Format("2006-01-02")
	logFileName := filepath.Join(logDir, fmt.Sprintf("etl_log_%s.log", currentTime))

	file, err := os.OpenFile(logFileName, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0666)
	if err != nil {
		// Без файла продолжаем писать только в стандартный вывод
		log.Printf("Не удалось открыть файл лога %s: %v", logFileName, err)
		logger := NewETLLoggerWithWriter(io.Discard, verbose)
		logger.console = true
		return logger
	}

	logger := NewETLLoggerWithWriter(file, verbose)
	logger.console = true
	return logger
}

// NewETLLoggerWithWriter создает логгер, который пишет только в w
func NewETLLoggerWithWriter(w io.Writer, verbose bool) *ETLLogger {
	flags := log.Ldate | log.Ltime
	return &ETLLogger{
		infoLogger:  log.New(w, "INFO: ", flags),
		warnLogger:  log.New(w, "WARN: ", flags),
		errorLogger: log.New(w, "ERROR: ", flags),
		debugLogger: log.New(w, "DEBUG: ", flags),
		isVerbose:   verbose,
	}
}

// Info логирует информационное сообщение
func (l *ETLLogger) Info(format string, v ...interface{}) {
	l.write(l.infoLogger, "INFO:", format, v...)
}

// Warn логирует предупреждение
func (l *ETLLogger) Warn(format string, v ...interface{}) {
	l.write(l.warnLogger, "WARN:", format, v...)
}

// Error логирует сообщение об ошибке
func (l *ETLLogger) Error(format string, v ...interface{}) {
	l.write(l.errorLogger, "ERROR:", format, v...)
}

// Debug логирует отладочное сообщение (только если включен verbose режим)
func (l *ETLLogger) Debug(format string, v ...interface{}) {
	if !l.isVerbose {
		return
	}
	l.write(l.debugLogger, "DEBUG:", format, v...)
}

func (l *ETLLogger) write(target *log.Logger, prefix, format string, v ...interface{}) {
	msg := fmt.Sprintf(format, v...)
	target.Println(msg)

	if l.console {
		log.Println(prefix, msg)
	}
}

// LogETLStart логирует начало ETL-процесса
func (l *ETLLogger) LogETLStart(sourcePath string) {
	l.Info("Начало выполнения ETL-процесса, источник: %s", sourcePath)
}

// LogETLComplete логирует завершение ETL-процесса
func (l *ETLLogger) LogETLComplete(startTime time.Time, meta models.ETLMetadata) {
	l.Info("ETL-процесс завершён. Длительность: %v", time.Since(startTime))
	l.Info("Обработано: %d транзакций, %d ключей времени, %d поездок, %d станций",
		meta.RowsProcessed, meta.TimeKeys, meta.JourneyKeys, meta.Stations)
	l.Info("Пустых Time_ID: %d, пустых Journey_ID: %d", meta.NullTimeIDs, meta.NullJourneyIDs)
}

// LogExtractStart логирует начало фазы извлечения данных
func (l *ETLLogger) LogExtractStart(sourcePath string) {
	l.Info("Начало фазы Extract (Извлечение данных из %s)", sourcePath)
}

// LogExtractComplete логирует завершение фазы извлечения данных
func (l *ETLLogger) LogExtractComplete(rows int, duration time.Duration) {
	l.Info("Фаза Extract завершена. Длительность: %v", duration)
	l.Info("Извлечено: %d строк", rows)
}
