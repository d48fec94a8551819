package main

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/LilVoxy/rail_analytics/ETL/config"
	"github.com/LilVoxy/rail_analytics/ETL/models"
	"github.com/LilVoxy/rail_analytics/ETL/utils"
)

const rawCSV = "Transaction ID,Date of Purchase,Time of Purchase,Purchase Type,Payment Method,Railcard,Ticket Class,Ticket Type,Price,Departure Station,Arrival Destination,Date of Journey,Departure Time,Arrival Time,Actual Arrival Time,Journey Status,Reason for Delay,Refund Request\n" +
	"t1,2023-12-08,12:41:11,Online,Contactless,Adult,Standard,Advance,43,London Paddington,Liverpool Lime Street,2024-01-01,11:00:00,13:30:00,13:30:00,On Time,,No\n" +
	"t2,2023-12-08,12:41:11,Online,Contactless,Adult,Standard,Advance,43,London Paddington,Liverpool Lime Street,2024-01-01,11:00:00,13:30:00,13:30:00,On Time,,No\n" +
	"t3,bad date,18:00:00,Station,Cash,None,First Class,Anytime,120,York,London Paddington,2024-01-02,09:00:00,,,Cancelled,Staffing,Yes\n"

func testConfig(t *testing.T, source string) config.ETLConfig {
	t.Helper()
	cfg := config.GetConfig()
	cfg.SourcePath = source
	cfg.OutputDir = t.TempDir()
	cfg.LogDir = t.TempDir()
	return cfg
}

func TestExecuteETLWritesStarSchema(t *testing.T) {
	source := filepath.Join(t.TempDir(), "raw.csv")
	require.NoError(t, os.WriteFile(source, []byte(rawCSV), 0644))
	cfg := testConfig(t, source)

	runner := NewETLRunner(cfg, utils.NewETLLoggerWithWriter(io.Discard, true))
	require.NoError(t, runner.ExecuteETL())

	for _, name := range []string{
		models.FactTransactionsFile, models.TimeDimensionFile,
		models.JourneyDimensionFile, models.LocationDimensionFile,
	} {
		assert.FileExists(t, filepath.Join(cfg.OutputDir, name))
	}

	facts, err := os.ReadFile(filepath.Join(cfg.OutputDir, models.FactTransactionsFile))
	require.NoError(t, err)
	assert.Contains(t, string(facts), "t1,Online,Contactless,Adult,Standard,Advance,43,1,2,On Time,No,1,1\n")
	assert.Contains(t, string(facts), "t2,Online,Contactless,Adult,Standard,Advance,43,1,2,On Time,No,1,1\n")
	assert.Contains(t, string(facts), "t3,Station,Cash,None,First Class,Anytime,120,3,1,Cancelled,Yes,2,2\n")

	times, err := os.ReadFile(filepath.Join(cfg.OutputDir, models.TimeDimensionFile))
	require.NoError(t, err)
	assert.Contains(t, string(times), "2,,18:00:00,,,,18\n")
}

// writeRawWorkbook сохраняет книгу с датами и временем в числовых ячейках с форматом Excel.
// У второй транзакции нет времени прибытия, у первой нет причины задержки.
func writeRawWorkbook(t *testing.T) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)

	date := func(year int, month time.Month, day int) time.Time {
		return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	}
	clock := func(hour, minute int) float64 {
		return float64(hour*60+minute) / (24 * 60)
	}

	header := strings.Split(strings.SplitN(rawCSV, "\n", 2)[0], ",")
	require.NoError(t, f.SetSheetRow(sheet, "A1", &header))
	rows := [][]interface{}{
		{"t1", date(2023, time.December, 8), clock(12, 41), "Online", "Contactless", "Adult", "Standard", "Advance", 43,
			"London Paddington", "Liverpool Lime Street", date(2024, time.January, 1), clock(11, 0), clock(13, 30), clock(13, 45),
			"Delayed", nil, "No"},
		{"t2", date(2023, time.December, 16), clock(18, 5), "Station", "Credit Card", "None", "First Class", "Anytime", 120,
			"York", "London Paddington", date(2024, time.January, 2), clock(9, 0), nil, nil,
			"Cancelled", "Staffing", "Yes"},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}

	dateStyle, err := f.NewStyle(&excelize.Style{NumFmt: 14})
	require.NoError(t, err)
	timeStyle, err := f.NewStyle(&excelize.Style{NumFmt: 21})
	require.NoError(t, err)
	require.NoError(t, f.SetCellStyle(sheet, "B2", "B3", dateStyle))
	require.NoError(t, f.SetCellStyle(sheet, "L2", "L3", dateStyle))
	require.NoError(t, f.SetCellStyle(sheet, "C2", "C3", timeStyle))
	require.NoError(t, f.SetCellStyle(sheet, "M2", "O3", timeStyle))

	path := filepath.Join(t.TempDir(), "raw.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestExecuteETLFromWorkbook(t *testing.T) {
	cfg := testConfig(t, writeRawWorkbook(t))

	runner := NewETLRunner(cfg, utils.NewETLLoggerWithWriter(io.Discard, false))
	require.NoError(t, runner.ExecuteETL())

	read := func(name string) string {
		data, err := os.ReadFile(filepath.Join(cfg.OutputDir, name))
		require.NoError(t, err)
		return string(data)
	}

	times := read(models.TimeDimensionFile)
	assert.Contains(t, times, "1,2023-12-08,12:41:00,8,12,2023,12\n")
	assert.Contains(t, times, "2,2023-12-16,18:05:00,16,12,2023,18\n")

	journeys := read(models.JourneyDimensionFile)
	assert.Contains(t, journeys, "1,2024-01-01,11:00:00,13:30:00,13:45:00,,1-15 min\n")
	assert.Contains(t, journeys, "2,2024-01-02,09:00:00,,,Staffing,\n")

	facts := read(models.FactTransactionsFile)
	assert.Contains(t, facts, "t1,Online,Contactless,Adult,Standard,Advance,43,1,2,Delayed,No,1,1\n")
	assert.Contains(t, facts, "t2,Station,Credit Card,None,First Class,Anytime,120,3,1,Cancelled,Yes,2,2\n")
}

func TestExecuteETLMissingSourceLeavesNoOutput(t *testing.T) {
	cfg := testConfig(t, filepath.Join(t.TempDir(), "absent.xlsx"))

	runner := NewETLRunner(cfg, utils.NewETLLoggerWithWriter(io.Discard, false))
	require.Error(t, runner.ExecuteETL())

	entries, err := os.ReadDir(cfg.OutputDir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
