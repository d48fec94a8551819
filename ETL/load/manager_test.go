package load

import (
	"encoding/csv"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LilVoxy/rail_analytics/ETL/models"
	"github.com/LilVoxy/rail_analytics/ETL/utils"
)

func testLogger() *utils.ETLLogger {
	return utils.NewETLLoggerWithWriter(io.Discard, true)
}

func sampleData() *models.TransformedData {
	return &models.TransformedData{
		Times: []models.TimeDimension{
			{ID: 1, PurchaseDate: models.NewDate(2023, time.December, 8), TimeOfPurchase: "12:41:11", HourOfDay: 12, HasHour: true},
			{ID: 2, TimeOfPurchase: "soon"},
		},
		Journeys: []models.JourneyDimension{
			{ID: 1, JourneyDate: models.NewDate(2024, time.January, 1), DepartureTime: "11:00:00", ArrivalTime: "13:30:00", ActualArrivalTime: "13:30:00", DelayPeriod: "On Time"},
		},
		Locations: []models.LocationDimension{
			{ID: 1, StationName: "London Paddington"},
		},
		Transactions: []models.TransactionFact{
			{TransactionID: "t1", Price: "43", DepartureStationID: 1, TimeID: 1, JourneyID: 1},
			{TransactionID: "t2", Price: "", TimeID: 2, JourneyID: 1},
		},
		Metadata: models.ETLMetadata{LocationsGenerated: true},
	}
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	require.NoError(t, err)
	return records
}

func TestLoadWritesAllTables(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, NewLoadManager(dir, testLogger()).Load(sampleData()))

	times := readCSV(t, filepath.Join(dir, models.TimeDimensionFile))
	assert.Equal(t, models.TimeDimensionHeader, times[0])
	assert.Equal(t, []string{"1", "2023-12-08", "12:41:11", "8", "12", "2023", "12"}, times[1])
	assert.Equal(t, []string{"2", "", "soon", "", "", "", ""}, times[2])

	journeys := readCSV(t, filepath.Join(dir, models.JourneyDimensionFile))
	assert.Equal(t, models.JourneyDimensionHeader, journeys[0])
	assert.Equal(t, "On Time", journeys[1][6])

	locations := readCSV(t, filepath.Join(dir, models.LocationDimensionFile))
	assert.Equal(t, [][]string{models.LocationDimensionHeader, {"1", "London Paddington"}}, locations)

	facts := readCSV(t, filepath.Join(dir, models.FactTransactionsFile))
	require.Len(t, facts, 3)
	assert.Equal(t, models.FactTransactionsHeader, facts[0])
	assert.Equal(t, "1", facts[1][7])
	assert.Equal(t, "", facts[1][8])
	assert.Equal(t, "2", facts[2][11])

	assertNoTempFiles(t, dir)
}

func TestLoadKeepsExistingLocationsWhenNotGenerated(t *testing.T) {
	dir := t.TempDir()
	existing := filepath.Join(dir, models.LocationDimensionFile)
	require.NoError(t, os.WriteFile(existing, []byte("Station_ID,Station_Name\n7,York\n"), 0644))

	data := sampleData()
	data.Metadata.LocationsGenerated = false
	require.NoError(t, NewLoadManager(dir, testLogger()).Load(data))

	content, err := os.ReadFile(existing)
	require.NoError(t, err)
	assert.Equal(t, "Station_ID,Station_Name\n7,York\n", string(content))
}

// failingLoader пишет таблицы через CSVLoader, но отказывает на фактах
type failingLoader struct {
	*CSVLoader
}

func (l failingLoader) LoadTransactionFacts([]models.TransactionFact) error {
	return errors.New("диск переполнен")
}

func TestLoadFailureLeavesNoPartialOutput(t *testing.T) {
	dir := t.TempDir()
	manager := NewLoadManagerWithLoader(failingLoader{NewCSVLoader(dir, testLogger())}, testLogger())

	err := manager.Load(sampleData())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "диск переполнен")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

// failOnRename отказывает в публикации файла с именем fileName
func failOnRename(fileName string) func(string, string) error {
	return func(oldPath, newPath string) error {
		if filepath.Base(newPath) == fileName && strings.HasSuffix(oldPath, ".tmp") {
			return errors.New("устройство занято")
		}
		return os.Rename(oldPath, newPath)
	}
}

func TestCommitFailureRestoresPreviousOutput(t *testing.T) {
	dir := t.TempDir()
	previous := map[string]string{
		models.TimeDimensionFile:     "Time_ID\n9\n",
		models.JourneyDimensionFile:  "Journey_ID\n9\n",
		models.LocationDimensionFile: "Station_ID,Station_Name\n9,York\n",
		models.FactTransactionsFile:  "Transaction_ID\nold\n",
	}
	for name, content := range previous {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
	}

	loader := NewCSVLoader(dir, testLogger())
	loader.rename = failOnRename(models.FactTransactionsFile)

	err := NewLoadManagerWithLoader(loader, testLogger()).Load(sampleData())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "устройство занято")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, len(previous))
	for name, content := range previous {
		data, err := os.ReadFile(filepath.Join(dir, name))
		require.NoError(t, err)
		assert.Equal(t, content, string(data), name)
	}
}

func TestCommitFailureWithoutPreviousOutputLeavesNothing(t *testing.T) {
	dir := t.TempDir()
	loader := NewCSVLoader(dir, testLogger())
	loader.rename = failOnRename(models.FactTransactionsFile)

	require.Error(t, NewLoadManagerWithLoader(loader, testLogger()).Load(sampleData()))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestCommitReplacesPreviousOutput(t *testing.T) {
	dir := t.TempDir()
	facts := filepath.Join(dir, models.FactTransactionsFile)
	require.NoError(t, os.WriteFile(facts, []byte("Transaction_ID\nold\n"), 0644))

	require.NoError(t, NewLoadManager(dir, testLogger()).Load(sampleData()))

	rows := readCSV(t, facts)
	require.Len(t, rows, 3)
	assert.Equal(t, "t1", rows[1][0])

	matches, err := filepath.Glob(filepath.Join(dir, ".*.prev"))
	require.NoError(t, err)
	assert.Empty(t, matches)
	assertNoTempFiles(t, dir)
}

func assertNoTempFiles(t *testing.T, dir string) {
	t.Helper()
	matches, err := filepath.Glob(filepath.Join(dir, ".*.tmp"))
	require.NoError(t, err)
	assert.Empty(t, matches)
}
