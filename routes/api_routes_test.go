package routes

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LilVoxy/rail_analytics/ETL/models"
	"github.com/LilVoxy/rail_analytics/analytics"
	"github.com/LilVoxy/rail_analytics/database"
	"github.com/LilVoxy/rail_analytics/websocket"
)

func testRouter(t *testing.T) *mux.Router {
	t.Helper()

	records := []database.Record{
		{TransactionID: "t1", TicketType: "Advance", Month: 1, DepartureStation: "York", Price: decimal.NewNullDecimal(decimal.NewFromInt(10))},
		{TransactionID: "t2", TicketType: "Anytime", Month: 3, DepartureStation: "Leeds", Price: decimal.NewNullDecimal(decimal.NewFromInt(20))},
	}
	ds := database.NewDataset(records, []string{
		models.ColTransactionID, models.ColTicketType, models.ColMonth, models.ColDepartureStationName, models.ColPrice,
	})

	publicDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(publicDir, "index.html"), []byte("<h1>UK Train Rides Analysis</h1>"), 0644))
	require.NoError(t, os.MkdirAll(filepath.Join(publicDir, "assets"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(publicDir, "assets", "uk-train.svg"), []byte("<svg/>"), 0644))

	router := mux.NewRouter()
	SetupRoutes(router, ds, websocket.NewManager(ds), publicDir, []string{"*"})
	return router
}

func get(t *testing.T, router http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestGetFilters(t *testing.T) {
	rec := get(t, testRouter(t), "/api/filters")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var options analytics.FilterOptions
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &options))
	assert.Equal(t, []analytics.Option{{Label: "January", Value: "1"}, {Label: "March", Value: "3"}}, options.Months)
	assert.Equal(t, []analytics.Option{{Label: "Leeds", Value: "Leeds"}, {Label: "York", Value: "York"}}, options.Stations)
	assert.Empty(t, options.Railcards)
}

func TestGetSection(t *testing.T) {
	rec := get(t, testRouter(t), "/api/sections/overview?ticket_type=Advance")
	require.Equal(t, http.StatusOK, rec.Code)

	var payload analytics.SectionPayload
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	assert.Equal(t, analytics.SectionOverview, payload.Section)
	require.Len(t, payload.Charts, 4)
	require.NotNil(t, payload.Summary)
	assert.Equal(t, 1, payload.Summary.Transactions)
	assert.Equal(t, 10.0, payload.Summary.Revenue)
}

func TestGetSectionWithoutMatches(t *testing.T) {
	rec := get(t, testRouter(t), "/api/sections/overview?month=7")
	require.Equal(t, http.StatusOK, rec.Code)

	var payload analytics.SectionPayload
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	for _, chart := range payload.Charts {
		assert.True(t, chart.NoData, chart.ID)
		assert.Equal(t, analytics.NoDataTitle, chart.Title)
	}
}

func TestUnknownSection(t *testing.T) {
	rec := get(t, testRouter(t), "/api/sections/settings")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHealth(t *testing.T) {
	rec := get(t, testRouter(t), "/api/health")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok","rows":2}`, rec.Body.String())
}

func TestStaticFiles(t *testing.T) {
	router := testRouter(t)

	page := get(t, router, "/")
	require.Equal(t, http.StatusOK, page.Code)
	assert.Contains(t, page.Body.String(), "UK Train Rides Analysis")

	asset := get(t, router, "/assets/uk-train.svg")
	require.Equal(t, http.StatusOK, asset.Code)
	body, err := io.ReadAll(asset.Body)
	require.NoError(t, err)
	assert.Equal(t, "<svg/>", string(body))
}

func TestCORSHeaders(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	rec := httptest.NewRecorder()

	testRouter(t).ServeHTTP(rec, req)

	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}
