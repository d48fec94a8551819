// routes/dashboard_handlers.go
package routes

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/LilVoxy/rail_analytics/analytics"
	"github.com/LilVoxy/rail_analytics/database"
)

// HealthResponse структура ответа проверки состояния
type HealthResponse struct {
	Status string `json:"status"`
	Rows   int    `json:"rows"`
}

// GetFiltersHandler отдает варианты выпадающих списков фильтров
func GetFiltersHandler(ds *database.Dataset) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, analytics.BuildFilterOptions(ds))
	}
}

// GetSectionHandler пересчитывает раздел дашборда для фильтров из параметров запроса
func GetSectionHandler(ds *database.Dataset) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		section, ok := analytics.ParseSection(mux.Vars(r)["section"])
		if !ok {
			http.Error(w, "Неизвестный раздел", http.StatusNotFound)
			return
		}

		filters := analytics.FiltersFromQuery(r.URL.Query())
		payload := analytics.ComputeSection(ds, section, filters)

		writeJSON(w, payload)
		log.Printf("✅ Отправлен раздел %s для фильтров %+v", section, filters)
	}
}

// GetHealthHandler сообщает о состоянии сервера и размере набора данных
func GetHealthHandler(ds *database.Dataset) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, HealthResponse{Status: "ok", Rows: ds.Len()})
	}
}

func writeJSON(w http.ResponseWriter, payload interface{}) {
	// Устанавливаем заголовок для JSON
	w.Header().Set("Content-Type", "application/json")

	// Кодируем и отправляем ответ
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("❌ Ошибка при кодировании JSON: %v", err)
		http.Error(w, "Ошибка при формировании ответа", http.StatusInternalServerError)
	}
}
