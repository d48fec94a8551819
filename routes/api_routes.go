// routes/api_routes.go
package routes

import (
	"net/http"
	"path/filepath"

	"github.com/gorilla/mux"

	"github.com/LilVoxy/rail_analytics/database"
	"github.com/LilVoxy/rail_analytics/middleware"
	"github.com/LilVoxy/rail_analytics/websocket"
)

// SetupRoutes настраивает все маршруты API и WebSocket
func SetupRoutes(router *mux.Router, ds *database.Dataset, wsManager *websocket.Manager, publicDir string, allowedOrigins []string) {
	// Применяем CORS middleware
	router.Use(middleware.CORSMiddleware(allowedOrigins))

	// WebSocket соединения
	router.HandleFunc("/ws", wsManager.HandleConnections)

	// API фильтров и разделов
	router.HandleFunc("/api/filters", GetFiltersHandler(ds)).Methods("GET", "OPTIONS")
	router.HandleFunc("/api/sections/{section}", GetSectionHandler(ds)).Methods("GET", "OPTIONS")
	router.HandleFunc("/api/health", GetHealthHandler(ds)).Methods("GET", "OPTIONS")

	// Статические файлы
	router.PathPrefix("/assets/").Handler(http.StripPrefix("/assets/", http.FileServer(http.Dir(filepath.Join(publicDir, "assets")))))
	router.PathPrefix("/").Handler(http.FileServer(http.Dir(publicDir)))
}
