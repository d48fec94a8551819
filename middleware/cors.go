package middleware

import (
	"net/http"

	"github.com/go-chi/cors"
)

// CORSMiddleware разрешает кросс-доменные запросы с указанных источников
func CORSMiddleware(allowedOrigins []string) func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
		MaxAge:         300,
	})
}
