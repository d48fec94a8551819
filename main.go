// main.go
package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"

	"github.com/LilVoxy/rail_analytics/config"
	"github.com/LilVoxy/rail_analytics/database"
	"github.com/LilVoxy/rail_analytics/routes"
	"github.com/LilVoxy/rail_analytics/websocket"
)

func main() {
	fmt.Println("Запуск сервера...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Не удалось прочитать конфигурацию: %v", err)
	}

	// Загружаем таблицы звездной схемы; отсутствующие файлы заменяются пустыми таблицами
	ds, err := database.LoadDataset(cfg.DataDir)
	if err != nil {
		log.Printf("⚠️ Данные загружены не полностью, дашборд работает с тем, что есть: %v", err)
	}
	log.Printf("✅ Набор данных готов: %d строк", ds.Len())

	// Создаем менеджер WebSocket и запускаем его
	wsManager := websocket.NewManager(ds)
	go wsManager.Run()

	// Создаем маршрутизатор
	router := mux.NewRouter()
	routes.SetupRoutes(router, ds, wsManager, cfg.PublicDir, cfg.AllowedOrigins)

	// Настраиваем сервер
	server := &http.Server{
		Addr:         cfg.Addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Запускаем сервер в отдельной горутине
	go func() {
		log.Printf("✅ Сервер запущен на http://localhost%s", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ Ошибка запуска сервера: %v", err)
		}
	}()

	// Канал для сигналов завершения
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	// Ожидаем сигнал завершения
	<-stop
	log.Println("⚠️ Получен сигнал завершения, закрываем соединения...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Printf("❌ Ошибка остановки HTTP-сервера: %v", err)
	}

	// Закрываем WebSocket-соединения
	wsManager.Stop()

	log.Println("👋 Сервер остановлен")
}
