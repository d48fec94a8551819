// websocket/connection_handler.go
package websocket

import (
	"log"
	"net/http"

	"github.com/google/uuid"

	"github.com/LilVoxy/rail_analytics/processor"
)

// HandleConnections обрабатывает WebSocket-соединения.
// Параметр ?encoding=snappy включает сжатые бинарные кадры.
func (manager *Manager) HandleConnections(w http.ResponseWriter, r *http.Request) {
	encoding, err := processor.ParseEncoding(r.URL.Query().Get("encoding"))
	if err != nil {
		log.Printf("Невалидная кодировка в запросе %s: %v", r.URL.String(), err)
		http.Error(w, "Невалидная кодировка", http.StatusBadRequest)
		return
	}

	// Устанавливаем WebSocket-соединение
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("Ошибка при установке WebSocket-соединения:", err)
		return
	}

	// Создаем нового клиента с идентификатором сессии
	client := &Client{
		ID:       uuid.NewString(),
		Socket:   conn,
		Send:     make(chan processor.Frame, sendBufferSize),
		Encoding: encoding,
	}

	if !manager.register(client) {
		log.Printf("⚠️ Менеджер остановлен, соединение с %s отклонено", r.RemoteAddr)
		conn.Close()
		return
	}
	log.Printf("✅ Сессия %s открыта с адреса %s", client.ID, r.RemoteAddr)

	// Сообщаем клиенту идентификатор сессии
	client.send(OutboundMessage{Type: MessageSession, SessionID: client.ID})

	// Запускаем горутины для чтения и отправки сообщений
	go client.readPump(manager)
	go client.writePump()
}
