// websocket/read_pump.go
package websocket

import (
	"log"
	"time"

	"github.com/gorilla/websocket"

	"github.com/LilVoxy/rail_analytics/processor"
)

// readPump обрабатывает чтение сообщений от клиента
func (c *Client) readPump(manager *Manager) {
	defer func() {
		// Обработка паники при закрытии канала
		if r := recover(); r != nil {
			log.Printf("Паника при чтении сообщений клиента %s: %v", c.ID, r)
		}

		// Отправляем сигнал отключения
		manager.unregister(c)

		// Безопасно закрываем соединение
		c.Socket.Close()

		log.Printf("Завершение readPump для клиента %s", c.ID)
	}()

	// Устанавливаем параметры подключения
	c.Socket.SetReadLimit(maxMessageSize)
	c.Socket.SetReadDeadline(time.Now().Add(pongWait))
	c.Socket.SetPongHandler(func(string) error {
		c.Socket.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		// Читаем сообщения
		messageType, data, err := c.Socket.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("Ошибка: %v", err)
			}
			break
		}

		// Обрабатываем полученное сообщение
		var msg InboundMessage
		if err := processor.DecodeInbound(data, messageType == websocket.BinaryMessage, &msg); err != nil {
			log.Printf("Ошибка декодирования сообщения клиента %s: %v", c.ID, err)
			continue
		}

		switch msg.Type {
		case MessagePing:
			// Отправляем понг-сообщение обратно клиенту
			c.send(OutboundMessage{Type: MessagePong})

		case MessageFilters:
			c.sendSections(manager, msg.Filters)

		default:
			log.Printf("Неизвестный тип сообщения %q от клиента %s", msg.Type, c.ID)
		}
	}
}
