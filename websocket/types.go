// websocket/types.go
package websocket

import (
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/LilVoxy/rail_analytics/analytics"
	"github.com/LilVoxy/rail_analytics/database"
	"github.com/LilVoxy/rail_analytics/processor"
)

// Типы сообщений
const (
	MessageFilters = "filters"
	MessageSection = "section"
	MessagePing    = "ping"
	MessagePong    = "pong"
	MessageSession = "session"
)

// InboundMessage сообщение от браузера
type InboundMessage struct {
	Type    string            `json:"type"`
	Filters analytics.Filters `json:"filters"`
}

// OutboundMessage сообщение браузеру; для раздела поля SectionPayload встраиваются на верхний уровень
type OutboundMessage struct {
	Type      string `json:"type"`
	SessionID string `json:"sessionId,omitempty"`
	*analytics.SectionPayload
}

// Клиент WebSocket
type Client struct {
	ID       string
	Socket   *websocket.Conn
	Send     chan processor.Frame
	Encoding processor.Encoding
}

// Менеджер WebSocket-соединений
type Manager struct {
	Clients    map[string]*Client
	Register   chan *Client
	Unregister chan *Client
	dataset    *database.Dataset
	quit       chan struct{}
	done       chan struct{}
}

// Конфигурация WebSocket-соединения
var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // Разрешаем подключения с любого источника
	},
}
