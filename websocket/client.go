// websocket/client.go
package websocket

import (
	"log"

	"github.com/LilVoxy/rail_analytics/analytics"
	"github.com/LilVoxy/rail_analytics/processor"
)

// send кодирует сообщение в кодировке клиента и ставит его в очередь отправки
func (c *Client) send(message OutboundMessage) {
	frame, err := processor.EncodeOutbound(message, c.Encoding)
	if err != nil {
		log.Printf("❌ Ошибка кодирования сообщения %s для клиента %s: %v", message.Type, c.ID, err)
		return
	}
	c.Send <- frame
}

// sendSections пересчитывает все разделы для фильтров и отправляет по сообщению на раздел
func (c *Client) sendSections(manager *Manager, filters analytics.Filters) {
	for _, payload := range analytics.ComputeAll(manager.dataset, filters) {
		c.send(OutboundMessage{Type: MessageSection, SessionID: c.ID, SectionPayload: &payload})
	}
	log.Printf("📊 Клиенту %s отправлены разделы для фильтров %+v", c.ID, filters)
}
