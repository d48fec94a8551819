// websocket/manager.go
package websocket

import (
	"log"

	"github.com/LilVoxy/rail_analytics/database"
)

// Создание нового менеджера WebSocket-соединений
func NewManager(ds *database.Dataset) *Manager {
	return &Manager{
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
		Clients:    make(map[string]*Client),
		dataset:    ds,
		quit:       make(chan struct{}),
		done:       make(chan struct{}),
	}
}

// Run запускает работу менеджера; реестр клиентов принадлежит только этой горутине
func (manager *Manager) Run() {
	defer close(manager.done)

	for {
		select {
		case client := <-manager.Register:
			manager.Clients[client.ID] = client
			log.Printf("👤 Клиент %s подключился (кодировка %s)", client.ID, client.Encoding)

		case client := <-manager.Unregister:
			if _, ok := manager.Clients[client.ID]; ok {
				delete(manager.Clients, client.ID)
				close(client.Send)
				log.Printf("👤 Клиент %s отключился", client.ID)
			}

		case <-manager.quit:
			for id, client := range manager.Clients {
				close(client.Send)
				delete(manager.Clients, id)
			}
			log.Println("✅ Менеджер WebSocket остановлен")
			return
		}
	}
}

// Stop закрывает соединения всех клиентов и останавливает Run
func (manager *Manager) Stop() {
	select {
	case <-manager.quit:
	default:
		close(manager.quit)
	}
	<-manager.done
}

// register передает клиента менеджеру; false если менеджер уже остановлен
func (manager *Manager) register(client *Client) bool {
	select {
	case manager.Register <- client:
		return true
	case <-manager.done:
		return false
	}
}

// unregister снимает клиента с учета, если менеджер еще работает
func (manager *Manager) unregister(client *Client) {
	select {
	case manager.Unregister <- client:
	case <-manager.done:
	}
}
