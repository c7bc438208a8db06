package websocket

import (
	"log"
	"sync"

	"adhkari/models"

	"github.com/gorilla/websocket"
)

// EngagementClient represents a client connected for engagement updates
type EngagementClient struct {
	Conn    *websocket.Conn
	UserID  string
	writeMu sync.Mutex
}

// SafeWriteJSON safely writes JSON data to the client's WebSocket connection
func (ec *EngagementClient) SafeWriteJSON(v interface{}) error {
	ec.writeMu.Lock()
	defer ec.writeMu.Unlock()
	return ec.Conn.WriteJSON(v)
}

// Global engagement hub for broadcasting events to all connected clients
var (
	engagementClients = make(map[*EngagementClient]bool)
	engagementMutex   sync.RWMutex
)

// RegisterEngagementClient registers a client for engagement updates
func RegisterEngagementClient(client *EngagementClient) {
	engagementMutex.Lock()
	defer engagementMutex.Unlock()
	engagementClients[client] = true
	log.Printf("Engagement client registered. Total clients: %d", len(engagementClients))
}

// UnregisterEngagementClient removes a client from engagement updates
func UnregisterEngagementClient(client *EngagementClient) {
	engagementMutex.Lock()
	defer engagementMutex.Unlock()
	delete(engagementClients, client)
	client.Conn.Close()
	log.Printf("Engagement client unregistered. Total clients: %d", len(engagementClients))
}

// BroadcastEngagementEvent broadcasts an engagement event to all connected
// clients
func BroadcastEngagementEvent(event models.EngagementEvent) {
	engagementMutex.RLock()
	defer engagementMutex.RUnlock()

	for client := range engagementClients {
		if err := client.SafeWriteJSON(event); err != nil {
			log.Printf("Error broadcasting engagement event to client: %v", err)
			// Remove client if write fails
			go UnregisterEngagementClient(client)
		}
	}
}
