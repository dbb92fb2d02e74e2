package ws

import (
	"encoding/json"
	"sync"

	"github.com/gofiber/contrib/websocket"
	"github.com/rs/zerolog"
)

// StockEvent is pushed to connected dashboards whenever a product's
// quantity transitions.
type StockEvent struct {
	Action      string `json:"action"` // product_created, stock_updated, product_deleted
	ProductID   uint   `json:"product_id"`
	ProductName string `json:"product_name"`
	OldQuantity int    `json:"old_quantity"`
	NewQuantity int    `json:"new_quantity"`
	Actor       string `json:"actor"`
}

type Hub struct {
	Register   chan *websocket.Conn
	Unregister chan *websocket.Conn

	broadcast chan []byte
	clients   map[*websocket.Conn]bool
	mu        sync.Mutex
	log       zerolog.Logger
}

func NewHub(log zerolog.Logger) *Hub {
	return &Hub{
		Register:   make(chan *websocket.Conn),
		Unregister: make(chan *websocket.Conn),
		broadcast:  make(chan []byte),
		clients:    make(map[*websocket.Conn]bool),
		log:        log,
	}
}

// Publish fans a stock event out to all connected clients. Marshal
// failures are logged and dropped; the feed is best-effort.
func (h *Hub) Publish(ev StockEvent) {
	msg, err := json.Marshal(ev)
	if err != nil {
		h.log.Error().Err(err).Msg("failed to marshal stock event")
		return
	}
	h.broadcast <- msg
}

func (h *Hub) Run() {
	for {
		select {
		case conn := <-h.Register:
			h.mu.Lock()
			h.clients[conn] = true
			h.mu.Unlock()
			h.log.Debug().Msg("websocket client connected")

		case conn := <-h.Unregister:
			h.mu.Lock()
			if _, ok := h.clients[conn]; ok {
				delete(h.clients, conn)
				conn.Close()
			}
			h.mu.Unlock()

		case message := <-h.broadcast:
			h.mu.Lock()
			for conn := range h.clients {
				if err := conn.WriteMessage(websocket.TextMessage, message); err != nil {
					conn.Close()
					delete(h.clients, conn)
				}
			}
			h.mu.Unlock()
		}
	}
}
