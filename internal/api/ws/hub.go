package ws

import (
	"log"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"live-chess/internal/game"
)

// Coordinator receives the inbound half of the session protocol. Each method
// is invoked with the originating connection's ID attached.
type Coordinator interface {
	OnConnect(connID string)
	OnMove(connID string, cand game.Candidate)
	OnDisconnect(connID string)
}

// Hub tracks live connections and fans events out to them. It implements the
// session layer's Emitter.
type Hub struct {
	mu       sync.RWMutex
	clients  map[string]*Client
	coord    Coordinator
	upgrader websocket.Upgrader
}

func NewHub(coord Coordinator, allowedOrigins []string) *Hub {
	allowed := make(map[string]struct{}, len(allowedOrigins))
	for _, o := range allowedOrigins {
		allowed[o] = struct{}{}
	}
	return &Hub{
		clients: make(map[string]*Client),
		coord:   coord,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				if len(allowed) == 0 {
					return true
				}
				_, ok := allowed[r.Header.Get("Origin")]
				return ok
			},
		},
	}
}

// HandleWS upgrades the request and runs the connection until it closes.
// Seat assignment happens before the read loop starts, so the per-connection
// FIFO the session layer relies on holds from the first frame.
func (h *Hub) HandleWS(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("websocket upgrade: %v", err)
		return
	}

	client := &Client{
		ID:   uuid.NewString(),
		hub:  h,
		conn: conn,
		send: make(chan envelope, sendBuffer),
	}

	h.mu.Lock()
	h.clients[client.ID] = client
	h.mu.Unlock()

	go client.writePump()

	h.coord.OnConnect(client.ID)
	client.readLoop()

	h.mu.Lock()
	delete(h.clients, client.ID)
	h.mu.Unlock()

	h.coord.OnDisconnect(client.ID)
}

// Unicast sends one event to one connection. Unknown IDs are ignored.
func (h *Hub) Unicast(connID, action string, data interface{}) {
	h.mu.RLock()
	client, ok := h.clients[connID]
	h.mu.RUnlock()
	if !ok {
		return
	}
	client.enqueue(envelope{Action: action, Data: data})
}

// Broadcast sends one event to every connection.
func (h *Hub) Broadcast(action string, data interface{}) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, client := range h.clients {
		client.enqueue(envelope{Action: action, Data: data})
	}
}
