package ws

import (
	"backend/entity"
	"backend/utils"
	"log"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// Event is the envelope pushed to clients.
type Event struct {
	Type string `json:"type"` // "cart.updated" | "order.status"
	Data any    `json:"data"`
}

// EventHub fans events out to a user's open connections. A user can have
// several tabs open; every one gets the event. Pushes are best-effort: a
// dead connection is dropped, never retried.
type EventHub struct {
	clients    map[uint]map[*websocket.Conn]bool // userID -> connections
	broadcast  chan userEvent
	register   chan subscription
	unregister chan subscription
	mu         sync.Mutex
}

type subscription struct {
	Conn   *websocket.Conn
	UserID uint
}

type userEvent struct {
	UserID uint
	Event  Event
}

func NewEventHub() *EventHub {
	return &EventHub{
		clients:    make(map[uint]map[*websocket.Conn]bool),
		broadcast:  make(chan userEvent, 32),
		register:   make(chan subscription),
		unregister: make(chan subscription),
	}
}

func (h *EventHub) Run() {
	for {
		select {
		case sub := <-h.register:
			h.mu.Lock()
			if h.clients[sub.UserID] == nil {
				h.clients[sub.UserID] = make(map[*websocket.Conn]bool)
			}
			h.clients[sub.UserID][sub.Conn] = true
			h.mu.Unlock()

		case sub := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[sub.UserID][sub.Conn]; ok {
				delete(h.clients[sub.UserID], sub.Conn)
				sub.Conn.Close()
			}
			h.mu.Unlock()

		case ev := <-h.broadcast:
			h.mu.Lock()
			for conn := range h.clients[ev.UserID] {
				if err := conn.WriteJSON(ev.Event); err != nil {
					log.Printf("ws write error: %v", err)
					conn.Close()
					delete(h.clients[ev.UserID], conn)
				}
			}
			h.mu.Unlock()
		}
	}
}

// CartUpdated implements services.CartNotifier.
func (h *EventHub) CartUpdated(userID uint, totalItems int, subtotal int64) {
	h.push(userID, Event{Type: "cart.updated", Data: gin.H{
		"totalItems": totalItems,
		"subtotal":   subtotal,
	}})
}

// OrderStatusChanged implements services.OrderNotifier.
func (h *EventHub) OrderStatusChanged(userID, orderID uint, status entity.OrderStatus, message string) {
	h.push(userID, Event{Type: "order.status", Data: gin.H{
		"orderId":  orderID,
		"status":   status,
		"message":  message,
		"progress": status.Progress(),
	}})
}

func (h *EventHub) push(userID uint, ev Event) {
	select {
	case h.broadcast <- userEvent{UserID: userID, Event: ev}:
	default:
		// hub backed up; drop rather than block a mutation
	}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true }, // dev only
}

// Serve upgrades an authenticated request and keeps the connection in the
// hub until the client goes away.
func (h *EventHub) Serve(c *gin.Context) {
	userID := utils.CurrentUserID(c)
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "unauthorized"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("ws upgrade error: %v", err)
		return
	}

	sub := subscription{Conn: conn, UserID: userID}
	h.register <- sub

	// reader loop only detects disconnect; clients do not send anything
	go func() {
		defer func() { h.unregister <- sub }()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
