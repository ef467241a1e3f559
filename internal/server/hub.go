package server

import (
	"context"
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/gofiber/websocket/v2"
)

// Типы сообщений в потоке /ws/state
const (
	MessageTypeSnapshot = "snapshot"
	MessageTypeEvent    = "event"
	MessageTypeRunEnd   = "run_end"
	MessageTypeHello    = "hello"
)

// Message - общий формат сообщения websocket.
type Message struct {
	Type      string      `json:"type"`
	Data      interface{} `json:"data"`
	Timestamp int64       `json:"timestamp"`
}

func newMessage(msgType string, data interface{}) Message {
	return Message{Type: msgType, Data: data, Timestamp: time.Now().UnixMilli()}
}

// Hub раздаёт сообщения всем подключённым клиентам.
type Hub struct {
	clients    map[*websocket.Conn]struct{}
	broadcast  chan Message
	register   chan *websocket.Conn
	unregister chan *websocket.Conn
	mutex      sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*websocket.Conn]struct{}),
		broadcast:  make(chan Message, 64),
		register:   make(chan *websocket.Conn),
		unregister: make(chan *websocket.Conn, 16),
	}
}

// Start обслуживает регистрацию и рассылку до отмены ctx.
func (h *Hub) Start(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			h.closeAll()
			return
		case conn := <-h.register:
			h.mutex.Lock()
			h.clients[conn] = struct{}{}
			h.mutex.Unlock()
			log.Printf("client connected: %s", conn.RemoteAddr())
		case conn := <-h.unregister:
			h.remove(conn)
		case msg := <-h.broadcast:
			h.handleBroadcast(msg)
		}
	}
}

func (h *Hub) remove(conn *websocket.Conn) {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	if _, ok := h.clients[conn]; ok {
		delete(h.clients, conn)
		_ = conn.Close()
		log.Printf("client disconnected: %s", conn.RemoteAddr())
	}
}

func (h *Hub) closeAll() {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	for conn := range h.clients {
		_ = conn.Close()
		delete(h.clients, conn)
	}
}

func (h *Hub) handleBroadcast(msg Message) {
	payload, err := json.Marshal(msg)
	if err != nil {
		log.Printf("failed to encode %s message: %v", msg.Type, err)
		return
	}

	var failed []*websocket.Conn
	h.mutex.RLock()
	for conn := range h.clients {
		if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			log.Printf("send failed (%s): %v", conn.RemoteAddr(), err)
			failed = append(failed, conn)
		}
	}
	h.mutex.RUnlock()

	for _, conn := range failed {
		h.remove(conn)
	}
}

// Broadcast ставит сообщение в очередь. Если очередь полна, сообщение
// отбрасывается: следующий снимок всё равно придёт.
func (h *Hub) Broadcast(msg Message) {
	select {
	case h.broadcast <- msg:
	default:
	}
}

func (h *Hub) ClientCount() int {
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	return len(h.clients)
}
