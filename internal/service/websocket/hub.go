package websocket

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"photocapture/internal/dto"
	"photocapture/internal/logger"
)

const (
	writeWait       = 5 * time.Second
	broadcastBuffer = 64
)

type message struct {
	kind int
	data []byte
}

// HubService fans preview frames and widget events out to every connected
// viewer. All writes to client connections happen on the Run goroutine.
type HubService struct {
	clients    map[*websocket.Conn]bool
	broadcast  chan message
	register   chan *websocket.Conn
	unregister chan *websocket.Conn
	done       chan struct{}
	mutex      sync.RWMutex
	logger     *logger.Logger
}

func NewHubService(logger *logger.Logger) *HubService {
	return &HubService{
		clients:    make(map[*websocket.Conn]bool),
		broadcast:  make(chan message, broadcastBuffer),
		register:   make(chan *websocket.Conn),
		unregister: make(chan *websocket.Conn),
		done:       make(chan struct{}),
		logger:     logger,
	}
}

// Run serves the hub until ctx is cancelled, then closes every client.
func (h *HubService) Run(ctx context.Context) {
	defer close(h.done)

	for {
		select {
		case <-ctx.Done():
			h.mutex.Lock()
			for client := range h.clients {
				client.Close()
				delete(h.clients, client)
			}
			h.mutex.Unlock()
			return

		case client := <-h.register:
			h.mutex.Lock()
			h.clients[client] = true
			count := len(h.clients)
			h.mutex.Unlock()
			h.logger.Info("Viewer connected. Total: %d", count)

		case client := <-h.unregister:
			h.mutex.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				client.Close()
			}
			count := len(h.clients)
			h.mutex.Unlock()
			h.logger.Info("Viewer disconnected. Total: %d", count)

		case msg := <-h.broadcast:
			h.write(msg)
		}
	}
}

func (h *HubService) write(msg message) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	for client := range h.clients {
		client.SetWriteDeadline(time.Now().Add(writeWait))
		if err := client.WriteMessage(msg.kind, msg.data); err != nil {
			h.logger.Error("Error sending message: %v", err)
			delete(h.clients, client)
			client.Close()
		}
	}
}

// Register adds a viewer. After the hub has stopped the connection is closed instead.
func (h *HubService) Register(client *websocket.Conn) {
	select {
	case h.register <- client:
	case <-h.done:
		client.Close()
	}
}

func (h *HubService) Unregister(client *websocket.Conn) {
	select {
	case h.unregister <- client:
	case <-h.done:
	}
}

// PublishFrame sends an encoded preview frame as a binary message. Frames
// are dropped while the broadcast queue is full.
func (h *HubService) PublishFrame(frame []byte) {
	select {
	case h.broadcast <- message{kind: websocket.BinaryMessage, data: frame}:
	default:
	}
}

// BroadcastEvent sends event as a JSON text message to every viewer.
func (h *HubService) BroadcastEvent(event dto.Event) {
	data, err := json.Marshal(event)
	if err != nil {
		h.logger.Error("Failed to encode %s event: %v", event.Type, err)
		return
	}

	select {
	case h.broadcast <- message{kind: websocket.TextMessage, data: data}:
	case <-h.done:
	}
}

// Notify pushes a user-visible notification.
func (h *HubService) Notify(level, text string) {
	h.BroadcastEvent(dto.Event{Type: dto.EventNotification, Level: level, Message: text})
}

func (h *HubService) GetClientCount() int {
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	return len(h.clients)
}
