// Package realtime pushes board and user events to websocket
// subscribers. Clients join rooms by sending joinRoom or joinUser
// messages; the hub fans published events out to every member of the
// matching room.
package realtime

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
)

// Event names pushed over the wire.
const (
	EventNewPost      = "newPost"
	EventLikeUpdate   = "likeUpdate"
	EventNewReply     = "newReply"
	EventDeletePost   = "deletePost"
	EventDeleteReply  = "deleteReply"
	EventNotification = "notification"
)

type envelope struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data,omitempty"`
	Room  string          `json:"room,omitempty"`
	User  string          `json:"user,omitempty"`
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Hub tracks room membership and broadcasts events to rooms.
type Hub struct {
	mu    sync.RWMutex
	rooms map[string]map[*client]struct{}
}

func NewHub() *Hub {
	return &Hub{rooms: make(map[string]map[*client]struct{})}
}

// Publish marshals the event once and sends it to every client in the
// room. Slow clients are dropped rather than blocking the publisher.
func (h *Hub) Publish(room, event string, data any) {
	payload, err := json.Marshal(data)
	if err != nil {
		slog.Error("marshaling realtime event", "event", event, "error", err)
		return
	}
	msg, err := json.Marshal(envelope{Event: event, Data: payload})
	if err != nil {
		slog.Error("marshaling realtime envelope", "event", event, "error", err)
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.rooms[room] {
		select {
		case c.send <- msg:
		default:
			slog.Warn("dropping slow realtime client", "room", room)
		}
	}
}

func (h *Hub) join(room string, c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.rooms[room] == nil {
		h.rooms[room] = make(map[*client]struct{})
	}
	h.rooms[room][c] = struct{}{}
	c.rooms[room] = struct{}{}
}

func (h *Hub) unregister(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for room := range c.rooms {
		delete(h.rooms[room], c)
		if len(h.rooms[room]) == 0 {
			delete(h.rooms, room)
		}
	}
}

// ServeHTTP upgrades the connection and runs the client pumps.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Warn("websocket upgrade failed", "error", err)
		return
	}

	c := &client{
		hub:   h,
		conn:  conn,
		send:  make(chan []byte, 16),
		rooms: make(map[string]struct{}),
	}
	go c.writePump()
	c.readPump()
}

type client struct {
	hub   *Hub
	conn  *websocket.Conn
	send  chan []byte
	rooms map[string]struct{}
}

func (c *client) readPump() {
	defer func() {
		c.hub.unregister(c)
		close(c.send)
		_ = c.conn.Close()
	}()

	for {
		_, raw, err := c.conn.ReadMessage()
		if err != nil {
			return
		}
		var msg envelope
		if err := json.Unmarshal(raw, &msg); err != nil {
			continue
		}
		switch msg.Event {
		case "joinRoom":
			if msg.Room != "" {
				c.hub.join(msg.Room, c)
			}
		case "joinUser":
			if msg.User != "" {
				c.hub.join(msg.User, c)
			}
		}
	}
}

func (c *client) writePump() {
	for msg := range c.send {
		if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			return
		}
	}
}
