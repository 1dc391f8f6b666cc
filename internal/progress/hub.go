// Package progress broadcasts generation-stage events to connected
// websocket clients, so a UI can show a live progress bar for a long
// generation run without polling.
package progress

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// Event is one stage transition broadcast to every subscriber of a run.
type Event struct {
	RunID   uuid.UUID `json:"run_id"`
	Stage   string    `json:"stage"`
	Done    bool      `json:"done"`
	Message string    `json:"message,omitempty"`
}

// Hub fans out Events to every client subscribed to a given run ID.
type Hub struct {
	upgrader websocket.Upgrader

	mu   sync.Mutex
	subs map[uuid.UUID]map[*websocket.Conn]struct{}
}

// NewHub builds an empty Hub.
func NewHub() *Hub {
	return &Hub{
		upgrader: websocket.Upgrader{ReadBufferSize: 1024, WriteBufferSize: 1024},
		subs:     make(map[uuid.UUID]map[*websocket.Conn]struct{}),
	}
}

// ServeWS upgrades the request to a websocket and subscribes it to runID
// until the connection closes.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request, runID uuid.UUID) error {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return err
	}
	h.subscribe(runID, conn)
	defer h.unsubscribe(runID, conn)

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return nil
		}
	}
}

func (h *Hub) subscribe(runID uuid.UUID, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.subs[runID] == nil {
		h.subs[runID] = make(map[*websocket.Conn]struct{})
	}
	h.subs[runID][conn] = struct{}{}
}

func (h *Hub) unsubscribe(runID uuid.UUID, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.subs[runID], conn)
	conn.Close()
}

// Broadcast sends ev to every subscriber of ev.RunID. Connections that
// fail to write are dropped.
func (h *Hub) Broadcast(ev Event) {
	data, err := json.Marshal(ev)
	if err != nil {
		return
	}

	h.mu.Lock()
	conns := make([]*websocket.Conn, 0, len(h.subs[ev.RunID]))
	for c := range h.subs[ev.RunID] {
		conns = append(conns, c)
	}
	h.mu.Unlock()

	for _, c := range conns {
		if err := c.WriteMessage(websocket.TextMessage, data); err != nil {
			h.unsubscribe(ev.RunID, c)
		}
	}
}
