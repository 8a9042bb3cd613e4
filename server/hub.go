package server

import (
	"log"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/strahius/scopa"
	"github.com/strahius/scopa/protocol"
)

// OutboundMessage is the envelope every room member receives when the
// engine emits a new state
type OutboundMessage struct {
	Event  protocol.GameEvent  `json:"event"`
	State  *scopa.GameState    `json:"state,omitempty"`
	Action *scopa.PlayerAction `json:"action,omitempty"`
}

// Hub fans engine broadcasts out to the websocket connections of a
// room. It implements scopa.Broadcaster.
type Hub struct {
	mu    sync.Mutex
	rooms map[string]map[*websocket.Conn]bool
}

// NewHub constructs an empty Hub
func NewHub() *Hub {
	return &Hub{
		rooms: map[string]map[*websocket.Conn]bool{},
	}
}

// Register adds a connection to a room
func (h *Hub) Register(roomID string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.rooms[roomID] == nil {
		h.rooms[roomID] = map[*websocket.Conn]bool{}
	}
	h.rooms[roomID][conn] = true
}

// Unregister removes a connection from a room
func (h *Hub) Unregister(roomID string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	delete(h.rooms[roomID], conn)
	if len(h.rooms[roomID]) == 0 {
		delete(h.rooms, roomID)
	}
}

// Emit delivers a state and action description to every member of the
// room. Fire and forget: a failed write drops that connection only.
func (h *Hub) Emit(roomID string, event protocol.GameEvent, state *scopa.GameState, action *scopa.PlayerAction) {
	payload := OutboundMessage{Event: event, State: state, Action: action}

	h.mu.Lock()
	defer h.mu.Unlock()

	for conn := range h.rooms[roomID] {
		if err := conn.WriteJSON(payload); err != nil {
			log.Printf("dropping connection in room %s: %s", roomID, err.Error())
			conn.Close()
			delete(h.rooms[roomID], conn)
		}
	}
}
