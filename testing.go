package scopa

import (
	"sync"

	"github.com/strahius/scopa/protocol"
)

// BroadcastEvent is one recorded Emit call
type BroadcastEvent struct {
	RoomID string
	Event  protocol.GameEvent
	State  *GameState
	Action *PlayerAction
}

// SpyBroadcaster records emitted events for inspection in tests
type SpyBroadcaster struct {
	mu     sync.Mutex
	Events []BroadcastEvent
}

func NewSpyBroadcaster() *SpyBroadcaster {
	return &SpyBroadcaster{Events: []BroadcastEvent{}}
}

func (b *SpyBroadcaster) Emit(roomID string, event protocol.GameEvent, state *GameState, action *PlayerAction) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.Events = append(b.Events, BroadcastEvent{roomID, event, state, action})
}

// Last returns the most recently emitted event, or nil
func (b *SpyBroadcaster) Last() *BroadcastEvent {
	b.mu.Lock()
	defer b.mu.Unlock()

	if len(b.Events) == 0 {
		return nil
	}
	return &b.Events[len(b.Events)-1]
}
