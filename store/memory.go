package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/strahius/scopa"
)

// InMemoryRoomStore maps room id to state history. The default store
// for development and tests.
type InMemoryRoomStore struct {
	mu    sync.RWMutex
	rooms map[string]*scopa.Room
}

// NewInMemoryRoomStore constructs an InMemoryRoomStore
func NewInMemoryRoomStore() *InMemoryRoomStore {
	return &InMemoryRoomStore{
		rooms: map[string]*scopa.Room{},
	}
}

func (s *InMemoryRoomStore) CreateRoom(ctx context.Context, roomID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.rooms[roomID]; exists {
		return fmt.Errorf("room with id %s already exists", roomID)
	}

	s.rooms[roomID] = &scopa.Room{ID: roomID, States: []scopa.GameState{}}
	return nil
}

func (s *InMemoryRoomStore) GetRoom(ctx context.Context, roomID string) (*scopa.Room, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	room, ok := s.rooms[roomID]
	if !ok {
		return nil, nil
	}

	// callers get their own copy of the history slice
	states := make([]scopa.GameState, len(room.States))
	copy(states, room.States)
	return &scopa.Room{ID: room.ID, States: states}, nil
}

func (s *InMemoryRoomStore) GetCurrentState(ctx context.Context, roomID string) (*scopa.GameState, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	room, ok := s.rooms[roomID]
	if !ok || len(room.States) == 0 {
		return nil, nil
	}

	state := room.States[len(room.States)-1]
	return &state, nil
}

func (s *InMemoryRoomStore) AddState(ctx context.Context, roomID string, state scopa.GameState) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	room, ok := s.rooms[roomID]
	if !ok {
		return fmt.Errorf("%w: %q", scopa.ErrMissingRoom, roomID)
	}

	room.States = append(room.States, state)
	return nil
}

func (s *InMemoryRoomStore) RemoveLatestState(ctx context.Context, roomID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	room, ok := s.rooms[roomID]
	if !ok {
		return fmt.Errorf("%w: %q", scopa.ErrMissingRoom, roomID)
	}
	if len(room.States) == 0 {
		return fmt.Errorf("%w: %q", scopa.ErrMissingState, roomID)
	}

	room.States = room.States[:len(room.States)-1]
	return nil
}
