package scopa

import (
	"context"
	"fmt"
	"sync"

	"github.com/strahius/scopa/protocol"
)

// RoomStore owns room identity and persists each room's ordered state
// history. Implementations must guarantee read-your-writes ordering for
// a single room. A nil *Room / *GameState with a nil error means the
// room or state does not exist.
type RoomStore interface {
	CreateRoom(ctx context.Context, roomID string) error
	GetRoom(ctx context.Context, roomID string) (*Room, error)
	GetCurrentState(ctx context.Context, roomID string) (*GameState, error)
	AddState(ctx context.Context, roomID string, state GameState) error
	RemoveLatestState(ctx context.Context, roomID string) error
}

// Broadcaster delivers a state and its action description to every
// member of a room. Fire and forget; delivery guarantees belong to the
// transport.
type Broadcaster interface {
	Emit(roomID string, event protocol.GameEvent, state *GameState, action *PlayerAction)
}

// Engine applies player actions to room state. Actions for the same
// room are serialized; rooms are independent of each other.
type Engine struct {
	store     RoomStore
	broadcast Broadcaster

	mu    sync.Mutex
	rooms map[string]*sync.Mutex
}

// NewEngine constructs an Engine around a room store and a broadcaster
func NewEngine(store RoomStore, broadcast Broadcaster) *Engine {
	return &Engine{
		store:     store,
		broadcast: broadcast,
		rooms:     map[string]*sync.Mutex{},
	}
}

func (e *Engine) roomLock(roomID string) *sync.Mutex {
	e.mu.Lock()
	defer e.mu.Unlock()

	lock, ok := e.rooms[roomID]
	if !ok {
		lock = &sync.Mutex{}
		e.rooms[roomID] = lock
	}
	return lock
}

// StartGame deals the opening state for a room and broadcasts it.
// Idempotent: a room that already has a state keeps it, so concurrent
// connection handlers cannot deal twice.
func (e *Engine) StartGame(ctx context.Context, roomID string, usernames []string) (*GameState, error) {
	lock := e.roomLock(roomID)
	lock.Lock()
	defer lock.Unlock()

	room, err := e.store.GetRoom(ctx, roomID)
	if err != nil {
		return nil, err
	}
	if room == nil {
		return nil, fmt.Errorf("%w: %q", ErrMissingRoom, roomID)
	}
	if len(room.States) > 0 {
		current := room.States[len(room.States)-1]
		return &current, nil
	}

	state := NewGameState(usernames, usernames[0], nil)
	if err := e.store.AddState(ctx, roomID, state); err != nil {
		return nil, err
	}

	e.broadcast.Emit(roomID, protocol.GameStarted, &state, nil)
	return &state, nil
}

// UpdateGameState derives the next authoritative state from a player
// action, persists it and broadcasts the result. Validation failures
// abort before any mutation, history append or broadcast.
func (e *Engine) UpdateGameState(ctx context.Context, roomID string, action PlayerAction) error {
	lock := e.roomLock(roomID)
	lock.Lock()
	defer lock.Unlock()

	room, err := e.store.GetRoom(ctx, roomID)
	if err != nil {
		return err
	}
	if room == nil {
		return fmt.Errorf("%w: %q", ErrMissingRoom, roomID)
	}
	if len(room.States) == 0 {
		return fmt.Errorf("%w: %q", ErrMissingState, roomID)
	}
	oldState := room.States[len(room.States)-1]

	if action.Type == protocol.Undo {
		if len(room.States) <= 1 {
			return ErrInsufficientHistory
		}

		if err := e.store.RemoveLatestState(ctx, roomID); err != nil {
			return err
		}

		previous := room.States[len(room.States)-2]
		action.Description = fmt.Sprintf("Player <strong>%s</strong> reverted their last turn", action.PlayerName)
		e.broadcast.Emit(roomID, protocol.CurrentState, &previous, &action)
		return nil
	}

	if err := Validate(oldState, action); err != nil {
		return err
	}

	tempState, resolvedAction, err := resolvePlayerAction(oldState, action)
	if err != nil {
		return err
	}

	finalState, roundFinished := resolveTurnEnd(tempState)
	if roundFinished {
		finalState = resolveRoundEnd(finalState)
	}

	if err := e.store.AddState(ctx, roomID, finalState); err != nil {
		return err
	}

	e.broadcast.Emit(roomID, protocol.CurrentState, &finalState, &resolvedAction)
	return nil
}

// RestartGameState deals a fresh round after a round has ended. The
// player who was not active when the round ended leads the new round,
// and running totals carry over.
func (e *Engine) RestartGameState(ctx context.Context, roomID string) error {
	lock := e.roomLock(roomID)
	lock.Lock()
	defer lock.Unlock()

	current, err := e.store.GetCurrentState(ctx, roomID)
	if err != nil {
		return err
	}
	if current == nil {
		return fmt.Errorf("%w: %q", ErrMissingState, roomID)
	}

	usernames := make([]string, len(current.Players))
	totals := make([]int, len(current.Players))
	nextPlayer := ""
	for i, p := range current.Players {
		usernames[i] = p.Username
		if p.Score != nil {
			totals[i] = p.Score.Total
		}
		if p.Username != current.ActivePlayer {
			nextPlayer = p.Username
		}
	}

	state := NewGameState(usernames, nextPlayer, totals)
	if err := e.store.AddState(ctx, roomID, state); err != nil {
		return err
	}

	e.broadcast.Emit(roomID, protocol.GameRestarted, &state, nil)
	return nil
}
