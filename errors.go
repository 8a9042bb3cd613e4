package scopa

import "errors"

var (
	// ErrInvariantViolation means the state itself is broken, e.g. the
	// active player is missing from the player list. Fatal for the
	// room's current state.
	ErrInvariantViolation = errors.New("game state invariant violated")

	// ErrLookupFailure means an action referenced a card that is not in
	// the expected collection. Usually a stale client.
	ErrLookupFailure = errors.New("card not found")

	ErrInsufficientHistory = errors.New("no previous state to revert to")
	ErrMissingRoom         = errors.New("unknown room")
	ErrMissingState        = errors.New("room has no game states")
	ErrOutOfTurn           = errors.New("not this player's turn")
	ErrIllegalCapture      = errors.New("table cards do not match the played card")
)
