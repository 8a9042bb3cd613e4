package protocol

// GameEvent identifies an event broadcast to the members of a room
type GameEvent string

const (
	CurrentState  GameEvent = "current-state"
	GameRestarted GameEvent = "game-restarted"
	NewJoiner     GameEvent = "new-joiner"
	GameStarted   GameEvent = "game-started"
)

// ActionType identifies a player action on the wire
type ActionType string

const (
	PlayOnTable ActionType = "play-on-table"
	Capture     ActionType = "capture"
	Undo        ActionType = "undo"
)

// ClientEvent identifies a message sent by a room member
type ClientEvent string

const (
	PlayerAction ClientEvent = "player-action"
	RestartRound ClientEvent = "restart-round"
)
