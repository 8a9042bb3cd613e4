package scopa

import (
	"github.com/strahius/scopa/deck"
	"github.com/strahius/scopa/score"
)

// Status represents the lifecycle status of a game state
type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in-progress"
	StatusRoundEnded Status = "round-ended"
	StatusEnded      Status = "ended"
)

const (
	handSize  = 3
	tableSize = 4
)

// Player represents one of the two players in a room
type Player struct {
	Username string       `json:"username"`
	Hand     []deck.Card  `json:"hand"`
	Captured []deck.Card  `json:"captured"`
	Scopa    []deck.Card  `json:"scopa"`
	Score    *score.Score `json:"score,omitempty"`
}

// GameState is one immutable snapshot of a room's game. Transitions
// never mutate a snapshot in place; every accepted action produces a
// new one, appended to the room's history.
type GameState struct {
	Deck           deck.Deck   `json:"deck"`
	Table          []deck.Card `json:"table"`
	Players        []Player    `json:"players"`
	ActivePlayer   string      `json:"activePlayer"`
	LatestCaptured string      `json:"latestCaptured,omitempty"`
	Status         Status      `json:"status"`
}

// Room is a store-facing view of a room: its identity and the ordered
// history of its game states. States[len-1] is the current state.
type Room struct {
	ID     string      `json:"id"`
	States []GameState `json:"states"`
}

// NewGameState shuffles a fresh deck and deals the opening hands and
// table. totals seeds each player's running score for rounds after the
// first; pass nil for a brand new game.
func NewGameState(usernames []string, activePlayer string, totals []int) GameState {
	d := deck.New()
	d.Shuffle()

	players := make([]Player, len(usernames))
	for i, username := range usernames {
		players[i] = Player{
			Username: username,
			Hand:     d.Deal(handSize),
			Captured: []deck.Card{},
			Scopa:    []deck.Card{},
		}
		if totals != nil {
			players[i].Score = &score.Score{Total: totals[i]}
		}
	}

	if activePlayer == "" {
		activePlayer = usernames[0]
	}

	table := d.Deal(tableSize)

	return GameState{
		Deck:         d,
		Table:        table,
		Players:      players,
		ActivePlayer: activePlayer,
		Status:       StatusInProgress,
	}
}

// Clone returns a deep copy of the state
func (s GameState) Clone() GameState {
	clone := s
	clone.Deck = append(deck.Deck{}, s.Deck...)
	clone.Table = append([]deck.Card{}, s.Table...)
	clone.Players = make([]Player, len(s.Players))
	for i, p := range s.Players {
		clone.Players[i] = p.clone()
	}
	return clone
}

func (p Player) clone() Player {
	clone := p
	clone.Hand = append([]deck.Card{}, p.Hand...)
	clone.Captured = append([]deck.Card{}, p.Captured...)
	clone.Scopa = append([]deck.Card{}, p.Scopa...)
	if p.Score != nil {
		scoreCopy := *p.Score
		clone.Score = &scoreCopy
	}
	return clone
}

// findPlayer returns the index of the player with the given username
func (s GameState) findPlayer(username string) (int, bool) {
	for i, p := range s.Players {
		if p.Username == username {
			return i, true
		}
	}
	return -1, false
}

// CardCount is the number of cards across the deck, hands, table,
// captured piles and sweep markers. It must be 40 for the lifetime of
// a round.
func (s GameState) CardCount() int {
	count := len(s.Deck) + len(s.Table)
	for _, p := range s.Players {
		count += len(p.Hand) + len(p.Captured) + len(p.Scopa)
	}
	return count
}
