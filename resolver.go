package scopa

import (
	"fmt"
	"strings"

	"github.com/strahius/scopa/deck"
	"github.com/strahius/scopa/protocol"
)

// resolvePlayerAction applies a single play-on-table or capture action
// to a state snapshot. The result is an intermediate state, not
// necessarily the final one for this action; the round lifecycle runs
// afterwards. The returned action carries the rendered description.
func resolvePlayerAction(oldState GameState, action PlayerAction) (GameState, PlayerAction, error) {
	newState := oldState.Clone()

	if len(newState.Players) != 2 {
		return GameState{}, PlayerAction{}, fmt.Errorf("%w: expected 2 players, have %d", ErrInvariantViolation, len(newState.Players))
	}
	activeIdx, ok := newState.findPlayer(newState.ActivePlayer)
	if !ok {
		return GameState{}, PlayerAction{}, fmt.Errorf("%w: active player %q not in state", ErrInvariantViolation, newState.ActivePlayer)
	}
	active := newState.Players[activeIdx]
	opponent := newState.Players[1-activeIdx]

	hand, played, ok := removeCard(active.Hand, action.Card)
	if !ok {
		return GameState{}, PlayerAction{}, fmt.Errorf("%w: %s is not in %s's hand", ErrLookupFailure, action.Card, active.Username)
	}
	active.Hand = hand

	switch action.Type {
	case protocol.PlayOnTable:
		newState.Table = append(newState.Table, played)
		action.Description = fmt.Sprintf(
			"Player <strong>%s</strong> placed <strong>%s</strong> on the table",
			action.PlayerName, played.Name(),
		)

	case protocol.Capture:
		swept := make([]deck.Card, 0, len(action.TableCards))
		for _, key := range action.TableCards {
			table, tableCard, ok := removeCard(newState.Table, key)
			if !ok {
				return GameState{}, PlayerAction{}, fmt.Errorf("%w: %s is not on the table", ErrLookupFailure, key)
			}
			newState.Table = table
			swept = append(swept, tableCard)
		}

		active.Captured = append(active.Captured, played)
		active.Captured = append(active.Captured, swept...)
		newState.LatestCaptured = active.Username

		action.Description = fmt.Sprintf(
			"Player <strong>%s</strong> captured %s with a <strong>%s</strong>",
			action.PlayerName, joinCardNames(swept), played.Name(),
		)

	default:
		return GameState{}, PlayerAction{}, fmt.Errorf("resolver cannot handle action %q", action.Type)
	}

	// The acted-upon player moves to the back; their opponent is up next
	newState.Players = []Player{opponent, active}
	newState.ActivePlayer = opponent.Username

	return newState, action, nil
}

// removeCard removes the first card matching key, returning the
// shortened slice and the removed card
func removeCard(cards []deck.Card, key string) ([]deck.Card, deck.Card, bool) {
	for i, c := range cards {
		if c.Key() == key {
			out := make([]deck.Card, 0, len(cards)-1)
			out = append(out, cards[:i]...)
			out = append(out, cards[i+1:]...)
			return out, c, true
		}
	}
	return cards, deck.Card{}, false
}

// joinCardNames renders card names as "<strong>A</strong>, <strong>B</strong> and <strong>C</strong>"
func joinCardNames(cards []deck.Card) string {
	var sb strings.Builder
	for i, c := range cards {
		if i > 0 {
			if i < len(cards)-1 {
				sb.WriteString(", ")
			} else {
				sb.WriteString(" and ")
			}
		}
		fmt.Fprintf(&sb, "<strong>%s</strong>", c.Name())
	}
	return sb.String()
}
