package scopa

import (
	"fmt"

	"github.com/strahius/scopa/deck"
	"github.com/strahius/scopa/protocol"
)

// PlayerAction is a single move proposed by a player. Card and
// TableCards carry canonical card keys, not card structs, matching
// what clients send over the wire.
type PlayerAction struct {
	Type        protocol.ActionType `json:"action"`
	Card        string              `json:"card,omitempty"`
	TableCards  []string            `json:"tableCards,omitempty"`
	PlayerName  string              `json:"playerName"`
	Description string              `json:"description,omitempty"`
}

// Validate rejects malformed or illegal actions before they reach the
// turn resolver. Capture legality (the swept cards must sum, by rank,
// to the played card's rank) is enforced here, at the intake boundary.
func Validate(state GameState, action PlayerAction) error {
	if action.PlayerName != state.ActivePlayer {
		return fmt.Errorf("%w: %q acted but %q is active", ErrOutOfTurn, action.PlayerName, state.ActivePlayer)
	}

	if action.Type == protocol.Undo {
		return nil
	}

	idx, ok := state.findPlayer(action.PlayerName)
	if !ok {
		return fmt.Errorf("%w: active player %q not in state", ErrInvariantViolation, action.PlayerName)
	}

	card, err := deck.FromKey(action.Card)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrLookupFailure, err.Error())
	}
	if !containsKey(state.Players[idx].Hand, action.Card) {
		return fmt.Errorf("%w: %s is not in %s's hand", ErrLookupFailure, action.Card, action.PlayerName)
	}

	switch action.Type {
	case protocol.PlayOnTable:
		return nil
	case protocol.Capture:
		if len(action.TableCards) == 0 {
			return fmt.Errorf("%w: no table cards named", ErrIllegalCapture)
		}

		sum := 0
		for _, key := range action.TableCards {
			tableCard, err := deck.FromKey(key)
			if err != nil {
				return fmt.Errorf("%w: %s", ErrLookupFailure, err.Error())
			}
			if !containsKey(state.Table, key) {
				return fmt.Errorf("%w: %s is not on the table", ErrLookupFailure, key)
			}
			sum += int(tableCard.Rank)
		}
		if sum != int(card.Rank) {
			return fmt.Errorf("%w: ranks sum to %d, played a %d", ErrIllegalCapture, sum, card.Rank)
		}
		return nil
	default:
		return fmt.Errorf("unknown action %q", action.Type)
	}
}

func containsKey(cards []deck.Card, key string) bool {
	for _, c := range cards {
		if c.Key() == key {
			return true
		}
	}
	return false
}
