package scopa

import (
	"errors"
	"testing"

	"github.com/strahius/scopa/deck"
	utils "github.com/strahius/scopa/internal"
	"github.com/strahius/scopa/protocol"
)

func TestResolvePlayOnTable(t *testing.T) {
	oldState := GameState{
		Deck:  cards(t, "10-Swords", "9-Swords"),
		Table: cards(t, "5-Swords"),
		Players: []Player{
			newTestPlayer(t, "P1", "3-Golds", "2-Cups"),
			newTestPlayer(t, "P2", "6-Clubs"),
		},
		ActivePlayer: "P1",
		Status:       StatusInProgress,
	}

	newState, resolved, err := resolvePlayerAction(oldState, PlayerAction{
		Type:       protocol.PlayOnTable,
		Card:       "2-Cups",
		PlayerName: "P1",
	})
	utils.AssertNoError(t, err)

	t.Run("card moves from hand to table", func(t *testing.T) {
		utils.AssertDeepEqual(t, newState.Table, cards(t, "5-Swords", "2-Cups"))

		p1, _ := playerByName(newState, "P1")
		utils.AssertDeepEqual(t, p1.Hand, cards(t, "3-Golds"))
	})

	t.Run("turn passes to the opponent", func(t *testing.T) {
		utils.AssertEqual(t, newState.ActivePlayer, "P2")
		utils.AssertEqual(t, newState.Players[0].Username, "P2")
		utils.AssertEqual(t, newState.Players[1].Username, "P1")
	})

	t.Run("description names player and card", func(t *testing.T) {
		utils.AssertEqual(t, resolved.Description,
			"Player <strong>P1</strong> placed <strong>Two of Cups</strong> on the table")
	})

	t.Run("prior snapshot is untouched", func(t *testing.T) {
		utils.AssertEqual(t, len(oldState.Table), 1)
		p1, _ := playerByName(oldState, "P1")
		utils.AssertEqual(t, len(p1.Hand), 2)
		utils.AssertEqual(t, oldState.ActivePlayer, "P1")
	})

	t.Run("cards are conserved", func(t *testing.T) {
		utils.AssertEqual(t, newState.CardCount(), oldState.CardCount())
	})
}

func TestResolveCapture(t *testing.T) {
	t.Run("single-card capture", func(t *testing.T) {
		oldState := GameState{
			Deck:  cards(t, "10-Swords"),
			Table: cards(t, "3-Cups"),
			Players: []Player{
				newTestPlayer(t, "P1", "3-Golds"),
				newTestPlayer(t, "P2", "6-Clubs"),
			},
			ActivePlayer: "P1",
			Status:       StatusInProgress,
		}

		newState, resolved, err := resolvePlayerAction(oldState, PlayerAction{
			Type:       protocol.Capture,
			Card:       "3-Golds",
			TableCards: []string{"3-Cups"},
			PlayerName: "P1",
		})
		utils.AssertNoError(t, err)

		utils.AssertEqual(t, len(newState.Table), 0)
		utils.AssertEqual(t, newState.LatestCaptured, "P1")
		utils.AssertEqual(t, newState.ActivePlayer, "P2")

		p1, _ := playerByName(newState, "P1")
		utils.AssertDeepEqual(t, p1.Captured, cards(t, "3-Golds", "3-Cups"))
		utils.AssertEqual(t, len(p1.Hand), 0)

		utils.AssertEqual(t, resolved.Description,
			"Player <strong>P1</strong> captured <strong>Three of Cups</strong> with a <strong>Three of Golds</strong>")
	})

	t.Run("multi-card capture removes exactly the swept cards", func(t *testing.T) {
		oldState := GameState{
			Deck:  cards(t, "10-Swords"),
			Table: cards(t, "1-Cups", "9-Clubs", "3-Swords", "3-Clubs"),
			Players: []Player{
				newTestPlayer(t, "P1", "7-Golds", "5-Cups"),
				newTestPlayer(t, "P2", "6-Clubs"),
			},
			ActivePlayer: "P1",
			Status:       StatusInProgress,
		}

		newState, resolved, err := resolvePlayerAction(oldState, PlayerAction{
			Type:       protocol.Capture,
			Card:       "7-Golds",
			TableCards: []string{"1-Cups", "3-Swords", "3-Clubs"},
			PlayerName: "P1",
		})
		utils.AssertNoError(t, err)

		utils.AssertDeepEqual(t, newState.Table, cards(t, "9-Clubs"))

		p1, _ := playerByName(newState, "P1")
		utils.AssertDeepEqual(t, p1.Captured, cards(t, "7-Golds", "1-Cups", "3-Swords", "3-Clubs"))

		utils.AssertEqual(t, resolved.Description,
			"Player <strong>P1</strong> captured <strong>Ace of Cups</strong>, <strong>Three of Swords</strong> and <strong>Three of Clubs</strong> with a <strong>Seven of Golds</strong>")

		utils.AssertEqual(t, newState.CardCount(), oldState.CardCount())
	})

	t.Run("two swept cards join with and", func(t *testing.T) {
		oldState := GameState{
			Table: cards(t, "2-Cups", "4-Swords"),
			Players: []Player{
				newTestPlayer(t, "P1", "6-Golds"),
				newTestPlayer(t, "P2", "6-Clubs"),
			},
			ActivePlayer: "P1",
			Status:       StatusInProgress,
		}

		_, resolved, err := resolvePlayerAction(oldState, PlayerAction{
			Type:       protocol.Capture,
			Card:       "6-Golds",
			TableCards: []string{"2-Cups", "4-Swords"},
			PlayerName: "P1",
		})
		utils.AssertNoError(t, err)

		utils.AssertEqual(t, resolved.Description,
			"Player <strong>P1</strong> captured <strong>Two of Cups</strong> and <strong>Four of Swords</strong> with a <strong>Six of Golds</strong>")
	})
}

func TestResolveFailures(t *testing.T) {
	base := func() GameState {
		return GameState{
			Table: cards(t, "3-Cups"),
			Players: []Player{
				newTestPlayer(t, "P1", "3-Golds"),
				newTestPlayer(t, "P2", "6-Clubs"),
			},
			ActivePlayer: "P1",
			Status:       StatusInProgress,
		}
	}

	t.Run("card missing from hand", func(t *testing.T) {
		_, _, err := resolvePlayerAction(base(), PlayerAction{
			Type:       protocol.PlayOnTable,
			Card:       "9-Swords",
			PlayerName: "P1",
		})
		utils.AssertTrue(t, errors.Is(err, ErrLookupFailure))
	})

	t.Run("table card missing", func(t *testing.T) {
		_, _, err := resolvePlayerAction(base(), PlayerAction{
			Type:       protocol.Capture,
			Card:       "3-Golds",
			TableCards: []string{"3-Swords"},
			PlayerName: "P1",
		})
		utils.AssertTrue(t, errors.Is(err, ErrLookupFailure))
	})

	t.Run("active player not in state", func(t *testing.T) {
		state := base()
		state.ActivePlayer = "interloper"

		_, _, err := resolvePlayerAction(state, PlayerAction{
			Type:       protocol.PlayOnTable,
			Card:       "3-Golds",
			PlayerName: "interloper",
		})
		utils.AssertTrue(t, errors.Is(err, ErrInvariantViolation))
	})

	t.Run("wrong number of players", func(t *testing.T) {
		state := base()
		state.Players = state.Players[:1]

		_, _, err := resolvePlayerAction(state, PlayerAction{
			Type:       protocol.PlayOnTable,
			Card:       "3-Golds",
			PlayerName: "P1",
		})
		utils.AssertTrue(t, errors.Is(err, ErrInvariantViolation))
	})
}

// cards builds a card slice from canonical keys
func cards(t *testing.T, keys ...string) []deck.Card {
	t.Helper()

	out := make([]deck.Card, len(keys))
	for i, key := range keys {
		c, err := deck.FromKey(key)
		if err != nil {
			t.Fatalf("bad card key %q: %s", key, err.Error())
		}
		out[i] = c
	}
	return out
}

func newTestPlayer(t *testing.T, username string, handKeys ...string) Player {
	t.Helper()

	return Player{
		Username: username,
		Hand:     cards(t, handKeys...),
		Captured: []deck.Card{},
		Scopa:    []deck.Card{},
	}
}

func playerByName(state GameState, username string) (Player, bool) {
	idx, ok := state.findPlayer(username)
	if !ok {
		return Player{}, false
	}
	return state.Players[idx], true
}
