package scopa

import (
	"github.com/strahius/scopa/deck"
	"github.com/strahius/scopa/score"
)

// resolveRoundEnd scores a finished round and decides whether the game
// is over. The game ends when the leading player reaches the threshold
// with a total no other player shares; otherwise another round is dealt
// with the totals carried forward.
func resolveRoundEnd(oldState GameState) GameState {
	newState := oldState.Clone()

	piles := make([]score.Pile, len(newState.Players))
	carried := make([]int, len(newState.Players))
	for i, p := range newState.Players {
		// Sweep markers are still the player's cards for scoring purposes
		pile := make([]deck.Card, 0, len(p.Captured)+len(p.Scopa))
		pile = append(pile, p.Captured...)
		pile = append(pile, p.Scopa...)
		piles[i] = score.Pile{Captured: pile, Sweeps: len(p.Scopa)}

		if p.Score != nil {
			carried[i] = p.Score.Total
		}
	}

	scores := score.Final(piles)
	totalCounts := map[int]bool{}
	winnerIdx := 0
	for i := range scores {
		scores[i].Total += carried[i]
	}
	for i, s := range scores {
		if _, seen := totalCounts[s.Total]; seen {
			totalCounts[s.Total] = true
		} else {
			totalCounts[s.Total] = false
		}
		// Strictly greater, so an equal total never displaces the
		// earlier player. Deliberate: ties keep the game going anyway.
		if s.Total > scores[winnerIdx].Total {
			winnerIdx = i
		}
	}

	winningTotal := scores[winnerIdx].Total
	gameFinished := winningTotal >= score.EndOfGameScore && !totalCounts[winningTotal]

	if gameFinished {
		newState.Status = StatusEnded
	} else {
		newState.Status = StatusRoundEnded
	}

	for i := range newState.Players {
		s := scores[i]
		s.IsWinning = i == winnerIdx
		newState.Players[i].Score = &s
	}

	return newState
}
