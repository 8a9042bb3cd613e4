// Package score implements end-of-round scoring for scopa. It consumes
// the captured piles of all players and produces, per player, a component
// breakdown and a comparable total.
package score

import (
	"github.com/strahius/scopa/deck"
)

// EndOfGameScore is the total a sole leader must reach to win the game
const EndOfGameScore = 11

// Score is a per-player scoring breakdown. Each category field holds the
// points awarded for that category, not the underlying count.
type Score struct {
	Cards      int  `json:"cards"`
	Golds      int  `json:"golds"`
	Settebello int  `json:"settebello"`
	Primiera   int  `json:"primiera"`
	Scopa      int  `json:"scopa"`
	Total      int  `json:"total"`
	IsWinning  bool `json:"isWinning"`
}

// Pile is the scoring input for one player: the cards they captured
// during the round and the number of sweeps they achieved.
type Pile struct {
	Captured []deck.Card
	Sweeps   int
}

// Primiera card values. The best card per suit counts towards a
// player's primiera; face cards are worth least.
var primieraValues = map[deck.Rank]int{
	deck.Seven:  21,
	deck.Six:    18,
	deck.Ace:    16,
	deck.Five:   15,
	deck.Four:   14,
	deck.Three:  13,
	deck.Two:    12,
	deck.Knave:  10,
	deck.Knight: 10,
	deck.King:   10,
}

// Final scores a finished round. The result is aligned by player index.
// The cards, golds and primiera points go to the player leading the
// category; a tied category awards no point.
func Final(piles []Pile) []Score {
	scores := make([]Score, len(piles))

	awardCategory(scores, piles, func(p Pile) int { return len(p.Captured) }, func(s *Score) { s.Cards = 1 })
	awardCategory(scores, piles, countGolds, func(s *Score) { s.Golds = 1 })
	awardCategory(scores, piles, primiera, func(s *Score) { s.Primiera = 1 })

	for i, pile := range piles {
		if hasSettebello(pile.Captured) {
			scores[i].Settebello = 1
		}
		scores[i].Scopa = pile.Sweeps
		scores[i].Total = scores[i].Cards + scores[i].Golds + scores[i].Settebello + scores[i].Primiera + scores[i].Scopa
	}

	return scores
}

// awardCategory gives a point to the player with the strictly highest
// measure. Equal leaders cancel each other out.
func awardCategory(scores []Score, piles []Pile, measure func(Pile) int, award func(*Score)) {
	best, bestIdx, tied := -1, -1, false
	for i, pile := range piles {
		m := measure(pile)
		if m > best {
			best, bestIdx, tied = m, i, false
		} else if m == best {
			tied = true
		}
	}

	if bestIdx >= 0 && !tied && best > 0 {
		award(&scores[bestIdx])
	}
}

func countGolds(p Pile) int {
	count := 0
	for _, c := range p.Captured {
		if c.Suit == deck.Golds {
			count++
		}
	}
	return count
}

func hasSettebello(captured []deck.Card) bool {
	for _, c := range captured {
		if c.Rank == deck.Seven && c.Suit == deck.Golds {
			return true
		}
	}
	return false
}

// primiera returns the best four-suit combination value: the highest
// primiera value per suit, summed over the suits the player holds.
func primiera(p Pile) int {
	bestPerSuit := map[deck.Suit]int{}
	for _, c := range p.Captured {
		if v := primieraValues[c.Rank]; v > bestPerSuit[c.Suit] {
			bestPerSuit[c.Suit] = v
		}
	}

	sum := 0
	for _, v := range bestPerSuit {
		sum += v
	}
	return sum
}
