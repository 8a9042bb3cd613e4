package score

import (
	"testing"

	"github.com/strahius/scopa/deck"
	utils "github.com/strahius/scopa/internal"
)

func TestFinal(t *testing.T) {
	t.Run("awards cards, golds and settebello to the dominant pile", func(t *testing.T) {
		big := cards(t, "1-Golds", "7-Golds", "3-Cups", "4-Swords", "10-Clubs")
		small := cards(t, "2-Cups", "5-Clubs")

		scores := Final([]Pile{{Captured: big}, {Captured: small}})

		utils.AssertEqual(t, scores[0].Cards, 1)
		utils.AssertEqual(t, scores[0].Golds, 1)
		utils.AssertEqual(t, scores[0].Settebello, 1)
		utils.AssertEqual(t, scores[1].Cards, 0)
		utils.AssertEqual(t, scores[1].Golds, 0)
		utils.AssertEqual(t, scores[1].Settebello, 0)
	})

	t.Run("a tied category awards no point", func(t *testing.T) {
		first := cards(t, "1-Golds", "3-Cups")
		second := cards(t, "2-Golds", "4-Swords")

		scores := Final([]Pile{{Captured: first}, {Captured: second}})

		utils.AssertEqual(t, scores[0].Cards, 0)
		utils.AssertEqual(t, scores[1].Cards, 0)
		utils.AssertEqual(t, scores[0].Golds, 0)
		utils.AssertEqual(t, scores[1].Golds, 0)
	})

	t.Run("primiera favours sevens over face cards", func(t *testing.T) {
		// 21+21+21+21 = 84 vs 16+16+16+16 = 64
		sevens := cards(t, "7-Golds", "7-Clubs", "7-Cups", "7-Swords")
		aces := cards(t, "1-Golds", "1-Clubs", "1-Cups", "1-Swords")

		scores := Final([]Pile{{Captured: aces}, {Captured: sevens}})

		utils.AssertEqual(t, scores[0].Primiera, 0)
		utils.AssertEqual(t, scores[1].Primiera, 1)
	})

	t.Run("missing suits weaken a primiera", func(t *testing.T) {
		// 21+21 = 42 vs 12+12+12+12 = 48
		twoSuits := cards(t, "7-Golds", "7-Clubs")
		fourSuits := cards(t, "2-Golds", "2-Clubs", "2-Cups", "2-Swords")

		scores := Final([]Pile{{Captured: twoSuits}, {Captured: fourSuits}})

		utils.AssertEqual(t, scores[0].Primiera, 0)
		utils.AssertEqual(t, scores[1].Primiera, 1)
	})

	t.Run("sweeps are worth a point each and feed the total", func(t *testing.T) {
		pile := cards(t, "7-Golds", "3-Cups", "4-Swords")

		scores := Final([]Pile{
			{Captured: pile, Sweeps: 2},
			{Captured: cards(t, "2-Cups"), Sweeps: 0},
		})

		utils.AssertEqual(t, scores[0].Scopa, 2)
		// cards + golds + settebello + primiera + 2 sweeps
		utils.AssertEqual(t, scores[0].Total, 6)
		utils.AssertEqual(t, scores[1].Total, 0)
	})

	t.Run("empty piles score nothing", func(t *testing.T) {
		scores := Final([]Pile{{}, {}})

		utils.AssertEqual(t, scores[0].Total, 0)
		utils.AssertEqual(t, scores[1].Total, 0)
	})
}

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
