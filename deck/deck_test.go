package deck

import (
	"testing"

	utils "github.com/strahius/scopa/internal"
)

func TestDeck(t *testing.T) {
	t.Run("full deck has 40 distinct cards", func(t *testing.T) {
		deckOfCards := New()
		utils.AssertEqual(t, len(deckOfCards), Size)

		seen := map[string]bool{}
		for _, c := range deckOfCards {
			seen[c.Key()] = true
		}
		utils.AssertEqual(t, len(seen), Size)
	})

	t.Run("deal removes cards from the front", func(t *testing.T) {
		deckOfCards := New()
		next := deckOfCards[0]

		dealt := deckOfCards.Deal(3)
		utils.AssertEqual(t, len(dealt), 3)
		utils.AssertEqual(t, dealt[0], next)
		utils.AssertEqual(t, len(deckOfCards), Size-3)
	})

	t.Run("deal past the end empties the deck", func(t *testing.T) {
		deckOfCards := New()
		deckOfCards.Deal(Size - 1)

		dealt := deckOfCards.Deal(3)
		utils.AssertEqual(t, len(dealt), 1)
		utils.AssertEqual(t, len(deckOfCards), 0)
	})

	t.Run("shuffle preserves the card set", func(t *testing.T) {
		deckOfCards := New()
		deckOfCards.Shuffle()
		utils.AssertEqual(t, len(deckOfCards), Size)

		seen := map[string]bool{}
		for _, c := range deckOfCards {
			seen[c.Key()] = true
		}
		utils.AssertEqual(t, len(seen), Size)
	})
}
