package deck

import (
	"math/rand"
)

// Size is the number of cards in a full deck
const Size = 40

// Deck represents a deck of cards. The front of the deck is the next
// card to be dealt.
type Deck []Card

// New creates an ordered deck of 40 cards
func New() Deck {
	cards := make(Deck, 0, Size)
	for suit := range suitNames {
		for rank := 1; rank <= int(King); rank++ {
			c, _ := NewCard(rank, suit)
			cards = append(cards, c)
		}
	}
	return cards
}

// Shuffle shuffles the deck of cards
func (d Deck) Shuffle() {
	rand.Shuffle(len(d), func(i, j int) {
		d[i], d[j] = d[j], d[i]
	})
}

// Deal removes and returns n cards from the front of the deck,
// or every remaining card if fewer than n are left
func (d *Deck) Deal(n int) []Card {
	if n < 0 {
		return []Card{}
	}
	if n > len(*d) {
		n = len(*d)
	}
	dealt := make([]Card, n)
	copy(dealt, (*d)[:n])
	*d = (*d)[n:]
	return dealt
}
