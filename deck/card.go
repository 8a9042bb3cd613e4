package deck

import (
	"fmt"
	"strconv"
	"strings"
)

// Rank represents a card's rank in an Italian 40-card deck
type Rank int

const (
	Ace Rank = iota + 1
	Two
	Three
	Four
	Five
	Six
	Seven
	Knave
	Knight
	King
)

var rankNames = []string{"Ace", "Two", "Three", "Four", "Five", "Six", "Seven", "Knave", "Knight", "King"}

func (r Rank) String() string {
	return rankNames[r-1]
}

// Suit represents a suit in an Italian 40-card deck
type Suit int

const (
	Golds Suit = iota
	Clubs
	Cups
	Swords
)

var suitNames = []string{"Golds", "Clubs", "Cups", "Swords"}

func (s Suit) String() string {
	return suitNames[s]
}

// Card is an immutable rank/suit pair
type Card struct {
	Rank Rank `json:"rank"`
	Suit Suit `json:"suit"`
}

// NewCard constructs a card
func NewCard(rank, suit int) (Card, error) {
	if rank < int(Ace) || rank > int(King) || suit < int(Golds) || suit > int(Swords) {
		return Card{}, fmt.Errorf("arguments out of range: rank %d, suit %d", rank, suit)
	}
	return Card{Rank: Rank(rank), Suit: Suit(suit)}, nil
}

// Key returns the canonical string encoding of a card, e.g. "3-Cups".
// Keys are used for set membership and equality on the wire.
func (c Card) Key() string {
	return fmt.Sprintf("%d-%s", int(c.Rank), c.Suit)
}

// FromKey is the inverse of Key
func FromKey(key string) (Card, error) {
	rankPart, suitPart, found := strings.Cut(key, "-")
	if !found {
		return Card{}, fmt.Errorf("malformed card key %q", key)
	}

	rank, err := strconv.Atoi(rankPart)
	if err != nil {
		return Card{}, fmt.Errorf("malformed card key %q", key)
	}

	for i, name := range suitNames {
		if name == suitPart {
			return NewCard(rank, i)
		}
	}

	return Card{}, fmt.Errorf("unknown suit in card key %q", key)
}

// Name returns a card's display name, e.g. "Three of Cups"
func (c Card) Name() string {
	return fmt.Sprintf("%s of %s", c.Rank, c.Suit)
}

func (c Card) String() string {
	return c.Name()
}
