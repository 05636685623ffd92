package card

import (
	"fmt"
	"strings"

	"github.com/arcanaland/suitomancer/internal/suit"
)

// Rank is a card's face value, Ace (1) through King (13).
type Rank uint8

const (
	Ace Rank = iota + 1
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
)

// String returns the rank's display name: "Ace", "2" .. "10", "Jack",
// "Queen", "King".
func (r Rank) String() string {
	switch r {
	case Ace:
		return "Ace"
	case Jack:
		return "Jack"
	case Queen:
		return "Queen"
	case King:
		return "King"
	}
	if r >= Two && r <= Ten {
		return fmt.Sprintf("%d", uint8(r))
	}
	return fmt.Sprintf("Rank(%d)", uint8(r))
}

// Valid reports whether r is within Ace..King.
func (r Rank) Valid() error {
	if r < Ace || r > King {
		return fmt.Errorf("invalid rank value: %d", uint8(r))
	}
	return nil
}

// Card represents a single playing card: a rank in a suit.
type Card struct {
	Rank Rank
	Suit suit.Suit
}

// New builds a card, rejecting out-of-range ranks and suits.
func New(r Rank, s suit.Suit) (Card, error) {
	if err := r.Valid(); err != nil {
		return Card{}, err
	}
	if err := s.Valid(); err != nil {
		return Card{}, err
	}
	return Card{Rank: r, Suit: s}, nil
}

// String returns the card's display name, e.g. "Ace of Spades".
func (c Card) String() string {
	return fmt.Sprintf("%s of %s", c.Rank, c.Suit)
}

// Color returns the card's classification, which is its suit's.
func (c Card) Color() suit.Color {
	return c.Suit.Color()
}

// PairWith reports whether c and other form a pair (same rank, any suits).
func (c Card) PairWith(other Card) bool {
	return c.Rank == other.Rank
}

// ParseCard converts a short card string such as "AS", "10h" or "qd" to
// a Card. The last character names the suit, the rest the rank.
func ParseCard(s string) (Card, error) {
	s = strings.TrimSpace(s)
	if len(s) < 2 {
		return Card{}, fmt.Errorf("invalid card string: %q", s)
	}

	st, err := suit.ParseSuit(s[len(s)-1:])
	if err != nil {
		return Card{}, fmt.Errorf("invalid card string %q: %v", s, err)
	}

	var rank Rank
	switch strings.ToUpper(s[:len(s)-1]) {
	case "A":
		rank = Ace
	case "2":
		rank = Two
	case "3":
		rank = Three
	case "4":
		rank = Four
	case "5":
		rank = Five
	case "6":
		rank = Six
	case "7":
		rank = Seven
	case "8":
		rank = Eight
	case "9":
		rank = Nine
	case "T", "10":
		rank = Ten
	case "J":
		rank = Jack
	case "Q":
		rank = Queen
	case "K":
		rank = King
	default:
		return Card{}, fmt.Errorf("invalid rank in card string: %q", s)
	}

	return Card{Rank: rank, Suit: st}, nil
}
