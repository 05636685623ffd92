package suit

import (
	"fmt"
	"strings"
)

// Suit is one of the four French playing-card suits.
// The zero value is not a valid suit.
type Suit uint8

const (
	Hearts Suit = iota + 1
	Diamonds
	Clubs
	Spades
)

// Color is the two-way red/black classification of a suit.
type Color uint8

const (
	Red Color = iota
	Black
)

// String returns "Red" or "Black".
func (c Color) String() string {
	if c == Black {
		return "Black"
	}
	return "Red"
}

// Suits returns all four suits in declaration order:
// Hearts, Diamonds, Clubs, Spades.
func Suits() []Suit {
	return []Suit{Hearts, Diamonds, Clubs, Spades}
}

// Color returns Black for Clubs and Spades, Red for Hearts and Diamonds.
func (s Suit) Color() Color {
	switch s {
	case Clubs, Spades:
		return Black
	default:
		return Red
	}
}

// String returns the suit's display name, e.g. "Hearts".
func (s Suit) String() string {
	switch s {
	case Hearts:
		return "Hearts"
	case Diamonds:
		return "Diamonds"
	case Clubs:
		return "Clubs"
	case Spades:
		return "Spades"
	}
	return fmt.Sprintf("Suit(%d)", uint8(s))
}

// GoString returns the type-qualified diagnostic form used by %#v,
// e.g. "suit.Hearts".
func (s Suit) GoString() string {
	if s.Valid() != nil {
		return fmt.Sprintf("suit.Suit(%d)", uint8(s))
	}
	return "suit." + s.String()
}

// Tag returns the one-character tag carried by the black suits ('C' for
// Clubs, 'S' for Spades). The red suits have no tag and return zero.
func (s Suit) Tag() byte {
	switch s {
	case Clubs:
		return 'C'
	case Spades:
		return 'S'
	}
	return 0
}

// Symbol returns the suit's pip glyph.
func (s Suit) Symbol() string {
	switch s {
	case Hearts:
		return "♥"
	case Diamonds:
		return "♦"
	case Clubs:
		return "♣"
	case Spades:
		return "♠"
	}
	return "?"
}

// Valid reports whether s is one of the four declared suits.
func (s Suit) Valid() error {
	if s < Hearts || s > Spades {
		return fmt.Errorf("invalid suit value: %d", uint8(s))
	}
	return nil
}

// ParseSuit converts a suit name ("hearts") or single-letter form ("h")
// to its Suit. Matching is case-insensitive.
func ParseSuit(name string) (Suit, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "hearts", "h":
		return Hearts, nil
	case "diamonds", "d":
		return Diamonds, nil
	case "clubs", "c":
		return Clubs, nil
	case "spades", "s":
		return Spades, nil
	}
	return 0, fmt.Errorf("unknown suit: %q", name)
}
