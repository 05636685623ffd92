package card

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcanaland/suitomancer/internal/suit"
)

func TestCardString(t *testing.T) {
	tests := []struct {
		card Card
		want string
	}{
		{Card{Ace, suit.Spades}, "Ace of Spades"},
		{Card{Four, suit.Clubs}, "4 of Clubs"},
		{Card{Ten, suit.Hearts}, "10 of Hearts"},
		{Card{Queen, suit.Diamonds}, "Queen of Diamonds"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.card.String())
	}
}

func TestCardColor(t *testing.T) {
	assert.Equal(t, suit.Black, Card{King, suit.Spades}.Color())
	assert.Equal(t, suit.Black, Card{Two, suit.Clubs}.Color())
	assert.Equal(t, suit.Red, Card{King, suit.Hearts}.Color())
	assert.Equal(t, suit.Red, Card{Two, suit.Diamonds}.Color())
}

func TestPairWith(t *testing.T) {
	aceSpades := Card{Ace, suit.Spades}
	aceHearts := Card{Ace, suit.Hearts}
	kingSpades := Card{King, suit.Spades}

	assert.True(t, aceSpades.PairWith(aceHearts))
	assert.True(t, aceHearts.PairWith(aceSpades))
	assert.False(t, aceSpades.PairWith(kingSpades))
}

func TestNew(t *testing.T) {
	c, err := New(Jack, suit.Diamonds)
	require.NoError(t, err)
	assert.Equal(t, Card{Jack, suit.Diamonds}, c)

	_, err = New(Rank(0), suit.Hearts)
	assert.Error(t, err)

	_, err = New(Rank(14), suit.Hearts)
	assert.Error(t, err)

	_, err = New(Ace, suit.Suit(0))
	assert.Error(t, err)
}

func TestParseCard(t *testing.T) {
	tests := []struct {
		in   string
		want Card
	}{
		{"AS", Card{Ace, suit.Spades}},
		{"as", Card{Ace, suit.Spades}},
		{"10h", Card{Ten, suit.Hearts}},
		{"Th", Card{Ten, suit.Hearts}},
		{"qd", Card{Queen, suit.Diamonds}},
		{"2c", Card{Two, suit.Clubs}},
		{" KS ", Card{King, suit.Spades}},
	}

	for _, tt := range tests {
		got, err := ParseCard(tt.in)
		require.NoError(t, err, "parsing %q", tt.in)
		assert.Equal(t, tt.want, got, "parsing %q", tt.in)
	}

	for _, bad := range []string{"", "A", "1s", "11h", "Ax", "of"} {
		_, err := ParseCard(bad)
		assert.Error(t, err, "parsing %q", bad)
	}
}
