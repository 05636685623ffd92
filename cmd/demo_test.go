package cmd

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunDemoOutput(t *testing.T) {
	var buf strings.Builder
	runDemo(&buf)

	want := strings.Join([]string{
		"As a string: Hearts",
		"As a repr: ",
		"suit.Hearts",
		"Red",
		"-----",
		"As a string: Diamonds",
		"As a repr: ",
		"suit.Diamonds",
		"Red",
		"-----",
		"As a string: Clubs",
		"As a repr: ",
		"suit.Clubs",
		"Black",
		"-----",
		"As a string: Spades",
		"As a repr: ",
		"suit.Spades",
		"Black",
		"-----",
		"Are they equal?",
		"true",
		"",
	}, "\n")
	assert.Equal(t, want, buf.String())
}

func TestRunDemoBlockShape(t *testing.T) {
	var buf strings.Builder
	runDemo(&buf)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	// Four five-line suit blocks plus the two equality lines.
	require.Len(t, lines, 4*5+2)

	for i := 0; i < 4; i++ {
		block := lines[i*5 : i*5+5]
		assert.True(t, strings.HasPrefix(block[0], "As a string: "))
		assert.Equal(t, "As a repr: ", block[1])
		assert.True(t, strings.HasPrefix(block[2], "suit."))
		assert.Contains(t, []string{"Red", "Black"}, block[3])
		assert.Equal(t, "-----", block[4])
	}

	assert.Equal(t, "Are they equal?", lines[20])
	assert.Equal(t, "true", lines[21])
}
