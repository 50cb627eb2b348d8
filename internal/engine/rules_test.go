// internal/engine/rules_test.go
package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsLegal(t *testing.T) {
	top := numberCard(ColorRed, 5)

	assert.True(t, isLegal(numberCard(ColorRed, 1), top, ColorRed), "color match")
	assert.True(t, isLegal(numberCard(ColorBlue, 5), top, ColorRed), "rank match")
	assert.True(t, isLegal(wildCard(RankWild), top, ColorRed), "wilds always legal")
	assert.True(t, isLegal(wildCard(RankWildDrawFour), top, ColorRed))
	assert.False(t, isLegal(numberCard(ColorBlue, 1), top, ColorRed))

	// Legality follows the current color, not the top card's printed color.
	assert.True(t, isLegal(numberCard(ColorGreen, 1), top, ColorGreen))
	assert.False(t, isLegal(numberCard(ColorRed, 1), top, ColorGreen))

	// Action ranks match each other across colors.
	assert.True(t, isLegal(actionCard(ColorBlue, RankSkip), actionCard(ColorRed, RankSkip), ColorRed))
}

func TestHasColorMatch(t *testing.T) {
	hand := []Card{
		numberCard(ColorBlue, 2),
		actionCard(ColorRed, RankSkip),
		wildCard(RankWild),
	}
	assert.True(t, hasColorMatch(hand, ColorRed))
	assert.True(t, hasColorMatch(hand, ColorBlue))
	assert.False(t, hasColorMatch(hand, ColorGreen))

	// A wild holding a stamped color never counts as a color match.
	stamped := wildCard(RankWild)
	stamped.Color = ColorGreen
	assert.False(t, hasColorMatch([]Card{stamped}, ColorGreen))
}

func TestWildDrawFourGating(t *testing.T) {
	wd4 := wildCard(RankWildDrawFour)
	s := buildState([]seat{
		{"a", []Card{wd4, numberCard(ColorRed, 3)}},
		{"b", []Card{numberCard(ColorRed, 2)}},
	}, nil, numberCard(ColorRed, 9))

	// Holding a red card while red is current makes WD4 illegal.
	_, err := PlayCard(s, "a", wd4, ColorBlue)
	assert.Equal(t, FailIllegalMove, CodeOf(err))

	// With no current-color match in hand the play goes through.
	s.Players[0].Hand = []Card{wd4, numberCard(ColorBlue, 3)}
	next, err := PlayCard(s, "a", wd4, ColorBlue)
	assert.NoError(t, err)
	assert.Equal(t, ColorBlue, next.CurrentColor)
}
