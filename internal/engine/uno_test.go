// internal/engine/uno_test.go
package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVulnerabilitySetOnReachingOneCard(t *testing.T) {
	card := numberCard(ColorRed, 5)
	s := buildState([]seat{
		{"a", []Card{card, numberCard(ColorBlue, 1)}},
		{"b", []Card{numberCard(ColorRed, 2), numberCard(ColorRed, 3)}},
	}, nil, numberCard(ColorRed, 9))

	next, err := PlayCard(s, "a", card, ColorNone)
	require.NoError(t, err)
	assert.Equal(t, "a", next.VulnerablePlayer)
}

func TestVulnerabilityClearedByDrawing(t *testing.T) {
	s := buildState([]seat{
		{"a", []Card{numberCard(ColorRed, 2), numberCard(ColorRed, 3)}},
		{"b", []Card{numberCard(ColorBlue, 1)}},
	}, []Card{numberCard(ColorGreen, 4)}, numberCard(ColorRed, 9))
	s.CurrentPlayerIndex = 1
	s.VulnerablePlayer = "b"

	next, err := DrawCard(s, "b")
	require.NoError(t, err)
	assert.Empty(t, next.VulnerablePlayer, "drawing back to two cards clears the flag")
}

func TestCallPenaltyDealsTwoAndClears(t *testing.T) {
	s := buildState([]seat{
		{"a", []Card{numberCard(ColorRed, 2), numberCard(ColorRed, 3)}},
		{"b", []Card{numberCard(ColorBlue, 1)}},
	}, []Card{numberCard(ColorGreen, 4), numberCard(ColorGreen, 5)}, numberCard(ColorRed, 9))
	s.VulnerablePlayer = "b"

	next, err := CallPenalty(s, "b", "a")
	require.NoError(t, err)
	assert.Len(t, next.Players[1].Hand, 3, "target draws two")
	assert.Empty(t, next.VulnerablePlayer)
	assert.Len(t, s.Players[1].Hand, 1, "input state untouched")
	assert.Equal(t, s.CardCount(), next.CardCount())
}

func TestCallPenaltyRaceOnlyOneSucceeds(t *testing.T) {
	// Two call-outs against the same target arrive back to back. The store
	// serializes them; the first succeeds, the second sees vulnerability
	// cleared and fails without touching the state.
	s := buildState([]seat{
		{"a", []Card{numberCard(ColorRed, 2), numberCard(ColorRed, 3)}},
		{"b", []Card{numberCard(ColorBlue, 1)}},
		{"c", []Card{numberCard(ColorRed, 4)}},
	}, []Card{numberCard(ColorGreen, 4), numberCard(ColorGreen, 5)}, numberCard(ColorRed, 9))
	s.VulnerablePlayer = "b"
	s.Players[2].Hand = []Card{numberCard(ColorRed, 4), numberCard(ColorRed, 5)}

	first, err := CallPenalty(s, "b", "a")
	require.NoError(t, err)
	assert.Len(t, first.Players[1].Hand, 3, "target ends at +2")

	_, err = CallPenalty(first, "b", "c")
	assert.Equal(t, FailInvalidCall, CodeOf(err))
}

func TestCallPenaltyGuardsAgainstStaleFlag(t *testing.T) {
	// The flag says b is vulnerable but their hand has already grown; the
	// hand-size re-check defends against the stale flag.
	s := buildState([]seat{
		{"a", []Card{numberCard(ColorRed, 2)}},
		{"b", []Card{numberCard(ColorBlue, 1), numberCard(ColorBlue, 2)}},
	}, []Card{numberCard(ColorGreen, 4)}, numberCard(ColorRed, 9))
	s.VulnerablePlayer = "b"

	_, err := CallPenalty(s, "b", "a")
	assert.Equal(t, FailInvalidCall, CodeOf(err))
}

func TestCallPenaltyRejectsSelfAndStrangers(t *testing.T) {
	s := buildState([]seat{
		{"a", []Card{numberCard(ColorRed, 2)}},
		{"b", []Card{numberCard(ColorBlue, 1)}},
	}, nil, numberCard(ColorRed, 9))
	s.VulnerablePlayer = "b"

	_, err := CallPenalty(s, "b", "b")
	assert.Equal(t, FailInvalidCall, CodeOf(err))
	_, err = CallPenalty(s, "b", "ghost")
	assert.Equal(t, FailInvalidCall, CodeOf(err))
	_, err = CallPenalty(s, "a", "b")
	assert.Equal(t, FailInvalidCall, CodeOf(err), "a is not the vulnerable player")
}

func TestCallSelfClearsWithoutPenalty(t *testing.T) {
	s := buildState([]seat{
		{"a", []Card{numberCard(ColorRed, 2)}},
		{"b", []Card{numberCard(ColorBlue, 1)}},
	}, nil, numberCard(ColorRed, 9))
	s.VulnerablePlayer = "b"

	next, err := CallSelf(s, "b")
	require.NoError(t, err)
	assert.Empty(t, next.VulnerablePlayer)
	assert.Len(t, next.Players[1].Hand, 1, "no cards dealt on self-declare")

	// A call-out after the declare fails.
	_, err = CallPenalty(next, "b", "a")
	assert.Equal(t, FailInvalidCall, CodeOf(err))

	// The declared player is not re-flagged by someone else's hand change.
	after, err := PlayCard(next, "a", numberCard(ColorRed, 2), ColorNone)
	require.NoError(t, err)
	assert.NotEqual(t, "b", after.VulnerablePlayer)
}

func TestCallSelfRejectsNonVulnerable(t *testing.T) {
	s := buildState([]seat{
		{"a", []Card{numberCard(ColorRed, 2)}},
		{"b", []Card{numberCard(ColorBlue, 1)}},
	}, nil, numberCard(ColorRed, 9))

	_, err := CallSelf(s, "b")
	assert.Equal(t, FailInvalidCall, CodeOf(err))
}
