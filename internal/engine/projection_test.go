// internal/engine/projection_test.go
package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectionRedactsOtherHands(t *testing.T) {
	s := buildState([]seat{
		{"a", []Card{numberCard(ColorRed, 1), numberCard(ColorRed, 2)}},
		{"b", []Card{numberCard(ColorBlue, 3)}},
	}, []Card{numberCard(ColorGreen, 4)}, numberCard(ColorRed, 9))
	s.VulnerablePlayer = "b"

	v := s.ProjectionFor("a")
	require.Len(t, v.Players, 2)
	assert.Len(t, v.Players[0].Hand, 2, "own hand revealed")
	assert.Nil(t, v.Players[1].Hand, "other hands redacted")
	assert.Equal(t, 1, v.Players[1].HandSize)
	assert.Equal(t, "a", v.CurrentPlayerID)
	assert.True(t, v.Players[0].IsCurrentTurn)
	assert.Equal(t, numberCard(ColorRed, 9), v.DiscardTop)
	assert.Equal(t, "b", v.VulnerablePlayer)
}

func TestProjectionPendingCardVisibleToOwnerOnly(t *testing.T) {
	s := buildState([]seat{
		{"a", []Card{numberCard(ColorBlue, 1)}},
		{"b", []Card{numberCard(ColorRed, 2)}},
	}, []Card{numberCard(ColorRed, 4)}, numberCard(ColorRed, 9))

	limbo, err := DrawCard(s, "a")
	require.NoError(t, err)
	require.NotNil(t, limbo.PendingDraw)

	own := limbo.ProjectionFor("a")
	require.NotNil(t, own.PendingCard)
	assert.Equal(t, numberCard(ColorRed, 4), *own.PendingCard)
	assert.Equal(t, "a", own.PendingDrawOwner)

	other := limbo.ProjectionFor("b")
	assert.Nil(t, other.PendingCard, "pending card hidden from other players")
	assert.Equal(t, "a", other.PendingDrawOwner, "but the outstanding decision is public")
}
