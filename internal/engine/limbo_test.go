// internal/engine/limbo_test.go
package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDrawCardEntersLimboWhenPlayable(t *testing.T) {
	s := buildState([]seat{
		{"a", []Card{numberCard(ColorBlue, 1), numberCard(ColorBlue, 2)}},
		{"b", []Card{numberCard(ColorRed, 2)}},
	}, []Card{numberCard(ColorRed, 4)}, numberCard(ColorRed, 9))

	next, err := DrawCard(s, "a")
	require.NoError(t, err)
	require.NotNil(t, next.PendingDraw)
	assert.Equal(t, "a", next.PendingDraw.OwnerID)
	assert.Equal(t, numberCard(ColorRed, 4), next.PendingDraw.Card)
	assert.Len(t, next.Players[0].Hand, 2, "pending card is not in the hand")
	assert.Equal(t, 0, next.CurrentPlayerIndex, "turn does not advance in limbo")
	assert.Equal(t, s.CardCount(), next.CardCount())
}

func TestDrawCardKeepsUnplayableCardAndAdvances(t *testing.T) {
	s := buildState([]seat{
		{"a", []Card{numberCard(ColorBlue, 1)}},
		{"b", []Card{numberCard(ColorRed, 2)}},
	}, []Card{numberCard(ColorGreen, 4)}, numberCard(ColorRed, 9))

	next, err := DrawCard(s, "a")
	require.NoError(t, err)
	assert.Nil(t, next.PendingDraw)
	assert.Len(t, next.Players[0].Hand, 2)
	assert.Equal(t, 1, next.CurrentPlayerIndex)
}

func TestDrawCardRejectsRepeatWhilePending(t *testing.T) {
	s := buildState([]seat{
		{"a", []Card{numberCard(ColorBlue, 1)}},
		{"b", []Card{numberCard(ColorRed, 2)}},
	}, []Card{numberCard(ColorRed, 4), numberCard(ColorRed, 5)}, numberCard(ColorRed, 9))

	limbo, err := DrawCard(s, "a")
	require.NoError(t, err)
	require.NotNil(t, limbo.PendingDraw)

	_, err = DrawCard(limbo, "a")
	assert.Equal(t, FailNotYourTurn, CodeOf(err))
}

func TestPlayCardBlockedWhilePendingDraw(t *testing.T) {
	inHand := numberCard(ColorRed, 1)
	s := buildState([]seat{
		{"a", []Card{inHand}},
		{"b", []Card{numberCard(ColorRed, 2)}},
	}, []Card{numberCard(ColorRed, 4)}, numberCard(ColorRed, 9))

	limbo, err := DrawCard(s, "a")
	require.NoError(t, err)
	require.NotNil(t, limbo.PendingDraw)

	// The hand card is perfectly legal, but limbo must be resolved first.
	_, err = PlayCard(limbo, "a", inHand, ColorNone)
	assert.Equal(t, FailPendingDrawBlocks, CodeOf(err))

	// Resolving limbo unblocks hand plays on a later turn.
	after, err := PassDrawnCard(limbo, "a")
	require.NoError(t, err)
	assert.Nil(t, after.PendingDraw)
}

func TestPlayDrawnCard(t *testing.T) {
	s := buildState([]seat{
		{"a", []Card{numberCard(ColorBlue, 1)}},
		{"b", []Card{numberCard(ColorRed, 2)}},
	}, []Card{numberCard(ColorRed, 4)}, numberCard(ColorRed, 9))

	limbo, err := DrawCard(s, "a")
	require.NoError(t, err)

	next, err := PlayDrawnCard(limbo, "a", ColorNone)
	require.NoError(t, err)
	assert.Nil(t, next.PendingDraw)
	assert.Equal(t, numberCard(ColorRed, 4), next.TopDiscard())
	assert.Len(t, next.Players[0].Hand, 1, "hand unchanged, card went draw -> discard")
	assert.Equal(t, 1, next.CurrentPlayerIndex)
	assert.Equal(t, s.CardCount(), next.CardCount())
}

func TestPlayDrawnWildRequiresColor(t *testing.T) {
	s := buildState([]seat{
		{"a", []Card{numberCard(ColorBlue, 1)}},
		{"b", []Card{numberCard(ColorRed, 2)}},
	}, []Card{wildCard(RankWild)}, numberCard(ColorRed, 9))

	limbo, err := DrawCard(s, "a")
	require.NoError(t, err)
	require.NotNil(t, limbo.PendingDraw)

	_, err = PlayDrawnCard(limbo, "a", ColorNone)
	assert.Equal(t, FailColorRequired, CodeOf(err))

	next, err := PlayDrawnCard(limbo, "a", ColorGreen)
	require.NoError(t, err)
	assert.Equal(t, ColorGreen, next.CurrentColor)
}

func TestPlayDrawnCardWithoutPending(t *testing.T) {
	s := buildState([]seat{
		{"a", []Card{numberCard(ColorBlue, 1)}},
		{"b", []Card{numberCard(ColorRed, 2)}},
	}, []Card{numberCard(ColorRed, 4)}, numberCard(ColorRed, 9))

	_, err := PlayDrawnCard(s, "a", ColorNone)
	assert.Equal(t, FailNoPendingDraw, CodeOf(err))
	_, err = PassDrawnCard(s, "a")
	assert.Equal(t, FailNoPendingDraw, CodeOf(err))
}

func TestPassDrawnCard(t *testing.T) {
	s := buildState([]seat{
		{"a", []Card{numberCard(ColorBlue, 1)}},
		{"b", []Card{numberCard(ColorRed, 2)}},
	}, []Card{numberCard(ColorRed, 4)}, numberCard(ColorRed, 9))

	limbo, err := DrawCard(s, "a")
	require.NoError(t, err)

	next, err := PassDrawnCard(limbo, "a")
	require.NoError(t, err)
	assert.Nil(t, next.PendingDraw)
	assert.Len(t, next.Players[0].Hand, 2, "kept card joins the hand")
	assert.Equal(t, 1, next.CurrentPlayerIndex)
	assert.Equal(t, s.CardCount(), next.CardCount())
}

func TestDrawCardReshufflesExhaustedPile(t *testing.T) {
	// Scenario: the draw pile is empty mid-game. Drawing reshuffles the
	// discard pile minus its face-up top, and a buried wild re-enters the
	// pool colorless.
	buriedWild := wildCard(RankWild)
	buriedWild.Color = ColorGreen // stamped when it was played
	s := buildState([]seat{
		{"a", []Card{numberCard(ColorBlue, 1)}},
		{"b", []Card{numberCard(ColorRed, 2)}},
	}, nil, numberCard(ColorRed, 9))
	s.DiscardPile = []Card{buriedWild, numberCard(ColorRed, 9)}

	next, err := DrawCard(s, "a")
	require.NoError(t, err)
	require.NotNil(t, next.PendingDraw, "the reshuffled wild is always playable")
	assert.Equal(t, ColorNone, next.PendingDraw.Card.Color, "wild color reset on reshuffle")
	assert.Len(t, next.DiscardPile, 1, "face-up top stays out of the reshuffle")
	assert.Equal(t, numberCard(ColorRed, 9), next.TopDiscard())
}

func TestDrawCardFailsWhenNoCardsAvailable(t *testing.T) {
	s := buildState([]seat{
		{"a", []Card{numberCard(ColorBlue, 1)}},
		{"b", []Card{numberCard(ColorRed, 2)}},
	}, nil, numberCard(ColorRed, 9))

	_, err := DrawCard(s, "a")
	assert.Equal(t, FailNoCardsAvailable, CodeOf(err))
	assert.Len(t, s.Players[0].Hand, 1, "failed draw leaves the state untouched")
}
