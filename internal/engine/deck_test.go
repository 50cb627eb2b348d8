// internal/engine/deck_test.go
package engine

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDeckComposition(t *testing.T) {
	deck := NewDeck()
	require.Len(t, deck, DeckSize)

	counts := make(map[Card]int)
	for _, c := range deck {
		counts[c]++
	}

	for _, color := range Colors {
		assert.Equal(t, 1, counts[numberCard(color, 0)], "one zero per color")
		for n := 1; n <= 9; n++ {
			assert.Equal(t, 2, counts[numberCard(color, n)], "two %d per color", n)
		}
		for _, rank := range []Rank{RankSkip, RankReverse, RankDrawTwo} {
			assert.Equal(t, 2, counts[actionCard(color, rank)], "two %s per color", rank)
		}
	}
	assert.Equal(t, 4, counts[wildCard(RankWild)])
	assert.Equal(t, 4, counts[wildCard(RankWildDrawFour)])
}

func TestShuffleIsDeterministicPerSeed(t *testing.T) {
	d1 := NewDeck()
	d2 := NewDeck()
	Shuffle(d1, rand.New(rand.NewSource(5)))
	Shuffle(d2, rand.New(rand.NewSource(5)))
	assert.Equal(t, d1, d2)

	d3 := NewDeck()
	Shuffle(d3, rand.New(rand.NewSource(6)))
	assert.NotEqual(t, d1, d3, "different seeds should give different orders")
}

func TestShufflePreservesMultiset(t *testing.T) {
	deck := NewDeck()
	shuffled := NewDeck()
	Shuffle(shuffled, rand.New(rand.NewSource(11)))

	count := func(cards []Card) map[Card]int {
		m := make(map[Card]int)
		for _, c := range cards {
			m[c]++
		}
		return m
	}
	assert.Equal(t, count(deck), count(shuffled))
}

func TestOpeningDiscardSkipsActionAndWildCards(t *testing.T) {
	// A pile whose top is stacked with non-number cards still terminates on a
	// number card without losing any cards.
	pile := []Card{
		numberCard(ColorGreen, 4),
		numberCard(ColorBlue, 7),
		wildCard(RankWildDrawFour),
		actionCard(ColorRed, RankSkip),
		wildCard(RankWild),
	}
	first, rest := openingDiscard(pile, rand.New(rand.NewSource(3)))

	assert.Equal(t, KindNumber, first.Kind)
	assert.Len(t, rest, len(pile)-1, "non-number cards return to the pile")
}
