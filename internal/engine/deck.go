// internal/engine/deck.go
package engine

import "math/rand"

// DeckSize is the total number of cards in the closed system. Every reachable
// state keeps |drawPile| + |discardPile| + sum of hand sizes equal to it.
const DeckSize = 108

// HandSize is the number of cards dealt to each player at game start.
const HandSize = 7

// NewDeck builds the fixed 108-card set: per color one 0, two each of 1-9,
// two each of skip/reverse/draw-two, plus four wilds and four wild-draw-fours.
func NewDeck() []Card {
	cards := make([]Card, 0, DeckSize)
	for _, color := range Colors {
		cards = append(cards, numberCard(color, 0))
		for n := 1; n <= 9; n++ {
			cards = append(cards, numberCard(color, n), numberCard(color, n))
		}
		for _, rank := range []Rank{RankSkip, RankReverse, RankDrawTwo} {
			cards = append(cards, actionCard(color, rank), actionCard(color, rank))
		}
	}
	for i := 0; i < 4; i++ {
		cards = append(cards, wildCard(RankWild), wildCard(RankWildDrawFour))
	}
	return cards
}

// Shuffle permutes cards in place using the supplied source, so tests can
// seed it for a deterministic order.
func Shuffle(cards []Card, rng *rand.Rand) {
	rng.Shuffle(len(cards), func(i, j int) {
		cards[i], cards[j] = cards[j], cards[i]
	})
}

// deal removes HandSize cards per player id, in seating order. The deck's top
// is its last element.
func deal(deck []Card, playerIDs []string) (hands [][]Card, rest []Card) {
	rest = deck
	hands = make([][]Card, len(playerIDs))
	for i := range playerIDs {
		hand := make([]Card, 0, HandSize)
		for j := 0; j < HandSize; j++ {
			hand = append(hand, rest[len(rest)-1])
			rest = rest[:len(rest)-1]
		}
		hands[i] = hand
	}
	return hands, rest
}

// openingDiscard draws from the pile until a plain number card turns up.
// Action and wild cards found along the way are pushed back and the pile is
// reshuffled, so turn zero starts with an unambiguous color and no effect.
func openingDiscard(pile []Card, rng *rand.Rand) (Card, []Card) {
	for {
		top := pile[len(pile)-1]
		pile = pile[:len(pile)-1]
		if top.Kind == KindNumber {
			return top, pile
		}
		reshuffled := make([]Card, 0, len(pile)+1)
		reshuffled = append(reshuffled, pile...)
		reshuffled = append(reshuffled, top)
		Shuffle(reshuffled, rng)
		pile = reshuffled
	}
}
