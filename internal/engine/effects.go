// internal/engine/effects.go
package engine

// discardAndApply is the shared tail of every card play. It pushes the card
// onto the discard pile (stamping a wild with its chosen color so the face-up
// card never disagrees with the current color), runs the win check, and then
// applies the card's effect. The effect still runs on a winning move: a final
// draw-two or wild-draw-four must deliver its cards and set the color even
// though no further turn is taken.
//
// The card must already be validated and removed from the player's hand, and
// next must be a private clone of the caller's input state.
func discardAndApply(next *GameState, idx int, card Card, chosenColor Color) {
	played := card
	if played.Kind == KindWild {
		played.Color = chosenColor
	}
	next.DiscardPile = handWith(next.DiscardPile, played)

	if len(next.Players[idx].Hand) == 0 {
		next.IsOver = true
		next.Winner = next.Players[idx].ID
	}

	applyEffect(next, played, chosenColor)
	refreshVulnerability(next, next.Players[idx].ID)
}

// applyEffect branches per card kind: color update, penalty delivery, and
// turn advance. Turn advancement is suppressed once the game is over.
func applyEffect(s *GameState, card Card, chosenColor Color) {
	steps := 1
	switch card.Rank {
	case RankSkip:
		s.CurrentColor = card.Color
		steps = 2
	case RankReverse:
		s.CurrentColor = card.Color
		s.Direction = -s.Direction
		if reverseActsAsSkip(s) {
			steps = 2
		}
	case RankDrawTwo:
		s.CurrentColor = card.Color
		dealPenalty(s, nextIndex(s, 1), 2)
		steps = 2
	case RankWild:
		s.CurrentColor = chosenColor
	case RankWildDrawFour:
		s.CurrentColor = chosenColor
		dealPenalty(s, nextIndex(s, 1), 4)
		steps = 2
	default:
		s.CurrentColor = card.Color
	}
	if !s.IsOver {
		s.CurrentPlayerIndex = nextIndex(s, steps)
	}
}

// reverseActsAsSkip reports whether a reverse should consume the next turn.
// With exactly two players in scope, flipping direction alone would hand the
// turn straight back, so the reverse behaves as a skip.
func reverseActsAsSkip(s *GameState) bool {
	if s.Rules.ReverseSkipScope == ReverseSkipSeated {
		return len(s.Players) == 2
	}
	return activeCount(s) == 2
}

// dealPenalty gives the player at target up to count cards, drawing with the
// usual reshuffle-on-shortage rule. Delivery is best effort: fewer cards than
// requested is not an error.
func dealPenalty(s *GameState, target int, count int) {
	drawn := make([]Card, 0, count)
	for i := 0; i < count; i++ {
		c, ok := drawOne(s)
		if !ok {
			break
		}
		drawn = append(drawn, c)
	}
	if len(drawn) > 0 {
		s.Players[target].Hand = handWith(s.Players[target].Hand, drawn...)
		refreshVulnerability(s, s.Players[target].ID)
	}
}

// drawOne removes the top card of the draw pile, reshuffling the discard pile
// underneath its face-up top first if the draw pile is empty. Returns false
// only when both piles are too small to produce a card.
func drawOne(s *GameState) (Card, bool) {
	if len(s.DrawPile) == 0 {
		reshuffleIntoDrawPile(s)
	}
	if len(s.DrawPile) == 0 {
		return Card{}, false
	}
	top := s.DrawPile[len(s.DrawPile)-1]
	s.DrawPile = s.DrawPile[:len(s.DrawPile)-1]
	return top, true
}

// reshuffleIntoDrawPile folds every discard except the face-up top back into
// the draw pile. Wild cards re-enter the pool colorless.
func reshuffleIntoDrawPile(s *GameState) {
	if len(s.DiscardPile) <= 1 {
		return
	}
	top := s.TopDiscard()
	pool := make([]Card, len(s.DiscardPile)-1)
	copy(pool, s.DiscardPile[:len(s.DiscardPile)-1])
	for i := range pool {
		if pool[i].Kind == KindWild {
			pool[i].Color = ColorNone
		}
	}
	Shuffle(pool, s.rng)
	s.DrawPile = handWith(s.DrawPile, pool...)
	s.DiscardPile = []Card{top}
}
