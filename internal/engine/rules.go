// internal/engine/rules.go
package engine

// isLegal decides whether a candidate card may be played on the current top
// card under the current color. Wild-kind cards are always legal here; the
// wild-draw-four hand precondition is a separate check because it depends on
// the rest of the acting player's hand, not on the candidate card alone.
func isLegal(card, top Card, currentColor Color) bool {
	if card.Kind == KindWild {
		return true
	}
	return card.Color == currentColor || card.Rank == top.Rank
}

// hasColorMatch reports whether hand holds any non-wild card of the given
// color. Playing a wild-draw-four is illegal while this is true.
func hasColorMatch(hand []Card, color Color) bool {
	for i := range hand {
		if hand[i].Kind != KindWild && hand[i].Color == color {
			return true
		}
	}
	return false
}

// checkWildColor validates the chosen color accompanying a wild-kind play.
// Non-wild plays ignore chosenColor entirely.
func checkWildColor(card Card, chosenColor Color) error {
	if card.Kind != KindWild {
		return nil
	}
	if chosenColor == ColorNone {
		return failf(FailColorRequired, "%s requires a color choice", card.Rank)
	}
	if !chosenColor.IsPlayable() {
		return failf(FailInvalidColor, "%q is not a playable color", chosenColor)
	}
	return nil
}
