// internal/engine/limbo.go
package engine

// DrawCard draws exactly one card for the current player. If the drawn card
// is legal to play it is held aside as the pending draw — not added to the
// hand, turn not advanced — until the player decides via PlayDrawnCard or
// PassDrawnCard. An unplayable card goes straight into the hand and the turn
// passes.
func DrawCard(s *GameState, playerID string) (*GameState, error) {
	if err := requireTurn(s, playerID); err != nil {
		return nil, err
	}
	if s.PendingDraw != nil {
		return nil, failf(FailNotYourTurn, "a drawn card is already pending")
	}

	next := s.clone()
	card, ok := drawOne(next)
	if !ok {
		return nil, failf(FailNoCardsAvailable, "draw and discard piles are exhausted")
	}

	if isLegal(card, next.TopDiscard(), next.CurrentColor) {
		next.PendingDraw = &PendingDraw{Card: card, OwnerID: playerID}
		return next, nil
	}

	idx := next.PlayerIndex(playerID)
	next.Players[idx].Hand = handWith(next.Players[idx].Hand, card)
	refreshVulnerability(next, playerID)
	next.CurrentPlayerIndex = nextIndex(next, 1)
	return next, nil
}

// PlayDrawnCard plays the pending drawn card. Legality and the wild color
// requirement are re-checked defensively, then the play follows the same
// discard, win check, and effect sequence as a hand play.
func PlayDrawnCard(s *GameState, playerID string, chosenColor Color) (*GameState, error) {
	if err := requireTurn(s, playerID); err != nil {
		return nil, err
	}
	if s.PendingDraw == nil || s.PendingDraw.OwnerID != playerID {
		return nil, failf(FailNoPendingDraw, "no drawn card pending for %s", playerID)
	}
	card := s.PendingDraw.Card
	if !isLegal(card, s.TopDiscard(), s.CurrentColor) {
		return nil, failf(FailIllegalMove, "%s cannot be played on %s (%s)", card, s.TopDiscard(), s.CurrentColor)
	}
	if err := checkWildColor(card, chosenColor); err != nil {
		return nil, err
	}
	idx := s.PlayerIndex(playerID)
	if card.Rank == RankWildDrawFour && hasColorMatch(s.Players[idx].Hand, s.CurrentColor) {
		return nil, failf(FailIllegalMove, "wild draw four is illegal while holding a %s card", s.CurrentColor)
	}

	next := s.clone()
	next.PendingDraw = nil
	discardAndApply(next, idx, card, chosenColor)
	return next, nil
}

// PassDrawnCard keeps the pending drawn card in hand and ends the turn.
func PassDrawnCard(s *GameState, playerID string) (*GameState, error) {
	if err := requireTurn(s, playerID); err != nil {
		return nil, err
	}
	if s.PendingDraw == nil || s.PendingDraw.OwnerID != playerID {
		return nil, failf(FailNoPendingDraw, "no drawn card pending for %s", playerID)
	}

	next := s.clone()
	idx := next.PlayerIndex(playerID)
	next.Players[idx].Hand = handWith(next.Players[idx].Hand, next.PendingDraw.Card)
	next.PendingDraw = nil
	refreshVulnerability(next, playerID)
	next.CurrentPlayerIndex = nextIndex(next, 1)
	return next, nil
}
