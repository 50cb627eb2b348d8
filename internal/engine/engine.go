// internal/engine/engine.go
//
// Package engine is the rules authority for a single match. Every public
// operation is a pure function (state, input) -> (state', error): no I/O, no
// locking, no partial mutation. Serializing calls against one match is the
// session layer's job; the engine assumes at most one in-flight operation per
// state lineage.
package engine

import (
	"math/rand"
	"time"
)

// MinPlayers and MaxPlayers bound the seat count accepted at creation.
const (
	MinPlayers = 2
	MaxPlayers = 10
)

// CreateGameState builds the initial state for the given seating order: a
// shuffled 108-card deck, seven cards per player, and a plain number card as
// the opening discard seeding the current color. A nil rng gets a time-seeded
// source; tests pass a fixed seed for deterministic deals.
func CreateGameState(playerIDs []string, rng *rand.Rand) (*GameState, error) {
	if len(playerIDs) < MinPlayers || len(playerIDs) > MaxPlayers {
		return nil, failf(FailInvalidPlayerCount, "need %d-%d players, got %d", MinPlayers, MaxPlayers, len(playerIDs))
	}
	seen := make(map[string]struct{}, len(playerIDs))
	for _, id := range playerIDs {
		if _, dup := seen[id]; dup {
			return nil, failf(FailInvalidPlayerCount, "duplicate player id %q", id)
		}
		seen[id] = struct{}{}
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	deck := NewDeck()
	Shuffle(deck, rng)
	hands, rest := deal(deck, playerIDs)
	first, rest := openingDiscard(rest, rng)

	players := make([]Player, len(playerIDs))
	for i, id := range playerIDs {
		players[i] = Player{ID: id, Hand: hands[i], Active: true}
	}

	return &GameState{
		Players:            players,
		DrawPile:           rest,
		DiscardPile:        []Card{first},
		CurrentPlayerIndex: 0,
		Direction:          1,
		CurrentColor:       first.Color,
		Rules:              Rules{ReverseSkipScope: ReverseSkipActive},
		rng:                rng,
	}, nil
}

// PlayCard plays a card from the acting player's hand onto the discard pile
// and applies its effect. A play is rejected while the player has a drawn
// card in limbo; the pending card must be played or kept first.
func PlayCard(s *GameState, playerID string, card Card, chosenColor Color) (*GameState, error) {
	if err := requireTurn(s, playerID); err != nil {
		return nil, err
	}
	if s.PendingDraw != nil {
		return nil, failf(FailPendingDrawBlocks, "resolve the drawn card before playing from hand")
	}
	idx := s.PlayerIndex(playerID)
	hand, found := handWithout(s.Players[idx].Hand, card)
	if !found {
		return nil, failf(FailCardNotInHand, "player %s does not hold %s", playerID, card)
	}
	if !isLegal(card, s.TopDiscard(), s.CurrentColor) {
		return nil, failf(FailIllegalMove, "%s cannot be played on %s (%s)", card, s.TopDiscard(), s.CurrentColor)
	}
	if err := checkWildColor(card, chosenColor); err != nil {
		return nil, err
	}
	if card.Rank == RankWildDrawFour && hasColorMatch(hand, s.CurrentColor) {
		return nil, failf(FailIllegalMove, "wild draw four is illegal while holding a %s card", s.CurrentColor)
	}

	next := s.clone()
	next.Players[idx].Hand = hand
	discardAndApply(next, idx, card, chosenColor)
	return next, nil
}

// requireTurn verifies the game is still running and playerID is the player
// to act.
func requireTurn(s *GameState, playerID string) error {
	if s.IsOver {
		return failf(FailNotYourTurn, "game is over")
	}
	idx := s.PlayerIndex(playerID)
	if idx < 0 {
		return failf(FailNotYourTurn, "unknown player %s", playerID)
	}
	if idx != s.CurrentPlayerIndex {
		return failf(FailNotYourTurn, "it is %s's turn", s.CurrentPlayerID())
	}
	return nil
}
