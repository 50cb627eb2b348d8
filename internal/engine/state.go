// internal/engine/state.go
package engine

import "math/rand"

// Player is one seated participant. Seating order is fixed at creation;
// disconnected players stay in their seat with Active=false and are skipped
// by turn advancement.
type Player struct {
	ID     string `json:"id"`
	Hand   []Card `json:"hand"`
	Active bool   `json:"active"`
}

// PendingDraw holds a drawn-but-undecided card during the limbo sub-state.
// It always names the current player.
type PendingDraw struct {
	Card    Card   `json:"card"`
	OwnerID string `json:"ownerId"`
}

// ReverseSkipScope selects which player count decides whether a reverse card
// behaves like a skip: the count of currently active players, or the count of
// all seated players. Active-player counting is the default.
type ReverseSkipScope string

const (
	ReverseSkipActive ReverseSkipScope = "active"
	ReverseSkipSeated ReverseSkipScope = "seated"
)

// Rules carries the named rule configuration knobs of a game.
type Rules struct {
	ReverseSkipScope ReverseSkipScope `json:"reverseSkipScope"`
}

// GameState is the full state of one match. Values are immutable: every
// operation produces a fresh state from its input and never mutates the one
// it was given, so the session layer can hold the latest value and discard
// superseded ones without copying.
type GameState struct {
	Players            []Player     `json:"players"`
	DrawPile           []Card       `json:"drawPile"`
	DiscardPile        []Card       `json:"discardPile"` // top = last element
	CurrentPlayerIndex int          `json:"currentPlayerIndex"`
	Direction          int          `json:"direction"` // +1 or -1
	CurrentColor       Color        `json:"currentColor"`
	IsOver             bool         `json:"isOver"`
	Winner             string       `json:"winner,omitempty"`
	PendingDraw        *PendingDraw `json:"pendingDraw,omitempty"`
	VulnerablePlayer   string       `json:"vulnerablePlayer,omitempty"`
	Rules              Rules        `json:"rules"`

	// rng drives mid-game reshuffles. It is seeded at creation and carried
	// across derived states so a seeded game replays deterministically.
	rng *rand.Rand
}

// clone makes the shallow next-state value. The players slice is copied so a
// seat can be rewritten, but hands and piles stay shared with the input state;
// any code that touches one must replace it with a fresh slice.
func (s *GameState) clone() *GameState {
	next := *s
	next.Players = make([]Player, len(s.Players))
	copy(next.Players, s.Players)
	return &next
}

// TopDiscard returns the current face-up card. The discard pile is never
// empty once a game exists.
func (s *GameState) TopDiscard() Card {
	return s.DiscardPile[len(s.DiscardPile)-1]
}

// PlayerIndex returns the seat of the given player id, or -1.
func (s *GameState) PlayerIndex(playerID string) int {
	for i := range s.Players {
		if s.Players[i].ID == playerID {
			return i
		}
	}
	return -1
}

// CurrentPlayerID returns the id of the player whose turn it is.
func (s *GameState) CurrentPlayerID() string {
	return s.Players[s.CurrentPlayerIndex].ID
}

// CardCount sums every card visible to the state. It equals DeckSize for any
// reachable state.
func (s *GameState) CardCount() int {
	n := len(s.DrawPile) + len(s.DiscardPile)
	for i := range s.Players {
		n += len(s.Players[i].Hand)
	}
	if s.PendingDraw != nil {
		n++
	}
	return n
}

// SetPlayerActive returns a state with the player's active flag updated. The
// session layer calls this on disconnect and reconnect; turn advancement
// skips inactive seats on the next operation, so no turn fixup happens here.
func SetPlayerActive(s *GameState, playerID string, active bool) *GameState {
	idx := s.PlayerIndex(playerID)
	if idx < 0 || s.Players[idx].Active == active {
		return s
	}
	next := s.clone()
	next.Players[idx].Active = active
	return next
}

// handWithout returns a copy of hand with one card equal to target removed,
// and reports whether it was found.
func handWithout(hand []Card, target Card) ([]Card, bool) {
	for i := range hand {
		if hand[i].Equal(target) {
			out := make([]Card, 0, len(hand)-1)
			out = append(out, hand[:i]...)
			out = append(out, hand[i+1:]...)
			return out, true
		}
	}
	return nil, false
}

// handWith returns a copy of hand with the extra cards appended.
func handWith(hand []Card, extra ...Card) []Card {
	out := make([]Card, 0, len(hand)+len(extra))
	out = append(out, hand...)
	out = append(out, extra...)
	return out
}
