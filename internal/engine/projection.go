// internal/engine/projection.go
package engine

// PlayerView is one seat as seen by a particular viewer. Only the viewer's
// own hand is revealed; everyone else shows a hand size.
type PlayerView struct {
	ID            string `json:"id"`
	HandSize      int    `json:"handSize"`
	Active        bool   `json:"active"`
	IsCurrentTurn bool   `json:"isCurrentTurn"`
	Hand          []Card `json:"hand,omitempty"`
}

// View is the redacted snapshot broadcast to clients. It never contains
// another player's cards; the pending drawn card is revealed only to its
// owner, others just see that a decision is outstanding.
type View struct {
	Players          []PlayerView `json:"players"`
	DrawPileSize     int          `json:"drawPileSize"`
	DiscardPileSize  int          `json:"discardPileSize"`
	DiscardTop       Card         `json:"discardTop"`
	CurrentColor     Color        `json:"currentColor"`
	CurrentPlayerID  string       `json:"currentPlayerId"`
	Direction        int          `json:"direction"`
	IsOver           bool         `json:"isOver"`
	Winner           string       `json:"winner,omitempty"`
	PendingDrawOwner string       `json:"pendingDrawOwner,omitempty"`
	PendingCard      *Card        `json:"pendingCard,omitempty"`
	VulnerablePlayer string       `json:"vulnerablePlayer,omitempty"`
}

// ProjectionFor builds the snapshot of the state from viewerID's perspective.
func (s *GameState) ProjectionFor(viewerID string) View {
	v := View{
		Players:          make([]PlayerView, len(s.Players)),
		DrawPileSize:     len(s.DrawPile),
		DiscardPileSize:  len(s.DiscardPile),
		DiscardTop:       s.TopDiscard(),
		CurrentColor:     s.CurrentColor,
		CurrentPlayerID:  s.CurrentPlayerID(),
		Direction:        s.Direction,
		IsOver:           s.IsOver,
		Winner:           s.Winner,
		VulnerablePlayer: s.VulnerablePlayer,
	}
	for i := range s.Players {
		p := &s.Players[i]
		pv := PlayerView{
			ID:            p.ID,
			HandSize:      len(p.Hand),
			Active:        p.Active,
			IsCurrentTurn: i == s.CurrentPlayerIndex,
		}
		if p.ID == viewerID {
			pv.Hand = make([]Card, len(p.Hand))
			copy(pv.Hand, p.Hand)
		}
		v.Players[i] = pv
	}
	if s.PendingDraw != nil {
		v.PendingDrawOwner = s.PendingDraw.OwnerID
		if s.PendingDraw.OwnerID == viewerID {
			card := s.PendingDraw.Card
			v.PendingCard = &card
		}
	}
	return v
}
