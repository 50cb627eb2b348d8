// internal/room/room.go
package room

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/Ripper2005/Uno-Backend-Project/internal/cache"
	"github.com/Ripper2005/Uno-Backend-Project/internal/engine"
)

// OnGameEndFunc handles a finished game: persisting results, tearing the room
// down, etc.
type OnGameEndFunc func(roomID uuid.UUID, winner string, final *engine.GameState)

// Action is one decoded player request against a running game.
type Action struct {
	Type        string       `json:"type"`
	Card        *engine.Card `json:"card,omitempty"`
	ChosenColor engine.Color `json:"color,omitempty"`
	TargetID    string       `json:"targetId,omitempty"`
}

// Action type values accepted by HandlePlayerAction.
const (
	ActionPlayCard    = "play_card"
	ActionDrawCard    = "draw_card"
	ActionPlayDrawn   = "play_drawn_card"
	ActionPassDrawn   = "pass_drawn_card"
	ActionCallPenalty = "call_uno_penalty"
	ActionCallSelf    = "call_uno_self"
)

// Seat binds an authenticated user to an engine player id for one room.
type Seat struct {
	UserID    uuid.UUID
	PlayerID  string
	Username  string
	Connected bool
}

// Room owns the single canonical game state for one match. The engine itself
// is pure; the room's mutex is what serializes the operations against a
// state lineage, so there is never more than one in-flight call per match.
type Room struct {
	ID         uuid.UUID
	Name       string
	HostUserID uuid.UUID

	Mu      sync.Mutex
	Seats   []Seat
	Started bool

	state *engine.GameState
	rng   *rand.Rand

	// BroadcastFn sends an event to every connected client in the room.
	BroadcastFn func(ev Event)
	// BroadcastToPlayerFn sends an event to a single player's client.
	BroadcastToPlayerFn func(playerID string, ev Event)
	// OnGameEnd is invoked once when the game finishes.
	OnGameEnd OnGameEndFunc

	logger      *logrus.Logger
	actionIndex int
}

// New builds an empty room. A nil logger falls back to the logrus default.
func New(name string, hostUserID uuid.UUID, logger *logrus.Logger) *Room {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Room{
		ID:         uuid.New(),
		Name:       name,
		HostUserID: hostUserID,
		rng:        rand.New(rand.NewSource(time.Now().UnixNano())),
		logger:     logger,
	}
}

// Join seats a user, or re-marks an existing seat connected on reconnect.
// Seating is rejected once the game has started unless the user already holds
// a seat.
func (r *Room) Join(userID uuid.UUID, username string) (string, bool) {
	r.Mu.Lock()
	defer r.Mu.Unlock()

	for i := range r.Seats {
		if r.Seats[i].UserID == userID {
			r.Seats[i].Connected = true
			if r.Started {
				r.state = engine.SetPlayerActive(r.state, r.Seats[i].PlayerID, true)
			}
			r.logger.WithFields(logrus.Fields{"room": r.ID, "user": userID}).Info("player reconnected")
			r.fireRoster(EventPlayerJoined, r.Seats[i].PlayerID)
			r.syncAll()
			return r.Seats[i].PlayerID, true
		}
	}
	if r.Started || len(r.Seats) >= engine.MaxPlayers {
		return "", false
	}
	seat := Seat{UserID: userID, PlayerID: userID.String(), Username: username, Connected: true}
	r.Seats = append(r.Seats, seat)
	r.logger.WithFields(logrus.Fields{"room": r.ID, "user": userID}).Info("player joined")
	r.fireRoster(EventPlayerJoined, seat.PlayerID)
	return seat.PlayerID, true
}

// HandleDisconnect marks the seat inactive. The seat keeps its place in the
// turn order and is skipped by the engine until the player returns.
func (r *Room) HandleDisconnect(playerID string) {
	r.Mu.Lock()
	defer r.Mu.Unlock()

	for i := range r.Seats {
		if r.Seats[i].PlayerID == playerID {
			r.Seats[i].Connected = false
			break
		}
	}
	if r.Started && r.state != nil {
		r.state = engine.SetPlayerActive(r.state, playerID, false)
	}
	r.logger.WithFields(logrus.Fields{"room": r.ID, "player": playerID}).Info("player disconnected")
	r.logAction(playerID, "player_disconnect", nil)
	r.fireRoster(EventPlayerLeft, playerID)
	r.syncAll()
}

// Start deals the game for the current roster and broadcasts the first state.
func (r *Room) Start() error {
	r.Mu.Lock()
	defer r.Mu.Unlock()

	if r.Started {
		return nil
	}
	ids := make([]string, len(r.Seats))
	for i, s := range r.Seats {
		ids[i] = s.PlayerID
	}
	state, err := engine.CreateGameState(ids, r.rng)
	if err != nil {
		return err
	}
	r.state = state
	r.Started = true
	r.logger.WithFields(logrus.Fields{"room": r.ID, "players": len(ids)}).Info("game started")
	r.logAction("", "game_start", map[string]interface{}{"players": len(ids)})
	r.fireEvent(Event{Type: EventGameStart})
	r.syncAll()
	return nil
}

// HandlePlayerAction applies one action through the engine. On success the
// returned state becomes the room's canonical value and every client gets a
// fresh projection; on a rule violation only the actor hears about it.
func (r *Room) HandlePlayerAction(playerID string, action Action) {
	r.Mu.Lock()
	defer r.Mu.Unlock()

	if !r.Started || r.state == nil {
		r.fireEventToPlayer(playerID, Event{Type: EventGameError, Error: "game has not started"})
		return
	}

	var (
		next *engine.GameState
		err  error
	)
	switch action.Type {
	case ActionPlayCard:
		if action.Card == nil {
			r.fireEventToPlayer(playerID, Event{Type: EventGameError, Error: "play_card requires a card"})
			return
		}
		next, err = engine.PlayCard(r.state, playerID, *action.Card, action.ChosenColor)
	case ActionDrawCard:
		next, err = engine.DrawCard(r.state, playerID)
	case ActionPlayDrawn:
		next, err = engine.PlayDrawnCard(r.state, playerID, action.ChosenColor)
	case ActionPassDrawn:
		next, err = engine.PassDrawnCard(r.state, playerID)
	case ActionCallPenalty:
		next, err = engine.CallPenalty(r.state, action.TargetID, playerID)
	case ActionCallSelf:
		next, err = engine.CallSelf(r.state, playerID)
	default:
		r.fireEventToPlayer(playerID, Event{Type: EventGameError, Error: "unknown action " + action.Type})
		return
	}

	if err != nil {
		r.fireEventToPlayer(playerID, Event{
			Type:  EventGameError,
			Code:  engine.CodeOf(err),
			Error: err.Error(),
		})
		return
	}

	r.state = next
	r.logAction(playerID, action.Type, actionPayload(action))
	r.syncAll()

	if next.IsOver {
		r.logger.WithFields(logrus.Fields{"room": r.ID, "winner": next.Winner}).Info("game over")
		r.logAction(next.Winner, "game_end", nil)
		r.fireEvent(Event{Type: EventGameEnd, Winner: next.Winner})
		if r.OnGameEnd != nil {
			r.OnGameEnd(r.ID, next.Winner, next)
		}
	}
}

// Resync privately sends the caller the current state of the world: a fresh
// projection mid-game, or the roster while the room is still gathering.
func (r *Room) Resync(playerID string) {
	r.Mu.Lock()
	defer r.Mu.Unlock()
	if r.state != nil {
		view := r.state.ProjectionFor(playerID)
		r.fireEventToPlayer(playerID, Event{Type: EventGameState, State: &view})
		return
	}
	r.fireEventToPlayer(playerID, Event{Type: EventRoomState, Roster: r.rosterLocked()})
}

// StateSnapshot returns the canonical state, for persistence at game end and
// for tests. May be nil before Start.
func (r *Room) StateSnapshot() *engine.GameState {
	r.Mu.Lock()
	defer r.Mu.Unlock()
	return r.state
}

// Roster returns the current seat list.
func (r *Room) Roster() []RosterEntry {
	r.Mu.Lock()
	defer r.Mu.Unlock()
	return r.rosterLocked()
}

func (r *Room) rosterLocked() []RosterEntry {
	out := make([]RosterEntry, len(r.Seats))
	for i, s := range r.Seats {
		out[i] = RosterEntry{PlayerID: s.PlayerID, Username: s.Username, Connected: s.Connected}
	}
	return out
}

// syncAll sends each seated player their own projection of the latest state.
// Assumes lock is held.
func (r *Room) syncAll() {
	if r.state == nil || r.BroadcastToPlayerFn == nil {
		return
	}
	for _, seat := range r.Seats {
		if !seat.Connected {
			continue
		}
		view := r.state.ProjectionFor(seat.PlayerID)
		r.BroadcastToPlayerFn(seat.PlayerID, Event{Type: EventGameState, State: &view})
	}
}

func (r *Room) fireRoster(t EventType, playerID string) {
	r.fireEvent(Event{Type: t, PlayerID: playerID, Roster: r.rosterLocked()})
}

// fireEvent broadcasts to all connected clients. Assumes lock is held.
func (r *Room) fireEvent(ev Event) {
	if r.BroadcastFn != nil {
		r.BroadcastFn(ev)
	}
}

// fireEventToPlayer sends to a single client. Assumes lock is held.
func (r *Room) fireEventToPlayer(playerID string, ev Event) {
	if r.BroadcastToPlayerFn != nil {
		r.BroadcastToPlayerFn(playerID, ev)
	}
}

// logAction pushes an action record onto the Redis journal queue. The push is
// asynchronous and best effort: a missing or unreachable Redis never blocks
// or fails game flow.
func (r *Room) logAction(actorID, actionType string, payload map[string]interface{}) {
	r.actionIndex++
	if payload == nil {
		payload = make(map[string]interface{})
	}
	record := cache.GameActionRecord{
		RoomID:        r.ID,
		ActionIndex:   r.actionIndex,
		ActorID:       actorID,
		ActionType:    actionType,
		ActionPayload: payload,
		Timestamp:     time.Now().UnixMilli(),
	}
	go func(rec cache.GameActionRecord) {
		if cache.Rdb == nil {
			return
		}
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := cache.PublishGameAction(ctx, rec); err != nil {
			r.logger.WithError(err).WithField("room", rec.RoomID).Warn("failed to journal game action")
		}
	}(record)
}

func actionPayload(action Action) map[string]interface{} {
	p := make(map[string]interface{})
	if action.Card != nil {
		p["card"] = action.Card.String()
	}
	if action.ChosenColor != engine.ColorNone {
		p["color"] = string(action.ChosenColor)
	}
	if action.TargetID != "" {
		p["target"] = action.TargetID
	}
	return p
}
