// internal/room/events.go
package room

import (
	"github.com/Ripper2005/Uno-Backend-Project/internal/engine"
)

// EventType is an enum-like type for events broadcast to room clients.
type EventType string

const (
	EventRoomState    EventType = "room_state"    // lobby roster before the game starts
	EventGameStart    EventType = "game_start"    // game created, first state follows
	EventGameState    EventType = "game_state"    // per-viewer projection after each action
	EventGameError    EventType = "game_error"    // private: a rejected action
	EventGameEnd      EventType = "game_end"      // winner announcement
	EventPlayerJoined EventType = "player_joined" // public roster change
	EventPlayerLeft   EventType = "player_left"   // disconnect; seat stays, marked inactive
)

// RosterEntry is one seat as shown in the pre-game roster.
type RosterEntry struct {
	PlayerID  string `json:"playerId"`
	Username  string `json:"username"`
	Connected bool   `json:"connected"`
}

// Event is the wire envelope for everything the room publishes. State carries
// a per-viewer projection and is therefore only ever set on private sends.
type Event struct {
	Type     EventType          `json:"type"`
	PlayerID string             `json:"playerId,omitempty"`
	State    *engine.View       `json:"state,omitempty"`
	Code     engine.FailureCode `json:"code,omitempty"`
	Error    string             `json:"error,omitempty"`
	Winner   string             `json:"winner,omitempty"`
	Roster   []RosterEntry      `json:"roster,omitempty"`
}
