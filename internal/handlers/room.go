// internal/handlers/room.go
package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/Ripper2005/Uno-Backend-Project/internal/room"
)

// roomSummary is the public shape of a room in HTTP responses.
type roomSummary struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	Players int       `json:"players"`
	Started bool      `json:"started"`
}

func summarize(rm *room.Room) roomSummary {
	rm.Mu.Lock()
	defer rm.Mu.Unlock()
	return roomSummary{
		ID:      rm.ID,
		Name:    rm.Name,
		Players: len(rm.Seats),
		Started: rm.Started,
	}
}

// CreateRoomHandler creates an in-memory room owned by the requesting user.
// Guests are allowed; a missing or invalid token mints an ephemeral user.
func CreateRoomHandler(gs *GameServer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := EnsureEphemeralUser(w, r)
		if err != nil {
			http.Error(w, "authentication failed", http.StatusForbidden)
			return
		}

		var req struct {
			Name string `json:"name"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil && err.Error() != "EOF" {
			http.Error(w, "bad room request payload", http.StatusBadRequest)
			return
		}
		if req.Name == "" {
			req.Name = "UNO Room"
		}

		rm := gs.CreateRoom(req.Name, userID)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(summarize(rm))
	}
}

// ListRoomsHandler returns every in-memory room with its seat count.
func ListRoomsHandler(gs *GameServer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rooms := gs.Rooms.List()
		summaries := make([]roomSummary, 0, len(rooms))
		for _, rm := range rooms {
			summaries = append(summaries, summarize(rm))
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(summaries)
	}
}

// JoinRoomHandler reserves a seat over HTTP; the WebSocket endpoint performs
// the same join idempotently, so calling this first is optional.
func JoinRoomHandler(gs *GameServer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := EnsureEphemeralUser(w, r)
		if err != nil {
			http.Error(w, "authentication failed", http.StatusForbidden)
			return
		}

		var req struct {
			RoomID   uuid.UUID `json:"roomId"`
			Username string    `json:"username"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad join request payload", http.StatusBadRequest)
			return
		}
		if req.Username == "" {
			req.Username = "Guest"
		}

		rm, ok := gs.Rooms.Get(req.RoomID)
		if !ok {
			http.Error(w, "room not found", http.StatusNotFound)
			return
		}

		playerID, seated := rm.Join(userID, req.Username)
		if !seated {
			http.Error(w, "room is full or the game already started", http.StatusConflict)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"roomId":   rm.ID,
			"playerId": playerID,
			"roster":   rm.Roster(),
		})
	}
}
