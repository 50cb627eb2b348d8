// internal/handlers/game_ws.go
package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/coder/websocket"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/Ripper2005/Uno-Backend-Project/internal/database"
	"github.com/Ripper2005/Uno-Backend-Project/internal/engine"
	"github.com/Ripper2005/Uno-Backend-Project/internal/middleware"
	"github.com/Ripper2005/Uno-Backend-Project/internal/room"
)

// GameMessage is the structure for incoming WebSocket messages during play.
type GameMessage struct {
	// Type is one of the room action types, or "start_game" (host only).
	Type string `json:"type"`

	Card     *engine.Card `json:"card,omitempty"`
	Color    engine.Color `json:"color,omitempty"`
	TargetID string       `json:"targetId,omitempty"`
}

// GameWSHandler upgrades the HTTP connection to WebSocket for a specific
// room (/room/ws/{room_id}). It authenticates the user (creating a guest if
// needed), seats them, registers the connection, and runs the read loop.
func GameWSHandler(logger *logrus.Logger, gs *GameServer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		pathParts := strings.Split(strings.TrimPrefix(r.URL.Path, "/room/ws/"), "/")
		if len(pathParts) < 1 || pathParts[0] == "" {
			http.Error(w, "Missing room_id in path (/room/ws/{room_id})", http.StatusBadRequest)
			return
		}
		roomID, err := uuid.Parse(pathParts[0])
		if err != nil {
			http.Error(w, "Invalid room_id format", http.StatusBadRequest)
			return
		}

		rm, ok := gs.Rooms.Get(roomID)
		if !ok {
			http.Error(w, "Room not found", http.StatusNotFound)
			return
		}

		// Authenticate before the upgrade so the guest cookie can still be set.
		userID, err := EnsureEphemeralUser(w, r)
		if err != nil {
			logger.Warnf("User authentication failed for room %s: %v", roomID, err)
			http.Error(w, "Authentication failed", http.StatusForbidden)
			return
		}

		c, err := websocket.Accept(w, r, &websocket.AcceptOptions{
			Subprotocols:   []string{"game"},
			OriginPatterns: []string{"*"}, // Adjust for production security.
		})
		if err != nil {
			logger.Warnf("WebSocket accept error for room %s: %v", roomID, err)
			return
		}
		defer c.Close(websocket.StatusInternalError, "Internal server error during handler exit.")

		if c.Subprotocol() != "game" {
			c.Close(BadSubprotocolError, "Client must use the 'game' subprotocol.")
			return
		}
		middleware.LogWebSocketConnect(logger, r.RemoteAddr, r.URL.Path)
		logger.Infof("User %s connected to room %s", userID, roomID)

		username := "Guest"
		if database.DB != nil {
			if u, err := database.GetUserByID(r.Context(), userID); err == nil && u.Username != "" {
				username = u.Username
			}
		}

		playerID, seated := rm.Join(userID, username)
		if !seated {
			c.Close(RoomFullError, "Room is full or the game already started.")
			return
		}

		// Register the connection, then resync so a reconnecting player gets
		// the current state immediately.
		gs.register(roomID, playerID, c)
		defer gs.unregister(roomID, playerID, c)
		rm.Resync(playerID)

		ctx, cancel := context.WithCancel(r.Context())
		defer cancel()

		readGameMessages(ctx, c, gs, rm, playerID, userID, logger)

		middleware.LogWebSocketDisconnect(logger, r.RemoteAddr, r.URL.Path, nil)
		rm.HandleDisconnect(playerID)
	}
}

// readGameMessages reads client messages until the connection drops, decoding
// each into a room action. Rule violations are reported back privately by the
// room; transport-level junk gets an inline error frame.
func readGameMessages(ctx context.Context, c *websocket.Conn, gs *GameServer, rm *room.Room, playerID string, userID uuid.UUID, logger *logrus.Logger) {
	for {
		msgType, data, err := c.Read(ctx)
		if err != nil {
			status := websocket.CloseStatus(err)
			if status == websocket.StatusNormalClosure || status == websocket.StatusGoingAway {
				logger.Infof("WebSocket closed normally for user %s in room %s.", userID, rm.ID)
			} else if strings.Contains(err.Error(), "context canceled") {
				logger.Infof("WebSocket context canceled for user %s in room %s.", userID, rm.ID)
			} else {
				logger.Warnf("Error reading from WebSocket for user %s in room %s: %v", userID, rm.ID, err)
			}
			return
		}
		if msgType != websocket.MessageText {
			continue
		}

		var msg GameMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			logger.Warnf("Invalid JSON from user %s in room %s: %v", userID, rm.ID, err)
			sendWsError(ctx, c, "Invalid JSON format.")
			continue
		}

		logger.Debugf("Received action '%s' from player %s in room %s.", msg.Type, playerID, rm.ID)

		if msg.Type == "start_game" {
			if rm.HostUserID != userID {
				sendWsError(ctx, c, "Only the host can start the game.")
				continue
			}
			if err := rm.Start(); err != nil {
				sendWsError(ctx, c, err.Error())
			}
			continue
		}

		rm.HandlePlayerAction(playerID, room.Action{
			Type:        msg.Type,
			Card:        msg.Card,
			ChosenColor: msg.Color,
			TargetID:    msg.TargetID,
		})
	}
}

// sendWsError writes a transport-level error frame to a single connection.
func sendWsError(ctx context.Context, c *websocket.Conn, message string) {
	ev := room.Event{Type: room.EventGameError, Error: message}
	data, err := json.Marshal(ev)
	if err != nil {
		return
	}
	writeCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	_ = c.Write(writeCtx, websocket.MessageText, data)
}
