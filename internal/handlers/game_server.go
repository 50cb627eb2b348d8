// internal/handlers/game_server.go
package handlers

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/coder/websocket"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/Ripper2005/Uno-Backend-Project/internal/database"
	"github.com/Ripper2005/Uno-Backend-Project/internal/engine"
	"github.com/Ripper2005/Uno-Backend-Project/internal/room"
)

// GameServer owns the room store and the per-room WebSocket connection
// registry. Rooms stay transport-agnostic; the server wires their broadcast
// callbacks to live connections.
type GameServer struct {
	Rooms  *room.Store
	logger *logrus.Logger

	mu    sync.Mutex
	conns map[uuid.UUID]map[string]*websocket.Conn // roomID -> playerID -> conn
}

func NewGameServer(logger *logrus.Logger) *GameServer {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &GameServer{
		Rooms:  room.NewStore(),
		logger: logger,
		conns:  make(map[uuid.UUID]map[string]*websocket.Conn),
	}
}

// CreateRoom builds a room, wires its callbacks, and registers it.
func (gs *GameServer) CreateRoom(name string, hostUserID uuid.UUID) *room.Room {
	r := room.New(name, hostUserID, gs.logger)
	r.BroadcastFn = gs.createBroadcastFunc(r)
	r.BroadcastToPlayerFn = gs.createBroadcastToPlayerFunc(r)
	r.OnGameEnd = gs.onGameEnd
	gs.Rooms.Add(r)
	gs.logger.WithFields(logrus.Fields{"room": r.ID, "name": name}).Info("room created")
	return r
}

func (gs *GameServer) register(roomID uuid.UUID, playerID string, c *websocket.Conn) {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	if gs.conns[roomID] == nil {
		gs.conns[roomID] = make(map[string]*websocket.Conn)
	}
	gs.conns[roomID][playerID] = c
}

func (gs *GameServer) unregister(roomID uuid.UUID, playerID string, c *websocket.Conn) {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	// A reconnect may already have replaced the entry; only remove our own.
	if gs.conns[roomID][playerID] == c {
		delete(gs.conns[roomID], playerID)
		if len(gs.conns[roomID]) == 0 {
			delete(gs.conns, roomID)
		}
	}
}

func (gs *GameServer) connsSnapshot(roomID uuid.UUID) map[string]*websocket.Conn {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	out := make(map[string]*websocket.Conn, len(gs.conns[roomID]))
	for pid, c := range gs.conns[roomID] {
		out[pid] = c
	}
	return out
}

// createBroadcastFunc returns a room.Room BroadcastFn. It is called while the
// room lock is held, so the actual writes happen on a separate goroutine.
func (gs *GameServer) createBroadcastFunc(r *room.Room) func(ev room.Event) {
	return func(ev room.Event) {
		data, err := json.Marshal(ev)
		if err != nil {
			gs.logger.Errorf("failed to marshal broadcast event (%s) for room %s: %v", ev.Type, r.ID, err)
			return
		}
		targets := gs.connsSnapshot(r.ID)
		go func() {
			for pid, c := range targets {
				writeCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
				err := c.Write(writeCtx, websocket.MessageText, data)
				cancel()
				if err != nil {
					gs.logger.Warnf("failed to write broadcast to player %s in room %s: %v", pid, r.ID, err)
				}
			}
		}()
	}
}

// createBroadcastToPlayerFunc returns a room.Room BroadcastToPlayerFn for
// private sends, also deferring the write off the room lock.
func (gs *GameServer) createBroadcastToPlayerFunc(r *room.Room) func(playerID string, ev room.Event) {
	return func(playerID string, ev room.Event) {
		gs.mu.Lock()
		c := gs.conns[r.ID][playerID]
		gs.mu.Unlock()
		if c == nil {
			return
		}
		data, err := json.Marshal(ev)
		if err != nil {
			gs.logger.Errorf("failed to marshal private event (%s) for player %s in room %s: %v", ev.Type, playerID, r.ID, err)
			return
		}
		go func() {
			writeCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
			defer cancel()
			if err := c.Write(writeCtx, websocket.MessageText, data); err != nil {
				gs.logger.Warnf("failed to write private message to player %s in room %s: %v", playerID, r.ID, err)
			}
		}()
	}
}

// onGameEnd persists the match outcome. Persistence is best effort and off
// the hot path; a missing database (tests, local play) just logs.
func (gs *GameServer) onGameEnd(roomID uuid.UUID, winner string, final *engine.GameState) {
	gs.logger.WithFields(logrus.Fields{"room": roomID, "winner": winner}).Info("persisting match result")
	go func() {
		if database.DB == nil {
			return
		}
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := database.RecordMatchResult(ctx, roomID, final); err != nil {
			gs.logger.WithError(err).Errorf("failed to record match result for room %s", roomID)
		}
	}()
}
