// internal/database/match.go
package database

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/Ripper2005/Uno-Backend-Project/internal/engine"
)

// RecordMatchResult persists the final outcome of a match: one row in matches
// and one per seated player with their finishing hand size, plus per-user
// played/won tallies. Player ids are user UUIDs rendered as strings by the
// room layer; ids that do not parse (synthetic tests) are skipped for the
// user tally but still recorded as results.
func RecordMatchResult(ctx context.Context, roomID uuid.UUID, final *engine.GameState) error {
	if DB == nil {
		return ErrNoDatabase
	}
	err := pgx.BeginTxFunc(ctx, DB, pgx.TxOptions{}, func(tx pgx.Tx) error {
		upsertMatch := `
			INSERT INTO matches (id, status, winner_id)
			VALUES ($1, 'completed', $2)
			ON CONFLICT (id) DO UPDATE SET status = 'completed', winner_id = $2
		`
		if _, e := tx.Exec(ctx, upsertMatch, roomID, final.Winner); e != nil {
			return e
		}

		for _, p := range final.Players {
			didWin := p.ID == final.Winner
			q := `
				INSERT INTO match_results (match_id, player_id, cards_left, did_win)
				VALUES ($1, $2, $3, $4)
				ON CONFLICT (match_id, player_id)
				DO UPDATE SET cards_left=$3, did_win=$4
			`
			if _, e := tx.Exec(ctx, q, roomID, p.ID, len(p.Hand), didWin); e != nil {
				return e
			}

			userID, parseErr := uuid.Parse(p.ID)
			if parseErr != nil {
				continue
			}
			tally := `
				UPDATE users
				SET games_played = games_played + 1,
				    games_won = games_won + $2::int
				WHERE id = $1
			`
			won := 0
			if didWin {
				won = 1
			}
			if _, e := tx.Exec(ctx, tally, userID, won); e != nil {
				return e
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("tx upsert match or results: %w", err)
	}
	return nil
}
