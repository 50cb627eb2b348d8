package database

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// DB is the global connection pool. It stays nil when no database is
// configured; the service then runs guest-only with no persistence.
var DB *pgxpool.Pool

// ErrNoDatabase is returned by queries when the pool was never connected.
var ErrNoDatabase = errors.New("database: not connected")

// ConnectDB connects the pool from PG_* env vars. A missing PG_HOST or a
// failed ping leaves DB nil rather than aborting: rooms live in memory, so
// the game is playable without Postgres.
func ConnectDB() {
	host := os.Getenv("PG_HOST")
	if host == "" {
		log.Printf("PG_HOST not set, running without persistence")
		return
	}

	connStr := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s",
		os.Getenv("POSTGRES_USER"),
		os.Getenv("POSTGRES_PASSWORD"),
		host,
		os.Getenv("PG_PORT"),
		os.Getenv("PG_DATABASE"),
	)

	config, err := pgxpool.ParseConfig(connStr)
	if err != nil {
		log.Printf("unable to parse pgx config, running without persistence: %v", err)
		return
	}

	pool, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		log.Printf("unable to create pgx pool, running without persistence: %v", err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		log.Printf("db ping failed, running without persistence: %v", err)
		return
	}

	DB = pool
	log.Printf("Connected to database at %s:%s/%s", host, os.Getenv("PG_PORT"), os.Getenv("PG_DATABASE"))
}
