package models

import "github.com/google/uuid"

type User struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	Password string    `json:"password,omitempty"`
	Username string    `json:"username"`

	// IsEphemeral marks guest accounts created on first WebSocket connect.
	IsEphemeral bool `json:"is_ephemeral"`

	GamesPlayed int `json:"games_played"`
	GamesWon    int `json:"games_won"`
}
