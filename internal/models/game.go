package models

import "time"

type Game struct {
	ID        string
	Slug      string
	Title     string
	Platform  string
	CreatedAt time.Time
}

// GameLink associates a user with a catalog game. At most one row exists per
// (user, game) pair; re-linking refreshes ConnectedAt.
type GameLink struct {
	ID          string
	UserID      string
	GameID      string
	ConnectedAt time.Time
}

// LinkedGame is a catalog entry joined with the caller's connection time.
type LinkedGame struct {
	Game
	ConnectedAt time.Time
}
