package storage

import "time"

// GameRecord represents a row in the games table. Only the latest position
// summary is kept; individual moves are never stored.
type GameRecord struct {
	GameID     string    `db:"game_id"`
	CheckMode  string    `db:"check_mode"`
	InitialFEN string    `db:"initial_fen"`
	State      string    `db:"state"`
	Turn       string    `db:"turn"`
	MoveCount  int       `db:"move_count"`
	CreatedUTC time.Time `db:"created_utc"`
	UpdatedUTC time.Time `db:"updated_utc"`
}

// Schema defines the SQLite database structure
const Schema = `
CREATE TABLE IF NOT EXISTS games (
	game_id TEXT PRIMARY KEY,
	check_mode TEXT NOT NULL CHECK(check_mode IN ('legacy', 'strict')),
	initial_fen TEXT NOT NULL,
	state TEXT NOT NULL DEFAULT 'in_progress',
	turn TEXT NOT NULL CHECK(turn IN ('w', 'b')),
	move_count INTEGER NOT NULL DEFAULT 0,
	created_utc DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
	updated_utc DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_games_state ON games(state);
`
