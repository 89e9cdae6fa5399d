package db

import (
	"database/sql"
	"fmt"
)

// Migrate runs all schema migrations. Statements are idempotent and re-run
// on every open.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	// Versioned JSON payloads: the profile and the active session.
	`CREATE TABLE IF NOT EXISTS envelopes (
		key        TEXT PRIMARY KEY,
		version    TEXT NOT NULL,
		timestamp  INTEGER NOT NULL,
		data       TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS session_logs (
		id               TEXT PRIMARY KEY,
		date             TEXT NOT NULL,
		week             INTEGER NOT NULL CHECK(week >= 1),
		day              INTEGER NOT NULL CHECK(day BETWEEN 1 AND 7),
		name             TEXT NOT NULL,
		type             TEXT NOT NULL
		                 CHECK(type IN ('upper','lower','cardio','rest','test','recovery')),
		mode             TEXT NOT NULL
		                 CHECK(mode IN ('performance','standard','adapted','recovery','unevaluated')),
		readiness_score  REAL,
		xp               INTEGER NOT NULL DEFAULT 0 CHECK(xp >= 0),
		duration_min     INTEGER NOT NULL DEFAULT 0,
		exercises_json   TEXT NOT NULL DEFAULT '[]',
		notes            TEXT NOT NULL DEFAULT '',
		created_at       TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_session_logs_date ON session_logs(date)`,
	`CREATE INDEX IF NOT EXISTS idx_session_logs_week_day ON session_logs(week, day)`,
}
