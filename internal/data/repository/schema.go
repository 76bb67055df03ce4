package repository

import (
	"context"
	"fmt"

	"mobile-mechanic/pkg/database"
)

// EnsureSchema creates the tables and the slot-exclusivity index when the
// Postgres store is configured.
func EnsureSchema(ctx context.Context, db database.PgxIface) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS bookings (
			id             TEXT PRIMARY KEY,
			name           TEXT NOT NULL,
			phone          TEXT NOT NULL,
			email          TEXT NOT NULL DEFAULT '',
			vehicle        TEXT NOT NULL,
			service        TEXT NOT NULL,
			location       TEXT NOT NULL,
			preferred_date TEXT NOT NULL,
			preferred_time TEXT NOT NULL,
			urgency        TEXT NOT NULL DEFAULT '',
			description    TEXT NOT NULL DEFAULT '',
			status         TEXT NOT NULL,
			deposit_paid   BOOLEAN NOT NULL DEFAULT FALSE,
			deposit_amount INTEGER NOT NULL DEFAULT 0,
			created_at     TIMESTAMPTZ NOT NULL
		)`,
		`CREATE UNIQUE INDEX IF NOT EXISTS bookings_slot_idx
			ON bookings (preferred_date, preferred_time)
			WHERE status = 'confirmed'`,
		`CREATE TABLE IF NOT EXISTS quotes (
			id          TEXT PRIMARY KEY,
			name        TEXT NOT NULL,
			phone       TEXT NOT NULL,
			email       TEXT NOT NULL DEFAULT '',
			vehicle     TEXT NOT NULL,
			service     TEXT NOT NULL,
			location    TEXT NOT NULL,
			urgency     TEXT NOT NULL DEFAULT '',
			description TEXT NOT NULL DEFAULT '',
			status      TEXT NOT NULL,
			created_at  TIMESTAMPTZ NOT NULL
		)`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}

	return nil
}
