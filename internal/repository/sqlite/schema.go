package sqlite

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// schema is applied on every startup. There is no migrations mechanism;
// schema changes require manual intervention.
const schema = `
CREATE TABLE IF NOT EXISTS patients (
	id              INTEGER PRIMARY KEY AUTOINCREMENT,
	name            TEXT NOT NULL,
	age             INTEGER,
	medical_history TEXT,
	created_at      TIMESTAMP NOT NULL
);

CREATE TABLE IF NOT EXISTS doctors (
	id        INTEGER PRIMARY KEY AUTOINCREMENT,
	name      TEXT NOT NULL,
	specialty TEXT,
	phone     TEXT
);

CREATE TABLE IF NOT EXISTS appointments (
	id           INTEGER PRIMARY KEY AUTOINCREMENT,
	patient_id   INTEGER NOT NULL REFERENCES patients(id),
	doctor_id    INTEGER NOT NULL REFERENCES doctors(id),
	scheduled_at TIMESTAMP NOT NULL,
	notes        TEXT
);

CREATE TABLE IF NOT EXISTS bills (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	patient_id INTEGER NOT NULL REFERENCES patients(id),
	amount     REAL NOT NULL,
	paid       BOOLEAN NOT NULL DEFAULT 0,
	issued_at  TIMESTAMP NOT NULL
);

CREATE TABLE IF NOT EXISTS admins (
	id            INTEGER PRIMARY KEY AUTOINCREMENT,
	username      TEXT NOT NULL UNIQUE,
	password_hash TEXT NOT NULL,
	created_at    TIMESTAMP NOT NULL
);
`

// Migrate creates missing tables.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	return nil
}
