package postgres

import (
	"context"
	"database/sql"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// Open abre una conexión pool a Postgres usando pgx (database/sql).
func Open(dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxIdleTime(5 * time.Minute)
	db.SetConnMaxLifetime(30 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}

// schema es idempotente; se aplica en cada arranque.
// El CHECK de reminders replica la invariante frequency_months <=> is_recurring.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS pets (
		id            TEXT PRIMARY KEY,
		owner_user_id TEXT NOT NULL,
		name          TEXT NOT NULL,
		species       TEXT NOT NULL,
		breed         TEXT NOT NULL DEFAULT '',
		sex           TEXT NOT NULL DEFAULT 'unknown',
		birth_date    DATE NULL,
		notes         TEXT NOT NULL DEFAULT '',
		created_at    TIMESTAMPTZ NOT NULL,
		updated_at    TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS pets_owner_idx ON pets (owner_user_id, created_at)`,
	`CREATE TABLE IF NOT EXISTS reminders (
		id               TEXT PRIMARY KEY,
		pet_id           TEXT NOT NULL REFERENCES pets(id) ON DELETE CASCADE,
		type             TEXT NOT NULL CHECK (type IN ('VACCINE','DEWORM','HYGIENE','SPAY_NEUTER')),
		title            TEXT NOT NULL,
		due_date         TIMESTAMPTZ NOT NULL,
		is_recurring     BOOLEAN NOT NULL DEFAULT FALSE,
		frequency_months INTEGER NULL CHECK (frequency_months > 0),
		status           TEXT NOT NULL DEFAULT 'PENDING' CHECK (status IN ('PENDING','COMPLETED')),
		CONSTRAINT reminders_recurrence_chk CHECK (
			(is_recurring AND frequency_months IS NOT NULL) OR
			(NOT is_recurring AND frequency_months IS NULL)
		)
	)`,
	`CREATE INDEX IF NOT EXISTS reminders_pet_due_idx ON reminders (pet_id, due_date)`,
}

// Migrate crea las tablas si no existen.
func Migrate(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
