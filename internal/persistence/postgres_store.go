package persistence

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	_ "github.com/lib/pq" // PostgreSQL driver

	"github.com/Pipe0105/TD-Modelamiento/internal/state"
)

// PostgresStore handles run persistence using PostgreSQL
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore opens the database, checks it and creates the schema.
func NewPostgresStore(connectionString string) (*PostgresStore, error) {
	db, err := sql.Open("postgres", connectionString)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	store := &PostgresStore{db: db}
	if err := store.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	log.Println("connected to PostgreSQL run store")
	return store, nil
}

func (ps *PostgresStore) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		level TEXT NOT NULL,
		level_index INTEGER NOT NULL,
		wave INTEGER NOT NULL,
		outcome TEXT NOT NULL,
		money INTEGER NOT NULL,
		lives INTEGER NOT NULL,
		kills INTEGER NOT NULL,
		escapes INTEGER NOT NULL,
		duration DOUBLE PRECISION NOT NULL,
		seed BIGINT NOT NULL,
		ended_at TIMESTAMP WITH TIME ZONE NOT NULL
	);
	CREATE INDEX IF NOT EXISTS runs_ended_at_idx ON runs (ended_at DESC);
	`
	_, err := ps.db.Exec(schema)
	return err
}

func (ps *PostgresStore) SaveRun(ctx context.Context, rec state.RunRecord) error {
	_, err := ps.db.ExecContext(ctx, `
		INSERT INTO runs (id, level, level_index, wave, outcome, money, lives, kills, escapes, duration, seed, ended_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT (id) DO NOTHING`,
		rec.ID, rec.Level, rec.LevelIndex, rec.Wave, rec.Outcome, rec.Money, rec.Lives,
		rec.Kills, rec.Escapes, rec.Duration, rec.Seed, rec.EndedAt)
	if err != nil {
		return fmt.Errorf("failed to save run %s: %w", rec.ID, err)
	}
	return nil
}

func (ps *PostgresStore) RecentRuns(ctx context.Context, limit int) ([]state.RunRecord, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := ps.db.QueryContext(ctx, `
		SELECT id, level, level_index, wave, outcome, money, lives, kills, escapes, duration, seed, ended_at
		FROM runs ORDER BY ended_at DESC LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer rows.Close()

	var runs []state.RunRecord
	for rows.Next() {
		var r state.RunRecord
		if err := rows.Scan(&r.ID, &r.Level, &r.LevelIndex, &r.Wave, &r.Outcome, &r.Money, &r.Lives,
			&r.Kills, &r.Escapes, &r.Duration, &r.Seed, &r.EndedAt); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

func (ps *PostgresStore) Close() error {
	return ps.db.Close()
}
