package database

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go-linkedin-job-source/internal/protocol"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const schema = `
CREATE TABLE IF NOT EXISTS source_records (
	id          BIGSERIAL PRIMARY KEY,
	stream      TEXT        NOT NULL,
	data        JSONB       NOT NULL,
	emitted_at  BIGINT      NOT NULL,
	created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS source_records_stream_idx ON source_records (stream);

CREATE TABLE IF NOT EXISTS stream_states (
	stream      TEXT PRIMARY KEY,
	updated_at  TIMESTAMPTZ NOT NULL
);`

// Repository mirrors every emitted message into Postgres.
type Repository struct {
	db  *pgxpool.Pool
	now func() time.Time
}

func ConnectDB(ctx context.Context, connString string) (*Repository, error) {
	config, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("unable to parse database url: %w", err)
	}

	config.MaxConns = 4
	config.MinConns = 1
	config.MaxConnLifetime = time.Hour

	// Connection poolers in transaction mode do not keep prepared statements.
	config.ConnConfig.DefaultQueryExecMode = pgx.QueryExecModeExec

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("unable to connect to database: %w", err)
	}

	// Ping to ensure connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("database unreachable: %w", err)
	}

	return &Repository{db: pool, now: time.Now}, nil
}

func (r *Repository) Close() {
	if r.db != nil {
		r.db.Close()
	}
}

// EnsureSchema creates the tables if they do not exist yet.
func (r *Repository) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

// Write stores records and checkpoints; other message types are ignored.
func (r *Repository) Write(ctx context.Context, msg protocol.Message) error {
	switch msg.Type {
	case protocol.TypeRecord:
		return r.SaveRecord(ctx, msg.Record)
	case protocol.TypeState:
		return r.SaveState(ctx, msg.State.Stream.StreamDescriptor.Name)
	}
	return nil
}

func (r *Repository) SaveRecord(ctx context.Context, rec *protocol.Record) error {
	data, err := json.Marshal(rec.Data)
	if err != nil {
		return fmt.Errorf("failed to marshal %s record: %w", rec.Stream, err)
	}
	_, err = r.db.Exec(ctx,
		"INSERT INTO source_records (stream, data, emitted_at) VALUES ($1, $2, $3)",
		rec.Stream, string(data), rec.EmittedAt)
	if err != nil {
		return fmt.Errorf("failed to save %s record: %w", rec.Stream, err)
	}
	return nil
}

// SaveState records that stream finished a full run.
func (r *Repository) SaveState(ctx context.Context, stream string) error {
	query := `
		INSERT INTO stream_states (stream, updated_at)
		VALUES ($1, $2)
		ON CONFLICT (stream)
		DO UPDATE SET updated_at = EXCLUDED.updated_at`
	if _, err := r.db.Exec(ctx, query, stream, r.now()); err != nil {
		return fmt.Errorf("failed to save state for %s: %w", stream, err)
	}
	return nil
}

// CountRecords returns how many records of stream are stored.
func (r *Repository) CountRecords(ctx context.Context, stream string) (int, error) {
	var n int
	err := r.db.QueryRow(ctx, "SELECT count(*) FROM source_records WHERE stream = $1", stream).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("failed to count %s records: %w", stream, err)
	}
	return n, nil
}

// LastState returns when stream was last checkpointed.
func (r *Repository) LastState(ctx context.Context, stream string) (time.Time, error) {
	var at time.Time
	err := r.db.QueryRow(ctx, "SELECT updated_at FROM stream_states WHERE stream = $1", stream).Scan(&at)
	if err != nil {
		if err == pgx.ErrNoRows {
			return time.Time{}, fmt.Errorf("no state for %s", stream)
		}
		return time.Time{}, fmt.Errorf("failed to get state for %s: %w", stream, err)
	}
	return at, nil
}
