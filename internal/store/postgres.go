package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const schema = `
CREATE TABLE IF NOT EXISTS diagnosis_log (
	id             UUID PRIMARY KEY,
	created_at     TIMESTAMPTZ NOT NULL,
	symptoms       TEXT[] NOT NULL,
	duration       TEXT NOT NULL,
	severity       INT NOT NULL,
	top_condition  TEXT,
	top_confidence DOUBLE PRECISION,
	red_flags      TEXT[] NOT NULL,
	match_count    INT NOT NULL
);
CREATE INDEX IF NOT EXISTS diagnosis_log_created_at_idx ON diagnosis_log (created_at);
`

type PostgresRecorder struct {
	pool *pgxpool.Pool
}

// Connect opens a pool, verifies it and ensures the audit schema exists.
func Connect(ctx context.Context, url string) (*PostgresRecorder, error) {
	cfg, err := pgxpool.ParseConfig(url)
	if err != nil {
		return nil, fmt.Errorf("parse db url: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping db: %w", err)
	}

	if _, err := pool.Exec(ctx, schema); err != nil {
		pool.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return &PostgresRecorder{pool: pool}, nil
}

func (r *PostgresRecorder) Record(ctx context.Context, e Entry) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}
	if e.RedFlags == nil {
		e.RedFlags = []string{}
	}

	var topCondition *string
	var topConfidence *float64
	if e.TopCondition != "" {
		topCondition = &e.TopCondition
		topConfidence = &e.TopConfidence
	}

	_, err := r.pool.Exec(ctx, `
		INSERT INTO diagnosis_log
			(id, created_at, symptoms, duration, severity, top_condition, top_confidence, red_flags, match_count)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		e.ID, e.CreatedAt, e.Symptoms, e.Duration, e.Severity,
		topCondition, topConfidence, e.RedFlags, e.MatchCount,
	)
	if err != nil {
		return fmt.Errorf("insert diagnosis log: %w", err)
	}
	return nil
}

func (r *PostgresRecorder) TopConditions(ctx context.Context, since time.Time, limit int) ([]ConditionCount, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT top_condition, COUNT(*)
		FROM diagnosis_log
		WHERE created_at >= $1 AND top_condition IS NOT NULL
		GROUP BY top_condition
		ORDER BY COUNT(*) DESC, top_condition
		LIMIT $2`, since, limit)
	if err != nil {
		return nil, fmt.Errorf("query top conditions: %w", err)
	}

	counts, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (ConditionCount, error) {
		var c ConditionCount
		err := row.Scan(&c.Condition, &c.Count)
		return c, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan top conditions: %w", err)
	}
	return counts, nil
}

func (r *PostgresRecorder) Ping(ctx context.Context) error {
	return r.pool.Ping(ctx)
}

func (r *PostgresRecorder) Close() {
	r.pool.Close()
}
