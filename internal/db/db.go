// Package db provides PostgreSQL access for candidate profiles, requisitions
// and match records.
package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// defaultEligiblePoolCap bounds how many candidates one bulk run may load.
const defaultEligiblePoolCap = 1000

// DB wraps a PostgreSQL connection pool
type DB struct {
	pool            *pgxpool.Pool
	eligiblePoolCap int
}

// Connect establishes a connection pool to the database
func Connect(ctx context.Context, databaseURL string) (*DB, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{pool: pool, eligiblePoolCap: defaultEligiblePoolCap}, nil
}

// Close closes the connection pool
func (db *DB) Close() {
	if db.pool != nil {
		db.pool.Close()
	}
}

// SetEligiblePoolCap overrides the fetch cap applied when loading the
// eligible candidate pool. Values below 1 keep the current cap.
func (db *DB) SetEligiblePoolCap(n int) {
	if n >= 1 {
		db.eligiblePoolCap = n
	}
}

// schema is the DDL applied by Migrate. The UNIQUE constraint on
// (requisition_id, candidate_id) is the safety net against concurrent bulk
// runs writing the same pair twice.
const schema = `
CREATE TABLE IF NOT EXISTS candidates (
	candidate_id       TEXT PRIMARY KEY,
	major              TEXT NOT NULL DEFAULT '',
	academic_term      INTEGER NOT NULL DEFAULT 1,
	technical_skills   TEXT[] NOT NULL DEFAULT '{}',
	soft_skills        TEXT[] NOT NULL DEFAULT '{}',
	languages          JSONB NOT NULL DEFAULT '[]',
	experience         JSONB NOT NULL DEFAULT '[]',
	preferred_modality TEXT NOT NULL DEFAULT '',
	visible            BOOLEAN NOT NULL DEFAULT TRUE,
	profile_complete   BOOLEAN NOT NULL DEFAULT FALSE,
	created_at         TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS requisitions (
	id                 UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	company_id         UUID NOT NULL,
	title              TEXT NOT NULL DEFAULT '',
	technical_skills   TEXT[] NOT NULL DEFAULT '{}',
	soft_skills        TEXT[] NOT NULL DEFAULT '{}',
	languages          JSONB NOT NULL DEFAULT '[]',
	experience_tier    TEXT NOT NULL DEFAULT 'No experience',
	accepted_majors    TEXT[] NOT NULL DEFAULT '{}',
	min_academic_term  INTEGER NOT NULL DEFAULT 0,
	modality           TEXT NOT NULL DEFAULT '',
	matched_count      INTEGER NOT NULL DEFAULT 0,
	created_at         TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at         TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS match_records (
	id                   UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	requisition_id       UUID NOT NULL REFERENCES requisitions(id) ON DELETE CASCADE,
	candidate_id         TEXT NOT NULL,
	percentage           DOUBLE PRECISION NOT NULL,
	breakdown            JSONB NOT NULL,
	radar                JSONB NOT NULL,
	embedding_similarity DOUBLE PRECISION,
	created_at           TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	viewed               BOOLEAN NOT NULL DEFAULT FALSE,
	viewed_at            TIMESTAMPTZ,
	UNIQUE (requisition_id, candidate_id)
);

CREATE INDEX IF NOT EXISTS idx_match_records_requisition_percentage
	ON match_records (requisition_id, percentage DESC);
`

// Migrate applies the schema. Safe to run repeatedly.
func (db *DB) Migrate(ctx context.Context) error {
	if _, err := db.pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	return nil
}
