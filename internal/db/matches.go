package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/mreyes/campus-match/internal/types"
)

const matchColumns = `id, requisition_id, candidate_id, percentage, breakdown,
	radar, embedding_similarity, created_at, viewed, viewed_at`

func scanMatch(row pgx.Row) (*types.MatchRecord, error) {
	var m types.MatchRecord
	var breakdownJSON, radarJSON []byte

	err := row.Scan(&m.ID, &m.RequisitionID, &m.CandidateID, &m.Percentage,
		&breakdownJSON, &radarJSON, &m.EmbeddingSimilarity, &m.CreatedAt,
		&m.Viewed, &m.ViewedAt)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(breakdownJSON, &m.Breakdown); err != nil {
		return nil, fmt.Errorf("failed to decode breakdown: %w", err)
	}
	if err := json.Unmarshal(radarJSON, &m.Radar); err != nil {
		return nil, fmt.Errorf("failed to decode radar: %w", err)
	}

	return &m, nil
}

// MatchExists reports whether a record exists for the pair.
func (db *DB) MatchExists(ctx context.Context, requisitionID uuid.UUID, candidateID string) (bool, error) {
	var exists bool
	err := db.pool.QueryRow(ctx,
		`SELECT EXISTS (
			SELECT 1 FROM match_records WHERE requisition_id = $1 AND candidate_id = $2
		)`,
		requisitionID, candidateID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check match existence: %w", err)
	}
	return exists, nil
}

// InsertMatch inserts a record unless the (requisition, candidate) pair
// already has one. Reports false without error when the pair was already
// matched, so concurrent bulk runs resolve the race at the constraint.
func (db *DB) InsertMatch(ctx context.Context, rec *types.MatchRecord) (bool, error) {
	breakdownJSON, err := json.Marshal(rec.Breakdown)
	if err != nil {
		return false, fmt.Errorf("failed to encode breakdown: %w", err)
	}
	radarJSON, err := json.Marshal(rec.Radar)
	if err != nil {
		return false, fmt.Errorf("failed to encode radar: %w", err)
	}

	tag, err := db.pool.Exec(ctx,
		`INSERT INTO match_records (requisition_id, candidate_id, percentage, breakdown, radar)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (requisition_id, candidate_id) DO NOTHING`,
		rec.RequisitionID, rec.CandidateID, rec.Percentage, breakdownJSON, radarJSON,
	)
	if err != nil {
		return false, fmt.Errorf("failed to insert match: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

// GetMatch retrieves one match record by ID. Returns (nil, nil) when absent.
func (db *DB) GetMatch(ctx context.Context, id uuid.UUID) (*types.MatchRecord, error) {
	m, err := scanMatch(db.pool.QueryRow(ctx,
		`SELECT `+matchColumns+` FROM match_records WHERE id = $1`, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get match: %w", err)
	}
	return m, nil
}

// ListMatchesOptions holds the filter and pagination options for ListMatches.
type ListMatchesOptions struct {
	MinPercentage float64
	Limit         int
	Offset        int
}

// Normalize applies the default and maximum page sizes.
func (o *ListMatchesOptions) Normalize() {
	if o.Limit <= 0 {
		o.Limit = 50
	}
	if o.Limit > 200 {
		o.Limit = 200
	}
	if o.Offset < 0 {
		o.Offset = 0
	}
}

// ListMatches returns the requisition's match records ordered by percentage
// descending.
func (db *DB) ListMatches(ctx context.Context, requisitionID uuid.UUID, opts ListMatchesOptions) ([]types.MatchRecord, error) {
	opts.Normalize()

	rows, err := db.pool.Query(ctx,
		`SELECT `+matchColumns+`
		 FROM match_records
		 WHERE requisition_id = $1 AND percentage >= $2
		 ORDER BY percentage DESC
		 OFFSET $3 LIMIT $4`,
		requisitionID, opts.MinPercentage, opts.Offset, opts.Limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list matches: %w", err)
	}
	defer rows.Close()

	var records []types.MatchRecord
	for rows.Next() {
		m, err := scanMatch(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan match: %w", err)
		}
		records = append(records, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read match rows: %w", err)
	}
	return records, nil
}

// CountMatches counts the requisition's match records at or above the
// percentage filter.
func (db *DB) CountMatches(ctx context.Context, requisitionID uuid.UUID, minPercentage float64) (int, error) {
	var count int
	err := db.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM match_records WHERE requisition_id = $1 AND percentage >= $2`,
		requisitionID, minPercentage,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count matches: %w", err)
	}
	return count, nil
}

// MarkViewed sets the viewed flag and timestamp the first time a record is
// returned to the requisition owner. Re-marking an already viewed record is
// a no-op, preserving the original viewed_at.
func (db *DB) MarkViewed(ctx context.Context, id uuid.UUID) error {
	_, err := db.pool.Exec(ctx,
		`UPDATE match_records SET viewed = TRUE, viewed_at = NOW()
		 WHERE id = $1 AND viewed = FALSE`,
		id,
	)
	if err != nil {
		return fmt.Errorf("failed to mark match viewed: %w", err)
	}
	return nil
}

// DeleteMatches removes every match record of a requisition, returning the
// number deleted. Used by the bulk reset operation before re-running
// matching with new parameters.
func (db *DB) DeleteMatches(ctx context.Context, requisitionID uuid.UUID) (int64, error) {
	tag, err := db.pool.Exec(ctx,
		`DELETE FROM match_records WHERE requisition_id = $1`, requisitionID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete matches: %w", err)
	}
	return tag.RowsAffected(), nil
}
