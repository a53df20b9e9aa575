package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/mreyes/campus-match/internal/types"
)

const candidateColumns = `candidate_id, major, academic_term, technical_skills,
	soft_skills, languages, experience, preferred_modality, visible,
	profile_complete, created_at`

func scanCandidate(row pgx.Row) (*types.Candidate, error) {
	var c types.Candidate
	var languagesJSON, experienceJSON []byte

	err := row.Scan(&c.ID, &c.Major, &c.AcademicTerm, &c.TechnicalSkills,
		&c.SoftSkills, &languagesJSON, &experienceJSON, &c.PreferredModality,
		&c.Visible, &c.ProfileComplete, &c.CreatedAt)
	if err != nil {
		return nil, err
	}

	if languagesJSON != nil {
		if err := json.Unmarshal(languagesJSON, &c.Languages); err != nil {
			return nil, fmt.Errorf("failed to decode languages: %w", err)
		}
	}
	if experienceJSON != nil {
		if err := json.Unmarshal(experienceJSON, &c.Experience); err != nil {
			return nil, fmt.Errorf("failed to decode experience: %w", err)
		}
	}

	return &c, nil
}

// GetCandidate retrieves a candidate profile by its enrollment key.
// Returns (nil, nil) when no such candidate exists.
func (db *DB) GetCandidate(ctx context.Context, id string) (*types.Candidate, error) {
	c, err := scanCandidate(db.pool.QueryRow(ctx,
		`SELECT `+candidateColumns+` FROM candidates WHERE candidate_id = $1`, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get candidate: %w", err)
	}
	return c, nil
}

// ListEligible returns the pool of visible, profile-complete candidates in
// creation order, capped by the configured fetch limit.
func (db *DB) ListEligible(ctx context.Context) ([]types.Candidate, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT `+candidateColumns+`
		 FROM candidates
		 WHERE visible = TRUE AND profile_complete = TRUE
		 ORDER BY created_at ASC
		 LIMIT $1`,
		db.eligiblePoolCap,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list eligible candidates: %w", err)
	}
	defer rows.Close()

	var pool []types.Candidate
	for rows.Next() {
		c, err := scanCandidate(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan candidate: %w", err)
		}
		pool = append(pool, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read candidate rows: %w", err)
	}
	return pool, nil
}
