package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/mreyes/campus-match/internal/types"
)

// GetRequisition retrieves a requisition by ID. Returns (nil, nil) when no
// such requisition exists.
func (db *DB) GetRequisition(ctx context.Context, id uuid.UUID) (*types.Requisition, error) {
	var r types.Requisition
	var tier string
	var languagesJSON []byte

	err := db.pool.QueryRow(ctx,
		`SELECT id, company_id, title, technical_skills, soft_skills, languages,
		        experience_tier, accepted_majors, min_academic_term, modality,
		        matched_count, created_at, updated_at
		 FROM requisitions WHERE id = $1`,
		id,
	).Scan(&r.ID, &r.CompanyID, &r.Title, &r.TechnicalSkills, &r.SoftSkills,
		&languagesJSON, &tier, &r.AcceptedMajors, &r.MinAcademicTerm,
		&r.Modality, &r.MatchedCount, &r.CreatedAt, &r.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get requisition: %w", err)
	}

	r.ExperienceTier = types.ExperienceTier(tier)
	if languagesJSON != nil {
		if err := json.Unmarshal(languagesJSON, &r.Languages); err != nil {
			return nil, fmt.Errorf("failed to decode required languages: %w", err)
		}
	}

	return &r, nil
}

// SetMatchedCount overwrites the requisition's cached matched-candidate count.
func (db *DB) SetMatchedCount(ctx context.Context, id uuid.UUID, count int) error {
	_, err := db.pool.Exec(ctx,
		`UPDATE requisitions SET matched_count = $1, updated_at = NOW() WHERE id = $2`,
		count, id,
	)
	if err != nil {
		return fmt.Errorf("failed to set matched count: %w", err)
	}
	return nil
}
