package matching

import (
	"context"

	"github.com/google/uuid"
	"github.com/mreyes/campus-match/internal/types"
)

// Store interfaces consumed by the engine. All of them return (nil, nil) or
// (false, nil) when the requested row is absent; the engine converts absence
// into typed NotFound errors where the contract demands one.

// CandidateStore provides read access to candidate profiles.
type CandidateStore interface {
	GetCandidate(ctx context.Context, id string) (*types.Candidate, error)
	// ListEligible returns the pool of visible, profile-complete candidates
	// in stable creation order.
	ListEligible(ctx context.Context) ([]types.Candidate, error)
}

// RequisitionStore provides read access to requisitions plus the cached
// matched-count update performed after a bulk run.
type RequisitionStore interface {
	GetRequisition(ctx context.Context, id uuid.UUID) (*types.Requisition, error)
	SetMatchedCount(ctx context.Context, id uuid.UUID, count int) error
}

// MatchStore persists match records keyed by (requisition, candidate).
type MatchStore interface {
	MatchExists(ctx context.Context, requisitionID uuid.UUID, candidateID string) (bool, error)
	// InsertMatch inserts a record if the pair has none yet. It reports false
	// when a record already existed, which is how a losing writer in a
	// concurrent bulk run learns the pair is already matched.
	InsertMatch(ctx context.Context, rec *types.MatchRecord) (bool, error)
}
