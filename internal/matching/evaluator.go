package matching

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/mreyes/campus-match/internal/types"
)

// Evaluation is the result of scoring one (requisition, candidate) pair.
type Evaluation struct {
	Breakdown  types.Breakdown  `json:"breakdown"`
	Percentage float64          `json:"percentage"`
	Radar      types.RadarChart `json:"radar"`
}

// Evaluator scores candidate profiles against requisitions. Evaluation is
// deterministic and side-effect free: the same profiles always produce the
// same breakdown and percentage.
type Evaluator struct {
	candidates   CandidateStore
	requisitions RequisitionStore
	weights      Weights
}

// NewEvaluator creates an evaluator over the given stores and weight vector.
func NewEvaluator(candidates CandidateStore, requisitions RequisitionStore, weights Weights) *Evaluator {
	return &Evaluator{
		candidates:   candidates,
		requisitions: requisitions,
		weights:      weights,
	}
}

// Evaluate fetches both profiles and scores the pair. If either profile is
// absent it fails with a NotFound error; no partial breakdown is ever
// returned.
func (e *Evaluator) Evaluate(ctx context.Context, requisitionID uuid.UUID, candidateID string) (*Evaluation, error) {
	req, err := e.requisitions.GetRequisition(ctx, requisitionID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch requisition: %w", err)
	}
	if req == nil {
		return nil, &ErrRequisitionNotFound{ID: requisitionID}
	}

	cand, err := e.candidates.GetCandidate(ctx, candidateID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch candidate: %w", err)
	}
	if cand == nil {
		return nil, &ErrCandidateNotFound{ID: candidateID}
	}

	return e.Score(req, cand), nil
}

// Score computes the evaluation for already loaded profiles. The bulk runner
// uses this directly so candidates from the pool are not re-fetched.
func (e *Evaluator) Score(req *types.Requisition, cand *types.Candidate) *Evaluation {
	breakdown := ComputeBreakdown(cand, req)
	return &Evaluation{
		Breakdown:  breakdown,
		Percentage: e.weights.Overall(breakdown),
		Radar:      ProjectRadar(breakdown),
	}
}
