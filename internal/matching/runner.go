package matching

import (
	"context"
	"fmt"
	"math"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/mreyes/campus-match/internal/types"
)

// DefaultMinPercentage is the bulk-run threshold used when the caller does
// not supply one.
const DefaultMinPercentage = 80.0

// defaultWorkers bounds the bulk runner's fan-out when no limit is configured.
const defaultWorkers = 4

// Summary reports the outcome of one bulk matching run. Evaluated is the
// size of the eligible pool; Failed counts candidates skipped because of
// store errors.
type Summary struct {
	Evaluated    int `json:"evaluated"`
	MetThreshold int `json:"met_threshold"`
	Created      int `json:"created"`
	Failed       int `json:"failed"`
}

// Runner executes bulk matching for one requisition across the whole
// eligible candidate pool. Re-running is idempotent: pairs that already have
// a record are skipped without re-evaluation, and the unique (requisition,
// candidate) constraint in the match store makes concurrent runs safe.
type Runner struct {
	evaluator    *Evaluator
	candidates   CandidateStore
	requisitions RequisitionStore
	matches      MatchStore
	logger       *zap.Logger
	workers      int
}

// NewRunner creates a bulk runner. workers bounds the per-candidate fan-out;
// values below 1 fall back to the default.
func NewRunner(evaluator *Evaluator, candidates CandidateStore, requisitions RequisitionStore, matches MatchStore, logger *zap.Logger, workers int) *Runner {
	if workers < 1 {
		workers = defaultWorkers
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{
		evaluator:    evaluator,
		candidates:   candidates,
		requisitions: requisitions,
		matches:      matches,
		logger:       logger,
		workers:      workers,
	}
}

// Run matches every eligible candidate against the requisition and persists
// a record for each pair at or above minPercentage. The caller must own the
// requisition. A candidate whose store operations fail is skipped and
// counted, never aborting the pass; already-created records remain valid if
// the run is cancelled partway.
func (r *Runner) Run(ctx context.Context, companyID, requisitionID uuid.UUID, minPercentage float64) (*Summary, error) {
	// NaN compares false against every bound and would disable the threshold
	// entirely, so non-finite values are rejected explicitly.
	if math.IsNaN(minPercentage) || math.IsInf(minPercentage, 0) ||
		minPercentage < 0 || minPercentage > 100 {
		return nil, &ErrInvalidThreshold{Value: minPercentage}
	}

	req, err := r.requisitions.GetRequisition(ctx, requisitionID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch requisition: %w", err)
	}
	if req == nil {
		return nil, &ErrRequisitionNotFound{ID: requisitionID}
	}
	if !req.OwnedBy(companyID) {
		return nil, &ErrNotOwner{RequisitionID: requisitionID, CompanyID: companyID}
	}

	pool, err := r.candidates.ListEligible(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load candidate pool: %w", err)
	}
	if len(pool) == 0 {
		return &Summary{}, nil
	}

	summary := Summary{Evaluated: len(pool)}
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)

	for i := range pool {
		cand := &pool[i]
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			exists, err := r.matches.MatchExists(gctx, req.ID, cand.ID)
			if err != nil {
				r.logger.Warn("skipping candidate: existence check failed",
					zap.String("candidate_id", cand.ID),
					zap.Error(err))
				mu.Lock()
				summary.Failed++
				mu.Unlock()
				return nil
			}
			if exists {
				return nil
			}

			ev := r.evaluator.Score(req, cand)
			if ev.Percentage < minPercentage {
				return nil
			}

			mu.Lock()
			summary.MetThreshold++
			mu.Unlock()

			rec := &types.MatchRecord{
				RequisitionID: req.ID,
				CandidateID:   cand.ID,
				Percentage:    ev.Percentage,
				Breakdown:     ev.Breakdown,
				Radar:         RadarValues(ev.Breakdown),
			}

			created, err := r.matches.InsertMatch(gctx, rec)
			if err != nil {
				r.logger.Warn("skipping candidate: insert failed",
					zap.String("candidate_id", cand.ID),
					zap.Error(err))
				mu.Lock()
				summary.Failed++
				mu.Unlock()
				return nil
			}
			// created == false means a concurrent run won the race for this
			// pair; the pair is already matched, not an error.
			if created {
				mu.Lock()
				summary.Created++
				mu.Unlock()
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	// The cached count is overwritten with this run's delta, not accumulated.
	if err := r.requisitions.SetMatchedCount(ctx, req.ID, summary.Created); err != nil {
		return nil, fmt.Errorf("failed to update matched count: %w", err)
	}

	r.logger.Info("bulk matching run completed",
		zap.String("requisition_id", req.ID.String()),
		zap.Float64("min_percentage", minPercentage),
		zap.Int("evaluated", summary.Evaluated),
		zap.Int("met_threshold", summary.MetThreshold),
		zap.Int("created", summary.Created),
		zap.Int("failed", summary.Failed))

	return &summary, nil
}
