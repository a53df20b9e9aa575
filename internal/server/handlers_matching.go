package server

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mreyes/campus-match/internal/db"
	"github.com/mreyes/campus-match/internal/matching"
	"github.com/mreyes/campus-match/internal/server/middleware"
	"github.com/mreyes/campus-match/internal/types"
)

// candidateView is the public subset of a candidate profile returned to
// requisition owners alongside a match.
type candidateView struct {
	CandidateID       string           `json:"candidate_id"`
	Major             string           `json:"major"`
	AcademicTerm      int              `json:"academic_term"`
	TechnicalSkills   []string         `json:"technical_skills"`
	SoftSkills        []string         `json:"soft_skills"`
	Languages         []types.Language `json:"languages"`
	HasExperience     bool             `json:"has_experience"`
	PreferredModality string           `json:"preferred_modality"`
}

// matchView is one entry of the match listing.
type matchView struct {
	ID         uuid.UUID          `json:"id"`
	Percentage float64            `json:"percentage"`
	Breakdown  types.Breakdown    `json:"breakdown"`
	Radar      map[string]float64 `json:"radar"`
	Viewed     bool               `json:"viewed"`
	CreatedAt  time.Time          `json:"created_at"`
	Candidate  *candidateView     `json:"candidate,omitempty"`
}

// handleEvaluate scores a single (requisition, candidate) pair without
// persisting anything.
func (s *Server) handleEvaluate(w http.ResponseWriter, r *http.Request) {
	var req types.EvaluateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	requisitionID, err := uuid.Parse(req.RequisitionID)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid requisition ID")
		return
	}

	ev, err := s.evaluator.Evaluate(r.Context(), requisitionID, req.CandidateID)
	if err != nil {
		s.domainError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, ev)
}

// handleRunMatching runs bulk matching for a requisition across the whole
// eligible candidate pool.
func (s *Server) handleRunMatching(w http.ResponseWriter, r *http.Request) {
	companyID, err := middleware.GetCompanyID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	requisitionID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid requisition ID")
		return
	}

	minPercentage, err := parseQueryFloat(r, "min_percentage", matching.DefaultMinPercentage)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid min_percentage")
		return
	}
	params := types.BulkRunParams{MinPercentage: minPercentage}
	if err := params.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid min_percentage")
		return
	}

	summary, err := s.runner.Run(r.Context(), companyID, requisitionID, params.MinPercentage)
	if err != nil {
		s.domainError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"requisition_id": requisitionID,
		"min_percentage": params.MinPercentage,
		"summary":        summary,
	})
}

// handleListMatches lists a requisition's match records ordered by percentage
// descending, attaching each candidate's public attributes. Records returned
// for the first time are marked viewed.
func (s *Server) handleListMatches(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	companyID, err := middleware.GetCompanyID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	requisitionID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid requisition ID")
		return
	}

	req, err := s.ownedRequisition(ctx, requisitionID, companyID)
	if err != nil {
		s.domainError(w, err)
		return
	}

	minPercentage, err := parseQueryFloat(r, "min_percentage", 0)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid min_percentage")
		return
	}
	params := types.ListMatchesParams{
		MinPercentage: minPercentage,
		Limit:         parseQueryInt(r, "limit", 50, 200),
		Offset:        parseQueryInt(r, "offset", 0, 0),
	}
	if err := params.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid min_percentage")
		return
	}

	opts := db.ListMatchesOptions{
		MinPercentage: params.MinPercentage,
		Limit:         params.Limit,
		Offset:        params.Offset,
	}

	records, err := s.store.ListMatches(ctx, requisitionID, opts)
	if err != nil {
		s.domainError(w, err)
		return
	}
	total, err := s.store.CountMatches(ctx, requisitionID, params.MinPercentage)
	if err != nil {
		s.domainError(w, err)
		return
	}

	views := make([]matchView, 0, len(records))
	for i := range records {
		rec := &records[i]

		if !rec.Viewed {
			if err := s.store.MarkViewed(ctx, rec.ID); err != nil {
				s.logger.Warn("failed to mark match viewed",
					zap.String("match_id", rec.ID.String()),
					zap.Error(err))
			} else {
				rec.Viewed = true
			}
		}

		view := matchView{
			ID:         rec.ID,
			Percentage: rec.Percentage,
			Breakdown:  rec.Breakdown,
			Radar:      rec.Radar,
			Viewed:     rec.Viewed,
			CreatedAt:  rec.CreatedAt,
		}
		cand, err := s.store.GetCandidate(ctx, rec.CandidateID)
		if err != nil {
			s.domainError(w, err)
			return
		}
		if cand != nil {
			view.Candidate = &candidateView{
				CandidateID:       cand.ID,
				Major:             cand.Major,
				AcademicTerm:      cand.AcademicTerm,
				TechnicalSkills:   cand.TechnicalSkills,
				SoftSkills:        cand.SoftSkills,
				Languages:         cand.Languages,
				HasExperience:     cand.HasExperience(),
				PreferredModality: cand.PreferredModality,
			}
		}
		views = append(views, view)
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"requisition_id": requisitionID,
		"title":          req.Title,
		"total":          total,
		"matches":        views,
	})
}

// handleMatchRadar returns the radar-chart projection of one match record.
func (s *Server) handleMatchRadar(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	companyID, err := middleware.GetCompanyID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	requisitionID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid requisition ID")
		return
	}
	matchID, err := uuid.Parse(r.PathValue("match_id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid match ID")
		return
	}

	if _, err := s.ownedRequisition(ctx, requisitionID, companyID); err != nil {
		s.domainError(w, err)
		return
	}

	rec, err := s.store.GetMatch(ctx, matchID)
	if err != nil {
		s.domainError(w, err)
		return
	}
	// A match under a different requisition is not visible through this route.
	if rec == nil || rec.RequisitionID != requisitionID {
		s.domainError(w, &matching.ErrMatchNotFound{ID: matchID})
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"match_id":     rec.ID,
		"candidate_id": rec.CandidateID,
		"percentage":   rec.Percentage,
		"radar":        matching.ProjectRadar(rec.Breakdown),
	})
}

// handleDeleteMatches removes every match record of a requisition and resets
// its cached matched count.
func (s *Server) handleDeleteMatches(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	companyID, err := middleware.GetCompanyID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	requisitionID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid requisition ID")
		return
	}

	if _, err := s.ownedRequisition(ctx, requisitionID, companyID); err != nil {
		s.domainError(w, err)
		return
	}

	deleted, err := s.store.DeleteMatches(ctx, requisitionID)
	if err != nil {
		s.domainError(w, err)
		return
	}
	if err := s.store.SetMatchedCount(ctx, requisitionID, 0); err != nil {
		s.domainError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{"deleted": deleted})
}

// ownedRequisition fetches a requisition and verifies the caller owns it.
func (s *Server) ownedRequisition(ctx context.Context, requisitionID, companyID uuid.UUID) (*types.Requisition, error) {
	req, err := s.store.GetRequisition(ctx, requisitionID)
	if err != nil {
		return nil, err
	}
	if req == nil {
		return nil, &matching.ErrRequisitionNotFound{ID: requisitionID}
	}
	if !req.OwnedBy(companyID) {
		return nil, &matching.ErrNotOwner{RequisitionID: requisitionID, CompanyID: companyID}
	}
	return req, nil
}
