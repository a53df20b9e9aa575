package types

import (
	"github.com/go-playground/validator/v10"
)

// EvaluateRequest is the body of a single-pair evaluation request.
type EvaluateRequest struct {
	RequisitionID string `json:"requisition_id" validate:"required,uuid"`
	CandidateID   string `json:"candidate_id" validate:"required"`
}

// BulkRunParams are the caller-supplied parameters of one bulk matching run.
type BulkRunParams struct {
	MinPercentage float64 `json:"min_percentage" validate:"gte=0,lte=100"`
}

// ListMatchesParams are the filter and pagination parameters for listing the
// match records of a requisition.
type ListMatchesParams struct {
	MinPercentage float64 `json:"min_percentage" validate:"gte=0,lte=100"`
	Limit         int     `json:"limit" validate:"gte=0,lte=200"`
	Offset        int     `json:"offset" validate:"gte=0"`
}

// Validate validates the EvaluateRequest using the validator.
func (r *EvaluateRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the BulkRunParams using the validator.
func (r *BulkRunParams) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the ListMatchesParams using the validator.
func (r *ListMatchesParams) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
