package matching

import (
	"fmt"

	"github.com/google/uuid"
)

// ErrRequisitionNotFound indicates the requisition identifier did not resolve.
type ErrRequisitionNotFound struct {
	ID uuid.UUID
}

func (e *ErrRequisitionNotFound) Error() string {
	return fmt.Sprintf("requisition not found: %s", e.ID)
}

// ErrCandidateNotFound indicates the candidate identifier did not resolve.
type ErrCandidateNotFound struct {
	ID string
}

func (e *ErrCandidateNotFound) Error() string {
	return fmt.Sprintf("candidate not found: %s", e.ID)
}

// ErrMatchNotFound indicates a match record identifier did not resolve.
type ErrMatchNotFound struct {
	ID uuid.UUID
}

func (e *ErrMatchNotFound) Error() string {
	return fmt.Sprintf("match not found: %s", e.ID)
}

// ErrNotOwner indicates the caller does not own the requisition it is
// operating on.
type ErrNotOwner struct {
	RequisitionID uuid.UUID
	CompanyID     uuid.UUID
}

func (e *ErrNotOwner) Error() string {
	return fmt.Sprintf("requisition %s is not owned by company %s", e.RequisitionID, e.CompanyID)
}

// ErrInvalidThreshold indicates a minimum-percentage threshold outside [0,100].
type ErrInvalidThreshold struct {
	Value float64
}

func (e *ErrInvalidThreshold) Error() string {
	return fmt.Sprintf("minimum percentage must be in [0,100], got %v", e.Value)
}
