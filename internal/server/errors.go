package server

import (
	"errors"
	"net/http"

	"github.com/mreyes/campus-match/internal/matching"
)

// HTTPStatus returns the appropriate HTTP status code for an error.
// Matching uses errors.As so wrapped domain errors keep their status.
func HTTPStatus(err error) int {
	var (
		reqNotFound   *matching.ErrRequisitionNotFound
		candNotFound  *matching.ErrCandidateNotFound
		matchNotFound *matching.ErrMatchNotFound
		notOwner      *matching.ErrNotOwner
		badThreshold  *matching.ErrInvalidThreshold
	)
	switch {
	case errors.As(err, &reqNotFound), errors.As(err, &candNotFound), errors.As(err, &matchNotFound):
		return http.StatusNotFound
	case errors.As(err, &notOwner):
		return http.StatusForbidden
	case errors.As(err, &badThreshold):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
