package handlers

import (
	"errors"
	"net/http"

	"courtside/services/court"
	"courtside/services/scheduling"
)

// statusForError maps service error types to HTTP status codes.
func statusForError(err error) int {
	var confErr *scheduling.ConfigurationError
	var valErr *scheduling.ValidationError
	var notFoundErr *scheduling.NotFoundError
	var conflictErr *court.ConflictError

	switch {
	case errors.As(err, &confErr), errors.As(err, &valErr):
		return http.StatusBadRequest
	case errors.As(err, &notFoundErr):
		return http.StatusNotFound
	case errors.As(err, &conflictErr):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
