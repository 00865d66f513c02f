package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"sitenav/internal/domain"
	"sitenav/internal/httputil"
)

// handleError converts domain errors to HTTP responses
func handleError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error) {
	var maxBytesErr *http.MaxBytesError

	switch {
	case errors.As(err, &maxBytesErr):
		httputil.RespondError(w, r, http.StatusRequestEntityTooLarge, "request body too large")
	case errors.Is(err, domain.ErrValidation):
		httputil.RespondError(w, r, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrInvalidHierarchy):
		httputil.RespondError(w, r, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		httputil.RespondError(w, r, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		httputil.RespondError(w, r, http.StatusUnauthorized, err.Error())
	case errors.Is(err, domain.ErrForbidden):
		httputil.RespondError(w, r, http.StatusForbidden, err.Error())
	default:
		logger.Error("request failed",
			"error", err,
			"path", r.URL.Path,
			"request_id", httputil.GetRequestID(r.Context()),
		)
		httputil.RespondError(w, r, http.StatusInternalServerError, "internal server error")
	}
}

// bodyError keeps oversized bodies distinct and turns other decode
// failures into validation errors
func bodyError(err error) error {
	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		return err
	}
	return &domain.ValidationError{Message: err.Error()}
}
