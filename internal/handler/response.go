package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"go-job-board/internal/model"
	"go-job-board/pkg/apierror"
)

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func writeText(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(message))
}

// writeError maps domain errors to their contract status/message. Anything
// unclassified is logged and surfaced as a generic 500 with no internals.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	body := model.APIError{
		Code:    "INTERNAL_ERROR",
		Message: "Unexpected server error",
	}

	var apiErr *apierror.APIError
	switch {
	case errors.As(err, &apiErr):
		status = apiErr.HTTPStatus
		body.Code = apiErr.Code
		body.Message = apiErr.Message
		body.Details = apiErr.Details
	case errors.Is(err, model.ErrDuplicateUser):
		status = http.StatusBadRequest
		body.Code = "DUPLICATE"
		body.Message = "Username or email already exists."
	case errors.Is(err, model.ErrInvalidCredentials):
		status = http.StatusBadRequest
		body.Code = "INVALID_CREDENTIALS"
		body.Message = "Invalid username or password"
	case errors.Is(err, model.ErrJobNotFound):
		status = http.StatusNotFound
		body.Code = "NOT_FOUND"
		body.Message = "Job not found"
	case errors.Is(err, model.ErrNotOwner):
		status = http.StatusUnauthorized
		body.Code = "UNAUTHORIZED"
		body.Message = "Unauthorized"
	case errors.Is(err, model.ErrInvalidToken):
		status = http.StatusBadRequest
		body.Code = "INVALID_TOKEN"
		body.Message = "Invalid Token"
	case errors.Is(err, model.ErrMissingToken):
		status = http.StatusUnauthorized
		body.Code = "MISSING_TOKEN"
		body.Message = "Access Denied"
	case errors.Is(err, model.ErrInvalidAssertion):
		// The sign-in contract collapses a failed assertion into the
		// internal bucket; keep the distinction in the log only.
		slog.Warn("google assertion rejected", "error", err.Error())
	default:
		// Log unclassified errors so they are visible in container logs.
		slog.Error("unhandled error in writeError", "error", err.Error())
	}

	writeJSON(w, status, model.ErrorResponse{Error: body})
}
