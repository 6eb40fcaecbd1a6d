package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MysticHqra/Rydio/internal/domain"
	"github.com/MysticHqra/Rydio/internal/logger"
	"github.com/MysticHqra/Rydio/internal/service"
)

type errorResponse struct {
	Error string `json:"error"`
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		if err := json.NewEncoder(w).Encode(payload); err != nil {
			logger.Error("Failed to encode response", "error", err)
		}
	}
}

// respondError maps the business error taxonomy onto HTTP status codes.
// Anything unrecognized is an infrastructure failure and stays opaque.
func respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		respondJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrAccessDenied):
		respondJSON(w, http.StatusForbidden, errorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrSchedulingConflict),
		errors.Is(err, domain.ErrVehicleUnavailable),
		errors.Is(err, domain.ErrInvalidStateTransition),
		errors.Is(err, domain.ErrDuplicateReference):
		respondJSON(w, http.StatusConflict, errorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrInvalidDateRange),
		errors.Is(err, domain.ErrInvalidCharge):
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
	case errors.Is(err, service.ErrInvalidCredentials):
		respondJSON(w, http.StatusUnauthorized, errorResponse{Error: err.Error()})
	default:
		logger.Error("Internal error", "error", err)
		respondJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
	}
}

type pagedResponse struct {
	Items      interface{} `json:"items"`
	TotalCount int64       `json:"total_count"`
	Page       int32       `json:"page"`
	PageSize   int32       `json:"page_size"`
}
