package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sydqwycs/dajiexiaoxiang/internal/core/domain"
)

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

type successResponse struct {
	Success bool `json:"success"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
	}
}

// writeError maps domain error kinds to transport statuses. Internal detail
// never reaches the caller; anything unmapped is a generic server error.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "ValidationError", Message: err.Error()})
	case errors.Is(err, domain.ErrPollNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "NotFound", Message: err.Error()})
	case errors.Is(err, domain.ErrAlreadyVoted):
		writeJSON(w, http.StatusForbidden, errorResponse{Error: "AlreadyVoted", Message: err.Error()})
	case errors.Is(err, domain.ErrPollExpired):
		writeJSON(w, http.StatusForbidden, errorResponse{Error: "PollExpired", Message: err.Error()})
	case errors.Is(err, domain.ErrPollNotActive):
		writeJSON(w, http.StatusForbidden, errorResponse{Error: "PollNotActive", Message: err.Error()})
	case errors.Is(err, domain.ErrUnauthorized):
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "Unauthorized", Message: err.Error()})
	default:
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "ServerError", Message: "internal server error"})
	}
}
