package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sydqwycs/dajiexiaoxiang/internal/core/ports"
)

type ResultsHandler struct {
	service ports.ResultsService
}

func NewResultsHandler(service ports.ResultsService) *ResultsHandler {
	return &ResultsHandler{
		service: service,
	}
}

func (h *ResultsHandler) GetActivePoll(w http.ResponseWriter, r *http.Request) {
	poll, err := h.service.GetActivePoll(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	// poll is nil when nothing qualifies; the client receives JSON null.
	writeJSON(w, http.StatusOK, poll)
}

func (h *ResultsHandler) GetPollResults(w http.ResponseWriter, r *http.Request) {
	pollID, err := uuid.Parse(chi.URLParam(r, "pollID"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "ValidationError", Message: "invalid poll id"})
		return
	}

	results, err := h.service.GetPollResults(r.Context(), pollID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, results)
}

func (h *ResultsHandler) GetHistoricalPolls(w http.ResponseWriter, r *http.Request) {
	polls, err := h.service.GetHistoricalPolls(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, polls)
}
