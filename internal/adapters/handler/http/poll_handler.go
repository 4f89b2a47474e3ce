package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sydqwycs/dajiexiaoxiang/internal/core/ports"
)

// PollHandler serves the admin poll mutations. The router mounts it behind
// RequireAdmin, so every request here carries an already-verified caller.
type PollHandler struct {
	service ports.PollService
}

func NewPollHandler(service ports.PollService) *PollHandler {
	return &PollHandler{
		service: service,
	}
}

type createPollRequest struct {
	Title    string   `json:"title"`
	Deadline string   `json:"deadline"`
	Options  []string `json:"options"`
}

type updateOptionRequest struct {
	Text  string `json:"text"`
	Order int    `json:"order"`
}

type updatePollRequest struct {
	Title    *string               `json:"title"`
	Deadline *string               `json:"deadline"`
	Options  []updateOptionRequest `json:"options"`
}

func (h *PollHandler) CreatePoll(w http.ResponseWriter, r *http.Request) {
	var req createPollRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "ValidationError", Message: "invalid request body"})
		return
	}

	deadline, err := time.Parse(time.RFC3339, req.Deadline)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "ValidationError", Message: "deadline must be an ISO 8601 timestamp"})
		return
	}

	input := ports.CreatePollInput{
		Title:    req.Title,
		Deadline: deadline,
		Options:  req.Options,
	}

	poll, err := h.service.Create(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, poll)
}

func (h *PollHandler) UpdatePoll(w http.ResponseWriter, r *http.Request) {
	pollID, err := uuid.Parse(chi.URLParam(r, "pollID"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "ValidationError", Message: "invalid poll id"})
		return
	}

	var req updatePollRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "ValidationError", Message: "invalid request body"})
		return
	}

	input := ports.UpdatePollInput{
		Title: req.Title,
	}
	if req.Deadline != nil {
		deadline, err := time.Parse(time.RFC3339, *req.Deadline)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "ValidationError", Message: "deadline must be an ISO 8601 timestamp"})
			return
		}
		input.Deadline = &deadline
	}
	if req.Options != nil {
		input.Options = make([]ports.OptionInput, 0, len(req.Options))
		for _, opt := range req.Options {
			input.Options = append(input.Options, ports.OptionInput{Text: opt.Text, Order: opt.Order})
		}
	}

	poll, err := h.service.Update(r.Context(), pollID, input)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, poll)
}

func (h *PollHandler) DeletePoll(w http.ResponseWriter, r *http.Request) {
	pollID, err := uuid.Parse(chi.URLParam(r, "pollID"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "ValidationError", Message: "invalid poll id"})
		return
	}

	if err := h.service.Delete(r.Context(), pollID); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, successResponse{Success: true})
}

func (h *PollHandler) GetAllPolls(w http.ResponseWriter, r *http.Request) {
	polls, err := h.service.GetAllPolls(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, polls)
}
