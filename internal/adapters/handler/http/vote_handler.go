package http

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/sydqwycs/dajiexiaoxiang/internal/core/ports"
)

type VoteHandler struct {
	service ports.VoteService
}

func NewVoteHandler(service ports.VoteService) *VoteHandler {
	return &VoteHandler{
		service: service,
	}
}

type voteRequest struct {
	PollID   uuid.UUID `json:"poll_id"`
	OptionID uuid.UUID `json:"option_id"`
}

func (h *VoteHandler) SubmitVote(w http.ResponseWriter, r *http.Request) {
	var req voteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "ValidationError", Message: "invalid request body"})
		return
	}

	input := ports.SubmitVoteInput{
		PollID:    req.PollID,
		OptionID:  req.OptionID,
		IPAddress: clientIP(r),
	}

	if err := h.service.Submit(r.Context(), input); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, successResponse{Success: true})
}
