package http

import (
	"encoding/json"
	"net/http"

	"github.com/sydqwycs/dajiexiaoxiang/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AdminAuthService
}

func NewAuthHandler(authService ports.AdminAuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

type loginRequest struct {
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "ValidationError", Message: "invalid request body"})
		return
	}

	token, err := h.authService.Login(req.Password)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, loginResponse{Token: token})
}
