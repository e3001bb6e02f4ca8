package handler

import (
	"log/slog"
	"net/http"

	"github.com/anuj140/hireengine/internal/auth"
	"github.com/anuj140/hireengine/internal/service"
	"github.com/google/uuid"
)

type AuthHandler struct {
	accounts *service.AccountService
	logger   *slog.Logger
}

func NewAuthHandler(accounts *service.AccountService, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{accounts: accounts, logger: logger}
}

type LoginResponse struct {
	BaseResponse
	*service.LoginOutput
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var input service.LoginInput
	if !decodeJSON(w, r, &input) {
		return
	}

	out, err := h.accounts.Login(r.Context(), input)
	if err != nil {
		respondWithDomainError(w, r, h.logger, err)
		return
	}
	respondWithJSON(w, http.StatusOK, LoginResponse{BaseResponse: BaseResponse{Ok: true}, LoginOutput: out})
}

func (h *AuthHandler) RegisterRecruiter(w http.ResponseWriter, r *http.Request) {
	var input service.RegisterRecruiterInput
	if !decodeJSON(w, r, &input) {
		return
	}

	recruiter, err := h.accounts.RegisterRecruiter(r.Context(), input)
	if err != nil {
		respondWithDomainError(w, r, h.logger, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, recruiter)
}

func (h *AuthHandler) RegisterJobSeeker(w http.ResponseWriter, r *http.Request) {
	var input service.RegisterJobSeekerInput
	if !decodeJSON(w, r, &input) {
		return
	}

	user, err := h.accounts.RegisterJobSeeker(r.Context(), input)
	if err != nil {
		respondWithDomainError(w, r, h.logger, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, user)
}

type MeResponse struct {
	ID          string          `json:"id"`
	Role        auth.Role       `json:"role"`
	Company     string          `json:"company,omitempty"`
	Permissions map[string]bool `json:"permissions,omitempty"`
	Status      string          `json:"status"`
}

// Me echoes the resolved principal.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	p := auth.PrincipalFrom(r.Context())
	if p == nil {
		respondWithError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	resp := MeResponse{
		ID:          p.ID.String(),
		Role:        p.Role,
		Permissions: p.Permissions,
		Status:      string(p.Status),
	}
	if p.Company != uuid.Nil {
		resp.Company = p.Company.String()
	}
	respondWithJSON(w, http.StatusOK, resp)
}
