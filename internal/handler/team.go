package handler

import (
	"log/slog"
	"net/http"

	"github.com/anuj140/hireengine/internal/auth"
	"github.com/anuj140/hireengine/internal/service"
	"github.com/go-chi/chi/v5"
)

type TeamHandler struct {
	team   *service.TeamService
	logger *slog.Logger
}

func NewTeamHandler(team *service.TeamService, logger *slog.Logger) *TeamHandler {
	return &TeamHandler{team: team, logger: logger}
}

func (h *TeamHandler) Invite(w http.ResponseWriter, r *http.Request) {
	var input service.InviteInput
	if !decodeJSON(w, r, &input) {
		return
	}

	member, err := h.team.Invite(r.Context(), auth.PrincipalFrom(r.Context()), input)
	if err != nil {
		respondWithDomainError(w, r, h.logger, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, member)
}

// Accept is public: the invited member signs in with the issued credentials.
func (h *TeamHandler) Accept(w http.ResponseWriter, r *http.Request) {
	var input service.AcceptInput
	if !decodeJSON(w, r, &input) {
		return
	}

	member, err := h.team.Accept(r.Context(), input)
	if err != nil {
		respondWithDomainError(w, r, h.logger, err)
		return
	}
	respondWithJSON(w, http.StatusOK, member)
}

func (h *TeamHandler) Remove(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}

	if err := h.team.Remove(r.Context(), auth.PrincipalFrom(r.Context()), id); err != nil {
		respondWithDomainError(w, r, h.logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *TeamHandler) List(w http.ResponseWriter, r *http.Request) {
	members, err := h.team.List(r.Context(), auth.PrincipalFrom(r.Context()))
	if err != nil {
		respondWithDomainError(w, r, h.logger, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]any{"members": members, "total": len(members)})
}
