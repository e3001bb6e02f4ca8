package handler

import (
	"log/slog"
	"net/http"

	"github.com/anuj140/hireengine/internal/auth"
	"github.com/anuj140/hireengine/internal/service"
	"github.com/go-chi/chi/v5"
)

type JobHandler struct {
	jobs   *service.JobService
	logger *slog.Logger
}

func NewJobHandler(jobs *service.JobService, logger *slog.Logger) *JobHandler {
	return &JobHandler{jobs: jobs, logger: logger}
}

func (h *JobHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input service.CreateJobInput
	if !decodeJSON(w, r, &input) {
		return
	}

	job, err := h.jobs.Create(r.Context(), auth.PrincipalFrom(r.Context()), input)
	if err != nil {
		respondWithDomainError(w, r, h.logger, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, job)
}

func (h *JobHandler) Close(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}

	job, err := h.jobs.Close(r.Context(), auth.PrincipalFrom(r.Context()), id)
	if err != nil {
		respondWithDomainError(w, r, h.logger, err)
		return
	}
	respondWithJSON(w, http.StatusOK, job)
}

func (h *JobHandler) List(w http.ResponseWriter, r *http.Request) {
	jobs, err := h.jobs.List(r.Context(), auth.PrincipalFrom(r.Context()))
	if err != nil {
		respondWithDomainError(w, r, h.logger, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]any{"jobs": jobs, "total": len(jobs)})
}
