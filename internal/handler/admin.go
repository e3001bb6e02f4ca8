package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/anuj140/hireengine/internal/auth"
	"github.com/anuj140/hireengine/internal/repository"
	"github.com/anuj140/hireengine/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// AdminHandler serves the platform admin API: plan assignment, on-demand
// reconciliation and the policy audit trail.
type AdminHandler struct {
	catalog       *service.PlanCatalog
	planChange    *service.PlanChangeService
	reconciler    *service.PlanReconciler
	subscriptions *service.SubscriptionService
	auditLog      *service.PolicyAuditLogService
	logger        *slog.Logger
}

func NewAdminHandler(
	catalog *service.PlanCatalog,
	planChange *service.PlanChangeService,
	reconciler *service.PlanReconciler,
	subscriptions *service.SubscriptionService,
	auditLog *service.PolicyAuditLogService,
	logger *slog.Logger,
) *AdminHandler {
	return &AdminHandler{
		catalog:       catalog,
		planChange:    planChange,
		reconciler:    reconciler,
		subscriptions: subscriptions,
		auditLog:      auditLog,
		logger:        logger,
	}
}

// Plans lists the whole catalog, inactive plans included.
func (h *AdminHandler) Plans(w http.ResponseWriter, r *http.Request) {
	plans, err := h.catalog.List(r.Context(), true)
	if err != nil {
		respondWithDomainError(w, r, h.logger, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]any{"plans": plans})
}

func (h *AdminHandler) AssignPlan(w http.ResponseWriter, r *http.Request) {
	recruiterID, ok := parseID(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}

	var input service.AssignPlanInput
	if !decodeJSON(w, r, &input) {
		return
	}
	input.RecruiterID = recruiterID
	input.AssignedBy = auth.PrincipalFrom(r.Context()).ID.String()

	out, err := h.planChange.AssignPlan(r.Context(), input)
	if err != nil {
		respondWithDomainError(w, r, h.logger, err)
		return
	}
	respondWithJSON(w, http.StatusOK, out)
}

func (h *AdminHandler) Reconcile(w http.ResponseWriter, r *http.Request) {
	recruiterID, ok := parseID(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}

	res, err := h.reconciler.Reconcile(r.Context(), recruiterID)
	if err != nil {
		respondWithDomainError(w, r, h.logger, err)
		return
	}
	respondWithJSON(w, http.StatusOK, res)
}

func (h *AdminHandler) ExpireSubscriptions(w http.ResponseWriter, r *http.Request) {
	n, err := h.subscriptions.ExpireDue(r.Context(), time.Now())
	if err != nil {
		respondWithDomainError(w, r, h.logger, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]int64{"expired": n})
}

// AuditLogs returns policy decisions matching the query filters.
func (h *AdminHandler) AuditLogs(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	params := repository.QueryParams{
		ActionType: q.Get("action_type"),
		SubjectID:  q.Get("subject_id"),
	}

	if raw := q.Get("recruiter_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid recruiter_id")
			return
		}
		params.RecruiterID = &id
	}

	if raw := q.Get("allowed"); raw != "" {
		allowed, err := strconv.ParseBool(raw)
		if err == nil {
			params.Allowed = &allowed
		}
	}

	if raw := q.Get("start_time"); raw != "" {
		if t, err := time.Parse(time.RFC3339, raw); err == nil {
			params.StartTime = t
		}
	}

	if raw := q.Get("end_time"); raw != "" {
		if t, err := time.Parse(time.RFC3339, raw); err == nil {
			params.EndTime = t
		}
	}

	if raw := q.Get("limit"); raw != "" {
		if limit, err := strconv.Atoi(raw); err == nil && limit > 0 {
			params.Limit = limit
		}
	}

	if raw := q.Get("offset"); raw != "" {
		if offset, err := strconv.Atoi(raw); err == nil && offset >= 0 {
			params.Offset = offset
		}
	}

	logs, total, err := h.auditLog.GetAuditLogs(r.Context(), params)
	if err != nil {
		respondWithDomainError(w, r, h.logger, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]any{"logs": logs, "total": total})
}
