package handler

import (
	"log/slog"
	"net/http"

	"github.com/anuj140/hireengine/internal/auth"
	"github.com/anuj140/hireengine/internal/service"
)

type SubscriptionHandler struct {
	subscriptions *service.SubscriptionService
	catalog       *service.PlanCatalog
	logger        *slog.Logger
}

func NewSubscriptionHandler(subscriptions *service.SubscriptionService, catalog *service.PlanCatalog, logger *slog.Logger) *SubscriptionHandler {
	return &SubscriptionHandler{subscriptions: subscriptions, catalog: catalog, logger: logger}
}

// Current returns the company's active subscription, creating the free
// fallback when there is none.
func (h *SubscriptionHandler) Current(w http.ResponseWriter, r *http.Request) {
	p := auth.PrincipalFrom(r.Context())
	sub, err := h.subscriptions.GetActive(r.Context(), p.Company)
	if err != nil {
		respondWithDomainError(w, r, h.logger, err)
		return
	}
	respondWithJSON(w, http.StatusOK, sub)
}

func (h *SubscriptionHandler) History(w http.ResponseWriter, r *http.Request) {
	p := auth.PrincipalFrom(r.Context())
	subs, err := h.subscriptions.History(r.Context(), p.Company)
	if err != nil {
		respondWithDomainError(w, r, h.logger, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]any{"subscriptions": subs, "total": len(subs)})
}

// Plans lists the purchasable catalog.
func (h *SubscriptionHandler) Plans(w http.ResponseWriter, r *http.Request) {
	plans, err := h.catalog.List(r.Context(), false)
	if err != nil {
		respondWithDomainError(w, r, h.logger, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]any{"plans": plans})
}
