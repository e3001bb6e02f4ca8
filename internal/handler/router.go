package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/anuj140/hireengine/internal/audit"
	"github.com/anuj140/hireengine/internal/auth"
	"github.com/anuj140/hireengine/internal/middleware"
	"github.com/anuj140/hireengine/internal/monitoring"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// RouterConfig carries everything the HTTP API is built from.
type RouterConfig struct {
	Logger         *slog.Logger
	Monitor        *monitoring.Monitor
	Tokens         middleware.TokenValidator
	Resolver       middleware.PrincipalResolver
	AuditLogger    audit.Logger
	AllowedOrigins []string
	RequestTimeout time.Duration

	Auth          *AuthHandler
	Jobs          *JobHandler
	Team          *TeamHandler
	Subscriptions *SubscriptionHandler
	Admin         *AdminHandler
}

func NewRouter(cfg RouterConfig) http.Handler {
	if cfg.RequestTimeout == 0 {
		cfg.RequestTimeout = 30 * time.Second
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger(cfg.Logger, cfg.Monitor))
	r.Use(middleware.Recover(cfg.Logger))
	r.Use(middleware.AuditContext)
	r.Use(chimw.Timeout(cfg.RequestTimeout))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		respondWithJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
	})
	r.Method(http.MethodGet, "/metrics", cfg.Monitor.Handler())

	requireRoles := func(roles ...string) func(http.Handler) http.Handler {
		return middleware.RequireRoles(cfg.AuditLogger, cfg.Monitor, cfg.Logger, roles...)
	}

	r.Route("/api", func(r chi.Router) {
		r.Use(chimw.AllowContentType("application/json"))

		// Public routes
		r.Post("/auth/login", cfg.Auth.Login)
		r.Post("/auth/register", cfg.Auth.RegisterJobSeeker)
		r.Post("/auth/recruiters/register", cfg.Auth.RegisterRecruiter)
		r.Post("/team/accept", cfg.Team.Accept)
		r.Get("/plans", cfg.Subscriptions.Plans)

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(middleware.Authenticate(cfg.Tokens, cfg.Resolver, cfg.Logger))

			r.Get("/me", cfg.Auth.Me)

			r.Group(func(r chi.Router) {
				r.Use(requireRoles(string(auth.RoleRecruiter)))

				r.Get("/subscription", cfg.Subscriptions.Current)
				r.Get("/subscription/history", cfg.Subscriptions.History)

				r.Route("/jobs", func(r chi.Router) {
					r.Get("/", cfg.Jobs.List)
					r.Post("/", cfg.Jobs.Create)
					r.Post("/{id}/close", cfg.Jobs.Close)
				})

				r.Route("/team", func(r chi.Router) {
					r.Get("/", cfg.Team.List)
					r.Post("/", cfg.Team.Invite)
					r.Delete("/{id}", cfg.Team.Remove)
				})
			})

			r.Route("/admin", func(r chi.Router) {
				r.Use(requireRoles(string(auth.RoleAdmin)))

				r.Get("/plans", cfg.Admin.Plans)
				r.Put("/recruiters/{id}/plan", cfg.Admin.AssignPlan)
				r.Post("/recruiters/{id}/reconcile", cfg.Admin.Reconcile)
				r.Post("/subscriptions/expire", cfg.Admin.ExpireSubscriptions)
				r.Get("/audit-logs", cfg.Admin.AuditLogs)
			})
		})
	})

	return r
}
