// Package app wires repositories, services and handlers over one database.
package app

import (
	"log/slog"
	"net/http"

	"github.com/anuj140/hireengine/internal/auth"
	"github.com/anuj140/hireengine/internal/config"
	"github.com/anuj140/hireengine/internal/handler"
	"github.com/anuj140/hireengine/internal/monitoring"
	"github.com/anuj140/hireengine/internal/repository"
	"github.com/anuj140/hireengine/internal/service"
	"gorm.io/gorm"
)

type App struct {
	Config  *config.Config
	Logger  *slog.Logger
	Monitor *monitoring.Monitor

	Tokens   *auth.TokenManager
	Resolver *service.AccountResolver

	Accounts      *service.AccountService
	Subscriptions *service.SubscriptionService
	Quota         *service.QuotaEnforcer
	Reconciler    *service.PlanReconciler
	Catalog       *service.PlanCatalog
	PlanChange    *service.PlanChangeService
	Jobs          *service.JobService
	Team          *service.TeamService
	AuditLog      *service.PolicyAuditLogService
	Maintenance   *service.MaintenanceScheduler
}

func New(db *gorm.DB, cfg *config.Config, logger *slog.Logger, monitor *monitoring.Monitor) *App {
	users := repository.NewUserRepository(db)
	recruiters := repository.NewRecruiterRepository(db)
	members := repository.NewTeamMemberRepository(db)
	admins := repository.NewAdminRepository(db)
	plans := repository.NewPlanRepository(db)
	subs := repository.NewSubscriptionRepository(db)
	jobs := repository.NewJobRepository(db)
	auditRepo := repository.NewPolicyAuditLogRepository(db)

	hasher := auth.NewPasswordHasher(auth.WithArgon2Cost(
		cfg.Hashing.Argon2Time,
		cfg.Hashing.Argon2MemoryKiB,
		cfg.Hashing.Argon2Threads,
	))
	tokens := auth.NewTokenManager(cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.ExpiryPeriod)

	a := &App{Config: cfg, Logger: logger, Monitor: monitor, Tokens: tokens}

	a.AuditLog = service.NewPolicyAuditLogService(auditRepo, cfg.Policy.AuditAllowed, logger)
	a.Resolver = service.NewAccountResolver(users, recruiters, members, admins, logger)
	a.Accounts = service.NewAccountService(a.Resolver, users, recruiters, admins, hasher, tokens, logger)
	a.Subscriptions = service.NewSubscriptionService(subs, plans, recruiters, monitor, logger,
		service.WithFreePlanValidity(cfg.Policy.FreePlanValidity))
	a.Quota = service.NewQuotaEnforcer(a.Subscriptions, subs, a.AuditLog, monitor, logger)
	a.Reconciler = service.NewPlanReconciler(a.Subscriptions, subs, jobs, members, recruiters, monitor, logger)
	a.Catalog = service.NewPlanCatalog(plans, cfg.Policy.PlanCacheTTL, logger)
	a.PlanChange = service.NewPlanChangeService(a.Catalog, subs, recruiters, a.Subscriptions, a.Reconciler, a.AuditLog, logger)
	a.Jobs = service.NewJobService(jobs, a.Quota, logger)
	a.Team = service.NewTeamService(members, a.Resolver, a.Quota, hasher, logger)
	a.Maintenance = service.NewMaintenanceScheduler(a.Subscriptions, a.Reconciler, cfg.Policy.MaintenanceInterval, logger)
	return a
}

// Router builds the HTTP API.
func (a *App) Router() http.Handler {
	return handler.NewRouter(handler.RouterConfig{
		Logger:         a.Logger,
		Monitor:        a.Monitor,
		Tokens:         a.Tokens,
		Resolver:       a.Resolver,
		AuditLogger:    a.AuditLog,
		AllowedOrigins: a.Config.Server.AllowedOrigins,
		RequestTimeout: a.Config.Server.RequestTimeout,

		Auth:          handler.NewAuthHandler(a.Accounts, a.Logger),
		Jobs:          handler.NewJobHandler(a.Jobs, a.Logger),
		Team:          handler.NewTeamHandler(a.Team, a.Logger),
		Subscriptions: handler.NewSubscriptionHandler(a.Subscriptions, a.Catalog, a.Logger),
		Admin:         handler.NewAdminHandler(a.Catalog, a.PlanChange, a.Reconciler, a.Subscriptions, a.AuditLog, a.Logger),
	})
}

// Close releases background resources owned by the services.
func (a *App) Close() {
	a.Catalog.Close()
}
