package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/anuj140/hireengine/internal/audit"
	"github.com/anuj140/hireengine/internal/auth"
	"github.com/anuj140/hireengine/internal/model"
	"github.com/anuj140/hireengine/internal/repository"
)

// Ensure PolicyAuditLogService implements the audit.Logger interface
var _ audit.Logger = (*PolicyAuditLogService)(nil)

type policyAuditStore interface {
	Create(ctx context.Context, log *model.PolicyAuditLog) error
	Query(ctx context.Context, params repository.QueryParams) ([]model.PolicyAuditLog, int64, error)
}

// PolicyAuditLogService persists policy decisions. Denials are always
// written; allowed decisions only when recordAllowed is set.
type PolicyAuditLogService struct {
	repo          policyAuditStore
	recordAllowed bool
	logger        *slog.Logger
}

func NewPolicyAuditLogService(repo policyAuditStore, recordAllowed bool, logger *slog.Logger) *PolicyAuditLogService {
	return &PolicyAuditLogService{
		repo:          repo,
		recordAllowed: recordAllowed,
		logger:        logger,
	}
}

// LogDecision writes one audit entry. The subject defaults to the principal
// attached to ctx and request metadata is taken from ctx when present.
func (s *PolicyAuditLogService) LogDecision(ctx context.Context, d audit.Decision) error {
	if d.Allowed && !s.recordAllowed {
		return nil
	}

	log := &model.PolicyAuditLog{
		ActionType:  d.Action,
		Allowed:     d.Allowed,
		SubjectID:   d.SubjectID,
		SubjectRole: d.SubjectRole,
		RecruiterID: d.RecruiterID,
		Rule:        d.Rule,
		Reason:      d.Reason,
		Context:     model.JSONMap(d.Context),
		Timestamp:   time.Now().UTC(),
	}

	if p := auth.PrincipalFrom(ctx); p != nil && log.SubjectID == "" {
		log.SubjectID = p.ID.String()
		log.SubjectRole = string(p.Role)
	}

	if info, ok := audit.RequestInfoFrom(ctx); ok {
		log.RequestID = info.RequestID
		log.ClientIP = info.ClientIP
		log.UserAgent = info.UserAgent
	}

	if err := s.repo.Create(ctx, log); err != nil {
		s.logger.Warn("failed to write policy audit log",
			"action", d.Action,
			"rule", d.Rule,
			"error", err,
		)
		return err
	}
	return nil
}

// GetAuditLogs retrieves audit logs based on query parameters
func (s *PolicyAuditLogService) GetAuditLogs(ctx context.Context, params repository.QueryParams) ([]model.PolicyAuditLog, int64, error) {
	return s.repo.Query(ctx, params)
}
