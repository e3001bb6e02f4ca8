package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"unicode/utf8"

	"github.com/anuj140/hireengine/internal/audit"
	"github.com/anuj140/hireengine/internal/domain"
	"github.com/anuj140/hireengine/internal/model"
	"github.com/anuj140/hireengine/internal/monitoring"
	"github.com/anuj140/hireengine/internal/repository"
	"github.com/google/uuid"
)

// ActiveSubscriptionResolver is satisfied by SubscriptionService.
type ActiveSubscriptionResolver interface {
	GetActive(ctx context.Context, recruiterID uuid.UUID) (*model.Subscription, error)
}

// JobPayload is the part of a job that plan limits apply to. A nil Locations
// slice means locations were not supplied as a list and are not counted.
type JobPayload struct {
	Title         string
	Description   string
	Locations     []string
	MaxApplicants int
}

const (
	checkJobCreation = "job_creation"
	checkTeamAddOn   = "team_add_on"
)

// QuotaEnforcer checks plan limits before a mutation and commits usage
// counters after the caller has persisted it.
//
// Checks and commits are separate calls with no lock between them, so two
// concurrent creations for one recruiter can both pass the active-job check
// and exceed the cap. The next reconciliation pass pauses the excess jobs.
type QuotaEnforcer struct {
	resolver ActiveSubscriptionResolver
	subs     repository.SubscriptionRepositoryIface
	audit    audit.Logger
	monitor  monitoring.MonitorInterface
	logger   *slog.Logger
}

func NewQuotaEnforcer(
	resolver ActiveSubscriptionResolver,
	subs repository.SubscriptionRepositoryIface,
	auditLogger audit.Logger,
	monitor monitoring.MonitorInterface,
	logger *slog.Logger,
) *QuotaEnforcer {
	return &QuotaEnforcer{
		resolver: resolver,
		subs:     subs,
		audit:    auditLogger,
		monitor:  monitor,
		logger:   logger,
	}
}

// CheckJobCreation verifies a new job fits the recruiter's plan. The payload's
// MaxApplicants is stamped from the plan before any limit is checked, and is
// not revisited when the plan later changes.
func (q *QuotaEnforcer) CheckJobCreation(ctx context.Context, recruiterID uuid.UUID, payload *JobPayload) (*model.Subscription, error) {
	sub, err := q.resolver.GetActive(ctx, recruiterID)
	if err != nil {
		return nil, err
	}
	f := sub.Plan.Features

	payload.MaxApplicants = f.MaxApplicationsPerJob

	if f.MaxActiveJobs != nil && sub.Usage.ActiveJobs >= *f.MaxActiveJobs {
		return nil, q.deny(ctx, recruiterID, checkJobCreation, "maxActiveJobs", domain.Policyf(domain.ErrLimitExceeded,
			"active job limit reached (%d). Upgrade your plan to post more jobs", *f.MaxActiveJobs))
	}

	if n := utf8.RuneCountInString(payload.Description); n > f.MaxDescriptionLength {
		return nil, q.deny(ctx, recruiterID, checkJobCreation, "maxDescriptionLength", domain.Policyf(domain.ErrLimitExceeded,
			"description is %d characters, your plan allows at most %d", n, f.MaxDescriptionLength))
	}

	if payload.Locations != nil && len(payload.Locations) > f.MaxJobLocations {
		return nil, q.deny(ctx, recruiterID, checkJobCreation, "maxJobLocations", domain.Policyf(domain.ErrLimitExceeded,
			"%d locations given, your plan allows at most %d", len(payload.Locations), f.MaxJobLocations))
	}

	q.monitor.QuotaDecision(checkJobCreation, "allowed")
	return sub, nil
}

// CheckTeamAddOn verifies the plan allows adding one more member of the given
// role. Managers and team members are limited independently.
func (q *QuotaEnforcer) CheckTeamAddOn(ctx context.Context, recruiterID uuid.UUID, role string) (*model.Subscription, error) {
	class := model.ClassifyTeamRole(role)
	if class == model.RoleClassUnknown {
		return nil, fmt.Errorf("%w: unknown team role %q", domain.ErrInvalidInput, role)
	}

	sub, err := q.resolver.GetActive(ctx, recruiterID)
	if err != nil {
		return nil, err
	}
	f := sub.Plan.Features

	if !f.CanAddTeamMembers {
		return nil, q.deny(ctx, recruiterID, checkTeamAddOn, "canAddTeamMembers", domain.Policyf(domain.ErrNotAllowed,
			"your plan does not include team members. Upgrade to add your team"))
	}

	limit, used, rule := teamLimit(class, f, sub.Usage)
	if limit == 0 {
		return nil, q.deny(ctx, recruiterID, checkTeamAddOn, rule, domain.Policyf(domain.ErrNotAllowed,
			"adding %ss is not allowed for your plan", class))
	}
	if used >= limit {
		return nil, q.deny(ctx, recruiterID, checkTeamAddOn, rule, domain.Policyf(domain.ErrLimitExceeded,
			"%s limit reached (%d). Upgrade your plan to add more", class, limit))
	}

	q.monitor.QuotaDecision(checkTeamAddOn, "allowed")
	return sub, nil
}

func teamLimit(class model.RoleClass, f model.PlanFeatures, u model.Usage) (limit, used int, rule string) {
	if class == model.RoleClassManager {
		return f.MaxManagers, u.ManagersAdded, "maxManagers"
	}
	return f.MaxTeamMembers, u.TeamMembersAdded, "maxTeamMembers"
}

func (q *QuotaEnforcer) deny(ctx context.Context, recruiterID uuid.UUID, check, rule string, err error) error {
	outcome := "limit_exceeded"
	if errors.Is(err, domain.ErrNotAllowed) {
		outcome = "not_allowed"
	}
	q.monitor.QuotaDecision(check, outcome)

	rid := recruiterID
	if auditErr := q.audit.LogDecision(ctx, audit.Decision{
		Action:      model.ActionQuotaCheck,
		Allowed:     false,
		RecruiterID: &rid,
		Rule:        rule,
		Reason:      domain.Message(err),
		Context:     map[string]any{"check": check},
	}); auditErr != nil {
		q.logger.Warn("failed to record quota decision",
			"recruiter_id", recruiterID.String(),
			"check", check,
			"error", auditErr,
		)
	}

	q.logger.Debug("quota check denied",
		"recruiter_id", recruiterID.String(),
		"check", check,
		"rule", rule,
	)
	return err
}

// IncrementJobCounter records a newly persisted active job.
func (q *QuotaEnforcer) IncrementJobCounter(ctx context.Context, recruiterID uuid.UUID) error {
	return q.commit(ctx, recruiterID, "job counter", func(u *model.Usage) {
		u.ActiveJobs++
		u.JobsPosted++
	})
}

// DecrementJobCounter records an active job leaving the active state.
func (q *QuotaEnforcer) DecrementJobCounter(ctx context.Context, recruiterID uuid.UUID) error {
	return q.commit(ctx, recruiterID, "job counter", func(u *model.Usage) {
		u.ActiveJobs = floorZero(u.ActiveJobs - 1)
	})
}

func (q *QuotaEnforcer) IncrementTeamCounter(ctx context.Context, recruiterID uuid.UUID, role string) error {
	return q.adjustTeamCounter(ctx, recruiterID, role, 1)
}

func (q *QuotaEnforcer) DecrementTeamCounter(ctx context.Context, recruiterID uuid.UUID, role string) error {
	return q.adjustTeamCounter(ctx, recruiterID, role, -1)
}

func (q *QuotaEnforcer) adjustTeamCounter(ctx context.Context, recruiterID uuid.UUID, role string, delta int) error {
	class := model.ClassifyTeamRole(role)
	if class == model.RoleClassUnknown {
		return fmt.Errorf("%w: unknown team role %q", domain.ErrInvalidInput, role)
	}
	return q.commit(ctx, recruiterID, class.String()+" counter", func(u *model.Usage) {
		if class == model.RoleClassManager {
			u.ManagersAdded = floorZero(u.ManagersAdded + delta)
		} else {
			u.TeamMembersAdded = floorZero(u.TeamMembersAdded + delta)
		}
	})
}

func (q *QuotaEnforcer) commit(ctx context.Context, recruiterID uuid.UUID, what string, apply func(*model.Usage)) error {
	sub, err := q.resolver.GetActive(ctx, recruiterID)
	if err != nil {
		return fmt.Errorf("updating %s: %w", what, err)
	}
	apply(&sub.Usage)
	if err := q.subs.Save(ctx, sub); err != nil {
		return fmt.Errorf("updating %s: %w", what, err)
	}
	return nil
}

func floorZero(n int) int {
	return max(n, 0)
}
