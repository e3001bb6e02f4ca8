package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/anuj140/hireengine/internal/audit"
	"github.com/anuj140/hireengine/internal/domain"
	"github.com/anuj140/hireengine/internal/model"
	"github.com/anuj140/hireengine/internal/repository"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type AssignPlanInput struct {
	RecruiterID uuid.UUID `json:"-"`
	PlanName    string    `json:"plan" validate:"required"`
	AssignedBy  string    `json:"-"`
	Reason      string    `json:"reason" validate:"max=500"`
}

type AssignPlanOutput struct {
	Subscription *model.Subscription `json:"subscription"`
	Reconcile    *ReconcileResult    `json:"reconcile"`
}

// PlanChangeService moves a recruiter onto another plan.
type PlanChangeService struct {
	catalog    *PlanCatalog
	subs       repository.SubscriptionRepositoryIface
	recruiters repository.RecruiterRepositoryIface
	summary    *SubscriptionService
	reconciler *PlanReconciler
	audit      audit.Logger
	logger     *slog.Logger
	validate   *validator.Validate
	now        func() time.Time
}

func NewPlanChangeService(
	catalog *PlanCatalog,
	subs repository.SubscriptionRepositoryIface,
	recruiters repository.RecruiterRepositoryIface,
	summary *SubscriptionService,
	reconciler *PlanReconciler,
	auditLogger audit.Logger,
	logger *slog.Logger,
) *PlanChangeService {
	return &PlanChangeService{
		catalog:    catalog,
		subs:       subs,
		recruiters: recruiters,
		summary:    summary,
		reconciler: reconciler,
		audit:      auditLogger,
		logger:     logger,
		validate:   validator.New(),
		now:        time.Now,
	}
}

// SetClock replaces time.Now.
func (s *PlanChangeService) SetClock(now func() time.Time) {
	s.now = now
}

// AssignPlan cancels the current subscription, starts a new one on the named
// plan carrying the usage counters over, and reconciles the recruiter. The
// steps are not atomic; a failure after cancellation leaves the recruiter on
// the free fallback until AssignPlan is retried.
func (s *PlanChangeService) AssignPlan(ctx context.Context, in AssignPlanInput) (*AssignPlanOutput, error) {
	if err := s.validate.Struct(in); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidInput, err)
	}
	if _, err := s.recruiters.FindByID(ctx, in.RecruiterID); err != nil {
		return nil, fmt.Errorf("loading recruiter: %w", err)
	}

	plan, err := s.catalog.FindActive(ctx, in.PlanName)
	if err != nil {
		return nil, err
	}

	now := s.now()
	var usage model.Usage

	current, err := s.subs.FindActiveByRecruiter(ctx, in.RecruiterID)
	switch {
	case errors.Is(err, domain.ErrSubscriptionNotFound):
	case err != nil:
		return nil, fmt.Errorf("loading current subscription: %w", err)
	default:
		usage = current.Usage
		current.Status = model.SubscriptionCancelled
		current.Cancellation = model.Cancellation{
			CancelledAt: &now,
			CancelledBy: in.AssignedBy,
			Reason:      in.Reason,
		}
		if err := s.subs.Save(ctx, current); err != nil {
			return nil, fmt.Errorf("cancelling current subscription: %w", err)
		}
	}

	duration := time.Duration(plan.Duration) * 24 * time.Hour
	if duration <= 0 {
		duration = s.summary.freeValidity
	}

	sub := &model.Subscription{
		RecruiterID: in.RecruiterID,
		PlanID:      plan.ID,
		Plan:        plan,
		Status:      model.SubscriptionActive,
		StartDate:   now,
		EndDate:     now.Add(duration),
		Payment: model.Payment{
			Amount:        plan.Price,
			Currency:      plan.Currency,
			PaymentStatus: model.PaymentCompleted,
		},
		Usage: usage,
	}
	if err := s.subs.Create(ctx, sub); err != nil {
		return nil, fmt.Errorf("creating subscription: %w", err)
	}

	if err := s.summary.SyncSummary(ctx, in.RecruiterID, sub); err != nil {
		return nil, err
	}

	rid := in.RecruiterID
	if err := s.audit.LogDecision(ctx, audit.Decision{
		Action:      model.ActionPlanAssigned,
		Allowed:     true,
		RecruiterID: &rid,
		Rule:        plan.Name,
		Reason:      in.Reason,
		Context: map[string]any{
			"assigned_by":  in.AssignedBy,
			"subscription": sub.ID.String(),
		},
	}); err != nil {
		s.logger.Warn("failed to record plan assignment",
			"recruiter_id", in.RecruiterID.String(),
			"plan", plan.Name,
			"error", err,
		)
	}

	s.logger.Info("assigned plan",
		"recruiter_id", in.RecruiterID.String(),
		"plan", plan.Name,
		"assigned_by", in.AssignedBy,
	)

	result, err := s.reconciler.Reconcile(ctx, in.RecruiterID)
	if err != nil {
		return nil, fmt.Errorf("reconciling after plan change: %w", err)
	}

	// The reconciler saved its own copy; reload so counters are current.
	fresh, err := s.subs.FindActiveByRecruiter(ctx, in.RecruiterID)
	if err != nil {
		return nil, fmt.Errorf("reloading subscription: %w", err)
	}
	return &AssignPlanOutput{Subscription: fresh, Reconcile: result}, nil
}
