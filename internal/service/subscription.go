package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/anuj140/hireengine/internal/domain"
	"github.com/anuj140/hireengine/internal/model"
	"github.com/anuj140/hireengine/internal/monitoring"
	"github.com/anuj140/hireengine/internal/repository"
	"github.com/google/uuid"
)

// DefaultFreePlanValidity is how long a lazily created free subscription lasts.
const DefaultFreePlanValidity = 30 * 24 * time.Hour

// SubscriptionService resolves a recruiter's single active subscription.
type SubscriptionService struct {
	subs         repository.SubscriptionRepositoryIface
	plans        repository.PlanRepositoryIface
	recruiters   repository.RecruiterRepositoryIface
	monitor      monitoring.MonitorInterface
	logger       *slog.Logger
	freeValidity time.Duration
	now          func() time.Time
}

type SubscriptionOption func(*SubscriptionService)

// WithFreePlanValidity overrides DefaultFreePlanValidity.
func WithFreePlanValidity(d time.Duration) SubscriptionOption {
	return func(s *SubscriptionService) {
		if d > 0 {
			s.freeValidity = d
		}
	}
}

// WithClock replaces time.Now, mostly for tests.
func WithClock(now func() time.Time) SubscriptionOption {
	return func(s *SubscriptionService) {
		s.now = now
	}
}

func NewSubscriptionService(
	subs repository.SubscriptionRepositoryIface,
	plans repository.PlanRepositoryIface,
	recruiters repository.RecruiterRepositoryIface,
	monitor monitoring.MonitorInterface,
	logger *slog.Logger,
	opts ...SubscriptionOption,
) *SubscriptionService {
	s := &SubscriptionService{
		subs:         subs,
		plans:        plans,
		recruiters:   recruiters,
		monitor:      monitor,
		logger:       logger,
		freeValidity: DefaultFreePlanValidity,
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GetActive returns the recruiter's active subscription with its plan loaded.
//
// A recruiter without one gets a free-plan subscription created on the spot,
// unless the catalog has no active free plan (ErrNoSubscription). An active
// subscription past its end date is marked expired and ErrExpired is returned
// instead of the stale record.
func (s *SubscriptionService) GetActive(ctx context.Context, recruiterID uuid.UUID) (*model.Subscription, error) {
	sub, err := s.subs.FindActiveByRecruiter(ctx, recruiterID)
	if errors.Is(err, domain.ErrSubscriptionNotFound) {
		return s.createFreeSubscription(ctx, recruiterID)
	}
	if err != nil {
		return nil, fmt.Errorf("loading active subscription: %w", err)
	}

	now := s.now()
	if sub.IsExpired(now) {
		sub.Status = model.SubscriptionExpired
		if err := s.subs.Save(ctx, sub); err != nil {
			return nil, fmt.Errorf("marking subscription expired: %w", err)
		}
		s.logger.Info("subscription expired on read",
			"recruiter_id", recruiterID.String(),
			"subscription_id", sub.ID.String(),
			"end_date", sub.EndDate,
		)
		return nil, domain.Policyf(domain.ErrExpired, "your %s subscription expired on %s", planName(sub), sub.EndDate.Format(time.DateOnly))
	}

	if sub.Plan == nil {
		return nil, fmt.Errorf("subscription %s references a missing plan: %w", sub.ID, domain.ErrPlanNotFound)
	}
	return sub, nil
}

func (s *SubscriptionService) createFreeSubscription(ctx context.Context, recruiterID uuid.UUID) (*model.Subscription, error) {
	if _, err := s.recruiters.FindByID(ctx, recruiterID); err != nil {
		return nil, fmt.Errorf("loading recruiter: %w", err)
	}

	plan, err := s.plans.FindActiveByName(ctx, model.FreePlanName)
	if errors.Is(err, domain.ErrPlanNotFound) {
		return nil, domain.Policyf(domain.ErrNoSubscription, "no active subscription and no free plan is available")
	}
	if err != nil {
		return nil, fmt.Errorf("loading free plan: %w", err)
	}

	now := s.now()
	sub := &model.Subscription{
		RecruiterID: recruiterID,
		PlanID:      plan.ID,
		Plan:        plan,
		Status:      model.SubscriptionActive,
		StartDate:   now,
		EndDate:     now.Add(s.freeValidity),
		Payment: model.Payment{
			Amount:        0,
			Currency:      plan.Currency,
			PaymentStatus: model.PaymentCompleted,
		},
	}
	if err := s.subs.Create(ctx, sub); err != nil {
		return nil, fmt.Errorf("creating free subscription: %w", err)
	}

	s.logger.Info("created free subscription",
		"recruiter_id", recruiterID.String(),
		"subscription_id", sub.ID.String(),
		"end_date", sub.EndDate,
	)

	if err := s.SyncSummary(ctx, recruiterID, sub); err != nil {
		return nil, err
	}
	return sub, nil
}

// SyncSummary copies the subscription onto the recruiter's cached summary.
func (s *SubscriptionService) SyncSummary(ctx context.Context, recruiterID uuid.UUID, sub *model.Subscription) error {
	summary := model.SubscriptionSummary{}
	if sub != nil && sub.Plan != nil {
		expiresAt := sub.EndDate
		summary = model.SubscriptionSummary{
			PlanName:     sub.Plan.Name,
			JobPostLimit: sub.Plan.Features.MaxActiveJobs,
			ExpiresAt:    &expiresAt,
			IsPremium:    sub.Plan.Name != model.FreePlanName && sub.Plan.Price > 0,
		}
	}
	if err := s.recruiters.UpdateSubscriptionSummary(ctx, recruiterID, summary); err != nil {
		return fmt.Errorf("updating recruiter subscription summary: %w", err)
	}
	return nil
}

// ExpireDue moves every active subscription whose end date is before now to
// expired and reports how many changed.
func (s *SubscriptionService) ExpireDue(ctx context.Context, now time.Time) (int64, error) {
	n, err := s.subs.ExpireBefore(ctx, now)
	if err != nil {
		return 0, fmt.Errorf("expiring subscriptions: %w", err)
	}
	s.monitor.SubscriptionsExpired(n)
	if n > 0 {
		s.logger.Info("expired subscriptions", "count", n, "cutoff", now)
	}
	return n, nil
}

// History returns the recruiter's subscriptions, newest first.
func (s *SubscriptionService) History(ctx context.Context, recruiterID uuid.UUID) ([]*model.Subscription, error) {
	subs, err := s.subs.FindByRecruiter(ctx, recruiterID)
	if err != nil {
		return nil, fmt.Errorf("loading subscription history: %w", err)
	}
	return subs, nil
}

func planName(sub *model.Subscription) string {
	if sub.Plan != nil {
		return sub.Plan.DisplayName
	}
	return "current"
}
