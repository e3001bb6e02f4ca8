package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/anuj140/hireengine/internal/cache"
	"github.com/anuj140/hireengine/internal/model"
	"github.com/anuj140/hireengine/internal/repository"
)

const (
	planListKey   = "plans:active"
	planAllKey    = "plans:all"
	planKeyPrefix = "plan:"
)

// PlanCatalog serves subscription plans through a short-lived in-process cache.
type PlanCatalog struct {
	repo   repository.PlanRepositoryIface
	cache  *cache.InMemoryCache
	logger *slog.Logger
}

func NewPlanCatalog(repo repository.PlanRepositoryIface, ttl time.Duration, logger *slog.Logger) *PlanCatalog {
	c := cache.NewInMemoryCache(ttl, ttl)
	c.StartCleanup(context.Background())

	return &PlanCatalog{
		repo:   repo,
		cache:  c,
		logger: logger,
	}
}

// List returns the catalog ordered by price.
func (c *PlanCatalog) List(ctx context.Context, includeInactive bool) ([]*model.SubscriptionPlan, error) {
	key := planListKey
	if includeInactive {
		key = planAllKey
	}
	return getOrSet(ctx, c.cache, key, func() ([]*model.SubscriptionPlan, error) {
		plans, err := c.repo.FindAll(ctx, includeInactive)
		if err != nil {
			return nil, fmt.Errorf("listing plans: %w", err)
		}
		return plans, nil
	})
}

// FindActive returns the active plan with the given name.
func (c *PlanCatalog) FindActive(ctx context.Context, name string) (*model.SubscriptionPlan, error) {
	return getOrSet(ctx, c.cache, planKeyPrefix+name, func() (*model.SubscriptionPlan, error) {
		plan, err := c.repo.FindActiveByName(ctx, name)
		if err != nil {
			return nil, fmt.Errorf("finding plan %q: %w", name, err)
		}
		return plan, nil
	})
}

// Seed upserts the given plans and drops every cached entry.
func (c *PlanCatalog) Seed(ctx context.Context, plans []*model.SubscriptionPlan) error {
	for _, p := range plans {
		if err := c.repo.Upsert(ctx, p); err != nil {
			return fmt.Errorf("seeding plan %q: %w", p.Name, err)
		}
		c.logger.Info("seeded plan", "plan", p.Name, "price", p.Price)
	}
	c.cache.Purge()
	return nil
}

// Close stops the cache cleanup routine
func (c *PlanCatalog) Close() {
	c.cache.StopCleanup()
}

// getOrSet returns the cached value for key or fetches and caches it.
func getOrSet[T any](ctx context.Context, c *cache.InMemoryCache, key string, fetch func() (T, error)) (T, error) {
	if v, ok := c.Get(ctx, key); ok {
		if typed, ok := v.(T); ok {
			return typed, nil
		}
	}

	v, err := fetch()
	if err != nil {
		var zero T
		return zero, err
	}
	c.Set(ctx, key, v)
	return v, nil
}

func intPtr(n int) *int { return &n }

// DefaultPlans is the catalog installed by the seed command.
func DefaultPlans() []*model.SubscriptionPlan {
	return []*model.SubscriptionPlan{
		{
			Name:        model.FreePlanName,
			DisplayName: "Free",
			Currency:    "INR",
			Duration:    30,
			IsActive:    true,
			Features: model.PlanFeatures{
				MaxActiveJobs:         intPtr(3),
				JobValidityDays:       30,
				MaxDescriptionLength:  2000,
				MaxJobLocations:       1,
				MaxApplicationsPerJob: 50,
			},
		},
		{
			Name:        "basic",
			DisplayName: "Basic",
			Price:       999,
			Currency:    "INR",
			Duration:    30,
			IsActive:    true,
			Features: model.PlanFeatures{
				MaxActiveJobs:         intPtr(10),
				JobValidityDays:       45,
				MaxDescriptionLength:  5000,
				MaxJobLocations:       3,
				MaxApplicationsPerJob: 200,
				MaxTeamMembers:        2,
				MaxManagers:           1,
				CanAddTeamMembers:     true,
			},
		},
		{
			Name:        "premium",
			DisplayName: "Premium",
			Price:       2999,
			Currency:    "INR",
			Duration:    30,
			IsActive:    true,
			Features: model.PlanFeatures{
				MaxActiveJobs:         intPtr(25),
				JobValidityDays:       60,
				MaxDescriptionLength:  10000,
				MaxJobLocations:       5,
				MaxApplicationsPerJob: 500,
				MaxTeamMembers:        5,
				MaxManagers:           2,
				CanAddTeamMembers:     true,
			},
		},
		{
			Name:        "enterprise",
			DisplayName: "Enterprise",
			Price:       9999,
			Currency:    "INR",
			Duration:    365,
			IsActive:    true,
			Features: model.PlanFeatures{
				JobValidityDays:       90,
				MaxDescriptionLength:  20000,
				MaxJobLocations:       10,
				MaxApplicationsPerJob: 2000,
				MaxTeamMembers:        20,
				MaxManagers:           5,
				CanAddTeamMembers:     true,
			},
		},
	}
}
