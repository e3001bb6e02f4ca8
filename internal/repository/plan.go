package repository

import (
	"context"
	"fmt"

	"github.com/anuj140/hireengine/internal/domain"
	"github.com/anuj140/hireengine/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PlanRepositoryIface interface {
	FindActiveByName(ctx context.Context, name string) (*model.SubscriptionPlan, error)
	FindAll(ctx context.Context, includeInactive bool) ([]*model.SubscriptionPlan, error)
	Upsert(ctx context.Context, plan *model.SubscriptionPlan) error
}

type PlanRepository struct {
	db *gorm.DB
}

func NewPlanRepository(db *gorm.DB) *PlanRepository {
	return &PlanRepository{db: db}
}

func (r *PlanRepository) FindActiveByName(ctx context.Context, name string) (*model.SubscriptionPlan, error) {
	var plan model.SubscriptionPlan
	err := r.db.WithContext(ctx).
		Where("name = ? AND is_active = ?", name, true).
		First(&plan).Error
	if err != nil {
		return nil, notFound(err, domain.ErrPlanNotFound, "find plan")
	}
	return &plan, nil
}

// FindAll returns catalog plans ordered by price.
func (r *PlanRepository) FindAll(ctx context.Context, includeInactive bool) ([]*model.SubscriptionPlan, error) {
	var plans []*model.SubscriptionPlan
	q := r.db.WithContext(ctx).Order("price ASC")
	if !includeInactive {
		q = q.Where("is_active = ?", true)
	}
	if err := q.Find(&plans).Error; err != nil {
		return nil, fmt.Errorf("failed to list plans: %w", err)
	}
	return plans, nil
}

// Upsert inserts the plan or overwrites the row with the same name.
func (r *PlanRepository) Upsert(ctx context.Context, plan *model.SubscriptionPlan) error {
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns(planUpsertColumns),
	}).Create(plan).Error
	if err != nil {
		return fmt.Errorf("failed to upsert plan %q: %w", plan.Name, err)
	}
	return nil
}

var planUpsertColumns = []string{
	"display_name",
	"price",
	"currency",
	"duration",
	"feature_max_active_jobs",
	"feature_job_validity_days",
	"feature_max_description_length",
	"feature_max_job_locations",
	"feature_max_applications_per_job",
	"feature_max_team_members",
	"feature_max_managers",
	"feature_can_add_team_members",
	"is_active",
	"updated_at",
}
