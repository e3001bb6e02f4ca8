package repository

import (
	"context"
	"fmt"

	"github.com/anuj140/hireengine/internal/domain"
	"github.com/anuj140/hireengine/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RecruiterRepositoryIface interface {
	Create(ctx context.Context, recruiter *model.Recruiter) error
	FindByEmail(ctx context.Context, email string) (*model.Recruiter, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.Recruiter, error)
	ListIDs(ctx context.Context) ([]uuid.UUID, error)
	UpdateSubscriptionSummary(ctx context.Context, id uuid.UUID, summary model.SubscriptionSummary) error
}

type RecruiterRepository struct {
	db *gorm.DB
}

func NewRecruiterRepository(db *gorm.DB) *RecruiterRepository {
	return &RecruiterRepository{db: db}
}

func (r *RecruiterRepository) Create(ctx context.Context, recruiter *model.Recruiter) error {
	if err := r.db.WithContext(ctx).Create(recruiter).Error; err != nil {
		return fmt.Errorf("failed to create recruiter: %w", err)
	}
	return nil
}

func (r *RecruiterRepository) FindByEmail(ctx context.Context, email string) (*model.Recruiter, error) {
	var recruiter model.Recruiter
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&recruiter).Error; err != nil {
		return nil, notFound(err, domain.ErrRecruiterNotFound, "find recruiter")
	}
	return &recruiter, nil
}

func (r *RecruiterRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Recruiter, error) {
	var recruiter model.Recruiter
	if err := r.db.WithContext(ctx).First(&recruiter, "id = ?", id).Error; err != nil {
		return nil, notFound(err, domain.ErrRecruiterNotFound, "find recruiter")
	}
	return &recruiter, nil
}

// ListIDs returns the ids of all recruiters, oldest first.
func (r *RecruiterRepository) ListIDs(ctx context.Context) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	if err := r.db.WithContext(ctx).Model(&model.Recruiter{}).Order("created_at ASC").Pluck("id", &ids).Error; err != nil {
		return nil, fmt.Errorf("failed to list recruiters: %w", err)
	}
	return ids, nil
}

// UpdateSubscriptionSummary overwrites the denormalized subscription columns.
func (r *RecruiterRepository) UpdateSubscriptionSummary(ctx context.Context, id uuid.UUID, summary model.SubscriptionSummary) error {
	result := r.db.WithContext(ctx).Model(&model.Recruiter{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"subscription_plan_name":      summary.PlanName,
			"subscription_job_post_limit": summary.JobPostLimit,
			"subscription_expires_at":     summary.ExpiresAt,
			"subscription_is_premium":     summary.IsPremium,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update recruiter subscription summary: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrRecruiterNotFound
	}
	return nil
}
