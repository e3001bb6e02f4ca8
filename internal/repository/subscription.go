package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/anuj140/hireengine/internal/domain"
	"github.com/anuj140/hireengine/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SubscriptionRepositoryIface interface {
	FindActiveByRecruiter(ctx context.Context, recruiterID uuid.UUID) (*model.Subscription, error)
	FindByRecruiter(ctx context.Context, recruiterID uuid.UUID) ([]*model.Subscription, error)
	Create(ctx context.Context, sub *model.Subscription) error
	Save(ctx context.Context, sub *model.Subscription) error
	ExpireBefore(ctx context.Context, now time.Time) (int64, error)
}

type SubscriptionRepository struct {
	db *gorm.DB
}

func NewSubscriptionRepository(db *gorm.DB) *SubscriptionRepository {
	return &SubscriptionRepository{db: db}
}

// FindActiveByRecruiter returns the recruiter's active subscription with its
// plan preloaded. Expiry is not checked here.
func (r *SubscriptionRepository) FindActiveByRecruiter(ctx context.Context, recruiterID uuid.UUID) (*model.Subscription, error) {
	var sub model.Subscription
	err := r.db.WithContext(ctx).
		Preload("Plan").
		Where("recruiter_id = ? AND status = ?", recruiterID, model.SubscriptionActive).
		Order("created_at DESC").
		First(&sub).Error
	if err != nil {
		return nil, notFound(err, domain.ErrSubscriptionNotFound, "find active subscription")
	}
	return &sub, nil
}

// FindByRecruiter returns the recruiter's subscription history, newest first.
func (r *SubscriptionRepository) FindByRecruiter(ctx context.Context, recruiterID uuid.UUID) ([]*model.Subscription, error) {
	var subs []*model.Subscription
	err := r.db.WithContext(ctx).
		Preload("Plan").
		Where("recruiter_id = ?", recruiterID).
		Order("created_at DESC").
		Find(&subs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find subscriptions: %w", err)
	}
	return subs, nil
}

func (r *SubscriptionRepository) Create(ctx context.Context, sub *model.Subscription) error {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(sub).Error; err != nil {
		return fmt.Errorf("failed to create subscription: %w", err)
	}
	return nil
}

// Save writes every column of the subscription. The plan is never written back.
func (r *SubscriptionRepository) Save(ctx context.Context, sub *model.Subscription) error {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Save(sub).Error; err != nil {
		return fmt.Errorf("failed to save subscription: %w", err)
	}
	return nil
}

// ExpireBefore moves every active subscription that ended before now to expired.
func (r *SubscriptionRepository) ExpireBefore(ctx context.Context, now time.Time) (int64, error) {
	result := r.db.WithContext(ctx).Model(&model.Subscription{}).
		Where("status = ? AND end_date < ?", model.SubscriptionActive, now).
		Update("status", model.SubscriptionExpired)
	if result.Error != nil {
		return 0, fmt.Errorf("failed to expire subscriptions: %w", result.Error)
	}
	return result.RowsAffected, nil
}
