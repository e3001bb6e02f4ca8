package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/anuj140/hireengine/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PolicyAuditLogRepository handles database operations for policy audit logs
type PolicyAuditLogRepository struct {
	db *gorm.DB
}

func NewPolicyAuditLogRepository(db *gorm.DB) *PolicyAuditLogRepository {
	return &PolicyAuditLogRepository{db: db}
}

// Create inserts a new audit log entry
func (r *PolicyAuditLogRepository) Create(ctx context.Context, log *model.PolicyAuditLog) error {
	if err := r.db.WithContext(ctx).Create(log).Error; err != nil {
		return fmt.Errorf("failed to create policy audit log: %w", err)
	}
	return nil
}

// QueryParams holds parameters for querying audit logs
type QueryParams struct {
	ActionType  string
	SubjectID   string
	RecruiterID *uuid.UUID
	Allowed     *bool
	StartTime   time.Time
	EndTime     time.Time
	Limit       int
	Offset      int
}

// Query retrieves audit logs based on the provided query parameters
func (r *PolicyAuditLogRepository) Query(ctx context.Context, params QueryParams) ([]model.PolicyAuditLog, int64, error) {
	var logs []model.PolicyAuditLog
	var count int64

	query := r.db.WithContext(ctx).Model(&model.PolicyAuditLog{})

	if params.ActionType != "" {
		query = query.Where("action_type = ?", params.ActionType)
	}
	if params.SubjectID != "" {
		query = query.Where("subject_id = ?", params.SubjectID)
	}
	if params.RecruiterID != nil {
		query = query.Where("recruiter_id = ?", *params.RecruiterID)
	}
	if params.Allowed != nil {
		query = query.Where("allowed = ?", *params.Allowed)
	}
	if !params.StartTime.IsZero() {
		query = query.Where("timestamp >= ?", params.StartTime)
	}
	if !params.EndTime.IsZero() {
		query = query.Where("timestamp <= ?", params.EndTime)
	}

	if err := query.Count(&count).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count policy audit logs: %w", err)
	}

	if params.Limit > 0 {
		query = query.Limit(params.Limit)
	} else {
		query = query.Limit(100)
	}
	if params.Offset > 0 {
		query = query.Offset(params.Offset)
	}

	if err := query.Order("timestamp DESC").Find(&logs).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to query policy audit logs: %w", err)
	}

	return logs, count, nil
}
