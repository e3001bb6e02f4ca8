package repository

import (
	"context"
	"fmt"

	"github.com/anuj140/hireengine/internal/domain"
	"github.com/anuj140/hireengine/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type JobRepositoryIface interface {
	Create(ctx context.Context, job *model.Job) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Job, error)
	FindByOwnerAndStatuses(ctx context.Context, ownerID uuid.UUID, statuses []model.JobStatus) ([]*model.Job, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status model.JobStatus) error
}

type JobRepository struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) *JobRepository {
	return &JobRepository{db: db}
}

func (r *JobRepository) Create(ctx context.Context, job *model.Job) error {
	if err := r.db.WithContext(ctx).Create(job).Error; err != nil {
		return fmt.Errorf("failed to create job: %w", err)
	}
	return nil
}

func (r *JobRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Job, error) {
	var job model.Job
	if err := r.db.WithContext(ctx).First(&job, "id = ?", id).Error; err != nil {
		return nil, notFound(err, domain.ErrJobNotFound, "find job")
	}
	return &job, nil
}

// FindByOwnerAndStatuses returns the recruiter's jobs in the given statuses,
// newest first. A nil statuses slice returns every job.
func (r *JobRepository) FindByOwnerAndStatuses(ctx context.Context, ownerID uuid.UUID, statuses []model.JobStatus) ([]*model.Job, error) {
	var jobs []*model.Job
	q := r.db.WithContext(ctx).Where("posted_by = ?", ownerID)
	if statuses != nil {
		q = q.Where("status IN ?", statuses)
	}
	if err := q.Order("created_at DESC").Find(&jobs).Error; err != nil {
		return nil, fmt.Errorf("failed to find jobs: %w", err)
	}
	return jobs, nil
}

func (r *JobRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status model.JobStatus) error {
	result := r.db.WithContext(ctx).Model(&model.Job{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return fmt.Errorf("failed to update job status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrJobNotFound
	}
	return nil
}
