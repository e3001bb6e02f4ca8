package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/anuj140/hireengine/internal/auth"
	"github.com/anuj140/hireengine/internal/domain"
	"github.com/anuj140/hireengine/internal/model"
	"github.com/anuj140/hireengine/internal/repository"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// JobService creates and closes jobs under the owner's plan limits.
type JobService struct {
	jobs     repository.JobRepositoryIface
	quota    *QuotaEnforcer
	logger   *slog.Logger
	validate *validator.Validate
}

func NewJobService(jobs repository.JobRepositoryIface, quota *QuotaEnforcer, logger *slog.Logger) *JobService {
	return &JobService{
		jobs:     jobs,
		quota:    quota,
		logger:   logger,
		validate: validator.New(),
	}
}

type CreateJobInput struct {
	Title       string   `json:"title" validate:"required,max=200"`
	Description string   `json:"description" validate:"required"`
	Locations   []string `json:"locations" validate:"omitempty,dive,required"`
}

// Create posts a job for the principal's company. Team members post on the
// recruiter's behalf; the job is always owned by the recruiter.
func (s *JobService) Create(ctx context.Context, p *auth.Principal, input CreateJobInput) (*model.Job, error) {
	if err := auth.RequirePermission(p, model.PermManageJobs); err != nil {
		return nil, err
	}
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidInput, err)
	}

	recruiterID := p.Company
	payload := &JobPayload{
		Title:       input.Title,
		Description: input.Description,
		Locations:   input.Locations,
	}
	if _, err := s.quota.CheckJobCreation(ctx, recruiterID, payload); err != nil {
		return nil, err
	}

	job := &model.Job{
		PostedBy:      recruiterID,
		Title:         payload.Title,
		Description:   payload.Description,
		Status:        model.JobActive,
		MaxApplicants: payload.MaxApplicants,
	}
	if p.IsTeamMember() {
		memberID := p.ID
		job.PostedByMember = &memberID
	}
	if err := job.SetLocations(payload.Locations); err != nil {
		return nil, err
	}

	if err := s.jobs.Create(ctx, job); err != nil {
		return nil, fmt.Errorf("creating job: %w", err)
	}

	if err := s.quota.IncrementJobCounter(ctx, recruiterID); err != nil {
		return nil, fmt.Errorf("job %s created: %w", job.ID, err)
	}

	s.logger.Info("job created",
		"job_id", job.ID.String(),
		"recruiter_id", recruiterID.String(),
		"max_applicants", job.MaxApplicants,
	)
	return job, nil
}

// Close closes a job. Closing an active job frees its slot.
func (s *JobService) Close(ctx context.Context, p *auth.Principal, jobID uuid.UUID) (*model.Job, error) {
	if err := auth.RequirePermission(p, model.PermManageJobs); err != nil {
		return nil, err
	}

	job, err := s.ownedJob(ctx, p, jobID)
	if err != nil {
		return nil, err
	}
	if job.Status == model.JobClosed {
		return job, nil
	}

	wasActive := job.Status == model.JobActive
	if err := s.jobs.UpdateStatus(ctx, job.ID, model.JobClosed); err != nil {
		return nil, fmt.Errorf("closing job: %w", err)
	}
	job.Status = model.JobClosed

	if wasActive {
		if err := s.quota.DecrementJobCounter(ctx, p.Company); err != nil {
			return nil, fmt.Errorf("job %s closed: %w", job.ID, err)
		}
	}
	return job, nil
}

// List returns every job owned by the principal's company, newest first.
func (s *JobService) List(ctx context.Context, p *auth.Principal) ([]*model.Job, error) {
	jobs, err := s.jobs.FindByOwnerAndStatuses(ctx, p.Company, nil)
	if err != nil {
		return nil, fmt.Errorf("listing jobs: %w", err)
	}
	return jobs, nil
}

// ownedJob hides jobs of other companies behind ErrJobNotFound.
func (s *JobService) ownedJob(ctx context.Context, p *auth.Principal, jobID uuid.UUID) (*model.Job, error) {
	job, err := s.jobs.FindByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if job.PostedBy != p.Company {
		return nil, domain.ErrJobNotFound
	}
	return job, nil
}
