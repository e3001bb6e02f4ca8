package repository

import (
	"context"
	"fmt"

	"github.com/anuj140/hireengine/internal/domain"
	"github.com/anuj140/hireengine/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TeamMemberRepositoryIface interface {
	Create(ctx context.Context, member *model.TeamMember) error
	FindByEmail(ctx context.Context, email string) (*model.TeamMember, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.TeamMember, error)
	FindByRecruiter(ctx context.Context, recruiterID uuid.UUID) ([]*model.TeamMember, error)
	FindByRecruiterAndRoles(ctx context.Context, recruiterID uuid.UUID, roles []string, statuses []model.MemberStatus) ([]*model.TeamMember, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status model.MemberStatus) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type TeamMemberRepository struct {
	db *gorm.DB
}

func NewTeamMemberRepository(db *gorm.DB) *TeamMemberRepository {
	return &TeamMemberRepository{db: db}
}

func (r *TeamMemberRepository) Create(ctx context.Context, member *model.TeamMember) error {
	if err := r.db.WithContext(ctx).Create(member).Error; err != nil {
		return fmt.Errorf("failed to create team member: %w", err)
	}
	return nil
}

func (r *TeamMemberRepository) FindByEmail(ctx context.Context, email string) (*model.TeamMember, error) {
	var member model.TeamMember
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&member).Error; err != nil {
		return nil, notFound(err, domain.ErrTeamMemberNotFound, "find team member")
	}
	return &member, nil
}

func (r *TeamMemberRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.TeamMember, error) {
	var member model.TeamMember
	if err := r.db.WithContext(ctx).First(&member, "id = ?", id).Error; err != nil {
		return nil, notFound(err, domain.ErrTeamMemberNotFound, "find team member")
	}
	return &member, nil
}

// FindByRecruiter returns every member of a recruiter's team, newest first.
func (r *TeamMemberRepository) FindByRecruiter(ctx context.Context, recruiterID uuid.UUID) ([]*model.TeamMember, error) {
	var members []*model.TeamMember
	result := r.db.WithContext(ctx).
		Where("recruiter_id = ?", recruiterID).
		Order("created_at DESC").
		Find(&members)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find team members: %w", result.Error)
	}
	return members, nil
}

// FindByRecruiterAndRoles returns a recruiter's members with one of the given
// roles and statuses, newest first.
func (r *TeamMemberRepository) FindByRecruiterAndRoles(ctx context.Context, recruiterID uuid.UUID, roles []string, statuses []model.MemberStatus) ([]*model.TeamMember, error) {
	var members []*model.TeamMember
	result := r.db.WithContext(ctx).
		Where("recruiter_id = ? AND role IN ? AND status IN ?", recruiterID, roles, statuses).
		Order("created_at DESC").
		Find(&members)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find team members by role: %w", result.Error)
	}
	return members, nil
}

func (r *TeamMemberRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status model.MemberStatus) error {
	result := r.db.WithContext(ctx).Model(&model.TeamMember{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return fmt.Errorf("failed to update team member status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrTeamMemberNotFound
	}
	return nil
}

func (r *TeamMemberRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.TeamMember{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete team member: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrTeamMemberNotFound
	}
	return nil
}
