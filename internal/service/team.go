package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/anuj140/hireengine/internal/auth"
	"github.com/anuj140/hireengine/internal/domain"
	"github.com/anuj140/hireengine/internal/model"
	"github.com/anuj140/hireengine/internal/repository"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// TeamService manages a recruiter's team members.
type TeamService struct {
	members        repository.TeamMemberRepositoryIface
	resolver       *AccountResolver
	quota          *QuotaEnforcer
	passwordHasher *auth.PasswordHasher
	logger         *slog.Logger
	validate       *validator.Validate
}

func NewTeamService(
	members repository.TeamMemberRepositoryIface,
	resolver *AccountResolver,
	quota *QuotaEnforcer,
	passwordHasher *auth.PasswordHasher,
	logger *slog.Logger,
) *TeamService {
	return &TeamService{
		members:        members,
		resolver:       resolver,
		quota:          quota,
		passwordHasher: passwordHasher,
		logger:         logger,
		validate:       validator.New(),
	}
}

type InviteInput struct {
	Email       string                `json:"email" validate:"required,email"`
	Name        string                `json:"name" validate:"required"`
	Role        string                `json:"role" validate:"required,oneof='HR Manager' recruiter team_member"`
	Password    string                `json:"password" validate:"required,min=8"`
	Permissions model.TeamPermissions `json:"permissions"`
}

// Invite creates a pending team member after checking the plan has room for
// the role. Pending members do not hold a slot; the slot is taken on Accept.
func (s *TeamService) Invite(ctx context.Context, p *auth.Principal, input InviteInput) (*model.TeamMember, error) {
	if err := requireRecruiter(p); err != nil {
		return nil, err
	}
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidInput, err)
	}

	email := normalizeEmail(input.Email)
	if _, err := s.resolver.LookupByEmail(ctx, email); err == nil {
		return nil, domain.ErrEmailAlreadyExists
	} else if !errors.Is(err, domain.ErrAccountNotFound) {
		return nil, err
	}

	if _, err := s.quota.CheckTeamAddOn(ctx, p.ID, input.Role); err != nil {
		return nil, err
	}

	hash, err := s.passwordHasher.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	member := &model.TeamMember{
		RecruiterID:  p.ID,
		Email:        email,
		Name:         input.Name,
		PasswordHash: hash,
		Role:         input.Role,
		Status:       model.MemberPending,
		Permissions:  input.Permissions,
	}
	if err := s.members.Create(ctx, member); err != nil {
		return nil, fmt.Errorf("creating team member: %w", err)
	}

	s.logger.Info("team member invited",
		"member_id", member.ID.String(),
		"recruiter_id", p.ID.String(),
		"role", member.Role,
	)
	return member, nil
}

type AcceptInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Accept activates a pending invitation and counts the member against the
// recruiter's plan. The invited member proves the credentials the recruiter
// issued; accepted members never return to pending.
func (s *TeamService) Accept(ctx context.Context, input AcceptInput) (*model.TeamMember, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidInput, err)
	}

	member, err := s.members.FindByEmail(ctx, normalizeEmail(input.Email))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	ok, err := s.passwordHasher.Verify(input.Password, member.PasswordHash)
	if err != nil || !ok {
		return nil, domain.ErrInvalidCredentials
	}

	if member.Status != model.MemberPending {
		return nil, fmt.Errorf("%w: invitation already accepted", domain.ErrInvalidInput)
	}

	if _, err := s.quota.CheckTeamAddOn(ctx, member.RecruiterID, member.Role); err != nil {
		return nil, err
	}

	if err := s.members.UpdateStatus(ctx, member.ID, model.MemberActive); err != nil {
		return nil, fmt.Errorf("activating team member: %w", err)
	}
	member.Status = model.MemberActive

	if err := s.quota.IncrementTeamCounter(ctx, member.RecruiterID, member.Role); err != nil {
		return nil, fmt.Errorf("team member %s activated: %w", member.ID, err)
	}

	s.logger.Info("team member joined",
		"member_id", member.ID.String(),
		"recruiter_id", member.RecruiterID.String(),
		"role", member.Role,
	)
	return member, nil
}

// Remove deletes a member of the principal's team and releases its slot.
func (s *TeamService) Remove(ctx context.Context, p *auth.Principal, memberID uuid.UUID) error {
	if err := requireRecruiter(p); err != nil {
		return err
	}

	member, err := s.members.FindByID(ctx, memberID)
	if err != nil {
		return err
	}
	if member.RecruiterID != p.ID {
		return domain.ErrTeamMemberNotFound
	}

	if err := s.members.Delete(ctx, member.ID); err != nil {
		return fmt.Errorf("deleting team member: %w", err)
	}

	// Only active members hold a slot. Paused members gave theirs up during
	// reconciliation and pending ones never took one.
	if member.Status != model.MemberActive {
		return nil
	}
	if err := s.quota.DecrementTeamCounter(ctx, p.ID, member.Role); err != nil {
		return fmt.Errorf("team member %s removed: %w", member.ID, err)
	}
	return nil
}

// List returns the principal's team, newest first.
func (s *TeamService) List(ctx context.Context, p *auth.Principal) ([]*model.TeamMember, error) {
	members, err := s.members.FindByRecruiter(ctx, p.Company)
	if err != nil {
		return nil, fmt.Errorf("listing team members: %w", err)
	}
	return members, nil
}

func requireRecruiter(p *auth.Principal) error {
	if p == nil {
		return domain.Policyf(domain.ErrUnauthenticated, "authentication required")
	}
	if p.Role != auth.RoleRecruiter {
		return domain.Policyf(domain.ErrForbidden, "only the recruiter account can manage its team")
	}
	return nil
}
