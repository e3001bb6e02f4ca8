package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/anuj140/hireengine/internal/auth"
	"github.com/anuj140/hireengine/internal/domain"
	"github.com/anuj140/hireengine/internal/model"
	"github.com/anuj140/hireengine/internal/repository"
	"github.com/go-playground/validator/v10"
)

// AccountService handles sign-up and login for every account kind.
type AccountService struct {
	resolver       *AccountResolver
	users          repository.UserRepositoryIface
	recruiters     repository.RecruiterRepositoryIface
	admins         repository.AdminRepositoryIface
	passwordHasher *auth.PasswordHasher
	tokenManager   *auth.TokenManager
	logger         *slog.Logger
	validate       *validator.Validate
}

func NewAccountService(
	resolver *AccountResolver,
	users repository.UserRepositoryIface,
	recruiters repository.RecruiterRepositoryIface,
	admins repository.AdminRepositoryIface,
	passwordHasher *auth.PasswordHasher,
	tokenManager *auth.TokenManager,
	logger *slog.Logger,
) *AccountService {
	return &AccountService{
		resolver:       resolver,
		users:          users,
		recruiters:     recruiters,
		admins:         admins,
		passwordHasher: passwordHasher,
		tokenManager:   tokenManager,
		logger:         logger,
		validate:       validator.New(),
	}
}

type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginOutput struct {
	Token     string      `json:"token"`
	ExpiresAt time.Time   `json:"expires_at"`
	Kind      AccountKind `json:"kind"`
	Role      auth.Role   `json:"role"`
}

// Login checks credentials against the first account with the email, in the
// same store order the resolver uses. Team members that are not active are
// refused even with the right password.
func (s *AccountService) Login(ctx context.Context, input LoginInput) (*LoginOutput, error) {
	if err := s.validateInput(input); err != nil {
		return nil, err
	}

	rec, err := s.resolver.LookupByEmail(ctx, normalizeEmail(input.Email))
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	verified, err := s.passwordHasher.Verify(input.Password, rec.passwordHash())
	if err != nil {
		s.logger.Warn("stored password hash unreadable", "account_id", rec.AccountID().String(), "error", err)
		return nil, domain.ErrInvalidCredentials
	}
	if !verified {
		return nil, domain.ErrInvalidCredentials
	}

	principal, err := PrincipalFor(rec)
	if err != nil {
		return nil, err
	}

	token, expiresAt, err := s.tokenManager.Generate(rec.AccountID(), string(rec.Kind()))
	if err != nil {
		return nil, fmt.Errorf("generating token: %w", err)
	}

	return &LoginOutput{
		Token:     token,
		ExpiresAt: expiresAt,
		Kind:      rec.Kind(),
		Role:      principal.Role,
	}, nil
}

type RegisterRecruiterInput struct {
	Email       string `json:"email" validate:"required,email"`
	Phone       string `json:"phone" validate:"omitempty,e164"`
	CompanyName string `json:"company_name" validate:"required,max=200"`
	Password    string `json:"password" validate:"required,min=8"`
}

// RegisterRecruiter creates a recruiter. Its free subscription is created
// lazily the first time billing-aware code asks for it.
func (s *AccountService) RegisterRecruiter(ctx context.Context, input RegisterRecruiterInput) (*model.Recruiter, error) {
	if err := s.validateInput(input); err != nil {
		return nil, err
	}
	email := normalizeEmail(input.Email)
	if err := s.ensureEmailFree(ctx, email); err != nil {
		return nil, err
	}

	hash, err := s.passwordHasher.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	recruiter := &model.Recruiter{
		Email:        email,
		Phone:        input.Phone,
		CompanyName:  input.CompanyName,
		PasswordHash: hash,
	}
	if err := s.recruiters.Create(ctx, recruiter); err != nil {
		return nil, fmt.Errorf("creating recruiter: %w", err)
	}
	return recruiter, nil
}

type RegisterJobSeekerInput struct {
	Email     string `json:"email" validate:"required,email"`
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name"`
	Password  string `json:"password" validate:"required,min=8"`
}

func (s *AccountService) RegisterJobSeeker(ctx context.Context, input RegisterJobSeekerInput) (*model.User, error) {
	if err := s.validateInput(input); err != nil {
		return nil, err
	}
	email := normalizeEmail(input.Email)
	if err := s.ensureEmailFree(ctx, email); err != nil {
		return nil, err
	}

	hash, err := s.passwordHasher.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	user := &model.User{
		Email:        email,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		PasswordHash: hash,
		Role:         model.UserRoleJobSeeker,
		Status:       model.StatusActive,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("creating user: %w", err)
	}
	return user, nil
}

type CreateAdminInput struct {
	Email    string `json:"email" validate:"required,email"`
	Name     string `json:"name" validate:"required"`
	Password string `json:"password" validate:"required,min=12"`
}

func (s *AccountService) CreateAdmin(ctx context.Context, input CreateAdminInput) (*model.Admin, error) {
	if err := s.validateInput(input); err != nil {
		return nil, err
	}
	email := normalizeEmail(input.Email)
	if err := s.ensureEmailFree(ctx, email); err != nil {
		return nil, err
	}

	hash, err := s.passwordHasher.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	admin := &model.Admin{Email: email, Name: input.Name, PasswordHash: hash}
	if err := s.admins.Create(ctx, admin); err != nil {
		return nil, fmt.Errorf("creating admin: %w", err)
	}
	return admin, nil
}

// ensureEmailFree keeps an email unique across all account kinds so login
// can never match two accounts.
func (s *AccountService) ensureEmailFree(ctx context.Context, email string) error {
	_, err := s.resolver.LookupByEmail(ctx, email)
	switch {
	case err == nil:
		return domain.ErrEmailAlreadyExists
	case errors.Is(err, domain.ErrAccountNotFound):
		return nil
	default:
		return err
	}
}

func (s *AccountService) validateInput(input any) error {
	if err := s.validate.Struct(input); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrInvalidInput, err)
	}
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
