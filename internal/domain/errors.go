// internal/domain/errors.go
package domain

import (
	"errors"
	"fmt"
)

var (
	// General errors
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")

	// Cache-related errors
	ErrCacheMiss = errors.New("cache miss")

	// Account-related errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrUserNotFound       = fmt.Errorf("user %w", ErrNotFound)
	ErrRecruiterNotFound  = fmt.Errorf("recruiter %w", ErrNotFound)
	ErrTeamMemberNotFound = fmt.Errorf("team member %w", ErrNotFound)
	ErrAdminNotFound      = fmt.Errorf("admin %w", ErrNotFound)
	ErrJobNotFound        = fmt.Errorf("job %w", ErrNotFound)

	// Subscription-related errors
	ErrPlanNotFound         = fmt.Errorf("subscription plan %w", ErrNotFound)
	ErrSubscriptionNotFound = fmt.Errorf("subscription %w", ErrNotFound)

	// Policy errors. Handlers translate these to HTTP status codes.
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrAccountNotFound = errors.New("account not found")
	ErrForbidden       = errors.New("forbidden")
	ErrNoSubscription  = errors.New("no active subscription")
	ErrExpired         = errors.New("subscription expired")
	ErrLimitExceeded   = errors.New("limit exceeded")
	ErrNotAllowed      = errors.New("not allowed for plan")
)

// PolicyError carries a user-facing message for one of the policy sentinels.
// errors.Is(err, ErrLimitExceeded) and friends match through Unwrap.
type PolicyError struct {
	Kind    error
	Message string
}

func (e *PolicyError) Error() string {
	if e.Message == "" {
		return e.Kind.Error()
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *PolicyError) Unwrap() error {
	return e.Kind
}

// Policyf builds a PolicyError of the given kind with a formatted message.
func Policyf(kind error, format string, args ...any) error {
	return &PolicyError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Message returns the user-facing message of a policy error, or the error text
// for anything else.
func Message(err error) string {
	var pe *PolicyError
	if errors.As(err, &pe) && pe.Message != "" {
		return pe.Message
	}
	return err.Error()
}

