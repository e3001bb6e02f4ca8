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
	"github.com/google/uuid"
)

type AccountKind string

const (
	KindJobSeeker  AccountKind = "jobseeker"
	KindRecruiter  AccountKind = "recruiter"
	KindTeamMember AccountKind = "team_member"
	KindAdmin      AccountKind = "admin"
)

// AccountRecord is one of JobSeekerAccount, RecruiterAccount,
// TeamMemberAccount or AdminAccount.
type AccountRecord interface {
	Kind() AccountKind
	AccountID() uuid.UUID
	passwordHash() string
}

// JobSeekerAccount comes from the shared user store, which also holds
// platform admins with role "admin".
type JobSeekerAccount struct{ User *model.User }

type RecruiterAccount struct{ Recruiter *model.Recruiter }

type TeamMemberAccount struct{ Member *model.TeamMember }

type AdminAccount struct{ Admin *model.Admin }

func (a JobSeekerAccount) Kind() AccountKind    { return KindJobSeeker }
func (a JobSeekerAccount) AccountID() uuid.UUID { return a.User.ID }
func (a JobSeekerAccount) passwordHash() string { return a.User.PasswordHash }

func (a RecruiterAccount) Kind() AccountKind    { return KindRecruiter }
func (a RecruiterAccount) AccountID() uuid.UUID { return a.Recruiter.ID }
func (a RecruiterAccount) passwordHash() string { return a.Recruiter.PasswordHash }

func (a TeamMemberAccount) Kind() AccountKind    { return KindTeamMember }
func (a TeamMemberAccount) AccountID() uuid.UUID { return a.Member.ID }
func (a TeamMemberAccount) passwordHash() string { return a.Member.PasswordHash }

func (a AdminAccount) Kind() AccountKind    { return KindAdmin }
func (a AdminAccount) AccountID() uuid.UUID { return a.Admin.ID }
func (a AdminAccount) passwordHash() string { return a.Admin.PasswordHash }

// accountStore looks up one account kind. Both lookups return domain.ErrNotFound
// (wrapped) when the kind holds no such account.
type accountStore struct {
	kind    AccountKind
	byID    func(ctx context.Context, id uuid.UUID) (AccountRecord, error)
	byEmail func(ctx context.Context, email string) (AccountRecord, error)
}

// AccountResolver turns a verified account id into a Principal by probing the
// account stores in a fixed order.
type AccountResolver struct {
	stores []accountStore
	logger *slog.Logger
}

func NewAccountResolver(
	users repository.UserRepositoryIface,
	recruiters repository.RecruiterRepositoryIface,
	members repository.TeamMemberRepositoryIface,
	admins repository.AdminRepositoryIface,
	logger *slog.Logger,
) *AccountResolver {
	return &AccountResolver{
		logger: logger,
		stores: []accountStore{
			{KindJobSeeker, lookup(users.FindByID, asJobSeeker), lookup(users.FindByEmail, asJobSeeker)},
			{KindRecruiter, lookup(recruiters.FindByID, asRecruiter), lookup(recruiters.FindByEmail, asRecruiter)},
			{KindTeamMember, lookup(members.FindByID, asTeamMember), lookup(members.FindByEmail, asTeamMember)},
			{KindAdmin, lookup(admins.FindByID, asAdmin), lookup(admins.FindByEmail, asAdmin)},
		},
	}
}

func asJobSeeker(u *model.User) AccountRecord        { return JobSeekerAccount{u} }
func asRecruiter(r *model.Recruiter) AccountRecord   { return RecruiterAccount{r} }
func asTeamMember(m *model.TeamMember) AccountRecord { return TeamMemberAccount{m} }
func asAdmin(a *model.Admin) AccountRecord           { return AdminAccount{a} }

// lookup adapts a typed repository finder to an account probe.
func lookup[K, T any](find func(context.Context, K) (*T, error), wrap func(*T) AccountRecord) func(context.Context, K) (AccountRecord, error) {
	return func(ctx context.Context, key K) (AccountRecord, error) {
		v, err := find(ctx, key)
		if err != nil {
			return nil, err
		}
		return wrap(v), nil
	}
}

// Lookup returns the first account with the given id. Later stores are not
// queried once one matches.
func (r *AccountResolver) Lookup(ctx context.Context, id uuid.UUID) (AccountRecord, error) {
	return r.probe(ctx, func(s accountStore) (AccountRecord, error) { return s.byID(ctx, id) })
}

// LookupByEmail probes the stores in the same order as Lookup.
func (r *AccountResolver) LookupByEmail(ctx context.Context, email string) (AccountRecord, error) {
	return r.probe(ctx, func(s accountStore) (AccountRecord, error) { return s.byEmail(ctx, email) })
}

func (r *AccountResolver) probe(ctx context.Context, find func(accountStore) (AccountRecord, error)) (AccountRecord, error) {
	for _, store := range r.stores {
		rec, err := find(store)
		if err == nil {
			return rec, nil
		}
		if !errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("probing %s accounts: %w", store.kind, err)
		}
	}
	return nil, domain.Policyf(domain.ErrAccountNotFound, "no account exists for this identity")
}

// Resolve looks up the account and builds its principal.
func (r *AccountResolver) Resolve(ctx context.Context, id uuid.UUID) (*auth.Principal, error) {
	rec, err := r.Lookup(ctx, id)
	if err != nil {
		return nil, err
	}

	p, err := PrincipalFor(rec)
	if err != nil {
		r.logger.Info("account resolved but refused",
			"account_id", id.String(),
			"kind", rec.Kind(),
			"error", err,
		)
		return nil, err
	}
	return p, nil
}

// PrincipalFor normalizes an account record. Team members that are not active
// are refused.
func PrincipalFor(rec AccountRecord) (*auth.Principal, error) {
	switch a := rec.(type) {
	case JobSeekerAccount:
		role, ok := auth.NormalizeRole(a.User.Role)
		if !ok || role != auth.RoleAdmin {
			role = auth.RoleUser
		}
		status := auth.PrincipalActive
		if a.User.Status != model.StatusActive {
			status = auth.PrincipalInactive
		}
		return &auth.Principal{ID: a.User.ID, Role: role, Status: status}, nil

	case RecruiterAccount:
		return &auth.Principal{
			ID:      a.Recruiter.ID,
			Role:    auth.RoleRecruiter,
			Company: a.Recruiter.ID,
			Status:  auth.PrincipalActive,
		}, nil

	case TeamMemberAccount:
		if a.Member.Status != model.MemberActive {
			return nil, domain.Policyf(domain.ErrForbidden, "team member account is %s", a.Member.Status)
		}
		return &auth.Principal{
			ID:          a.Member.ID,
			Role:        auth.RoleHRManager,
			Company:     a.Member.RecruiterID,
			Permissions: a.Member.Permissions.Set(),
			Status:      auth.PrincipalActive,
		}, nil

	case AdminAccount:
		return &auth.Principal{ID: a.Admin.ID, Role: auth.RoleAdmin, Status: auth.PrincipalActive}, nil

	default:
		return nil, fmt.Errorf("unsupported account record %T", rec)
	}
}
