package service_test

import (
	"testing"
	"time"

	"github.com/anuj140/hireengine/internal/auth"
	"github.com/anuj140/hireengine/internal/domain"
	"github.com/anuj140/hireengine/internal/model"
	"github.com/anuj140/hireengine/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAccountService(f *fixture) (*service.AccountService, *auth.TokenManager) {
	resolver := service.NewAccountResolver(f.users, f.recruiters, f.members, f.admins, testLogger())
	tokens := auth.NewTokenManager("test-secret", "hireengine-test", time.Hour)
	return service.NewAccountService(resolver, f.users, f.recruiters, f.admins, auth.NewPasswordHasher(), tokens, testLogger()), tokens
}

func TestAccountService_RegisterAndLogin(t *testing.T) {
	f := newFixture(t)
	svc, tokens := newAccountService(f)

	recruiter, err := svc.RegisterRecruiter(f.ctx, service.RegisterRecruiterInput{
		Email:       "  Hiring@Acme.test ",
		CompanyName: "Acme",
		Password:    "correct horse",
	})
	require.NoError(t, err)
	assert.Equal(t, "hiring@acme.test", recruiter.Email)
	assert.NotEqual(t, "correct horse", recruiter.PasswordHash)

	out, err := svc.Login(f.ctx, service.LoginInput{Email: "hiring@acme.test", Password: "correct horse"})
	require.NoError(t, err)
	assert.Equal(t, service.KindRecruiter, out.Kind)
	assert.Equal(t, auth.RoleRecruiter, out.Role)

	id, err := tokens.Validate(out.Token)
	require.NoError(t, err)
	assert.Equal(t, recruiter.ID, id)
}

func TestAccountService_Login(t *testing.T) {
	f := newFixture(t)
	svc, _ := newAccountService(f)

	_, err := svc.RegisterJobSeeker(f.ctx, service.RegisterJobSeekerInput{
		Email:     "seeker@mail.test",
		FirstName: "Asha",
		Password:  "long enough",
	})
	require.NoError(t, err)

	t.Run("job seeker", func(t *testing.T) {
		out, err := svc.Login(f.ctx, service.LoginInput{Email: "seeker@mail.test", Password: "long enough"})
		require.NoError(t, err)
		assert.Equal(t, service.KindJobSeeker, out.Kind)
		assert.Equal(t, auth.RoleUser, out.Role)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(f.ctx, service.LoginInput{Email: "seeker@mail.test", Password: "nope"})
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := svc.Login(f.ctx, service.LoginInput{Email: "ghost@mail.test", Password: "whatever"})
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("malformed input", func(t *testing.T) {
		_, err := svc.Login(f.ctx, service.LoginInput{Email: "not-an-email"})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("pending team member is refused", func(t *testing.T) {
		hash, err := auth.NewPasswordHasher().Hash("member pass")
		require.NoError(t, err)
		r := f.createRecruiter(t)
		require.NoError(t, f.members.Create(f.ctx, &model.TeamMember{
			RecruiterID:  r.ID,
			Email:        "pending@acme.test",
			Name:         "Pending",
			PasswordHash: hash,
			Role:         model.TeamRoleTeamMember,
			Status:       model.MemberPending,
		}))

		_, err = svc.Login(f.ctx, service.LoginInput{Email: "pending@acme.test", Password: "member pass"})
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})
}

func TestAccountService_EmailUniqueAcrossKinds(t *testing.T) {
	f := newFixture(t)
	svc, _ := newAccountService(f)

	_, err := svc.RegisterJobSeeker(f.ctx, service.RegisterJobSeekerInput{
		Email:     "shared@mail.test",
		FirstName: "Sam",
		Password:  "long enough",
	})
	require.NoError(t, err)

	_, err = svc.RegisterRecruiter(f.ctx, service.RegisterRecruiterInput{
		Email:       "SHARED@mail.test",
		CompanyName: "Dup Co",
		Password:    "long enough",
	})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)

	_, err = svc.CreateAdmin(f.ctx, service.CreateAdminInput{
		Email:    "shared@mail.test",
		Name:     "Root",
		Password: "a very long password",
	})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestAccountService_CreateAdmin(t *testing.T) {
	f := newFixture(t)
	svc, _ := newAccountService(f)

	_, err := svc.CreateAdmin(f.ctx, service.CreateAdminInput{Email: "root@ops.test", Name: "Root", Password: "short"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	admin, err := svc.CreateAdmin(f.ctx, service.CreateAdminInput{Email: "root@ops.test", Name: "Root", Password: "a very long password"})
	require.NoError(t, err)

	out, err := svc.Login(f.ctx, service.LoginInput{Email: "root@ops.test", Password: "a very long password"})
	require.NoError(t, err)
	assert.Equal(t, service.KindAdmin, out.Kind)
	assert.Equal(t, auth.RoleAdmin, out.Role)
	assert.NotEqual(t, admin.PasswordHash, "a very long password")
}
