package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/anuj140/hireengine/internal/auth"
	"github.com/anuj140/hireengine/internal/domain"
	"github.com/anuj140/hireengine/internal/mocks"
	"github.com/anuj140/hireengine/internal/model"
	"github.com/anuj140/hireengine/internal/service"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type resolverMocks struct {
	users      *mocks.MockUserRepositoryIface
	recruiters *mocks.MockRecruiterRepositoryIface
	members    *mocks.MockTeamMemberRepositoryIface
	admins     *mocks.MockAdminRepositoryIface
}

func newResolver(t *testing.T) (*service.AccountResolver, resolverMocks) {
	ctrl := gomock.NewController(t)
	m := resolverMocks{
		users:      mocks.NewMockUserRepositoryIface(ctrl),
		recruiters: mocks.NewMockRecruiterRepositoryIface(ctrl),
		members:    mocks.NewMockTeamMemberRepositoryIface(ctrl),
		admins:     mocks.NewMockAdminRepositoryIface(ctrl),
	}
	return service.NewAccountResolver(m.users, m.recruiters, m.members, m.admins, testLogger()), m
}

func TestAccountResolver_Resolve(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()
	companyID := uuid.New()

	t.Run("job seeker", func(t *testing.T) {
		r, m := newResolver(t)
		m.users.EXPECT().FindByID(gomock.Any(), id).
			Return(&model.User{ID: id, Role: model.UserRoleJobSeeker, Status: model.StatusActive}, nil)

		p, err := r.Resolve(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, auth.RoleUser, p.Role)
		assert.Equal(t, auth.PrincipalActive, p.Status)
		assert.Equal(t, uuid.Nil, p.Company)
	})

	t.Run("admin stored in the user table", func(t *testing.T) {
		r, m := newResolver(t)
		m.users.EXPECT().FindByID(gomock.Any(), id).
			Return(&model.User{ID: id, Role: "Admin", Status: model.StatusActive}, nil)

		p, err := r.Resolve(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, auth.RoleAdmin, p.Role)
		assert.True(t, p.IsAdmin())
	})

	t.Run("suspended user resolves as inactive", func(t *testing.T) {
		r, m := newResolver(t)
		m.users.EXPECT().FindByID(gomock.Any(), id).
			Return(&model.User{ID: id, Role: model.UserRoleUser, Status: model.StatusSuspended}, nil)

		p, err := r.Resolve(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, auth.PrincipalInactive, p.Status)
	})

	t.Run("recruiter is its own company", func(t *testing.T) {
		r, m := newResolver(t)
		m.users.EXPECT().FindByID(gomock.Any(), id).Return(nil, domain.ErrUserNotFound)
		m.recruiters.EXPECT().FindByID(gomock.Any(), id).Return(&model.Recruiter{ID: id}, nil)

		p, err := r.Resolve(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, auth.RoleRecruiter, p.Role)
		assert.Equal(t, id, p.Company)
	})

	t.Run("active team member carries company and permissions", func(t *testing.T) {
		r, m := newResolver(t)
		m.users.EXPECT().FindByID(gomock.Any(), id).Return(nil, domain.ErrUserNotFound)
		m.recruiters.EXPECT().FindByID(gomock.Any(), id).Return(nil, domain.ErrRecruiterNotFound)
		m.members.EXPECT().FindByID(gomock.Any(), id).Return(&model.TeamMember{
			ID:          id,
			RecruiterID: companyID,
			Role:        model.TeamRoleTeamMember,
			Status:      model.MemberActive,
			Permissions: model.TeamPermissions{CanManageJobs: true},
		}, nil)

		p, err := r.Resolve(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, auth.RoleHRManager, p.Role)
		assert.Equal(t, companyID, p.Company)
		assert.True(t, p.Permissions[model.PermManageJobs])
		assert.False(t, p.Permissions[model.PermViewAnalytics])
	})

	for _, status := range []model.MemberStatus{model.MemberPaused, model.MemberPending} {
		t.Run("team member "+string(status)+" is refused", func(t *testing.T) {
			r, m := newResolver(t)
			m.users.EXPECT().FindByID(gomock.Any(), id).Return(nil, domain.ErrUserNotFound)
			m.recruiters.EXPECT().FindByID(gomock.Any(), id).Return(nil, domain.ErrRecruiterNotFound)
			m.members.EXPECT().FindByID(gomock.Any(), id).
				Return(&model.TeamMember{ID: id, RecruiterID: companyID, Status: status}, nil)

			p, err := r.Resolve(ctx, id)
			assert.Nil(t, p)
			assert.ErrorIs(t, err, domain.ErrForbidden)
			assert.Contains(t, domain.Message(err), string(status))
		})
	}

	t.Run("dedicated admin", func(t *testing.T) {
		r, m := newResolver(t)
		m.users.EXPECT().FindByID(gomock.Any(), id).Return(nil, domain.ErrUserNotFound)
		m.recruiters.EXPECT().FindByID(gomock.Any(), id).Return(nil, domain.ErrRecruiterNotFound)
		m.members.EXPECT().FindByID(gomock.Any(), id).Return(nil, domain.ErrTeamMemberNotFound)
		m.admins.EXPECT().FindByID(gomock.Any(), id).Return(&model.Admin{ID: id}, nil)

		p, err := r.Resolve(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, auth.RoleAdmin, p.Role)
	})

	t.Run("no account anywhere", func(t *testing.T) {
		r, m := newResolver(t)
		m.users.EXPECT().FindByID(gomock.Any(), id).Return(nil, domain.ErrUserNotFound)
		m.recruiters.EXPECT().FindByID(gomock.Any(), id).Return(nil, domain.ErrRecruiterNotFound)
		m.members.EXPECT().FindByID(gomock.Any(), id).Return(nil, domain.ErrTeamMemberNotFound)
		m.admins.EXPECT().FindByID(gomock.Any(), id).Return(nil, domain.ErrAdminNotFound)

		_, err := r.Resolve(ctx, id)
		assert.ErrorIs(t, err, domain.ErrAccountNotFound)
	})

	t.Run("store failure stops the probe", func(t *testing.T) {
		r, m := newResolver(t)
		dbErr := errors.New("connection refused")
		m.users.EXPECT().FindByID(gomock.Any(), id).Return(nil, dbErr)

		_, err := r.Resolve(ctx, id)
		assert.ErrorIs(t, err, dbErr)
		assert.NotErrorIs(t, err, domain.ErrAccountNotFound)
	})
}

func TestAccountResolver_LookupByEmail(t *testing.T) {
	r, m := newResolver(t)
	email := "ops@acme.test"
	member := &model.TeamMember{ID: uuid.New(), Email: email, Status: model.MemberPending}

	m.users.EXPECT().FindByEmail(gomock.Any(), email).Return(nil, domain.ErrUserNotFound)
	m.recruiters.EXPECT().FindByEmail(gomock.Any(), email).Return(nil, domain.ErrRecruiterNotFound)
	m.members.EXPECT().FindByEmail(gomock.Any(), email).Return(member, nil)

	rec, err := r.LookupByEmail(context.Background(), email)
	require.NoError(t, err)
	assert.Equal(t, service.KindTeamMember, rec.Kind())
	assert.Equal(t, member.ID, rec.AccountID())
}
