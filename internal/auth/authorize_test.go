package auth_test

import (
	"testing"

	"github.com/anuj140/hireengine/internal/auth"
	"github.com/anuj140/hireengine/internal/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestNormalizeRole(t *testing.T) {
	tests := []struct {
		raw  string
		want auth.Role
		ok   bool
	}{
		{"user", auth.RoleUser, true},
		{"jobseeker", auth.RoleUser, true},
		{"Recruiter", auth.RoleRecruiter, true},
		{"recruiter", auth.RoleRecruiter, true},
		{"HR Manager", auth.RoleHRManager, true},
		{"hr  manager", auth.RoleHRManager, true},
		{"team_member", auth.RoleHRManager, true},
		{"Admin", auth.RoleAdmin, true},
		{"superuser", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, ok := auth.NormalizeRole(tt.raw)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAuthorize(t *testing.T) {
	principal := func(role auth.Role) *auth.Principal {
		return &auth.Principal{ID: uuid.New(), Role: role, Status: auth.PrincipalActive}
	}

	t.Run("hr manager passes recruiter routes", func(t *testing.T) {
		assert.NoError(t, auth.Authorize(principal(auth.RoleHRManager), "recruiter"))
	})

	t.Run("raw team_member role passes recruiter routes", func(t *testing.T) {
		assert.NoError(t, auth.Authorize(principal("team_member"), "Recruiter"))
	})

	t.Run("jobseeker passes user routes", func(t *testing.T) {
		assert.NoError(t, auth.Authorize(principal("jobseeker"), "user"))
	})

	t.Run("user denied on admin routes", func(t *testing.T) {
		err := auth.Authorize(principal(auth.RoleUser), "Admin")
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("comparison ignores case and whitespace", func(t *testing.T) {
		assert.NoError(t, auth.Authorize(principal(auth.RoleHRManager), "hrmanager"))
		assert.NoError(t, auth.Authorize(principal(auth.RoleAdmin), " ADMIN "))
	})

	t.Run("any of several roles", func(t *testing.T) {
		assert.NoError(t, auth.Authorize(principal(auth.RoleAdmin), "recruiter", "admin"))
	})

	t.Run("aliases do not run in reverse", func(t *testing.T) {
		assert.ErrorIs(t, auth.Authorize(principal(auth.RoleRecruiter), "HR Manager"), domain.ErrForbidden)
		assert.ErrorIs(t, auth.Authorize(principal(auth.RoleUser), "jobseeker"), domain.ErrForbidden)
	})

	t.Run("admin is not a recruiter", func(t *testing.T) {
		assert.ErrorIs(t, auth.Authorize(principal(auth.RoleAdmin), "recruiter"), domain.ErrForbidden)
	})

	t.Run("nil principal", func(t *testing.T) {
		assert.ErrorIs(t, auth.Authorize(nil, "user"), domain.ErrUnauthenticated)
	})

	t.Run("no required roles", func(t *testing.T) {
		assert.ErrorIs(t, auth.Authorize(principal(auth.RoleAdmin)), domain.ErrForbidden)
	})
}

func TestRequirePermission(t *testing.T) {
	member := &auth.Principal{
		ID:          uuid.New(),
		Role:        auth.RoleHRManager,
		Permissions: map[string]bool{"canManageJobs": true},
	}

	assert.NoError(t, auth.RequirePermission(member, "canManageJobs"))
	assert.ErrorIs(t, auth.RequirePermission(member, "canViewAnalytics"), domain.ErrForbidden)
	assert.NoError(t, auth.RequirePermission(&auth.Principal{Role: auth.RoleRecruiter}, "canViewAnalytics"))
	assert.ErrorIs(t, auth.RequirePermission(&auth.Principal{Role: auth.RoleUser}, "canManageJobs"), domain.ErrForbidden)
	assert.ErrorIs(t, auth.RequirePermission(nil, "canManageJobs"), domain.ErrUnauthenticated)
}
