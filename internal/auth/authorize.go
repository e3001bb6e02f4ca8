// internal/auth/authorize.go
package auth

import (
	"github.com/anuj140/hireengine/internal/domain"
)

// Authorize allows the principal when its role matches any of the required
// roles after normalization. Team members pass recruiter checks and job
// seekers pass user checks; nothing else is aliased.
func Authorize(p *Principal, required ...string) error {
	if p == nil {
		return domain.Policyf(domain.ErrUnauthenticated, "authentication required")
	}

	have := roleKey(string(p.Role))
	for _, r := range required {
		want := roleKey(r)
		switch {
		case want == "recruiter" && (have == "hrmanager" || have == "team_member"):
			return nil
		case want == "user" && have == "jobseeker":
			return nil
		case want == have:
			return nil
		}
	}

	return domain.Policyf(domain.ErrForbidden, "role %q is not permitted to access this resource", p.Role)
}

// RequirePermission checks a named team-member permission such as
// canManageJobs. Recruiters and admins hold every permission.
func RequirePermission(p *Principal, perm string) error {
	if p == nil {
		return domain.Policyf(domain.ErrUnauthenticated, "authentication required")
	}
	if !p.IsTeamMember() {
		if p.Role == RoleRecruiter || p.Role == RoleAdmin {
			return nil
		}
		return domain.Policyf(domain.ErrForbidden, "role %q has no %s permission", p.Role, perm)
	}
	if !p.Permissions[perm] {
		return domain.Policyf(domain.ErrForbidden, "missing permission %s", perm)
	}
	return nil
}
