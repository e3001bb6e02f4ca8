// internal/auth/principal.go
package auth

import (
	"context"
	"strings"
	"unicode"

	"github.com/google/uuid"
)

// Role is the canonical role vocabulary downstream checks compare against.
type Role string

const (
	RoleUser      Role = "user"
	RoleRecruiter Role = "Recruiter"
	RoleHRManager Role = "HR Manager"
	RoleAdmin     Role = "Admin"
)

// roleTable maps every stored role string, keyed by its normalized form, to
// its canonical role. Team-member sub-roles all collapse to HR Manager.
var roleTable = map[string]Role{
	"user":        RoleUser,
	"jobseeker":   RoleUser,
	"recruiter":   RoleRecruiter,
	"hrmanager":   RoleHRManager,
	"team_member": RoleHRManager,
	"admin":       RoleAdmin,
}

// NormalizeRole maps a raw stored role to the canonical vocabulary. Unknown
// roles report false.
func NormalizeRole(raw string) (Role, bool) {
	role, ok := roleTable[roleKey(raw)]
	return role, ok
}

// roleKey lowercases and strips all whitespace so "HR Manager" and "hrmanager"
// compare equal.
func roleKey(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsSpace(r) {
			continue
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}

type PrincipalStatus string

const (
	PrincipalActive   PrincipalStatus = "active"
	PrincipalInactive PrincipalStatus = "inactive"
)

// Principal is who is making the current request. It is built per request
// from the resolved account and never cached.
type Principal struct {
	ID          uuid.UUID
	Role        Role
	Company     uuid.UUID
	Permissions map[string]bool
	Status      PrincipalStatus
}

// IsAdmin reports whether the principal holds the admin role.
func (p *Principal) IsAdmin() bool {
	return p != nil && p.Role == RoleAdmin
}

// IsTeamMember reports whether the principal acts on behalf of a recruiter.
func (p *Principal) IsTeamMember() bool {
	return p != nil && p.Role == RoleHRManager
}

type principalKey struct{}

// WithPrincipal attaches the request principal to ctx.
func WithPrincipal(ctx context.Context, p *Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

// PrincipalFrom returns the request principal, or nil when none is attached.
func PrincipalFrom(ctx context.Context) *Principal {
	p, _ := ctx.Value(principalKey{}).(*Principal)
	return p
}
