package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MemberStatus string

const (
	MemberActive  MemberStatus = "active"
	MemberPaused  MemberStatus = "paused"
	MemberPending MemberStatus = "pending"
)

// Stored team member roles.
const (
	TeamRoleHRManager  = "HR Manager"
	TeamRoleRecruiter  = "recruiter"
	TeamRoleTeamMember = "team_member"
)

// RoleClass buckets team roles for quota purposes.
type RoleClass int

const (
	RoleClassUnknown RoleClass = iota
	RoleClassManager
	RoleClassTeamMember
)

func (c RoleClass) String() string {
	switch c {
	case RoleClassManager:
		return "manager"
	case RoleClassTeamMember:
		return "team member"
	default:
		return "unknown"
	}
}

// Roles returns the stored role strings belonging to the class.
func (c RoleClass) Roles() []string {
	switch c {
	case RoleClassManager:
		return []string{TeamRoleHRManager, TeamRoleRecruiter}
	case RoleClassTeamMember:
		return []string{TeamRoleTeamMember}
	default:
		return nil
	}
}

// ClassifyTeamRole maps a stored team role to its class.
func ClassifyTeamRole(role string) RoleClass {
	switch role {
	case TeamRoleHRManager, TeamRoleRecruiter:
		return RoleClassManager
	case TeamRoleTeamMember:
		return RoleClassTeamMember
	default:
		return RoleClassUnknown
	}
}

// Named team permissions, as used by route guards.
const (
	PermManageJobs           = "canManageJobs"
	PermManageApplications   = "canManageApplications"
	PermViewAnalytics        = "canViewAnalytics"
	PermViewApprovals        = "canViewApprovals"
	PermManageCompanyProfile = "canManageCompanyProfile"
)

// TeamMember belongs to exactly one recruiter.
type TeamMember struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	RecruiterID  uuid.UUID       `gorm:"type:uuid;not null;index" json:"recruiter_id"`
	Email        string          `gorm:"type:text;uniqueIndex;not null" json:"email"`
	Name         string          `gorm:"type:text" json:"name"`
	PasswordHash string          `gorm:"type:text" json:"-"`
	Role         string          `gorm:"type:text;not null" json:"role"`
	Status       MemberStatus    `gorm:"type:text;not null;index" json:"status"`
	Permissions  TeamPermissions `gorm:"embedded;embeddedPrefix:perm_" json:"permissions"`
	CreatedAt    time.Time       `gorm:"index" json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

type TeamPermissions struct {
	CanManageJobs           bool `json:"canManageJobs"`
	CanManageApplications   bool `json:"canManageApplications"`
	CanViewAnalytics        bool `json:"canViewAnalytics"`
	CanViewApprovals        bool `json:"canViewApprovals"`
	CanManageCompanyProfile bool `json:"canManageCompanyProfile"`
}

// Set returns the names of the granted permissions.
func (p TeamPermissions) Set() map[string]bool {
	set := make(map[string]bool, 5)
	for name, granted := range map[string]bool{
		PermManageJobs:           p.CanManageJobs,
		PermManageApplications:   p.CanManageApplications,
		PermViewAnalytics:        p.CanViewAnalytics,
		PermViewApprovals:        p.CanViewApprovals,
		PermManageCompanyProfile: p.CanManageCompanyProfile,
	} {
		if granted {
			set[name] = true
		}
	}
	return set
}

func (m *TeamMember) BeforeCreate(tx *gorm.DB) error {
	assignID(&m.ID)
	if m.Status == "" {
		m.Status = MemberPending
	}
	return nil
}
