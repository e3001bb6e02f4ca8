// internal/model/user.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserStatus string

const (
	StatusPending   UserStatus = "pending"
	StatusActive    UserStatus = "active"
	StatusInactive  UserStatus = "inactive"
	StatusSuspended UserStatus = "suspended"
)

// Stored roles of the shared user store. Job seekers and legacy admins live here.
const (
	UserRoleJobSeeker = "jobseeker"
	UserRoleUser      = "user"
	UserRoleAdmin     = "admin"
)

// User is a job seeker account. Older admin accounts share this table with a
// stored role of "admin".
type User struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Email        string     `gorm:"type:text;uniqueIndex;not null" json:"email"`
	FirstName    string     `gorm:"type:text;not null" json:"first_name"`
	LastName     string     `gorm:"type:text" json:"last_name"`
	PasswordHash string     `gorm:"type:text" json:"-"`
	Role         string     `gorm:"type:text;not null" json:"role"`
	Status       UserStatus `gorm:"type:text;not null" json:"status"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	assignID(&u.ID)
	if u.Role == "" {
		u.Role = UserRoleUser
	}
	if u.Status == "" {
		u.Status = StatusActive
	}
	return nil
}

// assignID gives new rows a random id so the schema does not depend on a
// database-side uuid generator.
func assignID(id *uuid.UUID) {
	if *id == uuid.Nil {
		*id = uuid.New()
	}
}
