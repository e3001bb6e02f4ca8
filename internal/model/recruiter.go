package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Recruiter is the tenant root. A recruiter is its own company.
type Recruiter struct {
	ID           uuid.UUID           `gorm:"type:uuid;primaryKey" json:"id"`
	Email        string              `gorm:"type:text;uniqueIndex;not null" json:"email"`
	Phone        string              `gorm:"type:text" json:"phone"`
	CompanyName  string              `gorm:"type:text;not null" json:"company_name"`
	PasswordHash string              `gorm:"type:text" json:"-"`
	Subscription SubscriptionSummary `gorm:"embedded;embeddedPrefix:subscription_" json:"subscription"`
	CreatedAt    time.Time           `json:"created_at"`
	UpdatedAt    time.Time           `json:"updated_at"`
}

// SubscriptionSummary is a denormalized copy of the recruiter's current
// subscription, refreshed whenever a subscription is created.
type SubscriptionSummary struct {
	PlanName     string     `gorm:"type:text" json:"plan_name"`
	JobPostLimit *int       `json:"job_post_limit"`
	ExpiresAt    *time.Time `json:"expires_at"`
	IsPremium    bool       `json:"is_premium"`
}

func (r *Recruiter) BeforeCreate(tx *gorm.DB) error {
	assignID(&r.ID)
	return nil
}
