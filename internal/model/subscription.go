package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FreePlanName is the catalog key of the fallback tier every recruiter gets.
const FreePlanName = "free"

// SubscriptionPlan is a catalog entry. Rows only change through seeding.
type SubscriptionPlan struct {
	ID          uuid.UUID    `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string       `gorm:"type:text;uniqueIndex;not null" json:"name"`
	DisplayName string       `gorm:"type:text" json:"display_name"`
	Price       float64      `json:"price"`
	Currency    string       `gorm:"type:text" json:"currency"`
	Duration    int          `json:"duration"` // days
	Features    PlanFeatures `gorm:"embedded;embeddedPrefix:feature_" json:"features"`
	IsActive    bool         `gorm:"index" json:"is_active"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

// PlanFeatures are the caps enforced against a subscription's usage.
// MaxActiveJobs nil means unlimited.
type PlanFeatures struct {
	MaxActiveJobs         *int `json:"maxActiveJobs"`
	JobValidityDays       int  `json:"jobValidityDays"`
	MaxDescriptionLength  int  `json:"maxDescriptionLength"`
	MaxJobLocations       int  `json:"maxJobLocations"`
	MaxApplicationsPerJob int  `json:"maxApplicationsPerJob"`
	MaxTeamMembers        int  `json:"maxTeamMembers"`
	MaxManagers           int  `json:"maxManagers"`
	CanAddTeamMembers     bool `json:"canAddTeamMembers"`
}

func (p *SubscriptionPlan) BeforeCreate(tx *gorm.DB) error {
	assignID(&p.ID)
	return nil
}

type SubscriptionStatus string

const (
	SubscriptionActive    SubscriptionStatus = "active"
	SubscriptionExpired   SubscriptionStatus = "expired"
	SubscriptionCancelled SubscriptionStatus = "cancelled"
)

const (
	PaymentPending   = "pending"
	PaymentCompleted = "completed"
	PaymentFailed    = "failed"
)

// Subscription binds a recruiter to a plan for a period. At most one active
// subscription per recruiter is kept by the subscription service, not the schema.
type Subscription struct {
	ID           uuid.UUID          `gorm:"type:uuid;primaryKey" json:"id"`
	RecruiterID  uuid.UUID          `gorm:"type:uuid;not null;index:idx_subscription_recruiter_status" json:"recruiter_id"`
	PlanID       uuid.UUID          `gorm:"type:uuid;not null" json:"plan_id"`
	Plan         *SubscriptionPlan  `gorm:"foreignKey:PlanID" json:"plan,omitempty"`
	Status       SubscriptionStatus `gorm:"type:text;not null;index:idx_subscription_recruiter_status" json:"status"`
	StartDate    time.Time          `json:"start_date"`
	EndDate      time.Time          `gorm:"index" json:"end_date"`
	AutoRenew    bool               `json:"auto_renew"`
	Payment      Payment            `gorm:"embedded;embeddedPrefix:payment_" json:"payment"`
	Usage        Usage              `gorm:"embedded;embeddedPrefix:usage_" json:"usage"`
	Cancellation Cancellation       `gorm:"embedded;embeddedPrefix:cancellation_" json:"cancellation"`
	CreatedAt    time.Time          `json:"created_at"`
	UpdatedAt    time.Time          `json:"updated_at"`
}

type Payment struct {
	Amount        float64 `json:"amount"`
	Currency      string  `gorm:"type:text" json:"currency"`
	PaymentStatus string  `gorm:"type:text" json:"payment_status"`
	TransactionID string  `gorm:"type:text" json:"transaction_id"`
}

type Usage struct {
	ActiveJobs        int `json:"activeJobs"`
	JobsPosted        int `json:"jobsPosted"`
	TotalApplications int `json:"totalApplications"`
	TeamMembersAdded  int `json:"teamMembersAdded"`
	ManagersAdded     int `json:"managersAdded"`
}

// Cancellation is only filled in when a subscription is superseded.
type Cancellation struct {
	CancelledAt *time.Time `json:"cancelled_at,omitempty"`
	CancelledBy string     `gorm:"type:text" json:"cancelled_by,omitempty"`
	Reason      string     `gorm:"type:text" json:"reason,omitempty"`
}

func (s *Subscription) BeforeCreate(tx *gorm.DB) error {
	assignID(&s.ID)
	return nil
}

// IsExpired reports whether the subscription period ended before now.
func (s *Subscription) IsExpired(now time.Time) bool {
	return s.EndDate.Before(now)
}
