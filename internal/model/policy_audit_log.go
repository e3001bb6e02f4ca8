package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PolicyAuditLog records a denied (or, when enabled, allowed) policy decision.
type PolicyAuditLog struct {
	ID          uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	Timestamp   time.Time  `json:"timestamp" gorm:"index"`
	ActionType  string     `json:"action_type" gorm:"type:text;index"`
	Allowed     bool       `json:"allowed"`
	SubjectRole string     `json:"subject_role" gorm:"type:text"`
	SubjectID   string     `json:"subject_id" gorm:"type:text;index"`
	RecruiterID *uuid.UUID `json:"recruiter_id,omitempty" gorm:"type:uuid;index"`
	Rule        string     `json:"rule" gorm:"type:text"`
	Reason      string     `json:"reason" gorm:"type:text"`
	Context     JSONMap    `json:"context" gorm:"type:jsonb"`
	RequestID   string     `json:"request_id" gorm:"type:text"`
	ClientIP    string     `json:"client_ip" gorm:"type:text"`
	UserAgent   string     `json:"user_agent" gorm:"type:text"`
	CreatedAt   time.Time  `json:"created_at"`
}

func (PolicyAuditLog) TableName() string {
	return "policy_audit_logs"
}

func (l *PolicyAuditLog) BeforeCreate(tx *gorm.DB) error {
	assignID(&l.ID)
	if l.Timestamp.IsZero() {
		l.Timestamp = time.Now().UTC()
	}
	return nil
}

// JSONMap represents a generic map stored as JSONB in the database
type JSONMap map[string]interface{}

// Value implements the driver.Valuer interface for JSONMap
func (m JSONMap) Value() (driver.Value, error) {
	if m == nil {
		return nil, nil
	}
	b, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements the sql.Scanner interface for JSONMap
func (m *JSONMap) Scan(value interface{}) error {
	if value == nil {
		*m = make(JSONMap)
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New("type assertion failed: failed to decode JSONB")
	}

	return json.Unmarshal(bytes, m)
}

// Audit action types
const (
	ActionAuthorization = "authorization"
	ActionQuotaCheck    = "quota_check"
	ActionPlanAssigned  = "plan_assigned"
)
