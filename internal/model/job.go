package model

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type JobStatus string

const (
	JobActive   JobStatus = "active"
	JobPaused   JobStatus = "paused"
	JobClosed   JobStatus = "closed"
	JobExpired  JobStatus = "expired"
	JobPending  JobStatus = "pending"
	JobRejected JobStatus = "rejected"
)

// Job is always owned by a recruiter. PostedByMember records the team member
// who posted it on the recruiter's behalf, if any.
type Job struct {
	ID             uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	PostedBy       uuid.UUID      `gorm:"type:uuid;not null;index:idx_job_owner_status" json:"posted_by"`
	PostedByMember *uuid.UUID     `gorm:"type:uuid" json:"posted_by_member,omitempty"`
	Title          string         `gorm:"type:text;not null" json:"title"`
	Description    string         `gorm:"type:text" json:"description"`
	Locations      datatypes.JSON `json:"locations"`
	Status         JobStatus      `gorm:"type:text;not null;index:idx_job_owner_status" json:"status"`
	MaxApplicants  int            `json:"max_applicants"`
	CreatedAt      time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

func (j *Job) BeforeCreate(tx *gorm.DB) error {
	assignID(&j.ID)
	if j.Status == "" {
		j.Status = JobActive
	}
	return nil
}

// LocationList decodes the stored locations column.
func (j *Job) LocationList() ([]string, error) {
	if len(j.Locations) == 0 {
		return nil, nil
	}
	var locations []string
	if err := json.Unmarshal(j.Locations, &locations); err != nil {
		return nil, fmt.Errorf("decoding job locations: %w", err)
	}
	return locations, nil
}

// SetLocations encodes locations into the JSON column.
func (j *Job) SetLocations(locations []string) error {
	if locations == nil {
		j.Locations = nil
		return nil
	}
	data, err := json.Marshal(locations)
	if err != nil {
		return fmt.Errorf("encoding job locations: %w", err)
	}
	j.Locations = datatypes.JSON(data)
	return nil
}
