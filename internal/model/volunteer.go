// internal/model/volunteer.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type VolunteerStatus string

const (
	VolunteerPending  VolunteerStatus = "pending"
	VolunteerApproved VolunteerStatus = "approved"
	VolunteerRejected VolunteerStatus = "rejected"
	VolunteerOnHold   VolunteerStatus = "on-hold"
)

func (s VolunteerStatus) Valid() bool {
	switch s {
	case VolunteerPending, VolunteerApproved, VolunteerRejected, VolunteerOnHold:
		return true
	}
	return false
}

type Availability string

const (
	AvailabilityWeekdays Availability = "weekdays"
	AvailabilityWeekends Availability = "weekends"
	AvailabilityBoth     Availability = "both"
	AvailabilityFlexible Availability = "flexible"
)

type AssignmentStatus string

const (
	AssignmentActive    AssignmentStatus = "active"
	AssignmentCompleted AssignmentStatus = "completed"
	AssignmentPaused    AssignmentStatus = "paused"
)

// Location is stored as JSONB on the profile row.
type Location struct {
	State string `json:"state,omitempty"`
	LGA   string `json:"lga,omitempty"`
}

// VolunteerProfile is the operational record of an approved volunteer. It owns the
// relationship to Account; accounts never reference their profile.
type VolunteerProfile struct {
	ID               uuid.UUID                    `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	AccountID        uuid.UUID                    `gorm:"type:uuid;not null;uniqueIndex" json:"accountId"`
	PreferredRole    string                       `gorm:"type:text;not null" json:"preferredRole"`
	Statement        string                       `gorm:"type:text;not null" json:"aboutYourself"`
	Skills           pq.StringArray               `gorm:"type:text[];not null;default:'{}'" json:"skills"`
	Availability     Availability                 `gorm:"type:text" json:"availability,omitempty"`
	Location         datatypes.JSONType[Location] `gorm:"type:jsonb" json:"location"`
	Status           VolunteerStatus              `gorm:"type:text;not null;default:'pending';index" json:"status"`
	ReviewedByID     *uuid.UUID                   `gorm:"type:uuid" json:"reviewedBy,omitempty"`
	ReviewedAt       *time.Time                   `json:"reviewedAt,omitempty"`
	ReviewNotes      string                       `gorm:"type:text" json:"reviewNotes,omitempty"`
	HoursContributed float64                      `gorm:"not null;default:0" json:"hoursContributed"`
	CreatedAt        time.Time                    `json:"createdAt"`
	UpdatedAt        time.Time                    `json:"updatedAt"`

	Account     *Account              `gorm:"foreignKey:AccountID" json:"user,omitempty"`
	Assignments []VolunteerAssignment `gorm:"foreignKey:ProfileID" json:"assignedPrograms"`
}

// BeforeCreate hook for VolunteerProfile
func (p *VolunteerProfile) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if p.Skills == nil {
		p.Skills = pq.StringArray{}
	}
	return nil
}

type VolunteerAssignment struct {
	ID          uuid.UUID        `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	ProfileID   uuid.UUID        `gorm:"type:uuid;not null;index" json:"-"`
	ProgramName string           `gorm:"type:text;not null" json:"programName"`
	Role        string           `gorm:"type:text" json:"role"`
	StartDate   *time.Time       `json:"startDate,omitempty"`
	EndDate     *time.Time       `json:"endDate,omitempty"`
	Status      AssignmentStatus `gorm:"type:text;not null;default:'active'" json:"status"`
	CreatedAt   time.Time        `json:"createdAt"`
}

// BeforeCreate hook for VolunteerAssignment
func (a *VolunteerAssignment) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
