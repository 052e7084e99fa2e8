// internal/model/opportunity.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CallStatus string

const (
	CallDraft     CallStatus = "draft"
	CallOpen      CallStatus = "open"
	CallClosed    CallStatus = "closed"
	CallCancelled CallStatus = "cancelled"
)

func (s CallStatus) Valid() bool {
	switch s {
	case CallDraft, CallOpen, CallClosed, CallCancelled:
		return true
	}
	return false
}

type CallCategory string

const (
	CallCategoryFarmWork          CallCategory = "farm_work"
	CallCategoryEventSupport      CallCategory = "event_support"
	CallCategoryCommunityOutreach CallCategory = "community_outreach"
	CallCategoryTraining          CallCategory = "training"
	CallCategoryWorkshop          CallCategory = "workshop"
	CallCategoryOther             CallCategory = "other"
)

type CallApplicationStatus string

const (
	CallApplicationPending  CallApplicationStatus = "pending"
	CallApplicationAccepted CallApplicationStatus = "accepted"
	CallApplicationRejected CallApplicationStatus = "rejected"
)

func (s CallApplicationStatus) Valid() bool {
	switch s {
	case CallApplicationPending, CallApplicationAccepted, CallApplicationRejected:
		return true
	}
	return false
}

// VolunteerCall is a staff-authored posting asking for volunteers. Publishing a draft
// moves it to open; the two fields are otherwise independent.
type VolunteerCall struct {
	ID                  uuid.UUID    `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Title               string       `gorm:"type:text;not null" json:"title"`
	Description         string       `gorm:"type:text;not null" json:"description"`
	Requirements        string       `gorm:"type:text;not null" json:"requirements"`
	DesignImageURL      string       `gorm:"type:text;not null" json:"designImageUrl"`
	DesignImagePublicID string       `gorm:"type:text;not null" json:"designImagePublicId"`
	EventDate           time.Time    `gorm:"not null;index:idx_calls_event_date,sort:desc" json:"eventDate"`
	Location            string       `gorm:"type:text;not null" json:"location"`
	NumberOfVolunteers  int          `gorm:"not null" json:"numberOfVolunteers"`
	Deadline            time.Time    `gorm:"not null;index:idx_calls_status_published_deadline,priority:3" json:"deadline"`
	Category            CallCategory `gorm:"type:text;not null;default:'other'" json:"category"`
	Status              CallStatus   `gorm:"type:text;not null;default:'draft';index:idx_calls_status_published_deadline,priority:1" json:"status"`
	IsPublished         bool         `gorm:"not null;default:false;index:idx_calls_status_published_deadline,priority:2" json:"isPublished"`
	ViewCount           int64        `gorm:"not null;default:0" json:"viewCount"`
	CreatedByID         uuid.UUID    `gorm:"type:uuid;not null" json:"createdBy"`
	LastUpdatedByID     *uuid.UUID   `gorm:"type:uuid" json:"lastUpdatedBy,omitempty"`
	CreatedAt           time.Time    `json:"createdAt"`
	UpdatedAt           time.Time    `json:"updatedAt"`

	Applications []CallApplication `gorm:"foreignKey:CallID" json:"applications,omitempty"`
}

func (VolunteerCall) TableName() string {
	return "volunteer_calls"
}

// BeforeCreate hook for VolunteerCall
func (c *VolunteerCall) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	if c.Status == "" {
		c.Status = CallDraft
	}
	if c.Category == "" {
		c.Category = CallCategoryOther
	}
	return nil
}

// CallApplication is one applicant's entry on a volunteer call. (call_id, email) is unique.
type CallApplication struct {
	ID          uuid.UUID             `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	CallID      uuid.UUID             `gorm:"type:uuid;not null;uniqueIndex:idx_call_applications_call_email,priority:1" json:"callId"`
	AccountID   *uuid.UUID            `gorm:"type:uuid" json:"user,omitempty"`
	FullName    string                `gorm:"type:text;not null" json:"fullName"`
	Email       string                `gorm:"type:citext;not null;uniqueIndex:idx_call_applications_call_email,priority:2" json:"email"`
	PhoneNumber string                `gorm:"type:text" json:"phoneNumber,omitempty"`
	Message     string                `gorm:"type:text" json:"message,omitempty"`
	Status      CallApplicationStatus `gorm:"type:text;not null;default:'pending'" json:"status"`
	AppliedAt   time.Time             `gorm:"not null" json:"appliedAt"`
}

func (CallApplication) TableName() string {
	return "volunteer_call_applications"
}

// BeforeCreate hook for CallApplication
func (a *CallApplication) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	if a.Status == "" {
		a.Status = CallApplicationPending
	}
	if a.AppliedAt.IsZero() {
		a.AppliedAt = time.Now().UTC()
	}
	return nil
}
