// internal/model/application.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ApplicationStatus string

const (
	ApplicationPending  ApplicationStatus = "pending"
	ApplicationAccepted ApplicationStatus = "accepted"
	ApplicationRejected ApplicationStatus = "rejected"
)

// Application is the initial interest submission made through the public form.
// At most one pending application may exist per email; the partial unique index is
// created by repository.Migrate.
type Application struct {
	ID            uuid.UUID         `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	FullName      string            `gorm:"type:text;not null" json:"fullName"`
	Email         string            `gorm:"type:citext;not null;index" json:"email"`
	PreferredRole string            `gorm:"type:text;not null" json:"preferredRole"`
	Statement     string            `gorm:"type:text;not null" json:"aboutYourself"`
	Status        ApplicationStatus `gorm:"type:text;not null;default:'pending';index" json:"status"`
	Notes         string            `gorm:"type:text" json:"notes,omitempty"`
	ProcessedByID *uuid.UUID        `gorm:"type:uuid" json:"processedBy,omitempty"`
	ProcessedAt   *time.Time        `json:"processedAt,omitempty"`
	ReviewCount   int               `gorm:"not null;default:0" json:"reviewCount"`
	CreatedAt     time.Time         `json:"createdAt"`
	UpdatedAt     time.Time         `json:"updatedAt"`
}

func (Application) TableName() string {
	return "volunteer_applications"
}

// BeforeCreate hook for Application
func (a *Application) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	if a.Status == "" {
		a.Status = ApplicationPending
	}
	return nil
}
