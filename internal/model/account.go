// internal/model/account.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Role string

const (
	RoleVolunteer  Role = "volunteer"
	RoleAdmin      Role = "admin"
	RoleSuperadmin Role = "superadmin"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleVolunteer, RoleAdmin, RoleSuperadmin:
		return true
	}
	return false
}

type Account struct {
	ID           uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	FullName     string     `gorm:"type:text;not null" json:"fullName"`
	Email        string     `gorm:"type:citext;uniqueIndex;not null" json:"email"`
	PhoneNumber  string     `gorm:"type:text" json:"phoneNumber,omitempty"`
	PasswordHash string     `gorm:"type:text;not null" json:"-"`
	Role         Role       `gorm:"type:text;not null;default:'volunteer';index" json:"role"`
	IsActive     bool       `gorm:"not null;default:true" json:"isActive"`
	CreatedByID  *uuid.UUID `gorm:"type:uuid" json:"createdBy,omitempty"`
	LastLoginAt  *time.Time `json:"lastLogin,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

// BeforeCreate hook for Account
func (a *Account) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	if a.Role == "" {
		a.Role = RoleVolunteer
	}
	return nil
}

// AccountSummary is the public projection returned by the auth endpoints.
type AccountSummary struct {
	ID       uuid.UUID `json:"id"`
	FullName string    `json:"fullName"`
	Email    string    `json:"email"`
	Role     Role      `json:"role"`
}

func (a *Account) Summary() AccountSummary {
	return AccountSummary{
		ID:       a.ID,
		FullName: a.FullName,
		Email:    a.Email,
		Role:     a.Role,
	}
}
