// internal/model/audit_log.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// AuditLog records a staff action against an entity.
type AuditLog struct {
	ID           uuid.UUID         `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Timestamp    time.Time         `json:"timestamp" gorm:"not null;index:idx_audit_logs_timestamp,sort:desc"`
	Action       string            `json:"action" gorm:"type:text;not null;index"`
	ActorID      *uuid.UUID        `json:"actorId,omitempty" gorm:"type:uuid;index"`
	ActorRole    Role              `json:"actorRole,omitempty" gorm:"type:text"`
	EntityType   string            `json:"entityType" gorm:"type:text;not null;index:idx_audit_logs_entity,priority:1"`
	EntityID     string            `json:"entityId" gorm:"type:text;index:idx_audit_logs_entity,priority:2"`
	Context      datatypes.JSONMap `json:"context" gorm:"type:jsonb"`
	RequestID    string            `json:"requestId,omitempty" gorm:"type:text"`
	ClientIP     string            `json:"clientIp,omitempty" gorm:"type:text"`
	UserAgent    string            `json:"userAgent,omitempty" gorm:"type:text"`
	CreatedAt    time.Time         `json:"createdAt"`
}

func (AuditLog) TableName() string {
	return "audit_logs"
}

// Audit action names.
const (
	ActionApplicationSubmit    = "application.submit"
	ActionApplicationReview    = "application.review"
	ActionApplicationRereview  = "application.rereview"
	ActionAccountRegister      = "account.register"
	ActionAccountCreateAdmin   = "account.create_admin"
	ActionAccountRoleChange    = "account.role_change"
	ActionAccountToggleActive  = "account.toggle_active"
	ActionAccountResetPassword = "account.reset_password"
	ActionVolunteerStatus      = "volunteer.status"
	ActionVolunteerAssign      = "volunteer.assign"
	ActionCallCreate           = "call.create"
	ActionCallUpdate           = "call.update"
	ActionCallPublish          = "call.publish"
	ActionCallStatus           = "call.status"
	ActionCallDelete           = "call.delete"
	ActionCallApplicantStatus  = "call.applicant_status"
	ActionGalleryCreate        = "gallery.create"
	ActionGalleryUpdate        = "gallery.update"
	ActionGalleryPublish       = "gallery.publish"
	ActionGalleryDelete        = "gallery.delete"
	ActionGalleryPhotosAdd     = "gallery.photos_add"
	ActionGalleryPhotoDelete   = "gallery.photo_delete"
	ActionGalleryPhotoCaption  = "gallery.photo_caption"
	ActionGalleryReorder       = "gallery.reorder"
	ActionGalleryCover         = "gallery.cover"
)
