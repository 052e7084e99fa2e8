// internal/repository/audit_log.go
package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/agriformation/backoffice/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AuditQuery holds parameters for querying audit logs
type AuditQuery struct {
	Action     string
	EntityType string
	EntityID   string
	ActorID    *uuid.UUID
	StartTime  time.Time
	EndTime    time.Time
	Page       Page
}

type AuditLogRepositoryIface interface {
	Create(ctx context.Context, entry *model.AuditLog) error
	Query(ctx context.Context, q AuditQuery) ([]model.AuditLog, int64, error)
}

type AuditLogRepository struct {
	db *gorm.DB
}

func NewAuditLogRepository(db *gorm.DB) *AuditLogRepository {
	return &AuditLogRepository{db: db}
}

func (r *AuditLogRepository) Create(ctx context.Context, entry *model.AuditLog) error {
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now().UTC()
	}

	if err := r.db.WithContext(ctx).Create(entry).Error; err != nil {
		return fmt.Errorf("failed to create audit log: %w", err)
	}
	return nil
}

// Query returns matching entries newest first.
func (r *AuditLogRepository) Query(ctx context.Context, q AuditQuery) ([]model.AuditLog, int64, error) {
	var logs []model.AuditLog
	var count int64

	query := r.db.WithContext(ctx).Model(&model.AuditLog{})
	if q.Action != "" {
		query = query.Where("action = ?", q.Action)
	}
	if q.EntityType != "" {
		query = query.Where("entity_type = ?", q.EntityType)
	}
	if q.EntityID != "" {
		query = query.Where("entity_id = ?", q.EntityID)
	}
	if q.ActorID != nil {
		query = query.Where("actor_id = ?", *q.ActorID)
	}
	if !q.StartTime.IsZero() {
		query = query.Where("timestamp >= ?", q.StartTime)
	}
	if !q.EndTime.IsZero() {
		query = query.Where("timestamp <= ?", q.EndTime)
	}

	if err := query.Count(&count).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count audit logs: %w", err)
	}

	if err := paginate(query, q.Page).Order("timestamp DESC").Find(&logs).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to query audit logs: %w", err)
	}

	return logs, count, nil
}
