package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/agriformation/backoffice/internal/audit"
	"github.com/agriformation/backoffice/internal/model"
	"github.com/agriformation/backoffice/internal/repository"
	"gorm.io/datatypes"
)

// Ensure AuditService implements the audit.Logger interface
var _ audit.Logger = (*AuditService)(nil)

// AuditService persists staff actions to the audit log.
type AuditService struct {
	repo repository.AuditLogRepositoryIface
}

func NewAuditService(repo repository.AuditLogRepositoryIface) *AuditService {
	return &AuditService{repo: repo}
}

// Record writes event. A failed write is logged and otherwise ignored.
func (s *AuditService) Record(ctx context.Context, event audit.Event) {
	req := audit.RequestFrom(ctx)
	entry := &model.AuditLog{
		Timestamp:  time.Now().UTC(),
		Action:     event.Action,
		EntityType: event.EntityType,
		EntityID:   event.EntityID,
		Context:    datatypes.JSONMap(event.Context),
		RequestID:  req.RequestID,
		ClientIP:   req.ClientIP,
		UserAgent:  req.UserAgent,
	}
	if event.Actor != nil {
		entry.ActorID = &event.Actor.ID
		entry.ActorRole = event.Actor.Role
	}

	if err := s.repo.Create(ctx, entry); err != nil {
		slog.ErrorContext(ctx, "failed to write audit log",
			"error", err,
			"action", event.Action,
			"entityType", event.EntityType,
			"entityID", event.EntityID,
			"requestID", req.RequestID,
		)
	}
}

// Query lists audit entries newest first.
func (s *AuditService) Query(ctx context.Context, q repository.AuditQuery) (*Page[model.AuditLog], error) {
	q.Page = q.Page.Normalize(repository.DefaultPageSize)
	logs, total, err := s.repo.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	return newPage(logs, total, q.Page), nil
}
