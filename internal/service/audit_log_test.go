package service_test

import (
	"context"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/agriformation/backoffice/internal/audit"
	"github.com/agriformation/backoffice/internal/mocks"
	"github.com/agriformation/backoffice/internal/model"
	"github.com/agriformation/backoffice/internal/repository"
	"github.com/agriformation/backoffice/internal/service"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestAuditService_Record(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockAuditLogRepositoryIface(ctrl)
	svc := service.NewAuditService(repo)

	actor := &model.Account{ID: uuid.New(), Role: model.RoleAdmin}
	req := httptest.NewRequest("POST", "/api/admin/galleries", nil)
	req.RemoteAddr = "10.0.0.7:51234"
	req.Header.Set("User-Agent", "curator/1.0")
	ctx := audit.WithRequest(context.Background(), req)

	var got *model.AuditLog
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, entry *model.AuditLog) error {
		got = entry
		return nil
	})

	svc.Record(ctx, audit.Event{
		Action:     model.ActionAccountRoleChange,
		Actor:      actor,
		EntityType: "account",
		EntityID:   "abc",
		Context:    map[string]interface{}{"to": "admin"},
	})

	require.NotNil(t, got)
	assert.Equal(t, model.ActionAccountRoleChange, got.Action)
	require.NotNil(t, got.ActorID)
	assert.Equal(t, actor.ID, *got.ActorID)
	assert.Equal(t, model.RoleAdmin, got.ActorRole)
	assert.Equal(t, "10.0.0.7", got.ClientIP)
	assert.Equal(t, "curator/1.0", got.UserAgent)
	assert.Equal(t, "admin", got.Context["to"])
	assert.False(t, got.Timestamp.IsZero())
}

func TestAuditService_RecordSwallowsStoreErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockAuditLogRepositoryIface(ctrl)
	svc := service.NewAuditService(repo)

	repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("connection reset"))

	assert.NotPanics(t, func() {
		svc.Record(context.Background(), audit.Event{Action: model.ActionAccountRegister, EntityType: "account"})
	})
}

func TestAuditService_Query(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockAuditLogRepositoryIface(ctrl)
	svc := service.NewAuditService(repo)

	repo.EXPECT().Query(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, q repository.AuditQuery) ([]model.AuditLog, int64, error) {
		assert.Equal(t, 1, q.Page.Number)
		assert.Equal(t, repository.DefaultPageSize, q.Page.Size)
		assert.Equal(t, "account", q.EntityType)
		return nil, 25, nil
	})

	page, err := svc.Query(context.Background(), repository.AuditQuery{EntityType: "account"})
	require.NoError(t, err)
	assert.Empty(t, page.Items)
	assert.NotNil(t, page.Items)
	assert.Equal(t, int64(25), page.Total)
	assert.Equal(t, 3, page.TotalPages)
	assert.Equal(t, 1, page.CurrentPage)
}
