// Package audit records who did what to which entity.
package audit

import (
	"context"
	"net"
	"net/http"

	"github.com/agriformation/backoffice/internal/model"
	"github.com/go-chi/chi/v5/middleware"
)

// Event is one staff action.
type Event struct {
	Action     string
	Actor      *model.Account
	EntityType string
	EntityID   string
	Context    map[string]interface{}
}

//go:generate mockgen -source=./logger.go -destination=../mocks/mock_logger.go -package=mocks Logger

// Logger defines the interface for auditing operations. Implementations must
// not fail the caller; delivery problems are theirs to report.
type Logger interface {
	Record(ctx context.Context, event Event)
}

// NoOpLogger is a logger that does nothing
type NoOpLogger struct{}

func (NoOpLogger) Record(context.Context, Event) {}

// RequestInfo is the HTTP metadata attached to audit entries.
type RequestInfo struct {
	RequestID string
	ClientIP  string
	UserAgent string
}

type requestInfoKey struct{}

// WithRequest stores r's metadata in ctx for later audit entries.
func WithRequest(ctx context.Context, r *http.Request) context.Context {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		ip = r.RemoteAddr
	}
	return context.WithValue(ctx, requestInfoKey{}, RequestInfo{
		RequestID: middleware.GetReqID(ctx),
		ClientIP:  ip,
		UserAgent: r.UserAgent(),
	})
}

// RequestFrom returns the metadata stored by WithRequest, if any.
func RequestFrom(ctx context.Context) RequestInfo {
	info, _ := ctx.Value(requestInfoKey{}).(RequestInfo)
	if info.RequestID == "" {
		info.RequestID = middleware.GetReqID(ctx)
	}
	return info
}
