package audit

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
)

func TestWithRequest(t *testing.T) {
	tests := []struct {
		remote string
		want   string
	}{
		{"203.0.113.7:54321", "203.0.113.7"},
		{"[2001:db8::1]:443", "2001:db8::1"},
		{"203.0.113.7", "203.0.113.7"},
	}
	for _, tt := range tests {
		t.Run(tt.remote, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodPost, "/api/admin/galleries", nil)
			r.RemoteAddr = tt.remote
			r.Header.Set("User-Agent", "curl/8.0")
			ctx := context.WithValue(r.Context(), middleware.RequestIDKey, "req-1")

			info := RequestFrom(WithRequest(ctx, r))
			assert.Equal(t, tt.want, info.ClientIP)
			assert.Equal(t, "curl/8.0", info.UserAgent)
			assert.Equal(t, "req-1", info.RequestID)
		})
	}
}

func TestRequestFromEmptyContext(t *testing.T) {
	assert.Equal(t, RequestInfo{}, RequestFrom(context.Background()))
	NoOpLogger{}.Record(context.Background(), Event{Action: "noop"})
}
