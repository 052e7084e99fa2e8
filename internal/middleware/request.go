// internal/middleware/request.go
package middleware

import (
	"net/http"

	"github.com/agriformation/backoffice/internal/audit"
)

// AuditRequest records the request id, client address and user agent so
// audit entries written during the request carry them.
func AuditRequest(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(w, r.WithContext(audit.WithRequest(r.Context(), r)))
	})
}
