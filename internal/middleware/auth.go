// internal/middleware/auth.go
package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/agriformation/backoffice/internal/auth"
	"github.com/agriformation/backoffice/internal/domain"
	"github.com/agriformation/backoffice/internal/model"
	chimw "github.com/go-chi/chi/v5/middleware"
)

type accountContextKey struct{}

// Authenticator resolves a bearer token to a live account.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*model.Account, error)
}

// WithAccount stores the authenticated account in ctx.
func WithAccount(ctx context.Context, account *model.Account) context.Context {
	return context.WithValue(ctx, accountContextKey{}, account)
}

// AccountFromContext returns the account set by Authenticate or OptionalAuth,
// or nil for anonymous requests.
func AccountFromContext(ctx context.Context) *model.Account {
	account, _ := ctx.Value(accountContextKey{}).(*model.Account)
	return account
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", false
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
		return "", false
	}
	return strings.TrimSpace(parts[1]), true
}

func authFailureMessage(err error) string {
	switch {
	case errors.Is(err, domain.ErrTokenExpired):
		return "Token expired"
	case errors.Is(err, domain.ErrAccountDeactivated):
		return "Account has been deactivated"
	case errors.Is(err, domain.ErrAccountNotFound):
		return "Account no longer exists"
	default:
		return "Invalid token"
	}
}

// Authenticate creates a middleware that rejects requests without a valid
// bearer token of an active account.
func Authenticate(authenticator Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r)
			if !ok {
				respondWithError(w, http.StatusUnauthorized, "Not authorized, no token")
				return
			}

			account, err := authenticator.Authenticate(r.Context(), token)
			if err != nil {
				if !isAuthFailure(err) {
					slog.ErrorContext(r.Context(), "authentication lookup failed", "error", err, "requestID", chimw.GetReqID(r.Context()))
					respondWithError(w, http.StatusInternalServerError, "Internal server error")
					return
				}
				respondWithError(w, http.StatusUnauthorized, authFailureMessage(err))
				return
			}

			next.ServeHTTP(w, r.WithContext(WithAccount(r.Context(), account)))
		})
	}
}

// OptionalAuth attaches the account when a valid token is present and lets
// every request through.
func OptionalAuth(authenticator Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if token, ok := bearerToken(r); ok {
				if account, err := authenticator.Authenticate(r.Context(), token); err == nil {
					r = r.WithContext(WithAccount(r.Context(), account))
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireRoles rejects accounts whose role is not in roles.
func RequireRoles(roles ...model.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			account := AccountFromContext(r.Context())
			switch err := auth.Authorize(account, roles...); {
			case errors.Is(err, domain.ErrUnauthenticated):
				respondWithError(w, http.StatusUnauthorized, "Not authorized, no token")
				return
			case errors.Is(err, domain.ErrForbidden):
				respondWithError(w, http.StatusForbidden, "User role '"+string(account.Role)+"' is not authorized to access this route")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func isAuthFailure(err error) bool {
	return errors.Is(err, domain.ErrInvalidToken) ||
		errors.Is(err, domain.ErrTokenExpired) ||
		errors.Is(err, domain.ErrAccountDeactivated) ||
		errors.Is(err, domain.ErrAccountNotFound)
}

type errorEnvelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// respondWithError sends a JSON error response
func respondWithError(w http.ResponseWriter, code int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(errorEnvelope{Success: false, Message: message})
}
