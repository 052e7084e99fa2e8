// internal/domain/errors.go
package domain

import (
	"errors"
	"sort"
	"strings"
)

var (
	// General errors
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrForbidden    = errors.New("forbidden")
	ErrUpstream     = errors.New("upstream service failure")

	// Authentication errors
	ErrUnauthenticated    = errors.New("authentication required")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrTokenExpired       = errors.New("token expired")
	ErrAccountDeactivated = errors.New("account has been deactivated")
	ErrAccountNotFound    = errors.New("account not found")

	// Account errors
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrInvalidRole        = errors.New("invalid role")

	// Application errors
	ErrApplicationNotFound = errors.New("application not found")
	ErrDuplicatePending    = errors.New("a pending application already exists for this email")
	ErrInvalidDecision     = errors.New("decision must be accepted or rejected")

	// Volunteer errors
	ErrVolunteerNotFound = errors.New("volunteer profile not found")
	ErrInvalidStatus     = errors.New("invalid status")

	// Opportunity errors
	ErrCallNotFound            = errors.New("volunteer call not found")
	ErrCallApplicationNotFound = errors.New("call application not found")
	ErrMissingAsset            = errors.New("design image is required")
	ErrCallClosed              = errors.New("volunteer call is closed")
	ErrDeadlinePassed          = errors.New("application deadline has passed")
	ErrDuplicateApplicant      = errors.New("already applied for this opportunity")

	// Gallery and media errors
	ErrGalleryNotFound     = errors.New("gallery not found")
	ErrPhotoNotFound       = errors.New("photo not found")
	ErrNoFiles             = errors.New("no files uploaded")
	ErrFileTooLarge        = errors.New("file exceeds the 5MB limit")
	ErrUnsupportedFileType = errors.New("only JPEG, PNG and WebP images are allowed")

	// Low-level store errors translated by repositories
	ErrDuplicateKey = errors.New("duplicate key")
)

// ValidationError carries per-field messages for rejected input. It matches
// ErrInvalidInput under errors.Is.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return ErrInvalidInput.Error()
	}
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return ErrInvalidInput.Error() + ": " + strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}

// Invalid builds a single-field ValidationError.
func Invalid(field, msg string) error {
	return &ValidationError{Fields: map[string]string{field: msg}}
}
