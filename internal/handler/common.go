package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/agriformation/backoffice/internal/domain"
	"github.com/agriformation/backoffice/internal/repository"
	"github.com/go-chi/chi/v5"
	chmw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

// maxJSONBody bounds JSON request bodies.
const maxJSONBody = 1 << 20

// Response is the envelope every endpoint answers with.
type Response struct {
	Success bool              `json:"success"`
	Message string            `json:"message,omitempty"`
	Data    interface{}       `json:"data,omitempty"`
	Errors  map[string]string `json:"errors,omitempty"`
}

// respondWithData sends a successful envelope
func respondWithData(w http.ResponseWriter, code int, message string, data interface{}) {
	respondWithJSON(w, code, Response{Success: true, Message: message, Data: data})
}

// respondWithError sends an error response with a message
func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, Response{Success: false, Message: message})
}

// respondWithJSON sends a JSON response
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

// statusFor maps a domain error to its HTTP status and client message.
func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrInvalidInput),
		errors.Is(err, domain.ErrMissingAsset),
		errors.Is(err, domain.ErrCallClosed),
		errors.Is(err, domain.ErrDeadlinePassed),
		errors.Is(err, domain.ErrNoFiles),
		errors.Is(err, domain.ErrFileTooLarge),
		errors.Is(err, domain.ErrUnsupportedFileType):
		return http.StatusBadRequest, err.Error()

	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, "Invalid email or password"
	case errors.Is(err, domain.ErrUnauthenticated),
		errors.Is(err, domain.ErrInvalidToken),
		errors.Is(err, domain.ErrTokenExpired),
		errors.Is(err, domain.ErrAccountDeactivated):
		return http.StatusUnauthorized, err.Error()

	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, "You are not allowed to perform this action"

	case errors.Is(err, domain.ErrNotFound),
		errors.Is(err, domain.ErrAccountNotFound),
		errors.Is(err, domain.ErrApplicationNotFound),
		errors.Is(err, domain.ErrVolunteerNotFound),
		errors.Is(err, domain.ErrCallNotFound),
		errors.Is(err, domain.ErrCallApplicationNotFound),
		errors.Is(err, domain.ErrGalleryNotFound),
		errors.Is(err, domain.ErrPhotoNotFound):
		return http.StatusNotFound, err.Error()

	case errors.Is(err, domain.ErrEmailAlreadyExists),
		errors.Is(err, domain.ErrDuplicatePending),
		errors.Is(err, domain.ErrDuplicateApplicant),
		errors.Is(err, domain.ErrDuplicateKey):
		return http.StatusConflict, err.Error()

	case errors.Is(err, domain.ErrUpstream):
		return http.StatusBadGateway, "Media service is unavailable, please retry"
	}
	return http.StatusInternalServerError, "Internal server error"
}

// handleError logs err and writes the matching envelope. Validation failures
// carry their field messages.
func handleError(w http.ResponseWriter, r *http.Request, op string, err error) {
	code, message := statusFor(err)
	if code >= http.StatusInternalServerError {
		slog.ErrorContext(r.Context(), op+" failed", "error", err, "requestID", chmw.GetReqID(r.Context()))
	} else {
		slog.DebugContext(r.Context(), op+" rejected", "error", err, "requestID", chmw.GetReqID(r.Context()))
	}

	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		respondWithJSON(w, code, Response{Success: false, Message: "Validation failed", Errors: verr.Fields})
		return
	}
	respondWithError(w, code, message)
}

// decodeJSON reads a JSON body into v.
func decodeJSON(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	defer r.Body.Close()
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxJSONBody)).Decode(v); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return false
	}
	return true
}

// uuidParam parses the named chi URL parameter.
func uuidParam(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid "+name)
		return uuid.Nil, false
	}
	return id, true
}

// parseUUID parses a body field holding an id.
func parseUUID(field, v string) (uuid.UUID, error) {
	id, err := uuid.Parse(v)
	if err != nil {
		return uuid.Nil, domain.Invalid(field, "must be a valid id")
	}
	return id, nil
}

// parsePage reads page and limit query parameters. Normalization happens in
// the services.
func parsePage(r *http.Request) repository.Page {
	q := r.URL.Query()
	number, _ := strconv.Atoi(q.Get("page"))
	size, _ := strconv.Atoi(q.Get("limit"))
	return repository.Page{Number: number, Size: size}
}

// parseBool reads an optional boolean query parameter.
func parseBool(r *http.Request, name string) *bool {
	v, err := strconv.ParseBool(r.URL.Query().Get(name))
	if err != nil {
		return nil
	}
	return &v
}
