// internal/handler/admin.go
package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/agriformation/backoffice/internal/middleware"
	"github.com/agriformation/backoffice/internal/model"
	"github.com/agriformation/backoffice/internal/repository"
	"github.com/agriformation/backoffice/internal/service"
	"github.com/google/uuid"
)

// AdminHandler serves the staff back office: application review, volunteer
// management, accounts and the audit trail.
type AdminHandler struct {
	applications *service.ApplicationService
	volunteers   *service.VolunteerService
	accounts     *service.AccountService
	audit        *service.AuditService
}

func NewAdminHandler(
	applications *service.ApplicationService,
	volunteers *service.VolunteerService,
	accounts *service.AccountService,
	audit *service.AuditService,
) *AdminHandler {
	return &AdminHandler{
		applications: applications,
		volunteers:   volunteers,
		accounts:     accounts,
		audit:        audit,
	}
}

func (h *AdminHandler) ListApplications(w http.ResponseWriter, r *http.Request) {
	status := model.ApplicationStatus(r.URL.Query().Get("status"))

	page, err := h.applications.List(r.Context(), status, parsePage(r))
	if err != nil {
		handleError(w, r, "list applications", err)
		return
	}

	respondWithData(w, http.StatusOK, "", page)
}

func (h *AdminHandler) ReviewApplication(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}
	var input service.ReviewInput
	if !decodeJSON(w, r, &input) {
		return
	}

	out, err := h.applications.Review(r.Context(), id, input, middleware.AccountFromContext(r.Context()))
	if err != nil {
		handleError(w, r, "review application", err)
		return
	}

	message := "Application " + string(out.Application.Status)
	if out.TemporaryPassword != "" {
		message += "; share the temporary password with the volunteer"
	}
	respondWithData(w, http.StatusOK, message, out)
}

func (h *AdminHandler) ListVolunteers(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page, err := h.volunteers.List(r.Context(), service.VolunteerListInput{
		Status:        model.VolunteerStatus(q.Get("status")),
		PreferredRole: q.Get("preferredRole"),
		Page:          parsePage(r),
	})
	if err != nil {
		handleError(w, r, "list volunteers", err)
		return
	}

	respondWithData(w, http.StatusOK, "", page)
}

func (h *AdminHandler) GetVolunteer(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}

	profile, err := h.volunteers.Get(r.Context(), id)
	if err != nil {
		handleError(w, r, "get volunteer", err)
		return
	}

	respondWithData(w, http.StatusOK, "", profile)
}

func (h *AdminHandler) UpdateVolunteerStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}
	var input service.VolunteerStatusInput
	if !decodeJSON(w, r, &input) {
		return
	}

	profile, err := h.volunteers.UpdateStatus(r.Context(), id, input, middleware.AccountFromContext(r.Context()))
	if err != nil {
		handleError(w, r, "update volunteer status", err)
		return
	}

	respondWithData(w, http.StatusOK, "Volunteer status updated", profile)
}

func (h *AdminHandler) AssignProgram(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}
	var input service.AssignProgramInput
	if !decodeJSON(w, r, &input) {
		return
	}

	profile, err := h.volunteers.AssignProgram(r.Context(), id, input, middleware.AccountFromContext(r.Context()))
	if err != nil {
		handleError(w, r, "assign program", err)
		return
	}

	respondWithData(w, http.StatusOK, "Volunteer assigned to program", profile)
}

type addHoursRequest struct {
	Hours float64 `json:"hours"`
}

func (h *AdminHandler) AddHours(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}
	var input addHoursRequest
	if !decodeJSON(w, r, &input) {
		return
	}

	profile, err := h.volunteers.AddHours(r.Context(), id, input.Hours)
	if err != nil {
		handleError(w, r, "add hours", err)
		return
	}

	respondWithData(w, http.StatusOK, "Hours recorded", profile)
}

func (h *AdminHandler) DashboardStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.volunteers.DashboardStats(r.Context())
	if err != nil {
		handleError(w, r, "dashboard stats", err)
		return
	}

	respondWithData(w, http.StatusOK, "", stats)
}

func (h *AdminHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	page, err := h.accounts.ListAccounts(r.Context(), service.AccountListInput{
		Role:     model.Role(r.URL.Query().Get("role")),
		IsActive: parseBool(r, "isActive"),
		Page:     parsePage(r),
	})
	if err != nil {
		handleError(w, r, "list users", err)
		return
	}

	respondWithData(w, http.StatusOK, "", page)
}

func (h *AdminHandler) CreateAdmin(w http.ResponseWriter, r *http.Request) {
	var input service.CreateAdminInput
	if !decodeJSON(w, r, &input) {
		return
	}

	out, err := h.accounts.CreateAdmin(r.Context(), input, middleware.AccountFromContext(r.Context()))
	if err != nil {
		handleError(w, r, "create admin", err)
		return
	}

	respondWithData(w, http.StatusCreated, "Admin created successfully", out.User)
}

type updateRoleRequest struct {
	Role model.Role `json:"role"`
}

func (h *AdminHandler) UpdateUserRole(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}
	var input updateRoleRequest
	if !decodeJSON(w, r, &input) {
		return
	}

	account, err := h.accounts.UpdateRole(r.Context(), id, input.Role, middleware.AccountFromContext(r.Context()))
	if err != nil {
		handleError(w, r, "update role", err)
		return
	}

	respondWithData(w, http.StatusOK, "User role updated", account)
}

func (h *AdminHandler) ToggleUserStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}

	account, err := h.accounts.ToggleActive(r.Context(), id, middleware.AccountFromContext(r.Context()))
	if err != nil {
		handleError(w, r, "toggle user status", err)
		return
	}

	message := "User deactivated"
	if account.IsActive {
		message = "User activated"
	}
	respondWithData(w, http.StatusOK, message, account)
}

// ListAuditLogs filters by action, entityType, entityId, actorId and an
// RFC3339 start/end window.
func (h *AdminHandler) ListAuditLogs(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	query := repository.AuditQuery{
		Action:     strings.TrimSpace(q.Get("action")),
		EntityType: strings.TrimSpace(q.Get("entityType")),
		EntityID:   strings.TrimSpace(q.Get("entityId")),
		Page:       parsePage(r),
	}
	if v := q.Get("actorId"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid actorId")
			return
		}
		query.ActorID = &id
	}
	for name, dst := range map[string]*time.Time{"start": &query.StartTime, "end": &query.EndTime} {
		v := q.Get(name)
		if v == "" {
			continue
		}
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid "+name+" time, expected RFC3339")
			return
		}
		*dst = t
	}

	page, err := h.audit.Query(r.Context(), query)
	if err != nil {
		handleError(w, r, "list audit logs", err)
		return
	}

	respondWithData(w, http.StatusOK, "", page)
}
