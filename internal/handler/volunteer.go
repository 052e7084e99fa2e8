// internal/handler/volunteer.go
package handler

import (
	"net/http"

	"github.com/agriformation/backoffice/internal/middleware"
	"github.com/agriformation/backoffice/internal/service"
)

// VolunteerHandler serves the public application form and the volunteer's
// own profile.
type VolunteerHandler struct {
	applications *service.ApplicationService
	volunteers   *service.VolunteerService
}

func NewVolunteerHandler(applications *service.ApplicationService, volunteers *service.VolunteerService) *VolunteerHandler {
	return &VolunteerHandler{applications: applications, volunteers: volunteers}
}

func (h *VolunteerHandler) Apply(w http.ResponseWriter, r *http.Request) {
	var input service.SubmitApplicationInput
	if !decodeJSON(w, r, &input) {
		return
	}

	app, err := h.applications.Submit(r.Context(), input)
	if err != nil {
		handleError(w, r, "application submit", err)
		return
	}

	respondWithData(w, http.StatusCreated, "Application submitted successfully", app)
}

func (h *VolunteerHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	account := middleware.AccountFromContext(r.Context())

	profile, err := h.volunteers.GetOwnProfile(r.Context(), account.ID)
	if err != nil {
		handleError(w, r, "get profile", err)
		return
	}

	respondWithData(w, http.StatusOK, "", profile)
}

func (h *VolunteerHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var patch service.ProfilePatch
	if !decodeJSON(w, r, &patch) {
		return
	}
	account := middleware.AccountFromContext(r.Context())

	profile, err := h.volunteers.UpdateOwnProfile(r.Context(), account.ID, patch)
	if err != nil {
		handleError(w, r, "update profile", err)
		return
	}

	respondWithData(w, http.StatusOK, "Profile updated successfully", profile)
}
