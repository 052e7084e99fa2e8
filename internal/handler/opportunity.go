// internal/handler/opportunity.go
package handler

import (
	"net/http"

	"github.com/agriformation/backoffice/internal/media"
	"github.com/agriformation/backoffice/internal/middleware"
	"github.com/agriformation/backoffice/internal/model"
	"github.com/agriformation/backoffice/internal/service"
)

// designImageField is the multipart field carrying a call's design image.
const designImageField = "designImage"

type OpportunityHandler struct {
	service *service.OpportunityService
}

func NewOpportunityHandler(service *service.OpportunityService) *OpportunityHandler {
	return &OpportunityHandler{service: service}
}

// readCallPatch accepts JSON or multipart bodies. Only multipart bodies can
// carry the design image.
func readCallPatch(w http.ResponseWriter, r *http.Request) (service.CallPatch, *media.File, bool) {
	var patch service.CallPatch
	if !isMultipart(r) {
		return patch, nil, decodeJSON(w, r, &patch)
	}

	if !parseMultipart(w, r, maxCallFormBody) {
		return patch, nil, false
	}

	if err := decodeForm(r, &patch); err != nil {
		handleError(w, r, "read call form", err)
		return patch, nil, false
	}
	if patch.Category != nil && *patch.Category == "" {
		patch.Category = nil
	}

	image, err := formFile(r, designImageField)
	if err != nil {
		handleError(w, r, "read design image", err)
		return patch, nil, false
	}
	return patch, image, true
}

func callInputFrom(p service.CallPatch) service.CallInput {
	var in service.CallInput
	if p.Title != nil {
		in.Title = *p.Title
	}
	if p.Description != nil {
		in.Description = *p.Description
	}
	if p.Requirements != nil {
		in.Requirements = *p.Requirements
	}
	if p.Location != nil {
		in.Location = *p.Location
	}
	if p.EventDate != nil {
		in.EventDate = *p.EventDate
	}
	if p.Deadline != nil {
		in.Deadline = *p.Deadline
	}
	if p.NumberOfVolunteers != nil {
		in.NumberOfVolunteers = *p.NumberOfVolunteers
	}
	if p.Category != nil {
		in.Category = *p.Category
	}
	return in
}

func (h *OpportunityHandler) Create(w http.ResponseWriter, r *http.Request) {
	patch, image, ok := readCallPatch(w, r)
	if !ok {
		return
	}

	call, err := h.service.Create(r.Context(), callInputFrom(patch), image, middleware.AccountFromContext(r.Context()))
	if err != nil {
		handleError(w, r, "create volunteer call", err)
		return
	}

	respondWithData(w, http.StatusCreated, "Volunteer call created successfully", call)
}

func (h *OpportunityHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}
	patch, image, ok := readCallPatch(w, r)
	if !ok {
		return
	}

	call, err := h.service.Update(r.Context(), id, patch, image, middleware.AccountFromContext(r.Context()))
	if err != nil {
		handleError(w, r, "update volunteer call", err)
		return
	}

	respondWithData(w, http.StatusOK, "Volunteer call updated successfully", call)
}

func (h *OpportunityHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), id, middleware.AccountFromContext(r.Context())); err != nil {
		handleError(w, r, "delete volunteer call", err)
		return
	}

	respondWithData(w, http.StatusOK, "Volunteer call deleted successfully", nil)
}

func (h *OpportunityHandler) TogglePublish(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}

	call, err := h.service.TogglePublish(r.Context(), id, middleware.AccountFromContext(r.Context()))
	if err != nil {
		handleError(w, r, "toggle call publish", err)
		return
	}

	message := "Volunteer call unpublished"
	if call.IsPublished {
		message = "Volunteer call published"
	}
	respondWithData(w, http.StatusOK, message, call)
}

type callStatusRequest struct {
	Status model.CallStatus `json:"status"`
}

func (h *OpportunityHandler) SetStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}
	var input callStatusRequest
	if !decodeJSON(w, r, &input) {
		return
	}

	call, err := h.service.SetStatus(r.Context(), id, input.Status, middleware.AccountFromContext(r.Context()))
	if err != nil {
		handleError(w, r, "set call status", err)
		return
	}

	respondWithData(w, http.StatusOK, "Status updated", call)
}

type applicantStatusRequest struct {
	Status model.CallApplicationStatus `json:"status"`
}

func (h *OpportunityHandler) SetApplicationStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}
	applicationID, ok := uuidParam(w, r, "applicationId")
	if !ok {
		return
	}
	var input applicantStatusRequest
	if !decodeJSON(w, r, &input) {
		return
	}

	err := h.service.SetApplicationStatus(r.Context(), id, applicationID, input.Status, middleware.AccountFromContext(r.Context()))
	if err != nil {
		handleError(w, r, "set applicant status", err)
		return
	}

	respondWithData(w, http.StatusOK, "Application status updated", map[string]interface{}{
		"applicationId": applicationID,
		"status":        input.Status,
	})
}

func (h *OpportunityHandler) ListAdmin(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page, err := h.service.ListAdmin(r.Context(), service.CallListInput{
		Status:   model.CallStatus(q.Get("status")),
		Category: model.CallCategory(q.Get("category")),
		Page:     parsePage(r),
	})
	if err != nil {
		handleError(w, r, "list volunteer calls", err)
		return
	}

	respondWithData(w, http.StatusOK, "", page)
}

func (h *OpportunityHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}

	call, err := h.service.Get(r.Context(), id)
	if err != nil {
		handleError(w, r, "get volunteer call", err)
		return
	}

	respondWithData(w, http.StatusOK, "", call)
}

func (h *OpportunityHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.Stats(r.Context())
	if err != nil {
		handleError(w, r, "volunteer call stats", err)
		return
	}

	respondWithData(w, http.StatusOK, "", stats)
}

// ListPublic lists published, open calls whose deadline has not passed.
func (h *OpportunityHandler) ListPublic(w http.ResponseWriter, r *http.Request) {
	page, err := h.service.ListPublic(r.Context(), model.CallCategory(r.URL.Query().Get("category")), parsePage(r))
	if err != nil {
		handleError(w, r, "list public calls", err)
		return
	}

	respondWithData(w, http.StatusOK, "", page)
}

func (h *OpportunityHandler) GetPublic(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}

	call, err := h.service.GetPublic(r.Context(), id)
	if err != nil {
		handleError(w, r, "get public call", err)
		return
	}

	respondWithData(w, http.StatusOK, "", call)
}

func (h *OpportunityHandler) Apply(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}
	var input service.CallApplyInput
	if !decodeJSON(w, r, &input) {
		return
	}

	application, err := h.service.Apply(r.Context(), id, input, middleware.AccountFromContext(r.Context()))
	if err != nil {
		handleError(w, r, "apply to call", err)
		return
	}

	respondWithData(w, http.StatusCreated, "Application submitted successfully", application)
}
