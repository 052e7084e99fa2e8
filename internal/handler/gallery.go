// internal/handler/gallery.go
package handler

import (
	"net/http"

	"github.com/agriformation/backoffice/internal/domain"
	"github.com/agriformation/backoffice/internal/middleware"
	"github.com/agriformation/backoffice/internal/model"
	"github.com/agriformation/backoffice/internal/service"
	"github.com/go-chi/chi/v5"
)

// photosField is the multipart field carrying gallery photos.
const photosField = "photos"

type GalleryHandler struct {
	service *service.GalleryService
}

func NewGalleryHandler(service *service.GalleryService) *GalleryHandler {
	return &GalleryHandler{service: service}
}

func (h *GalleryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input service.GalleryInput
	if !decodeJSON(w, r, &input) {
		return
	}

	gallery, err := h.service.Create(r.Context(), input, middleware.AccountFromContext(r.Context()))
	if err != nil {
		handleError(w, r, "create gallery", err)
		return
	}

	respondWithData(w, http.StatusCreated, "Gallery created successfully", gallery)
}

func (h *GalleryHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}
	var patch service.GalleryPatch
	if !decodeJSON(w, r, &patch) {
		return
	}

	gallery, err := h.service.Update(r.Context(), id, patch, middleware.AccountFromContext(r.Context()))
	if err != nil {
		handleError(w, r, "update gallery", err)
		return
	}

	respondWithData(w, http.StatusOK, "Gallery updated successfully", gallery)
}

func (h *GalleryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), id, middleware.AccountFromContext(r.Context())); err != nil {
		handleError(w, r, "delete gallery", err)
		return
	}

	respondWithData(w, http.StatusOK, "Gallery deleted successfully", nil)
}

// UploadPhotos accepts up to 20 files under "photos" with an optional shared caption.
func (h *GalleryHandler) UploadPhotos(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}
	if !isMultipart(r) {
		handleError(w, r, "upload photos", domain.ErrNoFiles)
		return
	}
	if !parseMultipart(w, r, maxGalleryFormBody) {
		return
	}

	files := formFiles(r, photosField)
	result, err := h.service.AddPhotos(r.Context(), id, files, r.FormValue("caption"), middleware.AccountFromContext(r.Context()))
	if err != nil {
		handleError(w, r, "upload photos", err)
		return
	}

	message := "Photos uploaded successfully"
	if len(result.Failed) > 0 {
		message = "Some photos could not be uploaded"
	}
	respondWithData(w, http.StatusOK, message, result)
}

type captionRequest struct {
	Caption string `json:"caption"`
}

func (h *GalleryHandler) UpdateCaption(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}
	photoID, ok := uuidParam(w, r, "photoId")
	if !ok {
		return
	}
	var input captionRequest
	if !decodeJSON(w, r, &input) {
		return
	}

	gallery, err := h.service.UpdateCaption(r.Context(), id, photoID, input.Caption, middleware.AccountFromContext(r.Context()))
	if err != nil {
		handleError(w, r, "update caption", err)
		return
	}

	respondWithData(w, http.StatusOK, "Caption updated", gallery)
}

type reorderRequest struct {
	PhotoOrders []service.PhotoOrder `json:"photoOrders"`
}

func (h *GalleryHandler) ReorderPhotos(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}
	var input reorderRequest
	if !decodeJSON(w, r, &input) {
		return
	}

	gallery, err := h.service.ReorderPhotos(r.Context(), id, input.PhotoOrders, middleware.AccountFromContext(r.Context()))
	if err != nil {
		handleError(w, r, "reorder photos", err)
		return
	}

	respondWithData(w, http.StatusOK, "Photos reordered", gallery)
}

type coverRequest struct {
	PhotoID string `json:"photoId"`
}

func (h *GalleryHandler) SetCover(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}
	var input coverRequest
	if !decodeJSON(w, r, &input) {
		return
	}
	photoID, err := parseUUID("photoId", input.PhotoID)
	if err != nil {
		handleError(w, r, "set cover", err)
		return
	}

	gallery, err := h.service.SetCover(r.Context(), id, photoID, middleware.AccountFromContext(r.Context()))
	if err != nil {
		handleError(w, r, "set cover", err)
		return
	}

	respondWithData(w, http.StatusOK, "Cover image updated", gallery)
}

func (h *GalleryHandler) DeletePhoto(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}
	photoID, ok := uuidParam(w, r, "photoId")
	if !ok {
		return
	}

	result, err := h.service.DeletePhoto(r.Context(), id, photoID, middleware.AccountFromContext(r.Context()))
	if err != nil {
		handleError(w, r, "delete photo", err)
		return
	}

	message := "Photo deleted"
	if result.RemoteCleanupError != "" {
		message = "Photo deleted; the media host copy could not be removed"
	}
	respondWithData(w, http.StatusOK, message, result)
}

func (h *GalleryHandler) TogglePublish(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}

	gallery, err := h.service.TogglePublish(r.Context(), id, middleware.AccountFromContext(r.Context()))
	if err != nil {
		handleError(w, r, "toggle gallery publish", err)
		return
	}

	message := "Gallery unpublished"
	if gallery.IsPublished {
		message = "Gallery published"
	}
	respondWithData(w, http.StatusOK, message, gallery)
}

func (h *GalleryHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}

	gallery, err := h.service.Get(r.Context(), id)
	if err != nil {
		handleError(w, r, "get gallery", err)
		return
	}

	respondWithData(w, http.StatusOK, "", gallery)
}

func (h *GalleryHandler) ListAdmin(w http.ResponseWriter, r *http.Request) {
	page, err := h.service.ListAdmin(r.Context(), service.GalleryListInput{
		Category:    model.GalleryCategory(r.URL.Query().Get("category")),
		IsPublished: parseBool(r, "isPublished"),
		Page:        parsePage(r),
	})
	if err != nil {
		handleError(w, r, "list galleries", err)
		return
	}

	respondWithData(w, http.StatusOK, "", page)
}

func (h *GalleryHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.Stats(r.Context())
	if err != nil {
		handleError(w, r, "gallery stats", err)
		return
	}

	respondWithData(w, http.StatusOK, "", stats)
}

func (h *GalleryHandler) ListPublic(w http.ResponseWriter, r *http.Request) {
	h.listPublic(w, r, model.GalleryCategory(r.URL.Query().Get("category")))
}

func (h *GalleryHandler) ListPublicByCategory(w http.ResponseWriter, r *http.Request) {
	h.listPublic(w, r, model.GalleryCategory(chi.URLParam(r, "category")))
}

func (h *GalleryHandler) listPublic(w http.ResponseWriter, r *http.Request, category model.GalleryCategory) {
	page, err := h.service.ListPublic(r.Context(), category, parsePage(r))
	if err != nil {
		handleError(w, r, "list public galleries", err)
		return
	}

	respondWithData(w, http.StatusOK, "", page)
}

func (h *GalleryHandler) Featured(w http.ResponseWriter, r *http.Request) {
	galleries, err := h.service.Featured(r.Context())
	if err != nil {
		handleError(w, r, "featured galleries", err)
		return
	}

	respondWithData(w, http.StatusOK, "", galleries)
}

func (h *GalleryHandler) Categories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.Categories(r.Context())
	if err != nil {
		handleError(w, r, "gallery categories", err)
		return
	}

	respondWithData(w, http.StatusOK, "", categories)
}

func (h *GalleryHandler) GetPublic(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}

	gallery, err := h.service.GetPublic(r.Context(), id)
	if err != nil {
		handleError(w, r, "get public gallery", err)
		return
	}

	respondWithData(w, http.StatusOK, "", gallery)
}
