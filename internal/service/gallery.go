// internal/service/gallery.go
package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/agriformation/backoffice/internal/audit"
	"github.com/agriformation/backoffice/internal/domain"
	"github.com/agriformation/backoffice/internal/media"
	"github.com/agriformation/backoffice/internal/model"
	"github.com/agriformation/backoffice/internal/repository"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

const (
	// MaxPhotosPerUpload bounds one AddPhotos call.
	MaxPhotosPerUpload = 20
	featuredGalleries  = 6
)

type GalleryService struct {
	repo     repository.GalleryRepositoryIface
	media    media.Host
	audit    audit.Logger
	validate *validator.Validate
}

func NewGalleryService(repo repository.GalleryRepositoryIface, host media.Host, auditLogger audit.Logger) *GalleryService {
	if auditLogger == nil {
		auditLogger = audit.NoOpLogger{}
	}
	return &GalleryService{
		repo:     repo,
		media:    host,
		audit:    auditLogger,
		validate: newValidator(),
	}
}

func (s *GalleryService) record(ctx context.Context, action string, actor *model.Account, id uuid.UUID, data map[string]interface{}) {
	s.audit.Record(ctx, audit.Event{
		Action:     action,
		Actor:      actor,
		EntityType: "gallery",
		EntityID:   id.String(),
		Context:    data,
	})
}

type GalleryInput struct {
	Title       string                `json:"title" validate:"required,max=200"`
	Description string                `json:"description" validate:"required,max=10000"`
	EventDate   time.Time             `json:"eventDate" validate:"required"`
	Location    string                `json:"location" validate:"max=300"`
	Category    model.GalleryCategory `json:"category" validate:"omitempty,oneof=farm_excursion workshop community_event training school-garden other"`
}

func (s *GalleryService) Create(ctx context.Context, input GalleryInput, actor *model.Account) (*model.Gallery, error) {
	input.Title = strings.TrimSpace(input.Title)
	input.Description = strings.TrimSpace(input.Description)
	input.Location = strings.TrimSpace(input.Location)
	if err := validateStruct(s.validate, input); err != nil {
		return nil, err
	}

	gallery := &model.Gallery{
		Title:       input.Title,
		Description: input.Description,
		EventDate:   input.EventDate,
		Location:    input.Location,
		Category:    input.Category,
		CreatedByID: actor.ID,
		Photos:      []model.GalleryPhoto{},
	}
	if err := s.repo.Create(ctx, gallery); err != nil {
		return nil, err
	}

	s.record(ctx, model.ActionGalleryCreate, actor, gallery.ID, map[string]interface{}{"title": gallery.Title})
	return gallery, nil
}

type GalleryPatch struct {
	Title       *string                `json:"title" validate:"omitempty,min=1,max=200"`
	Description *string                `json:"description" validate:"omitempty,min=1,max=10000"`
	EventDate   *time.Time             `json:"eventDate"`
	Location    *string                `json:"location" validate:"omitempty,max=300"`
	Category    *model.GalleryCategory `json:"category" validate:"omitempty,oneof=farm_excursion workshop community_event training school-garden other"`
}

func (s *GalleryService) Update(ctx context.Context, id uuid.UUID, patch GalleryPatch, actor *model.Account) (*model.Gallery, error) {
	if err := validateStruct(s.validate, patch); err != nil {
		return nil, err
	}

	gallery, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Title != nil {
		gallery.Title = strings.TrimSpace(*patch.Title)
	}
	if patch.Description != nil {
		gallery.Description = strings.TrimSpace(*patch.Description)
	}
	if patch.EventDate != nil {
		gallery.EventDate = *patch.EventDate
	}
	if patch.Location != nil {
		gallery.Location = strings.TrimSpace(*patch.Location)
	}
	if patch.Category != nil {
		gallery.Category = *patch.Category
	}
	gallery.LastUpdatedByID = &actor.ID

	if err := s.repo.Update(ctx, gallery); err != nil {
		return nil, err
	}

	s.record(ctx, model.ActionGalleryUpdate, actor, gallery.ID, nil)
	return gallery, nil
}

type UploadFailure struct {
	Filename string `json:"filename"`
	Reason   string `json:"reason"`
}

type AddPhotosResult struct {
	Gallery  *model.Gallery  `json:"gallery"`
	Uploaded int             `json:"uploaded"`
	Failed   []UploadFailure `json:"failed"`
}

// AddPhotos uploads each file independently and appends the successes in
// upload order. Failed files are reported, not fatal, unless every file fails.
func (s *GalleryService) AddPhotos(ctx context.Context, id uuid.UUID, files []media.File, caption string, actor *model.Account) (*AddPhotosResult, error) {
	if len(files) == 0 {
		return nil, domain.ErrNoFiles
	}
	if len(files) > MaxPhotosPerUpload {
		return nil, domain.Invalid("photos", fmt.Sprintf("at most %d files per upload", MaxPhotosPerUpload))
	}

	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return nil, err
	}

	caption = strings.TrimSpace(caption)
	result := &AddPhotosResult{Failed: []UploadFailure{}}
	photos := make([]*model.GalleryPhoto, 0, len(files))
	var invalid, upstream error

	for i := range files {
		f := files[i]
		if err := f.Validate(); err != nil {
			invalid = err
			result.Failed = append(result.Failed, UploadFailure{Filename: f.Name, Reason: err.Error()})
			continue
		}
		asset, err := uploadImage(ctx, s.media, f, media.FolderGalleries)
		if err != nil {
			upstream = err
			slog.WarnContext(ctx, "gallery photo upload failed", "error", err, "galleryID", id, "filename", f.Name)
			result.Failed = append(result.Failed, UploadFailure{Filename: f.Name, Reason: "upload to media host failed"})
			continue
		}
		photos = append(photos, &model.GalleryPhoto{
			URL:      asset.URL,
			PublicID: asset.PublicID,
			Caption:  caption,
		})
	}

	if len(photos) == 0 {
		if upstream != nil {
			return nil, upstream
		}
		return nil, invalid
	}

	if err := s.repo.AddPhotos(ctx, id, photos); err != nil {
		for _, p := range photos {
			discard(ctx, s.media, p.PublicID)
		}
		return nil, err
	}
	result.Uploaded = len(photos)

	gallery, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	result.Gallery = gallery

	s.record(ctx, model.ActionGalleryPhotosAdd, actor, id, map[string]interface{}{
		"uploaded": result.Uploaded,
		"failed":   len(result.Failed),
	})
	return result, nil
}

func (s *GalleryService) UpdateCaption(ctx context.Context, id, photoID uuid.UUID, caption string, actor *model.Account) (*model.Gallery, error) {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return nil, err
	}
	if err := s.repo.UpdatePhotoCaption(ctx, id, photoID, strings.TrimSpace(caption)); err != nil {
		return nil, err
	}

	s.record(ctx, model.ActionGalleryPhotoCaption, actor, id, map[string]interface{}{"photoID": photoID})
	return s.repo.FindByID(ctx, id)
}

type PhotoOrder struct {
	PhotoID uuid.UUID `json:"photoId"`
	Order   int       `json:"order"`
}

// ReorderPhotos applies the given positions. Unknown photo ids are ignored and
// orders are not compacted.
func (s *GalleryService) ReorderPhotos(ctx context.Context, id uuid.UUID, orders []PhotoOrder, actor *model.Account) (*model.Gallery, error) {
	if len(orders) == 0 {
		return nil, domain.Invalid("photoOrders", "is required")
	}

	gallery, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	updates := make(map[uuid.UUID]int, len(orders))
	for _, o := range orders {
		if gallery.Photo(o.PhotoID) != nil {
			updates[o.PhotoID] = o.Order
		}
	}
	if len(updates) > 0 {
		if err := s.repo.ReorderPhotos(ctx, id, updates); err != nil {
			return nil, err
		}
	}

	s.record(ctx, model.ActionGalleryReorder, actor, id, map[string]interface{}{
		"requested": len(orders),
		"applied":   len(updates),
	})
	return s.repo.FindByID(ctx, id)
}

func (s *GalleryService) SetCover(ctx context.Context, id, photoID uuid.UUID, actor *model.Account) (*model.Gallery, error) {
	gallery, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	photo := gallery.Photo(photoID)
	if photo == nil {
		return nil, domain.ErrPhotoNotFound
	}

	if err := s.repo.SetCover(ctx, id, photoID, actor.ID); err != nil {
		return nil, err
	}
	gallery.SetCover(photo)
	gallery.LastUpdatedByID = &actor.ID

	s.record(ctx, model.ActionGalleryCover, actor, id, map[string]interface{}{"photoID": photoID})
	return gallery, nil
}

type DeletePhotoResult struct {
	Gallery            *model.Gallery `json:"gallery"`
	RemoteCleanupError string         `json:"remoteCleanupError,omitempty"`
}

// DeletePhoto asks the media host to remove the file, then removes the photo
// row and clears the cover if it pointed at the photo. A remote failure does
// not stop the local delete; it is reported in the result.
func (s *GalleryService) DeletePhoto(ctx context.Context, id, photoID uuid.UUID, actor *model.Account) (*DeletePhotoResult, error) {
	gallery, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	photo := gallery.Photo(photoID)
	if photo == nil {
		return nil, domain.ErrPhotoNotFound
	}

	result := &DeletePhotoResult{}
	if err := s.media.Delete(ctx, photo.PublicID); err != nil {
		slog.WarnContext(ctx, "remote photo cleanup failed", "error", err, "galleryID", id, "publicID", photo.PublicID)
		result.RemoteCleanupError = err.Error()
	}

	if err := s.repo.DeletePhoto(ctx, id, photoID); err != nil {
		return nil, err
	}

	gallery, err = s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	result.Gallery = gallery

	s.record(ctx, model.ActionGalleryPhotoDelete, actor, id, map[string]interface{}{
		"photoID":       photoID,
		"remoteCleanup": result.RemoteCleanupError == "",
	})
	return result, nil
}

func (s *GalleryService) TogglePublish(ctx context.Context, id uuid.UUID, actor *model.Account) (*model.Gallery, error) {
	if err := s.repo.TogglePublish(ctx, id, actor.ID); err != nil {
		return nil, err
	}

	gallery, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	s.record(ctx, model.ActionGalleryPublish, actor, id, map[string]interface{}{"isPublished": gallery.IsPublished})
	return gallery, nil
}

// Delete removes the gallery and its photos. Remote files are removed
// afterwards on a best-effort basis.
func (s *GalleryService) Delete(ctx context.Context, id uuid.UUID, actor *model.Account) error {
	gallery, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	for _, p := range gallery.Photos {
		discard(ctx, s.media, p.PublicID)
	}

	s.record(ctx, model.ActionGalleryDelete, actor, id, map[string]interface{}{
		"title":  gallery.Title,
		"photos": len(gallery.Photos),
	})
	return nil
}

func (s *GalleryService) Get(ctx context.Context, id uuid.UUID) (*model.Gallery, error) {
	return s.repo.FindByID(ctx, id)
}

type GalleryListInput struct {
	Category    model.GalleryCategory
	IsPublished *bool
	Page        repository.Page
}

func (s *GalleryService) ListAdmin(ctx context.Context, input GalleryListInput) (*Page[*model.Gallery], error) {
	if input.Category != "" && !input.Category.Valid() {
		return nil, domain.Invalid("category", "unknown category")
	}
	page := input.Page.Normalize(repository.DefaultPageSize)
	galleries, total, err := s.repo.List(ctx, repository.GalleryFilter{
		Category:    input.Category,
		IsPublished: input.IsPublished,
		Page:        page,
	})
	if err != nil {
		return nil, err
	}
	return newPage(galleries, total, page), nil
}

func (s *GalleryService) ListPublic(ctx context.Context, category model.GalleryCategory, page repository.Page) (*Page[*model.Gallery], error) {
	if category != "" && !category.Valid() {
		return nil, domain.Invalid("category", "unknown category")
	}
	published := true
	page = page.Normalize(publicPageSize)
	galleries, total, err := s.repo.List(ctx, repository.GalleryFilter{Category: category, IsPublished: &published, Page: page})
	if err != nil {
		return nil, err
	}
	return newPage(galleries, total, page), nil
}

// Featured returns the most recent published galleries.
func (s *GalleryService) Featured(ctx context.Context) ([]*model.Gallery, error) {
	published := true
	galleries, _, err := s.repo.List(ctx, repository.GalleryFilter{
		IsPublished: &published,
		Page:        repository.Page{Number: 1, Size: featuredGalleries},
	})
	if err != nil {
		return nil, err
	}
	if galleries == nil {
		galleries = []*model.Gallery{}
	}
	return galleries, nil
}

func (s *GalleryService) Categories(ctx context.Context) ([]repository.CategoryCount, error) {
	cats, err := s.repo.Categories(ctx)
	if err != nil {
		return nil, err
	}
	if cats == nil {
		cats = []repository.CategoryCount{}
	}
	return cats, nil
}

// GetPublic returns a published gallery with photos in display order and
// counts the view.
func (s *GalleryService) GetPublic(ctx context.Context, id uuid.UUID) (*model.Gallery, error) {
	gallery, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !gallery.IsPublished {
		return nil, domain.ErrGalleryNotFound
	}

	if err := s.repo.IncrementViews(ctx, id); err != nil {
		return nil, err
	}
	gallery.ViewCount++
	return gallery, nil
}

func (s *GalleryService) Stats(ctx context.Context) (*repository.GalleryStats, error) {
	return s.repo.Stats(ctx)
}

