// internal/repository/gallery.go
package repository

import (
	"context"
	"fmt"

	"github.com/agriformation/backoffice/internal/domain"
	"github.com/agriformation/backoffice/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type GalleryFilter struct {
	Category    model.GalleryCategory
	IsPublished *bool
	Page        Page
}

type CategoryCount struct {
	Category model.GalleryCategory `json:"category"`
	Count    int64                 `json:"count"`
}

type GalleryStats struct {
	Total       int64 `json:"totalGalleries"`
	Published   int64 `json:"publishedGalleries"`
	TotalPhotos int64 `json:"totalPhotos"`
	TotalViews  int64 `json:"totalViews"`
}

type GalleryRepositoryIface interface {
	Create(ctx context.Context, gallery *model.Gallery) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Gallery, error)
	Update(ctx context.Context, gallery *model.Gallery) error
	TogglePublish(ctx context.Context, id, actorID uuid.UUID) error
	SetCover(ctx context.Context, galleryID, photoID, actorID uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, filter GalleryFilter) ([]*model.Gallery, int64, error)
	AddPhotos(ctx context.Context, galleryID uuid.UUID, photos []*model.GalleryPhoto) error
	UpdatePhotoCaption(ctx context.Context, galleryID, photoID uuid.UUID, caption string) error
	ReorderPhotos(ctx context.Context, galleryID uuid.UUID, orders map[uuid.UUID]int) error
	DeletePhoto(ctx context.Context, galleryID, photoID uuid.UUID) error
	IncrementViews(ctx context.Context, id uuid.UUID) error
	Categories(ctx context.Context) ([]CategoryCount, error)
	Stats(ctx context.Context) (*GalleryStats, error)
}

type GalleryRepository struct {
	db *gorm.DB
}

func NewGalleryRepository(db *gorm.DB) *GalleryRepository {
	return &GalleryRepository{db: db}
}

func orderedPhotos(db *gorm.DB) *gorm.DB {
	return db.Order("sort_order ASC, uploaded_at ASC")
}

func (r *GalleryRepository) Create(ctx context.Context, gallery *model.Gallery) error {
	if err := r.db.WithContext(ctx).Omit("Photos").Create(gallery).Error; err != nil {
		return fmt.Errorf("failed to create gallery: %w", err)
	}
	gallery.Refresh()
	return nil
}

// FindByID loads the gallery with its photos in display order.
func (r *GalleryRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Gallery, error) {
	var gallery model.Gallery
	if err := r.db.WithContext(ctx).Preload("Photos", orderedPhotos).First(&gallery, "id = ?", id).Error; err != nil {
		return nil, notFound(err, domain.ErrGalleryNotFound, "find gallery")
	}
	gallery.Refresh()
	return &gallery, nil
}

// galleryContentColumns are the columns Update writes. The cover, publication
// and view count are only changed by their own statements.
var galleryContentColumns = []string{
	"title", "description", "event_date", "location", "category",
	"last_updated_by_id", "updated_at",
}

// Update writes the gallery's editable details.
func (r *GalleryRepository) Update(ctx context.Context, gallery *model.Gallery) error {
	result := r.db.WithContext(ctx).Model(gallery).Select(galleryContentColumns).Updates(gallery)
	if result.Error != nil {
		return fmt.Errorf("failed to update gallery: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrGalleryNotFound
	}
	return nil
}

func (r *GalleryRepository) TogglePublish(ctx context.Context, id, actorID uuid.UUID) error {
	result := r.db.WithContext(ctx).Model(&model.Gallery{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"is_published":       gorm.Expr("NOT is_published"),
			"last_updated_by_id": actorID,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to toggle gallery publication: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrGalleryNotFound
	}
	return nil
}

// SetCover points the cover at a photo of the gallery. The photo row is held
// with FOR SHARE until the cover is written, so a concurrent DeletePhoto either
// runs first (and the photo is gone) or waits and then clears the new cover.
func (r *GalleryRepository) SetCover(ctx context.Context, galleryID, photoID, actorID uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var photo model.GalleryPhoto
		err := tx.Clauses(clause.Locking{Strength: "SHARE"}).
			First(&photo, "id = ? AND gallery_id = ?", photoID, galleryID).Error
		if err != nil {
			return notFound(err, domain.ErrPhotoNotFound, "lock photo")
		}

		result := tx.Model(&model.Gallery{}).
			Where("id = ?", galleryID).
			Updates(map[string]interface{}{
				"cover_photo_id":     photo.ID,
				"cover_url":          photo.URL,
				"cover_public_id":    photo.PublicID,
				"last_updated_by_id": actorID,
			})
		if result.Error != nil {
			return fmt.Errorf("failed to set cover: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return domain.ErrGalleryNotFound
		}
		return nil
	})
}

func (r *GalleryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("gallery_id = ?", id).Delete(&model.GalleryPhoto{}).Error; err != nil {
			return fmt.Errorf("failed to delete gallery photos: %w", err)
		}
		result := tx.Delete(&model.Gallery{}, "id = ?", id)
		if result.Error != nil {
			return fmt.Errorf("failed to delete gallery: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return domain.ErrGalleryNotFound
		}
		return nil
	})
}

// List returns galleries by event date, newest first.
func (r *GalleryRepository) List(ctx context.Context, filter GalleryFilter) ([]*model.Gallery, int64, error) {
	var galleries []*model.Gallery
	var count int64

	query := r.db.WithContext(ctx).Model(&model.Gallery{})
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.IsPublished != nil {
		query = query.Where("is_published = ?", *filter.IsPublished)
	}

	if err := query.Count(&count).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count galleries: %w", err)
	}

	err := paginate(query, filter.Page).
		Preload("Photos", orderedPhotos).
		Order("event_date DESC").
		Find(&galleries).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list galleries: %w", err)
	}
	for _, g := range galleries {
		g.Refresh()
	}

	return galleries, count, nil
}

// AddPhotos appends photos after the existing ones. The gallery row is locked so
// concurrent uploads do not hand out the same order values.
func (r *GalleryRepository) AddPhotos(ctx context.Context, galleryID uuid.UUID, photos []*model.GalleryPhoto) error {
	if len(photos) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var gallery model.Gallery
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Select("id").
			First(&gallery, "id = ?", galleryID).Error
		if err != nil {
			return notFound(err, domain.ErrGalleryNotFound, "lock gallery")
		}

		var existing int64
		if err := tx.Model(&model.GalleryPhoto{}).Where("gallery_id = ?", galleryID).Count(&existing).Error; err != nil {
			return fmt.Errorf("failed to count gallery photos: %w", err)
		}

		for i, p := range photos {
			p.GalleryID = galleryID
			p.SortOrder = int(existing) + i
		}
		if err := tx.Create(&photos).Error; err != nil {
			return fmt.Errorf("failed to create gallery photos: %w", err)
		}
		return nil
	})
}

func (r *GalleryRepository) UpdatePhotoCaption(ctx context.Context, galleryID, photoID uuid.UUID, caption string) error {
	result := r.db.WithContext(ctx).Model(&model.GalleryPhoto{}).
		Where("id = ? AND gallery_id = ?", photoID, galleryID).
		Update("caption", caption)
	if result.Error != nil {
		return fmt.Errorf("failed to update photo caption: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrPhotoNotFound
	}
	return nil
}

// ReorderPhotos sets sort_order for the listed photos. Ids that are not in the
// gallery are ignored and unlisted photos keep their order.
func (r *GalleryRepository) ReorderPhotos(ctx context.Context, galleryID uuid.UUID, orders map[uuid.UUID]int) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for id, order := range orders {
			err := tx.Model(&model.GalleryPhoto{}).
				Where("id = ? AND gallery_id = ?", id, galleryID).
				Update("sort_order", order).Error
			if err != nil {
				return fmt.Errorf("failed to reorder photo %s: %w", id, err)
			}
		}
		return nil
	})
}

// DeletePhoto removes the photo and clears the cover if it pointed at it.
func (r *GalleryRepository) DeletePhoto(ctx context.Context, galleryID, photoID uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&model.GalleryPhoto{}, "id = ? AND gallery_id = ?", photoID, galleryID)
		if result.Error != nil {
			return fmt.Errorf("failed to delete photo: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return domain.ErrPhotoNotFound
		}

		err := tx.Model(&model.Gallery{}).
			Where("id = ? AND cover_photo_id = ?", galleryID, photoID).
			Updates(map[string]interface{}{
				"cover_photo_id":  nil,
				"cover_url":       "",
				"cover_public_id": "",
			}).Error
		if err != nil {
			return fmt.Errorf("failed to clear cover: %w", err)
		}
		return nil
	})
}

func (r *GalleryRepository) IncrementViews(ctx context.Context, id uuid.UUID) error {
	err := r.db.WithContext(ctx).Model(&model.Gallery{}).
		Where("id = ?", id).
		UpdateColumn("view_count", gorm.Expr("view_count + 1")).Error
	if err != nil {
		return fmt.Errorf("failed to increment gallery views: %w", err)
	}
	return nil
}

// Categories counts published galleries per category.
func (r *GalleryRepository) Categories(ctx context.Context) ([]CategoryCount, error) {
	var out []CategoryCount
	err := r.db.WithContext(ctx).Model(&model.Gallery{}).
		Select("category, COUNT(*) AS count").
		Where("is_published = ?", true).
		Group("category").
		Order("count DESC").
		Scan(&out).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count gallery categories: %w", err)
	}
	return out, nil
}

func (r *GalleryRepository) Stats(ctx context.Context) (*GalleryStats, error) {
	var stats GalleryStats
	err := r.db.WithContext(ctx).Model(&model.Gallery{}).
		Select("COUNT(*) AS total, COUNT(*) FILTER (WHERE is_published) AS published, COALESCE(SUM(view_count), 0) AS total_views").
		Scan(&stats).Error
	if err != nil {
		return nil, fmt.Errorf("failed to compute gallery stats: %w", err)
	}

	if err := r.db.WithContext(ctx).Model(&model.GalleryPhoto{}).Count(&stats.TotalPhotos).Error; err != nil {
		return nil, fmt.Errorf("failed to count gallery photos: %w", err)
	}
	return &stats, nil
}
