// internal/model/gallery.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GalleryCategory string

const (
	GalleryFarmExcursion  GalleryCategory = "farm_excursion"
	GalleryWorkshop       GalleryCategory = "workshop"
	GalleryCommunityEvent GalleryCategory = "community_event"
	GalleryTraining       GalleryCategory = "training"
	GallerySchoolGarden   GalleryCategory = "school-garden"
	GalleryOther          GalleryCategory = "other"
)

func (c GalleryCategory) Valid() bool {
	switch c {
	case GalleryFarmExcursion, GalleryWorkshop, GalleryCommunityEvent, GalleryTraining, GallerySchoolGarden, GalleryOther:
		return true
	}
	return false
}

type Gallery struct {
	ID              uuid.UUID       `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Title           string          `gorm:"type:text;not null" json:"title"`
	Description     string          `gorm:"type:text;not null" json:"description"`
	EventDate       time.Time       `gorm:"not null;index:idx_galleries_published_event_date,priority:2,sort:desc" json:"eventDate"`
	Location        string          `gorm:"type:text" json:"location,omitempty"`
	Category        GalleryCategory `gorm:"type:text;not null;default:'farm_excursion';index:idx_galleries_category_published,priority:1" json:"category"`
	CoverPhotoID    *uuid.UUID      `gorm:"type:uuid" json:"-"`
	CoverURL        string          `gorm:"type:text" json:"-"`
	CoverPublicID   string          `gorm:"type:text" json:"-"`
	IsPublished     bool            `gorm:"not null;default:false;index:idx_galleries_published_event_date,priority:1;index:idx_galleries_category_published,priority:2" json:"isPublished"`
	ViewCount       int64           `gorm:"not null;default:0" json:"viewCount"`
	CreatedByID     uuid.UUID       `gorm:"type:uuid;not null" json:"createdBy"`
	LastUpdatedByID *uuid.UUID      `gorm:"type:uuid" json:"lastUpdatedBy,omitempty"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`

	Photos []GalleryPhoto `gorm:"foreignKey:GalleryID" json:"photos"`

	// Populated by AfterFind; not persisted.
	CoverImage *CoverImage `gorm:"-" json:"coverImage,omitempty"`
	PhotoCount int         `gorm:"-" json:"photoCount"`
}

// CoverImage is the designated representative photo of a gallery.
type CoverImage struct {
	PhotoID  uuid.UUID `json:"photoId"`
	URL      string    `json:"url"`
	PublicID string    `json:"publicId"`
}

// BeforeCreate hook for Gallery
func (g *Gallery) BeforeCreate(tx *gorm.DB) error {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	if g.Category == "" {
		g.Category = GalleryFarmExcursion
	}
	return nil
}

// AfterFind fills the derived fields.
func (g *Gallery) AfterFind(tx *gorm.DB) error {
	g.Refresh()
	return nil
}

// Refresh recomputes CoverImage and PhotoCount from the persisted columns.
func (g *Gallery) Refresh() {
	g.PhotoCount = len(g.Photos)
	g.CoverImage = nil
	if g.CoverPhotoID != nil {
		g.CoverImage = &CoverImage{PhotoID: *g.CoverPhotoID, URL: g.CoverURL, PublicID: g.CoverPublicID}
	}
}

// Photo returns the photo with the given id, or nil.
func (g *Gallery) Photo(id uuid.UUID) *GalleryPhoto {
	for i := range g.Photos {
		if g.Photos[i].ID == id {
			return &g.Photos[i]
		}
	}
	return nil
}

// SetCover points the cover at p.
func (g *Gallery) SetCover(p *GalleryPhoto) {
	g.CoverPhotoID = &p.ID
	g.CoverURL = p.URL
	g.CoverPublicID = p.PublicID
	g.Refresh()
}

// ClearCover removes the cover reference.
func (g *Gallery) ClearCover() {
	g.CoverPhotoID = nil
	g.CoverURL = ""
	g.CoverPublicID = ""
	g.Refresh()
}

type GalleryPhoto struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	GalleryID  uuid.UUID `gorm:"type:uuid;not null;index" json:"-"`
	URL        string    `gorm:"type:text;not null" json:"url"`
	PublicID   string    `gorm:"type:text;not null" json:"publicId"`
	Caption    string    `gorm:"type:text" json:"caption"`
	SortOrder  int       `gorm:"not null;default:0" json:"order"`
	UploadedAt time.Time `gorm:"not null" json:"uploadedAt"`
}

// BeforeCreate hook for GalleryPhoto
func (p *GalleryPhoto) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if p.UploadedAt.IsZero() {
		p.UploadedAt = time.Now().UTC()
	}
	return nil
}
