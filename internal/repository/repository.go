// internal/repository/repository.go
package repository

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/agriformation/backoffice/internal/model"
	"gorm.io/gorm"
)

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// Page selects a 1-based page of results.
type Page struct {
	Number int
	Size   int
}

// Normalize clamps the page into range, using def when no size was given.
func (p Page) Normalize(def int) Page {
	if p.Number < 1 {
		p.Number = 1
	}
	if p.Size < 1 {
		p.Size = def
	}
	if p.Size > MaxPageSize {
		p.Size = MaxPageSize
	}
	return p
}

func (p Page) Offset() int {
	return (p.Number - 1) * p.Size
}

// TotalPages returns the page count for total rows at this page size.
func (p Page) TotalPages(total int64) int {
	if p.Size < 1 || total == 0 {
		return 0
	}
	return int((total + int64(p.Size) - 1) / int64(p.Size))
}

func paginate(q *gorm.DB, p Page) *gorm.DB {
	p = p.Normalize(DefaultPageSize)
	return q.Offset(p.Offset()).Limit(p.Size)
}

// notFound maps gorm.ErrRecordNotFound to sentinel and wraps anything else.
func notFound(err error, sentinel error, op string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return sentinel
	}
	return fmt.Errorf("failed to %s: %w", op, err)
}

// duplicate maps a unique violation to sentinel and wraps anything else.
func duplicate(err error, sentinel error, op string) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return sentinel
	}
	return fmt.Errorf("failed to %s: %w", op, err)
}

// Migrate creates or updates the schema. Indexes gorm tags cannot express are
// created explicitly.
func Migrate(ctx context.Context, db *gorm.DB) error {
	db = db.WithContext(ctx)

	if err := db.Exec("CREATE EXTENSION IF NOT EXISTS citext").Error; err != nil {
		return fmt.Errorf("enabling citext: %w", err)
	}

	if err := db.AutoMigrate(
		&model.Account{},
		&model.Application{},
		&model.VolunteerProfile{},
		&model.VolunteerAssignment{},
		&model.VolunteerCall{},
		&model.CallApplication{},
		&model.Gallery{},
		&model.GalleryPhoto{},
		&model.AuditLog{},
	); err != nil {
		return fmt.Errorf("auto-migrating: %w", err)
	}

	stmts := []string{
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_applications_pending_email
			ON volunteer_applications (email) WHERE status = 'pending'`,
		`CREATE INDEX IF NOT EXISTS idx_gallery_photos_order
			ON gallery_photos (gallery_id, sort_order)`,
	}
	for _, s := range stmts {
		if err := db.Exec(s).Error; err != nil {
			return fmt.Errorf("creating index: %w", err)
		}
	}

	slog.InfoContext(ctx, "database schema migrated")
	return nil
}
