// internal/repository/volunteer.go
package repository

import (
	"context"
	"fmt"

	"github.com/agriformation/backoffice/internal/domain"
	"github.com/agriformation/backoffice/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type VolunteerFilter struct {
	Status        model.VolunteerStatus
	PreferredRole string
	Page          Page
}

type VolunteerStats struct {
	Total      int64   `json:"totalVolunteers"`
	Active     int64   `json:"activeVolunteers"`
	TotalHours float64 `json:"totalHours"`
}

type VolunteerRepositoryIface interface {
	FindByID(ctx context.Context, id uuid.UUID) (*model.VolunteerProfile, error)
	FindByAccountID(ctx context.Context, accountID uuid.UUID) (*model.VolunteerProfile, error)
	UpdateProfile(ctx context.Context, profile *model.VolunteerProfile) error
	UpdateReview(ctx context.Context, profile *model.VolunteerProfile) error
	AddAssignment(ctx context.Context, profileID uuid.UUID, assignment *model.VolunteerAssignment) error
	AddHours(ctx context.Context, id uuid.UUID, hours float64) error
	List(ctx context.Context, filter VolunteerFilter) ([]*model.VolunteerProfile, int64, error)
	Stats(ctx context.Context) (*VolunteerStats, error)
}

type VolunteerRepository struct {
	db *gorm.DB
}

func NewVolunteerRepository(db *gorm.DB) *VolunteerRepository {
	return &VolunteerRepository{db: db}
}

func (r *VolunteerRepository) withRelations(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Account").
		Preload("Assignments", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		})
}

func (r *VolunteerRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.VolunteerProfile, error) {
	var profile model.VolunteerProfile
	if err := r.withRelations(ctx).First(&profile, "id = ?", id).Error; err != nil {
		return nil, notFound(err, domain.ErrVolunteerNotFound, "find volunteer profile")
	}
	return &profile, nil
}

func (r *VolunteerRepository) FindByAccountID(ctx context.Context, accountID uuid.UUID) (*model.VolunteerProfile, error) {
	var profile model.VolunteerProfile
	if err := r.withRelations(ctx).First(&profile, "account_id = ?", accountID).Error; err != nil {
		return nil, notFound(err, domain.ErrVolunteerNotFound, "find volunteer profile")
	}
	return &profile, nil
}

var (
	// profileSelfColumns are the columns a volunteer edits on their own profile.
	profileSelfColumns = []string{"preferred_role", "statement", "skills", "availability", "location", "updated_at"}
	// profileReviewColumns are the columns a staff review writes.
	profileReviewColumns = []string{"status", "reviewed_by_id", "reviewed_at", "review_notes", "updated_at"}
)

// UpdateProfile writes the self-service columns. Hours and review state are
// never written from the loaded copy.
func (r *VolunteerRepository) UpdateProfile(ctx context.Context, profile *model.VolunteerProfile) error {
	return r.updateColumns(ctx, profile, profileSelfColumns)
}

// UpdateReview writes the staff review columns.
func (r *VolunteerRepository) UpdateReview(ctx context.Context, profile *model.VolunteerProfile) error {
	return r.updateColumns(ctx, profile, profileReviewColumns)
}

func (r *VolunteerRepository) updateColumns(ctx context.Context, profile *model.VolunteerProfile, columns []string) error {
	result := r.db.WithContext(ctx).Model(profile).Select(columns).Updates(profile)
	if result.Error != nil {
		return fmt.Errorf("failed to update volunteer profile: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrVolunteerNotFound
	}
	return nil
}

func (r *VolunteerRepository) AddAssignment(ctx context.Context, profileID uuid.UUID, assignment *model.VolunteerAssignment) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var exists int64
		if err := tx.Model(&model.VolunteerProfile{}).Where("id = ?", profileID).Count(&exists).Error; err != nil {
			return fmt.Errorf("failed to find volunteer profile: %w", err)
		}
		if exists == 0 {
			return domain.ErrVolunteerNotFound
		}

		assignment.ProfileID = profileID
		if err := tx.Create(assignment).Error; err != nil {
			return fmt.Errorf("failed to create assignment: %w", err)
		}
		return nil
	})
}

// AddHours increments hours_contributed in a single statement.
func (r *VolunteerRepository) AddHours(ctx context.Context, id uuid.UUID, hours float64) error {
	result := r.db.WithContext(ctx).Model(&model.VolunteerProfile{}).
		Where("id = ?", id).
		UpdateColumn("hours_contributed", gorm.Expr("hours_contributed + ?", hours))
	if result.Error != nil {
		return fmt.Errorf("failed to add hours: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrVolunteerNotFound
	}
	return nil
}

func (r *VolunteerRepository) List(ctx context.Context, filter VolunteerFilter) ([]*model.VolunteerProfile, int64, error) {
	var profiles []*model.VolunteerProfile
	var count int64

	query := r.db.WithContext(ctx).Model(&model.VolunteerProfile{})
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.PreferredRole != "" {
		query = query.Where("preferred_role = ?", filter.PreferredRole)
	}

	if err := query.Count(&count).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count volunteer profiles: %w", err)
	}

	err := paginate(query, filter.Page).
		Preload("Account").
		Preload("Assignments").
		Order("created_at DESC").
		Find(&profiles).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list volunteer profiles: %w", err)
	}

	return profiles, count, nil
}

func (r *VolunteerRepository) Stats(ctx context.Context) (*VolunteerStats, error) {
	var stats VolunteerStats
	err := r.db.WithContext(ctx).Model(&model.VolunteerProfile{}).
		Select("COUNT(*) AS total, COUNT(*) FILTER (WHERE status = ?) AS active, COALESCE(SUM(hours_contributed), 0) AS total_hours", model.VolunteerApproved).
		Scan(&stats).Error
	if err != nil {
		return nil, fmt.Errorf("failed to compute volunteer stats: %w", err)
	}
	return &stats, nil
}
