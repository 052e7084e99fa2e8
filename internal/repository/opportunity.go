// internal/repository/opportunity.go
package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/agriformation/backoffice/internal/domain"
	"github.com/agriformation/backoffice/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CallFilter struct {
	Status   model.CallStatus
	Category model.CallCategory
	// OpenAt restricts results to published, open calls whose deadline is not
	// before the given instant.
	OpenAt *time.Time
	Page   Page
}

type CallStats struct {
	Total             int64 `json:"totalCalls"`
	Published         int64 `json:"publishedCalls"`
	Open              int64 `json:"openCalls"`
	TotalApplications int64 `json:"totalApplications"`
	TotalViews        int64 `json:"totalViews"`
}

type OpportunityRepositoryIface interface {
	Create(ctx context.Context, call *model.VolunteerCall) error
	FindByID(ctx context.Context, id uuid.UUID, withApplications bool) (*model.VolunteerCall, error)
	Update(ctx context.Context, call *model.VolunteerCall) error
	TogglePublish(ctx context.Context, id, actorID uuid.UUID) error
	SetStatus(ctx context.Context, id uuid.UUID, status model.CallStatus, actorID uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, filter CallFilter) ([]*model.VolunteerCall, int64, error)
	HasApplicant(ctx context.Context, callID uuid.UUID, email string) (bool, error)
	AddApplication(ctx context.Context, application *model.CallApplication) error
	UpdateApplicationStatus(ctx context.Context, callID, applicationID uuid.UUID, status model.CallApplicationStatus) error
	IncrementViews(ctx context.Context, id uuid.UUID) error
	Stats(ctx context.Context) (*CallStats, error)
}

type OpportunityRepository struct {
	db *gorm.DB
}

func NewOpportunityRepository(db *gorm.DB) *OpportunityRepository {
	return &OpportunityRepository{db: db}
}

func (r *OpportunityRepository) Create(ctx context.Context, call *model.VolunteerCall) error {
	if err := r.db.WithContext(ctx).Omit("Applications").Create(call).Error; err != nil {
		return fmt.Errorf("failed to create volunteer call: %w", err)
	}
	return nil
}

func (r *OpportunityRepository) FindByID(ctx context.Context, id uuid.UUID, withApplications bool) (*model.VolunteerCall, error) {
	var call model.VolunteerCall
	query := r.db.WithContext(ctx)
	if withApplications {
		query = query.Preload("Applications", func(db *gorm.DB) *gorm.DB {
			return db.Order("applied_at ASC")
		})
	}
	if err := query.First(&call, "id = ?", id).Error; err != nil {
		return nil, notFound(err, domain.ErrCallNotFound, "find volunteer call")
	}
	return &call, nil
}

// callContentColumns are the columns Update writes. Publication, status and
// view counts have their own statements.
var callContentColumns = []string{
	"title", "description", "requirements", "design_image_url", "design_image_public_id",
	"event_date", "location", "number_of_volunteers", "deadline", "category",
	"last_updated_by_id", "updated_at",
}

// Update writes the call's editable content.
func (r *OpportunityRepository) Update(ctx context.Context, call *model.VolunteerCall) error {
	result := r.db.WithContext(ctx).Model(call).Select(callContentColumns).Updates(call)
	if result.Error != nil {
		return fmt.Errorf("failed to update volunteer call: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrCallNotFound
	}
	return nil
}

// TogglePublish flips is_published in one statement. A draft that becomes
// published moves to open.
func (r *OpportunityRepository) TogglePublish(ctx context.Context, id, actorID uuid.UUID) error {
	result := r.db.WithContext(ctx).Model(&model.VolunteerCall{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"is_published":       gorm.Expr("NOT is_published"),
			"status":             gorm.Expr("CASE WHEN NOT is_published AND status = ? THEN ? ELSE status END", model.CallDraft, model.CallOpen),
			"last_updated_by_id": actorID,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to toggle volunteer call publication: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrCallNotFound
	}
	return nil
}

func (r *OpportunityRepository) SetStatus(ctx context.Context, id uuid.UUID, status model.CallStatus, actorID uuid.UUID) error {
	result := r.db.WithContext(ctx).Model(&model.VolunteerCall{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":             status,
			"last_updated_by_id": actorID,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update volunteer call status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrCallNotFound
	}
	return nil
}

func (r *OpportunityRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("call_id = ?", id).Delete(&model.CallApplication{}).Error; err != nil {
			return fmt.Errorf("failed to delete call applications: %w", err)
		}
		result := tx.Delete(&model.VolunteerCall{}, "id = ?", id)
		if result.Error != nil {
			return fmt.Errorf("failed to delete volunteer call: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return domain.ErrCallNotFound
		}
		return nil
	})
}

// List orders admin results by creation time and public results by event date.
func (r *OpportunityRepository) List(ctx context.Context, filter CallFilter) ([]*model.VolunteerCall, int64, error) {
	var calls []*model.VolunteerCall
	var count int64

	query := r.db.WithContext(ctx).Model(&model.VolunteerCall{})
	order := "created_at DESC"
	if filter.OpenAt != nil {
		query = query.Where("is_published = ? AND status = ? AND deadline >= ?", true, model.CallOpen, *filter.OpenAt)
		order = "event_date ASC"
	} else if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}

	if err := query.Count(&count).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count volunteer calls: %w", err)
	}

	if err := paginate(query, filter.Page).Order(order).Find(&calls).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list volunteer calls: %w", err)
	}

	return calls, count, nil
}

func (r *OpportunityRepository) HasApplicant(ctx context.Context, callID uuid.UUID, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.CallApplication{}).
		Where("call_id = ? AND email = ?", callID, email).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check call applicants: %w", err)
	}
	return count > 0, nil
}

// AddApplication appends an applicant. The (call_id, email) unique index turns a
// concurrent duplicate into domain.ErrDuplicateApplicant.
func (r *OpportunityRepository) AddApplication(ctx context.Context, application *model.CallApplication) error {
	if err := r.db.WithContext(ctx).Create(application).Error; err != nil {
		return duplicate(err, domain.ErrDuplicateApplicant, "create call application")
	}
	return nil
}

func (r *OpportunityRepository) UpdateApplicationStatus(ctx context.Context, callID, applicationID uuid.UUID, status model.CallApplicationStatus) error {
	result := r.db.WithContext(ctx).Model(&model.CallApplication{}).
		Where("id = ? AND call_id = ?", applicationID, callID).
		Update("status", status)
	if result.Error != nil {
		return fmt.Errorf("failed to update call application: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrCallApplicationNotFound
	}
	return nil
}

func (r *OpportunityRepository) IncrementViews(ctx context.Context, id uuid.UUID) error {
	err := r.db.WithContext(ctx).Model(&model.VolunteerCall{}).
		Where("id = ?", id).
		UpdateColumn("view_count", gorm.Expr("view_count + 1")).Error
	if err != nil {
		return fmt.Errorf("failed to increment call views: %w", err)
	}
	return nil
}

func (r *OpportunityRepository) Stats(ctx context.Context) (*CallStats, error) {
	var stats CallStats
	err := r.db.WithContext(ctx).Model(&model.VolunteerCall{}).
		Select(`COUNT(*) AS total,
			COUNT(*) FILTER (WHERE is_published) AS published,
			COUNT(*) FILTER (WHERE status = ?) AS open,
			COALESCE(SUM(view_count), 0) AS total_views`, model.CallOpen).
		Scan(&stats).Error
	if err != nil {
		return nil, fmt.Errorf("failed to compute call stats: %w", err)
	}

	if err := r.db.WithContext(ctx).Model(&model.CallApplication{}).Count(&stats.TotalApplications).Error; err != nil {
		return nil, fmt.Errorf("failed to count call applications: %w", err)
	}
	return &stats, nil
}
