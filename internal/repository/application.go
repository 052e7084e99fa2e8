// internal/repository/application.go
package repository

import (
	"context"
	"fmt"

	"github.com/agriformation/backoffice/internal/domain"
	"github.com/agriformation/backoffice/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ApplicationFilter struct {
	Status model.ApplicationStatus
	Page   Page
}

type ApplicationRepositoryIface interface {
	Create(ctx context.Context, app *model.Application) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Application, error)
	HasPending(ctx context.Context, email string) (bool, error)
	Save(ctx context.Context, app *model.Application) error
	Accept(ctx context.Context, app *model.Application, account *model.Account, profile *model.VolunteerProfile) error
	List(ctx context.Context, filter ApplicationFilter) ([]*model.Application, int64, error)
	CountByStatus(ctx context.Context, status model.ApplicationStatus) (int64, error)
	Recent(ctx context.Context, n int) ([]*model.Application, error)
}

type ApplicationRepository struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) *ApplicationRepository {
	return &ApplicationRepository{db: db}
}

func (r *ApplicationRepository) Create(ctx context.Context, app *model.Application) error {
	if err := r.db.WithContext(ctx).Create(app).Error; err != nil {
		return duplicate(err, domain.ErrDuplicatePending, "create application")
	}
	return nil
}

func (r *ApplicationRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Application, error) {
	var app model.Application
	if err := r.db.WithContext(ctx).First(&app, "id = ?", id).Error; err != nil {
		return nil, notFound(err, domain.ErrApplicationNotFound, "find application")
	}
	return &app, nil
}

func (r *ApplicationRepository) HasPending(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Application{}).
		Where("email = ? AND status = ?", email, model.ApplicationPending).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check pending applications: %w", err)
	}
	return count > 0, nil
}

func (r *ApplicationRepository) Save(ctx context.Context, app *model.Application) error {
	if err := r.db.WithContext(ctx).Save(app).Error; err != nil {
		return duplicate(err, domain.ErrDuplicatePending, "update application")
	}
	return nil
}

// Accept records the decision and creates the volunteer account and profile in
// one transaction. Nothing is written if any step fails.
func (r *ApplicationRepository) Accept(ctx context.Context, app *model.Application, account *model.Account, profile *model.VolunteerProfile) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(app).Error; err != nil {
			return fmt.Errorf("failed to update application: %w", err)
		}

		if err := tx.Create(account).Error; err != nil {
			return duplicate(err, domain.ErrEmailAlreadyExists, "create account")
		}

		profile.AccountID = account.ID
		if err := tx.Omit("Account", "Assignments").Create(profile).Error; err != nil {
			return duplicate(err, domain.ErrEmailAlreadyExists, "create volunteer profile")
		}

		return nil
	})
}

// List returns applications newest first.
func (r *ApplicationRepository) List(ctx context.Context, filter ApplicationFilter) ([]*model.Application, int64, error) {
	var apps []*model.Application
	var count int64

	query := r.db.WithContext(ctx).Model(&model.Application{})
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	if err := query.Count(&count).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count applications: %w", err)
	}

	if err := paginate(query, filter.Page).Order("created_at DESC").Find(&apps).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list applications: %w", err)
	}

	return apps, count, nil
}

func (r *ApplicationRepository) CountByStatus(ctx context.Context, status model.ApplicationStatus) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Application{}).Where("status = ?", status).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count applications: %w", err)
	}
	return count, nil
}

func (r *ApplicationRepository) Recent(ctx context.Context, n int) ([]*model.Application, error) {
	var apps []*model.Application
	if err := r.db.WithContext(ctx).Order("created_at DESC").Limit(n).Find(&apps).Error; err != nil {
		return nil, fmt.Errorf("failed to list recent applications: %w", err)
	}
	return apps, nil
}
