// internal/repository/account.go
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

type AccountFilter struct {
	Role     model.Role
	IsActive *bool
	Page     Page
}

type AccountRepositoryIface interface {
	Create(ctx context.Context, account *model.Account) error
	FindByEmail(ctx context.Context, email string) (*model.Account, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.Account, error)
	Update(ctx context.Context, account *model.Account) error
	TouchLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error
	ExistsWithRole(ctx context.Context, role model.Role) (bool, error)
	List(ctx context.Context, filter AccountFilter) ([]*model.Account, int64, error)
}

type AccountRepository struct {
	db *gorm.DB
}

func NewAccountRepository(db *gorm.DB) *AccountRepository {
	return &AccountRepository{db: db}
}

func (r *AccountRepository) Create(ctx context.Context, account *model.Account) error {
	if err := r.db.WithContext(ctx).Create(account).Error; err != nil {
		return duplicate(err, domain.ErrEmailAlreadyExists, "create account")
	}
	return nil
}

func (r *AccountRepository) FindByEmail(ctx context.Context, email string) (*model.Account, error) {
	var account model.Account
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&account).Error; err != nil {
		return nil, notFound(err, domain.ErrAccountNotFound, "find account")
	}
	return &account, nil
}

func (r *AccountRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Account, error) {
	var account model.Account
	if err := r.db.WithContext(ctx).First(&account, "id = ?", id).Error; err != nil {
		return nil, notFound(err, domain.ErrAccountNotFound, "find account")
	}
	return &account, nil
}

// accountColumns are the columns Update writes. last_login_at belongs to
// TouchLastLogin.
var accountColumns = []string{"full_name", "phone_number", "password_hash", "role", "is_active", "updated_at"}

func (r *AccountRepository) Update(ctx context.Context, account *model.Account) error {
	result := r.db.WithContext(ctx).Model(account).Select(accountColumns).Updates(account)
	if result.Error != nil {
		return fmt.Errorf("failed to update account: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrAccountNotFound
	}
	return nil
}

// TouchLastLogin stamps last_login_at without rewriting the rest of the row.
func (r *AccountRepository) TouchLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	result := r.db.WithContext(ctx).Model(&model.Account{}).Where("id = ?", id).Update("last_login_at", at)
	if result.Error != nil {
		return fmt.Errorf("failed to update last login: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrAccountNotFound
	}
	return nil
}

func (r *AccountRepository) ExistsWithRole(ctx context.Context, role model.Role) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Account{}).Where("role = ?", role).Limit(1).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to count accounts: %w", err)
	}
	return count > 0, nil
}

// List returns accounts newest first.
func (r *AccountRepository) List(ctx context.Context, filter AccountFilter) ([]*model.Account, int64, error) {
	var accounts []*model.Account
	var count int64

	query := r.db.WithContext(ctx).Model(&model.Account{})
	if filter.Role != "" {
		query = query.Where("role = ?", filter.Role)
	}
	if filter.IsActive != nil {
		query = query.Where("is_active = ?", *filter.IsActive)
	}

	if err := query.Count(&count).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count accounts: %w", err)
	}

	if err := paginate(query, filter.Page).Order("created_at DESC").Find(&accounts).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list accounts: %w", err)
	}

	return accounts, count, nil
}
