// internal/service/account.go
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/agriformation/backoffice/internal/audit"
	"github.com/agriformation/backoffice/internal/auth"
	"github.com/agriformation/backoffice/internal/config"
	"github.com/agriformation/backoffice/internal/domain"
	"github.com/agriformation/backoffice/internal/model"
	"github.com/agriformation/backoffice/internal/repository"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type AccountService struct {
	repo           repository.AccountRepositoryIface
	passwordHasher *auth.PasswordHasher
	tokenManager   *auth.TokenManager
	audit          audit.Logger
	config         *config.Config
	validate       *validator.Validate
}

func NewAccountService(
	repo repository.AccountRepositoryIface,
	passwordHasher *auth.PasswordHasher,
	tokenManager *auth.TokenManager,
	auditLogger audit.Logger,
	cfg *config.Config,
) *AccountService {
	if auditLogger == nil {
		auditLogger = audit.NoOpLogger{}
	}
	return &AccountService{
		repo:           repo,
		passwordHasher: passwordHasher,
		tokenManager:   tokenManager,
		audit:          auditLogger,
		config:         cfg,
		validate:       newValidator(),
	}
}

type RegisterInput struct {
	FullName    string     `json:"fullName" validate:"required,max=200"`
	Email       string     `json:"email" validate:"required,email"`
	Password    string     `json:"password" validate:"required,min=8,max=128"`
	PhoneNumber string     `json:"phoneNumber" validate:"max=32"`
	Role        model.Role `json:"role"`
}

type AuthOutput struct {
	User  model.AccountSummary `json:"user"`
	Token string               `json:"token,omitempty"`
}

// Register creates an account. Anyone may self-register as a volunteer; any
// other role requires a superadmin actor. Only self-registration returns a token.
func (s *AccountService) Register(ctx context.Context, input RegisterInput, actor *model.Account) (*AuthOutput, error) {
	input.FullName = strings.TrimSpace(input.FullName)
	input.Email = normalizeEmail(input.Email)
	input.PhoneNumber = strings.TrimSpace(input.PhoneNumber)
	if input.Role == "" {
		input.Role = model.RoleVolunteer
	}

	if err := validateStruct(s.validate, input); err != nil {
		return nil, err
	}
	if !input.Role.Valid() {
		return nil, domain.Invalid("role", domain.ErrInvalidRole.Error())
	}
	if input.Role != model.RoleVolunteer && (actor == nil || actor.Role != model.RoleSuperadmin) {
		return nil, domain.ErrForbidden
	}

	if _, err := s.repo.FindByEmail(ctx, input.Email); err == nil {
		return nil, domain.ErrEmailAlreadyExists
	} else if !errors.Is(err, domain.ErrAccountNotFound) {
		return nil, fmt.Errorf("checking email: %w", err)
	}

	hash, err := s.passwordHasher.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	account := &model.Account{
		FullName:     input.FullName,
		Email:        input.Email,
		PhoneNumber:  input.PhoneNumber,
		PasswordHash: hash,
		Role:         input.Role,
		IsActive:     true,
	}
	if actor != nil {
		account.CreatedByID = &actor.ID
	}

	if err := s.repo.Create(ctx, account); err != nil {
		return nil, err
	}

	out := &AuthOutput{User: account.Summary()}
	if actor == nil {
		token, err := s.tokenManager.Generate(account.ID, account.Email)
		if err != nil {
			return nil, fmt.Errorf("generating token: %w", err)
		}
		out.Token = token
		return out, nil
	}

	action := model.ActionAccountRegister
	if account.Role != model.RoleVolunteer {
		action = model.ActionAccountCreateAdmin
	}
	s.audit.Record(ctx, audit.Event{
		Action:     action,
		Actor:      actor,
		EntityType: "account",
		EntityID:   account.ID.String(),
		Context:    map[string]interface{}{"role": account.Role, "email": account.Email},
	})

	return out, nil
}

type CreateAdminInput struct {
	FullName    string `json:"fullName"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	PhoneNumber string `json:"phoneNumber"`
}

// CreateAdmin is Register with the admin role.
func (s *AccountService) CreateAdmin(ctx context.Context, input CreateAdminInput, actor *model.Account) (*AuthOutput, error) {
	return s.Register(ctx, RegisterInput{
		FullName:    input.FullName,
		Email:       input.Email,
		Password:    input.Password,
		PhoneNumber: input.PhoneNumber,
		Role:        model.RoleAdmin,
	}, actor)
}

type LoginInput struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Login checks credentials and issues a token. Unknown emails and wrong
// passwords are indistinguishable to the caller. The active flag is checked
// only once the password has matched.
func (s *AccountService) Login(ctx context.Context, input LoginInput) (*AuthOutput, error) {
	input.Email = normalizeEmail(input.Email)
	if err := validateStruct(s.validate, input); err != nil {
		return nil, err
	}

	account, err := s.repo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			s.passwordHasher.VerifyDummy(input.Password)
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	verified, err := s.passwordHasher.Verify(input.Password, account.PasswordHash)
	if err != nil {
		return nil, fmt.Errorf("verifying password: %w", err)
	}
	if !verified {
		return nil, domain.ErrInvalidCredentials
	}

	if !account.IsActive {
		return nil, domain.ErrAccountDeactivated
	}

	now := time.Now().UTC()
	if err := s.repo.TouchLastLogin(ctx, account.ID, now); err != nil {
		slog.WarnContext(ctx, "failed to record last login", "error", err, "accountID", account.ID)
	} else {
		account.LastLoginAt = &now
	}

	token, err := s.tokenManager.Generate(account.ID, account.Email)
	if err != nil {
		return nil, fmt.Errorf("generating token: %w", err)
	}

	return &AuthOutput{User: account.Summary(), Token: token}, nil
}

// Authenticate resolves a bearer token to its live account. Role and active
// state come from the store, never from the token.
func (s *AccountService) Authenticate(ctx context.Context, token string) (*model.Account, error) {
	claims, err := s.tokenManager.Validate(token)
	if err != nil {
		return nil, err
	}

	id, err := uuid.Parse(claims.AccountID)
	if err != nil {
		return nil, domain.ErrInvalidToken
	}

	account, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !account.IsActive {
		return nil, domain.ErrAccountDeactivated
	}

	return account, nil
}

// EnsureSuperadmin creates the bootstrap superadmin when none exists. It is
// safe to call on every start.
func (s *AccountService) EnsureSuperadmin(ctx context.Context) (bool, error) {
	exists, err := s.repo.ExistsWithRole(ctx, model.RoleSuperadmin)
	if err != nil {
		return false, err
	}
	if exists {
		return false, nil
	}

	cfg := s.config.Superadmin
	hash, err := s.passwordHasher.Hash(cfg.Password)
	if err != nil {
		return false, fmt.Errorf("hashing password: %w", err)
	}

	account := &model.Account{
		FullName:     cfg.Name,
		Email:        normalizeEmail(cfg.Email),
		PasswordHash: hash,
		Role:         model.RoleSuperadmin,
		IsActive:     true,
	}
	if err := s.repo.Create(ctx, account); err != nil {
		return false, fmt.Errorf("creating superadmin: %w", err)
	}

	slog.InfoContext(ctx, "superadmin account created", "email", account.Email, "accountID", account.ID)
	return true, nil
}

type AccountListInput struct {
	Role     model.Role
	IsActive *bool
	Page     repository.Page
}

func (s *AccountService) ListAccounts(ctx context.Context, input AccountListInput) (*Page[*model.Account], error) {
	if input.Role != "" && !input.Role.Valid() {
		return nil, domain.Invalid("role", domain.ErrInvalidRole.Error())
	}
	page := input.Page.Normalize(repository.DefaultPageSize)
	accounts, total, err := s.repo.List(ctx, repository.AccountFilter{Role: input.Role, IsActive: input.IsActive, Page: page})
	if err != nil {
		return nil, err
	}
	return newPage(accounts, total, page), nil
}

// UpdateRole moves an account between admin and volunteer. Superadmin is never
// assignable and an actor cannot change their own role.
func (s *AccountService) UpdateRole(ctx context.Context, id uuid.UUID, role model.Role, actor *model.Account) (*model.Account, error) {
	if role != model.RoleAdmin && role != model.RoleVolunteer {
		return nil, domain.Invalid("role", "must be admin or volunteer")
	}
	if actor != nil && actor.ID == id {
		return nil, domain.ErrForbidden
	}

	account, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	previous := account.Role
	account.Role = role
	if err := s.repo.Update(ctx, account); err != nil {
		return nil, err
	}

	s.audit.Record(ctx, audit.Event{
		Action:     model.ActionAccountRoleChange,
		Actor:      actor,
		EntityType: "account",
		EntityID:   account.ID.String(),
		Context:    map[string]interface{}{"from": previous, "to": role},
	})
	return account, nil
}

// ToggleActive flips is_active. An actor cannot deactivate themselves.
func (s *AccountService) ToggleActive(ctx context.Context, id uuid.UUID, actor *model.Account) (*model.Account, error) {
	if actor != nil && actor.ID == id {
		return nil, domain.ErrForbidden
	}

	account, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	account.IsActive = !account.IsActive
	if err := s.repo.Update(ctx, account); err != nil {
		return nil, err
	}

	s.audit.Record(ctx, audit.Event{
		Action:     model.ActionAccountToggleActive,
		Actor:      actor,
		EntityType: "account",
		EntityID:   account.ID.String(),
		Context:    map[string]interface{}{"isActive": account.IsActive},
	})
	return account, nil
}

// ResetPassword replaces the password of the account with the given email.
func (s *AccountService) ResetPassword(ctx context.Context, email, password string) error {
	if len(password) < 8 {
		return domain.Invalid("password", "must be at least 8 characters")
	}

	account, err := s.repo.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return err
	}

	hash, err := s.passwordHasher.Hash(password)
	if err != nil {
		return fmt.Errorf("hashing password: %w", err)
	}
	account.PasswordHash = hash
	if err := s.repo.Update(ctx, account); err != nil {
		return err
	}

	s.audit.Record(ctx, audit.Event{
		Action:     model.ActionAccountResetPassword,
		EntityType: "account",
		EntityID:   account.ID.String(),
	})
	return nil
}

// IssueToken mints a token for an active account without a password check.
func (s *AccountService) IssueToken(ctx context.Context, email string) (string, error) {
	account, err := s.repo.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return "", err
	}
	if !account.IsActive {
		return "", domain.ErrAccountDeactivated
	}
	return s.tokenManager.Generate(account.ID, account.Email)
}
