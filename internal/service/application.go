// internal/service/application.go
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
	"github.com/agriformation/backoffice/internal/domain"
	"github.com/agriformation/backoffice/internal/model"
	"github.com/agriformation/backoffice/internal/repository"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

const temporaryPasswordLength = 12

type ApplicationService struct {
	repo           repository.ApplicationRepositoryIface
	accountRepo    repository.AccountRepositoryIface
	passwordHasher *auth.PasswordHasher
	notifier       CredentialsNotifier
	audit          audit.Logger
	validate       *validator.Validate
}

func NewApplicationService(
	repo repository.ApplicationRepositoryIface,
	accountRepo repository.AccountRepositoryIface,
	passwordHasher *auth.PasswordHasher,
	notifier CredentialsNotifier,
	auditLogger audit.Logger,
) *ApplicationService {
	if auditLogger == nil {
		auditLogger = audit.NoOpLogger{}
	}
	return &ApplicationService{
		repo:           repo,
		accountRepo:    accountRepo,
		passwordHasher: passwordHasher,
		notifier:       notifier,
		audit:          auditLogger,
		validate:       newValidator(),
	}
}

type SubmitApplicationInput struct {
	FullName      string `json:"fullName" validate:"required,max=200"`
	Email         string `json:"email" validate:"required,email"`
	PreferredRole string `json:"preferredRole" validate:"required,max=100"`
	Statement     string `json:"aboutYourself" validate:"required,min=50,max=5000"`
}

// Submit records a new pending application. An email may have only one
// pending application at a time.
func (s *ApplicationService) Submit(ctx context.Context, input SubmitApplicationInput) (*model.Application, error) {
	input.FullName = strings.TrimSpace(input.FullName)
	input.Email = normalizeEmail(input.Email)
	input.PreferredRole = strings.TrimSpace(input.PreferredRole)
	input.Statement = strings.TrimSpace(input.Statement)

	if err := validateStruct(s.validate, input); err != nil {
		return nil, err
	}

	pending, err := s.repo.HasPending(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if pending {
		return nil, domain.ErrDuplicatePending
	}

	app := &model.Application{
		FullName:      input.FullName,
		Email:         input.Email,
		PreferredRole: input.PreferredRole,
		Statement:     input.Statement,
		Status:        model.ApplicationPending,
	}
	if err := s.repo.Create(ctx, app); err != nil {
		return nil, err
	}

	return app, nil
}

type ReviewInput struct {
	Decision model.ApplicationStatus `json:"status"`
	Notes    string                  `json:"notes"`
}

type ReviewOutput struct {
	Application *model.Application      `json:"application"`
	Account     *model.AccountSummary   `json:"user,omitempty"`
	Profile     *model.VolunteerProfile `json:"volunteer,omitempty"`
	// TemporaryPassword is returned only when it could not be emailed.
	TemporaryPassword  string `json:"temporaryPassword,omitempty"`
	CredentialsEmailed bool   `json:"credentialsEmailed"`
	ReReviewed         bool   `json:"reReviewed"`
}

// Review records a decision. Accepting creates the volunteer account and profile
// atomically with the status change. A decision on an already processed
// application overwrites it and is flagged as a re-review.
func (s *ApplicationService) Review(ctx context.Context, id uuid.UUID, input ReviewInput, reviewer *model.Account) (*ReviewOutput, error) {
	if input.Decision != model.ApplicationAccepted && input.Decision != model.ApplicationRejected {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidDecision, domain.ErrInvalidInput)
	}

	app, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	out := &ReviewOutput{Application: app, ReReviewed: app.Status != model.ApplicationPending}
	if out.ReReviewed {
		slog.WarnContext(ctx, "application reviewed again",
			"applicationID", app.ID,
			"previousStatus", app.Status,
			"newStatus", input.Decision,
			"reviewerID", reviewer.ID,
		)
	}

	previous := app.Status
	now := time.Now().UTC()
	app.Status = input.Decision
	app.Notes = strings.TrimSpace(input.Notes)
	app.ProcessedByID = &reviewer.ID
	app.ProcessedAt = &now
	app.ReviewCount++

	var tempPassword string
	if input.Decision == model.ApplicationAccepted {
		if _, err := s.accountRepo.FindByEmail(ctx, app.Email); err == nil {
			return nil, domain.ErrEmailAlreadyExists
		} else if !errors.Is(err, domain.ErrAccountNotFound) {
			return nil, fmt.Errorf("checking email: %w", err)
		}

		tempPassword, err = auth.TemporaryPassword(temporaryPasswordLength)
		if err != nil {
			return nil, err
		}
		hash, err := s.passwordHasher.Hash(tempPassword)
		if err != nil {
			return nil, fmt.Errorf("hashing password: %w", err)
		}

		account := &model.Account{
			FullName:     app.FullName,
			Email:        app.Email,
			PasswordHash: hash,
			Role:         model.RoleVolunteer,
			IsActive:     true,
			CreatedByID:  &reviewer.ID,
		}
		profile := &model.VolunteerProfile{
			PreferredRole: app.PreferredRole,
			Statement:     app.Statement,
			Status:        model.VolunteerApproved,
			ReviewedByID:  &reviewer.ID,
			ReviewedAt:    &now,
			ReviewNotes:   app.Notes,
		}

		if err := s.repo.Accept(ctx, app, account, profile); err != nil {
			return nil, err
		}

		summary := account.Summary()
		out.Account = &summary
		out.Profile = profile
	} else if err := s.repo.Save(ctx, app); err != nil {
		return nil, err
	}

	action := model.ActionApplicationReview
	if out.ReReviewed {
		action = model.ActionApplicationRereview
	}
	s.audit.Record(ctx, audit.Event{
		Action:     action,
		Actor:      reviewer,
		EntityType: "application",
		EntityID:   app.ID.String(),
		Context: map[string]interface{}{
			"from":        previous,
			"to":          app.Status,
			"reviewCount": app.ReviewCount,
		},
	})

	if tempPassword != "" {
		out.CredentialsEmailed = s.deliverCredentials(ctx, app, tempPassword)
		if !out.CredentialsEmailed {
			out.TemporaryPassword = tempPassword
		}
	}

	return out, nil
}

func (s *ApplicationService) deliverCredentials(ctx context.Context, app *model.Application, tempPassword string) bool {
	if s.notifier == nil || !s.notifier.Enabled() {
		return false
	}
	if err := s.notifier.SendVolunteerCredentials(ctx, app.Email, app.FullName, tempPassword); err != nil {
		slog.WarnContext(ctx, "failed to email volunteer credentials", "error", err, "applicationID", app.ID)
		return false
	}
	return true
}

func (s *ApplicationService) Get(ctx context.Context, id uuid.UUID) (*model.Application, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *ApplicationService) List(ctx context.Context, status model.ApplicationStatus, page repository.Page) (*Page[*model.Application], error) {
	switch status {
	case "", model.ApplicationPending, model.ApplicationAccepted, model.ApplicationRejected:
	default:
		return nil, domain.Invalid("status", "must be pending, accepted or rejected")
	}

	page = page.Normalize(repository.DefaultPageSize)
	apps, total, err := s.repo.List(ctx, repository.ApplicationFilter{Status: status, Page: page})
	if err != nil {
		return nil, err
	}
	return newPage(apps, total, page), nil
}
