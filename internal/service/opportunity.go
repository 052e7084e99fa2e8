// internal/service/opportunity.go
package service

import (
	"context"
	"errors"
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

const publicPageSize = 12

type OpportunityService struct {
	repo     repository.OpportunityRepositoryIface
	media    media.Host
	audit    audit.Logger
	validate *validator.Validate
}

func NewOpportunityService(repo repository.OpportunityRepositoryIface, host media.Host, auditLogger audit.Logger) *OpportunityService {
	if auditLogger == nil {
		auditLogger = audit.NoOpLogger{}
	}
	return &OpportunityService{
		repo:     repo,
		media:    host,
		audit:    auditLogger,
		validate: newValidator(),
	}
}

type CallInput struct {
	Title              string             `json:"title" validate:"required,max=200"`
	Description        string             `json:"description" validate:"required,max=10000"`
	Requirements       string             `json:"requirements" validate:"required,max=10000"`
	EventDate          time.Time          `json:"eventDate" validate:"required"`
	Location           string             `json:"location" validate:"required,max=300"`
	NumberOfVolunteers int                `json:"numberOfVolunteers" validate:"required,min=1"`
	Deadline           time.Time          `json:"deadline" validate:"required"`
	Category           model.CallCategory `json:"category" validate:"omitempty,oneof=farm_work event_support community_outreach training workshop other"`
}

func (in *CallInput) trim() {
	in.Title = strings.TrimSpace(in.Title)
	in.Description = strings.TrimSpace(in.Description)
	in.Requirements = strings.TrimSpace(in.Requirements)
	in.Location = strings.TrimSpace(in.Location)
}

// uploadImage stores a validated image, marking every failure as upstream.
func uploadImage(ctx context.Context, host media.Host, file media.File, folder string) (*media.Asset, error) {
	asset, err := host.Upload(ctx, file, folder, media.DefaultTransform)
	if err != nil {
		if errors.Is(err, domain.ErrUpstream) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrUpstream, err)
	}
	return asset, nil
}

// discard deletes a remote asset whose owning row was never written or was removed.
func discard(ctx context.Context, host media.Host, publicID string) {
	if err := host.Delete(ctx, publicID); err != nil {
		slog.WarnContext(ctx, "failed to delete remote asset", "error", err, "publicID", publicID)
	}
}

// Create stores a new draft call. The design image is mandatory.
func (s *OpportunityService) Create(ctx context.Context, input CallInput, image *media.File, creator *model.Account) (*model.VolunteerCall, error) {
	input.trim()
	if err := validateStruct(s.validate, input); err != nil {
		return nil, err
	}
	if image == nil {
		return nil, domain.ErrMissingAsset
	}

	asset, err := uploadImage(ctx, s.media, *image, media.FolderVolunteerCalls)
	if err != nil {
		return nil, err
	}

	call := &model.VolunteerCall{
		Title:               input.Title,
		Description:         input.Description,
		Requirements:        input.Requirements,
		DesignImageURL:      asset.URL,
		DesignImagePublicID: asset.PublicID,
		EventDate:           input.EventDate,
		Location:            input.Location,
		NumberOfVolunteers:  input.NumberOfVolunteers,
		Deadline:            input.Deadline,
		Category:            input.Category,
		Status:              model.CallDraft,
		IsPublished:         false,
		CreatedByID:         creator.ID,
	}
	if err := s.repo.Create(ctx, call); err != nil {
		discard(ctx, s.media, asset.PublicID)
		return nil, err
	}

	s.audit.Record(ctx, audit.Event{
		Action:     model.ActionCallCreate,
		Actor:      creator,
		EntityType: "volunteer_call",
		EntityID:   call.ID.String(),
		Context:    map[string]interface{}{"title": call.Title},
	})
	return call, nil
}

type CallPatch struct {
	Title              *string             `json:"title" validate:"omitempty,min=1,max=200"`
	Description        *string             `json:"description" validate:"omitempty,min=1,max=10000"`
	Requirements       *string             `json:"requirements" validate:"omitempty,min=1,max=10000"`
	EventDate          *time.Time          `json:"eventDate"`
	Location           *string             `json:"location" validate:"omitempty,min=1,max=300"`
	NumberOfVolunteers *int                `json:"numberOfVolunteers" validate:"omitempty,min=1"`
	Deadline           *time.Time          `json:"deadline"`
	Category           *model.CallCategory `json:"category" validate:"omitempty,oneof=farm_work event_support community_outreach training workshop other"`
}

// Update applies patch and, when image is given, replaces the design image.
// The previous remote image is removed once the new one is saved.
func (s *OpportunityService) Update(ctx context.Context, id uuid.UUID, patch CallPatch, image *media.File, actor *model.Account) (*model.VolunteerCall, error) {
	if err := validateStruct(s.validate, patch); err != nil {
		return nil, err
	}

	call, err := s.repo.FindByID(ctx, id, false)
	if err != nil {
		return nil, err
	}

	setString := func(dst *string, v *string) {
		if v != nil {
			*dst = strings.TrimSpace(*v)
		}
	}
	setString(&call.Title, patch.Title)
	setString(&call.Description, patch.Description)
	setString(&call.Requirements, patch.Requirements)
	setString(&call.Location, patch.Location)
	if patch.EventDate != nil {
		call.EventDate = *patch.EventDate
	}
	if patch.NumberOfVolunteers != nil {
		call.NumberOfVolunteers = *patch.NumberOfVolunteers
	}
	if patch.Deadline != nil {
		call.Deadline = *patch.Deadline
	}
	if patch.Category != nil {
		call.Category = *patch.Category
	}

	var oldPublicID string
	if image != nil {
		asset, err := uploadImage(ctx, s.media, *image, media.FolderVolunteerCalls)
		if err != nil {
			return nil, err
		}
		oldPublicID = call.DesignImagePublicID
		call.DesignImageURL = asset.URL
		call.DesignImagePublicID = asset.PublicID
	}

	call.LastUpdatedByID = &actor.ID
	if err := s.repo.Update(ctx, call); err != nil {
		if image != nil {
			discard(ctx, s.media, call.DesignImagePublicID)
		}
		return nil, err
	}
	if oldPublicID != "" {
		discard(ctx, s.media, oldPublicID)
	}

	s.audit.Record(ctx, audit.Event{
		Action:     model.ActionCallUpdate,
		Actor:      actor,
		EntityType: "volunteer_call",
		EntityID:   call.ID.String(),
		Context:    map[string]interface{}{"imageReplaced": image != nil},
	})
	return call, nil
}

// TogglePublish flips is_published. Publishing a draft also opens it.
func (s *OpportunityService) TogglePublish(ctx context.Context, id uuid.UUID, actor *model.Account) (*model.VolunteerCall, error) {
	if err := s.repo.TogglePublish(ctx, id, actor.ID); err != nil {
		return nil, err
	}

	call, err := s.repo.FindByID(ctx, id, false)
	if err != nil {
		return nil, err
	}

	s.audit.Record(ctx, audit.Event{
		Action:     model.ActionCallPublish,
		Actor:      actor,
		EntityType: "volunteer_call",
		EntityID:   call.ID.String(),
		Context:    map[string]interface{}{"isPublished": call.IsPublished, "status": call.Status},
	})
	return call, nil
}

func (s *OpportunityService) SetStatus(ctx context.Context, id uuid.UUID, status model.CallStatus, actor *model.Account) (*model.VolunteerCall, error) {
	if !status.Valid() {
		return nil, domain.Invalid("status", "must be draft, open, closed or cancelled")
	}

	call, err := s.repo.FindByID(ctx, id, false)
	if err != nil {
		return nil, err
	}

	previous := call.Status
	if err := s.repo.SetStatus(ctx, id, status, actor.ID); err != nil {
		return nil, err
	}
	call.Status = status
	call.LastUpdatedByID = &actor.ID

	s.audit.Record(ctx, audit.Event{
		Action:     model.ActionCallStatus,
		Actor:      actor,
		EntityType: "volunteer_call",
		EntityID:   call.ID.String(),
		Context:    map[string]interface{}{"from": previous, "to": status},
	})
	return call, nil
}

// Delete removes the call with its applications, then its remote design image.
func (s *OpportunityService) Delete(ctx context.Context, id uuid.UUID, actor *model.Account) error {
	call, err := s.repo.FindByID(ctx, id, false)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	discard(ctx, s.media, call.DesignImagePublicID)

	s.audit.Record(ctx, audit.Event{
		Action:     model.ActionCallDelete,
		Actor:      actor,
		EntityType: "volunteer_call",
		EntityID:   id.String(),
		Context:    map[string]interface{}{"title": call.Title},
	})
	return nil
}

type CallListInput struct {
	Status   model.CallStatus
	Category model.CallCategory
	Page     repository.Page
}

func (s *OpportunityService) ListAdmin(ctx context.Context, input CallListInput) (*Page[*model.VolunteerCall], error) {
	if input.Status != "" && !input.Status.Valid() {
		return nil, domain.Invalid("status", domain.ErrInvalidStatus.Error())
	}
	page := input.Page.Normalize(repository.DefaultPageSize)
	calls, total, err := s.repo.List(ctx, repository.CallFilter{Status: input.Status, Category: input.Category, Page: page})
	if err != nil {
		return nil, err
	}
	return newPage(calls, total, page), nil
}

// ListPublic returns published, open calls that still accept applications.
func (s *OpportunityService) ListPublic(ctx context.Context, category model.CallCategory, page repository.Page) (*Page[*model.VolunteerCall], error) {
	now := time.Now().UTC()
	page = page.Normalize(publicPageSize)
	calls, total, err := s.repo.List(ctx, repository.CallFilter{Category: category, OpenAt: &now, Page: page})
	if err != nil {
		return nil, err
	}
	return newPage(calls, total, page), nil
}

// Get returns a call with its applications for staff.
func (s *OpportunityService) Get(ctx context.Context, id uuid.UUID) (*model.VolunteerCall, error) {
	return s.repo.FindByID(ctx, id, true)
}

// GetPublic returns a published call and counts the view.
func (s *OpportunityService) GetPublic(ctx context.Context, id uuid.UUID) (*model.VolunteerCall, error) {
	call, err := s.repo.FindByID(ctx, id, false)
	if err != nil {
		return nil, err
	}
	if !call.IsPublished {
		return nil, domain.ErrCallNotFound
	}

	if err := s.repo.IncrementViews(ctx, id); err != nil {
		return nil, err
	}
	call.ViewCount++
	return call, nil
}

type CallApplyInput struct {
	FullName    string `json:"fullName" validate:"required,max=200"`
	Email       string `json:"email" validate:"required,email"`
	PhoneNumber string `json:"phoneNumber" validate:"max=32"`
	Message     string `json:"message" validate:"max=2000"`
}

// Apply adds an applicant to a published call. Checks run in order: visibility,
// deadline, closed status, duplicate email.
func (s *OpportunityService) Apply(ctx context.Context, id uuid.UUID, input CallApplyInput, account *model.Account) (*model.CallApplication, error) {
	if account != nil {
		if strings.TrimSpace(input.FullName) == "" {
			input.FullName = account.FullName
		}
		if strings.TrimSpace(input.Email) == "" {
			input.Email = account.Email
		}
		if strings.TrimSpace(input.PhoneNumber) == "" {
			input.PhoneNumber = account.PhoneNumber
		}
	}
	input.FullName = strings.TrimSpace(input.FullName)
	input.Email = normalizeEmail(input.Email)
	input.PhoneNumber = strings.TrimSpace(input.PhoneNumber)
	input.Message = strings.TrimSpace(input.Message)

	if err := validateStruct(s.validate, input); err != nil {
		return nil, err
	}

	call, err := s.repo.FindByID(ctx, id, false)
	if err != nil {
		return nil, err
	}
	if !call.IsPublished {
		return nil, domain.ErrCallNotFound
	}
	if time.Now().After(call.Deadline) {
		return nil, domain.ErrDeadlinePassed
	}
	if call.Status == model.CallClosed {
		return nil, domain.ErrCallClosed
	}

	applied, err := s.repo.HasApplicant(ctx, id, input.Email)
	if err != nil {
		return nil, err
	}
	if applied {
		return nil, domain.ErrDuplicateApplicant
	}

	application := &model.CallApplication{
		CallID:      id,
		FullName:    input.FullName,
		Email:       input.Email,
		PhoneNumber: input.PhoneNumber,
		Message:     input.Message,
		Status:      model.CallApplicationPending,
	}
	if account != nil {
		application.AccountID = &account.ID
	}
	if err := s.repo.AddApplication(ctx, application); err != nil {
		return nil, err
	}

	return application, nil
}

func (s *OpportunityService) SetApplicationStatus(ctx context.Context, id, applicationID uuid.UUID, status model.CallApplicationStatus, actor *model.Account) error {
	if !status.Valid() {
		return domain.Invalid("status", "must be pending, accepted or rejected")
	}

	if _, err := s.repo.FindByID(ctx, id, false); err != nil {
		return err
	}
	if err := s.repo.UpdateApplicationStatus(ctx, id, applicationID, status); err != nil {
		return err
	}

	s.audit.Record(ctx, audit.Event{
		Action:     model.ActionCallApplicantStatus,
		Actor:      actor,
		EntityType: "volunteer_call",
		EntityID:   id.String(),
		Context:    map[string]interface{}{"applicationID": applicationID, "status": status},
	})
	return nil
}

func (s *OpportunityService) Stats(ctx context.Context) (*repository.CallStats, error) {
	return s.repo.Stats(ctx)
}
