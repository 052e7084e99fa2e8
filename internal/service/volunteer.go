// internal/service/volunteer.go
package service

import (
	"context"
	"strings"
	"time"

	"github.com/agriformation/backoffice/internal/audit"
	"github.com/agriformation/backoffice/internal/domain"
	"github.com/agriformation/backoffice/internal/model"
	"github.com/agriformation/backoffice/internal/repository"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
)

const recentApplicationsShown = 5

type VolunteerService struct {
	repo     repository.VolunteerRepositoryIface
	appRepo  repository.ApplicationRepositoryIface
	audit    audit.Logger
	validate *validator.Validate
}

func NewVolunteerService(
	repo repository.VolunteerRepositoryIface,
	appRepo repository.ApplicationRepositoryIface,
	auditLogger audit.Logger,
) *VolunteerService {
	if auditLogger == nil {
		auditLogger = audit.NoOpLogger{}
	}
	return &VolunteerService{
		repo:     repo,
		appRepo:  appRepo,
		audit:    auditLogger,
		validate: newValidator(),
	}
}

type AssignProgramInput struct {
	ProgramName string     `json:"programName" validate:"required,max=200"`
	Role        string     `json:"role" validate:"max=100"`
	StartDate   *time.Time `json:"startDate"`
	EndDate     *time.Time `json:"endDate"`
}

// AssignProgram appends an active assignment. Overlapping assignments are allowed.
func (s *VolunteerService) AssignProgram(ctx context.Context, profileID uuid.UUID, input AssignProgramInput, actor *model.Account) (*model.VolunteerProfile, error) {
	input.ProgramName = strings.TrimSpace(input.ProgramName)
	input.Role = strings.TrimSpace(input.Role)
	if err := validateStruct(s.validate, input); err != nil {
		return nil, err
	}
	if input.StartDate != nil && input.EndDate != nil && input.EndDate.Before(*input.StartDate) {
		return nil, domain.Invalid("endDate", "must not be before startDate")
	}

	assignment := &model.VolunteerAssignment{
		ProgramName: input.ProgramName,
		Role:        input.Role,
		StartDate:   input.StartDate,
		EndDate:     input.EndDate,
		Status:      model.AssignmentActive,
	}
	if err := s.repo.AddAssignment(ctx, profileID, assignment); err != nil {
		return nil, err
	}

	s.audit.Record(ctx, audit.Event{
		Action:     model.ActionVolunteerAssign,
		Actor:      actor,
		EntityType: "volunteer",
		EntityID:   profileID.String(),
		Context:    map[string]interface{}{"programName": assignment.ProgramName, "assignmentID": assignment.ID},
	})

	return s.repo.FindByID(ctx, profileID)
}

// ProfilePatch lists the fields a volunteer may change on their own profile.
// Absent fields are left alone; anything else in the request body is ignored.
type ProfilePatch struct {
	PreferredRole *string             `json:"preferredRole" validate:"omitempty,max=100"`
	Statement     *string             `json:"aboutYourself" validate:"omitempty,max=5000"`
	Skills        *[]string           `json:"skills" validate:"omitempty,max=50,dive,max=100"`
	Availability  *model.Availability `json:"availability" validate:"omitempty,oneof=weekdays weekends both flexible"`
	Location      *model.Location     `json:"location"`
}

func (s *VolunteerService) UpdateOwnProfile(ctx context.Context, accountID uuid.UUID, patch ProfilePatch) (*model.VolunteerProfile, error) {
	if err := validateStruct(s.validate, patch); err != nil {
		return nil, err
	}

	profile, err := s.repo.FindByAccountID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	if patch.PreferredRole != nil {
		profile.PreferredRole = strings.TrimSpace(*patch.PreferredRole)
	}
	if patch.Statement != nil {
		profile.Statement = strings.TrimSpace(*patch.Statement)
	}
	if patch.Skills != nil {
		skills := make(pq.StringArray, 0, len(*patch.Skills))
		for _, sk := range *patch.Skills {
			if sk = strings.TrimSpace(sk); sk != "" {
				skills = append(skills, sk)
			}
		}
		profile.Skills = skills
	}
	if patch.Availability != nil {
		profile.Availability = *patch.Availability
	}
	if patch.Location != nil {
		profile.Location = datatypes.NewJSONType(*patch.Location)
	}

	if err := s.repo.UpdateProfile(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

func (s *VolunteerService) GetOwnProfile(ctx context.Context, accountID uuid.UUID) (*model.VolunteerProfile, error) {
	return s.repo.FindByAccountID(ctx, accountID)
}

func (s *VolunteerService) Get(ctx context.Context, id uuid.UUID) (*model.VolunteerProfile, error) {
	return s.repo.FindByID(ctx, id)
}

type VolunteerListInput struct {
	Status        model.VolunteerStatus
	PreferredRole string
	Page          repository.Page
}

func (s *VolunteerService) List(ctx context.Context, input VolunteerListInput) (*Page[*model.VolunteerProfile], error) {
	if input.Status != "" && !input.Status.Valid() {
		return nil, domain.Invalid("status", domain.ErrInvalidStatus.Error())
	}
	page := input.Page.Normalize(repository.DefaultPageSize)
	profiles, total, err := s.repo.List(ctx, repository.VolunteerFilter{
		Status:        input.Status,
		PreferredRole: input.PreferredRole,
		Page:          page,
	})
	if err != nil {
		return nil, err
	}
	return newPage(profiles, total, page), nil
}

type VolunteerStatusInput struct {
	Status model.VolunteerStatus `json:"status"`
	Notes  string                `json:"reviewNotes"`
}

func (s *VolunteerService) UpdateStatus(ctx context.Context, id uuid.UUID, input VolunteerStatusInput, actor *model.Account) (*model.VolunteerProfile, error) {
	if !input.Status.Valid() {
		return nil, domain.Invalid("status", "must be pending, approved, rejected or on-hold")
	}

	profile, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	previous := profile.Status
	now := time.Now().UTC()
	profile.Status = input.Status
	profile.ReviewedByID = &actor.ID
	profile.ReviewedAt = &now
	if notes := strings.TrimSpace(input.Notes); notes != "" {
		profile.ReviewNotes = notes
	}

	if err := s.repo.UpdateReview(ctx, profile); err != nil {
		return nil, err
	}

	s.audit.Record(ctx, audit.Event{
		Action:     model.ActionVolunteerStatus,
		Actor:      actor,
		EntityType: "volunteer",
		EntityID:   profile.ID.String(),
		Context:    map[string]interface{}{"from": previous, "to": profile.Status},
	})
	return profile, nil
}

// AddHours credits contributed hours to a volunteer.
func (s *VolunteerService) AddHours(ctx context.Context, id uuid.UUID, hours float64) (*model.VolunteerProfile, error) {
	if hours <= 0 || hours > 24*366 {
		return nil, domain.Invalid("hours", "must be a positive number of hours")
	}
	if err := s.repo.AddHours(ctx, id, hours); err != nil {
		return nil, err
	}
	return s.repo.FindByID(ctx, id)
}

type DashboardStats struct {
	TotalVolunteers     int64                `json:"totalVolunteers"`
	ActiveVolunteers    int64                `json:"activeVolunteers"`
	PendingApplications int64                `json:"pendingApplications"`
	TotalHours          float64              `json:"totalHours"`
	RecentApplications  []*model.Application `json:"recentApplications"`
}

func (s *VolunteerService) DashboardStats(ctx context.Context) (*DashboardStats, error) {
	vs, err := s.repo.Stats(ctx)
	if err != nil {
		return nil, err
	}
	pending, err := s.appRepo.CountByStatus(ctx, model.ApplicationPending)
	if err != nil {
		return nil, err
	}
	recent, err := s.appRepo.Recent(ctx, recentApplicationsShown)
	if err != nil {
		return nil, err
	}
	if recent == nil {
		recent = []*model.Application{}
	}

	return &DashboardStats{
		TotalVolunteers:     vs.Total,
		ActiveVolunteers:    vs.Active,
		PendingApplications: pending,
		TotalHours:          vs.TotalHours,
		RecentApplications:  recent,
	}, nil
}
