package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/agriformation/backoffice/internal/domain"
	"github.com/agriformation/backoffice/internal/mocks"
	"github.com/agriformation/backoffice/internal/model"
	"github.com/agriformation/backoffice/internal/repository"
	"github.com/agriformation/backoffice/internal/service"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestVolunteerAssignProgram(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	staff := &model.Account{ID: uuid.New(), Role: model.RoleAdmin}
	profileID := uuid.New()

	t.Run("end before start", func(t *testing.T) {
		svc := service.NewVolunteerService(mocks.NewMockVolunteerRepositoryIface(ctrl), nil, nil)
		start := time.Now()
		end := start.Add(-24 * time.Hour)
		_, err := svc.AssignProgram(context.Background(), profileID, service.AssignProgramInput{
			ProgramName: "School gardens",
			StartDate:   &start,
			EndDate:     &end,
		}, staff)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("adds an active assignment", func(t *testing.T) {
		repo := mocks.NewMockVolunteerRepositoryIface(ctrl)
		profile := &model.VolunteerProfile{ID: profileID}
		gomock.InOrder(
			repo.EXPECT().AddAssignment(gomock.Any(), profileID, gomock.Any()).DoAndReturn(func(_ context.Context, _ uuid.UUID, a *model.VolunteerAssignment) error {
				assert.Equal(t, "School gardens", a.ProgramName)
				assert.Equal(t, model.AssignmentActive, a.Status)
				profile.Assignments = append(profile.Assignments, *a)
				return nil
			}),
			repo.EXPECT().FindByID(gomock.Any(), profileID).Return(profile, nil),
		)

		svc := service.NewVolunteerService(repo, nil, nil)
		got, err := svc.AssignProgram(context.Background(), profileID, service.AssignProgramInput{ProgramName: " School gardens "}, staff)

		require.NoError(t, err)
		assert.Len(t, got.Assignments, 1)
	})
}

func TestVolunteerOwnProfile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	accountID := uuid.New()
	repo := mocks.NewMockVolunteerRepositoryIface(ctrl)
	profile := &model.VolunteerProfile{ID: uuid.New(), AccountID: accountID, Status: model.VolunteerApproved}
	repo.EXPECT().FindByAccountID(gomock.Any(), accountID).Return(profile, nil)
	repo.EXPECT().UpdateProfile(gomock.Any(), profile).Return(nil)

	skills := []string{" composting ", "", "irrigation"}
	availability := model.AvailabilityWeekends
	svc := service.NewVolunteerService(repo, nil, nil)
	got, err := svc.UpdateOwnProfile(context.Background(), accountID, service.ProfilePatch{
		Skills:       &skills,
		Availability: &availability,
		Location:     &model.Location{State: "Kaduna", LGA: "Zaria"},
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"composting", "irrigation"}, []string(got.Skills))
	assert.Equal(t, model.AvailabilityWeekends, got.Availability)
	assert.Equal(t, "Zaria", got.Location.Data().LGA)
	assert.Equal(t, model.VolunteerApproved, got.Status)

	bad := model.Availability("sometimes")
	_, err = svc.UpdateOwnProfile(context.Background(), accountID, service.ProfilePatch{Availability: &bad})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestVolunteerStatusAndHours(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	staff := &model.Account{ID: uuid.New(), Role: model.RoleAdmin}

	t.Run("status change records the reviewer", func(t *testing.T) {
		repo := mocks.NewMockVolunteerRepositoryIface(ctrl)
		logger := mocks.NewMockLogger(ctrl)
		profile := &model.VolunteerProfile{ID: uuid.New(), Status: model.VolunteerApproved}
		repo.EXPECT().FindByID(gomock.Any(), profile.ID).Return(profile, nil)
		repo.EXPECT().UpdateReview(gomock.Any(), profile).Return(nil)
		logger.EXPECT().Record(gomock.Any(), gomock.Any())

		svc := service.NewVolunteerService(repo, nil, logger)
		got, err := svc.UpdateStatus(context.Background(), profile.ID, service.VolunteerStatusInput{Status: model.VolunteerOnHold, Notes: "travelling"}, staff)

		require.NoError(t, err)
		assert.Equal(t, model.VolunteerOnHold, got.Status)
		assert.Equal(t, &staff.ID, got.ReviewedByID)
		assert.Equal(t, "travelling", got.ReviewNotes)
	})

	t.Run("hours must be positive", func(t *testing.T) {
		svc := service.NewVolunteerService(mocks.NewMockVolunteerRepositoryIface(ctrl), nil, nil)
		_, err := svc.AddHours(context.Background(), uuid.New(), 0)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("dashboard", func(t *testing.T) {
		repo := mocks.NewMockVolunteerRepositoryIface(ctrl)
		apps := mocks.NewMockApplicationRepositoryIface(ctrl)
		repo.EXPECT().Stats(gomock.Any()).Return(&repository.VolunteerStats{Total: 4, Active: 3, TotalHours: 12.5}, nil)
		apps.EXPECT().CountByStatus(gomock.Any(), model.ApplicationPending).Return(int64(2), nil)
		apps.EXPECT().Recent(gomock.Any(), 5).Return(nil, nil)

		svc := service.NewVolunteerService(repo, apps, nil)
		stats, err := svc.DashboardStats(context.Background())

		require.NoError(t, err)
		assert.Equal(t, int64(3), stats.ActiveVolunteers)
		assert.Equal(t, int64(2), stats.PendingApplications)
		assert.NotNil(t, stats.RecentApplications)
	})
}
