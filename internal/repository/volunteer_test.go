package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/agriformation/backoffice/internal/domain"
	"github.com/agriformation/backoffice/internal/model"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVolunteerAddHours(t *testing.T) {
	id := uuid.New()

	t.Run("adds in the database", func(t *testing.T) {
		db, mock, _ := newMockDB(t)
		repo := NewVolunteerRepository(db)

		mock.ExpectExec(sqlLike(`UPDATE "volunteer_profiles" SET "hours_contributed"=hours_contributed + `, `WHERE id = `)).
			WithArgs(2.5, id.String()).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.AddHours(context.Background(), id, 2.5))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing profile", func(t *testing.T) {
		db, mock, _ := newMockDB(t)
		repo := NewVolunteerRepository(db)

		mock.ExpectExec(sqlLike(`UPDATE "volunteer_profiles"`)).WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.AddHours(context.Background(), id, 1), domain.ErrVolunteerNotFound)
	})
}

func TestVolunteerUpdatesWriteTheirOwnColumns(t *testing.T) {
	reviewer := uuid.New()
	reviewedAt := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	stale := func() *model.VolunteerProfile {
		return &model.VolunteerProfile{
			ID:               uuid.New(),
			AccountID:        uuid.New(),
			PreferredRole:    "field",
			Statement:        "s",
			Availability:     model.AvailabilityWeekends,
			Status:           model.VolunteerApproved,
			ReviewedByID:     &reviewer,
			ReviewedAt:       &reviewedAt,
			HoursContributed: 12,
		}
	}

	t.Run("profile edit", func(t *testing.T) {
		db, mock, log := newMockDB(t)
		repo := NewVolunteerRepository(db)

		mock.ExpectExec(sqlLike(`UPDATE "volunteer_profiles" SET`, `"preferred_role"=`, `WHERE "id" = `)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.UpdateProfile(context.Background(), stale()))

		sql := log.joined()
		assert.NotContains(t, sql, "hours_contributed")
		assert.NotContains(t, sql, `"status"`)
		assert.NotContains(t, sql, "reviewed_by_id")
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("staff review", func(t *testing.T) {
		db, mock, log := newMockDB(t)
		repo := NewVolunteerRepository(db)

		mock.ExpectExec(sqlLike(`UPDATE "volunteer_profiles" SET`, `"status"=`, `"reviewed_by_id"=`, `WHERE "id" = `)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.UpdateReview(context.Background(), stale()))

		sql := log.joined()
		assert.NotContains(t, sql, "hours_contributed")
		assert.NotContains(t, sql, "preferred_role")
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing profile", func(t *testing.T) {
		db, mock, _ := newMockDB(t)
		repo := NewVolunteerRepository(db)

		mock.ExpectExec(sqlLike(`UPDATE "volunteer_profiles"`)).WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.UpdateReview(context.Background(), stale()), domain.ErrVolunteerNotFound)
	})
}
