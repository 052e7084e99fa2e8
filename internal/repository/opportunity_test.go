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

func TestOpportunityTogglePublish(t *testing.T) {
	id, actorID := uuid.New(), uuid.New()

	t.Run("flips the flag and opens drafts in one statement", func(t *testing.T) {
		db, mock, log := newMockDB(t)
		repo := NewOpportunityRepository(db)

		mock.ExpectExec(sqlLike(
			`UPDATE "volunteer_calls" SET "is_published"=NOT is_published`,
			`"status"=CASE WHEN NOT is_published AND status = `, ` THEN `, ` ELSE status END`,
			`WHERE id = `,
		)).
			WithArgs(actorID.String(), string(model.CallDraft), string(model.CallOpen), sqlmock.AnyArg(), id.String()).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.TogglePublish(context.Background(), id, actorID))
		assert.NotContains(t, log.joined(), "view_count")
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing call", func(t *testing.T) {
		db, mock, _ := newMockDB(t)
		repo := NewOpportunityRepository(db)

		mock.ExpectExec(sqlLike(`UPDATE "volunteer_calls"`)).WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.TogglePublish(context.Background(), id, actorID), domain.ErrCallNotFound)
	})
}

func TestOpportunityUpdateLeavesViewsAndPublication(t *testing.T) {
	db, mock, log := newMockDB(t)
	repo := NewOpportunityRepository(db)

	actorID := uuid.New()
	mock.ExpectExec(sqlLike(`UPDATE "volunteer_calls" SET`, `"title"=`, `"deadline"=`, `WHERE "id" = `)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	stale := &model.VolunteerCall{
		ID:                 uuid.New(),
		Title:              "Planting day",
		Description:        "d",
		Requirements:       "r",
		EventDate:          time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		Deadline:           time.Date(2024, 5, 25, 0, 0, 0, 0, time.UTC),
		Location:           "Zaria",
		NumberOfVolunteers: 10,
		Status:             model.CallOpen,
		IsPublished:        true,
		ViewCount:          120,
		LastUpdatedByID:    &actorID,
	}
	require.NoError(t, repo.Update(context.Background(), stale))

	sql := log.joined()
	assert.NotContains(t, sql, "view_count")
	assert.NotContains(t, sql, "is_published")
	assert.NotContains(t, sql, `"status"`)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOpportunityIncrementViews(t *testing.T) {
	db, mock, _ := newMockDB(t)
	repo := NewOpportunityRepository(db)

	id := uuid.New()
	mock.ExpectExec(sqlLike(`UPDATE "volunteer_calls" SET "view_count"=view_count + 1`, `WHERE id = `)).
		WithArgs(id.String()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.IncrementViews(context.Background(), id))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOpportunityAddApplicationDuplicate(t *testing.T) {
	db, mock, _ := newMockDB(t)
	repo := NewOpportunityRepository(db)

	mock.ExpectQuery(sqlLike(`INSERT INTO "volunteer_call_applications"`)).
		WillReturnError(uniqueViolation)

	err := repo.AddApplication(context.Background(), &model.CallApplication{
		CallID:   uuid.New(),
		FullName: "Amina Bello",
		Email:    "amina@example.org",
	})

	assert.ErrorIs(t, err, domain.ErrDuplicateApplicant)
	assert.NoError(t, mock.ExpectationsWereMet())
}
