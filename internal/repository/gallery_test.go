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

func TestGalleryAddPhotosAppendsAfterExisting(t *testing.T) {
	db, mock, log := newMockDB(t)
	repo := NewGalleryRepository(db)

	galleryID := uuid.New()
	photos := []*model.GalleryPhoto{
		{ID: uuid.New(), URL: "https://cdn/a.jpg", PublicID: "gallery/a"},
		{ID: uuid.New(), URL: "https://cdn/b.jpg", PublicID: "gallery/b"},
	}

	mock.ExpectBegin()
	mock.ExpectQuery(sqlLike(`SELECT "id" FROM "galleries"`, `FOR UPDATE`)).
		WillReturnRows(idRows(galleryID.String()))
	mock.ExpectQuery(sqlLike(`SELECT count(*) FROM "gallery_photos"`, `gallery_id = `)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))
	mock.ExpectQuery(sqlLike(`INSERT INTO "gallery_photos"`)).
		WillReturnRows(idRows(photos[0].ID.String(), photos[1].ID.String()))
	mock.ExpectCommit()

	err := repo.AddPhotos(context.Background(), galleryID, photos)

	require.NoError(t, err)
	assert.Equal(t, 3, photos[0].SortOrder)
	assert.Equal(t, 4, photos[1].SortOrder)
	assert.Equal(t, galleryID, photos[0].GalleryID)
	assert.Equal(t, galleryID, photos[1].GalleryID)
	assert.Contains(t, log.joined(), "FOR UPDATE")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGalleryAddPhotosUnknownGallery(t *testing.T) {
	db, mock, _ := newMockDB(t)
	repo := NewGalleryRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(sqlLike(`SELECT "id" FROM "galleries"`, `FOR UPDATE`)).
		WillReturnRows(idRows())
	mock.ExpectRollback()

	err := repo.AddPhotos(context.Background(), uuid.New(), []*model.GalleryPhoto{{URL: "u", PublicID: "p"}})

	assert.ErrorIs(t, err, domain.ErrGalleryNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGalleryDeletePhoto(t *testing.T) {
	galleryID, photoID := uuid.New(), uuid.New()

	t.Run("clears the cover that pointed at the photo", func(t *testing.T) {
		db, mock, _ := newMockDB(t)
		repo := NewGalleryRepository(db)

		mock.ExpectBegin()
		mock.ExpectExec(sqlLike(`DELETE FROM "gallery_photos"`, `id = `, `gallery_id = `)).
			WithArgs(photoID.String(), galleryID.String()).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(sqlLike(`UPDATE "galleries" SET`, `"cover_photo_id"=`, `"cover_public_id"=`, `"cover_url"=`, `WHERE id = `, `AND cover_photo_id = `)).
			WithArgs(nil, "", "", sqlmock.AnyArg(), galleryID.String(), photoID.String()).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		require.NoError(t, repo.DeletePhoto(context.Background(), galleryID, photoID))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing photo rolls back", func(t *testing.T) {
		db, mock, log := newMockDB(t)
		repo := NewGalleryRepository(db)

		mock.ExpectBegin()
		mock.ExpectExec(sqlLike(`DELETE FROM "gallery_photos"`)).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		err := repo.DeletePhoto(context.Background(), galleryID, photoID)

		assert.ErrorIs(t, err, domain.ErrPhotoNotFound)
		assert.NotContains(t, log.joined(), `UPDATE "galleries"`)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGallerySetCover(t *testing.T) {
	galleryID, photoID, actorID := uuid.New(), uuid.New(), uuid.New()

	t.Run("copies the locked photo into the cover", func(t *testing.T) {
		db, mock, _ := newMockDB(t)
		repo := NewGalleryRepository(db)

		mock.ExpectBegin()
		mock.ExpectQuery(sqlLike(`SELECT * FROM "gallery_photos"`, `id = `, `gallery_id = `, `FOR SHARE`)).
			WillReturnRows(sqlmock.NewRows([]string{"id", "gallery_id", "url", "public_id"}).
				AddRow(photoID.String(), galleryID.String(), "https://cdn/cover.jpg", "gallery/cover"))
		mock.ExpectExec(sqlLike(`UPDATE "galleries" SET`, `WHERE id = `)).
			WithArgs(photoID.String(), "gallery/cover", "https://cdn/cover.jpg", actorID.String(), sqlmock.AnyArg(), galleryID.String()).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		require.NoError(t, repo.SetCover(context.Background(), galleryID, photoID, actorID))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("photo no longer in the gallery", func(t *testing.T) {
		db, mock, log := newMockDB(t)
		repo := NewGalleryRepository(db)

		mock.ExpectBegin()
		mock.ExpectQuery(sqlLike(`FROM "gallery_photos"`, `FOR SHARE`)).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))
		mock.ExpectRollback()

		err := repo.SetCover(context.Background(), galleryID, photoID, actorID)

		assert.ErrorIs(t, err, domain.ErrPhotoNotFound)
		assert.NotContains(t, log.joined(), `UPDATE "galleries"`)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGalleryWritesLeaveCountersAlone(t *testing.T) {
	id, actorID := uuid.New(), uuid.New()

	t.Run("update writes content columns only", func(t *testing.T) {
		db, mock, log := newMockDB(t)
		repo := NewGalleryRepository(db)

		mock.ExpectExec(sqlLike(`UPDATE "galleries" SET`, `"title"=`, `WHERE "id" = `)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		stale := &model.Gallery{
			ID:              id,
			Title:           "Harvest day",
			EventDate:       time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
			Category:        model.GalleryFarmExcursion,
			IsPublished:     true,
			ViewCount:       41,
			CoverURL:        "https://cdn/old.jpg",
			LastUpdatedByID: &actorID,
		}
		require.NoError(t, repo.Update(context.Background(), stale))

		sql := log.joined()
		assert.NotContains(t, sql, "view_count")
		assert.NotContains(t, sql, "is_published")
		assert.NotContains(t, sql, "cover_")
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("update of a missing gallery", func(t *testing.T) {
		db, mock, _ := newMockDB(t)
		repo := NewGalleryRepository(db)

		mock.ExpectExec(sqlLike(`UPDATE "galleries"`)).WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Update(context.Background(), &model.Gallery{ID: id, Title: "x"})
		assert.ErrorIs(t, err, domain.ErrGalleryNotFound)
	})

	t.Run("publish toggle is a single statement", func(t *testing.T) {
		db, mock, log := newMockDB(t)
		repo := NewGalleryRepository(db)

		mock.ExpectExec(sqlLike(`UPDATE "galleries" SET "is_published"=NOT is_published`, `WHERE id = `)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.TogglePublish(context.Background(), id, actorID))
		assert.NotContains(t, log.joined(), "view_count")
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("views increment in the database", func(t *testing.T) {
		db, mock, log := newMockDB(t)
		repo := NewGalleryRepository(db)

		mock.ExpectExec(sqlLike(`UPDATE "galleries" SET "view_count"=view_count + 1`, `WHERE id = `)).
			WithArgs(id.String()).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.IncrementViews(context.Background(), id))
		assert.NotContains(t, log.joined(), "updated_at")
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
