package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"socialmanager/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn: db,
	}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	return gormDB, mock
}

func setupSQLiteDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// every connection to :memory: is a fresh database
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(&models.Post{}))
	return db
}

func TestPostRepository_Create(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewGormPostRepository(db)
	ctx := context.Background()

	post := &models.Post{
		Content:   "Launch day!",
		Platforms: models.Platforms{models.PlatformTwitter, models.PlatformLinkedIn},
		Status:    models.StatusDraft,
	}

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "posts"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectCommit()

	err := repo.Create(ctx, post)
	assert.NoError(t, err)
	assert.Equal(t, uint(1), post.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostRepository_Create_DuplicateID(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewGormPostRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "posts"`)).
		WillReturnError(&pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"})
	mock.ExpectRollback()

	err := repo.Create(context.Background(), &models.Post{
		Content:   "seeded twice",
		Platforms: models.Platforms{models.PlatformFacebook},
		Status:    models.StatusPublished,
	})

	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, models.CodeConflict, appErr.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostRepository_GetByID_NotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewGormPostRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "posts" WHERE "posts"."id" = $1`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.GetByID(context.Background(), 5)
	assert.ErrorIs(t, err, models.ErrPostNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostRepository_GetByID_ScansPlatforms(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewGormPostRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "posts" WHERE "posts"."id" = $1`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "content", "platforms", "status", "analytics_likes"}).
			AddRow(3, "hello", "twitter,linkedin", "draft", 12))

	post, err := repo.GetByID(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, models.Platforms{models.PlatformTwitter, models.PlatformLinkedIn}, post.Platforms)
	assert.Equal(t, 12, post.Analytics.Likes)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostRepository_Update_Missing(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewGormPostRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "posts" SET`)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	err := repo.Update(context.Background(), &models.Post{ID: 9, Content: "x", Platforms: models.Platforms{models.PlatformTwitter}})
	assert.ErrorIs(t, err, models.ErrPostNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostRepository_Delete(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewGormPostRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "posts" WHERE "posts"."id" = $1`)).
		WithArgs(1).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	// nothing to delete is still success
	err := repo.Delete(context.Background(), 1)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostRepository_SQLiteRoundTrip(t *testing.T) {
	repo := NewGormPostRepository(setupSQLiteDB(t))
	ctx := context.Background()
	assert.Equal(t, "sqlite", repo.Backend())

	when := time.Date(2025, 8, 1, 9, 0, 0, 0, time.UTC)
	first := &models.Post{
		Content:       "Launch day!",
		Platforms:     models.Platforms{models.PlatformTwitter, models.PlatformLinkedIn},
		Status:        models.StatusScheduled,
		ScheduledDate: &when,
	}
	second := &models.Post{
		Content:   "Behind the scenes",
		Platforms: models.Platforms{models.PlatformInstagram, models.PlatformFacebook},
		Status:    models.StatusPublished,
		Analytics: models.Analytics{Likes: 89, Shares: 12, Comments: 7},
	}
	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, second))

	got, err := repo.GetByID(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, first.Platforms, got.Platforms)
	require.NotNil(t, got.ScheduledDate)
	assert.True(t, when.Equal(*got.ScheduledDate))

	all, err := repo.List(ctx, models.PostFilter{})
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, first.ID, all[0].ID)
	assert.Equal(t, 89, all[1].Analytics.Likes)

	linkedin, err := repo.List(ctx, models.PostFilter{Platform: models.PlatformLinkedIn})
	require.NoError(t, err)
	require.Len(t, linkedin, 1)
	assert.Equal(t, first.ID, linkedin[0].ID)

	published, err := repo.List(ctx, models.PostFilter{Status: models.StatusPublished})
	require.NoError(t, err)
	require.Len(t, published, 1)
	assert.Equal(t, second.ID, published[0].ID)

	first.Content = "Launch day, rescheduled"
	first.ScheduledDate = nil
	first.Status = models.StatusDraft
	require.NoError(t, repo.Update(ctx, first))

	got, err = repo.GetByID(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, "Launch day, rescheduled", got.Content)
	assert.Nil(t, got.ScheduledDate)
	assert.Equal(t, models.StatusDraft, got.Status)

	require.NoError(t, repo.Delete(ctx, first.ID))
	require.NoError(t, repo.Delete(ctx, first.ID))
	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}
