package repositories

import (
	"testing"

	"usta_backend/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return db, mock
}

func TestAverageRatingForCv(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewReviewRepository()

	mock.ExpectQuery(`SELECT COALESCE\(AVG\(rating\), 0\) AS avg, COUNT\(\*\) AS count FROM "reviews"`).
		WithArgs("cv-1").
		WillReturnRows(sqlmock.NewRows([]string{"avg", "count"}).AddRow(4.5, 2))

	avg, count, err := repo.AverageRatingForCv(db, "cv-1")
	require.NoError(t, err)
	assert.Equal(t, 4.5, avg)
	assert.Equal(t, int64(2), count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAverageRatingForCvWithoutReviews(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewReviewRepository()

	mock.ExpectQuery(`SELECT COALESCE\(AVG\(rating\), 0\) AS avg, COUNT\(\*\) AS count FROM "reviews"`).
		WithArgs("cv-1").
		WillReturnRows(sqlmock.NewRows([]string{"avg", "count"}).AddRow(0.0, 0))

	avg, count, err := repo.AverageRatingForCv(db, "cv-1")
	require.NoError(t, err)
	assert.Zero(t, avg)
	assert.Zero(t, count)
}

func TestFindByJobAndOwnerNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewReviewRepository()

	mock.ExpectQuery(`SELECT \* FROM "reviews"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.FindByJobAndOwner(db, "job-1", "user-1")
	assert.ErrorIs(t, err, ErrReviewNotFound)
}

func TestCreateMapsDuplicateKey(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewReviewRepository()

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "reviews"`).WillReturnError(gorm.ErrDuplicatedKey)
	mock.ExpectRollback()

	err := repo.Create(db, &models.Review{
		JobID:   "job-1",
		OwnerID: "user-1",
		WhomID:  "cv-1",
		Rating:  5,
	})
	assert.ErrorIs(t, err, ErrReviewAlreadyExists)
}
