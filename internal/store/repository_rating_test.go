package store

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-recipe-share/internal/logger"
	"github.com/MKhiriev/go-recipe-share/models"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRatingRepo(t *testing.T) (*ratingRepository, sqlmock.Sqlmock) {
	db, mock := newMockDB(t)
	return &ratingRepository{db: db, logger: logger.Nop()}, mock
}

func TestRateRecipe_Success(t *testing.T) {
	repo, mock := newTestRatingRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO ratings (user_id,recipe_id,rating) VALUES ($1,$2,$3)")).
		WithArgs(int64(3), int64(10), 4).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT AVG(rating) FROM ratings WHERE recipe_id = $1")).
		WithArgs(int64(10)).
		WillReturnRows(sqlmock.NewRows([]string{"avg"}).AddRow(4.5))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE recipes SET rating = $1 WHERE id = $2")).
		WithArgs(4.5, int64(10)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	avg, err := repo.RateRecipe(context.Background(), models.Rating{UserID: 3, RecipeID: 10, Rating: 4})
	require.NoError(t, err)
	assert.InDelta(t, 4.5, avg, 1e-9)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRateRecipe_UnknownRecipe(t *testing.T) {
	repo, mock := newTestRatingRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO ratings").WillReturnError(pgError(pgerrcode.ForeignKeyViolation))
	mock.ExpectRollback()

	_, err := repo.RateRecipe(context.Background(), models.Rating{UserID: 3, RecipeID: 99, Rating: 4})
	assert.ErrorIs(t, err, ErrRecipeNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRateRecipe_OutOfRange(t *testing.T) {
	repo, mock := newTestRatingRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO ratings").WillReturnError(pgError(pgerrcode.CheckViolation))
	mock.ExpectRollback()

	_, err := repo.RateRecipe(context.Background(), models.Rating{UserID: 3, RecipeID: 10, Rating: 9})
	assert.ErrorIs(t, err, ErrConstraintViolation)
}

func TestRateRecipe_BeginError(t *testing.T) {
	repo, mock := newTestRatingRepo(t)

	mock.ExpectBegin().WillReturnError(errors.New("pool exhausted"))

	_, err := repo.RateRecipe(context.Background(), models.Rating{UserID: 3, RecipeID: 10, Rating: 4})
	assert.ErrorIs(t, err, ErrBeginningTransaction)
}

func TestRateRecipe_CommitError(t *testing.T) {
	repo, mock := newTestRatingRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO ratings").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectQuery("SELECT AVG").WillReturnRows(sqlmock.NewRows([]string{"avg"}).AddRow(3.0))
	mock.ExpectExec("UPDATE recipes").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit().WillReturnError(errors.New("serialization failure"))

	_, err := repo.RateRecipe(context.Background(), models.Rating{UserID: 3, RecipeID: 10, Rating: 3})
	assert.ErrorIs(t, err, ErrCommitingTransaction)
}
