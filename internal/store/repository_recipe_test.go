package store

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-recipe-share/internal/logger"
	"github.com/MKhiriev/go-recipe-share/models"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var recipeRowColumns = []string{
	"id", "title", "picture", "ingredients", "steps", "category", "rating",
	"is_approved", "created_by", "created_at", "updated_at", "id", "name", "email",
}

func newTestRecipeRepo(t *testing.T) (*recipeRepository, sqlmock.Sqlmock) {
	db, mock := newMockDB(t)
	return &recipeRepository{
		db:     db,
		logger: logger.Nop(),
		now:    func() time.Time { return fixedNow },
	}, mock
}

func recipeRow(id int64, title string) *sqlmock.Rows {
	return sqlmock.NewRows(recipeRowColumns).
		AddRow(id, title, "pic.jpg", "eggs", "boil", "breakfast", 4.5, true, 2, fixedNow, fixedNow, 2, "Chef", "chef@example.com")
}

func TestCreateRecipe(t *testing.T) {
	repo, mock := newTestRecipeRepo(t)
	picture := "pic.jpg"
	recipe := models.Recipe{Title: "Eggs", Picture: &picture, Ingredients: "eggs", Steps: "boil", Category: "breakfast", CreatedBy: 2}

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO recipes (title,picture,ingredients,steps,category,created_by) VALUES ($1,$2,$3,$4,$5,$6) RETURNING id")).
		WithArgs("Eggs", "pic.jpg", "eggs", "boil", "breakfast", int64(2)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(10))
	mock.ExpectQuery(regexp.QuoteMeta("FROM recipes r JOIN users u ON u.id = r.created_by WHERE r.id = $1")).
		WithArgs(int64(10)).
		WillReturnRows(recipeRow(10, "Eggs"))

	created, err := repo.CreateRecipe(context.Background(), recipe)
	require.NoError(t, err)

	assert.Equal(t, int64(10), created.RecipeID)
	require.NotNil(t, created.Author)
	assert.Equal(t, "Chef", created.Author.Name)
	assert.Equal(t, int64(2), created.Author.UserID)
	require.NotNil(t, created.Picture)
	assert.Equal(t, "pic.jpg", *created.Picture)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateRecipe_UnknownAuthor(t *testing.T) {
	repo, mock := newTestRecipeRepo(t)

	mock.ExpectQuery("INSERT INTO recipes").WillReturnError(pgError(pgerrcode.ForeignKeyViolation))

	_, err := repo.CreateRecipe(context.Background(), models.Recipe{CreatedBy: 99})
	assert.ErrorIs(t, err, ErrNoUserWasFound)
}

func TestFindRecipeByID_NotFound(t *testing.T) {
	repo, mock := newTestRecipeRepo(t)

	mock.ExpectQuery("FROM recipes r").WillReturnError(sql.ErrNoRows)

	_, err := repo.FindRecipeByID(context.Background(), 1)
	assert.ErrorIs(t, err, ErrRecipeNotFound)
}

func TestFindRecipes_Filters(t *testing.T) {
	repo, mock := newTestRecipeRepo(t)
	filter := models.RecipeFilter{Name: "egg", Ingredients: "salt", Category: "breakfast", CreatedBy: 2}

	mock.ExpectQuery(regexp.QuoteMeta("WHERE r.title ILIKE $1 AND r.ingredients ILIKE $2 AND r.category = $3 AND r.created_by = $4 ORDER BY r.created_at DESC, r.id DESC")).
		WithArgs("%egg%", "%salt%", "breakfast", int64(2)).
		WillReturnRows(recipeRow(1, "Eggs"))

	recipes, err := repo.FindRecipes(context.Background(), filter)
	require.NoError(t, err)
	require.Len(t, recipes, 1)
	assert.Equal(t, "Eggs", recipes[0].Title)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindRecipes_QueryError(t *testing.T) {
	repo, mock := newTestRecipeRepo(t)

	mock.ExpectQuery("FROM recipes r").WillReturnError(errors.New("boom"))

	_, err := repo.FindRecipes(context.Background(), models.RecipeFilter{})
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestUpdateRecipe(t *testing.T) {
	repo, mock := newTestRecipeRepo(t)
	title := "Scrambled"
	approved := true

	mock.ExpectExec(regexp.QuoteMeta("UPDATE recipes SET updated_at = $1, title = $2, is_approved = $3 WHERE id = $4")).
		WithArgs(fixedNow, "Scrambled", true, int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("FROM recipes r").
		WithArgs(int64(1)).
		WillReturnRows(recipeRow(1, "Scrambled"))

	updated, err := repo.UpdateRecipe(context.Background(), models.RecipeUpdate{RecipeID: 1, Title: &title, IsApproved: &approved})
	require.NoError(t, err)
	assert.Equal(t, "Scrambled", updated.Title)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateRecipe_NotFound(t *testing.T) {
	repo, mock := newTestRecipeRepo(t)
	title := "Scrambled"

	mock.ExpectExec("UPDATE recipes").WillReturnResult(sqlmock.NewResult(0, 0))

	_, err := repo.UpdateRecipe(context.Background(), models.RecipeUpdate{RecipeID: 1, Title: &title})
	assert.ErrorIs(t, err, ErrRecipeNotFound)
}

func TestDeleteRecipe(t *testing.T) {
	repo, mock := newTestRecipeRepo(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM recipes WHERE id = $1")).
		WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM recipes").
		WithArgs(int64(2)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.NoError(t, repo.DeleteRecipe(context.Background(), 1))
	assert.ErrorIs(t, repo.DeleteRecipe(context.Background(), 2), ErrRecipeNotFound)
}
