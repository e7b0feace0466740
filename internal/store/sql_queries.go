// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"time"

	"github.com/MKhiriev/go-recipe-share/models"
	sq "github.com/Masterminds/squirrel"
)

var userColumns = []string{
	"id",
	"name",
	"email",
	"password",
	"role",
	"reset_token",
	"reset_token_expires",
	"created_at",
	"updated_at",
}

var recipeColumns = []string{
	"r.id",
	"r.title",
	"r.picture",
	"r.ingredients",
	"r.steps",
	"r.category",
	"r.rating",
	"r.is_approved",
	"r.created_by",
	"r.created_at",
	"r.updated_at",
	"u.id",
	"u.name",
	"u.email",
}

// ── users ─────────────────────────────────────────────────────────────────────

func buildInsertUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	role := user.Role
	if role == "" {
		role = models.RoleViewer
	}

	return b.Insert("users").
		Columns("name", "email", "password", "role").
		Values(user.Name, user.Email, user.PasswordHash, string(role)).
		Suffix("RETURNING id, role, created_at, updated_at").
		ToSql()
}

func selectUsers(b sq.StatementBuilderType) sq.SelectBuilder {
	return b.Select(userColumns...).From("users")
}

func buildSelectUserByIDQuery(b sq.StatementBuilderType, userID int64) (string, []any, error) {
	return selectUsers(b).Where(sq.Eq{"id": userID}).ToSql()
}

func buildSelectUserByEmailQuery(b sq.StatementBuilderType, email string) (string, []any, error) {
	return selectUsers(b).Where(sq.Eq{"email": email}).ToSql()
}

func buildSelectAllUsersQuery(b sq.StatementBuilderType) (string, []any, error) {
	return selectUsers(b).OrderBy("id").ToSql()
}

func buildUpdateUserRoleQuery(b sq.StatementBuilderType, userID int64, role models.Role, now time.Time) (string, []any, error) {
	return b.Update("users").
		Set("role", string(role)).
		Set("updated_at", now).
		Where(sq.Eq{"id": userID}).
		ToSql()
}

func buildDeleteUserQuery(b sq.StatementBuilderType, userID int64) (string, []any, error) {
	return b.Delete("users").Where(sq.Eq{"id": userID}).ToSql()
}

func buildSetResetTokenQuery(b sq.StatementBuilderType, userID int64, token string, expires, now time.Time) (string, []any, error) {
	return b.Update("users").
		Set("reset_token", token).
		Set("reset_token_expires", expires).
		Set("updated_at", now).
		Where(sq.Eq{"id": userID}).
		ToSql()
}

// activeResetToken is the predicate shared by reset token lookup and
// consumption.
func activeResetToken(token string, now time.Time) sq.And {
	return sq.And{
		sq.Eq{"reset_token": token},
		sq.Gt{"reset_token_expires": now},
	}
}

func buildSelectUserByResetTokenQuery(b sq.StatementBuilderType, token string, now time.Time) (string, []any, error) {
	return selectUsers(b).Where(activeResetToken(token, now)).ToSql()
}

func buildConsumeResetTokenQuery(b sq.StatementBuilderType, token string, now time.Time, passwordHash string) (string, []any, error) {
	return b.Update("users").
		Set("password", passwordHash).
		Set("reset_token", nil).
		Set("reset_token_expires", nil).
		Set("updated_at", now).
		Where(activeResetToken(token, now)).
		ToSql()
}

// ── recipes ───────────────────────────────────────────────────────────────────

func buildInsertRecipeQuery(b sq.StatementBuilderType, recipe models.Recipe) (string, []any, error) {
	return b.Insert("recipes").
		Columns("title", "picture", "ingredients", "steps", "category", "created_by").
		Values(recipe.Title, recipe.Picture, recipe.Ingredients, recipe.Steps, recipe.Category, recipe.CreatedBy).
		Suffix("RETURNING id").
		ToSql()
}

func selectRecipes(b sq.StatementBuilderType) sq.SelectBuilder {
	return b.Select(recipeColumns...).
		From("recipes r").
		Join("users u ON u.id = r.created_by")
}

func buildSelectRecipeByIDQuery(b sq.StatementBuilderType, recipeID int64) (string, []any, error) {
	return selectRecipes(b).Where(sq.Eq{"r.id": recipeID}).ToSql()
}

// buildSelectRecipesQuery applies the non-empty filter fields. like builds
// the dialect's case-insensitive substring predicate.
func buildSelectRecipesQuery(b sq.StatementBuilderType, filter models.RecipeFilter, like func(column, value string) sq.Sqlizer) (string, []any, error) {
	query := selectRecipes(b)

	if filter.Name != "" {
		query = query.Where(like("r.title", filter.Name))
	}
	if filter.Ingredients != "" {
		query = query.Where(like("r.ingredients", filter.Ingredients))
	}
	if filter.Category != "" {
		query = query.Where(sq.Eq{"r.category": filter.Category})
	}
	if filter.CreatedBy != 0 {
		query = query.Where(sq.Eq{"r.created_by": filter.CreatedBy})
	}

	return query.OrderBy("r.created_at DESC", "r.id DESC").ToSql()
}

func buildUpdateRecipeQuery(b sq.StatementBuilderType, update models.RecipeUpdate, now time.Time) (string, []any, error) {
	query := b.Update("recipes").Set("updated_at", now)

	if update.Title != nil {
		query = query.Set("title", *update.Title)
	}
	if update.Picture != nil {
		query = query.Set("picture", *update.Picture)
	}
	if update.Ingredients != nil {
		query = query.Set("ingredients", *update.Ingredients)
	}
	if update.Steps != nil {
		query = query.Set("steps", *update.Steps)
	}
	if update.Category != nil {
		query = query.Set("category", *update.Category)
	}
	if update.IsApproved != nil {
		query = query.Set("is_approved", *update.IsApproved)
	}

	return query.Where(sq.Eq{"id": update.RecipeID}).ToSql()
}

func buildDeleteRecipeQuery(b sq.StatementBuilderType, recipeID int64) (string, []any, error) {
	return b.Delete("recipes").Where(sq.Eq{"id": recipeID}).ToSql()
}

// ── ratings ───────────────────────────────────────────────────────────────────

func buildInsertRatingQuery(b sq.StatementBuilderType, rating models.Rating) (string, []any, error) {
	return b.Insert("ratings").
		Columns("user_id", "recipe_id", "rating").
		Values(rating.UserID, rating.RecipeID, rating.Rating).
		ToSql()
}

func buildAverageRatingQuery(b sq.StatementBuilderType, recipeID int64) (string, []any, error) {
	return b.Select("AVG(rating)").From("ratings").Where(sq.Eq{"recipe_id": recipeID}).ToSql()
}

func buildUpdateRecipeRatingQuery(b sq.StatementBuilderType, recipeID int64, average float64) (string, []any, error) {
	return b.Update("recipes").
		Set("rating", average).
		Where(sq.Eq{"id": recipeID}).
		ToSql()
}
