package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-recipe-share/internal/logger"
	"github.com/MKhiriev/go-recipe-share/models"
)

// recipeRepository is the SQL-backed implementation of [RecipeRepository].
// Every read joins the author from the "users" table.
type recipeRepository struct {
	logger *logger.Logger
	db     *DB
	now    func() time.Time
}

func NewRecipeRepository(db *DB, logger *logger.Logger) RecipeRepository {
	logger.Debug().Msg("creating recipe repository")
	return &recipeRepository{
		db:     db,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// CreateRecipe inserts the recipe and returns the stored row with its author.
// A missing author yields [ErrNoUserWasFound].
func (r *recipeRepository) CreateRecipe(ctx context.Context, recipe models.Recipe) (models.Recipe, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertRecipeQuery(r.db.builder, recipe)
	if err != nil {
		return models.Recipe{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var recipeID int64
	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&recipeID); err != nil {
		log.Err(err).Str("func", "*recipeRepository.CreateRecipe").Msg("error inserting recipe")

		switch r.db.classify(err) {
		case ClassForeignKeyViolation:
			return models.Recipe{}, ErrNoUserWasFound
		case ClassCheckViolation:
			return models.Recipe{}, fmt.Errorf("%w: %w", ErrConstraintViolation, err)
		default:
			return models.Recipe{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
	}

	return r.FindRecipeByID(ctx, recipeID)
}

// FindRecipeByID returns [ErrRecipeNotFound] when no row matches.
func (r *recipeRepository) FindRecipeByID(ctx context.Context, recipeID int64) (models.Recipe, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectRecipeByIDQuery(r.db.builder, recipeID)
	if err != nil {
		return models.Recipe{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	recipe, err := scanRecipe(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Recipe{}, ErrRecipeNotFound
		}
		log.Err(err).Str("func", "*recipeRepository.FindRecipeByID").Msg("error selecting recipe")
		return models.Recipe{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return recipe, nil
}

// FindRecipes returns recipes matching filter, newest first. An empty filter
// lists every recipe.
func (r *recipeRepository) FindRecipes(ctx context.Context, filter models.RecipeFilter) ([]models.Recipe, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectRecipesQuery(r.db.builder, filter, r.db.likeOperator)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*recipeRepository.FindRecipes").Msg("error querying recipes")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	recipes := make([]models.Recipe, 0)
	for rows.Next() {
		recipe, err := scanRecipe(rows)
		if err != nil {
			log.Err(err).Str("func", "*recipeRepository.FindRecipes").Msg("error scanning recipe")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		recipes = append(recipes, recipe)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return recipes, nil
}

// UpdateRecipe applies the non-nil fields of update and returns the stored
// recipe. Returns [ErrRecipeNotFound] when the recipe does not exist.
func (r *recipeRepository) UpdateRecipe(ctx context.Context, update models.RecipeUpdate) (models.Recipe, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateRecipeQuery(r.db.builder, update, r.now())
	if err != nil {
		return models.Recipe{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*recipeRepository.UpdateRecipe").Msg("error updating recipe")
		return models.Recipe{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if affected, err := result.RowsAffected(); err != nil {
		return models.Recipe{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	} else if affected == 0 {
		return models.Recipe{}, ErrRecipeNotFound
	}

	return r.FindRecipeByID(ctx, update.RecipeID)
}

// DeleteRecipe removes the recipe and, through the foreign key, its ratings.
func (r *recipeRepository) DeleteRecipe(ctx context.Context, recipeID int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteRecipeQuery(r.db.builder, recipeID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*recipeRepository.DeleteRecipe").Msg("error deleting recipe")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrRecipeNotFound
	}

	return nil
}

func scanRecipe(row rowScanner) (models.Recipe, error) {
	var (
		recipe models.Recipe
		author models.Author
	)

	err := row.Scan(
		&recipe.RecipeID,
		&recipe.Title,
		&recipe.Picture,
		&recipe.Ingredients,
		&recipe.Steps,
		&recipe.Category,
		&recipe.Rating,
		&recipe.IsApproved,
		&recipe.CreatedBy,
		&recipe.CreatedAt,
		&recipe.UpdatedAt,
		&author.UserID,
		&author.Name,
		&author.Email,
	)
	if err != nil {
		return models.Recipe{}, err
	}

	recipe.Author = &author
	return recipe, nil
}
