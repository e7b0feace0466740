package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MKhiriev/go-recipe-share/internal/logger"
	"github.com/MKhiriev/go-recipe-share/models"
)

// ratingRepository is the SQL-backed implementation of [RatingRepository].
type ratingRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewRatingRepository(db *DB, logger *logger.Logger) RatingRepository {
	logger.Debug().Msg("creating rating repository")
	return &ratingRepository{
		db:     db,
		logger: logger,
	}
}

// RateRecipe implements [RatingRepository].
//
// The insert, the AVG query and the recipe update share one transaction.
//
// Error handling:
//   - foreign key violation → [ErrRecipeNotFound].
//   - check violation (rating outside 1..5) → [ErrConstraintViolation].
func (r *ratingRepository) RateRecipe(ctx context.Context, rating models.Rating) (float64, error) {
	log := logger.FromContext(ctx)

	insertQuery, insertArgs, err := buildInsertRatingQuery(r.db.builder, rating)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	avgQuery, avgArgs, err := buildAverageRatingQuery(r.db.builder, rating.RecipeID)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*ratingRepository.RateRecipe").Msg("error beginning transaction")
		return 0, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, insertQuery, insertArgs...); err != nil {
		log.Err(err).Str("func", "*ratingRepository.RateRecipe").Msg("error inserting rating")

		switch r.db.classify(err) {
		case ClassForeignKeyViolation:
			return 0, ErrRecipeNotFound
		case ClassCheckViolation:
			return 0, fmt.Errorf("%w: %w", ErrConstraintViolation, err)
		default:
			return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	var average sql.NullFloat64
	if err = tx.QueryRowContext(ctx, avgQuery, avgArgs...).Scan(&average); err != nil {
		log.Err(err).Str("func", "*ratingRepository.RateRecipe").Msg("error computing average rating")
		return 0, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	updateQuery, updateArgs, err := buildUpdateRecipeRatingQuery(r.db.builder, rating.RecipeID, average.Float64)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := tx.ExecContext(ctx, updateQuery, updateArgs...)
	if err != nil {
		log.Err(err).Str("func", "*ratingRepository.RateRecipe").Msg("error storing average rating")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return 0, ErrRecipeNotFound
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "*ratingRepository.RateRecipe").Msg("error committing rating")
		return 0, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return average.Float64, nil
}
