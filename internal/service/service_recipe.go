package service

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-recipe-share/internal/config"
	"github.com/MKhiriev/go-recipe-share/internal/logger"
	"github.com/MKhiriev/go-recipe-share/internal/store"
	"github.com/MKhiriev/go-recipe-share/models"
)

type recipeService struct {
	recipeRepository store.RecipeRepository
	ratingRepository store.RatingRepository
	pictures         store.PictureStorage

	// publicURL is the externally reachable API base used in share links.
	publicURL string

	logger *logger.Logger
}

func NewRecipeService(storages *store.Storages, cfg config.App, logger *logger.Logger) RecipeService {
	return &recipeService{
		recipeRepository: storages.RecipeRepository,
		ratingRepository: storages.RatingRepository,
		pictures:         storages.PictureStorage,
		publicURL:        strings.TrimRight(cfg.PublicURL, "/"),
		logger:           logger,
	}
}

// CreateRecipe stores picture (when given) and the recipe authored by
// author. The picture is removed again if the recipe cannot be stored.
func (s *recipeService) CreateRecipe(ctx context.Context, author models.Identity, req models.RecipeRequest, picture *models.PictureUpload) (models.Recipe, error) {
	log := logger.FromContext(ctx)

	recipe := models.Recipe{
		Title:       deref(req.Title),
		Ingredients: deref(req.Ingredients),
		Steps:       deref(req.Steps),
		Category:    deref(req.Category),
		CreatedBy:   author.UserID,
	}

	reference, err := s.savePicture(ctx, picture)
	if err != nil {
		return models.Recipe{}, err
	}
	recipe.Picture = reference

	created, err := s.recipeRepository.CreateRecipe(ctx, recipe)
	if err != nil {
		log.Err(err).Int64("user_id", author.UserID).Msg("recipe creation failed")
		s.deletePicture(ctx, reference)
		return models.Recipe{}, fmt.Errorf("error creating recipe: %w", err)
	}

	return created, nil
}

func (s *recipeService) GetRecipes(ctx context.Context, filter models.RecipeFilter) ([]models.Recipe, error) {
	recipes, err := s.recipeRepository.FindRecipes(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error fetching recipes: %w", err)
	}
	return recipes, nil
}

func (s *recipeService) GetRecipe(ctx context.Context, recipeID int64) (models.Recipe, error) {
	recipe, err := s.recipeRepository.FindRecipeByID(ctx, recipeID)
	if err != nil {
		return models.Recipe{}, fmt.Errorf("error fetching recipe: %w", err)
	}
	return recipe, nil
}

// UpdateRecipe applies the provided fields. Only an Admin may change the
// approval flag; for anyone else it is ignored. A replaced picture is
// deleted after the update succeeds.
func (s *recipeService) UpdateRecipe(ctx context.Context, caller models.Identity, recipeID int64, req models.RecipeRequest, picture *models.PictureUpload) (models.Recipe, error) {
	log := logger.FromContext(ctx)

	current, err := s.ownedRecipe(ctx, caller, recipeID)
	if err != nil {
		return models.Recipe{}, err
	}

	update := models.RecipeUpdate{
		RecipeID:    recipeID,
		Title:       req.Title,
		Ingredients: req.Ingredients,
		Steps:       req.Steps,
		Category:    req.Category,
	}
	if caller.Role == models.RoleAdmin {
		update.IsApproved = req.IsApproved
	}

	reference, err := s.savePicture(ctx, picture)
	if err != nil {
		return models.Recipe{}, err
	}
	update.Picture = reference

	if update.IsEmpty() {
		return models.Recipe{}, ErrNothingToUpdate
	}

	updated, err := s.recipeRepository.UpdateRecipe(ctx, update)
	if err != nil {
		log.Err(err).Int64("recipe_id", recipeID).Msg("recipe update failed")
		s.deletePicture(ctx, reference)
		return models.Recipe{}, fmt.Errorf("error updating recipe: %w", err)
	}

	if reference != nil {
		s.deletePicture(ctx, current.Picture)
	}

	return updated, nil
}

// DeleteRecipe removes the recipe together with its picture.
func (s *recipeService) DeleteRecipe(ctx context.Context, caller models.Identity, recipeID int64) error {
	current, err := s.ownedRecipe(ctx, caller, recipeID)
	if err != nil {
		return err
	}

	if err = s.recipeRepository.DeleteRecipe(ctx, recipeID); err != nil {
		return fmt.Errorf("error deleting recipe: %w", err)
	}

	s.deletePicture(ctx, current.Picture)
	return nil
}

// RateRecipe records a 1..5 score from caller and returns the recipe's new
// average. Every call adds a rating; repeated ratings by the same user all
// count towards the average.
func (s *recipeService) RateRecipe(ctx context.Context, caller models.Identity, recipeID int64, rating int) (float64, error) {
	if rating < models.MinRating || rating > models.MaxRating {
		return 0, ErrInvalidRating
	}

	average, err := s.ratingRepository.RateRecipe(ctx, models.Rating{
		UserID:   caller.UserID,
		RecipeID: recipeID,
		Rating:   rating,
	})
	if err != nil {
		return 0, fmt.Errorf("error rating recipe: %w", err)
	}

	return average, nil
}

// ShareLinks builds Facebook, Twitter and WhatsApp links to the recipe.
func (s *recipeService) ShareLinks(ctx context.Context, recipeID int64) (models.ShareLinks, error) {
	recipe, err := s.recipeRepository.FindRecipeByID(ctx, recipeID)
	if err != nil {
		return models.ShareLinks{}, fmt.Errorf("error fetching recipe: %w", err)
	}

	recipeURL := url.QueryEscape(s.publicURL + "/api/recipes/" + strconv.FormatInt(recipe.RecipeID, 10))

	return models.ShareLinks{
		Facebook: "https://www.facebook.com/sharer/sharer.php?u=" + recipeURL,
		Twitter:  "https://twitter.com/intent/tweet?url=" + recipeURL + "&text=" + url.QueryEscape(recipe.Title),
		WhatsApp: "https://wa.me/?text=" + recipeURL,
	}, nil
}

// ownedRecipe loads the recipe and checks that caller may modify it.
func (s *recipeService) ownedRecipe(ctx context.Context, caller models.Identity, recipeID int64) (models.Recipe, error) {
	recipe, err := s.recipeRepository.FindRecipeByID(ctx, recipeID)
	if err != nil {
		return models.Recipe{}, fmt.Errorf("error fetching recipe: %w", err)
	}

	if recipe.CreatedBy != caller.UserID && caller.Role != models.RoleAdmin {
		logger.FromContext(ctx).Info().
			Int64("recipe_id", recipeID).
			Int64("user_id", caller.UserID).
			Msg("recipe modification by non-owner refused")
		return models.Recipe{}, ErrNotRecipeOwner
	}

	return recipe, nil
}

func (s *recipeService) savePicture(ctx context.Context, picture *models.PictureUpload) (*string, error) {
	if picture == nil {
		return nil, nil
	}

	reference, err := s.pictures.SavePicture(ctx, picture.FileName, picture.ContentType, picture.Content)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSavingPicture, err)
	}
	return &reference, nil
}

// deletePicture removes a stored picture. Failures leave an orphaned file
// behind and are only logged.
func (s *recipeService) deletePicture(ctx context.Context, reference *string) {
	if reference == nil || *reference == "" {
		return
	}
	if err := s.pictures.DeletePicture(ctx, *reference); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Str("picture", *reference).Msg("picture cleanup failed")
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
