package http

import (
	"net/http"

	"github.com/MKhiriev/go-recipe-share/internal/app"
	"github.com/MKhiriev/go-recipe-share/internal/utils"
	"github.com/MKhiriev/go-recipe-share/models"
)

func (h *Handler) createRecipe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	identity, _ := utils.GetIdentityFromContext(ctx)

	req, picture, cleanup, err := readRecipeRequest(w, r)
	if err != nil {
		writeError(w, r, "*Handler.createRecipe", err)
		return
	}
	defer cleanup()

	recipe, err := h.services.RecipeService.CreateRecipe(ctx, identity, req, picture)
	if err != nil {
		writeError(w, r, "*Handler.createRecipe", err)
		return
	}

	writeMessage(w, http.StatusCreated, models.RecipeResponse{Message: app.MsgRecipeCreated, Recipe: recipe})
}

// getRecipes lists recipes filtered by the optional name, ingredients and
// category query parameters.
func (h *Handler) getRecipes(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := models.RecipeFilter{
		Name:        query.Get("name"),
		Ingredients: query.Get("ingredients"),
		Category:    query.Get("category"),
	}

	h.writeRecipes(w, r, "*Handler.getRecipes", filter, false)
}

func (h *Handler) getMyRecipes(w http.ResponseWriter, r *http.Request) {
	identity, _ := utils.GetIdentityFromContext(r.Context())
	h.writeRecipes(w, r, "*Handler.getMyRecipes", models.RecipeFilter{CreatedBy: identity.UserID}, true)
}

func (h *Handler) getUserRecipes(w http.ResponseWriter, r *http.Request) {
	userID, err := idParam(r, "id")
	if err != nil {
		writeError(w, r, "*Handler.getUserRecipes", err)
		return
	}
	h.writeRecipes(w, r, "*Handler.getUserRecipes", models.RecipeFilter{CreatedBy: userID}, false)
}

// writeRecipes answers with the recipes matching filter. With
// notFoundWhenEmpty an empty result is reported as 404.
func (h *Handler) writeRecipes(w http.ResponseWriter, r *http.Request, funcName string, filter models.RecipeFilter, notFoundWhenEmpty bool) {
	recipes, err := h.services.RecipeService.GetRecipes(r.Context(), filter)
	if err != nil {
		writeError(w, r, funcName, err)
		return
	}

	if notFoundWhenEmpty && len(recipes) == 0 {
		writeMessage(w, http.StatusNotFound, models.MessageResponse{Message: app.MsgNoRecipesFound})
		return
	}
	if recipes == nil {
		recipes = []models.Recipe{}
	}

	writeMessage(w, http.StatusOK, models.RecipesResponse{Recipes: recipes})
}

func (h *Handler) getRecipe(w http.ResponseWriter, r *http.Request) {
	recipeID, err := idParam(r, "id")
	if err != nil {
		writeError(w, r, "*Handler.getRecipe", err)
		return
	}

	recipe, err := h.services.RecipeService.GetRecipe(r.Context(), recipeID)
	if err != nil {
		writeError(w, r, "*Handler.getRecipe", err)
		return
	}

	writeMessage(w, http.StatusOK, models.RecipeResponse{Recipe: recipe})
}

func (h *Handler) updateRecipe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	identity, _ := utils.GetIdentityFromContext(ctx)

	recipeID, err := idParam(r, "id")
	if err != nil {
		writeError(w, r, "*Handler.updateRecipe", err)
		return
	}

	req, picture, cleanup, err := readRecipeRequest(w, r)
	if err != nil {
		writeError(w, r, "*Handler.updateRecipe", err)
		return
	}
	defer cleanup()

	recipe, err := h.services.RecipeService.UpdateRecipe(ctx, identity, recipeID, req, picture)
	if err != nil {
		writeError(w, r, "*Handler.updateRecipe", err)
		return
	}

	writeMessage(w, http.StatusOK, models.RecipeResponse{Message: app.MsgRecipeUpdated, Recipe: recipe})
}

func (h *Handler) deleteRecipe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	identity, _ := utils.GetIdentityFromContext(ctx)

	recipeID, err := idParam(r, "id")
	if err != nil {
		writeError(w, r, "*Handler.deleteRecipe", err)
		return
	}

	if err = h.services.RecipeService.DeleteRecipe(ctx, identity, recipeID); err != nil {
		writeError(w, r, "*Handler.deleteRecipe", err)
		return
	}

	writeMessage(w, http.StatusOK, models.MessageResponse{Message: app.MsgRecipeDeleted})
}

func (h *Handler) rateRecipe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	identity, _ := utils.GetIdentityFromContext(ctx)

	recipeID, err := idParam(r, "id")
	if err != nil {
		writeError(w, r, "*Handler.rateRecipe", err)
		return
	}

	var req models.RateRecipeRequest
	if err = decodeJSON(r, &req); err != nil {
		writeError(w, r, "*Handler.rateRecipe", err)
		return
	}

	average, err := h.services.RecipeService.RateRecipe(ctx, identity, recipeID, req.Rating)
	if err != nil {
		writeError(w, r, "*Handler.rateRecipe", err)
		return
	}

	writeMessage(w, http.StatusOK, models.RatingResponse{Message: app.MsgRecipeRated, AverageRating: average})
}

func (h *Handler) shareRecipe(w http.ResponseWriter, r *http.Request) {
	recipeID, err := idParam(r, "id")
	if err != nil {
		writeError(w, r, "*Handler.shareRecipe", err)
		return
	}

	links, err := h.services.RecipeService.ShareLinks(r.Context(), recipeID)
	if err != nil {
		writeError(w, r, "*Handler.shareRecipe", err)
		return
	}

	writeMessage(w, http.StatusOK, models.ShareLinksResponse{Message: app.MsgShareLinks, ShareLinks: links})
}
