package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessCreateRecipe    = "recipe created successfully"
	MessageSuccessUpdateRecipe    = "recipe updated successfully"
	MessageSuccessDeleteRecipe    = "recipe deleted successfully"
	MessageSuccessGetRecipes      = "success get recipes"
	MessageSuccessGetRecipeDetail = "success get recipe detail"

	MessageFailedCreateRecipe    = "failed to create recipe"
	MessageFailedUpdateRecipe    = "failed to update recipe"
	MessageFailedDeleteRecipe    = "failed to delete recipe"
	MessageFailedGetRecipes      = "failed to get recipes"
	MessageFailedGetRecipeDetail = "failed to get recipe detail"

	ErrRecipeNotFound          = errors.New("recipe not found")
	ErrRecipeIngredientMissing = errors.New("recipe references an unknown ingredient")
)

type (
	RecipeIngredientRequest struct {
		IngredientID string  `json:"ingredient_id" validate:"required,uuid"`
		Quantity     float64 `json:"quantity" validate:"required,gt=0"`
		Unit         string  `json:"unit" validate:"required,oneof=g kg mg ml l tsp tbsp cup piece slice scoop"`
	}

	CreateRecipeRequest struct {
		Title           string                    `json:"title" validate:"required,max=160"`
		Description     string                    `json:"description"`
		Instructions    string                    `json:"instructions"`
		Servings        int                       `json:"servings" validate:"required,min=1,max=100"`
		PrepTimeMinutes int                       `json:"prep_time_minutes" validate:"gte=0"`
		CookTimeMinutes int                       `json:"cook_time_minutes" validate:"gte=0"`
		Category        string                    `json:"category" validate:"omitempty,max=60"`
		Ingredients     []RecipeIngredientRequest `json:"ingredients" validate:"dive"`
	}

	// UpdateRecipeRequest replaces the ingredient list when Ingredients is non-nil.
	UpdateRecipeRequest struct {
		Title           *string                    `json:"title" validate:"omitempty,max=160"`
		Description     *string                    `json:"description"`
		Instructions    *string                    `json:"instructions"`
		Servings        *int                       `json:"servings" validate:"omitempty,min=1,max=100"`
		PrepTimeMinutes *int                       `json:"prep_time_minutes" validate:"omitempty,gte=0"`
		CookTimeMinutes *int                       `json:"cook_time_minutes" validate:"omitempty,gte=0"`
		Category        *string                    `json:"category" validate:"omitempty,max=60"`
		Ingredients     *[]RecipeIngredientRequest `json:"ingredients" validate:"omitempty,dive"`
	}

	Recipe struct {
		ID              string    `json:"id"`
		Title           string    `json:"title"`
		Description     string    `json:"description"`
		ImageURL        string    `json:"image_url,omitempty"`
		PrepTimeMinutes int       `json:"prep_time_minutes"`
		CookTimeMinutes int       `json:"cook_time_minutes"`
		Servings        int       `json:"servings"`
		Category        string    `json:"category,omitempty"`
		CreatedAt       time.Time `json:"created_at"`
	}

	RecipeIngredient struct {
		IngredientID string  `json:"ingredient_id"`
		Name         string  `json:"name"`
		Quantity     float64 `json:"quantity"`
		Unit         string  `json:"unit"`
		Grams        float64 `json:"grams"`
		Calories     float64 `json:"calories"`
	}

	NutritionFacts struct {
		Calories float64 `json:"calories"`
		Protein  float64 `json:"protein"`
		Carbs    float64 `json:"carbs"`
		Fat      float64 `json:"fat"`
	}

	RecipeDetail struct {
		Recipe
		Instructions string             `json:"instructions"`
		Ingredients  []RecipeIngredient `json:"ingredients"`
		Total        NutritionFacts     `json:"total"`
		PerServing   NutritionFacts     `json:"per_serving"`
	}
)
