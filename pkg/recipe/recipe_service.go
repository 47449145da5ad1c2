package recipe

import (
	"context"
	"errors"
	"fitcoach-backend/domain"
	"fitcoach-backend/entities"
	"fitcoach-backend/pkg/ingredient"
	"fitcoach-backend/pkg/mealplan"
	"math"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	RecipeService interface {
		CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest) (domain.RecipeDetail, error)
		UpdateRecipe(ctx context.Context, id string, req domain.UpdateRecipeRequest) (domain.RecipeDetail, error)
		DeleteRecipe(ctx context.Context, id string) error
		GetRecipes(ctx context.Context, search, category string, page, limit int) ([]domain.Recipe, int64, error)
		GetRecipeDetail(ctx context.Context, id string) (domain.RecipeDetail, error)
	}

	recipeService struct {
		recipeRepository     RecipeRepository
		ingredientRepository ingredient.IngredientRepository
	}
)

func NewRecipeService(recipeRepository RecipeRepository, ingredientRepository ingredient.IngredientRepository) RecipeService {
	return &recipeService{
		recipeRepository:     recipeRepository,
		ingredientRepository: ingredientRepository,
	}
}

func (s *recipeService) CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest) (domain.RecipeDetail, error) {
	recipe := &entities.Recipe{
		ID:              uuid.New(),
		Title:           strings.TrimSpace(req.Title),
		Description:     req.Description,
		Instructions:    req.Instructions,
		Servings:        req.Servings,
		PrepTimeMinutes: req.PrepTimeMinutes,
		CookTimeMinutes: req.CookTimeMinutes,
		Category:        req.Category,
	}

	items, err := s.buildIngredients(ctx, recipe.ID, req.Ingredients)
	if err != nil {
		return domain.RecipeDetail{}, err
	}
	recipe.Ingredients = items

	if err := s.recipeRepository.CreateRecipe(ctx, recipe); err != nil {
		return domain.RecipeDetail{}, err
	}

	return s.GetRecipeDetail(ctx, recipe.ID.String())
}

func (s *recipeService) UpdateRecipe(ctx context.Context, id string, req domain.UpdateRecipeRequest) (domain.RecipeDetail, error) {
	recipe, err := s.getRecipe(ctx, id)
	if err != nil {
		return domain.RecipeDetail{}, err
	}

	if req.Title != nil {
		recipe.Title = strings.TrimSpace(*req.Title)
	}
	if req.Description != nil {
		recipe.Description = *req.Description
	}
	if req.Instructions != nil {
		recipe.Instructions = *req.Instructions
	}
	if req.Servings != nil {
		recipe.Servings = *req.Servings
	}
	if req.PrepTimeMinutes != nil {
		recipe.PrepTimeMinutes = *req.PrepTimeMinutes
	}
	if req.CookTimeMinutes != nil {
		recipe.CookTimeMinutes = *req.CookTimeMinutes
	}
	if req.Category != nil {
		recipe.Category = *req.Category
	}

	var items []*entities.RecipeIngredient
	if req.Ingredients != nil {
		items, err = s.buildIngredients(ctx, recipe.ID, *req.Ingredients)
		if err != nil {
			return domain.RecipeDetail{}, err
		}
	}

	if err := s.recipeRepository.UpdateRecipe(ctx, recipe, items); err != nil {
		return domain.RecipeDetail{}, err
	}

	return s.GetRecipeDetail(ctx, id)
}

func (s *recipeService) DeleteRecipe(ctx context.Context, id string) error {
	if _, err := s.getRecipe(ctx, id); err != nil {
		return err
	}
	return s.recipeRepository.DeleteRecipe(ctx, id)
}

func (s *recipeService) GetRecipes(ctx context.Context, search, category string, page, limit int) ([]domain.Recipe, int64, error) {
	recipes, count, err := s.recipeRepository.GetRecipes(ctx, strings.TrimSpace(search), category, page, limit)
	if err != nil {
		return nil, 0, err
	}

	result := make([]domain.Recipe, 0, len(recipes))
	for _, r := range recipes {
		result = append(result, toRecipe(r))
	}
	return result, count, nil
}

func (s *recipeService) GetRecipeDetail(ctx context.Context, id string) (domain.RecipeDetail, error) {
	recipe, err := s.getRecipe(ctx, id)
	if err != nil {
		return domain.RecipeDetail{}, err
	}

	detail := domain.RecipeDetail{
		Recipe:       toRecipe(recipe),
		Instructions: recipe.Instructions,
		Ingredients:  make([]domain.RecipeIngredient, 0, len(recipe.Ingredients)),
	}

	var total mealplan.Totals
	for _, ri := range recipe.Ingredients {
		line := domain.RecipeIngredient{
			IngredientID: ri.IngredientID.String(),
			Quantity:     ri.Quantity,
			Unit:         ri.Unit,
		}
		if ri.Ingredient != nil {
			facts := mealplan.Facts{
				Calories:    ri.Ingredient.Calories,
				Protein:     ri.Ingredient.Protein,
				Carbs:       ri.Ingredient.Carbs,
				Fat:         ri.Ingredient.Fat,
				UnitWeightG: ri.Ingredient.UnitWeightG,
			}
			grams := mealplan.Grams(mealplan.Quantity{Amount: ri.Quantity, Unit: ri.Unit}, facts)
			t := mealplan.FactsFor(grams, facts)

			line.Name = ri.Ingredient.Name
			line.Grams = round(grams, 1)
			line.Calories = round(t.Calories, 0)

			total.Calories += t.Calories
			total.Protein += t.Protein
			total.Carbs += t.Carbs
			total.Fat += t.Fat
		}
		detail.Ingredients = append(detail.Ingredients, line)
	}

	detail.Total = toFacts(total, 1)
	servings := recipe.Servings
	if servings < 1 {
		servings = 1
	}
	detail.PerServing = toFacts(total, float64(servings))
	return detail, nil
}

func (s *recipeService) buildIngredients(ctx context.Context, recipeID uuid.UUID, reqs []domain.RecipeIngredientRequest) ([]*entities.RecipeIngredient, error) {
	items := make([]*entities.RecipeIngredient, 0, len(reqs))
	for i, req := range reqs {
		ingredientID, err := uuid.Parse(req.IngredientID)
		if err != nil {
			return nil, domain.ErrParseUUID
		}
		if _, err := s.ingredientRepository.GetIngredientByID(ctx, req.IngredientID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, domain.ErrRecipeIngredientMissing
			}
			return nil, err
		}
		items = append(items, &entities.RecipeIngredient{
			ID:           uuid.New(),
			RecipeID:     recipeID,
			IngredientID: ingredientID,
			Quantity:     req.Quantity,
			Unit:         req.Unit,
			Position:     i,
		})
	}
	return items, nil
}

func (s *recipeService) getRecipe(ctx context.Context, id string) (*entities.Recipe, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrParseUUID
	}
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRecipeNotFound
		}
		return nil, err
	}
	return recipe, nil
}

func toRecipe(r *entities.Recipe) domain.Recipe {
	return domain.Recipe{
		ID:              r.ID.String(),
		Title:           r.Title,
		Description:     r.Description,
		ImageURL:        r.ImageURL,
		PrepTimeMinutes: r.PrepTimeMinutes,
		CookTimeMinutes: r.CookTimeMinutes,
		Servings:        r.Servings,
		Category:        r.Category,
		CreatedAt:       r.CreatedAt,
	}
}

func toFacts(t mealplan.Totals, divisor float64) domain.NutritionFacts {
	return domain.NutritionFacts{
		Calories: round(t.Calories/divisor, 0),
		Protein:  round(t.Protein/divisor, 1),
		Carbs:    round(t.Carbs/divisor, 1),
		Fat:      round(t.Fat/divisor, 1),
	}
}

func round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
