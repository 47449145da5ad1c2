package recipe

import (
	"context"
	"fitcoach-backend/domain"
	"fitcoach-backend/entities"
	"fitcoach-backend/internal/utils/testdb"
	"fitcoach-backend/pkg/ingredient"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedIngredient(t *testing.T, db *gorm.DB, name string, kcal, protein, carbs, fat, unitWeight float64) string {
	t.Helper()
	item := &entities.Ingredient{
		ID:             uuid.New(),
		Name:           name,
		NormalizedName: name,
		Calories:       kcal,
		Protein:        protein,
		Carbs:          carbs,
		Fat:            fat,
		UnitWeightG:    unitWeight,
		Source:         domain.IngredientSourceManual,
	}
	require.NoError(t, db.Create(item).Error)
	return item.ID.String()
}

func setup(t *testing.T) (RecipeService, *gorm.DB) {
	db := testdb.New(t)
	return NewRecipeService(NewRecipeRepository(db), ingredient.NewIngredientRepository(db)), db
}

func TestCreateRecipeComputesNutrition(t *testing.T) {
	svc, db := setup(t)
	oats := seedIngredient(t, db, "oat", 380, 13, 60, 7, 0)
	egg := seedIngredient(t, db, "egg", 140, 12, 1, 10, 50)
	milk := seedIngredient(t, db, "milk", 50, 3.4, 4.8, 1.5, 0)

	detail, err := svc.CreateRecipe(context.Background(), domain.CreateRecipeRequest{
		Title:    "Protein porridge",
		Servings: 2,
		Ingredients: []domain.RecipeIngredientRequest{
			{IngredientID: oats, Quantity: 100, Unit: "g"},
			{IngredientID: egg, Quantity: 2, Unit: "piece"},
			{IngredientID: milk, Quantity: 0.2, Unit: "l"},
		},
	})
	require.NoError(t, err)

	require.Len(t, detail.Ingredients, 3)
	assert.Equal(t, "oat", detail.Ingredients[0].Name)
	assert.Equal(t, 100.0, detail.Ingredients[1].Grams)
	assert.Equal(t, 200.0, detail.Ingredients[2].Grams)

	// 380 + 140 + 100 kcal
	assert.Equal(t, domain.NutritionFacts{Calories: 620, Protein: 31.8, Carbs: 70.6, Fat: 20}, detail.Total)
	assert.Equal(t, domain.NutritionFacts{Calories: 310, Protein: 15.9, Carbs: 35.3, Fat: 10}, detail.PerServing)
}

func TestCreateRecipeUnknownIngredient(t *testing.T) {
	svc, _ := setup(t)

	_, err := svc.CreateRecipe(context.Background(), domain.CreateRecipeRequest{
		Title:       "Mystery",
		Servings:    1,
		Ingredients: []domain.RecipeIngredientRequest{{IngredientID: uuid.NewString(), Quantity: 1, Unit: "g"}},
	})
	assert.ErrorIs(t, err, domain.ErrRecipeIngredientMissing)
}

func TestUpdateRecipeReplacesIngredients(t *testing.T) {
	svc, db := setup(t)
	rice := seedIngredient(t, db, "rice", 130, 2.7, 28, 0.3, 0)
	chicken := seedIngredient(t, db, "chicken breast", 165, 31, 0, 3.6, 0)
	ctx := context.Background()

	created, err := svc.CreateRecipe(ctx, domain.CreateRecipeRequest{
		Title:       "Bowl",
		Servings:    1,
		Ingredients: []domain.RecipeIngredientRequest{{IngredientID: rice, Quantity: 200, Unit: "g"}},
	})
	require.NoError(t, err)

	title := "Chicken bowl"
	updated, err := svc.UpdateRecipe(ctx, created.ID, domain.UpdateRecipeRequest{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, "Chicken bowl", updated.Title)
	assert.Len(t, updated.Ingredients, 1, "ingredients kept when not given")

	list := []domain.RecipeIngredientRequest{
		{IngredientID: chicken, Quantity: 150, Unit: "g"},
		{IngredientID: rice, Quantity: 100, Unit: "g"},
	}
	updated, err = svc.UpdateRecipe(ctx, created.ID, domain.UpdateRecipeRequest{Ingredients: &list})
	require.NoError(t, err)
	require.Len(t, updated.Ingredients, 2)
	assert.Equal(t, "chicken breast", updated.Ingredients[0].Name)
	assert.Equal(t, 378.0, updated.Total.Calories)

	var rows int64
	db.Model(&entities.RecipeIngredient{}).Where("recipe_id = ?", created.ID).Count(&rows)
	assert.EqualValues(t, 2, rows)
}

func TestDeleteAndListRecipes(t *testing.T) {
	svc, _ := setup(t)
	ctx := context.Background()

	a, err := svc.CreateRecipe(ctx, domain.CreateRecipeRequest{Title: "Overnight oats", Servings: 1, Category: "breakfast"})
	require.NoError(t, err)
	_, err = svc.CreateRecipe(ctx, domain.CreateRecipeRequest{Title: "Salmon salad", Servings: 1, Category: "lunch"})
	require.NoError(t, err)

	items, total, err := svc.GetRecipes(ctx, "oats", "", 1, 20)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	assert.Equal(t, "Overnight oats", items[0].Title)

	_, total, err = svc.GetRecipes(ctx, "", "lunch", 1, 20)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)

	require.NoError(t, svc.DeleteRecipe(ctx, a.ID))
	_, err = svc.GetRecipeDetail(ctx, a.ID)
	assert.ErrorIs(t, err, domain.ErrRecipeNotFound)
	assert.ErrorIs(t, svc.DeleteRecipe(ctx, a.ID), domain.ErrRecipeNotFound)
}
