package mealplan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleWeek() WeekMenu {
	return WeekMenu{Days: []Day{
		{Name: "Monday", Meals: []Meal{
			{Name: "Breakfast", Ingredients: []string{"2 eggs", "50g oats"}},
			{Name: "Lunch", Ingredients: []string{"150g chicken breast"}},
		}},
		{Name: "Tuesday", Meals: []Meal{
			{Name: "Breakfast", Ingredients: []string{"1 egg", "60 g oats"}},
			{Name: "Dinner", Ingredients: []string{"200g chicken breasts", "1 banana", "100 g banana"}},
		}},
	}}
}

func TestShoppingListMergesWeek(t *testing.T) {
	items := ShoppingList(sampleWeek(), nil)

	require.Len(t, items, 4)

	assert.Equal(t, "banana", items[0].Name)
	assert.Equal(t, 200.0, items[0].Amount)
	assert.Equal(t, UnitGram, items[0].Unit)
	assert.Equal(t, 2, items[0].Occurrences)

	assert.Equal(t, "chicken breast", items[1].Name)
	assert.Equal(t, "350 g", items[1].Display)

	assert.Equal(t, "egg", items[2].Name)
	assert.Equal(t, 3.0, items[2].Amount)
	assert.Equal(t, "3 pcs", items[2].Display)

	assert.Equal(t, "oat", items[3].Name)
	assert.Equal(t, 110.0, items[3].Amount)
}

func TestShoppingListUsesKnownPieceWeight(t *testing.T) {
	items := ShoppingList(sampleWeek(), map[string]float64{"banana": 120})

	require.NotEmpty(t, items)
	assert.Equal(t, "banana", items[0].Name)
	assert.Equal(t, 220.0, items[0].Amount)
}

func TestShoppingListKeepsUnmergeableUnits(t *testing.T) {
	menu := WeekMenu{Days: []Day{{Name: "Monday", Meals: []Meal{
		{Name: "Breakfast", Ingredients: []string{"1 l milk", "500 ml milk", "2 slices bread", "100g bread"}},
	}}}}

	items := ShoppingList(menu, nil)

	require.Len(t, items, 3)
	assert.Equal(t, "bread", items[0].Name)
	assert.Equal(t, UnitGram, items[0].Unit)
	assert.Equal(t, "bread", items[1].Name)
	assert.Equal(t, UnitSlice, items[1].Unit)
	assert.Equal(t, "2 slices", items[1].Display)
	assert.Equal(t, "milk", items[2].Name)
	assert.Equal(t, "1.5 l", items[2].Display)
}

func TestShoppingListPluralizesCountUnits(t *testing.T) {
	menu := WeekMenu{Days: []Day{{Name: "Monday", Meals: []Meal{
		{Name: "Post-workout", Ingredients: []string{"1 scoop whey", "1 serving granola", "1 serving granola"}},
	}}}}

	items := ShoppingList(menu, nil)

	require.Len(t, items, 2)
	assert.Equal(t, "granola", items[0].Name)
	assert.Equal(t, "2 servings", items[0].Display)
	assert.Equal(t, "whey", items[1].Name)
	assert.Equal(t, "1 scoop", items[1].Display)
}

func TestShoppingListEmpty(t *testing.T) {
	assert.Empty(t, ShoppingList(WeekMenu{}, nil))
}
