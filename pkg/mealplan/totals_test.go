package mealplan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleIndex() *Index {
	return NewIndex(map[string]Facts{
		"Oats":         {Calories: 380, Protein: 13, Carbs: 60, Fat: 7},
		"egg":          {Calories: 140, Protein: 12, Carbs: 1, Fat: 10, UnitWeightG: 50},
		"greek yogurt": {Calories: 60, Protein: 10, Carbs: 4, Fat: 0},
	})
}

func TestIndexFind(t *testing.T) {
	idx := sampleIndex()

	_, ok := idx.Find("oat")
	assert.True(t, ok)

	f, ok := idx.Find("plain greek yogurt")
	assert.True(t, ok)
	assert.Equal(t, 60.0, f.Calories)

	_, ok = idx.Find("eggplant")
	assert.False(t, ok)
}

func TestDailyTotalsWithoutIndex(t *testing.T) {
	menu := WeekMenu{Days: []Day{{Name: "Monday", Meals: []Meal{
		{Name: "Breakfast", Ingredients: []string{"50g oats"}},
	}}}}

	totals := DailyTotals(menu, nil)

	require.Len(t, totals.Days, 1)
	assert.Equal(t, Totals{}, totals.Days[0].Totals)
	assert.Equal(t, []string{"oat"}, totals.Unmatched)

	_, ok := (*Index)(nil).Find("oat")
	assert.False(t, ok)
}

func TestDailyTotals(t *testing.T) {
	menu := WeekMenu{Days: []Day{
		{Name: "Monday", Meals: []Meal{
			{Name: "Breakfast", Ingredients: []string{"50g oats", "2 eggs"}},
			{Name: "Lunch", Ingredients: []string{"mystery stew"}},
		}},
		{Name: "Tuesday", Meals: []Meal{
			{Name: "Breakfast", Ingredients: []string{"100g oats"}},
		}},
	}}

	totals := DailyTotals(menu, sampleIndex())

	require.Len(t, totals.Days, 2)
	monday := totals.Days[0]
	assert.Equal(t, Totals{Calories: 330, Protein: 18.5, Carbs: 31, Fat: 13.5}, monday.Totals)
	require.Len(t, monday.Meals, 2)
	assert.Equal(t, Totals{}, monday.Meals[1].Totals)

	assert.Equal(t, Totals{Calories: 380, Protein: 13, Carbs: 60, Fat: 7}, totals.Days[1].Totals)
	assert.Equal(t, Totals{Calories: 355, Protein: 15.8, Carbs: 45.5, Fat: 10.3}, totals.DailyAverage)
	assert.Equal(t, []string{"mystery stew"}, totals.Unmatched)
}

func TestGramsFallbacks(t *testing.T) {
	assert.Equal(t, 200.0, Grams(ParseIngredient("2 apples"), Facts{}))
	assert.Equal(t, 60.0, Grams(ParseIngredient("2 slices bread"), Facts{}))
	assert.Equal(t, 15.0, Grams(ParseIngredient("1 tbsp olive oil"), Facts{}))
}
