package mealplan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseWeek(t *testing.T) {
	text := `Monday
Breakfast:
- 50g oats
- 200 ml milk
Lunch: 150g chicken breast, 100g rice

Tuesday
Breakfast
2 eggs
`
	res := Parse(text)

	require.Empty(t, res.Errors)
	require.Len(t, res.Menu.Days, 2)

	monday := res.Menu.Days[0]
	assert.Equal(t, "Monday", monday.Name)
	require.Len(t, monday.Meals, 2)
	assert.Equal(t, "Breakfast", monday.Meals[0].Name)
	assert.Equal(t, []string{"50g oats", "200 ml milk"}, monday.Meals[0].Ingredients)
	assert.Equal(t, "Lunch", monday.Meals[1].Name)
	assert.Equal(t, []string{"150g chicken breast", "100g rice"}, monday.Meals[1].Ingredients)

	tuesday := res.Menu.Days[1]
	assert.Equal(t, "Tuesday", tuesday.Name)
	require.Len(t, tuesday.Meals, 1)
	assert.Equal(t, []string{"2 eggs"}, tuesday.Meals[0].Ingredients)
}

func TestParseReportsMisplacedLines(t *testing.T) {
	text := "Lunch: pasta\n50g oats\nMonday\n100g rice\nDinner: salmon"

	res := Parse(text)

	require.Len(t, res.Errors, 3)
	assert.Equal(t, 1, res.Errors[0].Line)
	assert.Equal(t, reasonMealOutsideDay, res.Errors[0].Reason)
	assert.Equal(t, 2, res.Errors[1].Line)
	assert.Equal(t, reasonIngredientOutsideDay, res.Errors[1].Reason)
	assert.Equal(t, 4, res.Errors[2].Line)
	assert.Equal(t, reasonIngredientNoMeal, res.Errors[2].Reason)
	assert.Equal(t, "100g rice", res.Errors[2].Text)

	require.Len(t, res.Menu.Days, 1)
	assert.Equal(t, []string{"salmon"}, res.Menu.Days[0].Meals[0].Ingredients)
}

func TestParseMergesRepeatedDaysAndMeals(t *testing.T) {
	text := "Monday\nBreakfast: oats\nTuesday\nBreakfast: eggs\nmonday\nBreakfast: banana\nDinner: fish"

	res := Parse(text)

	require.Len(t, res.Menu.Days, 2)
	monday := res.Menu.Days[0]
	require.Len(t, monday.Meals, 2)
	assert.Equal(t, []string{"oats", "banana"}, monday.Meals[0].Ingredients)
	assert.Equal(t, "Dinner", monday.Meals[1].Name)
}

func TestParseHeaderVariants(t *testing.T) {
	text := "**Day 01**\r\nSnack 2: apple; walnuts\r\nPre workout - banana\r\n# Wednesday: rest day\r\nSupper (19:00)\r\n1. 2 slices bread\r\n---\r\n"

	res := Parse(text)

	require.Empty(t, res.Errors)
	require.Len(t, res.Menu.Days, 2)
	assert.Equal(t, "Day 1", res.Menu.Days[0].Name)
	require.Len(t, res.Menu.Days[0].Meals, 2)
	assert.Equal(t, "Snack 2", res.Menu.Days[0].Meals[0].Name)
	assert.Equal(t, []string{"apple", "walnuts"}, res.Menu.Days[0].Meals[0].Ingredients)
	assert.Equal(t, "Pre-workout", res.Menu.Days[0].Meals[1].Name)
	assert.Equal(t, []string{"banana"}, res.Menu.Days[0].Meals[1].Ingredients)

	assert.Equal(t, "Wednesday", res.Menu.Days[1].Name)
	assert.Equal(t, "rest day", res.Menu.Days[1].Note)
	assert.Equal(t, "Dinner", res.Menu.Days[1].Meals[0].Name)
	assert.Equal(t, []string{"2 slices bread"}, res.Menu.Days[1].Meals[0].Ingredients)

	cases := []struct {
		header string
		name   string
		note   string
	}{
		{"Tuesday (rest day)", "Tuesday", "rest day"},
		{"Tuesday, 6 Jan", "Tuesday", "6 Jan"},
		{"tuesday (refeed) - 6 Jan", "Tuesday", "refeed, 6 Jan"},
		{"Day 0", "Day 0", ""},
		{"Day 07 – high carb", "Day 7", "high carb"},
	}
	for _, tc := range cases {
		t.Run(tc.header, func(t *testing.T) {
			res := Parse("Monday\nDinner: fish\n" + tc.header + "\nBreakfast: oats")

			require.Empty(t, res.Errors)
			require.Len(t, res.Menu.Days, 2)
			assert.Equal(t, []string{"fish"}, res.Menu.Days[0].Meals[0].Ingredients)
			require.Len(t, res.Menu.Days[0].Meals, 1)

			day := res.Menu.Days[1]
			assert.Equal(t, tc.name, day.Name)
			assert.Equal(t, tc.note, day.Note)
			require.Len(t, day.Meals, 1)
			assert.Equal(t, "Breakfast", day.Meals[0].Name)
			assert.Equal(t, []string{"oats"}, day.Meals[0].Ingredients)
		})
	}
}

func TestParseDayHeaderWithoutPreviousDay(t *testing.T) {
	res := Parse("Monday, 6 Jan\nLunch: rice")

	require.Empty(t, res.Errors)
	require.Len(t, res.Menu.Days, 1)
	assert.Equal(t, "Monday", res.Menu.Days[0].Name)
	assert.Equal(t, "6 Jan", res.Menu.Days[0].Note)
	assert.Equal(t, []string{"rice"}, res.Menu.Days[0].Meals[0].Ingredients)
}

func TestParseKeepsDayHeaderText(t *testing.T) {
	res := Parse("Monday - 2 eggs, toast\nBreakfast: oats\nmonday: high protein")

	require.Empty(t, res.Errors)
	require.Len(t, res.Menu.Days, 1)
	assert.Equal(t, "2 eggs, toast", res.Menu.Days[0].Note)
	assert.Equal(t, []string{"oats"}, res.Menu.Days[0].Meals[0].Ingredients)
}

func TestParseEmpty(t *testing.T) {
	res := Parse("  \n\n")
	assert.Empty(t, res.Menu.Days)
	assert.Empty(t, res.Errors)
}

func TestWeekMenuEncodeDecode(t *testing.T) {
	menu := Parse("Monday\nLunch: 100g rice, 2 eggs, 3 Eggs").Menu

	raw, err := menu.Encode()
	require.NoError(t, err)

	decoded, err := DecodeWeekMenu(raw)
	require.NoError(t, err)
	assert.Equal(t, menu, decoded)
	assert.Equal(t, 3, decoded.IngredientCount())
	assert.Equal(t, []string{"rice", "egg"}, decoded.IngredientNames())

	empty, err := DecodeWeekMenu("")
	require.NoError(t, err)
	assert.Empty(t, empty.Days)
}
