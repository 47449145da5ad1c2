package mealplan

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseIngredient(t *testing.T) {
	cases := []struct {
		line       string
		amount     float64
		unit       string
		name       string
		normalized string
	}{
		{"150g chicken breast", 150, "g", "chicken breast", "chicken breast"},
		{"2 eggs", 2, UnitPiece, "eggs", "egg"},
		{"1.5 tbsp olive oil", 1.5, "tbsp", "olive oil", "olive oil"},
		{"1,5 kg potatoes", 1.5, "kg", "potatoes", "potato"},
		{"banana", 1, UnitPiece, "banana", "banana"},
		{"oats 50 g", 50, "g", "oats", "oat"},
		{"chicken breast (150g)", 150, "g", "chicken breast", "chicken breast"},
		{"1/2 avocado", 0.5, UnitPiece, "avocado", "avocado"},
		{"200 ml of milk", 200, "ml", "milk", "milk"},
		{"2 large eggs", 2, UnitPiece, "large eggs", "large egg"},
		{"3 Strawberries", 3, UnitPiece, "Strawberries", "strawberry"},
		{"2x Banana", 2, UnitPiece, "Banana", "banana"},
		{"1 1/2 cups oats", 1.5, "cup", "oats", "oat"},
		{"eggs (2)", 2, UnitPiece, "eggs", "egg"},
		{"eggs x2", 2, UnitPiece, "eggs", "egg"},
		{"Eggs x 3", 3, UnitPiece, "Eggs", "egg"},
	}

	for _, tc := range cases {
		t.Run(tc.line, func(t *testing.T) {
			q := ParseIngredient(tc.line)
			assert.InDelta(t, tc.amount, q.Amount, 1e-9)
			assert.Equal(t, tc.unit, q.Unit)
			assert.Equal(t, tc.name, q.Name)
			assert.Equal(t, tc.normalized, q.Normalized)
		})
	}
}

func TestBaseAmount(t *testing.T) {
	amount, unit := ParseIngredient("1.5 kg potatoes").BaseAmount()
	assert.Equal(t, 1500.0, amount)
	assert.Equal(t, UnitGram, unit)

	amount, unit = ParseIngredient("2 tbsp honey").BaseAmount()
	assert.Equal(t, 30.0, amount)
	assert.Equal(t, UnitMl, unit)

	amount, unit = ParseIngredient("2 slices bread").BaseAmount()
	assert.Equal(t, 2.0, amount)
	assert.Equal(t, UnitSlice, unit)
}

func TestNormalizeName(t *testing.T) {
	assert.Equal(t, "greek yogurt", NormalizeName("  Greek   Yogurt (0% fat) "))
	assert.Equal(t, "hummus", NormalizeName("Hummus"))
	assert.Equal(t, "glass", NormalizeName("glass"))
	assert.Equal(t, "", NormalizeName(" ( ) "))
}
