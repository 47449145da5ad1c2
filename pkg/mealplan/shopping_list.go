package mealplan

import (
	"math"
	"sort"
	"strconv"
)

// DefaultPieceWeightG is used to fold pieces into grams when an ingredient
// appears in both and its own piece weight is unknown.
const DefaultPieceWeightG = 100

type ShoppingItem struct {
	Name        string  `json:"name"`
	Amount      float64 `json:"amount"`
	Unit        string  `json:"unit"`
	Display     string  `json:"display"`
	Occurrences int     `json:"occurrences"`
}

type shoppingGroup struct {
	amounts     map[string]float64
	occurrences map[string]int
}

// ShoppingList merges every ingredient line of the week by normalized name.
// pieceWeights maps normalized names to grams per piece and may be nil.
func ShoppingList(menu WeekMenu, pieceWeights map[string]float64) []ShoppingItem {
	groups := make(map[string]*shoppingGroup)

	for _, day := range menu.Days {
		for _, meal := range day.Meals {
			for _, line := range meal.Ingredients {
				q := ParseIngredient(line)
				if q.Normalized == "" {
					continue
				}
				amount, unit := q.BaseAmount()

				g, ok := groups[q.Normalized]
				if !ok {
					g = &shoppingGroup{amounts: map[string]float64{}, occurrences: map[string]int{}}
					groups[q.Normalized] = g
				}
				g.amounts[unit] += amount
				g.occurrences[unit]++
			}
		}
	}

	items := make([]ShoppingItem, 0, len(groups))
	for name, g := range groups {
		if pieces, ok := g.amounts[UnitPiece]; ok {
			if _, hasGrams := g.amounts[UnitGram]; hasGrams {
				weight := pieceWeights[name]
				if weight <= 0 {
					weight = DefaultPieceWeightG
				}
				g.amounts[UnitGram] += pieces * weight
				g.occurrences[UnitGram] += g.occurrences[UnitPiece]
				delete(g.amounts, UnitPiece)
				delete(g.occurrences, UnitPiece)
			}
		}

		for unit, amount := range g.amounts {
			amount = roundTo(amount, 2)
			items = append(items, ShoppingItem{
				Name:        name,
				Amount:      amount,
				Unit:        unit,
				Display:     displayAmount(amount, unit),
				Occurrences: g.occurrences[unit],
			})
		}
	}

	sort.Slice(items, func(i, j int) bool {
		if items[i].Name != items[j].Name {
			return items[i].Name < items[j].Name
		}
		return items[i].Unit < items[j].Unit
	})
	return items
}

func displayAmount(amount float64, unit string) string {
	switch unit {
	case UnitGram:
		if amount >= 1000 {
			return formatNumber(amount/1000) + " kg"
		}
		return formatNumber(amount) + " g"
	case UnitMl:
		if amount >= 1000 {
			return formatNumber(amount/1000) + " l"
		}
		return formatNumber(amount) + " ml"
	case UnitPiece:
		if amount == 1 {
			return "1 pc"
		}
		return formatNumber(amount) + " pcs"
	case UnitSlice, UnitScoop, UnitServing:
		if amount != 1 {
			return formatNumber(amount) + " " + unit + "s"
		}
	}
	return formatNumber(amount) + " " + unit
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(roundTo(v, 2), 'f', -1, 64)
}

func roundTo(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
