// Package mealplan holds the week-menu model shared by nutrition plans and the
// text parser, shopping list and macro totals that operate on it.
package mealplan

import (
	"encoding/json"
	"strings"
)

type (
	WeekMenu struct {
		Days []Day `json:"days"`
	}

	Day struct {
		Name string `json:"name"`
		// Note carries header remarks such as "rest day" or a date.
		Note  string `json:"note,omitempty"`
		Meals []Meal `json:"meals"`
	}

	Meal struct {
		Name        string   `json:"name"`
		Ingredients []string `json:"ingredients"`
	}
)

// DecodeWeekMenu accepts the stored JSON; an empty string is an empty menu.
func DecodeWeekMenu(raw string) (WeekMenu, error) {
	var menu WeekMenu
	if strings.TrimSpace(raw) == "" {
		return menu, nil
	}
	if err := json.Unmarshal([]byte(raw), &menu); err != nil {
		return WeekMenu{}, err
	}
	return menu, nil
}

func (m WeekMenu) Encode() (string, error) {
	if m.Days == nil {
		m.Days = []Day{}
	}
	b, err := json.Marshal(m)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// IngredientCount is the number of ingredient lines across the week.
func (m WeekMenu) IngredientCount() int {
	n := 0
	for _, day := range m.Days {
		for _, meal := range day.Meals {
			n += len(meal.Ingredients)
		}
	}
	return n
}

// IngredientNames returns the distinct normalized ingredient names in first-seen order.
func (m WeekMenu) IngredientNames() []string {
	seen := make(map[string]bool)
	var names []string
	for _, day := range m.Days {
		for _, meal := range day.Meals {
			for _, line := range meal.Ingredients {
				name := ParseIngredient(line).Normalized
				if name == "" || seen[name] {
					continue
				}
				seen[name] = true
				names = append(names, name)
			}
		}
	}
	return names
}
