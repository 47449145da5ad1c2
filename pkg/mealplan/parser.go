package mealplan

import (
	"regexp"
	"strconv"
	"strings"
)

type (
	ParseError struct {
		Line   int    `json:"line"`
		Text   string `json:"text"`
		Reason string `json:"reason"`
	}

	ParseResult struct {
		Menu   WeekMenu     `json:"week_menu"`
		Errors []ParseError `json:"errors"`
	}
)

const (
	reasonMealOutsideDay       = "meal header before any day header"
	reasonIngredientOutsideDay = "ingredient before any day header"
	reasonIngredientNoMeal     = "ingredient before any meal header"
)

var (
	dayHeaderPattern = regexp.MustCompile(
		`(?i)^(?:(monday|tuesday|wednesday|thursday|friday|saturday|sunday)|day\s*(\d{1,2}))\b\s*(?:\(([^)]*)\))?\s*(?:[,:\-–]\s*(.*))?$`)
	mealHeaderPattern = regexp.MustCompile(
		`(?i)^(breakfast|lunch|dinner|supper|(?:morning|afternoon|evening)\s+snack|snack(?:\s*\d+)?|pre[\s-]?workout|post[\s-]?workout)\s*(?:\([^)]*\))?\s*(?::\s*(.*)|[-–]\s+(.*))?$`)
	bulletPattern    = regexp.MustCompile(`^(?:[-*•·]|\d+[.)])\s+`)
	separatorPattern = regexp.MustCompile(`^[-=_*~]{3,}$`)
	inlineSplitter   = regexp.MustCompile(`\s*;\s*|,\s+`)
	spacePattern     = regexp.MustCompile(`\s+`)
)

// Parse turns pasted plan text into a week menu. It never fails as a whole:
// lines it cannot place are reported in Errors and skipped.
func Parse(text string) ParseResult {
	result := ParseResult{
		Menu:   WeekMenu{Days: []Day{}},
		Errors: []ParseError{},
	}

	dayIdx, mealIdx := -1, -1
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")

	for i, raw := range lines {
		lineNo := i + 1
		line := strings.TrimSpace(raw)
		if line == "" || separatorPattern.MatchString(line) {
			continue
		}
		line = strings.TrimSpace(bulletPattern.ReplaceAllString(line, ""))
		line = strings.Trim(line, "*_#")
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if m := dayHeaderPattern.FindStringSubmatch(line); m != nil {
			dayIdx = findOrAddDay(&result.Menu, dayName(m[1], m[2]))
			if note := dayNote(m[3], m[4]); note != "" && result.Menu.Days[dayIdx].Note == "" {
				result.Menu.Days[dayIdx].Note = note
			}
			mealIdx = -1
			continue
		}

		if m := mealHeaderPattern.FindStringSubmatch(line); m != nil {
			if dayIdx < 0 {
				result.Errors = append(result.Errors, ParseError{Line: lineNo, Text: raw, Reason: reasonMealOutsideDay})
				continue
			}
			mealIdx = findOrAddMeal(&result.Menu.Days[dayIdx], mealName(m[1]))
			inline := m[2]
			if inline == "" {
				inline = m[3]
			}
			for _, part := range inlineSplitter.Split(inline, -1) {
				addIngredient(&result.Menu.Days[dayIdx].Meals[mealIdx], part)
			}
			continue
		}

		switch {
		case dayIdx < 0:
			result.Errors = append(result.Errors, ParseError{Line: lineNo, Text: raw, Reason: reasonIngredientOutsideDay})
		case mealIdx < 0:
			result.Errors = append(result.Errors, ParseError{Line: lineNo, Text: raw, Reason: reasonIngredientNoMeal})
		default:
			addIngredient(&result.Menu.Days[dayIdx].Meals[mealIdx], line)
		}
	}

	return result
}

func addIngredient(meal *Meal, text string) {
	text = strings.TrimSpace(spacePattern.ReplaceAllString(text, " "))
	text = strings.TrimRight(text, ".,;")
	if text == "" {
		return
	}
	meal.Ingredients = append(meal.Ingredients, text)
}

func findOrAddDay(menu *WeekMenu, name string) int {
	for i := range menu.Days {
		if strings.EqualFold(menu.Days[i].Name, name) {
			return i
		}
	}
	menu.Days = append(menu.Days, Day{Name: name, Meals: []Meal{}})
	return len(menu.Days) - 1
}

func findOrAddMeal(day *Day, name string) int {
	for i := range day.Meals {
		if strings.EqualFold(day.Meals[i].Name, name) {
			return i
		}
	}
	day.Meals = append(day.Meals, Meal{Name: name, Ingredients: []string{}})
	return len(day.Meals) - 1
}

func dayName(weekday, number string) string {
	if weekday != "" {
		return titleWord(weekday)
	}
	n, _ := strconv.Atoi(number)
	return "Day " + strconv.Itoa(n)
}

func dayNote(remark, rest string) string {
	var parts []string
	for _, p := range []string{remark, rest} {
		p = strings.TrimSpace(spacePattern.ReplaceAllString(p, " "))
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}

func mealName(raw string) string {
	raw = strings.ToLower(spacePattern.ReplaceAllString(strings.TrimSpace(raw), " "))
	switch {
	case strings.HasPrefix(raw, "pre"):
		return "Pre-workout"
	case strings.HasPrefix(raw, "post"):
		return "Post-workout"
	case strings.HasPrefix(raw, "snack"):
		if n := strings.TrimSpace(strings.TrimPrefix(raw, "snack")); n != "" {
			return "Snack " + n
		}
		return "Snack"
	case raw == "supper":
		return "Dinner"
	}
	return titleWord(raw)
}

func titleWord(s string) string {
	s = strings.ToLower(s)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
