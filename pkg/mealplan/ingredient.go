package mealplan

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

const (
	UnitGram    = "g"
	UnitMl      = "ml"
	UnitPiece   = "piece"
	UnitSlice   = "slice"
	UnitScoop   = "scoop"
	UnitServing = "serving"
)

// Quantity is one ingredient line split into amount, unit and name.
type Quantity struct {
	Amount     float64 `json:"amount"`
	Unit       string  `json:"unit"`
	Name       string  `json:"name"`
	Normalized string  `json:"normalized"`
}

const unitAlternatives = `kg|g|gr|grams?|mg|ml|cl|dl|l|liters?|litres?|tbsp|tsp|el|tl|cups?|pcs|pc|pieces?|slices?|scoops?|servings?|x`

var (
	leadingQuantityPattern = regexp.MustCompile(
		`(?i)^(\d+\s+\d+/\d+|\d+/\d+|\d+(?:[.,]\d+)?|½|¼|¾)\s*(` + unitAlternatives + `)?\.?\s+(?:of\s+)?(.+)$`)
	trailingQuantityPattern = regexp.MustCompile(
		`(?i)^(.+?)\s*[(:\-–]?\s*(\d+(?:[.,]\d+)?)\s*(` + unitAlternatives + `)\.?\)?$`)
	// "eggs x2", "eggs (2)"
	trailingCountPattern = regexp.MustCompile(
		`(?i)^(.+?)(?:\s*\(\s*[x×]?\s*(\d+)\s*\)|\s+[x×]\s*(\d+))$`)
	parenthesesPattern = regexp.MustCompile(`\([^)]*\)`)
)

type unitDef struct {
	base   string
	factor float64
}

var unitTable = map[string]unitDef{
	"mg":   {UnitGram, 0.001},
	"g":    {UnitGram, 1},
	"kg":   {UnitGram, 1000},
	"ml":   {UnitMl, 1},
	"cl":   {UnitMl, 10},
	"dl":   {UnitMl, 100},
	"l":    {UnitMl, 1000},
	"tsp":  {UnitMl, 5},
	"tbsp": {UnitMl, 15},
	"cup":  {UnitMl, 240},
}

// ParseIngredient reads "150g chicken breast", "2 eggs", "oats 50 g" or "banana".
// A line without an amount counts as one piece.
func ParseIngredient(line string) Quantity {
	line = strings.TrimSpace(line)
	q := Quantity{Amount: 1, Unit: UnitPiece, Name: line}

	if m := leadingQuantityPattern.FindStringSubmatch(line); m != nil {
		if amount, ok := parseAmount(m[1]); ok {
			q.Amount = amount
			q.Unit = canonicalUnit(m[2])
			q.Name = strings.TrimSpace(m[3])
		}
	} else if m := trailingQuantityPattern.FindStringSubmatch(line); m != nil && hasLetter(m[1]) {
		if amount, ok := parseAmount(m[2]); ok {
			q.Amount = amount
			q.Unit = canonicalUnit(m[3])
			q.Name = strings.TrimSpace(m[1])
		}
	} else if m := trailingCountPattern.FindStringSubmatch(line); m != nil && hasLetter(m[1]) {
		count := m[2]
		if count == "" {
			count = m[3]
		}
		if amount, ok := parseAmount(count); ok {
			q.Amount = amount
			q.Name = strings.TrimSpace(m[1])
		}
	}

	q.Normalized = NormalizeName(q.Name)
	return q
}

// BaseAmount converts to grams or millilitres where the unit allows it.
// Other units come back unchanged.
func (q Quantity) BaseAmount() (float64, string) {
	if def, ok := unitTable[q.Unit]; ok {
		return q.Amount * def.factor, def.base
	}
	return q.Amount, q.Unit
}

// NormalizeName lowercases, drops parenthesised remarks, collapses whitespace
// and singularizes the last word so "Eggs" and "egg" group together.
func NormalizeName(name string) string {
	name = strings.ToLower(parenthesesPattern.ReplaceAllString(name, " "))
	name = strings.Trim(spacePattern.ReplaceAllString(name, " "), " .,;:-")
	if name == "" {
		return ""
	}
	words := strings.Split(name, " ")
	words[len(words)-1] = singular(words[len(words)-1])
	return strings.Join(words, " ")
}

func singular(word string) string {
	switch {
	case len(word) > 4 && strings.HasSuffix(word, "ies"):
		return strings.TrimSuffix(word, "ies") + "y"
	case len(word) > 4 && strings.HasSuffix(word, "oes"):
		return strings.TrimSuffix(word, "es")
	case len(word) > 3 && strings.HasSuffix(word, "s") && !strings.HasSuffix(word, "ss") && !strings.HasSuffix(word, "us"):
		return strings.TrimSuffix(word, "s")
	}
	return word
}

func hasLetter(s string) bool {
	return strings.IndexFunc(s, unicode.IsLetter) >= 0
}

func canonicalUnit(raw string) string {
	u := strings.ToLower(strings.TrimSpace(raw))
	switch u {
	case "", "x", "pc", "pcs", "piece", "pieces":
		return UnitPiece
	case "gr", "gram", "grams":
		return "g"
	case "liter", "liters", "litre", "litres":
		return "l"
	case "el":
		return "tbsp"
	case "tl":
		return "tsp"
	case "cups":
		return "cup"
	case "slices":
		return UnitSlice
	case "scoops":
		return UnitScoop
	case "servings":
		return UnitServing
	}
	return u
}

func parseAmount(raw string) (float64, bool) {
	switch raw {
	case "½":
		return 0.5, true
	case "¼":
		return 0.25, true
	case "¾":
		return 0.75, true
	}
	if parts := strings.Fields(raw); len(parts) == 2 {
		whole, err := strconv.ParseFloat(parts[0], 64)
		frac, ok := parseAmount(parts[1])
		if err != nil || !ok {
			return 0, false
		}
		return whole + frac, true
	}
	if num, den, ok := strings.Cut(raw, "/"); ok {
		n, err1 := strconv.ParseFloat(num, 64)
		d, err2 := strconv.ParseFloat(den, 64)
		if err1 != nil || err2 != nil || d == 0 {
			return 0, false
		}
		return n / d, true
	}
	v, err := strconv.ParseFloat(strings.Replace(raw, ",", ".", 1), 64)
	if err != nil || v <= 0 {
		return 0, false
	}
	return v, true
}
