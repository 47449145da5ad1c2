package mealplan

import (
	"sort"
	"strings"
)

const (
	defaultSliceWeightG   = 30
	defaultScoopWeightG   = 30
	defaultServingWeightG = 100
)

type (
	// Facts are per 100 g. UnitWeightG is the weight of one piece, 0 when unknown.
	Facts struct {
		Calories    float64
		Protein     float64
		Carbs       float64
		Fat         float64
		UnitWeightG float64
	}

	Totals struct {
		Calories float64 `json:"calories"`
		Protein  float64 `json:"protein"`
		Carbs    float64 `json:"carbs"`
		Fat      float64 `json:"fat"`
	}

	MealTotals struct {
		Name   string `json:"name"`
		Totals Totals `json:"totals"`
	}

	DayTotals struct {
		Name   string       `json:"name"`
		Meals  []MealTotals `json:"meals"`
		Totals Totals       `json:"totals"`
	}

	PlanTotals struct {
		Days         []DayTotals `json:"days"`
		DailyAverage Totals      `json:"daily_average"`
		Unmatched    []string    `json:"unmatched"`
	}
)

func (t *Totals) add(o Totals) {
	t.Calories += o.Calories
	t.Protein += o.Protein
	t.Carbs += o.Carbs
	t.Fat += o.Fat
}

func (t Totals) rounded() Totals {
	return Totals{
		Calories: roundTo(t.Calories, 0),
		Protein:  roundTo(t.Protein, 1),
		Carbs:    roundTo(t.Carbs, 1),
		Fat:      roundTo(t.Fat, 1),
	}
}

// Index resolves ingredient names to nutrition facts: an exact normalized match
// first, then the longest known name contained in the line as whole words.
type Index struct {
	facts map[string]Facts
	names []string
}

func NewIndex(facts map[string]Facts) *Index {
	idx := &Index{facts: make(map[string]Facts, len(facts))}
	for name, f := range facts {
		key := NormalizeName(name)
		idx.facts[key] = f
		idx.names = append(idx.names, key)
	}
	sort.Slice(idx.names, func(i, j int) bool {
		if len(idx.names[i]) != len(idx.names[j]) {
			return len(idx.names[i]) > len(idx.names[j])
		}
		return idx.names[i] < idx.names[j]
	})
	return idx
}

func (idx *Index) Find(normalized string) (Facts, bool) {
	if idx == nil {
		return Facts{}, false
	}
	if f, ok := idx.facts[normalized]; ok {
		return f, true
	}
	padded := " " + normalized + " "
	for _, name := range idx.names {
		if strings.Contains(padded, " "+name+" ") {
			return idx.facts[name], true
		}
	}
	return Facts{}, false
}

// Grams converts a parsed quantity to grams using the ingredient's facts.
// Millilitres count as grams.
func Grams(q Quantity, f Facts) float64 {
	amount, unit := q.BaseAmount()
	switch unit {
	case UnitGram, UnitMl:
		return amount
	case UnitPiece:
		if f.UnitWeightG > 0 {
			return amount * f.UnitWeightG
		}
		return amount * DefaultPieceWeightG
	case UnitSlice:
		if f.UnitWeightG > 0 {
			return amount * f.UnitWeightG
		}
		return amount * defaultSliceWeightG
	case UnitScoop:
		return amount * defaultScoopWeightG
	}
	return amount * defaultServingWeightG
}

// FactsFor scales per-100 g facts to the given grams.
func FactsFor(grams float64, f Facts) Totals {
	factor := grams / 100
	return Totals{
		Calories: f.Calories * factor,
		Protein:  f.Protein * factor,
		Carbs:    f.Carbs * factor,
		Fat:      f.Fat * factor,
	}
}

// DailyTotals sums macros per meal and day. Lines that resolve to no known
// ingredient contribute nothing and are listed once in Unmatched.
func DailyTotals(menu WeekMenu, idx *Index) PlanTotals {
	out := PlanTotals{Days: []DayTotals{}, Unmatched: []string{}}
	unmatched := make(map[string]bool)
	var week Totals

	for _, day := range menu.Days {
		dt := DayTotals{Name: day.Name, Meals: []MealTotals{}}
		for _, meal := range day.Meals {
			var mt Totals
			for _, line := range meal.Ingredients {
				q := ParseIngredient(line)
				f, ok := idx.Find(q.Normalized)
				if !ok {
					if q.Normalized != "" {
						unmatched[q.Normalized] = true
					}
					continue
				}
				mt.add(FactsFor(Grams(q, f), f))
			}
			dt.Totals.add(mt)
			dt.Meals = append(dt.Meals, MealTotals{Name: meal.Name, Totals: mt.rounded()})
		}
		week.add(dt.Totals)
		dt.Totals = dt.Totals.rounded()
		out.Days = append(out.Days, dt)
	}

	if n := float64(len(menu.Days)); n > 0 {
		out.DailyAverage = Totals{
			Calories: week.Calories / n,
			Protein:  week.Protein / n,
			Carbs:    week.Carbs / n,
			Fat:      week.Fat / n,
		}.rounded()
	}

	for name := range unmatched {
		out.Unmatched = append(out.Unmatched, name)
	}
	sort.Strings(out.Unmatched)
	return out
}
