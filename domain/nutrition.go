package domain

import (
	"sort"
	"strings"
)

const (
	MealBreakfast = "breakfast"
	MealLunch     = "lunch"
	MealDinner    = "dinner"
	MealSnack     = "snack"

	CategoryStaple    = "staple"
	CategoryMeat      = "meat"
	CategorySeafood   = "seafood"
	CategoryVegetable = "vegetable"
	CategoryFruit     = "fruit"
	CategoryDairy     = "dairy"
	CategoryNut       = "nut"
	CategoryEgg       = "egg"
	CategoryBean      = "bean"
	CategorySoup      = "soup"

	DateLayout = "2006-01-02"
)

type (
	// Macros holds the four macro quantities the planner budgets against.
	Macros struct {
		Calories      float64 `json:"calories"`
		Protein       float64 `json:"protein"`
		Carbohydrates float64 `json:"carbohydrates"`
		Fat           float64 `json:"fat"`
	}

	// Food is a catalog entry as seen by the planner. It is never mutated
	// during a planning run.
	Food struct {
		ID            string   `json:"id"`
		Name          string   `json:"name"`
		Calories      float64  `json:"calories"`
		Protein       float64  `json:"protein"`
		Carbohydrates float64  `json:"carbohydrates"`
		Fat           float64  `json:"fat"`
		Fiber         float64  `json:"fiber"`
		Category      string   `json:"category"`
		Tags          []string `json:"tags"`
	}

	// Profile carries a user's daily goals and dietary tag sets.
	Profile struct {
		ID            string   `json:"id"`
		Goals         Macros   `json:"goals"`
		PreferredTags []string `json:"preferred_tags"`
		AvoidedTags   []string `json:"avoided_tags"`
		Allergens     []string `json:"allergens"`
	}

	// MealSlot is one assembled or logged meal.
	MealSlot struct {
		MealType string `json:"meal_type"`
		Date     string `json:"date"`
		Foods    []Food `json:"foods"`
		Totals   Macros `json:"totals"`
	}

	// History maps a user id to that user's past meals.
	History map[string][]MealSlot
)

func (f Food) Macros() Macros {
	return Macros{
		Calories:      f.Calories,
		Protein:       f.Protein,
		Carbohydrates: f.Carbohydrates,
		Fat:           f.Fat,
	}
}

func (f Food) HasTag(tag string) bool {
	for _, t := range f.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

func (m Macros) Add(o Macros) Macros {
	return Macros{
		Calories:      m.Calories + o.Calories,
		Protein:       m.Protein + o.Protein,
		Carbohydrates: m.Carbohydrates + o.Carbohydrates,
		Fat:           m.Fat + o.Fat,
	}
}

func (m Macros) Sub(o Macros) Macros {
	return Macros{
		Calories:      m.Calories - o.Calories,
		Protein:       m.Protein - o.Protein,
		Carbohydrates: m.Carbohydrates - o.Carbohydrates,
		Fat:           m.Fat - o.Fat,
	}
}

// Div divides every macro by n. n must be non-zero.
func (m Macros) Div(n float64) Macros {
	return Macros{
		Calories:      m.Calories / n,
		Protein:       m.Protein / n,
		Carbohydrates: m.Carbohydrates / n,
		Fat:           m.Fat / n,
	}
}

// Scale multiplies each macro by the matching fraction.
func (m Macros) Scale(f Fractions) Macros {
	return Macros{
		Calories:      m.Calories * f.Calories,
		Protein:       m.Protein * f.Protein,
		Carbohydrates: m.Carbohydrates * f.Carbohydrates,
		Fat:           m.Fat * f.Fat,
	}
}

// Fractions is the share of each daily goal assigned to one meal type.
type Fractions struct {
	Calories      float64 `json:"calories" yaml:"calories"`
	Protein       float64 `json:"protein" yaml:"protein"`
	Carbohydrates float64 `json:"carbohydrates" yaml:"carbohydrates"`
	Fat           float64 `json:"fat" yaml:"fat"`
}

// NewMealSlot builds a slot and computes its totals from foods.
func NewMealSlot(mealType, date string, foods []Food) MealSlot {
	slot := MealSlot{MealType: mealType, Date: date, Foods: foods}
	slot.Totals = SumMacros(foods)
	return slot
}

func SumMacros(foods []Food) Macros {
	var total Macros
	for _, f := range foods {
		total = total.Add(f.Macros())
	}
	return total
}

// NormalizeTags trims, lower-cases, drops empties and deduplicates. The result is sorted.
func NormalizeTags(tags []string) []string {
	seen := make(map[string]struct{}, len(tags))
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		t = strings.ToLower(strings.TrimSpace(t))
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

func IsMealType(s string) bool {
	switch s {
	case MealBreakfast, MealLunch, MealDinner, MealSnack:
		return true
	}
	return false
}
