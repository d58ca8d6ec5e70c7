package recommendation

import (
	"math"

	"meal-planner/domain"
)

const (
	BaselineScore = 100.0

	// ExclusionScore is returned for a food carrying one of the user's
	// allergens. Only its relation to ExclusionThreshold matters.
	ExclusionScore = -1000.0

	// ExclusionThreshold must stay strictly above ExclusionScore. Candidates
	// scoring at or below it are never served.
	ExclusionThreshold = -500.0

	AvoidedTagPenalty = 50.0
	PreferredTagBonus = 30.0
	RepetitionPenalty = 10.0
	caloriesFitWeight = 20.0
	proteinFitWeight  = 25.0
	carbsFitWeight    = 15.0
	fatFitWeight      = 10.0
)

// Score rates how well food fits profile given the remaining per-category
// budget. It is pure: the same inputs always give the same score.
func Score(food domain.Food, profile domain.Profile, remaining domain.Macros, history domain.History) float64 {
	if hasAllergen(food, profile) {
		return ExclusionScore
	}

	score := BaselineScore
	for _, tag := range profile.AvoidedTags {
		if food.HasTag(tag) {
			score -= AvoidedTagPenalty
		}
	}
	for _, tag := range profile.PreferredTags {
		if food.HasTag(tag) {
			score += PreferredTagBonus
		}
	}

	score += MacroFit(food.Macros(), remaining)
	score -= RepetitionPenalty * float64(timesServed(food.ID, history[profile.ID]))
	return score
}

// MacroFit is the ratio rule: each macro adds weight*(1-|amount/remaining-1|).
// A macro with no remaining budget contributes nothing.
func MacroFit(amount, remaining domain.Macros) float64 {
	return ratioFit(amount.Calories, remaining.Calories, caloriesFitWeight) +
		ratioFit(amount.Protein, remaining.Protein, proteinFitWeight) +
		ratioFit(amount.Carbohydrates, remaining.Carbohydrates, carbsFitWeight) +
		ratioFit(amount.Fat, remaining.Fat, fatFitWeight)
}

func ratioFit(amount, remaining, weight float64) float64 {
	if remaining <= 0 || math.IsNaN(remaining) || math.IsInf(remaining, 0) {
		return 0
	}
	return weight * (1 - math.Abs(amount/remaining-1))
}

func hasAllergen(food domain.Food, profile domain.Profile) bool {
	for _, allergen := range profile.Allergens {
		if food.HasTag(allergen) {
			return true
		}
	}
	return false
}

func timesServed(foodID string, meals []domain.MealSlot) int {
	n := 0
	for _, meal := range meals {
		for _, f := range meal.Foods {
			if f.ID == foodID {
				n++
			}
		}
	}
	return n
}
