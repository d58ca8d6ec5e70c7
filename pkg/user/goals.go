package user

import "meal-planner/domain"

const (
	SexMale = "male"

	proteinPerKg      = 1.2
	carbCalorieShare  = 0.50
	fatCalorieShare   = 0.25
	kcalPerGramCarb   = 4.0
	kcalPerGramFat    = 9.0
	defaultMultiplier = 1.2
)

var activityMultipliers = map[string]float64{
	"sedentary":   1.2,
	"light":       1.375,
	"moderate":    1.55,
	"active":      1.725,
	"very_active": 1.9,
}

// CalculateGoals derives daily macro goals from body stats using the
// Mifflin-St Jeor equation. Unknown activity levels count as sedentary.
func CalculateGoals(sex string, age int, weightKg, heightCm float64, activityLevel string) domain.Macros {
	bmr := 10*weightKg + 6.25*heightCm - 5*float64(age)
	if sex == SexMale {
		bmr += 5
	} else {
		bmr -= 161
	}

	multiplier, ok := activityMultipliers[activityLevel]
	if !ok {
		multiplier = defaultMultiplier
	}

	calories := bmr * multiplier
	return domain.Macros{
		Calories:      calories,
		Protein:       weightKg * proteinPerKg,
		Carbohydrates: calories * carbCalorieShare / kcalPerGramCarb,
		Fat:           calories * fatCalorieShare / kcalPerGramFat,
	}
}

func IsActivityLevel(level string) bool {
	_, ok := activityMultipliers[level]
	return ok
}
