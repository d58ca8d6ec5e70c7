package recommendation

import "meal-planner/domain"

// Policy is the static configuration the planner runs against: which
// categories make up each meal type and how the daily goals are split.
type Policy struct {
	// MealTypes is the order PlanDay assembles slots in.
	MealTypes  []string
	Categories map[string][]string
	Fractions  map[string]domain.Fractions
}

func DefaultPolicy() Policy {
	return Policy{
		MealTypes: []string{domain.MealBreakfast, domain.MealLunch, domain.MealDinner},
		Categories: map[string][]string{
			domain.MealBreakfast: {domain.CategoryStaple, domain.CategoryEgg, domain.CategoryDairy, domain.CategoryFruit},
			domain.MealLunch:     {domain.CategoryStaple, domain.CategoryMeat, domain.CategoryVegetable, domain.CategoryVegetable},
			domain.MealDinner:    {domain.CategoryStaple, domain.CategorySeafood, domain.CategoryVegetable, domain.CategoryFruit},
			domain.MealSnack:     {domain.CategoryFruit, domain.CategoryNut, domain.CategoryDairy},
		},
		Fractions: map[string]domain.Fractions{
			domain.MealBreakfast: {Calories: 0.30, Protein: 0.25, Carbohydrates: 0.30, Fat: 0.30},
			domain.MealLunch:     {Calories: 0.40, Protein: 0.40, Carbohydrates: 0.40, Fat: 0.40},
			domain.MealDinner:    {Calories: 0.30, Protein: 0.35, Carbohydrates: 0.30, Fat: 0.30},
			// snack budget comes on top of the three main meals
			domain.MealSnack: {Calories: 0.10, Protein: 0.10, Carbohydrates: 0.10, Fat: 0.10},
		},
	}
}

// WithSnack returns a copy of p that also plans a snack after the main meals.
func (p Policy) WithSnack() Policy {
	for _, mt := range p.MealTypes {
		if mt == domain.MealSnack {
			return p
		}
	}
	types := make([]string, 0, len(p.MealTypes)+1)
	types = append(types, p.MealTypes...)
	p.MealTypes = append(types, domain.MealSnack)
	return p
}

// CategoriesFor returns the ordered category list for a meal type. Unknown
// meal types fall back to a generic staple/vegetable/meat plate.
func (p Policy) CategoriesFor(mealType string) []string {
	if cats, ok := p.Categories[mealType]; ok {
		return cats
	}
	return []string{domain.CategoryStaple, domain.CategoryVegetable, domain.CategoryMeat}
}

// TargetFor splits daily goals into the sub-budget of one meal type. A meal
// type without fractions gets a zero budget.
func (p Policy) TargetFor(mealType string, goals domain.Macros) domain.Macros {
	return goals.Scale(p.Fractions[mealType])
}
