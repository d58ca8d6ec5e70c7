package recommendation

import (
	"math"
	"math/rand"
	"testing"

	"meal-planner/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleCatalog() []domain.Food {
	return []domain.Food{
		{ID: "rice", Name: "Steamed rice", Calories: 116, Protein: 2.6, Carbohydrates: 25.6, Fat: 0.3, Category: domain.CategoryStaple, Tags: []string{"light"}},
		{ID: "bread", Name: "Whole wheat bread", Calories: 246, Protein: 8.5, Carbohydrates: 45.3, Fat: 3.5, Category: domain.CategoryStaple, Tags: []string{"light", "gluten"}},
		{ID: "chicken", Name: "Chicken breast", Calories: 133, Protein: 24.6, Carbohydrates: 2.5, Fat: 5, Category: domain.CategoryMeat, Tags: []string{"light"}},
		{ID: "beef", Name: "Beef", Calories: 250, Protein: 26.3, Fat: 15.8, Category: domain.CategoryMeat, Tags: []string{"savory"}},
		{ID: "broccoli", Name: "Broccoli", Calories: 34, Protein: 4.1, Carbohydrates: 6.6, Fat: 0.4, Category: domain.CategoryVegetable, Tags: []string{"light"}},
		{ID: "carrot", Name: "Carrot", Calories: 41, Protein: 0.9, Carbohydrates: 9.6, Fat: 0.2, Category: domain.CategoryVegetable, Tags: []string{"sweet"}},
		{ID: "egg", Name: "Boiled egg", Calories: 147, Protein: 12.6, Carbohydrates: 1.3, Fat: 10.6, Category: domain.CategoryEgg, Tags: []string{"light", "egg"}},
		{ID: "milk", Name: "Milk", Calories: 54, Protein: 3, Carbohydrates: 3.4, Fat: 3.2, Category: domain.CategoryDairy, Tags: []string{"light", "lactose"}},
		{ID: "apple", Name: "Apple", Calories: 52, Protein: 0.3, Carbohydrates: 13.8, Fat: 0.2, Category: domain.CategoryFruit, Tags: []string{"sweet"}},
		{ID: "tofu", Name: "Tofu", Calories: 76, Protein: 8.1, Carbohydrates: 4.2, Fat: 3.7, Category: domain.CategoryBean, Tags: []string{"light", "soy"}},
		{ID: "peanut", Name: "Peanuts", Calories: 567, Protein: 25.8, Carbohydrates: 16.1, Fat: 49.2, Category: domain.CategoryNut, Tags: []string{"fragrant", "peanut"}},
	}
}

func defaultProfile() domain.Profile {
	return domain.Profile{
		ID:    "u1",
		Goals: domain.Macros{Calories: 2000, Protein: 100, Carbohydrates: 250, Fat: 65},
	}
}

func foodIDs(slot domain.MealSlot) []string {
	ids := make([]string, 0, len(slot.Foods))
	for _, f := range slot.Foods {
		ids = append(ids, f.ID)
	}
	return ids
}

func TestScore_AllergenAlwaysExcluded(t *testing.T) {
	peanut := sampleCatalog()[10]
	profile := defaultProfile()
	profile.Allergens = []string{"peanut"}
	profile.PreferredTags = []string{"fragrant"}

	budgets := []domain.Macros{
		{},
		peanut.Macros(),
		{Calories: -100, Protein: -5, Carbohydrates: -1, Fat: -9},
		{Calories: 1e9, Protein: 1e9, Carbohydrates: 1e9, Fat: 1e9},
	}
	for _, b := range budgets {
		score := Score(peanut, profile, b, nil)
		assert.LessOrEqual(t, score, ExclusionThreshold)
		assert.Equal(t, ExclusionScore, score)
	}
}

func TestScore_EmptyProfileIsBaselinePlusMacroFit(t *testing.T) {
	remaining := domain.Macros{Calories: 300, Protein: 20, Carbohydrates: 40, Fat: 10}
	for _, food := range sampleCatalog() {
		got := Score(food, defaultProfile(), remaining, domain.History{})
		assert.InDelta(t, BaselineScore+MacroFit(food.Macros(), remaining), got, 1e-9, food.ID)
	}
}

func TestScore_TagsAndRepetition(t *testing.T) {
	bread := sampleCatalog()[1]
	remaining := bread.Macros()

	profile := defaultProfile()
	assert.InDelta(t, 170.0, Score(bread, profile, remaining, nil), 1e-9)

	profile.PreferredTags = []string{"light"}
	assert.InDelta(t, 200.0, Score(bread, profile, remaining, nil), 1e-9)

	profile.AvoidedTags = []string{"gluten"}
	assert.InDelta(t, 150.0, Score(bread, profile, remaining, nil), 1e-9)

	history := domain.History{
		"u1": {
			domain.NewMealSlot(domain.MealBreakfast, "2026-10-01", []domain.Food{bread, sampleCatalog()[6]}),
			domain.NewMealSlot(domain.MealLunch, "2026-10-01", []domain.Food{bread}),
		},
		"someone-else": {
			domain.NewMealSlot(domain.MealLunch, "2026-10-01", []domain.Food{bread}),
		},
	}
	assert.InDelta(t, 130.0, Score(bread, profile, remaining, history), 1e-9)
}

func TestMacroFit_ZeroBudgetIsFinite(t *testing.T) {
	food := sampleCatalog()[3]
	fit := MacroFit(food.Macros(), domain.Macros{})
	assert.False(t, math.IsNaN(fit) || math.IsInf(fit, 0))
	assert.Zero(t, fit)

	fit = MacroFit(food.Macros(), domain.Macros{Calories: 250, Protein: 0, Carbohydrates: -3, Fat: math.NaN()})
	assert.InDelta(t, 20.0, fit, 1e-9)
}

func TestMacroFit_NegativeContributionsAllowed(t *testing.T) {
	fit := MacroFit(domain.Macros{Calories: 600}, domain.Macros{Calories: 100})
	assert.InDelta(t, 20*(1-5.0)+25*(1-1)+15*(1-1)+10*(1-1), fit, 1e-9)
}

func TestAssemble_LunchExample(t *testing.T) {
	policy := DefaultPolicy()
	policy.Categories[domain.MealLunch] = []string{domain.CategoryStaple, domain.CategoryVegetable}
	engine := NewEngine(WithPolicy(policy))

	catalog := []domain.Food{
		{ID: "s", Name: "Staple", Calories: 300, Protein: 8, Carbohydrates: 60, Fat: 2, Category: domain.CategoryStaple},
		{ID: "v", Name: "Vegetable", Calories: 50, Protein: 3, Carbohydrates: 8, Fat: 0.5, Category: domain.CategoryVegetable},
	}
	profile := defaultProfile()
	target := policy.TargetFor(domain.MealLunch, profile.Goals)

	slot := engine.Assemble(profile, domain.MealLunch, target, catalog, nil)
	assert.Equal(t, []string{"s", "v"}, foodIDs(slot))
	assert.InDelta(t, 350.0, slot.Totals.Calories, 1e-9)
	assert.Equal(t, domain.MealLunch, slot.MealType)
}

func TestAssemble_SingleViableCandidateIsSelected(t *testing.T) {
	catalog := []domain.Food{
		{ID: "allergic", Calories: 100, Protein: 10, Carbohydrates: 10, Fat: 3, Category: domain.CategoryEgg, Tags: []string{"egg"}},
		{ID: "only", Calories: 70, Protein: 6, Carbohydrates: 1, Fat: 5, Category: domain.CategoryEgg, Tags: []string{"bland"}},
	}
	profile := defaultProfile()
	profile.Allergens = []string{"egg"}
	profile.AvoidedTags = []string{"bland"}

	policy := DefaultPolicy()
	policy.Categories[domain.MealBreakfast] = []string{domain.CategoryEgg}
	engine := NewEngine(WithPolicy(policy))

	slot := engine.Assemble(profile, domain.MealBreakfast, domain.Macros{Calories: 500, Protein: 25, Carbohydrates: 60, Fat: 20}, catalog, nil)
	assert.Equal(t, []string{"only"}, foodIDs(slot))
}

func TestAssemble_SkipsEmptyAndExcludedCategories(t *testing.T) {
	profile := defaultProfile()
	profile.Allergens = []string{"lactose"}

	engine := NewEngine()
	slot := engine.Assemble(profile, domain.MealBreakfast, domain.Macros{Calories: 600, Protein: 25, Carbohydrates: 75, Fat: 20}, sampleCatalog(), nil)

	// dairy holds only milk, which is excluded
	assert.Equal(t, []string{"rice", "egg", "apple"}, foodIDs(slot))
}

func TestAssemble_TiesKeepCatalogOrder(t *testing.T) {
	catalog := []domain.Food{
		{ID: "first", Calories: 100, Category: domain.CategoryFruit},
		{ID: "second", Calories: 100, Category: domain.CategoryFruit},
	}
	policy := DefaultPolicy()
	policy.Categories[domain.MealSnack] = []string{domain.CategoryFruit}

	slot := NewEngine(WithPolicy(policy)).Assemble(defaultProfile(), domain.MealSnack, domain.Macros{Calories: 100}, catalog, nil)
	assert.Equal(t, []string{"first"}, foodIDs(slot))
}

func TestAssemble_RepetitionShiftsChoice(t *testing.T) {
	catalog := []domain.Food{
		{ID: "a", Calories: 100, Category: domain.CategoryFruit},
		{ID: "b", Calories: 95, Category: domain.CategoryFruit},
	}
	policy := DefaultPolicy()
	policy.Categories[domain.MealSnack] = []string{domain.CategoryFruit}
	engine := NewEngine(WithPolicy(policy))
	profile := defaultProfile()
	target := domain.Macros{Calories: 100}

	assert.Equal(t, []string{"a"}, foodIDs(engine.Assemble(profile, domain.MealSnack, target, catalog, nil)))

	history := domain.History{profile.ID: {domain.NewMealSlot(domain.MealSnack, "2026-10-16", catalog[:1])}}
	assert.Equal(t, []string{"b"}, foodIDs(engine.Assemble(profile, domain.MealSnack, target, catalog, history)))
}

func TestAssemble_MalformedInputsDoNotPanic(t *testing.T) {
	catalog := []domain.Food{
		{ID: "neg", Calories: -50, Protein: -1, Carbohydrates: -1, Fat: -1, Category: domain.CategoryStaple},
	}
	profile := domain.Profile{ID: "x", Goals: domain.Macros{Calories: -2000, Protein: -1, Carbohydrates: 0, Fat: -3}}

	assert.NotPanics(t, func() {
		slots := NewEngine().PlanDay(profile, "2026-10-17", catalog, nil)
		require.Len(t, slots, 3)
		assert.Equal(t, []string{"neg"}, foodIDs(slots[0]))
	})
}

func TestPlanDay_OneSlotPerMealTypeEvenWhenEmpty(t *testing.T) {
	slots := NewEngine().PlanDay(defaultProfile(), "2026-10-17", nil, nil)
	require.Len(t, slots, 3)
	for i, mt := range []string{domain.MealBreakfast, domain.MealLunch, domain.MealDinner} {
		assert.Equal(t, mt, slots[i].MealType)
		assert.Equal(t, "2026-10-17", slots[i].Date)
		assert.Empty(t, slots[i].Foods)
		assert.Zero(t, slots[i].Totals.Calories)
	}

	withSnack := NewEngine(WithPolicy(DefaultPolicy().WithSnack())).PlanDay(defaultProfile(), "2026-10-17", sampleCatalog(), nil)
	require.Len(t, withSnack, 4)
	assert.Equal(t, domain.MealSnack, withSnack[3].MealType)
}

func TestPlanDay_Deterministic(t *testing.T) {
	profile := defaultProfile()
	profile.PreferredTags = []string{"sweet"}
	history := domain.History{profile.ID: {domain.NewMealSlot(domain.MealLunch, "2026-10-16", sampleCatalog()[2:3])}}

	engine := NewEngine()
	first := engine.PlanDay(profile, "2026-10-17", sampleCatalog(), history)
	second := engine.PlanDay(profile, "2026-10-17", sampleCatalog(), history)
	assert.Equal(t, first, second)
}

func TestPlanDay_AllergenNeverServed(t *testing.T) {
	catalog := sampleCatalog()
	// make peanuts the perfect snack and a preferred food
	catalog[10].Calories = 200
	catalog[10].Protein = 10
	catalog[10].Carbohydrates = 25
	catalog[10].Fat = 6.5

	profile := defaultProfile()
	profile.Allergens = []string{"peanut"}
	profile.PreferredTags = []string{"peanut", "fragrant"}

	engine := NewEngine(WithPolicy(DefaultPolicy().WithSnack()))
	for _, slot := range engine.PlanDay(profile, "2026-10-17", catalog, nil) {
		assert.NotContains(t, foodIDs(slot), "peanut")
	}

	profile.Allergens = nil
	snack := engine.Assemble(profile, domain.MealSnack, profile.Goals.Scale(DefaultPolicy().Fractions[domain.MealSnack]), catalog, nil)
	assert.Contains(t, foodIDs(snack), "peanut")
}

func TestPlanDay_RandomTieBreakIsSeeded(t *testing.T) {
	catalog := []domain.Food{
		{ID: "a", Calories: 100, Category: domain.CategoryFruit},
		{ID: "b", Calories: 100, Category: domain.CategoryFruit},
		{ID: "c", Calories: 100, Category: domain.CategoryFruit},
		{ID: "d", Calories: 10, Category: domain.CategoryFruit},
	}
	policy := DefaultPolicy()
	policy.Categories[domain.MealSnack] = []string{domain.CategoryFruit}
	target := domain.Macros{Calories: 100}

	seen := map[string]bool{}
	for seed := int64(0); seed < 50; seed++ {
		e1 := NewEngine(WithPolicy(policy), WithRandomTieBreak(rand.New(rand.NewSource(seed)), 3))
		e2 := NewEngine(WithPolicy(policy), WithRandomTieBreak(rand.New(rand.NewSource(seed)), 3))
		s1 := e1.Assemble(defaultProfile(), domain.MealSnack, target, catalog, nil)
		s2 := e2.Assemble(defaultProfile(), domain.MealSnack, target, catalog, nil)
		require.Equal(t, s1, s2)
		require.Len(t, s1.Foods, 1)
		seen[s1.Foods[0].ID] = true
	}
	assert.False(t, seen["d"], "only the top three may be drawn")
	assert.Greater(t, len(seen), 1)
}

func TestAlternatives(t *testing.T) {
	catalog := sampleCatalog()
	chicken := catalog[2]
	profile := defaultProfile()
	profile.Allergens = []string{"soy"}

	alts := NewEngine().Alternatives(chicken, profile, catalog, nil, 0)
	require.Len(t, alts, DefaultAlternativeCount)
	for _, a := range alts {
		assert.NotEqual(t, chicken.ID, a.ID)
		assert.NotEqual(t, "tofu", a.ID)
	}
	// boiled egg is the closest macro match to chicken breast
	assert.Equal(t, []string{"egg", "milk", "beef"}, []string{alts[0].ID, alts[1].ID, alts[2].ID})

	assert.Len(t, NewEngine().Alternatives(chicken, profile, catalog[:3], nil, 5), 2)
}

func TestIsBalanced(t *testing.T) {
	slot := domain.NewMealSlot(domain.MealLunch, "2026-10-17", []domain.Food{{ID: "x", Calories: 700}})

	assert.True(t, IsBalanced(slot, 800, DefaultBalanceTolerance))
	assert.True(t, IsBalanced(slot, 990, DefaultBalanceTolerance))
	assert.False(t, IsBalanced(slot, 1001, DefaultBalanceTolerance))
	assert.False(t, IsBalanced(slot, 500, DefaultBalanceTolerance))
	assert.True(t, IsBalanced(slot, 500, 0.5))
	assert.False(t, IsBalanced(slot, 0, DefaultBalanceTolerance))
	assert.False(t, IsBalanced(domain.MealSlot{}, 800, DefaultBalanceTolerance))
}

func TestDefaultPolicy_DinnerCategories(t *testing.T) {
	assert.Equal(t, []string{
		domain.CategoryStaple,
		domain.CategorySeafood,
		domain.CategoryVegetable,
		domain.CategoryFruit,
	}, DefaultPolicy().CategoriesFor(domain.MealDinner))

	catalog := append(sampleCatalog(), domain.Food{ID: "shrimp", Calories: 99, Protein: 24, Carbohydrates: 0.2, Fat: 0.3, Category: domain.CategorySeafood})
	dinner := NewEngine().Assemble(defaultProfile(), domain.MealDinner, DefaultPolicy().TargetFor(domain.MealDinner, defaultProfile().Goals), catalog, nil)
	assert.Contains(t, foodIDs(dinner), "shrimp")
	assert.NotContains(t, foodIDs(dinner), "tofu")
}
