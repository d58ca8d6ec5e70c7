package recommendation

import (
	"math/rand"
	"sort"

	"meal-planner/domain"
)

const (
	DefaultRandomTopN       = 3
	DefaultBalanceTolerance = 0.30
	DefaultAlternativeCount = 3
)

// Engine assembles meals from a catalog snapshot. An Engine holds no
// catalog or history state; every call receives its own snapshot. An Engine
// with a random source must not be shared between goroutines.
type Engine struct {
	policy Policy
	rng    *rand.Rand
	topN   int
}

type Option func(*Engine)

func WithPolicy(p Policy) Option {
	return func(e *Engine) {
		e.policy = p
	}
}

// WithRandomTieBreak makes the assembler pick uniformly among the topN best
// candidates of each category instead of always taking the first.
func WithRandomTieBreak(rng *rand.Rand, topN int) Option {
	return func(e *Engine) {
		if topN < 1 {
			topN = DefaultRandomTopN
		}
		e.rng = rng
		e.topN = topN
	}
}

func NewEngine(opts ...Option) *Engine {
	e := &Engine{policy: DefaultPolicy(), topN: 1}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Engine) Policy() Policy {
	return e.policy
}

type scoredFood struct {
	food  domain.Food
	score float64
}

// Assemble builds one meal of mealType. Categories with no viable candidate
// are skipped; remaining budgets may go negative.
func (e *Engine) Assemble(profile domain.Profile, mealType string, target domain.Macros, catalog []domain.Food, history domain.History) domain.MealSlot {
	categories := e.policy.CategoriesFor(mealType)
	remaining := target
	selected := make([]domain.Food, 0, len(categories))

	for _, category := range categories {
		ranked := rankCategory(catalog, category, profile, remaining.Div(float64(len(categories))), history)
		if len(ranked) == 0 {
			continue
		}
		pick := ranked[e.pickIndex(len(ranked))].food
		selected = append(selected, pick)
		remaining = remaining.Sub(pick.Macros())
	}

	return domain.NewMealSlot(mealType, "", selected)
}

// PlanDay assembles one slot per configured meal type, in policy order,
// each stamped with date.
func (e *Engine) PlanDay(profile domain.Profile, date string, catalog []domain.Food, history domain.History) []domain.MealSlot {
	slots := make([]domain.MealSlot, 0, len(e.policy.MealTypes))
	for _, mealType := range e.policy.MealTypes {
		slot := e.Assemble(profile, mealType, e.policy.TargetFor(mealType, profile.Goals), catalog, history)
		slot.Date = date
		slots = append(slots, slot)
	}
	return slots
}

// Alternatives ranks other catalog foods as replacements for food, using the
// food's own macros as the budget. At most count foods are returned.
func (e *Engine) Alternatives(food domain.Food, profile domain.Profile, catalog []domain.Food, history domain.History, count int) []domain.Food {
	if count <= 0 {
		count = DefaultAlternativeCount
	}
	candidates := make([]scoredFood, 0, len(catalog))
	for _, c := range catalog {
		if c.ID == food.ID {
			continue
		}
		score := Score(c, profile, food.Macros(), history)
		if score > ExclusionThreshold {
			candidates = append(candidates, scoredFood{food: c, score: score})
		}
	}
	sortByScore(candidates)

	if len(candidates) > count {
		candidates = candidates[:count]
	}
	out := make([]domain.Food, 0, len(candidates))
	for _, c := range candidates {
		out = append(out, c.food)
	}
	return out
}

func (e *Engine) pickIndex(n int) int {
	if e.rng == nil || e.topN <= 1 || n <= 1 {
		return 0
	}
	if n > e.topN {
		n = e.topN
	}
	return e.rng.Intn(n)
}

func rankCategory(catalog []domain.Food, category string, profile domain.Profile, budget domain.Macros, history domain.History) []scoredFood {
	var ranked []scoredFood
	for _, food := range catalog {
		if food.Category != category {
			continue
		}
		score := Score(food, profile, budget, history)
		if score <= ExclusionThreshold {
			continue
		}
		ranked = append(ranked, scoredFood{food: food, score: score})
	}
	sortByScore(ranked)
	return ranked
}

// sortByScore orders by descending score; equal scores keep catalog order.
func sortByScore(foods []scoredFood) {
	sort.SliceStable(foods, func(i, j int) bool {
		return foods[i].score > foods[j].score
	})
}

// IsBalanced reports whether the slot's calories fall within tolerance of
// targetCalories. An empty slot or a non-positive target is never balanced.
func IsBalanced(slot domain.MealSlot, targetCalories, tolerance float64) bool {
	if len(slot.Foods) == 0 || targetCalories <= 0 {
		return false
	}
	if tolerance < 0 {
		tolerance = DefaultBalanceTolerance
	}
	ratio := slot.Totals.Calories / targetCalories
	return ratio >= 1-tolerance && ratio <= 1+tolerance
}
