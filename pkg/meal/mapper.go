package meal

import (
	"meal-planner/domain"
	"meal-planner/entities"
	"meal-planner/pkg/food"
)

// ToSlot converts a stored meal into a planner slot. Items whose food row is
// missing are skipped.
func ToSlot(meal *entities.Meal) domain.MealSlot {
	foods := make([]domain.Food, 0, len(meal.Items))
	for _, item := range meal.Items {
		if item.FoodItem == nil {
			continue
		}
		foods = append(foods, food.ToDomain(item.FoodItem))
	}
	return domain.NewMealSlot(meal.MealType, meal.Date, foods)
}

func ToResponse(meal *entities.Meal) domain.MealResponse {
	foods := make([]domain.FoodItemResponse, 0, len(meal.Items))
	for _, item := range meal.Items {
		if item.FoodItem == nil {
			continue
		}
		foods = append(foods, food.ToResponse(item.FoodItem))
	}
	return domain.MealResponse{
		ID:            meal.ID.String(),
		Date:          meal.Date,
		MealType:      meal.MealType,
		IsRecommended: meal.IsRecommended,
		Foods:         foods,
		Totals:        ToSlot(meal).Totals,
		CreatedAt:     meal.CreatedAt,
	}
}
