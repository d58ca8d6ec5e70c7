package food

import (
	"meal-planner/domain"
	"meal-planner/entities"
)

// ToDomain converts a stored food item into the planner's value type.
func ToDomain(item *entities.FoodItem) domain.Food {
	return domain.Food{
		ID:            item.ID.String(),
		Name:          item.Name,
		Calories:      item.Calories,
		Protein:       item.Protein,
		Carbohydrates: item.Carbohydrates,
		Fat:           item.Fat,
		Fiber:         item.Fiber,
		Category:      item.Category,
		Tags:          append([]string(nil), item.Tags...),
	}
}

func ToResponse(item *entities.FoodItem) domain.FoodItemResponse {
	tags := []string(item.Tags)
	if tags == nil {
		tags = []string{}
	}
	return domain.FoodItemResponse{
		ID:            item.ID.String(),
		Name:          item.Name,
		Calories:      item.Calories,
		Protein:       item.Protein,
		Carbohydrates: item.Carbohydrates,
		Fat:           item.Fat,
		Fiber:         item.Fiber,
		Category:      item.Category,
		Tags:          tags,
		ImageURL:      item.ImageURL,
		CreatedAt:     item.CreatedAt,
	}
}

// FoodResponse renders a planner food for API output.
func FoodResponse(f domain.Food) domain.FoodItemResponse {
	tags := f.Tags
	if tags == nil {
		tags = []string{}
	}
	return domain.FoodItemResponse{
		ID:            f.ID,
		Name:          f.Name,
		Calories:      f.Calories,
		Protein:       f.Protein,
		Carbohydrates: f.Carbohydrates,
		Fat:           f.Fat,
		Fiber:         f.Fiber,
		Category:      f.Category,
		Tags:          tags,
	}
}
