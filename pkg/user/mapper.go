package user

import (
	"meal-planner/domain"
	"meal-planner/entities"
)

func Goals(user *entities.User) domain.Macros {
	return domain.Macros{
		Calories:      user.CalorieGoal,
		Protein:       user.ProteinGoal,
		Carbohydrates: user.CarbGoal,
		Fat:           user.FatGoal,
	}
}

// ToProfile builds the planner view of a user.
func ToProfile(user *entities.User) domain.Profile {
	return domain.Profile{
		ID:            user.ID.String(),
		Goals:         Goals(user),
		PreferredTags: append([]string(nil), user.PreferredTags...),
		AvoidedTags:   append([]string(nil), user.AvoidedTags...),
		Allergens:     append([]string(nil), user.Allergens...),
	}
}

func ToResponse(user *entities.User) domain.UserResponse {
	return domain.UserResponse{
		ID:             user.ID.String(),
		Name:           user.Name,
		Email:          user.Email,
		Role:           user.Role,
		Sex:            user.Sex,
		Age:            user.Age,
		WeightKg:       user.WeightKg,
		HeightCm:       user.HeightCm,
		ActivityLevel:  user.ActivityLevel,
		Goals:          Goals(user),
		PreferredTags:  nonNil(user.PreferredTags),
		AvoidedTags:    nonNil(user.AvoidedTags),
		Allergens:      nonNil(user.Allergens),
		DailyPlanEmail: user.DailyPlanEmail,
		CreatedAt:      user.CreatedAt,
	}
}

func nonNil(tags []string) []string {
	if tags == nil {
		return []string{}
	}
	return tags
}
