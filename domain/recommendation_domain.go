package domain

import (
	"errors"
)

var (
	MessageSuccessGenerateDailyPlan = "daily plan generated successfully"
	MessageSuccessRecommendMeal     = "meal recommended successfully"
	MessageSuccessGetAlternatives   = "alternative foods retrieved successfully"
	MessageSuccessAcceptPlan        = "plan saved to meal history"
	MessageSuccessCheckBalance      = "balance check completed"

	MessageFailedGenerateDailyPlan = "failed to generate daily plan"
	MessageFailedRecommendMeal     = "failed to recommend meal"
	MessageFailedGetAlternatives   = "failed to retrieve alternative foods"
	MessageFailedAcceptPlan        = "failed to save plan"
	MessageFailedCheckBalance      = "failed to check meal balance"

	ErrEmptyPlan    = errors.New("plan does not contain any meal")
	ErrMailDisabled = errors.New("mail delivery is not configured")
)

type (
	DailyPlanRequest struct {
		Date         string `json:"date" validate:"omitempty,datetime=2006-01-02"`
		IncludeSnack bool   `json:"include_snack"`
	}

	MealRecommendationRequest struct {
		Date     string `json:"date" validate:"omitempty,datetime=2006-01-02"`
		MealType string `json:"meal_type" validate:"required,oneof=breakfast lunch dinner snack"`
	}

	RecommendedMeal struct {
		MealType   string             `json:"meal_type"`
		Date       string             `json:"date"`
		Foods      []FoodItemResponse `json:"foods"`
		Totals     Macros             `json:"totals"`
		Target     Macros             `json:"target"`
		IsBalanced bool               `json:"is_balanced"`
	}

	DailyPlanResponse struct {
		Date   string            `json:"date"`
		Goals  Macros            `json:"goals"`
		Meals  []RecommendedMeal `json:"meals"`
		Totals Macros            `json:"totals"`
	}

	AcceptPlanMeal struct {
		MealType    string   `json:"meal_type" validate:"required,oneof=breakfast lunch dinner snack"`
		FoodItemIDs []string `json:"food_item_ids" validate:"required,min=1,dive,uuid"`
	}

	AcceptPlanRequest struct {
		Date  string           `json:"date" validate:"required,datetime=2006-01-02"`
		Meals []AcceptPlanMeal `json:"meals" validate:"required,min=1,dive"`
	}

	BalanceCheckRequest struct {
		FoodItemIDs    []string `json:"food_item_ids" validate:"required,min=1,dive,uuid"`
		TargetCalories float64  `json:"target_calories" validate:"required,gt=0"`
		Tolerance      *float64 `json:"tolerance" validate:"omitempty,gte=0,lte=1"`
	}

	BalanceCheckResponse struct {
		Calories       float64 `json:"calories"`
		TargetCalories float64 `json:"target_calories"`
		Tolerance      float64 `json:"tolerance"`
		IsBalanced     bool    `json:"is_balanced"`
	}
)
