package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessLogMeal         = "meal logged successfully"
	MessageSuccessGetMeals        = "meals retrieved successfully"
	MessageSuccessDeleteMeal      = "meal deleted successfully"
	MessageSuccessGetDailySummary = "daily summary retrieved successfully"

	MessageFailedLogMeal         = "failed to log meal"
	MessageFailedGetMeals        = "failed to retrieve meals"
	MessageFailedDeleteMeal      = "failed to delete meal"
	MessageFailedGetDailySummary = "failed to retrieve daily summary"

	ErrMealNotFound      = errors.New("meal not found")
	ErrUnauthorizedMeal  = errors.New("unauthorized access to meal")
	ErrInvalidMealType   = errors.New("invalid meal type")
	ErrUnknownFoodInMeal = errors.New("meal references an unknown food item")
	ErrEmptyMeal         = errors.New("meal must contain at least one food item")
)

type (
	LogMealRequest struct {
		Date          string   `json:"date" validate:"required,datetime=2006-01-02"`
		MealType      string   `json:"meal_type" validate:"required,oneof=breakfast lunch dinner snack"`
		FoodItemIDs   []string `json:"food_item_ids" validate:"required,min=1,dive,uuid"`
		IsRecommended bool     `json:"is_recommended"`
	}

	MealResponse struct {
		ID            string             `json:"id"`
		Date          string             `json:"date"`
		MealType      string             `json:"meal_type"`
		IsRecommended bool               `json:"is_recommended"`
		Foods         []FoodItemResponse `json:"foods"`
		Totals        Macros             `json:"totals"`
		CreatedAt     time.Time          `json:"created_at"`
	}

	MealSummary struct {
		MealType   string  `json:"meal_type"`
		Calories   float64 `json:"calories"`
		Target     float64 `json:"target_calories"`
		IsBalanced bool    `json:"is_balanced"`
	}

	// DailySummaryResponse compares what was eaten on a date with the user's goals.
	DailySummaryResponse struct {
		Date     string        `json:"date"`
		Goals    Macros        `json:"goals"`
		Consumed Macros        `json:"consumed"`
		Progress Fractions     `json:"progress"`
		Meals    []MealSummary `json:"meals"`
	}
)
