package domain

import (
	"errors"
	"mime/multipart"
	"time"
)

var (
	MessageSuccessAddFoodItem     = "food item added successfully"
	MessageSuccessUpdateFoodItem  = "food item updated successfully"
	MessageSuccessDeleteFoodItem  = "food item deleted successfully"
	MessageSuccessGetFoodItems    = "food items retrieved successfully"
	MessageSuccessUploadFoodImage = "food image uploaded successfully"
	MessageSuccessSearchFoodItems = "food search completed successfully"

	MessageFailedAddFoodItem     = "failed to add food item"
	MessageFailedUpdateFoodItem  = "failed to update food item"
	MessageFailedDeleteFoodItem  = "failed to delete food item"
	MessageFailedGetFoodItems    = "failed to retrieve food items"
	MessageFailedUploadFoodImage = "failed to upload food image"
	MessageFailedSearchFoodItems = "failed to search food items"

	ErrFoodItemNotFound   = errors.New("food item not found")
	ErrInvalidImageFormat = errors.New("invalid image format")
	ErrInvalidCategory    = errors.New("invalid food category")
	ErrNegativeNutrition  = errors.New("nutrition values must not be negative")
	ErrEmptySearchKeyword = errors.New("search keyword must not be empty")
)

type (
	AddFoodItemRequest struct {
		Name          string   `json:"name" validate:"required"`
		Calories      float64  `json:"calories" validate:"min=0"`
		Protein       float64  `json:"protein" validate:"min=0"`
		Carbohydrates float64  `json:"carbohydrates" validate:"min=0"`
		Fat           float64  `json:"fat" validate:"min=0"`
		Fiber         float64  `json:"fiber" validate:"min=0"`
		Category      string   `json:"category" validate:"required,oneof=staple meat seafood vegetable fruit dairy nut egg bean soup"`
		Tags          []string `json:"tags" validate:"omitempty,dive,required"`
	}

	UpdateFoodItemRequest struct {
		Name          string   `json:"name" validate:"omitempty"`
		Calories      *float64 `json:"calories" validate:"omitempty,min=0"`
		Protein       *float64 `json:"protein" validate:"omitempty,min=0"`
		Carbohydrates *float64 `json:"carbohydrates" validate:"omitempty,min=0"`
		Fat           *float64 `json:"fat" validate:"omitempty,min=0"`
		Fiber         *float64 `json:"fiber" validate:"omitempty,min=0"`
		Category      string   `json:"category" validate:"omitempty,oneof=staple meat seafood vegetable fruit dairy nut egg bean soup"`
		Tags          []string `json:"tags" validate:"omitempty,dive,required"`
	}

	UploadFoodImageRequest struct {
		FoodItemID string                `json:"food_id" validate:"required,uuid"`
		Image      *multipart.FileHeader `json:"image" form:"image" validate:"required"`
	}

	FoodItemResponse struct {
		ID            string    `json:"id"`
		Name          string    `json:"name"`
		Calories      float64   `json:"calories"`
		Protein       float64   `json:"protein"`
		Carbohydrates float64   `json:"carbohydrates"`
		Fat           float64   `json:"fat"`
		Fiber         float64   `json:"fiber"`
		Category      string    `json:"category"`
		Tags          []string  `json:"tags"`
		ImageURL      string    `json:"image_url,omitempty"`
		CreatedAt     time.Time `json:"created_at"`
	}
)
