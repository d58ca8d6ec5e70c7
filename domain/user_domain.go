package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessRegister          = "user registered successfully"
	MessageSuccessLogin             = "login successful"
	MessageSuccessGetUser           = "user retrieved successfully"
	MessageSuccessUpdateProfile     = "profile updated successfully"
	MessageSuccessUpdatePreferences = "dietary preferences updated successfully"

	MessageFailedRegister          = "failed to register user"
	MessageFailedLogin             = "failed to login"
	MessageFailedGetUser           = "failed to retrieve user"
	MessageFailedUpdateProfile     = "failed to update profile"
	MessageFailedUpdatePreferences = "failed to update dietary preferences"

	ErrUserNotFound         = errors.New("user not found")
	ErrEmailAlreadyExists   = errors.New("email already registered")
	ErrInvalidCredentials   = errors.New("invalid email or password")
	ErrInvalidActivityLevel = errors.New("invalid activity level")
	ErrHashPassword         = errors.New("failed to hash password")
	ErrIncompleteGoals      = errors.New("calorie, protein, carb and fat goals must be given together")
)

type (
	RegisterRequest struct {
		Name          string  `json:"name" validate:"required"`
		Email         string  `json:"email" validate:"required,email"`
		Password      string  `json:"password" validate:"required,min=8"`
		Sex           string  `json:"sex" validate:"required,oneof=male female"`
		Age           int     `json:"age" validate:"required,min=1,max=130"`
		WeightKg      float64 `json:"weight_kg" validate:"required,gt=0"`
		HeightCm      float64 `json:"height_cm" validate:"required,gt=0"`
		ActivityLevel string  `json:"activity_level" validate:"required,oneof=sedentary light moderate active very_active"`
	}

	LoginRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	LoginResponse struct {
		Token string `json:"token"`
		Role  string `json:"role"`
	}

	// UpdateProfileRequest changes body stats. Goals are recomputed only when
	// a body stat actually changes, unless all four goals are given. Giving
	// some but not all goals is rejected with ErrIncompleteGoals.
	UpdateProfileRequest struct {
		Name          string   `json:"name" validate:"omitempty"`
		Sex           string   `json:"sex" validate:"omitempty,oneof=male female"`
		Age           int      `json:"age" validate:"omitempty,min=1,max=130"`
		WeightKg      float64  `json:"weight_kg" validate:"omitempty,gt=0"`
		HeightCm      float64  `json:"height_cm" validate:"omitempty,gt=0"`
		ActivityLevel string   `json:"activity_level" validate:"omitempty,oneof=sedentary light moderate active very_active"`
		CalorieGoal   *float64 `json:"calorie_goal" validate:"omitempty,gt=0"`
		ProteinGoal   *float64 `json:"protein_goal" validate:"omitempty,gt=0"`
		CarbGoal      *float64 `json:"carb_goal" validate:"omitempty,gt=0"`
		FatGoal       *float64 `json:"fat_goal" validate:"omitempty,gt=0"`
	}

	UpdatePreferencesRequest struct {
		PreferredTags  []string `json:"preferred_tags" validate:"omitempty,dive,required"`
		AvoidedTags    []string `json:"avoided_tags" validate:"omitempty,dive,required"`
		Allergens      []string `json:"allergens" validate:"omitempty,dive,required"`
		DailyPlanEmail *bool    `json:"daily_plan_email"`
	}

	UserResponse struct {
		ID             string    `json:"id"`
		Name           string    `json:"name"`
		Email          string    `json:"email"`
		Role           string    `json:"role"`
		Sex            string    `json:"sex"`
		Age            int       `json:"age"`
		WeightKg       float64   `json:"weight_kg"`
		HeightCm       float64   `json:"height_cm"`
		ActivityLevel  string    `json:"activity_level"`
		Goals          Macros    `json:"goals"`
		PreferredTags  []string  `json:"preferred_tags"`
		AvoidedTags    []string  `json:"avoided_tags"`
		Allergens      []string  `json:"allergens"`
		DailyPlanEmail bool      `json:"daily_plan_email"`
		CreatedAt      time.Time `json:"created_at"`
	}
)
