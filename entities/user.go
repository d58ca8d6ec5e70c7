package entities

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type User struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name          string    `json:"name"`
	Email         string    `gorm:"uniqueIndex" json:"email"`
	Password      string    `json:"-"`
	Role          string    `json:"role"`
	Sex           string    `json:"sex"`
	Age           int       `json:"age"`
	WeightKg      float64   `json:"weight_kg"`
	HeightCm      float64   `json:"height_cm"`
	ActivityLevel string    `json:"activity_level"`

	CalorieGoal float64 `json:"calorie_goal"`
	ProteinGoal float64 `json:"protein_goal"`
	CarbGoal    float64 `json:"carb_goal"`
	FatGoal     float64 `json:"fat_goal"`

	PreferredTags datatypes.JSONSlice[string] `json:"preferred_tags"`
	AvoidedTags   datatypes.JSONSlice[string] `json:"avoided_tags"`
	Allergens     datatypes.JSONSlice[string] `json:"allergens"`

	DailyPlanEmail bool `json:"daily_plan_email"`
	Timestamp
}
