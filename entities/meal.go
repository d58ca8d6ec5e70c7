package entities

import (
	"github.com/google/uuid"
)

type Meal struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID        uuid.UUID `gorm:"type:uuid;index" json:"user_id"`
	Date          string    `gorm:"index" json:"date"` // YYYY-MM-DD
	MealType      string    `json:"meal_type"`         // breakfast, lunch, dinner, snack
	IsRecommended bool      `json:"is_recommended"`

	Items []MealItem `gorm:"foreignKey:MealID;constraint:OnDelete:CASCADE" json:"items"`
	User  *User      `gorm:"foreignKey:UserID" json:"-"`
	Timestamp
}

type MealItem struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	MealID     uuid.UUID `gorm:"type:uuid;index" json:"meal_id"`
	FoodItemID uuid.UUID `gorm:"type:uuid" json:"food_item_id"`
	Position   int       `json:"position"`

	FoodItem *FoodItem `gorm:"foreignKey:FoodItemID" json:"food_item,omitempty"`
}
