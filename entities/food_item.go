package entities

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type FoodItem struct {
	ID            uuid.UUID                   `gorm:"type:uuid;primary_key" json:"id"`
	Name          string                      `gorm:"index" json:"name"`
	Calories      float64                     `json:"calories"`
	Protein       float64                     `json:"protein"`
	Carbohydrates float64                     `json:"carbohydrates"`
	Fat           float64                     `json:"fat"`
	Fiber         float64                     `json:"fiber"`
	Category      string                      `gorm:"index" json:"category"`
	Tags          datatypes.JSONSlice[string] `json:"tags"`
	ImageURL      string                      `json:"image_url,omitempty"`

	Timestamp
}
