package migration

import (
	"log"

	"meal-planner/entities"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	models := []struct {
		name  string
		model any
	}{
		{"user", &entities.User{}},
		{"food item", &entities.FoodItem{}},
		{"meal", &entities.Meal{}},
		{"meal item", &entities.MealItem{}},
	}

	for _, m := range models {
		if err := db.AutoMigrate(m.model); err != nil {
			log.Printf("Error migrating %s database: %v", m.name, err)
			return err
		}
	}

	log.Println("Database migration complete")
	return nil
}
