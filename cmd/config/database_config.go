package config

import (
	"fmt"
	"log"

	"meal-planner/internal/utils"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// ConnectDB opens postgres by default; DB_DRIVER=sqlite opens SQLITE_PATH
// instead for local runs.
func ConnectDB() (*gorm.DB, error) {
	var dialector gorm.Dialector

	switch utils.GetConfig("DB_DRIVER") {
	case "sqlite":
		path := utils.GetConfig("SQLITE_PATH")
		if path == "" {
			path = "meal_planner.db"
		}
		dialector = sqlite.Open(path)
	case "", "postgres":
		dsn := fmt.Sprintf(
			"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=Asia/Jakarta",
			utils.GetConfig("DB_HOST"),
			utils.GetConfig("DB_USER"),
			utils.GetConfig("DB_PASSWORD"),
			utils.GetConfig("DB_NAME"),
			utils.GetConfig("DB_PORT"),
		)
		dialector = postgres.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", utils.GetConfig("DB_DRIVER"))
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		log.Printf("Database connection failed: %v", err)
		return nil, err
	}
	return db, nil
}
