package meal

import (
	"context"

	"meal-planner/entities"

	"gorm.io/gorm"
)

type (
	MealRepository interface {
		CreateMeal(ctx context.Context, meal *entities.Meal) error
		CreateMeals(ctx context.Context, meals []*entities.Meal) error
		GetMealByID(ctx context.Context, id string) (*entities.Meal, error)
		GetMealsByUser(ctx context.Context, userID, date string) ([]*entities.Meal, error)
		DeleteMeal(ctx context.Context, id string) error
	}

	mealRepository struct {
		db *gorm.DB
	}
)

func NewMealRepository(db *gorm.DB) MealRepository {
	return &mealRepository{db: db}
}

func (r *mealRepository) CreateMeal(ctx context.Context, meal *entities.Meal) error {
	return r.db.WithContext(ctx).Create(meal).Error
}

// CreateMeals stores a batch of meals atomically.
func (r *mealRepository) CreateMeals(ctx context.Context, meals []*entities.Meal) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, meal := range meals {
			if err := tx.Create(meal).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *mealRepository) GetMealByID(ctx context.Context, id string) (*entities.Meal, error) {
	var meal entities.Meal
	if err := r.withItems(ctx).Where("id = ?", id).First(&meal).Error; err != nil {
		return nil, err
	}
	return &meal, nil
}

// GetMealsByUser lists a user's meals, oldest first. An empty date lists all
// of them.
func (r *mealRepository) GetMealsByUser(ctx context.Context, userID, date string) ([]*entities.Meal, error) {
	var meals []*entities.Meal

	query := r.withItems(ctx).Where("user_id = ?", userID)
	if date != "" {
		query = query.Where("date = ?", date)
	}

	if err := query.Order("date asc, created_at asc").Find(&meals).Error; err != nil {
		return nil, err
	}
	return meals, nil
}

func (r *mealRepository) DeleteMeal(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("meal_id = ?", id).Delete(&entities.MealItem{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&entities.Meal{}).Error
	})
}

func (r *mealRepository) withItems(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("position asc")
		}).
		Preload("Items.FoodItem", func(db *gorm.DB) *gorm.DB {
			return db.Unscoped()
		})
}
