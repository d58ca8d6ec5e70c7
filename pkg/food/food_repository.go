package food

import (
	"context"
	"strings"

	"meal-planner/entities"

	"gorm.io/gorm"
)

type (
	FoodRepository interface {
		AddFoodItem(ctx context.Context, foodItem *entities.FoodItem) error
		AddFoodItems(ctx context.Context, foodItems []*entities.FoodItem) error
		GetFoodItemByID(ctx context.Context, id string) (*entities.FoodItem, error)
		GetFoodItemsByIDs(ctx context.Context, ids []string) ([]*entities.FoodItem, error)
		UpdateFoodItem(ctx context.Context, foodItem *entities.FoodItem) error
		DeleteFoodItem(ctx context.Context, id string) error
		GetFoodItems(ctx context.Context, category string, page, limit int) ([]*entities.FoodItem, int64, error)
		SearchFoodItems(ctx context.Context, keyword string, limit int) ([]*entities.FoodItem, error)
		GetAllFoodItems(ctx context.Context) ([]*entities.FoodItem, error)
		CountFoodItems(ctx context.Context) (int64, error)
	}

	foodRepository struct {
		db *gorm.DB
	}
)

func NewFoodRepository(db *gorm.DB) FoodRepository {
	return &foodRepository{db: db}
}

func (r *foodRepository) AddFoodItem(ctx context.Context, foodItem *entities.FoodItem) error {
	return r.db.WithContext(ctx).Create(foodItem).Error
}

func (r *foodRepository) AddFoodItems(ctx context.Context, foodItems []*entities.FoodItem) error {
	if len(foodItems) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&foodItems).Error
}

func (r *foodRepository) GetFoodItemByID(ctx context.Context, id string) (*entities.FoodItem, error) {
	var foodItem entities.FoodItem
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&foodItem).Error; err != nil {
		return nil, err
	}
	return &foodItem, nil
}

func (r *foodRepository) GetFoodItemsByIDs(ctx context.Context, ids []string) ([]*entities.FoodItem, error) {
	var foodItems []*entities.FoodItem
	if len(ids) == 0 {
		return foodItems, nil
	}
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&foodItems).Error; err != nil {
		return nil, err
	}
	return foodItems, nil
}

func (r *foodRepository) UpdateFoodItem(ctx context.Context, foodItem *entities.FoodItem) error {
	return r.db.WithContext(ctx).Save(foodItem).Error
}

func (r *foodRepository) DeleteFoodItem(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.FoodItem{}).Error
}

func (r *foodRepository) GetFoodItems(ctx context.Context, category string, page, limit int) ([]*entities.FoodItem, int64, error) {
	var foodItems []*entities.FoodItem
	var count int64

	offset := (page - 1) * limit

	byCategory := func(db *gorm.DB) *gorm.DB {
		if category != "all" && category != "" {
			return db.Where("category = ?", category)
		}
		return db
	}

	if err := r.db.WithContext(ctx).Model(&entities.FoodItem{}).Scopes(byCategory).Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := r.db.WithContext(ctx).Scopes(byCategory).Offset(offset).Limit(limit).Order("name asc").Find(&foodItems).Error; err != nil {
		return nil, 0, err
	}

	return foodItems, count, nil
}

func (r *foodRepository) SearchFoodItems(ctx context.Context, keyword string, limit int) ([]*entities.FoodItem, error) {
	var foodItems []*entities.FoodItem
	pattern := "%" + strings.ToLower(keyword) + "%"

	if err := r.db.WithContext(ctx).
		Where("LOWER(name) LIKE ?", pattern).
		Order("name asc").
		Limit(limit).
		Find(&foodItems).Error; err != nil {
		return nil, err
	}
	return foodItems, nil
}

// GetAllFoodItems returns the whole catalog in a stable order; the planner
// breaks score ties by this order.
func (r *foodRepository) GetAllFoodItems(ctx context.Context) ([]*entities.FoodItem, error) {
	var foodItems []*entities.FoodItem
	if err := r.db.WithContext(ctx).Order("created_at asc, id asc").Find(&foodItems).Error; err != nil {
		return nil, err
	}
	return foodItems, nil
}

func (r *foodRepository) CountFoodItems(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entities.FoodItem{}).Count(&count).Error
	return count, err
}
