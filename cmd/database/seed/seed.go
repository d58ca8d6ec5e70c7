package seed

import (
	"context"
	"time"

	"meal-planner/domain"
	"meal-planner/entities"
	"meal-planner/pkg/food"

	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type sampleFood struct {
	name                          string
	calories, protein, carbs, fat float64
	fiber                         float64
	category                      string
	tags                          []string
}

// values per 100 g
var sampleFoods = []sampleFood{
	{"Steamed rice", 116, 2.6, 25.6, 0.3, 0.3, domain.CategoryStaple, []string{"light"}},
	{"Whole wheat bread", 246, 8.5, 45.3, 3.5, 6.8, domain.CategoryStaple, []string{"light", "gluten"}},
	{"Oat porridge", 68, 2.4, 12.0, 1.4, 1.7, domain.CategoryStaple, []string{"light"}},
	{"Sweet potato", 86, 1.6, 20.1, 0.2, 3.0, domain.CategoryStaple, []string{"sweet"}},

	{"Chicken breast", 133, 24.6, 2.5, 5.0, 0, domain.CategoryMeat, []string{"light"}},
	{"Beef", 250, 26.3, 0, 15.8, 0, domain.CategoryMeat, []string{"umami"}},
	{"Pork tenderloin", 143, 20.3, 1.3, 7.9, 0, domain.CategoryMeat, []string{"umami", "pork"}},

	{"Salmon", 206, 22.5, 0, 13.4, 0, domain.CategorySeafood, []string{"umami", "fish"}},
	{"Steamed shrimp", 99, 24.0, 0.2, 0.3, 0, domain.CategorySeafood, []string{"light", "shellfish"}},

	{"Broccoli", 34, 4.1, 6.6, 0.4, 3.7, domain.CategoryVegetable, []string{"light"}},
	{"Spinach", 23, 2.9, 3.6, 0.3, 2.2, domain.CategoryVegetable, []string{"light"}},
	{"Carrot", 41, 0.9, 9.6, 0.2, 2.8, domain.CategoryVegetable, []string{"sweet"}},
	{"Tomato", 18, 0.9, 3.9, 0.2, 1.2, domain.CategoryVegetable, []string{"sour"}},

	{"Tofu", 76, 8.1, 4.2, 3.7, 0.4, domain.CategoryBean, []string{"light", "soy"}},
	{"Soy milk", 31, 3.0, 1.1, 1.6, 1.1, domain.CategoryBean, []string{"light", "soy"}},

	{"Boiled egg", 147, 12.6, 1.3, 10.6, 0, domain.CategoryEgg, []string{"light", "egg"}},
	{"Salted duck egg", 180, 12.6, 3.1, 13.0, 0, domain.CategoryEgg, []string{"salty", "egg"}},

	{"Apple", 52, 0.3, 13.8, 0.2, 2.4, domain.CategoryFruit, []string{"sweet"}},
	{"Banana", 89, 1.1, 22.8, 0.3, 2.6, domain.CategoryFruit, []string{"sweet"}},
	{"Orange", 47, 0.9, 11.8, 0.1, 2.4, domain.CategoryFruit, []string{"sour", "sweet"}},

	{"Walnuts", 654, 15.2, 13.7, 65.2, 6.7, domain.CategoryNut, []string{"fragrant", "tree-nut"}},
	{"Almonds", 578, 21.3, 21.7, 50.6, 12.2, domain.CategoryNut, []string{"fragrant", "tree-nut"}},
	{"Roasted peanuts", 567, 25.8, 16.1, 49.2, 8.5, domain.CategoryNut, []string{"fragrant", "peanut"}},

	{"Milk", 54, 3.0, 3.4, 3.2, 0, domain.CategoryDairy, []string{"light", "lactose"}},
	{"Yogurt", 72, 2.5, 9.3, 2.7, 0, domain.CategoryDairy, []string{"sour", "sweet", "lactose"}},

	{"Seaweed egg drop soup", 35, 3.2, 2.1, 1.8, 0.5, domain.CategorySoup, []string{"umami", "egg"}},
	{"Tomato egg soup", 45, 3.5, 3.2, 2.3, 0.8, domain.CategorySoup, []string{"sour", "umami", "egg"}},
}

// Seed fills an empty catalog with the sample foods. A catalog that already
// has rows is left alone.
func Seed(db *gorm.DB) error {
	ctx := context.Background()
	repo := food.NewFoodRepository(db)

	count, err := repo.CountFoodItems(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		log.Infof("catalog already has %d foods, skipping seed", count)
		return nil
	}

	// rows are one second apart so the catalog order follows the list
	base := time.Now().Add(-time.Duration(len(sampleFoods)) * time.Second)
	items := make([]*entities.FoodItem, 0, len(sampleFoods))
	for i, f := range sampleFoods {
		createdAt := base.Add(time.Duration(i) * time.Second)
		items = append(items, &entities.FoodItem{
			ID:            uuid.New(),
			Name:          f.name,
			Calories:      f.calories,
			Protein:       f.protein,
			Carbohydrates: f.carbs,
			Fat:           f.fat,
			Fiber:         f.fiber,
			Category:      f.category,
			Tags:          domain.NormalizeTags(f.tags),
			Timestamp: entities.Timestamp{
				CreatedAt: createdAt,
				UpdatedAt: createdAt,
			},
		})
	}

	if err := repo.AddFoodItems(ctx, items); err != nil {
		return err
	}
	log.Infof("seeded %d foods", len(items))
	return nil
}
