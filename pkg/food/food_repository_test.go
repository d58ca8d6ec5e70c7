package food

import (
	"context"
	"testing"

	"meal-planner/entities"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entities.FoodItem{}))
	return db
}

func newItem(name, category string, calories float64, tags ...string) *entities.FoodItem {
	return &entities.FoodItem{
		ID:       uuid.New(),
		Name:     name,
		Calories: calories,
		Category: category,
		Tags:     tags,
	}
}

func TestFoodRepository_CRUD(t *testing.T) {
	repo := NewFoodRepository(setupDB(t))
	ctx := context.Background()

	rice := newItem("Steamed rice", "staple", 116, "light")
	require.NoError(t, repo.AddFoodItem(ctx, rice))

	got, err := repo.GetFoodItemByID(ctx, rice.ID.String())
	require.NoError(t, err)
	assert.Equal(t, "Steamed rice", got.Name)
	assert.Equal(t, []string{"light"}, []string(got.Tags))

	got.Calories = 130
	require.NoError(t, repo.UpdateFoodItem(ctx, got))
	got, err = repo.GetFoodItemByID(ctx, rice.ID.String())
	require.NoError(t, err)
	assert.Equal(t, 130.0, got.Calories)

	require.NoError(t, repo.DeleteFoodItem(ctx, rice.ID.String()))
	_, err = repo.GetFoodItemByID(ctx, rice.ID.String())
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestFoodRepository_GetFoodItemsFiltersAndPaginates(t *testing.T) {
	repo := NewFoodRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, repo.AddFoodItems(ctx, []*entities.FoodItem{
		newItem("Broccoli", "vegetable", 34),
		newItem("Carrot", "vegetable", 41),
		newItem("Spinach", "vegetable", 23),
		newItem("Apple", "fruit", 52),
	}))

	items, count, err := repo.GetFoodItems(ctx, "vegetable", 1, 2)
	require.NoError(t, err)
	assert.EqualValues(t, 3, count)
	require.Len(t, items, 2)
	assert.Equal(t, "Broccoli", items[0].Name)
	assert.Equal(t, "Carrot", items[1].Name)

	items, count, err = repo.GetFoodItems(ctx, "vegetable", 2, 2)
	require.NoError(t, err)
	assert.EqualValues(t, 3, count)
	require.Len(t, items, 1)
	assert.Equal(t, "Spinach", items[0].Name)

	_, count, err = repo.GetFoodItems(ctx, "all", 1, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 4, count)

	total, err := repo.CountFoodItems(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 4, total)
}

func TestFoodRepository_SearchIsCaseInsensitive(t *testing.T) {
	repo := NewFoodRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, repo.AddFoodItems(ctx, []*entities.FoodItem{
		newItem("Chicken breast", "meat", 133),
		newItem("Chicken soup", "soup", 45),
		newItem("Beef", "meat", 250),
	}))

	items, err := repo.SearchFoodItems(ctx, "CHICKEN", 10)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Chicken breast", items[0].Name)
	assert.Equal(t, "Chicken soup", items[1].Name)

	items, err = repo.SearchFoodItems(ctx, "chicken", 1)
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestFoodRepository_GetFoodItemsByIDs(t *testing.T) {
	repo := NewFoodRepository(setupDB(t))
	ctx := context.Background()

	apple := newItem("Apple", "fruit", 52)
	milk := newItem("Milk", "dairy", 54)
	require.NoError(t, repo.AddFoodItems(ctx, []*entities.FoodItem{apple, milk}))

	items, err := repo.GetFoodItemsByIDs(ctx, []string{apple.ID.String(), uuid.NewString()})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, apple.ID, items[0].ID)

	items, err = repo.GetFoodItemsByIDs(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, items)
}
