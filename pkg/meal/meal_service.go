package meal

import (
	"context"
	"errors"
	"time"

	"meal-planner/domain"
	"meal-planner/entities"
	"meal-planner/pkg/food"
	"meal-planner/pkg/recommendation"
	"meal-planner/pkg/user"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	MealService interface {
		LogMeal(ctx context.Context, userID string, req domain.LogMealRequest) (domain.MealResponse, error)
		LogMeals(ctx context.Context, userID string, reqs []domain.LogMealRequest) ([]domain.MealResponse, error)
		GetMeals(ctx context.Context, userID, date string) ([]domain.MealResponse, error)
		DeleteMeal(ctx context.Context, userID, mealID string) error
		GetDailySummary(ctx context.Context, userID, date string) (domain.DailySummaryResponse, error)
		GetHistory(ctx context.Context, userID string) (domain.History, error)
	}

	mealService struct {
		mealRepository MealRepository
		foodRepository food.FoodRepository
		userRepository user.UserRepository
		policy         recommendation.Policy
	}
)

func NewMealService(
	mealRepository MealRepository,
	foodRepository food.FoodRepository,
	userRepository user.UserRepository,
	policy recommendation.Policy,
) MealService {
	return &mealService{
		mealRepository: mealRepository,
		foodRepository: foodRepository,
		userRepository: userRepository,
		policy:         policy,
	}
}

func (s *mealService) LogMeal(ctx context.Context, userID string, req domain.LogMealRequest) (domain.MealResponse, error) {
	res, err := s.LogMeals(ctx, userID, []domain.LogMealRequest{req})
	if err != nil {
		return domain.MealResponse{}, err
	}
	return res[0], nil
}

// LogMeals validates every meal first and then stores them in one
// transaction, so either all meals are logged or none.
func (s *mealService) LogMeals(ctx context.Context, userID string, reqs []domain.LogMealRequest) ([]domain.MealResponse, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}
	if len(reqs) == 0 {
		return nil, domain.ErrEmptyMeal
	}

	meals := make([]*entities.Meal, 0, len(reqs))
	foods := make([][]*entities.FoodItem, 0, len(reqs))
	for _, req := range reqs {
		meal, items, err := s.buildMeal(ctx, uid, req)
		if err != nil {
			return nil, err
		}
		meals = append(meals, meal)
		foods = append(foods, items)
	}

	if err := s.mealRepository.CreateMeals(ctx, meals); err != nil {
		return nil, err
	}

	res := make([]domain.MealResponse, 0, len(meals))
	for i, meal := range meals {
		for j := range meal.Items {
			meal.Items[j].FoodItem = foods[i][j]
		}
		res = append(res, ToResponse(meal))
	}
	return res, nil
}

// buildMeal returns the meal row and, in item order, the food each item
// points at. Items are created without their food association.
func (s *mealService) buildMeal(ctx context.Context, userID uuid.UUID, req domain.LogMealRequest) (*entities.Meal, []*entities.FoodItem, error) {
	if !domain.IsMealType(req.MealType) {
		return nil, nil, domain.ErrInvalidMealType
	}
	if _, err := time.Parse(domain.DateLayout, req.Date); err != nil {
		return nil, nil, domain.ErrInvalidDate
	}
	if len(req.FoodItemIDs) == 0 {
		return nil, nil, domain.ErrEmptyMeal
	}

	foodItems, err := s.foodRepository.GetFoodItemsByIDs(ctx, req.FoodItemIDs)
	if err != nil {
		return nil, nil, err
	}
	byID := make(map[string]*entities.FoodItem, len(foodItems))
	for _, item := range foodItems {
		byID[item.ID.String()] = item
	}

	meal := &entities.Meal{
		ID:            uuid.New(),
		UserID:        userID,
		Date:          req.Date,
		MealType:      req.MealType,
		IsRecommended: req.IsRecommended,
		Items:         make([]entities.MealItem, 0, len(req.FoodItemIDs)),
	}
	ordered := make([]*entities.FoodItem, 0, len(req.FoodItemIDs))
	for i, id := range req.FoodItemIDs {
		item, ok := byID[id]
		if !ok {
			return nil, nil, domain.ErrUnknownFoodInMeal
		}
		meal.Items = append(meal.Items, entities.MealItem{
			ID:         uuid.New(),
			MealID:     meal.ID,
			FoodItemID: item.ID,
			Position:   i,
		})
		ordered = append(ordered, item)
	}
	return meal, ordered, nil
}

func (s *mealService) GetMeals(ctx context.Context, userID, date string) ([]domain.MealResponse, error) {
	if date != "" {
		if _, err := time.Parse(domain.DateLayout, date); err != nil {
			return nil, domain.ErrInvalidDate
		}
	}

	meals, err := s.mealRepository.GetMealsByUser(ctx, userID, date)
	if err != nil {
		return nil, err
	}

	res := make([]domain.MealResponse, 0, len(meals))
	for _, meal := range meals {
		res = append(res, ToResponse(meal))
	}
	return res, nil
}

func (s *mealService) DeleteMeal(ctx context.Context, userID, mealID string) error {
	if _, err := uuid.Parse(mealID); err != nil {
		return domain.ErrParseUUID
	}

	meal, err := s.mealRepository.GetMealByID(ctx, mealID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrMealNotFound
		}
		return err
	}
	if meal.UserID.String() != userID {
		return domain.ErrUnauthorizedMeal
	}

	return s.mealRepository.DeleteMeal(ctx, mealID)
}

func (s *mealService) GetDailySummary(ctx context.Context, userID, date string) (domain.DailySummaryResponse, error) {
	if date == "" {
		date = time.Now().Format(domain.DateLayout)
	}
	if _, err := time.Parse(domain.DateLayout, date); err != nil {
		return domain.DailySummaryResponse{}, domain.ErrInvalidDate
	}

	u, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.DailySummaryResponse{}, domain.ErrUserNotFound
		}
		return domain.DailySummaryResponse{}, err
	}
	goals := user.Goals(u)

	meals, err := s.mealRepository.GetMealsByUser(ctx, userID, date)
	if err != nil {
		return domain.DailySummaryResponse{}, err
	}

	summary := domain.DailySummaryResponse{
		Date:  date,
		Goals: goals,
		Meals: make([]domain.MealSummary, 0, len(meals)),
	}
	for _, meal := range meals {
		slot := ToSlot(meal)
		target := s.policy.TargetFor(slot.MealType, goals).Calories
		summary.Consumed = summary.Consumed.Add(slot.Totals)
		summary.Meals = append(summary.Meals, domain.MealSummary{
			MealType:   slot.MealType,
			Calories:   slot.Totals.Calories,
			Target:     target,
			IsBalanced: recommendation.IsBalanced(slot, target, recommendation.DefaultBalanceTolerance),
		})
	}

	summary.Progress = domain.Fractions{
		Calories:      ratio(summary.Consumed.Calories, goals.Calories),
		Protein:       ratio(summary.Consumed.Protein, goals.Protein),
		Carbohydrates: ratio(summary.Consumed.Carbohydrates, goals.Carbohydrates),
		Fat:           ratio(summary.Consumed.Fat, goals.Fat),
	}
	return summary, nil
}

// GetHistory snapshots all of a user's logged meals for the planner.
func (s *mealService) GetHistory(ctx context.Context, userID string) (domain.History, error) {
	meals, err := s.mealRepository.GetMealsByUser(ctx, userID, "")
	if err != nil {
		return nil, err
	}

	slots := make([]domain.MealSlot, 0, len(meals))
	for _, meal := range meals {
		slots = append(slots, ToSlot(meal))
	}
	return domain.History{userID: slots}, nil
}

func ratio(consumed, goal float64) float64 {
	if goal <= 0 {
		return 0
	}
	return consumed / goal
}
