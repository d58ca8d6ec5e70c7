package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"meal-planner/domain"
	"meal-planner/internal/api/presenters"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRecommendationService struct {
	planReq  domain.DailyPlanRequest
	count    int
	foodID   string
	accepted domain.AcceptPlanRequest
	err      error
}

func (f *fakeRecommendationService) GenerateDailyPlan(_ context.Context, _ string, req domain.DailyPlanRequest) (domain.DailyPlanResponse, error) {
	f.planReq = req
	if f.err != nil {
		return domain.DailyPlanResponse{}, f.err
	}
	date := req.Date
	if date == "" {
		date = "2026-10-17"
	}
	return domain.DailyPlanResponse{
		Date:  date,
		Meals: []domain.RecommendedMeal{{MealType: domain.MealBreakfast, Date: date}},
	}, nil
}

func (f *fakeRecommendationService) RecommendMeal(_ context.Context, _ string, req domain.MealRecommendationRequest) (domain.RecommendedMeal, error) {
	return domain.RecommendedMeal{MealType: req.MealType}, f.err
}

func (f *fakeRecommendationService) GetAlternatives(_ context.Context, _, foodID string, count int) ([]domain.FoodItemResponse, error) {
	f.foodID, f.count = foodID, count
	return []domain.FoodItemResponse{}, f.err
}

func (f *fakeRecommendationService) AcceptPlan(_ context.Context, _ string, req domain.AcceptPlanRequest) ([]domain.MealResponse, error) {
	f.accepted = req
	return []domain.MealResponse{}, f.err
}

func (f *fakeRecommendationService) CheckBalance(_ context.Context, req domain.BalanceCheckRequest) (domain.BalanceCheckResponse, error) {
	return domain.BalanceCheckResponse{TargetCalories: req.TargetCalories, IsBalanced: true}, f.err
}

func (f *fakeRecommendationService) EmailDailyPlan(context.Context, string, string, string, string) error {
	return f.err
}

func newRecommendationApp(svc *fakeRecommendationService) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("user_id", "u1")
		return c.Next()
	})

	h := NewRecommendationHandler(svc, validator.New())
	app.Post("/daily", h.GenerateDailyPlan)
	app.Post("/meal", h.RecommendMeal)
	app.Get("/alternatives/:food_id", h.GetAlternatives)
	app.Post("/accept", h.AcceptPlan)
	app.Post("/balance", h.CheckBalance)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, target, body string) (int, presenters.Response) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var out presenters.Response
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return resp.StatusCode, out
}

func TestRecommendationHandler_DailyPlan(t *testing.T) {
	svc := &fakeRecommendationService{}
	app := newRecommendationApp(svc)

	status, res := doJSON(t, app, "POST", "/daily", "")
	assert.Equal(t, fiber.StatusOK, status)
	assert.True(t, res.Status)
	assert.Equal(t, domain.MessageSuccessGenerateDailyPlan, res.Message)

	status, _ = doJSON(t, app, "POST", "/daily", `{"date":"2026-10-20","include_snack":true}`)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "2026-10-20", svc.planReq.Date)
	assert.True(t, svc.planReq.IncludeSnack)

	status, res = doJSON(t, app, "POST", "/daily", `{"date":"20/10/2026"}`)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.False(t, res.Status)
}

func TestRecommendationHandler_ErrorStatus(t *testing.T) {
	app := newRecommendationApp(&fakeRecommendationService{err: domain.ErrEmptyPlan})
	status, res := doJSON(t, app, "POST", "/daily", "")
	assert.Equal(t, fiber.StatusUnprocessableEntity, status)
	assert.Equal(t, domain.ErrEmptyPlan.Error(), res.Error)

	app = newRecommendationApp(&fakeRecommendationService{err: domain.ErrFoodItemNotFound})
	status, _ = doJSON(t, app, "GET", "/alternatives/abc", "")
	assert.Equal(t, fiber.StatusNotFound, status)
}

func TestRecommendationHandler_MealValidation(t *testing.T) {
	app := newRecommendationApp(&fakeRecommendationService{})

	status, _ := doJSON(t, app, "POST", "/meal", `{"meal_type":"brunch"}`)
	assert.Equal(t, fiber.StatusBadRequest, status)

	status, _ = doJSON(t, app, "POST", "/meal", `{"meal_type":"dinner"}`)
	assert.Equal(t, fiber.StatusOK, status)
}

func TestRecommendationHandler_AlternativesCount(t *testing.T) {
	svc := &fakeRecommendationService{}
	app := newRecommendationApp(svc)

	status, _ := doJSON(t, app, "GET", "/alternatives/food-1?count=5", "")
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "food-1", svc.foodID)
	assert.Equal(t, 5, svc.count)

	doJSON(t, app, "GET", "/alternatives/food-1?count=zero", "")
	assert.Equal(t, 3, svc.count)
}

func TestRecommendationHandler_AcceptAndBalance(t *testing.T) {
	svc := &fakeRecommendationService{}
	app := newRecommendationApp(svc)

	body := `{"date":"2026-10-17","meals":[{"meal_type":"lunch","food_item_ids":["3f1c2a8e-4b7d-4c1e-9a2b-6d5e4f3a2b1c"]}]}`
	status, _ := doJSON(t, app, "POST", "/accept", body)
	assert.Equal(t, fiber.StatusCreated, status)
	require.Len(t, svc.accepted.Meals, 1)
	assert.Equal(t, domain.MealLunch, svc.accepted.Meals[0].MealType)

	status, _ = doJSON(t, app, "POST", "/accept", `{"date":"2026-10-17","meals":[{"meal_type":"lunch","food_item_ids":["not-a-uuid"]}]}`)
	assert.Equal(t, fiber.StatusBadRequest, status)

	status, _ = doJSON(t, app, "POST", "/balance", `{"food_item_ids":["3f1c2a8e-4b7d-4c1e-9a2b-6d5e4f3a2b1c"],"target_calories":0}`)
	assert.Equal(t, fiber.StatusBadRequest, status)

	status, res := doJSON(t, app, "POST", "/balance", `{"food_item_ids":["3f1c2a8e-4b7d-4c1e-9a2b-6d5e4f3a2b1c"],"target_calories":600}`)
	assert.Equal(t, fiber.StatusOK, status)
	assert.True(t, res.Status)
}
