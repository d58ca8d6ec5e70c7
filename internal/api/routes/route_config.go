package routes

import (
	"meal-planner/internal/api/handlers"
	"meal-planner/internal/middleware"
	"meal-planner/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App                   *fiber.App
	UserHandler           handlers.UserHandler
	FoodHandler           handlers.FoodHandler
	MealHandler           handlers.MealHandler
	RecommendationHandler handlers.RecommendationHandler
	Middleware            middleware.Middleware
	JWTService            jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.User()
	c.FoodItems()
	c.Meals()
	c.Recommendations()
	c.GuestRoute()
}

func (c *Config) User() {
	user := c.App.Group("/api/v1/users")
	// user routes
	{
		user.Post("/register", c.UserHandler.Register)
		user.Post("/login", c.UserHandler.Login)
		user.Get("/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Me)
		user.Patch("/profile", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.UpdateProfile)
		user.Patch("/preferences", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.UpdatePreferences)
	}
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}

func (c *Config) FoodItems() {
	foods := c.App.Group("/api/v1/foods", c.Middleware.AuthMiddleware(c.JWTService))

	// search must be registered before /:id
	foods.Get("/search", c.FoodHandler.SearchFoodItems)

	foods.Post("", c.FoodHandler.AddFoodItem)
	foods.Get("", c.FoodHandler.GetFoodItems)
	foods.Get("/:id", c.FoodHandler.GetFoodItemDetails)
	foods.Put("/:id", c.FoodHandler.UpdateFoodItem)
	foods.Delete("/:id", c.FoodHandler.DeleteFoodItem)
	foods.Post("/:id/image", c.FoodHandler.UploadFoodImage)
}

func (c *Config) Meals() {
	meals := c.App.Group("/api/v1/meals", c.Middleware.AuthMiddleware(c.JWTService))

	meals.Get("/summary", c.MealHandler.GetDailySummary)
	meals.Post("", c.MealHandler.LogMeal)
	meals.Get("", c.MealHandler.GetMeals)
	meals.Delete("/:id", c.MealHandler.DeleteMeal)
}

func (c *Config) Recommendations() {
	rec := c.App.Group("/api/v1/recommendations", c.Middleware.AuthMiddleware(c.JWTService))

	rec.Post("/daily", c.RecommendationHandler.GenerateDailyPlan)
	rec.Post("/meal", c.RecommendationHandler.RecommendMeal)
	rec.Get("/alternatives/:food_id", c.RecommendationHandler.GetAlternatives)
	rec.Post("/accept", c.RecommendationHandler.AcceptPlan)
	rec.Post("/balance", c.RecommendationHandler.CheckBalance)
}
