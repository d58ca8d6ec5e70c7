package config

import (
	"os"
	"time"

	"meal-planner/internal/api/handlers"
	"meal-planner/internal/api/routes"
	"meal-planner/internal/middleware"
	"meal-planner/internal/scheduler"
	"meal-planner/internal/utils"
	"meal-planner/internal/utils/mailing"
	"meal-planner/internal/utils/storage"
	"meal-planner/pkg/food"
	"meal-planner/pkg/jwt"
	"meal-planner/pkg/meal"
	"meal-planner/pkg/recommendation"
	"meal-planner/pkg/user"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "Asia/Jakarta",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()
	policy := recommendation.DefaultPolicy()

	// Repository
	userRepository := user.NewUserRepository(db)
	foodRepository := food.NewFoodRepository(db)
	mealRepository := meal.NewMealRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	userService := user.NewUserService(userRepository, jwtService)
	foodService := food.NewFoodService(foodRepository, s3)
	mealService := meal.NewMealService(mealRepository, foodRepository, userRepository, policy)

	var planMailer recommendation.PlanMailer
	mailer, err := mailing.NewMailer(mailing.LoadMailConfig())
	if err != nil {
		log.Warnf("daily plan e-mail disabled: %v", err)
	} else {
		planMailer = mailing.NewPlanMailer(mailer)
	}

	recommendationConfig := recommendation.ConfigFromEnv()
	recommendationConfig.Policy = policy
	recommendationService := recommendation.NewRecommendationService(
		foodService,
		userService,
		mealService,
		planMailer,
		recommendationConfig,
	)

	// Scheduler
	if planMailer != nil {
		job := scheduler.NewDailyPlanJob(userService, recommendationService)
		s, err := scheduler.Start(job, utils.GetConfig("DAILY_PLAN_AT"))
		if err != nil {
			return nil, err
		}
		app.Hooks().OnShutdown(func() error {
			return s.Shutdown()
		})
	}

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	foodHandler := handlers.NewFoodHandler(foodService, validator)
	mealHandler := handlers.NewMealHandler(mealService, validator)
	recommendationHandler := handlers.NewRecommendationHandler(recommendationService, validator)

	// routes
	routesConfig := routes.Config{
		App:                   app,
		UserHandler:           userHandler,
		FoodHandler:           foodHandler,
		MealHandler:           mealHandler,
		RecommendationHandler: recommendationHandler,
		Middleware:            middlewares,
		JWTService:            jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
