package config

import (
	"Pantry-Tracker-Backend/internal/api/handlers"
	"Pantry-Tracker-Backend/internal/api/routes"
	"Pantry-Tracker-Backend/internal/middleware"
	"Pantry-Tracker-Backend/internal/utils"
	"Pantry-Tracker-Backend/internal/utils/storage"
	"Pantry-Tracker-Backend/pkg/analytics"
	"Pantry-Tracker-Backend/pkg/consumption"
	"Pantry-Tracker-Backend/pkg/grocery"
	"Pantry-Tracker-Backend/pkg/jwt"
	"Pantry-Tracker-Backend/pkg/shoppinglist"
	"Pantry-Tracker-Backend/pkg/user"
	"os"
	"time"

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
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()

	// Repository
	userRepository := user.NewUserRepository(db)
	groceryRepository := grocery.NewGroceryRepository(db)
	consumptionRepository := consumption.NewConsumptionRepository(db)
	shoppingListRepository := shoppinglist.NewShoppingListRepository(db)
	analyticsRepository := analytics.NewAnalyticsRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	userService := user.NewUserService(userRepository, jwtService, s3)
	groceryService := grocery.NewGroceryService(groceryRepository, s3)
	consumptionService := consumption.NewConsumptionService(
		consumptionRepository,
		groceryRepository,
		userRepository,
	)
	shoppingListService := shoppinglist.NewShoppingListService(
		shoppingListRepository,
		groceryRepository,
	)
	analyticsService := analytics.NewAnalyticsService(analyticsRepository)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	groceryHandler := handlers.NewGroceryHandler(groceryService, validator)
	consumptionHandler := handlers.NewConsumptionHandler(consumptionService, validator)
	shoppingListHandler := handlers.NewShoppingListHandler(shoppingListService, validator)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsService)

	// routes
	routesConfig := routes.Config{
		App:                 app,
		UserHandler:         userHandler,
		GroceryHandler:      groceryHandler,
		ConsumptionHandler:  consumptionHandler,
		ShoppingListHandler: shoppingListHandler,
		AnalyticsHandler:    analyticsHandler,
		Middleware:          middlewares,
		JWTService:          jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
