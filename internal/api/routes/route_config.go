package routes

import (
	"Pantry-Tracker-Backend/internal/api/handlers"
	"Pantry-Tracker-Backend/internal/middleware"
	"Pantry-Tracker-Backend/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App                 *fiber.App
	UserHandler         handlers.UserHandler
	GroceryHandler      handlers.GroceryHandler
	ConsumptionHandler  handlers.ConsumptionHandler
	ShoppingListHandler handlers.ShoppingListHandler
	AnalyticsHandler    handlers.AnalyticsHandler
	Middleware          middleware.Middleware
	JWTService          jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.User()
	c.Groceries()
	c.Consumption()
	c.ShoppingList()
	c.Analytics()
	c.GuestRoute()
}

func (c *Config) User() {
	user := c.App.Group("/api/v1/users")
	// user routes
	{
		user.Post("/register", c.UserHandler.Register)
		user.Post("/login", c.UserHandler.Login)
		user.Post("/send_verify", c.UserHandler.SendVerificationEmail)
		user.Get("/verify", c.UserHandler.VerifyEmail)
		user.Get("/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Me)
		user.Patch("/update", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.UpdateUser)
		user.Post("/forget", c.UserHandler.ForgotPassword)
		user.Post("/reset", c.UserHandler.ResetPassword)
	}
}

func (c *Config) Groceries() {
	groceries := c.App.Group("/api/v1/groceries", c.Middleware.AuthMiddleware(c.JWTService))

	// master data for form dropdowns
	groceries.Get("/categories", c.GroceryHandler.GetCategories)
	groceries.Get("/locations", c.GroceryHandler.GetLocations)
	groceries.Get("/units", c.GroceryHandler.GetUnits)

	// Basic CRUD operations
	groceries.Post("", c.GroceryHandler.AddGroceryItem)
	groceries.Get("", c.GroceryHandler.GetGroceryItems)
	groceries.Get("/:id", c.GroceryHandler.GetGroceryItemDetails)
	groceries.Put("/:id", c.GroceryHandler.UpdateGroceryItem)
	groceries.Delete("/:id", c.GroceryHandler.DeleteGroceryItem)

	groceries.Post("/photo", c.GroceryHandler.UploadGroceryPhoto)
}

func (c *Config) Consumption() {
	consumption := c.App.Group("/api/v1/consumption", c.Middleware.AuthMiddleware(c.JWTService))

	consumption.Get("/download", c.ConsumptionHandler.DownloadConsumptionLogs)
	consumption.Get("", c.ConsumptionHandler.GetConsumptionLogs)
	consumption.Post("", c.ConsumptionHandler.RecordConsumption)
	consumption.Put("/:id", c.ConsumptionHandler.EditConsumption)
	consumption.Delete("/:id", c.ConsumptionHandler.DeleteConsumption)
}

func (c *Config) ShoppingList() {
	shoppingList := c.App.Group("/api/v1/shopping-list", c.Middleware.AuthMiddleware(c.JWTService))

	shoppingList.Get("", c.ShoppingListHandler.GetShoppingList)
	shoppingList.Post("", c.ShoppingListHandler.AddShoppingListItem)
	shoppingList.Patch("/:id/purchased", c.ShoppingListHandler.MarkPurchased)
	shoppingList.Delete("/:id", c.ShoppingListHandler.RemoveShoppingListItem)
}

func (c *Config) Analytics() {
	analytics := c.App.Group("/api/v1/analytics", c.Middleware.AuthMiddleware(c.JWTService))

	analytics.Get("", c.AnalyticsHandler.GetOverview)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}
