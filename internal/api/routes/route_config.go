package routes

import (
	"fitcoach-backend/internal/api/handlers"
	"fitcoach-backend/internal/middleware"
	"fitcoach-backend/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App                  *fiber.App
	AuthHandler          handlers.AuthHandler
	CustomerHandler      handlers.CustomerHandler
	PublicHandler        handlers.PublicHandler
	IngredientHandler    handlers.IngredientHandler
	RecipeHandler        handlers.RecipeHandler
	ExerciseHandler      handlers.ExerciseHandler
	NutritionPlanHandler handlers.NutritionPlanHandler
	CalculationHandler   handlers.CalculationHandler
	PricingHandler       handlers.PricingHandler
	InvoiceHandler       handlers.InvoiceHandler
	PaymentHandler       handlers.PaymentHandler
	MidtransHandler      handlers.MidtransHandler
	DashboardHandler     handlers.DashboardHandler
	Middleware           middleware.Middleware
	JWTService           jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.GuestRoute()
	c.Auth()

	// Group handlers act as prefix middleware, so the admin group is mounted
	// after the public and auth routes to let those match first.
	admin := c.App.Group("/api/v1", c.Middleware.AuthMiddleware(c.JWTService), c.Middleware.AdminOnly())
	c.Customers(admin)
	c.Ingredients(admin)
	c.Recipes(admin)
	c.Exercises(admin)
	c.NutritionPlans(admin)
	c.Calculations(admin)
	c.Packages(admin)
	c.Invoices(admin)
	c.Payments(admin)
	admin.Get("/dashboard", c.DashboardHandler.GetDashboard)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
	c.App.Post("/webhook/midtrans", c.MidtransHandler.MidtransWebhookHandler)

	public := c.App.Group("/api/v1/public")
	{
		public.Post("/intake", c.PublicHandler.SubmitIntake)
		public.Get("/landing", c.PublicHandler.GetLanding)
		public.Get("/my-plan/:token", c.PublicHandler.GetMyPlan)
	}
}

func (c *Config) Auth() {
	auth := c.App.Group("/api/v1/auth")
	{
		auth.Post("/login", c.AuthHandler.Login)
		auth.Get("/me", c.Middleware.AuthMiddleware(c.JWTService), c.AuthHandler.Me)
	}
}

func (c *Config) Customers(router fiber.Router) {
	customers := router.Group("/customers")
	customers.Get("", c.CustomerHandler.GetCustomers)
	customers.Post("", c.CustomerHandler.CreateCustomer)
	customers.Get("/:id", c.CustomerHandler.GetCustomerDetail)
	customers.Patch("/:id", c.CustomerHandler.UpdateCustomer)
	customers.Delete("/:id", c.CustomerHandler.DeleteCustomer)
}

func (c *Config) Ingredients(router fiber.Router) {
	ingredients := router.Group("/ingredients")

	// static paths go before /:id
	ingredients.Get("/lookup", c.IngredientHandler.Lookup)
	ingredients.Post("/bulk-lookup", c.IngredientHandler.BulkLookup)

	ingredients.Get("", c.IngredientHandler.GetIngredients)
	ingredients.Post("", c.IngredientHandler.CreateIngredient)
	ingredients.Get("/:id", c.IngredientHandler.GetIngredientDetail)
	ingredients.Patch("/:id", c.IngredientHandler.UpdateIngredient)
	ingredients.Delete("/:id", c.IngredientHandler.DeleteIngredient)
	ingredients.Post("/:id/image", c.IngredientHandler.UploadIngredientImage)
}

func (c *Config) Recipes(router fiber.Router) {
	recipes := router.Group("/recipes")
	recipes.Get("", c.RecipeHandler.GetRecipes)
	recipes.Post("", c.RecipeHandler.CreateRecipe)
	recipes.Get("/:id", c.RecipeHandler.GetRecipeDetail)
	recipes.Patch("/:id", c.RecipeHandler.UpdateRecipe)
	recipes.Delete("/:id", c.RecipeHandler.DeleteRecipe)
}

func (c *Config) Exercises(router fiber.Router) {
	exercises := router.Group("/exercises")
	exercises.Get("/video-search", c.ExerciseHandler.SearchVideos)

	exercises.Get("", c.ExerciseHandler.GetExercises)
	exercises.Post("", c.ExerciseHandler.CreateExercise)
	exercises.Get("/:id", c.ExerciseHandler.GetExerciseDetail)
	exercises.Patch("/:id", c.ExerciseHandler.UpdateExercise)
	exercises.Delete("/:id", c.ExerciseHandler.DeleteExercise)
	exercises.Post("/:id/image", c.ExerciseHandler.UploadExerciseImage)
}

func (c *Config) NutritionPlans(router fiber.Router) {
	plans := router.Group("/nutrition-plans")
	plans.Post("/parse", c.NutritionPlanHandler.ParsePlan)
	plans.Post("/import", c.NutritionPlanHandler.ImportPlan)

	plans.Get("", c.NutritionPlanHandler.GetPlans)
	plans.Post("", c.NutritionPlanHandler.CreatePlan)
	plans.Get("/:id", c.NutritionPlanHandler.GetPlanDetail)
	plans.Patch("/:id", c.NutritionPlanHandler.UpdatePlan)
	plans.Delete("/:id", c.NutritionPlanHandler.DeletePlan)
	plans.Post("/:id/assign", c.NutritionPlanHandler.AssignPlan)
	plans.Get("/:id/totals", c.NutritionPlanHandler.GetPlanTotals)
	plans.Get("/:id/shopping-list", c.NutritionPlanHandler.GetShoppingList)
	plans.Get("/:id/unmapped", c.NutritionPlanHandler.GetUnmapped)
}

func (c *Config) Calculations(router fiber.Router) {
	calculations := router.Group("/calculations")
	calculations.Post("/nutrition", c.CalculationHandler.CalculateNutrition)
	calculations.Get("/nutrition", c.CalculationHandler.GetNutritionCalculations)
	calculations.Post("/pricing", c.CalculationHandler.CalculatePricing)
	calculations.Get("/pricing", c.CalculationHandler.GetPricingCalculations)
}

func (c *Config) Packages(router fiber.Router) {
	packages := router.Group("/packages")
	packages.Get("", c.PricingHandler.GetPackages)
	packages.Post("", c.PricingHandler.CreatePackage)
	packages.Get("/:id", c.PricingHandler.GetPackageDetail)
	packages.Patch("/:id", c.PricingHandler.UpdatePackage)
	packages.Delete("/:id", c.PricingHandler.DeletePackage)
}

func (c *Config) Invoices(router fiber.Router) {
	invoices := router.Group("/invoices")
	invoices.Get("", c.InvoiceHandler.GetInvoices)
	invoices.Post("", c.InvoiceHandler.CreateInvoice)
	invoices.Get("/:id", c.InvoiceHandler.GetInvoiceDetail)
	invoices.Patch("/:id", c.InvoiceHandler.UpdateInvoice)
	invoices.Delete("/:id", c.InvoiceHandler.DeleteInvoice)
	invoices.Get("/:id/pdf", c.InvoiceHandler.DownloadPDF)
	invoices.Post("/:id/send", c.InvoiceHandler.SendInvoice)
	invoices.Post("/:id/checkout", c.PaymentHandler.Checkout)
}

func (c *Config) Payments(router fiber.Router) {
	payments := router.Group("/payments")
	payments.Get("", c.PaymentHandler.GetPayments)
	payments.Post("", c.PaymentHandler.CreatePayment)
	payments.Get("/:id", c.PaymentHandler.GetPaymentDetail)
	payments.Patch("/:id", c.PaymentHandler.UpdatePayment)
	payments.Delete("/:id", c.PaymentHandler.DeletePayment)
	payments.Post("/:id/sync", c.PaymentHandler.SyncPayment)
}
