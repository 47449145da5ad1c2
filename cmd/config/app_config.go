package config

import (
	"context"
	"fitcoach-backend/internal/api/handlers"
	"fitcoach-backend/internal/api/routes"
	"fitcoach-backend/internal/middleware"
	"fitcoach-backend/internal/utils"
	"fitcoach-backend/internal/utils/mailing"
	"fitcoach-backend/internal/utils/storage"
	"fitcoach-backend/pkg/auth"
	"fitcoach-backend/pkg/calculation"
	"fitcoach-backend/pkg/customer"
	"fitcoach-backend/pkg/dashboard"
	"fitcoach-backend/pkg/exercise"
	"fitcoach-backend/pkg/ingredient"
	"fitcoach-backend/pkg/invoice"
	"fitcoach-backend/pkg/jwt"
	"fitcoach-backend/pkg/midtrans"
	"fitcoach-backend/pkg/nutritionplan"
	"fitcoach-backend/pkg/payment"
	"fitcoach-backend/pkg/pricing"
	"fitcoach-backend/pkg/recipe"
	"fitcoach-backend/pkg/usda"
	"fitcoach-backend/pkg/youtube"
	"os"
	"strconv"
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
		BodyLimit:         12 << 20,
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
	mailer := mailing.NewSMTPMailer()

	// external clients stay nil when their keys are missing
	var lookup ingredient.NutritionLookup
	if key := utils.GetConfig("USDA_API_KEY"); key != "" {
		lookup = usda.NewClient(key)
	} else {
		log.Warn("USDA_API_KEY is empty, nutrition lookup is disabled")
	}

	var videos exercise.VideoSearcher
	if key := utils.GetConfig("YOUTUBE_API_KEY"); key != "" {
		videos = youtube.NewClient(key)
	} else {
		log.Warn("YOUTUBE_API_KEY is empty, video search is disabled")
	}

	var midtransService midtrans.MidtransService
	if key := utils.GetConfig("SERVER_KEY"); key != "" {
		isProd, _ := strconv.ParseBool(utils.GetConfig("IsProd"))
		midtransService = midtrans.NewMidtransService(key, isProd)
	} else {
		log.Warn("SERVER_KEY is empty, online payments are disabled")
	}

	renderer := invoice.NewChromedpRenderer(utils.GetConfig("CHROME_REMOTE_URL"))
	app.Hooks().OnShutdown(func() error {
		renderer.Close()
		return nil
	})

	// Repository
	adminRepository := auth.NewAdminRepository(db)
	customerRepository := customer.NewCustomerRepository(db)
	ingredientRepository := ingredient.NewIngredientRepository(db)
	recipeRepository := recipe.NewRecipeRepository(db)
	exerciseRepository := exercise.NewExerciseRepository(db)
	planRepository := nutritionplan.NewNutritionPlanRepository(db)
	calculationRepository := calculation.NewCalculationRepository(db)
	pricingRepository := pricing.NewPricingRepository(db)
	invoiceRepository := invoice.NewInvoiceRepository(db)
	paymentRepository := payment.NewPaymentRepository(db)
	dashboardRepository := dashboard.NewDashboardRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	authService := auth.NewAuthService(adminRepository, jwtService)
	customerService := customer.NewCustomerService(customerRepository)
	intakeService := customer.NewIntakeService(customerRepository, mailer, utils.GetConfig("COACH_EMAIL"))
	ingredientService := ingredient.NewIngredientService(ingredientRepository, s3, lookup)
	recipeService := recipe.NewRecipeService(recipeRepository, ingredientRepository)
	exerciseService := exercise.NewExerciseService(exerciseRepository, s3, videos)
	planService := nutritionplan.NewNutritionPlanService(planRepository, customerRepository, ingredientRepository)
	calculationService := calculation.NewCalculationService(calculationRepository)
	pricingService := pricing.NewPricingService(pricingRepository)
	invoiceService := invoice.NewInvoiceService(invoiceRepository, customerRepository, renderer, s3, mailer)
	paymentService := payment.NewPaymentService(paymentRepository, customerRepository, invoiceService, midtransService)
	dashboardService := dashboard.NewDashboardService(dashboardRepository)

	if err := authService.SeedAdmin(
		context.Background(),
		utils.GetConfig("ADMIN_NAME"),
		utils.GetConfig("ADMIN_EMAIL"),
		utils.GetConfig("ADMIN_PASSWORD"),
	); err != nil {
		return nil, err
	}

	// routes
	routesConfig := routes.Config{
		App:                  app,
		AuthHandler:          handlers.NewAuthHandler(authService, validator),
		CustomerHandler:      handlers.NewCustomerHandler(customerService, validator),
		PublicHandler:        handlers.NewPublicHandler(intakeService, pricingService, planService, validator),
		IngredientHandler:    handlers.NewIngredientHandler(ingredientService, validator),
		RecipeHandler:        handlers.NewRecipeHandler(recipeService, validator),
		ExerciseHandler:      handlers.NewExerciseHandler(exerciseService, validator),
		NutritionPlanHandler: handlers.NewNutritionPlanHandler(planService, validator),
		CalculationHandler:   handlers.NewCalculationHandler(calculationService, validator),
		PricingHandler:       handlers.NewPricingHandler(pricingService, validator),
		InvoiceHandler:       handlers.NewInvoiceHandler(invoiceService, validator),
		PaymentHandler:       handlers.NewPaymentHandler(paymentService, validator),
		MidtransHandler:      handlers.NewMidtransHandler(paymentService, validator),
		DashboardHandler:     handlers.NewDashboardHandler(dashboardService),
		Middleware:           middlewares,
		JWTService:           jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
