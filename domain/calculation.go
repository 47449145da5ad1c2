package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	MessageSuccessCalculateNutrition = "nutrition targets calculated"
	MessageSuccessCalculatePricing   = "price calculated"
	MessageSuccessGetCalculations    = "calculations retrieved successfully"

	MessageFailedCalculateNutrition = "failed to calculate nutrition targets"
	MessageFailedCalculatePricing   = "failed to calculate price"
	MessageFailedGetCalculations    = "failed to retrieve calculations"

	ErrInvalidGender        = errors.New("gender must be male or female")
	ErrInvalidActivityLevel = errors.New("unknown activity level")
	ErrInvalidGoal          = errors.New("goal must be lose, maintain or gain")
	ErrInvalidBodyMetrics   = errors.New("age, height and weight must be positive")
	ErrInvalidPricingInput  = errors.New("weeks and sessions per week must be positive")
	ErrInvalidPercent       = errors.New("percentages must be between 0 and 100")
)

type (
	NutritionCalculationRequest struct {
		CustomerID    string  `json:"customer_id" validate:"omitempty,uuid"`
		Gender        string  `json:"gender" validate:"required,oneof=male female"`
		Age           int     `json:"age" validate:"required,min=12,max=100"`
		HeightCm      float64 `json:"height_cm" validate:"required,gt=0,lt=300"`
		WeightKg      float64 `json:"weight_kg" validate:"required,gt=0,lt=500"`
		ActivityLevel string  `json:"activity_level" validate:"required,oneof=sedentary light moderate active very_active"`
		Goal          string  `json:"goal" validate:"required,oneof=lose maintain gain"`
		ProteinPerKg  float64 `json:"protein_per_kg" validate:"omitempty,gt=0,lte=4"`
	}

	NutritionCalculationResponse struct {
		ID             string    `json:"id"`
		CustomerID     string    `json:"customer_id,omitempty"`
		Gender         string    `json:"gender"`
		Age            int       `json:"age"`
		HeightCm       float64   `json:"height_cm"`
		WeightKg       float64   `json:"weight_kg"`
		ActivityLevel  string    `json:"activity_level"`
		Goal           string    `json:"goal"`
		ProteinPerKg   float64   `json:"protein_per_kg"`
		BMR            int       `json:"bmr"`
		TDEE           int       `json:"tdee"`
		TargetCalories int       `json:"target_calories"`
		ProteinG       int       `json:"protein_g"`
		CarbsG         int       `json:"carbs_g"`
		FatG           int       `json:"fat_g"`
		CreatedAt      time.Time `json:"created_at"`
	}

	PricingCalculationRequest struct {
		CustomerID          string `json:"customer_id" validate:"omitempty,uuid"`
		Label               string `json:"label" validate:"omitempty,max=120"`
		SessionPrice        string `json:"session_price" validate:"required,decimal_gte0"`
		SessionsPerWeek     int    `json:"sessions_per_week" validate:"required,min=1,max=14"`
		Weeks               int    `json:"weeks" validate:"required,min=1,max=104"`
		NutritionFeeMonthly string `json:"nutrition_fee_monthly" validate:"omitempty,decimal_gte0"`
		Months              int    `json:"months" validate:"gte=0,lte=24"`
		DiscountPercent     string `json:"discount_percent" validate:"omitempty,decimal_gte0"`
		VATPercent          string `json:"vat_percent" validate:"omitempty,decimal_gte0"`
	}

	PricingCalculationResponse struct {
		ID                  string          `json:"id"`
		CustomerID          string          `json:"customer_id,omitempty"`
		Label               string          `json:"label,omitempty"`
		SessionPrice        decimal.Decimal `json:"session_price"`
		SessionsPerWeek     int             `json:"sessions_per_week"`
		Weeks               int             `json:"weeks"`
		NutritionFeeMonthly decimal.Decimal `json:"nutrition_fee_monthly"`
		Months              int             `json:"months"`
		DiscountPercent     decimal.Decimal `json:"discount_percent"`
		VATPercent          decimal.Decimal `json:"vat_percent"`
		Subtotal            decimal.Decimal `json:"subtotal"`
		DiscountAmount      decimal.Decimal `json:"discount_amount"`
		VATAmount           decimal.Decimal `json:"vat_amount"`
		Total               decimal.Decimal `json:"total"`
		PricePerWeek        decimal.Decimal `json:"price_per_week"`
		CreatedAt           time.Time       `json:"created_at"`
	}
)
