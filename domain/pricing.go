package domain

import (
	"errors"

	"github.com/shopspring/decimal"
)

var (
	MessageSuccessCreatePackage = "pricing package created successfully"
	MessageSuccessUpdatePackage = "pricing package updated successfully"
	MessageSuccessDeletePackage = "pricing package deleted successfully"
	MessageSuccessGetPackages   = "pricing packages retrieved successfully"
	MessageSuccessGetLanding    = "success get landing page"

	MessageFailedCreatePackage = "failed to create pricing package"
	MessageFailedUpdatePackage = "failed to update pricing package"
	MessageFailedDeletePackage = "failed to delete pricing package"
	MessageFailedGetPackages   = "failed to retrieve pricing packages"
	MessageFailedGetLanding    = "failed to get landing page"

	ErrPackageNotFound = errors.New("pricing package not found")
)

type (
	CreatePackageRequest struct {
		Name                  string `json:"name" validate:"required,max=120"`
		Description           string `json:"description"`
		Price                 string `json:"price" validate:"required,decimal_gte0"`
		SessionsPerWeek       int    `json:"sessions_per_week" validate:"gte=0,lte=14"`
		DurationWeeks         int    `json:"duration_weeks" validate:"gte=0,lte=104"`
		IncludesNutritionPlan bool   `json:"includes_nutrition_plan"`
		IsPopular             bool   `json:"is_popular"`
		IsActive              *bool  `json:"is_active"`
		SortOrder             int    `json:"sort_order"`
	}

	UpdatePackageRequest struct {
		Name                  *string `json:"name" validate:"omitempty,max=120"`
		Description           *string `json:"description"`
		Price                 *string `json:"price" validate:"omitempty,decimal_gte0"`
		SessionsPerWeek       *int    `json:"sessions_per_week" validate:"omitempty,gte=0,lte=14"`
		DurationWeeks         *int    `json:"duration_weeks" validate:"omitempty,gte=0,lte=104"`
		IncludesNutritionPlan *bool   `json:"includes_nutrition_plan"`
		IsPopular             *bool   `json:"is_popular"`
		IsActive              *bool   `json:"is_active"`
		SortOrder             *int    `json:"sort_order"`
	}

	PricingPackageResponse struct {
		ID                    string          `json:"id"`
		Name                  string          `json:"name"`
		Description           string          `json:"description,omitempty"`
		Price                 decimal.Decimal `json:"price"`
		Currency              string          `json:"currency"`
		SessionsPerWeek       int             `json:"sessions_per_week"`
		DurationWeeks         int             `json:"duration_weeks"`
		PricePerSession       decimal.Decimal `json:"price_per_session"`
		IncludesNutritionPlan bool            `json:"includes_nutrition_plan"`
		IsPopular             bool            `json:"is_popular"`
		IsActive              bool            `json:"is_active"`
		SortOrder             int             `json:"sort_order"`
	}

	LandingResponse struct {
		CompanyName string                   `json:"company_name"`
		Packages    []PricingPackageResponse `json:"packages"`
	}
)
