package entities

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PricingPackage struct {
	ID                    uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	Name                  string          `json:"name"`
	Description           string          `gorm:"type:text" json:"description,omitempty"`
	Price                 decimal.Decimal `gorm:"type:decimal(14,2)" json:"price"`
	Currency              string          `json:"currency"`
	SessionsPerWeek       int             `json:"sessions_per_week"`
	DurationWeeks         int             `json:"duration_weeks"`
	IncludesNutritionPlan bool            `json:"includes_nutrition_plan"`
	IsPopular             bool            `json:"is_popular"`
	IsActive              bool            `json:"is_active"`
	SortOrder             int             `json:"sort_order"`

	Timestamp
}

type PricingCalculation struct {
	ID                  uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	CustomerID          *uuid.UUID      `gorm:"type:uuid;index" json:"customer_id,omitempty"`
	Label               string          `json:"label,omitempty"`
	SessionPrice        decimal.Decimal `gorm:"type:decimal(14,2)" json:"session_price"`
	SessionsPerWeek     int             `json:"sessions_per_week"`
	Weeks               int             `json:"weeks"`
	NutritionFeeMonthly decimal.Decimal `gorm:"type:decimal(14,2)" json:"nutrition_fee_monthly"`
	Months              int             `json:"months"`
	DiscountPercent     decimal.Decimal `gorm:"type:decimal(5,2)" json:"discount_percent"`
	VATPercent          decimal.Decimal `gorm:"type:decimal(5,2)" json:"vat_percent"`
	Subtotal            decimal.Decimal `gorm:"type:decimal(14,2)" json:"subtotal"`
	DiscountAmount      decimal.Decimal `gorm:"type:decimal(14,2)" json:"discount_amount"`
	VATAmount           decimal.Decimal `gorm:"type:decimal(14,2)" json:"vat_amount"`
	Total               decimal.Decimal `gorm:"type:decimal(14,2)" json:"total"`
	PricePerWeek        decimal.Decimal `gorm:"type:decimal(14,2)" json:"price_per_week"`

	Customer *Customer `gorm:"foreignKey:CustomerID"`
	Timestamp
}
