package calculation

import (
	"context"
	"fitcoach-backend/entities"

	"gorm.io/gorm"
)

type (
	CalculationRepository interface {
		CreateNutritionCalculation(ctx context.Context, calc *entities.NutritionCalculation) error
		GetNutritionCalculations(ctx context.Context, customerID string, page, limit int) ([]*entities.NutritionCalculation, int64, error)
		CreatePricingCalculation(ctx context.Context, calc *entities.PricingCalculation) error
		GetPricingCalculations(ctx context.Context, customerID string, page, limit int) ([]*entities.PricingCalculation, int64, error)
	}

	calculationRepository struct {
		db *gorm.DB
	}
)

func NewCalculationRepository(db *gorm.DB) CalculationRepository {
	return &calculationRepository{db: db}
}

func (r *calculationRepository) CreateNutritionCalculation(ctx context.Context, calc *entities.NutritionCalculation) error {
	return r.db.WithContext(ctx).Create(calc).Error
}

func (r *calculationRepository) GetNutritionCalculations(ctx context.Context, customerID string, page, limit int) ([]*entities.NutritionCalculation, int64, error) {
	var calcs []*entities.NutritionCalculation
	var count int64

	query := r.db.WithContext(ctx).Model(&entities.NutritionCalculation{})
	if customerID != "" {
		query = query.Where("customer_id = ?", customerID)
	}
	if err := query.Count(&count).Error; err != nil {
		return nil, 0, err
	}
	if err := query.Offset((page - 1) * limit).Limit(limit).Order("created_at desc").Find(&calcs).Error; err != nil {
		return nil, 0, err
	}
	return calcs, count, nil
}

func (r *calculationRepository) CreatePricingCalculation(ctx context.Context, calc *entities.PricingCalculation) error {
	return r.db.WithContext(ctx).Create(calc).Error
}

func (r *calculationRepository) GetPricingCalculations(ctx context.Context, customerID string, page, limit int) ([]*entities.PricingCalculation, int64, error) {
	var calcs []*entities.PricingCalculation
	var count int64

	query := r.db.WithContext(ctx).Model(&entities.PricingCalculation{})
	if customerID != "" {
		query = query.Where("customer_id = ?", customerID)
	}
	if err := query.Count(&count).Error; err != nil {
		return nil, 0, err
	}
	if err := query.Offset((page - 1) * limit).Limit(limit).Order("created_at desc").Find(&calcs).Error; err != nil {
		return nil, 0, err
	}
	return calcs, count, nil
}
