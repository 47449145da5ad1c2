package nutritionplan

import (
	"context"
	"fitcoach-backend/domain"
	"fitcoach-backend/entities"

	"gorm.io/gorm"
)

type (
	NutritionPlanRepository interface {
		CreatePlan(ctx context.Context, plan *entities.NutritionPlan) error
		GetPlanByID(ctx context.Context, id string) (*entities.NutritionPlan, error)
		GetPlanByToken(ctx context.Context, token string) (*entities.NutritionPlan, error)
		GetPlans(ctx context.Context, filter domain.PlanFilter) ([]*entities.NutritionPlan, int64, error)
		UpdatePlan(ctx context.Context, plan *entities.NutritionPlan) error
		DeletePlan(ctx context.Context, id string) error
	}

	nutritionPlanRepository struct {
		db *gorm.DB
	}
)

func NewNutritionPlanRepository(db *gorm.DB) NutritionPlanRepository {
	return &nutritionPlanRepository{db: db}
}

func (r *nutritionPlanRepository) CreatePlan(ctx context.Context, plan *entities.NutritionPlan) error {
	return r.db.WithContext(ctx).Omit("Customer").Create(plan).Error
}

func (r *nutritionPlanRepository) GetPlanByID(ctx context.Context, id string) (*entities.NutritionPlan, error) {
	var plan entities.NutritionPlan
	if err := r.db.WithContext(ctx).Preload("Customer").Where("id = ?", id).First(&plan).Error; err != nil {
		return nil, err
	}
	return &plan, nil
}

func (r *nutritionPlanRepository) GetPlanByToken(ctx context.Context, token string) (*entities.NutritionPlan, error) {
	var plan entities.NutritionPlan
	if err := r.db.WithContext(ctx).Preload("Customer").Where("public_token = ?", token).First(&plan).Error; err != nil {
		return nil, err
	}
	return &plan, nil
}

func (r *nutritionPlanRepository) GetPlans(ctx context.Context, filter domain.PlanFilter) ([]*entities.NutritionPlan, int64, error) {
	var plans []*entities.NutritionPlan
	var count int64

	query := r.db.WithContext(ctx).Model(&entities.NutritionPlan{})
	if filter.CustomerID != "" {
		query = query.Where("customer_id = ?", filter.CustomerID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	if err := query.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit
	if err := query.Offset(offset).Limit(filter.Limit).Order("created_at desc").Find(&plans).Error; err != nil {
		return nil, 0, err
	}
	return plans, count, nil
}

func (r *nutritionPlanRepository) UpdatePlan(ctx context.Context, plan *entities.NutritionPlan) error {
	return r.db.WithContext(ctx).Omit("Customer").Save(plan).Error
}

func (r *nutritionPlanRepository) DeletePlan(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.NutritionPlan{}).Error
}
