package pricing

import (
	"context"
	"fitcoach-backend/entities"

	"gorm.io/gorm"
)

type (
	PricingRepository interface {
		CreatePackage(ctx context.Context, pkg *entities.PricingPackage) error
		GetPackageByID(ctx context.Context, id string) (*entities.PricingPackage, error)
		GetPackages(ctx context.Context, activeOnly bool) ([]*entities.PricingPackage, error)
		UpdatePackage(ctx context.Context, pkg *entities.PricingPackage) error
		DeletePackage(ctx context.Context, id string) error
	}

	pricingRepository struct {
		db *gorm.DB
	}
)

func NewPricingRepository(db *gorm.DB) PricingRepository {
	return &pricingRepository{db: db}
}

func (r *pricingRepository) CreatePackage(ctx context.Context, pkg *entities.PricingPackage) error {
	return r.db.WithContext(ctx).Create(pkg).Error
}

func (r *pricingRepository) GetPackageByID(ctx context.Context, id string) (*entities.PricingPackage, error) {
	var pkg entities.PricingPackage
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&pkg).Error; err != nil {
		return nil, err
	}
	return &pkg, nil
}

func (r *pricingRepository) GetPackages(ctx context.Context, activeOnly bool) ([]*entities.PricingPackage, error) {
	var packages []*entities.PricingPackage
	query := r.db.WithContext(ctx)
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	if err := query.Order("sort_order asc").Order("price asc").Find(&packages).Error; err != nil {
		return nil, err
	}
	return packages, nil
}

func (r *pricingRepository) UpdatePackage(ctx context.Context, pkg *entities.PricingPackage) error {
	return r.db.WithContext(ctx).Save(pkg).Error
}

func (r *pricingRepository) DeletePackage(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.PricingPackage{}).Error
}
