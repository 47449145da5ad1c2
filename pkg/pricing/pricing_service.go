package pricing

import (
	"context"
	"errors"
	"fitcoach-backend/domain"
	"fitcoach-backend/entities"
	"fitcoach-backend/internal/utils"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type (
	PricingService interface {
		CreatePackage(ctx context.Context, req domain.CreatePackageRequest) (domain.PricingPackageResponse, error)
		UpdatePackage(ctx context.Context, id string, req domain.UpdatePackageRequest) (domain.PricingPackageResponse, error)
		DeletePackage(ctx context.Context, id string) error
		GetPackages(ctx context.Context) ([]domain.PricingPackageResponse, error)
		GetPackageByID(ctx context.Context, id string) (domain.PricingPackageResponse, error)
		GetLanding(ctx context.Context) (domain.LandingResponse, error)
	}

	pricingService struct {
		pricingRepository PricingRepository
		currency          string
		companyName       string
	}
)

func NewPricingService(pricingRepository PricingRepository) PricingService {
	return &pricingService{
		pricingRepository: pricingRepository,
		currency:          utils.GetConfig("CURRENCY"),
		companyName:       utils.GetConfig("COMPANY_NAME"),
	}
}

func (s *pricingService) CreatePackage(ctx context.Context, req domain.CreatePackageRequest) (domain.PricingPackageResponse, error) {
	price, err := decimal.NewFromString(req.Price)
	if err != nil || price.IsNegative() {
		return domain.PricingPackageResponse{}, domain.ErrInvalidAmount
	}

	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}

	pkg := &entities.PricingPackage{
		ID:                    uuid.New(),
		Name:                  strings.TrimSpace(req.Name),
		Description:           req.Description,
		Price:                 price.Round(2),
		Currency:              s.currency,
		SessionsPerWeek:       req.SessionsPerWeek,
		DurationWeeks:         req.DurationWeeks,
		IncludesNutritionPlan: req.IncludesNutritionPlan,
		IsPopular:             req.IsPopular,
		IsActive:              active,
		SortOrder:             req.SortOrder,
	}
	if err := s.pricingRepository.CreatePackage(ctx, pkg); err != nil {
		return domain.PricingPackageResponse{}, err
	}
	return toPackageResponse(pkg), nil
}

func (s *pricingService) UpdatePackage(ctx context.Context, id string, req domain.UpdatePackageRequest) (domain.PricingPackageResponse, error) {
	pkg, err := s.getPackage(ctx, id)
	if err != nil {
		return domain.PricingPackageResponse{}, err
	}

	if req.Name != nil {
		pkg.Name = strings.TrimSpace(*req.Name)
	}
	if req.Description != nil {
		pkg.Description = *req.Description
	}
	if req.Price != nil {
		price, err := decimal.NewFromString(*req.Price)
		if err != nil || price.IsNegative() {
			return domain.PricingPackageResponse{}, domain.ErrInvalidAmount
		}
		pkg.Price = price.Round(2)
	}
	if req.SessionsPerWeek != nil {
		pkg.SessionsPerWeek = *req.SessionsPerWeek
	}
	if req.DurationWeeks != nil {
		pkg.DurationWeeks = *req.DurationWeeks
	}
	if req.IncludesNutritionPlan != nil {
		pkg.IncludesNutritionPlan = *req.IncludesNutritionPlan
	}
	if req.IsPopular != nil {
		pkg.IsPopular = *req.IsPopular
	}
	if req.IsActive != nil {
		pkg.IsActive = *req.IsActive
	}
	if req.SortOrder != nil {
		pkg.SortOrder = *req.SortOrder
	}

	if err := s.pricingRepository.UpdatePackage(ctx, pkg); err != nil {
		return domain.PricingPackageResponse{}, err
	}
	return toPackageResponse(pkg), nil
}

func (s *pricingService) DeletePackage(ctx context.Context, id string) error {
	if _, err := s.getPackage(ctx, id); err != nil {
		return err
	}
	return s.pricingRepository.DeletePackage(ctx, id)
}

func (s *pricingService) GetPackages(ctx context.Context) ([]domain.PricingPackageResponse, error) {
	return s.listPackages(ctx, false)
}

func (s *pricingService) GetPackageByID(ctx context.Context, id string) (domain.PricingPackageResponse, error) {
	pkg, err := s.getPackage(ctx, id)
	if err != nil {
		return domain.PricingPackageResponse{}, err
	}
	return toPackageResponse(pkg), nil
}

func (s *pricingService) GetLanding(ctx context.Context) (domain.LandingResponse, error) {
	packages, err := s.listPackages(ctx, true)
	if err != nil {
		return domain.LandingResponse{}, err
	}
	return domain.LandingResponse{
		CompanyName: s.companyName,
		Packages:    packages,
	}, nil
}

func (s *pricingService) listPackages(ctx context.Context, activeOnly bool) ([]domain.PricingPackageResponse, error) {
	packages, err := s.pricingRepository.GetPackages(ctx, activeOnly)
	if err != nil {
		return nil, err
	}
	result := make([]domain.PricingPackageResponse, 0, len(packages))
	for _, pkg := range packages {
		result = append(result, toPackageResponse(pkg))
	}
	return result, nil
}

func (s *pricingService) getPackage(ctx context.Context, id string) (*entities.PricingPackage, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrParseUUID
	}
	pkg, err := s.pricingRepository.GetPackageByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrPackageNotFound
		}
		return nil, err
	}
	return pkg, nil
}

func toPackageResponse(pkg *entities.PricingPackage) domain.PricingPackageResponse {
	perSession := decimal.Zero
	if sessions := pkg.SessionsPerWeek * pkg.DurationWeeks; sessions > 0 {
		perSession = pkg.Price.Div(decimal.NewFromInt(int64(sessions))).Round(2)
	}
	return domain.PricingPackageResponse{
		ID:                    pkg.ID.String(),
		Name:                  pkg.Name,
		Description:           pkg.Description,
		Price:                 pkg.Price,
		Currency:              pkg.Currency,
		SessionsPerWeek:       pkg.SessionsPerWeek,
		DurationWeeks:         pkg.DurationWeeks,
		PricePerSession:       perSession,
		IncludesNutritionPlan: pkg.IncludesNutritionPlan,
		IsPopular:             pkg.IsPopular,
		IsActive:              pkg.IsActive,
		SortOrder:             pkg.SortOrder,
	}
}
