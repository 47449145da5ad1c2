package calculation

import (
	"context"
	"fitcoach-backend/domain"
	"fitcoach-backend/entities"
	"fitcoach-backend/internal/utils"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type (
	CalculationService interface {
		CalculateNutrition(ctx context.Context, req domain.NutritionCalculationRequest) (domain.NutritionCalculationResponse, error)
		GetNutritionCalculations(ctx context.Context, customerID string, page, limit int) ([]domain.NutritionCalculationResponse, int64, error)
		CalculatePricing(ctx context.Context, req domain.PricingCalculationRequest) (domain.PricingCalculationResponse, error)
		GetPricingCalculations(ctx context.Context, customerID string, page, limit int) ([]domain.PricingCalculationResponse, int64, error)
	}

	calculationService struct {
		calculationRepository CalculationRepository
		defaultVAT            decimal.Decimal
	}
)

func NewCalculationService(calculationRepository CalculationRepository) CalculationService {
	vat, err := decimal.NewFromString(utils.GetConfig("INVOICE_VAT_PERCENT"))
	if err != nil {
		vat = decimal.Zero
	}
	return &calculationService{
		calculationRepository: calculationRepository,
		defaultVAT:            vat,
	}
}

func (s *calculationService) CalculateNutrition(ctx context.Context, req domain.NutritionCalculationRequest) (domain.NutritionCalculationResponse, error) {
	customerID, err := optionalUUID(req.CustomerID)
	if err != nil {
		return domain.NutritionCalculationResponse{}, err
	}

	proteinPerKg := req.ProteinPerKg
	if proteinPerKg <= 0 {
		proteinPerKg = DefaultProteinPerKg
	}

	result, err := CalculateNutrition(NutritionInput{
		Gender:        req.Gender,
		Age:           req.Age,
		HeightCm:      req.HeightCm,
		WeightKg:      req.WeightKg,
		ActivityLevel: req.ActivityLevel,
		Goal:          req.Goal,
		ProteinPerKg:  proteinPerKg,
	})
	if err != nil {
		return domain.NutritionCalculationResponse{}, err
	}

	calc := &entities.NutritionCalculation{
		ID:             uuid.New(),
		CustomerID:     customerID,
		Gender:         req.Gender,
		Age:            req.Age,
		HeightCm:       req.HeightCm,
		WeightKg:       req.WeightKg,
		ActivityLevel:  req.ActivityLevel,
		Goal:           req.Goal,
		ProteinPerKg:   proteinPerKg,
		BMR:            result.BMR,
		TDEE:           result.TDEE,
		TargetCalories: result.TargetCalories,
		ProteinG:       result.ProteinG,
		CarbsG:         result.CarbsG,
		FatG:           result.FatG,
	}
	if err := s.calculationRepository.CreateNutritionCalculation(ctx, calc); err != nil {
		return domain.NutritionCalculationResponse{}, err
	}
	return toNutritionResponse(calc), nil
}

func (s *calculationService) GetNutritionCalculations(ctx context.Context, customerID string, page, limit int) ([]domain.NutritionCalculationResponse, int64, error) {
	calcs, count, err := s.calculationRepository.GetNutritionCalculations(ctx, customerID, page, limit)
	if err != nil {
		return nil, 0, err
	}
	res := make([]domain.NutritionCalculationResponse, 0, len(calcs))
	for _, c := range calcs {
		res = append(res, toNutritionResponse(c))
	}
	return res, count, nil
}

func (s *calculationService) CalculatePricing(ctx context.Context, req domain.PricingCalculationRequest) (domain.PricingCalculationResponse, error) {
	customerID, err := optionalUUID(req.CustomerID)
	if err != nil {
		return domain.PricingCalculationResponse{}, err
	}

	in := PricingInput{
		SessionsPerWeek: req.SessionsPerWeek,
		Weeks:           req.Weeks,
		Months:          req.Months,
		VATPercent:      s.defaultVAT,
	}
	if in.SessionPrice, err = parseDecimal(req.SessionPrice); err != nil {
		return domain.PricingCalculationResponse{}, err
	}
	if in.NutritionFeeMonthly, err = parseDecimal(req.NutritionFeeMonthly); err != nil {
		return domain.PricingCalculationResponse{}, err
	}
	if in.DiscountPercent, err = parseDecimal(req.DiscountPercent); err != nil {
		return domain.PricingCalculationResponse{}, err
	}
	if req.VATPercent != "" {
		if in.VATPercent, err = parseDecimal(req.VATPercent); err != nil {
			return domain.PricingCalculationResponse{}, err
		}
	}

	result, err := CalculatePrice(in)
	if err != nil {
		return domain.PricingCalculationResponse{}, err
	}

	calc := &entities.PricingCalculation{
		ID:                  uuid.New(),
		CustomerID:          customerID,
		Label:               req.Label,
		SessionPrice:        in.SessionPrice,
		SessionsPerWeek:     in.SessionsPerWeek,
		Weeks:               in.Weeks,
		NutritionFeeMonthly: in.NutritionFeeMonthly,
		Months:              result.Months,
		DiscountPercent:     in.DiscountPercent,
		VATPercent:          in.VATPercent,
		Subtotal:            result.Subtotal,
		DiscountAmount:      result.DiscountAmount,
		VATAmount:           result.VATAmount,
		Total:               result.Total,
		PricePerWeek:        result.PricePerWeek,
	}
	if err := s.calculationRepository.CreatePricingCalculation(ctx, calc); err != nil {
		return domain.PricingCalculationResponse{}, err
	}
	return toPricingResponse(calc), nil
}

func (s *calculationService) GetPricingCalculations(ctx context.Context, customerID string, page, limit int) ([]domain.PricingCalculationResponse, int64, error) {
	calcs, count, err := s.calculationRepository.GetPricingCalculations(ctx, customerID, page, limit)
	if err != nil {
		return nil, 0, err
	}
	res := make([]domain.PricingCalculationResponse, 0, len(calcs))
	for _, c := range calcs {
		res = append(res, toPricingResponse(c))
	}
	return res, count, nil
}

func optionalUUID(raw string) (*uuid.UUID, error) {
	if raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, domain.ErrParseUUID
	}
	return &id, nil
}

func parseDecimal(raw string) (decimal.Decimal, error) {
	if raw == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, domain.ErrInvalidAmount
	}
	return d, nil
}

func uuidString(id *uuid.UUID) string {
	if id == nil {
		return ""
	}
	return id.String()
}

func toNutritionResponse(c *entities.NutritionCalculation) domain.NutritionCalculationResponse {
	return domain.NutritionCalculationResponse{
		ID:             c.ID.String(),
		CustomerID:     uuidString(c.CustomerID),
		Gender:         c.Gender,
		Age:            c.Age,
		HeightCm:       c.HeightCm,
		WeightKg:       c.WeightKg,
		ActivityLevel:  c.ActivityLevel,
		Goal:           c.Goal,
		ProteinPerKg:   c.ProteinPerKg,
		BMR:            c.BMR,
		TDEE:           c.TDEE,
		TargetCalories: c.TargetCalories,
		ProteinG:       c.ProteinG,
		CarbsG:         c.CarbsG,
		FatG:           c.FatG,
		CreatedAt:      c.CreatedAt,
	}
}

func toPricingResponse(c *entities.PricingCalculation) domain.PricingCalculationResponse {
	return domain.PricingCalculationResponse{
		ID:                  c.ID.String(),
		CustomerID:          uuidString(c.CustomerID),
		Label:               c.Label,
		SessionPrice:        c.SessionPrice,
		SessionsPerWeek:     c.SessionsPerWeek,
		Weeks:               c.Weeks,
		NutritionFeeMonthly: c.NutritionFeeMonthly,
		Months:              c.Months,
		DiscountPercent:     c.DiscountPercent,
		VATPercent:          c.VATPercent,
		Subtotal:            c.Subtotal,
		DiscountAmount:      c.DiscountAmount,
		VATAmount:           c.VATAmount,
		Total:               c.Total,
		PricePerWeek:        c.PricePerWeek,
		CreatedAt:           c.CreatedAt,
	}
}
