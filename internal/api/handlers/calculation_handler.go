package handlers

import (
	"fitcoach-backend/domain"
	"fitcoach-backend/internal/api/presenters"
	"fitcoach-backend/pkg/calculation"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	CalculationHandler interface {
		CalculateNutrition(c *fiber.Ctx) error
		GetNutritionCalculations(c *fiber.Ctx) error
		CalculatePricing(c *fiber.Ctx) error
		GetPricingCalculations(c *fiber.Ctx) error
	}

	calculationHandler struct {
		calculationService calculation.CalculationService
		validator          *validator.Validate
	}
)

func NewCalculationHandler(calculationService calculation.CalculationService, validator *validator.Validate) CalculationHandler {
	return &calculationHandler{
		calculationService: calculationService,
		validator:          validator,
	}
}

func (h *calculationHandler) CalculateNutrition(c *fiber.Ctx) error {
	req := new(domain.NutritionCalculationRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCalculateNutrition, err)
	}

	res, err := h.calculationService.CalculateNutrition(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedCalculateNutrition, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCalculateNutrition)
}

func (h *calculationHandler) GetNutritionCalculations(c *fiber.Ctx) error {
	page, limit := pageAndLimit(c)

	calculations, total, err := h.calculationService.GetNutritionCalculations(c.Context(), c.Query("customer_id"), page, limit)
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedGetCalculations, err)
	}

	return presenters.SuccessResponse(c, paginated(calculations, page, limit, total), fiber.StatusOK, domain.MessageSuccessGetCalculations)
}

func (h *calculationHandler) CalculatePricing(c *fiber.Ctx) error {
	req := new(domain.PricingCalculationRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCalculatePricing, err)
	}

	res, err := h.calculationService.CalculatePricing(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedCalculatePricing, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCalculatePricing)
}

func (h *calculationHandler) GetPricingCalculations(c *fiber.Ctx) error {
	page, limit := pageAndLimit(c)

	calculations, total, err := h.calculationService.GetPricingCalculations(c.Context(), c.Query("customer_id"), page, limit)
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedGetCalculations, err)
	}

	return presenters.SuccessResponse(c, paginated(calculations, page, limit, total), fiber.StatusOK, domain.MessageSuccessGetCalculations)
}
