package handlers

import (
	"fitcoach-backend/domain"
	"fitcoach-backend/internal/api/presenters"
	"fitcoach-backend/pkg/customer"
	"fitcoach-backend/pkg/nutritionplan"
	"fitcoach-backend/pkg/pricing"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	PublicHandler interface {
		SubmitIntake(c *fiber.Ctx) error
		GetLanding(c *fiber.Ctx) error
		GetMyPlan(c *fiber.Ctx) error
	}

	publicHandler struct {
		intakeService  customer.IntakeService
		pricingService pricing.PricingService
		planService    nutritionplan.NutritionPlanService
		validator      *validator.Validate
	}
)

func NewPublicHandler(
	intakeService customer.IntakeService,
	pricingService pricing.PricingService,
	planService nutritionplan.NutritionPlanService,
	validator *validator.Validate,
) PublicHandler {
	return &publicHandler{
		intakeService:  intakeService,
		pricingService: pricingService,
		planService:    planService,
		validator:      validator,
	}
}

func (h *publicHandler) SubmitIntake(c *fiber.Ctx) error {
	req := new(domain.IntakeRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSubmitIntake, err)
	}

	res, err := h.intakeService.SubmitIntake(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedSubmitIntake, err)
	}

	status := fiber.StatusOK
	if res.IsNew {
		status = fiber.StatusCreated
	}
	return presenters.SuccessResponse(c, res, status, domain.MessageSuccessSubmitIntake)
}

func (h *publicHandler) GetLanding(c *fiber.Ctx) error {
	res, err := h.pricingService.GetLanding(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedGetLanding, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetLanding)
}

func (h *publicHandler) GetMyPlan(c *fiber.Ctx) error {
	res, err := h.planService.GetPublicPlan(c.Context(), c.Params("token"))
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedGetPlan, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetPlan)
}
