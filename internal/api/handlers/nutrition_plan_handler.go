package handlers

import (
	"fitcoach-backend/domain"
	"fitcoach-backend/internal/api/presenters"
	"fitcoach-backend/pkg/nutritionplan"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	NutritionPlanHandler interface {
		CreatePlan(c *fiber.Ctx) error
		UpdatePlan(c *fiber.Ctx) error
		DeletePlan(c *fiber.Ctx) error
		GetPlans(c *fiber.Ctx) error
		GetPlanDetail(c *fiber.Ctx) error
		ParsePlan(c *fiber.Ctx) error
		ImportPlan(c *fiber.Ctx) error
		AssignPlan(c *fiber.Ctx) error
		GetPlanTotals(c *fiber.Ctx) error
		GetShoppingList(c *fiber.Ctx) error
		GetUnmapped(c *fiber.Ctx) error
	}

	nutritionPlanHandler struct {
		planService nutritionplan.NutritionPlanService
		validator   *validator.Validate
	}
)

func NewNutritionPlanHandler(planService nutritionplan.NutritionPlanService, validator *validator.Validate) NutritionPlanHandler {
	return &nutritionPlanHandler{
		planService: planService,
		validator:   validator,
	}
}

func (h *nutritionPlanHandler) CreatePlan(c *fiber.Ctx) error {
	req := new(domain.CreatePlanRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreatePlan, err)
	}

	res, err := h.planService.CreatePlan(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedCreatePlan, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreatePlan)
}

func (h *nutritionPlanHandler) UpdatePlan(c *fiber.Ctx) error {
	req := new(domain.UpdatePlanRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdatePlan, err)
	}

	res, err := h.planService.UpdatePlan(c.Context(), c.Params("id"), *req)
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedUpdatePlan, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdatePlan)
}

func (h *nutritionPlanHandler) DeletePlan(c *fiber.Ctx) error {
	if err := h.planService.DeletePlan(c.Context(), c.Params("id")); err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedDeletePlan, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeletePlan)
}

func (h *nutritionPlanHandler) GetPlans(c *fiber.Ctx) error {
	page, limit := pageAndLimit(c)
	filter := domain.PlanFilter{
		CustomerID: c.Query("customer_id"),
		Status:     c.Query("status"),
		Page:       page,
		Limit:      limit,
	}

	plans, total, err := h.planService.GetPlans(c.Context(), filter)
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedGetPlans, err)
	}

	return presenters.SuccessResponse(c, paginated(plans, page, limit, total), fiber.StatusOK, domain.MessageSuccessGetPlans)
}

func (h *nutritionPlanHandler) GetPlanDetail(c *fiber.Ctx) error {
	res, err := h.planService.GetPlanByID(c.Context(), c.Params("id"))
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedGetPlan, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetPlan)
}

func (h *nutritionPlanHandler) ParsePlan(c *fiber.Ctx) error {
	req := new(domain.ParsePlanRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedParsePlan, err)
	}

	res := h.planService.ParsePlan(c.Context(), *req)
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessParsePlan)
}

func (h *nutritionPlanHandler) ImportPlan(c *fiber.Ctx) error {
	req := new(domain.ImportPlanRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedImportPlan, err)
	}

	res, err := h.planService.ImportPlan(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedImportPlan, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessImportPlan)
}

func (h *nutritionPlanHandler) AssignPlan(c *fiber.Ctx) error {
	req := new(domain.AssignPlanRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAssignPlan, err)
	}

	res, err := h.planService.AssignPlan(c.Context(), c.Params("id"), *req)
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedAssignPlan, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessAssignPlan)
}

func (h *nutritionPlanHandler) GetPlanTotals(c *fiber.Ctx) error {
	res, err := h.planService.GetPlanTotals(c.Context(), c.Params("id"))
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedGetPlanTotals, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetPlanTotals)
}

func (h *nutritionPlanHandler) GetShoppingList(c *fiber.Ctx) error {
	res, err := h.planService.GetShoppingList(c.Context(), c.Params("id"))
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedGetShoppingList, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetShoppingList)
}

func (h *nutritionPlanHandler) GetUnmapped(c *fiber.Ctx) error {
	res, err := h.planService.GetUnmapped(c.Context(), c.Params("id"))
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedGetUnmapped, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetUnmapped)
}
