package handlers

import (
	"fitcoach-backend/domain"
	"fitcoach-backend/internal/api/presenters"
	"fitcoach-backend/pkg/pricing"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	PricingHandler interface {
		CreatePackage(c *fiber.Ctx) error
		UpdatePackage(c *fiber.Ctx) error
		DeletePackage(c *fiber.Ctx) error
		GetPackages(c *fiber.Ctx) error
		GetPackageDetail(c *fiber.Ctx) error
	}

	pricingHandler struct {
		pricingService pricing.PricingService
		validator      *validator.Validate
	}
)

func NewPricingHandler(pricingService pricing.PricingService, validator *validator.Validate) PricingHandler {
	return &pricingHandler{
		pricingService: pricingService,
		validator:      validator,
	}
}

func (h *pricingHandler) CreatePackage(c *fiber.Ctx) error {
	req := new(domain.CreatePackageRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreatePackage, err)
	}

	res, err := h.pricingService.CreatePackage(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedCreatePackage, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreatePackage)
}

func (h *pricingHandler) UpdatePackage(c *fiber.Ctx) error {
	req := new(domain.UpdatePackageRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdatePackage, err)
	}

	res, err := h.pricingService.UpdatePackage(c.Context(), c.Params("id"), *req)
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedUpdatePackage, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdatePackage)
}

func (h *pricingHandler) DeletePackage(c *fiber.Ctx) error {
	if err := h.pricingService.DeletePackage(c.Context(), c.Params("id")); err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedDeletePackage, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeletePackage)
}

func (h *pricingHandler) GetPackages(c *fiber.Ctx) error {
	packages, err := h.pricingService.GetPackages(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedGetPackages, err)
	}

	return presenters.SuccessResponse(c, packages, fiber.StatusOK, domain.MessageSuccessGetPackages)
}

func (h *pricingHandler) GetPackageDetail(c *fiber.Ctx) error {
	res, err := h.pricingService.GetPackageByID(c.Context(), c.Params("id"))
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedGetPackages, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetPackages)
}
