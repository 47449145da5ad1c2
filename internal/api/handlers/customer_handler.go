package handlers

import (
	"fitcoach-backend/domain"
	"fitcoach-backend/internal/api/presenters"
	"fitcoach-backend/pkg/customer"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	CustomerHandler interface {
		CreateCustomer(c *fiber.Ctx) error
		UpdateCustomer(c *fiber.Ctx) error
		DeleteCustomer(c *fiber.Ctx) error
		GetCustomers(c *fiber.Ctx) error
		GetCustomerDetail(c *fiber.Ctx) error
	}

	customerHandler struct {
		customerService customer.CustomerService
		validator       *validator.Validate
	}
)

func NewCustomerHandler(customerService customer.CustomerService, validator *validator.Validate) CustomerHandler {
	return &customerHandler{
		customerService: customerService,
		validator:       validator,
	}
}

func (h *customerHandler) CreateCustomer(c *fiber.Ctx) error {
	req := new(domain.CreateCustomerRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateCustomer, err)
	}

	res, err := h.customerService.CreateCustomer(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedCreateCustomer, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateCustomer)
}

func (h *customerHandler) UpdateCustomer(c *fiber.Ctx) error {
	req := new(domain.UpdateCustomerRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateCustomer, err)
	}

	res, err := h.customerService.UpdateCustomer(c.Context(), c.Params("id"), *req)
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedUpdateCustomer, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateCustomer)
}

func (h *customerHandler) DeleteCustomer(c *fiber.Ctx) error {
	if err := h.customerService.DeleteCustomer(c.Context(), c.Params("id")); err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedDeleteCustomer, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteCustomer)
}

func (h *customerHandler) GetCustomers(c *fiber.Ctx) error {
	page, limit := pageAndLimit(c)
	filter := domain.CustomerFilter{
		Status: c.Query("status"),
		Search: c.Query("search"),
		Page:   page,
		Limit:  limit,
	}

	customers, total, err := h.customerService.GetCustomers(c.Context(), filter)
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedGetCustomers, err)
	}

	return presenters.SuccessResponse(c, paginated(customers, page, limit, total), fiber.StatusOK, domain.MessageSuccessGetCustomers)
}

func (h *customerHandler) GetCustomerDetail(c *fiber.Ctx) error {
	res, err := h.customerService.GetCustomerDetail(c.Context(), c.Params("id"))
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedGetCustomer, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetCustomer)
}
