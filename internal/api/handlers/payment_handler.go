package handlers

import (
	"fitcoach-backend/domain"
	"fitcoach-backend/internal/api/presenters"
	"fitcoach-backend/pkg/payment"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	PaymentHandler interface {
		CreatePayment(c *fiber.Ctx) error
		UpdatePayment(c *fiber.Ctx) error
		DeletePayment(c *fiber.Ctx) error
		GetPayments(c *fiber.Ctx) error
		GetPaymentDetail(c *fiber.Ctx) error
		Checkout(c *fiber.Ctx) error
		SyncPayment(c *fiber.Ctx) error
	}

	paymentHandler struct {
		paymentService payment.PaymentService
		validator      *validator.Validate
	}
)

func NewPaymentHandler(paymentService payment.PaymentService, validator *validator.Validate) PaymentHandler {
	return &paymentHandler{
		paymentService: paymentService,
		validator:      validator,
	}
}

func (h *paymentHandler) CreatePayment(c *fiber.Ctx) error {
	req := new(domain.CreatePaymentRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreatePayment, err)
	}

	res, err := h.paymentService.CreatePayment(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedCreatePayment, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreatePayment)
}

func (h *paymentHandler) UpdatePayment(c *fiber.Ctx) error {
	req := new(domain.UpdatePaymentRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdatePayment, err)
	}

	res, err := h.paymentService.UpdatePayment(c.Context(), c.Params("id"), *req)
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedUpdatePayment, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdatePayment)
}

func (h *paymentHandler) DeletePayment(c *fiber.Ctx) error {
	if err := h.paymentService.DeletePayment(c.Context(), c.Params("id")); err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedDeletePayment, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeletePayment)
}

func (h *paymentHandler) GetPayments(c *fiber.Ctx) error {
	page, limit := pageAndLimit(c)
	filter := domain.PaymentFilter{
		CustomerID: c.Query("customer_id"),
		InvoiceID:  c.Query("invoice_id"),
		Status:     c.Query("status"),
		Page:       page,
		Limit:      limit,
	}

	payments, total, err := h.paymentService.GetPayments(c.Context(), filter)
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedGetPayments, err)
	}

	return presenters.SuccessResponse(c, paginated(payments, page, limit, total), fiber.StatusOK, domain.MessageSuccessGetPayments)
}

func (h *paymentHandler) GetPaymentDetail(c *fiber.Ctx) error {
	res, err := h.paymentService.GetPaymentByID(c.Context(), c.Params("id"))
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedGetPayment, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetPayment)
}

func (h *paymentHandler) Checkout(c *fiber.Ctx) error {
	res, err := h.paymentService.Checkout(c.Context(), c.Params("id"))
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedCheckout, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCheckout)
}

func (h *paymentHandler) SyncPayment(c *fiber.Ctx) error {
	res, err := h.paymentService.SyncPayment(c.Context(), c.Params("id"))
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedSyncPayment, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessSyncPayment)
}
