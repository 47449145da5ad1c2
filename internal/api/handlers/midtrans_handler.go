package handlers

import (
	"fitcoach-backend/domain"
	"fitcoach-backend/internal/api/presenters"
	"fitcoach-backend/pkg/payment"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

type (
	MidtransHandler interface {
		MidtransWebhookHandler(c *fiber.Ctx) error
	}

	midtransHandler struct {
		paymentService payment.PaymentService
		validator      *validator.Validate
	}
)

func NewMidtransHandler(paymentService payment.PaymentService, validator *validator.Validate) MidtransHandler {
	return &midtransHandler{
		paymentService: paymentService,
		validator:      validator,
	}
}

// MidtransWebhookHandler receives payment notifications. Midtrans retries on
// any non-2xx answer, so only a bad signature or an unknown order is refused.
func (h *midtransHandler) MidtransWebhookHandler(c *fiber.Ctx) error {
	notification := new(domain.MidtransNotification)
	if err := c.BodyParser(notification); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(notification); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedWebhook, err)
	}

	if err := h.paymentService.HandleNotification(c.Context(), *notification); err != nil {
		log.Warnf("midtrans notification for order %s rejected: %v", notification.OrderID, err)
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedWebhook, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessWebhook)
}
