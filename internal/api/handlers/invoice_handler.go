package handlers

import (
	"fitcoach-backend/domain"
	"fitcoach-backend/internal/api/presenters"
	"fitcoach-backend/pkg/invoice"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	InvoiceHandler interface {
		CreateInvoice(c *fiber.Ctx) error
		UpdateInvoice(c *fiber.Ctx) error
		DeleteInvoice(c *fiber.Ctx) error
		GetInvoices(c *fiber.Ctx) error
		GetInvoiceDetail(c *fiber.Ctx) error
		DownloadPDF(c *fiber.Ctx) error
		SendInvoice(c *fiber.Ctx) error
	}

	invoiceHandler struct {
		invoiceService invoice.InvoiceService
		validator      *validator.Validate
	}
)

func NewInvoiceHandler(invoiceService invoice.InvoiceService, validator *validator.Validate) InvoiceHandler {
	return &invoiceHandler{
		invoiceService: invoiceService,
		validator:      validator,
	}
}

func (h *invoiceHandler) CreateInvoice(c *fiber.Ctx) error {
	req := new(domain.CreateInvoiceRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateInvoice, err)
	}

	res, err := h.invoiceService.CreateInvoice(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedCreateInvoice, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateInvoice)
}

func (h *invoiceHandler) UpdateInvoice(c *fiber.Ctx) error {
	req := new(domain.UpdateInvoiceRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateInvoice, err)
	}

	res, err := h.invoiceService.UpdateInvoice(c.Context(), c.Params("id"), *req)
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedUpdateInvoice, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateInvoice)
}

func (h *invoiceHandler) DeleteInvoice(c *fiber.Ctx) error {
	if err := h.invoiceService.DeleteInvoice(c.Context(), c.Params("id")); err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedDeleteInvoice, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteInvoice)
}

func (h *invoiceHandler) GetInvoices(c *fiber.Ctx) error {
	page, limit := pageAndLimit(c)
	filter := domain.InvoiceFilter{
		CustomerID: c.Query("customer_id"),
		Status:     c.Query("status"),
		Page:       page,
		Limit:      limit,
	}

	invoices, total, err := h.invoiceService.GetInvoices(c.Context(), filter)
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedGetInvoices, err)
	}

	return presenters.SuccessResponse(c, paginated(invoices, page, limit, total), fiber.StatusOK, domain.MessageSuccessGetInvoices)
}

func (h *invoiceHandler) GetInvoiceDetail(c *fiber.Ctx) error {
	res, err := h.invoiceService.GetInvoiceByID(c.Context(), c.Params("id"))
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedGetInvoice, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetInvoice)
}

func (h *invoiceHandler) DownloadPDF(c *fiber.Ctx) error {
	pdf, fileName, err := h.invoiceService.RenderPDF(c.Context(), c.Params("id"))
	if err != nil {
		status := statusFor(err)
		if status == fiber.StatusBadRequest {
			status = fiber.StatusInternalServerError
		}
		return presenters.ErrorResponse(c, status, domain.MessageFailedRenderInvoice, err)
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("inline; filename=%q", fileName))
	return c.Status(fiber.StatusOK).Send(pdf)
}

func (h *invoiceHandler) SendInvoice(c *fiber.Ctx) error {
	res, err := h.invoiceService.SendInvoice(c.Context(), c.Params("id"))
	if err != nil {
		status := statusFor(err)
		if status == fiber.StatusBadRequest && !isClientError(err) {
			status = fiber.StatusBadGateway
		}
		return presenters.ErrorResponse(c, status, domain.MessageFailedSendInvoice, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessSendInvoice)
}
