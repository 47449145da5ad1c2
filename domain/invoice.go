package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

const (
	InvoiceStatusDraft     = "draft"
	InvoiceStatusSent      = "sent"
	InvoiceStatusPaid      = "paid"
	InvoiceStatusCancelled = "cancelled"
)

var (
	MessageSuccessCreateInvoice = "invoice created successfully"
	MessageSuccessUpdateInvoice = "invoice updated successfully"
	MessageSuccessDeleteInvoice = "invoice deleted successfully"
	MessageSuccessGetInvoices   = "invoices retrieved successfully"
	MessageSuccessGetInvoice    = "invoice retrieved successfully"
	MessageSuccessSendInvoice   = "invoice sent to customer"

	MessageFailedCreateInvoice = "failed to create invoice"
	MessageFailedUpdateInvoice = "failed to update invoice"
	MessageFailedDeleteInvoice = "failed to delete invoice"
	MessageFailedGetInvoices   = "failed to retrieve invoices"
	MessageFailedGetInvoice    = "failed to retrieve invoice"
	MessageFailedRenderInvoice = "failed to render invoice pdf"
	MessageFailedSendInvoice   = "failed to send invoice"

	ErrInvoiceNotFound         = errors.New("invoice not found")
	ErrInvoiceNotEditable      = errors.New("only draft invoices can be edited")
	ErrInvoiceStatusTransition = errors.New("invoice status change not allowed")
	ErrInvoiceHasPayments      = errors.New("invoice has payments and cannot be deleted")
	ErrInvoiceNoItems          = errors.New("invoice needs at least one item")
	ErrInvoiceDueBeforeIssue   = errors.New("due date is before issue date")
	ErrPDFRendererUnavailable  = errors.New("pdf rendering is not available")
	ErrInvoiceCustomerNoEmail  = errors.New("customer has no email address")
	ErrInvoiceAlreadySettled   = errors.New("invoice is already paid or cancelled")
)

type (
	InvoiceItemRequest struct {
		Description string `json:"description" validate:"required,max=255"`
		Quantity    string `json:"quantity" validate:"required,decimal_gte0"`
		UnitPrice   string `json:"unit_price" validate:"required,decimal_gte0"`
	}

	CreateInvoiceRequest struct {
		CustomerID string               `json:"customer_id" validate:"required,uuid"`
		IssueDate  string               `json:"issue_date" validate:"omitempty,datetime=2006-01-02"`
		DueDate    string               `json:"due_date" validate:"omitempty,datetime=2006-01-02"`
		VATPercent string               `json:"vat_percent" validate:"omitempty,decimal_gte0"`
		Notes      string               `json:"notes"`
		Items      []InvoiceItemRequest `json:"items" validate:"required,min=1,dive"`
	}

	UpdateInvoiceRequest struct {
		IssueDate  *string               `json:"issue_date" validate:"omitempty,datetime=2006-01-02"`
		DueDate    *string               `json:"due_date" validate:"omitempty,datetime=2006-01-02"`
		VATPercent *string               `json:"vat_percent" validate:"omitempty,decimal_gte0"`
		Notes      *string               `json:"notes"`
		Status     *string               `json:"status" validate:"omitempty,oneof=draft sent paid cancelled"`
		Items      *[]InvoiceItemRequest `json:"items" validate:"omitempty,min=1,dive"`
	}

	InvoiceFilter struct {
		CustomerID string
		Status     string
		Page       int
		Limit      int
	}

	InvoiceItemResponse struct {
		Description string          `json:"description"`
		Quantity    decimal.Decimal `json:"quantity"`
		UnitPrice   decimal.Decimal `json:"unit_price"`
		Amount      decimal.Decimal `json:"amount"`
	}

	InvoiceSummary struct {
		ID         string          `json:"id"`
		Number     string          `json:"number"`
		CustomerID string          `json:"customer_id"`
		IssueDate  time.Time       `json:"issue_date"`
		DueDate    time.Time       `json:"due_date"`
		Total      decimal.Decimal `json:"total"`
		Currency   string          `json:"currency"`
		Status     string          `json:"status"`
	}

	InvoiceResponse struct {
		InvoiceSummary
		CustomerName  string                `json:"customer_name,omitempty"`
		CustomerEmail string                `json:"customer_email,omitempty"`
		VATPercent    decimal.Decimal       `json:"vat_percent"`
		Subtotal      decimal.Decimal       `json:"subtotal"`
		VATAmount     decimal.Decimal       `json:"vat_amount"`
		AmountPaid    decimal.Decimal       `json:"amount_paid"`
		Outstanding   decimal.Decimal       `json:"outstanding"`
		PDFURL        string                `json:"pdf_url,omitempty"`
		Notes         string                `json:"notes,omitempty"`
		SentAt        *time.Time            `json:"sent_at,omitempty"`
		PaidAt        *time.Time            `json:"paid_at,omitempty"`
		Items         []InvoiceItemResponse `json:"items"`
	}
)
