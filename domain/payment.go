package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

const (
	PaymentStatusPending   = "pending"
	PaymentStatusCompleted = "completed"
	PaymentStatusFailed    = "failed"
	PaymentStatusRefunded  = "refunded"

	PaymentMethodBankTransfer = "bank_transfer"
	PaymentMethodCash         = "cash"
	PaymentMethodCard         = "card"
	PaymentMethodMidtrans     = "midtrans"
)

var (
	MessageSuccessCreatePayment = "payment recorded successfully"
	MessageSuccessUpdatePayment = "payment updated successfully"
	MessageSuccessDeletePayment = "payment deleted successfully"
	MessageSuccessGetPayments   = "payments retrieved successfully"
	MessageSuccessGetPayment    = "payment retrieved successfully"
	MessageSuccessCheckout      = "checkout created"
	MessageSuccessSyncPayment   = "payment status synchronized"
	MessageSuccessWebhook       = "notification processed"

	MessageFailedCreatePayment = "failed to record payment"
	MessageFailedUpdatePayment = "failed to update payment"
	MessageFailedDeletePayment = "failed to delete payment"
	MessageFailedGetPayments   = "failed to retrieve payments"
	MessageFailedGetPayment    = "failed to retrieve payment"
	MessageFailedCheckout      = "failed to create checkout"
	MessageFailedSyncPayment   = "failed to synchronize payment status"
	MessageFailedWebhook       = "failed to process notification"

	ErrPaymentNotFound           = errors.New("payment not found")
	ErrPaymentStatusTransition   = errors.New("payment status change not allowed")
	ErrPaymentNotDeletable       = errors.New("only pending or failed payments can be deleted")
	ErrPaymentNotMidtrans        = errors.New("payment was not made through midtrans")
	ErrPaymentCustomerMismatch   = errors.New("invoice belongs to another customer")
	ErrInvalidSignature          = errors.New("invalid notification signature")
	ErrUnknownTransactionStatus  = errors.New("unknown transaction status")
	ErrPaymentGatewayUnavailable = errors.New("payment gateway is not configured")
	ErrPaymentGateway            = errors.New("payment gateway request failed")
	ErrNothingOutstanding        = errors.New("invoice has no outstanding amount")
)

type (
	CreatePaymentRequest struct {
		CustomerID string `json:"customer_id" validate:"required,uuid"`
		InvoiceID  string `json:"invoice_id" validate:"omitempty,uuid"`
		Amount     string `json:"amount" validate:"required,decimal_gte0"`
		Method     string `json:"method" validate:"required,oneof=bank_transfer cash card"`
		Status     string `json:"status" validate:"omitempty,oneof=pending completed"`
		Reference  string `json:"reference" validate:"omitempty,max=120"`
		PaidAt     string `json:"paid_at" validate:"omitempty,datetime=2006-01-02"`
		Notes      string `json:"notes"`
	}

	UpdatePaymentRequest struct {
		Status    *string `json:"status" validate:"omitempty,oneof=pending completed failed refunded"`
		Reference *string `json:"reference" validate:"omitempty,max=120"`
		PaidAt    *string `json:"paid_at" validate:"omitempty,datetime=2006-01-02"`
		Notes     *string `json:"notes"`
	}

	PaymentFilter struct {
		CustomerID string
		InvoiceID  string
		Status     string
		Page       int
		Limit      int
	}

	PaymentResponse struct {
		ID              string          `json:"id"`
		CustomerID      string          `json:"customer_id"`
		InvoiceID       string          `json:"invoice_id,omitempty"`
		Amount          decimal.Decimal `json:"amount"`
		Currency        string          `json:"currency"`
		Method          string          `json:"method"`
		Status          string          `json:"status"`
		Reference       string          `json:"reference,omitempty"`
		PaidAt          *time.Time      `json:"paid_at,omitempty"`
		Notes           string          `json:"notes,omitempty"`
		MidtransOrderID string          `json:"midtrans_order_id,omitempty"`
		RedirectURL     string          `json:"redirect_url,omitempty"`
		CreatedAt       time.Time       `json:"created_at"`
	}

	CheckoutResponse struct {
		PaymentID   string          `json:"payment_id"`
		OrderID     string          `json:"order_id"`
		Amount      decimal.Decimal `json:"amount"`
		Token       string          `json:"token"`
		RedirectURL string          `json:"redirect_url"`
	}

	// MidtransNotification is the HTTP notification body Midtrans posts after a
	// transaction changes state.
	MidtransNotification struct {
		TransactionID     string `json:"transaction_id"`
		TransactionStatus string `json:"transaction_status"`
		TransactionTime   string `json:"transaction_time"`
		StatusCode        string `json:"status_code"`
		SignatureKey      string `json:"signature_key"`
		PaymentType       string `json:"payment_type"`
		OrderID           string `json:"order_id" validate:"required"`
		GrossAmount       string `json:"gross_amount"`
		FraudStatus       string `json:"fraud_status"`
		SettlementTime    string `json:"settlement_time"`
	}
)

type (
	MidtransPaymentRequest struct {
		OrderID      string
		Amount       int64
		CustomerName string
		Email        string
		Phone        string
		ItemName     string
	}

	MidtransPaymentResponse struct {
		Token       string
		RedirectURL string
	}
)
