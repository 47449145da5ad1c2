package payment

import (
	"context"
	"errors"
	"fitcoach-backend/domain"
	"fitcoach-backend/entities"
	"fitcoach-backend/internal/utils"
	"fitcoach-backend/pkg/customer"
	"fitcoach-backend/pkg/invoice"
	"fitcoach-backend/pkg/midtrans"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const midtransTimeLayout = "2006-01-02 15:04:05"

type (
	PaymentService interface {
		CreatePayment(ctx context.Context, req domain.CreatePaymentRequest) (domain.PaymentResponse, error)
		UpdatePayment(ctx context.Context, id string, req domain.UpdatePaymentRequest) (domain.PaymentResponse, error)
		DeletePayment(ctx context.Context, id string) error
		GetPayments(ctx context.Context, filter domain.PaymentFilter) ([]domain.PaymentResponse, int64, error)
		GetPaymentByID(ctx context.Context, id string) (domain.PaymentResponse, error)
		Checkout(ctx context.Context, invoiceID string) (domain.CheckoutResponse, error)
		HandleNotification(ctx context.Context, notification domain.MidtransNotification) error
		SyncPayment(ctx context.Context, id string) (domain.PaymentResponse, error)
	}

	paymentService struct {
		paymentRepository  PaymentRepository
		customerRepository customer.CustomerRepository
		invoiceService     invoice.InvoiceService
		midtransService    midtrans.MidtransService
		currency           string
	}
)

// NewPaymentService accepts a nil midtransService when no server key is
// configured; online checkout is then unavailable.
func NewPaymentService(
	paymentRepository PaymentRepository,
	customerRepository customer.CustomerRepository,
	invoiceService invoice.InvoiceService,
	midtransService midtrans.MidtransService,
) PaymentService {
	return &paymentService{
		paymentRepository:  paymentRepository,
		customerRepository: customerRepository,
		invoiceService:     invoiceService,
		midtransService:    midtransService,
		currency:           utils.GetConfig("CURRENCY"),
	}
}

var statusTransitions = map[string][]string{
	domain.PaymentStatusPending:   {domain.PaymentStatusCompleted, domain.PaymentStatusFailed},
	domain.PaymentStatusFailed:    {domain.PaymentStatusPending},
	domain.PaymentStatusCompleted: {domain.PaymentStatusRefunded},
}

func canTransition(from, to string) bool {
	for _, next := range statusTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

func (s *paymentService) CreatePayment(ctx context.Context, req domain.CreatePaymentRequest) (domain.PaymentResponse, error) {
	customerID, err := uuid.Parse(req.CustomerID)
	if err != nil {
		return domain.PaymentResponse{}, domain.ErrParseUUID
	}
	if _, err := s.customerRepository.GetCustomerByID(ctx, req.CustomerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.PaymentResponse{}, domain.ErrCustomerNotFound
		}
		return domain.PaymentResponse{}, err
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil || !amount.IsPositive() {
		return domain.PaymentResponse{}, domain.ErrInvalidAmount
	}

	payment := &entities.Payment{
		ID:         uuid.New(),
		CustomerID: customerID,
		Amount:     amount.Round(2),
		Currency:   s.currency,
		Method:     req.Method,
		Status:     req.Status,
		Reference:  req.Reference,
		Notes:      req.Notes,
	}
	if payment.Status == "" {
		payment.Status = domain.PaymentStatusCompleted
	}

	if req.InvoiceID != "" {
		inv, err := s.invoiceService.GetInvoiceByID(ctx, req.InvoiceID)
		if err != nil {
			return domain.PaymentResponse{}, err
		}
		if inv.CustomerID != req.CustomerID {
			return domain.PaymentResponse{}, domain.ErrPaymentCustomerMismatch
		}
		invoiceID := uuid.MustParse(inv.ID)
		payment.InvoiceID = &invoiceID
		payment.Currency = inv.Currency
	}

	if req.PaidAt != "" {
		paidAt, err := time.Parse(domain.DateLayout, req.PaidAt)
		if err != nil {
			return domain.PaymentResponse{}, domain.ErrInvalidDate
		}
		payment.PaidAt = &paidAt
	} else if payment.Status == domain.PaymentStatusCompleted {
		now := time.Now()
		payment.PaidAt = &now
	}

	if err := s.paymentRepository.CreatePayment(ctx, payment); err != nil {
		return domain.PaymentResponse{}, err
	}
	s.settle(ctx, payment)
	return toPaymentResponse(payment), nil
}

func (s *paymentService) UpdatePayment(ctx context.Context, id string, req domain.UpdatePaymentRequest) (domain.PaymentResponse, error) {
	payment, err := s.getPayment(ctx, id)
	if err != nil {
		return domain.PaymentResponse{}, err
	}

	if req.Status != nil && *req.Status != payment.Status {
		if !canTransition(payment.Status, *req.Status) {
			return domain.PaymentResponse{}, domain.ErrPaymentStatusTransition
		}
		applyStatus(payment, *req.Status, nil)
	}
	if req.Reference != nil {
		payment.Reference = *req.Reference
	}
	if req.Notes != nil {
		payment.Notes = *req.Notes
	}
	if req.PaidAt != nil {
		paidAt, err := time.Parse(domain.DateLayout, *req.PaidAt)
		if err != nil {
			return domain.PaymentResponse{}, domain.ErrInvalidDate
		}
		payment.PaidAt = &paidAt
	}

	if err := s.paymentRepository.UpdatePayment(ctx, payment); err != nil {
		return domain.PaymentResponse{}, err
	}
	s.settle(ctx, payment)
	return toPaymentResponse(payment), nil
}

func (s *paymentService) DeletePayment(ctx context.Context, id string) error {
	payment, err := s.getPayment(ctx, id)
	if err != nil {
		return err
	}
	if payment.Status != domain.PaymentStatusPending && payment.Status != domain.PaymentStatusFailed {
		return domain.ErrPaymentNotDeletable
	}
	return s.paymentRepository.DeletePayment(ctx, id)
}

func (s *paymentService) GetPayments(ctx context.Context, filter domain.PaymentFilter) ([]domain.PaymentResponse, int64, error) {
	for _, id := range []string{filter.CustomerID, filter.InvoiceID} {
		if id == "" {
			continue
		}
		if _, err := uuid.Parse(id); err != nil {
			return nil, 0, domain.ErrParseUUID
		}
	}

	payments, count, err := s.paymentRepository.GetPayments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	response := make([]domain.PaymentResponse, 0, len(payments))
	for _, p := range payments {
		response = append(response, toPaymentResponse(p))
	}
	return response, count, nil
}

func (s *paymentService) GetPaymentByID(ctx context.Context, id string) (domain.PaymentResponse, error) {
	payment, err := s.getPayment(ctx, id)
	if err != nil {
		return domain.PaymentResponse{}, err
	}
	return toPaymentResponse(payment), nil
}

// Checkout opens a Midtrans Snap transaction for the invoice's outstanding
// amount and records it as a pending payment.
func (s *paymentService) Checkout(ctx context.Context, invoiceID string) (domain.CheckoutResponse, error) {
	if s.midtransService == nil {
		return domain.CheckoutResponse{}, domain.ErrPaymentGatewayUnavailable
	}

	inv, err := s.invoiceService.GetInvoiceByID(ctx, invoiceID)
	if err != nil {
		return domain.CheckoutResponse{}, err
	}
	if inv.Status == domain.InvoiceStatusPaid || inv.Status == domain.InvoiceStatusCancelled {
		return domain.CheckoutResponse{}, domain.ErrInvoiceAlreadySettled
	}
	if !inv.Outstanding.IsPositive() {
		return domain.CheckoutResponse{}, domain.ErrNothingOutstanding
	}

	// Snap takes whole currency units
	amount := inv.Outstanding.Ceil()
	orderID := fmt.Sprintf("%s-%d", inv.Number, time.Now().UnixMilli())

	var phone string
	if c, err := s.customerRepository.GetCustomerByID(ctx, inv.CustomerID); err == nil {
		phone = c.Phone
	}

	resp, err := s.midtransService.CreateTransaction(ctx, domain.MidtransPaymentRequest{
		OrderID:      orderID,
		Amount:       amount.IntPart(),
		CustomerName: inv.CustomerName,
		Email:        inv.CustomerEmail,
		Phone:        phone,
		ItemName:     "Invoice " + inv.Number,
	})
	if err != nil {
		return domain.CheckoutResponse{}, err
	}

	invID := uuid.MustParse(inv.ID)
	payment := &entities.Payment{
		ID:              uuid.New(),
		CustomerID:      uuid.MustParse(inv.CustomerID),
		InvoiceID:       &invID,
		Amount:          amount,
		Currency:        inv.Currency,
		Method:          domain.PaymentMethodMidtrans,
		Status:          domain.PaymentStatusPending,
		MidtransOrderID: &orderID,
		RedirectURL:     resp.RedirectURL,
	}
	if err := s.paymentRepository.CreatePayment(ctx, payment); err != nil {
		return domain.CheckoutResponse{}, err
	}

	return domain.CheckoutResponse{
		PaymentID:   payment.ID.String(),
		OrderID:     orderID,
		Amount:      amount,
		Token:       resp.Token,
		RedirectURL: resp.RedirectURL,
	}, nil
}

// HandleNotification applies a Midtrans HTTP notification. Repeated or
// out-of-order notifications that would move a payment backwards are
// acknowledged and ignored.
func (s *paymentService) HandleNotification(ctx context.Context, n domain.MidtransNotification) error {
	if s.midtransService == nil {
		return domain.ErrPaymentGatewayUnavailable
	}
	if !s.midtransService.VerifySignature(n) {
		return domain.ErrInvalidSignature
	}

	payment, err := s.paymentRepository.GetPaymentByOrderID(ctx, n.OrderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrPaymentNotFound
		}
		return err
	}

	return s.applyGatewayStatus(ctx, payment, n)
}

// SyncPayment asks Midtrans for the current transaction status of a
// checkout payment and applies it.
func (s *paymentService) SyncPayment(ctx context.Context, id string) (domain.PaymentResponse, error) {
	payment, err := s.getPayment(ctx, id)
	if err != nil {
		return domain.PaymentResponse{}, err
	}
	if payment.Method != domain.PaymentMethodMidtrans || payment.MidtransOrderID == nil {
		return domain.PaymentResponse{}, domain.ErrPaymentNotMidtrans
	}
	if s.midtransService == nil {
		return domain.PaymentResponse{}, domain.ErrPaymentGatewayUnavailable
	}

	n, err := s.midtransService.CheckTransaction(ctx, *payment.MidtransOrderID)
	if err != nil {
		return domain.PaymentResponse{}, err
	}
	if err := s.applyGatewayStatus(ctx, payment, n); err != nil {
		return domain.PaymentResponse{}, err
	}
	return toPaymentResponse(payment), nil
}

func (s *paymentService) applyGatewayStatus(ctx context.Context, payment *entities.Payment, n domain.MidtransNotification) error {
	status, err := midtrans.MapStatus(n.TransactionStatus, n.FraudStatus)
	if err != nil {
		return err
	}
	if status == payment.Status {
		return nil
	}
	if !canTransition(payment.Status, status) {
		log.Warnf("midtrans order %s: ignoring %s -> %s", n.OrderID, payment.Status, status)
		return nil
	}

	var settledAt *time.Time
	if t, err := time.Parse(midtransTimeLayout, n.SettlementTime); err == nil {
		settledAt = &t
	}
	applyStatus(payment, status, settledAt)
	if n.TransactionID != "" {
		payment.Reference = n.TransactionID
	}

	if err := s.paymentRepository.UpdatePayment(ctx, payment); err != nil {
		return err
	}
	log.Infof("midtrans order %s is now %s", n.OrderID, status)
	s.settle(ctx, payment)
	return nil
}

// settle recomputes the linked invoice's paid state. Failures are logged;
// the payment change itself has already been stored.
func (s *paymentService) settle(ctx context.Context, payment *entities.Payment) {
	if payment.InvoiceID == nil {
		return
	}
	if err := s.invoiceService.SettleInvoice(ctx, payment.InvoiceID.String()); err != nil {
		log.Errorf("settle invoice %s: %v", payment.InvoiceID, err)
	}
}

func (s *paymentService) getPayment(ctx context.Context, id string) (*entities.Payment, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrParseUUID
	}
	payment, err := s.paymentRepository.GetPaymentByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrPaymentNotFound
		}
		return nil, err
	}
	return payment, nil
}

func applyStatus(payment *entities.Payment, status string, at *time.Time) {
	payment.Status = status
	if status == domain.PaymentStatusCompleted && payment.PaidAt == nil {
		if at == nil {
			now := time.Now()
			at = &now
		}
		payment.PaidAt = at
	}
}

func toPaymentResponse(p *entities.Payment) domain.PaymentResponse {
	res := domain.PaymentResponse{
		ID:          p.ID.String(),
		CustomerID:  p.CustomerID.String(),
		Amount:      p.Amount,
		Currency:    p.Currency,
		Method:      p.Method,
		Status:      p.Status,
		Reference:   p.Reference,
		PaidAt:      p.PaidAt,
		Notes:       p.Notes,
		RedirectURL: p.RedirectURL,
		CreatedAt:   p.CreatedAt,
	}
	if p.InvoiceID != nil {
		res.InvoiceID = p.InvoiceID.String()
	}
	if p.MidtransOrderID != nil {
		res.MidtransOrderID = *p.MidtransOrderID
	}
	return res
}
