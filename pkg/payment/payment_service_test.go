package payment

import (
	"context"
	"fitcoach-backend/domain"
	"fitcoach-backend/entities"
	"fitcoach-backend/internal/utils/mailing"
	"fitcoach-backend/internal/utils/storage"
	"fitcoach-backend/internal/utils/testdb"
	"fitcoach-backend/pkg/customer"
	"fitcoach-backend/pkg/invoice"
	"fitcoach-backend/pkg/midtrans"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const serverKey = "SB-Mid-server-test"

type fakeGateway struct {
	requests []domain.MidtransPaymentRequest
	status   domain.MidtransNotification
}

func (f *fakeGateway) CreateTransaction(_ context.Context, req domain.MidtransPaymentRequest) (domain.MidtransPaymentResponse, error) {
	f.requests = append(f.requests, req)
	return domain.MidtransPaymentResponse{
		Token:       "snap-token",
		RedirectURL: "https://app.sandbox.midtrans.com/snap/v2/vtweb/snap-token",
	}, nil
}

func (f *fakeGateway) CheckTransaction(_ context.Context, orderID string) (domain.MidtransNotification, error) {
	n := f.status
	n.OrderID = orderID
	return n, nil
}

func (f *fakeGateway) VerifySignature(n domain.MidtransNotification) bool {
	return n.SignatureKey == midtrans.Signature(n.OrderID, n.StatusCode, n.GrossAmount, serverKey)
}

type noopMailer struct{}

func (noopMailer) SendMail(string, string, string, ...mailing.Attachment) error { return nil }

type fixture struct {
	db         *gorm.DB
	svc        PaymentService
	invoices   invoice.InvoiceService
	gateway    *fakeGateway
	customerID string
	invoiceID  string
}

func newFixture(t *testing.T, withGateway bool) fixture {
	db := testdb.New(t)
	c := entities.Customer{ID: uuid.New(), Name: "Rina", Email: "rina@example.com", Phone: "0812", Status: domain.CustomerStatusActive}
	require.NoError(t, db.Create(&c).Error)

	customers := customer.NewCustomerRepository(db)
	invoices := invoice.NewInvoiceService(invoice.NewInvoiceRepository(db), customers, nil, storage.Disabled(), noopMailer{})

	inv, err := invoices.CreateInvoice(context.Background(), domain.CreateInvoiceRequest{
		CustomerID: c.ID.String(),
		IssueDate:  "2026-04-01",
		Items: []domain.InvoiceItemRequest{
			{Description: "Personal training session", Quantity: "2", UnitPrice: "450000"},
			{Description: "Nutrition plan", Quantity: "1", UnitPrice: "300000"},
		},
	})
	require.NoError(t, err)

	f := fixture{db: db, invoices: invoices, customerID: c.ID.String(), invoiceID: inv.ID}
	var gateway midtrans.MidtransService
	if withGateway {
		f.gateway = &fakeGateway{}
		gateway = f.gateway
	}
	f.svc = NewPaymentService(NewPaymentRepository(db), customers, invoices, gateway)
	return f
}

func (f fixture) invoiceStatus(t *testing.T) string {
	inv, err := f.invoices.GetInvoiceByID(context.Background(), f.invoiceID)
	require.NoError(t, err)
	return inv.Status
}

func signed(n domain.MidtransNotification) domain.MidtransNotification {
	n.SignatureKey = midtrans.Signature(n.OrderID, n.StatusCode, n.GrossAmount, serverKey)
	return n
}

func TestManualPaymentSettlesInvoice(t *testing.T) {
	f := newFixture(t, false)
	ctx := context.Background()

	first, err := f.svc.CreatePayment(ctx, domain.CreatePaymentRequest{
		CustomerID: f.customerID, InvoiceID: f.invoiceID, Amount: "1000000", Method: domain.PaymentMethodBankTransfer,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentStatusCompleted, first.Status)
	assert.NotNil(t, first.PaidAt)
	assert.Equal(t, domain.InvoiceStatusDraft, f.invoiceStatus(t))

	_, err = f.svc.CreatePayment(ctx, domain.CreatePaymentRequest{
		CustomerID: f.customerID, InvoiceID: f.invoiceID, Amount: "332000", Method: domain.PaymentMethodCash, PaidAt: "2026-04-03",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.InvoiceStatusPaid, f.invoiceStatus(t))

	refunded := domain.PaymentStatusRefunded
	_, err = f.svc.UpdatePayment(ctx, first.ID, domain.UpdatePaymentRequest{Status: &refunded})
	require.NoError(t, err)
	assert.Equal(t, domain.InvoiceStatusSent, f.invoiceStatus(t))
}

func TestCreatePaymentValidation(t *testing.T) {
	f := newFixture(t, false)
	ctx := context.Background()

	_, err := f.svc.CreatePayment(ctx, domain.CreatePaymentRequest{
		CustomerID: f.customerID, Amount: "0", Method: domain.PaymentMethodCash,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)

	_, err = f.svc.CreatePayment(ctx, domain.CreatePaymentRequest{
		CustomerID: uuid.NewString(), Amount: "10", Method: domain.PaymentMethodCash,
	})
	assert.ErrorIs(t, err, domain.ErrCustomerNotFound)

	other, err := customer.NewCustomerService(customer.NewCustomerRepository(f.db)).CreateCustomer(ctx, domain.CreateCustomerRequest{Name: "Other", Email: "other@example.com"})
	require.NoError(t, err)
	_, err = f.svc.CreatePayment(ctx, domain.CreatePaymentRequest{
		CustomerID: other.ID, InvoiceID: f.invoiceID, Amount: "10", Method: domain.PaymentMethodCash,
	})
	assert.ErrorIs(t, err, domain.ErrPaymentCustomerMismatch)
}

func TestPaymentStatusTransitions(t *testing.T) {
	f := newFixture(t, false)
	ctx := context.Background()

	p, err := f.svc.CreatePayment(ctx, domain.CreatePaymentRequest{
		CustomerID: f.customerID, Amount: "250000", Method: domain.PaymentMethodCard, Status: domain.PaymentStatusPending,
	})
	require.NoError(t, err)
	assert.Nil(t, p.PaidAt)

	step := func(status string) error {
		_, err := f.svc.UpdatePayment(ctx, p.ID, domain.UpdatePaymentRequest{Status: &status})
		return err
	}

	require.NoError(t, step(domain.PaymentStatusFailed))
	assert.ErrorIs(t, step(domain.PaymentStatusCompleted), domain.ErrPaymentStatusTransition)
	require.NoError(t, step(domain.PaymentStatusPending))
	require.NoError(t, step(domain.PaymentStatusCompleted))
	assert.ErrorIs(t, step(domain.PaymentStatusPending), domain.ErrPaymentStatusTransition)

	assert.ErrorIs(t, f.svc.DeletePayment(ctx, p.ID), domain.ErrPaymentNotDeletable)

	got, err := f.svc.GetPaymentByID(ctx, p.ID)
	require.NoError(t, err)
	assert.NotNil(t, got.PaidAt)

	pending, err := f.svc.CreatePayment(ctx, domain.CreatePaymentRequest{
		CustomerID: f.customerID, Amount: "1", Method: domain.PaymentMethodCash, Status: domain.PaymentStatusPending,
	})
	require.NoError(t, err)
	require.NoError(t, f.svc.DeletePayment(ctx, pending.ID))
	_, err = f.svc.GetPaymentByID(ctx, pending.ID)
	assert.ErrorIs(t, err, domain.ErrPaymentNotFound)

	list, total, err := f.svc.GetPayments(ctx, domain.PaymentFilter{CustomerID: f.customerID, Page: 1, Limit: 20})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	assert.Len(t, list, 1)
}

func TestCheckoutAndWebhook(t *testing.T) {
	f := newFixture(t, true)
	ctx := context.Background()

	_, err := f.svc.CreatePayment(ctx, domain.CreatePaymentRequest{
		CustomerID: f.customerID, InvoiceID: f.invoiceID, Amount: "332000", Method: domain.PaymentMethodCash,
	})
	require.NoError(t, err)

	checkout, err := f.svc.Checkout(ctx, f.invoiceID)
	require.NoError(t, err)
	assert.Equal(t, "1000000", checkout.Amount.String())
	assert.Equal(t, "snap-token", checkout.Token)
	assert.Contains(t, checkout.OrderID, "INV-2026-0001-")
	require.Len(t, f.gateway.requests, 1)
	assert.EqualValues(t, 1000000, f.gateway.requests[0].Amount)
	assert.Equal(t, "rina@example.com", f.gateway.requests[0].Email)
	assert.Equal(t, "0812", f.gateway.requests[0].Phone)

	pending, err := f.svc.GetPaymentByID(ctx, checkout.PaymentID)
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentStatusPending, pending.Status)
	assert.Equal(t, domain.PaymentMethodMidtrans, pending.Method)

	settlement := domain.MidtransNotification{
		OrderID: checkout.OrderID, StatusCode: "200", GrossAmount: "1000000.00",
		TransactionStatus: "settlement", TransactionID: "tx-1", SettlementTime: "2026-04-05 10:11:12",
	}

	forged := settlement
	forged.SignatureKey = "deadbeef"
	assert.ErrorIs(t, f.svc.HandleNotification(ctx, forged), domain.ErrInvalidSignature)

	require.NoError(t, f.svc.HandleNotification(ctx, signed(settlement)))
	done, err := f.svc.GetPaymentByID(ctx, checkout.PaymentID)
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentStatusCompleted, done.Status)
	assert.Equal(t, "tx-1", done.Reference)
	require.NotNil(t, done.PaidAt)
	assert.Equal(t, 5, done.PaidAt.Day())
	assert.Equal(t, domain.InvoiceStatusPaid, f.invoiceStatus(t))

	// a late pending notification does not move the payment back
	late := settlement
	late.TransactionStatus = "pending"
	late.StatusCode = "201"
	require.NoError(t, f.svc.HandleNotification(ctx, signed(late)))
	done, err = f.svc.GetPaymentByID(ctx, checkout.PaymentID)
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentStatusCompleted, done.Status)

	_, err = f.svc.Checkout(ctx, f.invoiceID)
	assert.ErrorIs(t, err, domain.ErrInvoiceAlreadySettled)

	unknown := signed(domain.MidtransNotification{OrderID: "INV-0000", StatusCode: "200", GrossAmount: "1", TransactionStatus: "settlement"})
	assert.ErrorIs(t, f.svc.HandleNotification(ctx, unknown), domain.ErrPaymentNotFound)
}

func TestSyncPayment(t *testing.T) {
	f := newFixture(t, true)
	ctx := context.Background()

	checkout, err := f.svc.Checkout(ctx, f.invoiceID)
	require.NoError(t, err)

	f.gateway.status = domain.MidtransNotification{TransactionStatus: "expire", StatusCode: "407"}
	synced, err := f.svc.SyncPayment(ctx, checkout.PaymentID)
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentStatusFailed, synced.Status)
	assert.Equal(t, domain.InvoiceStatusDraft, f.invoiceStatus(t))

	manual, err := f.svc.CreatePayment(ctx, domain.CreatePaymentRequest{
		CustomerID: f.customerID, Amount: "1", Method: domain.PaymentMethodCash,
	})
	require.NoError(t, err)
	_, err = f.svc.SyncPayment(ctx, manual.ID)
	assert.ErrorIs(t, err, domain.ErrPaymentNotMidtrans)
}

func TestCheckoutWithoutGateway(t *testing.T) {
	f := newFixture(t, false)

	_, err := f.svc.Checkout(context.Background(), f.invoiceID)
	assert.ErrorIs(t, err, domain.ErrPaymentGatewayUnavailable)
}
