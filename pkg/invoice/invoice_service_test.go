package invoice

import (
	"context"
	"errors"
	"fitcoach-backend/domain"
	"fitcoach-backend/entities"
	"fitcoach-backend/internal/utils/mailing"
	"fitcoach-backend/internal/utils/storage"
	"fitcoach-backend/internal/utils/testdb"
	"fitcoach-backend/pkg/customer"
	"mime/multipart"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeRenderer struct {
	html []string
}

func (f *fakeRenderer) RenderPDF(_ context.Context, html string) ([]byte, error) {
	f.html = append(f.html, html)
	return []byte("%PDF-1.4 fake"), nil
}

type fakeMailer struct {
	to          string
	subject     string
	body        string
	attachments []mailing.Attachment
	err         error
}

func (f *fakeMailer) SendMail(to, subject, body string, attachments ...mailing.Attachment) error {
	if f.err != nil {
		return f.err
	}
	f.to, f.subject, f.body, f.attachments = to, subject, body, attachments
	return nil
}

type fakeStorage struct {
	storage.AwsS3
	keys []string
}

func (f *fakeStorage) UploadBytes(fileName string, _ []byte, _ string, folder string) (string, error) {
	key := folder + "/" + fileName
	f.keys = append(f.keys, key)
	return key, nil
}

func (f *fakeStorage) UploadFile(string, *multipart.FileHeader, string, ...string) (string, error) {
	return "", errors.New("not used")
}

func (f *fakeStorage) GetPublicLinkKey(objectKey string) string {
	return "https://cdn.test/" + objectKey
}

type fixture struct {
	svc        InvoiceService
	db         *gorm.DB
	renderer   *fakeRenderer
	mailer     *fakeMailer
	storage    *fakeStorage
	customerID string
}

func newFixture(t *testing.T) fixture {
	db := testdb.New(t)
	c := entities.Customer{ID: uuid.New(), Name: "Rina", Email: "rina@example.com", Status: domain.CustomerStatusActive}
	require.NoError(t, db.Create(&c).Error)

	f := fixture{
		db:         db,
		renderer:   &fakeRenderer{},
		mailer:     &fakeMailer{},
		storage:    &fakeStorage{},
		customerID: c.ID.String(),
	}
	f.svc = NewInvoiceService(NewInvoiceRepository(db), customer.NewCustomerRepository(db), f.renderer, f.storage, f.mailer)
	return f
}

func coachingItems() []domain.InvoiceItemRequest {
	return []domain.InvoiceItemRequest{
		{Description: "Personal training session", Quantity: "2", UnitPrice: "450000"},
		{Description: "Nutrition plan", Quantity: "1", UnitPrice: "300000"},
	}
}

func TestCreateInvoiceNumbersAndTotals(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	first, err := f.svc.CreateInvoice(ctx, domain.CreateInvoiceRequest{
		CustomerID: f.customerID, IssueDate: "2026-03-01", Items: coachingItems(),
	})
	require.NoError(t, err)
	assert.Equal(t, "INV-2026-0001", first.Number)
	assert.Equal(t, domain.InvoiceStatusDraft, first.Status)
	assert.Equal(t, "2026-03-15", first.DueDate.Format(domain.DateLayout))
	assert.Equal(t, "IDR", first.Currency)
	assert.Equal(t, "1200000.00", first.Subtotal.StringFixed(2))
	assert.Equal(t, "132000.00", first.VATAmount.StringFixed(2))
	assert.Equal(t, "1332000.00", first.Total.StringFixed(2))
	assert.Equal(t, "1332000.00", first.Outstanding.StringFixed(2))
	assert.Equal(t, "Rina", first.CustomerName)
	require.Len(t, first.Items, 2)
	assert.Equal(t, "900000.00", first.Items[0].Amount.StringFixed(2))

	second, err := f.svc.CreateInvoice(ctx, domain.CreateInvoiceRequest{
		CustomerID: f.customerID, IssueDate: "2026-12-30", VATPercent: "0", Items: coachingItems(),
	})
	require.NoError(t, err)
	assert.Equal(t, "INV-2026-0002", second.Number)
	assert.Equal(t, "1200000.00", second.Total.StringFixed(2))

	nextYear, err := f.svc.CreateInvoice(ctx, domain.CreateInvoiceRequest{
		CustomerID: f.customerID, IssueDate: "2027-01-02", Items: coachingItems(),
	})
	require.NoError(t, err)
	assert.Equal(t, "INV-2027-0001", nextYear.Number)

	// numbers of deleted invoices are not reused
	require.NoError(t, f.svc.DeleteInvoice(ctx, second.ID))
	third, err := f.svc.CreateInvoice(ctx, domain.CreateInvoiceRequest{
		CustomerID: f.customerID, IssueDate: "2026-06-01", Items: coachingItems(),
	})
	require.NoError(t, err)
	assert.Equal(t, "INV-2026-0003", third.Number)
}

func TestCreateInvoiceNumbersPastFourDigits(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	customerID := uuid.MustParse(f.customerID)
	for _, number := range []string{"INV-2026-9999", "INV-2026-10000"} {
		require.NoError(t, f.db.Create(&entities.Invoice{
			ID: uuid.New(), Number: number, CustomerID: customerID, Currency: "IDR", Status: domain.InvoiceStatusDraft,
		}).Error)
	}

	res, err := f.svc.CreateInvoice(ctx, domain.CreateInvoiceRequest{
		CustomerID: f.customerID, IssueDate: "2026-04-01", Items: coachingItems(),
	})
	require.NoError(t, err)
	assert.Equal(t, "INV-2026-10001", res.Number)
}

func TestCreateInvoiceValidation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.CreateInvoice(ctx, domain.CreateInvoiceRequest{
		CustomerID: f.customerID, IssueDate: "2026-03-10", DueDate: "2026-03-01", Items: coachingItems(),
	})
	assert.ErrorIs(t, err, domain.ErrInvoiceDueBeforeIssue)

	_, err = f.svc.CreateInvoice(ctx, domain.CreateInvoiceRequest{CustomerID: f.customerID})
	assert.ErrorIs(t, err, domain.ErrInvoiceNoItems)

	_, err = f.svc.CreateInvoice(ctx, domain.CreateInvoiceRequest{CustomerID: f.customerID, VATPercent: "120", Items: coachingItems()})
	assert.ErrorIs(t, err, domain.ErrInvalidPercent)

	_, err = f.svc.CreateInvoice(ctx, domain.CreateInvoiceRequest{CustomerID: uuid.NewString(), Items: coachingItems()})
	assert.ErrorIs(t, err, domain.ErrCustomerNotFound)
}

func TestUpdateInvoiceOnlyWhileDraft(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	inv, err := f.svc.CreateInvoice(ctx, domain.CreateInvoiceRequest{CustomerID: f.customerID, Items: coachingItems()})
	require.NoError(t, err)

	items := []domain.InvoiceItemRequest{{Description: "Monthly coaching", Quantity: "1", UnitPrice: "1000000"}}
	vat := "10"
	updated, err := f.svc.UpdateInvoice(ctx, inv.ID, domain.UpdateInvoiceRequest{Items: &items, VATPercent: &vat})
	require.NoError(t, err)
	require.Len(t, updated.Items, 1)
	assert.Equal(t, "1100000.00", updated.Total.StringFixed(2))

	reloaded, err := f.svc.GetInvoiceByID(ctx, inv.ID)
	require.NoError(t, err)
	require.Len(t, reloaded.Items, 1)
	assert.Equal(t, "Monthly coaching", reloaded.Items[0].Description)

	sent := domain.InvoiceStatusSent
	updated, err = f.svc.UpdateInvoice(ctx, inv.ID, domain.UpdateInvoiceRequest{Status: &sent})
	require.NoError(t, err)
	assert.Equal(t, domain.InvoiceStatusSent, updated.Status)
	assert.NotNil(t, updated.SentAt)

	notes := "late edit"
	_, err = f.svc.UpdateInvoice(ctx, inv.ID, domain.UpdateInvoiceRequest{Notes: &notes})
	assert.ErrorIs(t, err, domain.ErrInvoiceNotEditable)

	cancelled := domain.InvoiceStatusCancelled
	updated, err = f.svc.UpdateInvoice(ctx, inv.ID, domain.UpdateInvoiceRequest{Status: &cancelled})
	require.NoError(t, err)
	assert.True(t, updated.Outstanding.IsZero())

	paid := domain.InvoiceStatusPaid
	_, err = f.svc.UpdateInvoice(ctx, inv.ID, domain.UpdateInvoiceRequest{Status: &paid})
	assert.ErrorIs(t, err, domain.ErrInvoiceStatusTransition)
}

func TestDeleteInvoiceWithPaymentsIsRejected(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	inv, err := f.svc.CreateInvoice(ctx, domain.CreateInvoiceRequest{CustomerID: f.customerID, Items: coachingItems()})
	require.NoError(t, err)
	addPayment(t, f, inv.ID, "100000", domain.PaymentStatusPending)

	assert.ErrorIs(t, f.svc.DeleteInvoice(ctx, inv.ID), domain.ErrInvoiceHasPayments)
	assert.ErrorIs(t, f.svc.DeleteInvoice(ctx, uuid.NewString()), domain.ErrInvoiceNotFound)
}

func TestSendInvoiceMailsPDF(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	inv, err := f.svc.CreateInvoice(ctx, domain.CreateInvoiceRequest{
		CustomerID: f.customerID, IssueDate: "2026-05-04", Notes: "<script>x</script>", Items: coachingItems(),
	})
	require.NoError(t, err)

	sent, err := f.svc.SendInvoice(ctx, inv.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.InvoiceStatusSent, sent.Status)
	assert.Equal(t, "https://cdn.test/invoices/INV-2026-0001.pdf", sent.PDFURL)
	assert.NotNil(t, sent.SentAt)

	assert.Equal(t, "rina@example.com", f.mailer.to)
	assert.Equal(t, "FitCoach invoice INV-2026-0001", f.mailer.subject)
	assert.Contains(t, f.mailer.body, "<strong>INV-2026-0001</strong>")
	require.Len(t, f.mailer.attachments, 1)
	assert.Equal(t, "INV-2026-0001.pdf", f.mailer.attachments[0].FileName)

	require.Len(t, f.renderer.html, 1)
	html := f.renderer.html[0]
	assert.Contains(t, html, "IDR 900000.00")
	assert.Contains(t, html, "IDR 1332000.00")
	assert.Contains(t, html, "4 May 2026")
	assert.NotContains(t, html, "<script>x</script>")
}

func TestSendInvoiceFailures(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	inv, err := f.svc.CreateInvoice(ctx, domain.CreateInvoiceRequest{CustomerID: f.customerID, Items: coachingItems()})
	require.NoError(t, err)

	f.mailer.err = errors.New("smtp down")
	_, err = f.svc.SendInvoice(ctx, inv.ID)
	assert.Error(t, err)
	still, err := f.svc.GetInvoiceByID(ctx, inv.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.InvoiceStatusDraft, still.Status)

	noRenderer := NewInvoiceService(NewInvoiceRepository(f.db), customer.NewCustomerRepository(f.db), nil, f.storage, f.mailer)
	_, _, err = noRenderer.RenderPDF(ctx, inv.ID)
	assert.ErrorIs(t, err, domain.ErrPDFRendererUnavailable)

	pdf, name, err := f.svc.RenderPDF(ctx, inv.ID)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(pdf), "%PDF"))
	assert.Equal(t, "INV-"+still.IssueDate.Format("2006")+"-0001.pdf", name)
}

func TestSettleInvoice(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	inv, err := f.svc.CreateInvoice(ctx, domain.CreateInvoiceRequest{CustomerID: f.customerID, Items: coachingItems()})
	require.NoError(t, err)

	partial := addPayment(t, f, inv.ID, "1000000", domain.PaymentStatusCompleted)
	require.NoError(t, f.svc.SettleInvoice(ctx, inv.ID))
	got, err := f.svc.GetInvoiceByID(ctx, inv.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.InvoiceStatusDraft, got.Status)
	assert.Equal(t, "332000.00", got.Outstanding.StringFixed(2))

	addPayment(t, f, inv.ID, "332000", domain.PaymentStatusCompleted)
	require.NoError(t, f.svc.SettleInvoice(ctx, inv.ID))
	got, err = f.svc.GetInvoiceByID(ctx, inv.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.InvoiceStatusPaid, got.Status)
	assert.NotNil(t, got.PaidAt)
	assert.True(t, got.Outstanding.IsZero())

	require.NoError(t, f.db.Model(&entities.Payment{}).Where("id = ?", partial).
		Update("status", domain.PaymentStatusRefunded).Error)
	require.NoError(t, f.svc.SettleInvoice(ctx, inv.ID))
	got, err = f.svc.GetInvoiceByID(ctx, inv.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.InvoiceStatusSent, got.Status)
	assert.Nil(t, got.PaidAt)
}

func TestBuildItemsRoundsLineAmounts(t *testing.T) {
	items, err := buildItems(uuid.New(), []domain.InvoiceItemRequest{{Description: "Supplements", Quantity: "1.5", UnitPrice: "99.99"}})
	require.NoError(t, err)
	assert.Equal(t, "149.99", items[0].Amount.StringFixed(2))

	_, err = buildItems(uuid.New(), []domain.InvoiceItemRequest{{Description: "Nothing", Quantity: "0", UnitPrice: "10"}})
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)
}

func addPayment(t *testing.T, f fixture, invoiceID, amount, status string) uuid.UUID {
	id := uuid.MustParse(invoiceID)
	payment := entities.Payment{
		ID:         uuid.New(),
		CustomerID: uuid.MustParse(f.customerID),
		InvoiceID:  &id,
		Amount:     decimal.RequireFromString(amount),
		Currency:   "IDR",
		Method:     domain.PaymentMethodBankTransfer,
		Status:     status,
	}
	require.NoError(t, f.db.Create(&payment).Error)
	return payment.ID
}
