package customer

import (
	"context"
	"encoding/json"
	"errors"
	"fitcoach-backend/domain"
	"fitcoach-backend/entities"
	"fitcoach-backend/internal/utils/mailing"
	"fitcoach-backend/internal/utils/testdb"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type sentMail struct {
	to, subject, body string
}

type fakeMailer struct {
	sent []sentMail
	err  error
}

func (f *fakeMailer) SendMail(to, subject, body string, _ ...mailing.Attachment) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, sentMail{to: to, subject: subject, body: body})
	return nil
}

func newCustomerService(t *testing.T) (CustomerService, *gorm.DB) {
	db := testdb.New(t)
	return NewCustomerService(NewCustomerRepository(db)), db
}

func TestCreateCustomerNormalizesEmail(t *testing.T) {
	svc, _ := newCustomerService(t)
	ctx := context.Background()

	created, err := svc.CreateCustomer(ctx, domain.CreateCustomerRequest{
		Name:      " Dewi Lestari ",
		Email:     "Dewi@Example.com ",
		BirthDate: "1990-04-12",
	})
	require.NoError(t, err)
	assert.Equal(t, "Dewi Lestari", created.Name)
	assert.Equal(t, "dewi@example.com", created.Email)
	assert.Equal(t, domain.CustomerStatusActive, created.Status)
	assert.Equal(t, domain.CustomerSourceAdmin, created.Source)
	require.NotNil(t, created.BirthDate)
	assert.Equal(t, 1990, created.BirthDate.Year())

	_, err = svc.CreateCustomer(ctx, domain.CreateCustomerRequest{Name: "Dupe", Email: "DEWI@example.com"})
	assert.ErrorIs(t, err, domain.ErrCustomerEmailExists)
}

func TestUpdateCustomerPatchesOnlyGivenFields(t *testing.T) {
	svc, _ := newCustomerService(t)
	ctx := context.Background()

	a, err := svc.CreateCustomer(ctx, domain.CreateCustomerRequest{Name: "A", Email: "a@example.com", Goal: "lose", WeightKg: 80})
	require.NoError(t, err)
	_, err = svc.CreateCustomer(ctx, domain.CreateCustomerRequest{Name: "B", Email: "b@example.com"})
	require.NoError(t, err)

	weight := 78.5
	paused := domain.CustomerStatusPaused
	updated, err := svc.UpdateCustomer(ctx, a.ID, domain.UpdateCustomerRequest{WeightKg: &weight, Status: &paused})
	require.NoError(t, err)
	assert.Equal(t, 78.5, updated.WeightKg)
	assert.Equal(t, "lose", updated.Goal)
	assert.Equal(t, domain.CustomerStatusPaused, updated.Status)

	taken := "b@example.com"
	_, err = svc.UpdateCustomer(ctx, a.ID, domain.UpdateCustomerRequest{Email: &taken})
	assert.ErrorIs(t, err, domain.ErrCustomerEmailExists)

	_, err = svc.UpdateCustomer(ctx, uuid.NewString(), domain.UpdateCustomerRequest{})
	assert.ErrorIs(t, err, domain.ErrCustomerNotFound)

	_, err = svc.UpdateCustomer(ctx, "nope", domain.UpdateCustomerRequest{})
	assert.ErrorIs(t, err, domain.ErrParseUUID)
}

func TestGetCustomersFiltersAndPaginates(t *testing.T) {
	svc, _ := newCustomerService(t)
	ctx := context.Background()

	for _, c := range []domain.CreateCustomerRequest{
		{Name: "Budi Santoso", Email: "budi@example.com"},
		{Name: "Sari Wulan", Email: "sari@example.com", Status: domain.CustomerStatusLead},
		{Name: "Agus Budiman", Email: "agus@example.com", Status: domain.CustomerStatusLead},
	} {
		_, err := svc.CreateCustomer(ctx, c)
		require.NoError(t, err)
	}

	leads, total, err := svc.GetCustomers(ctx, domain.CustomerFilter{Status: domain.CustomerStatusLead, Page: 1, Limit: 20})
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	assert.Len(t, leads, 2)

	found, total, err := svc.GetCustomers(ctx, domain.CustomerFilter{Search: "budi", Page: 1, Limit: 20})
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	assert.Len(t, found, 2)

	page, total, err := svc.GetCustomers(ctx, domain.CustomerFilter{Page: 2, Limit: 2})
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	assert.Len(t, page, 1)
}

func TestDeleteCustomerIsSoft(t *testing.T) {
	svc, db := newCustomerService(t)
	ctx := context.Background()

	c, err := svc.CreateCustomer(ctx, domain.CreateCustomerRequest{Name: "Gone", Email: "gone@example.com"})
	require.NoError(t, err)
	require.NoError(t, svc.DeleteCustomer(ctx, c.ID))

	_, err = svc.GetCustomerDetail(ctx, c.ID)
	assert.ErrorIs(t, err, domain.ErrCustomerNotFound)

	var count int64
	require.NoError(t, db.Unscoped().Model(&entities.Customer{}).Where("id = ?", c.ID).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestGetCustomerDetailIncludesRelations(t *testing.T) {
	svc, db := newCustomerService(t)
	ctx := context.Background()

	c, err := svc.CreateCustomer(ctx, domain.CreateCustomerRequest{Name: "Rina", Email: "rina@example.com"})
	require.NoError(t, err)
	customerID := uuid.MustParse(c.ID)

	require.NoError(t, db.Create(&entities.NutritionPlan{ID: uuid.New(), CustomerID: &customerID, Title: "Cut week 1", Status: domain.PlanStatusActive}).Error)
	invoice := entities.Invoice{
		ID: uuid.New(), Number: "INV-2026-0001", CustomerID: customerID,
		IssueDate: time.Now(), DueDate: time.Now(), Currency: "IDR",
		Total: decimal.NewFromInt(1110000), Status: domain.InvoiceStatusSent,
	}
	require.NoError(t, db.Create(&invoice).Error)
	require.NoError(t, db.Create(&entities.Payment{
		ID: uuid.New(), CustomerID: customerID, InvoiceID: &invoice.ID,
		Amount: decimal.NewFromInt(500000), Currency: "IDR",
		Method: domain.PaymentMethodCash, Status: domain.PaymentStatusCompleted,
	}).Error)

	detail, err := svc.GetCustomerDetail(ctx, c.ID)
	require.NoError(t, err)
	require.Len(t, detail.Plans, 1)
	assert.Equal(t, "Cut week 1", detail.Plans[0].Title)
	require.Len(t, detail.Invoices, 1)
	assert.Equal(t, "INV-2026-0001", detail.Invoices[0].Number)
	require.Len(t, detail.Payments, 1)
	assert.Equal(t, invoice.ID.String(), detail.Payments[0].InvoiceID)
	assert.True(t, detail.Payments[0].Amount.Equal(decimal.NewFromInt(500000)))
}

func TestSubmitIntakeCreatesLeadAndNotifiesCoach(t *testing.T) {
	db := testdb.New(t)
	repo := NewCustomerRepository(db)
	mailer := &fakeMailer{}
	svc := NewIntakeService(repo, mailer, "coach@example.com")
	ctx := context.Background()

	res, err := svc.SubmitIntake(ctx, domain.IntakeRequest{
		Name: "Putri", Email: "Putri@Example.com", Age: 29, WeightKg: 64,
		Goal: "lose", Injuries: "left knee", Message: "I train **mornings**.",
	})
	require.NoError(t, err)
	assert.True(t, res.IsNew)

	customer, err := repo.GetCustomerByID(ctx, res.CustomerID)
	require.NoError(t, err)
	assert.Equal(t, "putri@example.com", customer.Email)
	assert.Equal(t, domain.CustomerStatusLead, customer.Status)
	assert.Equal(t, domain.CustomerSourceIntake, customer.Source)

	var answers map[string]any
	require.NoError(t, json.Unmarshal([]byte(customer.IntakeAnswers), &answers))
	assert.Equal(t, "left knee", answers["injuries"])
	assert.EqualValues(t, 29, answers["age"])

	require.Len(t, mailer.sent, 1)
	assert.Equal(t, "coach@example.com", mailer.sent[0].to)
	assert.Equal(t, "New intake: Putri", mailer.sent[0].subject)
	assert.Contains(t, mailer.sent[0].body, "<strong>mornings</strong>")
	assert.Contains(t, mailer.sent[0].body, "Injuries: left knee")
}

func TestSubmitIntakeUpdatesExistingCustomer(t *testing.T) {
	db := testdb.New(t)
	repo := NewCustomerRepository(db)
	customers := NewCustomerService(repo)
	ctx := context.Background()

	existing, err := customers.CreateCustomer(ctx, domain.CreateCustomerRequest{
		Name: "Old Name", Email: "joko@example.com", Phone: "0812", Status: domain.CustomerStatusArchived,
	})
	require.NoError(t, err)

	svc := NewIntakeService(repo, &fakeMailer{err: errors.New("smtp down")}, "coach@example.com")
	res, err := svc.SubmitIntake(ctx, domain.IntakeRequest{Name: "Joko", Email: "JOKO@example.com", Goal: "gain"})
	require.NoError(t, err)
	assert.False(t, res.IsNew)
	assert.Equal(t, existing.ID, res.CustomerID)

	updated, err := repo.GetCustomerByID(ctx, existing.ID)
	require.NoError(t, err)
	assert.Equal(t, "Joko", updated.Name)
	assert.Equal(t, "0812", updated.Phone)
	assert.Equal(t, "gain", updated.Goal)
	assert.Equal(t, domain.CustomerStatusLead, updated.Status)

	_, total, err := customers.GetCustomers(ctx, domain.CustomerFilter{Page: 1, Limit: 20})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
}
