package dashboard

import (
	"context"
	"fitcoach-backend/domain"
	"fitcoach-backend/entities"
	"fitcoach-backend/internal/utils/testdb"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetDashboard(t *testing.T) {
	db := testdb.New(t)
	ctx := context.Background()
	now := time.Date(2026, time.May, 20, 12, 0, 0, 0, time.UTC)

	customers := []entities.Customer{
		{Name: "A", Email: "a@example.com", Status: domain.CustomerStatusLead},
		{Name: "B", Email: "b@example.com", Status: domain.CustomerStatusLead},
		{Name: "C", Email: "c@example.com", Status: domain.CustomerStatusActive},
	}
	for i := range customers {
		customers[i].ID = uuid.New()
		require.NoError(t, db.Create(&customers[i]).Error)
	}
	owner := customers[2].ID

	require.NoError(t, db.Create(&entities.NutritionPlan{ID: uuid.New(), Title: "Active", Status: domain.PlanStatusActive, CustomerID: &owner}).Error)
	require.NoError(t, db.Create(&entities.NutritionPlan{ID: uuid.New(), Title: "Draft", Status: domain.PlanStatusDraft}).Error)

	sent := entities.Invoice{ID: uuid.New(), Number: "INV-2026-0001", CustomerID: owner, IssueDate: now, DueDate: now,
		Currency: "IDR", Total: decimal.NewFromInt(1000000), Status: domain.InvoiceStatusSent}
	draft := entities.Invoice{ID: uuid.New(), Number: "INV-2026-0002", CustomerID: owner, IssueDate: now, DueDate: now,
		Currency: "IDR", Total: decimal.NewFromInt(500000), Status: domain.InvoiceStatusDraft}
	require.NoError(t, db.Create(&sent).Error)
	require.NoError(t, db.Create(&draft).Error)

	thisMonth := now.AddDate(0, 0, -3)
	lastMonth := now.AddDate(0, -1, 0)
	for _, p := range []entities.Payment{
		{InvoiceID: &sent.ID, Amount: decimal.NewFromInt(400000), Status: domain.PaymentStatusCompleted, PaidAt: &thisMonth},
		{Amount: decimal.NewFromInt(250000), Status: domain.PaymentStatusCompleted, PaidAt: &lastMonth},
		{InvoiceID: &sent.ID, Amount: decimal.NewFromInt(600000), Status: domain.PaymentStatusPending},
		{Amount: decimal.NewFromInt(100000), Status: domain.PaymentStatusRefunded, PaidAt: &thisMonth},
	} {
		p.ID = uuid.New()
		p.CustomerID = owner
		p.Currency = "IDR"
		p.Method = domain.PaymentMethodBankTransfer
		require.NoError(t, db.Create(&p).Error)
	}

	svc := &dashboardService{dashboardRepository: NewDashboardRepository(db), currency: "IDR", now: func() time.Time { return now }}
	res, err := svc.GetDashboard(ctx)
	require.NoError(t, err)

	assert.Equal(t, map[string]int64{domain.CustomerStatusLead: 2, domain.CustomerStatusActive: 1}, res.CustomersByStatus)
	assert.EqualValues(t, 3, res.TotalCustomers)
	assert.EqualValues(t, 1, res.ActivePlans)
	assert.EqualValues(t, 1, res.OpenInvoices)
	assert.Equal(t, "600000.00", res.OutstandingAmount.StringFixed(2))
	assert.Equal(t, "400000.00", res.RevenueThisMonth.StringFixed(2))
	assert.EqualValues(t, 1, res.PendingPayments)
	assert.Equal(t, "600000.00", res.PendingPaymentAmount.StringFixed(2))
	assert.Equal(t, "IDR", res.Currency)
}
