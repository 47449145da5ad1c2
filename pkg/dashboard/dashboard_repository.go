package dashboard

import (
	"context"
	"fitcoach-backend/domain"
	"fitcoach-backend/entities"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type (
	DashboardRepository interface {
		CountCustomersByStatus(ctx context.Context) (map[string]int64, error)
		CountPlans(ctx context.Context, status string) (int64, error)
		OpenInvoices(ctx context.Context) ([]*entities.Invoice, error)
		SumCompletedPaymentsFor(ctx context.Context, invoiceIDs []string) (decimal.Decimal, error)
		CompletedPaymentsBetween(ctx context.Context, from, to time.Time) (decimal.Decimal, error)
		PendingPayments(ctx context.Context) (int64, decimal.Decimal, error)
	}

	dashboardRepository struct {
		db *gorm.DB
	}

	statusCount struct {
		Status string
		Count  int64
	}
)

func NewDashboardRepository(db *gorm.DB) DashboardRepository {
	return &dashboardRepository{db: db}
}

func (r *dashboardRepository) CountCustomersByStatus(ctx context.Context) (map[string]int64, error) {
	var rows []statusCount
	if err := r.db.WithContext(ctx).Model(&entities.Customer{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}

func (r *dashboardRepository) CountPlans(ctx context.Context, status string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entities.NutritionPlan{}).Where("status = ?", status).Count(&count).Error
	return count, err
}

func (r *dashboardRepository) OpenInvoices(ctx context.Context) ([]*entities.Invoice, error) {
	var invoices []*entities.Invoice
	err := r.db.WithContext(ctx).
		Where("status = ?", domain.InvoiceStatusSent).
		Find(&invoices).Error
	return invoices, err
}

func (r *dashboardRepository) SumCompletedPaymentsFor(ctx context.Context, invoiceIDs []string) (decimal.Decimal, error) {
	if len(invoiceIDs) == 0 {
		return decimal.Zero, nil
	}
	var amounts []decimal.Decimal
	if err := r.db.WithContext(ctx).Model(&entities.Payment{}).
		Where("invoice_id IN ? AND status = ?", invoiceIDs, domain.PaymentStatusCompleted).
		Pluck("amount", &amounts).Error; err != nil {
		return decimal.Zero, err
	}
	return sum(amounts), nil
}

func (r *dashboardRepository) CompletedPaymentsBetween(ctx context.Context, from, to time.Time) (decimal.Decimal, error) {
	var amounts []decimal.Decimal
	if err := r.db.WithContext(ctx).Model(&entities.Payment{}).
		Where("status = ? AND paid_at >= ? AND paid_at < ?", domain.PaymentStatusCompleted, from, to).
		Pluck("amount", &amounts).Error; err != nil {
		return decimal.Zero, err
	}
	return sum(amounts), nil
}

func (r *dashboardRepository) PendingPayments(ctx context.Context) (int64, decimal.Decimal, error) {
	var amounts []decimal.Decimal
	if err := r.db.WithContext(ctx).Model(&entities.Payment{}).
		Where("status = ?", domain.PaymentStatusPending).
		Pluck("amount", &amounts).Error; err != nil {
		return 0, decimal.Zero, err
	}
	return int64(len(amounts)), sum(amounts), nil
}

func sum(amounts []decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, a := range amounts {
		total = total.Add(a)
	}
	return total
}
