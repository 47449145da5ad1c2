package dashboard

import (
	"context"
	"fitcoach-backend/domain"
	"fitcoach-backend/internal/utils"
	"time"

	"github.com/shopspring/decimal"
)

type (
	DashboardService interface {
		GetDashboard(ctx context.Context) (domain.DashboardResponse, error)
	}

	dashboardService struct {
		dashboardRepository DashboardRepository
		currency            string
		now                 func() time.Time
	}
)

func NewDashboardService(dashboardRepository DashboardRepository) DashboardService {
	return &dashboardService{
		dashboardRepository: dashboardRepository,
		currency:            utils.GetConfig("CURRENCY"),
		now:                 time.Now,
	}
}

// GetDashboard summarises the business. Outstanding covers sent invoices
// only; drafts have not been billed yet.
func (s *dashboardService) GetDashboard(ctx context.Context) (domain.DashboardResponse, error) {
	res := domain.DashboardResponse{Currency: s.currency}

	byStatus, err := s.dashboardRepository.CountCustomersByStatus(ctx)
	if err != nil {
		return res, err
	}
	res.CustomersByStatus = byStatus
	for _, n := range byStatus {
		res.TotalCustomers += n
	}

	if res.ActivePlans, err = s.dashboardRepository.CountPlans(ctx, domain.PlanStatusActive); err != nil {
		return res, err
	}

	open, err := s.dashboardRepository.OpenInvoices(ctx)
	if err != nil {
		return res, err
	}
	res.OpenInvoices = int64(len(open))
	billed := decimal.Zero
	ids := make([]string, 0, len(open))
	for _, inv := range open {
		billed = billed.Add(inv.Total)
		ids = append(ids, inv.ID.String())
	}
	paid, err := s.dashboardRepository.SumCompletedPaymentsFor(ctx, ids)
	if err != nil {
		return res, err
	}
	res.OutstandingAmount = billed.Sub(paid)
	if res.OutstandingAmount.IsNegative() {
		res.OutstandingAmount = decimal.Zero
	}

	now := s.now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	if res.RevenueThisMonth, err = s.dashboardRepository.CompletedPaymentsBetween(ctx, monthStart, monthStart.AddDate(0, 1, 0)); err != nil {
		return res, err
	}

	if res.PendingPayments, res.PendingPaymentAmount, err = s.dashboardRepository.PendingPayments(ctx); err != nil {
		return res, err
	}
	return res, nil
}
