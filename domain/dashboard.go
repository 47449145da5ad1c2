package domain

import "github.com/shopspring/decimal"

var (
	MessageSuccessGetDashboard = "success get dashboard"
	MessageFailedGetDashboard  = "failed to get dashboard"
)

type DashboardResponse struct {
	CustomersByStatus    map[string]int64 `json:"customers_by_status"`
	TotalCustomers       int64            `json:"total_customers"`
	ActivePlans          int64            `json:"active_plans"`
	OpenInvoices         int64            `json:"open_invoices"`
	OutstandingAmount    decimal.Decimal  `json:"outstanding_amount"`
	RevenueThisMonth     decimal.Decimal  `json:"revenue_this_month"`
	PendingPayments      int64            `json:"pending_payments"`
	PendingPaymentAmount decimal.Decimal  `json:"pending_payment_amount"`
	Currency             string           `json:"currency"`
}
