package invoice

import (
	"context"
	"fitcoach-backend/domain"
	"fitcoach-backend/entities"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type (
	InvoiceRepository interface {
		CreateInvoice(ctx context.Context, invoice *entities.Invoice) error
		GetInvoiceByID(ctx context.Context, id string) (*entities.Invoice, error)
		GetInvoices(ctx context.Context, filter domain.InvoiceFilter) ([]*entities.Invoice, int64, error)
		UpdateInvoice(ctx context.Context, invoice *entities.Invoice, items []*entities.InvoiceItem) error
		DeleteInvoice(ctx context.Context, id string) error
		CountPayments(ctx context.Context, invoiceID string) (int64, error)
		SumCompletedPayments(ctx context.Context, invoiceID string) (decimal.Decimal, error)
	}

	invoiceRepository struct {
		db *gorm.DB
	}
)

func NewInvoiceRepository(db *gorm.DB) InvoiceRepository {
	return &invoiceRepository{db: db}
}

// CreateInvoice assigns the next INV-YYYY-NNNN number for the issue year and
// inserts the invoice with its items in one transaction.
func (r *invoiceRepository) CreateInvoice(ctx context.Context, invoice *entities.Invoice) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		number, err := nextNumber(tx, invoice.IssueDate.Year())
		if err != nil {
			return err
		}
		invoice.Number = number
		return tx.Omit("Customer", "Payments").Create(invoice).Error
	})
}

func nextNumber(tx *gorm.DB, year int) (string, error) {
	prefix := fmt.Sprintf("INV-%d-", year)

	var last []string
	if err := tx.Unscoped().Model(&entities.Invoice{}).
		Where("number LIKE ?", prefix+"%").
		// length first so INV-2026-10000 sorts above INV-2026-9999
		Order("LENGTH(number) desc, number desc").
		Limit(1).
		Pluck("number", &last).Error; err != nil {
		return "", err
	}

	seq := 1
	if len(last) > 0 {
		n, err := strconv.Atoi(strings.TrimPrefix(last[0], prefix))
		if err != nil {
			return "", fmt.Errorf("unexpected invoice number %q: %w", last[0], err)
		}
		seq = n + 1
	}
	return fmt.Sprintf("%s%04d", prefix, seq), nil
}

func (r *invoiceRepository) GetInvoiceByID(ctx context.Context, id string) (*entities.Invoice, error) {
	var invoice entities.Invoice
	if err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("position asc")
		}).
		Preload("Customer").
		Where("id = ?", id).
		First(&invoice).Error; err != nil {
		return nil, err
	}
	return &invoice, nil
}

func (r *invoiceRepository) GetInvoices(ctx context.Context, filter domain.InvoiceFilter) ([]*entities.Invoice, int64, error) {
	var invoices []*entities.Invoice
	var count int64

	query := r.db.WithContext(ctx).Model(&entities.Invoice{})
	if filter.CustomerID != "" {
		query = query.Where("customer_id = ?", filter.CustomerID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	if err := query.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit
	if err := query.Offset(offset).Limit(filter.Limit).Order("number desc").Find(&invoices).Error; err != nil {
		return nil, 0, err
	}
	return invoices, count, nil
}

// UpdateInvoice saves the invoice row. A non-nil items slice replaces every
// existing item.
func (r *invoiceRepository) UpdateInvoice(ctx context.Context, invoice *entities.Invoice, items []*entities.InvoiceItem) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Items", "Customer", "Payments").Save(invoice).Error; err != nil {
			return err
		}
		if items == nil {
			return nil
		}
		if err := tx.Where("invoice_id = ?", invoice.ID).Delete(&entities.InvoiceItem{}).Error; err != nil {
			return err
		}
		if len(items) == 0 {
			return nil
		}
		return tx.Create(&items).Error
	})
}

func (r *invoiceRepository) DeleteInvoice(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("invoice_id = ?", id).Delete(&entities.InvoiceItem{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&entities.Invoice{}).Error
	})
}

func (r *invoiceRepository) CountPayments(ctx context.Context, invoiceID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entities.Payment{}).Where("invoice_id = ?", invoiceID).Count(&count).Error
	return count, err
}

// SumCompletedPayments adds up completed payments. Refunded payments carry
// their own status and so drop out of the sum.
func (r *invoiceRepository) SumCompletedPayments(ctx context.Context, invoiceID string) (decimal.Decimal, error) {
	var amounts []decimal.Decimal
	if err := r.db.WithContext(ctx).Model(&entities.Payment{}).
		Where("invoice_id = ? AND status = ?", invoiceID, domain.PaymentStatusCompleted).
		Pluck("amount", &amounts).Error; err != nil {
		return decimal.Zero, err
	}
	total := decimal.Zero
	for _, a := range amounts {
		total = total.Add(a)
	}
	return total, nil
}
