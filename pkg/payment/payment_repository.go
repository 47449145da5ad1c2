package payment

import (
	"context"
	"fitcoach-backend/domain"
	"fitcoach-backend/entities"

	"gorm.io/gorm"
)

type (
	PaymentRepository interface {
		CreatePayment(ctx context.Context, payment *entities.Payment) error
		GetPaymentByID(ctx context.Context, id string) (*entities.Payment, error)
		GetPaymentByOrderID(ctx context.Context, orderID string) (*entities.Payment, error)
		GetPayments(ctx context.Context, filter domain.PaymentFilter) ([]*entities.Payment, int64, error)
		UpdatePayment(ctx context.Context, payment *entities.Payment) error
		DeletePayment(ctx context.Context, id string) error
	}

	paymentRepository struct {
		db *gorm.DB
	}
)

func NewPaymentRepository(db *gorm.DB) PaymentRepository {
	return &paymentRepository{db: db}
}

func (r *paymentRepository) CreatePayment(ctx context.Context, payment *entities.Payment) error {
	return r.db.WithContext(ctx).Omit("Customer", "Invoice").Create(payment).Error
}

func (r *paymentRepository) GetPaymentByID(ctx context.Context, id string) (*entities.Payment, error) {
	var payment entities.Payment
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&payment).Error; err != nil {
		return nil, err
	}
	return &payment, nil
}

func (r *paymentRepository) GetPaymentByOrderID(ctx context.Context, orderID string) (*entities.Payment, error) {
	var payment entities.Payment
	if err := r.db.WithContext(ctx).Where("midtrans_order_id = ?", orderID).First(&payment).Error; err != nil {
		return nil, err
	}
	return &payment, nil
}

func (r *paymentRepository) GetPayments(ctx context.Context, filter domain.PaymentFilter) ([]*entities.Payment, int64, error) {
	var payments []*entities.Payment
	var count int64

	query := r.db.WithContext(ctx).Model(&entities.Payment{})
	if filter.CustomerID != "" {
		query = query.Where("customer_id = ?", filter.CustomerID)
	}
	if filter.InvoiceID != "" {
		query = query.Where("invoice_id = ?", filter.InvoiceID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	if err := query.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit
	if err := query.Offset(offset).Limit(filter.Limit).Order("created_at desc").Find(&payments).Error; err != nil {
		return nil, 0, err
	}
	return payments, count, nil
}

func (r *paymentRepository) UpdatePayment(ctx context.Context, payment *entities.Payment) error {
	return r.db.WithContext(ctx).Omit("Customer", "Invoice").Save(payment).Error
}

func (r *paymentRepository) DeletePayment(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.Payment{}).Error
}
