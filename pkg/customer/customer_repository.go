package customer

import (
	"context"
	"fitcoach-backend/domain"
	"fitcoach-backend/entities"

	"gorm.io/gorm"
)

type (
	CustomerRepository interface {
		CreateCustomer(ctx context.Context, customer *entities.Customer) error
		GetCustomerByID(ctx context.Context, id string) (*entities.Customer, error)
		GetCustomerByEmail(ctx context.Context, email string) (*entities.Customer, error)
		GetCustomerDetail(ctx context.Context, id string) (*entities.Customer, error)
		GetCustomers(ctx context.Context, filter domain.CustomerFilter) ([]*entities.Customer, int64, error)
		UpdateCustomer(ctx context.Context, customer *entities.Customer) error
		DeleteCustomer(ctx context.Context, id string) error
	}

	customerRepository struct {
		db *gorm.DB
	}
)

func NewCustomerRepository(db *gorm.DB) CustomerRepository {
	return &customerRepository{db: db}
}

func (r *customerRepository) CreateCustomer(ctx context.Context, customer *entities.Customer) error {
	return r.db.WithContext(ctx).Create(customer).Error
}

func (r *customerRepository) GetCustomerByID(ctx context.Context, id string) (*entities.Customer, error) {
	var customer entities.Customer
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&customer).Error; err != nil {
		return nil, err
	}
	return &customer, nil
}

func (r *customerRepository) GetCustomerByEmail(ctx context.Context, email string) (*entities.Customer, error) {
	var customer entities.Customer
	if err := r.db.WithContext(ctx).Where("LOWER(email) = LOWER(?)", email).First(&customer).Error; err != nil {
		return nil, err
	}
	return &customer, nil
}

func (r *customerRepository) GetCustomerDetail(ctx context.Context, id string) (*entities.Customer, error) {
	var customer entities.Customer
	if err := r.db.WithContext(ctx).
		Preload("NutritionPlans", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at desc")
		}).
		Preload("Invoices", func(db *gorm.DB) *gorm.DB {
			return db.Order("issue_date desc")
		}).
		Preload("Payments", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at desc")
		}).
		Where("id = ?", id).
		First(&customer).Error; err != nil {
		return nil, err
	}
	return &customer, nil
}

func (r *customerRepository) GetCustomers(ctx context.Context, filter domain.CustomerFilter) ([]*entities.Customer, int64, error) {
	var customers []*entities.Customer
	var count int64

	query := r.db.WithContext(ctx).Model(&entities.Customer{})
	if filter.Status != "" && filter.Status != "all" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		query = query.Where("(LOWER(name) LIKE LOWER(?) OR LOWER(email) LIKE LOWER(?))", like, like)
	}

	if err := query.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit
	if err := query.Offset(offset).Limit(filter.Limit).Order("created_at desc").Find(&customers).Error; err != nil {
		return nil, 0, err
	}
	return customers, count, nil
}

func (r *customerRepository) UpdateCustomer(ctx context.Context, customer *entities.Customer) error {
	return r.db.WithContext(ctx).Omit("NutritionPlans", "Invoices", "Payments").Save(customer).Error
}

func (r *customerRepository) DeleteCustomer(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.Customer{}).Error
}
