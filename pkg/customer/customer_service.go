package customer

import (
	"context"
	"encoding/json"
	"errors"
	"fitcoach-backend/domain"
	"fitcoach-backend/entities"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	CustomerService interface {
		CreateCustomer(ctx context.Context, req domain.CreateCustomerRequest) (domain.CustomerResponse, error)
		UpdateCustomer(ctx context.Context, id string, req domain.UpdateCustomerRequest) (domain.CustomerResponse, error)
		DeleteCustomer(ctx context.Context, id string) error
		GetCustomers(ctx context.Context, filter domain.CustomerFilter) ([]domain.CustomerResponse, int64, error)
		GetCustomerDetail(ctx context.Context, id string) (domain.CustomerDetailResponse, error)
	}

	customerService struct {
		customerRepository CustomerRepository
	}
)

func NewCustomerService(customerRepository CustomerRepository) CustomerService {
	return &customerService{customerRepository: customerRepository}
}

func (s *customerService) CreateCustomer(ctx context.Context, req domain.CreateCustomerRequest) (domain.CustomerResponse, error) {
	email := normalizeEmail(req.Email)
	if _, err := s.customerRepository.GetCustomerByEmail(ctx, email); err == nil {
		return domain.CustomerResponse{}, domain.ErrCustomerEmailExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.CustomerResponse{}, err
	}

	birthDate, err := parseOptionalDate(req.BirthDate)
	if err != nil {
		return domain.CustomerResponse{}, err
	}

	status := req.Status
	if status == "" {
		status = domain.CustomerStatusActive
	}

	customer := &entities.Customer{
		ID:            uuid.New(),
		Name:          strings.TrimSpace(req.Name),
		Email:         email,
		Phone:         req.Phone,
		Gender:        req.Gender,
		BirthDate:     birthDate,
		HeightCm:      req.HeightCm,
		WeightKg:      req.WeightKg,
		Goal:          req.Goal,
		ActivityLevel: req.ActivityLevel,
		Notes:         req.Notes,
		Status:        status,
		Source:        domain.CustomerSourceAdmin,
	}

	if err := s.customerRepository.CreateCustomer(ctx, customer); err != nil {
		return domain.CustomerResponse{}, err
	}
	return toCustomerResponse(customer), nil
}

func (s *customerService) UpdateCustomer(ctx context.Context, id string, req domain.UpdateCustomerRequest) (domain.CustomerResponse, error) {
	customer, err := s.getCustomer(ctx, id)
	if err != nil {
		return domain.CustomerResponse{}, err
	}

	if req.Email != nil {
		email := normalizeEmail(*req.Email)
		if email != customer.Email {
			other, err := s.customerRepository.GetCustomerByEmail(ctx, email)
			if err == nil && other.ID != customer.ID {
				return domain.CustomerResponse{}, domain.ErrCustomerEmailExists
			}
			if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.CustomerResponse{}, err
			}
		}
		customer.Email = email
	}
	if req.Name != nil {
		customer.Name = strings.TrimSpace(*req.Name)
	}
	if req.Phone != nil {
		customer.Phone = *req.Phone
	}
	if req.Gender != nil {
		customer.Gender = *req.Gender
	}
	if req.BirthDate != nil {
		birthDate, err := parseOptionalDate(*req.BirthDate)
		if err != nil {
			return domain.CustomerResponse{}, err
		}
		customer.BirthDate = birthDate
	}
	if req.HeightCm != nil {
		customer.HeightCm = *req.HeightCm
	}
	if req.WeightKg != nil {
		customer.WeightKg = *req.WeightKg
	}
	if req.Goal != nil {
		customer.Goal = *req.Goal
	}
	if req.ActivityLevel != nil {
		customer.ActivityLevel = *req.ActivityLevel
	}
	if req.Notes != nil {
		customer.Notes = *req.Notes
	}
	if req.Status != nil {
		customer.Status = *req.Status
	}

	if err := s.customerRepository.UpdateCustomer(ctx, customer); err != nil {
		return domain.CustomerResponse{}, err
	}
	return toCustomerResponse(customer), nil
}

func (s *customerService) DeleteCustomer(ctx context.Context, id string) error {
	if _, err := s.getCustomer(ctx, id); err != nil {
		return err
	}
	return s.customerRepository.DeleteCustomer(ctx, id)
}

func (s *customerService) GetCustomers(ctx context.Context, filter domain.CustomerFilter) ([]domain.CustomerResponse, int64, error) {
	filter.Search = strings.TrimSpace(filter.Search)
	customers, count, err := s.customerRepository.GetCustomers(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	response := make([]domain.CustomerResponse, 0, len(customers))
	for _, c := range customers {
		response = append(response, toCustomerResponse(c))
	}
	return response, count, nil
}

func (s *customerService) GetCustomerDetail(ctx context.Context, id string) (domain.CustomerDetailResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return domain.CustomerDetailResponse{}, domain.ErrParseUUID
	}
	customer, err := s.customerRepository.GetCustomerDetail(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.CustomerDetailResponse{}, domain.ErrCustomerNotFound
		}
		return domain.CustomerDetailResponse{}, err
	}

	detail := domain.CustomerDetailResponse{
		CustomerResponse: toCustomerResponse(customer),
		Plans:            make([]domain.NutritionPlanSummary, 0, len(customer.NutritionPlans)),
		Invoices:         make([]domain.InvoiceSummary, 0, len(customer.Invoices)),
		Payments:         make([]domain.PaymentResponse, 0, len(customer.Payments)),
	}
	if customer.IntakeAnswers != "" {
		_ = json.Unmarshal([]byte(customer.IntakeAnswers), &detail.IntakeAnswers)
	}

	for _, p := range customer.NutritionPlans {
		detail.Plans = append(detail.Plans, domain.NutritionPlanSummary{
			ID:         p.ID.String(),
			Title:      p.Title,
			Status:     p.Status,
			CustomerID: customer.ID.String(),
			StartDate:  p.StartDate,
			CreatedAt:  p.CreatedAt,
		})
	}
	for _, inv := range customer.Invoices {
		detail.Invoices = append(detail.Invoices, domain.InvoiceSummary{
			ID:         inv.ID.String(),
			Number:     inv.Number,
			CustomerID: customer.ID.String(),
			IssueDate:  inv.IssueDate,
			DueDate:    inv.DueDate,
			Total:      inv.Total,
			Currency:   inv.Currency,
			Status:     inv.Status,
		})
	}
	for _, p := range customer.Payments {
		res := domain.PaymentResponse{
			ID:          p.ID.String(),
			CustomerID:  customer.ID.String(),
			Amount:      p.Amount,
			Currency:    p.Currency,
			Method:      p.Method,
			Status:      p.Status,
			Reference:   p.Reference,
			PaidAt:      p.PaidAt,
			RedirectURL: p.RedirectURL,
			CreatedAt:   p.CreatedAt,
		}
		if p.InvoiceID != nil {
			res.InvoiceID = p.InvoiceID.String()
		}
		detail.Payments = append(detail.Payments, res)
	}
	return detail, nil
}

func (s *customerService) getCustomer(ctx context.Context, id string) (*entities.Customer, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrParseUUID
	}
	customer, err := s.customerRepository.GetCustomerByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCustomerNotFound
		}
		return nil, err
	}
	return customer, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func parseOptionalDate(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse(domain.DateLayout, raw)
	if err != nil {
		return nil, domain.ErrInvalidDate
	}
	return &t, nil
}

func toCustomerResponse(c *entities.Customer) domain.CustomerResponse {
	return domain.CustomerResponse{
		ID:            c.ID.String(),
		Name:          c.Name,
		Email:         c.Email,
		Phone:         c.Phone,
		Gender:        c.Gender,
		BirthDate:     c.BirthDate,
		HeightCm:      c.HeightCm,
		WeightKg:      c.WeightKg,
		Goal:          c.Goal,
		ActivityLevel: c.ActivityLevel,
		Notes:         c.Notes,
		Status:        c.Status,
		Source:        c.Source,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}
