package domain

import (
	"errors"
	"time"
)

const (
	CustomerStatusLead     = "lead"
	CustomerStatusActive   = "active"
	CustomerStatusPaused   = "paused"
	CustomerStatusArchived = "archived"

	CustomerSourceAdmin  = "admin"
	CustomerSourceIntake = "intake"
)

var (
	MessageSuccessCreateCustomer = "customer created successfully"
	MessageSuccessUpdateCustomer = "customer updated successfully"
	MessageSuccessDeleteCustomer = "customer deleted successfully"
	MessageSuccessGetCustomers   = "customers retrieved successfully"
	MessageSuccessGetCustomer    = "customer retrieved successfully"
	MessageSuccessSubmitIntake   = "thank you, your intake form has been received"

	MessageFailedCreateCustomer = "failed to create customer"
	MessageFailedUpdateCustomer = "failed to update customer"
	MessageFailedDeleteCustomer = "failed to delete customer"
	MessageFailedGetCustomers   = "failed to retrieve customers"
	MessageFailedGetCustomer    = "failed to retrieve customer"
	MessageFailedSubmitIntake   = "failed to submit intake form"

	ErrCustomerNotFound    = errors.New("customer not found")
	ErrCustomerEmailExists = errors.New("a customer with this email already exists")
)

type (
	CreateCustomerRequest struct {
		Name          string  `json:"name" validate:"required,max=120"`
		Email         string  `json:"email" validate:"required,email"`
		Phone         string  `json:"phone" validate:"omitempty,max=40"`
		Gender        string  `json:"gender" validate:"omitempty,oneof=male female"`
		BirthDate     string  `json:"birth_date" validate:"omitempty,datetime=2006-01-02"`
		HeightCm      float64 `json:"height_cm" validate:"omitempty,gt=0,lt=300"`
		WeightKg      float64 `json:"weight_kg" validate:"omitempty,gt=0,lt=500"`
		Goal          string  `json:"goal" validate:"omitempty,oneof=lose maintain gain"`
		ActivityLevel string  `json:"activity_level" validate:"omitempty,oneof=sedentary light moderate active very_active"`
		Notes         string  `json:"notes"`
		Status        string  `json:"status" validate:"omitempty,oneof=lead active paused archived"`
	}

	// UpdateCustomerRequest is a PATCH: nil fields are left untouched.
	UpdateCustomerRequest struct {
		Name          *string  `json:"name" validate:"omitempty,max=120"`
		Email         *string  `json:"email" validate:"omitempty,email"`
		Phone         *string  `json:"phone" validate:"omitempty,max=40"`
		Gender        *string  `json:"gender" validate:"omitempty,oneof=male female"`
		BirthDate     *string  `json:"birth_date" validate:"omitempty,datetime=2006-01-02"`
		HeightCm      *float64 `json:"height_cm" validate:"omitempty,gt=0,lt=300"`
		WeightKg      *float64 `json:"weight_kg" validate:"omitempty,gt=0,lt=500"`
		Goal          *string  `json:"goal" validate:"omitempty,oneof=lose maintain gain"`
		ActivityLevel *string  `json:"activity_level" validate:"omitempty,oneof=sedentary light moderate active very_active"`
		Notes         *string  `json:"notes"`
		Status        *string  `json:"status" validate:"omitempty,oneof=lead active paused archived"`
	}

	CustomerFilter struct {
		Status string
		Search string
		Page   int
		Limit  int
	}

	IntakeRequest struct {
		Name          string  `json:"name" validate:"required,max=120"`
		Email         string  `json:"email" validate:"required,email"`
		Phone         string  `json:"phone" validate:"omitempty,max=40"`
		Gender        string  `json:"gender" validate:"omitempty,oneof=male female"`
		Age           int     `json:"age" validate:"omitempty,min=12,max=100"`
		HeightCm      float64 `json:"height_cm" validate:"omitempty,gt=0,lt=300"`
		WeightKg      float64 `json:"weight_kg" validate:"omitempty,gt=0,lt=500"`
		Goal          string  `json:"goal" validate:"omitempty,oneof=lose maintain gain"`
		ActivityLevel string  `json:"activity_level" validate:"omitempty,oneof=sedentary light moderate active very_active"`
		Experience    string  `json:"experience" validate:"omitempty,max=500"`
		Injuries      string  `json:"injuries" validate:"omitempty,max=1000"`
		DietaryNotes  string  `json:"dietary_notes" validate:"omitempty,max=1000"`
		Message       string  `json:"message" validate:"omitempty,max=2000"`
		PackageID     string  `json:"package_id" validate:"omitempty,uuid"`
	}

	IntakeResponse struct {
		CustomerID string `json:"customer_id"`
		IsNew      bool   `json:"is_new"`
	}

	CustomerResponse struct {
		ID            string     `json:"id"`
		Name          string     `json:"name"`
		Email         string     `json:"email"`
		Phone         string     `json:"phone,omitempty"`
		Gender        string     `json:"gender,omitempty"`
		BirthDate     *time.Time `json:"birth_date,omitempty"`
		HeightCm      float64    `json:"height_cm,omitempty"`
		WeightKg      float64    `json:"weight_kg,omitempty"`
		Goal          string     `json:"goal,omitempty"`
		ActivityLevel string     `json:"activity_level,omitempty"`
		Notes         string     `json:"notes,omitempty"`
		Status        string     `json:"status"`
		Source        string     `json:"source"`
		CreatedAt     time.Time  `json:"created_at"`
		UpdatedAt     time.Time  `json:"updated_at"`
	}

	CustomerDetailResponse struct {
		CustomerResponse
		IntakeAnswers map[string]any         `json:"intake_answers,omitempty"`
		Plans         []NutritionPlanSummary `json:"plans"`
		Invoices      []InvoiceSummary       `json:"invoices"`
		Payments      []PaymentResponse      `json:"payments"`
	}
)
