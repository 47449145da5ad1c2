package customer

import (
	"context"
	"encoding/json"
	"errors"
	"fitcoach-backend/domain"
	"fitcoach-backend/entities"
	"fitcoach-backend/internal/utils/mailing"
	"fitcoach-backend/internal/utils/markdown"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	IntakeService interface {
		SubmitIntake(ctx context.Context, req domain.IntakeRequest) (domain.IntakeResponse, error)
	}

	intakeService struct {
		customerRepository CustomerRepository
		mailer             mailing.Mailer
		coachEmail         string
	}
)

func NewIntakeService(customerRepository CustomerRepository, mailer mailing.Mailer, coachEmail string) IntakeService {
	return &intakeService{
		customerRepository: customerRepository,
		mailer:             mailer,
		coachEmail:         coachEmail,
	}
}

// SubmitIntake stores the public form as a lead. A known email updates the
// existing record instead of creating a second one.
func (s *intakeService) SubmitIntake(ctx context.Context, req domain.IntakeRequest) (domain.IntakeResponse, error) {
	email := normalizeEmail(req.Email)

	answers, err := json.Marshal(map[string]any{
		"age":           req.Age,
		"experience":    req.Experience,
		"injuries":      req.Injuries,
		"dietary_notes": req.DietaryNotes,
		"message":       req.Message,
		"package_id":    req.PackageID,
		"submitted_at":  time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		return domain.IntakeResponse{}, err
	}

	customer, err := s.customerRepository.GetCustomerByEmail(ctx, email)
	isNew := errors.Is(err, gorm.ErrRecordNotFound)
	if err != nil && !isNew {
		return domain.IntakeResponse{}, err
	}

	if isNew {
		customer = &entities.Customer{
			ID:     uuid.New(),
			Email:  email,
			Status: domain.CustomerStatusLead,
			Source: domain.CustomerSourceIntake,
		}
	}

	customer.Name = strings.TrimSpace(req.Name)
	if req.Phone != "" {
		customer.Phone = req.Phone
	}
	if req.Gender != "" {
		customer.Gender = req.Gender
	}
	if req.HeightCm > 0 {
		customer.HeightCm = req.HeightCm
	}
	if req.WeightKg > 0 {
		customer.WeightKg = req.WeightKg
	}
	if req.Goal != "" {
		customer.Goal = req.Goal
	}
	if req.ActivityLevel != "" {
		customer.ActivityLevel = req.ActivityLevel
	}
	if req.Age > 0 && customer.BirthDate == nil {
		approx := time.Date(time.Now().Year()-req.Age, time.January, 1, 0, 0, 0, 0, time.UTC)
		customer.BirthDate = &approx
	}
	if customer.Status == domain.CustomerStatusArchived {
		customer.Status = domain.CustomerStatusLead
	}
	customer.IntakeAnswers = string(answers)

	if isNew {
		err = s.customerRepository.CreateCustomer(ctx, customer)
	} else {
		err = s.customerRepository.UpdateCustomer(ctx, customer)
	}
	if err != nil {
		return domain.IntakeResponse{}, err
	}

	s.notifyCoach(req, isNew)

	return domain.IntakeResponse{
		CustomerID: customer.ID.String(),
		IsNew:      isNew,
	}, nil
}

func (s *intakeService) notifyCoach(req domain.IntakeRequest, isNew bool) {
	if s.mailer == nil || s.coachEmail == "" {
		return
	}

	subject := "New intake: " + req.Name
	if !isNew {
		subject = "Updated intake: " + req.Name
	}

	var b strings.Builder
	fmt.Fprintf(&b, "**%s** (%s) submitted the intake form.\n\n", req.Name, req.Email)
	writeField(&b, "Phone", req.Phone)
	writeField(&b, "Goal", req.Goal)
	writeField(&b, "Activity level", req.ActivityLevel)
	if req.Age > 0 {
		writeField(&b, "Age", fmt.Sprint(req.Age))
	}
	if req.HeightCm > 0 {
		writeField(&b, "Height", fmt.Sprintf("%g cm", req.HeightCm))
	}
	if req.WeightKg > 0 {
		writeField(&b, "Weight", fmt.Sprintf("%g kg", req.WeightKg))
	}
	writeField(&b, "Experience", req.Experience)
	writeField(&b, "Injuries", req.Injuries)
	writeField(&b, "Dietary notes", req.DietaryNotes)
	if req.Message != "" {
		fmt.Fprintf(&b, "\n%s\n", req.Message)
	}

	if err := s.mailer.SendMail(s.coachEmail, subject, markdown.ToHTML(b.String())); err != nil {
		log.Warnf("intake notification for %s not sent: %v", req.Email, err)
	}
}

func writeField(b *strings.Builder, label, value string) {
	if value == "" {
		return
	}
	fmt.Fprintf(b, "- %s: %s\n", label, value)
}
