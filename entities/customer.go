package entities

import (
	"github.com/google/uuid"
	"time"
)

type Customer struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Name          string     `json:"name"`
	Email         string     `gorm:"index" json:"email"`
	Phone         string     `json:"phone,omitempty"`
	Gender        string     `json:"gender,omitempty"` // male, female
	BirthDate     *time.Time `json:"birth_date,omitempty"`
	HeightCm      float64    `json:"height_cm"`
	WeightKg      float64    `json:"weight_kg"`
	Goal          string     `json:"goal,omitempty"`           // lose, maintain, gain
	ActivityLevel string     `json:"activity_level,omitempty"` // sedentary .. very_active
	Notes         string     `gorm:"type:text" json:"notes,omitempty"`
	IntakeAnswers string     `gorm:"type:text" json:"intake_answers,omitempty"`
	Status        string     `gorm:"index" json:"status"` // lead, active, paused, archived
	Source        string     `json:"source"`              // admin, intake

	NutritionPlans []*NutritionPlan `gorm:"foreignKey:CustomerID"`
	Invoices       []*Invoice       `gorm:"foreignKey:CustomerID"`
	Payments       []*Payment       `gorm:"foreignKey:CustomerID"`
	Timestamp
}
