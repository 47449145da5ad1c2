package entities

import (
	"github.com/google/uuid"
	"time"
)

type NutritionPlan struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	CustomerID     *uuid.UUID `gorm:"type:uuid;index" json:"customer_id,omitempty"`
	Title          string     `json:"title"`
	Description    string     `gorm:"type:text" json:"description,omitempty"`
	Notes          string     `gorm:"type:text" json:"notes,omitempty"`
	StartDate      *time.Time `json:"start_date,omitempty"`
	Status         string     `gorm:"index" json:"status"` // draft, active, archived
	TargetCalories int        `json:"target_calories"`
	TargetProtein  int        `json:"target_protein"`
	TargetCarbs    int        `json:"target_carbs"`
	TargetFat      int        `json:"target_fat"`
	WeekMenu       string     `gorm:"type:text" json:"week_menu"`
	PublicToken    *string    `gorm:"uniqueIndex" json:"public_token,omitempty"`

	Customer *Customer `gorm:"foreignKey:CustomerID"`
	Timestamp
}

type NutritionCalculation struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	CustomerID     *uuid.UUID `gorm:"type:uuid;index" json:"customer_id,omitempty"`
	Gender         string     `json:"gender"`
	Age            int        `json:"age"`
	HeightCm       float64    `json:"height_cm"`
	WeightKg       float64    `json:"weight_kg"`
	ActivityLevel  string     `json:"activity_level"`
	Goal           string     `json:"goal"`
	ProteinPerKg   float64    `json:"protein_per_kg"`
	BMR            int        `json:"bmr"`
	TDEE           int        `json:"tdee"`
	TargetCalories int        `json:"target_calories"`
	ProteinG       int        `json:"protein_g"`
	CarbsG         int        `json:"carbs_g"`
	FatG           int        `json:"fat_g"`

	Customer *Customer `gorm:"foreignKey:CustomerID"`
	Timestamp
}
