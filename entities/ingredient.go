package entities

import (
	"github.com/google/uuid"
)

// Ingredient nutrition facts are per 100 g (or 100 ml, treated as grams).
type Ingredient struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name           string    `json:"name"`
	NormalizedName string    `gorm:"uniqueIndex" json:"normalized_name"`
	Calories       float64   `json:"calories"`
	Protein        float64   `json:"protein"`
	Carbs          float64   `json:"carbs"`
	Fat            float64   `json:"fat"`
	Fiber          float64   `json:"fiber"`
	UnitWeightG    float64   `json:"unit_weight_g"` // weight of one piece, 0 when unknown
	Category       string    `json:"category,omitempty"`
	Source         string    `json:"source"` // manual, usda
	ExternalID     string    `json:"external_id,omitempty"`
	ImageURL       string    `json:"image_url,omitempty"`

	Timestamp
}
