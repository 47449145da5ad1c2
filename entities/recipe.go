package entities

import (
	"github.com/google/uuid"
)

type Recipe struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Title           string    `json:"title"`
	Description     string    `gorm:"type:text" json:"description"`
	Instructions    string    `gorm:"type:text" json:"instructions"`
	Servings        int       `json:"servings"`
	PrepTimeMinutes int       `json:"prep_time_minutes"`
	CookTimeMinutes int       `json:"cook_time_minutes"`
	Category        string    `json:"category,omitempty"`
	ImageURL        string    `json:"image_url,omitempty"`

	Ingredients []*RecipeIngredient `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE"`
	Timestamp
}

type RecipeIngredient struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	RecipeID     uuid.UUID `gorm:"type:uuid;index" json:"recipe_id"`
	IngredientID uuid.UUID `gorm:"type:uuid" json:"ingredient_id"`
	Quantity     float64   `json:"quantity"`
	Unit         string    `json:"unit"`
	Position     int       `json:"position"`

	Ingredient *Ingredient `gorm:"foreignKey:IngredientID"`
}
