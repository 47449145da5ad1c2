package entities

import (
	"github.com/google/uuid"
)

type Exercise struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name         string    `json:"name"`
	MuscleGroup  string    `gorm:"index" json:"muscle_group"`
	Equipment    string    `json:"equipment,omitempty"`
	Difficulty   string    `json:"difficulty"` // beginner, intermediate, advanced
	Instructions string    `gorm:"type:text" json:"instructions,omitempty"`
	VideoURL     string    `json:"video_url,omitempty"`
	ImageURL     string    `json:"image_url,omitempty"`

	Timestamp
}
