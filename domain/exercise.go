package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessCreateExercise = "exercise created successfully"
	MessageSuccessUpdateExercise = "exercise updated successfully"
	MessageSuccessDeleteExercise = "exercise deleted successfully"
	MessageSuccessGetExercises   = "exercises retrieved successfully"
	MessageSuccessVideoSearch    = "videos retrieved successfully"

	MessageFailedCreateExercise = "failed to create exercise"
	MessageFailedUpdateExercise = "failed to update exercise"
	MessageFailedDeleteExercise = "failed to delete exercise"
	MessageFailedGetExercises   = "failed to retrieve exercises"
	MessageFailedVideoSearch    = "failed to search videos"

	ErrExerciseNotFound       = errors.New("exercise not found")
	ErrVideoSearchUnavailable = errors.New("video search is not configured")
)

type (
	CreateExerciseRequest struct {
		Name         string `json:"name" validate:"required,max=120"`
		MuscleGroup  string `json:"muscle_group" validate:"required,max=60"`
		Equipment    string `json:"equipment" validate:"omitempty,max=60"`
		Difficulty   string `json:"difficulty" validate:"required,oneof=beginner intermediate advanced"`
		Instructions string `json:"instructions"`
		VideoURL     string `json:"video_url" validate:"omitempty,url"`
	}

	UpdateExerciseRequest struct {
		Name         *string `json:"name" validate:"omitempty,max=120"`
		MuscleGroup  *string `json:"muscle_group" validate:"omitempty,max=60"`
		Equipment    *string `json:"equipment" validate:"omitempty,max=60"`
		Difficulty   *string `json:"difficulty" validate:"omitempty,oneof=beginner intermediate advanced"`
		Instructions *string `json:"instructions"`
		VideoURL     *string `json:"video_url" validate:"omitempty,url"`
	}

	ExerciseFilter struct {
		MuscleGroup string
		Difficulty  string
		Search      string
		Page        int
		Limit       int
	}

	ExerciseResponse struct {
		ID           string    `json:"id"`
		Name         string    `json:"name"`
		MuscleGroup  string    `json:"muscle_group"`
		Equipment    string    `json:"equipment,omitempty"`
		Difficulty   string    `json:"difficulty"`
		Instructions string    `json:"instructions,omitempty"`
		VideoURL     string    `json:"video_url,omitempty"`
		ImageURL     string    `json:"image_url,omitempty"`
		CreatedAt    time.Time `json:"created_at"`
	}

	VideoResult struct {
		VideoID      string `json:"video_id"`
		Title        string `json:"title"`
		Channel      string `json:"channel"`
		ThumbnailURL string `json:"thumbnail_url"`
		URL          string `json:"url"`
	}
)
