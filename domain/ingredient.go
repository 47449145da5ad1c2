package domain

import (
	"errors"
	"mime/multipart"
	"time"
)

const (
	IngredientSourceManual = "manual"
	IngredientSourceUSDA   = "usda"

	LookupStatusFound    = "found"
	LookupStatusNotFound = "not_found"
	LookupStatusExists   = "exists"
	LookupStatusError    = "error"
)

var (
	MessageSuccessCreateIngredient = "ingredient created successfully"
	MessageSuccessUpdateIngredient = "ingredient updated successfully"
	MessageSuccessDeleteIngredient = "ingredient deleted successfully"
	MessageSuccessGetIngredients   = "ingredients retrieved successfully"
	MessageSuccessUploadImage      = "image uploaded successfully"
	MessageSuccessLookupIngredient = "nutrition lookup completed"

	MessageFailedCreateIngredient = "failed to create ingredient"
	MessageFailedUpdateIngredient = "failed to update ingredient"
	MessageFailedDeleteIngredient = "failed to delete ingredient"
	MessageFailedGetIngredients   = "failed to retrieve ingredients"
	MessageFailedUploadImage      = "failed to upload image"
	MessageFailedLookupIngredient = "failed to look up nutrition facts"

	ErrIngredientNotFound   = errors.New("ingredient not found")
	ErrIngredientNameExists = errors.New("an ingredient with this name already exists")
	ErrIngredientNameEmpty  = errors.New("ingredient name is empty")
	ErrIngredientInUse      = errors.New("ingredient is used by a recipe")
	ErrLookupUnavailable    = errors.New("nutrition lookup is not configured")
)

type (
	CreateIngredientRequest struct {
		Name        string  `json:"name" validate:"required,max=120"`
		Calories    float64 `json:"calories" validate:"gte=0,lte=1000"`
		Protein     float64 `json:"protein" validate:"gte=0,lte=100"`
		Carbs       float64 `json:"carbs" validate:"gte=0,lte=100"`
		Fat         float64 `json:"fat" validate:"gte=0,lte=100"`
		Fiber       float64 `json:"fiber" validate:"gte=0,lte=100"`
		UnitWeightG float64 `json:"unit_weight_g" validate:"gte=0,lte=5000"`
		Category    string  `json:"category" validate:"omitempty,max=60"`
	}

	UpdateIngredientRequest struct {
		Name        *string  `json:"name" validate:"omitempty,max=120"`
		Calories    *float64 `json:"calories" validate:"omitempty,gte=0,lte=1000"`
		Protein     *float64 `json:"protein" validate:"omitempty,gte=0,lte=100"`
		Carbs       *float64 `json:"carbs" validate:"omitempty,gte=0,lte=100"`
		Fat         *float64 `json:"fat" validate:"omitempty,gte=0,lte=100"`
		Fiber       *float64 `json:"fiber" validate:"omitempty,gte=0,lte=100"`
		UnitWeightG *float64 `json:"unit_weight_g" validate:"omitempty,gte=0,lte=5000"`
		Category    *string  `json:"category" validate:"omitempty,max=60"`
	}

	UploadImageRequest struct {
		Image *multipart.FileHeader `json:"image" form:"image" validate:"required"`
	}

	IngredientResponse struct {
		ID          string    `json:"id"`
		Name        string    `json:"name"`
		Calories    float64   `json:"calories"`
		Protein     float64   `json:"protein"`
		Carbs       float64   `json:"carbs"`
		Fat         float64   `json:"fat"`
		Fiber       float64   `json:"fiber"`
		UnitWeightG float64   `json:"unit_weight_g"`
		Category    string    `json:"category,omitempty"`
		Source      string    `json:"source"`
		ExternalID  string    `json:"external_id,omitempty"`
		ImageURL    string    `json:"image_url,omitempty"`
		CreatedAt   time.Time `json:"created_at"`
	}

	// NutritionLookupResult holds per-100 g facts from the external food database.
	NutritionLookupResult struct {
		ExternalID  string  `json:"external_id"`
		Description string  `json:"description"`
		Calories    float64 `json:"calories"`
		Protein     float64 `json:"protein"`
		Carbs       float64 `json:"carbs"`
		Fat         float64 `json:"fat"`
		Fiber       float64 `json:"fiber"`
	}

	BulkLookupRequest struct {
		Names []string `json:"names" validate:"required,min=1,max=50,dive,required,max=120"`
		Save  bool     `json:"save"`
	}

	BulkLookupItem struct {
		Name       string                 `json:"name"`
		Status     string                 `json:"status"`
		Result     *NutritionLookupResult `json:"result,omitempty"`
		Ingredient *IngredientResponse    `json:"ingredient,omitempty"`
		Error      string                 `json:"error,omitempty"`
	}

	BulkLookupResponse struct {
		Items   []BulkLookupItem `json:"items"`
		Found   int              `json:"found"`
		Created int              `json:"created"`
	}
)
