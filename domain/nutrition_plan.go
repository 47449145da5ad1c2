package domain

import (
	"errors"
	"fitcoach-backend/pkg/mealplan"
	"time"
)

const (
	PlanStatusDraft    = "draft"
	PlanStatusActive   = "active"
	PlanStatusArchived = "archived"
)

var (
	MessageSuccessCreatePlan      = "nutrition plan created successfully"
	MessageSuccessUpdatePlan      = "nutrition plan updated successfully"
	MessageSuccessDeletePlan      = "nutrition plan deleted successfully"
	MessageSuccessGetPlans        = "nutrition plans retrieved successfully"
	MessageSuccessGetPlan         = "nutrition plan retrieved successfully"
	MessageSuccessParsePlan       = "meal plan parsed"
	MessageSuccessImportPlan      = "meal plan imported as draft"
	MessageSuccessAssignPlan      = "nutrition plan assigned to customer"
	MessageSuccessGetPlanTotals   = "daily totals calculated"
	MessageSuccessGetShoppingList = "shopping list generated"
	MessageSuccessGetUnmapped     = "unmapped ingredients retrieved"

	MessageFailedCreatePlan      = "failed to create nutrition plan"
	MessageFailedUpdatePlan      = "failed to update nutrition plan"
	MessageFailedDeletePlan      = "failed to delete nutrition plan"
	MessageFailedGetPlans        = "failed to retrieve nutrition plans"
	MessageFailedGetPlan         = "failed to retrieve nutrition plan"
	MessageFailedParsePlan       = "failed to parse meal plan"
	MessageFailedImportPlan      = "failed to import meal plan"
	MessageFailedAssignPlan      = "failed to assign nutrition plan"
	MessageFailedGetPlanTotals   = "failed to calculate daily totals"
	MessageFailedGetShoppingList = "failed to generate shopping list"
	MessageFailedGetUnmapped     = "failed to retrieve unmapped ingredients"

	ErrPlanNotFound      = errors.New("nutrition plan not found")
	ErrPlanNotPublished  = errors.New("nutrition plan is not available")
	ErrPlanEmptyMenu     = errors.New("no days could be parsed from the text")
	ErrInvalidWeekMenu   = errors.New("week menu is not valid")
	ErrPlanAlreadyActive = errors.New("nutrition plan is already assigned to another customer")
)

type (
	CreatePlanRequest struct {
		CustomerID     string             `json:"customer_id" validate:"omitempty,uuid"`
		Title          string             `json:"title" validate:"required,max=160"`
		Description    string             `json:"description"`
		Notes          string             `json:"notes"`
		StartDate      string             `json:"start_date" validate:"omitempty,datetime=2006-01-02"`
		TargetCalories int                `json:"target_calories" validate:"gte=0,lte=10000"`
		TargetProtein  int                `json:"target_protein" validate:"gte=0,lte=1000"`
		TargetCarbs    int                `json:"target_carbs" validate:"gte=0,lte=2000"`
		TargetFat      int                `json:"target_fat" validate:"gte=0,lte=1000"`
		WeekMenu       *mealplan.WeekMenu `json:"week_menu"`
	}

	UpdatePlanRequest struct {
		CustomerID     *string            `json:"customer_id" validate:"omitempty,uuid"`
		Title          *string            `json:"title" validate:"omitempty,max=160"`
		Description    *string            `json:"description"`
		Notes          *string            `json:"notes"`
		StartDate      *string            `json:"start_date" validate:"omitempty,datetime=2006-01-02"`
		Status         *string            `json:"status" validate:"omitempty,oneof=draft active archived"`
		TargetCalories *int               `json:"target_calories" validate:"omitempty,gte=0,lte=10000"`
		TargetProtein  *int               `json:"target_protein" validate:"omitempty,gte=0,lte=1000"`
		TargetCarbs    *int               `json:"target_carbs" validate:"omitempty,gte=0,lte=2000"`
		TargetFat      *int               `json:"target_fat" validate:"omitempty,gte=0,lte=1000"`
		WeekMenu       *mealplan.WeekMenu `json:"week_menu"`
	}

	ParsePlanRequest struct {
		Text string `json:"text" validate:"required,max=50000"`
	}

	ImportPlanRequest struct {
		Title      string `json:"title" validate:"required,max=160"`
		CustomerID string `json:"customer_id" validate:"omitempty,uuid"`
		Text       string `json:"text" validate:"required,max=50000"`
	}

	AssignPlanRequest struct {
		CustomerID string `json:"customer_id" validate:"required,uuid"`
	}

	PlanFilter struct {
		CustomerID string
		Status     string
		Page       int
		Limit      int
	}

	ParsePlanResponse struct {
		Menu   mealplan.WeekMenu     `json:"menu"`
		Errors []mealplan.ParseError `json:"errors"`
	}

	ImportPlanResponse struct {
		Plan   NutritionPlanResponse `json:"plan"`
		Errors []mealplan.ParseError `json:"errors"`
	}

	NutritionPlanSummary struct {
		ID         string     `json:"id"`
		Title      string     `json:"title"`
		Status     string     `json:"status"`
		CustomerID string     `json:"customer_id,omitempty"`
		StartDate  *time.Time `json:"start_date,omitempty"`
		CreatedAt  time.Time  `json:"created_at"`
	}

	NutritionPlanResponse struct {
		NutritionPlanSummary
		Description    string            `json:"description,omitempty"`
		Notes          string            `json:"notes,omitempty"`
		TargetCalories int               `json:"target_calories"`
		TargetProtein  int               `json:"target_protein"`
		TargetCarbs    int               `json:"target_carbs"`
		TargetFat      int               `json:"target_fat"`
		WeekMenu       mealplan.WeekMenu `json:"week_menu"`
		PublicToken    string            `json:"public_token,omitempty"`
		PublicURL      string            `json:"public_url,omitempty"`
	}

	UnmappedIngredient struct {
		Name        string `json:"name"`
		Occurrences int    `json:"occurrences"`
	}

	// PublicPlanResponse is what a customer sees through the shared link.
	PublicPlanResponse struct {
		Title           string                  `json:"title"`
		CustomerName    string                  `json:"customer_name,omitempty"`
		StartDate       *time.Time              `json:"start_date,omitempty"`
		DescriptionHTML string                  `json:"description_html,omitempty"`
		NotesHTML       string                  `json:"notes_html,omitempty"`
		TargetCalories  int                     `json:"target_calories"`
		TargetProtein   int                     `json:"target_protein"`
		TargetCarbs     int                     `json:"target_carbs"`
		TargetFat       int                     `json:"target_fat"`
		WeekMenu        mealplan.WeekMenu       `json:"week_menu"`
		Totals          mealplan.PlanTotals     `json:"totals"`
		ShoppingList    []mealplan.ShoppingItem `json:"shopping_list"`
	}
)
