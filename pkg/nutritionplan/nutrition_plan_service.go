package nutritionplan

import (
	"context"
	"errors"
	"fitcoach-backend/domain"
	"fitcoach-backend/entities"
	"fitcoach-backend/internal/utils"
	"fitcoach-backend/pkg/customer"
	"fitcoach-backend/pkg/ingredient"
	"fitcoach-backend/pkg/mealplan"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	NutritionPlanService interface {
		CreatePlan(ctx context.Context, req domain.CreatePlanRequest) (domain.NutritionPlanResponse, error)
		UpdatePlan(ctx context.Context, id string, req domain.UpdatePlanRequest) (domain.NutritionPlanResponse, error)
		DeletePlan(ctx context.Context, id string) error
		GetPlans(ctx context.Context, filter domain.PlanFilter) ([]domain.NutritionPlanSummary, int64, error)
		GetPlanByID(ctx context.Context, id string) (domain.NutritionPlanResponse, error)
		ParsePlan(ctx context.Context, req domain.ParsePlanRequest) domain.ParsePlanResponse
		ImportPlan(ctx context.Context, req domain.ImportPlanRequest) (domain.ImportPlanResponse, error)
		AssignPlan(ctx context.Context, id string, req domain.AssignPlanRequest) (domain.NutritionPlanResponse, error)
		GetPlanTotals(ctx context.Context, id string) (mealplan.PlanTotals, error)
		GetShoppingList(ctx context.Context, id string) ([]mealplan.ShoppingItem, error)
		GetUnmapped(ctx context.Context, id string) ([]domain.UnmappedIngredient, error)
		GetPublicPlan(ctx context.Context, token string) (domain.PublicPlanResponse, error)
	}

	nutritionPlanService struct {
		planRepository       NutritionPlanRepository
		customerRepository   customer.CustomerRepository
		ingredientRepository ingredient.IngredientRepository
		appURL               string
	}
)

func NewNutritionPlanService(
	planRepository NutritionPlanRepository,
	customerRepository customer.CustomerRepository,
	ingredientRepository ingredient.IngredientRepository,
) NutritionPlanService {
	return &nutritionPlanService{
		planRepository:       planRepository,
		customerRepository:   customerRepository,
		ingredientRepository: ingredientRepository,
		appURL:               strings.TrimRight(utils.GetConfig("APP_URL"), "/"),
	}
}

func (s *nutritionPlanService) CreatePlan(ctx context.Context, req domain.CreatePlanRequest) (domain.NutritionPlanResponse, error) {
	plan := &entities.NutritionPlan{
		ID:             uuid.New(),
		Title:          strings.TrimSpace(req.Title),
		Description:    req.Description,
		Notes:          req.Notes,
		Status:         domain.PlanStatusDraft,
		TargetCalories: req.TargetCalories,
		TargetProtein:  req.TargetProtein,
		TargetCarbs:    req.TargetCarbs,
		TargetFat:      req.TargetFat,
	}

	if req.CustomerID != "" {
		customerID, err := s.ensureCustomer(ctx, req.CustomerID)
		if err != nil {
			return domain.NutritionPlanResponse{}, err
		}
		plan.CustomerID = &customerID
	}

	startDate, err := parseOptionalDate(req.StartDate)
	if err != nil {
		return domain.NutritionPlanResponse{}, err
	}
	plan.StartDate = startDate

	menu := mealplan.WeekMenu{}
	if req.WeekMenu != nil {
		menu = *req.WeekMenu
	}
	if plan.WeekMenu, err = encodeMenu(menu); err != nil {
		return domain.NutritionPlanResponse{}, err
	}

	if err := s.planRepository.CreatePlan(ctx, plan); err != nil {
		return domain.NutritionPlanResponse{}, err
	}
	return s.toPlanResponse(plan), nil
}

func (s *nutritionPlanService) UpdatePlan(ctx context.Context, id string, req domain.UpdatePlanRequest) (domain.NutritionPlanResponse, error) {
	plan, err := s.getPlan(ctx, id)
	if err != nil {
		return domain.NutritionPlanResponse{}, err
	}

	if req.CustomerID != nil {
		if *req.CustomerID == "" {
			plan.CustomerID = nil
		} else {
			customerID, err := s.ensureCustomer(ctx, *req.CustomerID)
			if err != nil {
				return domain.NutritionPlanResponse{}, err
			}
			plan.CustomerID = &customerID
		}
	}
	if req.Title != nil {
		plan.Title = strings.TrimSpace(*req.Title)
	}
	if req.Description != nil {
		plan.Description = *req.Description
	}
	if req.Notes != nil {
		plan.Notes = *req.Notes
	}
	if req.StartDate != nil {
		if plan.StartDate, err = parseOptionalDate(*req.StartDate); err != nil {
			return domain.NutritionPlanResponse{}, err
		}
	}
	if req.Status != nil {
		plan.Status = *req.Status
	}
	if req.TargetCalories != nil {
		plan.TargetCalories = *req.TargetCalories
	}
	if req.TargetProtein != nil {
		plan.TargetProtein = *req.TargetProtein
	}
	if req.TargetCarbs != nil {
		plan.TargetCarbs = *req.TargetCarbs
	}
	if req.TargetFat != nil {
		plan.TargetFat = *req.TargetFat
	}
	if req.WeekMenu != nil {
		if plan.WeekMenu, err = encodeMenu(*req.WeekMenu); err != nil {
			return domain.NutritionPlanResponse{}, err
		}
	}

	plan.Customer = nil
	if err := s.planRepository.UpdatePlan(ctx, plan); err != nil {
		return domain.NutritionPlanResponse{}, err
	}
	return s.toPlanResponse(plan), nil
}

func (s *nutritionPlanService) DeletePlan(ctx context.Context, id string) error {
	if _, err := s.getPlan(ctx, id); err != nil {
		return err
	}
	return s.planRepository.DeletePlan(ctx, id)
}

func (s *nutritionPlanService) GetPlans(ctx context.Context, filter domain.PlanFilter) ([]domain.NutritionPlanSummary, int64, error) {
	if filter.CustomerID != "" {
		if _, err := uuid.Parse(filter.CustomerID); err != nil {
			return nil, 0, domain.ErrParseUUID
		}
	}
	plans, count, err := s.planRepository.GetPlans(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	response := make([]domain.NutritionPlanSummary, 0, len(plans))
	for _, p := range plans {
		response = append(response, toPlanSummary(p))
	}
	return response, count, nil
}

func (s *nutritionPlanService) GetPlanByID(ctx context.Context, id string) (domain.NutritionPlanResponse, error) {
	plan, err := s.getPlan(ctx, id)
	if err != nil {
		return domain.NutritionPlanResponse{}, err
	}
	return s.toPlanResponse(plan), nil
}

func (s *nutritionPlanService) ParsePlan(_ context.Context, req domain.ParsePlanRequest) domain.ParsePlanResponse {
	result := mealplan.Parse(req.Text)
	return domain.ParsePlanResponse{Menu: result.Menu, Errors: result.Errors}
}

// ImportPlan saves the parsed text as a draft. Lines the parser skipped are
// returned alongside the plan so the coach can fix them.
func (s *nutritionPlanService) ImportPlan(ctx context.Context, req domain.ImportPlanRequest) (domain.ImportPlanResponse, error) {
	result := mealplan.Parse(req.Text)
	if len(result.Menu.Days) == 0 {
		return domain.ImportPlanResponse{}, domain.ErrPlanEmptyMenu
	}

	plan, err := s.CreatePlan(ctx, domain.CreatePlanRequest{
		CustomerID: req.CustomerID,
		Title:      req.Title,
		WeekMenu:   &result.Menu,
	})
	if err != nil {
		return domain.ImportPlanResponse{}, err
	}
	return domain.ImportPlanResponse{Plan: plan, Errors: result.Errors}, nil
}

// AssignPlan links the plan to a customer, activates it and issues the public
// token. A plan keeps its token across reassignments.
func (s *nutritionPlanService) AssignPlan(ctx context.Context, id string, req domain.AssignPlanRequest) (domain.NutritionPlanResponse, error) {
	plan, err := s.getPlan(ctx, id)
	if err != nil {
		return domain.NutritionPlanResponse{}, err
	}
	customerID, err := s.ensureCustomer(ctx, req.CustomerID)
	if err != nil {
		return domain.NutritionPlanResponse{}, err
	}

	if plan.Status == domain.PlanStatusActive && plan.CustomerID != nil && *plan.CustomerID != customerID {
		return domain.NutritionPlanResponse{}, domain.ErrPlanAlreadyActive
	}

	plan.CustomerID = &customerID
	plan.Status = domain.PlanStatusActive
	if plan.PublicToken == nil {
		token := uuid.NewString()
		plan.PublicToken = &token
	}
	if plan.StartDate == nil {
		today := time.Now().UTC().Truncate(24 * time.Hour)
		plan.StartDate = &today
	}

	plan.Customer = nil
	if err := s.planRepository.UpdatePlan(ctx, plan); err != nil {
		return domain.NutritionPlanResponse{}, err
	}
	return s.toPlanResponse(plan), nil
}

func (s *nutritionPlanService) GetPlanTotals(ctx context.Context, id string) (mealplan.PlanTotals, error) {
	plan, err := s.getPlan(ctx, id)
	if err != nil {
		return mealplan.PlanTotals{}, err
	}
	menu, err := mealplan.DecodeWeekMenu(plan.WeekMenu)
	if err != nil {
		return mealplan.PlanTotals{}, domain.ErrInvalidWeekMenu
	}
	index, _, err := ingredient.FactsIndex(ctx, s.ingredientRepository)
	if err != nil {
		return mealplan.PlanTotals{}, err
	}
	return mealplan.DailyTotals(menu, index), nil
}

func (s *nutritionPlanService) GetShoppingList(ctx context.Context, id string) ([]mealplan.ShoppingItem, error) {
	plan, err := s.getPlan(ctx, id)
	if err != nil {
		return nil, err
	}
	menu, err := mealplan.DecodeWeekMenu(plan.WeekMenu)
	if err != nil {
		return nil, domain.ErrInvalidWeekMenu
	}
	_, weights, err := ingredient.FactsIndex(ctx, s.ingredientRepository)
	if err != nil {
		return nil, err
	}
	return mealplan.ShoppingList(menu, weights), nil
}

// GetUnmapped lists ingredient names in the plan that resolve to no
// ingredient record, most frequent first.
func (s *nutritionPlanService) GetUnmapped(ctx context.Context, id string) ([]domain.UnmappedIngredient, error) {
	plan, err := s.getPlan(ctx, id)
	if err != nil {
		return nil, err
	}
	menu, err := mealplan.DecodeWeekMenu(plan.WeekMenu)
	if err != nil {
		return nil, domain.ErrInvalidWeekMenu
	}
	index, _, err := ingredient.FactsIndex(ctx, s.ingredientRepository)
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int)
	for _, day := range menu.Days {
		for _, meal := range day.Meals {
			for _, line := range meal.Ingredients {
				name := mealplan.ParseIngredient(line).Normalized
				if name == "" {
					continue
				}
				if _, ok := index.Find(name); !ok {
					counts[name]++
				}
			}
		}
	}

	unmapped := make([]domain.UnmappedIngredient, 0, len(counts))
	for name, n := range counts {
		unmapped = append(unmapped, domain.UnmappedIngredient{Name: name, Occurrences: n})
	}
	sort.Slice(unmapped, func(i, j int) bool {
		if unmapped[i].Occurrences != unmapped[j].Occurrences {
			return unmapped[i].Occurrences > unmapped[j].Occurrences
		}
		return unmapped[i].Name < unmapped[j].Name
	})
	return unmapped, nil
}

func (s *nutritionPlanService) getPlan(ctx context.Context, id string) (*entities.NutritionPlan, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrParseUUID
	}
	plan, err := s.planRepository.GetPlanByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrPlanNotFound
		}
		return nil, err
	}
	return plan, nil
}

func (s *nutritionPlanService) ensureCustomer(ctx context.Context, id string) (uuid.UUID, error) {
	customerID, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, domain.ErrParseUUID
	}
	if _, err := s.customerRepository.GetCustomerByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return uuid.Nil, domain.ErrCustomerNotFound
		}
		return uuid.Nil, err
	}
	return customerID, nil
}

func (s *nutritionPlanService) publicURL(token *string) string {
	if token == nil {
		return ""
	}
	return s.appURL + "/my-plan/" + *token
}

func (s *nutritionPlanService) toPlanResponse(plan *entities.NutritionPlan) domain.NutritionPlanResponse {
	// stored menus are written by encodeMenu, a decode failure leaves the menu empty
	menu, _ := mealplan.DecodeWeekMenu(plan.WeekMenu)
	if menu.Days == nil {
		menu.Days = []mealplan.Day{}
	}

	res := domain.NutritionPlanResponse{
		NutritionPlanSummary: toPlanSummary(plan),
		Description:          plan.Description,
		Notes:                plan.Notes,
		TargetCalories:       plan.TargetCalories,
		TargetProtein:        plan.TargetProtein,
		TargetCarbs:          plan.TargetCarbs,
		TargetFat:            plan.TargetFat,
		WeekMenu:             menu,
		PublicURL:            s.publicURL(plan.PublicToken),
	}
	if plan.PublicToken != nil {
		res.PublicToken = *plan.PublicToken
	}
	return res
}

func toPlanSummary(plan *entities.NutritionPlan) domain.NutritionPlanSummary {
	summary := domain.NutritionPlanSummary{
		ID:        plan.ID.String(),
		Title:     plan.Title,
		Status:    plan.Status,
		StartDate: plan.StartDate,
		CreatedAt: plan.CreatedAt,
	}
	if plan.CustomerID != nil {
		summary.CustomerID = plan.CustomerID.String()
	}
	return summary
}

func encodeMenu(menu mealplan.WeekMenu) (string, error) {
	encoded, err := menu.Encode()
	if err != nil {
		return "", domain.ErrInvalidWeekMenu
	}
	return encoded, nil
}

func parseOptionalDate(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse(domain.DateLayout, raw)
	if err != nil {
		return nil, domain.ErrInvalidDate
	}
	return &t, nil
}
