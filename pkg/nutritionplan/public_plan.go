package nutritionplan

import (
	"context"
	"errors"
	"fitcoach-backend/domain"
	"fitcoach-backend/internal/utils/markdown"
	"fitcoach-backend/pkg/ingredient"
	"fitcoach-backend/pkg/mealplan"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetPublicPlan serves the customer view behind the shared link. Archived
// plans and plans that were never assigned are not served.
func (s *nutritionPlanService) GetPublicPlan(ctx context.Context, token string) (domain.PublicPlanResponse, error) {
	if _, err := uuid.Parse(token); err != nil {
		return domain.PublicPlanResponse{}, domain.ErrPlanNotFound
	}
	plan, err := s.planRepository.GetPlanByToken(ctx, token)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.PublicPlanResponse{}, domain.ErrPlanNotFound
		}
		return domain.PublicPlanResponse{}, err
	}
	if plan.Status != domain.PlanStatusActive {
		return domain.PublicPlanResponse{}, domain.ErrPlanNotPublished
	}

	menu, err := mealplan.DecodeWeekMenu(plan.WeekMenu)
	if err != nil {
		return domain.PublicPlanResponse{}, domain.ErrInvalidWeekMenu
	}
	index, weights, err := ingredient.FactsIndex(ctx, s.ingredientRepository)
	if err != nil {
		return domain.PublicPlanResponse{}, err
	}

	res := domain.PublicPlanResponse{
		Title:           plan.Title,
		StartDate:       plan.StartDate,
		DescriptionHTML: markdown.ToHTML(plan.Description),
		NotesHTML:       markdown.ToHTML(plan.Notes),
		TargetCalories:  plan.TargetCalories,
		TargetProtein:   plan.TargetProtein,
		TargetCarbs:     plan.TargetCarbs,
		TargetFat:       plan.TargetFat,
		WeekMenu:        menu,
		Totals:          mealplan.DailyTotals(menu, index),
		ShoppingList:    mealplan.ShoppingList(menu, weights),
	}
	if plan.Customer != nil {
		res.CustomerName = plan.Customer.Name
	}
	return res, nil
}
