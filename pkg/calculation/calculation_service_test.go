package calculation

import (
	"context"
	"fitcoach-backend/domain"
	"fitcoach-backend/internal/utils/testdb"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculationServiceStoresResults(t *testing.T) {
	svc := NewCalculationService(NewCalculationRepository(testdb.New(t)))
	ctx := context.Background()
	customerID := uuid.NewString()

	nutrition, err := svc.CalculateNutrition(ctx, domain.NutritionCalculationRequest{
		CustomerID: customerID, Gender: "male", Age: 30, HeightCm: 180, WeightKg: 80,
		ActivityLevel: "moderate", Goal: "maintain",
	})
	require.NoError(t, err)
	assert.Equal(t, 2759, nutrition.TargetCalories)
	assert.Equal(t, 2.0, nutrition.ProteinPerKg)

	_, err = svc.CalculateNutrition(ctx, domain.NutritionCalculationRequest{
		Gender: "female", Age: 25, HeightCm: 165, WeightKg: 60, ActivityLevel: "light", Goal: "lose",
	})
	require.NoError(t, err)

	list, total, err := svc.GetNutritionCalculations(ctx, customerID, 1, 20)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	assert.Equal(t, nutrition.ID, list[0].ID)

	_, total, err = svc.GetNutritionCalculations(ctx, "", 1, 20)
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
}

func TestCalculatePricingUsesDefaultVAT(t *testing.T) {
	svc := NewCalculationService(NewCalculationRepository(testdb.New(t)))
	ctx := context.Background()

	res, err := svc.CalculatePricing(ctx, domain.PricingCalculationRequest{
		Label:           "12 week starter",
		SessionPrice:    "100000",
		SessionsPerWeek: 1,
		Weeks:           4,
	})
	require.NoError(t, err)
	assert.Equal(t, "11", res.VATPercent.String())
	assert.Equal(t, "444000", res.Total.String())

	_, err = svc.CalculatePricing(ctx, domain.PricingCalculationRequest{
		SessionPrice: "abc", SessionsPerWeek: 1, Weeks: 4,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)

	_, err = svc.CalculatePricing(ctx, domain.PricingCalculationRequest{
		CustomerID: "nope", SessionPrice: "1", SessionsPerWeek: 1, Weeks: 4,
	})
	assert.ErrorIs(t, err, domain.ErrParseUUID)

	list, total, err := svc.GetPricingCalculations(ctx, "", 1, 20)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	assert.Equal(t, "12 week starter", list[0].Label)
	assert.True(t, res.Total.Equal(list[0].Total))
}
