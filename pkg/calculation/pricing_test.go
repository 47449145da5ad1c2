package calculation

import (
	"fitcoach-backend/domain"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestCalculatePrice(t *testing.T) {
	res, err := CalculatePrice(PricingInput{
		SessionPrice:        dec("150000"),
		SessionsPerWeek:     2,
		Weeks:               12,
		NutritionFeeMonthly: dec("250000"),
		Months:              3,
		DiscountPercent:     dec("10"),
		VATPercent:          dec("11"),
	})
	require.NoError(t, err)

	assert.True(t, dec("4350000").Equal(res.Subtotal), res.Subtotal.String())
	assert.True(t, dec("435000").Equal(res.DiscountAmount), res.DiscountAmount.String())
	assert.True(t, dec("430650").Equal(res.VATAmount), res.VATAmount.String())
	assert.True(t, dec("4345650").Equal(res.Total), res.Total.String())
	assert.True(t, dec("362137.5").Equal(res.PricePerWeek), res.PricePerWeek.String())
}

func TestCalculatePriceRoundsToCents(t *testing.T) {
	res, err := CalculatePrice(PricingInput{
		SessionPrice:    dec("33.33"),
		SessionsPerWeek: 1,
		Weeks:           3,
		DiscountPercent: dec("7.5"),
		VATPercent:      dec("19"),
	})
	require.NoError(t, err)

	// 99.99 - 7.50 = 92.49, VAT 17.5731 -> 17.57
	assert.Equal(t, "99.99", res.Subtotal.StringFixed(2))
	assert.Equal(t, "7.50", res.DiscountAmount.StringFixed(2))
	assert.Equal(t, "17.57", res.VATAmount.StringFixed(2))
	assert.Equal(t, "110.06", res.Total.StringFixed(2))
	assert.Equal(t, "36.69", res.PricePerWeek.StringFixed(2))
	assert.Equal(t, 0, res.Months)
}

func TestCalculatePriceDerivesMonths(t *testing.T) {
	res, err := CalculatePrice(PricingInput{
		SessionPrice:        dec("100"),
		SessionsPerWeek:     1,
		Weeks:               10,
		NutritionFeeMonthly: dec("50"),
	})
	require.NoError(t, err)
	assert.Equal(t, 3, res.Months)
	assert.Equal(t, "1150.00", res.Total.StringFixed(2))
}

func TestCalculatePriceInvalid(t *testing.T) {
	_, err := CalculatePrice(PricingInput{SessionPrice: dec("10"), SessionsPerWeek: 0, Weeks: 4})
	assert.ErrorIs(t, err, domain.ErrInvalidPricingInput)

	_, err = CalculatePrice(PricingInput{SessionPrice: dec("10"), SessionsPerWeek: 1, Weeks: 4, DiscountPercent: dec("120")})
	assert.ErrorIs(t, err, domain.ErrInvalidPercent)

	_, err = CalculatePrice(PricingInput{SessionPrice: dec("-1"), SessionsPerWeek: 1, Weeks: 4})
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)
}
