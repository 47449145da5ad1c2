package calculation

import (
	"fitcoach-backend/domain"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

type (
	PricingInput struct {
		SessionPrice        decimal.Decimal
		SessionsPerWeek     int
		Weeks               int
		NutritionFeeMonthly decimal.Decimal
		Months              int
		DiscountPercent     decimal.Decimal
		VATPercent          decimal.Decimal
	}

	PricingResult struct {
		Months         int
		Subtotal       decimal.Decimal
		DiscountAmount decimal.Decimal
		VATAmount      decimal.Decimal
		Total          decimal.Decimal
		PricePerWeek   decimal.Decimal
	}
)

// CalculatePrice sums training sessions and the nutrition fee, takes the
// discount off the subtotal and adds VAT on what remains. Every amount is
// rounded to cents. Months defaults to the weeks rounded up to whole
// four-week months when a nutrition fee is set.
func CalculatePrice(in PricingInput) (PricingResult, error) {
	if in.SessionsPerWeek <= 0 || in.Weeks <= 0 {
		return PricingResult{}, domain.ErrInvalidPricingInput
	}
	if in.SessionPrice.IsNegative() || in.NutritionFeeMonthly.IsNegative() {
		return PricingResult{}, domain.ErrInvalidAmount
	}
	if !validPercent(in.DiscountPercent) || !validPercent(in.VATPercent) {
		return PricingResult{}, domain.ErrInvalidPercent
	}

	months := in.Months
	if months == 0 && in.NutritionFeeMonthly.IsPositive() {
		months = (in.Weeks + 3) / 4
	}

	training := in.SessionPrice.
		Mul(decimal.NewFromInt(int64(in.SessionsPerWeek))).
		Mul(decimal.NewFromInt(int64(in.Weeks)))
	nutrition := in.NutritionFeeMonthly.Mul(decimal.NewFromInt(int64(months)))

	subtotal := training.Add(nutrition).Round(2)
	discount := subtotal.Mul(in.DiscountPercent).Div(hundred).Round(2)
	taxable := subtotal.Sub(discount)
	vat := taxable.Mul(in.VATPercent).Div(hundred).Round(2)
	total := taxable.Add(vat)

	return PricingResult{
		Months:         months,
		Subtotal:       subtotal,
		DiscountAmount: discount,
		VATAmount:      vat,
		Total:          total,
		PricePerWeek:   total.Div(decimal.NewFromInt(int64(in.Weeks))).Round(2),
	}, nil
}

func validPercent(p decimal.Decimal) bool {
	return !p.IsNegative() && p.LessThanOrEqual(hundred)
}
