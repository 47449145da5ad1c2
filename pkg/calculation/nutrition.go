package calculation

import (
	"fitcoach-backend/domain"
	"math"
)

const (
	DefaultProteinPerKg = 2.0
	fatShare            = 0.25
	minTargetCalories   = 1200
)

var activityFactors = map[string]float64{
	"sedentary":   1.2,
	"light":       1.375,
	"moderate":    1.55,
	"active":      1.725,
	"very_active": 1.9,
}

var goalAdjustments = map[string]float64{
	"lose":     -500,
	"maintain": 0,
	"gain":     300,
}

type (
	NutritionInput struct {
		Gender        string
		Age           int
		HeightCm      float64
		WeightKg      float64
		ActivityLevel string
		Goal          string
		ProteinPerKg  float64
	}

	NutritionResult struct {
		BMR            int
		TDEE           int
		TargetCalories int
		ProteinG       int
		CarbsG         int
		FatG           int
	}
)

// CalculateNutrition applies Mifflin-St Jeor, the activity factor and the goal
// adjustment. Fat takes a quarter of the target, protein is per kg of body
// weight and carbs fill the rest.
func CalculateNutrition(in NutritionInput) (NutritionResult, error) {
	if in.Age <= 0 || in.HeightCm <= 0 || in.WeightKg <= 0 {
		return NutritionResult{}, domain.ErrInvalidBodyMetrics
	}
	factor, ok := activityFactors[in.ActivityLevel]
	if !ok {
		return NutritionResult{}, domain.ErrInvalidActivityLevel
	}
	adjustment, ok := goalAdjustments[in.Goal]
	if !ok {
		return NutritionResult{}, domain.ErrInvalidGoal
	}

	bmr := 10*in.WeightKg + 6.25*in.HeightCm - 5*float64(in.Age)
	switch in.Gender {
	case "male":
		bmr += 5
	case "female":
		bmr -= 161
	default:
		return NutritionResult{}, domain.ErrInvalidGender
	}

	tdee := math.Round(bmr * factor)
	target := math.Max(tdee+adjustment, minTargetCalories)

	proteinPerKg := in.ProteinPerKg
	if proteinPerKg <= 0 {
		proteinPerKg = DefaultProteinPerKg
	}
	protein := proteinPerKg * in.WeightKg
	fatKcal := target * fatShare
	carbs := math.Max((target-protein*4-fatKcal)/4, 0)

	return NutritionResult{
		BMR:            int(math.Round(bmr)),
		TDEE:           int(tdee),
		TargetCalories: int(target),
		ProteinG:       int(math.Round(protein)),
		CarbsG:         int(math.Round(carbs)),
		FatG:           int(math.Round(fatKcal / 9)),
	}, nil
}
