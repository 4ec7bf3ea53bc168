package service

import (
	"math"

	"github.com/j1me/burntrack/internal/model"
)

type BMICategory string

const (
	BMIUnderweight BMICategory = "underweight"
	BMINormal      BMICategory = "normal"
	BMIOverweight  BMICategory = "overweight"
	BMIObese       BMICategory = "obese"
)

type BMIResult struct {
	BMI      float64
	Category BMICategory
}

// CalculateBMI returns weight(kg) / height(m)^2 rounded to one decimal.
// Boundary values belong to the upper category: 18.5 is normal, 25 is
// overweight, 30 is obese.
func CalculateBMI(weightKg, heightCm float64) BMIResult {
	heightM := heightCm / 100
	bmi := weightKg / (heightM * heightM)

	var category BMICategory
	switch {
	case bmi < 18.5:
		category = BMIUnderweight
	case bmi < 25:
		category = BMINormal
	case bmi < 30:
		category = BMIOverweight
	default:
		category = BMIObese
	}
	return BMIResult{BMI: round1(bmi), Category: category}
}

// CalculateBMR implements Mifflin-St Jeor. The -78 offset for genders other
// than male/female is the documented midpoint of the male (+5) and female
// (-161) offsets; keep the constant as-is.
func CalculateBMR(weightKg, heightCm float64, age int, gender model.Gender) float64 {
	base := 10*weightKg + 6.25*heightCm - 5*float64(age)
	switch gender {
	case model.GenderMale:
		return base + 5
	case model.GenderFemale:
		return base - 161
	default:
		return base - 78
	}
}

func ActivityMultiplier(level model.ActivityLevel) float64 {
	switch level {
	case model.ActivitySedentary:
		return 1.2
	case model.ActivityLight:
		return 1.375
	case model.ActivityModerate:
		return 1.55
	case model.ActivityActive:
		return 1.725
	case model.ActivityVeryActive:
		return 1.9
	default:
		return 1.2
	}
}

func WeightGoalAdjustment(goal model.WeightGoal) float64 {
	switch goal {
	case model.WeightGoalLose:
		return -500
	case model.WeightGoalGain:
		return 500
	default:
		return 0
	}
}

// DailyCalorieNeeds composes BMR, the activity multiplier, and the goal
// adjustment into the profile's calorie target. This is the only source of
// UserProfile.GoalCalories; it is recomputed on every profile change and
// never hand-edited.
func DailyCalorieNeeds(p model.UserProfile) int {
	bmr := CalculateBMR(p.WeightKg, p.HeightCm, p.Age, p.Gender)
	maintenance := bmr * ActivityMultiplier(p.ActivityLevel)
	return int(math.Round(maintenance + WeightGoalAdjustment(p.WeightGoal)))
}
