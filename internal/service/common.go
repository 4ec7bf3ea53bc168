package service

import (
	"fmt"
	"strings"

	"github.com/j1me/burntrack/internal/model"
)

func validateNonNegativeFloat(name string, value float64) error {
	if value < 0 {
		return fmt.Errorf("%s must be >= 0", name)
	}
	return nil
}

func validatePositiveFloat(name string, value float64) error {
	if value <= 0 {
		return fmt.Errorf("%s must be > 0", name)
	}
	return nil
}

func ParseGender(value string) (model.Gender, error) {
	switch model.Gender(strings.ToLower(strings.TrimSpace(value))) {
	case model.GenderMale:
		return model.GenderMale, nil
	case model.GenderFemale:
		return model.GenderFemale, nil
	case model.GenderOther:
		return model.GenderOther, nil
	default:
		return "", fmt.Errorf("invalid gender %q (use male, female, or other)", value)
	}
}

func ParseActivityLevel(value string) (model.ActivityLevel, error) {
	switch model.ActivityLevel(strings.ToLower(strings.TrimSpace(value))) {
	case model.ActivitySedentary:
		return model.ActivitySedentary, nil
	case model.ActivityLight:
		return model.ActivityLight, nil
	case model.ActivityModerate:
		return model.ActivityModerate, nil
	case model.ActivityActive:
		return model.ActivityActive, nil
	case model.ActivityVeryActive:
		return model.ActivityVeryActive, nil
	default:
		return "", fmt.Errorf("invalid activity level %q (use sedentary, light, moderate, active, or very_active)", value)
	}
}

func ParseWeightGoal(value string) (model.WeightGoal, error) {
	switch model.WeightGoal(strings.ToLower(strings.TrimSpace(value))) {
	case model.WeightGoalLose:
		return model.WeightGoalLose, nil
	case model.WeightGoalMaintain:
		return model.WeightGoalMaintain, nil
	case model.WeightGoalGain:
		return model.WeightGoalGain, nil
	default:
		return "", fmt.Errorf("invalid weight goal %q (use lose, maintain, or gain)", value)
	}
}

func ParseMealType(value string) (model.MealType, error) {
	switch model.MealType(strings.ToLower(strings.TrimSpace(value))) {
	case model.MealBreakfast:
		return model.MealBreakfast, nil
	case model.MealLunch:
		return model.MealLunch, nil
	case model.MealDinner:
		return model.MealDinner, nil
	case model.MealSnack:
		return model.MealSnack, nil
	default:
		return "", fmt.Errorf("invalid meal type %q (use breakfast, lunch, dinner, or snack)", value)
	}
}
