package service_test

import (
	"math"
	"testing"

	"github.com/j1me/burntrack/internal/model"
	"github.com/j1me/burntrack/internal/service"
)

func TestCalculateBMIRoundsToOneDecimal(t *testing.T) {
	t.Parallel()
	result := service.CalculateBMI(70, 175)
	if result.BMI != 22.9 {
		t.Fatalf("expected BMI 22.9, got %.2f", result.BMI)
	}
	if result.Category != service.BMINormal {
		t.Fatalf("expected normal, got %s", result.Category)
	}
}

func TestBMICategoryBoundariesBelongToUpperCategory(t *testing.T) {
	t.Parallel()
	cases := []struct {
		weightKg float64
		heightCm float64
		want     service.BMICategory
	}{
		{18.5, 100, service.BMINormal},     // exactly 18.5
		{25, 100, service.BMIOverweight},   // exactly 25
		{30, 100, service.BMIObese},        // exactly 30
		{18.4, 100, service.BMIUnderweight},
		{29.9, 100, service.BMIOverweight},
	}
	for _, tc := range cases {
		got := service.CalculateBMI(tc.weightKg, tc.heightCm)
		if got.Category != tc.want {
			t.Fatalf("BMI %.1f: expected %s, got %s", got.BMI, tc.want, got.Category)
		}
	}
}

func TestCalculateBMRByGender(t *testing.T) {
	t.Parallel()
	base := 10*70.0 + 6.25*175 - 5*30
	if got := service.CalculateBMR(70, 175, 30, model.GenderMale); got != base+5 {
		t.Fatalf("male BMR: expected %.2f, got %.2f", base+5, got)
	}
	if got := service.CalculateBMR(70, 175, 30, model.GenderFemale); got != base-161 {
		t.Fatalf("female BMR: expected %.2f, got %.2f", base-161, got)
	}
	// Midpoint of the male/female offsets; the constant is deliberate.
	if got := service.CalculateBMR(70, 175, 30, model.GenderOther); got != base-78 {
		t.Fatalf("other BMR: expected %.2f, got %.2f", base-78, got)
	}
}

func TestActivityMultiplierFallsBackToSedentary(t *testing.T) {
	t.Parallel()
	if m := service.ActivityMultiplier(model.ActivityLevel("couch")); m != 1.2 {
		t.Fatalf("expected 1.2 fallback, got %.3f", m)
	}
	if m := service.ActivityMultiplier(model.ActivityVeryActive); m != 1.9 {
		t.Fatalf("expected 1.9, got %.3f", m)
	}
}

func TestDailyCalorieNeedsReferenceProfile(t *testing.T) {
	t.Parallel()
	p := model.UserProfile{
		WeightKg:      70,
		HeightCm:      175,
		Age:           30,
		Gender:        model.GenderMale,
		ActivityLevel: model.ActivityModerate,
		WeightGoal:    model.WeightGoalMaintain,
	}
	// BMR 1736.25 x 1.55 = 2691.19, maintain adds nothing.
	if got := service.DailyCalorieNeeds(p); got != 2691 {
		t.Fatalf("expected 2691 kcal, got %d", got)
	}

	p.WeightGoal = model.WeightGoalLose
	if got := service.DailyCalorieNeeds(p); got != 2191 {
		t.Fatalf("expected 2191 kcal for lose, got %d", got)
	}
	p.WeightGoal = model.WeightGoalGain
	if got := service.DailyCalorieNeeds(p); got != 3191 {
		t.Fatalf("expected 3191 kcal for gain, got %d", got)
	}
}

func TestDailyCalorieNeedsIsDeterministic(t *testing.T) {
	t.Parallel()
	p := model.UserProfile{
		WeightKg:      62.5,
		HeightCm:      168,
		Age:           41,
		Gender:        model.GenderFemale,
		ActivityLevel: model.ActivityLight,
		WeightGoal:    model.WeightGoalLose,
	}
	first := service.DailyCalorieNeeds(p)
	for i := 0; i < 5; i++ {
		if got := service.DailyCalorieNeeds(p); got != first {
			t.Fatalf("expected stable %d, got %d", first, got)
		}
	}
	expected := int(math.Round((10*62.5+6.25*168-5*41-161)*1.375 - 500))
	if first != expected {
		t.Fatalf("expected %d, got %d", expected, first)
	}
}
