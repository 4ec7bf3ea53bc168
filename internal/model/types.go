package model

import "time"

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

type ActivityLevel string

const (
	ActivitySedentary  ActivityLevel = "sedentary"
	ActivityLight      ActivityLevel = "light"
	ActivityModerate   ActivityLevel = "moderate"
	ActivityActive     ActivityLevel = "active"
	ActivityVeryActive ActivityLevel = "very_active"
)

type WeightGoal string

const (
	WeightGoalLose     WeightGoal = "lose"
	WeightGoalMaintain WeightGoal = "maintain"
	WeightGoalGain     WeightGoal = "gain"
)

type MealType string

const (
	MealBreakfast MealType = "breakfast"
	MealLunch     MealType = "lunch"
	MealDinner    MealType = "dinner"
	MealSnack     MealType = "snack"
)

type UserProfile struct {
	ID            string
	Name          string
	Age           int
	Gender        Gender
	HeightCm      float64
	WeightKg      float64
	ActivityLevel ActivityLevel
	WeightGoal    WeightGoal
	GoalCalories  int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type FoodItem struct {
	ID          string
	Name        string
	Calories    float64
	ServingSize float64
	ServingUnit string
	ProteinG    *float64
	CarbsG      *float64
	FatG        *float64
	IsCustom    bool
}

// FoodEntry carries a snapshot of the item taken at logging time, so later
// catalog edits do not change historical totals.
type FoodEntry struct {
	ID         string
	FoodItemID string
	FoodItem   FoodItem
	Servings   float64
	MealType   MealType
	Date       string
	CreatedAt  time.Time
}

func (e FoodEntry) Calories() float64 {
	return e.FoodItem.Calories * e.Servings
}

// DailyLog is a derived view over the entry set; it is never persisted.
type DailyLog struct {
	Date          string
	Entries       []FoodEntry
	TotalCalories float64
	GoalCalories  int
}

type MealBreakdown struct {
	Breakfast []FoodEntry
	Lunch     []FoodEntry
	Dinner    []FoodEntry
	Snack     []FoodEntry
}

type WeightEntry struct {
	Date     string
	WeightKg float64
}
