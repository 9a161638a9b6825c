package types

import (
	"time"

	"github.com/macroplate/backend/internal/nutrition"
)

// RegisterRequest represents the request body for creating an account.
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// LoginRequest represents the request body for logging in.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UpdateProfileRequest carries partial profile edits. Pointer fields
// distinguish "not sent" from zero values; any field that feeds the goal
// computation triggers a recompute before the profile is persisted.
type UpdateProfileRequest struct {
	Name               *string  `json:"name,omitempty"`
	Age                *int     `json:"age,omitempty" binding:"omitempty,gt=0"`
	Gender             *string  `json:"gender,omitempty"`
	Weight             *float64 `json:"weight,omitempty" binding:"omitempty,gt=0"`
	WeightUnit         *string  `json:"weight_unit,omitempty"`
	Height             *float64 `json:"height,omitempty" binding:"omitempty,gt=0"`
	HeightUnit         *string  `json:"height_unit,omitempty"`
	BodyFatPercent     *float64 `json:"body_fat_percent,omitempty" binding:"omitempty,gt=0,lt=100"`
	ActivityLevel      *string  `json:"activity_level,omitempty"`
	GoalType           *string  `json:"goal_type,omitempty"`
	WeeklyWeightChange *float64 `json:"weekly_weight_change,omitempty" binding:"omitempty,gte=0"`
}

// LogMealRequest represents a manually logged meal with absolute nutrition
// values.
type LogMealRequest struct {
	Name          string    `json:"name" binding:"required"`
	Calories      float64   `json:"calories" binding:"gte=0"`
	Protein       float64   `json:"protein" binding:"gte=0"`
	Carbohydrates float64   `json:"carbohydrates" binding:"gte=0"`
	Fat           float64   `json:"fat" binding:"gte=0"`
	Fiber         float64   `json:"fiber" binding:"gte=0"`
	ServingSize   string    `json:"serving_size"`
	Source        string    `json:"source"`
	ConsumedAt    time.Time `json:"consumed_at"`
}

// AnalyzeMealRequest asks the AI service to estimate nutrition from a
// free-text meal description.
type AnalyzeMealRequest struct {
	Description string `json:"description" binding:"required"`
	// Log indicates the estimate should be saved as a meal log directly.
	Log        bool      `json:"log"`
	ConsumedAt time.Time `json:"consumed_at"`
}

// LogBarcodeRequest logs a meal from a barcode lookup. AmountGrams scales
// the per-100g facts to the absolute values that get stored.
type LogBarcodeRequest struct {
	Barcode     string    `json:"barcode" binding:"required"`
	AmountGrams float64   `json:"amount_grams" binding:"required,gt=0"`
	ConsumedAt  time.Time `json:"consumed_at"`
}

// MealPlanRequest asks the AI service to generate a one-day meal plan that
// fits the user's computed goals.
type MealPlanRequest struct {
	Preferences []string `json:"preferences"`
	Exclusions  []string `json:"exclusions"`
}

// GoalSummary is the computed output of the goal engine surfaced to clients.
type GoalSummary struct {
	BMR              float64  `json:"bmr"`
	TDEE             float64  `json:"tdee"`
	DailyCalorieGoal int      `json:"daily_calorie_goal"`
	ProteinGoalGrams float64  `json:"protein_goal_grams"`
	CarbGoalGrams    float64  `json:"carb_goal_grams"`
	FatGoalGrams     float64  `json:"fat_goal_grams"`
	EstimatedBodyFat float64  `json:"estimated_body_fat_percent"`
	Warnings         []string `json:"warnings"`
}

// DailySummary is the dashboard view for a single day: totals against goals,
// the per-meal-time breakdown, and the logging streak.
type DailySummary struct {
	Date       string                                       `json:"date"`
	Totals     nutrition.Totals                             `json:"totals"`
	Goals      GoalSummary                                  `json:"goals"`
	ByMealTime map[nutrition.MealTime][]MealSummary         `json:"by_meal_time"`
	Streak     int                                          `json:"streak"`
}

// MealSummary is a meal log entry as rendered in summaries.
type MealSummary struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Calories      float64   `json:"calories"`
	Protein       float64   `json:"protein"`
	Carbohydrates float64   `json:"carbohydrates"`
	Fat           float64   `json:"fat"`
	ServingSize   string    `json:"serving_size"`
	Source        string    `json:"source"`
	ConsumedAt    time.Time `json:"consumed_at"`
}

// RangeSummary aggregates a date range day by day.
type RangeSummary struct {
	From   string           `json:"from"`
	To     string           `json:"to"`
	Totals nutrition.Totals `json:"totals"`
	Days   []DayTotals      `json:"days"`
}

// DayTotals is one day's additive reduction inside a range summary.
type DayTotals struct {
	Date   string           `json:"date"`
	Totals nutrition.Totals `json:"totals"`
}
