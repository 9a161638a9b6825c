package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/macroplate/backend/internal/models"
	"github.com/macroplate/backend/internal/types"
)

// IAuthService defines the interface for authentication operations.
type IAuthService interface {
	Register(ctx context.Context, name, email, password string) (string, error)
	Login(ctx context.Context, email, password string) (string, error)
	ValidateToken(token string) (*types.TokenClaims, error)
	GetUserByID(ctx context.Context, userID uuid.UUID) (*models.User, error)
}

// IProfileService defines the interface for user profile operations.
type IProfileService interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*models.UserProfile, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, req *types.UpdateProfileRequest) (*models.UserProfile, []string, error)
	ResetProfile(ctx context.Context, userID uuid.UUID) (*models.UserProfile, error)
	GoalSummary(ctx context.Context, userID uuid.UUID) (*types.GoalSummary, error)
}

// IMealService defines the interface for meal log operations.
type IMealService interface {
	LogMeal(ctx context.Context, userID uuid.UUID, req *types.LogMealRequest) (*models.MealLog, error)
	DeleteMeal(ctx context.Context, userID, mealID uuid.UUID) error
	ListMeals(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]models.MealLog, error)
	DailySummary(ctx context.Context, userID uuid.UUID, day time.Time) (*types.DailySummary, error)
	RangeSummary(ctx context.Context, userID uuid.UUID, from, to time.Time) (*types.RangeSummary, error)
	Streak(ctx context.Context, userID uuid.UUID, asOf time.Time) (int, error)
}

// IMealAnalysisService defines the interface for AI-backed meal analysis and
// plan generation.
type IMealAnalysisService interface {
	AnalyzeMeal(ctx context.Context, description string) (*MealAnalysis, error)
	GenerateMealPlan(ctx context.Context, goals types.GoalSummary, preferences, exclusions []string) (*MealPlan, error)
}

// IBarcodeService defines the interface for barcode-to-food lookups.
type IBarcodeService interface {
	Lookup(ctx context.Context, barcode string) (*FoodFacts, error)
}
