package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/macroplate/backend/internal/models"
	"github.com/macroplate/backend/internal/service"
	"github.com/macroplate/backend/internal/testhelpers"
	"github.com/macroplate/backend/internal/types"
)

func registerTestUser(t *testing.T, db *gorm.DB, email string) uuid.UUID {
	t.Helper()
	authSvc := service.NewAuthService(db, "test-secret")
	_, err := authSvc.Register(context.Background(), "Test User", email, "password123")
	require.NoError(t, err)

	var user models.User
	require.NoError(t, db.Where("email = ?", email).First(&user).Error)
	return user.ID
}

func strPtr(s string) *string     { return &s }
func intPtr(i int) *int           { return &i }
func floatPtr(f float64) *float64 { return &f }

func TestUpdateProfileRecomputesGoals(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	userID := registerTestUser(t, db, "goals@example.com")
	svc := service.NewProfileService(db)

	profile, warnings, err := svc.UpdateProfile(context.Background(), userID, &types.UpdateProfileRequest{
		Age:                intPtr(30),
		Gender:             strPtr("male"),
		Weight:             floatPtr(80),
		Height:             floatPtr(180),
		ActivityLevel:      strPtr("moderately_active"),
		GoalType:           strPtr("lose_weight"),
		WeeklyWeightChange: floatPtr(1),
	})
	require.NoError(t, err)
	assert.Empty(t, warnings)

	// 80 kg / 180 cm / 30 y, moderately active, losing 1 lb/week:
	// round(1853.632*1.55 - 500) kcal, macros from 61.42 kg lean mass.
	assert.Equal(t, 2373, profile.DailyCalorieGoal)
	assert.Equal(t, 155.0, profile.ProteinGoalGrams)
	assert.Equal(t, 263.0, profile.CarbGoalGrams)
	assert.Equal(t, 78.0, profile.FatGoalGrams)

	// The recomputed goals are persisted, not just returned.
	var stored models.UserProfile
	require.NoError(t, db.Where("user_id = ?", userID).First(&stored).Error)
	assert.Equal(t, 2373, stored.DailyCalorieGoal)
}

func TestUpdateProfileRejectsUnknownEnumsWithWarnings(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	userID := registerTestUser(t, db, "enums@example.com")
	svc := service.NewProfileService(db)

	profile, warnings, err := svc.UpdateProfile(context.Background(), userID, &types.UpdateProfileRequest{
		Gender:        strPtr("plasma"),
		ActivityLevel: strPtr("couch"),
		GoalType:      strPtr("bulk"),
	})
	require.NoError(t, err)
	assert.Len(t, warnings, 3)

	// The unparseable values were kept out of the profile.
	assert.Equal(t, "unknown", profile.Gender)
	assert.Equal(t, "sedentary", profile.ActivityLevel)
	assert.Equal(t, "maintain_weight", profile.GoalType)
}

func TestUpdateProfileBodyFatMarksMeasured(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	userID := registerTestUser(t, db, "bodyfat@example.com")
	svc := service.NewProfileService(db)

	profile, _, err := svc.UpdateProfile(context.Background(), userID, &types.UpdateProfileRequest{
		BodyFatPercent: floatPtr(20),
	})
	require.NoError(t, err)
	require.NotNil(t, profile.BodyFatPercent)
	assert.Equal(t, 20.0, *profile.BodyFatPercent)
	assert.Equal(t, "measured", profile.BodyFatSource)
}

func TestUpdateProfileStoresRateMagnitude(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	userID := registerTestUser(t, db, "rate@example.com")
	svc := service.NewProfileService(db)

	profile, _, err := svc.UpdateProfile(context.Background(), userID, &types.UpdateProfileRequest{
		GoalType:           strPtr("gain_weight"),
		WeeklyWeightChange: floatPtr(-1.5),
	})
	require.NoError(t, err)
	assert.Equal(t, 1.5, profile.WeeklyWeightChange)
	// Gaining: the sign comes from the goal type, so the goal sits above
	// the maintenance level.
	assert.Greater(t, profile.DailyCalorieGoal, 2040)
}

func TestUpdateProfileWarnsOnAggressiveRate(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	userID := registerTestUser(t, db, "aggressive@example.com")
	svc := service.NewProfileService(db)

	_, warnings, err := svc.UpdateProfile(context.Background(), userID, &types.UpdateProfileRequest{
		GoalType:           strPtr("lose_weight"),
		WeeklyWeightChange: floatPtr(4),
	})
	require.NoError(t, err)
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "too aggressive")
}

func TestResetProfileRestoresDefaults(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	userID := registerTestUser(t, db, "reset@example.com")
	svc := service.NewProfileService(db)

	_, _, err := svc.UpdateProfile(context.Background(), userID, &types.UpdateProfileRequest{
		Age:    intPtr(40),
		Weight: floatPtr(95),
	})
	require.NoError(t, err)

	profile, err := svc.ResetProfile(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, 25, profile.Age)
	assert.Equal(t, 70.0, profile.Weight)
	assert.Equal(t, 2040, profile.DailyCalorieGoal)

	var count int64
	require.NoError(t, db.Model(&models.UserProfile{}).Where("user_id = ?", userID).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestGoalSummary(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	userID := registerTestUser(t, db, "summary@example.com")
	svc := service.NewProfileService(db)

	_, _, err := svc.UpdateProfile(context.Background(), userID, &types.UpdateProfileRequest{
		Age:                intPtr(30),
		Gender:             strPtr("male"),
		Weight:             floatPtr(80),
		Height:             floatPtr(180),
		ActivityLevel:      strPtr("moderately_active"),
		GoalType:           strPtr("lose_weight"),
		WeeklyWeightChange: floatPtr(1),
	})
	require.NoError(t, err)

	summary, err := svc.GoalSummary(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, 1854.0, summary.BMR)
	assert.Equal(t, 2873.0, summary.TDEE)
	assert.Equal(t, 2373, summary.DailyCalorieGoal)
	assert.Equal(t, 155.0, summary.ProteinGoalGrams)
	assert.Equal(t, 20.3, summary.EstimatedBodyFat)
	assert.Empty(t, summary.Warnings)
}

func TestGetProfileMissingUser(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	svc := service.NewProfileService(db)

	_, err := svc.GetProfile(context.Background(), uuid.New())
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
