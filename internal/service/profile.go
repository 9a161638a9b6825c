package service

import (
	"context"
	"fmt"
	"log"
	"math"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/macroplate/backend/internal/models"
	"github.com/macroplate/backend/internal/nutrition"
	"github.com/macroplate/backend/internal/types"
)

// ProfileService handles user profile operations. Every mutation of a field
// the goal engine reads triggers a recompute of the persisted calorie and
// macro goals before saving.
type ProfileService struct {
	db *gorm.DB
}

var _ IProfileService = (*ProfileService)(nil)

func NewProfileService(db *gorm.DB) *ProfileService {
	return &ProfileService{db: db}
}

// GetProfile retrieves a user's profile.
func (s *ProfileService) GetProfile(ctx context.Context, userID uuid.UUID) (*models.UserProfile, error) {
	var profile models.UserProfile
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

// UpdateProfile applies the edits in req, recomputes the derived goals, and
// persists the result. Returned warnings are advisory (unparseable enum
// values, goal-rate findings) and never block the update.
func (s *ProfileService) UpdateProfile(ctx context.Context, userID uuid.UUID, req *types.UpdateProfileRequest) (*models.UserProfile, []string, error) {
	var profile models.UserProfile
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return nil, nil, err
	}

	warnings := applyProfileEdits(&profile, req)
	applyComputedGoals(&profile)
	warnings = append(warnings, nutrition.ValidateGoals(engineProfile(&profile))...)

	if err := s.db.WithContext(ctx).Save(&profile).Error; err != nil {
		return nil, nil, err
	}
	return &profile, warnings, nil
}

// ResetProfile discards the stored profile and reinstates the defaults, as
// on first app use.
func (s *ProfileService) ResetProfile(ctx context.Context, userID uuid.UUID) (*models.UserProfile, error) {
	fresh := defaultProfileModel(userID)
	applyComputedGoals(&fresh)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("user_id = ?", userID).Delete(&models.UserProfile{}).Error; err != nil {
			return err
		}
		return tx.Create(&fresh).Error
	})
	if err != nil {
		return nil, err
	}
	return &fresh, nil
}

// GoalSummary computes the full goal-engine output for display, including
// the advisory body-fat estimate.
func (s *ProfileService) GoalSummary(ctx context.Context, userID uuid.UUID) (*types.GoalSummary, error) {
	profile, err := s.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	summary := goalSummaryFor(profile)
	return &summary, nil
}

func goalSummaryFor(profile *models.UserProfile) types.GoalSummary {
	p := engineProfile(profile)
	bmr := nutrition.CalculateBMR(p)
	targets := nutrition.CalculateMacroTargets(p)
	return types.GoalSummary{
		BMR:              math.Round(bmr),
		TDEE:             math.Round(bmr * p.ActivityLevel.Multiplier()),
		DailyCalorieGoal: int(math.Round(nutrition.CalculateDailyCalorieGoal(p))),
		ProteinGoalGrams: math.Round(targets.ProteinGrams),
		CarbGoalGrams:    math.Round(targets.CarbGrams),
		FatGoalGrams:     math.Round(targets.FatGrams),
		EstimatedBodyFat: math.Round(nutrition.EstimateBodyFatPercent(p)*10) / 10,
		Warnings:         nutrition.ValidateGoals(p),
	}
}

// applyProfileEdits copies the provided fields onto the model. Enum strings
// go through the explicit parsers; an unparseable value is kept out of the
// profile and surfaced as a warning instead of silently defaulting.
func applyProfileEdits(profile *models.UserProfile, req *types.UpdateProfileRequest) []string {
	var warnings []string

	if req.Name != nil {
		profile.Name = *req.Name
	}
	if req.Age != nil {
		profile.Age = *req.Age
	}
	if req.Gender != nil {
		if g, ok := nutrition.ParseGender(*req.Gender); ok {
			profile.Gender = string(g)
		} else {
			warnings = append(warnings, fmt.Sprintf("unrecognized gender %q ignored", *req.Gender))
		}
	}
	if req.Weight != nil {
		profile.Weight = *req.Weight
	}
	if req.WeightUnit != nil {
		if u, ok := nutrition.ParseWeightUnit(*req.WeightUnit); ok {
			profile.WeightUnit = string(u)
		} else {
			warnings = append(warnings, fmt.Sprintf("unrecognized weight unit %q ignored", *req.WeightUnit))
		}
	}
	if req.Height != nil {
		profile.Height = *req.Height
	}
	if req.HeightUnit != nil {
		if u, ok := nutrition.ParseHeightUnit(*req.HeightUnit); ok {
			profile.HeightUnit = string(u)
		} else {
			warnings = append(warnings, fmt.Sprintf("unrecognized height unit %q ignored", *req.HeightUnit))
		}
	}
	if req.BodyFatPercent != nil {
		bf := *req.BodyFatPercent
		profile.BodyFatPercent = &bf
		profile.BodyFatSource = string(nutrition.BodyFatMeasured)
	}
	if req.ActivityLevel != nil {
		if a, ok := nutrition.ParseActivityLevel(*req.ActivityLevel); ok {
			profile.ActivityLevel = string(a)
		} else {
			warnings = append(warnings, fmt.Sprintf("unrecognized activity level %q ignored", *req.ActivityLevel))
		}
	}
	if req.GoalType != nil {
		if g, ok := nutrition.ParseGoalType(*req.GoalType); ok {
			profile.GoalType = string(g)
		} else {
			warnings = append(warnings, fmt.Sprintf("unrecognized goal type %q ignored", *req.GoalType))
		}
	}
	if req.WeeklyWeightChange != nil {
		// Magnitude only; the engine derives the sign from the goal type.
		profile.WeeklyWeightChange = math.Abs(*req.WeeklyWeightChange)
	}

	return warnings
}

// applyComputedGoals refreshes the derived goal fields from the engine.
func applyComputedGoals(profile *models.UserProfile) {
	p := engineProfile(profile)
	targets := nutrition.CalculateMacroTargets(p)
	profile.DailyCalorieGoal = int(math.Round(nutrition.CalculateDailyCalorieGoal(p)))
	profile.ProteinGoalGrams = math.Round(targets.ProteinGrams)
	profile.CarbGoalGrams = math.Round(targets.CarbGrams)
	profile.FatGoalGrams = math.Round(targets.FatGrams)
}

// engineProfile maps the stored row to the engine's input snapshot. Stored
// enum strings that no longer parse degrade to the Unknown variants, which
// the engine treats conservatively; the mismatch is logged so it is not
// silently hidden.
func engineProfile(profile *models.UserProfile) nutrition.Profile {
	gender, ok := nutrition.ParseGender(profile.Gender)
	if !ok && profile.Gender != string(nutrition.GenderUnknown) {
		log.Printf("profile %s: unparseable stored gender %q", profile.ID, profile.Gender)
	}
	activity, ok := nutrition.ParseActivityLevel(profile.ActivityLevel)
	if !ok {
		log.Printf("profile %s: unparseable stored activity level %q", profile.ID, profile.ActivityLevel)
	}
	goalType, ok := nutrition.ParseGoalType(profile.GoalType)
	if !ok {
		log.Printf("profile %s: unparseable stored goal type %q", profile.ID, profile.GoalType)
	}
	weightUnit, _ := nutrition.ParseWeightUnit(profile.WeightUnit)
	heightUnit, _ := nutrition.ParseHeightUnit(profile.HeightUnit)
	bodyFatSource, _ := nutrition.ParseBodyFatSource(profile.BodyFatSource)

	return nutrition.Profile{
		Name:               profile.Name,
		Age:                profile.Age,
		Weight:             profile.Weight,
		WeightUnit:         weightUnit,
		Height:             profile.Height,
		HeightUnit:         heightUnit,
		Gender:             gender,
		BodyFatPercent:     profile.BodyFatPercent,
		BodyFatSource:      bodyFatSource,
		ActivityLevel:      activity,
		GoalType:           goalType,
		WeeklyWeightChange: profile.WeeklyWeightChange,
	}
}
