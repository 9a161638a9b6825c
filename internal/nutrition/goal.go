// Package nutrition holds the pure calculation core: the goal engine that
// turns a profile into daily calorie and macro targets, and the aggregator
// that reduces meal logs into totals, meal-time buckets and streaks. None of
// it performs I/O; callers resolve inputs into memory first.
package nutrition

import (
	"fmt"
	"math"
)

// MacroTargets are daily gram goals. They are display approximations and are
// deliberately not renormalized to sum back to the calorie goal exactly.
type MacroTargets struct {
	ProteinGrams float64
	CarbGrams    float64
	FatGrams     float64
}

// CalculateBMR estimates basal metabolic rate in kcal/day.
//
// A measured body-fat percentage in (0,70) selects Katch-McArdle on lean
// mass; otherwise a gender-neutral Harris-Benedict estimate is used. With
// degenerate metrics it degrades to a fixed 1800 kcal/day rather than
// failing, since a goal estimate is advisory and a hard error would blank
// the whole dashboard.
func CalculateBMR(p Profile) float64 {
	weightKg := p.WeightKg()
	heightCm := p.HeightCm()

	if bf, ok := p.measuredBodyFat(); ok {
		leanMassKg := weightKg * (1 - bf/100)
		return 370 + 21.6*leanMassKg
	}
	if weightKg > 0 && heightCm > 0 {
		return 88.362 + 13.397*weightKg + 4.799*heightCm - 5.677*float64(p.Age)
	}
	return fallbackBMR
}

// EstimateBodyFatPercent applies the Deurenberg BMI/age/sex estimator,
// clamped to [5,60]. The result is advisory and is never fed back into BMR
// unless the caller explicitly stores it with BodyFatSource set to measured.
func EstimateBodyFatPercent(p Profile) float64 {
	weightKg := p.WeightKg()
	heightM := p.HeightCm() / 100

	bmi := 0.0
	if heightM > 0 {
		bmi = weightKg / (heightM * heightM)
	}

	sexConstant := 0.0
	if p.Gender == GenderMale {
		sexConstant = 1
	}

	bf := 1.20*bmi + 0.23*float64(p.Age) - 10.8*sexConstant - 5.4
	return clamp(bf, 5, 60)
}

// CalculateDailyCalorieGoal computes TDEE from BMR and the activity
// multiplier, applies the deficit or surplus implied by the weekly rate
// (500 kcal/day per lb/week), and floors the result at 1200 kcal/day.
func CalculateDailyCalorieGoal(p Profile) float64 {
	bmr := CalculateBMR(p)
	tdee := bmr * p.ActivityLevel.Multiplier()
	goal := tdee + canonicalWeeklyChange(p)*500
	if goal < calorieFloor {
		return calorieFloor
	}
	return goal
}

// canonicalWeeklyChange derives the signed lb/week rate. The magnitude comes
// from the profile (capped at 3 lb/week), the sign always from GoalType.
func canonicalWeeklyChange(p Profile) float64 {
	rate := math.Abs(p.WeeklyWeightChange)
	if rate > maxWeeklyRate {
		rate = maxWeeklyRate
	}
	switch p.GoalType {
	case GoalLoseWeight:
		return -rate
	case GoalGainWeight:
		return rate
	default:
		return 0
	}
}

// LeanBodyMassKg estimates lean mass with the sex-specific Boer formula,
// falling back to 70 kg when the profile lacks usable metrics.
func LeanBodyMassKg(p Profile) float64 {
	weightKg := p.WeightKg()
	heightCm := p.HeightCm()
	if weightKg <= 0 || heightCm <= 0 {
		return 70
	}
	if p.Gender == GenderFemale {
		return 0.252*weightKg + 0.473*heightCm - 48.3
	}
	return 0.407*weightKg + 0.267*heightCm - 19.2
}

// CalculateMacroTargets derives gram goals from lean body mass rather than
// flat calorie percentages, which under- and over-shoot for very lean or
// very heavy users.
//
// Protein scales with activity and goal. Carbs take the higher of a
// lean-mass-driven and a calorie-residual-driven candidate but never exceed
// the calories remaining after protein. Fat absorbs the rest, floored at an
// essential-fatty-acid minimum of 0.8 g per kg lean mass.
func CalculateMacroTargets(p Profile) MacroTargets {
	leanMassKg := LeanBodyMassKg(p)
	dailyGoal := CalculateDailyCalorieGoal(p)

	proteinGoalMult := 1.0
	carbGoalMult := 1.0
	switch p.GoalType {
	case GoalLoseWeight:
		proteinGoalMult = 1.8 // preserve muscle under a deficit
		carbGoalMult = 0.7
	case GoalGainWeight:
		proteinGoalMult = 1.6
		carbGoalMult = 1.2
	}

	protein := leanMassKg * p.ActivityLevel.proteinPerKg() * proteinGoalMult
	proteinCalories := protein * 4

	residual := dailyGoal - proteinCalories
	if residual < 0 {
		residual = 0
	}

	carbsFromLeanMass := leanMassKg * p.ActivityLevel.carbsPerKg() * carbGoalMult
	carbsFromResidual := 0.6 * residual / 4
	carbs := math.Max(carbsFromLeanMass, carbsFromResidual)
	if carbCap := residual / 4; carbs > carbCap {
		carbs = carbCap
	}

	remainingCalories := residual - carbs*4
	if remainingCalories < 0 {
		remainingCalories = 0
	}
	minEssentialFat := leanMassKg * 0.8
	fat := math.Max(minEssentialFat, remainingCalories/9)

	return MacroTargets{
		ProteinGrams: protein,
		CarbGrams:    carbs,
		FatGrams:     fat,
	}
}

const (
	maxWeeklyRate         = 3.0
	typicalWeeklyRate     = 2.0
	negligibleWeeklyRate  = 0.25
	typicalBodyFatLowPct  = 10.0
	typicalBodyFatHighPct = 50.0
)

// ValidateGoals returns advisory warnings for inputs that reduce accuracy or
// imply an unsafe pace. Warnings never block goal computation.
func ValidateGoals(p Profile) []string {
	var warnings []string

	if p.BodyFatPercent != nil {
		if bf := *p.BodyFatPercent; bf < typicalBodyFatLowPct || bf > typicalBodyFatHighPct {
			warnings = append(warnings, fmt.Sprintf(
				"body fat %.1f%% is outside the typical 10-50%% range; goal accuracy is reduced", bf))
		}
	}

	rate := math.Abs(p.WeeklyWeightChange)
	switch {
	case rate > maxWeeklyRate:
		warnings = append(warnings, fmt.Sprintf(
			"%.2f lb/week is too aggressive; recommendation capped at %.0f lb/week", rate, maxWeeklyRate))
	case rate > typicalWeeklyRate:
		warnings = append(warnings, fmt.Sprintf(
			"%.2f lb/week exceeds the typical recommendation of %.0f lb/week", rate, typicalWeeklyRate))
	case rate < negligibleWeeklyRate && p.GoalType != GoalMaintainWeight:
		warnings = append(warnings, fmt.Sprintf(
			"%.2f lb/week is a negligible rate; progress will be hard to notice", rate))
	}

	return warnings
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
