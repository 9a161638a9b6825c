package nutrition

// Gender is used only by the Deurenberg body-fat estimate; the BMR formula
// carried here is gender-neutral.
type Gender string

const (
	GenderMale    Gender = "male"
	GenderFemale  Gender = "female"
	GenderUnknown Gender = "unknown"
)

// ParseGender maps a persisted lowercase string back to a Gender.
// Unrecognized values return GenderUnknown and ok=false so callers can
// surface the bad value instead of silently defaulting.
func ParseGender(s string) (Gender, bool) {
	switch s {
	case "male":
		return GenderMale, true
	case "female":
		return GenderFemale, true
	}
	return GenderUnknown, false
}

// ActivityLevel maps to a TDEE multiplier and to the per-kg macro baselines.
type ActivityLevel string

const (
	ActivitySedentary        ActivityLevel = "sedentary"
	ActivityLightlyActive    ActivityLevel = "lightly_active"
	ActivityModeratelyActive ActivityLevel = "moderately_active"
	ActivityVeryActive       ActivityLevel = "very_active"
	ActivityUnknown          ActivityLevel = "unknown"
)

func ParseActivityLevel(s string) (ActivityLevel, bool) {
	switch s {
	case "sedentary":
		return ActivitySedentary, true
	case "lightly_active":
		return ActivityLightlyActive, true
	case "moderately_active":
		return ActivityModeratelyActive, true
	case "very_active":
		return ActivityVeryActive, true
	}
	return ActivityUnknown, false
}

// Multiplier returns the TDEE activity multiplier. Unknown levels fall back
// to the sedentary multiplier, which is the most conservative estimate.
func (a ActivityLevel) Multiplier() float64 {
	switch a {
	case ActivityLightlyActive:
		return 1.375
	case ActivityModeratelyActive:
		return 1.55
	case ActivityVeryActive:
		return 1.725
	default:
		return 1.2
	}
}

// proteinPerKg is the baseline grams of protein per kg of lean mass.
func (a ActivityLevel) proteinPerKg() float64 {
	switch a {
	case ActivityLightlyActive:
		return 1.2
	case ActivityModeratelyActive:
		return 1.4
	case ActivityVeryActive:
		return 1.6
	default:
		return 1.0
	}
}

// carbsPerKg is the baseline grams of carbohydrate per kg of lean mass.
func (a ActivityLevel) carbsPerKg() float64 {
	switch a {
	case ActivityLightlyActive:
		return 2.5
	case ActivityModeratelyActive:
		return 3.0
	case ActivityVeryActive:
		return 3.5
	default:
		return 2.0
	}
}

// GoalType is the user's weight-change intent. The sign of the weekly
// weight-change rate is always derived from it, never from caller input.
type GoalType string

const (
	GoalLoseWeight     GoalType = "lose_weight"
	GoalMaintainWeight GoalType = "maintain_weight"
	GoalGainWeight     GoalType = "gain_weight"
	GoalUnknown        GoalType = "unknown"
)

func ParseGoalType(s string) (GoalType, bool) {
	switch s {
	case "lose_weight":
		return GoalLoseWeight, true
	case "maintain_weight":
		return GoalMaintainWeight, true
	case "gain_weight":
		return GoalGainWeight, true
	}
	return GoalUnknown, false
}

// WeightUnit tags the stored weight value. All computation is metric;
// conversion happens once at the engine boundary.
type WeightUnit string

const (
	WeightKilograms WeightUnit = "kg"
	WeightPounds    WeightUnit = "lb"
)

func ParseWeightUnit(s string) (WeightUnit, bool) {
	switch s {
	case "kg":
		return WeightKilograms, true
	case "lb":
		return WeightPounds, true
	}
	return WeightKilograms, false
}

// HeightUnit tags the stored height value.
type HeightUnit string

const (
	HeightCentimeters HeightUnit = "cm"
	HeightInches      HeightUnit = "inch"
)

func ParseHeightUnit(s string) (HeightUnit, bool) {
	switch s {
	case "cm":
		return HeightCentimeters, true
	case "inch":
		return HeightInches, true
	}
	return HeightCentimeters, false
}

// BodyFatSource disambiguates whether a stored body-fat percentage was
// entered by the user or produced by the Deurenberg estimator. Only a
// measured value is trusted by the BMR formula selection.
type BodyFatSource string

const (
	BodyFatMeasured  BodyFatSource = "measured"
	BodyFatEstimated BodyFatSource = "estimated"
	BodyFatUnknown   BodyFatSource = "unknown"
)

func ParseBodyFatSource(s string) (BodyFatSource, bool) {
	switch s {
	case "measured":
		return BodyFatMeasured, true
	case "estimated":
		return BodyFatEstimated, true
	}
	return BodyFatUnknown, false
}
