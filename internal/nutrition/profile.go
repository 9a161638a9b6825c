package nutrition

const (
	poundsToKg   = 0.453592
	inchesToCm   = 2.54
	fallbackBMR  = 1800.0
	calorieFloor = 1200.0
)

// Profile is the in-memory snapshot of a user's body metrics and goals that
// the goal engine computes from. It is a plain value; resolving it from the
// database (or the offline cache) is the caller's job.
type Profile struct {
	Name       string
	Age        int
	Weight     float64
	WeightUnit WeightUnit
	Height     float64
	HeightUnit HeightUnit
	Gender     Gender

	// BodyFatPercent is nil until the user enters a value or opts in to
	// saving an estimate; BodyFatSource records which of those happened.
	BodyFatPercent *float64
	BodyFatSource  BodyFatSource

	ActivityLevel ActivityLevel
	GoalType      GoalType

	// WeeklyWeightChange is a magnitude in lb/week. Its sign is derived
	// from GoalType inside the engine and never trusted from callers.
	WeeklyWeightChange float64
}

// DefaultProfile is the profile created on first app use and reinstated on
// an explicit data reset.
func DefaultProfile() Profile {
	return Profile{
		Age:           25,
		Weight:        70,
		WeightUnit:    WeightKilograms,
		Height:        170,
		HeightUnit:    HeightCentimeters,
		Gender:        GenderUnknown,
		BodyFatSource: BodyFatUnknown,
		ActivityLevel: ActivitySedentary,
		GoalType:      GoalMaintainWeight,
	}
}

// WeightKg returns the weight converted to kilograms.
func (p Profile) WeightKg() float64 {
	if p.WeightUnit == WeightPounds {
		return p.Weight * poundsToKg
	}
	return p.Weight
}

// HeightCm returns the height converted to centimeters.
func (p Profile) HeightCm() float64 {
	if p.HeightUnit == HeightInches {
		return p.Height * inchesToCm
	}
	return p.Height
}

// measuredBodyFat returns the stored body-fat percentage only when it was
// explicitly measured and is physiologically usable by Katch-McArdle.
func (p Profile) measuredBodyFat() (float64, bool) {
	if p.BodyFatSource != BodyFatMeasured || p.BodyFatPercent == nil {
		return 0, false
	}
	bf := *p.BodyFatPercent
	if bf <= 0 || bf >= 70 {
		return 0, false
	}
	return bf, true
}
