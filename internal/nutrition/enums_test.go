package nutrition

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRoundTrips(t *testing.T) {
	for _, g := range []Gender{GenderMale, GenderFemale} {
		parsed, ok := ParseGender(string(g))
		assert.True(t, ok)
		assert.Equal(t, g, parsed)
	}
	for _, a := range []ActivityLevel{ActivitySedentary, ActivityLightlyActive, ActivityModeratelyActive, ActivityVeryActive} {
		parsed, ok := ParseActivityLevel(string(a))
		assert.True(t, ok)
		assert.Equal(t, a, parsed)
	}
	for _, g := range []GoalType{GoalLoseWeight, GoalMaintainWeight, GoalGainWeight} {
		parsed, ok := ParseGoalType(string(g))
		assert.True(t, ok)
		assert.Equal(t, g, parsed)
	}
}

func TestParseUnknownValuesAreSurfaced(t *testing.T) {
	g, ok := ParseGender("m4le")
	assert.False(t, ok)
	assert.Equal(t, GenderUnknown, g)

	a, ok := ParseActivityLevel("couch")
	assert.False(t, ok)
	assert.Equal(t, ActivityUnknown, a)

	gt, ok := ParseGoalType("bulk")
	assert.False(t, ok)
	assert.Equal(t, GoalUnknown, gt)

	src, ok := ParseBodyFatSource("guessed")
	assert.False(t, ok)
	assert.Equal(t, BodyFatUnknown, src)
}

func TestActivityMultipliers(t *testing.T) {
	assert.Equal(t, 1.2, ActivitySedentary.Multiplier())
	assert.Equal(t, 1.375, ActivityLightlyActive.Multiplier())
	assert.Equal(t, 1.55, ActivityModeratelyActive.Multiplier())
	assert.Equal(t, 1.725, ActivityVeryActive.Multiplier())
	// Unknown degrades to the conservative sedentary multiplier.
	assert.Equal(t, 1.2, ActivityUnknown.Multiplier())
}

func TestUnitParsersDefaultMetric(t *testing.T) {
	w, ok := ParseWeightUnit("stone")
	assert.False(t, ok)
	assert.Equal(t, WeightKilograms, w)

	h, ok := ParseHeightUnit("hands")
	assert.False(t, ok)
	assert.Equal(t, HeightCentimeters, h)
}
