package nutrition

import (
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entryAt(ts time.Time, calories, protein, carbs, fat float64) MealEntry {
	return MealEntry{
		Name:          "meal",
		Calories:      calories,
		Protein:       protein,
		Carbohydrates: carbs,
		Fat:           fat,
		ConsumedAt:    ts,
	}
}

func TestAggregateTotalsEmpty(t *testing.T) {
	assert.Equal(t, Totals{}, AggregateTotals(nil))
	assert.Equal(t, Totals{}, AggregateTotals([]MealEntry{}))
}

func TestAggregateTotals(t *testing.T) {
	now := time.Now()
	entries := []MealEntry{
		entryAt(now, 400, 30, 45, 10),
		entryAt(now, 250, 12, 30, 8),
		entryAt(now, 0, 0, 0, 0),
	}

	got := AggregateTotals(entries)
	assert.InDelta(t, 650, got.Calories, 1e-9)
	assert.InDelta(t, 42, got.Protein, 1e-9)
	assert.InDelta(t, 75, got.Carbs, 1e-9)
	assert.InDelta(t, 18, got.Fat, 1e-9)
}

// Summing partition sums must equal summing the whole list, regardless of
// how the list is split or ordered.
func TestAggregateTotalsOrderIndependent(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	entries := make([]MealEntry, 50)
	for i := range entries {
		entries[i] = entryAt(time.Now(),
			rng.Float64()*900, rng.Float64()*60, rng.Float64()*100, rng.Float64()*40)
	}
	whole := AggregateTotals(entries)

	for trial := 0; trial < 20; trial++ {
		shuffled := make([]MealEntry, len(entries))
		copy(shuffled, entries)
		rng.Shuffle(len(shuffled), func(i, j int) {
			shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
		})

		cut := rng.Intn(len(shuffled) + 1)
		left := AggregateTotals(shuffled[:cut])
		right := AggregateTotals(shuffled[cut:])

		assert.InDelta(t, whole.Calories, left.Calories+right.Calories, 1e-6)
		assert.InDelta(t, whole.Protein, left.Protein+right.Protein, 1e-6)
		assert.InDelta(t, whole.Carbs, left.Carbs+right.Carbs, 1e-6)
		assert.InDelta(t, whole.Fat, left.Fat+right.Fat, 1e-6)
	}
}

func TestMealTimeForBuckets(t *testing.T) {
	tests := []struct {
		hour int
		want MealTime
	}{
		{0, MealSnacks},
		{4, MealSnacks},
		{5, MealBreakfast}, // boundary belongs to the later bucket
		{6, MealBreakfast},
		{11, MealBreakfast},
		{12, MealLunch},
		{13, MealLunch},
		{16, MealLunch},
		{17, MealDinner},
		{19, MealDinner},
		{20, MealDinner},
		{21, MealSnacks},
		{23, MealSnacks},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("hour_%d", tt.hour), func(t *testing.T) {
			ts := time.Date(2026, 3, 14, tt.hour, 30, 0, 0, time.Local)
			assert.Equal(t, tt.want, MealTimeFor(ts))
		})
	}
}

func TestGroupByMealTime(t *testing.T) {
	day := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	entries := []MealEntry{
		entryAt(day.Add(7*time.Hour), 300, 20, 30, 8),
		entryAt(day.Add(8*time.Hour), 150, 5, 20, 4),
		entryAt(day.Add(13*time.Hour), 600, 40, 50, 20),
		entryAt(day.Add(22*time.Hour), 200, 4, 28, 9),
	}

	grouped := GroupByMealTime(entries)
	assert.Len(t, grouped[MealBreakfast], 2)
	assert.Len(t, grouped[MealLunch], 1)
	assert.Empty(t, grouped[MealDinner])
	assert.Len(t, grouped[MealSnacks], 1)
}

func TestComputeStreak(t *testing.T) {
	asOf := time.Date(2026, 8, 28, 15, 0, 0, 0, time.UTC)

	dayEntry := func(daysAgo int) MealEntry {
		return entryAt(asOf.AddDate(0, 0, -daysAgo), 300, 10, 20, 5)
	}

	t.Run("no entries", func(t *testing.T) {
		assert.Equal(t, 0, ComputeStreak(nil, asOf))
	})

	t.Run("three consecutive days", func(t *testing.T) {
		entries := []MealEntry{dayEntry(0), dayEntry(1), dayEntry(2), dayEntry(4)}
		assert.Equal(t, 3, ComputeStreak(entries, asOf))
	})

	t.Run("no grace day", func(t *testing.T) {
		entries := []MealEntry{dayEntry(1), dayEntry(2), dayEntry(3)}
		assert.Equal(t, 0, ComputeStreak(entries, asOf))
	})

	t.Run("multiple entries per day count once", func(t *testing.T) {
		entries := []MealEntry{dayEntry(0), dayEntry(0), dayEntry(0), dayEntry(1)}
		assert.Equal(t, 2, ComputeStreak(entries, asOf))
	})

	t.Run("capped at 365", func(t *testing.T) {
		entries := make([]MealEntry, 0, 400)
		for i := 0; i < 400; i++ {
			entries = append(entries, dayEntry(i))
		}
		assert.Equal(t, 365, ComputeStreak(entries, asOf))
	})
}

func TestFilterByDateCalendarBoundaries(t *testing.T) {
	date := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)

	entries := []MealEntry{
		entryAt(time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC), 1, 0, 0, 0),
		entryAt(time.Date(2026, 8, 28, 23, 59, 59, 0, time.UTC), 2, 0, 0, 0),
		entryAt(time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC), 3, 0, 0, 0),
		entryAt(time.Date(2026, 8, 27, 23, 59, 59, 0, time.UTC), 4, 0, 0, 0),
	}

	got := FilterByDate(entries, date)
	require.Len(t, got, 2)
	assert.Equal(t, 1.0, got[0].Calories)
	assert.Equal(t, 2.0, got[1].Calories)
}

func TestFilterByDateConvertsToCallerZone(t *testing.T) {
	tokyo := time.FixedZone("UTC+9", 9*3600)
	date := time.Date(2026, 8, 28, 10, 0, 0, 0, tokyo)

	// 23:00 UTC on the 27th is 08:00 on the 28th in Tokyo.
	entries := []MealEntry{
		entryAt(time.Date(2026, 8, 27, 23, 0, 0, 0, time.UTC), 1, 0, 0, 0),
		entryAt(time.Date(2026, 8, 28, 16, 0, 0, 0, time.UTC), 2, 0, 0, 0), // 01:00 on the 29th in Tokyo
	}

	got := FilterByDate(entries, date)
	require.Len(t, got, 1)
	assert.Equal(t, 1.0, got[0].Calories)
}
