package nutrition

import "time"

// MealTime is the hour-of-day bucket a logged meal falls into.
type MealTime string

const (
	MealBreakfast MealTime = "breakfast"
	MealLunch     MealTime = "lunch"
	MealDinner    MealTime = "dinner"
	MealSnacks    MealTime = "snacks"
)

// MealTimes lists the buckets in display order.
var MealTimes = []MealTime{MealBreakfast, MealLunch, MealDinner, MealSnacks}

// MealEntry is one logged meal with absolute nutrition values. Per-100g
// representations must be flattened before they reach the aggregator; no
// serving-size scaling happens here.
type MealEntry struct {
	ID            string
	Name          string
	Calories      float64
	Protein       float64
	Carbohydrates float64
	Fat           float64
	ServingSize   string
	ConsumedAt    time.Time
}

// Totals is the additive reduction of a set of meal entries.
type Totals struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

// AggregateTotals sums nutrition over the given entries. Empty input yields
// all zeros; there are no error conditions.
func AggregateTotals(entries []MealEntry) Totals {
	var t Totals
	for _, e := range entries {
		t.Calories += e.Calories
		t.Protein += e.Protein
		t.Carbs += e.Carbohydrates
		t.Fat += e.Fat
	}
	return t
}

// MealTimeFor classifies an entry by the hour of day in its own location:
// [5,12) breakfast, [12,17) lunch, [17,21) dinner, everything else snacks.
func MealTimeFor(consumedAt time.Time) MealTime {
	switch hour := consumedAt.Hour(); {
	case hour >= 5 && hour < 12:
		return MealBreakfast
	case hour >= 12 && hour < 17:
		return MealLunch
	case hour >= 17 && hour < 21:
		return MealDinner
	default:
		return MealSnacks
	}
}

// GroupByMealTime buckets entries by hour of day. The date is irrelevant to
// the bucket; callers pre-filter to a single day for a daily breakdown.
func GroupByMealTime(entries []MealEntry) map[MealTime][]MealEntry {
	grouped := make(map[MealTime][]MealEntry)
	for _, e := range entries {
		bucket := MealTimeFor(e.ConsumedAt)
		grouped[bucket] = append(grouped[bucket], e)
	}
	return grouped
}

// maxStreakDays caps the backward scan so a perpetual log history cannot
// make the walk unbounded.
const maxStreakDays = 365

// ComputeStreak counts consecutive calendar days with at least one entry,
// walking backward from asOf's day. There is no grace day: if asOf's own day
// has no entries the streak is 0.
func ComputeStreak(entries []MealEntry, asOf time.Time) int {
	if len(entries) == 0 {
		return 0
	}

	loc := asOf.Location()
	daysWithEntries := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		daysWithEntries[e.ConsumedAt.In(loc).Format("2006-01-02")] = struct{}{}
	}

	streak := 0
	day := asOf
	for streak < maxStreakDays {
		if _, ok := daysWithEntries[day.Format("2006-01-02")]; !ok {
			break
		}
		streak++
		day = day.AddDate(0, 0, -1)
	}
	return streak
}

// FilterByDate keeps entries whose consumption falls on the same local
// calendar day as date. Calendar-day boundaries, not a rolling 24h window:
// "today" resets at local midnight.
func FilterByDate(entries []MealEntry, date time.Time) []MealEntry {
	loc := date.Location()
	y, m, d := date.Date()

	filtered := make([]MealEntry, 0, len(entries))
	for _, e := range entries {
		ey, em, ed := e.ConsumedAt.In(loc).Date()
		if ey == y && em == m && ed == d {
			filtered = append(filtered, e)
		}
	}
	return filtered
}
