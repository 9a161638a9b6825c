package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/macroplate/backend/internal/models"
	"github.com/macroplate/backend/internal/nutrition"
	"github.com/macroplate/backend/internal/types"
)

var ErrMealNotFound = errors.New("meal log not found")

// MealService handles meal log CRUD and the aggregated views on top of it.
// Aggregation itself is delegated to the pure nutrition package; this
// service only resolves rows into memory and scopes them to the user.
type MealService struct {
	db *gorm.DB
}

var _ IMealService = (*MealService)(nil)

func NewMealService(db *gorm.DB) *MealService {
	return &MealService{db: db}
}

// LogMeal stores one meal entry with absolute nutrition values.
func (s *MealService) LogMeal(ctx context.Context, userID uuid.UUID, req *types.LogMealRequest) (*models.MealLog, error) {
	consumedAt := req.ConsumedAt
	if consumedAt.IsZero() {
		consumedAt = time.Now()
	}
	source := req.Source
	if source == "" {
		source = models.MealSourceManual
	}

	meal := models.MealLog{
		UserID:        userID,
		Name:          req.Name,
		Calories:      req.Calories,
		Protein:       req.Protein,
		Carbohydrates: req.Carbohydrates,
		Fat:           req.Fat,
		Fiber:         req.Fiber,
		ServingSize:   req.ServingSize,
		Source:        source,
		ConsumedAt:    consumedAt,
	}
	if err := s.db.WithContext(ctx).Create(&meal).Error; err != nil {
		return nil, err
	}
	return &meal, nil
}

// DeleteMeal soft-deletes a meal log owned by the user.
func (s *MealService) DeleteMeal(ctx context.Context, userID, mealID uuid.UUID) error {
	res := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", mealID, userID).
		Delete(&models.MealLog{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrMealNotFound
	}
	return nil
}

// ListMeals returns the user's meal logs in [from, to), oldest first.
func (s *MealService) ListMeals(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]models.MealLog, error) {
	var meals []models.MealLog
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND consumed_at >= ? AND consumed_at < ?", userID, from, to).
		Order("consumed_at ASC").
		Find(&meals).Error
	if err != nil {
		return nil, err
	}
	return meals, nil
}

// DailySummary builds the dashboard view for one local calendar day: totals,
// the goal-engine output, the per-meal-time breakdown, and the streak.
func (s *MealService) DailySummary(ctx context.Context, userID uuid.UUID, day time.Time) (*types.DailySummary, error) {
	var profile models.UserProfile
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return nil, err
	}

	// The query bounds own the day boundary: [dayStart, dayStart+1) in
	// local time, so no further date filtering happens below.
	dayStart := startOfDay(day)
	meals, err := s.ListMeals(ctx, userID, dayStart, dayStart.AddDate(0, 0, 1))
	if err != nil {
		return nil, err
	}

	entries := mealEntries(meals)
	grouped := nutrition.GroupByMealTime(entries)

	sources := make(map[string]string, len(meals))
	for _, m := range meals {
		sources[m.ID.String()] = m.Source
	}

	byMealTime := make(map[nutrition.MealTime][]types.MealSummary, len(nutrition.MealTimes))
	for _, bucket := range nutrition.MealTimes {
		byMealTime[bucket] = mealSummaries(grouped[bucket], sources)
	}

	streak, err := s.Streak(ctx, userID, day)
	if err != nil {
		return nil, err
	}

	return &types.DailySummary{
		Date:       day.Format("2006-01-02"),
		Totals:     nutrition.AggregateTotals(entries),
		Goals:      goalSummaryFor(&profile),
		ByMealTime: byMealTime,
		Streak:     streak,
	}, nil
}

// RangeSummary reduces a date range into per-day and overall totals.
func (s *MealService) RangeSummary(ctx context.Context, userID uuid.UUID, from, to time.Time) (*types.RangeSummary, error) {
	if to.Before(from) {
		return nil, errors.New("range end precedes range start")
	}
	fromStart := startOfDay(from)
	toEnd := startOfDay(to).AddDate(0, 0, 1)

	meals, err := s.ListMeals(ctx, userID, fromStart, toEnd)
	if err != nil {
		return nil, err
	}
	entries := mealEntries(meals)

	summary := &types.RangeSummary{
		From:   fromStart.Format("2006-01-02"),
		To:     startOfDay(to).Format("2006-01-02"),
		Totals: nutrition.AggregateTotals(entries),
	}

	for day := fromStart; day.Before(toEnd); day = day.AddDate(0, 0, 1) {
		onDay := nutrition.FilterByDate(entries, day)
		if len(onDay) == 0 {
			continue
		}
		summary.Days = append(summary.Days, types.DayTotals{
			Date:   day.Format("2006-01-02"),
			Totals: nutrition.AggregateTotals(onDay),
		})
	}
	return summary, nil
}

// Streak counts consecutive logged days ending at asOf's calendar day. The
// engine caps the scan at 365 days, so only that much history is loaded.
func (s *MealService) Streak(ctx context.Context, userID uuid.UUID, asOf time.Time) (int, error) {
	horizon := startOfDay(asOf).AddDate(0, 0, -365)
	meals, err := s.ListMeals(ctx, userID, horizon, startOfDay(asOf).AddDate(0, 0, 1))
	if err != nil {
		return 0, err
	}
	return nutrition.ComputeStreak(mealEntries(meals), asOf), nil
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// mealEntries flattens stored rows into the aggregator's input. Values are
// already absolute per entry; no serving scaling happens here.
func mealEntries(meals []models.MealLog) []nutrition.MealEntry {
	entries := make([]nutrition.MealEntry, len(meals))
	for i, m := range meals {
		entries[i] = nutrition.MealEntry{
			ID:            m.ID.String(),
			Name:          m.Name,
			Calories:      m.Calories,
			Protein:       m.Protein,
			Carbohydrates: m.Carbohydrates,
			Fat:           m.Fat,
			ServingSize:   m.ServingSize,
			ConsumedAt:    m.ConsumedAt,
		}
	}
	return entries
}

func mealSummaries(entries []nutrition.MealEntry, sources map[string]string) []types.MealSummary {
	out := make([]types.MealSummary, len(entries))
	for i, e := range entries {
		out[i] = types.MealSummary{
			ID:            e.ID,
			Name:          e.Name,
			Calories:      e.Calories,
			Protein:       e.Protein,
			Carbohydrates: e.Carbohydrates,
			Fat:           e.Fat,
			ServingSize:   e.ServingSize,
			Source:        sources[e.ID],
			ConsumedAt:    e.ConsumedAt,
		}
	}
	return out
}
