package service_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/macroplate/backend/internal/service"
	"github.com/macroplate/backend/internal/types"
)

// fakeChatServer returns an httptest server that speaks just enough of the
// chat-completions protocol, handing back content as the first choice.
func fakeChatServer(t *testing.T, content string, gotBody *map[string]any) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "Bearer test-api-key", r.Header.Get("Authorization"))

		if gotBody != nil {
			require.NoError(t, json.NewDecoder(r.Body).Decode(gotBody))
		}

		resp := map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"content": content}},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	}))
}

func TestNewLLMServiceRequiresAPIKey(t *testing.T) {
	_, err := service.NewLLMService("", "", nil)
	assert.Error(t, err)

	svc, err := service.NewLLMService("test-api-key", "", nil)
	require.NoError(t, err)
	assert.NotNil(t, svc)
}

func TestAnalyzeMeal(t *testing.T) {
	var body map[string]any
	srv := fakeChatServer(t, `{
		"name": "Chicken burrito",
		"calories": 650,
		"protein": 38,
		"carbs": 62,
		"fat": 24,
		"fiber": 8,
		"confidence_percent": 75,
		"assumptions": ["assumed a large tortilla"]
	}`, &body)
	defer srv.Close()

	svc, err := service.NewLLMService("test-api-key", srv.URL, nil)
	require.NoError(t, err)

	analysis, err := svc.AnalyzeMeal(context.Background(), "a chicken burrito with rice and beans")
	require.NoError(t, err)
	assert.Equal(t, "Chicken burrito", analysis.Name)
	assert.Equal(t, 650.0, analysis.Calories)
	assert.Equal(t, 38.0, analysis.Protein)
	assert.Equal(t, 75.0, analysis.ConfidencePercent)
	assert.Len(t, analysis.Assumptions, 1)

	// The request pins JSON output and carries the description as the user
	// message.
	rf, ok := body["response_format"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "json_object", rf["type"])
	messages, ok := body["messages"].([]any)
	require.True(t, ok)
	require.Len(t, messages, 2)
	user := messages[1].(map[string]any)
	assert.Equal(t, "a chicken burrito with rice and beans", user["content"])
}

func TestAnalyzeMealEmptyDescription(t *testing.T) {
	svc, err := service.NewLLMService("test-api-key", "http://unused.invalid", nil)
	require.NoError(t, err)

	_, err = svc.AnalyzeMeal(context.Background(), "   ")
	assert.Error(t, err)
}

func TestAnalyzeMealUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	svc, err := service.NewLLMService("test-api-key", srv.URL, nil)
	require.NoError(t, err)

	_, err = svc.AnalyzeMeal(context.Background(), "an apple")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
}

func TestGenerateMealPlan(t *testing.T) {
	var body map[string]any
	srv := fakeChatServer(t, `{
		"meals": [
			{"meal_time": "breakfast", "name": "Oats", "description": "Oats with berries", "calories": 420, "protein": 24, "carbs": 60, "fat": 10},
			{"meal_time": "lunch", "name": "Chicken bowl", "description": "Rice and chicken", "calories": 680, "protein": 48, "carbs": 70, "fat": 20}
		],
		"notes": "Spread protein across the day."
	}`, &body)
	defer srv.Close()

	svc, err := service.NewLLMService("test-api-key", srv.URL, nil)
	require.NoError(t, err)

	goals := types.GoalSummary{
		DailyCalorieGoal: 2373,
		ProteinGoalGrams: 155,
		CarbGoalGrams:    263,
		FatGoalGrams:     78,
	}
	plan, err := svc.GenerateMealPlan(context.Background(), goals, []string{"vegetarian-friendly"}, []string{"peanuts"})
	require.NoError(t, err)
	require.Len(t, plan.Meals, 2)
	assert.Equal(t, "breakfast", plan.Meals[0].MealTime)
	assert.NotEmpty(t, plan.Notes)

	// The prompt embeds the calorie and macro targets plus the constraints.
	messages := body["messages"].([]any)
	prompt := messages[1].(map[string]any)["content"].(string)
	assert.Contains(t, prompt, "2373 kcal")
	assert.Contains(t, prompt, "155 g protein")
	assert.True(t, strings.Contains(prompt, "vegetarian-friendly"))
	assert.True(t, strings.Contains(prompt, "peanuts"))
}
