package service

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/macroplate/backend/internal/types"
)

const analysisCacheTTL = 24 * time.Hour

// MealAnalysis is the AI estimate for a free-text meal description. The
// caller assigns it an id and consumed-at timestamp before it becomes a meal
// log; the estimate is ingested as-is, not revalidated.
type MealAnalysis struct {
	Name              string   `json:"name"`
	Calories          float64  `json:"calories"`
	Protein           float64  `json:"protein"`
	Carbs             float64  `json:"carbs"`
	Fat               float64  `json:"fat"`
	Fiber             float64  `json:"fiber"`
	ConfidencePercent float64  `json:"confidence_percent"`
	Assumptions       []string `json:"assumptions"`
}

// PlannedMeal is one meal inside a generated daily plan.
type PlannedMeal struct {
	MealTime    string  `json:"meal_time"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Calories    float64 `json:"calories"`
	Protein     float64 `json:"protein"`
	Carbs       float64 `json:"carbs"`
	Fat         float64 `json:"fat"`
}

// MealPlan is a one-day plan targeted at the user's computed goals.
type MealPlan struct {
	Meals []PlannedMeal `json:"meals"`
	Notes string        `json:"notes"`
}

// LLMService handles interactions with the DeepSeek chat-completions API for
// meal analysis and meal-plan generation. Analysis results are cached in
// Redis keyed by the normalized description.
type LLMService struct {
	apiKey string
	apiURL string
	model  string
	client *http.Client
	redis  *redis.Client
}

var _ IMealAnalysisService = (*LLMService)(nil)

// NewLLMService creates a new LLMService instance. The redis client is
// optional; without it every analysis hits the API.
func NewLLMService(apiKey, apiURL string, redisClient *redis.Client) (*LLMService, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("LLM API key must be set")
	}
	if apiURL == "" {
		apiURL = "https://api.deepseek.com/v1/chat/completions"
	}
	return &LLMService{
		apiKey: apiKey,
		apiURL: apiURL,
		model:  "deepseek-chat",
		client: &http.Client{Timeout: 30 * time.Second},
		redis:  redisClient,
	}, nil
}

// Message represents a message in the chat.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Request represents a chat-completions request.
type Request struct {
	Model          string            `json:"model"`
	Messages       []Message         `json:"messages"`
	ResponseFormat map[string]string `json:"response_format"`
	Temperature    float64           `json:"temperature"`
}

const analyzeSystemPrompt = `You are a nutrition expert. Given a free-text description of a meal, estimate its nutrition. Respond only with JSON of this shape:
{
    "name": "Short meal name",
    "calories": 520,
    "protein": 34,
    "carbs": 48,
    "fat": 18,
    "fiber": 6,
    "confidence_percent": 70,
    "assumptions": ["assumed a medium portion", "assumed cooked in oil"]
}

All nutrient fields must be numbers (grams, except calories in kcal) for the whole described meal, not per 100g. confidence_percent reflects how ambiguous the description is.`

// AnalyzeMeal estimates nutrition for a free-text meal description,
// consulting the cache first.
func (s *LLMService) AnalyzeMeal(ctx context.Context, description string) (*MealAnalysis, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return nil, fmt.Errorf("meal description is empty")
	}

	cacheKey := analysisCacheKey(description)
	if s.redis != nil {
		if data, err := s.redis.Get(ctx, cacheKey).Bytes(); err == nil {
			var cached MealAnalysis
			if err := json.Unmarshal(data, &cached); err == nil {
				return &cached, nil
			}
		}
	}

	content, err := s.chat(ctx, []Message{
		{Role: "system", Content: analyzeSystemPrompt},
		{Role: "user", Content: description},
	}, 0.2)
	if err != nil {
		return nil, err
	}

	var analysis MealAnalysis
	if err := json.Unmarshal([]byte(content), &analysis); err != nil {
		return nil, fmt.Errorf("failed to parse meal analysis: %w", err)
	}

	if s.redis != nil {
		if data, err := json.Marshal(&analysis); err == nil {
			if err := s.redis.Set(ctx, cacheKey, data, analysisCacheTTL).Err(); err != nil {
				log.Printf("failed to cache meal analysis: %v", err)
			}
		}
	}
	return &analysis, nil
}

const planSystemPrompt = `You are a professional nutritionist. Generate a one-day meal plan hitting the user's calorie and macro targets. Respond only with JSON of this shape:
{
    "meals": [
        {"meal_time": "breakfast", "name": "...", "description": "...", "calories": 450, "protein": 30, "carbs": 50, "fat": 14}
    ],
    "notes": "One short paragraph of guidance"
}

meal_time must be one of: breakfast, lunch, dinner, snacks. Nutrient fields must be numbers.`

// GenerateMealPlan generates a one-day plan fitted to the computed goals.
func (s *LLMService) GenerateMealPlan(ctx context.Context, goals types.GoalSummary, preferences, exclusions []string) (*MealPlan, error) {
	prompt := fmt.Sprintf("Daily targets: %d kcal, %.0f g protein, %.0f g carbs, %.0f g fat.",
		goals.DailyCalorieGoal, goals.ProteinGoalGrams, goals.CarbGoalGrams, goals.FatGoalGrams)
	if len(preferences) > 0 {
		prompt += " The plan should be suitable for: " + strings.Join(preferences, ", ") + "."
	}
	if len(exclusions) > 0 {
		prompt += " Avoid using: " + strings.Join(exclusions, ", ") + "."
	}

	content, err := s.chat(ctx, []Message{
		{Role: "system", Content: planSystemPrompt},
		{Role: "user", Content: prompt},
	}, 0.7)
	if err != nil {
		return nil, err
	}

	var plan MealPlan
	if err := json.Unmarshal([]byte(content), &plan); err != nil {
		return nil, fmt.Errorf("failed to parse meal plan: %w", err)
	}
	return &plan, nil
}

// chat sends one chat-completions request and returns the first choice's
// message content.
func (s *LLMService) chat(ctx context.Context, messages []Message, temperature float64) (string, error) {
	reqBody := Request{
		Model:          s.model,
		Messages:       messages,
		ResponseFormat: map[string]string{"type": "json_object"},
		Temperature:    temperature,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.apiURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("API request failed with status %d: %s", resp.StatusCode, string(body))
	}

	var result struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}
	if len(result.Choices) == 0 {
		return "", fmt.Errorf("no response from API")
	}
	return result.Choices[0].Message.Content, nil
}

func analysisCacheKey(description string) string {
	normalized := strings.ToLower(strings.Join(strings.Fields(description), " "))
	sum := sha256.Sum256([]byte(normalized))
	return "meal:analysis:" + hex.EncodeToString(sum[:])
}
