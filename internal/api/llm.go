package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/macroplate/backend/internal/models"
	"github.com/macroplate/backend/internal/service"
	"github.com/macroplate/backend/internal/types"
)

// LLMHandler exposes AI meal analysis and meal-plan generation. The llm
// service may be nil when no API key is configured; the routes then answer
// 503 instead of the server refusing to boot.
type LLMHandler struct {
	llm     service.IMealAnalysisService
	meals   service.IMealService
	profile service.IProfileService
}

func NewLLMHandler(llm service.IMealAnalysisService, meals service.IMealService, profile service.IProfileService) *LLMHandler {
	return &LLMHandler{
		llm:     llm,
		meals:   meals,
		profile: profile,
	}
}

func (h *LLMHandler) RegisterRoutes(router *gin.RouterGroup) {
	ai := router.Group("/ai")
	{
		ai.POST("/analyze-meal", h.AnalyzeMeal)
		ai.POST("/meal-plan", h.GenerateMealPlan)
	}
}

// AnalyzeMeal estimates nutrition for a free-text description. With
// "log": true the estimate is stored directly as a meal log.
func (h *LLMHandler) AnalyzeMeal(c *gin.Context) {
	if h.llm == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "AI features are not configured"})
		return
	}
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req types.AnalyzeMealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	analysis, err := h.llm.AnalyzeMeal(c.Request.Context(), req.Description)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "meal analysis failed"})
		return
	}

	if !req.Log {
		c.JSON(http.StatusOK, analysis)
		return
	}

	consumedAt := req.ConsumedAt
	if consumedAt.IsZero() {
		consumedAt = time.Now()
	}
	meal, err := h.meals.LogMeal(c.Request.Context(), userID, &types.LogMealRequest{
		Name:          analysis.Name,
		Calories:      analysis.Calories,
		Protein:       analysis.Protein,
		Carbohydrates: analysis.Carbs,
		Fat:           analysis.Fat,
		Fiber:         analysis.Fiber,
		Source:        models.MealSourceAI,
		ConsumedAt:    consumedAt,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to log analyzed meal"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"analysis": analysis,
		"meal":     meal,
	})
}

// GenerateMealPlan builds a one-day plan fitted to the user's computed
// goals.
func (h *LLMHandler) GenerateMealPlan(c *gin.Context) {
	if h.llm == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "AI features are not configured"})
		return
	}
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req types.MealPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	goals, err := h.profile.GoalSummary(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute goals"})
		return
	}

	plan, err := h.llm.GenerateMealPlan(c.Request.Context(), *goals, req.Preferences, req.Exclusions)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "meal plan generation failed"})
		return
	}

	c.JSON(http.StatusOK, plan)
}
