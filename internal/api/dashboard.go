package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/macroplate/backend/internal/service"
)

// DashboardHandler serves the aggregated daily and range views the app's
// progress screens render from.
type DashboardHandler struct {
	meals service.IMealService
}

func NewDashboardHandler(meals service.IMealService) *DashboardHandler {
	return &DashboardHandler{meals: meals}
}

func (h *DashboardHandler) RegisterRoutes(router *gin.RouterGroup) {
	dashboard := router.Group("/dashboard")
	{
		dashboard.GET("/day", h.GetDay)
		dashboard.GET("/range", h.GetRange)
		dashboard.GET("/streak", h.GetStreak)
	}
}

// GetDay returns totals, goals, meal-time breakdown and streak for one
// calendar day (?date=YYYY-MM-DD, default today).
func (h *DashboardHandler) GetDay(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	day := time.Now()
	if s := c.Query("date"); s != "" {
		parsed, err := time.ParseInLocation("2006-01-02", s, time.Local)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date, expected YYYY-MM-DD"})
			return
		}
		day = parsed
	}

	summary, err := h.meals.DailySummary(c.Request.Context(), userID, day)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build daily summary"})
		return
	}

	c.JSON(http.StatusOK, summary)
}

// GetRange returns per-day totals over ?from / ?to (default today).
func (h *DashboardHandler) GetRange(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	from, to, err := dateRange(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	summary, err := h.meals.RangeSummary(c.Request.Context(), userID, from, to)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build range summary"})
		return
	}

	c.JSON(http.StatusOK, summary)
}

// GetStreak returns the current consecutive-day logging streak.
func (h *DashboardHandler) GetStreak(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	streak, err := h.meals.Streak(c.Request.Context(), userID, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute streak"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"streak": streak})
}
