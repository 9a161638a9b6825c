package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/macroplate/backend/internal/models"
	"github.com/macroplate/backend/internal/service"
	"github.com/macroplate/backend/internal/types"
)

// BarcodeHandler exposes barcode lookups and barcode-based meal logging.
type BarcodeHandler struct {
	barcode service.IBarcodeService
	meals   service.IMealService
}

func NewBarcodeHandler(barcode service.IBarcodeService, meals service.IMealService) *BarcodeHandler {
	return &BarcodeHandler{
		barcode: barcode,
		meals:   meals,
	}
}

func (h *BarcodeHandler) RegisterRoutes(router *gin.RouterGroup) {
	barcode := router.Group("/barcode")
	{
		barcode.GET("/:code", h.Lookup)
		barcode.POST("/log", h.LogFromBarcode)
	}
}

// Lookup returns the per-100g facts for a barcode.
func (h *BarcodeHandler) Lookup(c *gin.Context) {
	if _, ok := currentUserID(c); !ok {
		return
	}

	facts, err := h.barcode.Lookup(c.Request.Context(), c.Param("code"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		return
	}

	c.JSON(http.StatusOK, facts)
}

// LogFromBarcode resolves a barcode and stores a meal log with the per-100g
// facts scaled to the eaten amount, so aggregation only ever sees absolute
// values.
func (h *BarcodeHandler) LogFromBarcode(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req types.LogBarcodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	facts, err := h.barcode.Lookup(c.Request.Context(), req.Barcode)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		return
	}

	calories, protein, carbs, fat, fiber := facts.Scale(req.AmountGrams)
	consumedAt := req.ConsumedAt
	if consumedAt.IsZero() {
		consumedAt = time.Now()
	}

	meal, err := h.meals.LogMeal(c.Request.Context(), userID, &types.LogMealRequest{
		Name:          facts.Name,
		Calories:      calories,
		Protein:       protein,
		Carbohydrates: carbs,
		Fat:           fat,
		Fiber:         fiber,
		ServingSize:   fmt.Sprintf("%.0f g", req.AmountGrams),
		Source:        models.MealSourceBarcode,
		ConsumedAt:    consumedAt,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to log meal"})
		return
	}

	c.JSON(http.StatusCreated, meal)
}
