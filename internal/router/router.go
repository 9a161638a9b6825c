package router

import (
	"github.com/gin-gonic/gin"

	"github.com/macroplate/backend/internal/api"
	"github.com/macroplate/backend/internal/middleware"
)

// Handlers bundles the route registrars the router mounts.
type Handlers struct {
	Auth      *api.AuthHandler
	Profile   *api.ProfileHandler
	Meals     *api.MealHandler
	Dashboard *api.DashboardHandler
	LLM       *api.LLMHandler
	Barcode   *api.BarcodeHandler
}

// SetupRouter configures the application routes.
func SetupRouter(h Handlers, validator middleware.TokenValidator, aiLimiter *middleware.RateLimiter, allowedOrigins []string) *gin.Engine {
	router := gin.Default()
	router.Use(middleware.CORS(allowedOrigins))

	v1 := router.Group("/api/v1")
	h.Auth.RegisterRoutes(v1)

	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(validator))
	{
		h.Profile.RegisterRoutes(protected)
		h.Meals.RegisterRoutes(protected)
		h.Dashboard.RegisterRoutes(protected)
		h.Barcode.RegisterRoutes(protected)

		ai := protected.Group("")
		if aiLimiter != nil {
			ai.Use(aiLimiter.Middleware())
		}
		h.LLM.RegisterRoutes(ai)
	}

	return router
}
