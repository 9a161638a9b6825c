package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/macroplate/backend/config"
	"github.com/macroplate/backend/internal/api"
	"github.com/macroplate/backend/internal/database"
	"github.com/macroplate/backend/internal/middleware"
	"github.com/macroplate/backend/internal/provider/openfoodfacts"
	"github.com/macroplate/backend/internal/router"
	"github.com/macroplate/backend/internal/server"
	"github.com/macroplate/backend/internal/service"
)

func main() {
	// Load .env if present; real deployments rely on the environment.
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.New(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.RunMigrations(db, "migrations"); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Redis is optional. Without it the AI cache and rate limiter are
	// disabled but every API route still works.
	redisClient, err := database.NewRedisClient(cfg)
	if err != nil {
		log.Printf("Redis unavailable, continuing without cache: %v", err)
		redisClient = nil
	}

	authService := service.NewAuthService(db, cfg.JWTSecret)
	profileService := service.NewProfileService(db)
	mealService := service.NewMealService(db)

	// The DeepSeek key is only mandatory in production (see ValidateConfig).
	// Without it the AI routes respond 503 but the server still boots.
	var llmService service.IMealAnalysisService
	if cfg.DeepSeekAPIKey != "" {
		llmService, err = service.NewLLMService(cfg.DeepSeekAPIKey, cfg.DeepSeekAPIURL, redisClient)
		if err != nil {
			log.Fatalf("Failed to initialize LLM service: %v", err)
		}
	} else {
		log.Println("DEEPSEEK_API_KEY not set, AI meal features disabled")
	}

	offClient := &openfoodfacts.Client{BaseURL: cfg.OpenFoodFactsURL}
	barcodeService := service.NewBarcodeService(offClient, redisClient)

	var aiLimiter *middleware.RateLimiter
	if redisClient != nil && cfg.AIRateLimit > 0 {
		aiLimiter = middleware.NewRateLimiter(redisClient, middleware.RateLimitConfig{
			Window:    time.Minute,
			Limit:     cfg.AIRateLimit,
			KeyPrefix: "ratelimit:ai",
		})
	}

	handlers := router.Handlers{
		Auth:      api.NewAuthHandler(authService),
		Profile:   api.NewProfileHandler(profileService),
		Meals:     api.NewMealHandler(mealService),
		Dashboard: api.NewDashboardHandler(mealService),
		LLM:       api.NewLLMHandler(llmService, mealService, profileService),
		Barcode:   api.NewBarcodeHandler(barcodeService, mealService),
	}

	engine := router.SetupRouter(handlers, authService, aiLimiter, cfg.AllowedOrigins)
	addr := fmt.Sprintf("%s:%s", cfg.ServerHost, cfg.ServerPort)
	srv := server.New(engine, addr)

	errChan := make(chan error, 1)
	go func() {
		log.Printf("Starting server on %s", addr)
		errChan <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil {
			log.Fatalf("Server error: %v", err)
		}
	case sig := <-quit:
		log.Printf("Received signal: %v", sig)
	}

	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server shutdown error: %v", err)
	}
	log.Println("Server stopped")
}
