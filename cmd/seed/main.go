package main

import (
	"log"
	"math"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"github.com/macroplate/backend/config"
	"github.com/macroplate/backend/internal/database"
	"github.com/macroplate/backend/internal/models"
	"github.com/macroplate/backend/internal/nutrition"
)

// Seeds a demo account with a filled-in profile and a week of meal logs so
// the dashboard has something to show on a fresh install.
func main() {
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

	const demoEmail = "demo@macroplate.app"

	var existing models.User
	if err := db.Where("email = ?", demoEmail).First(&existing).Error; err == nil {
		log.Printf("Demo user %s already exists, nothing to do", demoEmail)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("demopassword123"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	user := models.User{
		Name:         "Demo User",
		Email:        demoEmail,
		PasswordHash: string(hash),
	}
	if err := db.Create(&user).Error; err != nil {
		log.Fatalf("Failed to create demo user: %v", err)
	}

	engineProfile := nutrition.Profile{
		Name:               "Demo User",
		Age:                30,
		Weight:             80,
		WeightUnit:         nutrition.WeightKilograms,
		Height:             180,
		HeightUnit:         nutrition.HeightCentimeters,
		Gender:             nutrition.GenderMale,
		BodyFatSource:      nutrition.BodyFatUnknown,
		ActivityLevel:      nutrition.ActivityModeratelyActive,
		GoalType:           nutrition.GoalLoseWeight,
		WeeklyWeightChange: 1,
	}
	dailyGoal := nutrition.CalculateDailyCalorieGoal(engineProfile)
	targets := nutrition.CalculateMacroTargets(engineProfile)

	profile := models.UserProfile{
		UserID:             user.ID,
		Name:               engineProfile.Name,
		Age:                engineProfile.Age,
		Gender:             string(engineProfile.Gender),
		Weight:             engineProfile.Weight,
		WeightUnit:         string(engineProfile.WeightUnit),
		Height:             engineProfile.Height,
		HeightUnit:         string(engineProfile.HeightUnit),
		BodyFatSource:      string(engineProfile.BodyFatSource),
		ActivityLevel:      string(engineProfile.ActivityLevel),
		GoalType:           string(engineProfile.GoalType),
		WeeklyWeightChange: engineProfile.WeeklyWeightChange,
		DailyCalorieGoal:   int(math.Round(dailyGoal)),
		ProteinGoalGrams:   math.Round(targets.ProteinGrams),
		CarbGoalGrams:      math.Round(targets.CarbGrams),
		FatGoalGrams:       math.Round(targets.FatGrams),
	}
	if err := db.Create(&profile).Error; err != nil {
		log.Fatalf("Failed to create demo profile: %v", err)
	}

	type seedMeal struct {
		name     string
		calories float64
		protein  float64
		carbs    float64
		fat      float64
		fiber    float64
		serving  string
		hour     int
	}
	dailyMeals := []seedMeal{
		{"Oatmeal with berries", 320, 11, 56, 6, 8, "1 bowl", 7},
		{"Grilled chicken salad", 430, 38, 18, 22, 5, "1 plate", 12},
		{"Greek yogurt", 150, 15, 12, 4, 0, "170 g", 15},
		{"Salmon with rice and broccoli", 610, 42, 58, 20, 6, "1 plate", 19},
	}

	now := time.Now()
	var logs []models.MealLog
	for daysAgo := 6; daysAgo >= 0; daysAgo-- {
		day := now.AddDate(0, 0, -daysAgo)
		for _, m := range dailyMeals {
			logs = append(logs, models.MealLog{
				UserID:        user.ID,
				Name:          m.name,
				Calories:      m.calories,
				Protein:       m.protein,
				Carbohydrates: m.carbs,
				Fat:           m.fat,
				Fiber:         m.fiber,
				ServingSize:   m.serving,
				Source:        models.MealSourceManual,
				ConsumedAt:    time.Date(day.Year(), day.Month(), day.Day(), m.hour, 30, 0, 0, time.Local),
			})
		}
	}
	if err := db.Create(&logs).Error; err != nil {
		log.Fatalf("Failed to create demo meal logs: %v", err)
	}

	log.Printf("Seeded %s with %d meal logs (password: demopassword123)", demoEmail, len(logs))
}
