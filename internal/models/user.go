package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID           uuid.UUID      `gorm:"type:varchar(36);primarykey" json:"id"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
	Name         string         `gorm:"not null" json:"name"`
	Email        string         `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string         `gorm:"not null" json:"-"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// UserProfile holds the body metrics and goal settings the goal engine
// computes from, plus the derived targets persisted back for display
// continuity. Enum fields are stored as lowercase strings and parsed back
// through the nutrition package's explicit mappings.
type UserProfile struct {
	ID        uuid.UUID      `gorm:"type:varchar(36);primarykey" json:"id"`
	UserID    uuid.UUID      `gorm:"type:varchar(36);not null;uniqueIndex" json:"user_id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Name       string  `gorm:"size:100" json:"name"`
	Age        int     `gorm:"not null;default:25" json:"age"`
	Gender     string  `gorm:"size:16;not null;default:'unknown'" json:"gender"`
	Weight     float64 `gorm:"not null;default:70" json:"weight"`
	WeightUnit string  `gorm:"size:8;not null;default:'kg'" json:"weight_unit"`
	Height     float64 `gorm:"not null;default:170" json:"height"`
	HeightUnit string  `gorm:"size:8;not null;default:'cm'" json:"height_unit"`

	BodyFatPercent *float64 `json:"body_fat_percent,omitempty"`
	BodyFatSource  string   `gorm:"size:16;not null;default:'unknown'" json:"body_fat_source"`

	ActivityLevel      string  `gorm:"size:32;not null;default:'sedentary'" json:"activity_level"`
	GoalType           string  `gorm:"size:32;not null;default:'maintain_weight'" json:"goal_type"`
	WeeklyWeightChange float64 `gorm:"not null;default:0" json:"weekly_weight_change"`

	// Derived targets, recomputed on every mutation of an input field.
	DailyCalorieGoal int     `gorm:"not null;default:0" json:"daily_calorie_goal"`
	ProteinGoalGrams float64 `gorm:"not null;default:0" json:"protein_goal_grams"`
	CarbGoalGrams    float64 `gorm:"not null;default:0" json:"carb_goal_grams"`
	FatGoalGrams     float64 `gorm:"not null;default:0" json:"fat_goal_grams"`
}

func (p *UserProfile) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
