package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Meal log sources.
const (
	MealSourceManual  = "manual"
	MealSourceBarcode = "barcode"
	MealSourceVoice   = "voice"
	MealSourceAI      = "ai"
)

// MealLog is one logged meal. Nutrition values are absolute per entry, never
// per-100g: barcode and AI lookups are flattened to absolute values before
// they are stored, so aggregation never scales by serving quantity.
type MealLog struct {
	ID        uuid.UUID      `gorm:"type:varchar(36);primarykey" json:"id"`
	UserID    uuid.UUID      `gorm:"type:varchar(36);not null;index" json:"user_id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Name          string  `gorm:"size:255;not null" json:"name"`
	Calories      float64 `gorm:"not null;default:0" json:"calories"`
	Protein       float64 `gorm:"not null;default:0" json:"protein"`
	Carbohydrates float64 `gorm:"not null;default:0" json:"carbohydrates"`
	Fat           float64 `gorm:"not null;default:0" json:"fat"`
	Fiber         float64 `gorm:"not null;default:0" json:"fiber"`
	ServingSize   string  `gorm:"size:100" json:"serving_size"`
	Source        string  `gorm:"size:16;not null;default:'manual'" json:"source"`

	ConsumedAt time.Time `gorm:"not null;index" json:"consumed_at"`
}

func (m *MealLog) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
