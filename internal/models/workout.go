package models

import (
	"time"

	"github.com/google/uuid"
)

// WorkoutType is reference data: a named exercise with per-minute burn rates.
type WorkoutType struct {
	ID   uint   `gorm:"primarykey" json:"id"`
	Name string `gorm:"size:100;not null;uniqueIndex" json:"name"`

	CaloriesPerMinute float64 `json:"calories_per_minute"`
	FatPerMinute      float64 `json:"fat_per_minute"`
	CarbsPerMinute    float64 `json:"carbs_per_minute"`
}

// Workout is a logged session. Burn totals are computed from the type's
// per-minute rates at insert time.
type Workout struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	UserID    uuid.UUID `gorm:"type:varchar(36);not null;index" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`

	WorkoutTypeID uint        `gorm:"not null" json:"workout_type_id"`
	WorkoutType   WorkoutType `gorm:"foreignKey:WorkoutTypeID" json:"workout_type"`

	DurationMinutes float64 `gorm:"not null" json:"duration"`

	CaloriesBurned float64 `json:"calories_burned"`
	FatBurned      float64 `json:"fat_burned"`
	CarbsBurned    float64 `json:"carbs_burned"`
}
