package models

import (
	"time"

	"github.com/google/uuid"
)

// Meal types used on plan slots and log entries.
const (
	MealTypeBreakfast = "Breakfast"
	MealTypeLunch     = "Lunch"
	MealTypeDinner    = "Dinner"
	MealTypeSnack     = "Snack"
)

// MealLog is one confirmed meal. Immutable once created except by deletion.
type MealLog struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	UserID    uuid.UUID `gorm:"type:varchar(36);not null;index" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`

	DishID   uint   `gorm:"not null" json:"dish_id"`
	DishName string `gorm:"size:255;not null" json:"dish_name"`

	MealDate time.Time `gorm:"type:date;not null;index" json:"meal_date"`
	MealType string    `gorm:"size:20;not null" json:"meal_type"`

	ServingLabel string `gorm:"size:50" json:"serving_label"`

	Calories int `json:"calories"`
	Protein  int `json:"protein"`
	Carbs    int `json:"carbs"`
	Fat      int `json:"fat"`
}
