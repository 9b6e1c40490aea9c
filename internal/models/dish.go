package models

import (
	"time"

	"gorm.io/gorm"
)

// Dish is immutable catalog data: the planner and suggestion filters read
// it, nothing in the API writes it outside the seed command.
type Dish struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Name        string `gorm:"size:255;not null" json:"name"`
	Description string `gorm:"type:text" json:"description"`

	// MealTypes holds the slots a dish may fill: breakfast, lunch, dinner,
	// snack. Multi-valued.
	MealTypes JSONBStringArray `gorm:"type:jsonb;not null;default:'[]'" json:"meal_types"`
	Goals     JSONBStringArray `gorm:"type:jsonb;not null;default:'[]'" json:"goals"`
	// HealthConditions lists conditions this dish is unsuitable for.
	HealthConditions JSONBStringArray `gorm:"type:jsonb;not null;default:'[]'" json:"health_conditions"`
	EatingStyle      string           `gorm:"size:50" json:"eating_style"`

	// DefaultServing is the gram basis the ingredient amounts are stored
	// against.
	DefaultServing float64          `gorm:"not null;default:100" json:"default_serving"`
	Steps          JSONBStringArray `gorm:"type:jsonb;not null;default:'[]'" json:"steps"`

	Ingredients []Ingredient `gorm:"foreignKey:DishID;constraint:OnDelete:CASCADE" json:"ingredients"`
}

// Ingredient stores the gram amount used per DefaultServing of the dish and
// the nutrition that amount contributes. Per-gram rates are derived, never
// stored.
type Ingredient struct {
	ID     uint `gorm:"primarykey" json:"id"`
	DishID uint `gorm:"index;not null" json:"dish_id"`

	Name   string  `gorm:"size:255;not null" json:"name"`
	Amount float64 `gorm:"not null" json:"amount"`

	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fats     float64 `json:"fats"`

	Allergens JSONBStringArray `gorm:"type:jsonb;not null;default:'[]'" json:"allergens"`

	// Scalable marks ingredients (rice, typically) whose amount the user may
	// override independently of serving-size scaling.
	Scalable bool `gorm:"not null;default:false" json:"is_scalable"`
}
