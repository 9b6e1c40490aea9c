package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Activity levels accepted on a health profile.
const (
	ActivitySedentary        = "Sedentary"
	ActivityLightlyActive    = "Lightly Active"
	ActivityModeratelyActive = "Moderately Active"
	ActivityVeryActive       = "Very Active"
)

// Goals recognized by the macro calculator and planner. Other goal strings
// are carried through untouched.
const (
	GoalWeightLoss          = "Weight loss"
	GoalAthleticPerformance = "Optimized athletic performance"
)

// HealthProfile holds the onboarding answers plus the macro targets derived
// from them. The derived fields (BMI, CalorieNeeds, the *Needed grams) are
// recomputed and written back on every profile update.
type HealthProfile struct {
	ID        uuid.UUID      `gorm:"type:varchar(36);primarykey" json:"id"`
	UserID    uuid.UUID      `gorm:"type:varchar(36);not null;uniqueIndex" json:"user_id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Sex           string    `gorm:"size:10" json:"sex"`
	BirthDate     time.Time `json:"birth_date"`
	HeightCm      float64   `json:"height_cm"`
	WeightKg      float64   `json:"weight_kg"`
	ActivityLevel string    `gorm:"size:30" json:"activity_level"`

	Goals            JSONBStringArray `gorm:"type:jsonb;not null;default:'[]'" json:"goals"`
	EatingStyle      string           `gorm:"size:50" json:"eating_style"`
	Allergens        JSONBStringArray `gorm:"type:jsonb;not null;default:'[]'" json:"allergens"`
	HealthConditions JSONBStringArray `gorm:"type:jsonb;not null;default:'[]'" json:"health_conditions"`

	MealsPerDay   int `gorm:"not null;default:3" json:"meals_per_day"`
	TimeframeDays int `gorm:"not null;default:7" json:"timeframe_days"`

	// Plan window persisted on generation so a regenerated plan reuses the
	// same dates instead of drifting forward.
	PlanStartDate *time.Time `gorm:"type:date" json:"plan_start_date,omitempty"`
	PlanEndDate   *time.Time `gorm:"type:date" json:"plan_end_date,omitempty"`

	BMI           float64 `json:"bmi"`
	CalorieNeeds  int     `json:"calorie_needs"`
	ProteinNeeded int     `json:"protein_needed"`
	FatsNeeded    int     `json:"fats_needed"`
	CarbsNeeded   int     `json:"carbs_needed"`
}

// PrimaryGoal returns the first goal on the profile, or "" if none is set.
func (p *HealthProfile) PrimaryGoal() string {
	if len(p.Goals) == 0 {
		return ""
	}
	return p.Goals[0]
}
