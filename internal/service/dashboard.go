package service

import (
	"context"
	"math"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nutrivue/backend/internal/models"
	"github.com/nutrivue/backend/internal/planner"
)

// DashboardTargets is the calorie and macro budget for the whole window.
type DashboardTargets struct {
	Calories int `json:"calories"`
	Protein  int `json:"protein"`
	Fat      int `json:"fat"`
	Carbs    int `json:"carbs"`
}

// DashboardConsumed sums the logged meals inside the window.
type DashboardConsumed struct {
	Calories int `json:"calories"`
	Protein  int `json:"protein"`
	Fat      int `json:"fat"`
	Carbs    int `json:"carbs"`
}

// DashboardBurned sums the logged workouts inside the window.
type DashboardBurned struct {
	Calories float64 `json:"calories"`
	Fat      float64 `json:"fat"`
	Carbs    float64 `json:"carbs"`
}

// DashboardSummary is the progress view for the current plan window. Burned
// calories extend the budget: remaining = target + burned - consumed.
type DashboardSummary struct {
	StartDate     time.Time `json:"start_date"`
	EndDate       time.Time `json:"end_date"`
	TimeframeDays int       `json:"timeframe_days"`

	Targets  DashboardTargets  `json:"targets"`
	Consumed DashboardConsumed `json:"consumed"`
	Burned   DashboardBurned   `json:"burned"`

	RemainingCalories int `json:"remaining_calories"`
	ProgressPercent   int `json:"progress_percent"`
}

type DashboardService struct {
	db *gorm.DB
}

func NewDashboardService(db *gorm.DB) *DashboardService {
	return &DashboardService{db: db}
}

// Summary aggregates meal and workout logs over the profile's plan window.
// When no plan has been generated yet, the window starts today.
func (s *DashboardService) Summary(ctx context.Context, userID uuid.UUID) (*DashboardSummary, error) {
	var profile models.HealthProfile
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return nil, err
	}

	timeframe := profile.TimeframeDays
	if timeframe <= 0 {
		timeframe = 7
	}

	start := planner.Midnight(time.Now())
	if profile.PlanStartDate != nil {
		start = planner.Midnight(*profile.PlanStartDate)
	}
	end := start.AddDate(0, 0, timeframe-1)
	windowEnd := end.AddDate(0, 0, 1)

	summary := &DashboardSummary{
		StartDate:     start,
		EndDate:       end,
		TimeframeDays: timeframe,
		Targets: DashboardTargets{
			Calories: profile.CalorieNeeds * timeframe,
			Protein:  profile.ProteinNeeded * timeframe,
			Fat:      profile.FatsNeeded * timeframe,
			Carbs:    profile.CarbsNeeded * timeframe,
		},
	}

	var logs []models.MealLog
	if err := s.db.WithContext(ctx).
		Where("user_id = ? AND meal_date >= ? AND meal_date < ?", userID, start, windowEnd).
		Find(&logs).Error; err != nil {
		return nil, err
	}
	for _, entry := range logs {
		summary.Consumed.Calories += entry.Calories
		summary.Consumed.Protein += entry.Protein
		summary.Consumed.Fat += entry.Fat
		summary.Consumed.Carbs += entry.Carbs
	}

	var workouts []models.Workout
	if err := s.db.WithContext(ctx).
		Where("user_id = ? AND created_at >= ? AND created_at < ?", userID, start, windowEnd).
		Find(&workouts).Error; err != nil {
		return nil, err
	}
	for _, w := range workouts {
		summary.Burned.Calories += w.CaloriesBurned
		summary.Burned.Fat += w.FatBurned
		summary.Burned.Carbs += w.CarbsBurned
	}

	budget := float64(summary.Targets.Calories) + summary.Burned.Calories
	summary.RemainingCalories = int(math.Round(budget)) - summary.Consumed.Calories
	if budget > 0 {
		summary.ProgressPercent = int(math.Round(float64(summary.Consumed.Calories) / budget * 100))
	}

	return summary, nil
}
