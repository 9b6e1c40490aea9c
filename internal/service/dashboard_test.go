package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nutrivue/backend/internal/models"
	"github.com/nutrivue/backend/internal/types"
)

func TestDashboardSummaryAggregatesWindow(t *testing.T) {
	db := setupTestDB(t)
	userID := createTestUser(t, db)

	// Anchor the plan window to today so logs land inside it.
	start := time.Now()
	end := start.AddDate(0, 0, 2)
	require.NoError(t, db.Model(&models.HealthProfile{}).
		Where("user_id = ?", userID).
		Updates(map[string]interface{}{"plan_start_date": start, "plan_end_date": end}).Error)

	dish := seedDish(t, db, "Lentil soup", []string{"Lunch"}, 350, 20, 50, 8, false)
	logSvc := NewMealLogService(db)
	today := start.Format("2006-01-02")

	_, err := logSvc.AddMealLog(context.Background(), userID, &types.CreateMealLogRequest{
		DishID: dish.ID, MealType: "Lunch", MealDate: today,
	})
	require.NoError(t, err)
	_, err = logSvc.AddMealLog(context.Background(), userID, &types.CreateMealLogRequest{
		DishID: dish.ID, MealType: "Dinner", MealDate: today,
	})
	require.NoError(t, err)

	// A log outside the window must not count.
	_, err = logSvc.AddMealLog(context.Background(), userID, &types.CreateMealLogRequest{
		DishID: dish.ID, MealType: "Lunch", MealDate: start.AddDate(0, 0, -10).Format("2006-01-02"),
	})
	require.NoError(t, err)

	running := seedWorkoutType(t, db, "Running", 10, 0.5, 1.5)
	workoutSvc := NewWorkoutService(db)
	_, err = workoutSvc.LogWorkout(context.Background(), userID, &types.CreateWorkoutRequest{
		WorkoutTypeID: running.ID, DurationMinutes: 30,
	})
	require.NoError(t, err)

	svc := NewDashboardService(db)
	summary, err := svc.Summary(context.Background(), userID)
	require.NoError(t, err)

	assert.Equal(t, 3, summary.TimeframeDays)
	assert.Equal(t, 1800*3, summary.Targets.Calories)
	assert.Equal(t, 135*3, summary.Targets.Protein)

	assert.Equal(t, 700, summary.Consumed.Calories)
	assert.Equal(t, 40, summary.Consumed.Protein)

	assert.Equal(t, 300.0, summary.Burned.Calories)

	// remaining = target + burned - consumed
	assert.Equal(t, 5400+300-700, summary.RemainingCalories)
	// progress = consumed / (target + burned)
	assert.Equal(t, 12, summary.ProgressPercent)
}

func TestDashboardSummaryEmptyWindow(t *testing.T) {
	db := setupTestDB(t)
	userID := createTestUser(t, db)

	svc := NewDashboardService(db)
	summary, err := svc.Summary(context.Background(), userID)
	require.NoError(t, err)

	assert.Zero(t, summary.Consumed.Calories)
	assert.Zero(t, summary.Burned.Calories)
	assert.Equal(t, summary.Targets.Calories, summary.RemainingCalories)
	assert.Zero(t, summary.ProgressPercent)
}
