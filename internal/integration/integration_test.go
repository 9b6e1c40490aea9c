package integration

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/nutrivue/backend/internal/models"
	"github.com/nutrivue/backend/internal/service"
	"github.com/nutrivue/backend/internal/testhelpers"
	"github.com/nutrivue/backend/internal/types"
)

func strPtr(s string) *string       { return &s }
func floatPtr(f float64) *float64   { return &f }
func intPtr(i int) *int             { return &i }
func slicePtr(s []string) *[]string { return &s }

func seedDish(t *testing.T, db *gorm.DB, name string, mealTypes []string, calories float64) models.Dish {
	t.Helper()
	dish := models.Dish{
		Name:           name,
		MealTypes:      models.JSONBStringArray(mealTypes),
		DefaultServing: 100,
		Ingredients: []models.Ingredient{
			{Name: name + " base", Amount: 100, Calories: calories, Protein: 25, Carbs: 45, Fats: 12},
		},
	}
	require.NoError(t, db.Create(&dish).Error)
	return dish
}

// TestPlanGenerationAgainstPostgres exercises the registration, profile,
// planning, logging and dashboard flow against a real PostgreSQL instance.
func TestPlanGenerationAgainstPostgres(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	ctx := context.Background()

	authService := service.NewAuthService(db, "integration-secret")
	token, err := authService.Register("Integration User", "integration@example.com", "password123")
	require.NoError(t, err)

	claims, err := authService.ValidateToken(token)
	require.NoError(t, err)
	userID := claims.UserID

	profileService := service.NewProfileService(db, nil)
	profile, err := profileService.UpdateProfile(ctx, userID, &types.UpdateHealthProfileRequest{
		Sex:           strPtr("Male"),
		BirthDate:     strPtr("1992-04-20"),
		HeightCm:      floatPtr(180),
		WeightKg:      floatPtr(80),
		ActivityLevel: strPtr(models.ActivityModeratelyActive),
		Goals:         slicePtr([]string{models.GoalWeightLoss}),
		TimeframeDays: intPtr(3),
	})
	require.NoError(t, err)
	require.Greater(t, profile.CalorieNeeds, 0)

	seedDish(t, db, "Oatmeal bowl", []string{models.MealTypeBreakfast}, 450)
	seedDish(t, db, "Lentil soup", []string{models.MealTypeLunch}, 520)
	seedDish(t, db, "Grilled salmon", []string{models.MealTypeDinner}, 610)

	planService := service.NewPlanService(db, nil)
	plan, err := planService.GetPlan(ctx, userID)
	require.NoError(t, err)
	require.Len(t, plan.Days, 3)
	for _, day := range plan.Days {
		assert.Len(t, day.Meals, 3)
	}

	// The window is persisted on the profile so later fetches reuse it.
	profile, err = profileService.GetProfile(ctx, userID)
	require.NoError(t, err)
	require.NotNil(t, profile.PlanStartDate)
	assert.True(t, plan.StartDate.Equal(*profile.PlanStartDate))

	// Log the first planned breakfast and confirm it is marked on re-read.
	first := plan.Days[0].Meals[0]
	require.NotZero(t, first.DishID)

	logService := service.NewMealLogService(db)
	entry, err := logService.AddMealLog(ctx, userID, &types.CreateMealLogRequest{
		DishID:   first.DishID,
		MealType: first.Type,
		MealDate: plan.Days[0].Date.Format("2006-01-02"),
	})
	require.NoError(t, err)
	assert.Equal(t, 450, entry.Calories)

	plan, err = planService.GetPlan(ctx, userID)
	require.NoError(t, err)
	assert.True(t, plan.Days[0].Meals[0].Added)

	workoutService := service.NewWorkoutService(db)
	wt := models.WorkoutType{Name: "Running", CaloriesPerMinute: 11.5, FatPerMinute: 0.6, CarbsPerMinute: 1.8}
	require.NoError(t, db.Create(&wt).Error)

	workout, err := workoutService.LogWorkout(ctx, userID, &types.CreateWorkoutRequest{
		WorkoutTypeID:   wt.ID,
		DurationMinutes: 30,
	})
	require.NoError(t, err)
	assert.Equal(t, 345.0, workout.CaloriesBurned)

	dashboardService := service.NewDashboardService(db)
	summary, err := dashboardService.Summary(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, 3, summary.TimeframeDays)
	assert.Equal(t, 450, summary.Consumed.Calories)
	assert.InDelta(t, 345.0, summary.Burned.Calories, 0.01)
}

// TestRegenerateStartsTodayAgainstPostgres checks that regeneration resets a
// plan window that had started in the past.
func TestRegenerateStartsTodayAgainstPostgres(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	ctx := context.Background()

	authService := service.NewAuthService(db, "integration-secret")
	token, err := authService.Register("Regen User", "regen@example.com", "password123")
	require.NoError(t, err)
	claims, err := authService.ValidateToken(token)
	require.NoError(t, err)
	userID := claims.UserID

	profileService := service.NewProfileService(db, nil)
	_, err = profileService.UpdateProfile(ctx, userID, &types.UpdateHealthProfileRequest{
		Sex:           strPtr("Female"),
		BirthDate:     strPtr("1988-09-02"),
		HeightCm:      floatPtr(165),
		WeightKg:      floatPtr(60),
		ActivityLevel: strPtr(models.ActivityLightlyActive),
		TimeframeDays: intPtr(2),
	})
	require.NoError(t, err)

	seedDish(t, db, "Veggie omelette", []string{models.MealTypeBreakfast}, 380)

	// Backdate the persisted window to simulate an old plan.
	old := time.Now().AddDate(0, 0, -10)
	require.NoError(t, db.Model(&models.HealthProfile{}).
		Where("user_id = ?", userID).
		Updates(map[string]interface{}{
			"plan_start_date": old,
			"plan_end_date":   old.AddDate(0, 0, 1),
		}).Error)

	planService := service.NewPlanService(db, nil)
	plan, err := planService.Regenerate(ctx, userID)
	require.NoError(t, err)

	today := time.Now()
	assert.Equal(t, today.Year(), plan.StartDate.Year())
	assert.Equal(t, today.YearDay(), plan.StartDate.YearDay())
	require.Len(t, plan.Days, 2)
}
