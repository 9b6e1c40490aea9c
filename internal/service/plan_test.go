package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/nutrivue/backend/internal/models"
	"github.com/nutrivue/backend/internal/nutrition"
	"github.com/nutrivue/backend/internal/planner"
	"github.com/nutrivue/backend/internal/types"
)

func seedCatalog(t *testing.T, db *gorm.DB) {
	t.Helper()

	seedDish(t, db, "Oatmeal bowl", []string{"Breakfast"}, 580, 40, 70, 15, false)
	seedDish(t, db, "Egg scramble", []string{"Breakfast"}, 400, 30, 20, 20, false)
	seedDish(t, db, "Grilled tofu salad", []string{"Lunch"}, 610, 45, 60, 18, false)
	seedDish(t, db, "Lentil soup", []string{"Lunch"}, 350, 20, 50, 8, false)
	seedDish(t, db, "Bean stir fry", []string{"Dinner"}, 590, 48, 65, 16, false)
	seedDish(t, db, "Veggie pasta", []string{"Dinner"}, 450, 18, 80, 10, false)
}

func TestPlanServiceGeneratesAndCaches(t *testing.T) {
	db := setupTestDB(t)
	userID := createTestUser(t, db)
	seedCatalog(t, db)

	cache := newMemCache()
	svc := NewPlanService(db, cache)

	plan, err := svc.GetPlan(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, plan.Days, 3)

	// The window is persisted on the profile.
	var profile models.HealthProfile
	require.NoError(t, db.Where("user_id = ?", userID).First(&profile).Error)
	require.NotNil(t, profile.PlanStartDate)
	require.NotNil(t, profile.PlanEndDate)
	assert.Equal(t, plan.StartDate, planner.Midnight(*profile.PlanStartDate))

	// And the plan is cached.
	cached, err := cache.Get(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, plan.StartDate, cached.StartDate)

	// A second fetch serves the cached plan.
	again, err := svc.GetPlan(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, plan.Days[0].Meals[0].DishID, again.Days[0].Meals[0].DishID)
}

func TestPlanServiceStaleCacheRegenerates(t *testing.T) {
	db := setupTestDB(t)
	userID := createTestUser(t, db)
	seedCatalog(t, db)

	cache := newMemCache()
	svc := NewPlanService(db, cache)

	// A cached plan with the wrong day count is stale.
	require.NoError(t, cache.Put(context.Background(), userID, &planner.Plan{
		StartDate: planner.Midnight(time.Now()),
		Days:      make([]planner.Day, 7),
	}))

	plan, err := svc.GetPlan(context.Background(), userID)
	require.NoError(t, err)
	assert.Len(t, plan.Days, 3)
}

func TestPlanServiceGetMarksAddedOnCachedPlan(t *testing.T) {
	db := setupTestDB(t)
	userID := createTestUser(t, db)
	seedCatalog(t, db)

	cache := newMemCache()
	svc := NewPlanService(db, cache)

	plan, err := svc.GetPlan(context.Background(), userID)
	require.NoError(t, err)
	target := plan.Days[0].Meals[0]
	require.False(t, target.Added)

	logSvc := NewMealLogService(db)
	_, err = logSvc.AddMealLog(context.Background(), userID, &types.CreateMealLogRequest{
		DishID:   target.DishID,
		MealType: target.Type,
		MealDate: plan.Days[0].Date.Format("2006-01-02"),
	})
	require.NoError(t, err)

	refreshed, err := svc.GetPlan(context.Background(), userID)
	require.NoError(t, err)
	assert.True(t, refreshed.Days[0].Meals[0].Added)
	assert.False(t, refreshed.Days[1].Meals[0].Added)
}

func TestPlanServiceRegenerateStartsToday(t *testing.T) {
	db := setupTestDB(t)
	userID := createTestUser(t, db)
	seedCatalog(t, db)

	// Pin the persisted window to the past.
	past := time.Now().AddDate(0, 0, -30)
	pastEnd := past.AddDate(0, 0, 2)
	require.NoError(t, db.Model(&models.HealthProfile{}).
		Where("user_id = ?", userID).
		Updates(map[string]interface{}{"plan_start_date": past, "plan_end_date": pastEnd}).Error)

	svc := NewPlanService(db, newMemCache())

	plan, err := svc.Regenerate(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, planner.Midnight(time.Now()), plan.StartDate)
}

func TestPlanServiceRequiresCompleteProfile(t *testing.T) {
	db := setupTestDB(t)
	userID := createTestUser(t, db)
	seedCatalog(t, db)

	require.NoError(t, db.Model(&models.HealthProfile{}).
		Where("user_id = ?", userID).
		Update("calorie_needs", 0).Error)

	svc := NewPlanService(db, newMemCache())
	_, err := svc.GetPlan(context.Background(), userID)
	assert.ErrorIs(t, err, nutrition.ErrIncompleteProfile)
}
