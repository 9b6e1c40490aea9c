package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/nutrivue/backend/internal/models"
	"github.com/nutrivue/backend/internal/types"
)

func seedWorkoutType(t *testing.T, db *gorm.DB, name string, calPerMin, fatPerMin, carbsPerMin float64) models.WorkoutType {
	t.Helper()

	wt := models.WorkoutType{
		Name:              name,
		CaloriesPerMinute: calPerMin,
		FatPerMinute:      fatPerMin,
		CarbsPerMinute:    carbsPerMin,
	}
	require.NoError(t, db.Create(&wt).Error)
	return wt
}

func TestWorkoutServiceLogComputesBurns(t *testing.T) {
	db := setupTestDB(t)
	userID := createTestUser(t, db)
	svc := NewWorkoutService(db)

	running := seedWorkoutType(t, db, "Running", 11.5, 0.6, 1.8)

	workout, err := svc.LogWorkout(context.Background(), userID, &types.CreateWorkoutRequest{
		WorkoutTypeID:   running.ID,
		DurationMinutes: 30,
	})
	require.NoError(t, err)

	assert.Equal(t, 345.0, workout.CaloriesBurned)
	assert.Equal(t, 18.0, workout.FatBurned)
	assert.Equal(t, 54.0, workout.CarbsBurned)
	assert.Equal(t, "Running", workout.WorkoutType.Name)
}

func TestWorkoutServiceUnknownType(t *testing.T) {
	db := setupTestDB(t)
	userID := createTestUser(t, db)
	svc := NewWorkoutService(db)

	_, err := svc.LogWorkout(context.Background(), userID, &types.CreateWorkoutRequest{
		WorkoutTypeID:   42,
		DurationMinutes: 30,
	})
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestWorkoutServiceListTypesSorted(t *testing.T) {
	db := setupTestDB(t)
	svc := NewWorkoutService(db)

	seedWorkoutType(t, db, "Swimming", 9.8, 0.5, 1.5)
	seedWorkoutType(t, db, "Cycling", 8.2, 0.4, 1.4)

	workoutTypes, err := svc.ListWorkoutTypes(context.Background())
	require.NoError(t, err)
	require.Len(t, workoutTypes, 2)
	assert.Equal(t, "Cycling", workoutTypes[0].Name)
}

func TestWorkoutServiceListAndDelete(t *testing.T) {
	db := setupTestDB(t)
	userID := createTestUser(t, db)
	otherID := createTestUser(t, db)
	svc := NewWorkoutService(db)

	running := seedWorkoutType(t, db, "Running", 11.5, 0.6, 1.8)

	first, err := svc.LogWorkout(context.Background(), userID, &types.CreateWorkoutRequest{
		WorkoutTypeID: running.ID, DurationMinutes: 30,
	})
	require.NoError(t, err)
	_, err = svc.LogWorkout(context.Background(), userID, &types.CreateWorkoutRequest{
		WorkoutTypeID: running.ID, DurationMinutes: 15,
	})
	require.NoError(t, err)

	workouts, err := svc.ListWorkouts(context.Background(), userID, nil, nil)
	require.NoError(t, err)
	assert.Len(t, workouts, 2)
	assert.Equal(t, "Running", workouts[0].WorkoutType.Name)

	err = svc.DeleteWorkout(context.Background(), otherID, first.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	require.NoError(t, svc.DeleteWorkout(context.Background(), userID, first.ID))
	workouts, err = svc.ListWorkouts(context.Background(), userID, nil, nil)
	require.NoError(t, err)
	assert.Len(t, workouts, 1)
}
