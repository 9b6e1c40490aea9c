package service

import (
	"context"
	"math"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nutrivue/backend/internal/models"
	"github.com/nutrivue/backend/internal/planner"
	"github.com/nutrivue/backend/internal/types"
)

// WorkoutService records workout sessions against the reference workout
// types. Burn totals are computed from the type's per-minute rates when the
// session is logged.
type WorkoutService struct {
	db *gorm.DB
}

func NewWorkoutService(db *gorm.DB) *WorkoutService {
	return &WorkoutService{db: db}
}

func (s *WorkoutService) ListWorkoutTypes(ctx context.Context) ([]models.WorkoutType, error) {
	var workoutTypes []models.WorkoutType
	if err := s.db.WithContext(ctx).Order("name").Find(&workoutTypes).Error; err != nil {
		return nil, err
	}
	return workoutTypes, nil
}

func (s *WorkoutService) LogWorkout(ctx context.Context, userID uuid.UUID, req *types.CreateWorkoutRequest) (*models.Workout, error) {
	var workoutType models.WorkoutType
	if err := s.db.WithContext(ctx).First(&workoutType, req.WorkoutTypeID).Error; err != nil {
		return nil, err
	}

	workout := models.Workout{
		UserID:          userID,
		WorkoutTypeID:   workoutType.ID,
		WorkoutType:     workoutType,
		DurationMinutes: req.DurationMinutes,
		CaloriesBurned:  round2(workoutType.CaloriesPerMinute * req.DurationMinutes),
		FatBurned:       round2(workoutType.FatPerMinute * req.DurationMinutes),
		CarbsBurned:     round2(workoutType.CarbsPerMinute * req.DurationMinutes),
	}

	if err := s.db.WithContext(ctx).Create(&workout).Error; err != nil {
		return nil, err
	}
	return &workout, nil
}

// ListWorkouts returns the user's sessions, newest first, optionally bounded
// by an inclusive date range on the log time.
func (s *WorkoutService) ListWorkouts(ctx context.Context, userID uuid.UUID, from, to *time.Time) ([]models.Workout, error) {
	q := s.db.WithContext(ctx).Preload("WorkoutType").Where("user_id = ?", userID)
	if from != nil {
		q = q.Where("created_at >= ?", planner.Midnight(*from))
	}
	if to != nil {
		q = q.Where("created_at < ?", planner.Midnight(*to).AddDate(0, 0, 1))
	}

	var workouts []models.Workout
	if err := q.Order("created_at DESC").Find(&workouts).Error; err != nil {
		return nil, err
	}
	return workouts, nil
}

func (s *WorkoutService) DeleteWorkout(ctx context.Context, userID uuid.UUID, id uint) error {
	result := s.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).Delete(&models.Workout{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
