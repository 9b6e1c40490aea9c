package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nutrivue/backend/internal/models"
	"github.com/nutrivue/backend/internal/planner"
)

// PlanService serves the user's current meal plan, regenerating when the
// cache is empty or stale. The plan window is persisted on the profile so a
// regeneration within the same timeframe keeps the same dates.
type PlanService struct {
	db    *gorm.DB
	cache planner.Cache
}

func NewPlanService(db *gorm.DB, cache planner.Cache) *PlanService {
	return &PlanService{db: db, cache: cache}
}

// GetPlan returns the cached plan when it still matches the profile's
// timeframe, otherwise generates a fresh one. Added flags are recomputed on
// every read so cached plans reflect the latest logs.
func (s *PlanService) GetPlan(ctx context.Context, userID uuid.UUID) (*planner.Plan, error) {
	var profile models.HealthProfile
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return nil, err
	}

	if s.cache != nil {
		cached, err := s.cache.Get(ctx, userID)
		if err == nil && !planner.Stale(cached, profile.TimeframeDays) {
			logs, err := s.logsInWindow(ctx, userID, cached.StartDate, cached.EndDate)
			if err != nil {
				return nil, err
			}
			planner.MarkAdded(cached, logs)
			return cached, nil
		}
	}

	return s.generate(ctx, userID, &profile)
}

// Regenerate discards the cached plan and the persisted window, so the new
// plan starts today.
func (s *PlanService) Regenerate(ctx context.Context, userID uuid.UUID) (*planner.Plan, error) {
	var profile models.HealthProfile
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return nil, err
	}

	profile.PlanStartDate = nil
	profile.PlanEndDate = nil

	return s.generate(ctx, userID, &profile)
}

func (s *PlanService) generate(ctx context.Context, userID uuid.UUID, profile *models.HealthProfile) (*planner.Plan, error) {
	var dishes []models.Dish
	if err := s.db.WithContext(ctx).Preload("Ingredients").Find(&dishes).Error; err != nil {
		return nil, err
	}

	now := time.Now()
	start := planner.Midnight(now)
	if profile.PlanStartDate != nil {
		start = planner.Midnight(*profile.PlanStartDate)
	}
	timeframe := profile.TimeframeDays
	if timeframe <= 0 {
		timeframe = 7
	}
	end := start.AddDate(0, 0, timeframe-1)

	logs, err := s.logsInWindow(ctx, userID, start, end)
	if err != nil {
		return nil, err
	}

	plan, err := planner.Generate(profile, dishes, logs, now)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"plan_start_date": plan.StartDate,
		"plan_end_date":   plan.EndDate,
	}
	if err := s.db.WithContext(ctx).Model(&models.HealthProfile{}).
		Where("user_id = ?", userID).Updates(updates).Error; err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Put(ctx, userID, plan); err != nil {
			return nil, err
		}
	}

	return plan, nil
}

func (s *PlanService) logsInWindow(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]models.MealLog, error) {
	var logs []models.MealLog
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND meal_date >= ? AND meal_date < ?", userID, start, end.AddDate(0, 0, 1)).
		Find(&logs).Error
	if err != nil {
		return nil, err
	}
	return logs, nil
}
