package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nutrivue/backend/internal/models"
	"github.com/nutrivue/backend/internal/nutrition"
	"github.com/nutrivue/backend/internal/planner"
	"github.com/nutrivue/backend/internal/types"
)

var ErrInvalidBirthDate = errors.New("birth date must be YYYY-MM-DD")

// ProfileService handles health profile reads and updates. Every update
// recomputes the derived macro targets and invalidates the cached meal plan.
type ProfileService struct {
	db    *gorm.DB
	cache planner.Cache
}

func NewProfileService(db *gorm.DB, cache planner.Cache) *ProfileService {
	return &ProfileService{db: db, cache: cache}
}

// GetProfile retrieves a user's health profile.
func (s *ProfileService) GetProfile(ctx context.Context, userID uuid.UUID) (*models.HealthProfile, error) {
	var profile models.HealthProfile
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

// UpdateProfile applies the non-nil fields of the request, recomputes BMI and
// macro targets, and drops any cached plan so the next fetch regenerates.
func (s *ProfileService) UpdateProfile(ctx context.Context, userID uuid.UUID, req *types.UpdateHealthProfileRequest) (*models.HealthProfile, error) {
	var profile models.HealthProfile
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return nil, err
	}

	if req.Sex != nil {
		profile.Sex = *req.Sex
	}
	if req.BirthDate != nil {
		birth, err := time.Parse("2006-01-02", *req.BirthDate)
		if err != nil {
			return nil, ErrInvalidBirthDate
		}
		profile.BirthDate = birth
	}
	if req.HeightCm != nil {
		profile.HeightCm = *req.HeightCm
	}
	if req.WeightKg != nil {
		profile.WeightKg = *req.WeightKg
	}
	if req.ActivityLevel != nil {
		profile.ActivityLevel = *req.ActivityLevel
	}
	if req.Goals != nil {
		profile.Goals = models.JSONBStringArray(*req.Goals)
	}
	if req.EatingStyle != nil {
		profile.EatingStyle = *req.EatingStyle
	}
	if req.Allergens != nil {
		profile.Allergens = models.JSONBStringArray(*req.Allergens)
	}
	if req.HealthConditions != nil {
		profile.HealthConditions = models.JSONBStringArray(*req.HealthConditions)
	}
	if req.MealsPerDay != nil && *req.MealsPerDay > 0 {
		profile.MealsPerDay = *req.MealsPerDay
	}
	if req.TimeframeDays != nil && *req.TimeframeDays > 0 {
		profile.TimeframeDays = *req.TimeframeDays
	}

	if err := s.deriveTargets(&profile); err != nil {
		return nil, err
	}

	if err := s.db.WithContext(ctx).Save(&profile).Error; err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Invalidate(ctx, userID); err != nil {
			return nil, err
		}
	}

	return &profile, nil
}

// deriveTargets recomputes BMI and macro targets once the profile carries
// enough body metrics. Partial onboarding profiles are saved without targets.
func (s *ProfileService) deriveTargets(profile *models.HealthProfile) error {
	profile.BMI = nutrition.BMI(profile.HeightCm, profile.WeightKg)

	if profile.HeightCm <= 0 || profile.WeightKg <= 0 || profile.BirthDate.IsZero() {
		return nil
	}

	targets, err := nutrition.CalculateMacros(nutrition.MacroInput{
		HeightCm:      profile.HeightCm,
		WeightKg:      profile.WeightKg,
		Age:           nutrition.AgeAt(profile.BirthDate, time.Now()),
		Sex:           profile.Sex,
		ActivityLevel: profile.ActivityLevel,
		Goals:         profile.Goals,
	})
	if err != nil {
		return err
	}

	profile.CalorieNeeds = targets.Calories
	profile.ProteinNeeded = targets.ProteinG
	profile.FatsNeeded = targets.FatG
	profile.CarbsNeeded = targets.CarbG
	return nil
}
