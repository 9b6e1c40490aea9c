package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/nutrivue/backend/internal/models"
	"github.com/nutrivue/backend/internal/planner"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{},
		&models.HealthProfile{},
		&models.Dish{},
		&models.Ingredient{},
		&models.MealLog{},
		&models.WorkoutType{},
		&models.Workout{},
	)
	require.NoError(t, err)

	return db
}

// createTestUser inserts a user with a complete health profile and returns
// the user id.
func createTestUser(t *testing.T, db *gorm.DB) uuid.UUID {
	t.Helper()

	user := models.User{
		ID:           uuid.New(),
		Name:         "Test User",
		Email:        uuid.NewString() + "@example.com",
		PasswordHash: "not-a-real-hash",
	}
	require.NoError(t, db.Create(&user).Error)

	profile := models.HealthProfile{
		ID:            uuid.New(),
		UserID:        user.ID,
		Goals:         models.JSONBStringArray{},
		MealsPerDay:   3,
		TimeframeDays: 3,
		CalorieNeeds:  1800,
		ProteinNeeded: 135,
		FatsNeeded:    50,
		CarbsNeeded:   203,
	}
	require.NoError(t, db.Create(&profile).Error)

	return user.ID
}

func seedDish(t *testing.T, db *gorm.DB, name string, mealTypes []string, calories, protein, carbs, fats float64, scalable bool) models.Dish {
	t.Helper()

	dish := models.Dish{
		Name:           name,
		MealTypes:      mealTypes,
		DefaultServing: 100,
		Ingredients: []models.Ingredient{
			{Name: name + " base", Amount: 100, Calories: calories, Protein: protein, Carbs: carbs, Fats: fats, Scalable: scalable},
		},
	}
	require.NoError(t, db.Create(&dish).Error)
	return dish
}

// memCache is an in-process planner.Cache for tests.
type memCache struct {
	plans map[uuid.UUID]*planner.Plan
}

func newMemCache() *memCache {
	return &memCache{plans: make(map[uuid.UUID]*planner.Plan)}
}

func (c *memCache) Get(_ context.Context, userID uuid.UUID) (*planner.Plan, error) {
	plan, ok := c.plans[userID]
	if !ok {
		return nil, planner.ErrCacheMiss
	}
	return plan, nil
}

func (c *memCache) Put(_ context.Context, userID uuid.UUID, plan *planner.Plan) error {
	c.plans[userID] = plan
	return nil
}

func (c *memCache) Invalidate(_ context.Context, userID uuid.UUID) error {
	delete(c.plans, userID)
	return nil
}
