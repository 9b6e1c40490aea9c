package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/nutrivue/backend/internal/middleware"
	"github.com/nutrivue/backend/internal/models"
	"github.com/nutrivue/backend/internal/service"
)

type testEnv struct {
	db     *gorm.DB
	router *gin.Engine
	token  string
}

// setupTestEnv builds the full API against an in-memory database and
// registers one user, returning their bearer token.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{}, &models.HealthProfile{}, &models.Dish{}, &models.Ingredient{},
		&models.MealLog{}, &models.WorkoutType{}, &models.Workout{},
	))

	authService := service.NewAuthService(db, "test-secret")
	token, err := authService.Register("Test User", "api-test@example.com", "password123")
	require.NoError(t, err)

	router := gin.New()
	v1 := router.Group("/api/v1")

	NewAuthHandler(authService).RegisterRoutes(v1)

	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(authService))
	NewProfileHandler(service.NewProfileService(db, nil)).RegisterRoutes(protected)
	NewDishHandler(service.NewDishService(db)).RegisterRoutes(protected)
	NewMealPlanHandler(service.NewPlanService(db, nil)).RegisterRoutes(protected)
	NewMealLogHandler(service.NewMealLogService(db)).RegisterRoutes(protected)
	NewWorkoutHandler(service.NewWorkoutService(db)).RegisterRoutes(protected)
	NewDashboardHandler(service.NewDashboardService(db)).RegisterRoutes(protected)

	return &testEnv{db: db, router: router, token: token}
}

func (e *testEnv) request(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+e.token)

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

// completeProfile fills the registered user's profile so plan and dashboard
// endpoints have macro targets to work with.
func (e *testEnv) completeProfile(t *testing.T) {
	t.Helper()

	w := e.request(t, http.MethodPut, "/api/v1/profile", map[string]interface{}{
		"sex":            "Male",
		"birth_date":     "1990-06-15",
		"height_cm":      170,
		"weight_kg":      70,
		"activity_level": "Moderately Active",
		"goals":          []string{"Weight loss"},
		"timeframe_days": 3,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
}

func (e *testEnv) seedDish(t *testing.T, name string, mealTypes []string, calories float64) models.Dish {
	t.Helper()

	dish := models.Dish{
		Name:           name,
		MealTypes:      models.JSONBStringArray(mealTypes),
		DefaultServing: 100,
		Ingredients: []models.Ingredient{
			{Name: name + " base", Amount: 100, Calories: calories, Protein: 20, Carbs: 40, Fats: 10},
		},
	}
	require.NoError(t, e.db.Create(&dish).Error)
	return dish
}
