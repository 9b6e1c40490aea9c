package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/nutrivue/backend/config"
	"github.com/nutrivue/backend/internal/database"
	"github.com/nutrivue/backend/pkg/logger"
)

func testServer(t *testing.T) *Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.RunMigrations(db))

	cfg := &config.Config{
		ServerHost:         "127.0.0.1",
		ServerPort:         "0",
		JWTSecret:          "test-secret",
		CORSAllowedOrigins: []string{"http://localhost:5173"},
	}

	return NewServer(cfg, db, nil, logger.NewNop())
}

func TestServerHealthEndpoint(t *testing.T) {
	srv := testServer(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	srv.Engine().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestServerRegisterLoginRoundTrip(t *testing.T) {
	srv := testServer(t)

	body, _ := json.Marshal(map[string]string{
		"name":     "Jess",
		"email":    "jess@example.com",
		"password": "password123",
	})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	srv.Engine().ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)

	// The token opens protected routes.
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/v1/profile", nil)
	req.Header.Set("Authorization", "Bearer "+resp.Token)
	srv.Engine().ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestServerProtectedRoutesRequireAuth(t *testing.T) {
	srv := testServer(t)

	for _, path := range []string{
		"/api/v1/profile",
		"/api/v1/mealplan",
		"/api/v1/meal-logs",
		"/api/v1/workouts",
		"/api/v1/dashboard/summary",
	} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, path, nil)
		srv.Engine().ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code, path)
	}
}
