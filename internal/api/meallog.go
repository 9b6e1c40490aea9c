package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/nutrivue/backend/internal/service"
	"github.com/nutrivue/backend/internal/types"
)

// MealLogHandler handles the meal journal.
type MealLogHandler struct {
	mealLogService *service.MealLogService
}

func NewMealLogHandler(mealLogService *service.MealLogService) *MealLogHandler {
	return &MealLogHandler{mealLogService: mealLogService}
}

func (h *MealLogHandler) RegisterRoutes(router *gin.RouterGroup) {
	logs := router.Group("/meal-logs")
	{
		logs.POST("", h.AddMealLog)
		logs.GET("", h.ListMealLogs)
		logs.DELETE("/:id", h.DeleteMealLog)
	}
}

func (h *MealLogHandler) AddMealLog(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req types.CreateMealLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := h.mealLogService.AddMealLog(c.Request.Context(), userID, &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidMealType), errors.Is(err, service.ErrInvalidMealDate):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, gorm.ErrRecordNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "dish not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to log meal"})
		}
		return
	}

	c.JSON(http.StatusCreated, entry)
}

func (h *MealLogHandler) ListMealLogs(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	from, err := parseDateQuery(c, "from")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "from must be YYYY-MM-DD"})
		return
	}
	to, err := parseDateQuery(c, "to")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "to must be YYYY-MM-DD"})
		return
	}

	logs, err := h.mealLogService.ListMealLogs(c.Request.Context(), userID, from, to)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list meal logs"})
		return
	}

	c.JSON(http.StatusOK, logs)
}

func (h *MealLogHandler) DeleteMealLog(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid meal log id"})
		return
	}

	if err := h.mealLogService.DeleteMealLog(c.Request.Context(), userID, uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "meal log not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete meal log"})
		return
	}

	c.Status(http.StatusNoContent)
}

func parseDateQuery(c *gin.Context, name string) (*time.Time, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	parsed, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}
