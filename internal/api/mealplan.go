package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/nutrivue/backend/internal/nutrition"
	"github.com/nutrivue/backend/internal/service"
)

// MealPlanHandler serves the current plan and explicit regeneration.
type MealPlanHandler struct {
	planService *service.PlanService
}

func NewMealPlanHandler(planService *service.PlanService) *MealPlanHandler {
	return &MealPlanHandler{planService: planService}
}

// RegisterRoutes wires the plan endpoints. The regenerate route takes extra
// middleware so the router can rate limit it.
func (h *MealPlanHandler) RegisterRoutes(router *gin.RouterGroup, regenerateMiddleware ...gin.HandlerFunc) {
	plan := router.Group("/mealplan")
	{
		plan.GET("", h.GetPlan)

		handlers := append([]gin.HandlerFunc{}, regenerateMiddleware...)
		handlers = append(handlers, h.Regenerate)
		plan.POST("/regenerate", handlers...)
	}
}

func (h *MealPlanHandler) GetPlan(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	plan, err := h.planService.GetPlan(c.Request.Context(), userID)
	if err != nil {
		h.respondPlanError(c, err)
		return
	}

	c.JSON(http.StatusOK, plan)
}

func (h *MealPlanHandler) Regenerate(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	plan, err := h.planService.Regenerate(c.Request.Context(), userID)
	if err != nil {
		h.respondPlanError(c, err)
		return
	}

	c.JSON(http.StatusOK, plan)
}

func (h *MealPlanHandler) respondPlanError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, nutrition.ErrIncompleteProfile):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "complete your health profile first"})
	case errors.Is(err, gorm.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "profile not found"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build meal plan"})
	}
}
