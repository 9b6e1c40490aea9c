package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/nutrivue/backend/internal/service"
)

// DishHandler serves the dish catalog, per-profile suggestions, and portion
// previews at arbitrary serving sizes.
type DishHandler struct {
	dishService *service.DishService
}

func NewDishHandler(dishService *service.DishService) *DishHandler {
	return &DishHandler{dishService: dishService}
}

func (h *DishHandler) RegisterRoutes(router *gin.RouterGroup) {
	dishes := router.Group("/dishes")
	{
		dishes.GET("", h.ListDishes)
		dishes.GET("/suggested", h.SuggestedDishes)
		dishes.GET("/:id", h.GetDish)
		dishes.POST("/:id/portion", h.PreviewPortion)
	}
}

func (h *DishHandler) ListDishes(c *gin.Context) {
	dishes, err := h.dishService.ListDishes(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list dishes"})
		return
	}
	c.JSON(http.StatusOK, dishes)
}

func (h *DishHandler) GetDish(c *gin.Context) {
	id, err := parseDishID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid dish id"})
		return
	}

	// An optional serving query renders the dish at that size.
	grams := 0.0
	if raw := c.Query("serving"); raw != "" {
		grams, err = strconv.ParseFloat(raw, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid serving"})
			return
		}
	}

	portion, err := h.dishService.DishAtServing(c.Request.Context(), id, grams, nil)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "dish not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get dish"})
		return
	}

	c.JSON(http.StatusOK, portion)
}

// portionRequest is the preview body: a serving size plus per-ingredient
// gram overrides.
type portionRequest struct {
	ServingGrams      float64          `json:"serving_grams"`
	IngredientAmounts map[uint]float64 `json:"ingredient_amounts"`
}

func (h *DishHandler) PreviewPortion(c *gin.Context) {
	id, err := parseDishID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid dish id"})
		return
	}

	var req portionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	portion, err := h.dishService.DishAtServing(c.Request.Context(), id, req.ServingGrams, req.IngredientAmounts)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "dish not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute portion"})
		return
	}

	c.JSON(http.StatusOK, portion)
}

func (h *DishHandler) SuggestedDishes(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	dishes, err := h.dishService.SuggestedDishes(c.Request.Context(), userID, c.Query("meal_type"), c.Query("q"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "profile not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get suggestions"})
		return
	}

	c.JSON(http.StatusOK, dishes)
}

func parseDishID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
