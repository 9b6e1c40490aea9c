package service

import (
	"context"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nutrivue/backend/internal/models"
	"github.com/nutrivue/backend/internal/nutrition"
	"github.com/nutrivue/backend/internal/planner"
)

// DishService reads the dish catalog and renders dishes at arbitrary
// serving sizes.
type DishService struct {
	db *gorm.DB
}

func NewDishService(db *gorm.DB) *DishService {
	return &DishService{db: db}
}

func (s *DishService) ListDishes(ctx context.Context) ([]models.Dish, error) {
	var dishes []models.Dish
	if err := s.db.WithContext(ctx).Preload("Ingredients").Find(&dishes).Error; err != nil {
		return nil, err
	}
	return dishes, nil
}

func (s *DishService) GetDish(ctx context.Context, id uint) (*models.Dish, error) {
	var dish models.Dish
	if err := s.db.WithContext(ctx).Preload("Ingredients").First(&dish, id).Error; err != nil {
		return nil, err
	}
	return &dish, nil
}

// DishPortion is a dish rendered at a serving size, with overrides applied.
type DishPortion struct {
	Dish         *models.Dish                  `json:"dish"`
	ServingGrams float64                       `json:"serving_grams"`
	ServingLabel string                        `json:"serving_label"`
	BaseUnit     float64                       `json:"base_unit"`
	Totals       nutrition.Nutrition           `json:"totals"`
	Ingredients  []nutrition.IngredientPortion `json:"ingredients"`
}

// ServingLabel formats a gram amount the way log entries store it.
func ServingLabel(grams float64) string {
	return strconv.FormatFloat(grams, 'f', -1, 64) + " g"
}

// DishAtServing loads a dish and rescales it. Zero grams means the default
// serving; overrides pin individual scalable ingredients to fixed amounts.
func (s *DishService) DishAtServing(ctx context.Context, id uint, grams float64, overrides map[uint]float64) (*DishPortion, error) {
	dish, err := s.GetDish(ctx, id)
	if err != nil {
		return nil, err
	}

	scaler := nutrition.NewScaler(dish)
	if grams > 0 {
		scaler.SetServing(grams)
	}
	for ingredientID, amount := range overrides {
		scaler.SetIngredientAmount(ingredientID, amount)
	}

	return &DishPortion{
		Dish:         dish,
		ServingGrams: scaler.Serving(),
		ServingLabel: ServingLabel(scaler.Serving()),
		BaseUnit:     scaler.BaseUnit(),
		Totals:       scaler.Totals(),
		Ingredients:  scaler.Ingredients(),
	}, nil
}

// SuggestedDishes returns catalog dishes the user's profile allows,
// optionally narrowed to a meal type and a free-text name/description query.
func (s *DishService) SuggestedDishes(ctx context.Context, userID uuid.UUID, mealType, query string) ([]models.Dish, error) {
	var profile models.HealthProfile
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return nil, err
	}

	dishes, err := s.ListDishes(ctx)
	if err != nil {
		return nil, err
	}

	query = strings.ToLower(strings.TrimSpace(query))

	suggested := make([]models.Dish, 0, len(dishes))
	for i := range dishes {
		dish := &dishes[i]
		if !planner.MatchesProfile(&profile, dish) {
			continue
		}
		if mealType != "" && !planner.HasMealType(dish, mealType) {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(dish.Name), query) &&
			!strings.Contains(strings.ToLower(dish.Description), query) {
			continue
		}
		suggested = append(suggested, *dish)
	}
	return suggested, nil
}
