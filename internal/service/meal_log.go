package service

import (
	"context"
	"errors"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nutrivue/backend/internal/models"
	"github.com/nutrivue/backend/internal/nutrition"
	"github.com/nutrivue/backend/internal/planner"
	"github.com/nutrivue/backend/internal/types"
)

var (
	ErrInvalidMealType = errors.New("invalid meal type")
	ErrInvalidMealDate = errors.New("meal date must be YYYY-MM-DD")
)

var mealTypes = []string{
	models.MealTypeBreakfast,
	models.MealTypeLunch,
	models.MealTypeDinner,
	models.MealTypeSnack,
}

// normalizeMealType maps any casing of a known meal type to its canonical
// form.
func normalizeMealType(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	for _, mt := range mealTypes {
		if strings.EqualFold(raw, mt) {
			return mt, nil
		}
	}
	return "", ErrInvalidMealType
}

// MealLogService records confirmed meals. A log entry snapshots the dish
// name and the rounded nutrition at the chosen serving, so later catalog
// edits never rewrite history.
type MealLogService struct {
	db *gorm.DB
}

func NewMealLogService(db *gorm.DB) *MealLogService {
	return &MealLogService{db: db}
}

// AddMealLog logs a dish at the requested serving size with any ingredient
// overrides applied. Nutrition is rounded to whole units at this boundary.
func (s *MealLogService) AddMealLog(ctx context.Context, userID uuid.UUID, req *types.CreateMealLogRequest) (*models.MealLog, error) {
	mealType, err := normalizeMealType(req.MealType)
	if err != nil {
		return nil, err
	}

	mealDate := planner.Midnight(time.Now())
	if req.MealDate != "" {
		parsed, err := time.Parse("2006-01-02", req.MealDate)
		if err != nil {
			return nil, ErrInvalidMealDate
		}
		mealDate = planner.Midnight(parsed)
	}

	var dish models.Dish
	if err := s.db.WithContext(ctx).Preload("Ingredients").First(&dish, req.DishID).Error; err != nil {
		return nil, err
	}

	scaler := nutrition.NewScaler(&dish)
	if req.ServingGrams > 0 {
		scaler.SetServing(req.ServingGrams)
	}
	for ingredientID, amount := range req.IngredientAmounts {
		scaler.SetIngredientAmount(ingredientID, amount)
	}
	totals := scaler.Totals()

	entry := models.MealLog{
		UserID:       userID,
		DishID:       dish.ID,
		DishName:     annotateDishName(&dish, scaler),
		MealDate:     mealDate,
		MealType:     mealType,
		ServingLabel: ServingLabel(scaler.Serving()),
		Calories:     int(math.Round(totals.Calories)),
		Protein:      int(math.Round(totals.Protein)),
		Carbs:        int(math.Round(totals.Carbs)),
		Fat:          int(math.Round(totals.Fats)),
	}

	if err := s.db.WithContext(ctx).Create(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

// annotateDishName appends "with rice" when the logged portion includes a
// scalable rice ingredient, so journal entries read the way the dish was
// actually eaten.
func annotateDishName(dish *models.Dish, scaler *nutrition.Scaler) string {
	name := dish.Name
	if scaler.ScalableAmount() <= 0 {
		return name
	}
	if strings.Contains(strings.ToLower(name), "rice") {
		return name
	}
	for _, ing := range dish.Ingredients {
		if ing.Scalable && strings.Contains(strings.ToLower(ing.Name), "rice") {
			return name + " with rice"
		}
	}
	return name
}

// ListMealLogs returns the user's log entries, newest date first, optionally
// bounded by an inclusive date range.
func (s *MealLogService) ListMealLogs(ctx context.Context, userID uuid.UUID, from, to *time.Time) ([]models.MealLog, error) {
	q := s.db.WithContext(ctx).Where("user_id = ?", userID)
	if from != nil {
		q = q.Where("meal_date >= ?", planner.Midnight(*from))
	}
	if to != nil {
		q = q.Where("meal_date < ?", planner.Midnight(*to).AddDate(0, 0, 1))
	}

	var logs []models.MealLog
	if err := q.Order("meal_date DESC, id DESC").Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

// DeleteMealLog removes one of the user's own entries.
func (s *MealLogService) DeleteMealLog(ctx context.Context, userID uuid.UUID, id uint) error {
	result := s.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).Delete(&models.MealLog{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
