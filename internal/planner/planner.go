package planner

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/nutrivue/backend/internal/models"
	"github.com/nutrivue/backend/internal/nutrition"
)

// NoDishName is the placeholder slot name used when a meal-type pool runs
// empty. Renderers treat it as "nothing planned", not as an error.
const NoDishName = "No dish planned"

// Meal is one slot of a plan day.
type Meal struct {
	Type           string              `json:"type"`
	DishID         uint                `json:"id"`
	Name           string              `json:"name"`
	Description    string              `json:"description,omitempty"`
	DefaultServing float64             `json:"default_serving,omitempty"`
	Nutrition      nutrition.Nutrition `json:"nutrition"`
	Added          bool                `json:"added"`
}

// Placeholder reports whether this slot holds no dish.
func (m Meal) Placeholder() bool { return m.DishID == 0 }

// Day is one dated entry of the plan.
type Day struct {
	Day    string              `json:"day"`
	Date   time.Time           `json:"date"`
	Meals  []Meal              `json:"meals"`
	Totals nutrition.Nutrition `json:"totals"`
}

// Plan is the generated multi-day meal plan. This is also the shape cached
// per user.
type Plan struct {
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	Days      []Day     `json:"days"`
}

// allergenCategories expands coarse allergen choices into the concrete
// ingredient words they imply.
var allergenCategories = map[string][]string{
	"meat":    {"beef", "pork", "chicken", "turkey"},
	"seafood": {"fish", "shellfish", "shrimp", "crab", "lobster", "squid"},
	"dairy":   {"milk", "cheese", "butter", "yogurt"},
}

// ExpandAllergens lowercases, trims, and expands the user's allergen set.
func ExpandAllergens(allergens []string) []string {
	seen := make(map[string]bool)
	var expanded []string

	add := func(a string) {
		if a != "" && !seen[a] {
			seen[a] = true
			expanded = append(expanded, a)
		}
	}

	for _, a := range allergens {
		a = strings.ToLower(strings.TrimSpace(a))
		add(a)
		for _, implied := range allergenCategories[a] {
			add(implied)
		}
	}
	return expanded
}

// MatchesProfile reports whether a dish is eligible for the given profile:
// no allergen hit in its ingredients, name, or description; none of the
// user's health conditions on its exclusion tags; and, when both sides
// declare them, an overlap on goal and eating style.
func MatchesProfile(profile *models.HealthProfile, dish *models.Dish) bool {
	allergens := ExpandAllergens(profile.Allergens)

	name := strings.ToLower(dish.Name)
	description := strings.ToLower(dish.Description)

	for _, allergen := range allergens {
		if strings.Contains(name, allergen) || strings.Contains(description, allergen) {
			return false
		}
		for _, ing := range dish.Ingredients {
			if strings.Contains(strings.ToLower(ing.Name), allergen) {
				return false
			}
			for _, tag := range ing.Allergens {
				if strings.ToLower(strings.TrimSpace(tag)) == allergen {
					return false
				}
			}
		}
	}

	for _, condition := range profile.HealthConditions {
		if containsFold(dish.HealthConditions, condition) {
			return false
		}
	}

	if goal := profile.PrimaryGoal(); goal != "" && len(dish.Goals) > 0 {
		if !containsFold(dish.Goals, goal) {
			return false
		}
	}

	if profile.EatingStyle != "" && dish.EatingStyle != "" {
		if !strings.EqualFold(strings.TrimSpace(dish.EatingStyle), strings.TrimSpace(profile.EatingStyle)) {
			return false
		}
	}

	return true
}

// EligibleDishes filters the catalog down to dishes the profile may eat.
func EligibleDishes(profile *models.HealthProfile, dishes []models.Dish) []models.Dish {
	eligible := make([]models.Dish, 0, len(dishes))
	for i := range dishes {
		if MatchesProfile(profile, &dishes[i]) {
			eligible = append(eligible, dishes[i])
		}
	}
	return eligible
}

func containsFold(haystack []string, needle string) bool {
	needle = strings.ToLower(strings.TrimSpace(needle))
	for _, s := range haystack {
		if strings.ToLower(strings.TrimSpace(s)) == needle {
			return true
		}
	}
	return false
}

// HasMealType reports whether the dish is tagged for the given slot type.
func HasMealType(dish *models.Dish, mealType string) bool {
	return containsFold(dish.MealTypes, mealType)
}

// scoreWeights shift which macros matter most when ranking dishes against
// the per-meal target.
type scoreWeights struct {
	calories, protein, carbs, fats float64
}

func weightsForGoal(goal string) scoreWeights {
	goal = strings.ToLower(goal)
	switch {
	case strings.Contains(goal, "weight loss"):
		return scoreWeights{calories: 1.5, protein: 1.2, carbs: 0.8, fats: 0.8}
	case strings.Contains(goal, "athletic"):
		return scoreWeights{calories: 1, protein: 1.5, carbs: 1.2, fats: 0.8}
	default:
		return scoreWeights{calories: 1, protein: 1, carbs: 1, fats: 1}
	}
}

// closeness is 1 at a perfect match and decreases with relative distance.
// A zero target contributes a neutral 0.
func closeness(actual, target float64) float64 {
	if target == 0 {
		return 0
	}
	return 1 - abs(actual-target)/target
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// scoreDish ranks a dish by the weighted average closeness of its base
// nutrition to the per-meal macro target.
func scoreDish(dish *models.Dish, target nutrition.Nutrition, w scoreWeights) float64 {
	n := nutrition.DishBaseTotals(dish)
	sum := closeness(n.Calories, target.Calories)*w.calories +
		closeness(n.Protein, target.Protein)*w.protein +
		closeness(n.Carbs, target.Carbs)*w.carbs +
		closeness(n.Fats, target.Fats)*w.fats
	return sum / (w.calories + w.protein + w.carbs + w.fats)
}

type scoredDish struct {
	dish  *models.Dish
	score float64
}

// buildPool collects eligible dishes for a meal type, best matches first.
func buildPool(eligible []models.Dish, mealType string, target nutrition.Nutrition, w scoreWeights) []scoredDish {
	var pool []scoredDish
	for i := range eligible {
		if HasMealType(&eligible[i], mealType) {
			pool = append(pool, scoredDish{dish: &eligible[i], score: scoreDish(&eligible[i], target, w)})
		}
	}
	sort.SliceStable(pool, func(i, j int) bool { return pool[i].score > pool[j].score })
	return pool
}

// selectMeal picks the best not-yet-used dish from the pool. When every
// candidate was already used in this run, it falls back to the best-scoring
// one, so exhausted pools repeat dishes instead of leaving gaps. An empty
// pool yields a placeholder slot.
func selectMeal(pool []scoredDish, mealType string, used map[uint]bool) Meal {
	if len(pool) == 0 {
		return Meal{Type: mealType, Name: NoDishName}
	}

	idx := -1
	for i := range pool {
		if !used[pool[i].dish.ID] {
			idx = i
			break
		}
	}
	if idx == -1 {
		idx = 0
	}

	chosen := pool[idx].dish
	used[chosen.ID] = true

	return Meal{
		Type:           mealType,
		DishID:         chosen.ID,
		Name:           chosen.Name,
		Description:    chosen.Description,
		DefaultServing: chosen.DefaultServing,
		Nutrition:      nutrition.DishBaseTotals(chosen),
	}
}

// Midnight normalizes a time to 00:00 UTC on its calendar date. Plan days,
// meal log dates, and window bounds all go through this, so date math never
// depends on the server's zone.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Generate produces a plan of profile.TimeframeDays days starting at the
// profile's plan start date (or today when unset). One dish is chosen per
// slot from the matching pool; dishes are not repeated within a run while
// unused candidates remain. Slots whose pool is empty hold a placeholder.
func Generate(profile *models.HealthProfile, dishes []models.Dish, logs []models.MealLog, now time.Time) (*Plan, error) {
	if profile.CalorieNeeds <= 0 {
		return nil, nutrition.ErrIncompleteProfile
	}

	timeframe := profile.TimeframeDays
	if timeframe <= 0 {
		timeframe = 7
	}
	mealsPerDay := profile.MealsPerDay
	if mealsPerDay <= 0 {
		mealsPerDay = 3
	}

	perMeal := nutrition.Nutrition{
		Calories: float64(profile.CalorieNeeds) / float64(mealsPerDay),
		Protein:  float64(profile.ProteinNeeded) / float64(mealsPerDay),
		Carbs:    float64(profile.CarbsNeeded) / float64(mealsPerDay),
		Fats:     float64(profile.FatsNeeded) / float64(mealsPerDay),
	}
	weights := weightsForGoal(profile.PrimaryGoal())

	eligible := EligibleDishes(profile, dishes)

	breakfastPool := buildPool(eligible, models.MealTypeBreakfast, perMeal, weights)
	lunchPool := buildPool(eligible, models.MealTypeLunch, perMeal, weights)
	dinnerPool := buildPool(eligible, models.MealTypeDinner, perMeal, weights)
	snackPool := buildPool(eligible, models.MealTypeSnack, perMeal, weights)

	start := Midnight(now)
	if profile.PlanStartDate != nil {
		start = Midnight(*profile.PlanStartDate)
	}

	used := make(map[uint]bool)
	plan := &Plan{
		StartDate: start,
		EndDate:   start.AddDate(0, 0, timeframe-1),
	}

	for i := 0; i < timeframe; i++ {
		day := Day{
			Day:  "Day " + strconv.Itoa(i+1),
			Date: start.AddDate(0, 0, i),
		}

		day.Meals = append(day.Meals, selectMeal(breakfastPool, models.MealTypeBreakfast, used))
		day.Meals = append(day.Meals, selectMeal(lunchPool, models.MealTypeLunch, used))
		day.Meals = append(day.Meals, selectMeal(dinnerPool, models.MealTypeDinner, used))
		for s := 3; s < mealsPerDay; s++ {
			day.Meals = append(day.Meals, selectMeal(snackPool, models.MealTypeSnack, used))
		}

		for _, meal := range day.Meals {
			day.Totals = day.Totals.Add(meal.Nutrition)
		}

		plan.Days = append(plan.Days, day)
	}

	MarkAdded(plan, logs)
	return plan, nil
}

// MarkAdded flags every slot for which a log entry exists with the same
// dish, meal type, and date.
func MarkAdded(plan *Plan, logs []models.MealLog) {
	if plan == nil || len(logs) == 0 {
		return
	}
	for d := range plan.Days {
		// Calendar-date comparison: stored dates may be midnight in any
		// zone depending on where they were created.
		date := plan.Days[d].Date.Format("2006-01-02")
		for m := range plan.Days[d].Meals {
			meal := &plan.Days[d].Meals[m]
			if meal.Placeholder() {
				continue
			}
			meal.Added = false
			for _, entry := range logs {
				if entry.DishID == meal.DishID &&
					strings.EqualFold(entry.MealType, meal.Type) &&
					entry.MealDate.Format("2006-01-02") == date {
					meal.Added = true
					break
				}
			}
		}
	}
}
