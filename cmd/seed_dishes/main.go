package main

import (
	"errors"

	"gorm.io/gorm"

	"github.com/nutrivue/backend/config"
	"github.com/nutrivue/backend/internal/database"
	"github.com/nutrivue/backend/internal/models"
	"github.com/nutrivue/backend/pkg/logger"
)

// dishes is the starter catalog. Ingredient amounts are grams per the dish's
// default serving; nutrition values are the contribution of that amount.
var dishes = []models.Dish{
	{
		Name:           "Oatmeal with banana",
		Description:    "Rolled oats cooked in milk, topped with sliced banana.",
		MealTypes:      models.JSONBStringArray{"Breakfast"},
		DefaultServing: 300,
		Steps: models.JSONBStringArray{
			"Bring the milk to a simmer.",
			"Stir in the oats and cook for 5 minutes.",
			"Top with banana slices.",
		},
		Ingredients: []models.Ingredient{
			{Name: "Rolled oats", Amount: 60, Calories: 228, Protein: 8.1, Carbs: 40.2, Fats: 4.2},
			{Name: "Milk", Amount: 180, Calories: 110, Protein: 5.9, Carbs: 8.6, Fats: 5.8, Allergens: models.JSONBStringArray{"milk"}},
			{Name: "Banana", Amount: 60, Calories: 53, Protein: 0.7, Carbs: 13.7, Fats: 0.2},
		},
	},
	{
		Name:           "Scrambled eggs on toast",
		Description:    "Soft scrambled eggs with buttered wholegrain toast.",
		MealTypes:      models.JSONBStringArray{"Breakfast"},
		DefaultServing: 220,
		Steps: models.JSONBStringArray{
			"Whisk the eggs with a pinch of salt.",
			"Scramble over low heat.",
			"Serve on the toasted bread.",
		},
		Ingredients: []models.Ingredient{
			{Name: "Eggs", Amount: 120, Calories: 172, Protein: 15.1, Carbs: 0.9, Fats: 11.9, Allergens: models.JSONBStringArray{"eggs"}},
			{Name: "Wholegrain bread", Amount: 80, Calories: 198, Protein: 7.8, Carbs: 33.8, Fats: 2.7, Allergens: models.JSONBStringArray{"gluten"}},
			{Name: "Butter", Amount: 20, Calories: 143, Protein: 0.2, Carbs: 0, Fats: 16.2, Allergens: models.JSONBStringArray{"milk"}},
		},
	},
	{
		Name:           "Greek yogurt with berries",
		Description:    "Thick yogurt with mixed berries and a drizzle of honey.",
		MealTypes:      models.JSONBStringArray{"Breakfast", "Snack"},
		DefaultServing: 250,
		Ingredients: []models.Ingredient{
			{Name: "Greek yogurt", Amount: 170, Calories: 100, Protein: 17.3, Carbs: 6.1, Fats: 0.7, Allergens: models.JSONBStringArray{"milk"}},
			{Name: "Mixed berries", Amount: 60, Calories: 34, Protein: 0.4, Carbs: 8.2, Fats: 0.2},
			{Name: "Honey", Amount: 20, Calories: 61, Protein: 0.1, Carbs: 16.5, Fats: 0},
		},
	},
	{
		Name:           "Chicken teriyaki",
		Description:    "Pan-seared chicken thigh glazed with teriyaki sauce, served over steamed rice.",
		MealTypes:      models.JSONBStringArray{"Lunch", "Dinner"},
		DefaultServing: 350,
		Steps: models.JSONBStringArray{
			"Sear the chicken until golden.",
			"Add the sauce and reduce to a glaze.",
			"Serve over the steamed rice.",
		},
		Ingredients: []models.Ingredient{
			{Name: "Chicken thigh", Amount: 150, Calories: 269, Protein: 25.4, Carbs: 0, Fats: 18.2},
			{Name: "Teriyaki sauce", Amount: 30, Calories: 27, Protein: 1.8, Carbs: 4.7, Fats: 0, Allergens: models.JSONBStringArray{"soy", "gluten"}},
			{Name: "White rice", Amount: 170, Calories: 221, Protein: 4.6, Carbs: 48.1, Fats: 0.5, Scalable: true},
		},
	},
	{
		Name:           "Beef and rice bowl",
		Description:    "Lean ground beef with vegetables over rice.",
		MealTypes:      models.JSONBStringArray{"Lunch", "Dinner"},
		DefaultServing: 380,
		Ingredients: []models.Ingredient{
			{Name: "Lean ground beef", Amount: 140, Calories: 243, Protein: 30.1, Carbs: 0, Fats: 13.2},
			{Name: "Mixed vegetables", Amount: 80, Calories: 37, Protein: 2.1, Carbs: 7.2, Fats: 0.3},
			{Name: "White rice", Amount: 160, Calories: 208, Protein: 4.3, Carbs: 45.3, Fats: 0.5, Scalable: true},
		},
	},
	{
		Name:           "Grilled salmon with quinoa",
		Description:    "Grilled salmon fillet with lemon over fluffy quinoa.",
		MealTypes:      models.JSONBStringArray{"Lunch", "Dinner"},
		DefaultServing: 320,
		Ingredients: []models.Ingredient{
			{Name: "Salmon fillet", Amount: 140, Calories: 291, Protein: 28.3, Carbs: 0, Fats: 18.9, Allergens: models.JSONBStringArray{"fish"}},
			{Name: "Quinoa", Amount: 150, Calories: 180, Protein: 6.6, Carbs: 31.9, Fats: 2.9},
			{Name: "Olive oil", Amount: 10, Calories: 88, Protein: 0, Carbs: 0, Fats: 10},
			{Name: "Lemon", Amount: 20, Calories: 6, Protein: 0.1, Carbs: 1.9, Fats: 0},
		},
	},
	{
		Name:           "Lentil soup",
		Description:    "Hearty red lentil soup with carrot and cumin.",
		MealTypes:      models.JSONBStringArray{"Lunch", "Dinner"},
		EatingStyle:    "Vegetarian",
		DefaultServing: 400,
		Ingredients: []models.Ingredient{
			{Name: "Red lentils", Amount: 90, Calories: 318, Protein: 23.2, Carbs: 54.1, Fats: 1},
			{Name: "Carrot", Amount: 80, Calories: 33, Protein: 0.7, Carbs: 7.7, Fats: 0.2},
			{Name: "Onion", Amount: 60, Calories: 24, Protein: 0.7, Carbs: 5.6, Fats: 0.1},
			{Name: "Olive oil", Amount: 10, Calories: 88, Protein: 0, Carbs: 0, Fats: 10},
		},
	},
	{
		Name:           "Tofu stir-fry",
		Description:    "Crispy tofu with broccoli and peppers in a light soy glaze, over rice.",
		MealTypes:      models.JSONBStringArray{"Lunch", "Dinner"},
		EatingStyle:    "Vegetarian",
		DefaultServing: 360,
		Ingredients: []models.Ingredient{
			{Name: "Firm tofu", Amount: 150, Calories: 217, Protein: 24.3, Carbs: 4.2, Fats: 12.6, Allergens: models.JSONBStringArray{"soy"}},
			{Name: "Broccoli", Amount: 80, Calories: 27, Protein: 2.3, Carbs: 5.3, Fats: 0.3},
			{Name: "Bell pepper", Amount: 60, Calories: 19, Protein: 0.6, Carbs: 3.6, Fats: 0.2},
			{Name: "White rice", Amount: 70, Calories: 91, Protein: 1.9, Carbs: 19.8, Fats: 0.2, Scalable: true},
		},
	},
	{
		Name:           "Shrimp pasta",
		Description:    "Garlic shrimp tossed with linguine and parsley.",
		MealTypes:      models.JSONBStringArray{"Dinner"},
		DefaultServing: 340,
		Ingredients: []models.Ingredient{
			{Name: "Shrimp", Amount: 120, Calories: 119, Protein: 24.4, Carbs: 0.2, Fats: 1.7, Allergens: models.JSONBStringArray{"shellfish"}},
			{Name: "Linguine", Amount: 180, Calories: 284, Protein: 10.4, Carbs: 55.8, Fats: 1.7, Allergens: models.JSONBStringArray{"gluten"}},
			{Name: "Olive oil", Amount: 15, Calories: 133, Protein: 0, Carbs: 0, Fats: 15},
			{Name: "Garlic", Amount: 10, Calories: 15, Protein: 0.6, Carbs: 3.3, Fats: 0.1},
		},
	},
	{
		Name:           "Quinoa salad",
		Description:    "Quinoa with cucumber, tomato, and a lemon dressing.",
		MealTypes:      models.JSONBStringArray{"Lunch"},
		EatingStyle:    "Vegetarian",
		Goals:          models.JSONBStringArray{"Weight loss"},
		DefaultServing: 300,
		Ingredients: []models.Ingredient{
			{Name: "Quinoa", Amount: 140, Calories: 168, Protein: 6.2, Carbs: 29.8, Fats: 2.7},
			{Name: "Cucumber", Amount: 70, Calories: 11, Protein: 0.5, Carbs: 2.5, Fats: 0.1},
			{Name: "Tomato", Amount: 70, Calories: 13, Protein: 0.6, Carbs: 2.7, Fats: 0.1},
			{Name: "Olive oil", Amount: 12, Calories: 106, Protein: 0, Carbs: 0, Fats: 12},
		},
	},
	{
		Name:           "Cottage cheese bowl",
		Description:    "Cottage cheese with cherry tomatoes and cracked pepper.",
		MealTypes:      models.JSONBStringArray{"Snack"},
		DefaultServing: 220,
		Ingredients: []models.Ingredient{
			{Name: "Cottage cheese", Amount: 180, Calories: 178, Protein: 20.2, Carbs: 6.1, Fats: 7.7, Allergens: models.JSONBStringArray{"milk"}},
			{Name: "Cherry tomatoes", Amount: 40, Calories: 7, Protein: 0.4, Carbs: 1.6, Fats: 0.1},
		},
	},
	{
		Name:           "Trail mix",
		Description:    "Almonds, walnuts, and raisins.",
		MealTypes:      models.JSONBStringArray{"Snack"},
		DefaultServing: 50,
		Ingredients: []models.Ingredient{
			{Name: "Almonds", Amount: 20, Calories: 116, Protein: 4.2, Carbs: 4.3, Fats: 10, Allergens: models.JSONBStringArray{"nuts"}},
			{Name: "Walnuts", Amount: 15, Calories: 98, Protein: 2.3, Carbs: 2.1, Fats: 9.8, Allergens: models.JSONBStringArray{"nuts"}},
			{Name: "Raisins", Amount: 15, Calories: 45, Protein: 0.5, Carbs: 11.9, Fats: 0.1},
		},
	},
}

// workoutTypes carries per-minute burn rates for the session log.
var workoutTypes = []models.WorkoutType{
	{Name: "Running", CaloriesPerMinute: 11.5, FatPerMinute: 0.6, CarbsPerMinute: 1.8},
	{Name: "Cycling", CaloriesPerMinute: 8.2, FatPerMinute: 0.4, CarbsPerMinute: 1.4},
	{Name: "Swimming", CaloriesPerMinute: 9.8, FatPerMinute: 0.5, CarbsPerMinute: 1.5},
	{Name: "Strength training", CaloriesPerMinute: 6.0, FatPerMinute: 0.3, CarbsPerMinute: 0.9},
	{Name: "Walking", CaloriesPerMinute: 4.0, FatPerMinute: 0.25, CarbsPerMinute: 0.5},
	{Name: "Yoga", CaloriesPerMinute: 3.0, FatPerMinute: 0.2, CarbsPerMinute: 0.3},
}

func main() {
	log := logger.New()
	defer func() { _ = log.Sync() }()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalw("failed to load configuration", "error", err)
	}

	db, err := database.New(cfg)
	if err != nil {
		log.Fatalw("failed to connect to database", "error", err)
	}

	seeded := 0
	for i := range dishes {
		var existing models.Dish
		err := db.Where("name = ?", dishes[i].Name).First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Fatalw("failed to check dish", "dish", dishes[i].Name, "error", err)
		}
		if err := db.Create(&dishes[i]).Error; err != nil {
			log.Fatalw("failed to seed dish", "dish", dishes[i].Name, "error", err)
		}
		seeded++
	}
	log.Infow("dish catalog seeded", "created", seeded, "total", len(dishes))

	seeded = 0
	for i := range workoutTypes {
		var existing models.WorkoutType
		err := db.Where("name = ?", workoutTypes[i].Name).First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Fatalw("failed to check workout type", "name", workoutTypes[i].Name, "error", err)
		}
		if err := db.Create(&workoutTypes[i]).Error; err != nil {
			log.Fatalw("failed to seed workout type", "name", workoutTypes[i].Name, "error", err)
		}
		seeded++
	}
	log.Infow("workout types seeded", "created", seeded, "total", len(workoutTypes))
}
