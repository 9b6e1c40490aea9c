package types

// RegisterRequest represents the request body for account creation
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// LoginRequest represents the request body for login
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse carries the signed token back to the client.
type AuthResponse struct {
	Token string `json:"token"`
}

// UpdateHealthProfileRequest is a partial update: nil fields are left
// untouched. BirthDate is a YYYY-MM-DD string.
type UpdateHealthProfileRequest struct {
	Sex           *string  `json:"sex"`
	BirthDate     *string  `json:"birth_date"`
	HeightCm      *float64 `json:"height_cm"`
	WeightKg      *float64 `json:"weight_kg"`
	ActivityLevel *string  `json:"activity_level"`

	Goals            *[]string `json:"goals"`
	EatingStyle      *string   `json:"eating_style"`
	Allergens        *[]string `json:"allergens"`
	HealthConditions *[]string `json:"health_conditions"`

	MealsPerDay   *int `json:"meals_per_day"`
	TimeframeDays *int `json:"timeframe_days"`
}

// CreateMealLogRequest logs one meal. MealDate is a YYYY-MM-DD string and
// defaults to today. ServingGrams defaults to the dish's default serving;
// IngredientAmounts holds per-ingredient gram overrides by ingredient id.
type CreateMealLogRequest struct {
	DishID            uint             `json:"dish_id" binding:"required"`
	MealType          string           `json:"meal_type" binding:"required"`
	MealDate          string           `json:"meal_date"`
	ServingGrams      float64          `json:"serving_grams"`
	IngredientAmounts map[uint]float64 `json:"ingredient_amounts"`
}

// CreateWorkoutRequest logs one workout session.
type CreateWorkoutRequest struct {
	WorkoutTypeID   uint    `json:"workout_type_id" binding:"required"`
	DurationMinutes float64 `json:"duration" binding:"required,gt=0"`
}
