package database

import (
	"gorm.io/gorm"

	"github.com/nutrivue/backend/internal/models"
)

// RunMigrations brings the schema up to date for every model the service
// owns. Order matters: referenced tables first.
func RunMigrations(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.HealthProfile{},
		&models.Dish{},
		&models.Ingredient{},
		&models.MealLog{},
		&models.WorkoutType{},
		&models.Workout{},
	)
}
