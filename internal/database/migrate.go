package database

import (
	"gorm.io/gorm"

	"github.com/Himanshur25/recipe-master/internal/model"
)

// Migrate applies the schema for all application models.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.Recipe{},
		&model.Reaction{},
	)
}
