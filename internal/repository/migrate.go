package repository

import "gorm.io/gorm"

// AutoMigrate creates or updates the schema for every table this package maps.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&userModel{},
		&todoListModel{},
		&todoModel{},
	)
}
