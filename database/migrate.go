package database

import (
	"cargoflow/models"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Supplier{},
		&models.Client{},
		&models.Transitaire{},
		&models.Product{},
		&models.Order{},
		&models.OrderLine{},
		&models.Container{},
		&models.Groupage{},
		&models.Booking{},
		&models.Project{},
		&models.Task{},
		&models.Sequence{},
	)
}
