package database

import (
	"log"

	"cargoflow/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func RunSeeders(db *gorm.DB) {
	SeedAdminUser(db)
	SeedTransitaires(db)
	SeedContainerTypes(db)
}

func SeedAdminUser(db *gorm.DB) {
	var existing models.User
	if err := db.Where("username = ?", "admin").First(&existing).Error; err != gorm.ErrRecordNotFound {
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash admin password: %v", err)
	}

	admin := models.User{
		Username: "admin",
		Name:     "Administrateur",
		Email:    "admin@cargoflow.local",
		Password: string(hashed),
		Role:     models.RoleAdmin,
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Fatalf("Failed to seed admin user: %v", err)
	}
}

func SeedTransitaires(db *gorm.DB) {
	transitaires := []models.Transitaire{
		{TransitaireCode: "SIFA", TransitaireName: "SIFA Transit", PortOfLoading: "Marseille"},
		{TransitaireCode: "TAF", TransitaireName: "TAF Logistique", PortOfLoading: "Le Havre"},
	}

	for _, t := range transitaires {
		var existing models.Transitaire
		if err := db.Where("transitaire_code = ?", t.TransitaireCode).First(&existing).Error; err == gorm.ErrRecordNotFound {
			db.Create(&t)
		}
	}
}

// SeedContainerTypes creates one empty container per standard type so the
// planner screen has something to start from on a fresh database.
func SeedContainerTypes(db *gorm.DB) {
	var count int64
	db.Model(&models.Container{}).Count(&count)
	if count > 0 {
		return
	}

	var sifa models.Transitaire
	if err := db.Where("transitaire_code = ?", "SIFA").First(&sifa).Error; err != nil {
		return
	}

	containers := []models.Container{
		{ContainerNo: "DEMO-20GP", ContainerType: "20GP", TransitaireID: sifa.ID, MaxPallets: 10, MaxWeightKg: 21700, MaxVolumeM3: 33},
		{ContainerNo: "DEMO-40GP", ContainerType: "40GP", TransitaireID: sifa.ID, MaxPallets: 20, MaxWeightKg: 26500, MaxVolumeM3: 67},
		{ContainerNo: "DEMO-40HC", ContainerType: "40HC", TransitaireID: sifa.ID, MaxPallets: 22, MaxWeightKg: 26500, MaxVolumeM3: 76},
	}
	for _, c := range containers {
		db.Create(&c)
	}
}
