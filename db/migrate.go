package db

import (
	"fmt"
	"log"

	"github.com/meinhoongagan/servicehub-backend/models"
)

func Migrate() {
	// Initialize DB connection
	Init()

	// Run AutoMigrate only when explicitly called
	err := DB.AutoMigrate(
		&models.User{},
		&models.Provider{},
		&models.ProviderApplication{},
		&models.Service{},
		&models.Booking{},
		&models.Payment{},
		&models.Review{},
		&models.PlatformConfig{},
	)
	if err != nil {
		log.Fatal("Failed to run migrations: ", err)
	}

	fmt.Println("✅ Migrations applied successfully!")
}
