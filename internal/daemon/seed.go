package daemon

import (
	"gorm.io/gorm"

	"github.com/roomwatch/roomwatch/internal/config"
	"github.com/roomwatch/roomwatch/internal/db/models"
)

func seed(_ *config.Config, db *gorm.DB) {
	// Seed initial data if user table is empty

	var count int64
	db.Model(&models.User{}).Count(&count)
	if count == 0 {
		// Create default admin user
		password := models.HashPassword("changeme")

		db.Create(
			&models.User{
				Username: "admin",
				Password: &password,
				IsAdmin:  true,
			},
		)
	}
}
