// internal/database/seed.go
package database

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/stamperia/stamperia-backend/internal/models"
)

// SeedAdmin creates the initial admin account when the users table is
// empty. Admins cannot self-register, so a fresh install needs one.
func SeedAdmin(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.User{}).Where("role = ?", models.UserRoleAdmin).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count admins: %w", err)
	}
	if count > 0 {
		return nil
	}

	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		logrus.Warn("No admin account exists and ADMIN_EMAIL/ADMIN_PASSWORD are unset; skipping seed")
		return nil
	}

	admin := &models.User{
		Email: email,
		Name:  "Administrator",
		Role:  models.UserRoleAdmin,
	}
	if err := admin.SetPassword(password); err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	if err := db.Create(admin).Error; err != nil {
		return fmt.Errorf("failed to create admin: %w", err)
	}

	logrus.WithField("email", email).Info("Seeded initial admin account")
	return nil
}
