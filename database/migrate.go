package database

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/yeremiapane/restaurant-ordering/models"
	"github.com/yeremiapane/restaurant-ordering/utils"
)

// Migrate creates or updates every table the service uses.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.Item{},
		&models.CartItem{},
		&models.Notification{},
	)
	if err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	utils.InfoLogger.Println("AutoMigrate completed.")
	return nil
}

// SeedAdmin makes sure an admin account with the given email exists.
// Nothing is done when email or password is empty.
func SeedAdmin(db *gorm.DB, name, email, password string) error {
	if email == "" || password == "" {
		utils.InfoLogger.Println("ADMIN_EMAIL/ADMIN_PASSWORD not set, skipping admin seed")
		return nil
	}

	var user models.User
	err := db.Where("email = ?", email).First(&user).Error
	if err == nil {
		if user.Role != models.RoleAdmin {
			if err := db.Model(&user).Update("role", models.RoleAdmin).Error; err != nil {
				return fmt.Errorf("promote %s to admin: %w", email, err)
			}
			utils.InfoLogger.Printf("Promoted %s to admin", email)
		}
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("find admin %s: %w", email, err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}
	user = models.User{
		Name:     name,
		Email:    email,
		Password: string(hashed),
		Role:     models.RoleAdmin,
	}
	if err := db.Create(&user).Error; err != nil {
		return fmt.Errorf("create admin %s: %w", email, err)
	}
	utils.InfoLogger.Printf("Seeded admin user %s", email)
	return nil
}
