package config

import (
	"fmt"
	"os"

	"companycal/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type Config struct {
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
}

func LoadConfig() (*Config, error) {
	return &Config{
		DBHost:     os.Getenv("DB_HOST"),
		DBPort:     os.Getenv("DB_PORT"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),
	}, nil
}

func InitDatabase(cfg *Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
		cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}

	return db, nil
}

// Migrate creates the schema and seeds the fixed roles plus the optional
// bootstrap admin.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(&models.Role{}, &models.User{}, &models.EventCategory{}, &models.Event{})
	if err != nil {
		return err
	}

	seedRoles(db)
	seedAdmin(db)

	return nil
}

func seedRoles(db *gorm.DB) {
	roles := []models.Role{
		{Name: models.RoleMember},
		{Name: models.RoleAdmin},
	}

	for _, role := range roles {
		var existingRole models.Role
		result := db.Where("name = ?", role.Name).First(&existingRole)
		if result.Error != nil {
			db.Create(&role)
		}
	}
}

// seedAdmin bootstraps the first admin account from ADMIN_EMAIL and
// ADMIN_PASSWORD. No-op when unset or when the account already exists.
func seedAdmin(db *gorm.DB) {
	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		return
	}

	var existing models.User
	if result := db.Where("email = ?", email).First(&existing); result.Error == nil {
		return
	}

	var adminRole models.Role
	if err := db.Where("name = ?", models.RoleAdmin).First(&adminRole).Error; err != nil {
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return
	}

	db.Create(&models.User{
		Email:    email,
		Password: string(hashedPassword),
		RoleID:   adminRole.ID,
	})
}
