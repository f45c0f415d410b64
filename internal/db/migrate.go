package db

import (
	"service_portal/internal/domain" // Importing domain models

	"github.com/sirupsen/logrus"

	"gorm.io/gorm" // GORM ORM library
)

// Migrate performs automatic migration for the database schema
func Migrate(dsn string) {
	db, err := Connect(dsn) // Open a pooled connection to the database
	if err != nil {
		logrus.Fatalf("failed to connect database: %v", err) // Log fatal error if connection fails
	}
	// AutoMigrate will create tables, missing foreign keys, constraints, columns and indexes
	err = AutoMigrate(db)
	if err != nil {
		logrus.Fatalf("migration failed: %v", err) // Log fatal error if migration fails
	}
	logrus.Info("Migration completed.") // Log successful migration
}

// AutoMigrate creates or updates the schema for all six tables
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.User{},         // users
		&domain.Plan{},         // plans
		&domain.Service{},      // services
		&domain.Announcement{}, // announcements
		&domain.Work{},         // work
		&domain.Subscription{}, // subscriptions
	)
}
