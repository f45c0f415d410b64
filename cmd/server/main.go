package main

import (
	"os"                               // Upload directory creation
	"service_portal/internal/api"      // Custom package for API handlers
	"service_portal/internal/config"   // Custom package for configuration
	"service_portal/internal/currency" // Custom package for rate lookup
	"service_portal/internal/db"       // Custom package for database access

	"github.com/sirupsen/logrus" // Logrus for structured logging
)

// Main function to set up and run the server
func main() {
	cfg := config.LoadConfig() // Load configuration

	// Setup logger
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	// Connect to the database with a bounded connection pool
	dbConn, err := db.Connect(cfg.DSN())
	if err != nil {
		logrus.Fatalf("failed to connect to DB: %v", err) // Fatal error if DB connection fails
	}

	// Ensure the upload directory exists before serving or accepting files
	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		logrus.Fatalf("failed to create upload directory: %v", err)
	}

	// Rate lookup client for plan price conversion
	rates := currency.NewClient(cfg.RatesAPIURL, cfg.BaseCurrency)

	// Setup routes
	r := api.NewRouter(dbConn, rates, cfg)

	logrus.Info("Server running on " + cfg.AppPort) // Log server start
	if err := r.Run(":" + cfg.AppPort); err != nil {
		logrus.Fatalf("server stopped: %v", err) // Fatal error if the server exits
	}
}
