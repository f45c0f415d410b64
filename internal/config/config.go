package config

import (
	"os" // For environment variables

	"github.com/joho/godotenv" // For loading .env files
)

// Config holds the application configuration
type Config struct {
	AppPort      string // HTTP listen port
	DBHost       string // Database host
	DBUser       string // Database user
	DBPassword   string // Database password
	DBName       string // Database name
	DBPort       string // Database port
	UploadDir    string // Directory for uploaded work files
	PublicDir    string // Directory with static front-end assets
	RatesAPIURL  string // Base URL of the exchange-rate service
	BaseCurrency string // Currency in which plan prices are stored
}

// getEnv reads an environment variable, falling back to a default value
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v // Use the environment value
	}
	return fallback // Fall back to the hardcoded default
}

// LoadConfig loads configuration from environment variables with defaults
func LoadConfig() *Config {
	_ = godotenv.Load() // Load .env file if present
	return &Config{
		AppPort:      getEnv("PORT", "3000"),            // HTTP listen port
		DBHost:       getEnv("DB_HOST", "127.0.0.1"),    // Database host
		DBUser:       getEnv("DB_USER", "root"),         // Database user
		DBPassword:   getEnv("DB_PASSWORD", ""),         // Database password
		DBName:       getEnv("DB_NAME", "portal"),       // Database name
		DBPort:       getEnv("DB_PORT", "3306"),         // Database port
		UploadDir:    getEnv("UPLOAD_DIR", "./uploads"), // Upload directory
		PublicDir:    getEnv("PUBLIC_DIR", "./public"),  // Static asset directory
		RatesAPIURL:  getEnv("RATES_API_URL", "https://open.er-api.com/v6"), // Exchange-rate service
		BaseCurrency: getEnv("BASE_CURRENCY", "USD"),                        // Base currency for prices
	}
}

// DSN builds the MySQL Data Source Name from the loaded configuration
func (c *Config) DSN() string {
	return c.DBUser + ":" + c.DBPassword + "@tcp(" + c.DBHost + ":" + c.DBPort + ")/" + c.DBName + "?parseTime=true"
}
