package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port      string
	JWTKey    string
	AdminUser string // email granted the ADMIN role on login

	StoreDriver string // sqlite | postgres | mysql
	DBName      string
	DBHost      string
	DBUser      string
	DBPassword  string
	DBPort      string

	RecommendApiURL string // remote assistant model endpoint
	RecommendApiKey string
	ImageApiURL     string // admin image-generation endpoint
	ImageApiKey     string

	SendGridKey string
	EmailSender string

	CheckoutDelayMs int // simulated payment settlement delay
	LoginDelayMs    int // simulated auth backend delay
}

// AppConfig is a global variable to access configuration
var AppConfig *Config

// LoadConfig initializes configuration from environment variables or defaults
func LoadConfig() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found. Using system environment variables.")
	}

	AppConfig = &Config{
		Port:      getEnv("PORT", "3000"),
		JWTKey:    getEnv("JWT_SECRET_KEY", "defaultSecret"),
		AdminUser: getEnv("ADMIN_USER", "admin@digimarket.id"),

		StoreDriver: getEnv("STORE_DRIVER", "sqlite"),
		DBName:      getEnv("DB_NAME", "digimarket.db"),
		DBHost:      getEnv("DB_HOST", "localhost"),
		DBUser:      getEnv("DB_USER", "digimarket"),
		DBPassword:  getEnv("DB_PASSWORD", ""),
		DBPort:      getEnv("DB_PORT", "5432"),

		RecommendApiURL: getEnv("RECOMMEND_API_URL", ""),
		RecommendApiKey: getEnv("RECOMMEND_API_KEY", ""),
		ImageApiURL:     getEnv("IMAGE_API_URL", ""),
		ImageApiKey:     getEnv("IMAGE_API_KEY", ""),

		SendGridKey: getEnv("SENDGRID_API_KEY", ""),
		EmailSender: getEnv("EMAIL_SENDER", "noreply@digimarket.id"),

		CheckoutDelayMs: getEnvInt("CHECKOUT_DELAY_MS", 2500),
		LoginDelayMs:    getEnvInt("LOGIN_DELAY_MS", 1500),
	}

	// Validate critical configuration
	if AppConfig.JWTKey == "defaultSecret" {
		log.Println("Warning: Using default JWT_SECRET_KEY. Update it in your environment.")
	}
	if AppConfig.RecommendApiURL == "" {
		log.Println("Warning: RECOMMEND_API_URL not set. Assistant recommendations will be unavailable.")
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvInt retrieves an environment variable as an integer or returns the default integer value
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Error converting environment variable %s to int: %v", key, err)
		return defaultValue
	}
	return intValue
}
