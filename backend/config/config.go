package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

type Config struct {
	ServerPort        string
	JWTSecret         string
	TokenTTL          time.Duration
	AdminUsername     string
	AdminPasswordHash string
	AllowOrigins      string
	LogFormat         string
	SeedSampleData    bool
	DefaultTheme      string
}

func LoadConfig() (*Config, error) {
	err := godotenv.Load()
	if err != nil {
		log.Println("Error loading .env file, using environment variables")
	}

	ttl, err := time.ParseDuration(getEnv("TOKEN_TTL", "72h"))
	if err != nil {
		return nil, fmt.Errorf("invalid TOKEN_TTL: %w", err)
	}

	seed, err := strconv.ParseBool(getEnv("SEED_SAMPLE_DATA", "true"))
	if err != nil {
		return nil, fmt.Errorf("invalid SEED_SAMPLE_DATA: %w", err)
	}

	theme := getEnv("DEFAULT_THEME", "light")
	if theme != "light" && theme != "dark" {
		return nil, fmt.Errorf("invalid DEFAULT_THEME %q", theme)
	}

	hash := getEnv("ADMIN_PASSWORD_HASH", "")
	if hash == "" {
		hash, err = HashPassword(getEnv("ADMIN_PASSWORD", "admin"))
		if err != nil {
			return nil, err
		}
	}

	return &Config{
		ServerPort:        getEnv("SERVER_PORT", "8080"),
		JWTSecret:         getEnv("JWT_SECRET", "secret"),
		TokenTTL:          ttl,
		AdminUsername:     getEnv("ADMIN_USERNAME", "admin"),
		AdminPasswordHash: hash,
		AllowOrigins:      getEnv("CORS_ALLOW_ORIGINS", "*"),
		LogFormat:         getEnv("LOG_FORMAT", "text"),
		SeedSampleData:    seed,
		DefaultTheme:      theme,
	}, nil
}

func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("could not hash admin password: %w", err)
	}
	return string(hashed), nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
