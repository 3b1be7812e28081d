package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config configuration du serveur, chargée depuis l'environnement
type Config struct {
	Port string
	URL  string

	DBUser     string
	DBPassword string
	DBHost     string
	DBPort     string
	DBName     string

	CloudinaryCloudName string
	CloudinaryAPIKey    string
	CloudinaryAPISecret string
}

// LoadConfig charge la configuration depuis .env puis l'environnement.
// L'absence de .env n'est pas une erreur (prod).
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port: getEnv("PORT", "8080"),
		URL:  getEnv("APP_URL", "http://localhost:8080"),

		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBName:     getEnv("DB_NAME", "runnalog"),

		CloudinaryCloudName: os.Getenv("CLOUDINARY_CLOUD_NAME"),
		CloudinaryAPIKey:    os.Getenv("CLOUDINARY_API_KEY"),
		CloudinaryAPISecret: os.Getenv("CLOUDINARY_API_SECRET"),
	}

	if cfg.DBPassword == "" {
		return nil, fmt.Errorf("DB_PASSWORD is required")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
