package configs

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

var (
	JWTSecret        string
	AdminEmail       string
	AdminPassword    string
	ScreeningSession string
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			log.Println("no .env file found, using system ENV")
		}
	}

	JWTSecret = GetEnv("JWT_SECRET")
	AdminEmail = GetEnv("ADMIN_EMAIL", "admin@screening.local")
	AdminPassword = GetEnv("ADMIN_PASSWORD")
	ScreeningSession = GetEnv("SCREENING_SESSION", "2026/2027")

	if JWTSecret == "" {
		log.Println("JWT_SECRET is not set; admin routes will reject every token")
	}
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}
