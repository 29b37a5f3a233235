package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

func LoadEnv() error {
	// Try to load .env file if it exists (for local development).
	// On production the environment variables are set directly.
	if err := godotenv.Load(); err != nil {
		// .env file not found is not an error - environment variables
		// are already available in os.Getenv().
		log.Println("No .env file found, relying on environment variables")
	}
	return nil
}

// ValidateEnv checks environment variables and logs warnings for
// anything missing. Nothing here is fatal: the database falls back to
// a local DSN and uploads/static directories have defaults.
func ValidateEnv() error {
	if os.Getenv("DATABASE_URL") == "" {
		log.Println("WARNING: DATABASE_URL not set - falling back to local postgres DSN")
	}
	if os.Getenv("FRONTEND_URL") == "" {
		log.Println("WARNING: FRONTEND_URL not set - CORS may not work correctly")
	}
	if os.Getenv("ADMIN_URL") == "" {
		log.Println("WARNING: ADMIN_URL not set")
	}
	return nil
}

func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// UploadDir is where uploaded images land; served under /uploads.
func UploadDir() string {
	return GetEnv("UPLOAD_DIR", "static/uploads")
}

// StaticDir holds the bundled front-end; the SPA fallback serves its
// index.html for unmatched routes.
func StaticDir() string {
	return GetEnv("STATIC_DIR", "static")
}
