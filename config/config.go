package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds every runtime setting. It is loaded once in main and passed
// down explicitly; nothing reads the environment after Load returns.
type Config struct {
	ListenAddr string
	DBPath     string
	UploadDir  string
	UploadURL  string
	JWTSecret  string
	TokenTTL   time.Duration
}

func Load() Config {
	// Missing .env is fine, real env vars still apply.
	_ = godotenv.Load()

	return Config{
		ListenAddr: getEnv("LISTEN_ADDR", ":3000"),
		DBPath:     getEnv("DB_PATH", "database.db"),
		UploadDir:  getEnv("UPLOAD_DIR", "uploads"),
		UploadURL:  getEnv("UPLOAD_URL", "/uploads"),
		JWTSecret:  getEnv("JWT_SECRET", "dev-secret"),
		TokenTTL:   time.Duration(getEnvInt("TOKEN_TTL_HOURS", 72)) * time.Hour,
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
