package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port           string
	DBDriver       string
	DBPath         string
	DatabaseURL    string
	LogMode        string
	DashboardLimit int
}

// Load reads .env when present, then the environment.
func Load() AppConfig {
	_ = godotenv.Load()

	get := func(k, def string) string {
		if v := os.Getenv(k); v != "" {
			return v
		}
		return def
	}
	limit, err := strconv.Atoi(get("DASHBOARD_LIMIT", "10"))
	if err != nil || limit <= 0 {
		limit = 10
	}
	return AppConfig{
		Port:           get("PORT", "8080"),
		DBDriver:       get("DB_DRIVER", "sqlite"),
		DBPath:         get("DB_PATH", "traza.db"),
		DatabaseURL:    get("DATABASE_URL", ""),
		LogMode:        get("LOG_MODE", "dev"),
		DashboardLimit: limit,
	}
}
