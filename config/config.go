package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config is the whole application configuration, read from the environment.
type Config struct {
	Port    string
	GinMode string

	DBDriver string // sqlite, mysql or postgres
	DBDSN    string

	JWTSecret string
	JWTTTL    time.Duration

	CORSOrigin string
	UploadDir  string
	LogLevel   string

	AdminName     string
	AdminEmail    string
	AdminPassword string

	// Item ids counted individually on the admin dashboard.
	DashboardItemIDs [3]uint

	RateLimitRPS int
}

// Load reads the environment. Call godotenv.Load before it to pick up a .env file.
func Load() (Config, error) {
	cfg := Config{
		Port:          getenv("PORT", "8080"),
		GinMode:       os.Getenv("GIN_MODE"),
		DBDriver:      strings.ToLower(getenv("DB_DRIVER", "sqlite")),
		DBDSN:         getenv("DB_DSN", "restaurant.db"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		CORSOrigin:    getenv("CORS_ORIGIN", "http://127.0.0.1:5500"),
		UploadDir:     getenv("UPLOAD_DIR", "public/uploads"),
		LogLevel:      os.Getenv("LOG_LEVEL"),
		AdminName:     getenv("ADMIN_NAME", "Administrator"),
		AdminEmail:    os.Getenv("ADMIN_EMAIL"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),
	}

	switch cfg.DBDriver {
	case "sqlite", "mysql", "postgres":
	default:
		return Config{}, fmt.Errorf("DB_DRIVER must be sqlite, mysql or postgres, got %q", cfg.DBDriver)
	}

	ttl, err := time.ParseDuration(getenv("JWT_TTL", "24h"))
	if err != nil {
		return Config{}, fmt.Errorf("JWT_TTL must be a duration: %w", err)
	}
	cfg.JWTTTL = ttl

	ids, err := parseItemIDs(getenv("DASHBOARD_ITEM_IDS", "6,7,8"))
	if err != nil {
		return Config{}, err
	}
	cfg.DashboardItemIDs = ids

	rps, err := strconv.Atoi(getenv("RATE_LIMIT_RPS", "50"))
	if err != nil || rps <= 0 {
		return Config{}, fmt.Errorf("RATE_LIMIT_RPS must be a positive number")
	}
	cfg.RateLimitRPS = rps

	return cfg, nil
}

func parseItemIDs(raw string) ([3]uint, error) {
	var ids [3]uint
	parts := strings.Split(raw, ",")
	if len(parts) != len(ids) {
		return ids, fmt.Errorf("DASHBOARD_ITEM_IDS must list exactly 3 ids, got %q", raw)
	}
	for i, p := range parts {
		n, err := strconv.ParseUint(strings.TrimSpace(p), 10, 32)
		if err != nil {
			return ids, fmt.Errorf("DASHBOARD_ITEM_IDS must be number: %w", err)
		}
		ids[i] = uint(n)
	}
	return ids, nil
}

func getenv(key string, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}
