package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port             string
	DatabaseDSN      string
	SkipDB           bool
	JWTSecret        string
	JWTAlg           string
	JWTExpiry        time.Duration
	CORSAllowOrigins []string
	NagerBaseURL     string
	RedisAddr        string
	RedisPassword    string
	RedisDB          int
	LogLevel         string
	LogJSON          bool
}

func Load() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()

	expiry := 60 * time.Minute
	if raw := os.Getenv("JWT_EXPIRE_MINUTES"); raw != "" {
		if minutes, err := strconv.Atoi(raw); err == nil && minutes >= 0 {
			expiry = time.Duration(minutes) * time.Minute
		}
	}

	redisDB := 0
	if raw := os.Getenv("REDIS_DB"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			redisDB = parsed
		}
	}

	return &Config{
		Port:             getEnv("PORT", "8080"),
		DatabaseDSN:      getEnv("DATABASE_DSN", "host=localhost user=postgres password=postgres dbname=planner port=5432 sslmode=disable"),
		SkipDB:           os.Getenv("SKIP_DB") == "1",
		JWTSecret:        getEnv("JWT_SECRET", "your-secret-key-change-in-production"),
		JWTAlg:           getEnv("JWT_ALG", "HS256"),
		JWTExpiry:        expiry,
		CORSAllowOrigins: splitOrigins(getEnv("CORS_ALLOW_ORIGINS", "*")),
		NagerBaseURL:     getEnv("NAGER_BASE_URL", ""),
		RedisAddr:        getEnv("REDIS_ADDR", ""),
		RedisPassword:    getEnv("REDIS_PASSWORD", ""),
		RedisDB:          redisDB,
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		LogJSON:          os.Getenv("LOG_JSON") == "1",
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func splitOrigins(raw string) []string {
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}
