package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

type Config struct {
	Port            string
	PostgresDSN     string
	JWTSecret       string
	TokenTTL        time.Duration
	CloudinaryURL   string
	RedisAddr       string
	CORSOrigin      string
	DBMaxOpenConns  int
	DBMaxIdleConns  int
	DBConnMaxLife   time.Duration
	LoginRateLimit  int
	LoginRateWindow time.Duration
}

// Load reads .env if present, then the environment. Missing required values
// are fatal at startup rather than at first use.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		logrus.Warn("no .env file found, reading environment directly")
	}

	cfg := &Config{
		Port:            getEnv("PORT", "8080"),
		PostgresDSN:     getEnv("DATABASE_URL", ""),
		JWTSecret:       getEnv("JWT_SECRET", ""),
		TokenTTL:        getDuration("TOKEN_TTL", 24*time.Hour),
		CloudinaryURL:   getEnv("CLOUDINARY_URL", ""),
		RedisAddr:       getEnv("REDIS_ADDR", ""),
		CORSOrigin:      getEnv("CORS_ORIGIN", "http://localhost:5173"),
		DBMaxOpenConns:  getInt("DB_MAX_OPEN_CONNS", 25),
		DBMaxIdleConns:  getInt("DB_MAX_IDLE_CONNS", 10),
		DBConnMaxLife:   getDuration("DB_CONN_MAX_LIFE", 30*time.Minute),
		LoginRateLimit:  getInt("LOGIN_RATE_LIMIT", 10),
		LoginRateWindow: getDuration("LOGIN_RATE_WINDOW", time.Minute),
	}

	if cfg.PostgresDSN == "" {
		logrus.Fatal("DATABASE_URL is required")
	}
	if cfg.JWTSecret == "" {
		logrus.Fatal("JWT_SECRET is required")
	}
	if cfg.CloudinaryURL == "" {
		logrus.Fatal("CLOUDINARY_URL is required")
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return fallback
}

func getInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return fallback
}
