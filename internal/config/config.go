package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds application configuration.
type Config struct {
	AppName     string
	AppVersion  string
	Environment string
	HTTPPort    string

	JWTSecret        string
	AuthCookieSecure bool

	DBType            string
	DBHost            string
	DBPort            string
	DBName            string
	DBUser            string
	DBPassword        string
	DBSSLMode         string
	DBMaxIdleConn     int
	DBMaxOpenConn     int
	DBConnMaxLifetime int
	DBConnMaxIdleTime int

	RateLimit RateLimitConfig

	PublicDir string
	UploadDir string
}

type RateLimitConfig struct {
	Enabled       bool
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	Rate          float64
	Burst         int
}

// Load loads configuration from environment variables and .env file.
// The defaults are development conveniences and must be overridden in
// production.
func Load() Config {
	_ = godotenv.Load()

	environment := getenv("ENVIRONMENT", "development")
	authCookieSecure := environment == "production"
	if !authCookieSecure {
		authCookieSecure = getenvBool("AUTH_COOKIE_SECURE", false)
	}

	return Config{
		AppName:          getenv("APP_SERVICE", "novayra-storefront"),
		AppVersion:       getenv("APP_VERSION", "1.0.0"),
		Environment:      environment,
		HTTPPort:         getenv("PORT", "3000"),
		JWTSecret:        strings.TrimSpace(getenv("JWT_SECRET", "novayra-secret-key")),
		AuthCookieSecure: authCookieSecure,

		DBType:            getenv("DATABASE_TYPE", "postgres"),
		DBHost:            getenv("DATABASE_HOST", "localhost"),
		DBPort:            getenv("DATABASE_PORT", "5432"),
		DBName:            getenv("DATABASE_NAME", "novayra"),
		DBUser:            getenv("DATABASE_USER", "postgres"),
		DBPassword:        getenv("DATABASE_PASSWORD", ""),
		DBSSLMode:         getenv("DATABASE_SSLMODE", "disable"),
		DBMaxIdleConn:     getenvInt("DATABASE_MAX_IDLE_CONN", 5),
		DBMaxOpenConn:     getenvInt("DATABASE_MAX_OPEN_CONN", 10),
		DBConnMaxLifetime: getenvInt("DATABASE_CONN_MAX_LIFETIME", 1800),
		DBConnMaxIdleTime: getenvInt("DATABASE_CONN_MAX_IDLE_TIME", 300),

		RateLimit: RateLimitConfig{
			Enabled:       getenvBool("RATE_LIMIT_ENABLED", false),
			RedisAddr:     strings.TrimSpace(getenv("RATE_LIMIT_REDIS_ADDR", "")),
			RedisPassword: strings.TrimSpace(getenv("RATE_LIMIT_REDIS_PASSWORD", "")),
			RedisDB:       getenvInt("RATE_LIMIT_REDIS_DB", 0),
			Rate:          getenvFloat("RATE_LIMIT_RATE", 100.0/900.0),
			Burst:         getenvInt("RATE_LIMIT_BURST", 100),
		},

		PublicDir: getenv("PUBLIC_DIR", "./public"),
		UploadDir: getenv("UPLOAD_DIR", "./uploads"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func getenvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func getenvFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	parsed, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fallback
	}
	return parsed
}
