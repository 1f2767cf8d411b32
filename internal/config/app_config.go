package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	AppPort               string
	AppEnv                string
	AppURL                string
	AppCorsAllowedOrigins []string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string
	DBMigrate  bool

	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int

	JWTSecret string

	S3Bucket       string
	S3Region       string
	S3AccessKey    string
	S3SecretKey    string
	S3Endpoint     string
	S3PublicDomain string

	TurnstileSecretKey string

	// Client-side limits are enforced at the ingress; these mirror them.
	MaxImagesPerReport int
	MaxImageSizeMB     int64

	SubmitRateLimitSeconds int
	TrustedProxyCIDRs      []string

	RenderQueueName  string
	RenderSweepCron  string
	RenderSweepAfter int
}

func LoadAppConfig() *AppConfig {
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found, reading from system environment variables")
	}

	return &AppConfig{
		AppPort:               mustGetEnv("APP_PORT"),
		AppEnv:                mustGetEnv("APP_ENV"),
		AppURL:                getEnv("APP_URL", "http://localhost:8080"),
		AppCorsAllowedOrigins: strings.Split(getEnv("APP_CORS_ALLOWED_ORIGINS", "*"), ","),

		DBHost:     mustGetEnv("DB_HOST"),
		DBPort:     mustGetEnv("DB_PORT"),
		DBUser:     mustGetEnv("DB_USER"),
		DBPassword: mustGetEnv("DB_PASSWORD"),
		DBName:     mustGetEnv("DB_NAME"),
		DBSSLMode:  mustGetEnv("DB_SSLMODE"),
		DBMigrate:  mustGetEnvAsBool("DB_MIGRATE"),

		RedisHost:     getEnv("REDIS_HOST", "localhost"),
		RedisPort:     getEnv("REDIS_PORT", "6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getEnvAsInt("REDIS_DB", 0),

		JWTSecret: mustGetEnv("JWT_SECRET"),

		S3Bucket:       mustGetEnv("S3_BUCKET"),
		S3Region:       getEnv("S3_REGION", ""),
		S3AccessKey:    getEnv("S3_ACCESS_KEY", ""),
		S3SecretKey:    getEnv("S3_SECRET_KEY", ""),
		S3Endpoint:     getEnv("S3_ENDPOINT", ""),
		S3PublicDomain: getEnv("S3_PUBLIC_DOMAIN", ""),

		TurnstileSecretKey: getEnv("TURNSTILE_SECRET_KEY", ""),

		MaxImagesPerReport: getEnvAsInt("MAX_IMAGES_PER_REPORT", 10),
		MaxImageSizeMB:     int64(getEnvAsInt("MAX_IMAGE_SIZE_MB", 5)),

		SubmitRateLimitSeconds: getEnvAsInt("SUBMIT_RATE_LIMIT_SECONDS", 10),
		TrustedProxyCIDRs:      splitNonEmpty(getEnv("TRUSTED_PROXY_CIDRS", "")),

		RenderQueueName:  getEnv("RENDER_QUEUE_NAME", "render:reports"),
		RenderSweepCron:  getEnv("RENDER_SWEEP_CRON", "*/10 * * * *"),
		RenderSweepAfter: getEnvAsInt("RENDER_SWEEP_AFTER_MINUTES", 5),
	}
}

func (c *AppConfig) DBConnectionString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName, c.DBSSLMode)
}

func splitNonEmpty(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func mustGetEnv(key string) string {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		slog.Error("Environment variable is required but not set", "key", key)
		os.Exit(1)
	}
	return value
}

func mustGetEnvAsBool(key string) bool {
	valStr := mustGetEnv(key)
	val, err := strconv.ParseBool(valStr)
	if err != nil {
		slog.Error("Environment variable must be a boolean (true/false)", "key", key, "value", valStr)
		os.Exit(1)
	}
	return val
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	valStr, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	val, err := strconv.Atoi(valStr)
	if err != nil {
		slog.Warn("Environment variable must be an integer, using fallback", "key", key, "value", valStr, "fallback", fallback)
		return fallback
	}
	return val
}
