package config

import (
	"log"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Port           string
	AllowedOrigins []string
	FrontendURL    string

	// Engine
	WorkerCount     int
	WorkerQueueSize int
	MoveTimeout     time.Duration
	SearchDepth     int

	// Redis move cache
	RedisURL      string
	RedisPassword string
	MoveCacheTTL  time.Duration

	// Postgres move log
	DatabaseURL          string
	DBMaxOpenConns       int
	DBMaxIdleConns       int
	DBConnMaxLifetimeMin int
	MoveLogRetentionDays int

	// Kafka analytics
	KafkaBrokers []string
	KafkaTopic   string

	// Empty disables API authentication
	JWTSecret string
}

var AppConfig *Config

// maxSearchDepth is the engine's fixed search depth; SEARCH_DEPTH may only lower it.
const maxSearchDepth = 5

func LoadConfig() *Config {
	port := GetEnv("PORT", "8080")

	// Frontend & CORS
	frontendURL := GetEnv("FRONTEND_URL", "http://localhost:3000")
	allowedOrigins := []string{
		frontendURL,
		"http://localhost:5173", // Local development
	}
	allowedOrigins = append(allowedOrigins, GetEnvAsList("ALLOWED_ORIGINS")...)

	// Database Config
	dbURL := GetEnv("DATABASE_URL", GetEnv("DATABASE_URI", ""))
	if dbURL != "" {
		if u, err := url.Parse(dbURL); err == nil {
			q := u.Query()
			if q.Get("sslmode") == "" {
				q.Set("sslmode", "disable")
				u.RawQuery = q.Encode()
				dbURL = u.String()
			}
		}
	}

	AppConfig = &Config{
		Port:           port,
		AllowedOrigins: allowedOrigins,
		FrontendURL:    frontendURL,

		WorkerCount:     GetEnvAsInt("WORKER_COUNT", 4),
		WorkerQueueSize: GetEnvAsInt("WORKER_QUEUE_SIZE", 64),
		MoveTimeout:     time.Duration(GetEnvAsInt("MOVE_TIMEOUT_SECONDS", 10)) * time.Second,
		SearchDepth:     searchDepth(),

		RedisURL:      GetEnv("REDIS_URL", ""),
		RedisPassword: GetEnv("REDIS_PASSWORD", ""),
		MoveCacheTTL:  time.Duration(GetEnvAsInt("MOVE_CACHE_TTL_MINUTES", 60)) * time.Minute,

		DatabaseURL:          dbURL,
		DBMaxOpenConns:       GetEnvAsInt("DB_MAX_OPEN_CONNS", 25),
		DBMaxIdleConns:       GetEnvAsInt("DB_MAX_IDLE_CONNS", 25),
		DBConnMaxLifetimeMin: GetEnvAsInt("DB_CONN_MAX_LIFETIME_MINUTES", 5),
		MoveLogRetentionDays: GetEnvAsInt("MOVE_LOG_RETENTION_DAYS", 30),

		KafkaBrokers: GetEnvAsList("KAFKA_BROKERS"),
		KafkaTopic:   GetEnv("KAFKA_TOPIC", "connect4-moves"),

		JWTSecret: GetEnv("API_JWT_SECRET", ""),
	}

	return AppConfig
}

func searchDepth() int {
	depth := GetEnvAsInt("SEARCH_DEPTH", maxSearchDepth)
	if depth < 1 || depth > maxSearchDepth {
		log.Printf("SEARCH_DEPTH %d out of range 1-%d, using %d", depth, maxSearchDepth, maxSearchDepth)
		return maxSearchDepth
	}
	return depth
}

func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Invalid integer value for %s: %s, using default: %d", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}

// GetEnvAsList splits a comma separated variable, dropping blank entries.
func GetEnvAsList(key string) []string {
	var values []string
	for _, v := range strings.Split(os.Getenv(key), ",") {
		if trimmed := strings.TrimSpace(v); trimmed != "" {
			values = append(values, trimmed)
		}
	}
	return values
}
