package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config - структура для хранения конфигурации приложения
type Config struct {
	DatabaseURL string `env:"DATABASE_URL"`
	HTTPPort    string `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	// Redis Config
	RedisAddr string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPass string `env:"REDIS_PASSWORD"`
	RedisDB   int    `env:"REDIS_DB" envDefault:"0"`

	// JWT Config
	JWTSecret string        `env:"JWT_SECRET"`
	JWTIssuer string        `env:"JWT_ISSUER" envDefault:"live-location"`
	JWTTTL    time.Duration `env:"JWT_TTL" envDefault:"24h"`

	// Фильтрация GPS-сэмплов
	MinDistanceMeters float64       `env:"GEO_MIN_DISTANCE_METERS" envDefault:"20"`
	SettleDelay       time.Duration `env:"GEO_SETTLE_DELAY" envDefault:"1s"`

	// Синхронизация позиций в выданные доступы
	SyncInterval time.Duration `env:"SHARE_SYNC_INTERVAL" envDefault:"30s"`

	// Presence Config
	OfflineAfter         time.Duration `env:"PRESENCE_OFFLINE_AFTER" envDefault:"90s"`
	PresenceScanInterval time.Duration `env:"PRESENCE_SCAN_INTERVAL" envDefault:"30s"`
}

// LoadConfig загружает конфигурацию из переменных окружения и .env файла
func LoadConfig() (*Config, error) {
	// Загрузка переменных окружения из .env файла (если есть)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("ошибка загрузки файла .env: %w", err)
	}

	cfg := &Config{
		DatabaseURL:          os.Getenv("DATABASE_URL"),
		HTTPPort:             getEnv("HTTP_PORT", "8080"),
		LogLevel:             getEnv("LOG_LEVEL", "info"),
		RedisAddr:            getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:            os.Getenv("REDIS_PASSWORD"),
		RedisDB:              getEnvAsInt("REDIS_DB", 0),
		JWTSecret:            os.Getenv("JWT_SECRET"),
		JWTIssuer:            getEnv("JWT_ISSUER", "live-location"),
		JWTTTL:               getEnvAsDuration("JWT_TTL", 24*time.Hour),
		MinDistanceMeters:    getEnvAsFloat("GEO_MIN_DISTANCE_METERS", 20),
		SettleDelay:          getEnvAsDuration("GEO_SETTLE_DELAY", time.Second),
		SyncInterval:         getEnvAsDuration("SHARE_SYNC_INTERVAL", 30*time.Second),
		OfflineAfter:         getEnvAsDuration("PRESENCE_OFFLINE_AFTER", 90*time.Second),
		PresenceScanInterval: getEnvAsDuration("PRESENCE_SCAN_INTERVAL", 30*time.Second),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET environment variable is required")
	}

	return cfg, nil
}

// getEnv возвращает значение переменной окружения или значение по умолчанию
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt возвращает значение переменной окружения как int или значение по умолчанию
func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsFloat возвращает значение переменной окружения как float64 или значение по умолчанию
func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value, exists := os.LookupEnv(key); exists {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

// getEnvAsDuration возвращает значение переменной окружения как time.Duration или значение по умолчанию
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if durationValue, err := time.ParseDuration(value); err == nil {
			return durationValue
		}
	}
	return defaultValue
}
