package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Хранилища
const (
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
)

type Config struct {
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	ServerPort string
	Storage    string
	LogLevel   string

	RedisAddr     string
	RedisPassword string
	RedisDB       int
	NotifyChannel string

	JWTSecret   string
	JWTTTLHours int
}

func LoadConfig() (Config, error) {

	err := godotenv.Load()

	return Config{
		DBHost:        getEnv("DB_HOST", "localhost"),
		DBPort:        getEnv("DB_PORT", "5432"),
		DBUser:        getEnv("DB_USER", "postgres"),
		DBPassword:    getEnv("DB_PASSWORD", "password"),
		DBName:        getEnv("DB_NAME", "study_groups"),
		ServerPort:    getEnv("SERVER_PORT", "8080"),
		Storage:       getEnv("STORAGE", StoragePostgres),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		RedisAddr:     getEnv("REDIS_ADDR", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getEnvInt("REDIS_DB", 0),
		NotifyChannel: getEnv("NOTIFY_CHANNEL", "study-groups:events"),
		JWTSecret:     getEnv("JWT_SECRET", "change-me"),
		JWTTTLHours:   getEnvInt("JWT_TTL_HOURS", 24),
	}, err
}

// DSN строка подключения к PostgreSQL
func (c Config) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName,
	)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}
