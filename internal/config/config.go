package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config собирает настройки сервиса из переменных окружения.
// Передается компонентам явно при сборке приложения.
type Config struct {
	Addr string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	AllowedOrigins []string

	// Сколько храним участников, покинувших статус waiting.
	RetiredTTL time.Duration
	// Через сколько закрываем активную очередь без ожидающих.
	QueueTTL time.Duration
}

func Load() Config {
	return Config{
		Addr:           ":" + GetEnv("PORT", "8080"),
		DBHost:         GetEnv("DB_HOST", "localhost"),
		DBPort:         GetEnv("DB_PORT", "5432"),
		DBUser:         GetEnv("DB_USER", "postgres"),
		DBPassword:     GetEnv("DB_PASSWORD", ""),
		DBName:         GetEnv("DB_NAME", "queuely"),
		RedisAddr:      GetEnv("REDIS_ADDR", ""),
		RedisPassword:  GetEnv("REDIS_PASSWORD", ""),
		RedisDB:        getEnvInt("REDIS_DB", 0),
		AllowedOrigins: strings.Split(GetEnv("ALLOWED_ORIGINS", "http://localhost:5173"), ","),
		RetiredTTL:     getEnvDuration("RETIRED_TTL", 30*24*time.Hour),
		QueueTTL:       getEnvDuration("QUEUE_TTL", 7*24*time.Hour),
	}
}

// DSN собирает строку подключения к Postgres.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName)
}

func GetEnv(key, defaultVal string) string {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func getEnvInt(key string, defaultVal int) int {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}
	return n
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	d, err := time.ParseDuration(val)
	if err != nil {
		return defaultVal
	}
	return d
}
