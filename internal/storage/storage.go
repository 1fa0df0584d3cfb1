package storage

import (
	"fmt"
	"os"

	"queuely/internal/config"
	"queuely/internal/models"

	"github.com/go-redis/redis/v8"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connect открывает подключение к Postgres.
// TranslateError нужен, чтобы нарушение уникального индекса (queue_id, name)
// приходило как gorm.ErrDuplicatedKey и разрешало гонку одновременных join.
func Connect(cfg config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("подключение к базе данных: %w", err)
	}
	return db, nil
}

// Migrate создает таблицы и индексы по моделям.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&models.Business{}, &models.Queue{}, &models.QueueUser{})
}

// NewRedisClient создает клиент Redis для ретрансляции живых событий.
func NewRedisClient(cfg config.Config) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
}

// ConnectTesting подключается к тестовой базе (переменные TEST_DB_*).
func ConnectTesting() (*gorm.DB, error) {
	cfg := config.Config{
		DBHost:     config.GetEnv("TEST_DB_HOST", os.Getenv("DB_HOST")),
		DBPort:     config.GetEnv("TEST_DB_PORT", os.Getenv("DB_PORT")),
		DBUser:     config.GetEnv("TEST_DB_USER", os.Getenv("DB_USER")),
		DBPassword: config.GetEnv("TEST_DB_PASSWORD", os.Getenv("DB_PASSWORD")),
		DBName:     config.GetEnv("TEST_DB_NAME", os.Getenv("DB_NAME")),
	}
	return Connect(cfg)
}
