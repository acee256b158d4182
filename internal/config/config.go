package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	StoreDynamoDB = "dynamodb"
	StorePostgres = "postgres"
	StoreMemory   = "memory"
)

type Config struct {
	AppEnv      string
	Port        string
	StoreDriver string
	DatabaseDSN string
	AdminGroup  string
	JWTSecret   string
	AWS         AWSConfig
	Tables      TableConfig
	Redis       RedisConfig
}

type AWSConfig struct {
	Region           string
	AccessKeyID      string
	SecretAccessKey  string
	DynamoDBEndpoint string
	UserPoolID       string
}

type TableConfig struct {
	Questions string
	Quizzes   string
	Results   string
}

type RedisConfig struct {
	Addr         string
	Password     string
	DB           int
	QuizCacheTTL time.Duration
}

// Load reads configuration from the environment, after an optional .env file.
func Load() (*Config, error) {
	_ = godotenv.Load()

	redisDB, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
	}
	cacheTTL, err := time.ParseDuration(getEnv("QUIZ_CACHE_TTL", "10m"))
	if err != nil {
		return nil, fmt.Errorf("invalid QUIZ_CACHE_TTL: %w", err)
	}

	cfg := &Config{
		AppEnv:      getEnv("APP_ENV", "production"),
		Port:        getEnv("PORT", "8080"),
		StoreDriver: getEnv("STORE_DRIVER", StoreDynamoDB),
		DatabaseDSN: os.Getenv("DATABASE_DSN"),
		AdminGroup:  getEnv("ADMIN_GROUP", "Admins"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		AWS: AWSConfig{
			Region:           getEnv("AWS_REGION", "us-east-1"),
			AccessKeyID:      os.Getenv("AWS_ACCESS_KEY_ID"),
			SecretAccessKey:  os.Getenv("AWS_SECRET_ACCESS_KEY"),
			DynamoDBEndpoint: os.Getenv("DYNAMODB_ENDPOINT"),
			UserPoolID:       os.Getenv("USER_POOL_ID"),
		},
		Tables: TableConfig{
			Questions: getEnv("QUESTION_TABLE", "QuestionBank"),
			Quizzes:   getEnv("QUIZ_TABLE", "Quizzes"),
			Results:   getEnv("RESULT_TABLE", "Results"),
		},
		Redis: RedisConfig{
			Addr:         os.Getenv("REDIS_ADDR"),
			Password:     os.Getenv("REDIS_PASSWORD"),
			DB:           redisDB,
			QuizCacheTTL: cacheTTL,
		},
	}

	switch cfg.StoreDriver {
	case StoreDynamoDB, StorePostgres, StoreMemory:
	default:
		return nil, fmt.Errorf("unknown STORE_DRIVER %q", cfg.StoreDriver)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
