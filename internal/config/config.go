package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all runtime configuration loaded from environment variables.
type Config struct {
	AppPort string
	AppEnv  string

	AWSRegion      string
	AWSEndpointURL string // empty in prod, set to LocalStack URL in dev
	AWSAccessKeyID string
	AWSSecretKey   string
	DynamoTables   DynamoTables

	SNSTopicARN string // empty disables push notifications

	AnthropicModel string

	NotificationPath string // JSON file holding the bounded notification history

	CheckInterval time.Duration
	Thresholds    Thresholds

	AllowedOrigins []string // CORS allowed origins
}

// DynamoTables holds the DynamoDB table name for each collection.
type DynamoTables struct {
	Products    string
	Sales       string
	ChatHistory string
}

// Thresholds are the classification policy constants. The defaults are fixed
// policy; they are surfaced here so deployments can tune them without a
// rebuild.
type Thresholds struct {
	FastMovingMaxDays  float64 // avg days-to-sell below this is fast
	FastMovingMaxStock int     // ...while stock is below this
	SlowMovingMinDays  float64 // avg days-to-sell above this is slow
	SlowMovingMinStock int     // ...while stock is above this
	ReorderFactor      float64 // reorder = floor(total_sold * factor)
	LowStock           int     // quantity below this triggers a warning
}

// Load reads all configuration from environment variables.
func Load() *Config {
	return &Config{
		AppPort: getEnv("APP_PORT", "3000"),
		AppEnv:  getEnv("APP_ENV", "development"),

		AWSRegion:      getEnv("AWS_REGION", "us-east-1"),
		AWSEndpointURL: getEnv("AWS_ENDPOINT_URL", ""),
		AWSAccessKeyID: getEnv("AWS_ACCESS_KEY_ID", ""),
		AWSSecretKey:   getEnv("AWS_SECRET_ACCESS_KEY", ""),
		DynamoTables: DynamoTables{
			Products:    getEnv("DYNAMO_TABLE_PRODUCTS", "products"),
			Sales:       getEnv("DYNAMO_TABLE_SALES", "sales"),
			ChatHistory: getEnv("DYNAMO_TABLE_CHAT_HISTORY", "chat_history"),
		},

		SNSTopicARN: getEnv("SNS_TOPIC_ARN", ""),

		AnthropicModel: getEnv("ANTHROPIC_MODEL", "claude-sonnet-4-20250514"),

		NotificationPath: getEnv("NOTIFICATION_STORAGE_PATH", "./data/notifications.json"),

		CheckInterval: time.Duration(getEnvInt("CHECK_INTERVAL_SECONDS", 3600)) * time.Second,
		Thresholds: Thresholds{
			FastMovingMaxDays:  getEnvFloat("FAST_MOVING_MAX_DAYS", 7),
			FastMovingMaxStock: getEnvInt("FAST_MOVING_MAX_STOCK", 20),
			SlowMovingMinDays:  getEnvFloat("SLOW_MOVING_MIN_DAYS", 20),
			SlowMovingMinStock: getEnvInt("SLOW_MOVING_MIN_STOCK", 10),
			ReorderFactor:      getEnvFloat("REORDER_FACTOR", 1.5),
			LowStock:           getEnvInt("LOW_STOCK_THRESHOLD", 15),
		},

		AllowedOrigins: strings.Split(getEnv("ALLOWED_ORIGINS", "*"), ","),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}
