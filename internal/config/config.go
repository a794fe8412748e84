// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package config

// Config holds all application configuration loaded from environment variables.
// This struct uses github.com/caarlos0/env for automatic environment variable parsing.
//
// Use struct tags to define:
// - `env:"VAR_NAME"` - the environment variable name
// - `env:",required"` - make it required
// - `envDefault:"value"` - set a default value
//
// After adding fields here, update loader.go Validate() if custom
// validation is needed.
type Config struct {
	// ============================================================
	// Server configuration
	// ============================================================
	HTTPPort       int      `env:"HTTP_PORT" envDefault:"8000"`
	GRPCPort       int      `env:"GRPC_PORT" envDefault:"6565"`
	MetricsPort    int      `env:"METRICS_PORT" envDefault:"8080"`
	Environment    string   `env:"ENVIRONMENT" envDefault:"dev"`
	ServiceName    string   `env:"SERVICE_NAME" envDefault:"SantaSkill"`
	LogLevel       string   `env:"LOG_LEVEL" envDefault:"info"`
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:","`

	// ============================================================
	// Skill configuration
	// ============================================================
	// SkillID restricts webhook calls to one application id. Empty accepts any.
	SkillID    string `env:"SKILL_ID"`
	ConfigPath string `env:"CONFIG_PATH" envDefault:"config/skill.yaml"`
	// ContentDir overrides the embedded content fixtures.
	ContentDir string `env:"CONTENT_DIR"`
	Timezone   string `env:"TIMEZONE" envDefault:"Europe/Madrid"`
	// RandomSeed of 0 seeds from the clock.
	RandomSeed int64 `env:"RANDOM_SEED" envDefault:"0"`

	// ============================================================
	// Document store configuration
	// ============================================================
	StoreBackend     string `env:"STORE_BACKEND" envDefault:"redis"`
	DocumentTTLHours int    `env:"DOCUMENT_TTL_HOURS" envDefault:"0"`

	RedisHost         string `env:"REDIS_HOST" envDefault:"localhost"`
	RedisPort         string `env:"REDIS_PORT" envDefault:"6379"`
	RedisPassword     string `env:"REDIS_PASSWORD"`
	RedisMaxRetries   int    `env:"REDIS_MAX_RETRIES" envDefault:"5"`
	RedisRetryDelayMs int    `env:"REDIS_RETRY_DELAY_MS" envDefault:"1000"`

	S3Bucket    string `env:"S3_BUCKET"`
	S3Region    string `env:"S3_REGION" envDefault:"us-east-1"`
	S3Endpoint  string `env:"S3_ENDPOINT"`
	S3AccessKey string `env:"S3_ACCESS_KEY"`
	S3SecretKey string `env:"S3_SECRET_KEY"`
	S3Prefix    string `env:"S3_PREFIX" envDefault:"santa-skill/"`

	// ============================================================
	// Telemetry configuration
	// ============================================================
	OtelEnabled bool `env:"OTEL_ENABLED" envDefault:"true"`
}

// Store backends.
const (
	StoreBackendRedis = "redis"
	StoreBackendS3    = "s3"
)
