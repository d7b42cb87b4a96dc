package config

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	JWT       JWTConfig
	Storage   StorageConfig
	Tracing   TracingConfig `mapstructure:"tracing"`
	Redis     RedisConfig
	CORS      CORSConfig      `mapstructure:"cors"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
	Scoring   ScoringConfig   `mapstructure:"scoring"`
	Exam      ExamConfig      `mapstructure:"exam"`

	// Guards the hot-reloadable sections; everything else is
	// read-only after startup.
	mu sync.RWMutex
}

// ScoringSettings returns a snapshot of the scoring section, safe
// against a concurrent hot reload.
func (c *Config) ScoringSettings() ScoringConfig {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.Scoring
}

// ExamSettings returns a snapshot of the exam section.
func (c *Config) ExamSettings() ExamConfig {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.Exam
}

// ApplyReload swaps in the hot-reloadable sections from a freshly
// loaded config.
func (c *Config) ApplyReload(src *Config) {
	c.mu.Lock()
	c.Scoring = src.Scoring
	c.Exam = src.Exam
	c.mu.Unlock()
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type RateLimitConfig struct {
	MaxRequests   int `mapstructure:"max_requests"`
	WindowMinutes int `mapstructure:"window_minutes"`
}

type ServerConfig struct {
	Port string
	Mode string
}

type DatabaseConfig struct {
	Host      string
	Port      int
	User      string
	Password  string
	DBName    string
	Charset   string
	ParseTime bool
}

type JWTConfig struct {
	Secret     string        `mapstructure:"secret"`
	ExpireTime time.Duration `mapstructure:"expire_hours"`
}

type StorageConfig struct {
	Type          string `mapstructure:"type"`
	LocalPath     string `mapstructure:"local_path"`
	MinioEndpoint string `mapstructure:"minio_endpoint"`
	MinioAccessID string `mapstructure:"minio_access_key"`
	MinioSecret   string `mapstructure:"minio_secret_key"`
	MinioBucket   string `mapstructure:"minio_bucket"`
	OSSEndpoint   string `mapstructure:"oss_endpoint"`
	OSSAccessKey  string `mapstructure:"oss_access_key"`
	OSSSecretKey  string `mapstructure:"oss_secret_key"`
	OSSBucket     string `mapstructure:"oss_bucket"`
}

type TracingConfig struct {
	Enabled           bool   `mapstructure:"enabled"`
	CollectorEndpoint string `mapstructure:"collector_endpoint"`
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// ScoringConfig holds the pass/consider thresholds and the written vs
// interview weighting used for every final-score computation.
type ScoringConfig struct {
	Scheme            string  `mapstructure:"scheme"`
	PassThreshold     float64 `mapstructure:"pass_threshold"`
	ConsiderThreshold float64 `mapstructure:"consider_threshold"`
	WrittenWeight     float64 `mapstructure:"written_weight"`
	InterviewWeight   float64 `mapstructure:"interview_weight"`
}

type ExamConfig struct {
	DurationMinutes int `mapstructure:"duration_minutes"`
}

func LoadConfig(path string) (*Config, error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	viper.SetEnvPrefix("UJIKOM")
	viper.AutomaticEnv()

	// Database
	viper.BindEnv("database.host", "DATABASE_HOST")
	viper.BindEnv("database.port", "DATABASE_PORT")
	viper.BindEnv("database.user", "DATABASE_USER")
	viper.BindEnv("database.password", "DATABASE_PASSWORD")
	viper.BindEnv("database.dbname", "DATABASE_NAME")

	// JWT
	viper.BindEnv("jwt.secret", "JWT_SECRET")

	// Redis
	viper.BindEnv("redis.host", "REDIS_HOST")
	viper.BindEnv("redis.port", "REDIS_PORT")
	viper.BindEnv("redis.password", "REDIS_PASSWORD")

	// Server
	viper.BindEnv("server.mode", "SERVER_MODE")

	// Storage
	viper.BindEnv("storage.type", "STORAGE_TYPE")
	viper.BindEnv("storage.oss_endpoint", "OSS_ENDPOINT")
	viper.BindEnv("storage.oss_access_key", "OSS_ACCESS_KEY")
	viper.BindEnv("storage.oss_secret_key", "OSS_SECRET_KEY")
	viper.BindEnv("storage.oss_bucket", "OSS_BUCKET")
	viper.BindEnv("storage.minio_endpoint", "MINIO_ENDPOINT")
	viper.BindEnv("storage.minio_access_key", "MINIO_ACCESS_KEY")
	viper.BindEnv("storage.minio_secret_key", "MINIO_SECRET_KEY")
	viper.BindEnv("storage.minio_bucket", "MINIO_BUCKET")

	// Tracing
	viper.BindEnv("tracing.enabled", "TRACING_ENABLED")
	viper.BindEnv("tracing.collector_endpoint", "TRACING_COLLECTOR_ENDPOINT")

	// Scoring
	viper.BindEnv("scoring.scheme", "SCORING_SCHEME")

	viper.SetDefault("scoring.scheme", "standard")
	viper.SetDefault("scoring.pass_threshold", 70)
	viper.SetDefault("scoring.consider_threshold", 68)
	viper.SetDefault("scoring.written_weight", 0.25)
	viper.SetDefault("scoring.interview_weight", 0.75)
	viper.SetDefault("exam.duration_minutes", 90)

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	cfg.JWT.ExpireTime = cfg.JWT.ExpireTime * time.Hour

	if cfg.Server.Mode == "release" && len(cfg.JWT.Secret) < 32 {
		return nil, fmt.Errorf("JWT secret is too short (%d chars), must be at least 32 characters in release mode", len(cfg.JWT.Secret))
	}

	if w := cfg.Scoring.WrittenWeight + cfg.Scoring.InterviewWeight; w < 0.999 || w > 1.001 {
		return nil, fmt.Errorf("scoring weights must sum to 1, got %.3f", w)
	}
	if cfg.Scoring.ConsiderThreshold > cfg.Scoring.PassThreshold {
		return nil, fmt.Errorf("consider threshold (%.0f) cannot exceed pass threshold (%.0f)",
			cfg.Scoring.ConsiderThreshold, cfg.Scoring.PassThreshold)
	}

	if cfg.Storage.Type == "local" {
		if _, err := os.Stat(cfg.Storage.LocalPath); os.IsNotExist(err) {
			os.MkdirAll(cfg.Storage.LocalPath, 0755)
		}
	}

	return &cfg, nil
}
