package config

import (
	"slices"
	"time"
)

// Generation provider names.
const (
	ProviderHuggingFace = "huggingface"
	ProviderAnthropic   = "anthropic"
	ProviderLocal       = "local"
)

// DefaultHuggingFaceURL is the env-default of generation.base_url.
const DefaultHuggingFaceURL = "https://api-inference.huggingface.co/models/microsoft/DialoGPT-medium"

// Config is the root application configuration.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Database   DatabaseConfig   `yaml:"database"`
	Log        LogConfig        `yaml:"log"`
	CORS       CORSConfig       `yaml:"cors"`
	RateLimit  RateLimitConfig  `yaml:"rate_limit"`
	Generation GenerationConfig `yaml:"generation"`
	Coaching   CoachingConfig   `yaml:"coaching"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Content-Type,X-Request-Id"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"false"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"60s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	AutoMigrate     bool          `yaml:"auto_migrate"       env:"DATABASE_AUTO_MIGRATE"       env-default:"false"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// RateLimitConfig limits the endpoints that trigger text generation.
type RateLimitConfig struct {
	GenerationPerMinute int           `yaml:"generation_per_minute" env:"RATE_LIMIT_GENERATION_PER_MINUTE" env-default:"60"`
	CleanupInterval     time.Duration `yaml:"cleanup_interval"      env:"RATE_LIMIT_CLEANUP_INTERVAL"      env-default:"5m"`
}

// GenerationConfig configures the external text-generation capability and
// the quality gate applied to its output.
type GenerationConfig struct {
	Provider          string        `yaml:"provider"            env:"GENERATION_PROVIDER"            env-default:"huggingface"`
	BaseURL           string        `yaml:"base_url"            env:"GENERATION_BASE_URL"            env-default:"https://api-inference.huggingface.co/models/microsoft/DialoGPT-medium"`
	APIKey            string        `yaml:"api_key"             env:"GENERATION_API_KEY"`
	Model             string        `yaml:"model"               env:"GENERATION_MODEL"               env-default:"claude-haiku-4-5"`
	MaxLength         int           `yaml:"max_length"          env:"GENERATION_MAX_LENGTH"          env-default:"100"`
	Temperature       float64       `yaml:"temperature"         env:"GENERATION_TEMPERATURE"         env-default:"0.7"`
	Timeout           time.Duration `yaml:"timeout"             env:"GENERATION_TIMEOUT"             env-default:"15s"`
	MinResponseLength int           `yaml:"min_response_length" env:"GENERATION_MIN_RESPONSE_LENGTH" env-default:"5"`
	ExternalFirst     bool          `yaml:"external_first"      env:"GENERATION_EXTERNAL_FIRST"      env-default:"false"`
}

// CoachingConfig holds the history windows used to build coaching context.
type CoachingConfig struct {
	RecentWindow     int `yaml:"recent_window"     env:"COACHING_RECENT_WINDOW"     env-default:"7"`
	ReminderWindow   int `yaml:"reminder_window"   env:"COACHING_REMINDER_WINDOW"   env-default:"3"`
	SentimentWindow  int `yaml:"sentiment_window"  env:"COACHING_SENTIMENT_WINDOW"  env-default:"10"`
	BatchConcurrency int `yaml:"batch_concurrency" env:"COACHING_BATCH_CONCURRENCY" env-default:"4"`
}

// KnownProviders lists the accepted values of generation.provider.
func KnownProviders() []string {
	return []string{ProviderHuggingFace, ProviderAnthropic, ProviderLocal}
}

// IsExternal reports whether the configured provider calls a remote service.
func (g GenerationConfig) IsExternal() bool {
	return g.Provider != ProviderLocal
}

// IsKnownProvider reports whether the configured provider is supported.
func (g GenerationConfig) IsKnownProvider() bool {
	return slices.Contains(KnownProviders(), g.Provider)
}
