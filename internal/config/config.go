package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server  ServerConfig
	DB      DBConfig
	Log     LogConfig
	CORS    CORSConfig
	Oracle  OracleConfig
	Fetcher FetcherConfig
	History HistoryConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// DBConfig holds PostgreSQL connection settings.
type DBConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
	MaxOpen  int    `mapstructure:"max_open"`
	MaxIdle  int    `mapstructure:"max_idle"`
}

// DSN returns the PostgreSQL connection string.
func (d *DBConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode,
	)
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// OracleProviderConfig holds settings for a single suggestion provider.
type OracleProviderConfig struct {
	Provider     string `mapstructure:"provider"`
	APIKey       string `mapstructure:"api_key"`
	DefaultModel string `mapstructure:"default_model"`
	MaxRetries   int    `mapstructure:"max_retries"`
	TimeoutSecs  int    `mapstructure:"timeout_secs"`
}

// OracleConfig holds suggestion oracle settings with primary/secondary
// provider support.
type OracleConfig struct {
	Primary   OracleProviderConfig `mapstructure:"primary"`
	Secondary OracleProviderConfig `mapstructure:"secondary"`
}

// SecondaryConfig returns the secondary provider config, or nil if not configured.
func (o *OracleConfig) SecondaryConfig() *OracleProviderConfig {
	if o.Secondary.Provider != "" {
		return &o.Secondary
	}
	return nil
}

// FetcherConfig holds page fetcher settings.
type FetcherConfig struct {
	TimeoutSecs int    `mapstructure:"timeout_secs"`
	MaxBodyMB   int64  `mapstructure:"max_body_mb"`
	UserAgent   string `mapstructure:"user_agent"`
}

// HistoryConfig holds recent-activity settings.
type HistoryConfig struct {
	RecentLimit int `mapstructure:"recent_limit"`
}

// defaultUserAgent mimics a browser to get past simple bot blockers.
const defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

// Load reads configuration from environment variables with the HARVESTER_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("HARVESTER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "30s")
	v.SetDefault("server.environment", "development")

	// DB defaults
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.user", "harvester")
	v.SetDefault("db.password", "harvester_secret")
	v.SetDefault("db.name", "harvester_db")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_open", 25)
	v.SetDefault("db.max_idle", 10)

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000")

	// Oracle defaults
	v.SetDefault("oracle.primary.provider", "gemini")
	v.SetDefault("oracle.primary.api_key", "")
	v.SetDefault("oracle.primary.default_model", "gemini-1.5-flash")
	v.SetDefault("oracle.primary.max_retries", 2)
	v.SetDefault("oracle.primary.timeout_secs", 120)
	v.SetDefault("oracle.secondary.provider", "")
	v.SetDefault("oracle.secondary.api_key", "")
	v.SetDefault("oracle.secondary.default_model", "")
	v.SetDefault("oracle.secondary.max_retries", 2)
	v.SetDefault("oracle.secondary.timeout_secs", 120)

	// Fetcher defaults
	v.SetDefault("fetcher.timeout_secs", 30)
	v.SetDefault("fetcher.max_body_mb", 10)
	v.SetDefault("fetcher.user_agent", defaultUserAgent)

	// History defaults
	v.SetDefault("history.recent_limit", 5)

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":                    "HARVESTER_SERVER_PORT",
		"server.read_timeout":            "HARVESTER_SERVER_READ_TIMEOUT",
		"server.write_timeout":           "HARVESTER_SERVER_WRITE_TIMEOUT",
		"server.environment":             "HARVESTER_SERVER_ENVIRONMENT",
		"db.host":                        "HARVESTER_DB_HOST",
		"db.port":                        "HARVESTER_DB_PORT",
		"db.user":                        "HARVESTER_DB_USER",
		"db.password":                    "HARVESTER_DB_PASSWORD",
		"db.name":                        "HARVESTER_DB_NAME",
		"db.sslmode":                     "HARVESTER_DB_SSLMODE",
		"db.max_open":                    "HARVESTER_DB_MAX_OPEN",
		"db.max_idle":                    "HARVESTER_DB_MAX_IDLE",
		"log.level":                      "HARVESTER_LOG_LEVEL",
		"log.format":                     "HARVESTER_LOG_FORMAT",
		"cors.allowed_origins":           "HARVESTER_CORS_ALLOWED_ORIGINS",
		"oracle.primary.provider":        "HARVESTER_ORACLE_PRIMARY_PROVIDER",
		"oracle.primary.api_key":         "HARVESTER_ORACLE_PRIMARY_API_KEY",
		"oracle.primary.default_model":   "HARVESTER_ORACLE_PRIMARY_DEFAULT_MODEL",
		"oracle.primary.max_retries":     "HARVESTER_ORACLE_PRIMARY_MAX_RETRIES",
		"oracle.primary.timeout_secs":    "HARVESTER_ORACLE_PRIMARY_TIMEOUT_SECS",
		"oracle.secondary.provider":      "HARVESTER_ORACLE_SECONDARY_PROVIDER",
		"oracle.secondary.api_key":       "HARVESTER_ORACLE_SECONDARY_API_KEY",
		"oracle.secondary.default_model": "HARVESTER_ORACLE_SECONDARY_DEFAULT_MODEL",
		"oracle.secondary.max_retries":   "HARVESTER_ORACLE_SECONDARY_MAX_RETRIES",
		"oracle.secondary.timeout_secs":  "HARVESTER_ORACLE_SECONDARY_TIMEOUT_SECS",
		"fetcher.timeout_secs":           "HARVESTER_FETCHER_TIMEOUT_SECS",
		"fetcher.max_body_mb":            "HARVESTER_FETCHER_MAX_BODY_MB",
		"fetcher.user_agent":             "HARVESTER_FETCHER_USER_AGENT",
		"history.recent_limit":           "HARVESTER_HISTORY_RECENT_LIMIT",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if HARVESTER_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("HARVESTER_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.DB = DBConfig{
		Host:     v.GetString("db.host"),
		Port:     v.GetInt("db.port"),
		User:     v.GetString("db.user"),
		Password: v.GetString("db.password"),
		Name:     v.GetString("db.name"),
		SSLMode:  v.GetString("db.sslmode"),
		MaxOpen:  v.GetInt("db.max_open"),
		MaxIdle:  v.GetInt("db.max_idle"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}

	// Parse CORS allowed origins from comma-separated string
	var corsOrigins []string
	for _, o := range strings.Split(v.GetString("cors.allowed_origins"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			corsOrigins = append(corsOrigins, o)
		}
	}
	cfg.CORS = CORSConfig{
		AllowedOrigins: corsOrigins,
	}

	cfg.Oracle = OracleConfig{
		Primary: OracleProviderConfig{
			Provider:     v.GetString("oracle.primary.provider"),
			APIKey:       v.GetString("oracle.primary.api_key"),
			DefaultModel: v.GetString("oracle.primary.default_model"),
			MaxRetries:   v.GetInt("oracle.primary.max_retries"),
			TimeoutSecs:  v.GetInt("oracle.primary.timeout_secs"),
		},
		Secondary: OracleProviderConfig{
			Provider:     v.GetString("oracle.secondary.provider"),
			APIKey:       v.GetString("oracle.secondary.api_key"),
			DefaultModel: v.GetString("oracle.secondary.default_model"),
			MaxRetries:   v.GetInt("oracle.secondary.max_retries"),
			TimeoutSecs:  v.GetInt("oracle.secondary.timeout_secs"),
		},
	}

	cfg.Fetcher = FetcherConfig{
		TimeoutSecs: v.GetInt("fetcher.timeout_secs"),
		MaxBodyMB:   v.GetInt64("fetcher.max_body_mb"),
		UserAgent:   v.GetString("fetcher.user_agent"),
	}

	cfg.History = HistoryConfig{
		RecentLimit: v.GetInt("history.recent_limit"),
	}

	return cfg, nil
}
