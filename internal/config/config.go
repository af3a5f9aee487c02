package config

import (
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig
	Mongo     MongoConfig
	CORS      CORSConfig
	RateLimit RateLimitConfig
	Log       LogConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// MongoConfig holds MongoDB connection settings.
type MongoConfig struct {
	URI                string `mapstructure:"uri"`
	Database           string `mapstructure:"database"`
	MaxPoolSize        int    `mapstructure:"max_pool_size"`
	ConnectTimeoutSecs int    `mapstructure:"connect_timeout_secs"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// RateLimitConfig holds per-client request throttling settings.
type RateLimitConfig struct {
	RequestsPerMinute int `mapstructure:"requests_per_minute"`
	Burst             int `mapstructure:"burst"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration from environment variables with the GSTREX_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("GSTREX")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":5000")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "30s")
	v.SetDefault("server.environment", "development")

	// Mongo defaults
	v.SetDefault("mongo.uri", "mongodb://localhost:27017")
	v.SetDefault("mongo.database", "mongodb-explorer")
	v.SetDefault("mongo.max_pool_size", 10)
	v.SetDefault("mongo.connect_timeout_secs", 10)

	// CORS defaults for local development
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000")

	// Rate limit defaults
	v.SetDefault("rate_limit.requests_per_minute", 100)
	v.SetDefault("rate_limit.burst", 25)

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":                    "GSTREX_SERVER_PORT",
		"server.read_timeout":            "GSTREX_SERVER_READ_TIMEOUT",
		"server.write_timeout":           "GSTREX_SERVER_WRITE_TIMEOUT",
		"server.environment":             "GSTREX_SERVER_ENVIRONMENT",
		"mongo.uri":                      "GSTREX_MONGO_URI",
		"mongo.database":                 "GSTREX_MONGO_DATABASE",
		"mongo.max_pool_size":            "GSTREX_MONGO_MAX_POOL_SIZE",
		"mongo.connect_timeout_secs":     "GSTREX_MONGO_CONNECT_TIMEOUT_SECS",
		"cors.allowed_origins":           "GSTREX_CORS_ALLOWED_ORIGINS",
		"rate_limit.requests_per_minute": "GSTREX_RATE_LIMIT_REQUESTS_PER_MINUTE",
		"rate_limit.burst":               "GSTREX_RATE_LIMIT_BURST",
		"log.level":                      "GSTREX_LOG_LEVEL",
		"log.format":                     "GSTREX_LOG_FORMAT",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it unless GSTREX_SERVER_PORT is set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("GSTREX_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.Mongo = MongoConfig{
		URI:                v.GetString("mongo.uri"),
		Database:           v.GetString("mongo.database"),
		MaxPoolSize:        v.GetInt("mongo.max_pool_size"),
		ConnectTimeoutSecs: v.GetInt("mongo.connect_timeout_secs"),
	}

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

	cfg.RateLimit = RateLimitConfig{
		RequestsPerMinute: v.GetInt("rate_limit.requests_per_minute"),
		Burst:             v.GetInt("rate_limit.burst"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}

	return cfg, nil
}
