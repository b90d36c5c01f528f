package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Session storage backends
const (
	BackendMemory = "memory"
	BackendRedis  = "redis"
)

// Config structure represents the application configuration
type Config struct {
	Server struct {
		Port           string `yaml:"port" env:"SERVER_PORT"`
		Mode           string `yaml:"mode" env:"SERVER_MODE"`
		CookieName     string `yaml:"cookie_name" env:"SERVER_COOKIE_NAME"`
		CookieSecure   bool   `yaml:"cookie_secure" env:"SERVER_COOKIE_SECURE"`
		CookieDomain   string `yaml:"cookie_domain" env:"SERVER_COOKIE_DOMAIN"`
		ReadTimeout    string `yaml:"read_timeout" env:"SERVER_READ_TIMEOUT"`
		WriteTimeout   string `yaml:"write_timeout" env:"SERVER_WRITE_TIMEOUT"`
		MaxUploadBytes int64  `yaml:"max_upload_bytes" env:"SERVER_MAX_UPLOAD_BYTES"`
	} `yaml:"server"`

	API struct {
		BaseURL   string `yaml:"base_url" env:"OJT_API_BASE_URL"`
		Timeout   string `yaml:"timeout" env:"OJT_API_TIMEOUT"`
		UserAgent string `yaml:"user_agent" env:"OJT_API_USER_AGENT"`
	} `yaml:"api"`

	Session struct {
		TokenKey  string `yaml:"token_key" env:"SESSION_TOKEN_KEY"`
		LoginPath string `yaml:"login_path" env:"SESSION_LOGIN_PATH"`
		Backend   string `yaml:"backend" env:"SESSION_BACKEND"`
		TTL       string `yaml:"ttl" env:"SESSION_TTL"`
		Redis     struct {
			Addr     string `yaml:"addr" env:"REDIS_ADDR"`
			Password string `yaml:"password" env:"REDIS_PASSWORD"`
			DB       int    `yaml:"db" env:"REDIS_DB"`
			Prefix   string `yaml:"prefix" env:"REDIS_PREFIX"`
		} `yaml:"redis"`
	} `yaml:"session"`

	Logging struct {
		Level  string `yaml:"level" env:"LOG_LEVEL"`
		Format string `yaml:"format" env:"LOG_FORMAT"`
	} `yaml:"logging"`
}

// LoadConfig loads configuration from a file, an optional .env file and environment variables.
// Later sources win: defaults, then YAML, then environment.
func LoadConfig(configPath string) (*Config, error) {
	// Load default config with sane defaults
	config := &Config{}
	setDefaults(config)

	// Try to read config file if it exists
	if _, err := os.Stat(configPath); err == nil {
		file, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		if err := yaml.Unmarshal(file, config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	// Override with environment variables
	if err := loadFromEnv(config); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	// Validate config
	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// setDefaults sets default values for the configuration
func setDefaults(config *Config) {
	// Server defaults
	config.Server.Port = "8080"
	config.Server.Mode = "development"
	config.Server.CookieName = "ojt_sid"
	config.Server.ReadTimeout = "15s"
	config.Server.WriteTimeout = "30s"
	config.Server.MaxUploadBytes = 10 << 20

	// API defaults
	config.API.BaseURL = "http://localhost:5000/api"
	config.API.Timeout = "0s"
	config.API.UserAgent = "ojtportal"

	// Session defaults
	config.Session.TokenKey = "token"
	config.Session.LoginPath = "/login"
	config.Session.Backend = BackendMemory
	config.Session.TTL = "24h"
	config.Session.Redis.Addr = "localhost:6379"
	config.Session.Redis.Prefix = "ojt:sess"

	// Logging defaults
	config.Logging.Level = "info"
	config.Logging.Format = "json"
}

// validateConfig ensures that the configuration is valid
func validateConfig(config *Config) error {
	if config.Server.Port == "" {
		return fmt.Errorf("server port is required")
	}

	if config.API.BaseURL == "" {
		return fmt.Errorf("api base url is required")
	}
	u, err := url.Parse(config.API.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("api base url %q must be an absolute URL", config.API.BaseURL)
	}

	for name, value := range map[string]string{
		"api timeout":          config.API.Timeout,
		"session ttl":          config.Session.TTL,
		"server read timeout":  config.Server.ReadTimeout,
		"server write timeout": config.Server.WriteTimeout,
	} {
		if value == "" {
			continue
		}
		if _, err := time.ParseDuration(value); err != nil {
			return fmt.Errorf("invalid %s format: %w", name, err)
		}
	}

	switch strings.ToLower(config.Session.Backend) {
	case BackendMemory:
	case BackendRedis:
		if config.Session.Redis.Addr == "" {
			return fmt.Errorf("redis address is required for the redis session backend")
		}
	default:
		return fmt.Errorf("unknown session backend %q", config.Session.Backend)
	}

	if config.Session.TokenKey == "" {
		return fmt.Errorf("session token key is required")
	}

	return nil
}

// IsProduction reports whether the server runs in production mode
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Server.Mode, "production") || strings.EqualFold(c.Server.Mode, "release")
}

// APITimeout returns the parsed API timeout, 0 for the transport default
func (c *Config) APITimeout() time.Duration {
	d, _ := time.ParseDuration(c.API.Timeout)
	return d
}

// SessionTTL returns the parsed session lifetime
func (c *Config) SessionTTL() time.Duration {
	d, _ := time.ParseDuration(c.Session.TTL)
	return d
}
