// Package config provides configuration loading and validation for the CLI and server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/jonathan/healthjobfinder/internal/llm"
)

// Filter store backends.
const (
	StoreFile     = "file"
	StoreRedis    = "redis"
	StorePostgres = "postgres"
)

// Log output formats.
const (
	LogFormatConsole = "console"
	LogFormatJSON    = "json"
)

// DefaultRateLimit is the number of model-backed requests a client may make per minute.
const DefaultRateLimit = 10

// DefaultPort is the HTTP port used by serve.
const DefaultPort = 8080

// Config represents settings loaded from a JSON file and the environment.
// All fields are optional; missing values use defaults.
type Config struct {
	// Model
	APIKey string `json:"api_key,omitempty"` // Gemini API key
	Model  string `json:"model,omitempty"`   // Gemini model name

	// Saved filters
	FilterStore string `json:"filter_store,omitempty"` // file, redis or postgres
	FilterFile  string `json:"filter_file,omitempty"`  // Path used by the file store
	RedisURL    string `json:"redis_url,omitempty"`
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL

	// Logging
	LogLevel  string `json:"log_level,omitempty"`
	LogFormat string `json:"log_format,omitempty"` // console or json

	// Server
	Port int `json:"port,omitempty"`
	// RateLimit is requests per minute on model-backed endpoints. Nil means
	// unset; an explicit 0 turns limiting off.
	RateLimit *int `json:"rate_limit,omitempty"`
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		Model:       llm.DefaultModel,
		FilterStore: StoreFile,
		FilterFile:  defaultFilterFile(),
		LogLevel:    "info",
		LogFormat:   LogFormatConsole,
		Port:        DefaultPort,
		RateLimit:   intPtr(DefaultRateLimit),
	}
}

func intPtr(n int) *int { return &n }

// RateLimitPerMinute returns the effective rate limit, DefaultRateLimit when unset.
func (c *Config) RateLimitPerMinute() int {
	if c.RateLimit == nil {
		return DefaultRateLimit
	}
	return *c.RateLimit
}

func defaultFilterFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".healthjobfinder", "filters.json")
	}
	return filepath.Join(home, ".healthjobfinder", "filters.json")
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// FromEnv reads configuration from environment variables through getenv.
// API_KEY is accepted as a fallback for GEMINI_API_KEY.
func FromEnv(getenv func(string) string) (Config, error) {
	cfg := Config{
		APIKey:      getenv("GEMINI_API_KEY"),
		Model:       getenv("HJF_MODEL"),
		FilterStore: strings.ToLower(getenv("HJF_FILTER_STORE")),
		FilterFile:  getenv("HJF_FILTER_FILE"),
		RedisURL:    getenv("REDIS_URL"),
		DatabaseURL: getenv("DATABASE_URL"),
		LogLevel:    getenv("HJF_LOG_LEVEL"),
		LogFormat:   strings.ToLower(getenv("HJF_LOG_FORMAT")),
	}
	if cfg.APIKey == "" {
		cfg.APIKey = getenv("API_KEY")
	}

	if v := getenv("HJF_RATE_LIMIT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("config error: HJF_RATE_LIMIT must be an integer: %w", err)
		}
		cfg.RateLimit = &n
	}
	if v := getenv("PORT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("config error: PORT must be an integer: %w", err)
		}
		cfg.Port = n
	}

	return cfg, nil
}

// Load builds the effective configuration: environment over the optional
// config file over built-in defaults.
func Load(path string) (Config, error) {
	env, err := FromEnv(os.Getenv)
	if err != nil {
		return Config{}, err
	}

	base := Defaults()
	if path != "" {
		file, err := LoadConfig(path)
		if err != nil {
			return Config{}, err
		}
		base = file.MergeWithDefaults(base)
	}

	cfg := env.MergeWithDefaults(base)
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that the configuration has valid values.
// The API key is not checked here since commands that only touch saved
// filters do not need it.
func (c *Config) Validate() error {
	switch c.FilterStore {
	case "", StoreFile:
	case StoreRedis:
		if c.RedisURL == "" {
			return fmt.Errorf("config error: 'redis_url' is required when filter_store is %q", StoreRedis)
		}
	case StorePostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("config error: 'database_url' is required when filter_store is %q", StorePostgres)
		}
	default:
		return fmt.Errorf("config error: unknown filter_store %q", c.FilterStore)
	}

	switch c.LogFormat {
	case "", LogFormatConsole, LogFormatJSON:
	default:
		return fmt.Errorf("config error: unknown log_format %q", c.LogFormat)
	}

	if c.RateLimit != nil && *c.RateLimit < 0 {
		return fmt.Errorf("config error: 'rate_limit' must be non-negative")
	}
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}

	return nil
}

// RequireAPIKey reports an error when no Gemini API key is configured.
func (c *Config) RequireAPIKey() error {
	if strings.TrimSpace(c.APIKey) == "" {
		return fmt.Errorf("config error: Gemini API key is required (set GEMINI_API_KEY)")
	}
	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.Model == "" {
		result.Model = defaults.Model
	}
	if result.FilterStore == "" {
		result.FilterStore = defaults.FilterStore
	}
	if result.FilterFile == "" {
		result.FilterFile = defaults.FilterFile
	}
	if result.RedisURL == "" {
		result.RedisURL = defaults.RedisURL
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.LogLevel == "" {
		result.LogLevel = defaults.LogLevel
	}
	if result.LogFormat == "" {
		result.LogFormat = defaults.LogFormat
	}

	// Int fields: use default if zero
	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.RateLimit == nil {
		result.RateLimit = defaults.RateLimit
	}

	return result
}

// LLMConfig returns the model configuration with the configured model applied.
func (c *Config) LLMConfig() *llm.Config {
	cfg := llm.DefaultConfig()
	if c.Model != "" {
		cfg = cfg.WithModel(c.Model)
	}
	return cfg
}
