package ratelimit

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// EndpointConfig represents rate limiting configuration for a specific endpoint.
type EndpointConfig struct {
	Path   string        // Endpoint path pattern (supports prefix matching)
	Method string        // HTTP method (GET, POST, etc.)
	Limit  int           // Maximum requests per window
	Window time.Duration // Time window
	Burst  int           // Burst capacity (defaults to Limit if 0)
}

// Config holds rate limiting configuration.
// A DefaultLimit of zero leaves endpoints without their own entry unlimited.
type Config struct {
	Enabled         bool
	DefaultLimit    int
	DefaultWindow   time.Duration
	CleanupInterval time.Duration
	Whitelist       map[string]bool
	Blacklist       map[string]bool
	EndpointConfigs []EndpointConfig
}

// NewConfig returns a configuration that allows perMinute requests per client
// on each model-backed endpoint and leaves the rest unlimited. A perMinute of
// zero or less disables limiting.
func NewConfig(perMinute int) *Config {
	return &Config{
		Enabled:         perMinute > 0,
		DefaultWindow:   time.Minute,
		CleanupInterval: 5 * time.Minute,
		Whitelist:       make(map[string]bool),
		Blacklist:       make(map[string]bool),
		EndpointConfigs: ModelEndpointConfigs(perMinute),
	}
}

// LoadConfig builds on NewConfig with overrides from the environment:
// RATE_LIMIT_ENABLED, RATE_LIMIT_CLEANUP_INTERVAL, RATE_LIMIT_WHITELIST and
// RATE_LIMIT_BLACKLIST (comma-separated client IPs).
func LoadConfig(perMinute int) *Config {
	cfg := NewConfig(perMinute)
	cfg.Enabled = getEnvBool("RATE_LIMIT_ENABLED", cfg.Enabled)
	cfg.CleanupInterval = getEnvDuration("RATE_LIMIT_CLEANUP_INTERVAL", cfg.CleanupInterval)
	cfg.Whitelist = parseIPList(os.Getenv("RATE_LIMIT_WHITELIST"))
	cfg.Blacklist = parseIPList(os.Getenv("RATE_LIMIT_BLACKLIST"))
	return cfg
}

// ModelEndpointConfigs returns limits for the endpoints that call the model.
func ModelEndpointConfigs(perMinute int) []EndpointConfig {
	return []EndpointConfig{
		{Path: "/jobs/search", Method: "POST", Limit: perMinute, Window: time.Minute},
		{Path: "/insights", Method: "POST", Limit: perMinute, Window: time.Minute},
		{Path: "/search/stream", Method: "POST", Limit: perMinute, Window: time.Minute},
	}
}

// getEnvBool gets an environment variable as a boolean with a default value.
func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// getEnvDuration gets an environment variable as a duration with a default value.
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// parseIPList parses a comma-separated list of IP addresses into a set.
func parseIPList(list string) map[string]bool {
	result := make(map[string]bool)
	for _, ip := range strings.Split(list, ",") {
		if ip = strings.TrimSpace(ip); ip != "" {
			result[ip] = true
		}
	}
	return result
}
