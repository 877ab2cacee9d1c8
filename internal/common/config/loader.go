// internal/common/config/loader.go
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

func Load() (*Config, error) {
	loadEnvFile()

	// Base config
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./configs")
	viper.AddConfigPath("../../configs")
	viper.AddConfigPath(".")

	// Enable ENV override like GOOGLE_PLACES_API_KEY
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	env := os.Getenv("APP_ENVIRONMENT")
	if env == "" {
		env = "development"
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading base config: %w", err)
		}
	}

	// Environment overlay, ignored when absent
	envConfigFile := fmt.Sprintf("config.%s", env)
	viper.SetConfigName(envConfigFile)
	_ = viper.MergeInConfig()

	expandEnvVars(viper.GetViper())

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	applyDefaults(&cfg)
	overrideEmptyConfig(&cfg)

	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// Load .env from multiple possible locations so tests and the binary
// both pick it up regardless of working directory.
func loadEnvFile() {
	possiblePaths := []string{
		".env",
		"../.env",
		"../../.env",
		"../../../.env",
	}

	if rootDir := findProjectRoot(); rootDir != "" {
		possiblePaths = append(possiblePaths, filepath.Join(rootDir, ".env"))
	}

	for _, path := range possiblePaths {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Load(path); err == nil {
				fmt.Printf("✅ Loaded .env from: %s\n", path)
				return
			}
		}
	}

	fmt.Printf("⚠️  .env file not found in any location, using system environment variables\n")
}

// Find project root by looking for go.mod
func findProjectRoot() string {
	dir, err := os.Getwd()
	if err != nil {
		return ""
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return ""
}

func expandEnvVars(v *viper.Viper) {
	for _, key := range v.AllKeys() {
		val := v.Get(key)

		if strVal, ok := val.(string); ok {
			if strings.Contains(strVal, "${") || (strings.HasPrefix(strVal, "$") && len(strVal) > 1) {
				expanded := os.ExpandEnv(strVal)
				if expanded != strVal && expanded != "" {
					v.Set(key, expanded)
				}
			}
		}
	}
}

// Direct override if config values are still empty after expansion
func overrideEmptyConfig(cfg *Config) {
	if cfg.Sources == nil {
		cfg.Sources = make(map[string]SourceConfig)
	}

	envKeys := map[string]string{
		"google_places": "GOOGLE_PLACES_API_KEY",
		"yelp":          "YELP_API_KEY",
		"serp":          "SERP_API_KEY",
	}

	for name, envKey := range envKeys {
		src := cfg.Sources[name]
		if src.APIKey == "" {
			if val := os.Getenv(envKey); val != "" {
				src.APIKey = val
				cfg.Sources[name] = src
			}
		}
	}

	if cfg.Redis.Address == "" {
		if val := os.Getenv("REDIS_ADDRESS"); val != "" {
			cfg.Redis.Address = val
		}
	}
	if cfg.Redis.Password == "" {
		if val := os.Getenv("REDIS_PASSWORD"); val != "" {
			cfg.Redis.Password = val
		}
	}
}

// LoadFromFile loads configuration from a specific file path
func LoadFromFile(path string) (*Config, error) {
	loadEnvFile()

	viper.SetConfigFile(path)
	viper.SetConfigType("yaml")

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	expandEnvVars(viper.GetViper())

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	applyDefaults(&cfg)
	overrideEmptyConfig(&cfg)

	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// applyDefaults sets default values for optional configuration fields
func applyDefaults(cfg *Config) {
	if cfg.App.Name == "" {
		cfg.App.Name = "market-intel"
	}

	// Server defaults
	if cfg.Server.Address == "" {
		cfg.Server.Address = ":8080"
	}
	if cfg.Server.ReadTimeout == 0 {
		cfg.Server.ReadTimeout = 10000
	}
	if cfg.Server.WriteTimeout == 0 {
		cfg.Server.WriteTimeout = 60000
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = 10000
	}
	if cfg.Server.MetricsAddress == "" {
		cfg.Server.MetricsAddress = ":9090"
	}

	// Pipeline defaults
	if cfg.Pipeline.MaxConcurrentFetches == 0 {
		cfg.Pipeline.MaxConcurrentFetches = 6
	}
	if cfg.Pipeline.MaxTermsPerSource == 0 {
		cfg.Pipeline.MaxTermsPerSource = 3
	}
	if cfg.Pipeline.ScanDeadline == 0 {
		cfg.Pipeline.ScanDeadline = 25000
	}
	if cfg.Pipeline.MaxBusinesses == 0 {
		cfg.Pipeline.MaxBusinesses = 100
	}

	// Source defaults
	for key, src := range cfg.Sources {
		if src.Timeout == 0 {
			src.Timeout = 10000
		}
		if src.Limit == 0 {
			src.Limit = 20
		}
		cfg.Sources[key] = src
	}

	// Enrichment defaults
	if cfg.Enrichment.MaxConcurrent == 0 {
		cfg.Enrichment.MaxConcurrent = 4
	}
	if cfg.Enrichment.MaxBusinesses == 0 {
		cfg.Enrichment.MaxBusinesses = 10
	}
	if cfg.Enrichment.RequestTimeout == 0 {
		cfg.Enrichment.RequestTimeout = 5000
	}

	// Cache defaults
	if cfg.Cache.TTL == 0 {
		cfg.Cache.TTL = 900
	}

	// Logging defaults
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "json"
	}
	if cfg.Logging.Output == "" {
		cfg.Logging.Output = "stdout"
	}
}

// validateConfig validates critical configuration fields
func validateConfig(cfg *Config) error {
	if cfg.Server.Address == "" {
		return fmt.Errorf("server.address is required")
	}

	if cfg.Cache.Enabled && cfg.Redis.Address == "" {
		return fmt.Errorf("redis.address is required when cache is enabled")
	}

	for name, src := range cfg.Sources {
		if src.Enabled && name != "synthetic" && src.APIKey == "" {
			return fmt.Errorf("sources.%s.api_key is required when the source is enabled", name)
		}
	}

	return nil
}

// GetDuration converts milliseconds from config to time.Duration
func GetDuration(milliseconds int) time.Duration {
	return time.Duration(milliseconds) * time.Millisecond
}

// GetSourceConfig retrieves source-specific configuration with fallback to defaults
func GetSourceConfig(cfg *Config, sourceName string) SourceConfig {
	if src, exists := cfg.Sources[sourceName]; exists {
		return src
	}

	return SourceConfig{
		Enabled: sourceName == "synthetic",
		Timeout: 10000,
		Limit:   20,
	}
}

// IsSourceEnabled checks if a specific source adapter is enabled
func IsSourceEnabled(cfg *Config, sourceName string) bool {
	if src, exists := cfg.Sources[sourceName]; exists {
		return src.Enabled
	}
	return sourceName == "synthetic"
}
