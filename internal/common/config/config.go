// internal/common/config/config.go
package config

// Config is the main application configuration struct.
type Config struct {
	App        AppConfig               `mapstructure:"app"`
	Server     ServerConfig            `mapstructure:"server"`
	Sources    map[string]SourceConfig `mapstructure:"sources"`
	Pipeline   PipelineConfig          `mapstructure:"pipeline"`
	Enrichment EnrichmentConfig        `mapstructure:"enrichment"`
	Cache      CacheConfig             `mapstructure:"cache"`
	Redis      RedisConfig             `mapstructure:"redis"`
	Logging    LoggingConfig           `mapstructure:"logging"`
}

// --- Core App/Infrastructure Config ---
type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
}

type ServerConfig struct {
	Address         string `mapstructure:"address"`
	ReadTimeout     int    `mapstructure:"read_timeout"`     // milliseconds
	WriteTimeout    int    `mapstructure:"write_timeout"`    // milliseconds
	ShutdownTimeout int    `mapstructure:"shutdown_timeout"` // milliseconds
	MetricsAddress  string `mapstructure:"metrics_address"`
}

// SourceConfig holds the settings applicable to every directory adapter.
type SourceConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	APIKey  string `mapstructure:"api_key"`
	BaseURL string `mapstructure:"base_url"`
	Timeout int    `mapstructure:"timeout"` // milliseconds
	Limit   int    `mapstructure:"limit"`
}

// PipelineConfig holds settings for the scan pipeline itself.
type PipelineConfig struct {
	MaxConcurrentFetches int `mapstructure:"max_concurrent_fetches"`
	MaxTermsPerSource    int `mapstructure:"max_terms_per_source"`
	ScanDeadline         int `mapstructure:"scan_deadline"` // milliseconds
	MaxBusinesses        int `mapstructure:"max_businesses"`
}

// EnrichmentConfig controls the website contact-extraction stage.
type EnrichmentConfig struct {
	Enabled        bool `mapstructure:"enabled"`
	MaxConcurrent  int  `mapstructure:"max_concurrent"`
	MaxBusinesses  int  `mapstructure:"max_businesses"`
	RequestTimeout int  `mapstructure:"request_timeout"` // milliseconds
}

// CacheConfig controls the redis-backed scan result cache.
type CacheConfig struct {
	Enabled bool `mapstructure:"enabled"`
	TTL     int  `mapstructure:"ttl"` // seconds
}

type RedisConfig struct {
	Address  string `mapstructure:"address"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Output string `mapstructure:"output"`
}
