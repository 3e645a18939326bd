// Package config handles loading and validating the application configuration
// from YAML files with environment variable substitution.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Database drivers.
const (
	DriverPostgres = "postgres"
	DriverMongo    = "mongo"
)

// Config is the top-level application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Cache     CacheConfig     `yaml:"cache"`
	Images    ImagesConfig    `yaml:"images"`
	Listing   ListingConfig   `yaml:"listing"`
	Schedule  ScheduleConfig  `yaml:"schedule"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// ServerConfig defines the Echo HTTP server settings.
type ServerConfig struct {
	Host         string        `yaml:"host"`
	Port         int           `yaml:"port"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
}

// DatabaseConfig selects the store backend and holds its connection
// settings.
type DatabaseConfig struct {
	Driver   string      `yaml:"driver"` // postgres, mongo
	Host     string      `yaml:"host"`
	Port     int         `yaml:"port"`
	Name     string      `yaml:"name"`
	User     string      `yaml:"user"`
	Password string      `yaml:"password"`
	SSLMode  string      `yaml:"sslmode"`
	PoolSize int         `yaml:"pool_size"`
	Mongo    MongoConfig `yaml:"mongo"`
}

// MongoConfig defines MongoDB connection settings.
type MongoConfig struct {
	URI      string `yaml:"uri"`
	Database string `yaml:"database"`
}

// DSN returns a PostgreSQL connection string.
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d dbname=%s user=%s password=%s sslmode=%s pool_max_conns=%d",
		d.Host, d.Port, d.Name, d.User, d.Password, d.SSLMode, d.PoolSize,
	)
}

// CacheConfig defines the optional Redis facet cache. An empty RedisURL
// disables caching.
type CacheConfig struct {
	RedisURL string        `yaml:"redis_url"`
	FacetTTL time.Duration `yaml:"facet_ttl"`
}

// ImagesConfig defines where uploaded images are stored.
type ImagesConfig struct {
	Dir            string `yaml:"dir"`
	URLPrefix      string `yaml:"url_prefix"`
	MaxUploadBytes int64  `yaml:"max_upload_bytes"`
}

// ListingConfig defines the page size of each listing endpoint. A page
// size of 0 returns every product on one page.
type ListingConfig struct {
	PageSize        int `yaml:"page_size"`
	SearchPageSize  int `yaml:"search_page_size"`
	AdminPageSize   int `yaml:"admin_page_size"`
	RelatedProducts int `yaml:"related_products"`
}

// ScheduleConfig defines cron intervals.
type ScheduleConfig struct {
	PromotionExpiryInterval time.Duration `yaml:"promotion_expiry_interval"`
}

// RateLimitConfig defines the API rate limit applied per client IP.
// A PerSecond of 0 disables limiting.
type RateLimitConfig struct {
	PerSecond float64 `yaml:"per_second"`
	Burst     int     `yaml:"burst"`
}

// TelemetryConfig defines OpenTelemetry export. An empty OTLPEndpoint
// disables export.
type TelemetryConfig struct {
	OTLPEndpoint string `yaml:"otlp_endpoint"`
	ServiceName  string `yaml:"service_name"`
	Insecure     bool   `yaml:"insecure"`
}

// LoggingConfig defines logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text, json
}

// Load reads and parses a YAML config file, performing environment variable
// substitution and validation.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // config path from trusted CLI flag
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	// Expand environment variables in the YAML content.
	expanded := os.ExpandEnv(string(data))

	cfg := &Config{}
	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return nil, fmt.Errorf("parsing config YAML: %w", err)
	}

	applyDefaults(cfg)

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	applyServerDefaults(&cfg.Server)
	applyDatabaseDefaults(&cfg.Database)
	applyCacheDefaults(&cfg.Cache)
	applyImagesDefaults(&cfg.Images)
	applyListingDefaults(&cfg.Listing)
	applyScheduleDefaults(&cfg.Schedule)
	applyRateLimitDefaults(&cfg.RateLimit)
	applyTelemetryDefaults(&cfg.Telemetry)
	applyLoggingDefaults(&cfg.Logging)
}

func applyServerDefaults(s *ServerConfig) {
	if s.Host == "" {
		s.Host = "0.0.0.0"
	}
	if s.Port == 0 {
		s.Port = 8080
	}
	if s.ReadTimeout == 0 {
		s.ReadTimeout = 30 * time.Second
	}
	if s.WriteTimeout == 0 {
		s.WriteTimeout = 30 * time.Second
	}
}

func applyDatabaseDefaults(d *DatabaseConfig) {
	if d.Driver == "" {
		d.Driver = DriverPostgres
	}
	if d.Port == 0 {
		d.Port = 5432
	}
	if d.SSLMode == "" {
		d.SSLMode = "disable"
	}
	if d.PoolSize == 0 {
		d.PoolSize = 10
	}
	if d.Mongo.Database == "" {
		d.Mongo.Database = "catalog"
	}
}

func applyCacheDefaults(c *CacheConfig) {
	if c.FacetTTL == 0 {
		c.FacetTTL = 5 * time.Minute
	}
}

func applyImagesDefaults(i *ImagesConfig) {
	if i.Dir == "" {
		i.Dir = "data/images"
	}
	if i.URLPrefix == "" {
		i.URLPrefix = "/static/images"
	}
	if i.MaxUploadBytes == 0 {
		i.MaxUploadBytes = 10 << 20
	}
}

func applyListingDefaults(l *ListingConfig) {
	// page_size 0 is meaningful (unconstrained), so only negatives reset.
	if l.PageSize < 0 {
		l.PageSize = 0
	}
	if l.SearchPageSize <= 0 {
		l.SearchPageSize = 8
	}
	if l.AdminPageSize <= 0 {
		l.AdminPageSize = 10
	}
	if l.RelatedProducts <= 0 {
		l.RelatedProducts = 4
	}
}

func applyScheduleDefaults(s *ScheduleConfig) {
	if s.PromotionExpiryInterval == 0 {
		s.PromotionExpiryInterval = time.Hour
	}
}

func applyRateLimitDefaults(r *RateLimitConfig) {
	if r.PerSecond > 0 && r.Burst == 0 {
		r.Burst = max(1, int(r.PerSecond*2))
	}
}

func applyTelemetryDefaults(t *TelemetryConfig) {
	if t.ServiceName == "" {
		t.ServiceName = "storefront-catalog"
	}
}

func applyLoggingDefaults(l *LoggingConfig) {
	if l.Level == "" {
		l.Level = "info"
	}
	if l.Format == "" {
		l.Format = "text"
	}
}

func validate(cfg *Config) error {
	var errs []error

	switch cfg.Database.Driver {
	case DriverPostgres:
		if cfg.Database.Host == "" {
			errs = append(errs, fmt.Errorf("database.host is required when driver is postgres"))
		}
		if cfg.Database.Name == "" {
			errs = append(errs, fmt.Errorf("database.name is required when driver is postgres"))
		}
		if cfg.Database.User == "" {
			errs = append(errs, fmt.Errorf("database.user is required when driver is postgres"))
		}
	case DriverMongo:
		if cfg.Database.Mongo.URI == "" {
			errs = append(errs, fmt.Errorf("database.mongo.uri is required when driver is mongo"))
		}
	default:
		errs = append(errs, fmt.Errorf(
			"database.driver must be one of: postgres, mongo (got %q)",
			cfg.Database.Driver,
		))
	}

	if cfg.Images.MaxUploadBytes < 0 {
		errs = append(errs, fmt.Errorf("images.max_upload_bytes must not be negative"))
	}
	if cfg.RateLimit.PerSecond < 0 {
		errs = append(errs, fmt.Errorf("rate_limit.per_second must not be negative"))
	}

	switch cfg.Logging.Format {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf(
			"logging.format must be one of: text, json (got %q)", cfg.Logging.Format,
		))
	}

	return errors.Join(errs...)
}
