package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name      string
		yaml      string
		envVars   map[string]string
		wantErr   string
		checkFunc func(t *testing.T, cfg *Config)
	}{
		{
			name: "valid minimal postgres config",
			yaml: `
database:
  host: localhost
  name: catalog
  user: catalog
`,
			checkFunc: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, DriverPostgres, cfg.Database.Driver)
				assert.Equal(t, "localhost", cfg.Database.Host)
				assert.Equal(t, "catalog", cfg.Database.Name)
			},
		},
		{
			name: "defaults applied for optional fields",
			yaml: `
database:
  host: localhost
  name: catalog
  user: catalog
`,
			checkFunc: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, "0.0.0.0", cfg.Server.Host)
				assert.Equal(t, 8080, cfg.Server.Port)
				assert.Equal(t, 30*time.Second, cfg.Server.ReadTimeout)
				assert.Equal(t, 30*time.Second, cfg.Server.WriteTimeout)
				assert.Equal(t, 5432, cfg.Database.Port)
				assert.Equal(t, "disable", cfg.Database.SSLMode)
				assert.Equal(t, 10, cfg.Database.PoolSize)
				assert.Equal(t, 5*time.Minute, cfg.Cache.FacetTTL)
				assert.Empty(t, cfg.Cache.RedisURL)
				assert.Equal(t, "data/images", cfg.Images.Dir)
				assert.Equal(t, "/static/images", cfg.Images.URLPrefix)
				assert.Equal(t, int64(10<<20), cfg.Images.MaxUploadBytes)
				assert.Equal(t, 0, cfg.Listing.PageSize)
				assert.Equal(t, 8, cfg.Listing.SearchPageSize)
				assert.Equal(t, 10, cfg.Listing.AdminPageSize)
				assert.Equal(t, 4, cfg.Listing.RelatedProducts)
				assert.Equal(t, time.Hour, cfg.Schedule.PromotionExpiryInterval)
				assert.Zero(t, cfg.RateLimit.PerSecond)
				assert.Equal(t, "storefront-catalog", cfg.Telemetry.ServiceName)
				assert.Equal(t, "info", cfg.Logging.Level)
				assert.Equal(t, "text", cfg.Logging.Format)
			},
		},
		{
			name: "mongo driver",
			yaml: `
database:
  driver: mongo
  mongo:
    uri: mongodb://localhost:27017
`,
			checkFunc: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, DriverMongo, cfg.Database.Driver)
				assert.Equal(t, "mongodb://localhost:27017", cfg.Database.Mongo.URI)
				assert.Equal(t, "catalog", cfg.Database.Mongo.Database)
			},
		},
		{
			name: "env var substitution",
			yaml: `
database:
  host: ${TEST_DB_HOST}
  name: catalog
  user: catalog
  password: ${TEST_DB_PASSWORD}
cache:
  redis_url: ${TEST_REDIS_URL}
`,
			envVars: map[string]string{
				"TEST_DB_HOST":     "db.example.com",
				"TEST_DB_PASSWORD": "secret",
				"TEST_REDIS_URL":   "redis://cache:6379/0",
			},
			checkFunc: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, "db.example.com", cfg.Database.Host)
				assert.Equal(t, "secret", cfg.Database.Password)
				assert.Equal(t, "redis://cache:6379/0", cfg.Cache.RedisURL)
			},
		},
		{
			name: "explicit listing and rate limit settings",
			yaml: `
database:
  host: localhost
  name: catalog
  user: catalog
listing:
  page_size: 12
  search_page_size: 16
rate_limit:
  per_second: 2.5
`,
			checkFunc: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, 12, cfg.Listing.PageSize)
				assert.Equal(t, 16, cfg.Listing.SearchPageSize)
				assert.InDelta(t, 2.5, cfg.RateLimit.PerSecond, 0.0001)
				assert.Equal(t, 5, cfg.RateLimit.Burst)
			},
		},
		{
			name: "missing postgres fields",
			yaml: `
database:
  port: 5432
`,
			wantErr: "database.host is required",
		},
		{
			name: "mongo without uri",
			yaml: `
database:
  driver: mongo
`,
			wantErr: "database.mongo.uri is required",
		},
		{
			name: "unknown driver",
			yaml: `
database:
  driver: sqlite
`,
			wantErr: "database.driver must be one of",
		},
		{
			name: "unknown log format",
			yaml: `
database:
  host: localhost
  name: catalog
  user: catalog
logging:
  format: xml
`,
			wantErr: "logging.format must be one of",
		},
		{
			name:    "invalid yaml",
			yaml:    "database: [",
			wantErr: "parsing config YAML",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.envVars {
				t.Setenv(k, v)
			}

			dir := t.TempDir()
			path := filepath.Join(dir, "config.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.yaml), 0o644))

			cfg, err := Load(path)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}

			require.NoError(t, err)
			if tt.checkFunc != nil {
				tt.checkFunc(t, cfg)
			}
		})
	}
}

func TestLoad_FileNotFound(t *testing.T) {
	t.Parallel()

	_, err := Load("/nonexistent/path/config.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config file")
}

func TestDatabaseConfig_DSN(t *testing.T) {
	t.Parallel()

	d := DatabaseConfig{
		Host:     "localhost",
		Port:     5432,
		Name:     "catalog",
		User:     "admin",
		Password: "pass",
		SSLMode:  "disable",
		PoolSize: 10,
	}
	assert.Equal(t,
		"host=localhost port=5432 dbname=catalog user=admin password=pass sslmode=disable pool_max_conns=10",
		d.DSN(),
	)
}
