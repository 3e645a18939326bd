package main

import "errors"

// KnownMetrics is the set of metric names exported by storefront-catalog
// plus recording rule names referenced in dashboards and alerts.
var KnownMetrics = map[string]bool{
	// HTTP metrics.
	"catalog_http_request_duration_seconds": true,
	"catalog_http_requests_total":           true,
	"catalog_http_rate_limited_total":       true,
	"catalog_http_panics_recovered_total":   true,

	// Health metrics.
	"catalog_healthz_up": true,
	"catalog_readyz_up":  true,

	// Listing metrics.
	"catalog_listing_duration_seconds": true,
	"catalog_listing_errors_total":     true,
	"catalog_listing_result_count":     true,

	// Facet cache metrics.
	"catalog_facet_cache_hits_total":   true,
	"catalog_facet_cache_misses_total": true,
	"catalog_facet_cache_errors_total": true,

	// Admin write metrics.
	"catalog_writes_total":        true,
	"catalog_images_stored_total": true,

	// Scheduler metrics.
	"catalog_promotions_expired_total": true,
	"catalog_scheduler_runs_total":     true,

	// Recording rules.
	"catalog:http_requests:rate5m":    true,
	"catalog:http_errors:rate5m":      true,
	"catalog:listing_errors:rate5m":   true,
	"catalog:facet_cache_hit:ratio5m": true,

	// Standard Prometheus metrics referenced in dashboards.
	"up":                         true,
	"process_start_time_seconds": true,
}

// Config controls which artifacts the generator produces and where they go.
type Config struct {
	OutputDir        string
	DashboardEnabled bool
	RulesEnabled     bool
}

// DefaultConfig returns a Config that generates all artifacts into ../../deploy
// (relative to tools/dashgen/).
func DefaultConfig() Config {
	return Config{
		OutputDir:        "../../deploy",
		DashboardEnabled: true,
		RulesEnabled:     true,
	}
}

// Validate checks that the config is usable.
func (c Config) Validate() error {
	if c.OutputDir == "" {
		return errors.New("output directory must be set")
	}
	if !c.DashboardEnabled && !c.RulesEnabled {
		return errors.New("at least one of dashboard or rules must be enabled")
	}
	return nil
}
