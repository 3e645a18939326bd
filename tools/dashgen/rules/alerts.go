package rules

// AlertRules returns a PrometheusRule CR containing alert rules for
// storefront-catalog operational monitoring.
func AlertRules() PrometheusRule {
	return NewPrometheusRule("catalog-alerts", RuleGroup{
		Name: "catalog-alerts",
		Rules: []Rule{
			{
				Alert: "CatalogDown",
				Expr:  `absent(up{job="storefront-catalog"})`,
				For:   "2m",
				Labels: map[string]string{
					"severity": "critical",
				},
				Annotations: map[string]string{
					"summary":     "Storefront catalog is down",
					"description": "The storefront-catalog job has been absent for more than 2 minutes.",
				},
			},
			{
				Alert: "CatalogReadinessDown",
				Expr:  `catalog_readyz_up == 0`,
				For:   "2m",
				Labels: map[string]string{
					"severity": "critical",
				},
				Annotations: map[string]string{
					"summary":     "Storefront catalog cannot reach its database",
					"description": "The readiness probe has been reporting not-ready for more than 2 minutes.",
				},
			},
			{
				Alert: "CatalogHighErrorRate",
				Expr:  `catalog:http_errors:rate5m / catalog:http_requests:rate5m > 0.05`,
				For:   "5m",
				Labels: map[string]string{
					"severity": "warning",
				},
				Annotations: map[string]string{
					"summary":     "High HTTP error rate on the storefront catalog",
					"description": "More than 5% of HTTP requests are returning 5xx errors over the last 5 minutes.",
				},
			},
			{
				Alert: "CatalogListingErrors",
				Expr:  `sum(catalog:listing_errors:rate5m) > 0`,
				For:   "5m",
				Labels: map[string]string{
					"severity": "warning",
				},
				Annotations: map[string]string{
					"summary":     "Storefront listings are failing",
					"description": "Listings have been failing with repository errors for more than 5 minutes.",
				},
			},
			{
				Alert: "CatalogFacetCacheErrors",
				Expr:  `increase(catalog_facet_cache_errors_total[10m]) > 0`,
				For:   "10m",
				Labels: map[string]string{
					"severity": "warning",
				},
				Annotations: map[string]string{
					"summary":     "Facet cache errors detected",
					"description": "Redis facet cache operations are failing; listings fall back to the database.",
				},
			},
			{
				Alert: "CatalogPromotionExpiryFailing",
				Expr:  `increase(catalog_scheduler_runs_total{job_name="promotion_expiry",status="failed"}[2h]) > 0`,
				For:   "0m",
				Labels: map[string]string{
					"severity": "warning",
				},
				Annotations: map[string]string{
					"summary":     "Promotion expiry job failed",
					"description": "The scheduled promotion expiry job failed at least once in the last 2 hours.",
				},
			},
		},
	})
}
