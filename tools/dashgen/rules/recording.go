package rules

// RecordingRules returns a PrometheusRule CR containing pre-computed rate
// expressions used by dashboards and alert rules.
func RecordingRules() PrometheusRule {
	return NewPrometheusRule("catalog-recording-rules", RuleGroup{
		Name: "catalog-recording",
		Rules: []Rule{
			{
				Record: "catalog:http_requests:rate5m",
				Expr:   `sum(rate(catalog_http_requests_total[5m]))`,
			},
			{
				Record: "catalog:http_errors:rate5m",
				Expr:   `sum(rate(catalog_http_requests_total{status=~"5.."}[5m]))`,
			},
			{
				Record: "catalog:listing_errors:rate5m",
				Expr:   `sum(rate(catalog_listing_errors_total[5m])) by (endpoint)`,
			},
			{
				Record: "catalog:facet_cache_hit:ratio5m",
				Expr: `sum(rate(catalog_facet_cache_hits_total[5m])) / ` +
					`(sum(rate(catalog_facet_cache_hits_total[5m])) + sum(rate(catalog_facet_cache_misses_total[5m])))`,
			},
		},
	})
}
