package panels

import (
	"fmt"

	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/gauge"
	"github.com/grafana/grafana-foundation-sdk/go/stat"
)

// probeStat is a narrow background-coloured stat for a single 0/1 series.
func probeStat(title, desc, expr string) *stat.PanelBuilder {
	return stat.NewPanelBuilder().
		Title(title).
		Description(desc).
		Datasource(DSRef()).
		Height(StatHeight).
		Span(ProbeWidth).
		WithTarget(PromQuery(expr, "", "A")).
		Thresholds(ThresholdsRedGreen(1)).
		ColorScheme(ColorSchemeThresholds()).
		ColorMode(common.BigValueColorModeBackground).
		GraphMode(common.BigValueGraphModeNone).
		TextMode(common.BigValueTextModeValue)
}

// HealthzStat shows whether the liveness probe last succeeded.
func HealthzStat() *stat.PanelBuilder {
	return probeStat("Healthz", "Liveness probe (1 = ok, 0 = failing)", `catalog_healthz_up`)
}

// ReadyzStat shows whether the readiness probe could reach the database.
func ReadyzStat() *stat.PanelBuilder {
	return probeStat("Readyz", "Readiness probe (1 = ready, 0 = database unreachable)", `catalog_readyz_up`)
}

// PanicsStat shows handler panics recovered over the last day. Any
// non-zero value is a bug.
func PanicsStat() *stat.PanelBuilder {
	return stat.NewPanelBuilder().
		Title("Panics (24h)").
		Description("Handler panics recovered by the server in the last 24 hours").
		Datasource(DSRef()).
		Height(StatHeight).
		Span(ProbeWidth).
		WithTarget(PromQuery(`sum(increase(catalog_http_panics_recovered_total[1d]))`, "", "A")).
		Thresholds(ThresholdsGreenYellowRed(1, 5)).
		ColorScheme(ColorSchemeThresholds()).
		ColorMode(common.BigValueColorModeBackground).
		GraphMode(common.BigValueGraphModeNone)
}

// FacetHitGauge shows the share of facet lookups served from Redis.
func FacetHitGauge() *gauge.PanelBuilder {
	return gauge.NewPanelBuilder().
		Title("Facet Cache Hit %").
		Description("Share of facet lookups served from Redis").
		Datasource(DSRef()).
		Height(StatHeight).
		Span(StatWidth).
		WithTarget(PromQuery(`catalog:facet_cache_hit:ratio5m * 100`, "", "A")).
		Unit("percent").
		Min(0).
		Max(100).
		Thresholds(ThresholdsRedGreen(50)).
		ColorScheme(ColorSchemeThresholds())
}

// UptimeStat shows time since the server process started.
func UptimeStat() *stat.PanelBuilder {
	return stat.NewPanelBuilder().
		Title("Uptime").
		Description("Time since process start").
		Datasource(DSRef()).
		Height(StatHeight).
		Span(StatWidth).
		WithTarget(PromQuery(
			fmt.Sprintf(`time() - process_start_time_seconds{job=%q}`, Job),
			"", "A",
		)).
		Unit("s").
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemeThresholds()).
		GraphMode(common.BigValueGraphModeNone)
}
