package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/bargauge"
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// CatalogWrites returns a bar gauge of admin writes per entity and
// operation over the dashboard range.
func CatalogWrites() *bargauge.PanelBuilder {
	return bargauge.NewPanelBuilder().
		Title("Catalog Writes").
		Description("Brand, category, product and review writes").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(
			`sum(increase(catalog_writes_total[1d])) by (entity, op)`,
			"{{entity}} {{op}}", "A",
		)).
		Orientation(common.VizOrientationHorizontal).
		Min(0).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic())
}

// ImagesStored returns a timeseries panel showing uploaded images by kind.
func ImagesStored() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Images Stored").
		Description("Resized images written per second").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(`sum(rate(catalog_images_stored_total[5m])) by (kind)`, "{{kind}}", "A")).
		Unit("ops").
		FillOpacity(10).
		LineWidth(2).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// SchedulerRuns returns a timeseries panel showing scheduled job runs by
// status.
func SchedulerRuns() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Scheduler Runs").
		Description("Scheduled job runs by job and status").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(
			`sum(increase(catalog_scheduler_runs_total[1h])) by (job_name, status)`,
			"{{job_name}} {{status}}", "A",
		)).
		Unit("short").
		FillOpacity(10).
		LineWidth(2).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// PromotionsExpired returns a timeseries panel showing promotions cleared
// by the expiry job.
func PromotionsExpired() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Promotions Expired").
		Description("Category promotions cleared after their expiry date").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(`increase(catalog_promotions_expired_total[1h])`, "expired", "A")).
		Unit("short").
		FillOpacity(10).
		LineWidth(2).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}
