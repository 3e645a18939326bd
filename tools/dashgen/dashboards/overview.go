// Package dashboards assembles Grafana dashboard definitions from panel builders.
package dashboards

import (
	"github.com/grafana/grafana-foundation-sdk/go/dashboard"

	"github.com/donaldgifford/storefront-catalog/tools/dashgen/panels"
)

// BuildOverview constructs the Catalog Overview dashboard with all metric rows.
func BuildOverview() *dashboard.DashboardBuilder {
	b := dashboard.NewDashboardBuilder("Catalog Overview").
		Uid("catalog-overview").
		Tags([]string{"catalog", "storefront-catalog"}).
		Refresh("30s").
		Time("now-6h", "now").
		Timezone("browser").
		Editable().
		Tooltip(dashboard.DashboardCursorSyncCrosshair).
		WithVariable(datasourceVar())

	// Row 1: Overview.
	b.WithRow(dashboard.NewRowBuilder("Overview").
		WithPanel(panels.HealthzStat()).
		WithPanel(panels.ReadyzStat()).
		WithPanel(panels.PanicsStat()).
		WithPanel(panels.FacetHitGauge()).
		WithPanel(panels.UptimeStat()))

	// Row 2: HTTP.
	b.WithRow(dashboard.NewRowBuilder("HTTP").
		WithPanel(panels.RequestRate()).
		WithPanel(panels.LatencyPercentiles()).
		WithPanel(panels.ErrorRate()).
		WithPanel(panels.RateLimited()))

	// Row 3: Storefront listings.
	b.WithRow(dashboard.NewRowBuilder("Listings").
		WithPanel(panels.ListingLatency()).
		WithPanel(panels.ListingErrors()).
		WithPanel(panels.ListingMatches()).
		WithPanel(panels.FacetCacheTraffic()))

	// Row 4: Admin.
	b.WithRow(dashboard.NewRowBuilder("Admin").
		WithPanel(panels.CatalogWrites()).
		WithPanel(panels.ImagesStored()))

	// Row 5: Scheduler.
	b.WithRow(dashboard.NewRowBuilder("Scheduler").
		WithPanel(panels.SchedulerRuns()).
		WithPanel(panels.PromotionsExpired()))

	return b
}

func datasourceVar() *dashboard.DatasourceVariableBuilder {
	return dashboard.NewDatasourceVariableBuilder("datasource").
		Label("Datasource").
		Type("prometheus")
}
