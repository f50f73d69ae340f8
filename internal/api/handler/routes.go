package handler

import (
	"net/http"

	"github.com/vfg2006/sales-charts-api/internal/api/handler/router"
	"github.com/vfg2006/sales-charts-api/internal/usecases/charting"
	"github.com/vfg2006/sales-charts-api/internal/usecases/loading"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Sales(loader loading.SnapshotLoader) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/sales",
			Method:  http.MethodGet,
			Handler: GetSales(loader),
		},
	}
}

func Charts(service charting.ChartService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/charts",
			Method:  http.MethodGet,
			Handler: GetDashboard(service),
		},
		{
			Path:    "/v1/charts/:name",
			Method:  http.MethodGet,
			Handler: GetChart(service),
		},
	}
}

func CronJobs(refresher SalesRefresher) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(refresher),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(refresher),
		},
	}
}

// Metrics expõe o handler do Prometheus
func Metrics(metricsHandler http.Handler) []router.Route {
	return []router.Route{
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: metricsHandler,
		},
	}
}
