package handler

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/vfg2006/ads-report-api/internal/api/handler/router"
	"github.com/vfg2006/ads-report-api/internal/usecases/reporting"
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

func Metrics() []router.Route {
	return []router.Route{
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: promhttp.Handler(),
		},
	}
}

func Platforms(service reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/platforms",
			Method:  http.MethodGet,
			Handler: ListPlatforms(service),
		},
		{
			Path:    "/v1/platforms/:platform/insights",
			Method:  http.MethodGet,
			Handler: GetPlatformInsights(service),
		},
		{
			Path:    "/v1/platforms/:platform/summary",
			Method:  http.MethodGet,
			Handler: GetPlatformSummary(service),
		},
	}
}

func Reports(service reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/reports/general",
			Method:  http.MethodGet,
			Handler: GetGeneralReport(service),
		},
		{
			Path:    "/v1/reports/general/summary",
			Method:  http.MethodGet,
			Handler: GetGeneralSummary(service),
		},
	}
}

// Downloads retorna as rotas de exportação em CSV
func Downloads(service reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/download/general",
			Method:  http.MethodGet,
			Handler: DownloadGeneralCSV(service),
		},
		{
			Path:    "/v1/download/general/summary",
			Method:  http.MethodGet,
			Handler: DownloadGeneralSummaryCSV(service),
		},
		// httprouter não aceita "general" e ":platform" no mesmo nível,
		// então os downloads por plataforma vivem sob /platforms.
		{
			Path:    "/v1/download/platforms/:platform",
			Method:  http.MethodGet,
			Handler: DownloadPlatformCSV(service),
		},
		{
			Path:    "/v1/download/platforms/:platform/summary",
			Method:  http.MethodGet,
			Handler: DownloadPlatformSummaryCSV(service),
		},
	}
}
