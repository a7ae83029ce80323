package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/vfg2006/ads-report-api/internal/usecases/reporting"
	"github.com/vfg2006/ads-report-api/pkg/log"
)

func GetPlatformInsights(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		platform := httprouter.ParamsFromContext(r.Context()).ByName("platform")
		logger.WithField("platform", platform).Info("insights: fetching platform insights")

		insights := service.ListInsights(platform)
		platformName := service.PlatformName(platform)

		logger.WithFields(log.Fields{
			"platform": platform,
			"records":  len(insights),
		}).Info("insights: platform insights retrieved")

		response := map[string]any{
			"platform_name":  platformName,
			"platform_value": platform,
			"insights":       insights,
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logger.WithFields(log.Fields{
				"platform": platform,
				"error":    err.Error(),
			}).Error("insights: failed to encode response")

			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

func GetPlatformSummary(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		platform := httprouter.ParamsFromContext(r.Context()).ByName("platform")
		logger.WithField("platform", platform).Info("insights: building platform summary")

		summary := service.SummarizeByAccount(platform)
		platformName := service.PlatformName(platform)

		response := map[string]any{
			"platform_name":  platformName,
			"platform_value": platform,
			"summary":        summary,
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logger.WithFields(log.Fields{
				"platform": platform,
				"error":    err.Error(),
			}).Error("insights: failed to encode response")

			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}
