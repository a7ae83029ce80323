package handler

import (
	"net/http"

	"github.com/vfg2006/ads-report-api/internal/usecases/reporting"
	"github.com/vfg2006/ads-report-api/pkg/log"
)

func GetGeneralReport(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		logger.Info("reports: building general report")

		report, fields := service.BuildGeneralReport()

		logger.WithFields(log.Fields{
			"records": len(report),
			"fields":  len(fields),
		}).Info("reports: general report built")

		response := map[string]any{
			"report": report,
			"fields": fields,
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logger.WithError(err).Error("reports: failed to encode response")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

func GetGeneralSummary(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		logger.Info("reports: building general summary")

		summary := service.BuildGeneralSummary()

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(map[string]any{"summary": summary}); err != nil {
			logger.WithError(err).Error("reports: failed to encode response")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}
