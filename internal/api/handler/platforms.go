package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"

	"github.com/vfg2006/ads-report-api/internal/usecases/reporting"
	"github.com/vfg2006/ads-report-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func ListPlatforms(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		platforms := service.ListPlatforms()
		logger.WithField("count", len(platforms)).Info("platforms: listing available platforms")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(map[string]any{"platforms": platforms}); err != nil {
			logger.WithError(err).Error("platforms: failed to encode response")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}
