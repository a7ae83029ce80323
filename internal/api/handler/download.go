package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"

	"github.com/vfg2006/ads-report-api/internal/usecases/exporting"
	"github.com/vfg2006/ads-report-api/internal/usecases/reporting"
	"github.com/vfg2006/ads-report-api/pkg/apiErrors"
	"github.com/vfg2006/ads-report-api/pkg/log"
)

func DownloadPlatformCSV(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		platform := httprouter.ParamsFromContext(r.Context()).ByName("platform")
		logger.WithField("platform", platform).Info("download: exporting platform insights as CSV")

		insights := service.ListInsights(platform)

		attachment, err := exporting.FromRecords(insights, platform)
		writeAttachment(w, r, attachment, err)
	})
}

func DownloadPlatformSummaryCSV(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		platform := httprouter.ParamsFromContext(r.Context()).ByName("platform")
		logger.WithField("platform", platform).Info("download: exporting platform summary as CSV")

		summary := service.SummarizeByAccount(platform)

		attachment, err := exporting.FromSummary(summary, platform)
		writeAttachment(w, r, attachment, err)
	})
}

func DownloadGeneralCSV(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		logger.Info("download: exporting general report as CSV")

		report, fields := service.BuildGeneralReport()

		attachment, err := exporting.FromGeneralReport(report, fields)
		writeAttachment(w, r, attachment, err)
	})
}

func DownloadGeneralSummaryCSV(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		logger.Info("download: exporting general summary as CSV")

		summary := service.BuildGeneralSummary()

		attachment, err := exporting.FromGeneralSummary(summary)
		writeAttachment(w, r, attachment, err)
	})
}

// writeAttachment envia o CSV como anexo. Uma exportação vazia não é falha:
// vira 404 com o código RPT_001, distinguindo "nada a reportar" de erro de
// transporte.
func writeAttachment(w http.ResponseWriter, r *http.Request, attachment *exporting.Attachment, err error) {
	logger := log.ForContext(r.Context())

	if err != nil {
		if errors.Is(err, exporting.ErrNoData) {
			apiErrors.WriteError(w, apiErrors.ErrReportNoData, "No data available", nil)
			return
		}

		logger.WithError(err).Error("download: failed to generate CSV")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, err.Error(), nil)
		return
	}

	w.Header().Set("Content-Disposition", "attachment; filename="+attachment.Filename)
	w.Header().Set("Content-Type", "text/csv")

	if _, err := w.Write(attachment.Content); err != nil {
		logger.WithError(err).Error("download: failed to write CSV response")
	}
}
