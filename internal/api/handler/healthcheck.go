package handler

import (
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/car-sales-dashboard-api/internal/usecases/analyzing"
)

func HealthcheckHandler(analyzer analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		info := analyzer.DatasetInfo()

		writeJSON(w, r, map[string]any{
			"status":     "ok",
			"time":       time.Now().Format(time.RFC3339),
			"dataset_id": info.ID,
			"rows":       info.Rows,
		})

		logrus.WithField("dataset_id", info.ID).Debug("healthcheck respondido")
	})
}
