package handler

import (
	"net/http"

	"github.com/vfg2006/car-sales-dashboard-api/internal/usecases/analyzing"
	"github.com/vfg2006/car-sales-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/car-sales-dashboard-api/pkg/log"
)

// GetDashboard retorna os dados de todos os gráficos para a seleção da query string
func GetDashboard(analyzer analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		selection := selectionFromRequest(r, analyzer)
		logger.WithFields(log.Fields{
			"year":         selection.Year,
			"color_scheme": selection.ColorScheme,
			"chart_type":   selection.ChartType,
		}).Info("dashboard: calculando painel")

		dashboard, err := analyzer.Dashboard(r.Context(), selection)
		if err != nil {
			logger.WithError(err).Error("dashboard: falha ao calcular painel")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao calcular painel", nil)
			return
		}

		writeJSON(w, r, dashboard)
	})
}
