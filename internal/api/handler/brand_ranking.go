package handler

import (
	"net/http"

	"github.com/vfg2006/car-sales-dashboard-api/internal/usecases/analyzing"
	"github.com/vfg2006/car-sales-dashboard-api/internal/usecases/ranking"
	"github.com/vfg2006/car-sales-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/car-sales-dashboard-api/pkg/log"
)

// GetBrandRanking retorna o último snapshot gravado do ranking de marcas do ano
func GetBrandRanking(service ranking.RankingService, analyzer analyzing.Analyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		if service == nil {
			apiErrors.WriteError(w, apiErrors.ErrServiceUnavailable, "Ranking de marcas requer DATABASE_ENABLED=true", nil)
			return
		}

		year, ok := yearParam(r, analyzer)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Ano inválido", map[string]string{"year": r.URL.Query().Get(paramYear)})
			return
		}

		brandRanking, err := service.GetBrandRanking(r.Context(), year)
		if err != nil {
			logger.WithError(err).WithField("year", year).Error("ranking: erro ao buscar ranking de marcas")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar ranking de marcas", nil)
			return
		}

		if brandRanking == nil {
			apiErrors.WriteError(w, apiErrors.ErrNotFound, "Nenhum ranking encontrado", map[string]int{"year": year})
			return
		}

		writeJSON(w, r, brandRanking)
	}
}
