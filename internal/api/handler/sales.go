package handler

import (
	"net/http"

	"github.com/vfg2006/car-sales-dashboard-api/internal/domain"
	"github.com/vfg2006/car-sales-dashboard-api/internal/usecases/analyzing"
	"github.com/vfg2006/car-sales-dashboard-api/pkg/log"
	"github.com/vfg2006/car-sales-dashboard-api/pkg/utils"
)

// GetDatasetInfo retorna os metadados do dataset carregado
func GetDatasetInfo(analyzer analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, analyzer.DatasetInfo())
	})
}

// GetAvailableYears retorna as opções do filtro de ano
func GetAvailableYears(analyzer analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, analyzer.AvailableYears())
	})
}

// GetMonthlyRevenue retorna a série de receita mensal
func GetMonthlyRevenue(analyzer analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		revenue := analyzer.MonthlyRevenue()

		log.ForContext(r.Context()).WithFields(log.Fields{
			"months": len(revenue),
		}).Debug("sales: receita mensal calculada")

		writeJSON(w, r, revenue)
	})
}

// GetTopBrands retorna as marcas de maior receita no ano selecionado
func GetTopBrands(analyzer analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		year, ok := yearParam(r, analyzer)
		if !ok {
			writeJSON(w, r, domain.BrandTotal{Brands: []domain.BrandTotalItem{}})
			return
		}

		limit := utils.ParsePositiveInt(r.URL.Query().Get(paramLimit), analyzing.DefaultTopBrands)
		brands := analyzer.TopBrands(r.Context(), year, limit)

		log.ForContext(r.Context()).WithFields(log.Fields{
			"year":   year,
			"limit":  limit,
			"brands": len(brands.Brands),
		}).Debug("sales: top marcas calculado")

		writeJSON(w, r, brands)
	})
}

// GetTransmissionShare retorna a distribuição por transmissão com o esquema de cores selecionado
func GetTransmissionShare(analyzer analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, analyzer.TransmissionShare(colorSchemeParam(r)))
	})
}

// GetIncomePrice retorna o heatmap ou o boxplot de renda x preço
func GetIncomePrice(analyzer analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, analyzer.IncomePrice(r.Context(), chartTypeParam(r)))
	})
}
