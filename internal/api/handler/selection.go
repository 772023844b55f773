package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/vfg2006/car-sales-dashboard-api/internal/domain"
	"github.com/vfg2006/car-sales-dashboard-api/internal/usecases/analyzing"
	"github.com/vfg2006/car-sales-dashboard-api/pkg/log"
)

// Parâmetros de seleção aceitos na query string
const (
	paramYear        = "year"
	paramLimit       = "limit"
	paramColorScheme = "color_scheme"
	paramClicks      = "clicks"
	paramChartType   = "chart_type"
)

// warnQueryError registra valores de seleção não reconhecidos; a consulta segue com o valor padrão
func warnQueryError(r *http.Request, err error) {
	var queryErr *domain.QueryError
	if !errors.As(err, &queryErr) {
		return
	}

	log.ForContext(r.Context()).WithFields(log.Fields{
		"param": queryErr.Param,
		"value": queryErr.Value,
		"error": err.Error(),
	}).Warn("selection: valor de seleção ignorado")
}

// yearParam retorna o ano da query. Sem o parâmetro, usa o ano selecionado por padrão.
// ok é falso quando o valor informado não é um ano válido.
func yearParam(r *http.Request, analyzer analyzing.Analyzer) (year int, ok bool) {
	raw := r.URL.Query().Get(paramYear)
	if strings.TrimSpace(raw) == "" {
		return analyzer.AvailableYears().Selected, true
	}

	year, err := domain.ParseYear(raw)
	if err != nil {
		warnQueryError(r, err)
		return 0, false
	}
	return year, true
}

// colorSchemeParam lê color_scheme; sem ele, alterna o esquema pela paridade de clicks
func colorSchemeParam(r *http.Request) domain.ColorScheme {
	query := r.URL.Query()

	if query.Has(paramColorScheme) || !query.Has(paramClicks) {
		scheme, err := domain.ParseColorScheme(query.Get(paramColorScheme))
		if err != nil {
			warnQueryError(r, err)
		}
		return scheme
	}

	clicks, err := strconv.Atoi(strings.TrimSpace(query.Get(paramClicks)))
	if err != nil {
		warnQueryError(r, &domain.QueryError{Param: paramClicks, Value: query.Get(paramClicks)})
		return domain.ColorSchemeDefault
	}
	return domain.ColorSchemeForClicks(clicks)
}

func chartTypeParam(r *http.Request) domain.ChartType {
	chartType, err := domain.ParseChartType(r.URL.Query().Get(paramChartType))
	if err != nil {
		warnQueryError(r, err)
	}
	return chartType
}

// selectionFromRequest monta a seleção do painel. Ano inválido vira 0, que não
// corresponde a nenhuma venda e resulta em ranking vazio.
func selectionFromRequest(r *http.Request, analyzer analyzing.Analyzer) domain.Selection {
	year, _ := yearParam(r, analyzer)

	return domain.Selection{
		Year:        year,
		ColorScheme: colorSchemeParam(r),
		ChartType:   chartTypeParam(r),
	}
}
