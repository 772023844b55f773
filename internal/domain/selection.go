package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// ColorScheme é o esquema de cores do gráfico de transmissão
type ColorScheme string

const (
	ColorSchemeDefault ColorScheme = "default"
	ColorSchemeAlt     ColorScheme = "alt"
)

var palettes = map[ColorScheme][]string{
	ColorSchemeDefault: {"#636EFA", "#EF553B", "#00CC96"},
	ColorSchemeAlt:     {"#AB63FA", "#FFA15A", "#19D3F3"},
}

// Palette retorna as cores do esquema
func (c ColorScheme) Palette() []string {
	colors, ok := palettes[c]
	if !ok {
		colors = palettes[ColorSchemeDefault]
	}
	return append([]string(nil), colors...)
}

// ChartType é o tipo de gráfico renda x preço
type ChartType string

const (
	ChartTypeHeatmap ChartType = "heatmap"
	ChartTypeBoxplot ChartType = "boxplot"
)

// QueryError indica um valor de seleção não reconhecido
type QueryError struct {
	Param string
	Value string
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("valor inválido para %s: %q", e.Param, e.Value)
}

// ParseColorScheme converte o valor recebido no esquema de cores.
// Vazio resulta no esquema padrão.
func ParseColorScheme(value string) (ColorScheme, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", string(ColorSchemeDefault):
		return ColorSchemeDefault, nil
	case string(ColorSchemeAlt):
		return ColorSchemeAlt, nil
	}
	return ColorSchemeDefault, &QueryError{Param: "color_scheme", Value: value}
}

// ColorSchemeForClicks alterna o esquema a cada clique no botão de cores
func ColorSchemeForClicks(clicks int) ColorScheme {
	if clicks%2 == 0 {
		return ColorSchemeDefault
	}
	return ColorSchemeAlt
}

// ParseChartType converte o valor recebido no tipo de gráfico.
// Vazio resulta em heatmap.
func ParseChartType(value string) (ChartType, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", string(ChartTypeHeatmap):
		return ChartTypeHeatmap, nil
	case string(ChartTypeBoxplot), "box":
		return ChartTypeBoxplot, nil
	}
	return ChartTypeHeatmap, &QueryError{Param: "chart_type", Value: value}
}

// ParseYear converte o ano recebido
func ParseYear(value string) (int, error) {
	year, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, &QueryError{Param: "year", Value: value}
	}
	return year, nil
}

// Selection é o estado atual dos filtros do painel
type Selection struct {
	Year        int
	ColorScheme ColorScheme
	ChartType   ChartType
}
