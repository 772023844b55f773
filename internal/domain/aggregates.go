package domain

import "time"

// MonthlyRevenuePoint é a receita somada de um mês
type MonthlyRevenuePoint struct {
	Month   time.Time `json:"month"` // Primeiro dia do mês
	Revenue float64   `json:"revenue"`
}

// MonthlyRevenue é a série temporal de receita, em ordem cronológica
type MonthlyRevenue []MonthlyRevenuePoint

// Total soma a receita de todos os meses
func (m MonthlyRevenue) Total() float64 {
	total := 0.0
	for _, point := range m {
		total += point.Revenue
	}
	return total
}

// BrandTotalItem é a receita somada de uma marca
type BrandTotalItem struct {
	Company string  `json:"company"`
	Revenue float64 `json:"revenue"`
}

// BrandTotal é o ranking de marcas por receita, em ordem decrescente
type BrandTotal struct {
	Year   int              `json:"year"`
	Brands []BrandTotalItem `json:"brands"`
}

// TransmissionCount é a quantidade de vendas de um tipo de transmissão
type TransmissionCount struct {
	Transmission string `json:"transmission"`
	Count        int    `json:"count"`
}

// TransmissionShare é a distribuição das vendas por tipo de transmissão
type TransmissionShare struct {
	ColorScheme ColorScheme         `json:"color_scheme"`
	Colors      []string            `json:"colors"`
	Shares      []TransmissionCount `json:"shares"`
}

// IncomeByPriceMatrix é a tabela cruzada faixa de renda x faixa de preço.
// Counts[i][j] corresponde a IncomeGroups[i] e PriceRanges[j].
type IncomeByPriceMatrix struct {
	IncomeGroups []IncomeGroup `json:"income_groups"`
	PriceRanges  []PriceRange  `json:"price_ranges"`
	Counts       [][]int       `json:"counts"`
	Unbinned     int           `json:"unbinned"` // Vendas sem faixa de renda ou de preço
}

// Count retorna a contagem de uma célula
func (m IncomeByPriceMatrix) Count(income IncomeGroup, price PriceRange) int {
	for i, group := range m.IncomeGroups {
		if group != income {
			continue
		}
		for j, rng := range m.PriceRanges {
			if rng == price {
				return m.Counts[i][j]
			}
		}
	}
	return 0
}

// Total soma todas as células da matriz
func (m IncomeByPriceMatrix) Total() int {
	total := 0
	for _, row := range m.Counts {
		for _, count := range row {
			total += count
		}
	}
	return total
}

// IncomePrices são os preços brutos das vendas de uma faixa de renda
type IncomePrices struct {
	IncomeGroup IncomeGroup `json:"income_group"`
	Prices      []float64   `json:"prices"`
}

// PriceDistribution agrupa os preços brutos por faixa de renda, para boxplot
type PriceDistribution []IncomePrices

// IncomePriceView é a resposta do gráfico renda x preço conforme o tipo selecionado
type IncomePriceView struct {
	ChartType    ChartType            `json:"chart_type"`
	Matrix       *IncomeByPriceMatrix `json:"matrix,omitempty"`
	Distribution PriceDistribution    `json:"distribution,omitempty"`
}

// AvailableYears são os anos presentes no dataset, na ordem em que aparecem
type AvailableYears struct {
	Years    []int `json:"years"`
	Selected int   `json:"selected"`
}

// Dashboard reúne os dados de todos os gráficos do painel
type Dashboard struct {
	Dataset           DatasetInfo       `json:"dataset"`
	Years             AvailableYears    `json:"years"`
	MonthlyRevenue    MonthlyRevenue    `json:"monthly_revenue"`
	TopBrands         BrandTotal        `json:"top_brands"`
	TransmissionShare TransmissionShare `json:"transmission_share"`
	IncomePrice       IncomePriceView   `json:"income_price"`
}
