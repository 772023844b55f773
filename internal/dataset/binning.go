package dataset

import (
	"github.com/shopspring/decimal"
	"github.com/vfg2006/car-sales-dashboard-api/internal/domain"
)

var (
	incomeEdges = edges(0, 50_000, 100_000, 200_000, 500_000, 1_000_000, 10_000_000)
	priceEdges  = edges(0, 20_000, 40_000, 60_000, 80_000, 100_000)
)

func edges(values ...int64) []decimal.Decimal {
	out := make([]decimal.Decimal, len(values))
	for i, v := range values {
		out[i] = decimal.NewFromInt(v)
	}
	return out
}

// bucketIndex localiza o valor nos intervalos (lo, hi]. O primeiro limite
// pertence ao primeiro intervalo. Retorna -1 fora dos limites.
func bucketIndex(value decimal.Decimal, bounds []decimal.Decimal) int {
	if len(bounds) < 2 || value.LessThan(bounds[0]) || value.GreaterThan(bounds[len(bounds)-1]) {
		return -1
	}
	for i := 1; i < len(bounds); i++ {
		if value.LessThanOrEqual(bounds[i]) {
			return i - 1
		}
	}
	return -1
}

// IncomeGroupFor retorna a faixa de renda do valor, ou nil fora das faixas
func IncomeGroupFor(income decimal.Decimal) *domain.IncomeGroup {
	idx := bucketIndex(income, incomeEdges)
	if idx < 0 {
		return nil
	}
	group := domain.IncomeGroups[idx]
	return &group
}

// PriceRangeFor retorna a faixa de preço do valor, ou nil fora das faixas
func PriceRangeFor(price decimal.Decimal) *domain.PriceRange {
	idx := bucketIndex(price, priceEdges)
	if idx < 0 {
		return nil
	}
	rng := domain.PriceRanges[idx]
	return &rng
}

// deriveFields preenche os campos derivados da venda
func deriveFields(sale domain.Sale) domain.Sale {
	sale.IncomeGroup = IncomeGroupFor(sale.AnnualIncome)
	sale.PriceRange = PriceRangeFor(sale.Price)
	return sale
}
