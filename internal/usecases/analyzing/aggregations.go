package analyzing

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/car-sales-dashboard-api/internal/dataset"
	"github.com/vfg2006/car-sales-dashboard-api/internal/domain"
	"github.com/vfg2006/car-sales-dashboard-api/pkg/utils"
)

// DefaultTopBrands é a quantidade de marcas do ranking quando não informada
const DefaultTopBrands = 10

// revenueAggregator acumula receita por chave preservando a ordem de aparição
type revenueAggregator[K comparable] struct {
	order  []K
	totals map[K]decimal.Decimal
}

func newRevenueAggregator[K comparable]() *revenueAggregator[K] {
	return &revenueAggregator[K]{totals: make(map[K]decimal.Decimal)}
}

func (a *revenueAggregator[K]) add(key K, amount decimal.Decimal) {
	current, ok := a.totals[key]
	if !ok {
		a.order = append(a.order, key)
	}
	a.totals[key] = current.Add(amount)
}

func toRevenue(amount decimal.Decimal) float64 {
	return utils.RoundWithTwoDecimalPlace(amount.InexactFloat64())
}

// MonthlyRevenue soma o preço das vendas por mês, em ordem cronológica
func MonthlyRevenue(ds *dataset.Dataset) domain.MonthlyRevenue {
	agg := newRevenueAggregator[time.Time]()
	ds.Each(func(sale domain.Sale) {
		agg.add(sale.Month(), sale.Price)
	})

	months := append([]time.Time(nil), agg.order...)
	sort.Slice(months, func(i, j int) bool {
		return months[i].Before(months[j])
	})

	revenue := make(domain.MonthlyRevenue, 0, len(months))
	for _, month := range months {
		revenue = append(revenue, domain.MonthlyRevenuePoint{
			Month:   month,
			Revenue: toRevenue(agg.totals[month]),
		})
	}
	return revenue
}

// TopBrands retorna as n marcas com maior receita no ano, em ordem decrescente.
// Empates mantêm a ordem em que a marca aparece no dataset. Um ano sem vendas
// resulta em uma lista vazia.
func TopBrands(ds *dataset.Dataset, year int, n int) domain.BrandTotal {
	if n <= 0 {
		n = DefaultTopBrands
	}

	agg := newRevenueAggregator[string]()
	ds.Each(func(sale domain.Sale) {
		if sale.Year() == year {
			agg.add(sale.Company, sale.Price)
		}
	})

	companies := append([]string(nil), agg.order...)
	sort.SliceStable(companies, func(i, j int) bool {
		return agg.totals[companies[i]].GreaterThan(agg.totals[companies[j]])
	})
	if len(companies) > n {
		companies = companies[:n]
	}

	brands := make([]domain.BrandTotalItem, 0, len(companies))
	for _, company := range companies {
		brands = append(brands, domain.BrandTotalItem{
			Company: company,
			Revenue: toRevenue(agg.totals[company]),
		})
	}

	return domain.BrandTotal{Year: year, Brands: brands}
}

// TransmissionShare conta as vendas por tipo de transmissão, na ordem de aparição
func TransmissionShare(ds *dataset.Dataset) []domain.TransmissionCount {
	order := make([]string, 0)
	counts := make(map[string]int)
	ds.Each(func(sale domain.Sale) {
		if _, ok := counts[sale.Transmission]; !ok {
			order = append(order, sale.Transmission)
		}
		counts[sale.Transmission]++
	})

	shares := make([]domain.TransmissionCount, 0, len(order))
	for _, transmission := range order {
		shares = append(shares, domain.TransmissionCount{
			Transmission: transmission,
			Count:        counts[transmission],
		})
	}
	return shares
}

// IncomeByPriceMatrix cruza faixa de renda e faixa de preço contando as vendas.
// Todas as combinações aparecem; vendas sem alguma das faixas entram em Unbinned.
func IncomeByPriceMatrix(ds *dataset.Dataset) domain.IncomeByPriceMatrix {
	incomeIdx := make(map[domain.IncomeGroup]int, len(domain.IncomeGroups))
	for i, group := range domain.IncomeGroups {
		incomeIdx[group] = i
	}
	priceIdx := make(map[domain.PriceRange]int, len(domain.PriceRanges))
	for j, rng := range domain.PriceRanges {
		priceIdx[rng] = j
	}

	counts := make([][]int, len(domain.IncomeGroups))
	for i := range counts {
		counts[i] = make([]int, len(domain.PriceRanges))
	}

	unbinned := 0
	ds.Each(func(sale domain.Sale) {
		if sale.IncomeGroup == nil || sale.PriceRange == nil {
			unbinned++
			return
		}
		counts[incomeIdx[*sale.IncomeGroup]][priceIdx[*sale.PriceRange]]++
	})

	return domain.IncomeByPriceMatrix{
		IncomeGroups: append([]domain.IncomeGroup(nil), domain.IncomeGroups...),
		PriceRanges:  append([]domain.PriceRange(nil), domain.PriceRanges...),
		Counts:       counts,
		Unbinned:     unbinned,
	}
}

// PriceDistributionByIncome agrupa os preços brutos por faixa de renda, na ordem
// do dataset. As estatísticas do boxplot ficam a cargo de quem desenha o gráfico.
func PriceDistributionByIncome(ds *dataset.Dataset) domain.PriceDistribution {
	prices := make(map[domain.IncomeGroup][]float64, len(domain.IncomeGroups))
	ds.Each(func(sale domain.Sale) {
		if sale.IncomeGroup == nil {
			return
		}
		prices[*sale.IncomeGroup] = append(prices[*sale.IncomeGroup], sale.Price.InexactFloat64())
	})

	distribution := make(domain.PriceDistribution, 0, len(domain.IncomeGroups))
	for _, group := range domain.IncomeGroups {
		values := prices[group]
		if values == nil {
			values = []float64{}
		}
		distribution = append(distribution, domain.IncomePrices{
			IncomeGroup: group,
			Prices:      values,
		})
	}
	return distribution
}

// AvailableYears lista os anos das vendas na ordem em que aparecem
func AvailableYears(ds *dataset.Dataset) domain.AvailableYears {
	seen := make(map[int]bool)
	years := make([]int, 0)
	ds.Each(func(sale domain.Sale) {
		if !seen[sale.Year()] {
			seen[sale.Year()] = true
			years = append(years, sale.Year())
		}
	})

	result := domain.AvailableYears{Years: years}
	if len(years) > 0 {
		result.Selected = years[0]
	}
	return result
}
