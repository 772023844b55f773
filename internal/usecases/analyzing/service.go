package analyzing

import (
	"context"

	"github.com/vfg2006/car-sales-dashboard-api/internal/dataset"
	"github.com/vfg2006/car-sales-dashboard-api/internal/domain"
	"github.com/vfg2006/car-sales-dashboard-api/pkg/log"
	"golang.org/x/sync/errgroup"
)

// Analyzer define as consultas do painel de vendas
type Analyzer interface {
	// DatasetInfo retorna os metadados do dataset carregado
	DatasetInfo() domain.DatasetInfo

	// AvailableYears retorna os anos disponíveis para o filtro de ano
	AvailableYears() domain.AvailableYears

	// MonthlyRevenue retorna a receita mensal
	MonthlyRevenue() domain.MonthlyRevenue

	// TopBrands retorna as marcas com maior receita no ano
	TopBrands(ctx context.Context, year int, limit int) domain.BrandTotal

	// TransmissionShare retorna a distribuição por transmissão com as cores do esquema
	TransmissionShare(scheme domain.ColorScheme) domain.TransmissionShare

	// IncomePrice retorna o heatmap ou os dados de boxplot de renda x preço
	IncomePrice(ctx context.Context, chartType domain.ChartType) domain.IncomePriceView

	// Dashboard calcula os dados de todos os gráficos para a seleção
	Dashboard(ctx context.Context, selection domain.Selection) (*domain.Dashboard, error)
}

// Service calcula os agregados sobre o dataset somente leitura
type Service struct {
	dataset *dataset.Dataset
}

// NewService cria o serviço de análise para o dataset
func NewService(ds *dataset.Dataset) *Service {
	return &Service{dataset: ds}
}

func (s *Service) logger(ctx context.Context) log.Logger {
	return log.ForContext(ctx).WithField("dataset_id", s.dataset.Info().ID)
}

func (s *Service) DatasetInfo() domain.DatasetInfo {
	return s.dataset.Info()
}

func (s *Service) AvailableYears() domain.AvailableYears {
	return AvailableYears(s.dataset)
}

func (s *Service) MonthlyRevenue() domain.MonthlyRevenue {
	return MonthlyRevenue(s.dataset)
}

func (s *Service) TopBrands(ctx context.Context, year int, limit int) domain.BrandTotal {
	result := TopBrands(s.dataset, year, limit)
	if len(result.Brands) == 0 {
		s.logger(ctx).WithField("year", year).Debug("top-brands: nenhuma venda encontrada para o ano")
	}
	return result
}

func (s *Service) TransmissionShare(scheme domain.ColorScheme) domain.TransmissionShare {
	if scheme != domain.ColorSchemeAlt {
		scheme = domain.ColorSchemeDefault
	}
	return domain.TransmissionShare{
		ColorScheme: scheme,
		Colors:      scheme.Palette(),
		Shares:      TransmissionShare(s.dataset),
	}
}

func (s *Service) IncomePrice(ctx context.Context, chartType domain.ChartType) domain.IncomePriceView {
	if chartType == domain.ChartTypeBoxplot {
		return domain.IncomePriceView{
			ChartType:    chartType,
			Distribution: PriceDistributionByIncome(s.dataset),
		}
	}

	matrix := IncomeByPriceMatrix(s.dataset)
	if matrix.Unbinned > 0 {
		s.logger(ctx).WithField("dataset_unbinned", matrix.Unbinned).Debug("income-price: vendas fora das faixas de renda ou preço")
	}
	return domain.IncomePriceView{
		ChartType: domain.ChartTypeHeatmap,
		Matrix:    &matrix,
	}
}

// Dashboard calcula cada gráfico em paralelo; o dataset é compartilhado apenas para leitura
func (s *Service) Dashboard(ctx context.Context, selection domain.Selection) (*domain.Dashboard, error) {
	dashboard := &domain.Dashboard{
		Dataset: s.dataset.Info(),
		Years:   s.AvailableYears(),
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := gctx.Err(); err != nil {
			return err
		}
		dashboard.MonthlyRevenue = s.MonthlyRevenue()
		return nil
	})

	g.Go(func() error {
		if err := gctx.Err(); err != nil {
			return err
		}
		dashboard.TopBrands = s.TopBrands(gctx, selection.Year, DefaultTopBrands)
		return nil
	})

	g.Go(func() error {
		if err := gctx.Err(); err != nil {
			return err
		}
		dashboard.TransmissionShare = s.TransmissionShare(selection.ColorScheme)
		return nil
	})

	g.Go(func() error {
		if err := gctx.Err(); err != nil {
			return err
		}
		dashboard.IncomePrice = s.IncomePrice(gctx, selection.ChartType)
		return nil
	})

	if err := g.Wait(); err != nil {
		s.logger(ctx).WithError(err).Warn("dashboard: cálculo interrompido")
		return nil, err
	}

	s.logger(ctx).WithFields(log.Fields{
		"year":         selection.Year,
		"color_scheme": selection.ColorScheme,
		"chart_type":   selection.ChartType,
	}).Debug("dashboard: dados calculados")

	return dashboard, nil
}
