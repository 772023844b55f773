package analyzing

import (
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/car-sales-dashboard-api/internal/domain"
	"github.com/vfg2006/car-sales-dashboard-api/pkg/log"
)

func TestService_TransmissionShare(t *testing.T) {
	ds := newDataset(t,
		sale("01/05/2022", "Ford", 10_000, 50_000, "Auto"),
	)
	service := NewService(ds)

	tests := []struct {
		scheme   domain.ColorScheme
		expected domain.ColorScheme
		colors   []string
	}{
		{scheme: domain.ColorSchemeDefault, expected: domain.ColorSchemeDefault, colors: []string{"#636EFA", "#EF553B", "#00CC96"}},
		{scheme: domain.ColorSchemeAlt, expected: domain.ColorSchemeAlt, colors: []string{"#AB63FA", "#FFA15A", "#19D3F3"}},
		{scheme: "", expected: domain.ColorSchemeDefault, colors: []string{"#636EFA", "#EF553B", "#00CC96"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.scheme), func(t *testing.T) {
			share := service.TransmissionShare(tt.scheme)
			assert.Equal(t, tt.expected, share.ColorScheme)
			assert.Equal(t, tt.colors, share.Colors)
			assert.Equal(t, []domain.TransmissionCount{{Transmission: "Auto", Count: 1}}, share.Shares)
		})
	}
}

func TestService_IncomePrice(t *testing.T) {
	log.SetupTestLogger()

	ds := newDataset(t,
		sale("01/05/2022", "Ford", 10_000, 50_000, "Auto"),
		sale("01/06/2022", "Ford", 500_000, 50_000, "Auto"),
	)
	service := NewService(ds)

	heatmap := service.IncomePrice(context.Background(), domain.ChartTypeHeatmap)
	assert.Equal(t, domain.ChartTypeHeatmap, heatmap.ChartType)
	require.NotNil(t, heatmap.Matrix)
	assert.Nil(t, heatmap.Distribution)
	assert.Equal(t, 1, heatmap.Matrix.Total())
	assert.Equal(t, 1, heatmap.Matrix.Unbinned)

	boxplot := service.IncomePrice(context.Background(), domain.ChartTypeBoxplot)
	assert.Equal(t, domain.ChartTypeBoxplot, boxplot.ChartType)
	assert.Nil(t, boxplot.Matrix)
	assert.Equal(t, []float64{10_000, 500_000}, boxplot.Distribution[0].Prices)

	fallback := service.IncomePrice(context.Background(), "pie")
	assert.Equal(t, domain.ChartTypeHeatmap, fallback.ChartType)
	assert.NotNil(t, fallback.Matrix)
}

func TestService_LogsCorrelationID(t *testing.T) {
	log.SetupTestLogger()
	hook := logtest.NewGlobal()
	defer logrus.StandardLogger().ReplaceHooks(make(logrus.LevelHooks))

	ds := newDataset(t,
		sale("01/05/2022", "Ford", 500_000, 50_000, "Auto"),
	)
	service := NewService(ds)
	ctx, correlationID := log.WithCorrelationID(context.Background())

	service.TopBrands(ctx, 1999, DefaultTopBrands)
	service.IncomePrice(ctx, domain.ChartTypeHeatmap)

	entries := hook.AllEntries()
	require.Len(t, entries, 2)
	for _, entry := range entries {
		assert.Equal(t, correlationID, entry.Data["correlation_id"], entry.Message)
		assert.Equal(t, ds.Info().ID, entry.Data["dataset_id"])
	}
}

func TestService_Dashboard(t *testing.T) {
	log.SetupTestLogger()

	ds := newDataset(t,
		sale("03/15/2021", "Ford", 10_000, 45_000, "Auto"),
		sale("03/20/2021", "Ford", 5_000, 300_000, "Manual"),
		sale("04/02/2022", "Kia", 20_000, 60_000, "Auto"),
	)
	service := NewService(ds)

	t.Run("calcula todos os gráficos para a seleção", func(t *testing.T) {
		dashboard, err := service.Dashboard(context.Background(), domain.Selection{
			Year:        2021,
			ColorScheme: domain.ColorSchemeAlt,
			ChartType:   domain.ChartTypeBoxplot,
		})
		require.NoError(t, err)

		assert.Equal(t, ds.Info(), dashboard.Dataset)
		assert.Equal(t, []int{2021, 2022}, dashboard.Years.Years)
		assert.Len(t, dashboard.MonthlyRevenue, 2)
		assert.Equal(t, []domain.BrandTotalItem{{Company: "Ford", Revenue: 15_000}}, dashboard.TopBrands.Brands)
		assert.Equal(t, domain.ColorSchemeAlt, dashboard.TransmissionShare.ColorScheme)
		assert.Equal(t, domain.ChartTypeBoxplot, dashboard.IncomePrice.ChartType)
		assert.Len(t, dashboard.IncomePrice.Distribution, len(domain.IncomeGroups))
	})

	t.Run("contexto cancelado", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		dashboard, err := service.Dashboard(ctx, domain.Selection{Year: 2021})
		assert.ErrorIs(t, err, context.Canceled)
		assert.Nil(t, dashboard)
	})

	t.Run("consultas não alteram o dataset", func(t *testing.T) {
		before := ds.At(0)
		_, err := service.Dashboard(context.Background(), domain.Selection{Year: 2022})
		require.NoError(t, err)
		assert.Equal(t, before, ds.At(0))
		assert.Equal(t, 3, ds.Len())
	})
}
