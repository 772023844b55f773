package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/car-sales-dashboard-api/infrastructure/repository/mocks"
	"github.com/vfg2006/car-sales-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/car-sales-dashboard-api/internal/domain"
	analyzingmocks "github.com/vfg2006/car-sales-dashboard-api/internal/usecases/analyzing/mocks"
	"github.com/vfg2006/car-sales-dashboard-api/internal/usecases/ranking"
	"github.com/vfg2006/car-sales-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/car-sales-dashboard-api/pkg/log"
	"go.uber.org/mock/gomock"
)

var testYears = domain.AvailableYears{Years: []int{2022, 2023}, Selected: 2022}

func serve(t *testing.T, h http.Handler, method, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(method, target, nil))
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v))
}

func TestGetTopBrands(t *testing.T) {
	log.SetupTestLogger()

	tests := []struct {
		name     string
		target   string
		setup    func(a *analyzingmocks.MockAnalyzer)
		expected domain.BrandTotal
	}{
		{
			name:   "usa o ano selecionado por padrão",
			target: "/v1/sales/top-brands",
			setup: func(a *analyzingmocks.MockAnalyzer) {
				a.EXPECT().AvailableYears().Return(testYears)
				a.EXPECT().TopBrands(gomock.Any(), 2022, 10).Return(domain.BrandTotal{
					Year:   2022,
					Brands: []domain.BrandTotalItem{{Company: "Ford", Revenue: 1000}},
				})
			},
			expected: domain.BrandTotal{Year: 2022, Brands: []domain.BrandTotalItem{{Company: "Ford", Revenue: 1000}}},
		},
		{
			name:   "ano e limite informados",
			target: "/v1/sales/top-brands?year=2023&limit=3",
			setup: func(a *analyzingmocks.MockAnalyzer) {
				a.EXPECT().TopBrands(gomock.Any(), 2023, 3).Return(domain.BrandTotal{Year: 2023, Brands: []domain.BrandTotalItem{}})
			},
			expected: domain.BrandTotal{Year: 2023, Brands: []domain.BrandTotalItem{}},
		},
		{
			name:   "limite inválido usa o padrão",
			target: "/v1/sales/top-brands?year=2023&limit=abc",
			setup: func(a *analyzingmocks.MockAnalyzer) {
				a.EXPECT().TopBrands(gomock.Any(), 2023, 10).Return(domain.BrandTotal{Year: 2023, Brands: []domain.BrandTotalItem{}})
			},
			expected: domain.BrandTotal{Year: 2023, Brands: []domain.BrandTotalItem{}},
		},
		{
			name:     "ano inválido resulta em ranking vazio",
			target:   "/v1/sales/top-brands?year=abc",
			setup:    func(a *analyzingmocks.MockAnalyzer) {},
			expected: domain.BrandTotal{Brands: []domain.BrandTotalItem{}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			analyzer := analyzingmocks.NewMockAnalyzer(ctrl)
			tt.setup(analyzer)

			rec := serve(t, GetTopBrands(analyzer), http.MethodGet, tt.target)
			assert.Equal(t, http.StatusOK, rec.Code)

			var got domain.BrandTotal
			decode(t, rec, &got)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestGetTransmissionShare(t *testing.T) {
	log.SetupTestLogger()

	tests := []struct {
		name     string
		target   string
		expected domain.ColorScheme
	}{
		{name: "sem parâmetros", target: "/v1/sales/transmission-share", expected: domain.ColorSchemeDefault},
		{name: "esquema alternativo", target: "/v1/sales/transmission-share?color_scheme=alt", expected: domain.ColorSchemeAlt},
		{name: "esquema desconhecido", target: "/v1/sales/transmission-share?color_scheme=neon", expected: domain.ColorSchemeDefault},
		{name: "cliques ímpares", target: "/v1/sales/transmission-share?clicks=3", expected: domain.ColorSchemeAlt},
		{name: "cliques pares", target: "/v1/sales/transmission-share?clicks=4", expected: domain.ColorSchemeDefault},
		{name: "cliques inválidos", target: "/v1/sales/transmission-share?clicks=x", expected: domain.ColorSchemeDefault},
		{name: "color_scheme tem precedência", target: "/v1/sales/transmission-share?color_scheme=default&clicks=1", expected: domain.ColorSchemeDefault},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			analyzer := analyzingmocks.NewMockAnalyzer(ctrl)
			analyzer.EXPECT().TransmissionShare(tt.expected).Return(domain.TransmissionShare{
				ColorScheme: tt.expected,
				Colors:      tt.expected.Palette(),
				Shares:      []domain.TransmissionCount{{Transmission: "Auto", Count: 2}},
			})

			rec := serve(t, GetTransmissionShare(analyzer), http.MethodGet, tt.target)
			assert.Equal(t, http.StatusOK, rec.Code)

			var got domain.TransmissionShare
			decode(t, rec, &got)
			assert.Equal(t, tt.expected, got.ColorScheme)
			assert.Len(t, got.Colors, 3)
		})
	}
}

func TestGetIncomePrice(t *testing.T) {
	log.SetupTestLogger()

	tests := []struct {
		target   string
		expected domain.ChartType
	}{
		{target: "/v1/sales/income-price", expected: domain.ChartTypeHeatmap},
		{target: "/v1/sales/income-price?chart_type=boxplot", expected: domain.ChartTypeBoxplot},
		{target: "/v1/sales/income-price?chart_type=box", expected: domain.ChartTypeBoxplot},
		{target: "/v1/sales/income-price?chart_type=pie", expected: domain.ChartTypeHeatmap},
	}

	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			analyzer := analyzingmocks.NewMockAnalyzer(ctrl)
			analyzer.EXPECT().IncomePrice(gomock.Any(), tt.expected).Return(domain.IncomePriceView{ChartType: tt.expected})

			rec := serve(t, GetIncomePrice(analyzer), http.MethodGet, tt.target)
			assert.Equal(t, http.StatusOK, rec.Code)

			var got domain.IncomePriceView
			decode(t, rec, &got)
			assert.Equal(t, tt.expected, got.ChartType)
		})
	}
}

func TestGetDashboard(t *testing.T) {
	log.SetupTestLogger()

	t.Run("monta a seleção a partir da query", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		analyzer := analyzingmocks.NewMockAnalyzer(ctrl)

		expected := domain.Selection{Year: 2023, ColorScheme: domain.ColorSchemeAlt, ChartType: domain.ChartTypeBoxplot}
		analyzer.EXPECT().Dashboard(gomock.Any(), expected).Return(&domain.Dashboard{
			Dataset: domain.DatasetInfo{ID: "ds1", Rows: 2},
			Years:   testYears,
		}, nil)

		rec := serve(t, GetDashboard(analyzer), http.MethodGet, "/v1/dashboard?year=2023&color_scheme=alt&chart_type=boxplot")
		assert.Equal(t, http.StatusOK, rec.Code)

		var got domain.Dashboard
		decode(t, rec, &got)
		assert.Equal(t, "ds1", got.Dataset.ID)
		assert.Equal(t, testYears, got.Years)
	})

	t.Run("valores inválidos usam os padrões", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		analyzer := analyzingmocks.NewMockAnalyzer(ctrl)

		expected := domain.Selection{Year: 0, ColorScheme: domain.ColorSchemeDefault, ChartType: domain.ChartTypeHeatmap}
		analyzer.EXPECT().Dashboard(gomock.Any(), expected).Return(&domain.Dashboard{}, nil)

		rec := serve(t, GetDashboard(analyzer), http.MethodGet, "/v1/dashboard?year=20x3&color_scheme=neon&chart_type=pie")
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("erro no cálculo retorna 500", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		analyzer := analyzingmocks.NewMockAnalyzer(ctrl)
		analyzer.EXPECT().AvailableYears().Return(testYears)
		analyzer.EXPECT().Dashboard(gomock.Any(), gomock.Any()).Return(nil, context.Canceled)

		rec := serve(t, GetDashboard(analyzer), http.MethodGet, "/v1/dashboard")
		assert.Equal(t, http.StatusInternalServerError, rec.Code)

		var got apiErrors.APIError
		decode(t, rec, &got)
		assert.Equal(t, apiErrors.ErrInternalServer, got.Code)
	})
}

func TestGetBrandRanking(t *testing.T) {
	log.SetupTestLogger()

	t.Run("banco desabilitado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		analyzer := analyzingmocks.NewMockAnalyzer(ctrl)

		rec := serve(t, GetBrandRanking(nil, analyzer), http.MethodGet, "/v1/brands/ranking?year=2022")
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})

	tests := []struct {
		name           string
		target         string
		setup          func(a *analyzingmocks.MockAnalyzer, repo *mocks.MockBrandRankingRepository)
		expectedStatus int
		expectedCode   string
	}{
		{
			name:   "retorna o snapshot do ano",
			target: "/v1/brands/ranking?year=2022",
			setup: func(a *analyzingmocks.MockAnalyzer, repo *mocks.MockBrandRankingRepository) {
				repo.EXPECT().GetByYear(gomock.Any(), 2022).Return(&domain.BrandRankingResponse{
					Year:    2022,
					Ranking: []domain.BrandRankingItem{{Company: "Ford", Position: 1}},
				}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "sem ano usa o selecionado",
			target: "/v1/brands/ranking",
			setup: func(a *analyzingmocks.MockAnalyzer, repo *mocks.MockBrandRankingRepository) {
				a.EXPECT().AvailableYears().Return(testYears)
				repo.EXPECT().GetByYear(gomock.Any(), 2022).Return(&domain.BrandRankingResponse{Year: 2022}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "ano inválido",
			target:         "/v1/brands/ranking?year=abc",
			setup:          func(a *analyzingmocks.MockAnalyzer, repo *mocks.MockBrandRankingRepository) {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   apiErrors.ErrInvalidFormat,
		},
		{
			name:   "sem snapshot",
			target: "/v1/brands/ranking?year=2021",
			setup: func(a *analyzingmocks.MockAnalyzer, repo *mocks.MockBrandRankingRepository) {
				repo.EXPECT().GetByYear(gomock.Any(), 2021).Return(nil, nil)
			},
			expectedStatus: http.StatusNotFound,
			expectedCode:   apiErrors.ErrNotFound,
		},
		{
			name:   "erro no banco",
			target: "/v1/brands/ranking?year=2022",
			setup: func(a *analyzingmocks.MockAnalyzer, repo *mocks.MockBrandRankingRepository) {
				repo.EXPECT().GetByYear(gomock.Any(), 2022).Return(nil, errors.New("connection refused"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedCode:   apiErrors.ErrDatabaseOperation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			analyzer := analyzingmocks.NewMockAnalyzer(ctrl)
			repo := mocks.NewMockBrandRankingRepository(ctrl)
			tt.setup(analyzer, repo)

			service := ranking.NewBrandRankingService(repo)
			rec := serve(t, GetBrandRanking(service, analyzer), http.MethodGet, tt.target)
			assert.Equal(t, tt.expectedStatus, rec.Code)

			if tt.expectedCode != "" {
				var got apiErrors.APIError
				decode(t, rec, &got)
				assert.Equal(t, tt.expectedCode, got.Code)
			}
		})
	}
}

type fakeSnapshotJob struct {
	triggered int
}

func (f *fakeSnapshotJob) TriggerManualSync() { f.triggered++ }

func (f *fakeSnapshotJob) GetStatus() map[string]any {
	return map[string]any{"sync_enabled": true, "sync_running": false}
}

func TestCronJobs(t *testing.T) {
	log.SetupTestLogger()

	job := &fakeSnapshotJob{}
	rt := router.New(router.WithRoutes(CronJobs(CronJobServices{BrandRankingSnapshotService: job})...))

	rec := serve(t, rt, http.MethodPost, "/v1/cron/brand-ranking/run")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, job.triggered)

	rec = serve(t, rt, http.MethodPost, "/v1/cron/meta/run")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, 1, job.triggered)

	rec = serve(t, rt, http.MethodGet, "/v1/cron/status")
	assert.Equal(t, http.StatusOK, rec.Code)
	var status map[string]map[string]any
	decode(t, rec, &status)
	assert.Equal(t, true, status[CronJobTypeBrandRanking]["sync_enabled"])

	disabled := router.New(router.WithRoutes(CronJobs(CronJobServices{})...))
	rec = serve(t, disabled, http.MethodPost, "/v1/cron/all/run")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	rec = serve(t, disabled, http.MethodGet, "/v1/cron/status")
	decode(t, rec, &status)
	assert.Equal(t, false, status[CronJobTypeBrandRanking]["sync_enabled"])
}

func TestRunCronJob_MissingType(t *testing.T) {
	log.SetupTestLogger()

	req := httptest.NewRequest(http.MethodPost, "/v1/cron//run", nil)
	req = req.WithContext(context.WithValue(req.Context(), httprouter.ParamsKey, httprouter.Params{}))
	rec := httptest.NewRecorder()

	RunCronJob(CronJobServices{}).ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHealthcheckHandler(t *testing.T) {
	log.SetupTestLogger()

	ctrl := gomock.NewController(t)
	analyzer := analyzingmocks.NewMockAnalyzer(ctrl)
	analyzer.EXPECT().DatasetInfo().Return(domain.DatasetInfo{ID: "ds1", Rows: 42})

	rec := serve(t, HealthcheckHandler(analyzer), http.MethodGet, "/healthcheck")
	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	decode(t, rec, &body)
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "ds1", body["dataset_id"])
	assert.EqualValues(t, 42, body["rows"])
}
