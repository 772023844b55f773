package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/car-sales-dashboard-api/internal/api/handler"
	"github.com/vfg2006/car-sales-dashboard-api/internal/config"
	"github.com/vfg2006/car-sales-dashboard-api/internal/domain"
	"github.com/vfg2006/car-sales-dashboard-api/internal/usecases/analyzing/mocks"
	"github.com/vfg2006/car-sales-dashboard-api/pkg/log"
	"github.com/vfg2006/car-sales-dashboard-api/pkg/middleware"
	"go.uber.org/mock/gomock"
)

func TestNewHandler(t *testing.T) {
	log.SetupTestLogger()

	ctrl := gomock.NewController(t)
	analyzer := mocks.NewMockAnalyzer(ctrl)

	cfg := &config.Config{
		Server: config.Server{AllowedOrigins: []string{"http://localhost:3000"}},
	}
	h := NewHandler(cfg, analyzer, nil, handler.CronJobServices{})

	t.Run("rota do dataset", func(t *testing.T) {
		analyzer.EXPECT().DatasetInfo().Return(domain.DatasetInfo{ID: "ds1"})

		req := httptest.NewRequest(http.MethodGet, "/v1/dataset", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
		assert.NotEmpty(t, rec.Header().Get(middleware.CorrelationIDHeader))
		assert.Contains(t, rec.Body.String(), `"id":"ds1"`)
	})

	t.Run("rota inexistente", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/unknown", nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("ranking sem banco", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/brands/ranking?year=2022", nil))

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})
}
