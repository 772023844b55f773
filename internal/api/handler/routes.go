package handler

import (
	"net/http"

	"github.com/vfg2006/car-sales-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/car-sales-dashboard-api/internal/usecases/analyzing"
	"github.com/vfg2006/car-sales-dashboard-api/internal/usecases/ranking"
)

func Healthcheck(analyzer analyzing.Analyzer) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(analyzer),
		},
	}
}

func Dataset(analyzer analyzing.Analyzer) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/dataset",
			Method:  http.MethodGet,
			Handler: GetDatasetInfo(analyzer),
		},
	}
}

func Sales(analyzer analyzing.Analyzer) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/sales/years",
			Method:  http.MethodGet,
			Handler: GetAvailableYears(analyzer),
		},
		{
			Path:    "/v1/sales/monthly-revenue",
			Method:  http.MethodGet,
			Handler: GetMonthlyRevenue(analyzer),
		},
		{
			Path:    "/v1/sales/top-brands",
			Method:  http.MethodGet,
			Handler: GetTopBrands(analyzer),
		},
		{
			Path:    "/v1/sales/transmission-share",
			Method:  http.MethodGet,
			Handler: GetTransmissionShare(analyzer),
		},
		{
			Path:    "/v1/sales/income-price",
			Method:  http.MethodGet,
			Handler: GetIncomePrice(analyzer),
		},
	}
}

func Dashboard(analyzer analyzing.Analyzer) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/dashboard",
			Method:  http.MethodGet,
			Handler: GetDashboard(analyzer),
		},
	}
}

func BrandRanking(service ranking.RankingService, analyzer analyzing.Analyzer) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/brands/ranking",
			Method:  http.MethodGet,
			Handler: GetBrandRanking(service, analyzer),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
