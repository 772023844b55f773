package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/car-sales-dashboard-api/pkg/apiErrors"
)

// Tipos de cron job que podem ser executadas manualmente
const (
	CronJobTypeBrandRanking = "brand-ranking"
	CronJobTypeAll          = "all"
)

// SnapshotJob é uma cron job que pode ser disparada fora do agendamento
type SnapshotJob interface {
	TriggerManualSync()
	GetStatus() map[string]any
}

// CronJobServices contém os serviços de cron necessários para executar manualmente
type CronJobServices struct {
	BrandRankingSnapshotService SnapshotJob
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunCronJob")

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		switch cronType {
		case CronJobTypeBrandRanking, CronJobTypeAll:
			if services.BrandRankingSnapshotService == nil {
				apiErrors.WriteError(w, apiErrors.ErrServiceUnavailable, "Serviço de snapshot do ranking de marcas não disponível", nil)
				return
			}
			services.BrandRankingSnapshotService.TriggerManualSync()
		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: brand-ranking, all", nil)
			return
		}

		writeJSON(w, r, map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		})
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetCronStatus")

		brandRanking := map[string]any{"sync_enabled": false}
		if services.BrandRankingSnapshotService != nil {
			brandRanking = services.BrandRankingSnapshotService.GetStatus()
		}

		writeJSON(w, r, map[string]any{
			CronJobTypeBrandRanking: brandRanking,
		})
	}
}
