// Package scheduler contém os serviços agendados do painel
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/car-sales-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/car-sales-dashboard-api/internal/config"
	"github.com/vfg2006/car-sales-dashboard-api/internal/domain"
	"github.com/vfg2006/car-sales-dashboard-api/internal/usecases/analyzing"
)

type BrandRankingSnapshotConfig struct {
	CronSchedule string
	SyncEnabled  bool
	Limit        int
}

// BrandRankingSnapshotService grava periodicamente o top de marcas de cada ano
type BrandRankingSnapshotService struct {
	scheduler           *gocron.Scheduler
	analyzer            analyzing.Analyzer
	rankingRepo         repository.BrandRankingRepository
	config              BrandRankingSnapshotConfig
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSyncError       string
}

func NewBrandRankingSnapshotService(
	analyzer analyzing.Analyzer,
	rankingRepo repository.BrandRankingRepository,
	cfg *config.Config,
) *BrandRankingSnapshotService {
	snapshotConfig := BrandRankingSnapshotConfig{
		CronSchedule: cfg.BrandRankingSnapshot.CronSchedule,
		SyncEnabled:  cfg.BrandRankingSnapshot.SyncEnabled,
		Limit:        cfg.BrandRankingSnapshot.Limit,
	}
	if snapshotConfig.Limit <= 0 {
		snapshotConfig.Limit = analyzing.DefaultTopBrands
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": snapshotConfig.CronSchedule,
		"enabled":       snapshotConfig.SyncEnabled,
	}).Info("Configuração do agendador de snapshot do ranking de marcas carregada")

	return &BrandRankingSnapshotService{
		scheduler:   gocron.NewScheduler(time.Local),
		analyzer:    analyzer,
		rankingRepo: rankingRepo,
		config:      snapshotConfig,
	}
}

func (s *BrandRankingSnapshotService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Snapshot do ranking de marcas desabilitado por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de snapshot do ranking de marcas")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.UpdateBrandRanking(ctx); err != nil {
			logrus.WithError(err).Error("Erro no snapshot do ranking de marcas")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar snapshot do ranking de marcas: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron de snapshot do ranking de marcas")
		s.scheduler.Stop()
	}()

	return nil
}

// UpdateBrandRanking calcula o top de marcas de cada ano e grava no repositório
func (s *BrandRankingSnapshotService) UpdateBrandRanking(ctx context.Context) error {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Warn("Snapshot do ranking de marcas já está em execução")
		return nil
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	err := s.snapshotAllYears(ctx)

	s.syncMutex.Lock()
	s.syncRunning = false
	s.lastSyncCompletedAt = time.Now()
	s.lastSyncError = ""
	if err != nil {
		s.lastSyncError = err.Error()
	}
	s.syncMutex.Unlock()

	return err
}

func (s *BrandRankingSnapshotService) snapshotAllYears(ctx context.Context) error {
	info := s.analyzer.DatasetInfo()
	years := s.analyzer.AvailableYears().Years

	logrus.WithFields(logrus.Fields{
		"dataset_id": info.ID,
		"years":      len(years),
	}).Info("Iniciando snapshot do ranking de marcas")

	for _, year := range years {
		if err := ctx.Err(); err != nil {
			return err
		}

		previous, err := s.rankingRepo.GetByYear(ctx, year)
		if err != nil {
			return fmt.Errorf("erro ao buscar ranking anterior de %d: %w", year, err)
		}

		brands := s.analyzer.TopBrands(ctx, year, s.config.Limit)
		rankings := buildBrandRanking(brands, previous, info.ID)

		if err := s.rankingRepo.ReplaceYearRanking(ctx, year, rankings); err != nil {
			return fmt.Errorf("erro ao gravar ranking de %d: %w", year, err)
		}

		logrus.WithFields(logrus.Fields{
			"year":   year,
			"brands": len(rankings),
		}).Debug("Ranking de marcas gravado")
	}

	logrus.Info("Snapshot do ranking de marcas concluído")
	return nil
}

// buildBrandRanking numera as marcas e compara com as posições do snapshot anterior
func buildBrandRanking(brands domain.BrandTotal, previous *domain.BrandRankingResponse, datasetID string) []*domain.BrandRankingItem {
	previousPositions := make(map[string]int)
	if previous != nil {
		for _, item := range previous.Ranking {
			previousPositions[item.Company] = item.Position
		}
	}

	rankings := make([]*domain.BrandRankingItem, 0, len(brands.Brands))
	for i, brand := range brands.Brands {
		position := i + 1
		item := &domain.BrandRankingItem{
			Year:      brands.Year,
			Company:   brand.Company,
			Revenue:   brand.Revenue,
			Position:  position,
			DatasetID: datasetID,
		}

		if prev, ok := previousPositions[brand.Company]; ok && prev > 0 {
			item.PreviousPosition = prev
			item.PositionChange = prev - position
		}

		rankings = append(rankings, item)
	}

	return rankings
}

// TriggerManualSync dispara o snapshot fora do agendamento
func (s *BrandRankingSnapshotService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Snapshot do ranking de marcas já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando snapshot manual do ranking de marcas")
	go func() {
		if err := s.UpdateBrandRanking(context.Background()); err != nil {
			logrus.WithError(err).Error("Erro no snapshot manual do ranking de marcas")
		}
	}()
}

func (s *BrandRankingSnapshotService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_running":           s.syncRunning,
		"sync_cron":              s.config.CronSchedule,
		"sync_enabled":           s.config.SyncEnabled,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_sync_error":        s.lastSyncError,
	}
}
