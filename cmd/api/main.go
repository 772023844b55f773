package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/car-sales-dashboard-api/infrastructure/database"
	"github.com/vfg2006/car-sales-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/car-sales-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/car-sales-dashboard-api/internal/api"
	"github.com/vfg2006/car-sales-dashboard-api/internal/config"
	"github.com/vfg2006/car-sales-dashboard-api/internal/dataset"
	"github.com/vfg2006/car-sales-dashboard-api/internal/scheduler"
	"github.com/vfg2006/car-sales-dashboard-api/internal/usecases/analyzing"
	"github.com/vfg2006/car-sales-dashboard-api/internal/usecases/ranking"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var pgConn *postgres.Connection
	if cfg.Database.Enabled {
		pgConn = pgconn(ctx, cfg.Database)
		defer pgConn.Close()

		if cfg.Database.Migrate {
			if err := database.RunMigrations(pgConn); err != nil {
				logrus.WithError(err).Fatal("Erro ao executar migrations")
			}
		}
	}

	// Falha na carga do dataset impede a inicialização
	ds, err := loadDataset(ctx, cfg, pgConn)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao carregar o dataset de vendas")
	}

	analyzer := analyzing.NewService(ds)

	var rankingService ranking.RankingService
	var snapshotService *scheduler.BrandRankingSnapshotService
	if pgConn != nil {
		brandRankingRepo := repository.NewBrandRankingRepository(pgConn)
		rankingService = ranking.NewBrandRankingService(brandRankingRepo)
		snapshotService = scheduler.NewBrandRankingSnapshotService(analyzer, brandRankingRepo, cfg)

		if err := snapshotService.Start(ctx); err != nil {
			logrus.WithError(err).Error("Erro ao iniciar o agendador de snapshot do ranking de marcas")
		} else {
			logrus.Info("Agendador de snapshot do ranking de marcas iniciado com sucesso")
		}
	}

	server, err := api.New(cfg, analyzer, rankingService, snapshotService)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// loadDataset carrega as vendas da origem configurada
func loadDataset(ctx context.Context, cfg *config.Config, conn *postgres.Connection) (*dataset.Dataset, error) {
	if cfg.Dataset.Source == config.DatasetSourcePostgres {
		salesRepo := repository.NewSalesRecordRepository(conn, cfg.Dataset.Table)
		return dataset.LoadFromSource(ctx, salesRepo, cfg.Dataset.Table)
	}

	return dataset.LoadFile(cfg.Dataset.Path, dataset.Options{
		Delimiter: cfg.Dataset.DelimiterRune(),
		Sheet:     cfg.Dataset.Sheet,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
