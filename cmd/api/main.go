package main

import (
	"context"
	"os"
	"path"
	"runtime"

	"github.com/sirupsen/logrus"

	"github.com/vfg2006/sales-charts-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-charts-api/infrastructure/integrator/salesapi"
	"github.com/vfg2006/sales-charts-api/infrastructure/integrator/salesapi/salesclient"
	"github.com/vfg2006/sales-charts-api/infrastructure/repository"
	"github.com/vfg2006/sales-charts-api/internal/api"
	"github.com/vfg2006/sales-charts-api/internal/config"
	"github.com/vfg2006/sales-charts-api/internal/metrics"
	"github.com/vfg2006/sales-charts-api/internal/scheduler"
	"github.com/vfg2006/sales-charts-api/internal/usecases/charting"
	"github.com/vfg2006/sales-charts-api/internal/usecases/loading"
	"github.com/vfg2006/sales-charts-api/pkg/log"
)

func main() {
	configureWorkingDir()
	log.Setup("info")

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.Setup(cfg.App.LogLevel)
	logrus.Infof("Nível de log configurado para: %s", logrus.GetLevel())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	source, closeSource := salesSource(ctx, cfg)
	defer closeSource()

	dates, err := charting.NewDateFormatter(cfg.Chart.Locale, cfg.Chart.Timezone)
	if err != nil {
		logrus.WithError(err).Fatal("Configuração de data dos gráficos inválida")
	}

	logrus.WithFields(logrus.Fields{
		"source":   source.Name(),
		"locale":   dates.Locale(),
		"layout":   dates.Layout(),
		"timezone": cfg.Chart.Timezone,
	}).Info("Origem de vendas configurada")

	appMetrics := metrics.New()
	loader := loading.NewService(source, appMetrics)
	chartService := charting.NewService(loader, dates)

	refreshService := scheduler.NewSalesRefreshService(loader, cfg.SalesRefresh)
	if err := refreshService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de atualização de vendas")
	} else {
		logrus.Info("Agendador de atualização de vendas iniciado com sucesso")
	}

	server, err := api.New(cfg, loader, chartService, refreshService, appMetrics.Handler())
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureWorkingDir posiciona o processo no diretório do binário para achar o .env
func configureWorkingDir() {
	_, file, _, _ := runtime.Caller(0)
	if err := os.Chdir(path.Dir(file)); err != nil {
		logrus.WithError(err).Debug("Não foi possível mudar o diretório de trabalho")
	}
}

// salesSource escolhe a origem das vendas; a conexão com o Postgres só é aberta quando usada
func salesSource(ctx context.Context, cfg *config.Config) (loading.SalesSource, func()) {
	if cfg.SalesSource != config.SourcePostgres {
		client := salesclient.NewClient(cfg.SalesAPI)
		return salesapi.New(cfg.SalesAPI, client), func() {}
	}

	pgConn := pgconn(ctx, cfg.Database)

	saleRepo, err := repository.NewSaleRepository(pgConn, cfg.Database.SalesTable)
	if err != nil {
		logrus.WithError(err).Fatal("Configuração da tabela de vendas inválida")
	}

	return loading.NewRepositorySource(saleRepo), func() { _ = pgConn.Close() }
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
