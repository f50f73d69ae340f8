package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/sales-charts-api/internal/api/handler"
	"github.com/vfg2006/sales-charts-api/internal/api/handler/router"
	"github.com/vfg2006/sales-charts-api/internal/config"
	"github.com/vfg2006/sales-charts-api/internal/usecases/charting"
	"github.com/vfg2006/sales-charts-api/internal/usecases/loading"
	"github.com/vfg2006/sales-charts-api/pkg/middleware"
)

const (
	shutdownTimeout   = 15 * time.Second
	readHeaderTimeout = 2 * time.Second
)

type Server struct {
	httpServer *http.Server
	router     *router.Router
}

// New monta o servidor HTTP. Healthcheck e métricas ficam fora do limite de requisições.
func New(
	cfg *config.Config,
	loader loading.SnapshotLoader,
	chartService charting.ChartService,
	refresher handler.SalesRefresher,
	metricsHandler http.Handler,
) (*Server, error) {
	if cfg == nil {
		return nil, errors.New("configuração do servidor ausente")
	}

	limited := []router.Middleware{
		middleware.RateLimit(cfg.HTTP.RateLimitRPS, cfg.HTTP.RateLimitBurst),
	}

	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Metrics(metricsHandler)...),
		router.WithMiddlewares(limited, handler.Sales(loader)...),
		router.WithMiddlewares(limited, handler.Charts(chartService)...),
		router.WithMiddlewares(limited, handler.CronJobs(refresher)...),
	)

	chain := alice.New(
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(cfg.HTTP.AllowedOrigins),
	)

	return &Server{
		router: rt,
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
			Handler:           chain.Then(rt),
			ReadHeaderTimeout: readHeaderTimeout,
		},
	}, nil
}

// Handler expõe a cadeia de middlewares e rotas
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Run atende requisições até receber um sinal de término ou o contexto ser cancelado
func (s *Server) Run(ctx context.Context) error {
	for _, route := range s.router.Routes() {
		logrus.WithFields(logrus.Fields{
			"method": route.Method,
			"path":   route.Path,
		}).Debug("Rota registrada")
	}

	serveErr := make(chan error, 1)
	go func() {
		logrus.WithField("address", s.httpServer.Addr).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(signals)

	select {
	case sig := <-signals:
		logrus.WithField("signal", sig.String()).Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	case err := <-serveErr:
		if err != nil {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
			return err
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	logrus.WithField("timeout", shutdownTimeout.String()).Info("Iniciando desligamento gracioso do servidor")

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}
