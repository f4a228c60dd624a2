package main

import (
	"context"
	"errors"
	"fmt"
	stdlog "log"
	"net"
	"net/http"
	_ "net/http/pprof" //nolint:gosec // pprof слушает отдельный ${PPROF_PORT}
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	application "logistics/internal/app"
	"logistics/internal/entities"
	"logistics/internal/handlers/rest/delivery_finish_put"
	"logistics/internal/handlers/rest/deliveryman_delete"
	"logistics/internal/handlers/rest/deliveryman_get"
	"logistics/internal/handlers/rest/deliveryman_post"
	"logistics/internal/handlers/rest/deliveryman_put"
	"logistics/internal/handlers/rest/deliverymen_get"
	"logistics/internal/handlers/rest/healthcheck_head"
	"logistics/internal/handlers/rest/pickup_put"
	"logistics/internal/handlers/rest/pickups_get"
	"logistics/internal/handlers/rest/ping_get"
	"logistics/internal/pkg/config"
	"logistics/internal/pkg/dotenv"
	metrics_system "logistics/internal/pkg/metrics"
	"logistics/internal/pkg/middlewares/graceful_shutdown"
	"logistics/internal/pkg/middlewares/metrics"
	"logistics/internal/pkg/middlewares/rate_limiter"
	"logistics/internal/pkg/middlewares/request_id"
	"logistics/internal/pkg/middlewares/timeout"
	"logistics/internal/pkg/postgres"
	"logistics/pkg/logger"
	"logistics/pkg/logger/zap_adapter"
	"logistics/pkg/token_bucket"
)

const systemMetricsInterval = 5 * time.Second

func main() {
	zapLogger, err := zap_adapter.NewZapAdapter(os.Getenv("LOG_LEVEL"))
	if err != nil {
		stdlog.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		if err := zapLogger.Sync(); err != nil {
			stdlog.Printf("failed to sync logger: %v", err)
		}
	}()

	var appLogger logger.Logger = zapLogger
	mainLog := appLogger.With()

	mainLog.Info("starting logistics service")

	if _, err := os.Stat(".env"); err == nil {
		if err := dotenv.Load(); err != nil {
			mainLog.Error("failed to load .env file", logger.NewField("error", err))
			return
		}
	} else {
		mainLog.Warn("no .env file found, using system environment variables")
	}

	if err := dotenv.ApplyCommandLine(); err != nil {
		mainLog.Error("apply command line flags", logger.NewField("error", err))
		return
	}

	cfg, err := config.Load()
	if err != nil {
		mainLog.Error("load config", logger.NewField("error", err))
		return
	}

	err = run(context.Background(), cfg, appLogger)
	if err != nil {
		mainLog.Error("application failed", logger.NewField("error", err))
		return
	}
}

//nolint:contextcheck // shutdown-контексты намеренно наследуются от context.Background()
func run(ctx context.Context, cfg *config.Config, log logger.Logger) error {
	const (
		shutdownPeriod      = 15 * time.Second
		shutdownHardPeriod  = 3 * time.Second
		readinessDrainDelay = 5 * time.Second
	)

	// https://victoriametrics.com/blog/go-graceful-shutdown/#b-use-basecontext-to-provide-a-global-context-to-all-connections
	var isShuttingDown atomic.Bool

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	runLog := log.With()

	pool, err := postgres.NewConnPool(ctx, log, &cfg.Database)
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}
	defer pool.Close()

	// фоновые задачи живут до сигнала остановки
	businessApp, err := application.InitializeApplication(ctx, log, pool, pgxv5.DefaultCtxGetter, cfg)
	if err != nil {
		return fmt.Errorf("business logic: %w", err)
	}

	go metrics_system.RunSystemMetricsCollector(ctx, systemMetricsInterval)

	// ongoingCtx не отменяется по SIGTERM, только после server.Shutdown(),
	// чтобы запросы в полете успели завершиться.
	ongoingCtx, stopOngoingGracefully := context.WithCancel(context.Background())
	defer stopOngoingGracefully()

	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: initRouter(log, &isShuttingDown, businessApp, cfg.Server),
		BaseContext: func(_ net.Listener) context.Context {
			return ongoingCtx
		},

		ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		defer close(serverErr)
		runLog.Info("server starting",
			logger.NewField("port", cfg.Server.Port),
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	var pprofServer *http.Server
	var pprofServerErr chan error
	if cfg.Server.PprofEnabled {
		pprofServer = &http.Server{
			Addr:    fmt.Sprintf(":%s", cfg.Server.PprofPort),
			Handler: initPprofRouter(&isShuttingDown, businessApp.DB),
			BaseContext: func(_ net.Listener) context.Context {
				return ongoingCtx
			},

			ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
			ReadTimeout:       60 * time.Second,
			WriteTimeout:      60 * time.Second,
			IdleTimeout:       60 * time.Second,
		}

		pprofServerErr = make(chan error, 1)
		go func() {
			defer close(pprofServerErr)
			runLog.Info("pprof server starting",
				logger.NewField("port", cfg.Server.PprofPort),
			)
			if err := pprofServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				pprofServerErr <- err
			}
		}()
	}

	select {
	case <-ctx.Done():
		runLog.Info("shutdown signal received")
	case err := <-serverErr:
		return fmt.Errorf("server: %w", err)
	case err := <-pprofServerErr: // nil-канал при выключенном pprof никогда не сработает
		return fmt.Errorf("pprof server: %w", err)
	}

	stop()
	isShuttingDown.Store(true)

	time.Sleep(readinessDrainDelay)
	runLog.Info("draining requests")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownPeriod)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	var pprofErr error
	if pprofServer != nil {
		pprofErr = pprofServer.Shutdown(shutdownCtx)
		if pprofErr != nil {
			runLog.Error("pprof server shutdown", logger.NewField("error", pprofErr))
		}
	}

	stopOngoingGracefully()
	if err != nil || pprofErr != nil {
		runLog.Info("graceful shutdown timeout, forcing close")
		time.Sleep(shutdownHardPeriod)
	}

	if err := businessApp.BackgroundWorkers.Wait(); err != nil {
		runLog.Error("background workers", logger.NewField("error", err))
	}

	runLog.Info("server stopped")
	return nil
}

func initRouter(log logger.Logger, isShuttingDown *atomic.Bool, app *application.Application, cfg config.HTTPServer) http.Handler {
	router := mux.NewRouter()

	router.Use(graceful_shutdown.Middleware(isShuttingDown))
	router.Use(request_id.Middleware())
	router.Use(timeout.Middleware(cfg.RequestTimeout))
	router.Use(metrics.Middleware(log))
	router.Use(rate_limiter.Middleware(log, cfg.RateLimiterQPS, token_bucket.NewTokenBucket(cfg.RateLimiterBurst, float64(cfg.RateLimiterQPS))))

	router.Handle("/metrics", promhttp.Handler())
	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown, app.DB)).Methods(http.MethodHead)
	router.Handle("/ping", ping_get.New(log)).Methods(http.MethodGet)

	router.Handle("/deliverymen", deliverymen_get.New(log, app.ServiceDeliveryman)).Methods(http.MethodGet)
	router.Handle("/deliveryman", deliveryman_post.New(log, app.ServiceDeliveryman)).Methods(http.MethodPost)
	router.Handle("/deliveryman", deliveryman_put.New(log, app.ServiceDeliveryman)).Methods(http.MethodPut)
	router.Handle("/deliveryman/{id:[0-9]+}", deliveryman_get.New(log, app.ServiceDeliveryman)).Methods(http.MethodGet)
	router.Handle("/deliveryman/{id:[0-9]+}", deliveryman_delete.New(log, app.ServiceDeliveryman)).Methods(http.MethodDelete)

	router.Handle("/deliveryman/{deliveryman_id}/deliveries", pickups_get.New(log, app.ServicePickup, entities.PickupActive)).Methods(http.MethodGet)
	router.Handle("/deliveryman/{deliveryman_id}/deliveries/done", pickups_get.New(log, app.ServicePickup, entities.PickupCompleted)).Methods(http.MethodGet)
	router.Handle("/deliveryman/{deliveryman_id}/deliveries/{order_id}", pickup_put.New(log, app.ServicePickup)).Methods(http.MethodPut)
	router.Handle("/deliveryman/{deliveryman_id}/deliveries/{order_id}/finish", delivery_finish_put.New(log, app.ServicePickup)).Methods(http.MethodPut)

	return router
}

func initPprofRouter(isShuttingDown *atomic.Bool, db healthcheck_head.Pinger) http.Handler {
	router := mux.NewRouter()

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown, db)).Methods(http.MethodHead)
	router.PathPrefix("/debug/pprof/").Handler(http.DefaultServeMux)

	return router
}
