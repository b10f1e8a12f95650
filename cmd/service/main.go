package main

import (
	"context"
	"fmt"
	stdlog "log"
	"net"
	"net/http"
	_ "net/http/pprof" //nolint:gosec // localhost-only ${PPROF_PORT}
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	application "takeout/internal/app"
	"takeout/internal/handlers/rest/cart_add_post"
	"takeout/internal/handlers/rest/cart_clean_delete"
	"takeout/internal/handlers/rest/cart_list_get"
	"takeout/internal/handlers/rest/cart_sub_post"
	"takeout/internal/handlers/rest/dish_delete"
	"takeout/internal/handlers/rest/dish_get"
	"takeout/internal/handlers/rest/dish_list_get"
	"takeout/internal/handlers/rest/dish_page_get"
	"takeout/internal/handlers/rest/dish_post"
	"takeout/internal/handlers/rest/dish_put"
	"takeout/internal/handlers/rest/dish_status_post"
	"takeout/internal/handlers/rest/healthcheck_head"
	"takeout/internal/handlers/rest/ping_get"
	"takeout/internal/pkg/config"
	"takeout/internal/pkg/dotenv"
	metrics_system "takeout/internal/pkg/metrics"
	"takeout/internal/pkg/middlewares/auth"
	"takeout/internal/pkg/middlewares/graceful_shutdown"
	"takeout/internal/pkg/middlewares/metrics"
	"takeout/internal/pkg/middlewares/rate_limiter"
	"takeout/internal/pkg/middlewares/timeout"
	"takeout/internal/pkg/postgres"
	"takeout/internal/pkg/redis"
	"takeout/pkg/logger"
	"takeout/pkg/logger/zap_adapter"
	"takeout/pkg/token_bucket"
)

func main() {
	if err := dotenv.Load(); err != nil {
		stdlog.Fatalf("failed to load .env file: %v", err)
	}

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

	mainLog.Info("starting takeout application")

	cfg, err := config.LoadService()
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

//nolint:contextcheck // ongoingCtx и shutdownCtx наследуются от context.Background() намеренно, это часть graceful shutdown
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

	if cfg.Database.AutoMigrate {
		if err := postgres.Migrate(ctx, log, &cfg.Database); err != nil {
			return fmt.Errorf("migrations: %w", err)
		}
	}

	pool, err := postgres.NewConnPool(ctx, log, &cfg.Database)
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}
	defer pool.Close()

	redisClient, err := redis.NewClient(ctx, log, &cfg.Redis)
	if err != nil {
		return fmt.Errorf("redis: %w", err)
	}
	defer func() {
		err := redisClient.Close()
		if err != nil {
			runLog.Error("failed to close redis client",
				logger.NewField("error", err),
			)
		}
	}()

	businessApp, err := application.InitializeApplication(ctx, log, pool, pgxv5.DefaultCtxGetter, redisClient, cfg)
	if err != nil {
		return fmt.Errorf("business logic: %w", err)
	}

	metrics_system.StartSystemMetricsCollector(ctx)

	// ongoingCtx используется для BaseContext и не должен отменяться при SIGTERM.
	// Он отменяется только после server.Shutdown() для завершения in-flight запросов.
	// https://victoriametrics.com/blog/go-graceful-shutdown/#b-use-basecontext-to-provide-a-global-context-to-all-connections
	ongoingCtx, stopOngoingGracefully := context.WithCancel(context.Background())
	defer stopOngoingGracefully()

	checks := []healthcheck_head.Check{
		pool.Ping,
		func(ctx context.Context) error {
			return redisClient.Ping(ctx).Err()
		},
	}

	// основной http сервер
	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: initRouter(ongoingCtx, log, &isShuttingDown, businessApp, cfg, checks),
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
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()
	// основной http сервер

	// pprof http сервер
	var pprofServer *http.Server
	var pprofServerErr chan error
	if cfg.Server.PprofEnabled {
		pprofServer = &http.Server{
			Addr:    fmt.Sprintf(":%s", cfg.Server.PprofPort),
			Handler: initPprofRouter(&isShuttingDown),
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
			if err := pprofServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				pprofServerErr <- err
			}
		}()
	}
	// pprof http сервер

	select {
	case <-ctx.Done():
		runLog.Info("Shutdown signal received")
	case err := <-serverErr:
		return fmt.Errorf("server: %w", err)
	case err := <-pprofServerErr: // if !cfg.Server.PprofEnabled будет nil по умолчанию, и данный кейс будет проигнорирован
		return fmt.Errorf("pprof server: %w", err)
	}

	stop()
	isShuttingDown.Store(true)

	time.Sleep(readinessDrainDelay)
	runLog.Info("draining requests")

	// shutdownCtx должен быть независим от ctx, который уже отменен на этом этапе.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownPeriod)
	defer cancel()

	var shutdownErr error
	err = server.Shutdown(shutdownCtx)
	if pprofServer != nil {
		shutdownErr = pprofServer.Shutdown(shutdownCtx)
		if shutdownErr != nil {
			runLog.Error("pprof server shutdown error", logger.NewField("error", shutdownErr))
		} else {
			runLog.Info("pprof server stopped")
		}
	}

	select {
	case <-businessApp.BackgroundWorkers.Done():
		runLog.Info("background tasks stopped")
	case <-shutdownCtx.Done():
		runLog.Warn("background tasks did not stop in time")
	}

	stopOngoingGracefully()
	if err != nil || shutdownErr != nil {
		runLog.Info("Graceful shutdown timeout, forcing close")
		time.Sleep(shutdownHardPeriod)
	}

	runLog.Info("Server stopped")
	return nil
}

func initRouter(
	ongoingCtx context.Context,
	log logger.Logger,
	isShuttingDown *atomic.Bool,
	app *application.Application,
	cfg *config.Config,
	checks []healthcheck_head.Check,
) http.Handler {
	router := mux.NewRouter()

	router.Use(graceful_shutdown.Middleware(isShuttingDown, ongoingCtx))

	router.Use(timeout.Middleware(cfg.Server.RequestTimeout))
	router.Use(metrics.Middleware(log))
	limiter := token_bucket.NewKeyed(cfg.Server.RateLimiterQPS, float64(cfg.Server.RateLimiterBurst))
	router.Use(rate_limiter.Middleware(log, cfg.Server.RateLimiterQPS, limiter, rate_limiter.ByRemoteIP))
	router.Handle("/metrics", promhttp.Handler())

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown, checks...)).Methods("HEAD")
	router.Handle("/ping", ping_get.New(log, time.Now)).Methods("GET")

	user := router.PathPrefix("/user").Subrouter()
	user.Use(auth.Middleware(log, []byte(cfg.Auth.UserSecret), auth.UserClaim))

	user.Handle("/shoppingCart/add", cart_add_post.New(log, app.ServiceCart)).Methods("POST")
	user.Handle("/shoppingCart/sub", cart_sub_post.New(log, app.ServiceCart)).Methods("POST")
	user.Handle("/shoppingCart/list", cart_list_get.New(log, app.ServiceCart)).Methods("GET")
	user.Handle("/shoppingCart/clean", cart_clean_delete.New(log, app.ServiceCart)).Methods("DELETE")
	user.Handle("/dish/list", dish_list_get.New(log, app.ServiceDish)).Methods("GET")

	admin := router.PathPrefix("/admin").Subrouter()
	admin.Use(auth.Middleware(log, []byte(cfg.Auth.AdminSecret), auth.EmployeeClaim))

	admin.Handle("/dish", dish_post.New(log, app.ServiceDish)).Methods("POST")
	admin.Handle("/dish", dish_put.New(log, app.ServiceDish)).Methods("PUT")
	admin.Handle("/dish", dish_delete.New(log, app.ServiceDish)).Methods("DELETE")
	admin.Handle("/dish/page", dish_page_get.New(log, app.ServiceDish)).Methods("GET")
	admin.Handle("/dish/list", dish_list_get.New(log, app.ServiceDish)).Methods("GET")
	admin.Handle("/dish/status/{status}", dish_status_post.New(log, app.ServiceDish)).Methods("POST")
	admin.Handle("/dish/{id:[0-9]+}", dish_get.New(log, app.ServiceDish)).Methods("GET")

	return router
}

func initPprofRouter(isShuttingDown *atomic.Bool) http.Handler {
	router := mux.NewRouter()

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown)).Methods("HEAD")
	router.PathPrefix("/debug/pprof/").Handler(http.DefaultServeMux)

	return router
}
