package main

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpSwagger "github.com/swaggo/http-swagger/v2"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	appconfig "elastic-views/internal/config"
	"elastic-views/internal/infra/elastic"
	"elastic-views/internal/observability/logging"
	"elastic-views/internal/observability/slo"
	"elastic-views/internal/observability/tracing"
	"elastic-views/internal/repository"
	"elastic-views/internal/resilience/circuitbreaker"
	"elastic-views/pkg/config"

	searchUC "elastic-views/internal/usecase/search"

	hhttp "elastic-views/internal/handler/http"
	"elastic-views/internal/handler/http/middleware"
	"elastic-views/internal/handler/http/requestid"
	hsearch "elastic-views/internal/handler/http/search"

	_ "elastic-views/docs" // swagger docs
)

// @title           Elastic Views API
// @version         1.0
// @description     Elasticsearch キーワード検索を HTML / JSON で提供する API
// @description     検索語と件数のみからページングを計算し、1 リクエストにつき 1 回だけバックエンドを呼び出します。

// @contact.name   API Support

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /

func main() {
	logger := initLogger()
	cfg := loadConfig(logger)

	version := getVersion()
	tp := initTracing(logger, version)
	defer func() {
		if err := tp.Shutdown(context.Background()); err != nil {
			logger.Error("failed to shut down tracer provider", slog.Any("error", err))
		}
	}()

	client := initElastic(logger, cfg)
	serverComponents := setupServer(logger, cfg, client, version)

	runServer(logger, serverComponents, version)
}

// initLogger initializes and returns a structured logger based on environment configuration.
func initLogger() *slog.Logger {
	logger := logging.New()
	slog.SetDefault(logger)
	return logger
}

// loadConfig loads and validates the search configuration, exiting on error.
func loadConfig(logger *slog.Logger) *appconfig.SearchConfig {
	cfg, err := appconfig.LoadSearchConfig()
	if err != nil {
		logger.Error("failed to load search configuration", slog.Any("error", err))
		os.Exit(1)
	}
	return cfg
}

// initElastic creates the Elasticsearch client. The cluster is not required
// to be reachable at startup; /ready reports it.
func initElastic(logger *slog.Logger, cfg *appconfig.SearchConfig) *elastic.Client {
	client, err := elastic.NewClient(cfg.ElasticConfig())
	if err != nil {
		logger.Error("failed to create elasticsearch client", slog.Any("error", err))
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx); err != nil {
		logger.Warn("elasticsearch not reachable at startup",
			slog.Any("addresses", cfg.Elasticsearch.URLs),
			slog.Any("error", err))
	}
	return client
}

// initTracing installs the global tracer provider. Spans are exported over
// OTLP/gRPC when OTEL_EXPORTER_OTLP_ENDPOINT is set.
func initTracing(logger *slog.Logger, version string) *sdktrace.TracerProvider {
	expCfg := tracing.LoadExporterConfig()
	exporters, err := tracing.NewExporters(context.Background(), expCfg)
	if err != nil {
		logger.Error("failed to create trace exporter", slog.Any("error", err))
		os.Exit(1)
	}
	if expCfg.Endpoint != "" {
		logger.Info("trace export enabled",
			slog.String("endpoint", expCfg.Endpoint),
			slog.Float64("sample_ratio", expCfg.SampleRatio))
	}

	return tracing.InitProvider(tracing.ProviderConfig{
		ServiceName: "elastic-views",
		Version:     version,
		SampleRatio: expCfg.SampleRatio,
		Exporters:   exporters,
	})
}

// getVersion returns the application version from environment or default.
func getVersion() string {
	version := os.Getenv("VERSION")
	if version == "" {
		version = "dev"
	}
	return version
}

// ServerComponents holds components needed for server operation and cleanup.
type ServerComponents struct {
	Handler     http.Handler
	RateLimiter *middleware.RateLimiter
	IdleTTL     time.Duration
	SLOTracker  *slo.Tracker
}

// setupServer configures and returns the HTTP handler with all routes and middleware.
func setupServer(logger *slog.Logger, cfg *appconfig.SearchConfig, client *elastic.Client, version string) *ServerComponents {
	var repo repository.SearchRepository = client
	var breaker hhttp.BreakerState
	if cfg.BreakerEnabled {
		cbCfg := circuitbreaker.ElasticsearchConfig()
		// 4xx は検索語の誤りであり、クラスタ障害ではない
		cbCfg.IsSuccessful = func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled) || elastic.IsClientError(err)
		}
		sb := circuitbreaker.NewSearchBreakerWithConfig(client, cbCfg)
		repo, breaker = sb, sb
		logger.Info("circuit breaker enabled", slog.String("name", cbCfg.Name))
	}

	svc, err := searchUC.NewService(repo, cfg.ServiceConfig(), cfg.Formatter(), logger)
	if err != nil {
		logger.Error("invalid search configuration", slog.Any("error", err))
		os.Exit(1)
	}

	proxyConfig, err := middleware.LoadTrustedProxyConfig()
	if err != nil {
		logger.Error("failed to load trusted proxy configuration", slog.Any("error", err))
		os.Exit(1)
	}
	ipExtractor := middleware.NewIPExtractor(proxyConfig)
	if proxyConfig.Enabled {
		logger.Info("rate limiting: trusted proxy mode enabled",
			slog.Int("trusted_proxies_count", len(proxyConfig.AllowedCIDRs)))
	} else {
		logger.Info("rate limiting: using RemoteAddr (proxy headers ignored)")
	}

	rateLimitConfig := middleware.LoadRateLimitConfig()
	var limiter *middleware.RateLimiter
	if rateLimitConfig.Enabled {
		limiter = middleware.NewRateLimiter(rateLimitConfig, ipExtractor)
		logger.Info("rate limiting initialized",
			slog.Int("requests_per_minute", rateLimitConfig.RequestsPerMinute),
			slog.Int("burst", rateLimitConfig.Burst))
	} else {
		logger.Warn("rate limiting is DISABLED - not recommended for production")
	}

	tracker := slo.NewTracker(slo.DefaultMaxSamples)

	mux := setupRoutes(logger, svc, client, breaker, limiter, tracker, cfg.Index, version)
	handler := applyMiddleware(logger, mux)

	return &ServerComponents{
		Handler:     handler,
		RateLimiter: limiter,
		IdleTTL:     rateLimitConfig.IdleTTL,
		SLOTracker:  tracker,
	}
}

// setupRoutes registers all HTTP routes.
func setupRoutes(
	logger *slog.Logger,
	svc *searchUC.Service,
	client *elastic.Client,
	breaker hhttp.BreakerState,
	limiter *middleware.RateLimiter,
	tracker *slo.Tracker,
	index string,
	version string,
) *http.ServeMux {
	mux := http.NewServeMux()

	// ヘルスチェックエンドポイント
	mux.Handle("/health", &hhttp.HealthHandler{Backend: client, Breaker: breaker, Index: index, Version: version})
	mux.Handle("/ready", &hhttp.ReadyHandler{Backend: client})
	mux.Handle("/live", &hhttp.LiveHandler{})
	mux.Handle("/metrics", hhttp.MetricsHandler())

	// Swagger UI
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	searchMW := hsearch.Middleware{
		CORS:    middleware.CORS(middleware.LoadCORSConfig(), logger),
		Observe: tracker.Middleware,
	}
	if limiter != nil {
		searchMW.RateLimit = limiter.Middleware
	}
	hsearch.Register(mux, svc, logger, searchMW)

	return mux
}

// applyMiddleware wraps the handler with middleware chain.
// Middleware order: Request ID → Tracing → Recovery → Logging → Gzip → CSP → Timeout → Body Limit → Metrics
func applyMiddleware(logger *slog.Logger, handler http.Handler) http.Handler {
	requestTimeout := config.GetEnvDuration("SEARCH_REQUEST_TIMEOUT", 30*time.Second)
	compress, err := middleware.Compress(middleware.LoadCompressConfig())
	if err != nil {
		logger.Error("failed to configure response compression", slog.Any("error", err))
		os.Exit(1)
	}

	middlewareChain := handler

	// Apply in reverse order (innermost to outermost)
	middlewareChain = hhttp.MetricsMiddleware(middlewareChain)
	middlewareChain = hhttp.LimitRequestBody(1 << 16)(middlewareChain)
	middlewareChain = hhttp.Timeout(requestTimeout)(middlewareChain)
	middlewareChain = middleware.CSP(middleware.LoadCSPConfig())(middlewareChain)
	middlewareChain = compress(middlewareChain)
	middlewareChain = hhttp.Logging(logger)(middlewareChain)
	middlewareChain = hhttp.Recover(logger)(middlewareChain)
	middlewareChain = tracing.Middleware(middlewareChain)
	middlewareChain = requestid.Middleware(middlewareChain)

	return middlewareChain
}

// runServer starts the HTTP server and handles graceful shutdown.
func runServer(logger *slog.Logger, components *ServerComponents, version string) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if components.RateLimiter != nil {
		interval := config.GetEnvDuration("SEARCH_RATE_LIMIT_CLEANUP_INTERVAL", time.Minute)
		go components.RateLimiter.StartCleanup(ctx, interval)
		logger.Info("rate limit cleanup started",
			slog.Duration("interval", interval),
			slog.Duration("idle_ttl", components.IdleTTL))
	}

	sloInterval := config.GetEnvDuration("SEARCH_SLO_INTERVAL", time.Minute)
	go components.SLOTracker.Run(ctx, sloInterval, logger)

	addr := config.GetEnvString("HTTP_ADDR", ":8080")
	srv := &http.Server{
		Addr:              addr,
		Handler:           components.Handler,
		ReadHeaderTimeout: 10 * time.Second, // Prevent Slowloris attacks
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	go func() {
		logger.Info("server starting",
			slog.String("addr", addr),
			slog.String("version", version))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", slog.Any("error", err))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server...")

	cancel()
	logger.Debug("background cleanup goroutines cancelled")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown failed", slog.Any("error", err))
	}
	logger.Info("server stopped")
}
