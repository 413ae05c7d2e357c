package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/sbilibin2017/gw-currency-converter/docs"
	"github.com/sbilibin2017/gw-currency-converter/internal/facades"
	"github.com/sbilibin2017/gw-currency-converter/internal/handlers"
	"github.com/sbilibin2017/gw-currency-converter/internal/logger"
	"github.com/sbilibin2017/gw-currency-converter/internal/middlewares"
	"github.com/sbilibin2017/gw-currency-converter/internal/models"
	"github.com/sbilibin2017/gw-currency-converter/internal/repositories"
	"github.com/sbilibin2017/gw-currency-converter/internal/services"

	pb "github.com/sbilibin2017/proto-exchange/exchange"
	httpSwagger "github.com/swaggo/http-swagger"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// Rate source kinds accepted in RATES_SOURCE.
const (
	rateSourceHTTP = "http"
	rateSourceGRPC = "grpc"
)

// @title gw-currency-converter API
// @version 1.0.0
// @description Converts amounts between currencies given by code or symbol using cached exchange rates
// @host localhost:8080
// @BasePath /
// @schemes http
func main() {
	printBuildInfo(os.Stderr)
	configPath, amount, inputCurrency, outputCurrency := parseFlags()

	appHost, appPort, logLevel,
		ratesSource, ratesURL, ratesBase,
		ratesTimeoutSecond, ratesRefreshSecond,
		gwHost, gwPort,
		redisHost, redisPort, redisDB, redisPassword, redisExpSecond,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := logger.Initialize(logLevel); err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer logger.Log.Sync()

	ctx := context.Background()

	source, closeSource, err := newRateSource(ctx,
		ratesSource, ratesURL, ratesTimeoutSecond, ratesRefreshSecond,
		gwHost, gwPort,
		redisHost, redisPort, redisDB, redisPassword, redisExpSecond,
	)
	if err != nil {
		log.Fatalf("failed to set up rate source: %v", err)
	}
	defer closeSource()

	// a given input currency switches to a single conversion on the command line
	if inputCurrency != "" {
		if err := runCLI(ctx, os.Stdout, source, ratesBase, ratesRefreshSecond,
			amount, inputCurrency, outputCurrency,
		); err != nil {
			closeSource()
			logger.Log.Sync()
			os.Exit(1)
		}
		return
	}

	if err := run(ctx, appHost, appPort, source, ratesBase, ratesRefreshSecond); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo(w io.Writer) {
	fmt.Fprintf(w, "Version: %s, Commit: %s, Build: %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path and
// the conversion parameters used on the command line.
func parseFlags() (configPath string, amount float64, inputCurrency, outputCurrency string) {
	c := flag.String("c", "config.env", "Path to configuration file")
	a := flag.Float64("amount", 0, "Amount to convert")
	in := flag.String("input_currency", "", "Input currency code or symbol, serves HTTP when empty")
	out := flag.String("output_currency", "", "Output currency code or symbol, all currencies when empty")
	flag.Parse()
	return *c, *a, *in, *out
}

// parseConfig loads environment variables from a file and returns
// all application, rate source, gRPC, and Redis configuration.
func parseConfig(path string) (
	appHost, appPort, logLevel string,
	ratesSource, ratesURL, ratesBase string,
	ratesTimeoutSecond, ratesRefreshSecond int,
	gwHost, gwPort string,
	redisHost string, redisPort, redisDB int, redisPassword string, redisExpSecond int,
	err error,
) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	appHost = getEnv("APP_HOST", "localhost")
	appPort = getEnv("APP_PORT", "8080")
	logLevel = getEnv("APP_LOG_LEVEL", "info")

	// Rate source config
	ratesSource = getEnv("RATES_SOURCE", rateSourceHTTP)
	ratesURL = getEnv("RATES_URL", facades.DefaultRatesURL)
	ratesBase = getEnv("RATES_BASE_CURRENCY", models.USD)
	if ratesTimeoutSecond, err = strconv.Atoi(getEnv("RATES_TIMEOUT_SECOND", "5")); err != nil {
		return
	}
	if ratesRefreshSecond, err = strconv.Atoi(getEnv("RATES_REFRESH_SECOND", "21600")); err != nil {
		return
	}

	// gRPC config
	gwHost = getEnv("GW_EXCHANGER_HOST", "localhost")
	gwPort = getEnv("GW_EXCHANGER_PORT", "50051")

	// Redis config, an empty host disables the shared snapshot
	redisHost = getEnv("REDIS_HOST", "")
	if redisPort, err = strconv.Atoi(getEnv("REDIS_PORT", "6379")); err != nil {
		return
	}
	if redisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return
	}
	redisPassword = getEnv("REDIS_PASSWORD", "")
	if redisExpSecond, err = strconv.Atoi(getEnv("REDIS_EXP_SECOND", "3600")); err != nil {
		return
	}

	return
}

// newRateSource connects the configured upstream rate source and, when Redis is
// configured, wraps it with the shared snapshot. The returned func releases connections.
func newRateSource(ctx context.Context,
	ratesSource, ratesURL string, ratesTimeoutSecond, ratesRefreshSecond int,
	gwHost, gwPort string,
	redisHost string, redisPort, redisDB int, redisPassword string, redisExpSecond int,
) (services.RateSource, func(), error) {
	var (
		source  services.RateSource
		closers []func()
	)
	cleanup := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
		closers = nil
	}

	switch ratesSource {
	case rateSourceHTTP:
		logger.Log.Infof("Using HTTP rate source %s", ratesURL)
		source = facades.NewHTTPRatesFacade(ratesURL, time.Duration(ratesTimeoutSecond)*time.Second)

	case rateSourceGRPC:
		// Connect to gRPC service
		grpcAddr := fmt.Sprintf("%s:%s", gwHost, gwPort)
		conn, err := grpc.NewClient(grpcAddr, grpc.WithTransportCredentials(insecure.NewCredentials()))
		if err != nil {
			return nil, cleanup, fmt.Errorf("connecting to gRPC service at %s: %w", grpcAddr, err)
		}
		closers = append(closers, func() { _ = conn.Close() })
		logger.Log.Infof("Using gRPC rate source %s", grpcAddr)
		source = facades.NewExchangeRatesGRPCFacade(pb.NewExchangeServiceClient(conn))

	default:
		return nil, cleanup, fmt.Errorf("unknown rates source %q, want %s or %s", ratesSource, rateSourceHTTP, rateSourceGRPC)
	}

	if redisHost == "" {
		return source, cleanup, nil
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", redisHost, redisPort),
		Password: redisPassword,
		DB:       redisDB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		cleanup()
		return nil, func() {}, fmt.Errorf("redis connection: %w", err)
	}
	closers = append(closers, func() { _ = rdb.Close() })
	logger.Log.Infof("Sharing exchange rates through Redis %s:%d", redisHost, redisPort)

	repo := repositories.NewExchangeRateCacheRepository(rdb, time.Duration(redisExpSecond)*time.Second)
	maxAge := time.Duration(ratesRefreshSecond) * time.Second
	return services.NewSharedRateSource(source, repo, maxAge), cleanup, nil
}

// runCLI converts one amount and writes the JSON result, or the JSON error, to w.
func runCLI(ctx context.Context, w io.Writer,
	source services.RateSource, ratesBase string, ratesRefreshSecond int,
	amount float64, inputCurrency, outputCurrency string,
) error {
	cache := services.NewRateCache(source, ratesBase, time.Duration(ratesRefreshSecond)*time.Second)
	svc := services.NewConverterService(cache)

	result, err := svc.Convert(ctx, models.ConversionRequest{
		Amount:         amount,
		InputCurrency:  inputCurrency,
		OutputCurrency: outputCurrency,
	})

	if err != nil {
		writeCLIError(w, err)
		return err
	}

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		err = fmt.Errorf("encoding result: %w", err)
		writeCLIError(w, err)
		return err
	}
	_, err = fmt.Fprintf(w, "%s\n", out)
	return err
}

func writeCLIError(w io.Writer, err error) {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(models.ErrorResponse{Error: err.Error()})
}

// newRouter sets up routes and middleware of the HTTP API.
func newRouter(appHost, appPort string, svc *services.ConverterService) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware)
	r.Use(middlewares.MetricsMiddleware)

	handlers.RegisterConvertHandler(r, handlers.NewConvertHandler(svc))
	handlers.RegisterGetRatesHandler(r, handlers.NewGetRatesHandler(svc))

	r.Handle("/metrics", promhttp.Handler())

	docs.SwaggerInfo.Host = fmt.Sprintf("%s:%s", appHost, appPort)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", appHost, appPort)),
	))

	return r
}

// run seeds the rate cache and serves the HTTP API until the context is
// cancelled or a shutdown signal arrives.
func run(ctx context.Context,
	appHost, appPort string,
	source services.RateSource, ratesBase string, ratesRefreshSecond int,
) error {
	cache := services.NewRateCache(source, ratesBase, time.Duration(ratesRefreshSecond)*time.Second)
	if err := cache.Refresh(ctx); err != nil {
		logger.Log.Warnw("initial exchange rates fetch failed, retrying on first request", "error", err)
	}

	svc := services.NewConverterService(cache)

	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%s", appHost, appPort),
		Handler:           newRouter(appHost, appPort, svc),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", appHost, appPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
