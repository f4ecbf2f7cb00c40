package main

//
//  @title           quotedash API
//  @version         1.0
//  @description     Historical stock quote fetch & dashboard service.
//  @termsOfService  https://example.com/terms
//  @contact.name    API Support
//  @license.name    MIT
//  @license.url     https://opensource.org/licenses/MIT
//  @host            localhost:8080
//  @BasePath        /
//  @schemes         http
//
//  @tag.name        quotes
//  @tag.description Endpoints for fetching, charting and exporting historical quotes
//
//  @tag.name        i18n
//  @tag.description Localized UI label tables
//
//  @tag.name        health
//  @tag.description Liveness and readiness probes

import (
	"context"
	"encoding/csv"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"quotedash/config"
	_ "quotedash/docs" // swagger docs
	"quotedash/internal/app"
	"quotedash/internal/domain/models"
	"quotedash/internal/logger"
	"quotedash/internal/provider/sohu"
	"quotedash/internal/quote"
	"quotedash/internal/service"
	"quotedash/internal/store"
)

// startServer initializes and starts the HTTP server in a separate
// goroutine.
//
// Parameters:
//   - router (http.Handler): The HTTP router (Gin Engine) configured with all routes.
//   - port (string): The port where the server will listen for incoming requests.
//
// Returns:
//   - *http.Server: The initialized HTTP server instance.
func startServer(router http.Handler, port string) *http.Server {
	server := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.L().Info().Str("port", port).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.L().Fatal().Err(err).Msg("server failed to start")
		}
	}()

	return server
}

// gracefulShutdown gracefully terminates the HTTP server and cleans up
// resources when an OS interrupt signal (SIGINT, SIGTERM) is received.
//
// Parameters:
//   - ctx (context.Context): A context with timeout for graceful shutdown.
//   - server (*http.Server): The HTTP server instance to shut down.
//   - cleanup (func()): Cleanup callback to release resources.
func gracefulShutdown(ctx context.Context, server *http.Server, cleanup func()) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	logger.L().Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.L().Fatal().Err(err).Msg("server forced to shutdown")
	}

	cleanup()
	logger.L().Info().Msg("server exited gracefully")
}

// fetchToFiles runs a one-shot fetch for each ticker and writes
// <code>.csv next to the working directory. Tickers are fetched
// concurrently; the first failure cancels the rest.
func fetchToFiles(ctx context.Context, codes []string, start, end, period string, parallel int) error {
	interval, err := models.ParseInterval(period)
	if err != nil {
		return err
	}

	cfg := config.AppConfig
	client := sohu.NewHTTPClient(cfg.Provider.BaseURL, cfg.Provider.RefererBase, cfg.Provider.Timeout)
	svc := service.NewQuoteService(client, store.New())
	log := logger.With("fetch")

	if parallel < 1 {
		parallel = 1
	}
	if parallel > len(codes) {
		parallel = len(codes)
	}

	// errgroup cancels siblings on first error.
	g, gctx := errgroup.WithContext(ctx)
	sem := make(chan struct{}, parallel)

	for _, code := range codes {
		c := strings.TrimSpace(code)
		if c == "" {
			continue
		}
		sem <- struct{}{}

		g.Go(func() error {
			defer func() { <-sem }()
			startTs := time.Now()

			req := models.QuoteRequest{Code: c, Start: start, End: end, Interval: interval}
			if err := req.Validate(); err != nil {
				return err
			}

			// Each ticker gets its own session key so results do not
			// clobber each other.
			if _, _, err := svc.Fetch(gctx, c, req); err != nil {
				log.Error().Str("code", c).Err(err).Msg("fetch failed")
				return err
			}

			rows, _, ok := svc.ExportRows(c)
			if !ok {
				return errors.New("fetch committed no data for " + c)
			}
			if err := writeCSV(c+".csv", rows); err != nil {
				return err
			}

			log.Info().
				Str("code", c).
				Int("rows", len(rows)-1).
				Int64("elapsed_ms", time.Since(startTs).Milliseconds()).
				Msg("ticker exported")
			return nil
		})
	}

	return g.Wait()
}

func writeCSV(path string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	w := csv.NewWriter(f)
	if err := w.WriteAll(rows); err != nil {
		return err
	}
	w.Flush()
	return w.Error()
}

// main is the entry point of the quotedash application.
//
// Modes (selected via --mode flag):
//   - api:   Starts the REST API serving the dashboard endpoints.
//   - fetch: One-shot CLI fetch; writes one CSV file per ticker.
//
// Flags:
//   - --mode:     Execution mode ("api" or "fetch"). Default: "api".
//   - --port:     Port for the API server. Defaults to SERVER_PORT.
//   - --codes:    Comma-separated tickers for fetch mode.
//   - --start:    Range start (YYYYMMDD) for fetch mode.
//   - --end:      Range end (YYYYMMDD) for fetch mode.
//   - --period:   daily|weekly|monthly for fetch mode.
//   - --parallel: How many tickers to fetch concurrently.
func main() {
	ctx := context.Background()

	// Load configuration from environment or .env file
	config.LoadConfig()

	// Initialize JSON logger
	logger.Init()

	// Parse CLI flags (override config defaults if provided)
	mode := flag.String("mode", "api", "Mode: api or fetch")
	port := flag.String("port", config.AppConfig.Server.Port, "Port for API mode")
	codes := flag.String("codes", config.AppConfig.Defaults.StockCode, "Comma-separated ticker codes for fetch mode")
	start := flag.String("start", config.AppConfig.Defaults.StartDate, "Range start YYYYMMDD for fetch mode")
	end := flag.String("end", config.AppConfig.Defaults.EndDate, "Range end YYYYMMDD for fetch mode")
	period := flag.String("period", "daily", "Interval for fetch mode: daily, weekly or monthly")
	parallel := flag.Int("parallel", 4, "How many tickers to fetch concurrently")
	flag.Parse()

	switch *mode {
	case "api":
		// API mode: start the HTTP server
		logger.L().Info().Msg("starting API server")

		router, cleanup, err := app.InitializeApp()
		if err != nil {
			logger.L().Fatal().Err(err).Msg("app init error")
		}

		server := startServer(router, *port)
		gracefulShutdown(ctx, server, cleanup)

	case "fetch":
		// One-shot mode: pull each ticker once and export CSVs
		list := strings.Split(*codes, ",")
		logger.L().Info().Int("tickers", len(list)).Msg("running one-shot fetch")

		if err := fetchToFiles(ctx, list, *start, *end, *period, *parallel); err != nil {
			var provErr *quote.ProviderError
			if errors.As(err, &provErr) {
				logger.L().Fatal().Str("status", provErr.Status).Msg("provider rejected the query")
			}
			logger.L().Fatal().Err(err).Msg("fetch failed")
		}
		logger.L().Info().Msg("fetch completed successfully")

	default:
		logger.L().Fatal().Str("mode", *mode).Msg("unknown mode")
	}
}
