package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/cloudwego/hertz/pkg/network/netpoll"
	"github.com/spf13/cobra"

	"github.com/zhar97/solar-om-analytics/internal/config"
	"github.com/zhar97/solar-om-analytics/internal/dataset"
	"github.com/zhar97/solar-om-analytics/internal/handler"
	"github.com/zhar97/solar-om-analytics/internal/metrics"
	"github.com/zhar97/solar-om-analytics/internal/router"
	"github.com/zhar97/solar-om-analytics/internal/usecase"
	"github.com/zhar97/solar-om-analytics/pkg/logger"
)

var (
	cfgFile string
	version = "0.1.0"
)

var rootCmd = &cobra.Command{
	Use:   "solar-analytics-apiserver",
	Short: "Solar plant analytics API server",
	Long: `Solar plant analytics API server built on the Hertz framework. It
serves the anomaly, pattern, insight and plant list endpoints consumed
by the solarctl dashboard from a precomputed analytics dataset.`,
	Version: version,
	Run:     runServer,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "configs/config.yaml", "path to config file")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

func runServer(cmd *cobra.Command, args []string) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	if err := logger.Setup(cfg.Log); err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}

	slog.Info("analytics apiserver starting",
		"version", version,
		"config", cfgFile,
	)

	// Route framework logs through slog
	hlog.SetLogger(logger.NewHertzAdapter(slog.Default()))

	// Load the analytics dataset
	store := dataset.NewStore(cfg.Dataset.Path)
	if err := store.Load(); err != nil {
		slog.Error("failed to load dataset", "path", cfg.Dataset.Path, "error", err)
		os.Exit(1)
	}
	publishDatasetSizes(store)

	slog.Info("dataset loaded", "path", cfg.Dataset.Path)

	// Assemble usecases and handlers
	anomalyHandler := handler.NewAnomalyHandler(usecase.NewAnomalyUsecase(store, slog.Default()))
	patternHandler := handler.NewPatternHandler(usecase.NewPatternUsecase(store, slog.Default()))
	insightHandler := handler.NewInsightHandler(usecase.NewInsightUsecase(store, slog.Default()))
	plantHandler := handler.NewPlantHandler(usecase.NewPlantUsecase(store, slog.Default()))
	healthHandler := handler.NewHealthHandler(store)

	h := server.Default(
		server.WithHostPorts(cfg.GetServerAddr()),
		server.WithReadTimeout(cfg.Server.ReadTimeout),
		server.WithWriteTimeout(cfg.Server.WriteTimeout),
		server.WithMaxRequestBodySize(cfg.Server.MaxRequestBodySize*1024*1024),
		server.WithTransport(netpoll.NewTransporter),
	)

	router.Setup(h, anomalyHandler, patternHandler, insightHandler, plantHandler, healthHandler)

	// Prometheus scrape endpoint on its own listener
	var metricsSrv *http.Server
	if cfg.Observability.EnableMetrics {
		mux := http.NewServeMux()
		mux.Handle("/metrics", metrics.Handler())
		metricsSrv = &http.Server{Addr: cfg.GetMetricsAddr(), Handler: mux}

		go func() {
			slog.Info("metrics listener started", "address", cfg.GetMetricsAddr())
			if err := metricsSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				slog.Error("metrics listener failed", "error", err)
			}
		}()
	}

	slog.Info("server started",
		"address", cfg.GetServerAddr(),
		"mode", cfg.Server.Mode,
	)

	go func() {
		if err := h.Run(); err != nil {
			slog.Error("server run failed", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := h.Shutdown(ctx); err != nil {
		slog.Error("server shutdown failed", "error", err)
		os.Exit(1)
	}

	if metricsSrv != nil {
		if err := metricsSrv.Shutdown(ctx); err != nil {
			slog.Error("metrics listener shutdown failed", "error", err)
		}
	}

	slog.Info("server stopped gracefully")
}

func publishDatasetSizes(store *dataset.Store) {
	plants, _ := store.Plants()
	anomalies, _ := store.Anomalies()
	patterns, _ := store.Patterns()
	insights, _ := store.Insights()
	metrics.SetDatasetSizes(len(plants), len(anomalies), len(patterns), len(insights))
}
