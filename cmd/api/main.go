package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"animagen/internal/adapter/repo"
	"animagen/internal/http/handlers"
	"animagen/internal/http/httpapi"
	"animagen/internal/infra"
	"animagen/internal/infra/geoip"
	"animagen/internal/pipeline"
	"animagen/internal/providers/genai"
	"animagen/internal/render"
	"animagen/internal/storage"
)

func main() {
	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger := infra.NewLogger(cfg.AppEnv)

	ctx := context.Background()

	// Model client; a missing key disables generation but keeps the process
	// serving so requests get a configuration error instead of a dead host.
	var model pipeline.TextGenerator
	if cfg.GeminiAPIKey != "" {
		client, err := genai.NewClient(genai.Options{
			APIKey:  cfg.GeminiAPIKey,
			Model:   cfg.GeminiModel,
			BaseURL: cfg.GeminiBaseURL,
		})
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to construct model client")
		}
		model = client
	} else {
		logger.Warn().Msg("GEMINI_API_KEY not set; generation endpoints disabled")
	}

	invoker, err := render.NewInvoker(render.Options{
		Binary:        cfg.ManimBinary,
		ScratchDir:    cfg.RenderScratchDir,
		Timeout:       cfg.RenderTimeout,
		MaxConcurrent: int64(cfg.RenderMaxJobs),
		Logger:        logger,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to construct render invoker")
	}

	store, err := storage.NewFileStore(cfg.StorageDir)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to construct artifact store")
	}

	var history handlers.HistoryRepository
	if cfg.DatabaseURL != "" {
		pool, err := infra.NewDBPool(ctx, cfg)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to connect database")
		}
		defer pool.Close()
		history = repo.NewHistoryRepository(pool)
	} else {
		logger.Info().Msg("DATABASE_URL not set; generation history disabled")
	}

	resolver, err := geoip.NewResolver(cfg.GeoIPDBPath)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to open geoip database")
	}

	orch := pipeline.New(model, invoker, logger)
	app := handlers.NewApp(logger, orch, store, history)
	router := httpapi.NewRouter(app, cfg, logger, resolver)

	server := infra.NewHTTPServer(cfg, router)

	go func() {
		logger.Info().Msgf("API listening on :%s", cfg.Port)
		if err := server.Start(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPIdleTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("failed to shutdown server")
	}
	logger.Info().Msg("server stopped")
}
