package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/tehchosen1/sporting-calendar/internal/assets"
	"github.com/tehchosen1/sporting-calendar/internal/config"
	"github.com/tehchosen1/sporting-calendar/internal/players"
	"github.com/tehchosen1/sporting-calendar/internal/service"
	"github.com/tehchosen1/sporting-calendar/internal/source/zerozero"
	"github.com/tehchosen1/sporting-calendar/internal/storage/postgres"
	"github.com/tehchosen1/sporting-calendar/internal/web"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	logger := setupLogger("info", "development")

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger = setupLogger(cfg.LogLevel, cfg.Environment)

	db, err := sqlx.Connect("postgres", cfg.Database.DSN())
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}
	logger.Info("connected to database")

	resolver, err := assets.NewResolver(assets.Config{
		Dir:         cfg.Assets.Dir,
		TeamBases:   cfg.Assets.TeamBases,
		LeagueBases: cfg.Assets.LeagueBases,
		Timeout:     cfg.Source.Timeout,
	}, logger)
	if err != nil {
		logger.Error("failed to init asset store", "error", err)
		os.Exit(1)
	}

	source := zerozero.New(zerozero.Config{
		BaseURL:         cfg.Source.BaseURL,
		FixturesPath:    cfg.Source.FixturesPath,
		CDNBaseURL:      cfg.Source.CDNBaseURL,
		UserAgent:       cfg.Source.UserAgent,
		Timeout:         cfg.Source.Timeout,
		RequestDelay:    cfg.Source.RequestDelay,
		MaxAttempts:     cfg.Source.Retry.MaxAttempts,
		InitialBackoff:  cfg.Source.Retry.InitialBackoff,
		MaxBackoff:      cfg.Source.Retry.MaxBackoff,
		ClubName:        cfg.Club.Name,
		HomeVenue:       cfg.Club.HomeVenue,
		DefaultCrestURL: cfg.Club.CrestURL,
	}, logger)

	fixtureStore := postgres.NewFixtureStore(db)
	ingestService := service.NewIngestService(source, resolver, fixtureStore, cfg.Club, logger)

	gallery := players.NewGallery(players.Config{
		SquadURL:  cfg.Players.SquadURL,
		UserAgent: cfg.Source.UserAgent,
		Timeout:   cfg.Players.Timeout,
	}, logger)

	handlers := web.NewHandlers(ingestService, resolver, gallery, logger)
	server := web.NewServer(cfg.Server.Addr(), handlers, logger)

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Stop(ctx); err != nil {
			logger.Error("server shutdown error", "error", err)
		}
	}()

	logger.Info("starting fixture server",
		"addr", cfg.Server.Addr(),
		"club", cfg.Club.Name,
		"environment", cfg.Environment,
	)

	if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}
}

func setupLogger(level, environment string) *slog.Logger {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: logLevel}
	var handler slog.Handler
	if environment == "production" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}
	return slog.New(handler)
}
