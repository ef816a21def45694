package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/andrevms/fii-radar/internal/clients/statusinvest"
	"github.com/andrevms/fii-radar/internal/config"
	"github.com/andrevms/fii-radar/internal/database"
	"github.com/andrevms/fii-radar/internal/events"
	"github.com/andrevms/fii-radar/internal/modules/analytics"
	"github.com/andrevms/fii-radar/internal/modules/calendar"
	"github.com/andrevms/fii-radar/internal/modules/portfolio"
	"github.com/andrevms/fii-radar/internal/modules/screener"
	"github.com/andrevms/fii-radar/internal/modules/universe"
	"github.com/andrevms/fii-radar/internal/modules/universe/jobs"
	"github.com/andrevms/fii-radar/internal/scheduler"
	"github.com/andrevms/fii-radar/internal/server"
	"github.com/andrevms/fii-radar/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Pretty: cfg.DevMode,
	})

	log.Info().Msg("Starting FII Radar")

	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize database")
	}
	defer db.Close()

	if err := portfolio.InitSchema(db.Conn()); err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize schema")
	}

	eventBus := events.NewManager(log)

	client := statusinvest.NewClient(statusinvest.Config{
		SearchURL: cfg.SearchURL,
		CacheDir:  cfg.CacheDir,
		CacheTTL:  time.Duration(cfg.CacheTTLHours) * time.Hour,
	}, log)

	seed := time.Now().UnixNano()
	universeSvc := universe.NewService(universe.ServiceConfig{
		Client:          client,
		Deriver:         universe.NewDeriver(universe.NewSyntheticFeed(seed), cfg.RiskFreeRate),
		Generator:       universe.NewGenerator(cfg.UniverseSize, seed),
		Events:          eventBus,
		RefreshInterval: time.Duration(cfg.RefreshIntervalHours) * time.Hour,
		Log:             log,
	})

	portfolioRepo := portfolio.NewRepository(db.Conn(), log)
	portfolioSvc := portfolio.NewService(portfolioRepo, eventBus, log)

	calendarSvc := calendar.NewService(log)

	// Warm the snapshot before serving traffic
	u := universeSvc.Universe()
	log.Info().Int("funds", u.Len()).Str("source", u.Source).Msg("Universe ready")

	sched := scheduler.New(log)
	refreshSchedule := fmt.Sprintf("@every %dh", cfg.RefreshIntervalHours)
	if err := sched.AddJob(refreshSchedule, jobs.NewRefreshJob(universeSvc, log)); err != nil {
		log.Fatal().Err(err).Msg("Failed to register refresh job")
	}
	sched.Start()
	defer sched.Stop()

	srv := server.New(server.Config{
		Port:             cfg.Port,
		Log:              log,
		Config:           cfg,
		DevMode:          cfg.DevMode,
		Universe:         universe.NewHandler(universeSvc, client, log),
		Screener:         screener.NewHandler(universeSvc, log),
		Portfolio:        portfolio.NewHandler(portfolioSvc, universeSvc, log),
		Analytics:        analytics.NewHandler(universeSvc, log),
		Calendar:         calendar.NewHandler(calendarSvc, universeSvc, log),
		PortfolioService: portfolioSvc,
		UniverseService:  universeSvc,
	})

	go func() {
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	log.Info().Int("port", cfg.Port).Msg("Server started successfully")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server stopped")
}
