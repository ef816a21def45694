package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"

	"github.com/andrevms/fii-radar/internal/config"
	"github.com/andrevms/fii-radar/internal/modules/analytics"
	"github.com/andrevms/fii-radar/internal/modules/calendar"
	"github.com/andrevms/fii-radar/internal/modules/portfolio"
	"github.com/andrevms/fii-radar/internal/modules/screener"
	"github.com/andrevms/fii-radar/internal/modules/universe"
)

// Config holds server configuration
type Config struct {
	Port      int
	Log       zerolog.Logger
	Config    *config.Config
	DevMode   bool
	Universe  *universe.Handler
	Screener  *screener.Handler
	Portfolio *portfolio.Handler
	Analytics *analytics.Handler
	Calendar  *calendar.Handler

	PortfolioService *portfolio.Service
	UniverseService  *universe.Service
}

// Server represents the HTTP server
type Server struct {
	router *chi.Mux
	server *http.Server
	log    zerolog.Logger
	cfg    *config.Config

	universeH  *universe.Handler
	screenerH  *screener.Handler
	portfolioH *portfolio.Handler
	analyticsH *analytics.Handler
	calendarH  *calendar.Handler

	portfolioSvc *portfolio.Service
	universeSvc  *universe.Service
}

// New creates a new HTTP server
func New(cfg Config) *Server {
	s := &Server{
		router:       chi.NewRouter(),
		log:          cfg.Log.With().Str("component", "server").Logger(),
		cfg:          cfg.Config,
		universeH:    cfg.Universe,
		screenerH:    cfg.Screener,
		portfolioH:   cfg.Portfolio,
		analyticsH:   cfg.Analytics,
		calendarH:    cfg.Calendar,
		portfolioSvc: cfg.PortfolioService,
		universeSvc:  cfg.UniverseService,
	}

	s.setupMiddleware(cfg.DevMode)
	s.setupRoutes()

	s.server = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// setupMiddleware configures middleware
func (s *Server) setupMiddleware(devMode bool) {
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(s.loggingMiddleware)
	s.router.Use(middleware.Timeout(60 * time.Second))

	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	if !devMode {
		s.router.Use(middleware.Compress(5))
	}
}

// setupRoutes configures all routes
func (s *Server) setupRoutes() {
	s.router.Get("/health", s.handleHealth)

	s.router.Route("/api", func(r chi.Router) {
		r.Route("/system", func(r chi.Router) {
			r.Get("/status", s.handleSystemStatus)
		})

		r.Route("/funds", func(r chi.Router) {
			r.Get("/", s.screenerH.HandleList)
			r.Post("/refresh", s.universeH.HandleRefresh)
			r.Get("/top", s.screenerH.HandleTop)
			r.Get("/opportunities", s.screenerH.HandleOpportunities)
			r.Get("/high-yield", s.screenerH.HandleHighYield)
			r.Get("/low-pvp", s.screenerH.HandleLowPVP)
			r.Get("/below-fair", s.screenerH.HandleBelowFair)
			r.Get("/export.csv", s.universeH.HandleExportCSV)

			r.Route("/{ticker}", func(r chi.Router) {
				r.Get("/", s.universeH.HandleGetFund)
				r.Get("/detail", s.universeH.HandleGetFundDetail)
				r.Get("/history", s.analyticsH.HandleHistory)
				r.Get("/analytics", s.analyticsH.HandleAnalytics)
				r.Get("/recommendation", s.analyticsH.HandleRecommendation)
				r.Get("/simulation", s.analyticsH.HandleSimulation)
				r.Get("/projection", s.analyticsH.HandleProjection)
			})
		})

		r.Route("/portfolio", func(r chi.Router) {
			r.Get("/", s.portfolioH.HandleGetPositions)
			r.Post("/", s.portfolioH.HandleAddPosition)
			r.Get("/summary", s.portfolioH.HandleGetSummary)
			r.Get("/export.csv", s.handlePortfolioExport)
			r.Delete("/{ticker}", s.portfolioH.HandleRemovePosition)
		})

		r.Route("/calendar", func(r chi.Router) {
			r.Get("/dividends", s.calendarH.HandleUpcoming)
		})
	})
}

// Start starts the HTTP server
func (s *Server) Start() error {
	s.log.Info().Int("port", s.cfg.Port).Msg("Starting HTTP server")
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.log.Info().Msg("Shutting down HTTP server")
	return s.server.Shutdown(ctx)
}

// loggingMiddleware logs HTTP requests
func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		s.log.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Int("bytes", ww.BytesWritten()).
			Dur("duration_ms", time.Since(start)).
			Str("request_id", middleware.GetReqID(r.Context())).
			Msg("HTTP request")
	})
}
