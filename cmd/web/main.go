package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/jwalitptl/directory-web/internal/cache"
	"github.com/jwalitptl/directory-web/internal/config"
	"github.com/jwalitptl/directory-web/internal/email"
	contactHandler "github.com/jwalitptl/directory-web/internal/handler/contact"
	"github.com/jwalitptl/directory-web/internal/handler/health"
	"github.com/jwalitptl/directory-web/internal/handler/pages"
	"github.com/jwalitptl/directory-web/internal/handler/prometheus"
	sitemapHandler "github.com/jwalitptl/directory-web/internal/handler/sitemap"
	"github.com/jwalitptl/directory-web/internal/repository/postgres"
	"github.com/jwalitptl/directory-web/internal/router"
	clinicService "github.com/jwalitptl/directory-web/internal/service/clinic"
	contactService "github.com/jwalitptl/directory-web/internal/service/contact"
	doctorService "github.com/jwalitptl/directory-web/internal/service/doctor"
	searchService "github.com/jwalitptl/directory-web/internal/service/search"
	sitemapService "github.com/jwalitptl/directory-web/internal/service/sitemap"
	specialtyService "github.com/jwalitptl/directory-web/internal/service/specialty"
	"github.com/jwalitptl/directory-web/internal/web"
	"github.com/jwalitptl/directory-web/pkg/logger"
	"github.com/jwalitptl/directory-web/pkg/metrics"
	"github.com/jwalitptl/directory-web/pkg/validator"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	appLogger := logger.NewLogger(&logger.Config{
		Level:  logger.ParseLevel(cfg.Log.Level),
		Format: cfg.Log.Format,
	})
	appLogger.SetGlobal()

	// Initialize database
	db, err := postgres.NewDB(cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	// Metrics share the registry served on /metrics
	metricsH := prometheus.New("directory")
	appMetrics := metrics.New("directory", metricsH.Registry())

	store, err := cache.New(cfg.Cache, appLogger.Zerolog())
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize cache")
	}
	defer store.Close()

	// Initialize repositories
	searchRepo := postgres.NewSearchRepository(db, appMetrics)
	clinicRepo := postgres.NewClinicRepository(db, appMetrics)
	profileRepo := postgres.NewProfileRepository(db, appMetrics)
	specialtyRepo := postgres.NewSpecialtyRepository(db, appMetrics)
	listingRepo := postgres.NewListingRepository(db, appMetrics)

	// Initialize services
	specialtySvc := specialtyService.NewService(specialtyRepo, store, cfg.Cache.TTL, appMetrics)
	searchSvc := searchService.NewService(searchRepo, specialtySvc, appMetrics)
	clinicSvc := clinicService.NewService(clinicRepo, profileRepo, listingRepo)
	doctorSvc := doctorService.NewService(listingRepo, cfg.Site.BookingBaseURL)
	sitemapSvc := sitemapService.NewService(cfg.Site.BaseURL, clinicRepo, profileRepo, specialtySvc)
	contactSvc := contactService.NewService(email.NewSender(cfg.Mail, appLogger.Zerolog()), validator.New(), appMetrics)

	// Initialize handlers
	pagesH := pages.NewHandler(pages.Site{
		Name:         cfg.Site.Name,
		BaseURL:      cfg.Site.BaseURL,
		SupportEmail: cfg.Mail.RecipientEmail,
	}, searchSvc, clinicSvc, doctorSvc, specialtySvc)

	templates, err := web.Templates()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load templates")
	}

	// Setup router
	r := router.NewRouter(
		pagesH,
		contactHandler.NewHandler(contactSvc),
		sitemapHandler.NewHandler(sitemapSvc),
		health.NewHandler(db),
		metricsH,
		templates,
		router.RouterConfig{
			Mode:           cfg.Server.Mode,
			RequestTimeout: cfg.Server.RequestTimeout,
			ContactRPS:     cfg.RateLimit.ContactRPS,
			ContactBurst:   cfg.RateLimit.ContactBurst,
		},
	)
	r.Setup()

	// Create server
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           r.Engine(),
		ReadTimeout:       cfg.Server.ReadTimeout,
		ReadHeaderTimeout: cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
	}

	// Start server
	go func() {
		log.Info().Int("port", cfg.Server.Port).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server exited properly")
}
