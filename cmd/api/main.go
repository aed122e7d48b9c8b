package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/wellport-health/patient-portal-api/internal/api/router"
	appconfig "github.com/wellport-health/patient-portal-api/internal/config"
	"github.com/wellport-health/patient-portal-api/internal/http/handlers"
	"github.com/wellport-health/patient-portal-api/internal/masterapi"
	"github.com/wellport-health/patient-portal-api/internal/medcard"
	"github.com/wellport-health/patient-portal-api/internal/observability/metrics"
	"github.com/wellport-health/patient-portal-api/internal/pricing"
	"github.com/wellport-health/patient-portal-api/internal/scheduling"
	"github.com/wellport-health/patient-portal-api/pkg/logging"
)

func main() {
	// Local development only; the file is absent in deployed environments.
	_ = godotenv.Load()

	cfg := appconfig.Load()

	logger := logging.New(cfg.LogLevel)
	logger.Info("starting patient portal API server",
		"env", cfg.Env,
		"port", cfg.Port,
	)

	if cfg.MasterAPIBaseURL == "" {
		logger.Error("MASTER_API_BASE_URL is required")
		os.Exit(1)
	}

	schedulingMetrics := metrics.NewSchedulingMetrics(nil)
	pricingMetrics := metrics.NewPricingMetrics(nil)

	masterClient := masterapi.NewClient(cfg.MasterAPIBaseURL, cfg.MasterAPIKey, cfg.MasterAPIBearerToken, logger)
	medcardClient := medcard.NewClient(cfg.MedcardBaseURL, cfg.MedcardBearerToken, logger)

	var productCache *pricing.ProductCache
	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		})
		productCache = pricing.NewProductCache(redisClient, cfg.ReferenceCacheTTL, logger)
		logger.Info("subscription product cache enabled", "addr", cfg.RedisAddr, "ttl", cfg.ReferenceCacheTTL.String())
	}

	catalog := scheduling.NewCatalog(masterClient, cfg.ResourceQueryLimit, logger, schedulingMetrics)
	builder := scheduling.NewRequestBuilder(scheduling.AvailabilityConfig{
		InPerson: scheduling.ModeIdentifiers{
			CategoryID: cfg.AvailabilityInPersonCategoryID,
			EventID:    cfg.AvailabilityInPersonEventID,
		},
		Telemedicine: scheduling.ModeIdentifiers{
			CategoryID: cfg.AvailabilityTelehealthCategoryID,
			EventID:    cfg.AvailabilityTelehealthEventID,
		},
		Fallback: scheduling.ModeIdentifiers{
			CategoryID: cfg.AvailabilityCategoryID,
			EventID:    cfg.AvailabilityEventID,
		},
		DurationMinutes: cfg.AvailabilityDurationMinutes,
		TimeRangeStart:  cfg.AvailabilityTimeRangeStart,
		TimeRangeEnd:    cfg.AvailabilityTimeRangeEnd,
	})
	availability := scheduling.NewAvailabilityService(masterClient, builder, logger, schedulingMetrics)
	quotes := pricing.NewQuoteService(masterClient, medcardClient, productCache, cfg.PaymentProcedureCode, logger, pricingMetrics)

	r := router.New(&router.Config{
		Logger:             logger,
		Scheduling:         handlers.NewSchedulingHandler(catalog, availability, logger),
		Pricing:            handlers.NewPricingHandler(quotes, logger),
		MetricsHandler:     promhttp.Handler(),
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	logger.Info("server stopped")
}
