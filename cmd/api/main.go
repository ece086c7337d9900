package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/hamsafar-mirza/backend/internal/adapters/cache"
	"github.com/hamsafar-mirza/backend/internal/adapters/database"
	"github.com/hamsafar-mirza/backend/internal/adapters/mockdata"
	"github.com/hamsafar-mirza/backend/internal/api/handlers"
	"github.com/hamsafar-mirza/backend/internal/api/routes"
	"github.com/hamsafar-mirza/backend/internal/datasource"
	"github.com/hamsafar-mirza/backend/internal/domain/providers"
	"github.com/hamsafar-mirza/backend/internal/domain/repositories"
	redisclient "github.com/hamsafar-mirza/backend/internal/infrastructure/clients/redis"
	"github.com/hamsafar-mirza/backend/internal/infrastructure/clients/supabase"
	"github.com/hamsafar-mirza/backend/internal/infrastructure/observability"
	"github.com/hamsafar-mirza/backend/pkg/config"
)

func main() {
	dataSourceFlag := flag.String("data-source", "", "data source mode: mock, supabase or auto (overrides DATA_SOURCE)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	observability.InitLogger(cfg.OTEL.ServiceName, os.Getenv("APP_ENV"))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize OpenTelemetry if enabled
	if cfg.OTEL.Enabled && cfg.OTEL.Endpoint != "" {
		shutdown, err := observability.Setup(ctx, cfg.OTEL.ServiceName, cfg.OTEL.ServiceVersion, cfg.OTEL.Endpoint)
		if err != nil {
			log.Warn().Err(err).Msg("Failed to set up OpenTelemetry")
		} else {
			defer func() {
				shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer shutdownCancel()
				if err := shutdown(shutdownCtx); err != nil {
					log.Error().Err(err).Msg("Error shutting down OpenTelemetry")
				}
			}()
			log.Info().Msg("OpenTelemetry initialized")
		}
	}

	metrics, err := observability.InitMetrics()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize metrics")
	}
	database.SetMetrics(metrics)

	// Resolve the data source. The command line flag wins over the environment.
	rawMode := cfg.DataSource.Mode
	if *dataSourceFlag != "" {
		rawMode = *dataSourceFlag
	}
	mode := datasource.ParseMode(rawMode)
	resolver := datasource.NewResolver(mode, cfg.Supabase.IsConfigured())
	log.Info().
		Str("mode", string(resolver.Mode())).
		Bool("remote_configured", resolver.RemoteConfigured()).
		Bool("serving_mock", resolver.UseMock()).
		Msg("Data source resolved")

	// The Supabase client exists whenever credentials are present, even in
	// mock mode, so flipping modes never needs a restart path change.
	var supabaseClient *supabase.Client
	if cfg.Supabase.IsConfigured() {
		supabaseClient, err = supabase.NewClient(cfg.Supabase.URL, cfg.Supabase.ReadKey())
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize Supabase client")
		}
		log.Info().Msg("Supabase client initialized")
	}

	// Redis is optional; the application works without caching
	var cacheProvider providers.CacheProvider
	redisClient, err := redisclient.NewClient(&cfg.Redis)
	if err != nil {
		log.Warn().Err(err).Msg("Failed to initialize Redis client, running without cache")
	} else {
		defer redisClient.Close()
		cacheProvider = cache.NewRedisAdapter(redisClient)
		log.Info().Msg("Redis client initialized")
	}

	mock := mockdata.Default()

	userRepo := database.NewUserAdapter(resolver, supabaseClient, mock)
	profileRepo := database.NewProfileAdapter(resolver, supabaseClient, mock)
	cityRepo := database.NewCityAdapter(resolver, supabaseClient, mock)
	placeRepo := database.NewPlaceAdapter(resolver, supabaseClient, mock)
	commentRepo := database.NewCommentAdapter(resolver, supabaseClient, mock)
	companionRepo := database.NewCompanionAdapter(resolver, supabaseClient, mock)

	var postRepo repositories.PostRepository = database.NewPostAdapter(resolver, supabaseClient, mock)
	if cacheProvider != nil {
		postRepo = database.NewCachedPostAdapter(postRepo, cacheProvider)
	}

	router := routes.NewRouter(
		handlers.NewHealthHandler(resolver),
		handlers.NewUserHandler(userRepo, profileRepo, postRepo, companionRepo),
		handlers.NewProfileHandler(profileRepo),
		handlers.NewCityHandler(cityRepo),
		handlers.NewPlaceHandler(placeRepo),
		handlers.NewPostHandler(postRepo, commentRepo),
		handlers.NewCompanionHandler(companionRepo),
		userRepo,
		placeRepo,
		cityRepo,
		metrics,
	)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      router.SetupRoutes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("addr", addr).Msg("Server listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Forced shutdown")
	}
	log.Info().Msg("Server stopped")
}
