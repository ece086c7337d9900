package main

import (
	"context"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/hamsafar-mirza/backend/internal/adapters/mockdata"
	"github.com/hamsafar-mirza/backend/internal/infrastructure/clients/supabase"
	"github.com/hamsafar-mirza/backend/internal/infrastructure/observability"
	"github.com/hamsafar-mirza/backend/internal/seed"
	"github.com/hamsafar-mirza/backend/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	observability.InitLogger(cfg.OTEL.ServiceName+"-seed", os.Getenv("APP_ENV"))

	if cfg.Supabase.URL == "" || cfg.Supabase.WriteKey() == "" {
		log.Error().Msg("Missing Supabase credentials. Set SUPABASE_URL and SUPABASE_SERVICE_ROLE_KEY (or SUPABASE_ANON_KEY).")
		os.Exit(1)
	}

	client, err := supabase.NewClient(cfg.Supabase.URL, cfg.Supabase.WriteKey())
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize Supabase client")
	}

	importer := seed.NewImporter(client)
	if err := importer.Run(context.Background(), mockdata.Default()); err != nil {
		log.Error().Err(err).Msg("Seed failed")
		os.Exit(1)
	}
}
