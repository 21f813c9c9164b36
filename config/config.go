package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type AppConfig struct {
	Port         string
	Timezone     string
	DBPath       string
	SnapshotCron string
	PriceFeedURL string
}

func Load() AppConfig {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Debug().Err(err).Msg("no .env file loaded")
	}

	get := func(k, def string) string {
		if v := os.Getenv(k); v != "" {
			return v
		}
		return def
	}
	cfg := AppConfig{
		Port:         get("PORT", "8080"),
		Timezone:     get("TZ", "UTC"),
		DBPath:       get("DB_PATH", "farmlens.db"),
		SnapshotCron: get("SNAPSHOT_CRON", "0 3 * * *"),
		PriceFeedURL: get("PRICE_FEED_URL", ""),
	}
	log.Info().Str("port", cfg.Port).Str("db", cfg.DBPath).Str("snapshot_cron", cfg.SnapshotCron).Msg("config loaded")
	return cfg
}
