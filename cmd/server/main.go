package main

import (
	"os"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"farmlens/config"
	"farmlens/database"
	"farmlens/router"

	"farmlens/pkg/analytics"
	"farmlens/pkg/pricefeed"
	"farmlens/pkg/snapshot"

	actCtrlImp "farmlens/pkg/activity/controllerImp"
	actRepoImp "farmlens/pkg/activity/repositoryImp"

	cropCtrlImp "farmlens/pkg/crop/controllerImp"
	cropRepoImp "farmlens/pkg/crop/repositoryImp"

	soilCtrlImp "farmlens/pkg/soiltest/controllerImp"
	soilRepoImp "farmlens/pkg/soiltest/repositoryImp"

	insCtrlImp "farmlens/pkg/insights/controllerImp"
	insSvc "farmlens/pkg/insights/service"

	healthCtrlImp "farmlens/pkg/health/controllerImp"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg := config.Load()

	db := database.OpenSQLite(cfg.DBPath)

	e := echo.New()
	e.HideBanner = true
	e.Use(echoMiddleware.Recover())

	aRepo := actRepoImp.New(db)
	cRepo := cropRepoImp.New(db)
	sRepo := soilRepoImp.New(db)

	engineCfg := analytics.DefaultConfig()
	svc := insSvc.New(aRepo, cRepo, engineCfg)

	// Optional remote price list at startup; the stock table covers the rest.
	if cfg.PriceFeedURL != "" {
		if points, err := pricefeed.Fetch(cfg.PriceFeedURL); err != nil {
			log.Warn().Err(err).Str("url", cfg.PriceFeedURL).Msg("price feed skipped")
		} else {
			svc.UpdatePrices(points)
			log.Info().Int("prices", len(points)).Msg("price feed imported")
		}
	}

	snapRepo := snapshot.NewRepository(db)
	job := snapshot.NewJob(svc, aRepo, snapRepo, log.Logger)
	if err := job.Start(cfg.SnapshotCron); err != nil {
		log.Fatal().Err(err).Str("spec", cfg.SnapshotCron).Msg("schedule snapshot job")
	}
	defer job.Stop()

	aCtrl := actCtrlImp.New(aRepo)
	cCtrl := cropCtrlImp.New(cRepo)
	sCtrl := soilCtrlImp.New(sRepo)
	iCtrl := insCtrlImp.New(svc, snapRepo)
	hCtrl := healthCtrlImp.NewHealthCtrl(db, job)

	r := router.New(e, aCtrl, cCtrl, sCtrl, iCtrl, hCtrl)

	log.Info().Str("port", cfg.Port).Msg("listening")
	if err := r.Start(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
