package database

import (
	sqlite "github.com/glebarez/sqlite" // CGO-free driver
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"farmlens/entities"
)

func OpenSQLite(path string) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		log.Fatal().Err(err).Str("path", path).Msg("open sqlite")
	}

	if err := db.AutoMigrate(
		&entities.Activity{},
		&entities.Crop{},
		&entities.SoilTest{},
		&entities.InsightsSnapshot{},
	); err != nil {
		log.Fatal().Err(err).Msg("automigrate")
	}

	return db
}
