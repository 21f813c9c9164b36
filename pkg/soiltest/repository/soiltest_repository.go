package repository

import (
	"time"

	"farmlens/entities"
)

type SoilTestRepository interface {
	Create(t *entities.SoilTest) error
	ListByUser(uid string) ([]entities.SoilTest, error)
	ListByUserBetween(uid string, from, to time.Time) ([]entities.SoilTest, error)
	FindByID(id, uid string) (*entities.SoilTest, error)
}
