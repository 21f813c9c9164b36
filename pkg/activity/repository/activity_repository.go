package repository

import "farmlens/entities"

type ActivityRepository interface {
	Create(a *entities.Activity) error
	ListByUser(uid string) ([]entities.Activity, error)
	FindByID(id, uid string) (*entities.Activity, error)
	Delete(id, uid string) error
	UserIDs() ([]string, error)
}
