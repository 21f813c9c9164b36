package repository

import "farmlens/entities"

type CropRepository interface {
	Create(cr *entities.Crop) error
	ListByUser(uid string) ([]entities.Crop, error)
	FindByID(id, uid string) (*entities.Crop, error)
}
