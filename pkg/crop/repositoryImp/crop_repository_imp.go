package repositoryImp

import (
	"gorm.io/gorm"

	"farmlens/entities"
	"farmlens/pkg/crop/repository"
)

type cropRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.CropRepository { return &cropRepo{db} }

func (r *cropRepo) Create(cr *entities.Crop) error { return r.db.Create(cr).Error }

func (r *cropRepo) ListByUser(uid string) ([]entities.Crop, error) {
	var out []entities.Crop
	if err := r.db.Where("user_id = ?", uid).Order("name ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *cropRepo) FindByID(id, uid string) (*entities.Crop, error) {
	var cr entities.Crop
	if err := r.db.Where("id = ? AND user_id = ?", id, uid).First(&cr).Error; err != nil {
		return nil, err
	}
	return &cr, nil
}
