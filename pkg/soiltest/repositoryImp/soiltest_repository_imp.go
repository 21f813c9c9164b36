package repositoryImp

import (
	"time"

	"gorm.io/gorm"

	"farmlens/entities"
	"farmlens/pkg/soiltest/repository"
)

type soilTestRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.SoilTestRepository { return &soilTestRepo{db} }

func (r *soilTestRepo) Create(t *entities.SoilTest) error { return r.db.Create(t).Error }

func (r *soilTestRepo) ListByUser(uid string) ([]entities.SoilTest, error) {
	var out []entities.SoilTest
	if err := r.db.Where("user_id = ?", uid).Order("sample_date DESC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// ListByUserBetween returns the tenant's tests sampled inside [from, to],
// oldest first so trend series read left to right.
func (r *soilTestRepo) ListByUserBetween(uid string, from, to time.Time) ([]entities.SoilTest, error) {
	var out []entities.SoilTest
	if err := r.db.Where("user_id = ? AND sample_date BETWEEN ? AND ?", uid, from, to).
		Order("sample_date ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *soilTestRepo) FindByID(id, uid string) (*entities.SoilTest, error) {
	var t entities.SoilTest
	if err := r.db.Where("id = ? AND user_id = ?", id, uid).First(&t).Error; err != nil {
		return nil, err
	}
	return &t, nil
}
