package repositoryImp

import (
	"gorm.io/gorm"

	"farmlens/entities"
	"farmlens/pkg/activity/repository"
)

type activityRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.ActivityRepository { return &activityRepo{db} }

func (r *activityRepo) Create(a *entities.Activity) error { return r.db.Create(a).Error }

func (r *activityRepo) ListByUser(uid string) ([]entities.Activity, error) {
	var out []entities.Activity
	if err := r.db.Where("user_id = ?", uid).Order("occurred_at ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *activityRepo) FindByID(id, uid string) (*entities.Activity, error) {
	var a entities.Activity
	if err := r.db.Where("id = ? AND user_id = ?", id, uid).First(&a).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *activityRepo) Delete(id, uid string) error {
	return r.db.Where("id = ? AND user_id = ?", id, uid).Delete(&entities.Activity{}).Error
}

func (r *activityRepo) UserIDs() ([]string, error) {
	var out []string
	if err := r.db.Model(&entities.Activity{}).Distinct("user_id").Order("user_id ASC").Pluck("user_id", &out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
