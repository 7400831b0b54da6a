package repo

import (
	"errors"

	"quora-backend/backend/app/models"

	"gorm.io/gorm"
)

type UserRepository struct{ db *gorm.DB }

func NewUserRepository(db *gorm.DB) *UserRepository { return &UserRepository{db: db} }

func (r *UserRepository) FindByUsername(username string) (*models.User, error) {
	return r.first("username = ?", username)
}

func (r *UserRepository) FindByEmail(email string) (*models.User, error) {
	return r.first("email = ?", email)
}

func (r *UserRepository) FindByUUID(uuid string) (*models.User, error) {
	return r.first("uuid = ?", uuid)
}

func (r *UserRepository) Create(u *models.User) error { return r.db.Create(u).Error }

func (r *UserRepository) DeleteByUUID(uuid string) error {
	return r.db.Where("uuid = ?", uuid).Delete(&models.User{}).Error
}

// first returns (nil, nil) when no row matches so callers never see
// gorm.ErrRecordNotFound.
func (r *UserRepository) first(query string, arg any) (*models.User, error) {
	var u models.User
	if err := r.db.Where(query, arg).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}
