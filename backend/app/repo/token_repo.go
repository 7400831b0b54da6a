package repo

import (
	"errors"

	"quora-backend/backend/app/models"

	"gorm.io/gorm"
)

type TokenRepository struct{ db *gorm.DB }

func NewTokenRepository(db *gorm.DB) *TokenRepository { return &TokenRepository{db: db} }

func (r *TokenRepository) Create(t *models.UserAuthToken) error { return r.db.Create(t).Error }

func (r *TokenRepository) FindByAccessToken(accessToken string) (*models.UserAuthToken, error) {
	var t models.UserAuthToken
	err := r.db.Preload("User").Where("access_token = ?", accessToken).First(&t).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &t, nil
}

// Update persists the logout stamp; sessions are otherwise immutable.
func (r *TokenRepository) Update(t *models.UserAuthToken) error { return r.db.Save(t).Error }
