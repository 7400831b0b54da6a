package repo

import (
	"errors"

	"quora-backend/backend/app/models"

	"gorm.io/gorm"
)

type QuestionRepository struct{ db *gorm.DB }

func NewQuestionRepository(db *gorm.DB) *QuestionRepository { return &QuestionRepository{db: db} }

func (r *QuestionRepository) Create(q *models.Question) error { return r.db.Create(q).Error }

func (r *QuestionRepository) All() ([]models.Question, error) {
	var qs []models.Question
	return qs, r.db.Order("id").Find(&qs).Error
}

func (r *QuestionRepository) FindByUUID(uuid string) (*models.Question, error) {
	var q models.Question
	if err := r.db.Where("uuid = ?", uuid).First(&q).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &q, nil
}

func (r *QuestionRepository) Update(q *models.Question) error { return r.db.Save(q).Error }

func (r *QuestionRepository) DeleteByUUID(uuid string) error {
	return r.db.Where("uuid = ?", uuid).Delete(&models.Question{}).Error
}

func (r *QuestionRepository) ByUserID(userID uint) ([]models.Question, error) {
	var qs []models.Question
	return qs, r.db.Where("user_id = ?", userID).Order("id").Find(&qs).Error
}
