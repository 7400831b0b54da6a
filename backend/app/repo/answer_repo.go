package repo

import (
	"errors"

	"quora-backend/backend/app/models"

	"gorm.io/gorm"
)

type AnswerRepository struct{ db *gorm.DB }

func NewAnswerRepository(db *gorm.DB) *AnswerRepository { return &AnswerRepository{db: db} }

func (r *AnswerRepository) Create(a *models.Answer) error { return r.db.Create(a).Error }

func (r *AnswerRepository) FindByUUID(uuid string) (*models.Answer, error) {
	var a models.Answer
	if err := r.db.Where("uuid = ?", uuid).First(&a).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &a, nil
}

func (r *AnswerRepository) Update(a *models.Answer) error { return r.db.Save(a).Error }

func (r *AnswerRepository) DeleteByUUID(uuid string) error {
	return r.db.Where("uuid = ?", uuid).Delete(&models.Answer{}).Error
}

func (r *AnswerRepository) ByQuestionID(questionID uint) ([]models.Answer, error) {
	var as []models.Answer
	return as, r.db.Where("question_id = ?", questionID).Order("id").Find(&as).Error
}
