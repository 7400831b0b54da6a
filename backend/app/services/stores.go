package services

import "quora-backend/backend/app/models"

// Store interfaces consumed by the services. The gorm repositories in
// backend/app/repo implement them; tests use in-memory fakes. Lookups
// return (nil, nil) when no row matches.

type UserStore interface {
	FindByUsername(username string) (*models.User, error)
	FindByEmail(email string) (*models.User, error)
	FindByUUID(uuid string) (*models.User, error)
	Create(u *models.User) error
	DeleteByUUID(uuid string) error
}

type TokenStore interface {
	Create(t *models.UserAuthToken) error
	FindByAccessToken(accessToken string) (*models.UserAuthToken, error)
	Update(t *models.UserAuthToken) error
}

type QuestionStore interface {
	Create(q *models.Question) error
	All() ([]models.Question, error)
	FindByUUID(uuid string) (*models.Question, error)
	Update(q *models.Question) error
	DeleteByUUID(uuid string) error
	ByUserID(userID uint) ([]models.Question, error)
}

type AnswerStore interface {
	Create(a *models.Answer) error
	FindByUUID(uuid string) (*models.Answer, error)
	Update(a *models.Answer) error
	DeleteByUUID(uuid string) error
	ByQuestionID(questionID uint) ([]models.Answer, error)
}
