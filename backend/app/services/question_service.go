package services

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"quora-backend/backend/app/apperr"
	"quora-backend/backend/app/models"
)

type QuestionService struct {
	questions QuestionStore
	users     UserStore
	authz     *AuthzService

	now func() time.Time
}

func NewQuestionService(questions QuestionStore, users UserStore, authz *AuthzService) *QuestionService {
	return &QuestionService{questions: questions, users: users, authz: authz, now: time.Now}
}

func (s *QuestionService) Create(accessToken, content string) (*models.Question, error) {
	user, err := s.authz.Authorize(accessToken, CapCreateQuestion)
	if err != nil {
		return nil, err
	}
	q := &models.Question{
		UUID:    uuid.NewString(),
		Content: content,
		Date:    s.now(),
		UserID:  user.ID,
	}
	if err := s.questions.Create(q); err != nil {
		return nil, fmt.Errorf("create question: %w", err)
	}
	return q, nil
}

func (s *QuestionService) All(accessToken string) ([]models.Question, error) {
	if _, err := s.authz.Authorize(accessToken, CapGetAllQuestions); err != nil {
		return nil, err
	}
	return s.questions.All()
}

// Edit replaces the question content. Owner only.
func (s *QuestionService) Edit(accessToken, questionUUID, content string) (*models.Question, error) {
	user, err := s.authz.Authorize(accessToken, CapCheckQuestion)
	if err != nil {
		return nil, err
	}
	q, err := s.mustFind(questionUUID)
	if err != nil {
		return nil, err
	}
	if q.UserID != user.ID {
		return nil, apperr.Forbidden("Only the question owner can edit the question")
	}
	q.Content = content
	if err := s.questions.Update(q); err != nil {
		return nil, fmt.Errorf("update question: %w", err)
	}
	return q, nil
}

// Delete removes the question. Owner or admin.
func (s *QuestionService) Delete(accessToken, questionUUID string) (string, error) {
	user, err := s.authz.Authorize(accessToken, CapDeleteQuestion)
	if err != nil {
		return "", err
	}
	q, err := s.mustFind(questionUUID)
	if err != nil {
		return "", err
	}
	if q.UserID != user.ID && !user.IsAdmin() {
		return "", apperr.Forbidden("Only the question owner or admin can delete the question")
	}
	if err := s.questions.DeleteByUUID(questionUUID); err != nil {
		return "", fmt.Errorf("delete question: %w", err)
	}
	return questionUUID, nil
}

// AllByUser lists the questions posted by the user at the given uuid.
func (s *QuestionService) AllByUser(accessToken, userUUID string) ([]models.Question, error) {
	if _, err := s.authz.Authorize(accessToken, CapGetQuestionsByUser); err != nil {
		return nil, err
	}
	owner, err := s.users.FindByUUID(userUUID)
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	if owner == nil {
		return nil, apperr.NotFound(apperr.ErrUserNotFound, "User with entered uuid whose question details are to be seen does not exist")
	}
	return s.questions.ByUserID(owner.ID)
}

func (s *QuestionService) mustFind(questionUUID string) (*models.Question, error) {
	q, err := s.questions.FindByUUID(questionUUID)
	if err != nil {
		return nil, fmt.Errorf("find question: %w", err)
	}
	if q == nil {
		return nil, apperr.ErrQuestionNotFound
	}
	return q, nil
}
