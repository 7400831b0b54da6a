package services

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"quora-backend/backend/app/apperr"
	"quora-backend/backend/app/models"
)

type AnswerService struct {
	answers   AnswerStore
	questions QuestionStore
	authz     *AuthzService

	now func() time.Time
}

func NewAnswerService(answers AnswerStore, questions QuestionStore, authz *AuthzService) *AnswerService {
	return &AnswerService{answers: answers, questions: questions, authz: authz, now: time.Now}
}

func (s *AnswerService) Create(accessToken, questionUUID, content string) (*models.Answer, error) {
	user, err := s.authz.Authorize(accessToken, CapCreateAnswer)
	if err != nil {
		return nil, err
	}
	q, err := s.questions.FindByUUID(questionUUID)
	if err != nil {
		return nil, fmt.Errorf("find question: %w", err)
	}
	if q == nil {
		return nil, apperr.ErrQuestionNotFound
	}
	a := &models.Answer{
		UUID:       uuid.NewString(),
		Content:    content,
		Date:       s.now(),
		UserID:     user.ID,
		QuestionID: q.ID,
	}
	if err := s.answers.Create(a); err != nil {
		return nil, fmt.Errorf("create answer: %w", err)
	}
	return a, nil
}

// Edit replaces the answer content. Ownership compares against the answer's
// owning user, never the answer's own id.
func (s *AnswerService) Edit(accessToken, answerUUID, content string) (*models.Answer, error) {
	user, err := s.authz.Authorize(accessToken, CapCheckAnswer)
	if err != nil {
		return nil, err
	}
	a, err := s.mustFind(answerUUID)
	if err != nil {
		return nil, err
	}
	if a.UserID != user.ID {
		return nil, apperr.Forbidden("Only the answer owner can edit the answer")
	}
	a.Content = content
	if err := s.answers.Update(a); err != nil {
		return nil, fmt.Errorf("update answer: %w", err)
	}
	return a, nil
}

// Delete removes the answer. Owner or admin.
func (s *AnswerService) Delete(accessToken, answerUUID string) (string, error) {
	user, err := s.authz.Authorize(accessToken, CapDeleteAnswer)
	if err != nil {
		return "", err
	}
	a, err := s.mustFind(answerUUID)
	if err != nil {
		return "", err
	}
	if a.UserID != user.ID && !user.IsAdmin() {
		return "", apperr.Forbidden("Only the answer owner or admin can delete the answer")
	}
	if err := s.answers.DeleteByUUID(answerUUID); err != nil {
		return "", fmt.Errorf("delete answer: %w", err)
	}
	return answerUUID, nil
}

// AllForQuestion returns the question plus every answer posted to it.
func (s *AnswerService) AllForQuestion(accessToken, questionUUID string) (*models.Question, []models.Answer, error) {
	if _, err := s.authz.Authorize(accessToken, CapGetAllAnswers); err != nil {
		return nil, nil, err
	}
	q, err := s.questions.FindByUUID(questionUUID)
	if err != nil {
		return nil, nil, fmt.Errorf("find question: %w", err)
	}
	if q == nil {
		return nil, nil, apperr.NotFound(apperr.ErrQuestionNotFound, "The question with entered uuid whose details are to be seen does not exist")
	}
	answers, err := s.answers.ByQuestionID(q.ID)
	if err != nil {
		return nil, nil, err
	}
	return q, answers, nil
}

func (s *AnswerService) mustFind(answerUUID string) (*models.Answer, error) {
	a, err := s.answers.FindByUUID(answerUUID)
	if err != nil {
		return nil, fmt.Errorf("find answer: %w", err)
	}
	if a == nil {
		return nil, apperr.ErrAnswerNotFound
	}
	return a, nil
}
