package controllers

import (
	"encoding/json"
	"net/http"

	"quora-backend/backend/app/dto"
	"quora-backend/backend/app/middleware"
	"quora-backend/backend/app/services"
)

type AnswerController struct {
	Answers *services.AnswerService
}

func NewAnswerController(answers *services.AnswerService) *AnswerController {
	return &AnswerController{Answers: answers}
}

func (c *AnswerController) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.AnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Code: "GEN-002", Message: "malformed request body"})
		return
	}
	a, err := c.Answers.Create(middleware.GetToken(r.Context()), r.PathValue("questionId"), req.Answer)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, dto.AnswerResponse{ID: a.UUID, Status: "ANSWER CREATED"})
}

func (c *AnswerController) Edit(w http.ResponseWriter, r *http.Request) {
	var req dto.AnswerEditRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Code: "GEN-002", Message: "malformed request body"})
		return
	}
	a, err := c.Answers.Edit(middleware.GetToken(r.Context()), r.PathValue("answerId"), req.Content)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.AnswerEditResponse{ID: a.UUID, Status: "ANSWER EDITED"})
}

func (c *AnswerController) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := c.Answers.Delete(middleware.GetToken(r.Context()), r.PathValue("answerId"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.AnswerDeleteResponse{ID: id, Status: "ANSWER DELETED"})
}

func (c *AnswerController) GetAllForQuestion(w http.ResponseWriter, r *http.Request) {
	q, answers, err := c.Answers.AllForQuestion(middleware.GetToken(r.Context()), r.PathValue("questionId"))
	if err != nil {
		writeError(w, err)
		return
	}
	out := make([]dto.AnswerDetailsResponse, 0, len(answers))
	for _, a := range answers {
		out = append(out, dto.AnswerDetailsResponse{ID: a.UUID, QuestionContent: q.Content, AnswerContent: a.Content})
	}
	writeJSON(w, http.StatusOK, out)
}
