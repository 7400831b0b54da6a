package controllers

import (
	"encoding/json"
	"net/http"

	"quora-backend/backend/app/dto"
	"quora-backend/backend/app/middleware"
	"quora-backend/backend/app/services"
)

type QuestionController struct {
	Questions *services.QuestionService
}

func NewQuestionController(questions *services.QuestionService) *QuestionController {
	return &QuestionController{Questions: questions}
}

func (c *QuestionController) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.QuestionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Code: "GEN-002", Message: "malformed request body"})
		return
	}
	q, err := c.Questions.Create(middleware.GetToken(r.Context()), req.Content)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, dto.QuestionResponse{ID: q.UUID, Status: "QUESTION CREATED"})
}

func (c *QuestionController) GetAll(w http.ResponseWriter, r *http.Request) {
	qs, err := c.Questions.All(middleware.GetToken(r.Context()))
	if err != nil {
		writeError(w, err)
		return
	}
	out := make([]dto.QuestionDetailsResponse, 0, len(qs))
	for _, q := range qs {
		out = append(out, dto.QuestionDetailsResponse{ID: q.UUID, Content: q.Content})
	}
	writeJSON(w, http.StatusOK, out)
}

func (c *QuestionController) Edit(w http.ResponseWriter, r *http.Request) {
	var req dto.QuestionEditRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Code: "GEN-002", Message: "malformed request body"})
		return
	}
	q, err := c.Questions.Edit(middleware.GetToken(r.Context()), r.PathValue("questionId"), req.Content)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.QuestionEditResponse{ID: q.UUID, Status: "QUESTION EDITED"})
}

func (c *QuestionController) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := c.Questions.Delete(middleware.GetToken(r.Context()), r.PathValue("questionId"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.QuestionDeleteResponse{ID: id, Status: "QUESTION DELETED"})
}

func (c *QuestionController) GetAllByUser(w http.ResponseWriter, r *http.Request) {
	qs, err := c.Questions.AllByUser(middleware.GetToken(r.Context()), r.PathValue("userId"))
	if err != nil {
		writeError(w, err)
		return
	}
	out := make([]dto.QuestionDetailsResponse, 0, len(qs))
	for _, q := range qs {
		out = append(out, dto.QuestionDetailsResponse{ID: q.UUID, Content: q.Content})
	}
	writeJSON(w, http.StatusOK, out)
}
