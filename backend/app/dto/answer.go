package dto

type AnswerRequest struct {
	Answer string `json:"answer"`
}

type AnswerResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

type AnswerEditRequest struct {
	Content string `json:"content"`
}

type AnswerEditResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

type AnswerDeleteResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

type AnswerDetailsResponse struct {
	ID              string `json:"id"`
	QuestionContent string `json:"question_content"`
	AnswerContent   string `json:"answer_content"`
}
