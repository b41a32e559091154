package dto

import (
	"time"

	"github.com/google/uuid"
)

type AskQuestionRequest struct {
	Question string `json:"question"`
}

type AskQuestionResponse struct {
	Success          bool   `json:"success"`
	Question         string `json:"question"`
	Answer           string `json:"answer"`
	CreditsRemaining int    `json:"creditsRemaining"`
}

type QuestionResponse struct {
	ID        uuid.UUID `json:"id"`
	Question  string    `json:"question"`
	Answer    string    `json:"answer"`
	CreatedAt time.Time `json:"createdAt"`
}

type ListQuestionsResponse struct {
	Questions []QuestionResponse `json:"questions"`
}
