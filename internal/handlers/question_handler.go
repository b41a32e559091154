package handlers

import (
	"errors"
	"log/slog"
	"strings"

	"github.com/gitmindapp/gitmind-backend/internal/dto"
	"github.com/gitmindapp/gitmind-backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type QuestionHandler struct {
	users     *services.UserService
	questions *services.QuestionService
}

func NewQuestionHandler(users *services.UserService, questions *services.QuestionService) *QuestionHandler {
	return &QuestionHandler{users: users, questions: questions}
}

// Ask handles POST /api/projects/:projectId/questions
func (h *QuestionHandler) Ask(c *fiber.Ctx) error {
	user, err := currentUser(c, h.users)
	if err != nil {
		return err
	}

	var req dto.AskQuestionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "Invalid request body",
		})
	}
	if strings.TrimSpace(req.Question) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "Question is required",
		})
	}

	projectID, err := uuid.Parse(c.Params("projectId"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: "Project not found",
		})
	}

	question, remaining, err := h.questions.Ask(c.UserContext(), user, projectID, req.Question)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInsufficientCredits):
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Error: "Insufficient credits. Please upgrade your plan."})
		case errors.Is(err, services.ErrProjectNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "Project not found"})
		default:
			slog.Error("question processing failed", "user_id", user.ID.String(), "project_id", projectID.String(), "error", err)
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "Failed to process question"})
		}
	}

	return c.JSON(dto.AskQuestionResponse{
		Success:          true,
		Question:         question.Question,
		Answer:           question.Answer,
		CreditsRemaining: remaining,
	})
}

// History handles GET /api/projects/:projectId/questions
func (h *QuestionHandler) History(c *fiber.Ctx) error {
	user, err := currentUser(c, h.users)
	if err != nil {
		return err
	}

	projectID, err := uuid.Parse(c.Params("projectId"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: "Project not found",
		})
	}

	questions, err := h.questions.History(user, projectID)
	if err != nil {
		slog.Error("question history failed", "user_id", user.ID.String(), "project_id", projectID.String(), "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: "Failed to fetch questions",
		})
	}

	entries := make([]dto.QuestionResponse, len(questions))
	for i, q := range questions {
		entries[i] = dto.QuestionResponse{
			ID:        q.ID,
			Question:  q.Question,
			Answer:    q.Answer,
			CreatedAt: q.CreatedAt,
		}
	}
	return c.JSON(dto.ListQuestionsResponse{Questions: entries})
}
