package handlers

import (
	"errors"
	"log/slog"

	"github.com/gitmindapp/gitmind-backend/internal/dto"
	"github.com/gitmindapp/gitmind-backend/internal/github"
	"github.com/gitmindapp/gitmind-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

type ProjectHandler struct {
	users    *services.UserService
	projects *services.ProjectService
}

func NewProjectHandler(users *services.UserService, projects *services.ProjectService) *ProjectHandler {
	return &ProjectHandler{users: users, projects: projects}
}

// Create handles POST /api/projects
func (h *ProjectHandler) Create(c *fiber.Ctx) error {
	user, err := currentUser(c, h.users)
	if err != nil {
		return err
	}

	var req dto.CreateProjectRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "Invalid request body",
		})
	}
	if req.GithubURL == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "GitHub URL is required",
		})
	}

	project, info, err := h.projects.Create(c.UserContext(), user, req.GithubURL)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidRepoURL):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Invalid GitHub URL format"})
		case errors.Is(err, github.ErrRepoNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "Repository not found. Make sure it exists and is public."})
		case errors.Is(err, services.ErrDuplicateProject):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Error: "This repository is already added to your projects"})
		default:
			slog.Error("project creation failed", "user_id", user.ID.String(), "error", err)
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "Failed to create project"})
		}
	}

	return c.Status(fiber.StatusCreated).JSON(dto.CreateProjectResponse{
		Success: true,
		Project: dto.ProjectResponse{
			ID:        project.ID,
			Name:      project.Name,
			GithubURL: project.GithubURL,
			RepoInfo: &dto.RepoInfoResponse{
				Description: info.Description,
				Language:    info.Language,
				Stars:       info.Stars,
				Forks:       info.Forks,
				Owner:       info.Owner.Login,
				Avatar:      info.Owner.AvatarURL,
			},
		},
	})
}

// List handles GET /api/projects
func (h *ProjectHandler) List(c *fiber.Ctx) error {
	user, err := currentUser(c, h.users)
	if err != nil {
		return err
	}

	projects, err := h.projects.List(c.UserContext(), user)
	if err != nil {
		slog.Error("project listing failed", "user_id", user.ID.String(), "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: "Failed to fetch projects",
		})
	}

	return c.JSON(dto.ListProjectsResponse{Projects: projects})
}
