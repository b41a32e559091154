package handlers

import (
	"github.com/gitmindapp/gitmind-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

type UserHandler struct {
	users *services.UserService
}

func NewUserHandler(users *services.UserService) *UserHandler {
	return &UserHandler{users: users}
}

// Me handles GET /api/me — the caller's profile and credit balance.
func (h *UserHandler) Me(c *fiber.Ctx) error {
	user, err := currentUser(c, h.users)
	if err != nil {
		return err
	}
	return c.JSON(user)
}
