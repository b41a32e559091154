package handlers

import (
	"github.com/gitmindapp/gitmind-backend/internal/identity"
	"github.com/gitmindapp/gitmind-backend/internal/models"
	"github.com/gitmindapp/gitmind-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

// currentUser resolves the local user record for the authenticated
// caller, creating it lazily on first request. The returned error is a
// *fiber.Error the app error handler turns into the JSON envelope.
func currentUser(c *fiber.Ctx, users *services.UserService) (*models.User, error) {
	caller, err := identity.FromContext(c)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
	}

	user, err := users.GetOrCreate(caller)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "User not found")
	}
	return user, nil
}
