package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/CapsLuky/api.flow.core.user/internal/repository"
)

// UsersHandler serves the read-only user query endpoints.
type UsersHandler struct {
	repo   *repository.UserRepository
	logger *zap.Logger
}

func NewUsersHandler(repo *repository.UserRepository, logger *zap.Logger) *UsersHandler {
	return &UsersHandler{
		repo:   repo,
		logger: logger,
	}
}

// GetUsers handles GET /api/users
func (h *UsersHandler) GetUsers(c *fiber.Ctx) error {
	users, err := h.repo.GetUsers(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to fetch users",
		})
	}

	return c.JSON(fiber.Map{
		"users": users,
		"count": len(users),
	})
}

// GetUserByID handles GET /api/users/:id
func (h *UsersHandler) GetUserByID(c *fiber.Ctx) error {
	id := c.Params("id")

	user, err := h.repo.GetUserByID(c.Context(), id)
	if err != nil {
		h.logger.Warn("failed to fetch user",
			zap.String("user_id", id),
			zap.Error(err),
		)
		if errors.Is(err, primitive.ErrInvalidHex) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "invalid user id",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to fetch user",
		})
	}
	if user == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "user not found",
		})
	}

	return c.JSON(user)
}
