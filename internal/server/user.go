package server

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ayushraj/studydeck/internal/models"
)

func (s *Server) getUser(c *fiber.Ctx) error {
	user, err := s.store.DefaultUser()
	if err != nil {
		return s.fail(c, err, "user")
	}
	return c.JSON(user)
}

func (s *Server) updateUser(c *fiber.Ctx) error {
	user, err := s.store.DefaultUser()
	if err != nil {
		return s.fail(c, err, "user")
	}
	var patch models.UserPatch
	if err := c.BodyParser(&patch); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid user data"})
	}
	updated, err := s.store.UpdateUser(user.ID, patch)
	if err != nil {
		return s.fail(c, err, "user")
	}
	return c.JSON(updated)
}
