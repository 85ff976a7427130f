package server

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ayushraj/studydeck/internal/models"
)

type createSubjectRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	ColorClass  string `json:"colorClass"`
}

func (s *Server) listSubjects(c *fiber.Ctx) error {
	subjects, err := s.store.Subjects()
	if err != nil {
		return s.fail(c, err, "subjects")
	}
	// Fold in any study-time deltas that could not be persisted yet.
	s.ledger.Aggregates().Overlay(subjects)
	return c.JSON(subjects)
}

func (s *Server) createSubject(c *fiber.Ctx) error {
	var req createSubjectRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid subject data"})
	}
	if err := s.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid subject data"})
	}
	subject := models.Subject{
		Name:        req.Name,
		Description: req.Description,
		ColorClass:  req.ColorClass,
	}
	if err := s.store.CreateSubject(&subject); err != nil {
		return s.fail(c, err, "subject")
	}
	return c.Status(fiber.StatusCreated).JSON(subject)
}

func (s *Server) updateSubject(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid subject id"})
	}
	var patch models.SubjectPatch
	if err := c.BodyParser(&patch); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid subject data"})
	}
	if patch.Name != nil && *patch.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Subject name cannot be empty"})
	}
	subject, err := s.store.UpdateSubject(id, patch)
	if err != nil {
		return s.fail(c, err, "subject")
	}
	return c.JSON(subject)
}

func (s *Server) deleteSubject(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid subject id"})
	}
	if err := s.store.DeleteSubject(id); err != nil && !isNotFound(err) {
		return s.fail(c, err, "subject")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
