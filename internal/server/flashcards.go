package server

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ayushraj/studydeck/internal/models"
)

type createFlashcardRequest struct {
	Question  string `json:"question" validate:"required"`
	Answer    string `json:"answer" validate:"required"`
	SubjectID uint   `json:"subjectId" validate:"required"`
}

func (s *Server) listFlashcards(c *fiber.Ctx) error {
	if raw := c.QueryInt("subjectId"); raw > 0 {
		cards, err := s.store.FlashcardsBySubject(uint(raw))
		if err != nil {
			return s.fail(c, err, "flashcards")
		}
		return c.JSON(cards)
	}
	cards, err := s.store.Flashcards()
	if err != nil {
		return s.fail(c, err, "flashcards")
	}
	return c.JSON(cards)
}

func (s *Server) createFlashcard(c *fiber.Ctx) error {
	var req createFlashcardRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid flashcard data"})
	}
	if err := s.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid flashcard data"})
	}
	if _, err := s.store.Subject(req.SubjectID); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid flashcard data"})
	}
	card := models.Flashcard{
		Question:  req.Question,
		Answer:    req.Answer,
		SubjectID: req.SubjectID,
	}
	if err := s.store.CreateFlashcard(&card); err != nil {
		return s.fail(c, err, "flashcard")
	}
	return c.Status(fiber.StatusCreated).JSON(card)
}

func (s *Server) updateFlashcard(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid flashcard id"})
	}
	var patch models.FlashcardPatch
	if err := c.BodyParser(&patch); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid flashcard data"})
	}
	card, err := s.store.UpdateFlashcard(id, patch)
	if err != nil {
		return s.fail(c, err, "flashcard")
	}
	return c.JSON(card)
}

func (s *Server) deleteFlashcard(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid flashcard id"})
	}
	if err := s.store.DeleteFlashcard(id); err != nil && !isNotFound(err) {
		return s.fail(c, err, "flashcard")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
