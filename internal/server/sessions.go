package server

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/ayushraj/studydeck/internal/ledger"
	"github.com/ayushraj/studydeck/internal/models"
)

type createSessionRequest struct {
	SubjectID uint    `json:"subjectId" validate:"required"`
	Duration  int     `json:"duration" validate:"required,gt=0"`
	Date      string  `json:"date"`
	Comments  *string `json:"comments"`
}

type updateSessionRequest struct {
	Date     *string `json:"date"`
	Duration *int    `json:"duration"`
	Comments *string `json:"comments"`
}

func (s *Server) listSessions(c *fiber.Ctx) error {
	var filter ledger.Filter
	if raw := c.QueryInt("subjectId"); raw > 0 {
		id := uint(raw)
		filter.SubjectID = &id
	}
	if raw := c.Query("from"); raw != "" {
		from, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid from date"})
		}
		filter.From = &from
	}
	if raw := c.Query("to"); raw != "" {
		to, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid to date"})
		}
		filter.To = &to
	}
	sessions, err := s.ledger.List(filter)
	if err != nil {
		return s.fail(c, err, "study sessions")
	}
	return c.JSON(sessions)
}

func (s *Server) createSession(c *fiber.Ctx) error {
	var req createSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid study session data"})
	}
	if err := s.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid study session data"})
	}

	var session *models.StudySession
	var err error
	if req.Date != "" {
		date, perr := time.Parse(time.RFC3339, req.Date)
		if perr != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid study session data"})
		}
		session, err = s.ledger.RecordAt(req.SubjectID, req.Duration, date, req.Comments)
	} else {
		session, err = s.ledger.Record(req.SubjectID, req.Duration, req.Comments)
	}
	if err != nil {
		return s.fail(c, err, "study session")
	}
	return c.Status(fiber.StatusCreated).JSON(session)
}

func (s *Server) updateSession(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid study session id"})
	}
	var req updateSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid study session data"})
	}
	patch := models.StudySessionPatch{
		Duration: req.Duration,
		Comments: req.Comments,
	}
	if req.Date != nil {
		date, perr := time.Parse(time.RFC3339, *req.Date)
		if perr != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid study session data"})
		}
		patch.Date = &date
	}
	session, err := s.ledger.Update(id, patch)
	if err != nil {
		return s.fail(c, err, "study session")
	}
	return c.JSON(session)
}

func (s *Server) deleteSession(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid study session id"})
	}
	if err := s.ledger.Delete(id); err != nil {
		return s.fail(c, err, "study session")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
