package server

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/ayushraj/studydeck/internal/models"
)

type createPlannerItemRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	Date        string `json:"date" validate:"required"`
	IsCompleted bool   `json:"isCompleted"`
	SubjectID   *uint  `json:"subjectId"`
}

type updatePlannerItemRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Date        *string `json:"date"`
	IsCompleted *bool   `json:"isCompleted"`
	SubjectID   *uint   `json:"subjectId"`
}

func (s *Server) listPlannerItems(c *fiber.Ctx) error {
	items, err := s.store.PlannerItems()
	if err != nil {
		return s.fail(c, err, "planner items")
	}
	return c.JSON(items)
}

func (s *Server) createPlannerItem(c *fiber.Ctx) error {
	var req createPlannerItemRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid planner item data"})
	}
	if err := s.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid planner item data"})
	}
	date, err := time.Parse(time.RFC3339, req.Date)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid planner item data"})
	}
	item := models.PlannerItem{
		Title:       req.Title,
		Description: req.Description,
		Date:        date,
		IsCompleted: req.IsCompleted,
		SubjectID:   req.SubjectID,
	}
	if err := s.store.CreatePlannerItem(&item); err != nil {
		return s.fail(c, err, "planner item")
	}
	return c.Status(fiber.StatusCreated).JSON(item)
}

func (s *Server) updatePlannerItem(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid planner item id"})
	}
	var req updatePlannerItemRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid planner item data"})
	}
	patch := models.PlannerItemPatch{
		Title:       req.Title,
		Description: req.Description,
		IsCompleted: req.IsCompleted,
		SubjectID:   req.SubjectID,
	}
	if req.Date != nil {
		date, perr := time.Parse(time.RFC3339, *req.Date)
		if perr != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid planner item data"})
		}
		patch.Date = &date
	}
	item, err := s.store.UpdatePlannerItem(id, patch)
	if err != nil {
		return s.fail(c, err, "planner item")
	}
	return c.JSON(item)
}

func (s *Server) deletePlannerItem(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid planner item id"})
	}
	if err := s.store.DeletePlannerItem(id); err != nil && !isNotFound(err) {
		return s.fail(c, err, "planner item")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
