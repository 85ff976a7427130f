package server

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/ayushraj/studydeck/internal/ledger"
	"github.com/ayushraj/studydeck/internal/store"
)

// Server is the HTTP surface over the study store. Mutations on study
// sessions go through the ledger so the aggregate side effects always ride
// along; everything else talks to the store directly.
type Server struct {
	app      *fiber.App
	store    store.Store
	ledger   *ledger.Ledger
	validate *validator.Validate
}

func New(st store.Store) *Server {
	s := &Server{
		app: fiber.New(fiber.Config{
			DisableStartupMessage: true,
		}),
		store:    st,
		ledger:   ledger.New(st),
		validate: validator.New(),
	}

	s.app.Use(requestLogger)
	s.app.Get("/health", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	api := s.app.Group("/api")

	api.Get("/user", s.getUser)
	api.Patch("/user", s.updateUser)

	api.Get("/subjects", s.listSubjects)
	api.Post("/subjects", s.createSubject)
	api.Patch("/subjects/:id", s.updateSubject)
	api.Delete("/subjects/:id", s.deleteSubject)

	api.Get("/study-sessions", s.listSessions)
	api.Post("/study-sessions", s.createSession)
	api.Patch("/study-sessions/:id", s.updateSession)
	api.Delete("/study-sessions/:id", s.deleteSession)

	api.Get("/planner", s.listPlannerItems)
	api.Post("/planner", s.createPlannerItem)
	api.Patch("/planner/:id", s.updatePlannerItem)
	api.Delete("/planner/:id", s.deletePlannerItem)

	api.Get("/flashcards", s.listFlashcards)
	api.Post("/flashcards", s.createFlashcard)
	api.Patch("/flashcards/:id", s.updateFlashcard)
	api.Delete("/flashcards/:id", s.deleteFlashcard)

	return s
}

// App exposes the fiber app, mainly for tests.
func (s *Server) App() *fiber.App {
	return s.app
}

// Listen serves until the listener fails.
func (s *Server) Listen(addr string) error {
	log.Printf("serving on %s", addr)
	return s.app.Listen(addr)
}

func requestLogger(c *fiber.Ctx) error {
	start := time.Now()
	err := c.Next()
	if strings.HasPrefix(c.Path(), "/api") {
		log.Printf("%s %s %d in %s", c.Method(), c.Path(), c.Response().StatusCode(), time.Since(start))
	}
	return err
}

// fail maps core errors onto HTTP responses.
func (s *Server) fail(c *fiber.Ctx, err error, fallback string) error {
	var ve *ledger.ValidationError
	if errors.As(err, &ve) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": ve.Reason})
	}
	var nf *ledger.NotFoundError
	if errors.As(err, &nf) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": nf.Error()})
	}
	if errors.Is(err, store.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": fallback + " not found"})
	}
	log.Printf("[ERROR] %s: %v", fallback, err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Error handling " + fallback})
}

func isNotFound(err error) bool {
	return errors.Is(err, store.ErrNotFound)
}

// paramID parses the :id route segment.
func paramID(c *fiber.Ctx) (uint, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return 0, errors.New("invalid id")
	}
	return uint(id), nil
}
