package store

import (
	"errors"
	"time"

	"github.com/ayushraj/studydeck/internal/models"
)

// ErrNotFound is returned when an operation targets an id that does not
// exist in the store.
var ErrNotFound = errors.New("record not found")

// ErrUnavailable is returned when the durable backend cannot be reached.
var ErrUnavailable = errors.New("storage unavailable")

// Store is the persistence gateway for all study data. Two implementations
// exist with identical entity shapes: GormStore (durable, sqlite or
// postgres) and MemStore (volatile fallback). The backend is chosen once at
// process start and injected into every component; nothing reaches for a
// package-global handle.
type Store interface {
	// User
	DefaultUser() (*models.User, error)
	UpdateUser(id uint, patch models.UserPatch) (*models.User, error)

	// Subjects
	Subjects() ([]models.Subject, error)
	Subject(id uint) (*models.Subject, error)
	CreateSubject(s *models.Subject) error
	UpdateSubject(id uint, patch models.SubjectPatch) (*models.Subject, error)
	// DeleteSubject removes the subject and all of its dependents in a
	// fixed order: sessions, planner items, flashcards, then the subject.
	DeleteSubject(id uint) error

	// AddStudyTime applies total_study_time += delta server-side. Delta may
	// be negative. SubtractStudyTime clamps the result at zero.
	AddStudyTime(id uint, delta int) error
	SubtractStudyTime(id uint, amount int) error

	// Study sessions
	Sessions() ([]models.StudySession, error)
	Session(id uint) (*models.StudySession, error)
	CreateSession(s *models.StudySession) error
	UpdateSession(id uint, patch models.StudySessionPatch) (*models.StudySession, error)
	DeleteSession(id uint) error
	SessionsBySubject(subjectID uint) ([]models.StudySession, error)
	SessionsInRange(from, to time.Time) ([]models.StudySession, error)

	// Planner items
	PlannerItems() ([]models.PlannerItem, error)
	PlannerItem(id uint) (*models.PlannerItem, error)
	CreatePlannerItem(p *models.PlannerItem) error
	UpdatePlannerItem(id uint, patch models.PlannerItemPatch) (*models.PlannerItem, error)
	DeletePlannerItem(id uint) error

	// Flashcards
	Flashcards() ([]models.Flashcard, error)
	Flashcard(id uint) (*models.Flashcard, error)
	FlashcardsBySubject(subjectID uint) ([]models.Flashcard, error)
	CreateFlashcard(f *models.Flashcard) error
	UpdateFlashcard(id uint, patch models.FlashcardPatch) (*models.Flashcard, error)
	DeleteFlashcard(id uint) error
}
