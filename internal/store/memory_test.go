package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayushraj/studydeck/internal/models"
)

func strPtr(s string) *string { return &s }

func TestCreateSubjectStartsAtZero(t *testing.T) {
	m := NewMemStore()

	subject := models.Subject{Name: "Mathematics", TotalStudyTime: 999}
	require.NoError(t, m.CreateSubject(&subject))

	assert.NotZero(t, subject.ID)
	assert.Equal(t, 0, subject.TotalStudyTime)
	assert.Equal(t, "border-blue-500", subject.ColorClass)
}

func TestUpdateSubjectPatchesOnlyGivenFields(t *testing.T) {
	m := NewMemStore()
	subject := models.Subject{Name: "Physics", Description: "Mechanics"}
	require.NoError(t, m.CreateSubject(&subject))

	updated, err := m.UpdateSubject(subject.ID, models.SubjectPatch{Name: strPtr("Physics II")})
	require.NoError(t, err)

	assert.Equal(t, "Physics II", updated.Name)
	assert.Equal(t, "Mechanics", updated.Description)
}

func TestSubjectNotFound(t *testing.T) {
	m := NewMemStore()

	_, err := m.Subject(42)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = m.UpdateSubject(42, models.SubjectPatch{})
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, m.AddStudyTime(42, 10), ErrNotFound)
}

func TestAddAndSubtractStudyTime(t *testing.T) {
	m := NewMemStore()
	subject := models.Subject{Name: "Chemistry"}
	require.NoError(t, m.CreateSubject(&subject))

	require.NoError(t, m.AddStudyTime(subject.ID, 300))
	require.NoError(t, m.AddStudyTime(subject.ID, -100))

	got, err := m.Subject(subject.ID)
	require.NoError(t, err)
	assert.Equal(t, 200, got.TotalStudyTime)

	// Subtracting past zero clamps instead of going negative
	require.NoError(t, m.SubtractStudyTime(subject.ID, 500))
	got, err = m.Subject(subject.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, got.TotalStudyTime)
}

func TestDeleteSubjectCascades(t *testing.T) {
	m := NewMemStore()

	math := models.Subject{Name: "Mathematics"}
	physics := models.Subject{Name: "Physics"}
	require.NoError(t, m.CreateSubject(&math))
	require.NoError(t, m.CreateSubject(&physics))

	for i := 0; i < 3; i++ {
		require.NoError(t, m.CreateSession(&models.StudySession{
			SubjectID: math.ID, Date: time.Now(), Duration: 60,
		}))
	}
	require.NoError(t, m.CreateSession(&models.StudySession{
		SubjectID: physics.ID, Date: time.Now(), Duration: 120,
	}))
	require.NoError(t, m.CreateFlashcard(&models.Flashcard{
		Question: "q", Answer: "a", SubjectID: math.ID,
	}))
	require.NoError(t, m.CreatePlannerItem(&models.PlannerItem{
		Title: "homework", Date: time.Now(), SubjectID: &math.ID,
	}))

	require.NoError(t, m.DeleteSubject(math.ID))

	sessions, err := m.SessionsBySubject(math.ID)
	require.NoError(t, err)
	assert.Empty(t, sessions)

	cards, err := m.Flashcards()
	require.NoError(t, err)
	assert.Empty(t, cards)

	items, err := m.PlannerItems()
	require.NoError(t, err)
	assert.Empty(t, items)

	// The other subject's data is untouched
	remaining, err := m.SessionsBySubject(physics.ID)
	require.NoError(t, err)
	assert.Len(t, remaining, 1)
}

func TestSessionsInRange(t *testing.T) {
	m := NewMemStore()
	subject := models.Subject{Name: "History"}
	require.NoError(t, m.CreateSubject(&subject))

	day := func(d int) time.Time {
		return time.Date(2025, 4, d, 12, 0, 0, 0, time.Local)
	}
	for d := 1; d <= 5; d++ {
		require.NoError(t, m.CreateSession(&models.StudySession{
			SubjectID: subject.ID, Date: day(d), Duration: 60,
		}))
	}

	// Bounds are inclusive on both ends
	got, err := m.SessionsInRange(day(2), day(4))
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, day(2), got[0].Date)
	assert.Equal(t, day(4), got[2].Date)
}

func TestDefaultUserSeeded(t *testing.T) {
	m := NewMemStore()

	user, err := m.DefaultUser()
	require.NoError(t, err)
	assert.Equal(t, uint(1), user.ID)

	dark := true
	updated, err := m.UpdateUser(user.ID, models.UserPatch{IsDarkMode: &dark})
	require.NoError(t, err)
	assert.True(t, updated.IsDarkMode)
}
