package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayushraj/studydeck/internal/models"
	"github.com/ayushraj/studydeck/internal/store"
)

func seed(t *testing.T, st store.Store, subjectID uint, date time.Time, duration int) {
	t.Helper()
	require.NoError(t, st.CreateSession(&models.StudySession{
		SubjectID: subjectID,
		Date:      date,
		Duration:  duration,
	}))
}

func newSubject(t *testing.T, st store.Store, name string) uint {
	t.Helper()
	subject := models.Subject{Name: name}
	require.NoError(t, st.CreateSubject(&subject))
	return subject.ID
}

func TestTotalStudyTime(t *testing.T) {
	st := store.NewMemStore()
	r := New(st)
	math := newSubject(t, st, "Mathematics")

	total, err := r.TotalStudyTime()
	require.NoError(t, err)
	assert.Equal(t, 0, total)

	seed(t, st, math, time.Now(), 300)
	seed(t, st, math, time.Now(), 120)

	total, err = r.TotalStudyTime()
	require.NoError(t, err)
	assert.Equal(t, 420, total)
}

func TestTotalForDayUsesLocalCalendarDate(t *testing.T) {
	st := store.NewMemStore()
	r := New(st)
	math := newSubject(t, st, "Mathematics")

	// One minute before local midnight belongs to April 2, not April 3
	seed(t, st, math, time.Date(2025, 4, 2, 23, 59, 0, 0, time.Local), 600)
	seed(t, st, math, time.Date(2025, 4, 3, 0, 1, 0, 0, time.Local), 60)

	secondTotal, err := r.TotalStudyTimeForDay(time.Date(2025, 4, 2, 8, 0, 0, 0, time.Local))
	require.NoError(t, err)
	assert.Equal(t, 600, secondTotal)

	thirdTotal, err := r.TotalStudyTimeForDay(time.Date(2025, 4, 3, 8, 0, 0, 0, time.Local))
	require.NoError(t, err)
	assert.Equal(t, 60, thirdTotal)
}

func TestSessionsForSubjectNewestFirst(t *testing.T) {
	st := store.NewMemStore()
	r := New(st)
	math := newSubject(t, st, "Mathematics")
	physics := newSubject(t, st, "Physics")

	day := func(d int) time.Time {
		return time.Date(2025, 4, d, 9, 0, 0, 0, time.Local)
	}
	seed(t, st, math, day(1), 60)
	seed(t, st, math, day(3), 60)
	seed(t, st, math, day(2), 60)
	seed(t, st, physics, day(4), 60)

	sessions, err := r.SessionsForSubject(math)
	require.NoError(t, err)
	require.Len(t, sessions, 3)
	assert.Equal(t, day(3), sessions[0].Date)
	assert.Equal(t, day(2), sessions[1].Date)
	assert.Equal(t, day(1), sessions[2].Date)
}

func TestSessionsInRangeInclusiveBounds(t *testing.T) {
	st := store.NewMemStore()
	r := New(st)
	math := newSubject(t, st, "Mathematics")

	from := time.Date(2025, 4, 2, 0, 0, 0, 0, time.Local)
	to := time.Date(2025, 4, 4, 0, 0, 0, 0, time.Local)
	seed(t, st, math, from, 60)             // exactly the lower bound
	seed(t, st, math, to, 60)               // exactly the upper bound
	seed(t, st, math, from.Add(-time.Second), 60)
	seed(t, st, math, to.Add(time.Second), 60)

	sessions, err := r.SessionsInRange(from, to)
	require.NoError(t, err)
	assert.Len(t, sessions, 2)
}
