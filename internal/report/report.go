// Package report derives totals and history views from the session log.
// Everything here is a pure read; the stored per-subject total remains the
// fast path and these derivations must agree with it.
package report

import (
	"sort"
	"time"

	"github.com/ayushraj/studydeck/internal/models"
	"github.com/ayushraj/studydeck/internal/store"
)

type Reporter struct {
	store store.Store
}

func New(st store.Store) *Reporter {
	return &Reporter{store: st}
}

// TotalStudyTime sums the duration of every recorded session, in seconds.
func (r *Reporter) TotalStudyTime() (int, error) {
	sessions, err := r.store.Sessions()
	if err != nil {
		return 0, err
	}
	total := 0
	for _, s := range sessions {
		total += s.Duration
	}
	return total, nil
}

// TotalStudyTimeForDay sums sessions falling on the same local calendar day
// as the given time. Year/month/day equality, not a rolling 24-hour window.
func (r *Reporter) TotalStudyTimeForDay(day time.Time) (int, error) {
	sessions, err := r.store.Sessions()
	if err != nil {
		return 0, err
	}
	total := 0
	for _, s := range sessions {
		if sameDay(s.Date, day) {
			total += s.Duration
		}
	}
	return total, nil
}

// SessionsForSubject returns a subject's sessions, newest first.
func (r *Reporter) SessionsForSubject(subjectID uint) ([]models.StudySession, error) {
	sessions, err := r.store.SessionsBySubject(subjectID)
	if err != nil {
		return nil, err
	}
	sort.Slice(sessions, func(i, j int) bool {
		return sessions[i].Date.After(sessions[j].Date)
	})
	return sessions, nil
}

// SessionsInRange returns sessions with from <= date <= to.
func (r *Reporter) SessionsInRange(from, to time.Time) ([]models.StudySession, error) {
	return r.store.SessionsInRange(from, to)
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Local().Date()
	by, bm, bd := b.Local().Date()
	return ay == by && am == bm && ad == bd
}
