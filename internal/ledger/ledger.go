package ledger

import (
	"errors"
	"log"
	"time"

	"github.com/ayushraj/studydeck/internal/models"
	"github.com/ayushraj/studydeck/internal/store"
)

// Ledger is the authoritative log of study sessions. Every mutation that
// touches a session's duration is mirrored by an aggregate adjustment on the
// owning subject, with the ledger write applied first so a crash in between
// leaves the history correct and only the cached total stale.
type Ledger struct {
	store      store.Store
	aggregates *Aggregates
}

// Filter narrows a session listing. Nil fields match everything.
type Filter struct {
	SubjectID *uint
	From      *time.Time
	To        *time.Time
}

// New returns a ledger writing through the given store.
func New(st store.Store) *Ledger {
	return &Ledger{store: st, aggregates: newAggregates(st)}
}

// Aggregates exposes the aggregate maintainer, mainly so read paths can fold
// in locally parked deltas.
func (l *Ledger) Aggregates() *Aggregates {
	return l.aggregates
}

// Record persists a new session dated now and increments the owning
// subject's total.
func (l *Ledger) Record(subjectID uint, duration int, comments *string) (*models.StudySession, error) {
	return l.RecordAt(subjectID, duration, time.Now(), comments)
}

// RecordAt is Record with an explicit session date, as supplied over the API.
func (l *Ledger) RecordAt(subjectID uint, duration int, date time.Time, comments *string) (*models.StudySession, error) {
	if duration <= 0 {
		return nil, &ValidationError{Reason: "duration must be a positive number of seconds"}
	}
	if _, err := l.store.Subject(subjectID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, &ValidationError{Reason: "subject does not exist"}
		}
		return nil, err
	}
	session := &models.StudySession{
		SubjectID: subjectID,
		Date:      date,
		Duration:  duration,
		Comments:  comments,
	}
	if err := l.store.CreateSession(session); err != nil {
		return nil, err
	}
	l.aggregates.Increment(subjectID, duration)
	return session, nil
}

// Update edits a session's date, duration or comments. A duration change
// adjusts the original owning subject by newDuration - oldDuration before
// the new value is persisted.
func (l *Ledger) Update(id uint, patch models.StudySessionPatch) (*models.StudySession, error) {
	original, err := l.store.Session(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, &NotFoundError{Entity: "study session", ID: id}
		}
		return nil, err
	}
	if patch.Duration != nil {
		if *patch.Duration <= 0 {
			return nil, &ValidationError{Reason: "duration must be a positive number of seconds"}
		}
		if *patch.Duration != original.Duration {
			l.aggregates.Adjust(original.SubjectID, *patch.Duration-original.Duration)
		}
	}
	updated, err := l.store.UpdateSession(id, patch)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, &NotFoundError{Entity: "study session", ID: id}
		}
		return nil, err
	}
	return updated, nil
}

// Delete removes a session, first decrementing the owning subject's total by
// the stored duration (clamped at zero). Deleting an unknown id is a no-op:
// the second delete of the same session must observe the same state as the
// first.
func (l *Ledger) Delete(id uint) error {
	session, err := l.store.Session(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Printf("delete of unknown study session #%d ignored", id)
			return nil
		}
		return err
	}
	l.aggregates.Decrement(session.SubjectID, session.Duration)
	if err := l.store.DeleteSession(id); err != nil && !errors.Is(err, store.ErrNotFound) {
		return err
	}
	return nil
}

// List returns sessions matching the filter. It never mutates.
func (l *Ledger) List(filter Filter) ([]models.StudySession, error) {
	var sessions []models.StudySession
	var err error
	switch {
	case filter.SubjectID != nil:
		sessions, err = l.store.SessionsBySubject(*filter.SubjectID)
	case filter.From != nil && filter.To != nil:
		return l.store.SessionsInRange(*filter.From, *filter.To)
	default:
		sessions, err = l.store.Sessions()
	}
	if err != nil {
		return nil, err
	}
	if filter.From == nil && filter.To == nil {
		return sessions, nil
	}
	filtered := sessions[:0]
	for _, s := range sessions {
		if filter.From != nil && s.Date.Before(*filter.From) {
			continue
		}
		if filter.To != nil && s.Date.After(*filter.To) {
			continue
		}
		filtered = append(filtered, s)
	}
	return filtered, nil
}
