package ledger

import (
	"errors"
	"log"
	"sync"

	"github.com/ayushraj/studydeck/internal/models"
	"github.com/ayushraj/studydeck/internal/store"
)

// Aggregates keeps each subject's TotalStudyTime consistent with the
// session log. When the store cannot persist an adjustment the delta is
// parked in a local overlay so user-visible totals still reflect reality;
// the divergence from durable state is not reconciled automatically.
type Aggregates struct {
	store store.Store

	mu      sync.Mutex
	overlay map[uint]int
}

func newAggregates(st store.Store) *Aggregates {
	return &Aggregates{store: st, overlay: make(map[uint]int)}
}

// Increment adds amount to the subject's total.
func (a *Aggregates) Increment(subjectID uint, amount int) {
	a.apply(subjectID, amount)
}

// Adjust applies a signed delta to the subject's total.
func (a *Aggregates) Adjust(subjectID uint, delta int) {
	a.apply(subjectID, delta)
}

// Decrement subtracts amount from the subject's total, clamped at zero.
// Overshooting is not an error: it only arises from a stale delete, and a
// slightly-off historical total beats blocking the user.
func (a *Aggregates) Decrement(subjectID uint, amount int) {
	err := a.store.SubtractStudyTime(subjectID, amount)
	switch {
	case err == nil:
	case errors.Is(err, store.ErrNotFound):
		log.Printf("aggregate decrement for unknown subject #%d ignored", subjectID)
	default:
		a.park(subjectID, -amount)
	}
}

func (a *Aggregates) apply(subjectID uint, delta int) {
	err := a.store.AddStudyTime(subjectID, delta)
	switch {
	case err == nil:
	case errors.Is(err, store.ErrNotFound):
		log.Printf("aggregate adjustment for unknown subject #%d ignored", subjectID)
	default:
		a.park(subjectID, delta)
	}
}

func (a *Aggregates) park(subjectID uint, delta int) {
	a.mu.Lock()
	a.overlay[subjectID] += delta
	a.mu.Unlock()
	log.Printf("WARNING: could not persist study-time adjustment for subject #%d, kept locally", subjectID)
}

// Overlay folds any locally parked deltas into the given subjects so reads
// stay truthful while the durable store lags behind.
func (a *Aggregates) Overlay(subjects []models.Subject) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if len(a.overlay) == 0 {
		return
	}
	for i := range subjects {
		if delta, ok := a.overlay[subjects[i].ID]; ok {
			subjects[i].TotalStudyTime += delta
			if subjects[i].TotalStudyTime < 0 {
				subjects[i].TotalStudyTime = 0
			}
		}
	}
}

// Pending reports whether any adjustments are waiting in the local overlay.
func (a *Aggregates) Pending() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.overlay) > 0
}
