// Package timing holds the two timing sources, the stopwatch and the
// countdown. Both advance in whole-second ticks driven by the caller (the
// TUI's one-second tick loop in practice) and hand completed durations to a
// Recorder. They never touch storage themselves.
package timing

import "github.com/ayushraj/studydeck/internal/models"

// Recorder receives a completed duration for a subject. Implemented by the
// session ledger.
type Recorder interface {
	Record(subjectID uint, durationSeconds int, comments *string) (*models.StudySession, error)
}
