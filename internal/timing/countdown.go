package timing

import (
	"errors"

	"github.com/ayushraj/studydeck/internal/models"
)

// ErrCompleted is returned when starting a countdown that already ran to
// zero; it has to be reset first.
var ErrCompleted = errors.New("countdown already completed, reset it first")

// Countdown counts a configured duration down to zero, one second per tick.
// Reaching zero stops it, latches the completed state and records the full
// configured duration (not the remaining zero) against the attached subject.
// With no subject attached the completion is discarded. Resetting part-way
// through always discards the partial time.
type Countdown struct {
	recorder   Recorder
	subjectID  *uint
	configured int
	remaining  int
	running    bool
	completed  bool
}

// NewCountdown configures a countdown of the given positive number of
// seconds.
func NewCountdown(recorder Recorder, subjectID *uint, seconds int) (*Countdown, error) {
	if seconds <= 0 {
		return nil, errors.New("countdown duration must be positive")
	}
	return &Countdown{
		recorder:   recorder,
		subjectID:  subjectID,
		configured: seconds,
		remaining:  seconds,
	}, nil
}

func (c *Countdown) Start() error {
	if c.completed {
		return ErrCompleted
	}
	c.running = true
	return nil
}

func (c *Countdown) Pause() {
	c.running = false
}

func (c *Countdown) Running() bool {
	return c.running
}

func (c *Countdown) Completed() bool {
	return c.completed
}

// Remaining reports the seconds left on the clock.
func (c *Countdown) Remaining() int {
	return c.remaining
}

// Elapsed reports how much of the configured duration has run.
func (c *Countdown) Elapsed() int {
	return c.configured - c.remaining
}

// SetSubject attaches or detaches (nil) the subject credited on completion.
func (c *Countdown) SetSubject(subjectID *uint) {
	c.subjectID = subjectID
}

// Tick advances the countdown by one second while running. On reaching zero
// it emits the configured duration; the returned session is nil when the
// completion was discarded for lack of a subject.
func (c *Countdown) Tick() (*models.StudySession, error) {
	if !c.running || c.remaining == 0 {
		return nil, nil
	}
	c.remaining--
	if c.remaining > 0 {
		return nil, nil
	}
	c.running = false
	c.completed = true
	if c.subjectID == nil {
		return nil, nil
	}
	return c.recorder.Record(*c.subjectID, c.configured, nil)
}

// Reset rewinds the clock to the configured duration and clears the
// completed latch. Partial time is discarded, never recorded.
func (c *Countdown) Reset() {
	c.running = false
	c.completed = false
	c.remaining = c.configured
}
