package timing

import "github.com/ayushraj/studydeck/internal/models"

// Stopwatch counts up from zero, one second per tick. Pausing freezes the
// counter without recording anything; only a reset with accumulated time and
// an attached subject produces a session. Resetting with no subject discards
// the elapsed time silently.
type Stopwatch struct {
	recorder  Recorder
	subjectID *uint
	running   bool
	elapsed   int
}

func NewStopwatch(recorder Recorder, subjectID *uint) *Stopwatch {
	return &Stopwatch{recorder: recorder, subjectID: subjectID}
}

func (s *Stopwatch) Start() {
	s.running = true
}

func (s *Stopwatch) Pause() {
	s.running = false
}

// Toggle flips between running and paused and reports the new state.
func (s *Stopwatch) Toggle() bool {
	s.running = !s.running
	return s.running
}

func (s *Stopwatch) Running() bool {
	return s.running
}

// Elapsed reports the accumulated time in seconds.
func (s *Stopwatch) Elapsed() int {
	return s.elapsed
}

// SetSubject attaches or detaches (nil) the subject that future resets
// record against.
func (s *Stopwatch) SetSubject(subjectID *uint) {
	s.subjectID = subjectID
}

// Tick advances the counter by one second while running.
func (s *Stopwatch) Tick() {
	if s.running {
		s.elapsed++
	}
}

// Reset stops the stopwatch and zeroes the counter. If time had accumulated
// and a subject is attached, the elapsed total is recorded first; the
// returned session is nil when the time was discarded.
func (s *Stopwatch) Reset(comments *string) (*models.StudySession, error) {
	s.running = false
	elapsed := s.elapsed
	s.elapsed = 0
	if elapsed > 0 && s.subjectID != nil {
		return s.recorder.Record(*s.subjectID, elapsed, comments)
	}
	return nil, nil
}
