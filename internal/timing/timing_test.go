package timing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayushraj/studydeck/internal/models"
)

type recordedCall struct {
	subjectID uint
	duration  int
	comments  *string
}

type recorderStub struct {
	calls []recordedCall
}

func (r *recorderStub) Record(subjectID uint, durationSeconds int, comments *string) (*models.StudySession, error) {
	r.calls = append(r.calls, recordedCall{subjectID, durationSeconds, comments})
	return &models.StudySession{
		ID:        uint(len(r.calls)),
		SubjectID: subjectID,
		Duration:  durationSeconds,
		Comments:  comments,
	}, nil
}

func uintPtr(n uint) *uint { return &n }

func TestStopwatchTicksOnlyWhileRunning(t *testing.T) {
	sw := NewStopwatch(&recorderStub{}, nil)

	sw.Tick()
	assert.Equal(t, 0, sw.Elapsed(), "not started yet")

	sw.Start()
	sw.Tick()
	sw.Tick()
	sw.Tick()
	assert.Equal(t, 3, sw.Elapsed())

	sw.Pause()
	sw.Tick()
	assert.Equal(t, 3, sw.Elapsed(), "paused counter must freeze")
}

func TestStopwatchResetRecordsElapsedTime(t *testing.T) {
	rec := &recorderStub{}
	sw := NewStopwatch(rec, uintPtr(7))

	sw.Start()
	for i := 0; i < 47; i++ {
		sw.Tick()
	}

	session, err := sw.Reset(nil)
	require.NoError(t, err)
	require.NotNil(t, session)
	assert.Equal(t, uint(7), session.SubjectID)
	assert.Equal(t, 47, session.Duration)
	assert.Equal(t, 0, sw.Elapsed())
	assert.False(t, sw.Running())
}

func TestStopwatchResetWithoutSubjectDiscards(t *testing.T) {
	rec := &recorderStub{}
	sw := NewStopwatch(rec, nil)

	sw.Start()
	for i := 0; i < 47; i++ {
		sw.Tick()
	}

	session, err := sw.Reset(nil)
	require.NoError(t, err)
	assert.Nil(t, session)
	assert.Empty(t, rec.calls)
	assert.Equal(t, 0, sw.Elapsed())
}

func TestStopwatchResetAtZeroRecordsNothing(t *testing.T) {
	rec := &recorderStub{}
	sw := NewStopwatch(rec, uintPtr(7))

	session, err := sw.Reset(nil)
	require.NoError(t, err)
	assert.Nil(t, session)
	assert.Empty(t, rec.calls)
}

func TestCountdownRejectsNonPositiveDuration(t *testing.T) {
	_, err := NewCountdown(&recorderStub{}, nil, 0)
	assert.Error(t, err)

	_, err = NewCountdown(&recorderStub{}, nil, -60)
	assert.Error(t, err)
}

func TestCountdownEmitsConfiguredDurationOnCompletion(t *testing.T) {
	rec := &recorderStub{}
	cd, err := NewCountdown(rec, uintPtr(7), 3)
	require.NoError(t, err)

	require.NoError(t, cd.Start())
	var session *models.StudySession
	for i := 0; i < 3; i++ {
		session, err = cd.Tick()
		require.NoError(t, err)
	}

	assert.True(t, cd.Completed())
	assert.False(t, cd.Running())
	assert.Equal(t, 0, cd.Remaining())
	require.NotNil(t, session)
	assert.Equal(t, 3, session.Duration, "completion carries the configured duration")

	// Ticking past zero is inert
	session, err = cd.Tick()
	require.NoError(t, err)
	assert.Nil(t, session)
	require.Len(t, rec.calls, 1)
}

func TestCountdownCompletionWithoutSubjectDiscards(t *testing.T) {
	rec := &recorderStub{}
	cd, err := NewCountdown(rec, nil, 2)
	require.NoError(t, err)

	require.NoError(t, cd.Start())
	for i := 0; i < 2; i++ {
		_, err = cd.Tick()
		require.NoError(t, err)
	}

	assert.True(t, cd.Completed())
	assert.Empty(t, rec.calls)
}

func TestCountdownCannotRestartUntilReset(t *testing.T) {
	rec := &recorderStub{}
	cd, err := NewCountdown(rec, uintPtr(7), 1)
	require.NoError(t, err)

	require.NoError(t, cd.Start())
	_, err = cd.Tick()
	require.NoError(t, err)
	require.True(t, cd.Completed())

	assert.ErrorIs(t, cd.Start(), ErrCompleted)

	cd.Reset()
	assert.False(t, cd.Completed())
	assert.Equal(t, 1, cd.Remaining())
	assert.NoError(t, cd.Start())
}

func TestCountdownResetDiscardsPartialTime(t *testing.T) {
	rec := &recorderStub{}
	cd, err := NewCountdown(rec, uintPtr(7), 10)
	require.NoError(t, err)

	require.NoError(t, cd.Start())
	_, err = cd.Tick()
	require.NoError(t, err)
	assert.Equal(t, 1, cd.Elapsed())

	cd.Reset()
	assert.Equal(t, 10, cd.Remaining())
	assert.Empty(t, rec.calls)
}

func TestCountdownPauseFreezesClock(t *testing.T) {
	rec := &recorderStub{}
	cd, err := NewCountdown(rec, nil, 5)
	require.NoError(t, err)

	require.NoError(t, cd.Start())
	_, err = cd.Tick()
	require.NoError(t, err)
	cd.Pause()
	_, err = cd.Tick()
	require.NoError(t, err)

	assert.Equal(t, 4, cd.Remaining())
}
