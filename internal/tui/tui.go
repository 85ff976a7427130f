package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ayushraj/studydeck/internal/timing"
)

// RunStopwatch runs the stopwatch TUI and prints the outcome after it exits.
func RunStopwatch(sw *timing.Stopwatch, subjectName string) error {
	model := NewStopwatchModel(sw, subjectName)

	p := tea.NewProgram(model, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	if m, ok := finalModel.(TimerModel); ok {
		reportOutcome(m)
	}
	return nil
}

// RunCountdown runs the countdown TUI and prints the outcome after it exits.
func RunCountdown(cd *timing.Countdown, subjectName string) error {
	model := NewCountdownModel(cd, subjectName)

	p := tea.NewProgram(model, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	if m, ok := finalModel.(TimerModel); ok {
		reportOutcome(m)
	}
	return nil
}

func reportOutcome(m TimerModel) {
	switch {
	case m.err != nil:
		fmt.Printf("❌ Error: %v\n", m.err)
	case m.saved != nil:
		fmt.Printf("✅ Recorded %s for subject #%d (session #%d)\n",
			formatSeconds(m.saved.Duration), m.saved.SubjectID, m.saved.ID)
	case m.mode == modeCountdown && m.countdown.Completed():
		fmt.Printf("⏲️  Countdown finished, no subject attached — time not recorded\n")
	case m.discarded > 0:
		fmt.Printf("💨 Discarded %s of untracked time\n", formatSeconds(m.discarded))
	}
}

func formatSeconds(seconds int) string {
	d := time.Duration(seconds) * time.Second
	if d.Hours() >= 1 {
		return fmt.Sprintf("%.1fh", d.Hours())
	} else if d.Minutes() >= 1 {
		return fmt.Sprintf("%.0fm", d.Minutes())
	}
	return fmt.Sprintf("%.0fs", d.Seconds())
}
