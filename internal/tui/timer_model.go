package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ayushraj/studydeck/internal/models"
	"github.com/ayushraj/studydeck/internal/timing"
)

type timerMode int

const (
	modeStopwatch timerMode = iota
	modeCountdown
)

// TimerModel drives either timing source from a one-second tick loop. A
// pending save never blocks the loop: sessions are recorded when the source
// completes or resets, between ticks.
type TimerModel struct {
	width  int
	height int

	mode        timerMode
	stopwatch   *timing.Stopwatch
	countdown   *timing.Countdown
	subjectName string

	// Comment prompt shown before a stopwatch save
	commentInput textinput.Model
	commenting   bool

	saved     *models.StudySession
	discarded int // seconds thrown away by a reset with no subject
	err       error
	quitting  bool
}

// tickMsg is sent every second to advance the timing source
type tickMsg struct{}

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg{}
	})
}

func newTimerModel(mode timerMode, subjectName string) TimerModel {
	input := textinput.New()
	input.Placeholder = "what did you work on? (optional)"
	input.CharLimit = 120
	input.Width = 40
	return TimerModel{
		mode:         mode,
		subjectName:  subjectName,
		commentInput: input,
	}
}

// NewStopwatchModel creates the TUI model for a stopwatch session
func NewStopwatchModel(sw *timing.Stopwatch, subjectName string) TimerModel {
	m := newTimerModel(modeStopwatch, subjectName)
	m.stopwatch = sw
	sw.Start()
	return m
}

// NewCountdownModel creates the TUI model for a countdown session
func NewCountdownModel(cd *timing.Countdown, subjectName string) TimerModel {
	m := newTimerModel(modeCountdown, subjectName)
	m.countdown = cd
	cd.Start()
	return m
}

// Init starts the tick loop
func (m TimerModel) Init() tea.Cmd {
	return tick()
}

// Update handles messages
func (m TimerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		if m.quitting {
			return m, nil
		}
		if m.commenting {
			// Clock is frozen while the comment prompt is open
			return m, tick()
		}
		if m.mode == modeStopwatch {
			m.stopwatch.Tick()
			return m, tick()
		}
		session, err := m.countdown.Tick()
		if m.countdown.Completed() {
			m.saved = session
			m.err = err
			m.quitting = true
			return m, tea.Quit
		}
		return m, tick()

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if m.commenting {
			return m.updateCommentPrompt(msg)
		}
		switch msg.String() {
		case " ":
			if m.mode == modeStopwatch {
				m.stopwatch.Toggle()
			} else if m.countdown.Running() {
				m.countdown.Pause()
			} else if err := m.countdown.Start(); err != nil {
				m.err = err
			}
			return m, nil
		case "r", "R":
			return m.reset()
		case "ctrl+c", "esc", "q":
			m.quitting = true
			if m.mode == modeStopwatch {
				m.discarded = m.stopwatch.Elapsed()
			}
			return m, tea.Quit
		}
	}

	return m, nil
}

func (m TimerModel) updateCommentPrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		var comments *string
		if text := strings.TrimSpace(m.commentInput.Value()); text != "" {
			comments = &text
		}
		m.saved, m.err = m.stopwatch.Reset(comments)
		m.commenting = false
		m.quitting = true
		return m, tea.Quit
	case "esc":
		// Back out of the save; the stopwatch stays paused with its time
		m.commenting = false
		return m, nil
	}
	var cmd tea.Cmd
	m.commentInput, cmd = m.commentInput.Update(msg)
	return m, cmd
}

func (m TimerModel) reset() (tea.Model, tea.Cmd) {
	if m.mode == modeCountdown {
		m.countdown.Reset()
		return m, nil
	}
	if m.stopwatch.Elapsed() > 0 && m.subjectName != "" {
		m.stopwatch.Pause()
		m.commenting = true
		m.commentInput.Focus()
		return m, textinput.Blink
	}
	m.discarded = m.stopwatch.Elapsed()
	m.saved, m.err = m.stopwatch.Reset(nil)
	return m, nil
}

// View renders the timer TUI
func (m TimerModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	helpBar := m.renderHelpBar()
	contentHeight := m.height - 2

	var components []string

	headerText := "⏱  STOPWATCH"
	if m.mode == modeCountdown {
		headerText = "⏳  TIMER"
	}
	headerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccentBright)).
		Bold(true).
		Align(lipgloss.Center).
		Width(m.width)
	components = append(components, headerStyle.Render(headerText))

	subjectText := "no subject — time will not be recorded"
	subjectColor := ColorWarning
	if m.subjectName != "" {
		subjectText = m.subjectName
		subjectColor = ColorPrimaryText
	}
	subjectStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(subjectColor)).
		Bold(m.subjectName != "").
		Align(lipgloss.Center).
		Width(m.width)
	components = append(components, subjectStyle.Render(subjectText))

	seconds := 0
	if m.mode == modeStopwatch {
		seconds = m.stopwatch.Elapsed()
	} else {
		seconds = m.countdown.Remaining()
	}
	clock := renderBigClock(seconds)
	var clockContent strings.Builder
	for _, line := range strings.Split(clock, "\n") {
		clockContent.WriteString(lipgloss.NewStyle().Align(lipgloss.Center).Width(m.width).Render(line))
		clockContent.WriteString("\n")
	}
	components = append(components, strings.TrimRight(clockContent.String(), "\n"))

	components = append(components, m.renderStatusLine())

	if m.commenting {
		promptStyle := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(ColorAccentMain)).
			Padding(0, 1)
		prompt := promptStyle.Render("Save session\n" + m.commentInput.View())
		components = append(components, lipgloss.NewStyle().Align(lipgloss.Center).Width(m.width).Render(prompt))
	}

	content := strings.Join(components, "\n\n")
	panel := lipgloss.NewStyle().
		Width(m.width).
		Height(contentHeight).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)

	return lipgloss.JoinVertical(lipgloss.Left, panel, helpBar)
}

func (m TimerModel) renderStatusLine() string {
	status := "paused"
	color := ColorWarning
	running := false
	if m.mode == modeStopwatch {
		running = m.stopwatch.Running()
	} else {
		running = m.countdown.Running()
	}
	if running {
		status = "running"
		color = ColorSuccess
	}
	if m.commenting {
		status = "saving"
		color = ColorAccentBright
	}
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(color)).
		Italic(true).
		Align(lipgloss.Center).
		Width(m.width).
		Render(status)
}

// renderBigClock renders the ASCII art clock
func renderBigClock(totalSeconds int) string {
	hours := totalSeconds / 3600
	minutes := (totalSeconds % 3600) / 60
	seconds := totalSeconds % 60

	// ASCII art for digits (5x5 characters each)
	digits := map[rune][]string{
		'0': {" ███ ", "█   █", "█   █", "█   █", " ███ "},
		'1': {"  █  ", " ██  ", "  █  ", "  █  ", "█████"},
		'2': {" ███ ", "█   █", "   █ ", "  █  ", "█████"},
		'3': {" ███ ", "█   █", "  ██ ", "█   █", " ███ "},
		'4': {"█   █", "█   █", "█████", "    █", "    █"},
		'5': {"█████", "█    ", "████ ", "    █", "████ "},
		'6': {" ███ ", "█    ", "████ ", "█   █", " ███ "},
		'7': {"█████", "    █", "   █ ", "  █  ", " █   "},
		'8': {" ███ ", "█   █", " ███ ", "█   █", " ███ "},
		'9': {" ███ ", "█   █", " ████", "    █", " ███ "},
		':': {"     ", "  █  ", "     ", "  █  ", "     "},
	}

	timeStr := fmt.Sprintf("%02d:%02d", minutes, seconds)
	if hours > 0 {
		timeStr = fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
	}

	var lines [5]strings.Builder
	for _, char := range timeStr {
		if art, ok := digits[char]; ok {
			for i := 0; i < 5; i++ {
				lines[i].WriteString(art[i])
				lines[i].WriteString(" ")
			}
		}
	}

	clockStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccentBright)).
		Bold(true)

	var result strings.Builder
	for i := 0; i < 5; i++ {
		result.WriteString(clockStyle.Render(lines[i].String()))
		if i < 4 {
			result.WriteString("\n")
		}
	}
	return result.String()
}

// renderHelpBar renders the help bar at the bottom
func (m TimerModel) renderHelpBar() string {
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHelpText)).
		Italic(true).
		Align(lipgloss.Center).
		Width(m.width)

	helpText := "space start/pause · r reset & save · esc/q quit (discard)"
	if m.mode == modeCountdown {
		helpText = "space start/pause · r reset (discard) · esc/q quit"
	}
	if m.commenting {
		helpText = "enter save · esc back"
	}

	return helpStyle.Render(helpText)
}
