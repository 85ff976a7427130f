package commands

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/ayushraj/studydeck/internal/ledger"
	"github.com/ayushraj/studydeck/internal/store"
	"github.com/ayushraj/studydeck/internal/timing"
	"github.com/ayushraj/studydeck/internal/tui"
)

var stopwatchCmd = &cobra.Command{
	Use:   "stopwatch",
	Short: "Run an interactive stopwatch",
	Long: `Run a stopwatch that counts up one second at a time. Resetting with
accumulated time records a study session for the attached subject; without
a subject the time is discarded.

Examples:
  studydeck stopwatch --subject 2   # time counts toward subject #2
  studydeck stopwatch               # untracked, nothing is recorded`,
	Run: func(cmd *cobra.Command, args []string) {
		st, _ := openStore()
		led := ledger.New(st)

		subjectID, subjectName, err := subjectFlag(cmd, st)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		sw := timing.NewStopwatch(led, subjectID)
		if err := tui.RunStopwatch(sw, subjectName); err != nil {
			fmt.Printf("Error: %v\n", err)
		}
	},
}

var timerCmd = &cobra.Command{
	Use:   "timer [minutes]",
	Short: "Run an interactive countdown timer",
	Long: `Run a countdown for the given number of minutes. Reaching zero records
the full configured duration for the attached subject; resetting part-way
through discards the elapsed time.

Examples:
  studydeck timer 25 --subject 2   # a 25 minute session for subject #2
  studydeck timer 45               # untracked countdown`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		minutes, err := strconv.Atoi(args[0])
		if err != nil || minutes <= 0 {
			fmt.Printf("Error: invalid duration '%s', expected minutes\n", args[0])
			return
		}

		st, _ := openStore()
		led := ledger.New(st)

		subjectID, subjectName, err := subjectFlag(cmd, st)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		cd, err := timing.NewCountdown(led, subjectID, minutes*60)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		if err := tui.RunCountdown(cd, subjectName); err != nil {
			fmt.Printf("Error: %v\n", err)
		}
	},
}

func init() {
	stopwatchCmd.Flags().Uint("subject", 0, "Subject to credit the time to")
	timerCmd.Flags().Uint("subject", 0, "Subject to credit the time to")
}

// subjectFlag resolves the optional --subject flag into an id and display
// name. A zero flag means no subject is attached.
func subjectFlag(cmd *cobra.Command, st store.Store) (*uint, string, error) {
	raw, _ := cmd.Flags().GetUint("subject")
	if raw == 0 {
		return nil, "", nil
	}
	subject, err := st.Subject(raw)
	if err != nil {
		return nil, "", fmt.Errorf("subject #%d not found", raw)
	}
	id := raw
	return &id, subject.Name, nil
}

// formatDuration formats a duration in a human-readable way
func formatDuration(d time.Duration) string {
	if d.Hours() >= 1 {
		return fmt.Sprintf("%.1fh", d.Hours())
	} else if d.Minutes() >= 1 {
		return fmt.Sprintf("%.0fm", d.Minutes())
	} else {
		return fmt.Sprintf("%.0fs", d.Seconds())
	}
}
