package commands

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/ayushraj/studydeck/internal/ledger"
	"github.com/ayushraj/studydeck/internal/report"
)

var logCmd = &cobra.Command{
	Use:   "log [subject-id] [duration]",
	Short: "Record a study session directly",
	Long: `Record a finished study session without running a timer. Duration is
given in seconds, or with an m/h suffix.

Examples:
  studydeck log 2 1800              # 30 minutes for subject #2
  studydeck log 2 45m --comment "revision"`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		subjectID, err := strconv.ParseUint(args[0], 10, 32)
		if err != nil {
			fmt.Printf("Error: invalid subject ID '%s'\n", args[0])
			return
		}
		seconds, err := parseSeconds(args[1])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		st, _ := openStore()
		led := ledger.New(st)

		var comments *string
		if comment, _ := cmd.Flags().GetString("comment"); comment != "" {
			comments = &comment
		}

		session, err := led.Record(uint(subjectID), seconds, comments)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("Recorded %s for subject #%d (session #%d)\n",
			formatDuration(time.Duration(session.Duration)*time.Second), session.SubjectID, session.ID)
	},
}

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Show study time totals",
	Long: `Show the all-time study total, or narrow it down.

Examples:
  studydeck report                   # all-time total
  studydeck report --day 2025-04-02  # one calendar day
  studydeck report --subject 2       # session history for a subject`,
	Run: func(cmd *cobra.Command, args []string) {
		st, _ := openStore()
		reporter := report.New(st)

		if day, _ := cmd.Flags().GetString("day"); day != "" {
			parsed, err := time.ParseInLocation("2006-01-02", day, time.Local)
			if err != nil {
				fmt.Printf("Error: invalid day '%s', expected YYYY-MM-DD\n", day)
				return
			}
			total, err := reporter.TotalStudyTimeForDay(parsed)
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				return
			}
			fmt.Printf("Studied on %s: %s\n", day, formatDuration(time.Duration(total)*time.Second))
			return
		}

		if subjectID, _ := cmd.Flags().GetUint("subject"); subjectID > 0 {
			sessions, err := reporter.SessionsForSubject(subjectID)
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				return
			}
			if len(sessions) == 0 {
				fmt.Printf("No sessions recorded for subject #%d\n", subjectID)
				return
			}
			for _, session := range sessions {
				comment := ""
				if session.Comments != nil {
					comment = *session.Comments
				}
				fmt.Printf("#%-4d %s  %-10s %s\n",
					session.ID,
					session.Date.Format("2006-01-02 15:04"),
					formatDuration(time.Duration(session.Duration)*time.Second),
					comment)
			}
			return
		}

		total, err := reporter.TotalStudyTime()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("Total study time: %s\n", formatDuration(time.Duration(total)*time.Second))
	},
}

func init() {
	logCmd.Flags().String("comment", "", "Optional comment for the session")
	reportCmd.Flags().String("day", "", "Total for one calendar day (YYYY-MM-DD)")
	reportCmd.Flags().Uint("subject", 0, "Session history for a subject")
}

// parseSeconds accepts plain seconds or a value with an m/h suffix.
func parseSeconds(raw string) (int, error) {
	multiplier := 1
	digits := raw
	switch {
	case len(raw) > 1 && raw[len(raw)-1] == 'm':
		multiplier = 60
		digits = raw[:len(raw)-1]
	case len(raw) > 1 && raw[len(raw)-1] == 'h':
		multiplier = 3600
		digits = raw[:len(raw)-1]
	}
	n, err := strconv.Atoi(digits)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("invalid duration '%s'", raw)
	}
	return n * multiplier, nil
}
