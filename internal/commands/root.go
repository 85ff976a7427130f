package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ayushraj/studydeck/internal/config"
	"github.com/ayushraj/studydeck/internal/store"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "studydeck",
	Short: "A study tracker with timers and an HTTP API",
	Long: `studydeck tracks study time per subject. Run timed sessions with the
stopwatch or countdown, record and edit sessions directly, and serve the
JSON API the web client talks to.`,
}

// openStore loads the environment and picks the backing store for this
// invocation.
func openStore() (store.Store, config.Config) {
	config.LoadEnv()
	cfg := config.FromEnv()
	return store.Open(cfg.DatabaseURL, cfg.SQLitePath), cfg
}

// SetVersion sets the version information
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("studydeck %s (commit %s, built %s)\n", version, commit, date)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(stopwatchCmd)
	rootCmd.AddCommand(timerCmd)
	rootCmd.AddCommand(subjectsCmd)
	rootCmd.AddCommand(logCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(versionCmd)
}
