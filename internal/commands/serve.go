package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ayushraj/studydeck/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API server",
	Long: `Serve the JSON API on PORT (default 3000). With DATABASE_URL set the
server uses postgres; otherwise it keeps a local sqlite file and falls back
to in-memory storage if that cannot be opened.`,
	Run: func(cmd *cobra.Command, args []string) {
		st, cfg := openStore()
		srv := server.New(st)
		if err := srv.Listen(":" + cfg.Port); err != nil {
			fmt.Printf("Error: %v\n", err)
		}
	},
}
