package cmd

import (
	"github.com/spf13/cobra"

	"github.com/msto63/palc/internal/tui/watchview"
)

var watchCmd = &cobra.Command{
	Use:   "watch <file>",
	Short: "Re-check a PAL source on every save",
	Long: `Start an interactive view that checks the file and checks it again
each time it is written.

Keys:
  r           Check again now
  g / G       Scroll to top / bottom
  PgUp/PgDn   Scroll
  q / Ctrl+C  Quit`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	return watchview.Run(watchview.Config{
		Path:     args[0],
		Debounce: cfg.Watch.Debounce.Duration,
		Engine:   newEngine(),
		Logger:   logger,
	})
}
