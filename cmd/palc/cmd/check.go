package cmd

import (
	"github.com/spf13/cobra"

	"github.com/msto63/palc/foundation/pal"
	"github.com/msto63/palc/internal/report"
)

var checkCmd = &cobra.Command{
	Use:   "check <file>...",
	Short: "Check PAL sources for errors",
	Long: `Check parses each file once and prints every diagnostic in source
order as file:line:column: message, followed by the number of errors
found. Use "-" to read from standard input.

The exit status is non-zero when any file has errors or cannot be read.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	engine := newEngine()
	rep := report.New(out, report.Options{
		Color:       report.ColorEnabled(cfg.Check.Color, out),
		ShowSummary: cfg.Check.ShowSummary,
		Verbose:     verbose,
	})

	for _, path := range args {
		var (
			result *pal.Result
			err    error
		)
		if path == "-" {
			result, err = engine.CheckReader("<stdin>", cmd.InOrStdin())
		} else {
			result, err = engine.CheckFile(path)
		}

		if result != nil {
			rep.Result(result)
		}
		if err != nil {
			rep.Failure(err)
		}
	}

	if !rep.OK() {
		return ErrCheckFailed
	}
	return nil
}
