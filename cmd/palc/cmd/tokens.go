package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	pallog "github.com/msto63/palc/foundation/core/log"
	"github.com/msto63/palc/foundation/pal/lexer"
	"github.com/msto63/palc/foundation/pal/token"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens <file>",
	Short: "Print the token stream of a PAL source",
	Args:  cobra.ExactArgs(1),
	RunE:  runTokens,
}

func init() {
	rootCmd.AddCommand(tokensCmd)
}

func runTokens(cmd *cobra.Command, args []string) error {
	src, err := readSource(cmd, args[0])
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "POS\tKIND\tVALUE")
	illegal := 0
	for _, tok := range lexer.Tokenize(string(src)) {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", tok.Pos, tok.Kind, tok.Value)
		if tok.Kind == token.Illegal {
			illegal++
		}
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if illegal > 0 {
		logger.Warn("Source contains illegal characters", pallog.Fields{"count": illegal})
	}
	return nil
}

// readSource reads a whole source file, or standard input for "-"
func readSource(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "-" {
		return newEngine().Read("<stdin>", cmd.InOrStdin())
	}
	return newEngine().ReadFile(path)
}
