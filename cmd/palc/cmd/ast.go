package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	palerror "github.com/msto63/palc/foundation/core/error"
	"github.com/msto63/palc/foundation/pal/ast"
	"github.com/msto63/palc/internal/report"
)

var astFormat string

var astCmd = &cobra.Command{
	Use:   "ast <file>",
	Short: "Print the syntax tree of a PAL source",
	Long: `Print the syntax tree built while checking a PAL source.

Formats:
  yaml   nested node dump (default)
  json   the same dump as indented JSON
  text   the program re-printed in canonical layout

Diagnostics are written to standard error; the tree is printed even when
the source has errors.`,
	Args: cobra.ExactArgs(1),
	RunE: runAST,
}

func init() {
	rootCmd.AddCommand(astCmd)

	astCmd.Flags().StringVarP(&astFormat, "format", "f", "yaml", "output format: yaml, json or text")
}

func runAST(cmd *cobra.Command, args []string) error {
	switch astFormat {
	case "yaml", "json", "text":
	default:
		return palerror.Newf("unknown format %q", astFormat).
			WithCode(palerror.CodeInvalidInput).
			WithOperation("ast").
			WithDetail("format", astFormat)
	}

	src, err := readSource(cmd, args[0])
	if err != nil {
		return err
	}
	name := args[0]
	if name == "-" {
		name = "<stdin>"
	}
	result, err := newEngine().Check(name, src)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	switch astFormat {
	case "text":
		fmt.Fprint(out, result.Program.String())
	case "json":
		data, err := json.MarshalIndent(ast.Dump(result.Program), "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(out, string(data))
	default:
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(ast.Dump(result.Program)); err != nil {
			return err
		}
		if err := enc.Close(); err != nil {
			return err
		}
	}

	if result.OK() {
		return nil
	}
	rep := report.New(cmd.ErrOrStderr(), report.Options{ShowSummary: cfg.Check.ShowSummary})
	rep.Result(result)
	return ErrCheckFailed
}
