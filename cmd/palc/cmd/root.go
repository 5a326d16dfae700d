package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/msto63/palc/foundation/core/config"
	pallog "github.com/msto63/palc/foundation/core/log"
	"github.com/msto63/palc/foundation/pal"
	"github.com/msto63/palc/pkg/core/version"
)

// ErrCheckFailed is returned when a source had diagnostics or could not be
// checked. Details have already been printed.
var ErrCheckFailed = errors.New("check failed")

var (
	cfgFile   string
	verbose   bool
	logFormat string
	colorMode string

	cfg    *config.Config
	logger *pallog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "palc",
	Short: "palc - PAL compiler front end",
	Long: `palc checks programs written in PAL, a small teaching language with
INTEGER and REAL variables, assignments, loops, conditionals and simple
input/output.

A single pass reports syntax errors, undeclared and redeclared
identifiers, and type conflicts. Parsing continues after every error.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

// Execute runs the command tree
func Execute() error {
	err := rootCmd.Execute()
	if err != nil && !errors.Is(err, ErrCheckFailed) {
		printError(rootCmd.ErrOrStderr(), err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: palc.toml in . or ~/.config/palc)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output and debug logging")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "log format: text, json or console")
	rootCmd.PersistentFlags().StringVar(&colorMode, "color", "", "colored output: auto, always or never")
}

// setup loads the configuration, applies flag overrides and installs the
// logger
func setup(cmd *cobra.Command, args []string) error {
	loaded, err := config.Resolve(cfgFile)
	if err != nil {
		return err
	}

	if verbose {
		loaded.Log.Level = "debug"
	}
	if logFormat != "" {
		loaded.Log.Format = logFormat
	}
	if colorMode != "" {
		loaded.Check.Color = colorMode
	}
	if err := loaded.Validate(); err != nil {
		return err
	}
	if err := version.Satisfies(loaded.RequiredVersion); err != nil {
		return err
	}

	level, _ := pallog.ParseLevel(loaded.Log.Level)
	format, _ := pallog.ParseFormat(loaded.Log.Format)
	logger = pallog.NewWithConfig(pallog.Config{
		Level:  level,
		Format: format,
		Output: cmd.ErrOrStderr(),
		Name:   "palc",
	})
	pallog.SetDefault(logger)
	cfg = loaded

	logger.Debug("Configuration loaded", pallog.Fields{
		"config": loaded.Path(),
		"level":  loaded.Log.Level,
		"color":  loaded.Check.Color,
	})
	return nil
}

func newEngine() *pal.Engine {
	return pal.New(pal.Options{
		Logger:         logger,
		MaxSourceBytes: cfg.Check.MaxSourceBytes,
	})
}

func printError(w io.Writer, err error) {
	fmt.Fprintf(w, "Error: %v\n", err)
}
