// ============================================================================
// palc - PAL compiler front end
// ============================================================================
//
// Package:     report
// Description: Styles for terminal diagnostic output
// Author:      msto63
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package report

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"github.com/msto63/palc/foundation/core/config"
	"github.com/msto63/palc/foundation/pal/diag"
)

// Color Palette
var (
	ColorError   = lipgloss.Color("#EF4444") // Red
	ColorWarning = lipgloss.Color("#F59E0B") // Amber
	ColorAccent  = lipgloss.Color("#8B5CF6") // Violet
	ColorSuccess = lipgloss.Color("#10B981") // Emerald
	ColorMuted   = lipgloss.Color("#6B7280") // Gray
)

type styles struct {
	source  lipgloss.Style
	pos     lipgloss.Style
	kinds   map[diag.Kind]lipgloss.Style
	summary lipgloss.Style
	ok      lipgloss.Style
	failure lipgloss.Style
}

func newStyles(w io.Writer) styles {
	re := lipgloss.NewRenderer(w)
	re.SetColorProfile(termenv.ANSI256)

	return styles{
		source: re.NewStyle().Bold(true),
		pos:    re.NewStyle().Foreground(ColorMuted),
		kinds: map[diag.Kind]lipgloss.Style{
			diag.SyntaxMismatch:  re.NewStyle().Foreground(ColorError),
			diag.NotDeclared:     re.NewStyle().Foreground(ColorWarning),
			diag.AlreadyDeclared: re.NewStyle().Foreground(ColorWarning),
			diag.TypeConflict:    re.NewStyle().Foreground(ColorAccent),
		},
		summary: re.NewStyle().Foreground(ColorError).Bold(true),
		ok:      re.NewStyle().Foreground(ColorSuccess),
		failure: re.NewStyle().Foreground(ColorError).Bold(true),
	}
}

// ColorEnabled resolves a color mode (auto, always, never) for w. In auto
// mode color is used only for terminals and only when NO_COLOR is unset.
func ColorEnabled(mode string, w io.Writer) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}

	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
