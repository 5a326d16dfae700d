// ============================================================================
// palc - PAL compiler front end
// ============================================================================
//
// Package:     report
// Description: Human-readable rendering of check results
// Author:      msto63
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package report

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/msto63/palc/foundation/pal"
	"github.com/msto63/palc/foundation/pal/diag"
)

// Options controls the output
type Options struct {
	Color       bool
	ShowSummary bool
	Verbose     bool
}

// Reporter writes diagnostics and source failures for one or more check
// runs and keeps the totals used for the exit status
type Reporter struct {
	w      io.Writer
	opts   Options
	styles styles

	errors   int
	failures int
}

// New creates a reporter writing to w
func New(w io.Writer, opts Options) *Reporter {
	r := &Reporter{w: w, opts: opts}
	if opts.Color {
		r.styles = newStyles(w)
	}
	return r
}

// Result prints every diagnostic of res in order followed by the error
// summary
func (r *Reporter) Result(res *pal.Result) {
	for _, d := range res.Diagnostics {
		r.Diagnostic(res.Source, d)
	}
	r.errors += len(res.Diagnostics)

	if r.opts.ShowSummary {
		r.Summary(len(res.Diagnostics))
	}
	if res.OK() && r.opts.Verbose {
		r.line(r.paint(r.styles.ok, fmt.Sprintf("%s: ok (%d tokens, %d symbols, %s)",
			res.Source, res.Tokens, len(res.Symbols), res.Duration)))
	}
}

// Diagnostic prints a single diagnostic
func (r *Reporter) Diagnostic(source string, d diag.Diagnostic) {
	if !r.opts.Color {
		r.line(Format(source, d))
		return
	}

	prefix := r.styles.source.Render(source) + r.styles.pos.Render(":"+d.Pos().String()+":")
	r.line(prefix + " " + r.styles.kinds[d.Kind].Render(d.Message()))
}

// Summary prints "N errors found." when n is not zero
func (r *Reporter) Summary(n int) {
	if n == 0 {
		return
	}
	r.line(r.paint(r.styles.summary, Summary(n)))
}

// Failure prints a source access failure
func (r *Reporter) Failure(err error) {
	r.failures++
	r.line(r.paint(r.styles.failure, "error: "+err.Error()))
}

// Errors returns the number of diagnostics reported so far
func (r *Reporter) Errors() int {
	return r.errors
}

// Failures returns the number of failures reported so far
func (r *Reporter) Failures() int {
	return r.failures
}

// OK reports whether nothing went wrong
func (r *Reporter) OK() bool {
	return r.errors == 0 && r.failures == 0
}

func (r *Reporter) paint(style lipgloss.Style, s string) string {
	if !r.opts.Color {
		return s
	}
	return style.Render(s)
}

func (r *Reporter) line(s string) {
	fmt.Fprintln(r.w, s)
}

// Format renders a diagnostic as "source:line:col: message"
func Format(source string, d diag.Diagnostic) string {
	if source == "" {
		return d.String()
	}
	return source + ":" + d.String()
}

// Summary returns the error count line
func Summary(n int) string {
	if n == 1 {
		return "1 error found."
	}
	return fmt.Sprintf("%d errors found.", n)
}
