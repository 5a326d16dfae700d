// File: pal.go
// Title: PAL Engine
// Description: High-level API of the PAL front end. Reads a source,
//              runs one checking parse and returns the ordered diagnostics
//              together with the syntax tree and symbol table. Source
//              access failures are structured errors; diagnostics are not.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial engine implementation

package pal

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"

	palerror "github.com/msto63/palc/foundation/core/error"
	pallog "github.com/msto63/palc/foundation/core/log"
	"github.com/msto63/palc/foundation/pal/ast"
	"github.com/msto63/palc/foundation/pal/diag"
	"github.com/msto63/palc/foundation/pal/lexer"
	"github.com/msto63/palc/foundation/pal/parser"
	"github.com/msto63/palc/foundation/pal/scope"
)

// DefaultMaxSourceBytes limits the size of a single source (1 MiB)
const DefaultMaxSourceBytes = 1 << 20

// Engine checks PAL programs
type Engine struct {
	parser  *parser.Parser
	logger  *pallog.Logger
	options Options
}

// Options configures the PAL engine
type Options struct {
	// Logger for engine operations (optional, defaults to default logger)
	Logger *pallog.Logger

	// MaxSourceBytes limits the source size (default: DefaultMaxSourceBytes)
	MaxSourceBytes int64

	// Open opens a source file (default: os.Open)
	Open func(path string) (io.ReadCloser, error)
}

// Result is the outcome of checking one source
type Result struct {
	// Source names the checked input (usually a file path)
	Source string

	// RunID identifies this check in log output
	RunID string

	Program     *ast.Program
	Diagnostics []diag.Diagnostic
	Symbols     []scope.Symbol
	Tokens      int

	// Duration is the time taken by the parse
	Duration time.Duration
}

// OK reports whether no diagnostics were found
func (r *Result) OK() bool {
	return len(r.Diagnostics) == 0
}

// Count returns the number of diagnostics of kind k
func (r *Result) Count(k diag.Kind) int {
	n := 0
	for _, d := range r.Diagnostics {
		if d.Kind == k {
			n++
		}
	}
	return n
}

// New creates a new PAL engine
func New(opts Options) *Engine {
	if opts.Logger == nil {
		opts.Logger = pallog.GetDefault()
	}
	if opts.MaxSourceBytes <= 0 {
		opts.MaxSourceBytes = DefaultMaxSourceBytes
	}
	if opts.Open == nil {
		opts.Open = func(path string) (io.ReadCloser, error) {
			return os.Open(path)
		}
	}

	return &Engine{
		parser:  parser.New(parser.Options{Logger: opts.Logger}),
		logger:  opts.Logger.WithField("component", "pal-engine"),
		options: opts,
	}
}

// Check parses src, which is named name in diagnostics and logs
func (e *Engine) Check(name string, src []byte) (*Result, error) {
	if int64(len(src)) > e.options.MaxSourceBytes {
		return nil, tooLarge(name, e.options.MaxSourceBytes)
	}

	runID := uuid.NewString()
	logger := e.logger.WithCorrelationID(runID).WithField("source", name)
	timer := logger.StartTimer("check")

	parsed := e.parser.Parse(lexer.New(string(src)))

	result := &Result{
		Source:      name,
		RunID:       runID,
		Program:     parsed.Program,
		Diagnostics: parsed.Diagnostics,
		Symbols:     parsed.Symbols,
		Tokens:      parsed.Tokens,
	}

	for _, d := range result.Diagnostics {
		logger.LogError(d.AsError())
	}

	result.Duration = timer.Stop(pallog.Fields{
		"tokens":      result.Tokens,
		"diagnostics": len(result.Diagnostics),
	})

	return result, nil
}

// CheckReader reads the whole of r and checks it
func (e *Engine) CheckReader(name string, r io.Reader) (*Result, error) {
	src, err := e.Read(name, r)
	if err != nil {
		return nil, err
	}
	return e.Check(name, src)
}

// CheckFile opens, checks and closes the file at path. A failure to close
// the file is returned together with the complete result.
func (e *Engine) CheckFile(path string) (*Result, error) {
	src, err := e.ReadFile(path)
	if src == nil {
		return nil, err
	}

	result, checkErr := e.Check(path, src)
	if checkErr != nil {
		return nil, checkErr
	}
	return result, err
}

// ReadFile reads the source at path within the size limit. When only
// closing the file fails, the source is returned along with the error.
func (e *Engine) ReadFile(path string) ([]byte, error) {
	f, err := e.options.Open(path)
	if err != nil {
		return nil, palerror.Wrap(err, fmt.Sprintf("cannot open %s", path)).
			WithCode(palerror.CodeSourceUnavailable).
			WithOperation("open").
			WithDetail("path", path)
	}

	src, err := e.Read(path, f)
	if err != nil {
		_ = f.Close()
		return nil, err
	}

	if err := f.Close(); err != nil {
		closeErr := palerror.Wrap(err, fmt.Sprintf("cannot close %s", path)).
			WithCode(palerror.CodeSourceClose).
			WithOperation("close").
			WithDetail("path", path)
		e.logger.LogError(closeErr)
		return src, closeErr
	}

	return src, nil
}

// Read drains r, rejecting sources over the size limit and dropping a
// leading UTF-8 byte order mark
func (e *Engine) Read(name string, r io.Reader) ([]byte, error) {
	limit := e.options.MaxSourceBytes
	src, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return nil, palerror.Wrap(err, "cannot read source").
			WithCode(palerror.CodeSourceRead).
			WithOperation("read").
			WithDetail("source", name)
	}
	if int64(len(src)) > limit {
		return nil, tooLarge(name, limit)
	}
	src = bytes.TrimPrefix(src, []byte("\xef\xbb\xbf"))
	if src == nil {
		src = []byte{}
	}
	return src, nil
}

func tooLarge(name string, limit int64) error {
	return palerror.Newf("source %s exceeds %d bytes", name, limit).
		WithCode(palerror.CodeSourceTooLarge).
		WithOperation("read").
		WithDetail("source", name).
		WithDetail("limit", limit)
}
