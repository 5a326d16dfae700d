package report

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	pallog "github.com/msto63/palc/foundation/core/log"
	"github.com/msto63/palc/foundation/pal"
	"github.com/msto63/palc/foundation/pal/diag"
	"github.com/msto63/palc/foundation/pal/token"
	"github.com/msto63/palc/foundation/pal/types"
)

func check(t *testing.T, src string) *pal.Result {
	t.Helper()
	res, err := pal.New(pal.Options{Logger: pallog.Discard()}).Check("prog.pal", []byte(src))
	if err != nil {
		t.Fatalf("Check() error = %v", err)
	}
	return res
}

func TestFormat(t *testing.T) {
	tok := token.Token{Kind: token.Identifier, Value: "y", Pos: token.Pos{Offset: 18, Line: 1, Column: 19}}

	tests := []struct {
		name   string
		source string
		d      diag.Diagnostic
		want   string
	}{
		{"not declared", "a.pal", diag.Undeclared(tok), `a.pal:1:19: identifier "y" is not declared`},
		{"type conflict", "a.pal", diag.Conflict(tok, types.Integer, types.Real), "a.pal:1:19: type conflict: expected INTEGER, found REAL"},
		{"no source", "", diag.Undeclared(tok), `1:19: identifier "y" is not declared`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Format(tt.source, tt.d); got != tt.want {
				t.Errorf("Format() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSummary(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{1, "1 error found."},
		{2, "2 errors found."},
		{12, "12 errors found."},
	}
	for _, tt := range tests {
		if got := Summary(tt.n); got != tt.want {
			t.Errorf("Summary(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestReporterPlain(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, Options{ShowSummary: true})

	r.Result(check(t, "PROGRAM p WITH x AS INTEGER IN x = y END"))

	want := "prog.pal:1:36: identifier \"y\" is not declared\n" +
		"prog.pal:1:32: type conflict: expected INTEGER, found UNDEFINED\n" +
		"2 errors found.\n"
	if got := buf.String(); got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
	if r.Errors() != 2 || r.OK() {
		t.Errorf("Errors() = %d, OK() = %v, want 2, false", r.Errors(), r.OK())
	}
}

func TestReporterValidProgram(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, Options{ShowSummary: true})

	r.Result(check(t, "PROGRAM p WITH x AS INTEGER IN x = 1 END"))

	if buf.Len() != 0 {
		t.Errorf("output = %q, want empty", buf.String())
	}
	if !r.OK() {
		t.Error("OK() = false, want true")
	}
}

func TestReporterVerbose(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, Options{Verbose: true})

	r.Result(check(t, "PROGRAM p WITH x AS INTEGER IN x = 1 END"))

	if got := buf.String(); !strings.HasPrefix(got, "prog.pal: ok (") {
		t.Errorf("output = %q, want ok line", got)
	}
}

func TestReporterNoSummary(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, Options{})

	r.Result(check(t, "PROGRAM p WITH IN x = 1 END"))

	if strings.Contains(buf.String(), "found.") {
		t.Errorf("output = %q, want no summary", buf.String())
	}
}

func TestReporterFailure(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, Options{})

	r.Failure(errors.New("cannot open missing.pal"))

	if got, want := buf.String(), "error: cannot open missing.pal\n"; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
	if r.Failures() != 1 || r.OK() {
		t.Errorf("Failures() = %d, OK() = %v, want 1, false", r.Failures(), r.OK())
	}
}

func TestReporterColor(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, Options{Color: true, ShowSummary: true})

	r.Result(check(t, "PROGRAM p WITH IN x = 1 END"))

	out := buf.String()
	if !strings.Contains(out, "\x1b[") {
		t.Errorf("output = %q, want ANSI escapes", out)
	}
	if !strings.Contains(out, `identifier "x" is not declared`) {
		t.Errorf("output = %q, want message text", out)
	}
}

func TestColorEnabled(t *testing.T) {
	var buf bytes.Buffer
	tests := []struct {
		mode string
		want bool
	}{
		{"always", true},
		{"never", false},
		{"auto", false},
	}
	for _, tt := range tests {
		if got := ColorEnabled(tt.mode, &buf); got != tt.want {
			t.Errorf("ColorEnabled(%q) = %v, want %v", tt.mode, got, tt.want)
		}
	}
}
