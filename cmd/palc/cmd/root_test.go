package cmd

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	palerror "github.com/msto63/palc/foundation/core/error"
	"github.com/msto63/palc/pkg/core/version"
)

const validSource = `PROGRAM demo WITH
  x AS INTEGER
IN
  x = 1
  OUTPUT x
END`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

// execute runs the command tree with a fresh flag state and a private
// config file
func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()

	cfgFile, verbose, logFormat, colorMode = "", false, "", ""
	astFormat, versionShort = "yaml", false

	config := writeFile(t, t.TempDir(), "palc.toml", "[check]\ncolor = \"never\"\n")
	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(append([]string{"--config", config}, args...))

	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestCheckCommand(t *testing.T) {
	dir := t.TempDir()
	valid := writeFile(t, dir, "valid.pal", validSource)
	broken := writeFile(t, dir, "broken.pal", "PROGRAM p WITH x AS INTEGER IN x = y END")
	missing := filepath.Join(dir, "missing.pal")

	t.Run("valid source", func(t *testing.T) {
		out, _, err := execute(t, "", "check", valid)
		if err != nil {
			t.Fatalf("check error = %v", err)
		}
		if out != "" {
			t.Errorf("output = %q, want empty", out)
		}
	})

	t.Run("source with errors", func(t *testing.T) {
		out, _, err := execute(t, "", "check", broken)
		if !errors.Is(err, ErrCheckFailed) {
			t.Fatalf("check error = %v, want ErrCheckFailed", err)
		}
		want := broken + ":1:36: identifier \"y\" is not declared\n" +
			broken + ":1:32: type conflict: expected INTEGER, found UNDEFINED\n" +
			"2 errors found.\n"
		if out != want {
			t.Errorf("output = %q, want %q", out, want)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		out, _, err := execute(t, "", "check", missing, valid)
		if !errors.Is(err, ErrCheckFailed) {
			t.Fatalf("check error = %v, want ErrCheckFailed", err)
		}
		if !strings.HasPrefix(out, "error: cannot open "+missing) {
			t.Errorf("output = %q, want open failure", out)
		}
	})

	t.Run("standard input", func(t *testing.T) {
		out, _, err := execute(t, "PROGRAM p WITH IN z = 1 END", "check", "-")
		if !errors.Is(err, ErrCheckFailed) {
			t.Fatalf("check error = %v, want ErrCheckFailed", err)
		}
		if !strings.HasPrefix(out, `<stdin>:1:19: identifier "z" is not declared`) {
			t.Errorf("output = %q", out)
		}
	})

	t.Run("verbose", func(t *testing.T) {
		out, _, err := execute(t, "", "check", "--verbose", valid)
		if err != nil {
			t.Fatalf("check error = %v", err)
		}
		if !strings.Contains(out, valid+": ok") {
			t.Errorf("output = %q, want ok line", out)
		}
	})

	t.Run("no arguments", func(t *testing.T) {
		if _, _, err := execute(t, "", "check"); err == nil {
			t.Error("check without files succeeded")
		}
	})
}

func TestTokensCommand(t *testing.T) {
	path := writeFile(t, t.TempDir(), "t.pal", "PROGRAM p\n  x = 1.5")

	out, _, err := execute(t, "", "tokens", path)
	if err != nil {
		t.Fatalf("tokens error = %v", err)
	}

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 7 {
		t.Fatalf("tokens printed %d lines, want header + 6 tokens:\n%s", len(lines), out)
	}
	for i, want := range []string{"POS", "PROGRAM", "IDENTIFIER", "IDENTIFIER", "=", "REAL_LITERAL", "EOF"} {
		if !strings.Contains(lines[i], want) {
			t.Errorf("line %d = %q, want %q", i, lines[i], want)
		}
	}
}

func TestASTCommand(t *testing.T) {
	path := writeFile(t, t.TempDir(), "a.pal", validSource)

	t.Run("yaml", func(t *testing.T) {
		out, _, err := execute(t, "", "ast", path)
		if err != nil {
			t.Fatalf("ast error = %v", err)
		}
		for _, want := range []string{"node: Program", "name: demo", "declarations:"} {
			if !strings.Contains(out, want) {
				t.Errorf("output missing %q:\n%s", want, out)
			}
		}
	})

	t.Run("json", func(t *testing.T) {
		out, _, err := execute(t, "", "ast", "--format", "json", path)
		if err != nil {
			t.Fatalf("ast error = %v", err)
		}
		var tree map[string]interface{}
		if err := json.Unmarshal([]byte(out), &tree); err != nil {
			t.Fatalf("output is not JSON: %v", err)
		}
		if tree["node"] != "Program" || tree["name"] != "demo" {
			t.Errorf("tree = %v, want Program demo", tree)
		}
	})

	t.Run("text", func(t *testing.T) {
		out, _, err := execute(t, "", "ast", "-f", "text", path)
		if err != nil {
			t.Fatalf("ast error = %v", err)
		}
		if !strings.HasPrefix(out, "PROGRAM demo WITH") {
			t.Errorf("output = %q", out)
		}
	})

	t.Run("errors go to stderr", func(t *testing.T) {
		bad := writeFile(t, t.TempDir(), "b.pal", "PROGRAM p WITH IN y = 1 END")
		out, errOut, err := execute(t, "", "ast", bad)
		if !errors.Is(err, ErrCheckFailed) {
			t.Fatalf("ast error = %v, want ErrCheckFailed", err)
		}
		if !strings.Contains(out, "node: Program") {
			t.Errorf("stdout = %q, want tree", out)
		}
		if !strings.Contains(errOut, "2 errors found.") {
			t.Errorf("stderr = %q, want summary", errOut)
		}
	})

	t.Run("unknown format", func(t *testing.T) {
		_, _, err := execute(t, "", "ast", "--format", "xml", path)
		if !palerror.HasCode(err, palerror.CodeInvalidInput) {
			t.Errorf("ast error = %v, want code %s", err, palerror.CodeInvalidInput)
		}
	})
}

func TestVersionCommand(t *testing.T) {
	out, _, err := execute(t, "", "version", "--short")
	if err != nil {
		t.Fatalf("version error = %v", err)
	}
	if out != version.Tool+"\n" {
		t.Errorf("output = %q, want %q", out, version.Tool+"\n")
	}

	out, _, err = execute(t, "", "version")
	if err != nil {
		t.Fatalf("version error = %v", err)
	}
	if !strings.HasPrefix(out, "palc v"+version.Tool) {
		t.Errorf("output = %q", out)
	}
}

func TestSetupErrors(t *testing.T) {
	path := writeFile(t, t.TempDir(), "ok.pal", validSource)

	t.Run("invalid color flag", func(t *testing.T) {
		_, _, err := execute(t, "", "check", "--color", "purple", path)
		if !palerror.HasCode(err, palerror.CodeInvalidConfig) {
			t.Errorf("check error = %v, want code %s", err, palerror.CodeInvalidConfig)
		}
	})

	t.Run("missing config file", func(t *testing.T) {
		_, _, err := execute(t, "", "--config", filepath.Join(t.TempDir(), "none.toml"), "check", path)
		if !palerror.HasCode(err, palerror.CodeConfigNotFound) {
			t.Errorf("check error = %v, want code %s", err, palerror.CodeConfigNotFound)
		}
	})

	t.Run("unsatisfied required version", func(t *testing.T) {
		config := writeFile(t, t.TempDir(), "palc.toml", "required_version = \">= 99\"\n")
		_, _, err := execute(t, "", "--config", config, "check", path)
		if !palerror.HasCode(err, palerror.CodeVersionMismatch) {
			t.Errorf("check error = %v, want code %s", err, palerror.CodeVersionMismatch)
		}
	})
}
