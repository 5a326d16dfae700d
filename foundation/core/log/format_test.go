// File: format_test.go
// Title: Log Format Tests
// Description: Tests for format parsing and the text/console/JSON formatters.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial test suite

package log

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	palerror "github.com/msto63/palc/foundation/core/error"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    Format
		wantErr bool
	}{
		{"json", FormatJSON, false},
		{"Text", FormatText, false},
		{"console", FormatConsole, false},
		{"xml", FormatText, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseFormat(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseFormat(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func testEntry() *Entry {
	entry := NewEntry(LevelWarn, "cannot close source")
	entry.Timestamp = time.Date(2026, 10, 19, 9, 30, 0, 0, time.UTC)
	entry.Logger = "palc"
	entry.CorrelationID = "6ba7b810-9dad-11d1-80b4-00c04fd430c8"
	entry.Fields = Fields{"path": "b.pal", "attempt": 1}
	return entry
}

func TestTextFormatter(t *testing.T) {
	data, err := NewTextFormatter().Format(testEntry())
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	want := "09:30:00 [WRN] {palc} (run=6ba7b810) cannot close source [attempt=1 path=b.pal]\n"
	if string(data) != want {
		t.Errorf("Format() = %q, want %q", string(data), want)
	}
}

func TestConsoleFormatter(t *testing.T) {
	f := NewConsoleFormatter()
	data, err := f.Format(testEntry())
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if !strings.HasPrefix(string(data), LevelWarn.Color()) {
		t.Errorf("Format() = %q, want color prefix", string(data))
	}

	f.DisableColors = true
	data, _ = f.Format(testEntry())
	if strings.Contains(string(data), "\033[") {
		t.Errorf("Format() with DisableColors = %q, want no escape codes", string(data))
	}
}

func TestJSONFormatterWithError(t *testing.T) {
	entry := testEntry().WithError(palerror.New("permission denied").WithCode(palerror.CodeSourceClose))

	data, err := NewJSONFormatter().Format(entry)
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	if decoded["error"] != "permission denied" {
		t.Errorf("error = %v, want permission denied", decoded["error"])
	}
	details, ok := decoded["error_details"].(map[string]interface{})
	if !ok {
		t.Fatalf("error_details = %T, want object", decoded["error_details"])
	}
	if details["code"] != "SOURCE_CLOSE" {
		t.Errorf("error_details.code = %v, want SOURCE_CLOSE", details["code"])
	}
}
