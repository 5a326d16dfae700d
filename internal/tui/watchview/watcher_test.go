package watchview

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	pallog "github.com/msto63/palc/foundation/core/log"
)

func TestWatcherReportsWrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "prog.pal")
	if err := os.WriteFile(path, []byte("PROGRAM p WITH IN END"), 0o644); err != nil {
		t.Fatal(err)
	}

	w, err := NewWatcher(path, 20*time.Millisecond, pallog.Discard())
	if err != nil {
		t.Fatalf("NewWatcher() error = %v", err)
	}
	defer w.Close()

	// A burst of writes is delivered as one event.
	for i := 0; i < 3; i++ {
		if err := os.WriteFile(path, []byte("PROGRAM q WITH IN END"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	select {
	case <-w.Events():
	case <-time.After(2 * time.Second):
		t.Fatal("no event after write")
	}

	select {
	case <-w.Events():
		t.Error("burst delivered more than one event")
	case <-time.After(100 * time.Millisecond):
	}
}

func TestWatcherIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "prog.pal")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatal(err)
	}

	w, err := NewWatcher(path, 10*time.Millisecond, pallog.Discard())
	if err != nil {
		t.Fatalf("NewWatcher() error = %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(dir, "other.pal"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case <-w.Events():
		t.Error("event for unrelated file")
	case <-time.After(150 * time.Millisecond):
	}
}

func TestWatcherClose(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prog.pal")
	w, err := NewWatcher(path, time.Millisecond, pallog.Discard())
	if err != nil {
		t.Fatalf("NewWatcher() error = %v", err)
	}

	if err := w.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("second Close() error = %v", err)
	}

	select {
	case _, ok := <-w.Events():
		if ok {
			t.Error("Events() delivered after Close")
		}
	case <-time.After(time.Second):
		t.Error("Events() not closed after Close")
	}
}

func TestWatcherMissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "prog.pal")
	if _, err := NewWatcher(path, time.Millisecond, pallog.Discard()); err == nil {
		t.Error("NewWatcher() error = nil, want error for missing directory")
	}
}
