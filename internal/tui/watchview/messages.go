// ============================================================================
// palc - PAL compiler front end
// ============================================================================
//
// Package:     watchview
// Description: Messages exchanged by the watch view commands
// Author:      msto63
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package watchview

import (
	"time"

	"github.com/msto63/palc/foundation/pal"
)

// Message types for tea.Cmd async operations

// checkedMsg is sent when a check run finished
type checkedMsg struct {
	result *pal.Result
	err    error
	at     time.Time
}

// fileChangedMsg is sent when the watched source was written
type fileChangedMsg struct{}

// watchErrMsg is sent when the file watcher reports an error
type watchErrMsg struct {
	err error
}

// recheckMsg requests a check run without a file change
type recheckMsg struct{}
