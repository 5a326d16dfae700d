// File: collector.go
// Title: Diagnostic Collector
// Description: Append-only, ordered list of diagnostics owned by one parse.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package diag

// Collector accumulates diagnostics in discovery order
type Collector struct {
	items []Diagnostic
}

// NewCollector returns an empty collector
func NewCollector() *Collector {
	return &Collector{}
}

// Add appends d
func (c *Collector) Add(d Diagnostic) {
	c.items = append(c.items, d)
}

// Len returns the number of diagnostics
func (c *Collector) Len() int {
	return len(c.items)
}

// All returns a copy of the diagnostics in discovery order
func (c *Collector) All() []Diagnostic {
	out := make([]Diagnostic, len(c.items))
	copy(out, c.items)
	return out
}

// Count returns the number of diagnostics of kind k
func (c *Collector) Count(k Kind) int {
	n := 0
	for _, d := range c.items {
		if d.Kind == k {
			n++
		}
	}
	return n
}

// Last returns the most recent diagnostic
func (c *Collector) Last() (Diagnostic, bool) {
	if len(c.items) == 0 {
		return Diagnostic{}, false
	}
	return c.items[len(c.items)-1], true
}
