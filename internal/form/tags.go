package form

import "strings"

// Tags is an append-only list of free-text tags with a pending input buffer.
type Tags struct {
	items   []string
	pending string
}

// SetPending replaces the pending input. Any text is accepted.
func (t Tags) SetPending(text string) Tags {
	t.pending = text
	return t
}

// Pending returns the pending input.
func (t Tags) Pending() string {
	return t.pending
}

// Commit appends the pending input as typed and clears the buffer.
// Input that is blank after trimming is ignored and the buffer is kept.
func (t Tags) Commit() (Tags, bool) {
	if strings.TrimSpace(t.pending) == "" {
		return t, false
	}

	items := make([]string, len(t.items), len(t.items)+1)
	copy(items, t.items)
	return Tags{items: append(items, t.pending)}, true
}

// Items returns a copy of the committed tags in insertion order.
func (t Tags) Items() []string {
	return append([]string(nil), t.items...)
}

// Len returns the number of committed tags.
func (t Tags) Len() int {
	return len(t.items)
}
