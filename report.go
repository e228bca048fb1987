package mdartifact

import (
	"fmt"
	"sync"
)

// ReportSource identifies this plugin in diagnostic entries, so entries
// from multiple transformers sharing one report can be told apart.
const ReportSource = "gitlab-artifact"

// Kind classifies a diagnostic entry.
type Kind string

const (
	KindInfo  Kind = "info"
	KindError Kind = "error"
)

// Entry is a single diagnostic produced while processing a document.
type Entry struct {
	Kind     Kind
	Message  string
	Position Position
	Source   string
}

// Report is the append-only diagnostic collection attached to a
// document. Entries are never removed or rewritten, and appends are safe
// for concurrent use: entries land in completion order, not scan order.
type Report struct {
	mu      sync.Mutex
	entries []Entry
}

// NewReport creates an empty report.
func NewReport() *Report {
	return &Report{}
}

// Infof appends an informational entry attributed to pos.
func (r *Report) Infof(pos Position, format string, args ...any) {
	r.append(Entry{
		Kind:     KindInfo,
		Message:  fmt.Sprintf(format, args...),
		Position: pos,
		Source:   ReportSource,
	})
}

// Errorf appends an error entry attributed to pos.
func (r *Report) Errorf(pos Position, format string, args ...any) {
	r.append(Entry{
		Kind:     KindError,
		Message:  fmt.Sprintf(format, args...),
		Position: pos,
		Source:   ReportSource,
	})
}

func (r *Report) append(entry Entry) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, entry)
}

// Entries returns a snapshot copy of all entries recorded so far.
func (r *Report) Entries() []Entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	entries := make([]Entry, len(r.entries))
	copy(entries, r.entries)
	return entries
}

// Len returns the number of entries recorded so far.
func (r *Report) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

// HasErrors reports whether any error entry has been recorded.
func (r *Report) HasErrors() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, entry := range r.entries {
		if entry.Kind == KindError {
			return true
		}
	}
	return false
}
