package calc

import (
	"strings"
	"time"
)

// maxHistory caps the log at the most recent entries.
const maxHistory = 50

// Entry is one recorded calculation.
type Entry struct {
	Expression string
	Result     string
	At         time.Time
}

// History is an append-only log of completed calculations, capped at the
// 50 most recent. It is owned by the session, not the engine.
type History struct {
	entries []Entry
}

// Add appends an entry, evicting the oldest when the cap is exceeded.
func (h *History) Add(expression, result string) {
	h.entries = append(h.entries, Entry{
		Expression: expression,
		Result:     result,
		At:         time.Now(),
	})
	if len(h.entries) > maxHistory {
		h.entries = h.entries[len(h.entries)-maxHistory:]
	}
}

// Entries returns a copy of the log, oldest first.
func (h *History) Entries() []Entry {
	out := make([]Entry, len(h.entries))
	copy(out, h.entries)
	return out
}

// Len returns the number of recorded entries.
func (h *History) Len() int { return len(h.entries) }

// Clear empties the log.
func (h *History) Clear() { h.entries = nil }

// Export renders the log as plain text, one calculation per line.
func (h *History) Export() []byte {
	var sb strings.Builder
	for _, e := range h.entries {
		sb.WriteString(e.At.Format("2006-01-02 15:04:05"))
		sb.WriteString("  ")
		sb.WriteString(e.Expression)
		sb.WriteString(" = ")
		sb.WriteString(e.Result)
		sb.WriteByte('\n')
	}
	return []byte(sb.String())
}
