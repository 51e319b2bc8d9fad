package calc

import (
	"fmt"
	"strings"
	"testing"
)

func TestHistoryCap(t *testing.T) {
	var h History
	for i := 0; i < 60; i++ {
		h.Add(fmt.Sprintf("expr-%d", i), fmt.Sprintf("%d", i))
	}
	if h.Len() != 50 {
		t.Fatalf("len = %d, want 50", h.Len())
	}
	entries := h.Entries()
	if entries[0].Expression != "expr-10" {
		t.Errorf("oldest kept entry = %q, want expr-10", entries[0].Expression)
	}
	if entries[len(entries)-1].Expression != "expr-59" {
		t.Errorf("newest entry = %q, want expr-59", entries[len(entries)-1].Expression)
	}
}

func TestHistoryClear(t *testing.T) {
	var h History
	h.Add("1 + 1", "2")
	h.Clear()
	if h.Len() != 0 {
		t.Errorf("len = %d after clear", h.Len())
	}
}

func TestHistoryExport(t *testing.T) {
	var h History
	h.Add("5 + 3", "8")
	h.Add("1 / 0", "Error")

	out := string(h.Export())
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("exported %d lines, want 2", len(lines))
	}
	if !strings.HasSuffix(lines[0], "5 + 3 = 8") {
		t.Errorf("line 0 = %q", lines[0])
	}
	if !strings.HasSuffix(lines[1], "1 / 0 = Error") {
		t.Errorf("line 1 = %q", lines[1])
	}
}
