package ui

import (
	"strings"
	"testing"
	"time"

	"github.com/idilsaglam/todosh/internal/model"
)

func TestFormatDate(t *testing.T) {
	if got := FormatDate(nil); got != NoDueDate {
		t.Errorf("FormatDate(nil): got %q, want %q", got, NoDueDate)
	}
	d := time.Date(2026, 8, 23, 14, 30, 0, 0, time.UTC)
	if got := FormatDate(&d); got != "2026-08-23" {
		t.Errorf("FormatDate: got %q, want %q (date only, no time of day)", got, "2026-08-23")
	}
	padded := time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)
	if got := FormatDate(&padded); got != "2026-01-02" {
		t.Errorf("FormatDate: got %q, want zero-padded month and day", got)
	}
}

func TestRenderItemsEmpty(t *testing.T) {
	SetColorMode("never")
	if got := RenderItems(nil); got != "no items" {
		t.Errorf("RenderItems(nil): got %q, want %q", got, "no items")
	}
	if got := RenderItems([]model.Item{}); got != "no items" {
		t.Errorf("RenderItems(empty): got %q, want %q", got, "no items")
	}
}

func TestRenderItemsLines(t *testing.T) {
	SetColorMode("never")
	now := time.Now().UTC()
	due := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	items := []model.Item{
		{ID: "id-a", Title: "Study", CreatedAt: now, UpdatedAt: now},
		{ID: "id-b", Title: "Ship", DueDate: &due, Completed: true, CreatedAt: now, UpdatedAt: now},
	}
	out := RenderItems(items)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("lines: got %d, want 2\n%s", len(lines), out)
	}

	// Numbering is the 1-based position in the sequence, not the id.
	if !strings.HasPrefix(lines[0], " 1.") {
		t.Errorf("line 1 numbering: %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], " 2.") {
		t.Errorf("line 2 numbering: %q", lines[1])
	}

	if !strings.Contains(lines[0], BoxUnchecked) || !strings.Contains(lines[0], "Study") {
		t.Errorf("line 1 missing mark or title: %q", lines[0])
	}
	if !strings.Contains(lines[0], NoDueDate) {
		t.Errorf("line 1 missing the empty due-date marker: %q", lines[0])
	}
	if !strings.Contains(lines[0], "[id-a]") {
		t.Errorf("line 1 missing id: %q", lines[0])
	}

	if !strings.Contains(lines[1], BoxChecked) {
		t.Errorf("line 2 missing completion mark: %q", lines[1])
	}
	if !strings.Contains(lines[1], "2026-09-01") {
		t.Errorf("line 2 missing formatted due date: %q", lines[1])
	}
	if !strings.Contains(lines[1], "[id-b]") {
		t.Errorf("line 2 missing id: %q", lines[1])
	}
}
