package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/idilsaglam/todosh/internal/model"
)

// NoDueDate is what an absent due date renders as.
const NoDueDate = "no due date"

// FormatDate renders the calendar portion of a due date; no time of day.
func FormatDate(t *time.Time) string {
	if t == nil {
		return NoDueDate
	}
	return t.Format("2006-01-02")
}

// RenderItems renders one numbered line per item, in the order given.
// The number is the 1-based position in the sequence, not the id.
func RenderItems(items []model.Item) string {
	if len(items) == 0 {
		return render(mutedStyle, "no items")
	}
	out := make([]string, 0, len(items))
	for i, it := range items {
		idx := fmt.Sprintf("%2d.", i+1)
		box := render(mutedStyle, BoxUnchecked)
		title := it.Title
		if it.Completed {
			box = render(successStyle, BoxChecked)
			title = render(DoneStyle, title)
		}
		due := render(mutedStyle, "due: "+FormatDate(it.DueDate))
		id := render(mutedStyle, "["+it.ID+"]")
		out = append(out, fmt.Sprintf("%s %s %s  %s  %s", idx, box, title, due, id))
	}
	return strings.Join(out, "\n")
}
