package export

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"

	"github.com/jask/ganttly/internal/colors"
	"github.com/jask/ganttly/internal/hierarchy"
	"github.com/jask/ganttly/internal/model"
)

// WriteCSV renders the visible rows as a flat table: indentation is folded
// into the name column, summary dates are derived, and the color column holds
// the same resolved hex the timeline bars use.
func WriteCSV(w io.Writer, tasks []model.Task, collapsedIDs map[string]bool, state model.ColorModeState) error {
	rows := hierarchy.Flatten(tasks, collapsedIDs)
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"name", "type", "start", "end", "duration", "color"}); err != nil {
		return err
	}
	for _, row := range rows {
		t := row.Task
		start, end, dur := rowFields(tasks, t)
		rec := []string{
			strings.Repeat("  ", row.Level) + t.Name,
			string(t.Type),
			start,
			end,
			dur,
			colors.ComputeTaskColor(t, tasks, state),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// rowFields mirrors what the grid shows: derived dates and duration for
// summaries (blank when unresolved), recomputed duration for leaves.
func rowFields(tasks []model.Task, t model.Task) (start, end, duration string) {
	if t.IsSummary() {
		r := hierarchy.SummaryDates(tasks, t.ID)
		if r == nil {
			return "", "", ""
		}
		return r.StartDate, r.EndDate, strconv.Itoa(r.Duration)
	}
	d := hierarchy.LeafDuration(t)
	if d == 0 && t.StartDate == "" && t.EndDate == "" {
		return t.StartDate, t.EndDate, ""
	}
	return t.StartDate, t.EndDate, strconv.Itoa(d)
}
