// Package hierarchy derives summary date ranges and the flattened row order
// from the task tree. Every function is pure: it builds its own indexes from
// the snapshot it is given, mutates nothing, and terminates even when the
// external parent invariant is violated (cycles, unknown parents).
package hierarchy

import (
	"sort"

	"github.com/jask/ganttly/internal/model"
)

// DateRange is a derived summary span. Duration is the inclusive day count.
type DateRange struct {
	StartDate string
	EndDate   string
	Duration  int
}

// Row is one entry of the flattened task list. Level is the ancestor count;
// HasChildren is computed from the snapshot regardless of collapse state.
type Row struct {
	Task        model.Task
	Level       int
	HasChildren bool
}

type index struct {
	byID     map[string]model.Task
	children map[string][]model.Task // parent id ("" = root) -> ordered children
}

func buildIndex(tasks []model.Task) index {
	byID := make(map[string]model.Task, len(tasks))
	for _, t := range tasks {
		byID[t.ID] = t
	}
	children := make(map[string][]model.Task)
	for _, t := range tasks {
		parent := t.ParentID
		if parent == t.ID {
			parent = ""
		}
		if parent != "" {
			if _, ok := byID[parent]; !ok {
				// Unknown parent reference: treat the task as a root.
				parent = ""
			}
		}
		children[parent] = append(children[parent], t)
	}
	for id, sibs := range children {
		sort.SliceStable(sibs, func(i, j int) bool {
			if sibs[i].Order != sibs[j].Order {
				return sibs[i].Order < sibs[j].Order
			}
			return sibs[i].ID < sibs[j].ID
		})
		children[id] = sibs
	}
	return index{byID: byID, children: children}
}

// SummaryDates derives a summary task's date range from its dated descendants:
// minimum start, maximum end, inclusive duration. Summary descendants
// contribute through their own dated descendants. Returns nil when no
// qualifying descendant exists; callers must then render the summary date-less
// rather than reuse a stale value.
func SummaryDates(tasks []model.Task, summaryID string) *DateRange {
	idx := buildIndex(tasks)
	if _, ok := idx.byID[summaryID]; !ok {
		return nil
	}

	var span *DateRange
	seen := map[string]bool{summaryID: true}
	var walk func(id string)
	walk = func(id string) {
		for _, child := range idx.children[id] {
			if seen[child.ID] {
				continue
			}
			seen[child.ID] = true
			if !child.IsSummary() {
				if start, end, ok := taskSpan(child); ok {
					span = widen(span, start, end)
				}
			}
			walk(child.ID)
		}
	}
	walk(summaryID)
	return span
}

// LeafDuration returns the display duration of a leaf (task or milestone) row.
// Whenever both dates parse, duration is recomputed as the inclusive day count
// so independent edits to either date cannot leave the stored value stale; the
// stored duration is only a fallback when a date is absent or malformed.
func LeafDuration(t model.Task) int {
	start, err := model.ParseDate(t.StartDate)
	if err != nil {
		return t.Duration
	}
	end, err := model.ParseDate(t.EndDate)
	if err != nil {
		return t.Duration
	}
	return model.DaysBetween(start, end) + 1
}

// Flatten produces the depth-first, pre-order, collapse-aware row sequence that
// drives every row-based renderer. Siblings are ordered by their Order key.
// Descendants of a collapsed task are omitted; the collapsed task itself is
// kept. The traversal is guarded against cycles: a task is emitted at most
// once, and a subtree that is only reachable through a cycle never surfaces.
func Flatten(tasks []model.Task, collapsedIDs map[string]bool) []Row {
	idx := buildIndex(tasks)
	out := make([]Row, 0, len(tasks))
	seen := make(map[string]bool, len(tasks))
	var walk func(parentID string, level int)
	walk = func(parentID string, level int) {
		for _, t := range idx.children[parentID] {
			if seen[t.ID] {
				continue
			}
			seen[t.ID] = true
			out = append(out, Row{
				Task:        t,
				Level:       level,
				HasChildren: len(idx.children[t.ID]) > 0,
			})
			if !collapsedIDs[t.ID] {
				walk(t.ID, level+1)
			}
		}
	}
	walk("", 0)
	return out
}

// Siblings returns parentID's children in display order, the same ordering
// Flatten walks them in. parentID "" yields the root-level tasks, including
// tasks promoted to root because their parent is unknown or themselves.
func Siblings(tasks []model.Task, parentID string) []model.Task {
	return buildIndex(tasks).children[parentID]
}

func taskSpan(t model.Task) (start, end string, ok bool) {
	s, err := model.ParseDate(t.StartDate)
	if err != nil {
		return "", "", false
	}
	e, err := model.ParseDate(t.EndDate)
	if err != nil {
		return "", "", false
	}
	if e.Before(s) {
		// Reversed ranges still bound the summary from both ends.
		return t.EndDate, t.StartDate, true
	}
	return t.StartDate, t.EndDate, true
}

func widen(span *DateRange, start, end string) *DateRange {
	if span == nil {
		span = &DateRange{StartDate: start, EndDate: end}
	} else {
		if start < span.StartDate {
			span.StartDate = start
		}
		if end > span.EndDate {
			span.EndDate = end
		}
	}
	s, _ := model.ParseDate(span.StartDate)
	e, _ := model.ParseDate(span.EndDate)
	span.Duration = model.DaysBetween(s, e) + 1
	return span
}
