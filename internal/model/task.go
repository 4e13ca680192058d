package model

// TaskType discriminates the three row kinds in a chart.
type TaskType string

const (
	TypeTask      TaskType = "task"
	TypeSummary   TaskType = "summary"
	TypeMilestone TaskType = "milestone"
)

// Task is a single chart row. Tasks form a tree through ParentID; the tree is
// owned by the store and treated as read-only everywhere else. StartDate and
// EndDate are authoritative only for task/milestone rows; summary dates and all
// durations are derived, never trusted from storage.
type Task struct {
	ID            string
	Type          TaskType
	Name          string
	StartDate     string // ISO date (2006-01-02), empty when unset
	EndDate       string
	Duration      int    // inclusive days; recomputed for leaf rows
	Color         string // hex base color
	ColorOverride string // user pin; empty when unset
	ParentID      string // empty for roots; never followed for mutation
	Order         int    // sibling sort key
}

// IsSummary reports whether the task aggregates children.
func (t Task) IsSummary() bool { return t.Type == TypeSummary }

// IsMilestone reports whether the task is a zero-length marker.
func (t Task) IsMilestone() bool { return t.Type == TypeMilestone }
