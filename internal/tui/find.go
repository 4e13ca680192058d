package tui

import (
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/jask/ganttly/internal/hierarchy"
)

// bestMatch returns the index of the visible row whose name best matches
// query, or -1. Substring hits rank ahead of fuzzy hits; ties break toward
// the earlier row so results follow display order. Fuzzy hits beyond a
// distance of half the query length are rejected as noise.
func bestMatch(rows []hierarchy.Row, query string) int {
	q := strings.ToLower(query)
	best := -1
	bestScore := 1 << 30
	for i, row := range rows {
		name := strings.ToLower(row.Task.Name)
		var score int
		switch {
		case name == q:
			score = 0
		case strings.HasPrefix(name, q):
			score = 1
		case strings.Contains(name, q):
			score = 2
		default:
			dist := levenshtein.ComputeDistance(q, name)
			if dist > len(q)/2+1 {
				continue
			}
			score = 3 + dist
		}
		if score < bestScore {
			bestScore = score
			best = i
		}
	}
	return best
}
