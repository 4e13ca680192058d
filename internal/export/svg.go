// Package export renders the chart to documents. Both exporters read the task
// snapshot through the same derived-state functions as the live views, so an
// exported document's row order, dates and colors match the screen at the
// moment of export.
package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/jask/ganttly/internal/colors"
	"github.com/jask/ganttly/internal/hierarchy"
	"github.com/jask/ganttly/internal/model"
)

// SVG layout constants, in pixels.
const (
	svgRowHeight   = 28
	svgBarHeight   = 16
	svgLabelWidth  = 240
	svgChartWidth  = 720
	svgHeaderSpace = 32
	svgIndentStep  = 14
)

var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
)

// WriteSVG renders the visible rows as a label column plus proportional
// timeline bars. Summary rows derive their span from descendants; rows without
// dates render label-only. Milestones render as diamonds.
func WriteSVG(w io.Writer, tasks []model.Task, collapsedIDs map[string]bool, state model.ColorModeState) error {
	rows := hierarchy.Flatten(tasks, collapsedIDs)

	minISO, maxISO := chartBounds(tasks, rows)
	span := 1
	if minISO != "" {
		start, _ := model.ParseDate(minISO)
		end, _ := model.ParseDate(maxISO)
		span = model.DaysBetween(start, end) + 1
	}

	height := svgHeaderSpace + len(rows)*svgRowHeight
	width := svgLabelWidth + svgChartWidth
	if _, err := fmt.Fprintf(w,
		"<svg xmlns=\"http://www.w3.org/2000/svg\" width=\"%d\" height=\"%d\" viewBox=\"0 0 %d %d\">\n",
		width, height, width, height); err != nil {
		return err
	}
	fmt.Fprintf(w, "  <rect width=\"%d\" height=\"%d\" fill=\"#ffffff\"/>\n", width, height)
	if minISO != "" {
		fmt.Fprintf(w, "  <text x=\"%d\" y=\"20\" font-family=\"sans-serif\" font-size=\"12\" fill=\"#555555\">%s — %s</text>\n",
			svgLabelWidth, xmlEscaper.Replace(minISO), xmlEscaper.Replace(maxISO))
	}

	for i, row := range rows {
		y := svgHeaderSpace + i*svgRowHeight
		label := xmlEscaper.Replace(row.Task.Name)
		indent := row.Level * svgIndentStep
		fmt.Fprintf(w, "  <text x=\"%d\" y=\"%d\" font-family=\"sans-serif\" font-size=\"13\" fill=\"#222222\">%s</text>\n",
			8+indent, y+svgRowHeight/2+5, label)

		startISO, endISO, ok := rowSpan(tasks, row.Task)
		if !ok || minISO == "" {
			continue
		}
		fill := colors.ComputeTaskColor(row.Task, tasks, state)
		minStart, _ := model.ParseDate(minISO)
		s, _ := model.ParseDate(startISO)
		e, _ := model.ParseDate(endISO)
		x := svgLabelWidth + model.DaysBetween(minStart, s)*svgChartWidth/span
		barW := (model.DaysBetween(s, e) + 1) * svgChartWidth / span
		if barW < 2 {
			barW = 2
		}
		barY := y + (svgRowHeight-svgBarHeight)/2
		if row.Task.IsMilestone() {
			cx := x + svgBarHeight/2
			cy := y + svgRowHeight/2
			half := svgBarHeight / 2
			fmt.Fprintf(w, "  <polygon points=\"%d,%d %d,%d %d,%d %d,%d\" fill=\"%s\"/>\n",
				cx, cy-half, cx+half, cy, cx, cy+half, cx-half, cy, fill)
			continue
		}
		fmt.Fprintf(w, "  <rect x=\"%d\" y=\"%d\" width=\"%d\" height=\"%d\" rx=\"3\" fill=\"%s\"/>\n",
			x, barY, barW, svgBarHeight, fill)
	}

	_, err := fmt.Fprint(w, "</svg>\n")
	return err
}

// rowSpan resolves the span a row occupies: derived for summaries, stored
// dates otherwise.
func rowSpan(tasks []model.Task, t model.Task) (start, end string, ok bool) {
	if t.IsSummary() {
		r := hierarchy.SummaryDates(tasks, t.ID)
		if r == nil {
			return "", "", false
		}
		return r.StartDate, r.EndDate, true
	}
	if _, err := model.ParseDate(t.StartDate); err != nil {
		return "", "", false
	}
	if _, err := model.ParseDate(t.EndDate); err != nil {
		return "", "", false
	}
	return t.StartDate, t.EndDate, true
}

// chartBounds returns the min start and max end over the visible rows, or
// empty strings when nothing carries dates.
func chartBounds(tasks []model.Task, rows []hierarchy.Row) (minISO, maxISO string) {
	for _, row := range rows {
		start, end, ok := rowSpan(tasks, row.Task)
		if !ok {
			continue
		}
		if minISO == "" || start < minISO {
			minISO = start
		}
		if maxISO == "" || end > maxISO {
			maxISO = end
		}
	}
	return minISO, maxISO
}
