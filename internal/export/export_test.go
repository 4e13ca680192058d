package export

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jask/ganttly/internal/colors"
	"github.com/jask/ganttly/internal/hierarchy"
	"github.com/jask/ganttly/internal/model"
)

func chart() []model.Task {
	return []model.Task{
		{ID: "proj", Type: model.TypeSummary, Name: "Project <2026>", Order: 0},
		{ID: "a", Type: model.TypeTask, Name: "Alpha", ParentID: "proj", Order: 0,
			StartDate: "2026-09-01", EndDate: "2026-09-05", Color: "#89b4fa"},
		{ID: "b", Type: model.TypeTask, Name: "Beta", ParentID: "proj", Order: 1,
			StartDate: "2026-09-08", EndDate: "2026-09-12", Color: "#a6e3a1"},
		{ID: "m", Type: model.TypeMilestone, Name: "Ship", ParentID: "proj", Order: 2,
			StartDate: "2026-09-15", EndDate: "2026-09-15", Color: "#f38ba8"},
	}
}

func manualState() model.ColorModeState {
	return model.ColorModeState{Mode: model.ModeManual}
}

func TestWriteSVGColorsMatchResolver(t *testing.T) {
	var buf bytes.Buffer
	tasks := chart()
	state := model.ColorModeState{Mode: model.ModeTheme, Theme: model.ThemeOptions{SelectedPaletteID: "mocha"}}
	require.NoError(t, WriteSVG(&buf, tasks, nil, state))
	out := buf.String()

	for _, tk := range tasks {
		if tk.IsSummary() {
			continue
		}
		want := colors.ComputeTaskColor(tk, tasks, state)
		require.Contains(t, out, want, "task %s fill must match the resolver", tk.ID)
	}
	require.True(t, strings.HasPrefix(out, "<svg "))
	require.Contains(t, out, "</svg>")
	// name with markup characters must be escaped
	require.Contains(t, out, "Project &lt;2026&gt;")
	require.NotContains(t, out, "Project <2026>")
	// milestone renders as a diamond, not a bar
	require.Contains(t, out, "<polygon")
}

func TestWriteSVGHandlesDatelessChart(t *testing.T) {
	var buf bytes.Buffer
	tasks := []model.Task{{ID: "a", Type: model.TypeTask, Name: "No dates"}}
	require.NoError(t, WriteSVG(&buf, tasks, nil, manualState()))
	require.Contains(t, buf.String(), "No dates")
}

func TestWriteCSVRowOrderMatchesFlatten(t *testing.T) {
	var buf bytes.Buffer
	tasks := chart()
	require.NoError(t, WriteCSV(&buf, tasks, nil, manualState()))

	recs, err := csv.NewReader(strings.NewReader(buf.String())).ReadAll()
	require.NoError(t, err)

	rows := hierarchy.Flatten(tasks, nil)
	require.Len(t, recs, len(rows)+1) // header + rows
	for i, row := range rows {
		got := strings.TrimLeft(recs[i+1][0], " ")
		require.Equal(t, row.Task.Name, got)
	}
	// summary row carries the derived span
	require.Equal(t, "2026-09-01", recs[1][2])
	require.Equal(t, "2026-09-15", recs[1][3])
	require.Equal(t, "15", recs[1][4])
}

func TestWriteCSVRespectsCollapse(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, chart(), map[string]bool{"proj": true}, manualState()))
	recs, err := csv.NewReader(strings.NewReader(buf.String())).ReadAll()
	require.NoError(t, err)
	require.Len(t, recs, 2) // header + collapsed summary only
}
