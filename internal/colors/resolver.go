// Package colors computes each task's effective display color under the five
// color modes. ComputeTaskColor is deterministic and referentially
// transparent: the grid, timeline and exporters all call it with the same
// snapshot and must never disagree. Nothing here errors; every failure mode
// resolves to a documented fallback.
package colors

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/jask/ganttly/internal/model"
)

// Theme-mode variant shaping. Lightness grows with depth from the color-giver
// plus a per-task jitter, capped so bars never wash out; hue wobbles a couple
// of degrees to keep siblings at the same depth apart.
const (
	variantLightenPerLevel = 0.08
	variantJitterSteps     = 5 // jitter in [0, steps) percent
	variantLightnessCap    = 0.88
	variantHueSpread       = 2.0 // degrees, applied as [-2, +2]
)

// ComputeTaskColor resolves the effective display color of task under state.
// Manual mode always returns the stored color and ignores any override; every
// automatic mode yields to a set ColorOverride before computing anything.
func ComputeTaskColor(task model.Task, tasks []model.Task, state model.ColorModeState) string {
	if state.Mode == model.ModeManual {
		return task.Color
	}
	if task.ColorOverride != "" {
		return task.ColorOverride
	}
	switch state.Mode {
	case model.ModeTheme:
		return themeColor(task, tasks, state.Theme)
	case model.ModeSummary:
		return summaryColor(task, tasks, state.Summary)
	case model.ModeTaskType:
		return typeColor(task, state.TaskType)
	case model.ModeHierarchy:
		return hierarchyColor(task, tasks, state.Hierarchy)
	}
	return task.Color
}

// Lighten moves hex toward white by percent (0..100) in HSL lightness.
// Unparsable input is returned unchanged.
func Lighten(hex string, percent float64) string {
	c, err := colorful.Hex(hex)
	if err != nil {
		return hex
	}
	h, s, l := c.Hsl()
	l += (1 - l) * percent / 100
	return colorful.Hsl(h, s, clamp01(l)).Hex()
}

// ---------------------------------------------------------------------------
// Theme mode
// ---------------------------------------------------------------------------

func themeColor(task model.Task, tasks []model.Task, opts model.ThemeOptions) string {
	palette := ActivePalette(opts)
	if len(palette) == 0 {
		return task.Color
	}

	givers := resolveGivers(tasks)
	slots := AssignPaletteSlots(givers.ids, len(palette))

	g, ok := givers.byTask[task.ID]
	if !ok || g.giverID == "" {
		// Root-level task outside any giver group: raw preferred slot.
		return palette[int(StableHash(task.ID)%uint32(len(palette)))]
	}
	base := palette[slots[g.giverID]]
	if g.giverID == task.ID {
		return base
	}
	return variant(base, task.ID, g.depth)
}

// giverInfo records, per task, which color-giver anchors its group and how far
// below the giver the task sits.
type giverInfo struct {
	giverID string
	depth   int
}

type giverMap struct {
	byTask map[string]giverInfo
	ids    []string
}

// resolveGivers determines every task's color-giver. With exactly one
// root-level summary, its direct children are the givers and each task walks
// up to the nearest such child; otherwise each task's top-most ancestor is its
// giver. All upward walks carry a visited set so a cyclic parent chain reads
// as "no further ancestor".
func resolveGivers(tasks []model.Task) giverMap {
	byID := make(map[string]model.Task, len(tasks))
	for _, t := range tasks {
		byID[t.ID] = t
	}

	anchor := singleRootSummary(tasks, byID)

	gm := giverMap{byTask: make(map[string]giverInfo, len(tasks))}
	inSet := make(map[string]bool)
	for _, t := range tasks {
		info := giverFor(t, byID, anchor)
		gm.byTask[t.ID] = info
		if info.giverID != "" && !inSet[info.giverID] {
			inSet[info.giverID] = true
			gm.ids = append(gm.ids, info.giverID)
		}
	}
	return gm
}

// singleRootSummary returns the id of the sole root-level summary, or "" when
// there are zero or several.
func singleRootSummary(tasks []model.Task, byID map[string]model.Task) string {
	anchor := ""
	count := 0
	for _, t := range tasks {
		if !isRoot(t, byID) || !t.IsSummary() {
			continue
		}
		count++
		if count > 1 {
			return ""
		}
		anchor = t.ID
	}
	return anchor
}

func isRoot(t model.Task, byID map[string]model.Task) bool {
	if t.ParentID == "" || t.ParentID == t.ID {
		return true
	}
	_, ok := byID[t.ParentID]
	return !ok
}

func giverFor(t model.Task, byID map[string]model.Task, anchor string) giverInfo {
	if anchor != "" && t.ID == anchor {
		return giverInfo{} // the anchor summary itself has no giver
	}
	visited := map[string]bool{t.ID: true}
	cur := t
	depth := 0
	for {
		if anchor != "" && cur.ParentID == anchor {
			// cur is a direct child of the anchor, hence a giver.
			return giverInfo{giverID: cur.ID, depth: depth}
		}
		if isRoot(cur, byID) || visited[cur.ParentID] {
			if anchor != "" {
				// Rooted outside the anchor's subtree: no giver.
				return giverInfo{}
			}
			return giverInfo{giverID: cur.ID, depth: depth}
		}
		visited[cur.ParentID] = true
		cur = byID[cur.ParentID]
		depth++
	}
}

// variant derives a descendant's color from its giver's base: always lighter,
// never darker, with hash jitter for sibling separation.
func variant(baseHex, taskID string, depth int) string {
	c, err := colorful.Hex(baseHex)
	if err != nil {
		return baseHex
	}
	hash := StableHash(taskID)
	h, s, l := c.Hsl()

	jitter := float64(hash%variantJitterSteps) / 100
	l += variantLightenPerLevel*float64(depth) + jitter
	if l > variantLightnessCap {
		l = variantLightnessCap
	}

	hueShift := float64(int((hash>>3)%(2*uint32(variantHueSpread)+1))) - variantHueSpread
	h = math.Mod(h+hueShift+360, 360)

	return colorful.Hsl(h, s, clamp01(l)).Hex()
}

// ---------------------------------------------------------------------------
// Summary mode
// ---------------------------------------------------------------------------

func summaryColor(task model.Task, tasks []model.Task, opts model.SummaryOptions) string {
	if task.IsMilestone() && opts.UseMilestoneAccent && opts.MilestoneAccentColor != "" {
		return opts.MilestoneAccentColor
	}
	if task.IsSummary() {
		// A summary defines its group's color.
		return task.Color
	}
	byID := make(map[string]model.Task, len(tasks))
	for _, t := range tasks {
		byID[t.ID] = t
	}
	visited := map[string]bool{task.ID: true}
	cur := task
	for cur.ParentID != "" && !visited[cur.ParentID] {
		visited[cur.ParentID] = true
		p, ok := byID[cur.ParentID]
		if !ok {
			break
		}
		if p.IsSummary() {
			if p.ColorOverride != "" {
				return p.ColorOverride
			}
			return p.Color
		}
		cur = p
	}
	return task.Color
}

// ---------------------------------------------------------------------------
// Task-type mode
// ---------------------------------------------------------------------------

func typeColor(task model.Task, opts model.TaskTypeOptions) string {
	var c string
	switch task.Type {
	case model.TypeSummary:
		c = opts.SummaryColor
	case model.TypeMilestone:
		c = opts.MilestoneColor
	default:
		c = opts.TaskColor
	}
	if c == "" {
		return task.Color
	}
	return c
}

// ---------------------------------------------------------------------------
// Hierarchy mode
// ---------------------------------------------------------------------------

func hierarchyColor(task model.Task, tasks []model.Task, opts model.HierarchyOptions) string {
	base := opts.BaseColor
	if base == "" {
		return task.Color
	}
	byID := make(map[string]model.Task, len(tasks))
	for _, t := range tasks {
		byID[t.ID] = t
	}
	depth := 0
	visited := map[string]bool{task.ID: true}
	cur := task
	for cur.ParentID != "" && !visited[cur.ParentID] {
		p, ok := byID[cur.ParentID]
		if !ok {
			break
		}
		visited[cur.ParentID] = true
		cur = p
		depth++
	}
	pct := float64(depth * opts.LightenPercentPerLevel)
	if limit := float64(opts.MaxLightenPercent); pct > limit {
		pct = limit
	}
	return Lighten(base, pct)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
