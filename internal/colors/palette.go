package colors

import (
	"sort"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/jask/ganttly/internal/model"
)

// Palette is a named list of base colors for theme mode.
type Palette struct {
	ID     string
	Name   string
	Colors []string
}

// Built-in palettes. "mocha" carries the Catppuccin Mocha accents.
var palettes = []Palette{
	{
		ID:   "mocha",
		Name: "Mocha",
		Colors: []string{
			"#f38ba8", "#fab387", "#f9e2af", "#a6e3a1",
			"#94e2d5", "#89b4fa", "#cba6f7", "#f5c2e7",
		},
	},
	{
		ID:   "classic",
		Name: "Classic",
		Colors: []string{
			"#d32f2f", "#f57c00", "#fbc02d", "#388e3c",
			"#0097a7", "#1976d2", "#7b1fa2", "#c2185b",
		},
	},
	{
		ID:   "pastel",
		Name: "Pastel",
		Colors: []string{
			"#ffadad", "#ffd6a5", "#fdffb6", "#caffbf",
			"#9bf6ff", "#a0c4ff", "#bdb2ff", "#ffc6ff",
		},
	},
	{
		ID:   "earth",
		Name: "Earth",
		Colors: []string{
			"#8d6e63", "#a1887f", "#bcaaa4", "#6d4c41",
			"#7cb342", "#558b2f", "#33691e", "#827717",
		},
	},
}

// monochromeRampSize is the slot count of generated monochrome ramps.
const monochromeRampSize = 8

// Palettes returns the built-in palettes in display order.
func Palettes() []Palette {
	out := make([]Palette, len(palettes))
	copy(out, palettes)
	return out
}

// PaletteByID looks up a built-in palette.
func PaletteByID(id string) (Palette, bool) {
	for _, p := range palettes {
		if p.ID == id {
			return p, true
		}
	}
	return Palette{}, false
}

// ActivePalette resolves the theme options to a concrete color list. It
// returns nil for an unresolvable palette id or an unparsable monochrome base;
// callers fall back to the task's own stored color.
func ActivePalette(opts model.ThemeOptions) []string {
	if opts.SelectedPaletteID == model.PaletteMonochrome {
		return MonochromeRamp(opts.MonochromeBase, monochromeRampSize)
	}
	p, ok := PaletteByID(opts.SelectedPaletteID)
	if !ok {
		return nil
	}
	return p.Colors
}

// MonochromeRamp generates n colors sharing the base color's hue and
// saturation, spread across a fixed lightness band so adjacent slots remain
// distinguishable. Returns nil when the base does not parse or n < 1.
func MonochromeRamp(baseHex string, n int) []string {
	if n < 1 {
		return nil
	}
	base, err := colorful.Hex(baseHex)
	if err != nil {
		return nil
	}
	h, s, _ := base.Hsl()
	const loL, hiL = 0.30, 0.75
	out := make([]string, n)
	for i := 0; i < n; i++ {
		l := loL
		if n > 1 {
			l = loL + (hiL-loL)*float64(i)/float64(n-1)
		}
		out[i] = colorful.Hsl(h, s, l).Hex()
	}
	return out
}

// AssignPaletteSlots deterministically maps each distinct color-giver id to a
// palette slot. Preferred slot is StableHash(id) mod size; givers are
// processed in raw-hash order so the outcome is unaffected by task list order;
// collisions probe forward with wrap; once the palette is exhausted the
// remaining givers reuse their preferred slot. Collision-free whenever the
// giver count does not exceed the palette size.
func AssignPaletteSlots(giverIDs []string, paletteSize int) map[string]int {
	out := make(map[string]int, len(giverIDs))
	if paletteSize <= 0 {
		return out
	}

	seen := make(map[string]bool, len(giverIDs))
	givers := make([]string, 0, len(giverIDs))
	for _, id := range giverIDs {
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		givers = append(givers, id)
	}
	sort.Slice(givers, func(i, j int) bool {
		hi, hj := StableHash(givers[i]), StableHash(givers[j])
		if hi != hj {
			return hi < hj
		}
		return givers[i] < givers[j]
	})

	taken := make([]bool, paletteSize)
	var unplaced []string
	for _, id := range givers {
		slot := int(StableHash(id) % uint32(paletteSize))
		if taken[slot] {
			unplaced = append(unplaced, id)
			continue
		}
		taken[slot] = true
		out[id] = slot
	}
	for _, id := range unplaced {
		pref := int(StableHash(id) % uint32(paletteSize))
		out[id] = pref // duplicate colors once slots run out
		for off := 1; off <= paletteSize; off++ {
			s := (pref + off) % paletteSize
			if !taken[s] {
				taken[s] = true
				out[id] = s
				break
			}
		}
	}
	return out
}
