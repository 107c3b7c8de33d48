package palette

import "strings"

// Palette is a named, ordered list of base hex colors with a category tag.
// Palettes are source data and never mutated; synthesis expands them into
// candidate sets on demand.
type Palette struct {
	Name     string   `json:"name"`     // Display name, unique among builtins
	Category string   `json:"category"` // Grouping tag, e.g. "warm" or "neutral"
	Colors   []string `json:"colors"`   // Ordered base colors, "#RRGGBB"
}

// builtins is the curated palette library. Base sets are kept at or near 8
// colors so the synthesized candidate count stays in the low hundreds.
var builtins = []Palette{
	{
		Name:     "Warm Earth",
		Category: "warm",
		Colors: []string{
			"#8B4513", "#CD853F", "#DEB887", "#D2691E",
			"#A0522D", "#F4A460", "#FFE4C4", "#6B4226",
		},
	},
	{
		Name:     "Ocean",
		Category: "cool",
		Colors: []string{
			"#03045E", "#0077B6", "#00B4D8", "#90E0EF",
			"#CAF0F8", "#023E8A", "#48CAE4", "#ADE8F4",
		},
	},
	{
		Name:     "Forest",
		Category: "cool",
		Colors: []string{
			"#1B4332", "#2D6A4F", "#40916C", "#52B788",
			"#74C69D", "#95D5B2", "#B7E4C7", "#081C15",
		},
	},
	{
		Name:     "Sunset",
		Category: "warm",
		Colors: []string{
			"#FF6B6B", "#F7B267", "#F79D65", "#F4845F",
			"#F27059", "#F25C54", "#FFD166", "#7D1128",
		},
	},
	{
		Name:     "Grayscale",
		Category: "neutral",
		Colors: []string{
			"#000000", "#242424", "#484848", "#6D6D6D",
			"#919191", "#B6B6B6", "#DADADA", "#FFFFFF",
		},
	},
	{
		Name:     "Primary",
		Category: "vivid",
		Colors: []string{
			"#E63946", "#F1C40F", "#2E86DE", "#27AE60",
			"#8E44AD", "#E67E22", "#FFFFFF", "#000000",
		},
	},
}

// Builtin returns the curated palettes, optionally filtered by category.
// An empty category returns every palette. The returned slices must be
// treated as read-only.
func Builtin(category string) []Palette {
	if category == "" {
		return builtins
	}
	var out []Palette
	for _, p := range builtins {
		if strings.EqualFold(p.Category, category) {
			out = append(out, p)
		}
	}
	return out
}

// Find looks up a builtin palette by name, case-insensitively.
func Find(name string) (Palette, bool) {
	for _, p := range builtins {
		if strings.EqualFold(p.Name, name) {
			return p, true
		}
	}
	return Palette{}, false
}
