package palette

import (
	"math"
	"sort"

	"github.com/darrenk196/image-analyzer/internal/imaging"
)

// Entry is one synthesized palette candidate: a color plus its precomputed
// luminosity, which drives both the scan order and the matching score.
type Entry struct {
	R          uint8   `json:"r"`
	G          uint8   `json:"g"`
	B          uint8   `json:"b"`
	Luminosity float64 `json:"luminosity"`
}

var (
	// tintRatios are the blend ratios toward white (tints) and toward
	// black (shades) applied to every base color.
	tintRatios = []float64{0.25, 0.5, 0.75}

	// blendRatios are applied to every unordered pair of base colors.
	blendRatios = []float64{0.33, 0.5, 0.66}
)

// blend mixes two colors: result = a*(1-ratio) + b*ratio, rounded per
// channel.
func blend(a, b imaging.RGBColor, ratio float64) imaging.RGBColor {
	mix := func(x, y uint8) uint8 {
		return uint8(math.Round(float64(x)*(1-ratio) + float64(y)*ratio))
	}
	return imaging.RGBColor{
		R: mix(a.R, b.R),
		G: mix(a.G, b.G),
		B: mix(a.B, b.B),
	}
}

func entryOf(c imaging.RGBColor) Entry {
	return Entry{R: c.R, G: c.G, B: c.B, Luminosity: c.Luminosity()}
}

// Synthesize expands a list of base hex colors into the full candidate set
// used for remapping.
//
// For each base color the set contains the color itself, three tints
// (blended toward white at ratios 0.25/0.5/0.75), and three shades (toward
// black, same ratios). For every unordered pair of base colors it contains
// three blends at ratios 0.33/0.5/0.66. The total candidate count is
// n*7 + C(n,2)*3 for n base colors.
//
// Numerically identical entries are kept distinct; no de-duplication is
// performed. Malformed hex strings degrade to black. The returned set is
// stable-sorted ascending by luminosity on every call, which fixes the scan
// order the matcher's tie-break depends on.
func Synthesize(baseHex []string) []Entry {
	white := imaging.RGBColor{R: 255, G: 255, B: 255}
	black := imaging.RGBColor{}

	bases := make([]imaging.RGBColor, len(baseHex))
	for i, h := range baseHex {
		bases[i] = imaging.ParseHex(h)
	}

	n := len(bases)
	entries := make([]Entry, 0, n*7+n*(n-1)/2*3)

	for _, base := range bases {
		entries = append(entries, entryOf(base))
		for _, r := range tintRatios {
			entries = append(entries, entryOf(blend(base, white, r)))
		}
		for _, r := range tintRatios {
			entries = append(entries, entryOf(blend(base, black, r)))
		}
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			for _, r := range blendRatios {
				entries = append(entries, entryOf(blend(bases[i], bases[j], r)))
			}
		}
	}

	sort.SliceStable(entries, func(a, b int) bool {
		return entries[a].Luminosity < entries[b].Luminosity
	})
	return entries
}
