package palette

import (
	"math"

	"github.com/darrenk196/image-analyzer/internal/imaging"
)

// Matching score weights. The luminosity term dominates so remapped images
// preserve tonal structure even when the palette's hues drift from the
// source; the RGB term breaks up luminosity plateaus. These weights and the
// scan-order tie-break are part of the engine's deterministic contract and
// must not be swapped for a different metric.
const (
	luminosityWeight = 1.5
	distanceWeight   = 0.15
)

// Remap replaces every pixel with its nearest synthesized palette entry.
//
// The candidate set is regenerated from baseHex on each call (see
// Synthesize). For each pixel, every candidate is scored as
//
//	score = 1.5*|pixelLuminosity - candidateLuminosity| + 0.15*rgbDistance
//
// and the candidate with the strictly lowest score wins; during the
// luminosity-sorted scan only a strictly lower score replaces the current
// best, so ties resolve to the earliest candidate. Alpha is copied through
// unchanged.
//
// An empty base palette returns an untouched copy of the input.
func Remap(buf *imaging.PixelBuffer, baseHex []string) (*imaging.PixelBuffer, error) {
	if err := buf.Validate(); err != nil {
		return nil, err
	}
	entries := Synthesize(baseHex)
	if len(entries) == 0 {
		return buf.Clone(), nil
	}

	out := make([]uint8, len(buf.Pix))
	for o := 0; o < len(buf.Pix); o += 4 {
		r := buf.Pix[o]
		g := buf.Pix[o+1]
		b := buf.Pix[o+2]
		lum := imaging.Luminosity(r, g, b)

		best := 0
		bestScore := math.MaxFloat64
		for i, e := range entries {
			dr := float64(r) - float64(e.R)
			dg := float64(g) - float64(e.G)
			db := float64(b) - float64(e.B)
			score := luminosityWeight*math.Abs(lum-e.Luminosity) +
				distanceWeight*math.Sqrt(dr*dr+dg*dg+db*db)
			if score < bestScore {
				bestScore = score
				best = i
			}
		}

		e := entries[best]
		out[o] = e.R
		out[o+1] = e.G
		out[o+2] = e.B
		out[o+3] = buf.Pix[o+3]
	}
	return &imaging.PixelBuffer{Width: buf.Width, Height: buf.Height, Pix: out}, nil
}
