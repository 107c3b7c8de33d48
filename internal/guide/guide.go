// Package guide renders paint-by-numbers style reference guides by
// orchestrating the edge, reduction, and palette stages of the engine.
package guide

import (
	"fmt"
	"math"

	"github.com/darrenk196/image-analyzer/internal/detection"
	"github.com/darrenk196/image-analyzer/internal/imaging"
	"github.com/darrenk196/image-analyzer/internal/palette"
)

// Guide rendering modes.
const (
	// ModeLines renders clean outline art from the edge field.
	ModeLines = "lines"

	// ModeBlocks renders flat posterized color blocks with darkened
	// borders between them.
	ModeBlocks = "blocks"
)

// borderDarken is the RGB multiplier applied along block boundaries.
const borderDarken = 0.85

// Generate renders a reference guide from the source buffer. The output is
// always a full-size buffer matching the input geometry.
//
// Parameters:
//   - buf: Source pixel buffer, used unmodified.
//   - mode: ModeLines or ModeBlocks; anything else is an error.
//   - level: Detail level 1-10 (clamped). In lines mode it selects the edge
//     threshold and line thickness; in blocks mode it selects the
//     posterization depth.
//   - paletteHex: Optional base palette for blocks mode. When non-empty the
//     posterized image is remapped to the synthesized palette before
//     borders are drawn. Ignored in lines mode.
func Generate(buf *imaging.PixelBuffer, mode string, level int, paletteHex []string) (*imaging.PixelBuffer, error) {
	if err := buf.Validate(); err != nil {
		return nil, err
	}
	if level < 1 {
		level = 1
	}
	if level > 10 {
		level = 10
	}

	switch mode {
	case ModeLines:
		params := detection.LevelParams(level)
		edges, err := detection.DetectEdges(buf, params.Threshold)
		if err != nil {
			return nil, err
		}
		return detection.ThickenLines(edges, params.Thickness)

	case ModeBlocks:
		levels := level
		if levels < 2 {
			levels = 2
		}
		flat, err := imaging.Posterize(buf, levels)
		if err != nil {
			return nil, err
		}
		if len(paletteHex) > 0 {
			flat, err = palette.Remap(flat, paletteHex)
			if err != nil {
				return nil, err
			}
		}
		return darkenBorders(flat), nil

	default:
		return nil, fmt.Errorf("unknown guide mode: %q", mode)
	}
}

// darkenBorders multiplies the RGB channels by 0.85 for every pixel whose
// right or bottom neighbor differs in color, producing thin borders between
// flat regions. Neighbor comparison reads the source buffer, so earlier
// darkening never cascades. Alpha is untouched.
func darkenBorders(buf *imaging.PixelBuffer) *imaging.PixelBuffer {
	out := buf.Clone()
	width, height := buf.Width, buf.Height

	differs := func(o1, o2 int) bool {
		return buf.Pix[o1] != buf.Pix[o2] ||
			buf.Pix[o1+1] != buf.Pix[o2+1] ||
			buf.Pix[o1+2] != buf.Pix[o2+2]
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			o := buf.Offset(x, y)
			border := false
			if x+1 < width && differs(o, buf.Offset(x+1, y)) {
				border = true
			}
			if !border && y+1 < height && differs(o, buf.Offset(x, y+1)) {
				border = true
			}
			if border {
				for c := 0; c < 3; c++ {
					out.Pix[o+c] = uint8(math.Round(float64(buf.Pix[o+c]) * borderDarken))
				}
			}
		}
	}
	return out
}
