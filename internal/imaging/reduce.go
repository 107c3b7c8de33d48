package imaging

import "math"

// clampLevels constrains a requested level count to the usable range.
// A single level collapses every channel to 0; more than 255 levels is an
// identity transform.
func clampLevels(levels int) int {
	if levels < 1 {
		return 1
	}
	if levels > 255 {
		return 255
	}
	return levels
}

// Quantize reduces each RGB channel to a small number of discrete levels.
//
// The channel mapping is round(floor(value/step)*step) with
// step = floor(256/levels). Alpha passes through unchanged. The operation is
// per-pixel, independent of neighbors, and idempotent: quantizing an already
// quantized buffer with the same level count is a no-op.
//
// Returns a freshly allocated buffer of identical geometry, or an error for
// invalid geometry.
func Quantize(buf *PixelBuffer, levels int) (*PixelBuffer, error) {
	if err := buf.Validate(); err != nil {
		return nil, err
	}
	step := float64(256 / clampLevels(levels))

	out := make([]uint8, len(buf.Pix))
	for o := 0; o < len(buf.Pix); o += 4 {
		for c := 0; c < 3; c++ {
			v := float64(buf.Pix[o+c])
			out[o+c] = uint8(math.Round(math.Floor(v/step) * step))
		}
		out[o+3] = buf.Pix[o+3]
	}
	return &PixelBuffer{Width: buf.Width, Height: buf.Height, Pix: out}, nil
}

// Posterize reduces each RGB channel using truncating integer arithmetic:
// channel = floor(value/factor)*factor with factor = floor(256/levels).
//
// Posterize shares Quantize's alpha handling and idempotence but never
// rounds, so levels that don't divide 256 evenly bias toward darker output.
func Posterize(buf *PixelBuffer, levels int) (*PixelBuffer, error) {
	if err := buf.Validate(); err != nil {
		return nil, err
	}
	factor := 256 / clampLevels(levels)

	out := make([]uint8, len(buf.Pix))
	for o := 0; o < len(buf.Pix); o += 4 {
		for c := 0; c < 3; c++ {
			out[o+c] = uint8(int(buf.Pix[o+c]) / factor * factor)
		}
		out[o+3] = buf.Pix[o+3]
	}
	return &PixelBuffer{Width: buf.Width, Height: buf.Height, Pix: out}, nil
}

// Grayscale converts the buffer to grayscale using the perceptual luminosity
// weighting. Alpha passes through unchanged.
func Grayscale(buf *PixelBuffer) (*PixelBuffer, error) {
	if err := buf.Validate(); err != nil {
		return nil, err
	}
	out := make([]uint8, len(buf.Pix))
	for o := 0; o < len(buf.Pix); o += 4 {
		gray := uint8(Luminosity(buf.Pix[o], buf.Pix[o+1], buf.Pix[o+2]))
		out[o] = gray
		out[o+1] = gray
		out[o+2] = gray
		out[o+3] = buf.Pix[o+3]
	}
	return &PixelBuffer{Width: buf.Width, Height: buf.Height, Pix: out}, nil
}
