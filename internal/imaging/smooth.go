package imaging

import "github.com/anthonynsimon/bild/blur"

// Smooth applies a Gaussian blur to reduce sensor noise ahead of edge
// detection or segmentation. Photographic sources often need a small radius
// (1-3) to keep the Sobel edge field from picking up grain.
//
// A radius of zero or less returns an untouched copy of the input.
func Smooth(buf *PixelBuffer, radius float64) (*PixelBuffer, error) {
	if err := buf.Validate(); err != nil {
		return nil, err
	}
	if radius <= 0 {
		return buf.Clone(), nil
	}
	return FromImage(blur.Gaussian(buf.Image(), radius)), nil
}
