package detection

import (
	"math"

	"github.com/darrenk196/image-analyzer/internal/imaging"
)

// EdgeParams pairs a gradient threshold with a companion line thickness for
// one detail level.
type EdgeParams struct {
	// Threshold is the Sobel gradient magnitude above which a pixel is an
	// edge.
	Threshold float64 `json:"threshold"`

	// Thickness is the dilation width applied after detection; 1 means no
	// thickening.
	Thickness int `json:"thickness"`
}

// LevelParams maps an integer detail level (1-10, clamped) to edge
// detection parameters. Lower levels use a high threshold and thick lines
// for bold, sparse outlines; higher levels pick up finer gradients with
// thin lines.
func LevelParams(level int) EdgeParams {
	switch {
	case level <= 2:
		return EdgeParams{Threshold: 100, Thickness: 4}
	case level <= 4:
		return EdgeParams{Threshold: 70, Thickness: 3}
	case level <= 6:
		return EdgeParams{Threshold: 45, Thickness: 2}
	case level <= 8:
		return EdgeParams{Threshold: 30, Thickness: 2}
	default:
		return EdgeParams{Threshold: 20, Thickness: 1}
	}
}

var (
	sobelX = [3][3]float64{
		{-1, 0, 1},
		{-2, 0, 2},
		{-1, 0, 1},
	}
	sobelY = [3][3]float64{
		{-1, -2, -1},
		{0, 0, 0},
		{1, 2, 1},
	}
)

// DetectEdges produces a binarized edge field: edge pixels are black,
// everything else is white, and the output is fully opaque.
//
// The source is first reduced to a luminosity plane. Interior pixels are
// convolved with the 3x3 Sobel Gx/Gy kernels and the gradient magnitude
// sqrt(Gx^2+Gy^2) is compared against threshold. A 1-pixel border is left
// unconvolved and stays white.
func DetectEdges(buf *imaging.PixelBuffer, threshold float64) (*imaging.PixelBuffer, error) {
	if err := buf.Validate(); err != nil {
		return nil, err
	}
	width, height := buf.Width, buf.Height

	lum := make([]float64, width*height)
	for i := 0; i < width*height; i++ {
		o := i * 4
		lum[i] = imaging.Luminosity(buf.Pix[o], buf.Pix[o+1], buf.Pix[o+2])
	}

	out := imaging.NewPixelBuffer(width, height)
	for i := range out.Pix {
		out.Pix[i] = 255
	}

	for y := 1; y < height-1; y++ {
		for x := 1; x < width-1; x++ {
			var gx, gy float64
			for ky := -1; ky <= 1; ky++ {
				for kx := -1; kx <= 1; kx++ {
					v := lum[(y+ky)*width+(x+kx)]
					gx += v * sobelX[ky+1][kx+1]
					gy += v * sobelY[ky+1][kx+1]
				}
			}
			if math.Sqrt(gx*gx+gy*gy) > threshold {
				o := out.Offset(x, y)
				out.Pix[o] = 0
				out.Pix[o+1] = 0
				out.Pix[o+2] = 0
			}
		}
	}
	return out, nil
}

// ThickenLines dilates every edge (black) pixel into a square of black with
// side 2*floor(thickness/2)+1 centered on the pixel. Non-edge pixels default
// to white. A thickness of 1 or less is a passthrough copy.
func ThickenLines(buf *imaging.PixelBuffer, thickness int) (*imaging.PixelBuffer, error) {
	if err := buf.Validate(); err != nil {
		return nil, err
	}
	if thickness <= 1 {
		return buf.Clone(), nil
	}

	width, height := buf.Width, buf.Height
	half := thickness / 2

	out := imaging.NewPixelBuffer(width, height)
	for i := range out.Pix {
		out.Pix[i] = 255
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			o := buf.Offset(x, y)
			if buf.Pix[o] != 0 || buf.Pix[o+1] != 0 || buf.Pix[o+2] != 0 {
				continue
			}
			for dy := -half; dy <= half; dy++ {
				for dx := -half; dx <= half; dx++ {
					nx, ny := x+dx, y+dy
					if nx < 0 || nx >= width || ny < 0 || ny >= height {
						continue
					}
					no := out.Offset(nx, ny)
					out.Pix[no] = 0
					out.Pix[no+1] = 0
					out.Pix[no+2] = 0
				}
			}
		}
	}
	return out, nil
}
