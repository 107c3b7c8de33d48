package imaging

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// HistogramData contains 256-bin frequency counts for each RGB channel and
// for perceptual luminosity. Fully transparent pixels are excluded from all
// four histograms.
type HistogramData struct {
	Red        []int `json:"red"`        // Red channel counts, 256 bins
	Green      []int `json:"green"`      // Green channel counts, 256 bins
	Blue       []int `json:"blue"`       // Blue channel counts, 256 bins
	Luminosity []int `json:"luminosity"` // Luminosity counts, 256 bins
}

// AnalysisResult summarizes the tonal content of an image.
type AnalysisResult struct {
	// Histogram holds the per-channel and luminosity frequency counts.
	Histogram HistogramData `json:"histogram"`

	// AverageBrightness is the weighted mean of the luminosity histogram,
	// normalized to [0, 1].
	AverageBrightness float64 `json:"average_brightness"`

	// Contrast is the weighted standard deviation of the luminosity
	// histogram, normalized to [0, 1].
	Contrast float64 `json:"contrast"`
}

// Analyze computes channel histograms, average brightness, and contrast for
// an image. Brightness and contrast are derived from the luminosity
// histogram as a weighted mean and standard deviation.
func Analyze(buf *PixelBuffer) (*AnalysisResult, error) {
	if err := buf.Validate(); err != nil {
		return nil, err
	}

	hist := HistogramData{
		Red:        make([]int, 256),
		Green:      make([]int, 256),
		Blue:       make([]int, 256),
		Luminosity: make([]int, 256),
	}

	for o := 0; o < len(buf.Pix); o += 4 {
		if buf.Pix[o+3] == 0 {
			continue
		}
		r := buf.Pix[o]
		g := buf.Pix[o+1]
		b := buf.Pix[o+2]
		hist.Red[r]++
		hist.Green[g]++
		hist.Blue[b]++

		lum := int(Luminosity(r, g, b))
		if lum > 255 {
			lum = 255
		}
		hist.Luminosity[lum]++
	}

	levels := make([]float64, 256)
	weights := make([]float64, 256)
	totalWeight := 0.0
	for i, c := range hist.Luminosity {
		levels[i] = float64(i)
		weights[i] = float64(c)
		totalWeight += weights[i]
	}

	result := &AnalysisResult{Histogram: hist}
	if totalWeight > 0 {
		mean := stat.Mean(levels, weights)
		variance := stat.Variance(levels, weights)
		result.AverageBrightness = mean / 255.0
		result.Contrast = math.Sqrt(variance) / 255.0
	}
	return result, nil
}
