package imaging

import "math"

// DominantColor is one clustered color from an image, reported in the same
// multi-format style as the rest of the engine's color results.
type DominantColor struct {
	RGB RGBColor `json:"rgb"` // RGB components
	Hex string   `json:"hex"` // Hex format "#RRGGBB", uppercase
	HSL HSLColor `json:"hsl"` // HSL representation
}

// ExtractResult contains the dominant colors found by clustering.
type ExtractResult struct {
	// Colors holds at most the requested number of colors. Fewer are
	// returned when the decimated sample set is smaller than the request.
	Colors []DominantColor `json:"colors"`
}

// clusterPasses is the fixed number of k-means refinement passes.
//
// Three passes is a deliberate non-convergence bound chosen for interactive
// latency on multi-megapixel inputs. Do not replace it with
// convergence-driven iteration: downstream consumers rely on the
// deterministic output this bound produces.
const clusterPasses = 3

// ExtractDominantColors clusters the image into up to count representative
// colors using decimated-sample approximate k-means.
//
// Parameters:
//   - buf: Source pixel buffer.
//   - count: Desired number of colors (clamped to >= 1).
//   - stride: Sampling decimation; one pixel is read for every stride source
//     pixels (clamped to >= 1). Larger strides bound the clustering cost on
//     large images.
//
// Returns:
//   - *ExtractResult: Up to count colors. An empty buffer yields zero colors.
//   - error: Non-nil only for invalid buffer geometry.
//
// # Algorithm
//
// Centroids are seeded at evenly spaced sample indices i*floor(n/k); when the
// sample count n is below k, only n centroids are produced. Exactly three
// refinement passes follow: each sample is assigned to its nearest centroid
// by Euclidean RGB distance (ties go to the lowest centroid index), then each
// centroid is recomputed as the channel-wise rounded mean of its members. A
// centroid that attracts no members keeps its previous value. Alpha is
// ignored for distance.
//
// The whole procedure is deterministic: the same input always produces the
// same colors in the same order.
func ExtractDominantColors(buf *PixelBuffer, count, stride int) (*ExtractResult, error) {
	if err := buf.Validate(); err != nil {
		return nil, err
	}
	if count < 1 {
		count = 1
	}
	if stride < 1 {
		stride = 1
	}

	type rgb struct{ r, g, b float64 }

	total := buf.Width * buf.Height
	samples := make([]rgb, 0, total/stride+1)
	for i := 0; i < total; i += stride {
		o := i * 4
		samples = append(samples, rgb{
			r: float64(buf.Pix[o]),
			g: float64(buf.Pix[o+1]),
			b: float64(buf.Pix[o+2]),
		})
	}

	n := len(samples)
	if n == 0 {
		return &ExtractResult{Colors: []DominantColor{}}, nil
	}

	k := count
	if n < k {
		k = n
	}

	// Deterministic seeding at evenly spaced sample indices.
	centroids := make([]rgb, k)
	seedStep := n / k
	for i := range centroids {
		centroids[i] = samples[i*seedStep]
	}

	assignments := make([]int, n)
	for pass := 0; pass < clusterPasses; pass++ {
		// Assignment: nearest centroid by Euclidean RGB distance, lowest
		// index on ties.
		for i, s := range samples {
			best := 0
			bestDist := math.MaxFloat64
			for j, c := range centroids {
				dr := s.r - c.r
				dg := s.g - c.g
				db := s.b - c.b
				d := dr*dr + dg*dg + db*db
				if d < bestDist {
					bestDist = d
					best = j
				}
			}
			assignments[i] = best
		}

		// Update: channel-wise rounded mean; empty clusters keep their
		// previous centroid.
		sums := make([]rgb, k)
		counts := make([]int, k)
		for i, s := range samples {
			j := assignments[i]
			sums[j].r += s.r
			sums[j].g += s.g
			sums[j].b += s.b
			counts[j]++
		}
		for j := range centroids {
			if counts[j] == 0 {
				continue
			}
			m := float64(counts[j])
			centroids[j] = rgb{
				r: math.Round(sums[j].r / m),
				g: math.Round(sums[j].g / m),
				b: math.Round(sums[j].b / m),
			}
		}
	}

	colors := make([]DominantColor, k)
	for i, c := range centroids {
		col := RGBColor{R: uint8(c.r), G: uint8(c.g), B: uint8(c.b)}
		colors[i] = DominantColor{
			RGB: col,
			Hex: col.Hex(),
			HSL: col.HSL(),
		}
	}
	return &ExtractResult{Colors: colors}, nil
}
