package detection

import (
	"github.com/darrenk196/image-analyzer/internal/imaging"
)

// Point represents a 2D coordinate in pixel space.
type Point struct {
	X int `json:"x"` // Horizontal position (0 = leftmost)
	Y int `json:"y"` // Vertical position (0 = topmost)
}

// colorTolerance is the per-channel distance from a region's seed color
// within which a pixel still joins the region.
const colorTolerance = 5

// DefaultMinRegionSize is the segmentation noise floor: regions at or below
// this size are discarded.
const DefaultMinRegionSize = 50

// SegmentRegions partitions the image into 4-connected regions of
// near-uniform color and returns a mapping from region id to the region's
// pixel coordinates.
//
// The pass runs a global flood fill: every unvisited pixel seeds a region
// that grows to 4-connected neighbors whose R, G, and B channels are each
// within 5 of the seed color. The visited marker is shared across the whole
// pass and owned by this call, so total cost is O(width*height) regardless
// of region count. Fill uses an explicit queue, never recursion.
//
// Regions with size at or below minSize are discarded as noise; ids are
// assigned to surviving regions in discovery (scan) order starting at 0.
func SegmentRegions(buf *imaging.PixelBuffer, minSize int) (map[int][]Point, error) {
	if err := buf.Validate(); err != nil {
		return nil, err
	}
	width, height := buf.Width, buf.Height

	visited := make([]bool, width*height)
	regions := make(map[int][]Point)
	nextID := 0

	var queue []Point
	for start := 0; start < width*height; start++ {
		if visited[start] {
			continue
		}
		seedO := start * 4
		seedR := int(buf.Pix[seedO])
		seedG := int(buf.Pix[seedO+1])
		seedB := int(buf.Pix[seedO+2])

		queue = queue[:0]
		queue = append(queue, Point{X: start % width, Y: start / width})
		visited[start] = true

		var points []Point
		for len(queue) > 0 {
			p := queue[0]
			queue = queue[1:]
			points = append(points, p)

			for _, d := range [4]Point{{1, 0}, {-1, 0}, {0, 1}, {0, -1}} {
				nx, ny := p.X+d.X, p.Y+d.Y
				if nx < 0 || nx >= width || ny < 0 || ny >= height {
					continue
				}
				idx := ny*width + nx
				if visited[idx] {
					continue
				}
				o := idx * 4
				if absInt(int(buf.Pix[o])-seedR) > colorTolerance ||
					absInt(int(buf.Pix[o+1])-seedG) > colorTolerance ||
					absInt(int(buf.Pix[o+2])-seedB) > colorTolerance {
					continue
				}
				visited[idx] = true
				queue = append(queue, Point{X: nx, Y: ny})
			}
		}

		if len(points) > minSize {
			regions[nextID] = points
			nextID++
		}
	}
	return regions, nil
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
