package detection

import "math"

// DefaultEpsilon is the standard simplification tolerance for traced
// contours, in pixels.
const DefaultEpsilon = 2.5

// traceStepCap is the absolute upper bound on boundary walk steps. Together
// with the per-region 2*size bound it guarantees termination even on
// pathological boundaries.
const traceStepCap = 10000

// mooreDirections enumerates the 8-neighborhood clockwise starting east.
var mooreDirections = [8]Point{
	{1, 0}, {1, 1}, {0, 1}, {-1, 1},
	{-1, 0}, {-1, -1}, {0, -1}, {1, -1},
}

// TraceContour walks the boundary of a region using Moore-neighbor tracing
// and returns the ordered boundary points.
//
// Starting from (startX, startY), each step scans the 8-neighborhood
// clockwise beginning at the current facing direction and advances to the
// first neighbor that both belongs to the region and is itself a boundary
// pixel (touches a non-region pixel through its 4-neighborhood, with
// out-of-bounds counting as non-region). The facing direction updates to the
// direction just taken.
//
// The walk terminates on returning to the start, after min(2*regionSize,
// 10000) steps, or when no qualifying neighbor exists. Regions under 3
// pixels are skipped and traced paths under 4 points are discarded; both
// cases return nil.
func TraceContour(region []Point, width, height, startX, startY int) []Point {
	if len(region) < 3 {
		return nil
	}

	inRegion := make(map[int]bool, len(region))
	for _, p := range region {
		inRegion[p.Y*width+p.X] = true
	}

	contains := func(x, y int) bool {
		if x < 0 || x >= width || y < 0 || y >= height {
			return false
		}
		return inRegion[y*width+x]
	}
	isBoundary := func(x, y int) bool {
		if !contains(x, y) {
			return false
		}
		return !contains(x+1, y) || !contains(x-1, y) ||
			!contains(x, y+1) || !contains(x, y-1)
	}

	start := Point{X: startX, Y: startY}
	if !contains(start.X, start.Y) {
		return nil
	}

	maxSteps := 2 * len(region)
	if maxSteps > traceStepCap {
		maxSteps = traceStepCap
	}

	path := []Point{start}
	cur := start
	facing := 0

	for step := 0; step < maxSteps; step++ {
		advanced := false
		for i := 0; i < 8; i++ {
			d := (facing + i) % 8
			nx := cur.X + mooreDirections[d].X
			ny := cur.Y + mooreDirections[d].Y
			if !isBoundary(nx, ny) {
				continue
			}
			next := Point{X: nx, Y: ny}
			facing = d
			if next == start {
				advanced = false
			} else {
				path = append(path, next)
				cur = next
				advanced = true
			}
			break
		}
		if !advanced {
			break
		}
	}

	if len(path) < 4 {
		return nil
	}
	return path
}

// SimplifyContour reduces a polyline with the Ramer-Douglas-Peucker
// algorithm: the point of maximum perpendicular distance from the chord
// joining the first and last point splits the sequence when that distance
// exceeds epsilon; otherwise the run collapses to its two endpoints.
//
// The implementation uses an explicit segment stack rather than recursion,
// so the work is bounded by the input length. Sequences under 3 points are
// returned unchanged, and the first and last points are always retained.
func SimplifyContour(points []Point, epsilon float64) []Point {
	if len(points) < 3 {
		return points
	}

	keep := make([]bool, len(points))
	keep[0] = true
	keep[len(points)-1] = true

	type span struct{ first, last int }
	stack := []span{{0, len(points) - 1}}

	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		maxDist := 0.0
		maxIdx := -1
		for i := s.first + 1; i < s.last; i++ {
			d := perpendicularDistance(points[i], points[s.first], points[s.last])
			if d > maxDist {
				maxDist = d
				maxIdx = i
			}
		}

		if maxDist > epsilon {
			keep[maxIdx] = true
			stack = append(stack, span{s.first, maxIdx}, span{maxIdx, s.last})
		}
	}

	out := make([]Point, 0, len(points))
	for i, p := range points {
		if keep[i] {
			out = append(out, p)
		}
	}
	return out
}

// perpendicularDistance returns the distance from p to the line through a
// and b. Coincident chord endpoints fall back to point distance.
func perpendicularDistance(p, a, b Point) float64 {
	dx := float64(b.X - a.X)
	dy := float64(b.Y - a.Y)

	length := math.Sqrt(dx*dx + dy*dy)
	if length == 0 {
		px := float64(p.X - a.X)
		py := float64(p.Y - a.Y)
		return math.Sqrt(px*px + py*py)
	}

	return math.Abs(dy*float64(p.X)-dx*float64(p.Y)+
		float64(b.X)*float64(a.Y)-float64(b.Y)*float64(a.X)) / length
}
