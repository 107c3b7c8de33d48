package detection

import (
	"testing"
)

// squareRegion returns every point of a size x size block at the origin.
func squareRegion(size int) []Point {
	points := make([]Point, 0, size*size)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			points = append(points, Point{X: x, Y: y})
		}
	}
	return points
}

func TestTraceContour_SquarePerimeter(t *testing.T) {
	region := squareRegion(5)

	path := TraceContour(region, 5, 5, 0, 0)
	if len(path) != 16 {
		t.Fatalf("path length: got %d, want 16", len(path))
	}
	if path[0] != (Point{X: 0, Y: 0}) {
		t.Errorf("path start: got %+v, want (0,0)", path[0])
	}

	// Every traced point sits on the perimeter, none repeats, and the start
	// is not appended again at the end.
	seen := make(map[Point]bool, len(path))
	for _, p := range path {
		if p.X != 0 && p.X != 4 && p.Y != 0 && p.Y != 4 {
			t.Errorf("interior point %+v in trace", p)
		}
		if seen[p] {
			t.Errorf("point %+v traced twice", p)
		}
		seen[p] = true
	}

	// Clockwise walk: the second point steps east.
	if path[1] != (Point{X: 1, Y: 0}) {
		t.Errorf("second point: got %+v, want (1,0)", path[1])
	}
}

func TestTraceContour_TinyRegion(t *testing.T) {
	if path := TraceContour([]Point{{0, 0}, {1, 0}}, 3, 3, 0, 0); path != nil {
		t.Errorf("region under 3 pixels should return nil, got %v", path)
	}
}

func TestTraceContour_ShortPathDiscarded(t *testing.T) {
	// A 3-pixel L traces only 3 points before closing, under the 4-point
	// floor.
	region := []Point{{0, 0}, {1, 0}, {0, 1}}
	if path := TraceContour(region, 3, 3, 0, 0); path != nil {
		t.Errorf("short path should return nil, got %v", path)
	}
}

func TestTraceContour_StartOutsideRegion(t *testing.T) {
	region := squareRegion(4)
	if path := TraceContour(region, 5, 5, 4, 4); path != nil {
		t.Errorf("start outside the region should return nil, got %v", path)
	}
}

func TestTraceContour_Deterministic(t *testing.T) {
	region := squareRegion(6)

	first := TraceContour(region, 6, 6, 0, 0)
	second := TraceContour(region, 6, 6, 0, 0)
	if len(first) != len(second) {
		t.Fatalf("trace lengths differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("traces diverge at index %d: %+v vs %+v", i, first[i], second[i])
		}
	}
}

func TestSimplifyContour_CollinearCollapse(t *testing.T) {
	points := []Point{{0, 0}, {1, 0}, {2, 0}, {3, 0}, {4, 0}, {5, 0}}

	out := SimplifyContour(points, 0.5)
	if len(out) != 2 {
		t.Fatalf("collinear run: got %d points, want 2", len(out))
	}
	if out[0] != points[0] || out[1] != points[5] {
		t.Errorf("endpoints not retained: got %v", out)
	}
}

func TestSimplifyContour_CornerPreserved(t *testing.T) {
	// An L from (0,0) to (4,0) to (4,4): the corner lies 2.83 from the
	// chord and must survive epsilon 0.5.
	points := []Point{
		{0, 0}, {1, 0}, {2, 0}, {3, 0}, {4, 0},
		{4, 1}, {4, 2}, {4, 3}, {4, 4},
	}

	out := SimplifyContour(points, 0.5)
	if len(out) != 3 {
		t.Fatalf("simplified length: got %d, want 3", len(out))
	}
	want := []Point{{0, 0}, {4, 0}, {4, 4}}
	for i, p := range want {
		if out[i] != p {
			t.Errorf("point %d: got %+v, want %+v", i, out[i], p)
		}
	}
}

func TestSimplifyContour_NeverLengthens(t *testing.T) {
	points := []Point{{0, 0}, {3, 5}, {7, 1}, {9, 9}, {12, 2}}

	for _, epsilon := range []float64{0, 0.1, 2.5, 100} {
		out := SimplifyContour(points, epsilon)
		if len(out) > len(points) {
			t.Errorf("epsilon %.1f: output longer than input (%d > %d)",
				epsilon, len(out), len(points))
		}
		if out[0] != points[0] || out[len(out)-1] != points[len(points)-1] {
			t.Errorf("epsilon %.1f: endpoints not retained", epsilon)
		}
	}
}

func TestSimplifyContour_ShortInputUnchanged(t *testing.T) {
	for _, points := range [][]Point{
		nil,
		{{1, 1}},
		{{1, 1}, {2, 2}},
	} {
		out := SimplifyContour(points, DefaultEpsilon)
		if len(out) != len(points) {
			t.Errorf("short input changed length: got %d, want %d", len(out), len(points))
		}
	}
}

func TestSimplifyContour_LargeEpsilonKeepsChord(t *testing.T) {
	points := []Point{{0, 0}, {5, 50}, {10, 0}, {15, 50}, {20, 0}}
	out := SimplifyContour(points, 1000)
	if len(out) != 2 {
		t.Errorf("huge epsilon should collapse to endpoints, got %d points", len(out))
	}
}
