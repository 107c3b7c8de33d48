package detection

import (
	"testing"
)

func TestSegmentRegions_UniformImage(t *testing.T) {
	buf := fillBuffer(4, 4, 200, 30, 30)

	regions, err := SegmentRegions(buf, 1)
	if err != nil {
		t.Fatalf("SegmentRegions failed: %v", err)
	}
	if len(regions) != 1 {
		t.Fatalf("region count: got %d, want 1", len(regions))
	}
	points, ok := regions[0]
	if !ok {
		t.Fatal("expected region id 0")
	}
	if len(points) != 16 {
		t.Errorf("region size: got %d, want 16", len(points))
	}
}

func TestSegmentRegions_TwoColorSplit(t *testing.T) {
	buf := fillBuffer(4, 4, 255, 0, 0)
	for y := 0; y < 4; y++ {
		for x := 2; x < 4; x++ {
			setPixel(buf, x, y, 0, 0, 255)
		}
	}

	regions, err := SegmentRegions(buf, 1)
	if err != nil {
		t.Fatalf("SegmentRegions failed: %v", err)
	}
	if len(regions) != 2 {
		t.Fatalf("region count: got %d, want 2", len(regions))
	}
	// Scan order: the red half is discovered first.
	if len(regions[0]) != 8 || len(regions[1]) != 8 {
		t.Errorf("region sizes: got %d and %d, want 8 and 8",
			len(regions[0]), len(regions[1]))
	}
	if regions[0][0].X != 0 || regions[0][0].Y != 0 {
		t.Errorf("region 0 seed: got %+v, want (0,0)", regions[0][0])
	}
}

func TestSegmentRegions_MinSizeDiscards(t *testing.T) {
	buf := fillBuffer(4, 4, 128, 128, 128)

	// A 16-pixel region survives minSize 15 but not minSize 16.
	regions, err := SegmentRegions(buf, 15)
	if err != nil {
		t.Fatalf("SegmentRegions failed: %v", err)
	}
	if len(regions) != 1 {
		t.Errorf("minSize 15: got %d regions, want 1", len(regions))
	}

	regions, err = SegmentRegions(buf, 16)
	if err != nil {
		t.Fatalf("SegmentRegions failed: %v", err)
	}
	if len(regions) != 0 {
		t.Errorf("minSize 16: got %d regions, want 0", len(regions))
	}
}

func TestSegmentRegions_ToleranceAgainstSeed(t *testing.T) {
	// 1x3 row: 100, 105, 111. The middle pixel is within 5 of the seed and
	// joins; the last is 11 from the seed (though only 6 from its neighbor)
	// and starts its own region.
	buf := fillBuffer(3, 1, 100, 100, 100)
	setPixel(buf, 1, 0, 105, 105, 105)
	setPixel(buf, 2, 0, 111, 111, 111)

	regions, err := SegmentRegions(buf, 0)
	if err != nil {
		t.Fatalf("SegmentRegions failed: %v", err)
	}
	if len(regions) != 2 {
		t.Fatalf("region count: got %d, want 2", len(regions))
	}
	if len(regions[0]) != 2 {
		t.Errorf("region 0 size: got %d, want 2", len(regions[0]))
	}
	if len(regions[1]) != 1 {
		t.Errorf("region 1 size: got %d, want 1", len(regions[1]))
	}
}

func TestSegmentRegions_DiagonalNotConnected(t *testing.T) {
	// Two black pixels touching only diagonally stay separate regions.
	buf := fillBuffer(3, 3, 255, 255, 255)
	setPixel(buf, 0, 0, 0, 0, 0)
	setPixel(buf, 1, 1, 0, 0, 0)

	regions, err := SegmentRegions(buf, 0)
	if err != nil {
		t.Fatalf("SegmentRegions failed: %v", err)
	}
	// The white background wraps around and stays one region; the black
	// pixels must each be their own.
	sizes := make(map[int]int)
	for _, points := range regions {
		sizes[len(points)]++
	}
	if sizes[1] != 2 {
		t.Errorf("expected two single-pixel black regions, size histogram: %v", sizes)
	}
}

func TestSegmentRegions_IDsSequential(t *testing.T) {
	// Four vertical stripes of distinct colors.
	buf := fillBuffer(4, 2, 0, 0, 0)
	colors := [4][3]uint8{{0, 0, 0}, {60, 60, 60}, {120, 120, 120}, {200, 200, 200}}
	for x := 0; x < 4; x++ {
		for y := 0; y < 2; y++ {
			setPixel(buf, x, y, colors[x][0], colors[x][1], colors[x][2])
		}
	}

	regions, err := SegmentRegions(buf, 0)
	if err != nil {
		t.Fatalf("SegmentRegions failed: %v", err)
	}
	if len(regions) != 4 {
		t.Fatalf("region count: got %d, want 4", len(regions))
	}
	for id := 0; id < 4; id++ {
		if _, ok := regions[id]; !ok {
			t.Errorf("missing region id %d", id)
		}
	}
}

func TestSegmentRegions_BadGeometry(t *testing.T) {
	buf := fillBuffer(2, 2, 0, 0, 0)
	buf.Pix = buf.Pix[:15]
	if _, err := SegmentRegions(buf, 0); err == nil {
		t.Error("expected error for malformed buffer")
	}
}
