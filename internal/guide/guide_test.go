package guide

import (
	"testing"

	"github.com/darrenk196/image-analyzer/internal/imaging"
)

// halfSplit builds an opaque buffer whose left columns carry one gray value
// and right columns another.
func halfSplit(width, height int, left, right uint8) *imaging.PixelBuffer {
	buf := imaging.NewPixelBuffer(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			v := left
			if x >= width/2 {
				v = right
			}
			o := buf.Offset(x, y)
			buf.Pix[o] = v
			buf.Pix[o+1] = v
			buf.Pix[o+2] = v
			buf.Pix[o+3] = 255
		}
	}
	return buf
}

func TestGenerate_UnknownMode(t *testing.T) {
	buf := halfSplit(4, 4, 0, 255)
	if _, err := Generate(buf, "sketch", 5, nil); err == nil {
		t.Error("expected error for unknown mode")
	}
}

func TestGenerate_PreservesGeometry(t *testing.T) {
	buf := halfSplit(10, 6, 30, 220)

	for _, mode := range []string{ModeLines, ModeBlocks} {
		out, err := Generate(buf, mode, 5, nil)
		if err != nil {
			t.Fatalf("Generate(%s) failed: %v", mode, err)
		}
		if out.Width != 10 || out.Height != 6 {
			t.Errorf("%s: geometry changed, got %dx%d", mode, out.Width, out.Height)
		}
		if err := out.Validate(); err != nil {
			t.Errorf("%s: invalid output: %v", mode, err)
		}
	}
}

func TestGenerate_LinesUniformIsWhite(t *testing.T) {
	buf := halfSplit(8, 8, 120, 120)

	out, err := Generate(buf, ModeLines, 5, nil)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	for o := 0; o < len(out.Pix); o += 4 {
		if out.Pix[o] != 255 || out.Pix[o+1] != 255 || out.Pix[o+2] != 255 {
			t.Fatalf("uniform source produced a non-white pixel at offset %d", o)
		}
	}
}

func TestGenerate_LinesFindSeam(t *testing.T) {
	buf := halfSplit(12, 12, 0, 255)

	out, err := Generate(buf, ModeLines, 5, nil)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	black := 0
	for o := 0; o < len(out.Pix); o += 4 {
		if out.Pix[o] == 0 && out.Pix[o+1] == 0 && out.Pix[o+2] == 0 {
			black++
		}
	}
	if black == 0 {
		t.Error("hard seam produced no edge pixels")
	}
}

func TestGenerate_BlocksDarkensBorders(t *testing.T) {
	// Level 2 posterizes 200 to 128 and 50 to 0. The last left-half column
	// borders the right half and darkens to round(128*0.85) = 109.
	buf := halfSplit(8, 4, 200, 50)

	out, err := Generate(buf, ModeBlocks, 2, nil)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	interior := out.Offset(1, 1)
	if out.Pix[interior] != 128 {
		t.Errorf("interior left pixel: got %d, want 128", out.Pix[interior])
	}
	seam := out.Offset(3, 1)
	if out.Pix[seam] != 109 {
		t.Errorf("seam pixel: got %d, want 109", out.Pix[seam])
	}
	right := out.Offset(6, 1)
	if out.Pix[right] != 0 {
		t.Errorf("right half pixel: got %d, want 0", out.Pix[right])
	}
}

func TestGenerate_BlocksLevelFloor(t *testing.T) {
	// Level 1 is lifted to 2 posterization levels so blocks mode never
	// collapses to a single color.
	buf := halfSplit(6, 6, 200, 50)

	out, err := Generate(buf, ModeBlocks, 1, nil)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	values := make(map[uint8]bool)
	for o := 0; o < len(out.Pix); o += 4 {
		values[out.Pix[o]] = true
	}
	if len(values) < 2 {
		t.Errorf("blocks at level 1 collapsed to one value: %v", values)
	}
}

func TestGenerate_BlocksWithPalette(t *testing.T) {
	buf := halfSplit(6, 6, 240, 20)

	out, err := Generate(buf, ModeBlocks, 4, []string{"#000000", "#FFFFFF"})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	// Remapped output channels must come from the synthesized black/white
	// ramp, so every pixel is gray.
	for o := 0; o < len(out.Pix); o += 4 {
		if out.Pix[o] != out.Pix[o+1] || out.Pix[o+1] != out.Pix[o+2] {
			t.Fatalf("palette remap produced a non-gray pixel at offset %d", o)
		}
	}
}

func TestGenerate_ClampsLevel(t *testing.T) {
	buf := halfSplit(6, 6, 0, 255)

	low, err := Generate(buf, ModeLines, -5, nil)
	if err != nil {
		t.Fatalf("Generate(level=-5) failed: %v", err)
	}
	high, err := Generate(buf, ModeLines, 99, nil)
	if err != nil {
		t.Fatalf("Generate(level=99) failed: %v", err)
	}
	if low == nil || high == nil {
		t.Fatal("clamped levels must still render")
	}
}

func TestGenerate_BadGeometry(t *testing.T) {
	buf := &imaging.PixelBuffer{Width: 3, Height: 3, Pix: make([]uint8, 5)}
	if _, err := Generate(buf, ModeLines, 5, nil); err == nil {
		t.Error("expected error for malformed buffer")
	}
}
